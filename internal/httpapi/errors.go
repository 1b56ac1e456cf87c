package httpapi

import (
	"errors"
	"net/http"

	assistantapp "github.com/dwikikusuma/dohsarpay/internal/assistant/app"
	authapp "github.com/dwikikusuma/dohsarpay/internal/auth/app"
	cartapp "github.com/dwikikusuma/dohsarpay/internal/cart/app"
	catalogapp "github.com/dwikikusuma/dohsarpay/internal/catalog/app"
	checkoutapp "github.com/dwikikusuma/dohsarpay/internal/checkout/app"
	orderapp "github.com/dwikikusuma/dohsarpay/internal/order/app"
)

// ErrForbidden is raised by the admin gate for non-admin identities.
var ErrForbidden = errors.New("admin access required")

type errorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// httpStatusFromErr maps app-layer errors onto HTTP statuses and stable
// machine-readable codes. Unknown errors collapse to 500 INTERNAL so
// internals never leak to clients.
func httpStatusFromErr(err error) (int, string, string) {
	switch {
	case errors.Is(err, catalogapp.ErrNotFound):
		return http.StatusNotFound, "NOT_FOUND", "not found"
	case errors.Is(err, orderapp.ErrEmptyCart), errors.Is(err, checkoutapp.ErrEmptyCart):
		return http.StatusBadRequest, "EMPTY_CART", "cart is empty"
	case errors.Is(err, orderapp.ErrMissingShipping):
		return http.StatusBadRequest, "MISSING_SHIPPING", "shipping name and address are required"
	case errors.Is(err, authapp.ErrBadCredentials):
		return http.StatusUnauthorized, "BAD_CREDENTIALS", "invalid username or password"
	case errors.Is(err, ErrForbidden):
		return http.StatusForbidden, "FORBIDDEN", "admin access required"
	case errors.Is(err, assistantapp.ErrNotConfigured):
		return http.StatusServiceUnavailable, "CHAT_UNCONFIGURED", "assistant credential is not configured"
	case errors.Is(err, assistantapp.ErrBusy):
		return http.StatusConflict, "BUSY", "a reply is already in progress"
	case errors.Is(err, assistantapp.ErrCompletionFailed):
		return http.StatusBadGateway, "CHAT_UPSTREAM", "assistant is temporarily unavailable"
	case errors.Is(err, assistantapp.ErrEmptyMessage),
		errors.Is(err, catalogapp.ErrInvalidInput),
		errors.Is(err, cartapp.ErrInvalidInput):
		return http.StatusBadRequest, "INVALID_ARGUMENT", err.Error()
	default:
		return http.StatusInternalServerError, "INTERNAL", "internal error"
	}
}
