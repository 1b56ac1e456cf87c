package httpapi

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	assistantapp "github.com/dwikikusuma/dohsarpay/internal/assistant/app"
	authapp "github.com/dwikikusuma/dohsarpay/internal/auth/app"
	catalogapp "github.com/dwikikusuma/dohsarpay/internal/catalog/app"
	orderapp "github.com/dwikikusuma/dohsarpay/internal/order/app"
)

func TestHTTPStatusFromErr(t *testing.T) {
	t.Run("not found -> 404", func(t *testing.T) {
		gotStatus, gotCode, _ := httpStatusFromErr(catalogapp.ErrNotFound)
		if gotStatus != http.StatusNotFound || gotCode != "NOT_FOUND" {
			t.Fatalf("got (%d,%s)", gotStatus, gotCode)
		}
	})

	t.Run("empty cart -> 400", func(t *testing.T) {
		gotStatus, gotCode, _ := httpStatusFromErr(orderapp.ErrEmptyCart)
		if gotStatus != http.StatusBadRequest || gotCode != "EMPTY_CART" {
			t.Fatalf("got (%d,%s)", gotStatus, gotCode)
		}
	})

	t.Run("missing shipping -> 400", func(t *testing.T) {
		gotStatus, gotCode, _ := httpStatusFromErr(orderapp.ErrMissingShipping)
		if gotStatus != http.StatusBadRequest || gotCode != "MISSING_SHIPPING" {
			t.Fatalf("got (%d,%s)", gotStatus, gotCode)
		}
	})

	t.Run("bad credentials -> 401", func(t *testing.T) {
		gotStatus, gotCode, _ := httpStatusFromErr(authapp.ErrBadCredentials)
		if gotStatus != http.StatusUnauthorized || gotCode != "BAD_CREDENTIALS" {
			t.Fatalf("got (%d,%s)", gotStatus, gotCode)
		}
	})

	t.Run("forbidden -> 403", func(t *testing.T) {
		gotStatus, gotCode, _ := httpStatusFromErr(ErrForbidden)
		if gotStatus != http.StatusForbidden || gotCode != "FORBIDDEN" {
			t.Fatalf("got (%d,%s)", gotStatus, gotCode)
		}
	})

	t.Run("chat unconfigured -> 503", func(t *testing.T) {
		gotStatus, gotCode, _ := httpStatusFromErr(assistantapp.ErrNotConfigured)
		if gotStatus != http.StatusServiceUnavailable || gotCode != "CHAT_UNCONFIGURED" {
			t.Fatalf("got (%d,%s)", gotStatus, gotCode)
		}
	})

	t.Run("chat busy -> 409", func(t *testing.T) {
		gotStatus, gotCode, _ := httpStatusFromErr(assistantapp.ErrBusy)
		if gotStatus != http.StatusConflict || gotCode != "BUSY" {
			t.Fatalf("got (%d,%s)", gotStatus, gotCode)
		}
	})

	t.Run("completion failure -> 502", func(t *testing.T) {
		err := fmt.Errorf("%w: boom", assistantapp.ErrCompletionFailed)
		gotStatus, gotCode, _ := httpStatusFromErr(err)
		if gotStatus != http.StatusBadGateway || gotCode != "CHAT_UPSTREAM" {
			t.Fatalf("got (%d,%s)", gotStatus, gotCode)
		}
	})

	t.Run("wrapped sentinel still maps", func(t *testing.T) {
		err := fmt.Errorf("placing order: %w", orderapp.ErrEmptyCart)
		gotStatus, gotCode, _ := httpStatusFromErr(err)
		if gotStatus != http.StatusBadRequest || gotCode != "EMPTY_CART" {
			t.Fatalf("got (%d,%s)", gotStatus, gotCode)
		}
	})

	t.Run("unknown error -> 500", func(t *testing.T) {
		gotStatus, gotCode, _ := httpStatusFromErr(errors.New("boom"))
		if gotStatus != http.StatusInternalServerError || gotCode != "INTERNAL" {
			t.Fatalf("got (%d,%s)", gotStatus, gotCode)
		}
	})
}
