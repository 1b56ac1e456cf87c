package httpapi

import (
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"golang.org/x/time/rate"
)

// New builds the echo router: one route per user event, session cookie
// middleware on everything, admin gate on the admin mutations and a
// per-session rate limit on chat sends.
func New(h *Handler) *echo.Echo {
	e := echo.New()
	e.HideBanner = true

	e.Use(middleware.Recover())
	e.Use(middleware.Logger())
	e.Use(sessionMiddleware)

	e.GET("/healthz", func(c echo.Context) error { return c.NoContent(http.StatusOK) })

	e.GET("/books", h.listBooks)
	e.GET("/books/:id", h.getBook)
	e.GET("/categories", h.listCategories)
	e.POST("/books", h.addBook, h.requireAdmin)
	e.PUT("/books/:id", h.updateBook, h.requireAdmin)
	e.DELETE("/books/:id", h.deleteBook, h.requireAdmin)

	e.GET("/cart", h.getCart)
	e.POST("/cart/items/:id", h.addToCart)
	e.DELETE("/cart/items/:id", h.removeFromCart)

	e.GET("/checkout/quote", h.quote)
	e.POST("/orders", h.placeOrder)
	e.GET("/orders", h.listOrders, h.requireAdmin)

	e.POST("/login", h.login)
	e.POST("/logout", h.logout)

	e.GET("/chat", h.chatHistory)
	e.POST("/chat", h.sendChat, chatLimiter())

	return e
}

// chatLimiter throttles chat sends per session; the completion service is
// the only slow external dependency and should not be hammered.
func chatLimiter() echo.MiddlewareFunc {
	return middleware.RateLimiterWithConfig(middleware.RateLimiterConfig{
		Skipper: middleware.DefaultSkipper,
		Store: middleware.NewRateLimiterMemoryStoreWithConfig(
			middleware.RateLimiterMemoryStoreConfig{
				Rate:      rate.Limit(1),
				Burst:     3,
				ExpiresIn: 3 * time.Minute,
			}),
		IdentifierExtractor: func(c echo.Context) (string, error) {
			if sid := sessionID(c); sid != "" {
				return sid, nil
			}
			return c.RealIP(), nil
		},
		ErrorHandler: func(c echo.Context, err error) error {
			return c.JSON(http.StatusTooManyRequests, errorResponse{Code: "RATE_LIMITED", Message: "slow down"})
		},
		DenyHandler: func(c echo.Context, identifier string, err error) error {
			return c.JSON(http.StatusTooManyRequests, errorResponse{Code: "RATE_LIMITED", Message: "slow down"})
		},
	})
}

func pathID(c echo.Context) (int, error) {
	return strconv.Atoi(c.Param("id"))
}
