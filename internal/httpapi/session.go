package httpapi

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

const (
	// SessionCookie carries the anonymous browsing session: the cart and
	// the chat transcript hang off it. It exists before any login.
	SessionCookie = "dsp_session"
	// AuthHeader carries the login token issued by POST /login.
	AuthHeader = "X-Auth-Token"

	ctxSessionID = "httpapi.sessionID"
)

// sessionMiddleware makes sure every request runs under a session id,
// minting one on first contact.
func sessionMiddleware(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		cookie, err := c.Cookie(SessionCookie)
		if err == nil && cookie.Value != "" {
			c.Set(ctxSessionID, cookie.Value)
			return next(c)
		}

		sid := uuid.NewString()
		c.SetCookie(&http.Cookie{
			Name:     SessionCookie,
			Value:    sid,
			Path:     "/",
			HttpOnly: true,
		})
		c.Set(ctxSessionID, sid)
		return next(c)
	}
}

func sessionID(c echo.Context) string {
	sid, _ := c.Get(ctxSessionID).(string)
	return sid
}
