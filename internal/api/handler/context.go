package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/dibuiltadi/dashboard-web/internal/api/middleware"
	"github.com/dibuiltadi/dashboard-web/internal/core/domain"
)

// sessionToken returns the access token injected by the session middleware,
// or "" when the visitor has none. Unguarded pages carry on with an empty
// token and let the backend's rejection surface on the page.
func sessionToken(c echo.Context) string {
	token, _ := c.Get(middleware.TokenKey).(string)
	return token
}

// failMessage turns a service error into the string shown on the page. The
// backend's own message is preferred; anything without one gets a generic
// line instead of leaking internals.
func failMessage(err error) string {
	if msg := domain.UpstreamMessage(err); msg != "" {
		return msg
	}
	return "Terjadi kesalahan, silakan coba lagi."
}

// unauthorized reports whether the backend rejected the token itself, which
// on the guarded dashboard means the session is stale and the visitor must
// log in again.
func unauthorized(err error) bool {
	if errors.Is(err, domain.ErrMissingToken) || errors.Is(err, domain.ErrUnauthorized) {
		return true
	}
	var ue *domain.UpstreamError
	return errors.As(err, &ue) && ue.StatusCode == http.StatusUnauthorized
}
