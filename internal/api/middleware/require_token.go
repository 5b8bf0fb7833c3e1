package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/dibuiltadi/dashboard-web/internal/core/ports"
)

// TokenKey is the context key under which RequireToken stores the access token.
const TokenKey = "token"

// RequireToken resolves the visitor's session and injects the access token
// into context. Without a usable session the visitor is sent back to the
// login page instead of receiving an error body; this is a browser surface.
func RequireToken(store ports.TokenStore) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			token, ok := store.Get(c.Request())
			if !ok {
				return c.Redirect(http.StatusFound, "/")
			}

			c.Set(TokenKey, token)
			return next(c)
		}
	}
}

// ResolveToken injects the access token when a session exists but never
// blocks the request. Pages behind it degrade on their own: their upstream
// calls simply go out unauthenticated and surface whatever comes back.
func ResolveToken(store ports.TokenStore) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if token, ok := store.Get(c.Request()); ok {
				c.Set(TokenKey, token)
			}
			return next(c)
		}
	}
}
