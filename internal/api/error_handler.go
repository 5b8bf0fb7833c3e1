package api

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/dibuiltadi/dashboard-web/internal/core/domain"
)

// NewHTTPErrorHandler returns an echo.HTTPErrorHandler for the HTML surface:
//   - Anything that means "no usable session" sends the visitor to the
//     login page instead of an error body.
//   - Known statuses get a short HTML page.
//   - Unexpected errors are logged internally without leaking details.
func NewHTTPErrorHandler(log zerolog.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		code := resolveStatus(err)
		if code == http.StatusUnauthorized {
			_ = c.Redirect(http.StatusFound, "/")
			return
		}

		if code == http.StatusInternalServerError {
			log.Error().
				Err(err).
				Str("method", c.Request().Method).
				Str("path", c.Path()).
				Msg("unhandled error")
		}

		_ = c.HTML(code, errorBody(code))
	}
}

func resolveStatus(err error) int {
	var he *echo.HTTPError
	if errors.As(err, &he) {
		return he.Code
	}

	switch {
	case errors.Is(err, domain.ErrMissingToken), errors.Is(err, domain.ErrUnauthorized):
		return http.StatusUnauthorized
	case errors.Is(err, domain.ErrNotFound):
		return http.StatusNotFound
	}

	var ue *domain.UpstreamError
	if errors.As(err, &ue) {
		if ue.StatusCode == http.StatusUnauthorized {
			return http.StatusUnauthorized
		}
		return http.StatusBadGateway
	}

	return http.StatusInternalServerError
}

func errorBody(code int) string {
	return "<!DOCTYPE html><html><body><h1>" +
		http.StatusText(code) +
		"</h1><p><a href=\"/\">Kembali</a></p></body></html>"
}
