package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/dibuiltadi/dashboard-web/internal/api/metrics"
	"github.com/dibuiltadi/dashboard-web/internal/core/ports"
	"github.com/dibuiltadi/dashboard-web/internal/core/service"
	"github.com/dibuiltadi/dashboard-web/internal/web"
)

type LoginHandler struct {
	auth  *service.AuthService
	store ports.TokenStore
	log   zerolog.Logger
}

func NewLoginHandler(auth *service.AuthService, store ports.TokenStore, log zerolog.Logger) *LoginHandler {
	return &LoginHandler{auth: auth, store: store, log: log}
}

type loginPage struct {
	web.Meta
	Phone string
	Error string
}

type loginRequest struct {
	Phone    string `form:"phone" validate:"required"`
	Password string `form:"password" validate:"required"`
}

// loginFailedMessage is the single line shown for any rejected login. The
// backend's reason is never echoed here; an attacker probing credentials
// learns nothing from the page.
const loginFailedMessage = "Nomor telepon atau kata sandi salah."

// Page renders the login form. A visitor who already holds a session is sent
// straight to the dashboard.
func (h *LoginHandler) Page(c echo.Context) error {
	if _, ok := h.store.Get(c.Request()); ok {
		return c.Redirect(http.StatusFound, "/dashboard")
	}
	return c.Render(http.StatusOK, "login", loginPage{
		Meta: web.Meta{Title: "Login"},
	})
}

// Submit exchanges the credentials for an access token and starts a session.
// A rejected login re-renders the form with one generic message and keeps
// the phone number filled in; no session state is touched.
func (h *LoginHandler) Submit(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return c.Render(http.StatusBadRequest, "login", loginPage{
			Meta:  web.Meta{Title: "Login"},
			Error: "Nomor telepon dan kata sandi wajib diisi.",
		})
	}
	if err := c.Validate(&req); err != nil {
		return c.Render(http.StatusBadRequest, "login", loginPage{
			Meta:  web.Meta{Title: "Login"},
			Phone: req.Phone,
			Error: "Nomor telepon dan kata sandi wajib diisi.",
		})
	}

	token, err := h.auth.Login(c.Request().Context(), req.Phone, req.Password)
	if err != nil {
		metrics.LoginsTotal.WithLabelValues("failure").Inc()
		return c.Render(http.StatusUnauthorized, "login", loginPage{
			Meta:  web.Meta{Title: "Login"},
			Phone: req.Phone,
			Error: loginFailedMessage,
		})
	}

	if err := h.store.Set(c.Response(), c.Request(), token); err != nil {
		h.log.Error().Err(err).Msg("storing session failed")
		return c.Render(http.StatusInternalServerError, "login", loginPage{
			Meta:  web.Meta{Title: "Login"},
			Phone: req.Phone,
			Error: "Sesi tidak dapat dibuat, silakan coba lagi.",
		})
	}

	metrics.LoginsTotal.WithLabelValues("success").Inc()
	return c.Redirect(http.StatusFound, "/dashboard")
}

// Logout drops the session and returns the visitor to the login page.
func (h *LoginHandler) Logout(c echo.Context) error {
	h.store.Clear(c.Response(), c.Request())
	return c.Redirect(http.StatusFound, "/")
}
