package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/dibuiltadi/dashboard-web/internal/core/domain"
	"github.com/dibuiltadi/dashboard-web/internal/core/ports"
	"github.com/dibuiltadi/dashboard-web/internal/core/service"
	"github.com/dibuiltadi/dashboard-web/internal/web"
)

type AccountHandler struct {
	account *service.AccountService
	log     zerolog.Logger
}

func NewAccountHandler(account *service.AccountService, log zerolog.Logger) *AccountHandler {
	return &AccountHandler{account: account, log: log}
}

type accountPage struct {
	web.Meta
	Profile *domain.Profile
	Mode    string
	// FormName is the value of the name input in profile mode. On a failed
	// update it carries the submitted name back, not the stored one.
	FormName string
	Error    string
	Notice   string
}

// notices maps the ?notice= code set by a successful POST redirect to the
// line shown on the page.
var notices = map[string]string{
	"profile":  "Profil berhasil diperbarui.",
	"password": "Kata sandi berhasil diubah.",
}

const noSessionMessage = "Sesi tidak ditemukan, silakan masuk kembali."

func accountMode(c echo.Context) string {
	switch c.QueryParam("mode") {
	case "profile":
		return "profile"
	case "password":
		return "password"
	default:
		return "view"
	}
}

// Page shows the profile, or one of the two edit forms when ?mode= asks for
// it. Without a session the page renders its error state directly; the
// profile fetch never leaves the process in that case.
func (h *AccountHandler) Page(c echo.Context) error {
	token := sessionToken(c)

	profile, err := h.account.Profile(c.Request().Context(), token)
	if err != nil {
		return c.Render(accountErrorStatus(err), "account", accountPage{
			Meta:  accountMeta(),
			Mode:  "view",
			Error: accountErrorMessage(err),
		})
	}

	page := accountPage{
		Meta:    accountMeta(),
		Profile: profile,
		Mode:    accountMode(c),
		Notice:  notices[c.QueryParam("notice")],
	}
	if page.Mode == "profile" {
		page.FormName = profile.Name
	}

	return c.Render(http.StatusOK, "account", page)
}

// UpdateProfile saves the name and, when one was chosen, the new profile
// image. Failures re-render the edit form with the server's message.
func (h *AccountHandler) UpdateProfile(c echo.Context) error {
	token := sessionToken(c)

	in := ports.ProfileUpdateInput{Name: c.FormValue("name")}

	if header, err := c.FormFile("profile_image"); err == nil {
		file, err := header.Open()
		if err != nil {
			return h.profileFormError(c, in.Name, "Gambar tidak dapat dibaca.")
		}
		defer file.Close()
		in.Image = &ports.ImageUpload{
			Filename:    header.Filename,
			ContentType: header.Header.Get("Content-Type"),
			Content:     file,
		}
	}

	if err := h.account.UpdateProfile(c.Request().Context(), token, in); err != nil {
		return h.profileFormError(c, in.Name, accountErrorMessage(err))
	}

	return c.Redirect(http.StatusFound, "/account?notice=profile")
}

// ChangePassword runs the password policy locally before contacting the
// backend; a policy violation never leaves the process.
func (h *AccountHandler) ChangePassword(c echo.Context) error {
	token := sessionToken(c)

	in := ports.PasswordChangeInput{
		CurrentPassword: c.FormValue("current_password"),
		NewPassword:     c.FormValue("new_password"),
		Confirmation:    c.FormValue("new_password_confirmation"),
	}

	if err := h.account.ChangePassword(c.Request().Context(), token, in); err != nil {
		msg := accountErrorMessage(err)
		if policy := policyMessage(err); policy != "" {
			msg = policy
		}
		return c.Render(http.StatusUnprocessableEntity, "account", accountPage{
			Meta:  accountMeta(),
			Mode:  "password",
			Error: msg,
		})
	}

	return c.Redirect(http.StatusFound, "/account?notice=password")
}

// profileFormError re-renders the edit form with the name the operator
// submitted so a rejected update does not throw their input away.
func (h *AccountHandler) profileFormError(c echo.Context, name, msg string) error {
	return c.Render(http.StatusUnprocessableEntity, "account", accountPage{
		Meta:     accountMeta(),
		Mode:     "profile",
		FormName: name,
		Error:    msg,
	})
}

func accountMeta() web.Meta {
	return web.Meta{Title: "Account", Nav: true, Active: "account"}
}

func accountErrorStatus(err error) int {
	if errors.Is(err, domain.ErrMissingToken) {
		return http.StatusOK
	}
	return http.StatusBadGateway
}

func accountErrorMessage(err error) string {
	if errors.Is(err, domain.ErrMissingToken) {
		return noSessionMessage
	}
	return failMessage(err)
}

// policyMessage translates a local password-policy violation for the page.
// Backend errors return "" and go through failMessage instead.
func policyMessage(err error) string {
	switch {
	case errors.Is(err, domain.ErrPasswordTooShort):
		return "Kata sandi minimal 8 karakter."
	case errors.Is(err, domain.ErrPasswordNoUppercase):
		return "Kata sandi harus mengandung huruf besar."
	case errors.Is(err, domain.ErrPasswordNoLowercase):
		return "Kata sandi harus mengandung huruf kecil."
	case errors.Is(err, domain.ErrPasswordNoSymbol):
		return "Kata sandi harus mengandung simbol."
	case errors.Is(err, domain.ErrPasswordMismatch):
		return "Konfirmasi kata sandi tidak cocok."
	default:
		return ""
	}
}
