package handler

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/dibuiltadi/dashboard-web/internal/core/domain"
	"github.com/dibuiltadi/dashboard-web/internal/core/ports"
	"github.com/dibuiltadi/dashboard-web/internal/core/service"
	"github.com/dibuiltadi/dashboard-web/internal/web"
)

type CouponHandler struct {
	coupons *service.CouponService
	log     zerolog.Logger
}

func NewCouponHandler(coupons *service.CouponService, log zerolog.Logger) *CouponHandler {
	return &CouponHandler{coupons: coupons, log: log}
}

type couponPage struct {
	web.Meta
	Coupons domain.CouponPage
	Mode    string
	Editing *domain.Coupon
	Detail  *domain.Coupon
	Error   string
	Notice  string
}

type couponRequest struct {
	Code      string `form:"code" validate:"required"`
	Name      string `form:"name" validate:"required"`
	StartDate string `form:"start_date" validate:"required"`
	EndDate   string `form:"end_date" validate:"required"`
}

type couponDatesRequest struct {
	StartDate string `form:"start_date" validate:"required"`
	EndDate   string `form:"end_date" validate:"required"`
}

var couponNotices = map[string]string{
	"created": "Kupon berhasil dibuat.",
	"updated": "Kupon berhasil diperbarui.",
}

// couponErrors maps the ?error= code set by a failed redirect. Only known
// codes render; a crafted link cannot put its own text in the banner.
var couponErrors = map[string]string{
	"export": "Ekspor kupon gagal, silakan coba lagi.",
}

// Page shows the coupon list, one locally sliced page at a time. ?mode=add
// opens the create form, ?mode=edit&code= loads that coupon into the edit
// form, and ?detail= fetches one coupon into a read-only block. An unknown
// mode falls back to the plain list.
func (h *CouponHandler) Page(c echo.Context) error {
	token := sessionToken(c)
	ctx := c.Request().Context()

	page, _ := strconv.Atoi(c.QueryParam("page"))
	list, err := h.coupons.List(ctx, token, page)
	if err != nil {
		return c.Render(http.StatusBadGateway, "coupon", couponPage{
			Meta:  couponMeta(),
			Mode:  "idle",
			Error: failMessage(err),
		})
	}

	data := couponPage{
		Meta:    couponMeta(),
		Coupons: list,
		Mode:    "idle",
		Notice:  couponNotices[c.QueryParam("notice")],
		Error:   couponErrors[c.QueryParam("error")],
	}

	switch c.QueryParam("mode") {
	case "add":
		data.Mode = "add"
	case "edit":
		coupon, err := h.coupons.Detail(ctx, token, c.QueryParam("code"))
		if err != nil {
			data.Error = failMessage(err)
		} else {
			data.Mode = "edit"
			data.Editing = coupon
		}
	}

	if code := c.QueryParam("detail"); code != "" {
		coupon, err := h.coupons.Detail(ctx, token, code)
		if err != nil {
			data.Error = failMessage(err)
		} else {
			data.Detail = coupon
		}
	}

	return c.Render(http.StatusOK, "coupon", data)
}

// Create adds a coupon and returns to the list on success.
func (h *CouponHandler) Create(c echo.Context) error {
	token := sessionToken(c)

	var req couponRequest
	if err := c.Bind(&req); err != nil {
		return h.formError(c, token, "add", nil, "Semua kolom wajib diisi.")
	}
	if err := c.Validate(&req); err != nil {
		return h.formError(c, token, "add", nil, "Semua kolom wajib diisi.")
	}

	err := h.coupons.Create(c.Request().Context(), token, ports.CouponCreateInput{
		Code:      req.Code,
		Name:      req.Name,
		StartDate: req.StartDate,
		EndDate:   req.EndDate,
	})
	if err != nil {
		return h.formError(c, token, "add", nil, failMessage(err))
	}

	return c.Redirect(http.StatusFound, "/coupon?notice=created")
}

// Update changes a coupon's date range. The code and name are immutable.
func (h *CouponHandler) Update(c echo.Context) error {
	token := sessionToken(c)
	code := c.Param("code")

	var req couponDatesRequest
	err := c.Bind(&req)
	if err == nil {
		err = c.Validate(&req)
	}
	if err != nil {
		editing := &domain.Coupon{Code: code}
		return h.formError(c, token, "edit", editing, "Tanggal mulai dan berakhir wajib diisi.")
	}

	err = h.coupons.Update(c.Request().Context(), token, code, ports.CouponUpdateInput{
		StartDate: req.StartDate,
		EndDate:   req.EndDate,
	})
	if err != nil {
		editing := &domain.Coupon{Code: code, StartDate: req.StartDate, EndDate: req.EndDate}
		return h.formError(c, token, "edit", editing, failMessage(err))
	}

	return c.Redirect(http.StatusFound, "/coupon?notice=updated")
}

// Export streams the backend's coupon export to the browser as a download.
func (h *CouponHandler) Export(c echo.Context) error {
	token := sessionToken(c)

	file, err := h.coupons.Export(c.Request().Context(), token)
	if err != nil {
		return c.Redirect(http.StatusFound, "/coupon?error=export")
	}

	c.Response().Header().Set(echo.HeaderContentDisposition,
		fmt.Sprintf("attachment; filename=%q", file.Filename))
	return c.Blob(http.StatusOK, echo.MIMEOctetStream, file.Content)
}

func (h *CouponHandler) formError(c echo.Context, token, mode string, editing *domain.Coupon, msg string) error {
	list, err := h.coupons.List(c.Request().Context(), token, 1)
	if err != nil {
		list = domain.CouponPage{Page: 1}
	}
	return c.Render(http.StatusUnprocessableEntity, "coupon", couponPage{
		Meta:    couponMeta(),
		Coupons: list,
		Mode:    mode,
		Editing: editing,
		Error:   msg,
	})
}

func couponMeta() web.Meta {
	return web.Meta{Title: "Coupon", Nav: true, Active: "coupon"}
}
