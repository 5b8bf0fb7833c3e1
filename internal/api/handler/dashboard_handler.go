package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/dibuiltadi/dashboard-web/internal/core/domain"
	"github.com/dibuiltadi/dashboard-web/internal/core/service"
	"github.com/dibuiltadi/dashboard-web/internal/web"
)

type DashboardHandler struct {
	dashboard *service.DashboardService
	log       zerolog.Logger
}

func NewDashboardHandler(dashboard *service.DashboardService, log zerolog.Logger) *DashboardHandler {
	return &DashboardHandler{dashboard: dashboard, log: log}
}

type monthOption struct {
	Value string
	Label string
}

// months are the selector options, labelled in Indonesian.
var months = []monthOption{
	{"01", "Januari"},
	{"02", "Februari"},
	{"03", "Maret"},
	{"04", "April"},
	{"05", "Mei"},
	{"06", "Juni"},
	{"07", "Juli"},
	{"08", "Agustus"},
	{"09", "September"},
	{"10", "Oktober"},
	{"11", "November"},
	{"12", "Desember"},
}

var years = []string{"2021", "2022", "2023", "2024"}

const (
	defaultStartMonth = "01"
	defaultEndMonth   = "03"
	defaultYear       = "2022"
)

// chart point shapes handed to the page scripts.
type monthlyPoint struct {
	Month  string  `json:"month"`
	Orders float64 `json:"orders"`
}

type storePoint struct {
	Name   string  `json:"name"`
	Amount float64 `json:"amount"`
}

type dashboardPage struct {
	web.Meta
	Profile    *domain.Profile
	StartMonth string
	EndMonth   string
	Year       string
	Months     []monthOption
	Years      []string
	Monthly    []monthlyPoint
	TopStores  []storePoint
	Error      string
}

// Page renders the analytics dashboard for the selected month range and
// year. Unknown selector values fall back to the defaults rather than being
// forwarded to the backend.
func (h *DashboardHandler) Page(c echo.Context) error {
	token := sessionToken(c)

	startMonth := validMonth(c.QueryParam("start_month"), defaultStartMonth)
	endMonth := validMonth(c.QueryParam("end_month"), defaultEndMonth)
	year := validYear(c.QueryParam("year"))

	data := h.dashboard.Summary(c.Request().Context(), token, startMonth, endMonth, year)
	if data.Err != nil && unauthorized(data.Err) {
		return c.Redirect(http.StatusFound, "/")
	}

	page := dashboardPage{
		Meta:       web.Meta{Title: "Dashboard", Nav: true, Active: "dashboard"},
		Profile:    data.Profile,
		StartMonth: startMonth,
		EndMonth:   endMonth,
		Year:       year,
		Months:     months,
		Years:      years,
		Monthly:    make([]monthlyPoint, len(data.Monthly)),
		TopStores:  make([]storePoint, len(data.TopStores)),
	}
	if data.Err != nil {
		page.Error = failMessage(data.Err)
	}
	for i, m := range data.Monthly {
		page.Monthly[i] = monthlyPoint{Month: m.Month, Orders: m.Orders}
	}
	for i, s := range data.TopStores {
		page.TopStores[i] = storePoint{Name: s.Name, Amount: s.Amount}
	}

	return c.Render(http.StatusOK, "dashboard", page)
}

func validMonth(v, fallback string) string {
	for _, m := range months {
		if m.Value == v {
			return v
		}
	}
	return fallback
}

func validYear(v string) string {
	for _, y := range years {
		if y == v {
			return v
		}
	}
	return defaultYear
}
