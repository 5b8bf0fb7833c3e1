package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/dibuiltadi/dashboard-web/internal/core/domain"
	"github.com/dibuiltadi/dashboard-web/internal/core/ports"
	"github.com/dibuiltadi/dashboard-web/internal/core/service"
	"github.com/dibuiltadi/dashboard-web/internal/web"
)

type OrderHandler struct {
	orders *service.OrderService
	log    zerolog.Logger
}

func NewOrderHandler(orders *service.OrderService, log zerolog.Logger) *OrderHandler {
	return &OrderHandler{orders: orders, log: log}
}

type orderPage struct {
	web.Meta
	Orders *ports.OrdersPage
	Query  string
	Detail *domain.OrderDetail
	Error  string
}

// Page renders one server-side page of orders. The search form submits via
// GET without a page field, so a new search always lands on page one.
// ?detail= opens the invoice detail above the list; closing it is a link
// back to the same page and query.
func (h *OrderHandler) Page(c echo.Context) error {
	token := sessionToken(c)
	ctx := c.Request().Context()

	page, _ := strconv.Atoi(c.QueryParam("page"))
	query := c.QueryParam("q")

	list, err := h.orders.List(ctx, token, page, query)
	if err != nil {
		return c.Render(http.StatusBadGateway, "order", orderPage{
			Meta:   orderMeta(),
			Orders: &ports.OrdersPage{Page: 1, LastPage: 1},
			Query:  query,
			Error:  failMessage(err),
		})
	}

	data := orderPage{
		Meta:   orderMeta(),
		Orders: list,
		Query:  query,
	}

	if invoiceNo := c.QueryParam("detail"); invoiceNo != "" {
		detail, err := h.orders.Detail(ctx, token, invoiceNo)
		if err != nil {
			data.Error = failMessage(err)
		} else {
			data.Detail = detail
		}
	}

	return c.Render(http.StatusOK, "order", data)
}

func orderMeta() web.Meta {
	return web.Meta{Title: "Order", Nav: true, Active: "order"}
}
