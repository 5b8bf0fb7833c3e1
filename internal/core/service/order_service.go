package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/dibuiltadi/dashboard-web/internal/core/domain"
	"github.com/dibuiltadi/dashboard-web/internal/core/ports"
)

// OrderService reads orders. The list is server-paginated and server-sorted;
// page counts come from the response, never computed here.
type OrderService struct {
	gateway ports.Gateway
	log     zerolog.Logger
}

func NewOrderService(gateway ports.Gateway, log zerolog.Logger) *OrderService {
	return &OrderService{gateway: gateway, log: log}
}

// List fetches one server page. Query is the optional invoice-number
// substring filter; pagination and sorting are fixed by the gateway.
func (s *OrderService) List(ctx context.Context, token string, page int, query string) (*ports.OrdersPage, error) {
	if page < 1 {
		page = 1
	}
	return s.gateway.ListOrders(ctx, token, ports.ListOrdersInput{
		Page:        page,
		PerPage:     domain.OrdersPerPage,
		SearchQuery: query,
	})
}

// Detail fetches a single order by invoice number.
func (s *OrderService) Detail(ctx context.Context, token, invoiceNo string) (*domain.OrderDetail, error) {
	return s.gateway.OrderDetail(ctx, token, invoiceNo)
}
