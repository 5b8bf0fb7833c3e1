package service

import (
	"context"
	"testing"

	"github.com/rs/zerolog"

	"github.com/dibuiltadi/dashboard-web/internal/core/domain"
	"github.com/dibuiltadi/dashboard-web/internal/core/ports"
)

func TestOrderService_List_FixedParameters(t *testing.T) {
	var got ports.ListOrdersInput
	gw := &stubGateway{
		listOrdersFn: func(token string, in ports.ListOrdersInput) (*ports.OrdersPage, error) {
			got = in
			return &ports.OrdersPage{Page: in.Page, LastPage: 7}, nil
		},
	}
	svc := NewOrderService(gw, zerolog.Nop())

	page, err := svc.List(context.Background(), "tok", 1, "INV-001")
	if err != nil {
		t.Fatalf("List returned error: %v", err)
	}
	if got.Page != 1 || got.PerPage != 10 || got.SearchQuery != "INV-001" {
		t.Fatalf("unexpected input: %+v", got)
	}
	// The page count comes from the response, never recomputed.
	if page.LastPage != 7 {
		t.Fatalf("LastPage = %d, want 7", page.LastPage)
	}
}

func TestOrderService_List_ClampsPage(t *testing.T) {
	gw := &stubGateway{
		listOrdersFn: func(token string, in ports.ListOrdersInput) (*ports.OrdersPage, error) {
			if in.Page != 1 {
				t.Fatalf("page %d sent upstream, want 1", in.Page)
			}
			return &ports.OrdersPage{Page: 1, LastPage: 1}, nil
		},
	}
	svc := NewOrderService(gw, zerolog.Nop())

	if _, err := svc.List(context.Background(), "tok", 0, ""); err != nil {
		t.Fatalf("List returned error: %v", err)
	}
}

func TestOrderService_Detail(t *testing.T) {
	gw := &stubGateway{
		orderDetailFn: func(token, invoiceNo string) (*domain.OrderDetail, error) {
			if invoiceNo != "INV-2024-001" {
				t.Fatalf("unexpected invoice %q", invoiceNo)
			}
			return &domain.OrderDetail{
				OrderSummary: domain.OrderSummary{
					InvoiceNo: invoiceNo,
					Buyer:     domain.Buyer{Name: "Budi", Phone: "0811"},
					Store:     domain.Store{Name: "Toko A", City: "Bandung", Province: "Jawa Barat"},
					Coupon:    domain.CouponRef{Name: "DISC10"},
				},
				Items: []domain.OrderItem{{ProductName: "Kopi", TotalPrice: 50000, Qty: 2}},
			}, nil
		},
	}
	svc := NewOrderService(gw, zerolog.Nop())

	d, err := svc.Detail(context.Background(), "tok", "INV-2024-001")
	if err != nil {
		t.Fatalf("Detail returned error: %v", err)
	}
	if d.Buyer.Name != "Budi" || d.Store.City != "Bandung" || len(d.Items) != 1 {
		t.Fatalf("unexpected detail: %+v", d)
	}
}
