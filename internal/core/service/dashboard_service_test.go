package service

import (
	"context"
	"testing"

	"github.com/rs/zerolog"

	"github.com/dibuiltadi/dashboard-web/internal/core/domain"
	"github.com/dibuiltadi/dashboard-web/internal/core/ports"
)

func TestDashboardService_Summary(t *testing.T) {
	var monthlyIn ports.MonthlySummaryInput
	gw := &stubGateway{
		profileFn: func(token string) (*domain.Profile, error) {
			return &domain.Profile{Name: "Alba"}, nil
		},
		monthlyFn: func(token string, in ports.MonthlySummaryInput) ([]ports.MonthlySummaryItem, error) {
			monthlyIn = in
			return []ports.MonthlySummaryItem{
				{Month: "2022-01", Orders: "Rp120"},
				{Month: "2022-02", Orders: "garbage"},
			}, nil
		},
		topStoresFn: func(token string) ([]ports.TopStoreItem, error) {
			return []ports.TopStoreItem{{Name: "Toko A", Amount: "$1,234.56"}}, nil
		},
	}
	svc := NewDashboardService(gw, zerolog.Nop())

	data := svc.Summary(context.Background(), "tok", "01", "03", "2022")
	if data.Err != nil {
		t.Fatalf("unexpected error: %v", data.Err)
	}
	if monthlyIn.StartMonth != "2022-01" || monthlyIn.EndMonth != "2022-03" {
		t.Fatalf("unexpected month range: %+v", monthlyIn)
	}
	if data.Profile == nil || data.Profile.Name != "Alba" {
		t.Fatalf("unexpected profile: %+v", data.Profile)
	}
	if data.Monthly[0].Orders != 120 {
		t.Fatalf("Orders = %v, want 120", data.Monthly[0].Orders)
	}
	// Unparseable currency strings become zero, never an error.
	if data.Monthly[1].Orders != 0 {
		t.Fatalf("garbage Orders = %v, want 0", data.Monthly[1].Orders)
	}
	if data.TopStores[0].Amount != 1234.56 {
		t.Fatalf("Amount = %v, want 1234.56", data.TopStores[0].Amount)
	}
}

func TestDashboardService_Summary_PartialFailure(t *testing.T) {
	gw := &stubGateway{
		profileFn: func(token string) (*domain.Profile, error) {
			return nil, &domain.UpstreamError{StatusCode: 500}
		},
		monthlyFn: func(token string, in ports.MonthlySummaryInput) ([]ports.MonthlySummaryItem, error) {
			return []ports.MonthlySummaryItem{{Month: "2022-01", Orders: "5"}}, nil
		},
		topStoresFn: func(token string) ([]ports.TopStoreItem, error) {
			return nil, nil
		},
	}
	svc := NewDashboardService(gw, zerolog.Nop())

	data := svc.Summary(context.Background(), "tok", "01", "03", "2022")
	if data.Err == nil {
		t.Fatal("expected error to surface")
	}
	// The rest of the page still renders.
	if len(data.Monthly) != 1 || data.Monthly[0].Orders != 5 {
		t.Fatalf("unexpected monthly data: %+v", data.Monthly)
	}
}
