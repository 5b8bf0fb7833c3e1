package service

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/dibuiltadi/dashboard-web/internal/core/domain"
	"github.com/dibuiltadi/dashboard-web/internal/core/ports"
)

// DashboardData is everything the dashboard page renders. Fields that failed
// to load stay zero-valued; Err carries the first failure so the page can
// show a message while still rendering whatever arrived.
type DashboardData struct {
	Profile   *domain.Profile
	Monthly   []domain.MonthlyOrders
	TopStores []domain.TopStore
	Err       error
}

// DashboardService assembles the analytics page: operator greeting, monthly
// order counts for the selected range, and the top stores by amount.
type DashboardService struct {
	gateway ports.Gateway
	log     zerolog.Logger
}

func NewDashboardService(gateway ports.Gateway, log zerolog.Logger) *DashboardService {
	return &DashboardService{gateway: gateway, log: log}
}

// Summary fetches all three dashboard data sets. Currency-formatted strings
// in the summaries are parsed to numbers; unparseable values become zero.
// The month range is built as YYYY-MM from the selector values.
func (s *DashboardService) Summary(ctx context.Context, token, startMonth, endMonth, year string) *DashboardData {
	data := &DashboardData{}

	profile, err := s.gateway.Profile(ctx, token)
	if err != nil {
		s.log.Warn().Err(err).Msg("dashboard profile fetch failed")
		data.Err = err
	} else {
		data.Profile = profile
	}

	monthly, err := s.gateway.MonthlyOrderSummary(ctx, token, ports.MonthlySummaryInput{
		StartMonth: fmt.Sprintf("%s-%s", year, startMonth),
		EndMonth:   fmt.Sprintf("%s-%s", year, endMonth),
	})
	if err != nil {
		s.log.Warn().Err(err).Msg("monthly summary fetch failed")
		if data.Err == nil {
			data.Err = err
		}
	} else {
		data.Monthly = make([]domain.MonthlyOrders, len(monthly))
		for i, item := range monthly {
			data.Monthly[i] = domain.MonthlyOrders{
				Month:  item.Month,
				Orders: domain.ParseAmount(item.Orders),
			}
		}
	}

	stores, err := s.gateway.TopStores(ctx, token)
	if err != nil {
		s.log.Warn().Err(err).Msg("top stores fetch failed")
		if data.Err == nil {
			data.Err = err
		}
	} else {
		data.TopStores = make([]domain.TopStore, len(stores))
		for i, item := range stores {
			data.TopStores[i] = domain.TopStore{
				Name:   item.Name,
				Amount: domain.ParseAmount(item.Amount),
			}
		}
	}

	return data
}
