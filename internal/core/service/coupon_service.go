package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/dibuiltadi/dashboard-web/internal/core/domain"
	"github.com/dibuiltadi/dashboard-web/internal/core/ports"
)

// CouponService manages discount coupons. The list endpoint has no paging
// parameters, so the full set is fetched and sliced locally into pages of
// ten; see DESIGN.md for why this was preserved over server paging.
type CouponService struct {
	gateway ports.Gateway
	log     zerolog.Logger
}

func NewCouponService(gateway ports.Gateway, log zerolog.Logger) *CouponService {
	return &CouponService{gateway: gateway, log: log}
}

// List fetches the entire coupon list and returns the requested local page.
func (s *CouponService) List(ctx context.Context, token string, page int) (domain.CouponPage, error) {
	all, err := s.gateway.ListCoupons(ctx, token)
	if err != nil {
		return domain.CouponPage{Page: 1}, err
	}
	return domain.PaginateCoupons(all, page), nil
}

// Create adds a new coupon. All four fields are required; the handler's form
// validation enforces that before this is called.
func (s *CouponService) Create(ctx context.Context, token string, in ports.CouponCreateInput) error {
	if err := s.gateway.CreateCoupon(ctx, token, in); err != nil {
		s.log.Warn().Err(err).Str("code", in.Code).Msg("coupon create failed")
		return err
	}
	s.log.Info().Str("code", in.Code).Msg("coupon created")
	return nil
}

// Update changes a coupon's date range. Code and name are immutable after
// creation; nothing else is ever sent.
func (s *CouponService) Update(ctx context.Context, token, code string, in ports.CouponUpdateInput) error {
	if err := s.gateway.UpdateCoupon(ctx, token, code, in); err != nil {
		s.log.Warn().Err(err).Str("code", code).Msg("coupon update failed")
		return err
	}
	s.log.Info().Str("code", code).Msg("coupon updated")
	return nil
}

// Detail fetches a single coupon for the per-row detail block.
func (s *CouponService) Detail(ctx context.Context, token, code string) (*domain.Coupon, error) {
	return s.gateway.CouponDetail(ctx, token, code)
}

// Export downloads the server-formatted bulk file for the full set.
func (s *CouponService) Export(ctx context.Context, token string) (*ports.ExportFile, error) {
	return s.gateway.ExportCoupons(ctx, token)
}
