package service

import (
	"context"
	"errors"

	"github.com/dibuiltadi/dashboard-web/internal/core/domain"
	"github.com/dibuiltadi/dashboard-web/internal/core/ports"
)

var errStub = errors.New("stub: not wired")

// stubGateway implements ports.Gateway with overridable functions and a
// request counter, so tests can assert that no request was issued.
type stubGateway struct {
	calls int

	loginFn         func(in ports.LoginInput) (*ports.LoginResult, error)
	loginLegacyFn   func(in ports.LegacyLoginInput) (*ports.LoginResult, error)
	profileFn       func(token string) (*domain.Profile, error)
	updateProfileFn func(token string, in ports.ProfileUpdateInput) error
	passwordFn      func(token string, in ports.PasswordChangeInput) error
	monthlyFn       func(token string, in ports.MonthlySummaryInput) ([]ports.MonthlySummaryItem, error)
	topStoresFn     func(token string) ([]ports.TopStoreItem, error)
	listCouponsFn   func(token string) ([]domain.Coupon, error)
	listOrdersFn    func(token string, in ports.ListOrdersInput) (*ports.OrdersPage, error)
	orderDetailFn   func(token, invoiceNo string) (*domain.OrderDetail, error)
}

func (g *stubGateway) Login(_ context.Context, in ports.LoginInput) (*ports.LoginResult, error) {
	g.calls++
	if g.loginFn == nil {
		return nil, errStub
	}
	return g.loginFn(in)
}

func (g *stubGateway) LoginLegacy(_ context.Context, in ports.LegacyLoginInput) (*ports.LoginResult, error) {
	g.calls++
	if g.loginLegacyFn == nil {
		return nil, errStub
	}
	return g.loginLegacyFn(in)
}

func (g *stubGateway) Profile(_ context.Context, token string) (*domain.Profile, error) {
	g.calls++
	if g.profileFn == nil {
		return nil, errStub
	}
	return g.profileFn(token)
}

func (g *stubGateway) UpdateProfile(_ context.Context, token string, in ports.ProfileUpdateInput) error {
	g.calls++
	if g.updateProfileFn == nil {
		return errStub
	}
	return g.updateProfileFn(token, in)
}

func (g *stubGateway) ChangePassword(_ context.Context, token string, in ports.PasswordChangeInput) error {
	g.calls++
	if g.passwordFn == nil {
		return errStub
	}
	return g.passwordFn(token, in)
}

func (g *stubGateway) MonthlyOrderSummary(_ context.Context, token string, in ports.MonthlySummaryInput) ([]ports.MonthlySummaryItem, error) {
	g.calls++
	if g.monthlyFn == nil {
		return nil, errStub
	}
	return g.monthlyFn(token, in)
}

func (g *stubGateway) TopStores(_ context.Context, token string) ([]ports.TopStoreItem, error) {
	g.calls++
	if g.topStoresFn == nil {
		return nil, errStub
	}
	return g.topStoresFn(token)
}

func (g *stubGateway) ListCoupons(_ context.Context, token string) ([]domain.Coupon, error) {
	g.calls++
	if g.listCouponsFn == nil {
		return nil, errStub
	}
	return g.listCouponsFn(token)
}

func (g *stubGateway) CreateCoupon(_ context.Context, token string, in ports.CouponCreateInput) error {
	g.calls++
	return nil
}

func (g *stubGateway) UpdateCoupon(_ context.Context, token, code string, in ports.CouponUpdateInput) error {
	g.calls++
	return nil
}

func (g *stubGateway) CouponDetail(_ context.Context, token, code string) (*domain.Coupon, error) {
	g.calls++
	return &domain.Coupon{Code: code}, nil
}

func (g *stubGateway) ExportCoupons(_ context.Context, token string) (*ports.ExportFile, error) {
	g.calls++
	return &ports.ExportFile{Filename: "coupons_export.txt"}, nil
}

func (g *stubGateway) ListOrders(_ context.Context, token string, in ports.ListOrdersInput) (*ports.OrdersPage, error) {
	g.calls++
	if g.listOrdersFn == nil {
		return nil, errStub
	}
	return g.listOrdersFn(token, in)
}

func (g *stubGateway) OrderDetail(_ context.Context, token, invoiceNo string) (*domain.OrderDetail, error) {
	g.calls++
	if g.orderDetailFn == nil {
		return nil, errStub
	}
	return g.orderDetailFn(token, invoiceNo)
}
