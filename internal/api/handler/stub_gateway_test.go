package handler

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/dibuiltadi/dashboard-web/internal/api/middleware"
	"github.com/dibuiltadi/dashboard-web/internal/core/domain"
	"github.com/dibuiltadi/dashboard-web/internal/core/ports"
	"github.com/dibuiltadi/dashboard-web/internal/web"
)

var errStub = errors.New("stub: not configured")

// stubGateway lets each test override just the calls it cares about.
type stubGateway struct {
	loginFn        func(ctx context.Context, in ports.LoginInput) (*ports.LoginResult, error)
	profileFn      func(ctx context.Context, token string) (*domain.Profile, error)
	updateProfile  func(ctx context.Context, token string, in ports.ProfileUpdateInput) error
	changePassword func(ctx context.Context, token string, in ports.PasswordChangeInput) error
	monthlyFn      func(ctx context.Context, token string, in ports.MonthlySummaryInput) ([]ports.MonthlySummaryItem, error)
	topStoresFn    func(ctx context.Context, token string) ([]ports.TopStoreItem, error)
	listCouponsFn  func(ctx context.Context, token string) ([]domain.Coupon, error)
	createCouponFn func(ctx context.Context, token string, in ports.CouponCreateInput) error
	updateCouponFn func(ctx context.Context, token, code string, in ports.CouponUpdateInput) error
	couponDetailFn func(ctx context.Context, token, code string) (*domain.Coupon, error)
	exportFn       func(ctx context.Context, token string) (*ports.ExportFile, error)
	listOrdersFn   func(ctx context.Context, token string, in ports.ListOrdersInput) (*ports.OrdersPage, error)
	orderDetailFn  func(ctx context.Context, token, invoiceNo string) (*domain.OrderDetail, error)
}

func (s *stubGateway) Login(ctx context.Context, in ports.LoginInput) (*ports.LoginResult, error) {
	if s.loginFn == nil {
		return nil, errStub
	}
	return s.loginFn(ctx, in)
}

func (s *stubGateway) LoginLegacy(context.Context, ports.LegacyLoginInput) (*ports.LoginResult, error) {
	return nil, errStub
}

func (s *stubGateway) Profile(ctx context.Context, token string) (*domain.Profile, error) {
	if s.profileFn == nil {
		return nil, errStub
	}
	return s.profileFn(ctx, token)
}

func (s *stubGateway) UpdateProfile(ctx context.Context, token string, in ports.ProfileUpdateInput) error {
	if s.updateProfile == nil {
		return errStub
	}
	return s.updateProfile(ctx, token, in)
}

func (s *stubGateway) ChangePassword(ctx context.Context, token string, in ports.PasswordChangeInput) error {
	if s.changePassword == nil {
		return errStub
	}
	return s.changePassword(ctx, token, in)
}

func (s *stubGateway) MonthlyOrderSummary(ctx context.Context, token string, in ports.MonthlySummaryInput) ([]ports.MonthlySummaryItem, error) {
	if s.monthlyFn == nil {
		return nil, errStub
	}
	return s.monthlyFn(ctx, token, in)
}

func (s *stubGateway) TopStores(ctx context.Context, token string) ([]ports.TopStoreItem, error) {
	if s.topStoresFn == nil {
		return nil, errStub
	}
	return s.topStoresFn(ctx, token)
}

func (s *stubGateway) ListCoupons(ctx context.Context, token string) ([]domain.Coupon, error) {
	if s.listCouponsFn == nil {
		return nil, errStub
	}
	return s.listCouponsFn(ctx, token)
}

func (s *stubGateway) CreateCoupon(ctx context.Context, token string, in ports.CouponCreateInput) error {
	if s.createCouponFn == nil {
		return errStub
	}
	return s.createCouponFn(ctx, token, in)
}

func (s *stubGateway) UpdateCoupon(ctx context.Context, token, code string, in ports.CouponUpdateInput) error {
	if s.updateCouponFn == nil {
		return errStub
	}
	return s.updateCouponFn(ctx, token, code, in)
}

func (s *stubGateway) CouponDetail(ctx context.Context, token, code string) (*domain.Coupon, error) {
	if s.couponDetailFn == nil {
		return nil, errStub
	}
	return s.couponDetailFn(ctx, token, code)
}

func (s *stubGateway) ExportCoupons(ctx context.Context, token string) (*ports.ExportFile, error) {
	if s.exportFn == nil {
		return nil, errStub
	}
	return s.exportFn(ctx, token)
}

func (s *stubGateway) ListOrders(ctx context.Context, token string, in ports.ListOrdersInput) (*ports.OrdersPage, error) {
	if s.listOrdersFn == nil {
		return nil, errStub
	}
	return s.listOrdersFn(ctx, token, in)
}

func (s *stubGateway) OrderDetail(ctx context.Context, token, invoiceNo string) (*domain.OrderDetail, error) {
	if s.orderDetailFn == nil {
		return nil, errStub
	}
	return s.orderDetailFn(ctx, token, invoiceNo)
}

// memStore is an in-memory TokenStore for handler tests.
type memStore struct {
	token   string
	ok      bool
	sets    int
	cleared bool
}

func (s *memStore) Set(_ http.ResponseWriter, _ *http.Request, token string) error {
	s.token = token
	s.ok = true
	s.sets++
	return nil
}

func (s *memStore) Get(*http.Request) (string, bool) { return s.token, s.ok }

func (s *memStore) Clear(http.ResponseWriter, *http.Request) {
	s.token = ""
	s.ok = false
	s.cleared = true
}

func newTestEcho() *echo.Echo {
	e := echo.New()
	e.Validator = NewValidator()
	e.Renderer = web.NewRenderer()
	return e
}

// newTestContext builds an authenticated echo.Context the way RequireToken
// leaves it, plus the recorder to inspect the response.
func newTestContext(t *testing.T, e *echo.Echo, req *http.Request) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.Set(middleware.TokenKey, "tok-test")
	return c, rec
}

func testLogger() zerolog.Logger { return zerolog.Nop() }
