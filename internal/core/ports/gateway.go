package ports

import (
	"context"
	"io"

	"github.com/dibuiltadi/dashboard-web/internal/core/domain"
)

// LoginInput carries operator credentials for the v1 login endpoint.
type LoginInput struct {
	Phone    string
	Password string
}

// LoginResult is the credential exchange outcome.
type LoginResult struct {
	AccessToken string
}

// LegacyLoginInput carries credentials for the legacy /login endpoint, which
// authenticates by username rather than phone.
type LegacyLoginInput struct {
	Username string
	Password string
}

// ProfileUpdateInput carries the editable profile fields. Image is optional;
// when present the request is sent as multipart form data.
type ProfileUpdateInput struct {
	Name  string
	Image *ImageUpload
}

// ImageUpload is a replacement profile image read from the submitted form.
type ImageUpload struct {
	Filename    string
	ContentType string
	Content     io.Reader
}

// PasswordChangeInput carries the three password fields the endpoint expects.
type PasswordChangeInput struct {
	CurrentPassword string
	NewPassword     string
	Confirmation    string
}

// MonthlySummaryInput selects the month range, already formatted as YYYY-MM.
type MonthlySummaryInput struct {
	StartMonth string
	EndMonth   string
}

// MonthlySummaryItem is one raw point of the monthly summary. Orders arrives
// as a currency-formatted string and is parsed by the dashboard service.
type MonthlySummaryItem struct {
	Month  string
	Orders string
}

// TopStoreItem is one raw entry of the top-stores summary; Amount is a
// currency-formatted string.
type TopStoreItem struct {
	Name   string
	Amount string
}

// CouponCreateInput carries all fields of a new coupon; all are required.
type CouponCreateInput struct {
	Code      string
	Name      string
	StartDate string
	EndDate   string
}

// CouponUpdateInput carries the only mutable coupon fields.
type CouponUpdateInput struct {
	StartDate string
	EndDate   string
}

// ExportFile is a server-formatted bulk download.
type ExportFile struct {
	Filename string
	Content  []byte
}

// ListOrdersInput carries the order list query. Pagination, sorting, and the
// date range are fixed by the caller; SearchQuery is the optional
// invoice-number substring filter.
type ListOrdersInput struct {
	Page        int
	PerPage     int
	SearchQuery string
}

// OrdersPage is a server-computed page of orders. LastPage comes from the
// response and is never recomputed locally.
type OrdersPage struct {
	Items    []domain.OrderSummary
	Page     int
	LastPage int
}

// Gateway is the remote dashboard API. Every data operation the application
// performs goes through here; implementations attach the bearer token when
// one is supplied and never retry.
type Gateway interface {
	Login(ctx context.Context, in LoginInput) (*LoginResult, error)
	LoginLegacy(ctx context.Context, in LegacyLoginInput) (*LoginResult, error)

	Profile(ctx context.Context, token string) (*domain.Profile, error)
	UpdateProfile(ctx context.Context, token string, in ProfileUpdateInput) error
	ChangePassword(ctx context.Context, token string, in PasswordChangeInput) error

	MonthlyOrderSummary(ctx context.Context, token string, in MonthlySummaryInput) ([]MonthlySummaryItem, error)
	TopStores(ctx context.Context, token string) ([]TopStoreItem, error)

	ListCoupons(ctx context.Context, token string) ([]domain.Coupon, error)
	CreateCoupon(ctx context.Context, token string, in CouponCreateInput) error
	UpdateCoupon(ctx context.Context, token string, code string, in CouponUpdateInput) error
	CouponDetail(ctx context.Context, token string, code string) (*domain.Coupon, error)
	ExportCoupons(ctx context.Context, token string) (*ExportFile, error)

	ListOrders(ctx context.Context, token string, in ListOrdersInput) (*OrdersPage, error)
	OrderDetail(ctx context.Context, token string, invoiceNo string) (*domain.OrderDetail, error)
}
