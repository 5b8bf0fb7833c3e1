package upstream

import (
	"context"
	"net/http"
	"net/url"
	"strconv"

	"github.com/dibuiltadi/dashboard-web/internal/core/domain"
	"github.com/dibuiltadi/dashboard-web/internal/core/ports"
)

// Endpoint paths on the backend origin.
const (
	pathLoginLegacy   = "/login"
	pathLogin         = "/api/dashboard/common/v1/auth/login"
	pathProfile       = "/api/dashboard/common/v1/auth/profile"
	pathPassword      = "/api/dashboard/common/v1/auth/password"
	pathMonthlyOrders = "/api/dashboard/common/v1/summaries/orders/monthly"
	pathTopStores     = "/api/dashboard/common/v1/summaries/top/stores"
	pathCouponList    = "/api/dashboard/common/v1/lists/coupons"
	pathCoupons       = "/api/dashboard/customer-service/v1/coupons"
	pathCouponExport  = "/api/dashboard/customer-service/v1/coupons/export"
	pathOrders        = "/api/dashboard/customer-service/v1/orders"
)

// The order list always requests this range; narrowing happens through the
// invoice-number search, not the dates.
const (
	orderStartDate = "2022-01-01"
	orderEndDate   = "2024-12-31"
)

// exportFilename is the download name when the server does not suggest one.
const exportFilename = "coupons_export.txt"

var _ ports.Gateway = (*Client)(nil)

func (c *Client) Login(ctx context.Context, in ports.LoginInput) (*ports.LoginResult, error) {
	res, err := c.do(ctx, request{
		method:   http.MethodPost,
		path:     pathLogin,
		endpoint: "auth.login",
		body: map[string]string{
			"phone":    in.Phone,
			"password": in.Password,
		},
	})
	if err != nil {
		return nil, err
	}

	var payload struct {
		AccessToken string `json:"access_token"`
	}
	if err := decode(res, &payload); err != nil {
		return nil, err
	}
	return &ports.LoginResult{AccessToken: payload.AccessToken}, nil
}

func (c *Client) LoginLegacy(ctx context.Context, in ports.LegacyLoginInput) (*ports.LoginResult, error) {
	res, err := c.do(ctx, request{
		method:   http.MethodPost,
		path:     pathLoginLegacy,
		endpoint: "auth.login_legacy",
		body: map[string]string{
			"username": in.Username,
			"password": in.Password,
		},
	})
	if err != nil {
		return nil, err
	}

	var payload struct {
		AccessToken string `json:"access_token"`
	}
	if err := decode(res, &payload); err != nil {
		return nil, err
	}
	return &ports.LoginResult{AccessToken: payload.AccessToken}, nil
}

func (c *Client) Profile(ctx context.Context, token string) (*domain.Profile, error) {
	res, err := c.do(ctx, request{
		method:   http.MethodGet,
		path:     pathProfile,
		endpoint: "auth.profile",
		token:    token,
	})
	if err != nil {
		return nil, err
	}

	var payload struct {
		Name         string `json:"name"`
		Phone        string `json:"phone"`
		ProfileImage string `json:"profile_image"`
		RoleName     string `json:"role_name"`
	}
	if err := decode(res, &payload); err != nil {
		return nil, err
	}
	return &domain.Profile{
		Name:         payload.Name,
		Phone:        payload.Phone,
		ProfileImage: payload.ProfileImage,
		RoleName:     payload.RoleName,
	}, nil
}

func (c *Client) UpdateProfile(ctx context.Context, token string, in ports.ProfileUpdateInput) error {
	req := request{
		method:   http.MethodPost,
		path:     pathProfile,
		endpoint: "auth.profile_update",
		token:    token,
		fields:   map[string]string{"name": in.Name},
	}
	if in.Image != nil {
		req.file = &multipartFile{
			field:       "profile_image",
			filename:    in.Image.Filename,
			contentType: in.Image.ContentType,
			content:     in.Image.Content,
		}
	}
	_, err := c.do(ctx, req)
	return err
}

func (c *Client) ChangePassword(ctx context.Context, token string, in ports.PasswordChangeInput) error {
	_, err := c.do(ctx, request{
		method:   http.MethodPut,
		path:     pathPassword,
		endpoint: "auth.password",
		token:    token,
		body: map[string]string{
			"current_password":          in.CurrentPassword,
			"new_password":              in.NewPassword,
			"new_password_confirmation": in.Confirmation,
		},
	})
	return err
}

func (c *Client) MonthlyOrderSummary(ctx context.Context, token string, in ports.MonthlySummaryInput) ([]ports.MonthlySummaryItem, error) {
	res, err := c.do(ctx, request{
		method:   http.MethodGet,
		path:     pathMonthlyOrders,
		endpoint: "summaries.monthly_orders",
		token:    token,
		query: url.Values{
			"start_month": {in.StartMonth},
			"end_month":   {in.EndMonth},
		},
	})
	if err != nil {
		return nil, err
	}

	var payload struct {
		Items []struct {
			Month  string `json:"month"`
			Orders string `json:"orders"`
		} `json:"items"`
	}
	if err := decode(res, &payload); err != nil {
		return nil, err
	}

	items := make([]ports.MonthlySummaryItem, len(payload.Items))
	for i, item := range payload.Items {
		items[i] = ports.MonthlySummaryItem{Month: item.Month, Orders: item.Orders}
	}
	return items, nil
}

func (c *Client) TopStores(ctx context.Context, token string) ([]ports.TopStoreItem, error) {
	res, err := c.do(ctx, request{
		method:   http.MethodGet,
		path:     pathTopStores,
		endpoint: "summaries.top_stores",
		token:    token,
	})
	if err != nil {
		return nil, err
	}

	var payload struct {
		Items []struct {
			Name   string `json:"name"`
			Amount string `json:"amount"`
		} `json:"items"`
	}
	if err := decode(res, &payload); err != nil {
		return nil, err
	}

	items := make([]ports.TopStoreItem, len(payload.Items))
	for i, item := range payload.Items {
		items[i] = ports.TopStoreItem{Name: item.Name, Amount: item.Amount}
	}
	return items, nil
}

func (c *Client) ListCoupons(ctx context.Context, token string) ([]domain.Coupon, error) {
	// The list endpoint takes no paging parameters; the whole set comes back
	// in one response and pagination happens locally.
	res, err := c.do(ctx, request{
		method:   http.MethodGet,
		path:     pathCouponList,
		endpoint: "coupons.list",
		token:    token,
	})
	if err != nil {
		return nil, err
	}

	var payload struct {
		Items []couponPayload `json:"items"`
	}
	if err := decode(res, &payload); err != nil {
		return nil, err
	}

	coupons := make([]domain.Coupon, len(payload.Items))
	for i, item := range payload.Items {
		coupons[i] = item.toDomain()
	}
	return coupons, nil
}

func (c *Client) CreateCoupon(ctx context.Context, token string, in ports.CouponCreateInput) error {
	_, err := c.do(ctx, request{
		method:   http.MethodPost,
		path:     pathCoupons,
		endpoint: "coupons.create",
		token:    token,
		body: map[string]string{
			"code":       in.Code,
			"name":       in.Name,
			"start_date": in.StartDate,
			"end_date":   in.EndDate,
		},
	})
	return err
}

func (c *Client) UpdateCoupon(ctx context.Context, token, code string, in ports.CouponUpdateInput) error {
	_, err := c.do(ctx, request{
		method:   http.MethodPut,
		path:     pathCoupons + "/" + url.PathEscape(code),
		endpoint: "coupons.update",
		token:    token,
		body: map[string]string{
			"start_date": in.StartDate,
			"end_date":   in.EndDate,
		},
	})
	return err
}

func (c *Client) CouponDetail(ctx context.Context, token, code string) (*domain.Coupon, error) {
	res, err := c.do(ctx, request{
		method:   http.MethodGet,
		path:     pathCoupons + "/" + url.PathEscape(code),
		endpoint: "coupons.detail",
		token:    token,
	})
	if err != nil {
		return nil, err
	}

	var payload couponPayload
	if err := decode(res, &payload); err != nil {
		return nil, err
	}
	coupon := payload.toDomain()
	return &coupon, nil
}

func (c *Client) ExportCoupons(ctx context.Context, token string) (*ports.ExportFile, error) {
	res, err := c.do(ctx, request{
		method:   http.MethodGet,
		path:     pathCouponExport,
		endpoint: "coupons.export",
		token:    token,
		query: url.Values{
			"sort_by":        {"name"},
			"sort_direction": {"asc"},
			"search_by":      {"name"},
			"search_query":   {""},
		},
		binary: true,
	})
	if err != nil {
		return nil, err
	}

	name := res.Filename
	if name == "" {
		name = exportFilename
	}
	return &ports.ExportFile{Filename: name, Content: res.Raw}, nil
}

func (c *Client) ListOrders(ctx context.Context, token string, in ports.ListOrdersInput) (*ports.OrdersPage, error) {
	res, err := c.do(ctx, request{
		method:   http.MethodGet,
		path:     pathOrders,
		endpoint: "orders.list",
		token:    token,
		query: url.Values{
			"page":           {strconv.Itoa(in.Page)},
			"per_page":       {strconv.Itoa(in.PerPage)},
			"sort_by":        {"created_at"},
			"sort_direction": {"desc"},
			"start_date":     {orderStartDate},
			"end_date":       {orderEndDate},
			"buyer_phone":    {""},
			"store_code":     {""},
			"coupon_code":    {""},
			"search_by":      {"invoice_no"},
			"search_query":   {in.SearchQuery},
		},
	})
	if err != nil {
		return nil, err
	}

	var payload struct {
		Items    []orderPayload `json:"items"`
		LastPage int            `json:"last_page"`
	}
	if err := decode(res, &payload); err != nil {
		return nil, err
	}

	items := make([]domain.OrderSummary, len(payload.Items))
	for i, item := range payload.Items {
		items[i] = item.toSummary()
	}
	return &ports.OrdersPage{Items: items, Page: in.Page, LastPage: payload.LastPage}, nil
}

func (c *Client) OrderDetail(ctx context.Context, token, invoiceNo string) (*domain.OrderDetail, error) {
	res, err := c.do(ctx, request{
		method:   http.MethodGet,
		path:     pathOrders + "/" + url.PathEscape(invoiceNo),
		endpoint: "orders.detail",
		token:    token,
	})
	if err != nil {
		return nil, err
	}

	var payload orderPayload
	if err := decode(res, &payload); err != nil {
		return nil, err
	}

	detail := &domain.OrderDetail{OrderSummary: payload.toSummary()}
	detail.Items = make([]domain.OrderItem, len(payload.Items))
	for i, item := range payload.Items {
		detail.Items[i] = domain.OrderItem{
			ProductName: item.Product.Name,
			TotalPrice:  item.TotalPrice,
			Qty:         item.Qty,
		}
	}
	return detail, nil
}

// --- Wire payloads ---

type couponPayload struct {
	Code      string `json:"code"`
	Name      string `json:"name"`
	StartDate string `json:"start_date"`
	EndDate   string `json:"end_date"`
}

func (p couponPayload) toDomain() domain.Coupon {
	return domain.Coupon{
		Code:      p.Code,
		Name:      p.Name,
		StartDate: p.StartDate,
		EndDate:   p.EndDate,
	}
}

type orderItemPayload struct {
	Product struct {
		Name string `json:"name"`
	} `json:"product"`
	TotalPrice float64 `json:"total_price"`
	Qty        int     `json:"qty"`
}

type orderPayload struct {
	InvoiceNo  string  `json:"invoice_no"`
	GrandTotal float64 `json:"grandtotal"`
	CreatedAt  string  `json:"created_at"`
	Buyer      struct {
		Name  string `json:"name"`
		Phone string `json:"phone"`
	} `json:"buyer"`
	Store struct {
		Name     string `json:"name"`
		City     string `json:"city"`
		Province string `json:"province"`
	} `json:"store"`
	Coupon struct {
		Name string `json:"name"`
	} `json:"coupon"`
	Items []orderItemPayload `json:"items"`
}

func (p orderPayload) toSummary() domain.OrderSummary {
	return domain.OrderSummary{
		InvoiceNo:  p.InvoiceNo,
		GrandTotal: p.GrandTotal,
		CreatedAt:  p.CreatedAt,
		Buyer:      domain.Buyer{Name: p.Buyer.Name, Phone: p.Buyer.Phone},
		Store: domain.Store{
			Name:     p.Store.Name,
			City:     p.Store.City,
			Province: p.Store.Province,
		},
		Coupon: domain.CouponRef{Name: p.Coupon.Name},
	}
}
