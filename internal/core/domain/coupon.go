package domain

// Coupon is a discount coupon. Code is the immutable identifier; only the
// date range may change after creation.
type Coupon struct {
	Code      string
	Name      string
	StartDate string
	EndDate   string
}

// CouponsPerPage is the fixed page size for the locally paginated list.
const CouponsPerPage = 10

// CouponPage is one locally sliced page of the full coupon list.
type CouponPage struct {
	Items      []Coupon
	Page       int
	TotalPages int
	Total      int
}

// PaginateCoupons slices the full list into fixed-size pages. The page count
// is ceil(len(all)/CouponsPerPage); every page holds CouponsPerPage coupons
// except possibly the last. An out-of-range page is clamped into range.
func PaginateCoupons(all []Coupon, page int) CouponPage {
	total := len(all)
	totalPages := (total + CouponsPerPage - 1) / CouponsPerPage

	if page < 1 {
		page = 1
	}
	if totalPages > 0 && page > totalPages {
		page = totalPages
	}

	start := (page - 1) * CouponsPerPage
	end := start + CouponsPerPage
	if start > total {
		start = total
	}
	if end > total {
		end = total
	}

	return CouponPage{
		Items:      all[start:end],
		Page:       page,
		TotalPages: totalPages,
		Total:      total,
	}
}
