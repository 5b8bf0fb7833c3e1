package domain

// Buyer identifies who placed an order.
type Buyer struct {
	Name  string
	Phone string
}

// Store identifies where an order was placed.
type Store struct {
	Name     string
	City     string
	Province string
}

// CouponRef is the coupon applied to an order, by name only.
type CouponRef struct {
	Name string
}

// OrderSummary is one row of the order list.
type OrderSummary struct {
	InvoiceNo  string
	GrandTotal float64
	CreatedAt  string
	Buyer      Buyer
	Store      Store
	Coupon     CouponRef
}

// OrderItem is a single line item of an order.
type OrderItem struct {
	ProductName string
	TotalPrice  float64
	Qty         int
}

// OrderDetail is the full single-order view. Orders are read-only from this
// system's perspective.
type OrderDetail struct {
	OrderSummary
	Items []OrderItem
}

// OrdersPerPage is the fixed page size sent to the order list endpoint.
const OrdersPerPage = 10
