package domain

// MonthlyOrders is one point of the monthly order summary, with the
// currency-formatted count already parsed to a number.
type MonthlyOrders struct {
	Month  string
	Orders float64
}

// TopStore is one bar of the top-stores summary.
type TopStore struct {
	Name   string
	Amount float64
}
