package domain

// CartItem is an in-memory line item keyed by product id.
// The cart itself is not persisted across restarts.
type CartItem struct {
	ProductID string
	Name      string
	Price     float64
	Qty       int
}

type CartTotals struct {
	Subtotal float64
	Discount float64
	Total    float64
}
