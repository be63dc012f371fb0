package domain

import "time"

// DefaultStock marks a product as effectively unlimited.
const DefaultStock = 999

type Product struct {
	ProductID   string
	Title       string
	Slug        string
	Category    string
	Image       string
	Description string
	Price       float64
	Stock       int
	CreatedAt   time.Time
}

// DecrementStock returns the stock left after selling qty units,
// clamped at zero.
func (p Product) DecrementStock(qty int) int {
	left := p.Stock - qty
	if left < 0 {
		return 0
	}
	return left
}
