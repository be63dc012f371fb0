package schema

import "errors"

// DefaultStock is substituted when a stored product has no stock field.
const DefaultStock = 999

type ProductV1 struct {
	ID          string  `json:"id"`
	Title       string  `json:"title"`
	Slug        string  `json:"slug,omitempty"`
	Category    string  `json:"category,omitempty"`
	Image       string  `json:"image,omitempty"`
	Description string  `json:"description,omitempty"`
	Price       Number  `json:"price"`
	Stock       *Number `json:"stock,omitempty"`
	CreatedAt   Millis  `json:"createdAt"`
}

func (p ProductV1) Validate() error {
	if p.ID == "" {
		return errors.New("product: missing id")
	}
	if p.Title == "" {
		return errors.New("product: missing title")
	}
	if p.Price <= 0 {
		return errors.New("product: price must be positive")
	}
	if p.Stock != nil && *p.Stock < 0 {
		return errors.New("product: negative stock")
	}
	return nil
}

// StockOrDefault resolves an absent stock field to DefaultStock.
func (p ProductV1) StockOrDefault() int {
	if p.Stock == nil {
		return DefaultStock
	}
	return int(*p.Stock)
}
