package service

import (
	"sync"

	"github.com/glowmart/storefront/internal/core/domain"
)

// CartService holds the in-memory line items for the current visitor.
// The cart is not persisted: a restart empties it. Lines keep insertion
// order and are keyed by product id.
type CartService struct {
	mu     sync.Mutex
	items  []domain.CartItem
	coupon *domain.CouponSnapshot
}

func NewCart() *CartService {
	return &CartService{}
}

// Add puts a product in the cart, or bumps its quantity by one if the
// same product is already there.
func (s *CartService) Add(p domain.Product) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, it := range s.items {
		if it.ProductID == p.ProductID {
			s.items[i].Qty++
			return
		}
	}
	s.items = append(s.items, domain.CartItem{
		ProductID: p.ProductID,
		Name:      p.Title,
		Price:     p.Price,
		Qty:       1,
	})
}

// UpdateQty sets a line's quantity. Zero or negative removes the line,
// so no line ever carries a non-positive quantity.
func (s *CartService) UpdateQty(productID string, qty int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, it := range s.items {
		if it.ProductID != productID {
			continue
		}
		if qty <= 0 {
			s.items = append(s.items[:i], s.items[i+1:]...)
		} else {
			s.items[i].Qty = qty
		}
		return
	}
}

func (s *CartService) Remove(productID string) {
	s.UpdateQty(productID, 0)
}

// Items returns a copy of the current lines.
func (s *CartService) Items() []domain.CartItem {
	s.mu.Lock()
	defer s.mu.Unlock()

	items := make([]domain.CartItem, len(s.items))
	copy(items, s.items)
	return items
}

func (s *CartService) ApplyCoupon(snap domain.CouponSnapshot) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.coupon = &snap
}

func (s *CartService) RemoveCoupon() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.coupon = nil
}

func (s *CartService) Coupon() (domain.CouponSnapshot, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.coupon == nil {
		return domain.CouponSnapshot{}, false
	}
	return *s.coupon, true
}

// Totals computes subtotal, coupon discount and total. Shipping is not
// the cart's concern; checkout adds it.
func (s *CartService) Totals() domain.CartTotals {
	s.mu.Lock()
	defer s.mu.Unlock()

	var t domain.CartTotals
	for _, it := range s.items {
		t.Subtotal += it.Price * float64(it.Qty)
	}
	if s.coupon != nil {
		t.Discount = s.coupon.Discount(t.Subtotal)
	}
	t.Total = t.Subtotal - t.Discount
	return t
}

// Clear empties the cart, applied coupon included.
func (s *CartService) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.items = nil
	s.coupon = nil
}
