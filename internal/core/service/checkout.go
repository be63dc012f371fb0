package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/glowmart/storefront/internal/core/domain"
	"github.com/glowmart/storefront/internal/core/port"
	"github.com/google/uuid"
)

// ShippingFees are the two fixed delivery tiers.
type ShippingFees struct {
	Local  float64
	Remote float64
}

func (f ShippingFees) For(zone domain.ShippingZone) float64 {
	if zone == domain.ZoneRemote {
		return f.Remote
	}
	return f.Local
}

type CheckoutRequest struct {
	CustomerName  string
	CustomerEmail string
	CustomerPhone string
	Address       string
	Zone          domain.ShippingZone
	Payment       domain.PaymentMethod
}

// CheckoutService commits a cart into an order. It is the one place
// several collections are mutated in a single logical operation: the
// stock check is the only validated failure path, everything after the
// order append is best-effort with no rollback.
type CheckoutService struct {
	products port.ProductsStorage
	orders   port.OrdersStorage
	coupons  CouponsService
	fees     ShippingFees
}

func NewCheckout(
	products port.ProductsStorage,
	orders port.OrdersStorage,
	coupons CouponsService,
	fees ShippingFees,
) CheckoutService {
	return CheckoutService{products, orders, coupons, fees}
}

// PlaceOrder runs the commit sequence: validate delivery fields, verify
// stock against the live product collection, persist the order snapshot,
// decrement stock, clear the cart. Rejection happens before anything is
// persisted.
func (s CheckoutService) PlaceOrder(
	ctx context.Context, cart *CartService, req CheckoutRequest,
) (domain.Order, error) {
	const op = "CheckoutService.PlaceOrder"
	log := slog.With("op", op)

	if err := validateDelivery(req); err != nil {
		return domain.Order{}, fmt.Errorf("%s: %w", op, err)
	}

	items := cart.Items()
	if len(items) == 0 {
		return domain.Order{}, fmt.Errorf("%s: %w", op, domain.ErrEmptyCart)
	}

	// Re-read live products rather than trusting the cart's cached view.
	products, err := s.products.LoadProducts(ctx)
	if err != nil {
		return domain.Order{}, fmt.Errorf("%s: %w", op, err)
	}

	byID := make(map[string]domain.Product, len(products))
	for _, p := range products {
		byID[p.ProductID] = p
	}

	for _, it := range items {
		if stockErr := checkStock(byID, it); stockErr != nil {
			return domain.Order{}, fmt.Errorf("%s: %w", op, stockErr)
		}
	}

	totals := cart.Totals()
	shipping := s.fees.For(req.Zone)
	now := time.Now()

	snapshot := make([]domain.OrderItem, len(items))
	for i, it := range items {
		snapshot[i] = domain.OrderItem(it)
	}

	order := domain.Order{
		OrderID:       uuid.NewString(),
		CustomerName:  req.CustomerName,
		CustomerEmail: req.CustomerEmail,
		CustomerPhone: req.CustomerPhone,
		Address:       req.Address,
		Items:         snapshot,
		Subtotal:      totals.Subtotal,
		Discount:      totals.Discount,
		Shipping:      shipping,
		Total:         totals.Subtotal - totals.Discount + shipping,
		Payment:       req.Payment,
		Status:        req.Payment.InitialStatus(),
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	if snap, ok := cart.Coupon(); ok {
		order.Coupon = &snap
	}

	orders, err := s.orders.LoadOrders(ctx)
	if err != nil {
		return domain.Order{}, fmt.Errorf("%s: %w", op, err)
	}
	orders = append(orders, order)
	if err := s.orders.StoreOrders(ctx, orders); err != nil {
		return domain.Order{}, fmt.Errorf("%s: %w", op, err)
	}

	// From here on the order exists; stock decrement and cart reset are
	// best-effort.
	sold := make(map[string]int, len(items))
	for _, it := range items {
		sold[it.ProductID] += it.Qty
	}
	for i, p := range products {
		if qty, ok := sold[p.ProductID]; ok {
			products[i].Stock = p.DecrementStock(qty)
		}
	}
	if err := s.products.StoreProducts(ctx, products); err != nil {
		log.Error("failed to persist stock decrement", "err", err)
	}

	if order.Coupon != nil {
		err := s.coupons.ConsumeWheelCoupon(ctx, req.CustomerEmail, order.Coupon.Code)
		if err != nil {
			log.Warn("failed to mark wheel coupon used", "err", err)
		}
	}

	cart.Clear()
	return order, nil
}

func validateDelivery(req CheckoutRequest) error {
	for field, v := range map[string]string{
		"name":    req.CustomerName,
		"phone":   req.CustomerPhone,
		"address": req.Address,
	} {
		if v == "" {
			return fmt.Errorf("%s: %w", field, domain.ErrMissingField)
		}
	}
	return nil
}

func checkStock(byID map[string]domain.Product, it domain.CartItem) error {
	p, ok := byID[it.ProductID]
	if !ok || p.Stock <= 0 {
		return &domain.StockError{
			Kind:      domain.StockOut,
			ProductID: it.ProductID,
			Name:      it.Name,
			Requested: it.Qty,
		}
	}
	if p.Stock < it.Qty {
		return &domain.StockError{
			Kind:      domain.StockInsufficient,
			ProductID: it.ProductID,
			Name:      it.Name,
			Requested: it.Qty,
			Available: p.Stock,
		}
	}
	return nil
}
