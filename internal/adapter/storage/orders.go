package storage

import (
	"context"
	"fmt"
	"time"

	"github.com/glowmart/storefront/internal/core/domain"
	"github.com/glowmart/storefront/internal/core/port"
	"github.com/glowmart/storefront/pkg/schema"
)

type OrdersRepository struct {
	db  DB
	bus port.ChangePublisher
}

func NewOrdersRepository(db DB, bus port.ChangePublisher) OrdersRepository {
	return OrdersRepository{db, bus}
}

func (r OrdersRepository) LoadOrders(
	ctx context.Context,
) ([]domain.Order, error) {
	const op = "OrdersRepository.LoadOrders"

	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	wire, _ := loadList[schema.OrderV1](r.db, domain.CollectionOrders)

	now := time.Now()
	os := make([]domain.Order, 0, len(wire))
	for _, w := range wire {
		os = append(os, toDomainOrder(w, now))
	}
	return os, nil
}

func (r OrdersRepository) StoreOrders(
	ctx context.Context, os []domain.Order,
) error {
	const op = "OrdersRepository.StoreOrders"

	if err := ctx.Err(); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	wire := make([]schema.OrderV1, 0, len(os))
	for _, o := range os {
		wire = append(wire, toWireOrder(o))
	}

	storeList(r.db, r.bus, domain.CollectionOrders, wire)
	return nil
}

func toDomainOrder(w schema.OrderV1, now time.Time) domain.Order {
	o := domain.Order{
		OrderID:       w.CanonicalID(),
		CustomerName:  w.CustomerName,
		CustomerEmail: w.CustomerEmail,
		CustomerPhone: w.CustomerPhone,
		Address:       w.Address,
		Subtotal:      float64(w.Subtotal),
		Discount:      float64(w.Discount),
		Shipping:      float64(w.Shipping),
		Total:         float64(w.Total),
		Payment:       domain.PaymentMethod(w.Payment),
		Status:        domain.OrderStatus(w.Status),
		CreatedAt:     w.CreatedAt.TimeOrNow(now),
		UpdatedAt:     w.UpdatedAt.TimeOrNow(now),
	}

	o.Items = make([]domain.OrderItem, 0, len(w.Items))
	for _, it := range w.Items {
		o.Items = append(o.Items, domain.OrderItem{
			ProductID: it.ID,
			Name:      it.Name,
			Price:     float64(it.Price),
			Qty:       int(it.Qty),
		})
	}

	if w.Coupon != nil {
		o.Coupon = &domain.CouponSnapshot{
			Code:  w.Coupon.Code,
			Type:  domain.CouponType(w.Coupon.Type),
			Value: float64(w.Coupon.Value),
		}
	}
	return o
}

func toWireOrder(o domain.Order) schema.OrderV1 {
	w := schema.OrderV1{
		ID:            o.OrderID,
		CustomerName:  o.CustomerName,
		CustomerEmail: o.CustomerEmail,
		CustomerPhone: o.CustomerPhone,
		Address:       o.Address,
		Subtotal:      schema.Number(o.Subtotal),
		Discount:      schema.Number(o.Discount),
		Shipping:      schema.Number(o.Shipping),
		Total:         schema.Number(o.Total),
		Payment:       string(o.Payment),
		Status:        string(o.Status),
		CreatedAt:     schema.MillisOf(o.CreatedAt),
		UpdatedAt:     schema.MillisOf(o.UpdatedAt),
	}

	w.Items = make([]schema.OrderItemV1, 0, len(o.Items))
	for _, it := range o.Items {
		w.Items = append(w.Items, schema.OrderItemV1{
			ID:    it.ProductID,
			Name:  it.Name,
			Price: schema.Number(it.Price),
			Qty:   schema.Number(it.Qty),
		})
	}

	if o.Coupon != nil {
		w.Coupon = &schema.CouponSnapshotV1{
			Code:  o.Coupon.Code,
			Type:  string(o.Coupon.Type),
			Value: schema.Number(o.Coupon.Value),
		}
	}
	return w
}
