package service

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/glowmart/storefront/internal/core/domain"
	"github.com/glowmart/storefront/internal/core/port"
)

// OrdersService is the admin view over the orders collection. Orders are
// created only by checkout; here they are listed, re-statused or removed.
type OrdersService struct {
	orders port.OrdersStorage
}

func NewOrders(orders port.OrdersStorage) OrdersService {
	return OrdersService{orders}
}

func (s OrdersService) List(ctx context.Context) ([]domain.Order, error) {
	const op = "OrdersService.List"

	os, err := s.orders.LoadOrders(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	sort.SliceStable(os, func(i, j int) bool {
		return os[i].CreatedAt.After(os[j].CreatedAt)
	})
	return os, nil
}

func (s OrdersService) UpdateStatus(
	ctx context.Context, orderID string, status domain.OrderStatus,
) error {
	const op = "OrdersService.UpdateStatus"

	if !status.Valid() {
		return fmt.Errorf("%s: unknown status %q", op, status)
	}

	os, err := s.orders.LoadOrders(ctx)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	for i, o := range os {
		if o.OrderID == orderID {
			os[i].Status = status
			os[i].UpdatedAt = time.Now()
			if err := s.orders.StoreOrders(ctx, os); err != nil {
				return fmt.Errorf("%s: %w", op, err)
			}
			return nil
		}
	}
	return fmt.Errorf("%s: %w", op, domain.ErrNotFound)
}

func (s OrdersService) Delete(ctx context.Context, orderID string) error {
	const op = "OrdersService.Delete"

	os, err := s.orders.LoadOrders(ctx)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	for i, o := range os {
		if o.OrderID == orderID {
			os = append(os[:i], os[i+1:]...)
			if err := s.orders.StoreOrders(ctx, os); err != nil {
				return fmt.Errorf("%s: %w", op, err)
			}
			return nil
		}
	}
	return fmt.Errorf("%s: %w", op, domain.ErrNotFound)
}
