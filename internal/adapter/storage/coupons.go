package storage

import (
	"context"
	"fmt"
	"time"

	"github.com/glowmart/storefront/internal/core/domain"
	"github.com/glowmart/storefront/internal/core/port"
	"github.com/glowmart/storefront/pkg/schema"
)

type CouponsRepository struct {
	db  DB
	bus port.ChangePublisher
}

func NewCouponsRepository(db DB, bus port.ChangePublisher) CouponsRepository {
	return CouponsRepository{db, bus}
}

func (r CouponsRepository) LoadCoupons(
	ctx context.Context,
) ([]domain.Coupon, error) {
	const op = "CouponsRepository.LoadCoupons"

	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	wire, _ := loadList[schema.CouponV1](r.db, domain.CollectionCoupons)

	now := time.Now()
	cs := make([]domain.Coupon, 0, len(wire))
	for _, w := range wire {
		cs = append(cs, domain.Coupon{
			CouponID:  w.ID,
			Title:     w.Title,
			Code:      w.Code,
			Type:      domain.CouponType(w.Type),
			Value:     float64(w.Value),
			Active:    bool(w.Active),
			ExpiresAt: w.ExpiresAt.Time(),
			CreatedAt: w.CreatedAt.TimeOrNow(now),
		})
	}
	return cs, nil
}

func (r CouponsRepository) StoreCoupons(
	ctx context.Context, cs []domain.Coupon,
) error {
	const op = "CouponsRepository.StoreCoupons"

	if err := ctx.Err(); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	wire := make([]schema.CouponV1, 0, len(cs))
	for _, c := range cs {
		wire = append(wire, schema.CouponV1{
			ID:        c.CouponID,
			Title:     c.Title,
			Code:      c.Code,
			Type:      string(c.Type),
			Value:     schema.Number(c.Value),
			Active:    schema.Flag(c.Active),
			ExpiresAt: schema.MillisOf(c.ExpiresAt),
			CreatedAt: schema.MillisOf(c.CreatedAt),
		})
	}

	storeList(r.db, r.bus, domain.CollectionCoupons, wire)
	return nil
}

// WheelCouponsRepository stores the per-user single coupon slot won on
// the spin wheel, keyed by normalized email.
type WheelCouponsRepository struct {
	db DB
}

func NewWheelCouponsRepository(db DB) WheelCouponsRepository {
	return WheelCouponsRepository{db}
}

const wheelCouponKind = "wheel-coupon"

func (r WheelCouponsRepository) LoadWheelCoupon(
	ctx context.Context, email string,
) (domain.WheelCoupon, bool, error) {
	const op = "WheelCouponsRepository.LoadWheelCoupon"

	if err := ctx.Err(); err != nil {
		return domain.WheelCoupon{}, false, fmt.Errorf("%s: %w", op, err)
	}

	w, ok := loadRecord[schema.WheelCouponV1](r.db, userKey(wheelCouponKind, email))
	if !ok {
		return domain.WheelCoupon{}, false, nil
	}

	return domain.WheelCoupon{
		CouponID:  w.ID,
		Title:     w.Title,
		Code:      w.Code,
		Type:      domain.CouponType(w.Kind),
		Value:     float64(w.Value),
		Used:      bool(w.Used),
		ExpiresAt: w.ExpiresAt.Time(),
		CreatedAt: w.CreatedAt.TimeOrNow(time.Now()),
	}, true, nil
}

func (r WheelCouponsRepository) StoreWheelCoupon(
	ctx context.Context, email string, c domain.WheelCoupon,
) error {
	const op = "WheelCouponsRepository.StoreWheelCoupon"

	if err := ctx.Err(); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	w := schema.WheelCouponV1{
		ID:        c.CouponID,
		Title:     c.Title,
		Code:      c.Code,
		Kind:      string(c.Type),
		Value:     schema.Number(c.Value),
		Used:      schema.Flag(c.Used),
		ExpiresAt: schema.MillisOf(c.ExpiresAt),
		CreatedAt: schema.MillisOf(c.CreatedAt),
	}

	if err := storeRecord(r.db, userKey(wheelCouponKind, email), w); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}

func (r WheelCouponsRepository) ClearWheelCoupon(
	ctx context.Context, email string,
) error {
	const op = "WheelCouponsRepository.ClearWheelCoupon"

	if err := ctx.Err(); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	if err := r.db.Delete(userKey(wheelCouponKind, email)); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}
