package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/glowmart/storefront/internal/core/domain"
	"github.com/glowmart/storefront/internal/core/port"
	"github.com/google/uuid"
)

// CouponsService owns the admin coupon collection and the per-user wheel
// coupon slot, and resolves codes into snapshots for the cart.
type CouponsService struct {
	coupons port.CouponsStorage
	wheel   port.WheelCouponStorage
}

func NewCoupons(
	coupons port.CouponsStorage, wheel port.WheelCouponStorage,
) CouponsService {
	return CouponsService{coupons, wheel}
}

func (s CouponsService) List(ctx context.Context) ([]domain.Coupon, error) {
	const op = "CouponsService.List"

	cs, err := s.coupons.LoadCoupons(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return cs, nil
}

// Create persists a new admin coupon. Codes are uppercased on write and
// must be unique case-insensitively.
func (s CouponsService) Create(
	ctx context.Context, c domain.Coupon,
) (domain.Coupon, error) {
	const op = "CouponsService.Create"

	c.Code = strings.ToUpper(strings.TrimSpace(c.Code))
	if c.Code == "" {
		return domain.Coupon{}, fmt.Errorf("%s: code: %w", op, domain.ErrMissingField)
	}
	if c.Type != domain.CouponPercent && c.Type != domain.CouponFixed {
		return domain.Coupon{}, fmt.Errorf("%s: unknown coupon type %q", op, c.Type)
	}
	if c.Value <= 0 {
		return domain.Coupon{}, fmt.Errorf("%s: value must be positive: %w",
			op, domain.ErrMissingField)
	}

	cs, err := s.coupons.LoadCoupons(ctx)
	if err != nil {
		return domain.Coupon{}, fmt.Errorf("%s: %w", op, err)
	}

	for _, existing := range cs {
		if strings.EqualFold(existing.Code, c.Code) {
			return domain.Coupon{}, fmt.Errorf("%s: %w", op, domain.ErrCodeTaken)
		}
	}

	c.CouponID = uuid.NewString()
	c.CreatedAt = time.Now()

	cs = append(cs, c)
	if err := s.coupons.StoreCoupons(ctx, cs); err != nil {
		return domain.Coupon{}, fmt.Errorf("%s: %w", op, err)
	}
	return c, nil
}

func (s CouponsService) Update(ctx context.Context, c domain.Coupon) error {
	const op = "CouponsService.Update"

	c.Code = strings.ToUpper(strings.TrimSpace(c.Code))
	if c.Code == "" {
		return fmt.Errorf("%s: code: %w", op, domain.ErrMissingField)
	}
	if c.Value <= 0 {
		return fmt.Errorf("%s: value must be positive: %w", op, domain.ErrMissingField)
	}

	cs, err := s.coupons.LoadCoupons(ctx)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	for _, existing := range cs {
		if existing.CouponID != c.CouponID &&
			strings.EqualFold(existing.Code, c.Code) {
			return fmt.Errorf("%s: %w", op, domain.ErrCodeTaken)
		}
	}

	for i, existing := range cs {
		if existing.CouponID == c.CouponID {
			c.CreatedAt = existing.CreatedAt
			cs[i] = c
			if err := s.coupons.StoreCoupons(ctx, cs); err != nil {
				return fmt.Errorf("%s: %w", op, err)
			}
			return nil
		}
	}
	return fmt.Errorf("%s: %w", op, domain.ErrNotFound)
}

func (s CouponsService) Toggle(ctx context.Context, couponID string) error {
	const op = "CouponsService.Toggle"

	cs, err := s.coupons.LoadCoupons(ctx)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	for i, c := range cs {
		if c.CouponID == couponID {
			cs[i].Active = !c.Active
			if err := s.coupons.StoreCoupons(ctx, cs); err != nil {
				return fmt.Errorf("%s: %w", op, err)
			}
			return nil
		}
	}
	return fmt.Errorf("%s: %w", op, domain.ErrNotFound)
}

func (s CouponsService) Delete(ctx context.Context, couponID string) error {
	const op = "CouponsService.Delete"

	cs, err := s.coupons.LoadCoupons(ctx)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	for i, c := range cs {
		if c.CouponID == couponID {
			cs = append(cs[:i], cs[i+1:]...)
			if err := s.coupons.StoreCoupons(ctx, cs); err != nil {
				return fmt.Errorf("%s: %w", op, err)
			}
			return nil
		}
	}
	return fmt.Errorf("%s: %w", op, domain.ErrNotFound)
}

// Redeem resolves a code into a coupon snapshot, checking the admin
// collection first (active and unexpired), then the user's wheel slot
// (unused and unexpired). Everything else is ErrCouponInvalid.
func (s CouponsService) Redeem(
	ctx context.Context, email, code string, now time.Time,
) (domain.CouponSnapshot, error) {
	const op = "CouponsService.Redeem"

	code = strings.ToUpper(strings.TrimSpace(code))
	if code == "" {
		return domain.CouponSnapshot{}, fmt.Errorf("%s: %w", op, domain.ErrCouponInvalid)
	}

	cs, err := s.coupons.LoadCoupons(ctx)
	if err != nil {
		return domain.CouponSnapshot{}, fmt.Errorf("%s: %w", op, err)
	}

	for _, c := range cs {
		if strings.EqualFold(c.Code, code) {
			if !c.Active || c.Expired(now) {
				return domain.CouponSnapshot{}, fmt.Errorf("%s: %w", op, domain.ErrCouponInvalid)
			}
			return domain.CouponSnapshot{
				Code: c.Code, Type: c.Type, Value: c.Value,
			}, nil
		}
	}

	if email != "" {
		wc, ok, err := s.wheel.LoadWheelCoupon(ctx, email)
		if err != nil {
			return domain.CouponSnapshot{}, fmt.Errorf("%s: %w", op, err)
		}
		if ok && strings.EqualFold(wc.Code, code) && !wc.Used && !wc.Expired(now) {
			return domain.CouponSnapshot{
				Code: wc.Code, Type: wc.Type, Value: wc.Value,
			}, nil
		}
	}

	return domain.CouponSnapshot{}, fmt.Errorf("%s: %w", op, domain.ErrCouponInvalid)
}

// ConsumeWheelCoupon marks the user's wheel slot used when its code was
// spent at checkout. Best-effort: a missing slot is not an error.
func (s CouponsService) ConsumeWheelCoupon(
	ctx context.Context, email, code string,
) error {
	const op = "CouponsService.ConsumeWheelCoupon"

	if email == "" || code == "" {
		return nil
	}

	wc, ok, err := s.wheel.LoadWheelCoupon(ctx, email)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	if !ok || !strings.EqualFold(wc.Code, code) {
		return nil
	}

	wc.Used = true
	if err := s.wheel.StoreWheelCoupon(ctx, email, wc); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}
