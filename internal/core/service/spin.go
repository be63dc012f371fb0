package service

import (
	"context"
	"fmt"
	"math/rand/v2"
	"time"

	"github.com/glowmart/storefront/internal/core/domain"
	"github.com/glowmart/storefront/internal/core/port"
	"github.com/google/uuid"
)

// WheelSegment is one slice of the spin wheel. A zero Value means the
// segment wins nothing.
type WheelSegment struct {
	Title string
	Code  string
	Type  domain.CouponType
	Value float64
}

// defaultWheel is the static demo segment list.
var defaultWheel = []WheelSegment{
	{Title: "5% off", Code: "SPIN5", Type: domain.CouponPercent, Value: 5},
	{Title: "Better luck next time"},
	{Title: "10% off", Code: "SPIN10", Type: domain.CouponPercent, Value: 10},
	{Title: "Nothing this time"},
	{Title: "50 off", Code: "SPIN50", Type: domain.CouponFixed, Value: 50},
	{Title: "Almost!"},
}

const wheelCouponTTL = 7 * 24 * time.Hour

// SpinService runs the one-per-user spin wheel. The result is revealed
// after a fixed wall-clock delay that simulates the wheel animation;
// side effects commit only after the delay elapses.
type SpinService struct {
	wheel       port.WheelCouponStorage
	spins       port.SpinStorage
	segments    []WheelSegment
	revealDelay time.Duration
}

func NewSpin(
	wheel port.WheelCouponStorage,
	spins port.SpinStorage,
	revealDelay time.Duration,
) SpinService {
	return SpinService{
		wheel:       wheel,
		spins:       spins,
		segments:    defaultWheel,
		revealDelay: revealDelay,
	}
}

// Spin plays the wheel for a user. The second result reports whether the
// segment won a coupon; a winning coupon replaces the user's slot
// wholesale, so at most one unused wheel coupon exists per user.
func (s SpinService) Spin(
	ctx context.Context, email string,
) (domain.WheelCoupon, WheelSegment, error) {
	const op = "SpinService.Spin"

	if email == "" {
		return domain.WheelCoupon{}, WheelSegment{},
			fmt.Errorf("%s: email: %w", op, domain.ErrMissingField)
	}
	if s.spins.HasSpun(ctx, email) {
		return domain.WheelCoupon{}, WheelSegment{},
			fmt.Errorf("%s: %w", op, domain.ErrAlreadySpun)
	}

	segment := s.segments[rand.IntN(len(s.segments))]

	if err := s.reveal(ctx); err != nil {
		return domain.WheelCoupon{}, WheelSegment{}, fmt.Errorf("%s: %w", op, err)
	}

	if err := s.spins.MarkSpun(ctx, email); err != nil {
		return domain.WheelCoupon{}, WheelSegment{}, fmt.Errorf("%s: %w", op, err)
	}

	if segment.Value <= 0 {
		return domain.WheelCoupon{}, segment, nil
	}

	now := time.Now()
	coupon := domain.WheelCoupon{
		CouponID:  uuid.NewString(),
		Title:     segment.Title,
		Code:      segment.Code,
		Type:      segment.Type,
		Value:     segment.Value,
		ExpiresAt: now.Add(wheelCouponTTL),
		CreatedAt: now,
	}
	if err := s.wheel.StoreWheelCoupon(ctx, email, coupon); err != nil {
		return domain.WheelCoupon{}, segment, fmt.Errorf("%s: %w", op, err)
	}
	return coupon, segment, nil
}

func (s SpinService) reveal(ctx context.Context) error {
	if s.revealDelay <= 0 {
		return nil
	}

	timer := time.NewTimer(s.revealDelay)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
