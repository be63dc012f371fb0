package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/glowmart/storefront/internal/core/domain"
	"github.com/glowmart/storefront/internal/core/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSpin(t *testing.T) {
	ctx := context.Background()

	t.Run("OncePerUser", func(t *testing.T) {
		env := newTestEnv(t)
		svc := service.NewSpin(env.wheel, env.spins, 0)

		_, _, err := svc.Spin(ctx, "mira@example.com")
		require.NoError(t, err)

		_, _, err = svc.Spin(ctx, "mira@example.com")
		assert.ErrorIs(t, err, domain.ErrAlreadySpun)

		// spin records are per user
		_, _, err = svc.Spin(ctx, "other@example.com")
		assert.NoError(t, err)
	})

	t.Run("RequiresEmail", func(t *testing.T) {
		env := newTestEnv(t)
		svc := service.NewSpin(env.wheel, env.spins, 0)

		_, _, err := svc.Spin(ctx, "")
		assert.ErrorIs(t, err, domain.ErrMissingField)
	})

	t.Run("WinningSegmentFillsSlot", func(t *testing.T) {
		env := newTestEnv(t)
		svc := service.NewSpin(env.wheel, env.spins, 0)

		// the wheel is random, so classify whatever came up
		coupon, segment, err := svc.Spin(ctx, "mira@example.com")
		require.NoError(t, err)

		wc, ok, err := env.wheel.LoadWheelCoupon(ctx, "mira@example.com")
		require.NoError(t, err)

		if segment.Value > 0 {
			require.True(t, ok)
			assert.Equal(t, segment.Code, wc.Code)
			assert.Equal(t, segment.Type, wc.Type)
			assert.Equal(t, segment.Value, wc.Value)
			assert.False(t, wc.Used)
			assert.Equal(t, coupon.CouponID, wc.CouponID)
			assert.WithinDuration(t,
				time.Now().Add(7*24*time.Hour), wc.ExpiresAt, time.Minute)
		} else {
			assert.False(t, ok)
			assert.Empty(t, coupon.CouponID)
		}
	})

	t.Run("RevealDelayHonorsContext", func(t *testing.T) {
		env := newTestEnv(t)
		svc := service.NewSpin(env.wheel, env.spins, time.Minute)

		cancelled, cancel := context.WithCancel(ctx)
		cancel()

		_, _, err := svc.Spin(cancelled, "mira@example.com")
		require.ErrorIs(t, err, context.Canceled)

		// nothing committed before the reveal
		assert.False(t, env.spins.HasSpun(ctx, "mira@example.com"))
		_, ok, err := env.wheel.LoadWheelCoupon(ctx, "mira@example.com")
		require.NoError(t, err)
		assert.False(t, ok)
	})
}
