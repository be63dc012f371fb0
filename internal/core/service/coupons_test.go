package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/glowmart/storefront/internal/core/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCouponsCreate(t *testing.T) {
	ctx := context.Background()

	t.Run("UppercasesCode", func(t *testing.T) {
		env := newTestEnv(t)
		svc := env.couponsService()

		c, err := svc.Create(ctx, domain.Coupon{
			Title: "Glow Week", Code: "glow15",
			Type: domain.CouponPercent, Value: 15, Active: true,
		})
		require.NoError(t, err)
		assert.Equal(t, "GLOW15", c.Code)
		assert.NotEmpty(t, c.CouponID)
	})

	t.Run("RejectsDuplicateCodeCaseInsensitive", func(t *testing.T) {
		env := newTestEnv(t)
		svc := env.couponsService()

		_, err := svc.Create(ctx, domain.Coupon{
			Title: "A", Code: "GLOW15",
			Type: domain.CouponPercent, Value: 15, Active: true,
		})
		require.NoError(t, err)

		_, err = svc.Create(ctx, domain.Coupon{
			Title: "B", Code: "glow15",
			Type: domain.CouponFixed, Value: 20, Active: true,
		})
		assert.ErrorIs(t, err, domain.ErrCodeTaken)
	})

	t.Run("RejectsBadValue", func(t *testing.T) {
		env := newTestEnv(t)

		_, err := env.couponsService().Create(ctx, domain.Coupon{
			Title: "A", Code: "FREE", Type: domain.CouponPercent, Value: 0,
		})
		assert.Error(t, err)
	})
}

func TestCouponsToggle(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)
	svc := env.couponsService()

	c, err := svc.Create(ctx, domain.Coupon{
		Title: "Glow Week", Code: "GLOW15",
		Type: domain.CouponPercent, Value: 15, Active: true,
	})
	require.NoError(t, err)

	require.NoError(t, svc.Toggle(ctx, c.CouponID))

	cs, err := svc.List(ctx)
	require.NoError(t, err)
	require.Len(t, cs, 1)
	assert.False(t, cs[0].Active)
}

func TestCouponsRedeem(t *testing.T) {
	ctx := context.Background()
	now := time.Now()

	seedAdminCoupon := func(t *testing.T, env *testEnv, c domain.Coupon) {
		t.Helper()
		_, err := env.couponsService().Create(ctx, c)
		require.NoError(t, err)
	}

	t.Run("ActiveAdminCoupon", func(t *testing.T) {
		env := newTestEnv(t)
		seedAdminCoupon(t, env, domain.Coupon{
			Title: "Glow Week", Code: "GLOW15",
			Type: domain.CouponPercent, Value: 15, Active: true,
			ExpiresAt: now.Add(time.Hour),
		})

		snap, err := env.couponsService().Redeem(ctx, "", "glow15", now)
		require.NoError(t, err)
		assert.Equal(t, domain.CouponSnapshot{
			Code: "GLOW15", Type: domain.CouponPercent, Value: 15,
		}, snap)
	})

	t.Run("InactiveAdminCoupon", func(t *testing.T) {
		env := newTestEnv(t)
		seedAdminCoupon(t, env, domain.Coupon{
			Title: "Off", Code: "OFF10",
			Type: domain.CouponPercent, Value: 10, Active: false,
		})

		_, err := env.couponsService().Redeem(ctx, "", "OFF10", now)
		assert.ErrorIs(t, err, domain.ErrCouponInvalid)
	})

	t.Run("ExpiredAdminCoupon", func(t *testing.T) {
		env := newTestEnv(t)
		seedAdminCoupon(t, env, domain.Coupon{
			Title: "Late", Code: "LATE5",
			Type: domain.CouponPercent, Value: 5, Active: true,
			ExpiresAt: now.Add(-time.Minute),
		})

		_, err := env.couponsService().Redeem(ctx, "", "LATE5", now)
		assert.ErrorIs(t, err, domain.ErrCouponInvalid)
	})

	t.Run("WheelCouponForOwner", func(t *testing.T) {
		env := newTestEnv(t)
		require.NoError(t, env.wheel.StoreWheelCoupon(ctx, "mira@example.com",
			domain.WheelCoupon{
				CouponID: "wc1", Code: "SPIN10",
				Type: domain.CouponPercent, Value: 10,
				ExpiresAt: now.Add(time.Hour),
			}))

		snap, err := env.couponsService().Redeem(ctx, "mira@example.com", "spin10", now)
		require.NoError(t, err)
		assert.Equal(t, "SPIN10", snap.Code)

		// anonymous visitors cannot use someone's wheel coupon
		_, err = env.couponsService().Redeem(ctx, "", "SPIN10", now)
		assert.ErrorIs(t, err, domain.ErrCouponInvalid)
	})

	t.Run("UsedWheelCoupon", func(t *testing.T) {
		env := newTestEnv(t)
		require.NoError(t, env.wheel.StoreWheelCoupon(ctx, "mira@example.com",
			domain.WheelCoupon{
				CouponID: "wc1", Code: "SPIN10",
				Type: domain.CouponPercent, Value: 10, Used: true,
				ExpiresAt: now.Add(time.Hour),
			}))

		_, err := env.couponsService().Redeem(ctx, "mira@example.com", "SPIN10", now)
		assert.ErrorIs(t, err, domain.ErrCouponInvalid)
	})

	t.Run("UnknownCode", func(t *testing.T) {
		env := newTestEnv(t)

		_, err := env.couponsService().Redeem(ctx, "", "NOPE", now)
		assert.ErrorIs(t, err, domain.ErrCouponInvalid)
	})
}
