package domain

import (
	"math"
	"time"
)

type CouponType string

const (
	CouponPercent CouponType = "PERCENT"
	CouponFixed   CouponType = "FIXED"
)

type (
	// Coupon is an admin-owned coupon record.
	Coupon struct {
		CouponID  string
		Title     string
		Code      string
		Type      CouponType
		Value     float64
		Active    bool
		ExpiresAt time.Time
		CreatedAt time.Time
	}

	// WheelCoupon is the single per-user coupon slot won on the spin wheel.
	WheelCoupon struct {
		CouponID  string
		Title     string
		Code      string
		Type      CouponType
		Value     float64
		Used      bool
		ExpiresAt time.Time
		CreatedAt time.Time
	}

	// CouponSnapshot is a copy of coupon terms frozen into a cart or order,
	// decoupled from the live coupon record.
	CouponSnapshot struct {
		Code  string
		Type  CouponType
		Value float64
	}
)

func (c Coupon) Expired(now time.Time) bool {
	return !c.ExpiresAt.IsZero() && now.After(c.ExpiresAt)
}

func (c WheelCoupon) Expired(now time.Time) bool {
	return !c.ExpiresAt.IsZero() && now.After(c.ExpiresAt)
}

// Discount computes the amount taken off a subtotal: percentage coupons
// round to the nearest unit, fixed coupons never exceed the subtotal.
func (s CouponSnapshot) Discount(subtotal float64) float64 {
	switch s.Type {
	case CouponPercent:
		return math.Round(subtotal * s.Value / 100)
	case CouponFixed:
		return math.Min(s.Value, subtotal)
	}
	return 0
}
