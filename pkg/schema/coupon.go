package schema

import "errors"

type CouponV1 struct {
	ID        string `json:"id"`
	Title     string `json:"title"`
	Code      string `json:"code"`
	Type      string `json:"type"`
	Value     Number `json:"value"`
	Active    Flag   `json:"active"`
	ExpiresAt Millis `json:"expiresAt"`
	CreatedAt Millis `json:"createdAt"`
}

// WheelCouponV1 is the single-slot coupon a user wins on the spin wheel.
type WheelCouponV1 struct {
	ID        string `json:"id"`
	Title     string `json:"title"`
	Code      string `json:"code"`
	Kind      string `json:"kind"`
	Value     Number `json:"value"`
	Used      Flag   `json:"used"`
	ExpiresAt Millis `json:"expiresAt"`
	CreatedAt Millis `json:"createdAt"`
}

func validCouponType(t string) bool {
	return t == "PERCENT" || t == "FIXED"
}

func (c CouponV1) Validate() error {
	if c.ID == "" || c.Code == "" {
		return errors.New("coupon: missing id or code")
	}
	if !validCouponType(c.Type) {
		return errors.New("coupon: unknown type")
	}
	if c.Value <= 0 {
		return errors.New("coupon: value must be positive")
	}
	return nil
}

func (c WheelCouponV1) Validate() error {
	if c.Code == "" {
		return errors.New("wheel coupon: missing code")
	}
	if !validCouponType(c.Kind) {
		return errors.New("wheel coupon: unknown kind")
	}
	if c.Value <= 0 {
		return errors.New("wheel coupon: value must be positive")
	}
	return nil
}
