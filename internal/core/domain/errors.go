package domain

import (
	"errors"
	"fmt"
)

var (
	ErrNotFound           = errors.New("not found")
	ErrEmptyCart          = errors.New("cart is empty")
	ErrMissingField       = errors.New("required field is empty")
	ErrInvalidEmail       = errors.New("invalid email address")
	ErrWeakPassword       = errors.New("password must be at least 6 characters")
	ErrEmailTaken         = errors.New("email is already taken")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrAccountDisabled    = errors.New("account is deactivated")
	ErrAdminReserved      = errors.New("email is reserved for an admin account")
	ErrCodeTaken          = errors.New("coupon code already exists")
	ErrCouponInvalid      = errors.New("coupon is invalid or expired")
	ErrResetCode          = errors.New("reset code is wrong or expired")
	ErrAlreadySpun        = errors.New("spin already used")
)

type StockErrorKind int

const (
	StockOut StockErrorKind = iota
	StockInsufficient
)

// StockError reports the first cart line that cannot be fulfilled.
type StockError struct {
	Kind      StockErrorKind
	ProductID string
	Name      string
	Requested int
	Available int
}

func (e *StockError) Error() string {
	if e.Kind == StockOut {
		return fmt.Sprintf("%q is out of stock", e.Name)
	}
	return fmt.Sprintf(
		"insufficient stock for %q: requested %d, available %d",
		e.Name, e.Requested, e.Available,
	)
}
