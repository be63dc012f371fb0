package schema

import "errors"

// SpinRecordV1 marks that a user has already used their one wheel spin.
type SpinRecordV1 struct {
	Spun Flag   `json:"spun"`
	At   Millis `json:"at"`
}

func (s SpinRecordV1) Validate() error { return nil }

// ResetCodeV1 is a pending password-reset code keyed by email.
type ResetCodeV1 struct {
	Code      string `json:"code"`
	ExpiresAt Millis `json:"expiresAt"`
}

func (r ResetCodeV1) Validate() error {
	if r.Code == "" {
		return errors.New("reset: missing code")
	}
	if r.ExpiresAt <= 0 {
		return errors.New("reset: missing expiry")
	}
	return nil
}
