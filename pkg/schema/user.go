package schema

import (
	"errors"
	"strings"
)

type AdminUserV1 struct {
	Name      string `json:"name"`
	Email     string `json:"email"`
	Password  string `json:"password"`
	Active    Flag   `json:"active"`
	CreatedAt Millis `json:"createdAt"`
	UpdatedAt Millis `json:"updatedAt"`
}

type UserV1 struct {
	Name      string `json:"name"`
	Email     string `json:"email"`
	Password  string `json:"password,omitempty"`
	CreatedAt Millis `json:"createdAt"`
}

type SessionV1 struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  string `json:"role"`
}

func (a AdminUserV1) Validate() error {
	if a.Email == "" {
		return errors.New("admin: missing email")
	}
	return nil
}

func (u UserV1) Validate() error {
	if u.Email == "" {
		return errors.New("user: missing email")
	}
	return nil
}

func (s SessionV1) Validate() error {
	if s.Email == "" {
		return errors.New("session: missing email")
	}
	if s.Role != "user" && s.Role != "admin" {
		return errors.New("session: unknown role")
	}
	return nil
}

// NormalizeEmail is the canonical form used for unique keys and
// per-user storage namespaces.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
