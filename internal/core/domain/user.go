package domain

import "time"

type Role string

const (
	RoleUser  Role = "user"
	RoleAdmin Role = "admin"
)

type (
	AdminUser struct {
		Name      string
		Email     string
		Password  string
		Active    bool
		CreatedAt time.Time
		UpdatedAt time.Time
	}

	User struct {
		Name      string
		Email     string
		Password  string
		CreatedAt time.Time
	}

	// Session is the single currently-authenticated identity.
	Session struct {
		Name  string
		Email string
		Role  Role
	}
)

func (s Session) Anonymous() bool {
	return s.Email == ""
}
