package service

import (
	"context"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"net/mail"
	"strings"
	"time"

	"github.com/glowmart/storefront/internal/core/domain"
	"github.com/glowmart/storefront/internal/core/port"
	"github.com/glowmart/storefront/pkg/schema"
)

// The default admin lives outside the admin collection: always present,
// never editable, immune to deactivation.
const (
	DefaultAdminName     = "Store Admin"
	DefaultAdminEmail    = "admin@glowmart.shop"
	DefaultAdminPassword = "glow-admin-123"
)

const (
	minPasswordLen = 6
	resetCodeTTL   = 5 * time.Minute
)

// SessionService resolves the current actor, handles login, registration
// and password reset, and keeps admin sessions honest: a session for an
// admin account that was deactivated or deleted elsewhere is cleared on
// the next admin-collection change notification.
type SessionService struct {
	session port.SessionStorage
	admins  port.AdminsStorage
	users   port.UsersStorage
	resets  port.ResetCodeStorage
	changes port.ChangeSubscriber
}

func NewSession(
	session port.SessionStorage,
	admins port.AdminsStorage,
	users port.UsersStorage,
	resets port.ResetCodeStorage,
	changes port.ChangeSubscriber,
) SessionService {
	return SessionService{session, admins, users, resets, changes}
}

// Current returns the active session, or false for anonymous.
func (s SessionService) Current(
	ctx context.Context,
) (domain.Session, bool, error) {
	const op = "SessionService.Current"

	sess, ok, err := s.session.LoadSession(ctx)
	if err != nil {
		return domain.Session{}, false, fmt.Errorf("%s: %w", op, err)
	}
	return sess, ok, nil
}

// Login resolves credentials in fixed precedence: default admin, then
// the admin collection, then registered users. An email that matches an
// admin identity never falls through to the user namespace.
func (s SessionService) Login(
	ctx context.Context, email, password string,
) (domain.Session, error) {
	const op = "SessionService.Login"

	email = schema.NormalizeEmail(email)

	if email == DefaultAdminEmail {
		if password != DefaultAdminPassword {
			return domain.Session{}, fmt.Errorf("%s: %w", op, domain.ErrInvalidCredentials)
		}
		return s.open(ctx, op, domain.Session{
			Name: DefaultAdminName, Email: email, Role: domain.RoleAdmin,
		})
	}

	admins, err := s.admins.LoadAdmins(ctx)
	if err != nil {
		return domain.Session{}, fmt.Errorf("%s: %w", op, err)
	}
	for _, a := range admins {
		if a.Email != email {
			continue
		}
		if !a.Active {
			return domain.Session{}, fmt.Errorf("%s: %w", op, domain.ErrAccountDisabled)
		}
		if a.Password != password {
			return domain.Session{}, fmt.Errorf("%s: %w", op, domain.ErrInvalidCredentials)
		}
		return s.open(ctx, op, domain.Session{
			Name: a.Name, Email: a.Email, Role: domain.RoleAdmin,
		})
	}

	users, err := s.users.LoadUsers(ctx)
	if err != nil {
		return domain.Session{}, fmt.Errorf("%s: %w", op, err)
	}
	for _, u := range users {
		if u.Email != email {
			continue
		}
		// Accounts registered before passwords were required have none
		// stored and log in with the email alone.
		if u.Password != "" && u.Password != password {
			return domain.Session{}, fmt.Errorf("%s: %w", op, domain.ErrInvalidCredentials)
		}
		return s.open(ctx, op, domain.Session{
			Name: u.Name, Email: u.Email, Role: domain.RoleUser,
		})
	}

	return domain.Session{}, fmt.Errorf("%s: %w", op, domain.ErrInvalidCredentials)
}

// Register creates a user account and opens its session. Emails reserved
// by any admin identity are rejected: the namespaces stay disjoint.
func (s SessionService) Register(
	ctx context.Context, name, email, password string,
) (domain.Session, error) {
	const op = "SessionService.Register"

	email = schema.NormalizeEmail(email)
	if _, err := mail.ParseAddress(email); err != nil {
		return domain.Session{}, fmt.Errorf("%s: %w", op, domain.ErrInvalidEmail)
	}
	if len(password) < minPasswordLen {
		return domain.Session{}, fmt.Errorf("%s: %w", op, domain.ErrWeakPassword)
	}

	reserved, err := s.adminEmail(ctx, email)
	if err != nil {
		return domain.Session{}, fmt.Errorf("%s: %w", op, err)
	}
	if reserved {
		return domain.Session{}, fmt.Errorf("%s: %w", op, domain.ErrAdminReserved)
	}

	users, err := s.users.LoadUsers(ctx)
	if err != nil {
		return domain.Session{}, fmt.Errorf("%s: %w", op, err)
	}
	for _, u := range users {
		if u.Email == email {
			return domain.Session{}, fmt.Errorf("%s: %w", op, domain.ErrEmailTaken)
		}
	}

	users = append(users, domain.User{
		Name:      strings.TrimSpace(name),
		Email:     email,
		Password:  password,
		CreatedAt: time.Now(),
	})
	if err := s.users.StoreUsers(ctx, users); err != nil {
		return domain.Session{}, fmt.Errorf("%s: %w", op, err)
	}

	return s.open(ctx, op, domain.Session{
		Name: strings.TrimSpace(name), Email: email, Role: domain.RoleUser,
	})
}

func (s SessionService) Logout(ctx context.Context) error {
	const op = "SessionService.Logout"

	if err := s.session.ClearSession(ctx); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}

// RequestReset issues a one-time 6-digit code valid for five minutes.
// Admin identities are categorically excluded from reset.
func (s SessionService) RequestReset(
	ctx context.Context, email string,
) (string, error) {
	const op = "SessionService.RequestReset"

	email = schema.NormalizeEmail(email)

	reserved, err := s.adminEmail(ctx, email)
	if err != nil {
		return "", fmt.Errorf("%s: %w", op, err)
	}
	if reserved {
		return "", fmt.Errorf("%s: %w", op, domain.ErrAdminReserved)
	}

	users, err := s.users.LoadUsers(ctx)
	if err != nil {
		return "", fmt.Errorf("%s: %w", op, err)
	}
	found := false
	for _, u := range users {
		if u.Email == email {
			found = true
			break
		}
	}
	if !found {
		return "", fmt.Errorf("%s: %w", op, domain.ErrNotFound)
	}

	code := fmt.Sprintf("%06d", rand.IntN(1_000_000))
	expires := time.Now().Add(resetCodeTTL)
	if err := s.resets.StoreResetCode(ctx, email, code, expires); err != nil {
		return "", fmt.Errorf("%s: %w", op, err)
	}
	return code, nil
}

// CompleteReset overwrites the user's password after an exact code match
// before expiry. The code is single-use either way it matches.
func (s SessionService) CompleteReset(
	ctx context.Context, email, code, newPassword string,
) error {
	const op = "SessionService.CompleteReset"

	email = schema.NormalizeEmail(email)
	if len(newPassword) < minPasswordLen {
		return fmt.Errorf("%s: %w", op, domain.ErrWeakPassword)
	}

	stored, expires, ok := s.resets.LoadResetCode(ctx, email)
	if !ok || stored != code || time.Now().After(expires) {
		return fmt.Errorf("%s: %w", op, domain.ErrResetCode)
	}

	users, err := s.users.LoadUsers(ctx)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	for i, u := range users {
		if u.Email == email {
			users[i].Password = newPassword
			if err := s.users.StoreUsers(ctx, users); err != nil {
				return fmt.Errorf("%s: %w", op, err)
			}
			if err := s.resets.ClearResetCode(ctx, email); err != nil {
				slog.Warn("failed to clear reset code", "err", err)
			}
			return nil
		}
	}
	return fmt.Errorf("%s: %w", op, domain.ErrNotFound)
}

// Run revalidates the session against the admin collection, once at
// start and then on every admin-collection change, until ctx is done.
func (s SessionService) Run(ctx context.Context) {
	const op = "SessionService.Run"
	log := slog.With("op", op)

	events, cancel := s.changes.Subscribe(domain.CollectionAdmins)
	defer cancel()

	s.revalidate(ctx)

	for {
		select {
		case <-ctx.Done():
			return
		case _, ok := <-events:
			if !ok {
				log.Debug("change feed closed")
				return
			}
			s.revalidate(ctx)
		}
	}
}

// revalidate force-clears an admin session whose account is gone or
// inactive. The default admin is immune.
func (s SessionService) revalidate(ctx context.Context) {
	const op = "SessionService.revalidate"
	log := slog.With("op", op)

	sess, ok, err := s.session.LoadSession(ctx)
	if err != nil || !ok {
		return
	}
	if sess.Role != domain.RoleAdmin || sess.Email == DefaultAdminEmail {
		return
	}

	admins, err := s.admins.LoadAdmins(ctx)
	if err != nil {
		return
	}

	for _, a := range admins {
		if a.Email == sess.Email && a.Active {
			return
		}
	}

	log.Info("admin session invalidated", "email", sess.Email)
	if err := s.session.ClearSession(ctx); err != nil {
		log.Error("failed to clear session", "err", err)
	}
}

func (s SessionService) open(
	ctx context.Context, op string, sess domain.Session,
) (domain.Session, error) {
	if err := s.session.StoreSession(ctx, sess); err != nil {
		return domain.Session{}, fmt.Errorf("%s: %w", op, err)
	}
	return sess, nil
}

// adminEmail reports whether the email belongs to any admin identity,
// the default admin included.
func (s SessionService) adminEmail(
	ctx context.Context, email string,
) (bool, error) {
	if email == DefaultAdminEmail {
		return true, nil
	}

	admins, err := s.admins.LoadAdmins(ctx)
	if err != nil {
		return false, err
	}
	for _, a := range admins {
		if a.Email == email {
			return true, nil
		}
	}
	return false, nil
}
