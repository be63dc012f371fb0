package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/glowmart/storefront/internal/core/domain"
	"github.com/glowmart/storefront/internal/core/port"
	"github.com/glowmart/storefront/pkg/schema"
)

// AccountsService manages the admin-account collection. The default
// admin is not a record here and cannot be created, edited or deleted.
type AccountsService struct {
	admins port.AdminsStorage
	users  port.UsersStorage
}

func NewAccounts(
	admins port.AdminsStorage, users port.UsersStorage,
) AccountsService {
	return AccountsService{admins, users}
}

func (s AccountsService) ListAdmins(
	ctx context.Context,
) ([]domain.AdminUser, error) {
	const op = "AccountsService.ListAdmins"

	as, err := s.admins.LoadAdmins(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return as, nil
}

func (s AccountsService) ListUsers(ctx context.Context) ([]domain.User, error) {
	const op = "AccountsService.ListUsers"

	us, err := s.users.LoadUsers(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return us, nil
}

// CreateAdmin adds an admin account. The email must be free in both
// namespaces: admin emails may never collide with registered users.
func (s AccountsService) CreateAdmin(
	ctx context.Context, name, email, password string,
) (domain.AdminUser, error) {
	const op = "AccountsService.CreateAdmin"

	email = schema.NormalizeEmail(email)
	if email == "" || email == DefaultAdminEmail {
		return domain.AdminUser{}, fmt.Errorf("%s: %w", op, domain.ErrEmailTaken)
	}
	if len(password) < minPasswordLen {
		return domain.AdminUser{}, fmt.Errorf("%s: %w", op, domain.ErrWeakPassword)
	}

	as, err := s.admins.LoadAdmins(ctx)
	if err != nil {
		return domain.AdminUser{}, fmt.Errorf("%s: %w", op, err)
	}
	for _, a := range as {
		if a.Email == email {
			return domain.AdminUser{}, fmt.Errorf("%s: %w", op, domain.ErrEmailTaken)
		}
	}

	us, err := s.users.LoadUsers(ctx)
	if err != nil {
		return domain.AdminUser{}, fmt.Errorf("%s: %w", op, err)
	}
	for _, u := range us {
		if u.Email == email {
			return domain.AdminUser{}, fmt.Errorf("%s: %w", op, domain.ErrEmailTaken)
		}
	}

	now := time.Now()
	admin := domain.AdminUser{
		Name:      strings.TrimSpace(name),
		Email:     email,
		Password:  password,
		Active:    true,
		CreatedAt: now,
		UpdatedAt: now,
	}

	as = append(as, admin)
	if err := s.admins.StoreAdmins(ctx, as); err != nil {
		return domain.AdminUser{}, fmt.Errorf("%s: %w", op, err)
	}
	return admin, nil
}

// ToggleAdmin flips an account's active flag. Deactivating the account
// behind a live admin session makes the session watcher clear it.
func (s AccountsService) ToggleAdmin(ctx context.Context, email string) error {
	const op = "AccountsService.ToggleAdmin"

	email = schema.NormalizeEmail(email)

	as, err := s.admins.LoadAdmins(ctx)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	for i, a := range as {
		if a.Email == email {
			as[i].Active = !a.Active
			as[i].UpdatedAt = time.Now()
			if err := s.admins.StoreAdmins(ctx, as); err != nil {
				return fmt.Errorf("%s: %w", op, err)
			}
			return nil
		}
	}
	return fmt.Errorf("%s: %w", op, domain.ErrNotFound)
}

func (s AccountsService) DeleteAdmin(ctx context.Context, email string) error {
	const op = "AccountsService.DeleteAdmin"

	email = schema.NormalizeEmail(email)

	as, err := s.admins.LoadAdmins(ctx)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	for i, a := range as {
		if a.Email == email {
			as = append(as[:i], as[i+1:]...)
			if err := s.admins.StoreAdmins(ctx, as); err != nil {
				return fmt.Errorf("%s: %w", op, err)
			}
			return nil
		}
	}
	return fmt.Errorf("%s: %w", op, domain.ErrNotFound)
}
