package storage

import (
	"context"
	"fmt"
	"time"

	"github.com/glowmart/storefront/internal/core/domain"
	"github.com/glowmart/storefront/internal/core/port"
	"github.com/glowmart/storefront/pkg/schema"
)

type AdminsRepository struct {
	db  DB
	bus port.ChangePublisher
}

func NewAdminsRepository(db DB, bus port.ChangePublisher) AdminsRepository {
	return AdminsRepository{db, bus}
}

func (r AdminsRepository) LoadAdmins(
	ctx context.Context,
) ([]domain.AdminUser, error) {
	const op = "AdminsRepository.LoadAdmins"

	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	wire, _ := loadList[schema.AdminUserV1](r.db, domain.CollectionAdmins)

	now := time.Now()
	as := make([]domain.AdminUser, 0, len(wire))
	for _, w := range wire {
		as = append(as, domain.AdminUser{
			Name:      w.Name,
			Email:     schema.NormalizeEmail(w.Email),
			Password:  w.Password,
			Active:    bool(w.Active),
			CreatedAt: w.CreatedAt.TimeOrNow(now),
			UpdatedAt: w.UpdatedAt.TimeOrNow(now),
		})
	}
	return as, nil
}

func (r AdminsRepository) StoreAdmins(
	ctx context.Context, as []domain.AdminUser,
) error {
	const op = "AdminsRepository.StoreAdmins"

	if err := ctx.Err(); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	wire := make([]schema.AdminUserV1, 0, len(as))
	for _, a := range as {
		wire = append(wire, schema.AdminUserV1{
			Name:      a.Name,
			Email:     schema.NormalizeEmail(a.Email),
			Password:  a.Password,
			Active:    schema.Flag(a.Active),
			CreatedAt: schema.MillisOf(a.CreatedAt),
			UpdatedAt: schema.MillisOf(a.UpdatedAt),
		})
	}

	storeList(r.db, r.bus, domain.CollectionAdmins, wire)
	return nil
}

type UsersRepository struct {
	db  DB
	bus port.ChangePublisher
}

func NewUsersRepository(db DB, bus port.ChangePublisher) UsersRepository {
	return UsersRepository{db, bus}
}

func (r UsersRepository) LoadUsers(
	ctx context.Context,
) ([]domain.User, error) {
	const op = "UsersRepository.LoadUsers"

	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	wire, _ := loadList[schema.UserV1](r.db, domain.CollectionUsers)

	now := time.Now()
	us := make([]domain.User, 0, len(wire))
	for _, w := range wire {
		us = append(us, domain.User{
			Name:      w.Name,
			Email:     schema.NormalizeEmail(w.Email),
			Password:  w.Password,
			CreatedAt: w.CreatedAt.TimeOrNow(now),
		})
	}
	return us, nil
}

func (r UsersRepository) StoreUsers(
	ctx context.Context, us []domain.User,
) error {
	const op = "UsersRepository.StoreUsers"

	if err := ctx.Err(); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	wire := make([]schema.UserV1, 0, len(us))
	for _, u := range us {
		wire = append(wire, schema.UserV1{
			Name:      u.Name,
			Email:     schema.NormalizeEmail(u.Email),
			Password:  u.Password,
			CreatedAt: schema.MillisOf(u.CreatedAt),
		})
	}

	storeList(r.db, r.bus, domain.CollectionUsers, wire)
	return nil
}

// SessionRepository stores the single currently-authenticated identity.
type SessionRepository struct {
	db  DB
	bus port.ChangePublisher
}

func NewSessionRepository(db DB, bus port.ChangePublisher) SessionRepository {
	return SessionRepository{db, bus}
}

func (r SessionRepository) LoadSession(
	ctx context.Context,
) (domain.Session, bool, error) {
	const op = "SessionRepository.LoadSession"

	if err := ctx.Err(); err != nil {
		return domain.Session{}, false, fmt.Errorf("%s: %w", op, err)
	}

	w, ok := loadRecord[schema.SessionV1](r.db, collectionKey(domain.CollectionSession))
	if !ok {
		return domain.Session{}, false, nil
	}

	return domain.Session{
		Name:  w.Name,
		Email: schema.NormalizeEmail(w.Email),
		Role:  domain.Role(w.Role),
	}, true, nil
}

func (r SessionRepository) StoreSession(
	ctx context.Context, s domain.Session,
) error {
	const op = "SessionRepository.StoreSession"

	if err := ctx.Err(); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	w := schema.SessionV1{
		Name:  s.Name,
		Email: schema.NormalizeEmail(s.Email),
		Role:  string(s.Role),
	}
	if err := storeRecord(r.db, collectionKey(domain.CollectionSession), w); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	r.bus.Publish(domain.ChangeEvent{
		Collection: domain.CollectionSession, At: time.Now(),
	})
	return nil
}

func (r SessionRepository) ClearSession(ctx context.Context) error {
	const op = "SessionRepository.ClearSession"

	if err := ctx.Err(); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	if err := r.db.Delete(collectionKey(domain.CollectionSession)); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	r.bus.Publish(domain.ChangeEvent{
		Collection: domain.CollectionSession, At: time.Now(),
	})
	return nil
}

// ResetCodesRepository stores pending password-reset codes per email.
type ResetCodesRepository struct {
	db DB
}

func NewResetCodesRepository(db DB) ResetCodesRepository {
	return ResetCodesRepository{db}
}

const resetCodeKind = "reset-code"

func (r ResetCodesRepository) StoreResetCode(
	ctx context.Context, email, code string, expiresAt time.Time,
) error {
	const op = "ResetCodesRepository.StoreResetCode"

	if err := ctx.Err(); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	w := schema.ResetCodeV1{
		Code:      code,
		ExpiresAt: schema.MillisOf(expiresAt),
	}
	if err := storeRecord(r.db, userKey(resetCodeKind, email), w); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}

func (r ResetCodesRepository) LoadResetCode(
	ctx context.Context, email string,
) (string, time.Time, bool) {
	if ctx.Err() != nil {
		return "", time.Time{}, false
	}

	w, ok := loadRecord[schema.ResetCodeV1](r.db, userKey(resetCodeKind, email))
	if !ok {
		return "", time.Time{}, false
	}
	return w.Code, w.ExpiresAt.Time(), true
}

func (r ResetCodesRepository) ClearResetCode(
	ctx context.Context, email string,
) error {
	const op = "ResetCodesRepository.ClearResetCode"

	if err := ctx.Err(); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	if err := r.db.Delete(userKey(resetCodeKind, email)); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}

// SpinsRepository remembers which users already used their one wheel spin.
type SpinsRepository struct {
	db DB
}

func NewSpinsRepository(db DB) SpinsRepository {
	return SpinsRepository{db}
}

const spinRecordKind = "spin"

func (r SpinsRepository) HasSpun(ctx context.Context, email string) bool {
	if ctx.Err() != nil {
		return false
	}

	w, ok := loadRecord[schema.SpinRecordV1](r.db, userKey(spinRecordKind, email))
	return ok && bool(w.Spun)
}

func (r SpinsRepository) MarkSpun(ctx context.Context, email string) error {
	const op = "SpinsRepository.MarkSpun"

	if err := ctx.Err(); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	w := schema.SpinRecordV1{Spun: true, At: schema.MillisOf(time.Now())}
	if err := storeRecord(r.db, userKey(spinRecordKind, email), w); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}
