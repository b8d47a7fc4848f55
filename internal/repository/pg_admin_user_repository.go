package repository

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/leadsite/backend/internal/model"
)

// PgAdminUserRepository is the PostgreSQL implementation of AdminUserRepository.
type PgAdminUserRepository struct {
	db Querier
}

// NewPgAdminUserRepository creates a PgAdminUserRepository backed by db.
func NewPgAdminUserRepository(db Querier) *PgAdminUserRepository {
	return &PgAdminUserRepository{db: db}
}

var _ AdminUserRepository = (*PgAdminUserRepository)(nil)

// FindByUsername returns the account named username or ErrNotFound.
func (r *PgAdminUserRepository) FindByUsername(ctx context.Context, username string) (*model.AdminUser, error) {
	var u model.AdminUser
	err := r.db.QueryRow(ctx,
		`SELECT id, username, email, password_hash, full_name, role, is_active, last_login, created_at
		 FROM admin_users WHERE username = $1`,
		username,
	).Scan(&u.ID, &u.Username, &u.Email, &u.PasswordHash, &u.FullName, &u.Role, &u.IsActive, &u.LastLogin, &u.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &u, nil
}

// TouchLastLogin records a successful login at the given time.
func (r *PgAdminUserRepository) TouchLastLogin(ctx context.Context, id int64, at time.Time) error {
	tag, err := r.db.Exec(ctx,
		`UPDATE admin_users SET last_login = $1, updated_at = NOW() WHERE id = $2`, at, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

// Create inserts u. It returns ErrDuplicate when the username is taken.
func (r *PgAdminUserRepository) Create(ctx context.Context, u *model.AdminUser) error {
	err := r.db.QueryRow(ctx,
		`INSERT INTO admin_users (username, email, password_hash, full_name, role, is_active)
		 VALUES ($1, $2, $3, $4, $5, $6)
		 RETURNING id, created_at`,
		u.Username, u.Email, u.PasswordHash, u.FullName, u.Role, u.IsActive,
	).Scan(&u.ID, &u.CreatedAt)
	if isUniqueViolation(err) {
		return ErrDuplicate
	}
	return err
}

// UpdatePassword replaces the password hash of username.
func (r *PgAdminUserRepository) UpdatePassword(ctx context.Context, username, passwordHash string) error {
	tag, err := r.db.Exec(ctx,
		`UPDATE admin_users SET password_hash = $1, updated_at = NOW() WHERE username = $2`,
		passwordHash, username)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
