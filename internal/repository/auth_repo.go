package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/lukhatek/Fsociety/internal/models"
)

type UserSQLite struct {
	db *sql.DB
}

func NewUserSQLite(db *sql.DB) *UserSQLite {
	return &UserSQLite{db: db}
}

// Ensure implementation of UserRepo interface at compile time.
var _ UserRepo = (*UserSQLite)(nil)

const (
	insertUserSQL           = `INSERT INTO users (id, username, email, password_hash, avatar, created_at, is_admin) VALUES (?, ?, ?, ?, ?, ?, ?)`
	selectUserByUsernameSQL = `SELECT id, username, email, password_hash, avatar, created_at, is_admin FROM users WHERE username = ?`
	existsUserSQL           = `SELECT EXISTS(SELECT 1 FROM users WHERE username = ? OR email = ?)`
)

// Create inserts a new user. A username or email collision yields ErrDuplicate.
func (r *UserSQLite) Create(ctx context.Context, u models.User) error {
	_, err := r.db.ExecContext(ctx, insertUserSQL,
		u.ID,
		u.Username,
		u.Email,
		u.PasswordHash,
		u.Avatar,
		formatTimestamp(u.CreatedAt),
		u.IsAdmin,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("insert user %q: %w", u.Username, ErrDuplicate)
		}
		return fmt.Errorf("insert user %q: %w", u.Username, err)
	}
	return nil
}

// GetByUsername fetches a user by username. Returns (nil, nil) if not found.
func (r *UserSQLite) GetByUsername(ctx context.Context, username string) (*models.User, error) {
	var (
		u       models.User
		created string
	)
	err := r.db.QueryRowContext(ctx, selectUserByUsernameSQL, username).Scan(
		&u.ID, &u.Username, &u.Email, &u.PasswordHash, &u.Avatar, &created, &u.IsAdmin,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("select user %q: %w", username, err)
	}
	if u.CreatedAt, err = parseTimestamp(created); err != nil {
		return nil, fmt.Errorf("select user %q: %w", username, err)
	}
	return &u, nil
}

func (r *UserSQLite) ExistsByUsernameOrEmail(ctx context.Context, username, email string) (bool, error) {
	var exists bool
	if err := r.db.QueryRowContext(ctx, existsUserSQL, username, email).Scan(&exists); err != nil {
		return false, fmt.Errorf("check user %q exists: %w", username, err)
	}
	return exists, nil
}
