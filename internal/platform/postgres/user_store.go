package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/dashsoft/identity-api/internal/domain"
	"github.com/dashsoft/identity-api/internal/store"
)

// UserStore implements store.UserStore using a PostgreSQL database.
type UserStore struct {
	db *sql.DB
}

// NewUserStore creates a PostgreSQL implementation of store.UserStore.
// The connection is initialized and managed by the caller.
func NewUserStore(db *sql.DB) *UserStore {
	return &UserStore{db: db}
}

var _ store.UserStore = (*UserStore)(nil)

// GetByEmail implements store.UserStore.GetByEmail.
func (s *UserStore) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	const query = `
		SELECT id, email, hashed_password, created_at, updated_at
		FROM users
		WHERE email = $1`

	var user domain.User
	err := s.db.QueryRowContext(ctx, query, email).Scan(
		&user.ID,
		&user.Email,
		&user.HashedPassword,
		&user.CreatedAt,
		&user.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, store.ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to get user by email: %w", err)
	}

	return &user, nil
}
