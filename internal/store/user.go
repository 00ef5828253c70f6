package store

import (
	"context"

	"github.com/dashsoft/identity-api/internal/domain"
)

// UserStore is the lookup interface the identity service needs at runtime.
// Account provisioning happens through a separate administrative pipeline,
// so the service itself only ever resolves users by email.
type UserStore interface {
	// GetByEmail retrieves a user by their email address.
	// Returns ErrUserNotFound if the user does not exist.
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
}
