package repositories

import (
	"context"

	"github.com/jslogistics/jsl-backend/internal/core/domain"
)

// UserReader defines read operations for client accounts.
type UserReader interface {
	FindUserByID(ctx context.Context, userID string) (*domain.User, error)
	// FindUserByEmail returns ErrNotFound for an unknown email; the caller is
	// responsible for collapsing that into an InvalidCredentials failure.
	FindUserByEmail(ctx context.Context, email string) (*domain.User, error)
}

// UserWriter defines write operations for client accounts.
type UserWriter interface {
	// SaveUser persists a new account. Returns ErrDuplicate when the email is
	// already registered.
	SaveUser(ctx context.Context, user domain.User) error
	DeactivateUser(ctx context.Context, userID string) error
}

// UserRepositoryFacade combines all user repository capabilities.
type UserRepositoryFacade interface {
	UserReader
	UserWriter
}
