package services

import (
	"context"

	"github.com/jslogistics/jsl-backend/internal/core/domain"
	"github.com/jslogistics/jsl-backend/internal/dto"
)

// UserSvcFacade defines the identity and account store operations.
type UserSvcFacade interface {
	// RegisterUser creates a new client account with the default credit
	// limit. Returns ErrDuplicate if the email is taken.
	RegisterUser(ctx context.Context, req dto.RegisterRequest) (*domain.User, error)

	// AuthenticateUser verifies credentials. It returns ErrInvalidCredentials
	// for both an unknown email and a wrong password, without distinguishing.
	AuthenticateUser(ctx context.Context, email, password string) (*domain.User, error)

	GetUserByID(ctx context.Context, userID string) (*domain.User, error)
}
