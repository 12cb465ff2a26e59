// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"
	"time"

	"patientapp/internal/domain/entity"
)

// --- Input DTOs ---

// SignupInput defines the data required to create an account.
type SignupInput struct {
	Username string
	Email    string
	Password string
}

// LoginInput defines the data required for a user to log in.
type LoginInput struct {
	Username string
	Password string
}

// --- Output DTOs ---

// LoginOutput carries the issued access token.
type LoginOutput struct {
	AccessToken string
	TokenType   string
	ExpiresAt   time.Time
	User        *entity.User
}

// UserUsecase defines the account operations exposed to the delivery layer.
type UserUsecase interface {
	// Signup creates an account. Username conflicts are checked before email conflicts.
	Signup(ctx context.Context, input *SignupInput) (*entity.User, error)

	// Authenticate returns the user whose password matches, or ErrInvalidCredentials.
	Authenticate(ctx context.Context, username, password string) (*entity.User, error)

	Login(ctx context.Context, input *LoginInput) (*LoginOutput, error)

	// Logout revokes nothing. Tokens stay valid until they expire.
	Logout(ctx context.Context) error
}
