package usecase

import (
	"context"

	"patientapp/internal/domain/entity"
)

// SessionUsecase turns a bearer token into the account it was issued for.
type SessionUsecase interface {
	// ResolveSession validates the token and looks its subject up by username.
	// Every failure is reported as ErrUnauthenticated.
	ResolveSession(ctx context.Context, token string) (*entity.User, error)
}
