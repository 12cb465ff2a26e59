package impl

import (
	"context"
	"log/slog"

	deliverycontext "patientapp/internal/delivery/context"
	"patientapp/internal/domain/entity"
	domainerrors "patientapp/internal/domain/errors"
	"patientapp/internal/domain/repository"
	"patientapp/internal/domain/service"
	"patientapp/internal/errors"
	"patientapp/internal/usecase"

	"go.uber.org/fx"
)

// sessionService implements the SessionUsecase interface.
type sessionService struct {
	userRepo     repository.UserRepository
	tokenService service.TokenService
	logger       *slog.Logger
}

// SessionServiceParams holds dependencies for SessionService, injected by Fx.
type SessionServiceParams struct {
	fx.In

	UserRepo     repository.UserRepository
	TokenService service.TokenService
	Logger       *slog.Logger
}

// NewSessionService is the constructor for sessionService.
func NewSessionService(params SessionServiceParams) usecase.SessionUsecase {
	return &sessionService{
		userRepo:     params.UserRepo,
		tokenService: params.TokenService,
		logger:       params.Logger,
	}
}

func (srv *sessionService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.LoggerFrom(ctx, srv.logger)
}

// ResolveSession validates the token, then requires the subject to still exist.
func (srv *sessionService) ResolveSession(ctx context.Context, token string) (*entity.User, error) {
	if token == "" {
		return nil, errors.Wrap(domainerrors.ErrUnauthenticated, "empty token")
	}

	claims, err := srv.tokenService.Validate(token)
	if err != nil {
		srv.log(ctx).Debug("Rejected session token", slog.Any("error", err))

		return nil, errors.Wrap(domainerrors.ErrUnauthenticated, err.Error())
	}

	user, err := srv.userRepo.FindByUsername(ctx, claims.Subject)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			srv.log(ctx).Debug("Session subject no longer exists", slog.String("username", claims.Subject))

			return nil, errors.Wrap(domainerrors.ErrUnauthenticated, "unknown subject")
		}

		return nil, errors.Wrap(err, "failed to resolve session user")
	}

	return user, nil
}
