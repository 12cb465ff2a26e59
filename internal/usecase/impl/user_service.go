// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"
	"sync"
	"time"

	deliverycontext "patientapp/internal/delivery/context"
	"patientapp/internal/domain/entity"
	domainerrors "patientapp/internal/domain/errors"
	"patientapp/internal/domain/repository"
	"patientapp/internal/domain/service"
	"patientapp/internal/errors"
	"patientapp/internal/usecase"

	"go.uber.org/fx"
)

// TokenTypeBearer is reported next to every issued access token.
const TokenTypeBearer = "bearer"

// dummyPassword is hashed once and compared against when a login names an unknown user.
const dummyPassword = "not-a-real-password"

// userService implements the UserUsecase interface.
type userService struct {
	txManager    repository.TransactionManager
	hasher       service.PasswordHasher
	tokenService service.TokenService
	logger       *slog.Logger
	now          func() time.Time

	dummyHash func() string
}

// UserServiceParams holds dependencies for UserService, injected by Fx.
type UserServiceParams struct {
	fx.In

	TxManager    repository.TransactionManager
	Hasher       service.PasswordHasher
	TokenService service.TokenService
	Logger       *slog.Logger
}

// NewUserService is the constructor for userService.
func NewUserService(params UserServiceParams) usecase.UserUsecase {
	srv := &userService{
		txManager:    params.TxManager,
		hasher:       params.Hasher,
		tokenService: params.TokenService,
		logger:       params.Logger,
		now:          time.Now,
	}
	srv.dummyHash = sync.OnceValue(func() string {
		hash, err := srv.hasher.Hash(dummyPassword)
		if err != nil {
			return ""
		}

		return hash
	})

	return srv
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *userService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.LoggerFrom(ctx, srv.logger)
}

// Signup hashes the password and inserts the account. The existence checks give the
// caller a precise conflict; the unique indexes still catch concurrent signups.
func (srv *userService) Signup(ctx context.Context, input *usecase.SignupInput) (*entity.User, error) {
	srv.log(ctx).Debug("Starting signup", slog.String("username", input.Username))

	// bcrypt is CPU-bound, keep it out of the transaction.
	hash, err := srv.hasher.Hash(input.Password)
	if err != nil {
		return nil, errors.Wrap(domainerrors.ErrPasswordHashFailed, err.Error())
	}

	user := &entity.User{
		Username:     input.Username,
		Email:        input.Email,
		PasswordHash: hash,
		CreatedAt:    srv.now().UTC(),
	}

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.UserRepo()

		if err := ensureAbsent(userRepo.FindByUsername(ctx, input.Username)); err != nil {
			if errors.Is(err, errAlreadyPresent) {
				return errors.WithStack(domainerrors.ErrUsernameTaken)
			}

			return errors.Wrap(err, "failed to look up username")
		}

		if err := ensureAbsent(userRepo.FindByEmail(ctx, input.Email)); err != nil {
			if errors.Is(err, errAlreadyPresent) {
				return errors.WithStack(domainerrors.ErrEmailTaken)
			}

			return errors.Wrap(err, "failed to look up email")
		}

		return userRepo.Create(ctx, user)
	})
	if err != nil {
		srv.log(ctx).Warn("Signup failed", slog.String("username", input.Username), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to execute signup transaction")
	}

	srv.log(ctx).Info("User signed up", slog.Any("userID", user.ID))

	return user, nil
}

var errAlreadyPresent = errors.New("already present")

func ensureAbsent(_ *entity.User, err error) error {
	switch {
	case err == nil:
		return errAlreadyPresent
	case errors.Is(err, repository.ErrUserNotFound):
		return nil
	default:
		return err
	}
}

// Authenticate verifies username and password. An unknown username still costs one
// bcrypt comparison so response time does not reveal which accounts exist.
func (srv *userService) Authenticate(ctx context.Context, username, password string) (*entity.User, error) {
	var user *entity.User

	// Read from the primary so a login right after signup does not miss the account on a lagging replica.
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		var findErr error
		user, findErr = repoFactory.UserRepo().FindByUsername(ctx, username)

		return findErr
	})
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			srv.hasher.Check(password, srv.dummyHash())

			return nil, errors.Wrap(domainerrors.ErrInvalidCredentials, "unknown username")
		}

		return nil, errors.Wrap(err, "failed to load user for authentication")
	}

	if !srv.hasher.Check(password, user.PasswordHash) {
		return nil, errors.Wrap(domainerrors.ErrInvalidCredentials, "password mismatch")
	}

	return user, nil
}

// Login authenticates and issues an access token for the configured access lifetime.
func (srv *userService) Login(ctx context.Context, input *usecase.LoginInput) (*usecase.LoginOutput, error) {
	srv.log(ctx).Debug("Starting user login", slog.String("username", input.Username))

	user, err := srv.Authenticate(ctx, input.Username, input.Password)
	if err != nil {
		srv.log(ctx).Warn("Login failed", slog.String("username", input.Username), slog.Any("error", err))

		return nil, errors.Wrap(err, "login failed")
	}

	issued, err := srv.tokenService.Issue(user.Username, srv.tokenService.AccessTokenTTL())
	if err != nil {
		return nil, errors.Wrap(err, "failed to issue access token")
	}

	srv.log(ctx).Debug("User logged in successfully", slog.Any("userID", user.ID))

	return &usecase.LoginOutput{
		AccessToken: issued.Token,
		TokenType:   TokenTypeBearer,
		ExpiresAt:   issued.ExpiresAt,
		User:        user,
	}, nil
}

// Logout has nothing to revoke: tokens are stateless and expire on their own.
func (srv *userService) Logout(ctx context.Context) error {
	srv.log(ctx).Debug("Logout requested")

	return nil
}
