package middleware

import (
	"log/slog"
	"strings"

	deliverycontext "patientapp/internal/delivery/context"
	domainerrors "patientapp/internal/domain/errors"
	"patientapp/internal/domain/entity"
	"patientapp/internal/errors"
	"patientapp/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

const bearerScheme = "bearer"

// AuthMiddlewareParams holds dependencies for AuthMiddleware, injected by Fx.
type AuthMiddlewareParams struct {
	fx.In

	SessionUC usecase.SessionUsecase
	Logger    *slog.Logger
}

// AuthMiddleware guards routes that need a logged-in user.
type AuthMiddleware struct {
	sessionUC usecase.SessionUsecase
	logger    *slog.Logger
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(params AuthMiddlewareParams) *AuthMiddleware {
	return &AuthMiddleware{
		sessionUC: params.SessionUC,
		logger:    params.Logger,
	}
}

// Authenticate requires "Authorization: Bearer <token>", resolves the token to a live
// user and stores it on the request. Every failure is the same 401.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		token, ok := bearerToken(c.Request().Header.Get(echo.HeaderAuthorization))
		if !ok {
			return errors.Wrap(domainerrors.ErrUnauthenticated, "missing bearer token")
		}

		user, err := m.sessionUC.ResolveSession(c.Request().Context(), token)
		if err != nil {
			return err
		}

		deliverycontext.SetUser(c, user)

		return next(c)
	}
}

// CurrentUser returns the user stored by Authenticate.
func CurrentUser(c echo.Context) (*entity.User, bool) {
	user := deliverycontext.User(c)

	return user, user != nil
}

func bearerToken(header string) (string, bool) {
	scheme, token, found := strings.Cut(strings.TrimSpace(header), " ")
	if !found || !strings.EqualFold(scheme, bearerScheme) {
		return "", false
	}

	token = strings.TrimSpace(token)

	return token, token != ""
}
