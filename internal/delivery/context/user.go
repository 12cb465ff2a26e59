package context

import (
	"context"

	"patientapp/internal/domain/entity"

	"github.com/labstack/echo/v4"
)

// SetUser stores the authenticated caller on c and on its request context.
func SetUser(c echo.Context, user *entity.User) {
	c.Set(echoKeyUser, user)

	req := c.Request()
	c.SetRequest(req.WithContext(context.WithValue(req.Context(), keyUser, user)))
}

// User returns the authenticated caller, or nil on public routes.
func User(c echo.Context) *entity.User {
	if user, ok := c.Get(echoKeyUser).(*entity.User); ok {
		return user
	}

	return UserFrom(c.Request().Context())
}

// UserFrom returns the caller stored in ctx, or nil.
func UserFrom(ctx context.Context) *entity.User {
	user, _ := ctx.Value(keyUser).(*entity.User)

	return user
}
