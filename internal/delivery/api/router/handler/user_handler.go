package handler

import (
	"log/slog"

	"patientapp/internal/delivery/api/middleware"
	"patientapp/internal/delivery/api/response"
	domainerrors "patientapp/internal/domain/errors"
	"patientapp/internal/errors"
	"patientapp/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// UserHandlerParams holds dependencies for UserHandler, injected by Fx.
type UserHandlerParams struct {
	fx.In

	UserUC usecase.UserUsecase
	Logger *slog.Logger
}

// UserHandler serves the /users routes.
type UserHandler struct {
	userUC usecase.UserUsecase
	logger *slog.Logger
}

// NewUserHandler is the constructor for UserHandler.
func NewUserHandler(params UserHandlerParams) *UserHandler {
	return &UserHandler{
		userUC: params.UserUC,
		logger: params.Logger,
	}
}

// Signup handles POST /users/signup.
func (h *UserHandler) Signup(c echo.Context) error {
	var req SignupRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	user, err := h.userUC.Signup(c.Request().Context(), &usecase.SignupInput{
		Username: req.Username,
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		return err
	}

	return response.OK(c, toUserResponse(user))
}

// Login handles POST /users/login with either a form or a JSON body.
func (h *UserHandler) Login(c echo.Context) error {
	var req LoginRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	out, err := h.userUC.Login(c.Request().Context(), &usecase.LoginInput{
		Username: req.Username,
		Password: req.Password,
	})
	if err != nil {
		return err
	}

	return response.OK(c, &TokenResponse{
		AccessToken: out.AccessToken,
		TokenType:   out.TokenType,
	})
}

// Logout handles POST /users/logout. Nothing is revoked; the client drops its token.
func (h *UserHandler) Logout(c echo.Context) error {
	if err := h.userUC.Logout(c.Request().Context()); err != nil {
		return err
	}

	return response.Message(c, "Successfully logged out")
}

// Me handles GET /users/me.
func (h *UserHandler) Me(c echo.Context) error {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		return errors.WithStack(domainerrors.ErrUnauthenticated)
	}

	return response.OK(c, toUserResponse(user))
}

// bindAndValidate decodes the body into req and runs its validate tags.
func bindAndValidate(c echo.Context, req any) error {
	if err := c.Bind(req); err != nil {
		return errors.Wrap(domainerrors.ErrValidationFailed, "malformed request body")
	}

	return c.Validate(req)
}
