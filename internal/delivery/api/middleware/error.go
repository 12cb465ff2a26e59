package middleware

import (
	"log/slog"
	"net/http"

	"patientapp/internal/delivery/api/response"
	"patientapp/internal/delivery/api/validator"
	domainerrors "patientapp/internal/domain/errors"
	"patientapp/internal/errors"

	"github.com/labstack/echo/v4"
)

// ErrorMiddleware handles errors in the HTTP pipeline
type ErrorMiddleware struct {
	logger *slog.Logger
}

// NewErrorMiddleware creates a new error handling middleware
func NewErrorMiddleware(logger *slog.Logger) *ErrorMiddleware {
	return &ErrorMiddleware{
		logger: logger,
	}
}

// HandleHTTPError handles errors as Echo's HTTPErrorHandler
func (m *ErrorMiddleware) HandleHTTPError(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	if validationErr, ok := errors.AsType[*validator.ValidationError](err); ok {
		base := domainerrors.ErrValidationFailed
		_ = response.Error(c, base.HTTPCode(), base.ErrorCode(), base.Message(), validationErr.Fields)

		return
	}

	if appErr, ok := errors.AsType[domainerrors.AppError](err); ok {
		if appErr.HTTPCode() >= http.StatusInternalServerError {
			m.logger.Error("Request failed",
				slog.Any("error", err),
				slog.String("path", c.Request().URL.Path),
				slog.String("method", c.Request().Method),
			)
		}

		if appErr.HTTPCode() == http.StatusUnauthorized {
			_ = response.Unauthorized(c, appErr.ErrorCode(), appErr.Message())

			return
		}

		_ = response.Error(c, appErr.HTTPCode(), appErr.ErrorCode(), appErr.Message(), nonEmpty(appErr.Details()))

		return
	}

	if httpErr, ok := errors.AsType[*echo.HTTPError](err); ok {
		message := http.StatusText(httpErr.Code)
		if msg, ok := httpErr.Message.(string); ok {
			message = msg
		}

		if httpErr.Code >= http.StatusInternalServerError {
			m.logger.Error("HTTP error", slog.Any("error", err), slog.String("path", c.Request().URL.Path))
		}

		_ = response.Error(c, httpErr.Code, "HTTP_ERROR", message, nil)

		return
	}

	// Unknown errors are logged and answered generically; their text never reaches the client.
	m.logger.Error("Unhandled error",
		slog.Any("error", err),
		slog.String("path", c.Request().URL.Path),
		slog.String("method", c.Request().Method),
	)

	_ = response.InternalServerError(c, domainerrors.ErrInternalError.ErrorCode(), "Internal server error, please try again later")
}

func nonEmpty(details string) any {
	if details == "" {
		return nil
	}

	return details
}
