package handler

import (
	"io"
	"log/slog"
	"net/http/httptest"
	"strings"

	apimiddleware "patientapp/internal/delivery/api/middleware"
	"patientapp/internal/delivery/api/validator"
	deliverycontext "patientapp/internal/delivery/context"
	"patientapp/internal/domain/entity"

	"github.com/labstack/echo/v4"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// newTestEcho wires the production error handler and validator without any routes.
func newTestEcho() *echo.Echo {
	e := echo.New()
	e.HTTPErrorHandler = apimiddleware.NewErrorMiddleware(newDiscardLogger()).HandleHTTPError
	e.Validator = validator.New()

	return e
}

// asUser stands in for AuthMiddleware.
func asUser(user *entity.User) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			deliverycontext.SetUser(c, user)

			return next(c)
		}
	}
}

func doRequest(e *echo.Echo, method, path, contentType, body string) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}

	req := httptest.NewRequest(method, path, reader)
	if contentType != "" {
		req.Header.Set(echo.HeaderContentType, contentType)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	return rec
}

