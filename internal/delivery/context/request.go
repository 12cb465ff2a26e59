// Package context carries per-request values (request id, scoped logger, caller)
// on both the echo.Context and the request's context.Context.
package context

import (
	"context"
	"log/slog"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// HeaderXRequestID is the HTTP header name for request ID.
const HeaderXRequestID = "X-Request-Id"

type ctxKey int

const (
	keyRequestID ctxKey = iota
	keyLogger
	keyUser
)

// echo.Context stores values by string.
const (
	echoKeyRequestID = "patientapp.request_id"
	echoKeyUser      = "patientapp.user"
)

// BindRequest records requestID on c and puts it, together with logger, into the
// request context seen by use cases.
func BindRequest(c echo.Context, requestID string, logger *slog.Logger) {
	c.Set(echoKeyRequestID, requestID)

	req := c.Request()
	ctx := context.WithValue(req.Context(), keyRequestID, requestID)
	ctx = context.WithValue(ctx, keyLogger, logger)
	c.SetRequest(req.WithContext(ctx))
}

// RequestID returns the id bound by BindRequest. Requests that skipped the
// middleware get a fresh UUID so error envelopes always carry one.
func RequestID(c echo.Context) string {
	if id, ok := c.Get(echoKeyRequestID).(string); ok && id != "" {
		return id
	}

	return uuid.New().String()
}

// RequestIDFrom returns the request id stored in ctx, or "".
func RequestIDFrom(ctx context.Context) string {
	id, _ := ctx.Value(keyRequestID).(string)

	return id
}

// LoggerFrom returns the request-scoped logger, or fallback outside a request.
func LoggerFrom(ctx context.Context, fallback *slog.Logger) *slog.Logger {
	if logger, ok := ctx.Value(keyLogger).(*slog.Logger); ok && logger != nil {
		return logger
	}

	return fallback
}
