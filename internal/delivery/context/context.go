// Package context carries the request id, the request logger and the caller's AuthContext
// from the echo middleware down to the use cases and the sync worker.
package context

import (
	"context"
	"log/slog"

	"television/internal/domain/entity"

	"github.com/labstack/echo/v4"
)

// HeaderXRequestID is the HTTP header name for request ID.
const HeaderXRequestID = "X-Request-Id"

type key string

const (
	keyRequestID key = "request_id"
	keyLogger    key = "logger"
	keyAuth      key = "auth"
)

// Bind returns ctx carrying requestID and a logger tagged with it.
func Bind(ctx context.Context, requestID string, logger *slog.Logger) context.Context {
	ctx = context.WithValue(ctx, keyRequestID, requestID)

	return context.WithValue(ctx, keyLogger, logger.With(slog.String("request_id", requestID)))
}

// RequestIDFrom returns the request id bound to ctx, or an empty string.
func RequestIDFrom(ctx context.Context) string {
	id, _ := ctx.Value(keyRequestID).(string)

	return id
}

// Logger returns the request logger bound to ctx, or fallback outside a request.
func Logger(ctx context.Context, fallback *slog.Logger) *slog.Logger {
	if logger, ok := ctx.Value(keyLogger).(*slog.Logger); ok && logger != nil {
		return logger
	}

	return fallback
}

// SetRequestID records the request id on echo.Context for response envelopes.
func SetRequestID(c echo.Context, requestID string) {
	c.Set(string(keyRequestID), requestID)
}

// RequestID returns the id of the current request. It falls back to the id bound to the
// request context, which the worker sets without touching echo.Context.
func RequestID(c echo.Context) string {
	if id, ok := c.Get(string(keyRequestID)).(string); ok && id != "" {
		return id
	}

	return RequestIDFrom(c.Request().Context())
}

// SetAuth stores the caller's AuthContext in echo.Context.
func SetAuth(c echo.Context, auth *entity.AuthContext) {
	c.Set(string(keyAuth), auth)
}

// AuthFrom returns the caller's AuthContext, or nil when the request is anonymous.
func AuthFrom(c echo.Context) *entity.AuthContext {
	auth, _ := c.Get(string(keyAuth)).(*entity.AuthContext)

	return auth
}
