package middleware

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"television/config"
	deliverycontext "television/internal/delivery/context"
	"television/internal/errors"

	"github.com/labstack/echo/v4"
)

// quietPaths are polled by probes and scrapers and only logged on failure
var quietPaths = map[string]bool{ //nolint:gochecknoglobals
	"/health":  true,
	"/metrics": true,
}

// LoggerMiddleware logs failed requests, and every request when debug is on
type LoggerMiddleware struct {
	logger *slog.Logger
	debug  bool
}

// NewLoggerMiddleware creates a new logger middleware
func NewLoggerMiddleware(logger *slog.Logger, config *config.Config) *LoggerMiddleware {
	return &LoggerMiddleware{
		logger: logger,
		debug:  config.Env.Debug,
	}
}

// Handle processes request logging
func (m *LoggerMiddleware) Handle(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		start := time.Now()
		err := next(c)

		status := c.Response().Status
		if err != nil && !c.Response().Committed {
			status = statusOf(err)
		}

		if status >= 400 || (m.debug && !quietPaths[c.Path()]) {
			m.logRequest(c, start, status, err)
		}

		return err
	}
}

func (m *LoggerMiddleware) logRequest(c echo.Context, start time.Time, status int, err error) {
	req := c.Request()

	fields := []slog.Attr{
		slog.String("request_id", deliverycontext.RequestID(c)),
		slog.String("method", req.Method),
		slog.String("route", c.Path()),
		slog.String("uri", req.URL.Path),
		slog.Int("status", status),
		slog.Duration("latency", time.Since(start)),
		slog.String("remote_ip", c.RealIP()),
		slog.String("user_agent", req.UserAgent()),
	}

	// the OAuth callback carries the authorization code in its query
	if len(req.URL.RawQuery) > 0 && !isCallbackRoute(c.Path()) {
		fields = append(fields, slog.String("query", req.URL.RawQuery))
	}

	if err != nil {
		fields = append(fields, slog.Any("error", err))
	}

	logLevel := slog.LevelInfo
	if status >= 400 {
		logLevel = slog.LevelWarn
	}
	if status >= 500 {
		logLevel = slog.LevelError
	}

	m.logger.LogAttrs(context.Background(), logLevel, "http request", fields...)
}

// statusOf predicts the status the error handler renders for err
func statusOf(err error) int {
	if status, ok := errors.HTTPStatus(err); ok {
		return status
	}
	if httpErr, ok := errors.AsType[*echo.HTTPError](err); ok {
		return httpErr.Code
	}

	return http.StatusInternalServerError
}

func isCallbackRoute(route string) bool {
	return route == "/auth/callback/:provider"
}
