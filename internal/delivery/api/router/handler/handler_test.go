package handler

import (
	"io"
	"log/slog"
	"testing"

	apimiddleware "television/internal/delivery/api/middleware"
	"television/internal/delivery/api/validator"
	deliverycontext "television/internal/delivery/context"
	"television/internal/domain/entity"

	"github.com/labstack/echo/v4"
)

func newTestEcho(t *testing.T) *echo.Echo {
	t.Helper()

	e := echo.New()
	e.Validator = validator.New()
	e.HTTPErrorHandler = apimiddleware.NewErrorMiddleware(slog.New(slog.NewTextHandler(io.Discard, nil))).HandleHTTPError

	return e
}

// withAuth stands in for the auth middleware
func withAuth(auth *entity.AuthContext) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if auth != nil {
				deliverycontext.SetAuth(c, auth)
			}

			return next(c)
		}
	}
}
