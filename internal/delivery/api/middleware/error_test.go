package middleware

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"television/internal/delivery/api/response"
	deliverycontext "television/internal/delivery/context"
	domainerrors "television/internal/domain/errors"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestErrorMiddleware_HandleHTTPError(t *testing.T) {
	tests := []struct {
		name        string
		err         error
		wantStatus  int
		wantCode    string
		wantDetails any
	}{
		{
			name:        "app error with details",
			err:         errors.Wrap(domainerrors.ErrUnsupportedProvider.WithDetails("netflix"), "initiate"),
			wantStatus:  http.StatusBadRequest,
			wantCode:    "UNSUPPORTED_PROVIDER",
			wantDetails: "netflix",
		},
		{
			name:       "forbidden hides details",
			err:        domainerrors.ErrDemoModeReadOnly.WithDetails("demo"),
			wantStatus: http.StatusForbidden,
			wantCode:   "DEMO_MODE_READ_ONLY",
		},
		{
			name:       "upstream error",
			err:        domainerrors.NewTokenExchangeError("prime-video", http.StatusBadRequest, nil),
			wantStatus: http.StatusBadGateway,
			wantCode:   "TOKEN_EXCHANGE_FAILED",
		},
		{
			name:       "echo error",
			err:        echo.NewHTTPError(http.StatusNotFound, "not found"),
			wantStatus: http.StatusNotFound,
			wantCode:   "HTTP_ERROR",
		},
		{
			name:       "unknown error",
			err:        errors.New("boom"),
			wantStatus: http.StatusInternalServerError,
			wantCode:   "INTERNAL_ERROR",
		},
	}

	m := NewErrorMiddleware(slog.New(slog.NewTextHandler(io.Discard, nil)))

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := echo.New()
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			rec := httptest.NewRecorder()
			c := e.NewContext(req, rec)
			deliverycontext.SetRequestID(c, "req-1")

			m.HandleHTTPError(tt.err, c)

			assert.Equal(t, tt.wantStatus, rec.Code)

			var body response.ErrorResponse
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
			assert.Equal(t, tt.wantCode, body.Error.Code)
			assert.Equal(t, tt.wantDetails, body.Error.Details)
			assert.Equal(t, "req-1", body.Meta.RequestID)
		})
	}
}
