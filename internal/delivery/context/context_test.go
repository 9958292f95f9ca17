package context

import (
	"bytes"
	"context"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"television/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
)

func TestBind_TagsLoggerWithRequestID(t *testing.T) {
	var buf bytes.Buffer
	base := slog.New(slog.NewTextHandler(&buf, nil))

	ctx := Bind(context.Background(), "req-7", base)
	Logger(ctx, nil).Info("sync started")

	assert.Equal(t, "req-7", RequestIDFrom(ctx))
	assert.Contains(t, buf.String(), "request_id=req-7")
}

func TestLogger_FallsBackOutsideRequest(t *testing.T) {
	fallback := slog.New(slog.NewTextHandler(&bytes.Buffer{}, nil))

	assert.Same(t, fallback, Logger(context.Background(), fallback))
	assert.Empty(t, RequestIDFrom(context.Background()))
}

func TestRequestID_PrefersEchoValue(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req = req.WithContext(Bind(req.Context(), "from-context", slog.Default()))
	c := e.NewContext(req, httptest.NewRecorder())

	assert.Equal(t, "from-context", RequestID(c))

	SetRequestID(c, "from-echo")
	assert.Equal(t, "from-echo", RequestID(c))
}

func TestAuthFrom(t *testing.T) {
	e := echo.New()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), httptest.NewRecorder())

	assert.Nil(t, AuthFrom(c))

	auth := entity.NewRealAuthContext(uuid.New())
	SetAuth(c, auth)

	assert.Same(t, auth, AuthFrom(c))
}
