package middleware

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"television/config"
	deliverycontext "television/internal/delivery/context"
	"television/internal/domain/entity"
	"television/internal/domain/service"
	mockSvc "television/internal/mocks/service"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testDemoUserID = "7f0c3a52-3b8e-4d4e-9d55-0d2b8f6f3a11"

func newDemoConfig(enabled bool) *config.Config {
	cfg := &config.Config{}
	cfg.ApplyDefaults()
	cfg.Demo.Enabled = enabled
	cfg.Demo.UserID = testDemoUserID
	cfg.Demo.Services = []string{entity.ProviderESPNPlus}

	return cfg
}

// serveAuthenticated runs req through Authenticate and returns the resolved auth context
func serveAuthenticated(t *testing.T, m *AuthMiddleware, req *http.Request) (*httptest.ResponseRecorder, *entity.AuthContext) {
	t.Helper()

	e := echo.New()
	e.HTTPErrorHandler = NewErrorMiddleware(slog.New(slog.NewTextHandler(io.Discard, nil))).HandleHTTPError

	var resolved *entity.AuthContext
	e.GET("/services", func(c echo.Context) error {
		resolved = deliverycontext.AuthFrom(c)

		return c.NoContent(http.StatusNoContent)
	}, m.Authenticate)

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	return rec, resolved
}

func TestAuthMiddleware_BearerSession(t *testing.T) {
	validator := mockSvc.NewMockSessionValidator(t)
	m, err := NewAuthMiddleware(validator, newDemoConfig(false))
	require.NoError(t, err)
	userID := uuid.New()

	validator.EXPECT().ValidateSession("good-token").Return(&service.SessionClaims{UserID: userID}, nil)

	req := httptest.NewRequest(http.MethodGet, "/services", nil)
	req.Header.Set(echo.HeaderAuthorization, "Bearer good-token")
	rec, auth := serveAuthenticated(t, m, req)

	assert.Equal(t, http.StatusNoContent, rec.Code)
	require.NotNil(t, auth)
	assert.True(t, auth.IsReal())
	assert.Equal(t, userID, auth.UserID)
}

func TestAuthMiddleware_SessionCookie(t *testing.T) {
	validator := mockSvc.NewMockSessionValidator(t)
	m, err := NewAuthMiddleware(validator, newDemoConfig(false))
	require.NoError(t, err)
	userID := uuid.New()

	validator.EXPECT().ValidateSession("cookie-token").Return(&service.SessionClaims{UserID: userID}, nil)

	req := httptest.NewRequest(http.MethodGet, "/services", nil)
	req.AddCookie(&http.Cookie{Name: SessionCookie, Value: "cookie-token"})
	rec, auth := serveAuthenticated(t, m, req)

	assert.Equal(t, http.StatusNoContent, rec.Code)
	require.NotNil(t, auth)
	assert.Equal(t, userID, auth.UserID)
}

func TestAuthMiddleware_InvalidSession(t *testing.T) {
	validator := mockSvc.NewMockSessionValidator(t)
	m, err := NewAuthMiddleware(validator, newDemoConfig(true))
	require.NoError(t, err)

	validator.EXPECT().ValidateSession("expired").Return(nil, errors.New("token is expired"))

	req := httptest.NewRequest(http.MethodGet, "/services", nil)
	req.Header.Set(echo.HeaderAuthorization, "Bearer expired")
	req.AddCookie(&http.Cookie{Name: DemoCookie, Value: "true"})
	rec, auth := serveAuthenticated(t, m, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), "SESSION_INVALID")
	assert.Nil(t, auth)
}

func TestAuthMiddleware_DemoCookie(t *testing.T) {
	tests := []struct {
		name        string
		demoEnabled bool
		cookieValue string
		wantDemo    bool
	}{
		{"enabled", true, "true", true},
		{"disabled in config", false, "true", false},
		{"cookie not true", true, "1", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, err := NewAuthMiddleware(mockSvc.NewMockSessionValidator(t), newDemoConfig(tt.demoEnabled))
			require.NoError(t, err)

			req := httptest.NewRequest(http.MethodGet, "/services", nil)
			req.AddCookie(&http.Cookie{Name: DemoCookie, Value: tt.cookieValue})
			rec, auth := serveAuthenticated(t, m, req)

			if !tt.wantDemo {
				assert.Equal(t, http.StatusUnauthorized, rec.Code)
				assert.Contains(t, rec.Body.String(), "UNAUTHORIZED")

				return
			}

			assert.Equal(t, http.StatusNoContent, rec.Code)
			require.NotNil(t, auth)
			assert.True(t, auth.IsDemo())
			assert.Equal(t, testDemoUserID, auth.UserID.String())
			assert.Equal(t, []string{entity.ProviderESPNPlus}, auth.Demo.Services)
		})
	}
}

func TestAuthMiddleware_Anonymous(t *testing.T) {
	m, err := NewAuthMiddleware(mockSvc.NewMockSessionValidator(t), newDemoConfig(true))
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/services", nil)
	req.Header.Set(echo.HeaderAuthorization, "Basic dXNlcjpwYXNz")
	rec, auth := serveAuthenticated(t, m, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Nil(t, auth)
}

func TestNewAuthMiddleware_InvalidDemoUser(t *testing.T) {
	cfg := newDemoConfig(true)
	cfg.Demo.UserID = "demo-user"

	_, err := NewAuthMiddleware(mockSvc.NewMockSessionValidator(t), cfg)

	assert.Error(t, err)
}
