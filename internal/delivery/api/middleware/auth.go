package middleware

import (
	"net/http"
	"strings"

	"television/config"
	deliverycontext "television/internal/delivery/context"
	"television/internal/domain/entity"
	domainerrors "television/internal/domain/errors"
	"television/internal/domain/service"
	"television/internal/errors"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

const (
	// SessionCookie carries the session JWT when no Authorization header is sent
	SessionCookie = "session"
	// DemoCookie switches the request into demo mode when demo sessions are enabled
	DemoCookie = "demo-mode"

	bearerPrefix = "Bearer "
)

// AuthMiddleware resolves the AuthContext of each request
type AuthMiddleware struct {
	validator    service.SessionValidator
	demoEnabled  bool
	demoUserID   uuid.UUID
	demoServices []string
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(validator service.SessionValidator, cfg *config.Config) (*AuthMiddleware, error) {
	m := &AuthMiddleware{validator: validator}

	if cfg.Demo != nil && cfg.Demo.Enabled {
		m.demoEnabled = true
		m.demoServices = cfg.Demo.Services

		if cfg.Demo.UserID != "" {
			id, err := uuid.Parse(cfg.Demo.UserID)
			if err != nil {
				return nil, errors.Wrap(err, "demo.userId must be a uuid")
			}
			m.demoUserID = id
		}
	}

	return m, nil
}

// Authenticate rejects requests without a valid session or demo cookie.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		auth, err := m.resolve(c)
		if err != nil {
			return err
		}
		if auth == nil {
			return domainerrors.ErrUnauthorized
		}

		deliverycontext.SetAuth(c, auth)

		return next(c)
	}
}

// resolve returns nil without error for anonymous requests. A presented but invalid session
// is an error even when the demo cookie is set.
func (m *AuthMiddleware) resolve(c echo.Context) (*entity.AuthContext, error) {
	if token := sessionToken(c.Request()); token != "" {
		claims, err := m.validator.ValidateSession(token)
		if err != nil {
			return nil, domainerrors.ErrSessionInvalid
		}

		return entity.NewRealAuthContext(claims.UserID), nil
	}

	if m.demoEnabled {
		if cookie, err := c.Cookie(DemoCookie); err == nil && cookie.Value == "true" {
			return entity.NewDemoAuthContext(m.demoUserID, &entity.DemoFixtures{
				Services: m.demoServices,
			}), nil
		}
	}

	return nil, nil
}

func sessionToken(req *http.Request) string {
	if header := req.Header.Get(echo.HeaderAuthorization); strings.HasPrefix(header, bearerPrefix) {
		return strings.TrimSpace(strings.TrimPrefix(header, bearerPrefix))
	}

	if cookie, err := req.Cookie(SessionCookie); err == nil {
		return cookie.Value
	}

	return ""
}
