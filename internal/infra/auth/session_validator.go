// Package auth provides concrete implementations for authentication-related domain services.
package auth

import (
	"time"

	"television/config"
	"television/internal/domain/service"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// sessionLeeway tolerates clock skew between this service and the identity provider
const sessionLeeway = 30 * time.Second

// jwtSessionValidator verifies HS256 session tokens whose subject is the user id.
type jwtSessionValidator struct {
	secret []byte
}

// sessionTokenClaims is the wire shape of the session token
type sessionTokenClaims struct {
	Email string `json:"email,omitempty"`
	Role  string `json:"role,omitempty"`
	jwt.RegisteredClaims
}

// NewSessionValidator is the constructor for jwtSessionValidator.
func NewSessionValidator(cfg *config.Config) (service.SessionValidator, error) {
	if cfg.SecretKey.Session == "" {
		return nil, errors.New("session secret must be provided")
	}

	return &jwtSessionValidator{secret: []byte(cfg.SecretKey.Session)}, nil
}

// ValidateSession checks signature, expiry and subject of a session token.
func (v *jwtSessionValidator) ValidateSession(tokenString string) (*service.SessionClaims, error) {
	claims := &sessionTokenClaims{}

	_, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}

		return v.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithLeeway(sessionLeeway),
	)
	if err != nil {
		return nil, errors.Wrap(err, "invalid session token")
	}

	userID, err := uuid.Parse(claims.Subject)
	if err != nil {
		return nil, errors.Wrap(err, "session subject is not a user id")
	}

	return &service.SessionClaims{
		UserID:           userID,
		Email:            claims.Email,
		Role:             claims.Role,
		RegisteredClaims: claims.RegisteredClaims,
	}, nil
}
