package service

import (
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// SessionClaims are the claims of a user session issued by the identity provider.
type SessionClaims struct {
	UserID uuid.UUID
	Email  string
	Role   string
	jwt.RegisteredClaims
}

// SessionValidator verifies session tokens presented by the web app.
type SessionValidator interface {
	// ValidateSession checks signature and expiry and returns the session claims.
	ValidateSession(tokenString string) (*SessionClaims, error)
}
