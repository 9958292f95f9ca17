package auth

import (
	"testing"
	"time"

	"television/config"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test_session_secret_key_very_long_for_testing"

func newTestConfig(secret string) *config.Config {
	cfg := &config.Config{}
	cfg.SecretKey.Session = secret

	return cfg
}

func signToken(t *testing.T, method jwt.SigningMethod, key any, claims jwt.MapClaims) string {
	t.Helper()

	token, err := jwt.NewWithClaims(method, claims).SignedString(key)
	require.NoError(t, err)

	return token
}

func TestNewSessionValidator_RequiresSecret(t *testing.T) {
	_, err := NewSessionValidator(newTestConfig(""))
	assert.Error(t, err)
}

func TestSessionValidator_ValidateSession(t *testing.T) {
	validator, err := NewSessionValidator(newTestConfig(testSecret))
	require.NoError(t, err)

	userID := uuid.New()
	now := time.Now()

	t.Run("valid token", func(t *testing.T) {
		token := signToken(t, jwt.SigningMethodHS256, []byte(testSecret), jwt.MapClaims{
			"sub":   userID.String(),
			"email": "fan@example.com",
			"role":  "authenticated",
			"iat":   now.Unix(),
			"exp":   now.Add(time.Hour).Unix(),
		})

		claims, err := validator.ValidateSession(token)
		require.NoError(t, err)
		assert.Equal(t, userID, claims.UserID)
		assert.Equal(t, "fan@example.com", claims.Email)
		assert.Equal(t, "authenticated", claims.Role)
	})

	t.Run("expired token", func(t *testing.T) {
		token := signToken(t, jwt.SigningMethodHS256, []byte(testSecret), jwt.MapClaims{
			"sub": userID.String(),
			"exp": now.Add(-time.Hour).Unix(),
		})

		_, err := validator.ValidateSession(token)
		assert.Error(t, err)
	})

	t.Run("missing expiry", func(t *testing.T) {
		token := signToken(t, jwt.SigningMethodHS256, []byte(testSecret), jwt.MapClaims{
			"sub": userID.String(),
		})

		_, err := validator.ValidateSession(token)
		assert.Error(t, err)
	})

	t.Run("wrong secret", func(t *testing.T) {
		token := signToken(t, jwt.SigningMethodHS256, []byte("another-secret"), jwt.MapClaims{
			"sub": userID.String(),
			"exp": now.Add(time.Hour).Unix(),
		})

		_, err := validator.ValidateSession(token)
		assert.Error(t, err)
	})

	t.Run("subject is not a uuid", func(t *testing.T) {
		token := signToken(t, jwt.SigningMethodHS256, []byte(testSecret), jwt.MapClaims{
			"sub": "not-a-uuid",
			"exp": now.Add(time.Hour).Unix(),
		})

		_, err := validator.ValidateSession(token)
		assert.Error(t, err)
	})

	t.Run("garbage", func(t *testing.T) {
		_, err := validator.ValidateSession("not.a.jwt")
		assert.Error(t, err)
	})
}
