package entity

import (
	"time"

	"github.com/google/uuid"
)

// ProviderToken is the OAuth credential a user holds for one provider.
// At most one exists per (UserID, Provider).
type ProviderToken struct {
	UserID           uuid.UUID      `json:"user_id"`
	Provider         string         `json:"provider_name"`
	AccessToken      string         `json:"-"`
	RefreshToken     string         `json:"-"`
	ExpiresAt        time.Time      `json:"expires_at"`
	ProviderUserID   string         `json:"provider_user_id"`
	ProviderEmail    string         `json:"provider_email"`
	ProviderMetadata map[string]any `json:"provider_metadata,omitempty"`
	CreatedAt        time.Time      `json:"created_at"`
	UpdatedAt        time.Time      `json:"updated_at"`
}

// IsExpired reports whether the access token is no longer usable at now.
func (t *ProviderToken) IsExpired(now time.Time) bool {
	return !now.Before(t.ExpiresAt)
}

// CanRefresh reports whether a refresh grant is possible.
func (t *ProviderToken) CanRefresh() bool {
	return t.RefreshToken != ""
}
