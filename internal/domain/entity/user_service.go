package entity

import (
	"time"

	"github.com/google/uuid"
)

// UserServiceSelection records whether a user marked a provider as connected.
// A true flag does not imply a stored token; for OAuth providers the token is authoritative.
type UserServiceSelection struct {
	UserID      uuid.UUID `json:"user_id"`
	ServiceName string    `json:"service_name"`
	Connected   bool      `json:"connected"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// ServiceStatus is a catalog entry annotated with the user's connection state.
type ServiceStatus struct {
	StreamingProvider
	Connected bool `json:"connected"`
}
