package entity

import (
	"time"

	"github.com/google/uuid"
)

// PendingAuthorization binds an OAuth state nonce to the user who started the flow.
// It is consumed once by the callback.
type PendingAuthorization struct {
	State     string    `json:"state"`
	UserID    uuid.UUID `json:"user_id"`
	Provider  string    `json:"provider"`
	CreatedAt time.Time `json:"created_at"`
	ExpiresAt time.Time `json:"expires_at"`
}

// IsExpired reports whether the authorization window has closed.
func (p *PendingAuthorization) IsExpired(now time.Time) bool {
	return !now.Before(p.ExpiresAt)
}

// ConnectionState is the provider connection state machine. A flow without a pending
// record is idle; storing the record moves it straight to awaiting the callback.
type ConnectionState string

const (
	ConnectionAwaitingCallback ConnectionState = "awaiting_callback"
	ConnectionConnected        ConnectionState = "connected"
	ConnectionFailed           ConnectionState = "failed"
)

// FailureReason is the machine-readable code carried on the settings redirect.
type FailureReason string

const (
	FailureProviderDenied      FailureReason = "provider_denied"
	FailureInvalidRequest      FailureReason = "invalid_request"
	FailureInvalidState        FailureReason = "invalid_state"
	FailureConnectionFailed    FailureReason = "connection_failed"
	FailureUnsupportedProvider FailureReason = "unsupported_provider"
)
