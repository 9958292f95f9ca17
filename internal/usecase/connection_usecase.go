package usecase

import (
	"context"
	"time"

	"television/internal/domain/entity"

	"github.com/google/uuid"
)

// ConnectionInitiation is what the client needs to start the provider consent redirect
type ConnectionInitiation struct {
	Provider         string
	UserID           uuid.UUID
	State            string
	AuthorizationURL string
	ExpiresAt        time.Time
	Status           entity.ConnectionState
}

// CallbackInput carries the callback query and the cookies set at initiation
type CallbackInput struct {
	Provider    string
	Code        string
	State       string
	Error       string
	CookieState string
	CookieUser  string
}

// CallbackResult is the terminal state of a connection attempt
type CallbackResult struct {
	Provider string
	UserID   uuid.UUID
	Status   entity.ConnectionState
	Reason   entity.FailureReason
	// ProviderError is the sanitised error code the provider sent, if any
	ProviderError string
}

// Connected reports whether the attempt ended in the connected state
func (r *CallbackResult) Connected() bool {
	return r.Status == entity.ConnectionConnected
}

// ErrorCode is the value placed on the provider_error redirect parameter
func (r *CallbackResult) ErrorCode() string {
	if r.ProviderError != "" {
		return r.ProviderError
	}

	return string(r.Reason)
}

// ConnectionUsecase drives the provider OAuth connect and disconnect flow
type ConnectionUsecase interface {
	// Initiate records a pending authorization and returns the consent URL
	Initiate(ctx context.Context, auth *entity.AuthContext, provider string) (*ConnectionInitiation, error)

	// HandleCallback validates the callback and stores the token. It never returns an error;
	// failures are reported through CallbackResult.
	HandleCallback(ctx context.Context, input *CallbackInput) *CallbackResult

	// Disconnect removes the token and clears the selection flag. It is idempotent.
	Disconnect(ctx context.Context, auth *entity.AuthContext, provider string) error
}
