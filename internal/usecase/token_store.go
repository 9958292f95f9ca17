// Package usecase defines the application use cases consumed by the delivery layer.
package usecase

import (
	"context"

	"television/internal/domain/entity"
	"television/internal/domain/repository"
	"television/internal/domain/service"

	"github.com/google/uuid"
)

// TokenStore reads and writes provider tokens, refreshing expired ones on read.
type TokenStore interface {
	// Get returns a usable token. An expired token is refreshed when possible;
	// otherwise ErrProviderNotConnected is returned.
	Get(ctx context.Context, userID uuid.UUID, provider string) (*entity.ProviderToken, error)

	// Put stores a freshly issued token together with the provider profile.
	Put(ctx context.Context, userID uuid.UUID, provider string, token *service.TokenResponse, profile *service.ProviderProfile) (*entity.ProviderToken, error)

	// Delete removes the token; a missing token is not an error.
	Delete(ctx context.Context, userID uuid.UUID, provider string) error

	// WithRepository returns a store writing through repo, typically one bound to a transaction.
	// Refreshes stay collapsed with the parent store.
	WithRepository(repo repository.ProviderTokenRepository) TokenStore
}
