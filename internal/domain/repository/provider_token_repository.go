// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"

	"television/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// ErrTokenNotFound is returned when no token exists for the (user, provider) pair.
var ErrTokenNotFound = errors.New("provider token not found")

// ProviderTokenRepository persists one OAuth credential per (user, provider).
type ProviderTokenRepository interface {
	// FindToken returns the stored token or ErrTokenNotFound.
	FindToken(ctx context.Context, userID uuid.UUID, provider string) (*entity.ProviderToken, error)

	// UpsertToken creates or overwrites the token keyed by (UserID, Provider).
	UpsertToken(ctx context.Context, token *entity.ProviderToken) error

	// DeleteToken removes the token and reports whether a row existed.
	DeleteToken(ctx context.Context, userID uuid.UUID, provider string) (bool, error)
}
