package repository

import (
	"context"

	"television/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// ErrPendingStateNotFound is returned when no live pending authorization exists.
var ErrPendingStateNotFound = errors.New("pending authorization not found")

// PendingStateRepository holds in-flight OAuth authorizations keyed by (user, provider).
// Saving replaces any earlier attempt for the same key.
type PendingStateRepository interface {
	// Save stores the pending authorization until its ExpiresAt.
	Save(ctx context.Context, pending *entity.PendingAuthorization) error

	// Find returns the unexpired pending authorization or ErrPendingStateNotFound.
	Find(ctx context.Context, userID uuid.UUID, provider string) (*entity.PendingAuthorization, error)

	// Consume atomically deletes the record only if it still exists, is unexpired and carries
	// state. It reports whether this call removed it.
	Consume(ctx context.Context, userID uuid.UUID, provider, state string) (bool, error)
}
