package repository

import (
	"context"

	"television/internal/domain/entity"

	"github.com/google/uuid"
)

// UserServiceRepository persists the per-user service selection flags.
type UserServiceRepository interface {
	// ListByUser returns every selection row of the user.
	ListByUser(ctx context.Context, userID uuid.UUID) ([]*entity.UserServiceSelection, error)

	// SetConnected upserts the (user, service) row with the given flag.
	SetConnected(ctx context.Context, userID uuid.UUID, serviceName string, connected bool) error
}
