package repository

import (
	"context"

	"television/internal/domain/entity"
)

// GameCacheRepository is the read cache of aggregated events.
type GameCacheRepository interface {
	// ListAll returns every cached event ordered by start time ascending.
	ListAll(ctx context.Context) ([]*entity.CachedEvent, error)

	// DeleteAll empties the cache and returns the number of removed rows.
	DeleteAll(ctx context.Context) (int64, error)

	// CreateBatch inserts the events, assigning ids and creation time.
	CreateBatch(ctx context.Context, events []*entity.CachedEvent) error
}
