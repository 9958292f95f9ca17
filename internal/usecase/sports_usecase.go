package usecase

import (
	"context"
	"time"

	"television/internal/domain/entity"
)

// Sources reported by GetLiveGames
const (
	SourceLiveFetch         = "live_fetch"
	SourceLiveFetchFallback = "live_fetch_fallback"
	SourceDatabaseCache     = "database_cache"
)

// LiveGamesQuery selects the services to show. A nil Services means every known service.
type LiveGamesQuery struct {
	Services []string
	Refresh  bool
}

// LiveGamesResult is the aggregated event list and where it came from
type LiveGamesResult struct {
	Games       []*entity.SportsEvent
	Services    []string
	LastUpdated time.Time
	Source      string
}

// SyncResult describes one cache replacement
type SyncResult struct {
	GamesCount  int
	Services    []string
	LastUpdated time.Time
}

// Aggregator fans out to content providers and merges their events
type Aggregator interface {
	// ResolveServices keeps known ids in request order. Nil selects every known service.
	ResolveServices(requested []string) []string

	// Aggregate fetches every service concurrently. A failing provider contributes no events.
	// The result has live events first, then ascending start time.
	Aggregate(ctx context.Context, services []string) []*entity.SportsEvent
}

// SportsUsecase serves and synchronizes the live games cache
type SportsUsecase interface {
	// GetLiveGames reads the cache, or fetches and syncs when Refresh is set
	GetLiveGames(ctx context.Context, query *LiveGamesQuery) (*LiveGamesResult, error)

	// SyncLiveGames fetches the services and replaces the cache in one transaction
	SyncLiveGames(ctx context.Context, services []string) (*SyncResult, error)
}
