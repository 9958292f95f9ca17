package impl

import (
	"context"
	"log/slog"
	"slices"
	"strings"
	"time"

	deliverycontext "television/internal/delivery/context"
	"television/internal/domain/entity"
	"television/internal/domain/repository"
	"television/internal/domain/service"
	"television/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// Cache sync outcomes reported to metrics
const (
	syncSuccess = "success"
	syncFailure = "failure"
)

type sportsService struct {
	aggregator usecase.Aggregator
	cacheRepo  repository.GameCacheRepository
	txManager  repository.TransactionManager
	metrics    service.Metrics
	logger     *slog.Logger
	clock      func() time.Time
}

// SportsServiceParams holds dependencies for SportsService, injected by Fx.
type SportsServiceParams struct {
	fx.In

	Aggregator usecase.Aggregator
	CacheRepo  repository.GameCacheRepository
	TxManager  repository.TransactionManager
	Metrics    service.Metrics
	Logger     *slog.Logger
}

// NewSportsService creates the live games use case
func NewSportsService(params SportsServiceParams) usecase.SportsUsecase {
	return &sportsService{
		aggregator: params.Aggregator,
		cacheRepo:  params.CacheRepo,
		txManager:  params.TxManager,
		metrics:    params.Metrics,
		logger:     params.Logger,
		clock:      time.Now,
	}
}

func (s *sportsService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.Logger(ctx, s.logger)
}

// GetLiveGames serves the cache unless a refresh is requested. A failed cache read falls back
// to a live fetch.
func (s *sportsService) GetLiveGames(ctx context.Context, query *usecase.LiveGamesQuery) (*usecase.LiveGamesResult, error) {
	services := s.aggregator.ResolveServices(query.Services)

	if query.Refresh {
		games := s.aggregator.Aggregate(ctx, services)
		if err := s.replaceCache(ctx, games); err != nil {
			// The fresh list is still served; the next sync retries the write.
			s.log(ctx).Error("failed to sync live games cache", slog.Any("error", err))
		}

		return &usecase.LiveGamesResult{
			Games:       games,
			Services:    services,
			LastUpdated: s.clock(),
			Source:      usecase.SourceLiveFetch,
		}, nil
	}

	cached, err := s.cacheRepo.ListAll(ctx)
	if err != nil {
		s.log(ctx).Warn("failed to read live games cache, fetching live", slog.Any("error", err))

		return &usecase.LiveGamesResult{
			Games:       s.aggregator.Aggregate(ctx, services),
			Services:    services,
			LastUpdated: s.clock(),
			Source:      usecase.SourceLiveFetchFallback,
		}, nil
	}

	now := s.clock()
	games := make([]*entity.SportsEvent, 0, len(cached))
	for _, row := range cached {
		if slices.Contains(services, row.App) {
			games = append(games, cachedToEvent(row, now))
		}
	}

	lastUpdated := now
	if len(cached) > 0 {
		lastUpdated = cached[0].CreatedAt
	}

	return &usecase.LiveGamesResult{
		Games:       games,
		Services:    services,
		LastUpdated: lastUpdated,
		Source:      usecase.SourceDatabaseCache,
	}, nil
}

// SyncLiveGames fetches the services and replaces the whole cache
func (s *sportsService) SyncLiveGames(ctx context.Context, services []string) (*usecase.SyncResult, error) {
	resolved := s.aggregator.ResolveServices(services)
	games := s.aggregator.Aggregate(ctx, resolved)

	if err := s.replaceCache(ctx, games); err != nil {
		return nil, err
	}

	s.log(ctx).Info("live games cache synced",
		slog.Int("games", len(games)),
		slog.Any("services", resolved),
	)

	return &usecase.SyncResult{
		GamesCount:  len(games),
		Services:    resolved,
		LastUpdated: s.clock(),
	}, nil
}

// replaceCache deletes every cached row and inserts games in one transaction
func (s *sportsService) replaceCache(ctx context.Context, games []*entity.SportsEvent) error {
	rows := make([]*entity.CachedEvent, 0, len(games))
	for _, g := range games {
		rows = append(rows, eventToCached(g))
	}

	err := s.txManager.Execute(ctx, func(factory repository.RepositoryFactory) error {
		cacheRepo := factory.NewGameCacheRepository()

		if _, err := cacheRepo.DeleteAll(ctx); err != nil {
			return errors.Wrap(err, "failed to clear live games cache")
		}
		if len(rows) == 0 {
			return nil
		}

		return errors.Wrap(cacheRepo.CreateBatch(ctx, rows), "failed to insert live games")
	})
	if err != nil {
		s.metrics.ObserveCacheSync(syncFailure, 0)

		return errors.Wrap(err, "failed to replace live games cache")
	}

	s.metrics.ObserveCacheSync(syncSuccess, len(rows))

	return nil
}

func eventToCached(e *entity.SportsEvent) *entity.CachedEvent {
	return &entity.CachedEvent{
		League:    e.League,
		Match:     e.Title,
		Network:   e.Network,
		App:       e.StreamingService,
		Link:      e.DeepLink,
		StartTime: e.StartTime,
		IsLive:    e.IsLive,
	}
}

func cachedToEvent(row *entity.CachedEvent, now time.Time) *entity.SportsEvent {
	return &entity.SportsEvent{
		ID:               row.ID.String(),
		Title:            row.Match,
		League:           row.League,
		Teams:            teamsFromMatch(row.Match),
		StartTime:        row.StartTime,
		IsLive:           row.IsLive,
		IsUpcoming:       row.StartTime.After(now),
		Network:          row.Network,
		StreamingService: row.App,
		DeepLink:         row.Link,
		Description:      "Watch on " + row.Network,
	}
}

// teamsFromMatch splits "Show: A vs B" into its two sides. Titles without " vs " are one entry.
func teamsFromMatch(match string) []string {
	if !strings.Contains(match, " vs ") {
		return []string{match}
	}

	if idx := strings.Index(match, ": "); idx >= 0 && idx < strings.Index(match, " vs ") {
		match = match[idx+2:]
	}

	return strings.Split(match, " vs ")
}
