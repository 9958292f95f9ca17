package impl

import (
	"context"
	"log/slog"
	"slices"
	"time"

	"television/config"
	deliverycontext "television/internal/delivery/context"
	"television/internal/domain/entity"
	"television/internal/domain/service"
	"television/internal/usecase"

	"go.uber.org/fx"
	"golang.org/x/sync/errgroup"
)

type aggregator struct {
	providers    map[string]service.ContentProvider
	known        []string
	fetchTimeout time.Duration
	metrics      service.Metrics
	logger       *slog.Logger
	clock        func() time.Time
}

// AggregatorParams holds dependencies for Aggregator, injected by Fx.
type AggregatorParams struct {
	fx.In

	Providers []service.ContentProvider `group:"content_providers"`
	Metrics   service.Metrics
	Config    *config.Config
	Logger    *slog.Logger
}

// NewAggregator indexes the content providers by service id. Known services keep
// registration order.
func NewAggregator(params AggregatorParams) usecase.Aggregator {
	a := &aggregator{
		providers:    make(map[string]service.ContentProvider, len(params.Providers)),
		known:        make([]string, 0, len(params.Providers)),
		fetchTimeout: params.Config.Aggregator.FetchTimeout,
		metrics:      params.Metrics,
		logger:       params.Logger,
		clock:        time.Now,
	}
	for _, p := range params.Providers {
		if _, dup := a.providers[p.ID()]; dup {
			continue
		}
		a.providers[p.ID()] = p
		a.known = append(a.known, p.ID())
	}

	return a
}

func (a *aggregator) log(ctx context.Context) *slog.Logger {
	return deliverycontext.Logger(ctx, a.logger)
}

// ResolveServices drops unknown and repeated ids
func (a *aggregator) ResolveServices(requested []string) []string {
	if requested == nil {
		return slices.Clone(a.known)
	}

	resolved := make([]string, 0, len(requested))
	for _, id := range requested {
		if _, ok := a.providers[id]; ok && !slices.Contains(resolved, id) {
			resolved = append(resolved, id)
		}
	}

	return resolved
}

// Aggregate fans out to the providers and merges in input order before sorting
func (a *aggregator) Aggregate(ctx context.Context, services []string) []*entity.SportsEvent {
	start := a.clock()
	now := start
	results := make([][]*entity.SportsEvent, len(services))

	var g errgroup.Group
	for i, id := range services {
		provider, ok := a.providers[id]
		if !ok {
			continue
		}

		g.Go(func() error {
			fetchCtx, cancel := context.WithTimeout(ctx, a.fetchTimeout)
			defer cancel()

			events, err := provider.FetchEvents(fetchCtx, now)
			if err != nil {
				a.metrics.IncContentFetchFailure(id)
				a.log(ctx).Warn("content fetch failed",
					slog.String("service", id),
					slog.Any("error", err),
				)

				return nil
			}
			results[i] = events

			return nil
		})
	}
	// Provider errors are absorbed above, so Wait never fails.
	_ = g.Wait()

	merged := make([]*entity.SportsEvent, 0)
	for _, events := range results {
		merged = append(merged, events...)
	}
	SortEvents(merged)

	a.metrics.ObserveAggregation(a.clock().Sub(start), len(merged))

	return merged
}

// SortEvents orders live events first, then by ascending start time. Ties keep their order.
func SortEvents(events []*entity.SportsEvent) {
	slices.SortStableFunc(events, func(x, y *entity.SportsEvent) int {
		if x.IsLive != y.IsLive {
			if x.IsLive {
				return -1
			}

			return 1
		}

		return x.StartTime.Compare(y.StartTime)
	})
}
