// Package metrics exposes Prometheus counters for provider connections, content aggregation and cache sync.
package metrics

import (
	"net/http"
	"time"

	"television/config"
	"television/internal/domain/service"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/fx"
)

var _ service.Metrics = (*Recorder)(nil)

// Recorder holds the Prometheus collectors of the service
type Recorder struct {
	registry *prometheus.Registry

	oauthCallbacks       *prometheus.CounterVec
	tokenRefreshes       *prometheus.CounterVec
	contentFetchFailures *prometheus.CounterVec
	aggregationDuration  prometheus.Histogram
	aggregatedEvents     prometheus.Gauge
	cacheSyncs           *prometheus.CounterVec
	cachedGames          prometheus.Gauge
}

// NewRecorder registers every collector on a dedicated registry.
func NewRecorder() *Recorder {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	factory := promauto.With(reg)

	return &Recorder{
		registry: reg,
		oauthCallbacks: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "television_oauth_callbacks_total",
				Help: "OAuth callback outcomes per provider",
			},
			[]string{"provider", "outcome"},
		),
		tokenRefreshes: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "television_token_refreshes_total",
				Help: "Provider token refresh attempts",
			},
			[]string{"provider", "outcome"},
		),
		contentFetchFailures: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "television_content_fetch_failures_total",
				Help: "Failed per-provider content fetches",
			},
			[]string{"provider"},
		),
		aggregationDuration: factory.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "television_aggregation_duration_seconds",
				Help:    "Duration of a content aggregation run",
				Buckets: prometheus.DefBuckets,
			},
		),
		aggregatedEvents: factory.NewGauge(
			prometheus.GaugeOpts{
				Name: "television_aggregated_events",
				Help: "Events returned by the last aggregation run",
			},
		),
		cacheSyncs: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "television_cache_syncs_total",
				Help: "Live games cache replacements",
			},
			[]string{"outcome"},
		),
		cachedGames: factory.NewGauge(
			prometheus.GaugeOpts{
				Name: "television_cached_games",
				Help: "Rows written by the last successful cache sync",
			},
		),
	}
}

func (r *Recorder) ObserveOAuthCallback(provider, outcome string) {
	r.oauthCallbacks.WithLabelValues(provider, outcome).Inc()
}

func (r *Recorder) ObserveTokenRefresh(provider, outcome string) {
	r.tokenRefreshes.WithLabelValues(provider, outcome).Inc()
}

func (r *Recorder) IncContentFetchFailure(provider string) {
	r.contentFetchFailures.WithLabelValues(provider).Inc()
}

func (r *Recorder) ObserveAggregation(duration time.Duration, events int) {
	r.aggregationDuration.Observe(duration.Seconds())
	r.aggregatedEvents.Set(float64(events))
}

func (r *Recorder) ObserveCacheSync(outcome string, rows int) {
	r.cacheSyncs.WithLabelValues(outcome).Inc()
	if outcome == OutcomeSuccess {
		r.cachedGames.Set(float64(rows))
	}
}

// Handler serves the registry in the Prometheus exposition format
func (r *Recorder) Handler() http.Handler {
	return promhttp.HandlerFor(r.registry, promhttp.HandlerOpts{Registry: r.registry})
}

// Outcome label values
const (
	OutcomeSuccess = "success"
	OutcomeFailure = "failure"
)

// noopMetrics discards every observation
type noopMetrics struct{}

func (noopMetrics) ObserveOAuthCallback(string, string) {}
func (noopMetrics) ObserveTokenRefresh(string, string) {}
func (noopMetrics) IncContentFetchFailure(string) {}
func (noopMetrics) ObserveAggregation(time.Duration, int) {}
func (noopMetrics) ObserveCacheSync(string, int) {}

// NewNoop returns a Metrics that records nothing
func NewNoop() service.Metrics {
	return noopMetrics{}
}

// Result carries the metrics recorder and the /metrics handler, which is nil when disabled
type Result struct {
	fx.Out

	Metrics service.Metrics
	Handler http.Handler `name:"metrics_handler"`
}

// New returns the Prometheus recorder when metrics are enabled and the noop otherwise.
func New(cfg *config.Config) Result {
	if cfg.Metrics == nil || !cfg.Metrics.Enabled {
		return Result{Metrics: NewNoop()}
	}

	recorder := NewRecorder()

	return Result{Metrics: recorder, Handler: recorder.Handler()}
}

// Module provides service.Metrics
//
//nolint:gochecknoglobals
var Module = fx.Options(
	fx.Provide(New),
)
