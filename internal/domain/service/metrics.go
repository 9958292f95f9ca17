package service

import "time"

// Metrics records operational counters for the connection and aggregation pipelines.
type Metrics interface {
	// ObserveOAuthCallback counts callback outcomes; outcome is "connected" or a failure reason.
	ObserveOAuthCallback(provider, outcome string)

	// ObserveTokenRefresh counts refresh attempts; outcome is "success" or "failure".
	ObserveTokenRefresh(provider, outcome string)

	// IncContentFetchFailure counts failed per-provider content fetches.
	IncContentFetchFailure(provider string)

	// ObserveAggregation records one aggregation run.
	ObserveAggregation(duration time.Duration, events int)

	// ObserveCacheSync records a cache replacement; outcome is "success" or "failure".
	ObserveCacheSync(outcome string, rows int)
}
