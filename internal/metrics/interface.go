package metrics

// Metrics defines the interface for collecting application metrics.
// This decouples the application from the specific metrics implementation (e.g., Prometheus).
type Metrics interface {
	IncLeaderboardBuilds()
	IncPlayerLookups()
	IncHeadToHeadBuilds()
	IncStoreFailures()
	ObserveAggregationDuration(duration float64)
	SetStartupTime(duration float64)
}
