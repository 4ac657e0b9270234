package metrics

import "github.com/prometheus/client_golang/prometheus"

// Service holds all the Prometheus metrics for the application.
// By defining them all in one place, we ensure consistency in naming and labeling.
type Service struct {
	LeaderboardBuilds   prometheus.Counter
	PlayerLookups       prometheus.Counter
	HeadToHeadBuilds    prometheus.Counter
	StoreFailures       prometheus.Counter
	AggregationDuration prometheus.Histogram
	StartupTimeSeconds  prometheus.Gauge
}
