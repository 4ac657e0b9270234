package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var _ Metrics = (*Service)(nil)

// NewMetricsHandler returns an http.Handler for the given Gatherer.
// If no gatherer is provided, it uses the default one.
func NewMetricsHandler(gatherer ...prometheus.Gatherer) http.Handler {
	gath := prometheus.DefaultGatherer
	if len(gatherer) > 0 {
		gath = gatherer[0]
	}
	return promhttp.HandlerFor(gath, promhttp.HandlerOpts{})
}

// NewService creates and registers the Prometheus metrics.
// If no registerer is provided, it uses the default Prometheus registerer.
func NewService(registerer ...prometheus.Registerer) *Service {
	reg := prometheus.DefaultRegisterer
	if len(registerer) > 0 {
		reg = registerer[0]
	}

	s := &Service{
		LeaderboardBuilds: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "swudash_leaderboard_builds_total",
			Help: "The total number of leaderboard aggregations computed.",
		}),
		PlayerLookups: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "swudash_player_lookups_total",
			Help: "The total number of player summary lookups.",
		}),
		HeadToHeadBuilds: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "swudash_head_to_head_builds_total",
			Help: "The total number of head-to-head aggregations computed.",
		}),
		StoreFailures: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "swudash_store_failures_total",
			Help: "The total number of tournament store queries that failed.",
		}),
		AggregationDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "swudash_aggregation_duration_seconds",
			Help:    "The duration of individual statistics aggregations.",
			Buckets: []float64{0.001, 0.0025, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1},
		}),
		StartupTimeSeconds: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "swudash_startup_duration_seconds",
			Help: "The duration of the application startup in seconds.",
		}),
	}

	reg.MustRegister(
		s.LeaderboardBuilds,
		s.PlayerLookups,
		s.HeadToHeadBuilds,
		s.StoreFailures,
		s.AggregationDuration,
		s.StartupTimeSeconds,
	)

	return s
}

func (s *Service) IncLeaderboardBuilds() {
	s.LeaderboardBuilds.Inc()
}

func (s *Service) IncPlayerLookups() {
	s.PlayerLookups.Inc()
}

func (s *Service) IncHeadToHeadBuilds() {
	s.HeadToHeadBuilds.Inc()
}

func (s *Service) IncStoreFailures() {
	s.StoreFailures.Inc()
}

func (s *Service) ObserveAggregationDuration(duration float64) {
	s.AggregationDuration.Observe(duration)
}

func (s *Service) SetStartupTime(duration float64) {
	s.StartupTimeSeconds.Set(duration)
}
