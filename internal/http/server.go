package http

import (
	"net/http"

	"github.com/hollandnd/swu-dashboard/internal/config"
	"github.com/hollandnd/swu-dashboard/internal/metrics"
	"github.com/hollandnd/swu-dashboard/internal/stats"
	"github.com/hollandnd/swu-dashboard/internal/tournament"
)

func NewServer(store tournament.TournamentStore, statsSvc stats.StatsService, metricsSvc metrics.Metrics, metricsHandler http.Handler, cfg config.Config) *Server {
	server := &Server{
		Store:          store,
		Stats:          statsSvc,
		Metrics:        metricsSvc,
		MetricsHandler: metricsHandler,
		Cfg:            cfg,
		Router:         http.NewServeMux(),
	}

	server.routes()
	return server
}

func (s *Server) routes() {
	// All handlers are wrapped with middleware using the Chain helper.
	// This makes it easy to add more middlewares in the future, like an authentication middleware.
	s.Router.Handle("/metrics", s.MetricsHandler)
	s.Router.Handle("/health", Chain(s.HealthCheckHandler(), paramsMiddleware))
	s.Router.Handle("/api/stats", Chain(s.StatsHandler(), paramsMiddleware))
	s.Router.Handle("/api/tournaments", Chain(s.TournamentsHandler(), paramsMiddleware))
	s.Router.Handle("/api/tournament", Chain(s.TournamentHandler(), paramsMiddleware))
	s.Router.Handle("/api/players", Chain(s.PlayersHandler(), paramsMiddleware))
	s.Router.Handle("/api/player", Chain(s.PlayerHandler(), paramsMiddleware))
	s.Router.Handle("/api/head-to-head", Chain(s.HeadToHeadHandler(), paramsMiddleware))
	s.Router.Handle("/api/leaderboard", Chain(s.LeaderboardHandler(), paramsMiddleware))
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.Router.ServeHTTP(w, r)
}
