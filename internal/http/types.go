package http

import (
	"net/http"

	"github.com/hollandnd/swu-dashboard/internal/config"
	"github.com/hollandnd/swu-dashboard/internal/metrics"
	"github.com/hollandnd/swu-dashboard/internal/stats"
	"github.com/hollandnd/swu-dashboard/internal/tournament"
)

type Server struct {
	Store          tournament.TournamentStore
	Stats          stats.StatsService
	Metrics        metrics.Metrics
	MetricsHandler http.Handler
	Cfg            config.Config
	Router         *http.ServeMux
}

// OverviewStats is the response shape of /api/stats.
type OverviewStats struct {
	TournamentCount int `json:"tournamentCount"`
	PlayerCount     int `json:"playerCount"`
}
