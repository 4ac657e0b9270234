package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/charmbracelet/log"
	"github.com/hollandnd/swu-dashboard/internal/stats"
	"github.com/hollandnd/swu-dashboard/internal/tournament"
)

func (s *Server) HealthCheckHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log.Debug("Received health check request")
		w.WriteHeader(http.StatusOK)
		fmt.Fprintf(w, "OK!")
	}
}

// StatsHandler serves the overview counts for the landing page. A failing
// store degrades to zero counts so the page still renders.
func (s *Server) StatsHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var overview OverviewStats

		tournamentCount, err := s.Store.CountTournaments()
		if err != nil {
			log.Error("Failed to count tournaments", "error", err)
			s.Metrics.IncStoreFailures()
		} else {
			overview.TournamentCount = tournamentCount
		}

		playerCount, err := s.Store.CountPlayers()
		if err != nil {
			log.Error("Failed to count players", "error", err)
			s.Metrics.IncStoreFailures()
		} else {
			overview.PlayerCount = playerCount
		}

		writeJSON(w, overview)
	}
}

// TournamentsHandler lists tournaments, most recent first. With a 'limit'
// query parameter it serves the recent page (default page size when the
// value is not a positive integer); without one it serves the full list.
func (s *Server) TournamentsHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var (
			tournaments []tournament.Tournament
			err         error
		)

		if limitStr := r.URL.Query().Get("limit"); limitStr != "" {
			limit, parseErr := strconv.Atoi(limitStr)
			if parseErr != nil || limit <= 0 {
				log.Warn("Invalid 'limit' parameter provided. Using default.", "limit_param", limitStr)
				limit = 0
			}
			tournaments, err = s.Store.GetRecentTournaments(limit)
		} else {
			tournaments, err = s.Store.GetTournaments()
		}

		if err != nil {
			log.Error("Failed to get tournaments from store", "error", err)
			s.Metrics.IncStoreFailures()
			writeJSON(w, []tournament.Tournament{})
			return
		}
		if tournaments == nil {
			tournaments = []tournament.Tournament{}
		}
		writeJSON(w, tournaments)
	}
}

func (s *Server) TournamentHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := r.URL.Query().Get("id")
		if id == "" {
			http.Error(w, "Missing 'id' parameter", http.StatusBadRequest)
			return
		}

		t, err := s.Store.GetTournamentByID(id)
		if err != nil {
			if errors.Is(err, tournament.ErrNotFound) {
				http.Error(w, "Tournament not found", http.StatusNotFound)
				return
			}
			log.Error("Failed to get tournament from store", "error", err, "tournamentID", id)
			s.Metrics.IncStoreFailures()
			http.Error(w, "Failed to get tournament", http.StatusInternalServerError)
			return
		}
		writeJSON(w, t)
	}
}

func (s *Server) PlayersHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		players, err := s.Stats.GetPlayerTotals()
		if err != nil {
			log.Error("Failed to build player totals", "error", err)
			s.Metrics.IncStoreFailures()
			writeJSON(w, []stats.PlayerTotals{})
			return
		}
		if players == nil {
			players = []stats.PlayerTotals{}
		}
		writeJSON(w, players)
	}
}

func (s *Server) PlayerHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := r.URL.Query().Get("id")
		if id == "" {
			http.Error(w, "Missing 'id' parameter", http.StatusBadRequest)
			return
		}

		summary, err := s.Stats.GetPlayerSummary(id)
		if err != nil {
			if errors.Is(err, stats.ErrPlayerNotFound) {
				http.Error(w, "Player not found", http.StatusNotFound)
				return
			}
			log.Error("Failed to build player summary", "error", err, "playerID", id)
			s.Metrics.IncStoreFailures()
			http.Error(w, "Failed to get player", http.StatusInternalServerError)
			return
		}
		writeJSON(w, summary)
	}
}

// HeadToHeadHandler serves a player's per-opponent records. A player with no
// non-bye matches gets an empty list, and so does a failing store; the
// failure is logged and counted, never rendered.
func (s *Server) HeadToHeadHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := r.URL.Query().Get("id")
		if id == "" {
			http.Error(w, "Missing 'id' parameter", http.StatusBadRequest)
			return
		}

		records, err := s.Stats.GetHeadToHead(id)
		if err != nil {
			log.Error("Failed to build head-to-head records", "error", err, "playerID", id)
			s.Metrics.IncStoreFailures()
			writeJSON(w, []stats.OpponentRecord{})
			return
		}
		if records == nil {
			records = []stats.OpponentRecord{}
		}
		writeJSON(w, records)
	}
}

func (s *Server) LeaderboardHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		leaderboard, err := s.Stats.GetLeaderboard()
		if err != nil {
			log.Error("Failed to build leaderboard", "error", err)
			s.Metrics.IncStoreFailures()
			writeJSON(w, []stats.LeaderboardEntry{})
			return
		}
		if leaderboard == nil {
			leaderboard = []stats.LeaderboardEntry{}
		}
		writeJSON(w, leaderboard)
	}
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Error("Failed to write response", "error", err)
	}
}
