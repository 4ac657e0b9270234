package http

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/hollandnd/swu-dashboard/internal/config"
	"github.com/hollandnd/swu-dashboard/internal/metrics"
	"github.com/hollandnd/swu-dashboard/internal/stats"
	"github.com/hollandnd/swu-dashboard/internal/tournament"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// setupTestServer wires the server against mocks so handlers can be exercised
// without a database.
func setupTestServer(t *testing.T) (*Server, *tournament.MockStore, *stats.MockService, *metrics.Mock) {
	t.Helper()

	store := tournament.NewMock()
	statsSvc := stats.NewMock()
	metricsSvc := metrics.NewMock()
	server := NewServer(store, statsSvc, metricsSvc, http.NotFoundHandler(), config.Config{})
	return server, store, statsSvc, metricsSvc
}

func doRequest(t *testing.T, server *Server, target string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest("GET", target, nil)
	rr := httptest.NewRecorder()
	server.ServeHTTP(rr, req)
	return rr
}

func TestHealthCheckHandler(t *testing.T) {
	server, _, _, _ := setupTestServer(t)

	rr := doRequest(t, server, "/health")
	assert.Equal(t, http.StatusOK, rr.Code)
	body, _ := io.ReadAll(rr.Body)
	assert.Equal(t, "OK!", string(body))
}

func TestStatsHandler(t *testing.T) {
	t.Run("returns the overview counts", func(t *testing.T) {
		server, store, _, _ := setupTestServer(t)
		store.CountTournamentsFunc = func() (int, error) { return 12, nil }
		store.CountPlayersFunc = func() (int, error) { return 34, nil }

		rr := doRequest(t, server, "/api/stats")
		require.Equal(t, http.StatusOK, rr.Code)

		var got OverviewStats
		require.NoError(t, json.NewDecoder(rr.Body).Decode(&got))
		assert.Equal(t, 12, got.TournamentCount)
		assert.Equal(t, 34, got.PlayerCount)
	})

	t.Run("degrades failing counts to zero", func(t *testing.T) {
		server, store, _, metricsSvc := setupTestServer(t)
		store.CountTournamentsFunc = func() (int, error) { return 0, errors.New("db gone") }
		store.CountPlayersFunc = func() (int, error) { return 34, nil }

		rr := doRequest(t, server, "/api/stats")
		require.Equal(t, http.StatusOK, rr.Code)

		var got OverviewStats
		require.NoError(t, json.NewDecoder(rr.Body).Decode(&got))
		assert.Equal(t, 0, got.TournamentCount)
		assert.Equal(t, 34, got.PlayerCount)
		assert.Equal(t, 1, metricsSvc.StoreFailures())
	})
}

func TestTournamentsHandler(t *testing.T) {
	sample := []tournament.Tournament{
		{ID: "t1", Name: "Weekly #1", Date: time.Date(2025, 4, 1, 19, 0, 0, 0, time.UTC)},
	}

	t.Run("lists all tournaments without a limit", func(t *testing.T) {
		server, store, _, _ := setupTestServer(t)
		store.GetTournamentsFunc = func() ([]tournament.Tournament, error) { return sample, nil }

		rr := doRequest(t, server, "/api/tournaments")
		require.Equal(t, http.StatusOK, rr.Code)

		var got []tournament.Tournament
		require.NoError(t, json.NewDecoder(rr.Body).Decode(&got))
		require.Len(t, got, 1)
		assert.Equal(t, "t1", got[0].ID)
		assert.Equal(t, 1, store.GetTournamentsCallCount)
		assert.Empty(t, store.GetRecentTournamentsCalls)
	})

	t.Run("passes a valid limit through", func(t *testing.T) {
		server, store, _, _ := setupTestServer(t)
		store.GetRecentTournamentsFunc = func(limit int) ([]tournament.Tournament, error) { return sample, nil }

		rr := doRequest(t, server, "/api/tournaments?limit=5")
		require.Equal(t, http.StatusOK, rr.Code)
		assert.Equal(t, []int{5}, store.GetRecentTournamentsCalls)
	})

	t.Run("falls back to the default limit on garbage input", func(t *testing.T) {
		server, store, _, _ := setupTestServer(t)

		rr := doRequest(t, server, "/api/tournaments?limit=banana")
		require.Equal(t, http.StatusOK, rr.Code)
		assert.Equal(t, []int{0}, store.GetRecentTournamentsCalls)
	})

	t.Run("degrades to an empty list when the store fails", func(t *testing.T) {
		server, store, _, metricsSvc := setupTestServer(t)
		store.GetTournamentsFunc = func() ([]tournament.Tournament, error) { return nil, errors.New("db gone") }

		rr := doRequest(t, server, "/api/tournaments")
		require.Equal(t, http.StatusOK, rr.Code)
		assert.JSONEq(t, "[]", rr.Body.String())
		assert.Equal(t, 1, metricsSvc.StoreFailures())
	})

	t.Run("serializes a nil result as an empty list", func(t *testing.T) {
		server, _, _, _ := setupTestServer(t)

		rr := doRequest(t, server, "/api/tournaments")
		require.Equal(t, http.StatusOK, rr.Code)
		assert.JSONEq(t, "[]", rr.Body.String())
	})
}

func TestTournamentHandler(t *testing.T) {
	t.Run("returns the tournament", func(t *testing.T) {
		server, store, _, _ := setupTestServer(t)
		store.GetTournamentByIDFunc = func(id string) (*tournament.Tournament, error) {
			return &tournament.Tournament{ID: id, Name: "Weekly #1"}, nil
		}

		rr := doRequest(t, server, "/api/tournament?id=t1")
		require.Equal(t, http.StatusOK, rr.Code)

		var got tournament.Tournament
		require.NoError(t, json.NewDecoder(rr.Body).Decode(&got))
		assert.Equal(t, "Weekly #1", got.Name)
		assert.Equal(t, []string{"t1"}, store.GetTournamentByIDCalls)
	})

	t.Run("requires an id", func(t *testing.T) {
		server, _, _, _ := setupTestServer(t)
		rr := doRequest(t, server, "/api/tournament")
		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})

	t.Run("returns 404 for an unknown id", func(t *testing.T) {
		server, _, _, _ := setupTestServer(t)
		rr := doRequest(t, server, "/api/tournament?id=missing")
		assert.Equal(t, http.StatusNotFound, rr.Code)
	})

	t.Run("returns 500 on other store failures", func(t *testing.T) {
		server, store, _, metricsSvc := setupTestServer(t)
		store.GetTournamentByIDFunc = func(id string) (*tournament.Tournament, error) {
			return nil, errors.New("db gone")
		}

		rr := doRequest(t, server, "/api/tournament?id=t1")
		assert.Equal(t, http.StatusInternalServerError, rr.Code)
		assert.Equal(t, 1, metricsSvc.StoreFailures())
	})
}

func TestPlayersHandler(t *testing.T) {
	t.Run("lists player totals", func(t *testing.T) {
		server, _, statsSvc, _ := setupTestServer(t)
		statsSvc.GetPlayerTotalsFunc = func() ([]stats.PlayerTotals, error) {
			return []stats.PlayerTotals{{PlayerID: "p1", Username: "Player One", MatchWins: 7}}, nil
		}

		rr := doRequest(t, server, "/api/players")
		require.Equal(t, http.StatusOK, rr.Code)

		var got []stats.PlayerTotals
		require.NoError(t, json.NewDecoder(rr.Body).Decode(&got))
		require.Len(t, got, 1)
		assert.Equal(t, 7, got[0].MatchWins)
	})

	t.Run("degrades to an empty list on failure", func(t *testing.T) {
		server, _, statsSvc, metricsSvc := setupTestServer(t)
		statsSvc.GetPlayerTotalsFunc = func() ([]stats.PlayerTotals, error) {
			return nil, errors.New("db gone")
		}

		rr := doRequest(t, server, "/api/players")
		require.Equal(t, http.StatusOK, rr.Code)
		assert.JSONEq(t, "[]", rr.Body.String())
		assert.Equal(t, 1, metricsSvc.StoreFailures())
	})
}

func TestPlayerHandler(t *testing.T) {
	t.Run("returns the player summary", func(t *testing.T) {
		server, _, statsSvc, _ := setupTestServer(t)
		statsSvc.GetPlayerSummaryFunc = func(playerID string) (*stats.PlayerSummary, error) {
			return &stats.PlayerSummary{PlayerID: playerID, Username: "Player One"}, nil
		}

		rr := doRequest(t, server, "/api/player?id=p1")
		require.Equal(t, http.StatusOK, rr.Code)

		var got stats.PlayerSummary
		require.NoError(t, json.NewDecoder(rr.Body).Decode(&got))
		assert.Equal(t, "Player One", got.Username)
		assert.Equal(t, []string{"p1"}, statsSvc.GetPlayerSummaryCalls)
	})

	t.Run("requires an id", func(t *testing.T) {
		server, _, _, _ := setupTestServer(t)
		rr := doRequest(t, server, "/api/player")
		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})

	t.Run("returns 404 for an unknown player", func(t *testing.T) {
		server, _, _, _ := setupTestServer(t)
		rr := doRequest(t, server, "/api/player?id=nobody")
		assert.Equal(t, http.StatusNotFound, rr.Code)
	})
}

func TestHeadToHeadHandler(t *testing.T) {
	t.Run("returns opponent records", func(t *testing.T) {
		server, _, statsSvc, _ := setupTestServer(t)
		statsSvc.GetHeadToHeadFunc = func(playerID string) ([]stats.OpponentRecord, error) {
			return []stats.OpponentRecord{{PlayerID: "p2", Username: "Player Two", MatchWins: 3}}, nil
		}

		rr := doRequest(t, server, "/api/head-to-head?id=p1")
		require.Equal(t, http.StatusOK, rr.Code)

		var got []stats.OpponentRecord
		require.NoError(t, json.NewDecoder(rr.Body).Decode(&got))
		require.Len(t, got, 1)
		assert.Equal(t, "p2", got[0].PlayerID)
		assert.Equal(t, []string{"p1"}, statsSvc.GetHeadToHeadCalls)
	})

	t.Run("requires an id", func(t *testing.T) {
		server, _, _, _ := setupTestServer(t)
		rr := doRequest(t, server, "/api/head-to-head")
		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})

	t.Run("degrades to an empty list on failure", func(t *testing.T) {
		server, _, statsSvc, metricsSvc := setupTestServer(t)
		statsSvc.GetHeadToHeadFunc = func(playerID string) ([]stats.OpponentRecord, error) {
			return nil, errors.New("db gone")
		}

		rr := doRequest(t, server, "/api/head-to-head?id=p1")
		require.Equal(t, http.StatusOK, rr.Code)
		assert.JSONEq(t, "[]", rr.Body.String())
		assert.Equal(t, 1, metricsSvc.StoreFailures())
	})
}

func TestLeaderboardHandler(t *testing.T) {
	t.Run("returns the ranked entries", func(t *testing.T) {
		server, _, statsSvc, _ := setupTestServer(t)
		statsSvc.GetLeaderboardFunc = func() ([]stats.LeaderboardEntry, error) {
			return []stats.LeaderboardEntry{
				{PlayerID: "p1", Username: "Player One", LeaderboardPoints: 8},
				{PlayerID: "p2", Username: "Player Two", LeaderboardPoints: 5},
			}, nil
		}

		rr := doRequest(t, server, "/api/leaderboard")
		require.Equal(t, http.StatusOK, rr.Code)

		var got []stats.LeaderboardEntry
		require.NoError(t, json.NewDecoder(rr.Body).Decode(&got))
		require.Len(t, got, 2)
		assert.Equal(t, "p1", got[0].PlayerID)
		assert.Equal(t, 1, statsSvc.GetLeaderboardCount)
	})

	t.Run("degrades to an empty list on failure", func(t *testing.T) {
		server, _, statsSvc, metricsSvc := setupTestServer(t)
		statsSvc.GetLeaderboardFunc = func() ([]stats.LeaderboardEntry, error) {
			return nil, errors.New("db gone")
		}

		rr := doRequest(t, server, "/api/leaderboard")
		require.Equal(t, http.StatusOK, rr.Code)
		assert.JSONEq(t, "[]", rr.Body.String())
		assert.Equal(t, 1, metricsSvc.StoreFailures())
	})
}
