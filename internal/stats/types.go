package stats

import (
	"time"

	"github.com/hollandnd/swu-dashboard/internal/metrics"
	"github.com/hollandnd/swu-dashboard/internal/names"
	"github.com/hollandnd/swu-dashboard/internal/tournament"
)

// Service computes derived statistics from the tournament store. Every call
// aggregates fresh data; nothing is cached between requests.
type Service struct {
	store   tournament.TournamentStore
	anon    names.Anonymizer
	metrics metrics.Metrics
}

// PlayerSummary is a player's cumulative record across every tournament they
// entered, with a per-tournament history in most-recent-first order.
type PlayerSummary struct {
	PlayerID          string             `json:"playerId"`
	Username          string             `json:"username"`
	MatchWins         int                `json:"matchWins"`
	MatchLosses       int                `json:"matchLosses"`
	MatchDraws        int                `json:"matchDraws"`
	GameWins          int                `json:"gameWins"`
	GameLosses        int                `json:"gameLosses"`
	GameDraws         int                `json:"gameDraws"`
	TournamentsPlayed int                `json:"tournamentsPlayed"`
	TournamentsWon    int                `json:"tournamentsWon"`
	TournamentHistory []TournamentResult `json:"tournamentHistory"`
}

// TournamentResult is one entry in a player's tournament history.
type TournamentResult struct {
	TournamentID string    `json:"tournamentId"`
	Name         string    `json:"name"`
	Date         time.Time `json:"date"`
	PlayerCount  int       `json:"playerCount"`
	Rank         int       `json:"rank"`
	MatchWins    int       `json:"matchWins"`
	MatchLosses  int       `json:"matchLosses"`
	MatchDraws   int       `json:"matchDraws"`
	GameWins     int       `json:"gameWins"`
	GameLosses   int       `json:"gameLosses"`
	GameDraws    int       `json:"gameDraws"`
	Points       int       `json:"points"`
}

// LeaderboardEntry is one row of the placement-weighted leaderboard.
type LeaderboardEntry struct {
	PlayerID          string `json:"playerId"`
	Username          string `json:"username"`
	LeaderboardPoints int    `json:"leaderboardPoints"`
	TournamentsPlayed int    `json:"tournamentsPlayed"`
	FirstPlace        int    `json:"firstPlace"`
	SecondPlace       int    `json:"secondPlace"`
	ThirdPlace        int    `json:"thirdPlace"`
	MatchWins         int    `json:"matchWins"`
	MatchLosses       int    `json:"matchLosses"`
	MatchDraws        int    `json:"matchDraws"`
	GameWins          int    `json:"gameWins"`
	GameLosses        int    `json:"gameLosses"`
	GameDraws         int    `json:"gameDraws"`
}

// OpponentRecord is a player's head-to-head ledger against one opponent.
type OpponentRecord struct {
	PlayerID    string `json:"playerId"`
	Username    string `json:"username"`
	MatchWins   int    `json:"matchWins"`
	MatchLosses int    `json:"matchLosses"`
	MatchDraws  int    `json:"matchDraws"`
	GameWins    int    `json:"gameWins"`
	GameLosses  int    `json:"gameLosses"`
}

// PlayerTotals is one row of the players listing: summed stats per distinct
// player identity.
type PlayerTotals struct {
	PlayerID          string `json:"playerId"`
	Username          string `json:"username"`
	MatchWins         int    `json:"matchWins"`
	MatchLosses       int    `json:"matchLosses"`
	MatchDraws        int    `json:"matchDraws"`
	GameWins          int    `json:"gameWins"`
	GameLosses        int    `json:"gameLosses"`
	GameDraws         int    `json:"gameDraws"`
	TournamentsPlayed int    `json:"tournamentsPlayed"`
	TournamentsWon    int    `json:"tournamentsWon"`
}
