package stats

import (
	"github.com/hollandnd/swu-dashboard/internal/names"
	"github.com/hollandnd/swu-dashboard/internal/tournament"
)

// BuildPlayerSummary folds one player's standings across the given
// tournaments into cumulative totals plus a per-tournament history. The
// history keeps the input order, so callers that want most-recent-first pass
// tournaments sorted by date descending. Returns nil when the player appears
// in none of the tournaments.
func BuildPlayerSummary(tournaments []tournament.Tournament, playerID string, anon names.Anonymizer) *PlayerSummary {
	summary := &PlayerSummary{
		PlayerID:          playerID,
		TournamentHistory: []TournamentResult{},
	}

	found := false
	for _, t := range tournaments {
		standing := findStanding(t.Players, playerID)
		if standing == nil {
			continue
		}
		if !found {
			// Display name comes from the most recent appearance.
			summary.Username = anon.Anonymize(standing.Username)
			found = true
		}

		summary.MatchWins += standing.MatchWins
		summary.MatchLosses += standing.MatchLosses
		summary.MatchDraws += standing.MatchDraws
		summary.GameWins += standing.GameWins
		summary.GameLosses += standing.GameLosses
		summary.GameDraws += standing.GameDraws
		summary.TournamentsPlayed++
		if standing.Rank == 1 {
			summary.TournamentsWon++
		}

		summary.TournamentHistory = append(summary.TournamentHistory, TournamentResult{
			TournamentID: t.ID,
			Name:         t.Name,
			Date:         t.Date,
			PlayerCount:  t.EffectivePlayerCount(),
			Rank:         standing.Rank,
			MatchWins:    standing.MatchWins,
			MatchLosses:  standing.MatchLosses,
			MatchDraws:   standing.MatchDraws,
			GameWins:     standing.GameWins,
			GameLosses:   standing.GameLosses,
			GameDraws:    standing.GameDraws,
			Points:       standing.Points,
		})
	}

	if !found {
		return nil
	}
	return summary
}

func findStanding(players []tournament.Player, playerID string) *tournament.Player {
	for i := range players {
		if players[i].PlayerID == playerID {
			return &players[i]
		}
	}
	return nil
}
