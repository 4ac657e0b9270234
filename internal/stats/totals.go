package stats

import (
	"sort"

	"github.com/hollandnd/swu-dashboard/internal/names"
	"github.com/hollandnd/swu-dashboard/internal/tournament"
)

// BuildPlayerTotals produces the players listing: one totals row per
// distinct player identity, sorted by match wins descending. The sort is
// stable so equally-winning players keep encounter order.
func BuildPlayerTotals(tournaments []tournament.Tournament, anon names.Anonymizer) []PlayerTotals {
	byPlayer := make(map[string]*PlayerTotals)
	order := make([]string, 0)

	for _, t := range tournaments {
		for _, p := range t.Players {
			if p.PlayerID == "" {
				continue
			}

			totals, ok := byPlayer[p.PlayerID]
			if !ok {
				username := p.Username
				if username == "" {
					username = "Unknown Player"
				}
				totals = &PlayerTotals{
					PlayerID: p.PlayerID,
					Username: anon.Anonymize(username),
				}
				byPlayer[p.PlayerID] = totals
				order = append(order, p.PlayerID)
			}

			totals.MatchWins += p.MatchWins
			totals.MatchLosses += p.MatchLosses
			totals.MatchDraws += p.MatchDraws
			totals.GameWins += p.GameWins
			totals.GameLosses += p.GameLosses
			totals.GameDraws += p.GameDraws
			totals.TournamentsPlayed++
			if p.Rank == 1 {
				totals.TournamentsWon++
			}
		}
	}

	players := make([]PlayerTotals, 0, len(order))
	for _, id := range order {
		players = append(players, *byPlayer[id])
	}

	sort.SliceStable(players, func(i, j int) bool {
		return players[i].MatchWins > players[j].MatchWins
	})

	return players
}
