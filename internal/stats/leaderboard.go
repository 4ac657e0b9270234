package stats

import (
	"sort"

	"github.com/hollandnd/swu-dashboard/internal/names"
	"github.com/hollandnd/swu-dashboard/internal/tournament"
)

// Placement points: 5 for 1st, 3 for 2nd, 1 for 3rd, nothing below that.
const (
	firstPlacePoints  = 5
	secondPlacePoints = 3
	thirdPlacePoints  = 1
)

// BuildLeaderboard folds every standing across the given tournaments into
// one entry per distinct player identity and orders them by the placement
// tie-break cascade: points, 1st-place count, 2nd-place count, 3rd-place
// count, then match win percentage, all descending. The sort is stable, so
// entries tied on every key stay in encounter order.
func BuildLeaderboard(tournaments []tournament.Tournament, anon names.Anonymizer) []LeaderboardEntry {
	byPlayer := make(map[string]*LeaderboardEntry)
	order := make([]string, 0)

	for _, t := range tournaments {
		if len(t.Players) == 0 {
			continue
		}
		for _, p := range t.Players {
			if p.PlayerID == "" || p.Username == "" {
				continue
			}

			entry, ok := byPlayer[p.PlayerID]
			if !ok {
				entry = &LeaderboardEntry{
					PlayerID: p.PlayerID,
					Username: anon.Anonymize(p.Username),
				}
				byPlayer[p.PlayerID] = entry
				order = append(order, p.PlayerID)
			}

			entry.TournamentsPlayed++
			entry.MatchWins += p.MatchWins
			entry.MatchLosses += p.MatchLosses
			entry.MatchDraws += p.MatchDraws
			entry.GameWins += p.GameWins
			entry.GameLosses += p.GameLosses
			entry.GameDraws += p.GameDraws

			switch p.Rank {
			case 1:
				entry.LeaderboardPoints += firstPlacePoints
				entry.FirstPlace++
			case 2:
				entry.LeaderboardPoints += secondPlacePoints
				entry.SecondPlace++
			case 3:
				entry.LeaderboardPoints += thirdPlacePoints
				entry.ThirdPlace++
			}
		}
	}

	leaderboard := make([]LeaderboardEntry, 0, len(order))
	for _, id := range order {
		leaderboard = append(leaderboard, *byPlayer[id])
	}

	sort.SliceStable(leaderboard, func(i, j int) bool {
		a, b := leaderboard[i], leaderboard[j]
		if a.LeaderboardPoints != b.LeaderboardPoints {
			return a.LeaderboardPoints > b.LeaderboardPoints
		}
		if a.FirstPlace != b.FirstPlace {
			return a.FirstPlace > b.FirstPlace
		}
		if a.SecondPlace != b.SecondPlace {
			return a.SecondPlace > b.SecondPlace
		}
		if a.ThirdPlace != b.ThirdPlace {
			return a.ThirdPlace > b.ThirdPlace
		}
		return winPercentage(a) > winPercentage(b)
	})

	return leaderboard
}

// winPercentage is matchWins over total matches, 0 when the player has no
// recorded matches at all.
func winPercentage(e LeaderboardEntry) float64 {
	total := e.MatchWins + e.MatchLosses + e.MatchDraws
	if total == 0 {
		return 0
	}
	return float64(e.MatchWins) / float64(total)
}
