package stats_test

import (
	"testing"

	"github.com/hollandnd/swu-dashboard/internal/names"
	"github.com/hollandnd/swu-dashboard/internal/stats"
	"github.com/hollandnd/swu-dashboard/internal/tournament"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildLeaderboard_PlacementPoints(t *testing.T) {
	// Player X finishes 1st twice and 2nd once: 5+5+3 points.
	tournaments := []tournament.Tournament{
		{ID: "t1", Date: day(1), Players: []tournament.Player{standing("x", "Xena", 1), standing("y", "Yuri", 2)}},
		{ID: "t2", Date: day(2), Players: []tournament.Player{standing("x", "Xena", 1), standing("y", "Yuri", 3)}},
		{ID: "t3", Date: day(3), Players: []tournament.Player{standing("x", "Xena", 2), standing("y", "Yuri", 1)}},
	}

	leaderboard := stats.BuildLeaderboard(tournaments, names.Passthrough{})
	require.Len(t, leaderboard, 2)

	x := leaderboard[0]
	assert.Equal(t, "x", x.PlayerID)
	assert.Equal(t, 13, x.LeaderboardPoints)
	assert.Equal(t, 2, x.FirstPlace)
	assert.Equal(t, 1, x.SecondPlace)
	assert.Equal(t, 3, x.TournamentsPlayed)

	y := leaderboard[1]
	assert.Equal(t, 9, y.LeaderboardPoints)
	assert.Equal(t, 1, y.FirstPlace)
	assert.Equal(t, 1, y.ThirdPlace)
}

func TestBuildLeaderboard_TieBreakCascade(t *testing.T) {
	// X and Y both end with 8 points and one 1st place; X's 2nd place
	// finish ranks X above Y's three 3rd places.
	tournaments := []tournament.Tournament{
		{ID: "t1", Date: day(1), Players: []tournament.Player{standing("y", "Yuri", 4), standing("x", "Xena", 1)}},
		{ID: "t2", Date: day(2), Players: []tournament.Player{standing("x", "Xena", 2), standing("y", "Yuri", 1)}},
		{ID: "t3", Date: day(3), Players: []tournament.Player{standing("y", "Yuri", 3), standing("x", "Xena", 4)}},
		{ID: "t4", Date: day(4), Players: []tournament.Player{standing("y", "Yuri", 3), standing("x", "Xena", 4)}},
		{ID: "t5", Date: day(5), Players: []tournament.Player{standing("y", "Yuri", 3), standing("x", "Xena", 4)}},
	}

	leaderboard := stats.BuildLeaderboard(tournaments, names.Passthrough{})
	require.Len(t, leaderboard, 2)
	assert.Equal(t, leaderboard[0].LeaderboardPoints, leaderboard[1].LeaderboardPoints)
	assert.Equal(t, leaderboard[0].FirstPlace, leaderboard[1].FirstPlace)
	assert.Equal(t, "x", leaderboard[0].PlayerID, "second-place count breaks the tie")
}

func TestBuildLeaderboard_WinPercentageTieBreak(t *testing.T) {
	tournaments := []tournament.Tournament{
		{ID: "t1", Date: day(1), Players: []tournament.Player{
			standing("a", "Alice", 1, 2, 1, 0),
			standing("b", "Bob", 0, 3, 0, 0),
		}},
		{ID: "t2", Date: day(2), Players: []tournament.Player{
			standing("b", "Bob", 1, 2, 1, 0),
			standing("a", "Alice", 0, 1, 2, 0),
		}},
	}

	leaderboard := stats.BuildLeaderboard(tournaments, names.Passthrough{})
	require.Len(t, leaderboard, 2)
	// Both have 5 points and one 1st place; Bob's 5-1 record beats
	// Alice's 3-3.
	assert.Equal(t, "b", leaderboard[0].PlayerID)
}

func TestBuildLeaderboard_StableForExactTies(t *testing.T) {
	tournaments := []tournament.Tournament{
		{ID: "t1", Date: day(1), Players: []tournament.Player{
			standing("m", "Mallory", 4, 1, 1, 0),
			standing("n", "Ned", 5, 1, 1, 0),
		}},
	}

	leaderboard := stats.BuildLeaderboard(tournaments, names.Passthrough{})
	require.Len(t, leaderboard, 2)
	assert.Equal(t, "m", leaderboard[0].PlayerID, "exact ties keep encounter order")
	assert.Equal(t, "n", leaderboard[1].PlayerID)
}

func TestBuildLeaderboard_ZeroMatchesNoDivideByZero(t *testing.T) {
	tournaments := []tournament.Tournament{
		{ID: "t1", Date: day(1), Players: []tournament.Player{
			standing("a", "Alice", 0),
			standing("b", "Bob", 0),
		}},
	}

	leaderboard := stats.BuildLeaderboard(tournaments, names.Passthrough{})
	require.Len(t, leaderboard, 2)
	for _, entry := range leaderboard {
		assert.Zero(t, entry.LeaderboardPoints)
		assert.Zero(t, entry.MatchWins+entry.MatchLosses+entry.MatchDraws)
	}
}

func TestBuildLeaderboard_SkipsStandingsMissingIdentityOrName(t *testing.T) {
	tournaments := []tournament.Tournament{
		{ID: "t1", Date: day(1), Players: []tournament.Player{
			standing("", "Ghost", 1),
			standing("b", "", 2),
			standing("c", "Cara", 3),
		}},
	}

	leaderboard := stats.BuildLeaderboard(tournaments, names.Passthrough{})
	require.Len(t, leaderboard, 1)
	assert.Equal(t, "c", leaderboard[0].PlayerID)
}

func TestBuildLeaderboard_Empty(t *testing.T) {
	assert.Empty(t, stats.BuildLeaderboard(nil, names.Passthrough{}))
}
