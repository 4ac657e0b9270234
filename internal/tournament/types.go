package tournament

import (
	"database/sql"
	"sync"
	"time"
)

// store handles all database operations for tournament records.
type store struct {
	db *sql.DB
	mu sync.RWMutex
}

// Tournament is one recorded tournament with its standings and rounds,
// exactly as the Discord bot reported it.
type Tournament struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	GuildName   string    `json:"guildName"`
	Date        time.Time `json:"date"`
	PlayerCount int       `json:"playerCount"`
	Players     []Player  `json:"players"`
	Rounds      []Round   `json:"rounds"`
}

// EffectivePlayerCount returns the stored player count when it is set,
// falling back to the number of standings rows. Every consumer of the player
// count goes through this so the fallback rule is applied uniformly.
func (t *Tournament) EffectivePlayerCount() int {
	if t.PlayerCount > 0 {
		return t.PlayerCount
	}
	return len(t.Players)
}

// Player is a player's standing within a single tournament. The PlayerID is
// the stable external identity; Username is display-only and may differ
// between tournaments.
type Player struct {
	PlayerID    string `json:"playerId"`
	Username    string `json:"username"`
	MatchWins   int    `json:"matchWins"`
	MatchLosses int    `json:"matchLosses"`
	MatchDraws  int    `json:"matchDraws"`
	GameWins    int    `json:"gameWins"`
	GameLosses  int    `json:"gameLosses"`
	GameDraws   int    `json:"gameDraws"`
	Rank        int    `json:"rank"` // 1-based, 0 = unranked
	Points      int    `json:"points"`
}

// Round is one swiss round and its matches, in reported order.
type Round struct {
	ID      string  `json:"id"`
	Number  int     `json:"number"`
	Status  string  `json:"status"`
	Matches []Match `json:"matches"`
}

// Match is a single pairing. An empty Player2ID marks the bye slot and an
// empty WinnerID marks a draw.
type Match struct {
	ID                string `json:"id"`
	Player1ID         string `json:"player1Id"`
	Player2ID         string `json:"player2Id"`
	Player1Score      int    `json:"player1Score"`
	Player2Score      int    `json:"player2Score"`
	WinnerID          string `json:"winnerId"`
	IsBye             bool   `json:"isBye"`
	IsTie             bool   `json:"isTie"`
	IsIntentionalDraw bool   `json:"isIntentionalDraw"`
	Status            string `json:"status"`
}
