package stats

// StatsService is the aggregation engine consumed by the HTTP handlers.
type StatsService interface {
	GetPlayerSummary(playerID string) (*PlayerSummary, error)
	GetPlayerTotals() ([]PlayerTotals, error)
	GetLeaderboard() ([]LeaderboardEntry, error)
	GetHeadToHead(playerID string) ([]OpponentRecord, error)
}
