package stats

import "sync"

// MockService is a mock implementation of the StatsService interface for
// testing handlers without a database.
type MockService struct {
	mu sync.Mutex

	GetPlayerSummaryFunc func(playerID string) (*PlayerSummary, error)
	GetPlayerTotalsFunc  func() ([]PlayerTotals, error)
	GetLeaderboardFunc   func() ([]LeaderboardEntry, error)
	GetHeadToHeadFunc    func(playerID string) ([]OpponentRecord, error)

	GetPlayerSummaryCalls []string
	GetHeadToHeadCalls    []string
	GetLeaderboardCount   int
	GetPlayerTotalsCount  int
}

// NewMock creates a new mock instance.
func NewMock() *MockService {
	return &MockService{}
}

func (m *MockService) GetPlayerSummary(playerID string) (*PlayerSummary, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.GetPlayerSummaryCalls = append(m.GetPlayerSummaryCalls, playerID)
	if m.GetPlayerSummaryFunc != nil {
		return m.GetPlayerSummaryFunc(playerID)
	}
	return nil, ErrPlayerNotFound
}

func (m *MockService) GetPlayerTotals() ([]PlayerTotals, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.GetPlayerTotalsCount++
	if m.GetPlayerTotalsFunc != nil {
		return m.GetPlayerTotalsFunc()
	}
	return nil, nil
}

func (m *MockService) GetLeaderboard() ([]LeaderboardEntry, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.GetLeaderboardCount++
	if m.GetLeaderboardFunc != nil {
		return m.GetLeaderboardFunc()
	}
	return nil, nil
}

func (m *MockService) GetHeadToHead(playerID string) ([]OpponentRecord, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.GetHeadToHeadCalls = append(m.GetHeadToHeadCalls, playerID)
	if m.GetHeadToHeadFunc != nil {
		return m.GetHeadToHeadFunc(playerID)
	}
	return nil, nil
}
