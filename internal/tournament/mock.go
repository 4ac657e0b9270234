package tournament

import "sync"

// MockStore is a mock implementation of the TournamentStore interface for
// testing. It is safe for concurrent use.
type MockStore struct {
	mu sync.Mutex

	// Spies for method calls
	CountTournamentsFunc        func() (int, error)
	CountPlayersFunc            func() (int, error)
	GetRecentTournamentsFunc    func(limit int) ([]Tournament, error)
	GetTournamentsFunc          func() ([]Tournament, error)
	GetTournamentByIDFunc       func(id string) (*Tournament, error)
	GetTournamentsForPlayerFunc func(playerID string) ([]Tournament, error)

	// Call records
	GetRecentTournamentsCalls    []int
	GetTournamentByIDCalls       []string
	GetTournamentsForPlayerCalls []string
	GetTournamentsCallCount      int
}

// NewMock creates a new mock instance.
func NewMock() *MockStore {
	return &MockStore{}
}

func (m *MockStore) CountTournaments() (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.CountTournamentsFunc != nil {
		return m.CountTournamentsFunc()
	}
	return 0, nil
}

func (m *MockStore) CountPlayers() (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.CountPlayersFunc != nil {
		return m.CountPlayersFunc()
	}
	return 0, nil
}

func (m *MockStore) GetRecentTournaments(limit int) ([]Tournament, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.GetRecentTournamentsCalls = append(m.GetRecentTournamentsCalls, limit)
	if m.GetRecentTournamentsFunc != nil {
		return m.GetRecentTournamentsFunc(limit)
	}
	return nil, nil
}

func (m *MockStore) GetTournaments() ([]Tournament, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.GetTournamentsCallCount++
	if m.GetTournamentsFunc != nil {
		return m.GetTournamentsFunc()
	}
	return nil, nil
}

func (m *MockStore) GetTournamentByID(id string) (*Tournament, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.GetTournamentByIDCalls = append(m.GetTournamentByIDCalls, id)
	if m.GetTournamentByIDFunc != nil {
		return m.GetTournamentByIDFunc(id)
	}
	return nil, ErrNotFound
}

func (m *MockStore) GetTournamentsForPlayer(playerID string) ([]Tournament, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.GetTournamentsForPlayerCalls = append(m.GetTournamentsForPlayerCalls, playerID)
	if m.GetTournamentsForPlayerFunc != nil {
		return m.GetTournamentsForPlayerFunc(playerID)
	}
	return nil, nil
}
