package metrics

import "sync"

// Mock is a mock implementation of the Metrics interface for testing.
// It is safe for concurrent use.
type Mock struct {
	mu                   sync.Mutex
	leaderboardBuilds    int
	playerLookups        int
	headToHeadBuilds     int
	storeFailures        int
	aggregationDurations []float64
	startupTime          float64
}

// NewMock creates a new mock instance.
func NewMock() *Mock {
	return &Mock{
		aggregationDurations: make([]float64, 0),
	}
}

func (m *Mock) IncLeaderboardBuilds() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.leaderboardBuilds++
}

func (m *Mock) IncPlayerLookups() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.playerLookups++
}

func (m *Mock) IncHeadToHeadBuilds() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.headToHeadBuilds++
}

func (m *Mock) IncStoreFailures() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.storeFailures++
}

func (m *Mock) ObserveAggregationDuration(duration float64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.aggregationDurations = append(m.aggregationDurations, duration)
}

func (m *Mock) SetStartupTime(duration float64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.startupTime = duration
}

// LeaderboardBuilds returns the number of times IncLeaderboardBuilds was called.
func (m *Mock) LeaderboardBuilds() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.leaderboardBuilds
}

// PlayerLookups returns the number of times IncPlayerLookups was called.
func (m *Mock) PlayerLookups() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.playerLookups
}

// HeadToHeadBuilds returns the number of times IncHeadToHeadBuilds was called.
func (m *Mock) HeadToHeadBuilds() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.headToHeadBuilds
}

// StoreFailures returns the number of times IncStoreFailures was called.
func (m *Mock) StoreFailures() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.storeFailures
}

// AggregationDurations returns the observed aggregation durations.
func (m *Mock) AggregationDurations() []float64 {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]float64(nil), m.aggregationDurations...)
}
