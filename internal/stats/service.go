package stats

import (
	"errors"
	"fmt"
	"time"

	"github.com/hollandnd/swu-dashboard/internal/metrics"
	"github.com/hollandnd/swu-dashboard/internal/names"
	"github.com/hollandnd/swu-dashboard/internal/tournament"
)

// ErrPlayerNotFound is returned when a player identity appears in no
// tournament at all. A player with recorded tournaments but zero wins is not
// "not found"; they get a summary full of zeroes.
var ErrPlayerNotFound = errors.New("stats: player not found")

var _ StatsService = (*Service)(nil)

// New creates the aggregation service.
func New(store tournament.TournamentStore, anon names.Anonymizer, metricsSvc metrics.Metrics) *Service {
	return &Service{
		store:   store,
		anon:    anon,
		metrics: metricsSvc,
	}
}

func (s *Service) GetPlayerSummary(playerID string) (*PlayerSummary, error) {
	s.metrics.IncPlayerLookups()
	tournaments, err := s.store.GetTournamentsForPlayer(playerID)
	if err != nil {
		return nil, fmt.Errorf("fetching tournaments for player %s: %w", playerID, err)
	}

	defer s.observe(time.Now())
	summary := BuildPlayerSummary(tournaments, playerID, s.anon)
	if summary == nil {
		return nil, ErrPlayerNotFound
	}
	return summary, nil
}

func (s *Service) GetPlayerTotals() ([]PlayerTotals, error) {
	tournaments, err := s.store.GetTournaments()
	if err != nil {
		return nil, fmt.Errorf("fetching tournaments: %w", err)
	}

	defer s.observe(time.Now())
	return BuildPlayerTotals(tournaments, s.anon), nil
}

func (s *Service) GetLeaderboard() ([]LeaderboardEntry, error) {
	s.metrics.IncLeaderboardBuilds()
	tournaments, err := s.store.GetTournaments()
	if err != nil {
		return nil, fmt.Errorf("fetching tournaments: %w", err)
	}

	defer s.observe(time.Now())
	return BuildLeaderboard(tournaments, s.anon), nil
}

func (s *Service) GetHeadToHead(playerID string) ([]OpponentRecord, error) {
	s.metrics.IncHeadToHeadBuilds()
	tournaments, err := s.store.GetTournamentsForPlayer(playerID)
	if err != nil {
		return nil, fmt.Errorf("fetching tournaments for player %s: %w", playerID, err)
	}

	defer s.observe(time.Now())
	return BuildHeadToHead(tournaments, playerID, s.anon), nil
}

func (s *Service) observe(start time.Time) {
	s.metrics.ObserveAggregationDuration(time.Since(start).Seconds())
}
