package tournament

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/charmbracelet/log"
)

// ErrNotFound is returned when a lookup by id has no matching record. It is
// distinct from a record that exists with zero activity.
var ErrNotFound = errors.New("tournament: not found")

// DefaultRecentLimit is the page size used for "recent tournaments" listings
// when the caller does not supply a positive limit.
const DefaultRecentLimit = 3

// New creates a new TournamentStore.
func New(db *sql.DB) TournamentStore {
	return &store{
		db: db,
	}
}

func (s *store) CountTournaments() (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var count int
	if err := s.db.QueryRow("SELECT COUNT(*) FROM tournaments").Scan(&count); err != nil {
		log.Error("Failed to count tournaments", "error", err)
		return 0, fmt.Errorf("counting tournaments: %w", err)
	}
	return count, nil
}

func (s *store) CountPlayers() (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var count int
	if err := s.db.QueryRow("SELECT COUNT(DISTINCT player_id) FROM standings").Scan(&count); err != nil {
		log.Error("Failed to count distinct players", "error", err)
		return 0, fmt.Errorf("counting players: %w", err)
	}
	return count, nil
}

func (s *store) GetRecentTournaments(limit int) ([]Tournament, error) {
	if limit <= 0 {
		limit = DefaultRecentLimit
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.queryTournaments(`
		SELECT id, name, guild_name, date, player_count
		FROM tournaments ORDER BY date DESC LIMIT ?
	`, limit)
}

func (s *store) GetTournaments() ([]Tournament, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.queryTournaments(`
		SELECT id, name, guild_name, date, player_count
		FROM tournaments ORDER BY date DESC
	`)
}

func (s *store) GetTournamentByID(id string) (*Tournament, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	row := s.db.QueryRow(`
		SELECT id, name, guild_name, date, player_count
		FROM tournaments WHERE id = ?
	`, id)

	t, err := scanTournament(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		log.Error("Failed to query tournament", "error", err, "tournamentID", id)
		return nil, fmt.Errorf("querying tournament %s: %w", id, err)
	}

	if err := s.hydrate(t); err != nil {
		return nil, err
	}
	return t, nil
}

func (s *store) GetTournamentsForPlayer(playerID string) ([]Tournament, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.queryTournaments(`
		SELECT id, name, guild_name, date, player_count
		FROM tournaments
		WHERE id IN (SELECT tournament_id FROM standings WHERE player_id = ?)
		ORDER BY date DESC
	`, playerID)
}

// queryTournaments runs a tournament header query and hydrates each result
// with its standings and rounds. Callers hold the read lock.
func (s *store) queryTournaments(query string, args ...any) ([]Tournament, error) {
	rows, err := s.db.Query(query, args...)
	if err != nil {
		log.Error("Failed to query tournaments", "error", err)
		return nil, fmt.Errorf("querying tournaments: %w", err)
	}
	defer rows.Close()

	var tournaments []Tournament
	for rows.Next() {
		t, err := scanTournament(rows)
		if err != nil {
			log.Error("Failed to scan tournament row", "error", err)
			continue
		}
		tournaments = append(tournaments, *t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating tournaments: %w", err)
	}

	for i := range tournaments {
		if err := s.hydrate(&tournaments[i]); err != nil {
			return nil, err
		}
	}
	return tournaments, nil
}

func scanTournament(scanner interface{ Scan(...any) error }) (*Tournament, error) {
	var t Tournament
	var date int64
	var guildName sql.NullString
	if err := scanner.Scan(&t.ID, &t.Name, &guildName, &date, &t.PlayerCount); err != nil {
		return nil, err
	}
	t.GuildName = guildName.String
	t.Date = time.Unix(date, 0).UTC()
	return &t, nil
}

// hydrate loads the standings and rounds belonging to a tournament header.
func (s *store) hydrate(t *Tournament) error {
	players, err := s.loadStandings(t.ID)
	if err != nil {
		return err
	}
	t.Players = players

	rounds, err := s.loadRounds(t.ID)
	if err != nil {
		return err
	}
	t.Rounds = rounds
	return nil
}

func (s *store) loadStandings(tournamentID string) ([]Player, error) {
	rows, err := s.db.Query(`
		SELECT player_id, username, match_wins, match_losses, match_draws,
		       game_wins, game_losses, game_draws, rank, points
		FROM standings WHERE tournament_id = ? ORDER BY rank, player_id
	`, tournamentID)
	if err != nil {
		log.Error("Failed to query standings", "error", err, "tournamentID", tournamentID)
		return nil, fmt.Errorf("querying standings for %s: %w", tournamentID, err)
	}
	defer rows.Close()

	var players []Player
	for rows.Next() {
		var p Player
		var username sql.NullString
		if err := rows.Scan(&p.PlayerID, &username, &p.MatchWins, &p.MatchLosses, &p.MatchDraws,
			&p.GameWins, &p.GameLosses, &p.GameDraws, &p.Rank, &p.Points); err != nil {
			log.Error("Failed to scan standing row", "error", err, "tournamentID", tournamentID)
			continue
		}
		p.Username = username.String
		players = append(players, p)
	}
	return players, rows.Err()
}

func (s *store) loadRounds(tournamentID string) ([]Round, error) {
	rows, err := s.db.Query(`
		SELECT id, number, status FROM rounds
		WHERE tournament_id = ? ORDER BY number
	`, tournamentID)
	if err != nil {
		log.Error("Failed to query rounds", "error", err, "tournamentID", tournamentID)
		return nil, fmt.Errorf("querying rounds for %s: %w", tournamentID, err)
	}
	defer rows.Close()

	var rounds []Round
	for rows.Next() {
		var r Round
		if err := rows.Scan(&r.ID, &r.Number, &r.Status); err != nil {
			log.Error("Failed to scan round row", "error", err, "tournamentID", tournamentID)
			continue
		}
		rounds = append(rounds, r)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	for i := range rounds {
		matches, err := s.loadMatches(rounds[i].ID)
		if err != nil {
			return nil, err
		}
		rounds[i].Matches = matches
	}
	return rounds, nil
}

func (s *store) loadMatches(roundID string) ([]Match, error) {
	rows, err := s.db.Query(`
		SELECT id, player1_id, player2_id, player1_score, player2_score,
		       winner_id, is_bye, is_tie, is_intentional_draw, status
		FROM matches WHERE round_id = ? ORDER BY rowid
	`, roundID)
	if err != nil {
		log.Error("Failed to query matches", "error", err, "roundID", roundID)
		return nil, fmt.Errorf("querying matches for round %s: %w", roundID, err)
	}
	defer rows.Close()

	var matches []Match
	for rows.Next() {
		var m Match
		var p1, p2, winner sql.NullString
		if err := rows.Scan(&m.ID, &p1, &p2, &m.Player1Score, &m.Player2Score,
			&winner, &m.IsBye, &m.IsTie, &m.IsIntentionalDraw, &m.Status); err != nil {
			log.Error("Failed to scan match row", "error", err, "roundID", roundID)
			continue
		}
		m.Player1ID = p1.String
		m.Player2ID = p2.String
		m.WinnerID = winner.String
		matches = append(matches, m)
	}
	return matches, rows.Err()
}
