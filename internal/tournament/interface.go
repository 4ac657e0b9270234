package tournament

// TournamentStore defines the read-only interface for tournament records.
// The aggregation engine and the HTTP handlers only ever consume this; the
// importer writes through plain SQL.
type TournamentStore interface {
	CountTournaments() (int, error)
	CountPlayers() (int, error)
	GetRecentTournaments(limit int) ([]Tournament, error)
	GetTournaments() ([]Tournament, error)
	GetTournamentByID(id string) (*Tournament, error)
	GetTournamentsForPlayer(playerID string) ([]Tournament, error)
}
