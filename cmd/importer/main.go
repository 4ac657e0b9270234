package main

import (
	"database/sql"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"
	"github.com/hollandnd/swu-dashboard/internal/database"
	"github.com/joho/godotenv"
)

// The importer is a one-time ETL: it reads a JSON export of the legacy
// document store (mongoexport --jsonArray of the tournaments collection) and
// loads it into the normalized schema. Unknown fields in the legacy
// documents are dropped; absent stats default to zero.

// legacyID accepts either a plain string or the {"$oid": "..."} wrapper
// mongoexport emits for ObjectIds.
type legacyID string

func (id *legacyID) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		*id = legacyID(s)
		return nil
	}
	var wrapper struct {
		OID string `json:"$oid"`
	}
	if err := json.Unmarshal(data, &wrapper); err != nil {
		return err
	}
	*id = legacyID(wrapper.OID)
	return nil
}

// legacyDate accepts an RFC 3339 string, a {"$date": "..."} wrapper, or a
// {"$date": {"$numberLong": "..."}} epoch-millis wrapper.
type legacyDate time.Time

func (d *legacyDate) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		return d.parse(s)
	}
	var wrapper struct {
		Date json.RawMessage `json:"$date"`
	}
	if err := json.Unmarshal(data, &wrapper); err != nil {
		return err
	}
	if err := json.Unmarshal(wrapper.Date, &s); err == nil {
		return d.parse(s)
	}
	var millis struct {
		NumberLong string `json:"$numberLong"`
	}
	if err := json.Unmarshal(wrapper.Date, &millis); err != nil {
		return err
	}
	ms, err := strconv.ParseInt(millis.NumberLong, 10, 64)
	if err != nil {
		return fmt.Errorf("parsing $numberLong date: %w", err)
	}
	*d = legacyDate(time.UnixMilli(ms).UTC())
	return nil
}

func (d *legacyDate) parse(s string) error {
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return fmt.Errorf("parsing date %q: %w", s, err)
	}
	*d = legacyDate(t.UTC())
	return nil
}

type legacyTournament struct {
	ID          legacyID       `json:"_id"`
	Name        string         `json:"name"`
	GuildName   string         `json:"guildName"`
	Date        legacyDate     `json:"date"`
	PlayerCount int            `json:"playerCount"`
	Players     []legacyPlayer `json:"players"`
	Rounds      []legacyRound  `json:"rounds"`
}

type legacyPlayer struct {
	DiscordID   string `json:"discordId"`
	Username    string `json:"username"`
	MatchWins   int    `json:"matchWins"`
	MatchLosses int    `json:"matchLosses"`
	MatchDraws  int    `json:"matchDraws"`
	GameWins    int    `json:"gameWins"`
	GameLosses  int    `json:"gameLosses"`
	GameDraws   int    `json:"gameDraws"`
	Rank        int    `json:"rank"`
	Points      int    `json:"points"`
}

type legacyRound struct {
	Number  int           `json:"number"`
	Status  string        `json:"status"`
	Matches []legacyMatch `json:"matches"`
}

type legacyMatch struct {
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

func main() {
	filePath := flag.String("file", "", "Path to the legacy tournaments JSON export")
	flag.Parse()
	if *filePath == "" {
		log.Fatal("Missing required -file flag")
	}

	if err := godotenv.Load(); err != nil {
		log.Warn("No .env file found, reading from environment variables")
	}
	dbName := os.Getenv("DB_NAME")
	if dbName == "" {
		log.Fatal("Required environment variable DB_NAME is not set")
	}
	migrationsDir := os.Getenv("MIGRATIONS_DIR")
	if migrationsDir == "" {
		migrationsDir = "./migrations"
	}

	log.Info("Starting legacy data import...", "file", *filePath)

	data, err := os.ReadFile(*filePath)
	if err != nil {
		log.Fatalf("Failed to read export file: %s", err)
	}
	var tournaments []legacyTournament
	if err := json.Unmarshal(data, &tournaments); err != nil {
		log.Fatalf("Failed to parse export file: %s", err)
	}
	log.Info("Found tournaments to import", "count", len(tournaments))

	db, teardown, err := database.InitDB(dbName, os.Getenv("TURSO_PRIMARY_URL"), os.Getenv("TURSO_AUTH_TOKEN"), migrationsDir)
	if err != nil {
		log.Fatalf("Failed to initialize database: %s", err)
	}
	defer teardown()

	startTime := time.Now()
	imported := 0
	for _, t := range tournaments {
		if err := importTournament(db, t); err != nil {
			log.Error("Failed to import tournament", "error", err, "name", t.Name)
			continue
		}
		imported++
		log.Info("Imported tournament", "name", t.Name, "players", len(t.Players), "rounds", len(t.Rounds))
	}

	log.Info("Import completed", "imported", imported, "total", len(tournaments), "duration", time.Since(startTime))
}

// importTournament loads one legacy document inside a single transaction.
// Re-importing an id replaces its previous rows, so the importer can be
// re-run on a fresh export.
func importTournament(db *sql.DB, t legacyTournament) error {
	if t.ID == "" {
		return fmt.Errorf("tournament %q has no id", t.Name)
	}

	tx, err := db.Begin()
	if err != nil {
		return err
	}

	// ON DELETE CASCADE clears standings, rounds and matches.
	if _, err := tx.Exec("DELETE FROM tournaments WHERE id = ?", string(t.ID)); err != nil {
		tx.Rollback()
		return err
	}

	playerCount := t.PlayerCount
	if playerCount == 0 {
		playerCount = len(t.Players)
	}
	guildName := t.GuildName
	if guildName == "" {
		guildName = "Unknown"
	}

	_, err = tx.Exec(`
		INSERT INTO tournaments (id, name, guild_name, date, player_count)
		VALUES (?, ?, ?, ?, ?)
	`, string(t.ID), t.Name, guildName, time.Time(t.Date).Unix(), playerCount)
	if err != nil {
		tx.Rollback()
		return err
	}

	if err := insertStandings(tx, string(t.ID), t.Players); err != nil {
		tx.Rollback()
		return err
	}

	for _, round := range t.Rounds {
		if err := insertRound(tx, string(t.ID), round); err != nil {
			tx.Rollback()
			return err
		}
	}

	return tx.Commit()
}

func insertStandings(tx *sql.Tx, tournamentID string, players []legacyPlayer) error {
	if len(players) == 0 {
		return nil
	}

	valueStrings := make([]string, 0, len(players))
	valueArgs := make([]any, 0, len(players)*11)
	for _, p := range players {
		if p.DiscordID == "" {
			log.Warn("Skipping standing without a player id", "tournamentID", tournamentID, "username", p.Username)
			continue
		}
		valueStrings = append(valueStrings, "(?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)")
		valueArgs = append(valueArgs,
			tournamentID, p.DiscordID, p.Username,
			p.MatchWins, p.MatchLosses, p.MatchDraws,
			p.GameWins, p.GameLosses, p.GameDraws,
			p.Rank, p.Points,
		)
	}
	if len(valueStrings) == 0 {
		return nil
	}

	stmt := fmt.Sprintf(`
		INSERT INTO standings (tournament_id, player_id, username, match_wins, match_losses,
			match_draws, game_wins, game_losses, game_draws, rank, points)
		VALUES %s;`, strings.Join(valueStrings, ","))
	_, err := tx.Exec(stmt, valueArgs...)
	return err
}

func insertRound(tx *sql.Tx, tournamentID string, round legacyRound) error {
	roundID := uuid.NewString()
	status := round.Status
	if status == "" {
		status = "complete"
	}
	if _, err := tx.Exec(`
		INSERT INTO rounds (id, tournament_id, number, status) VALUES (?, ?, ?, ?)
	`, roundID, tournamentID, round.Number, status); err != nil {
		return err
	}

	if len(round.Matches) == 0 {
		return nil
	}

	valueStrings := make([]string, 0, len(round.Matches))
	valueArgs := make([]any, 0, len(round.Matches)*11)
	for _, m := range round.Matches {
		status := m.Status
		if status == "" {
			status = "complete"
		}
		valueStrings = append(valueStrings, "(?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)")
		valueArgs = append(valueArgs,
			uuid.NewString(), roundID,
			nullable(m.Player1ID), nullable(m.Player2ID),
			m.Player1Score, m.Player2Score,
			nullable(m.WinnerID),
			m.IsBye, m.IsTie, m.IsIntentionalDraw, status,
		)
	}

	stmt := fmt.Sprintf(`
		INSERT INTO matches (id, round_id, player1_id, player2_id, player1_score, player2_score,
			winner_id, is_bye, is_tie, is_intentional_draw, status)
		VALUES %s;`, strings.Join(valueStrings, ","))
	_, err := tx.Exec(stmt, valueArgs...)
	return err
}

// nullable maps the empty string to NULL so absent slots stay absent.
func nullable(s string) any {
	if s == "" {
		return nil
	}
	return s
}
