package stats

import (
	"sort"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/hollandnd/swu-dashboard/internal/names"
	"github.com/hollandnd/swu-dashboard/internal/tournament"
)

// nameCollator orders opponent display names for tie-breaking. A collator is
// not safe for concurrent use, so each build creates its own.
func nameCollator() *collate.Collator {
	return collate.New(language.English)
}

// BuildHeadToHead scans every round of the given tournaments and produces one
// record per distinct opponent the player faced. Bye matches never count.
// Records are ordered by match wins descending, ties by opponent display
// name ascending; display names are anonymized before sorting so the order
// matches what the dashboard renders.
func BuildHeadToHead(tournaments []tournament.Tournament, playerID string, anon names.Anonymizer) []OpponentRecord {
	byOpponent := make(map[string]*OpponentRecord)
	order := make([]string, 0)

	for _, t := range tournaments {
		for _, round := range t.Rounds {
			for _, match := range round.Matches {
				if match.IsBye {
					continue
				}

				isPlayer1 := match.Player1ID == playerID
				isPlayer2 := match.Player2ID == playerID
				if !isPlayer1 && !isPlayer2 {
					continue
				}

				opponentID := match.Player2ID
				if isPlayer2 {
					opponentID = match.Player1ID
				}
				if opponentID == "" {
					continue
				}

				opponent := findStanding(t.Players, opponentID)
				if opponent == nil {
					// An opponent missing from the standings cannot be
					// named; drop the match rather than invent a label.
					continue
				}

				record, ok := byOpponent[opponentID]
				if !ok {
					record = &OpponentRecord{
						PlayerID: opponentID,
						Username: anon.Anonymize(opponent.Username),
					}
					byOpponent[opponentID] = record
					order = append(order, opponentID)
				}

				switch match.WinnerID {
				case playerID:
					record.MatchWins++
				case opponentID:
					record.MatchLosses++
				default:
					record.MatchDraws++
				}

				if isPlayer1 {
					record.GameWins += match.Player1Score
					record.GameLosses += match.Player2Score
				} else {
					record.GameWins += match.Player2Score
					record.GameLosses += match.Player1Score
				}
			}
		}
	}

	records := make([]OpponentRecord, 0, len(order))
	for _, id := range order {
		records = append(records, *byOpponent[id])
	}

	collator := nameCollator()
	sort.SliceStable(records, func(i, j int) bool {
		if records[i].MatchWins != records[j].MatchWins {
			return records[i].MatchWins > records[j].MatchWins
		}
		return collator.CompareString(records[i].Username, records[j].Username) < 0
	})

	return records
}
