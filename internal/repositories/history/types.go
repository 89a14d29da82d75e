package history

import "github.com/KirkDiggler/robuxroyale/internal/models"

// DefaultCap is how many entries a session keeps
const DefaultCap = 50

// HistoryError is a custom error type for history storage errors
type HistoryError string

// Error implements the error interface
func (e HistoryError) Error() string {
	return string(e)
}

const (
	ErrNilConfig      HistoryError = "config cannot be nil"
	ErrNilRedisClient HistoryError = "redis client cannot be nil"
	ErrEmptySessionID HistoryError = "session ID cannot be empty"
	ErrNilEntry       HistoryError = "entry cannot be nil"
)

type AddEntryInput struct {
	SessionID string
	Entry     *models.HistoryEntry
}

type ListEntriesInput struct {
	SessionID string

	// Limit caps the result, zero or less returns everything kept
	Limit int
}

type ListEntriesOutput struct {
	Entries []*models.HistoryEntry
}

type GetStatsInput struct {
	SessionID string
}

type DeleteSessionInput struct {
	SessionID string
}

// validateAdd is shared by both implementations
func validateAdd(input *AddEntryInput) error {
	if input == nil || input.Entry == nil {
		return ErrNilEntry
	}
	if input.SessionID == "" {
		return ErrEmptySessionID
	}
	return nil
}

// foldStats applies one entry to the stats
func foldStats(stats *models.SessionStats, entry *models.HistoryEntry) {
	stats.Rounds++
	if entry.Result == models.HistoryResultWon {
		stats.Wins++
	} else {
		stats.Losses++
	}
	stats.TotalBet += entry.BetAmount
	stats.TotalWinnings += entry.Winnings
}
