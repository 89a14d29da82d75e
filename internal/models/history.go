package models

import (
	"time"
)

// HistoryResult is the won/lost flag shown in the history list
type HistoryResult string

const (
	// HistoryResultWon marks a round that paid out
	HistoryResultWon HistoryResult = "won"

	// HistoryResultLost marks a round that paid nothing
	HistoryResultLost HistoryResult = "lost"
)

// HistoryEntry is one line of the session history
type HistoryEntry struct {
	// ID is the round identifier
	ID string

	// PlayerName is the name from the bet context
	PlayerName string

	// Game is the game that was played
	Game GameKind

	// BetAmount is the stake from the bet context
	BetAmount int

	// Result is won or lost
	Result HistoryResult

	// Winnings is the payout of the round
	Winnings int

	// Timestamp is when the round finished
	Timestamp time.Time
}
