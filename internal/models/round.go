package models

import (
	"time"
)

// RoundPhase is the state of a timed round
type RoundPhase string

const (
	// RoundPhaseIdle is the state before a round starts
	RoundPhaseIdle RoundPhase = "idle"

	// RoundPhaseRunning indicates the tracked value is still climbing
	RoundPhaseRunning RoundPhase = "running"

	// RoundPhaseCashedOut indicates the player stopped the round in time
	RoundPhaseCashedOut RoundPhase = "cashed_out"

	// RoundPhaseBusted indicates the tracked value reached the drawn limit
	RoundPhaseBusted RoundPhase = "busted"
)

// IsTerminal reports whether the round has finished
func (p RoundPhase) IsTerminal() bool {
	return p == RoundPhaseCashedOut || p == RoundPhaseBusted
}

// RoundOutcome is the immutable result of one round
type RoundOutcome struct {
	// ID is the unique identifier for the round
	ID string

	// SessionID is the session the round was played in
	SessionID string

	// Game is the mini-game that produced the outcome
	Game GameKind

	// Draws holds the random values fixed at round start
	Draws []float64

	// Value is the numeric result (prize, roll, multiplier, height)
	Value float64

	// Display is the human readable result
	Display string

	// Symbols holds the reel symbols for slot rounds
	Symbols []string

	// Won indicates whether the round paid anything
	Won bool

	// Payout is the truncated amount credited for the round
	Payout int

	// Boosted indicates the boost modifier was applied to the payout
	Boosted bool

	// Bet is the bet context attached to the round, if any
	Bet *BetContext

	// RevealAfter is how long the client animation runs before showing the result
	RevealAfter time.Duration

	// CreatedAt is when the round was resolved
	CreatedAt time.Time
}
