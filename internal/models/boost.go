package models

// BoostState is a snapshot of the session boost modifier
type BoostState struct {
	// Active indicates the modifier currently applies
	Active bool

	// RemainingSeconds is what is left of the countdown
	RemainingSeconds int
}
