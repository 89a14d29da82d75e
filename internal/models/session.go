package models

import (
	"time"
)

// Session is one visitor's stay on the page
type Session struct {
	// ID is the unique identifier for this session
	ID string

	// PlayerName is the last name entered in the bet modal
	PlayerName string

	// CreatedAt is when the session was created
	CreatedAt time.Time

	// TermsAccepted indicates the games are unlocked
	TermsAccepted bool

	// TermsAcceptedAt is when the terms were accepted
	TermsAcceptedAt time.Time

	// PendingReward is the latest unclaimed win
	PendingReward int
}
