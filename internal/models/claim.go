package models

import (
	"time"
)

// RewardClaim is the result of the username popup
type RewardClaim struct {
	// Username is the trimmed name entered by the player
	Username string

	// Amount is the reward being claimed
	Amount int

	// ClipboardText is what the page copies before redirecting
	ClipboardText string

	// RedirectURL is where the page sends the player
	RedirectURL string

	// RedirectAfter is the delay before the redirect
	RedirectAfter time.Duration
}
