package messaging

import (
	"github.com/KirkDiggler/robuxroyale/internal/models"
	"github.com/KirkDiggler/robuxroyale/internal/random"
)

// MessagingError is a custom error type for messaging service errors
type MessagingError string

// Error implements the error interface
func (e MessagingError) Error() string {
	return string(e)
}

const (
	ErrNilConfig MessagingError = "config cannot be nil"
	ErrNilRandom MessagingError = "random source cannot be nil"
	ErrNilInput  MessagingError = "input cannot be nil"
)

// MessageTone represents the tone of a message
type MessageTone string

const (
	// ToneFunny is a humorous tone
	ToneFunny MessageTone = "funny"

	// ToneCelebration is a celebratory tone
	ToneCelebration MessageTone = "celebration"

	// ToneSarcastic is a sarcastic tone
	ToneSarcastic MessageTone = "sarcastic"
)

// GetRoundResultMessageInput contains parameters for a round result message
type GetRoundResultMessageInput struct {
	// PlayerName is shown in the message
	PlayerName string

	// Outcome is the finished round
	Outcome *models.RoundOutcome

	// PreferredTone overrides the tone picked from the outcome (optional)
	PreferredTone MessageTone
}

// GetRoundResultMessageOutput contains the generated round result message
type GetRoundResultMessageOutput struct {
	Title   string
	Message string
	Tone    MessageTone
}

// GetRoundStartMessageInput contains parameters for a round start message
type GetRoundStartMessageInput struct {
	PlayerName string
	Game       models.GameKind
}

// GetRoundStartMessageOutput contains the generated round start message
type GetRoundStartMessageOutput struct {
	Message string
}

// GetClaimMessageInput contains parameters for a claim message
type GetClaimMessageInput struct {
	// Username is the Roblox name the reward goes to
	Username string

	// Amount is the reward in R$
	Amount int
}

// GetClaimMessageOutput contains the generated claim message
type GetClaimMessageOutput struct {
	Title   string
	Message string
}

// GetErrorMessageInput contains parameters for an error message
type GetErrorMessageInput struct {
	Err error
}

// GetErrorMessageOutput contains the generated error message
type GetErrorMessageOutput struct {
	Message string
}

// ServiceConfig contains configuration for the messaging service
type ServiceConfig struct {
	// Random picks among the message variants
	Random random.Source
}
