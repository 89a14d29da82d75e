package discord

// BotError is a custom error type for Discord handler errors
type BotError string

// Error implements the error interface
func (e BotError) Error() string {
	return string(e)
}

const (
	ErrNilConfig           BotError = "config cannot be nil"
	ErrEmptyToken          BotError = "token cannot be empty"
	ErrNilCasinoService    BotError = "casino service cannot be nil"
	ErrNilMessagingService BotError = "messaging service cannot be nil"
)
