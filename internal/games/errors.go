package games

// GameError is a custom error type for round rule violations
type GameError string

// Error implements the error interface
func (e GameError) Error() string {
	return string(e)
}

const (
	ErrInvalidThreshold  GameError = "threshold must be between 1 and 99"
	ErrInvalidMode       GameError = "mode must be over or under"
	ErrDrawOutOfRange    GameError = "draw does not fit the game table"
	ErrRoundNotIdle      GameError = "round has already started"
	ErrRoundNotRunning   GameError = "round is not running"
	ErrRoundNotFinished  GameError = "round has not finished"
	ErrEmptyPrizeTable   GameError = "prize table cannot be empty"
	ErrEmptySymbolTable  GameError = "symbol table cannot be empty"
	ErrInvalidTimedRange GameError = "limit range must start above the starting value"
)
