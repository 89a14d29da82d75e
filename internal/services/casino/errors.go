package casino

// CasinoError is a custom error type for casino service errors
type CasinoError string

// Error implements the error interface
func (e CasinoError) Error() string {
	return string(e)
}

const (
	ErrNilConfig        CasinoError = "config cannot be nil"
	ErrNilHistoryRepo   CasinoError = "history repository cannot be nil"
	ErrNilRandom        CasinoError = "random source cannot be nil"
	ErrNilClock         CasinoError = "clock cannot be nil"
	ErrNilUUIDGenerator CasinoError = "UUID generator cannot be nil"

	ErrSessionNotFound  CasinoError = "session not found"
	ErrInvalidInput     CasinoError = "invalid input"
	ErrTermsNotAccepted CasinoError = "terms have not been accepted"
	ErrTermsCountdown   CasinoError = "terms can only be accepted after the reading countdown"
	ErrNoPendingReward  CasinoError = "no reward to claim"
	ErrRoundInProgress  CasinoError = "a round of this game is already running"
	ErrNoRound          CasinoError = "no round of this game has been started"
	ErrRoundNotRunning  CasinoError = "round is not running"
)
