package boost

// BoostError is a custom error type for modifier construction errors
type BoostError string

// Error implements the error interface
func (e BoostError) Error() string {
	return string(e)
}

const (
	ErrNilConfig BoostError = "config cannot be nil"
	ErrNilClock  BoostError = "clock cannot be nil"
)
