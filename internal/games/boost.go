package games

// Boost is the only thing a game knows about the session modifier
type Boost struct {
	Active bool
}

// applyBoost scales amount by percent when the boost is active, truncating
func applyBoost(amount, percent int, boost Boost) int {
	if !boost.Active || percent <= 0 {
		return amount
	}
	return amount * percent / 100
}
