package models

// SessionStats summarises the rounds of a session
type SessionStats struct {
	// Rounds is the number of rounds played
	Rounds int

	// Wins is the number of rounds that paid out
	Wins int

	// Losses is the number of rounds that paid nothing
	Losses int

	// TotalBet is the sum of the attached bet amounts
	TotalBet int

	// TotalWinnings is the sum of all payouts
	TotalWinnings int
}

// WinRate returns wins as a rounded percentage of rounds
func (s *SessionStats) WinRate() int {
	if s.Rounds == 0 {
		return 0
	}
	return (s.Wins*100 + s.Rounds/2) / s.Rounds
}
