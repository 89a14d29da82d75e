package models

// BetContext is captured by the bet modal before a round
type BetContext struct {
	// PlayerName is the name entered by the player
	PlayerName string

	// BetAmount is the stake entered by the player
	BetAmount int

	// Game is the game the bet was placed for
	Game GameKind
}
