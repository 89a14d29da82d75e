package models

// GameKind identifies one of the mini-games
type GameKind string

const (
	// GameKindRoulette is the prize wheel
	GameKindRoulette GameKind = "roulette"

	// GameKindSlots is the three reel slot machine
	GameKindSlots GameKind = "slots"

	// GameKindDice is the over/under dice game
	GameKindDice GameKind = "dice"

	// GameKindCrash is the rising multiplier game
	GameKindCrash GameKind = "crash"

	// GameKindNyanCat is the "save the cat" height game
	GameKindNyanCat GameKind = "nyancat"
)

// GameKinds lists every game in selector order
var GameKinds = []GameKind{
	GameKindRoulette,
	GameKindSlots,
	GameKindCrash,
	GameKindDice,
	GameKindNyanCat,
}

// IsValid reports whether the kind names a known game
func (k GameKind) IsValid() bool {
	for _, kind := range GameKinds {
		if k == kind {
			return true
		}
	}
	return false
}

// IsTimed reports whether rounds of this game run on a tick loop
func (k GameKind) IsTimed() bool {
	return k == GameKindCrash || k == GameKindNyanCat
}

// GameInfo describes a game for the selector screen
type GameInfo struct {
	// Kind is the game identifier
	Kind GameKind

	// Name is the display name
	Name string

	// Description explains how the game pays out
	Description string
}
