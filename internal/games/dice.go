package games

import (
	"strconv"
	"time"

	"github.com/KirkDiggler/robuxroyale/internal/models"
	"github.com/KirkDiggler/robuxroyale/internal/random"
)

const (
	// MinThreshold and MaxThreshold bound the player's number so the win chance is never 0 or 100
	MinThreshold = 1
	MaxThreshold = 99
)

// DiceMode is the direction of the prediction
type DiceMode string

const (
	DiceModeOver  DiceMode = "over"
	DiceModeUnder DiceMode = "under"
)

// DiceBet is the player's prediction
type DiceBet struct {
	Threshold int
	Mode      DiceMode
}

// Validate checks the prediction before anything is drawn
func (b DiceBet) Validate() error {
	if b.Threshold < MinThreshold || b.Threshold > MaxThreshold {
		return ErrInvalidThreshold
	}
	if b.Mode != DiceModeOver && b.Mode != DiceModeUnder {
		return ErrInvalidMode
	}
	return nil
}

// WinChance returns the chance of winning in percent
func (b DiceBet) WinChance() int {
	if b.Mode == DiceModeUnder {
		return b.Threshold
	}
	return 100 - b.Threshold
}

// Wins reports whether roll satisfies the prediction
func (b DiceBet) Wins(roll int) bool {
	if b.Mode == DiceModeUnder {
		return roll < b.Threshold
	}
	return roll > b.Threshold
}

// DiceConfig holds the dice rules
type DiceConfig struct {
	// Sides is the size of the die, rolls land in [1, Sides]
	Sides int

	// Base is the stake the implied odds multiply
	Base int

	BoostPercent int

	// RollDuration is how long the rolling animation runs
	RollDuration time.Duration
}

// DefaultDiceConfig returns the standard d100 rules
func DefaultDiceConfig() *DiceConfig {
	return &DiceConfig{
		Sides:        100,
		Base:         5,
		BoostPercent: 120,
		RollDuration: 1500 * time.Millisecond,
	}
}

// DiceDraw is the fixed roll
type DiceDraw struct {
	Roll int
}

// DrawDice rolls the die
func DrawDice(src random.Source, cfg *DiceConfig) DiceDraw {
	return DiceDraw{Roll: src.Intn(cfg.Sides) + 1}
}

// DicePayout returns floor(base * 100/winChance), boosted
func DicePayout(bet DiceBet, cfg *DiceConfig, boost Boost) (int, error) {
	if err := bet.Validate(); err != nil {
		return 0, err
	}
	base := cfg.Base * 100 / bet.WinChance()
	return applyBoost(base, cfg.BoostPercent, boost), nil
}

// ComputeDice turns a roll and a prediction into an outcome
func ComputeDice(draw DiceDraw, bet DiceBet, cfg *DiceConfig, boost Boost) (*models.RoundOutcome, error) {
	if err := bet.Validate(); err != nil {
		return nil, err
	}
	if draw.Roll < 1 || draw.Roll > cfg.Sides {
		return nil, ErrDrawOutOfRange
	}

	outcome := &models.RoundOutcome{
		Game:        models.GameKindDice,
		Draws:       []float64{float64(draw.Roll)},
		Value:       float64(draw.Roll),
		Display:     strconv.Itoa(draw.Roll),
		RevealAfter: cfg.RollDuration,
	}

	if !bet.Wins(draw.Roll) {
		return outcome, nil
	}

	payout, err := DicePayout(bet, cfg, boost)
	if err != nil {
		return nil, err
	}

	outcome.Won = true
	outcome.Payout = payout
	outcome.Boosted = boost.Active

	return outcome, nil
}
