package games

import (
	"fmt"
	"time"

	"github.com/KirkDiggler/robuxroyale/internal/models"
	"github.com/KirkDiggler/robuxroyale/internal/random"
)

// NyanCatConfig holds the flight rules. Heights are whole meters.
type NyanCatConfig struct {
	// MinCeiling and CeilingSpan bound the drawn ceiling: [MinCeiling, MinCeiling+CeilingSpan)
	MinCeiling  float64
	CeilingSpan float64

	// ClimbPerTick is how many meters the cat rises per tick
	ClimbPerTick int

	// MetersPerUnit is how many meters pay one unit
	MetersPerUnit int

	// MinPayout is the floor of a successful save
	MinPayout int

	BoostPercent int

	TickInterval time.Duration
}

// DefaultNyanCatConfig returns the standard rules: ceiling 50m to 300m, +2m every 50ms
func DefaultNyanCatConfig() *NyanCatConfig {
	return &NyanCatConfig{
		MinCeiling:    50,
		CeilingSpan:   250,
		ClimbPerTick:  2,
		MetersPerUnit: 10,
		MinPayout:     1,
		BoostPercent:  130,
		TickInterval:  50 * time.Millisecond,
	}
}

// NyanCatDraw is the fixed ceiling
type NyanCatDraw struct {
	Ceiling float64
}

// DrawNyanCat draws the ceiling
func DrawNyanCat(src random.Source, cfg *NyanCatConfig) NyanCatDraw {
	return NyanCatDraw{Ceiling: src.Float64()*cfg.CeilingSpan + cfg.MinCeiling}
}

// NyanCatPayout returns floor(height/10) boosted, never below the minimum
func NyanCatPayout(height int, cfg *NyanCatConfig, boost Boost) int {
	payout := applyBoost(height/cfg.MetersPerUnit, cfg.BoostPercent, boost)
	if payout < cfg.MinPayout {
		return cfg.MinPayout
	}
	return payout
}

// NewNyanCatRound builds an idle flight around a drawn ceiling
func NewNyanCatRound(draw NyanCatDraw, cfg *NyanCatConfig) (*TimedRound, error) {
	if draw.Ceiling <= 0 {
		return nil, ErrInvalidTimedRange
	}

	return &TimedRound{
		game:  models.GameKindNyanCat,
		limit: draw.Ceiling,
		phase: models.RoundPhaseIdle,
		valueAt: func(ticks int) float64 {
			return float64(ticks * cfg.ClimbPerTick)
		},
		payoutAt: func(ticks int, boost Boost) int {
			return NyanCatPayout(ticks*cfg.ClimbPerTick, cfg, boost)
		},
		display: func(value float64) string {
			return fmt.Sprintf("%.0fm", value)
		},
	}, nil
}
