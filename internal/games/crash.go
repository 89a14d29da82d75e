package games

import (
	"fmt"
	"time"

	"github.com/KirkDiggler/robuxroyale/internal/models"
	"github.com/KirkDiggler/robuxroyale/internal/random"
)

// CrashConfig holds the crash rules. Multipliers are tracked in hundredths.
type CrashConfig struct {
	// MinCrash and CrashSpan bound the drawn crash point: [MinCrash, MinCrash+CrashSpan)
	MinCrash  float64
	CrashSpan float64

	// StepHundredths is how much the multiplier grows per tick
	StepHundredths int

	Base         int
	BoostPercent int

	TickInterval time.Duration
}

// DefaultCrashConfig returns the standard rules: 1.10x to 20.10x, +0.01x every 50ms
func DefaultCrashConfig() *CrashConfig {
	return &CrashConfig{
		MinCrash:       1.1,
		CrashSpan:      19,
		StepHundredths: 1,
		Base:           5,
		BoostPercent:   150,
		TickInterval:   50 * time.Millisecond,
	}
}

// CrashDraw is the fixed crash point
type CrashDraw struct {
	Point float64
}

// DrawCrash draws the crash point
func DrawCrash(src random.Source, cfg *CrashConfig) CrashDraw {
	return CrashDraw{Point: src.Float64()*cfg.CrashSpan + cfg.MinCrash}
}

// multiplierHundredths returns the multiplier after ticks, x100
func (c *CrashConfig) multiplierHundredths(ticks int) int {
	return 100 + ticks*c.StepHundredths
}

// CrashPayout returns floor(multiplier * base * boost) for a multiplier given in hundredths
func CrashPayout(hundredths int, cfg *CrashConfig, boost Boost) int {
	percent := 100
	if boost.Active && cfg.BoostPercent > 0 {
		percent = cfg.BoostPercent
	}
	return hundredths * cfg.Base * percent / 10000
}

// NewCrashRound builds an idle round around a drawn crash point
func NewCrashRound(draw CrashDraw, cfg *CrashConfig) (*TimedRound, error) {
	if draw.Point <= 1 {
		return nil, ErrInvalidTimedRange
	}

	return &TimedRound{
		game:  models.GameKindCrash,
		limit: draw.Point,
		phase: models.RoundPhaseIdle,
		valueAt: func(ticks int) float64 {
			return float64(cfg.multiplierHundredths(ticks)) / 100
		},
		payoutAt: func(ticks int, boost Boost) int {
			return CrashPayout(cfg.multiplierHundredths(ticks), cfg, boost)
		},
		display: func(value float64) string {
			return fmt.Sprintf("%.2fx", value)
		},
	}, nil
}
