package games

import (
	"strconv"
	"time"

	"github.com/KirkDiggler/robuxroyale/internal/models"
	"github.com/KirkDiggler/robuxroyale/internal/random"
)

// DefaultRoulettePrizes is the wheel, one entry per section. Repeated values carry the weight.
var DefaultRoulettePrizes = []int{
	1, 5, 1, 10, 2, 1, 25, 1, 3, 1, 50, 2, 1, 5, 1, 100, 1, 2, 1, 10, 3, 1, 5, 1,
}

// RouletteConfig holds the wheel rules
type RouletteConfig struct {
	// Prizes is the prize of each section
	Prizes []int

	// BoostMinPrize is the smallest section prize left in the pool while boosted
	BoostMinPrize int

	// BoostPercent scales the prize while boosted
	BoostPercent int

	// SpinDuration is how long the wheel animation runs
	SpinDuration time.Duration

	// MinExtraSpins and ExtraSpinRange bound the full rotations before stopping
	MinExtraSpins  float64
	ExtraSpinRange float64
}

// DefaultRouletteConfig returns the standard wheel
func DefaultRouletteConfig() *RouletteConfig {
	return &RouletteConfig{
		Prizes:         DefaultRoulettePrizes,
		BoostMinPrize:  5,
		BoostPercent:   150,
		SpinDuration:   4 * time.Second,
		MinExtraSpins:  5,
		ExtraSpinRange: 3,
	}
}

// RouletteDraw is the fixed result of a spin
type RouletteDraw struct {
	// Index is the winning section
	Index int

	// ExtraSpins is the number of full turns before the wheel settles
	ExtraSpins float64
}

// Rotation returns the final wheel angle in degrees
func (d RouletteDraw) Rotation(cfg *RouletteConfig) float64 {
	if len(cfg.Prizes) == 0 {
		return d.ExtraSpins * 360
	}
	section := 360 / float64(len(cfg.Prizes))
	return d.ExtraSpins*360 + float64(d.Index)*section
}

// pool returns the section indices a spin may land on
func (c *RouletteConfig) pool(boost Boost) []int {
	all := make([]int, 0, len(c.Prizes))
	boosted := make([]int, 0, len(c.Prizes))
	for i, prize := range c.Prizes {
		all = append(all, i)
		if prize >= c.BoostMinPrize {
			boosted = append(boosted, i)
		}
	}

	if boost.Active && len(boosted) > 0 {
		return boosted
	}
	return all
}

// DrawRoulette picks the winning section
func DrawRoulette(src random.Source, cfg *RouletteConfig, boost Boost) (RouletteDraw, error) {
	if len(cfg.Prizes) == 0 {
		return RouletteDraw{}, ErrEmptyPrizeTable
	}

	extra := cfg.MinExtraSpins + src.Float64()*cfg.ExtraSpinRange
	pool := cfg.pool(boost)

	return RouletteDraw{
		Index:      pool[src.Intn(len(pool))],
		ExtraSpins: extra,
	}, nil
}

// ComputeRoulette turns a draw into an outcome. The wheel has no losing section.
func ComputeRoulette(draw RouletteDraw, cfg *RouletteConfig, boost Boost) (*models.RoundOutcome, error) {
	if draw.Index < 0 || draw.Index >= len(cfg.Prizes) {
		return nil, ErrDrawOutOfRange
	}

	prize := cfg.Prizes[draw.Index]

	return &models.RoundOutcome{
		Game:        models.GameKindRoulette,
		Draws:       []float64{float64(draw.Index), draw.ExtraSpins},
		Value:       float64(prize),
		Display:     strconv.Itoa(prize),
		Won:         true,
		Payout:      applyBoost(prize, cfg.BoostPercent, boost),
		Boosted:     boost.Active,
		RevealAfter: cfg.SpinDuration,
	}, nil
}
