package games

import (
	"strings"
	"time"

	"github.com/KirkDiggler/robuxroyale/internal/models"
	"github.com/KirkDiggler/robuxroyale/internal/random"
)

// ReelCount is the number of reels on the machine
const ReelCount = 3

// SlotSymbols is the reel alphabet, lowest paying first
var SlotSymbols = []string{"A", "K", "Q", "J", "★", "♠", "7"}

// DefaultSlotPayouts is what a triple of each symbol pays
var DefaultSlotPayouts = map[string]int{
	"A": 5,
	"K": 10,
	"Q": 15,
	"J": 25,
	"★": 50,
	"♠": 75,
	"7": 100,
}

// SlotsConfig holds the machine rules
type SlotsConfig struct {
	Symbols []string
	Payouts map[string]int

	// BoostSymbols is the high value pool a boosted reel may draw from first
	BoostSymbols []string

	// BoostChance is the per-reel probability of drawing from BoostSymbols
	BoostChance float64

	// ConsolationChance is the probability of a consolation prize on a miss
	ConsolationChance float64
	ConsolationAmount int

	BoostPercent int

	// ReelStops is when each reel stops, measured from the spin
	ReelStops [ReelCount]time.Duration

	// SettleDelay is the pause between the last reel and the result
	SettleDelay time.Duration
}

// DefaultSlotsConfig returns the standard machine
func DefaultSlotsConfig() *SlotsConfig {
	return &SlotsConfig{
		Symbols:           SlotSymbols,
		Payouts:           DefaultSlotPayouts,
		BoostSymbols:      []string{"★", "♠", "7"},
		BoostChance:       0.4,
		ConsolationChance: 0.1,
		ConsolationAmount: 2,
		BoostPercent:      130,
		ReelStops: [ReelCount]time.Duration{
			800 * time.Millisecond,
			1200 * time.Millisecond,
			1600 * time.Millisecond,
		},
		SettleDelay: 300 * time.Millisecond,
	}
}

// SlotsDraw is the fixed result of a spin
type SlotsDraw struct {
	Reels [ReelCount]string

	// Consolation is compared against ConsolationChance on a miss
	Consolation float64
}

// DrawSlots draws every reel and the consolation value up front
func DrawSlots(src random.Source, cfg *SlotsConfig, boost Boost) (SlotsDraw, error) {
	if len(cfg.Symbols) == 0 {
		return SlotsDraw{}, ErrEmptySymbolTable
	}

	var draw SlotsDraw
	for i := range draw.Reels {
		draw.Reels[i] = drawSymbol(src, cfg, boost)
	}
	draw.Consolation = src.Float64()

	return draw, nil
}

func drawSymbol(src random.Source, cfg *SlotsConfig, boost Boost) string {
	if boost.Active && len(cfg.BoostSymbols) > 0 {
		if src.Float64() < cfg.BoostChance {
			return cfg.BoostSymbols[src.Intn(len(cfg.BoostSymbols))]
		}
	}
	return cfg.Symbols[src.Intn(len(cfg.Symbols))]
}

// IsTriple reports whether all reels show the same symbol
func (d SlotsDraw) IsTriple() bool {
	for _, reel := range d.Reels[1:] {
		if reel != d.Reels[0] {
			return false
		}
	}
	return true
}

// ComputeSlots turns a draw into an outcome
func ComputeSlots(draw SlotsDraw, cfg *SlotsConfig, boost Boost) (*models.RoundOutcome, error) {
	draws := make([]float64, 0, ReelCount+1)
	for _, reel := range draw.Reels {
		idx := symbolIndex(cfg.Symbols, reel)
		if idx < 0 {
			return nil, ErrDrawOutOfRange
		}
		draws = append(draws, float64(idx))
	}
	draws = append(draws, draw.Consolation)

	base := 0
	if draw.IsTriple() {
		base = cfg.Payouts[draw.Reels[0]]
	} else if draw.Consolation < cfg.ConsolationChance {
		base = cfg.ConsolationAmount
	}

	payout := applyBoost(base, cfg.BoostPercent, boost)

	return &models.RoundOutcome{
		Game:        models.GameKindSlots,
		Draws:       draws,
		Value:       float64(base),
		Display:     strings.Join(draw.Reels[:], " "),
		Symbols:     append([]string(nil), draw.Reels[:]...),
		Won:         payout > 0,
		Payout:      payout,
		Boosted:     boost.Active,
		RevealAfter: cfg.ReelStops[ReelCount-1] + cfg.SettleDelay,
	}, nil
}

func symbolIndex(symbols []string, symbol string) int {
	for i, s := range symbols {
		if s == symbol {
			return i
		}
	}
	return -1
}
