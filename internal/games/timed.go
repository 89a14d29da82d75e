package games

import (
	"github.com/KirkDiggler/robuxroyale/internal/models"
)

// TimedRound races a climbing value against a limit drawn at round start.
// It has no clock of its own: the caller decides when a tick happens.
type TimedRound struct {
	game  models.GameKind
	limit float64
	ticks int
	phase models.RoundPhase

	valueAt  func(ticks int) float64
	payoutAt func(ticks int, boost Boost) int
	display  func(value float64) string

	payout  int
	boosted bool
}

// Game returns the game this round belongs to
func (r *TimedRound) Game() models.GameKind {
	return r.game
}

// Phase returns the current phase
func (r *TimedRound) Phase() models.RoundPhase {
	return r.phase
}

// Ticks returns how many ticks have elapsed
func (r *TimedRound) Ticks() int {
	return r.ticks
}

// Limit returns the drawn limit
func (r *TimedRound) Limit() float64 {
	return r.limit
}

// Value returns the tracked value. A busted round reports the limit it hit.
func (r *TimedRound) Value() float64 {
	if r.phase == models.RoundPhaseBusted {
		return r.limit
	}
	return r.valueAt(r.ticks)
}

// Display formats the current value
func (r *TimedRound) Display() string {
	return r.display(r.Value())
}

// Start moves an idle round to running
func (r *TimedRound) Start() error {
	if r.phase != models.RoundPhaseIdle {
		return ErrRoundNotIdle
	}
	r.phase = models.RoundPhaseRunning
	return nil
}

// Tick advances a running round by one step and busts it when the value reaches the limit
func (r *TimedRound) Tick() models.RoundPhase {
	if r.phase != models.RoundPhaseRunning {
		return r.phase
	}

	r.ticks++
	if r.valueAt(r.ticks) >= r.limit {
		r.phase = models.RoundPhaseBusted
	}
	return r.phase
}

// PotentialPayout is what cashing out right now would pay
func (r *TimedRound) PotentialPayout(boost Boost) int {
	if r.phase != models.RoundPhaseRunning {
		return 0
	}
	return r.payoutAt(r.ticks, boost)
}

// CashOut stops a running round and fixes its payout
func (r *TimedRound) CashOut(boost Boost) (int, error) {
	if r.phase != models.RoundPhaseRunning {
		return 0, ErrRoundNotRunning
	}

	r.phase = models.RoundPhaseCashedOut
	r.payout = r.payoutAt(r.ticks, boost)
	r.boosted = boost.Active

	return r.payout, nil
}

// Outcome returns the result of a finished round
func (r *TimedRound) Outcome() (*models.RoundOutcome, error) {
	if !r.phase.IsTerminal() {
		return nil, ErrRoundNotFinished
	}

	return &models.RoundOutcome{
		Game:    r.game,
		Draws:   []float64{r.limit},
		Value:   r.Value(),
		Display: r.Display(),
		Won:     r.phase == models.RoundPhaseCashedOut,
		Payout:  r.payout,
		Boosted: r.boosted,
	}, nil
}
