package boost

import (
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/KirkDiggler/robuxroyale/internal/common/clock"
	"github.com/KirkDiggler/robuxroyale/internal/games"
	"github.com/KirkDiggler/robuxroyale/internal/logger"
	"github.com/KirkDiggler/robuxroyale/internal/metrics"
	"github.com/KirkDiggler/robuxroyale/internal/models"
)

const (
	// DefaultDuration is how many seconds an activation lasts
	DefaultDuration = 10

	// DefaultInterval is the countdown step
	DefaultInterval = time.Second
)

// Config holds configuration for a boost modifier
type Config struct {
	// Duration in seconds of one activation
	Duration int

	// Interval between countdown steps
	Interval time.Duration

	Clock  clock.Clock
	Logger *zap.Logger
}

// Modifier is the session boost. Its countdown is the only writer of the remaining seconds.
type Modifier struct {
	mu        sync.Mutex
	clock     clock.Clock
	logger    *zap.Logger
	duration  int
	interval  time.Duration
	active    bool
	remaining int

	// done belongs to the live countdown goroutine, nil when none runs
	done chan struct{}
}

// New creates an inactive modifier
func New(cfg *Config) (*Modifier, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}
	if cfg.Clock == nil {
		return nil, ErrNilClock
	}

	duration := cfg.Duration
	if duration <= 0 {
		duration = DefaultDuration
	}
	interval := cfg.Interval
	if interval <= 0 {
		interval = DefaultInterval
	}

	return &Modifier{
		clock:    cfg.Clock,
		logger:   logger.OrNop(cfg.Logger),
		duration: duration,
		interval: interval,
	}, nil
}

// Activate (re)starts the modifier with a full countdown
func (m *Modifier) Activate() models.BoostState {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.activate()
	return m.state()
}

// Deactivate ends the modifier immediately
func (m *Modifier) Deactivate() models.BoostState {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.deactivate()
	return m.state()
}

// Toggle flips the modifier
func (m *Modifier) Toggle() models.BoostState {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.active {
		m.deactivate()
	} else {
		m.activate()
	}
	return m.state()
}

// State returns a snapshot
func (m *Modifier) State() models.BoostState {
	m.mu.Lock()
	defer m.mu.Unlock()

	return m.state()
}

// Boost is what the games get to see
func (m *Modifier) Boost() games.Boost {
	m.mu.Lock()
	defer m.mu.Unlock()

	return games.Boost{Active: m.active}
}

// Stop halts the countdown without changing the state
func (m *Modifier) Stop() {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.stopCountdown()
}

func (m *Modifier) state() models.BoostState {
	return models.BoostState{
		Active:           m.active,
		RemainingSeconds: m.remaining,
	}
}

func (m *Modifier) activate() {
	m.active = true
	m.remaining = m.duration
	metrics.BoostActivated()
	m.logger.Debug("boost activated", zap.Int("seconds", m.duration))

	m.stopCountdown()
	done := make(chan struct{})
	m.done = done
	go m.countdown(m.clock.NewTicker(m.interval), done)
}

func (m *Modifier) deactivate() {
	m.stopCountdown()
	m.active = false
	m.remaining = 0
}

func (m *Modifier) stopCountdown() {
	if m.done != nil {
		close(m.done)
		m.done = nil
	}
}

// tick removes one second and reports whether the modifier is still active
func (m *Modifier) tick() bool {
	if !m.active {
		return false
	}

	m.remaining--
	if m.remaining <= 0 {
		m.active = false
		m.remaining = 0
		m.logger.Debug("boost expired")
		return false
	}
	return true
}

func (m *Modifier) countdown(ticker clock.Ticker, done chan struct{}) {
	defer ticker.Stop()

	for {
		select {
		case <-done:
			return
		case <-ticker.C():
			m.mu.Lock()
			// a newer activation replaced this countdown
			if m.done != done {
				m.mu.Unlock()
				return
			}
			stillActive := m.tick()
			if !stillActive {
				m.done = nil
			}
			m.mu.Unlock()

			if !stillActive {
				return
			}
		}
	}
}
