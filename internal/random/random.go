package random

import (
	"math/rand"
	"sync"
	"time"
)

//go:generate mockgen -package=mocks -destination=mocks/mock_source.go github.com/KirkDiggler/robuxroyale/internal/random Source

// Source is the uniform random generator every game draws from
type Source interface {
	// Intn returns a uniform integer in [0, n)
	Intn(n int) int

	// Float64 returns a uniform float in [0, 1)
	Float64() float64
}

// Roller is the default Source, safe for concurrent use
type Roller struct {
	mu     sync.Mutex
	random *rand.Rand
}

// Config for the roller
type Config struct {
	// Optional seed for testing
	Seed int64
}

// New creates a new roller
func New(cfg *Config) *Roller {
	var seed int64
	if cfg != nil && cfg.Seed != 0 {
		seed = cfg.Seed
	} else {
		seed = time.Now().UnixNano()
	}

	return &Roller{
		random: rand.New(rand.NewSource(seed)),
	}
}

// Intn returns a uniform integer in [0, n); n below 1 yields 0
func (r *Roller) Intn(n int) int {
	if n < 1 {
		return 0
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.random.Intn(n)
}

// Float64 returns a uniform float in [0, 1)
func (r *Roller) Float64() float64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.random.Float64()
}
