package casino

import (
	"context"
	"sync"

	"github.com/KirkDiggler/robuxroyale/internal/games"
	"github.com/KirkDiggler/robuxroyale/internal/models"
	"github.com/KirkDiggler/robuxroyale/internal/services/boost"
	"github.com/KirkDiggler/robuxroyale/internal/services/overlay"
)

// session is the live state behind a models.Session. mu guards everything but the
// modifier and the panel, which carry their own locks.
type session struct {
	mu     sync.Mutex
	model  models.Session
	bet    *models.BetContext
	boost  *boost.Modifier
	panel  *overlay.Panel
	timed  map[models.GameKind]*timedRound
	closed bool
}

// timedRound is one crash or nyan cat round and the goroutine ticking it
type timedRound struct {
	id      string
	round   *games.TimedRound
	bet     *models.BetContext
	cancel  context.CancelFunc
	outcome *models.RoundOutcome
}

func newSession(model models.Session, modifier *boost.Modifier) *session {
	return &session{
		model: model,
		boost: modifier,
		panel: overlay.NewPanel(),
		timed: make(map[models.GameKind]*timedRound),
	}
}

// snapshot copies the model, callers hold mu
func (s *session) snapshot() *models.Session {
	model := s.model
	return &model
}

// takeBet returns and clears the bet if it was placed for game, callers hold mu
func (s *session) takeBet(game models.GameKind) *models.BetContext {
	if s.bet == nil || s.bet.Game != game {
		return nil
	}
	bet := s.bet
	s.bet = nil
	return bet
}

// playerName is the name written to history, callers hold mu
func (s *session) playerName(bet *models.BetContext) string {
	if bet != nil && bet.PlayerName != "" {
		return bet.PlayerName
	}
	if s.model.PlayerName != "" {
		return s.model.PlayerName
	}
	return DefaultPlayerName
}

// stop cancels every timer the session owns
func (s *session) stop() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.closed = true
	for _, t := range s.timed {
		t.cancel()
	}
	s.boost.Stop()
}
