package casino

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/KirkDiggler/robuxroyale/internal/common/clock"
	"github.com/KirkDiggler/robuxroyale/internal/games"
	"github.com/KirkDiggler/robuxroyale/internal/metrics"
	"github.com/KirkDiggler/robuxroyale/internal/models"
)

// StartCrash draws a crash point and starts the multiplier
func (s *service) StartCrash(ctx context.Context, input *TimedRoundInput) (*TimedRoundOutput, error) {
	if input == nil {
		return nil, ErrSessionNotFound
	}
	return s.startTimed(input.SessionID, models.GameKindCrash)
}

// CashOutCrash stops the running multiplier and pays it
func (s *service) CashOutCrash(ctx context.Context, input *TimedRoundInput) (*PlayRoundOutput, error) {
	if input == nil {
		return nil, ErrSessionNotFound
	}
	return s.stopTimed(ctx, input.SessionID, models.GameKindCrash)
}

// GetCrashStatus returns the live state of the crash round
func (s *service) GetCrashStatus(ctx context.Context, input *TimedRoundInput) (*TimedRoundOutput, error) {
	if input == nil {
		return nil, ErrSessionNotFound
	}
	return s.timedStatus(input.SessionID, models.GameKindCrash)
}

// LaunchNyanCat draws a ceiling and starts the flight
func (s *service) LaunchNyanCat(ctx context.Context, input *TimedRoundInput) (*TimedRoundOutput, error) {
	if input == nil {
		return nil, ErrSessionNotFound
	}
	return s.startTimed(input.SessionID, models.GameKindNyanCat)
}

// SaveNyanCat stops the flight and pays the height reached
func (s *service) SaveNyanCat(ctx context.Context, input *TimedRoundInput) (*PlayRoundOutput, error) {
	if input == nil {
		return nil, ErrSessionNotFound
	}
	return s.stopTimed(ctx, input.SessionID, models.GameKindNyanCat)
}

// GetNyanCatStatus returns the live state of the flight
func (s *service) GetNyanCatStatus(ctx context.Context, input *TimedRoundInput) (*TimedRoundOutput, error) {
	if input == nil {
		return nil, ErrSessionNotFound
	}
	return s.timedStatus(input.SessionID, models.GameKindNyanCat)
}

// newTimedRound draws the limit of a fresh round and returns its tick interval
func (s *service) newTimedRound(game models.GameKind) (*games.TimedRound, time.Duration, error) {
	switch game {
	case models.GameKindCrash:
		round, err := games.NewCrashRound(games.DrawCrash(s.random, s.crash), s.crash)
		return round, s.crash.TickInterval, err
	case models.GameKindNyanCat:
		round, err := games.NewNyanCatRound(games.DrawNyanCat(s.random, s.nyanCat), s.nyanCat)
		return round, s.nyanCat.TickInterval, err
	}
	return nil, 0, ErrInvalidInput
}

// startTimed replaces the previous round of the game with a running one.
// The previous runner is cancelled before the new one starts.
func (s *service) startTimed(sessionID string, game models.GameKind) (*TimedRoundOutput, error) {
	sess, err := s.getSession(sessionID)
	if err != nil {
		return nil, err
	}

	sess.mu.Lock()
	defer sess.mu.Unlock()

	if err := s.checkTerms(sess); err != nil {
		return nil, err
	}

	if prev, ok := sess.timed[game]; ok {
		if prev.round.Phase() == models.RoundPhaseRunning {
			return nil, ErrRoundInProgress
		}
		prev.cancel()
	}

	round, interval, err := s.newTimedRound(game)
	if err != nil {
		return nil, err
	}
	if err := round.Start(); err != nil {
		return nil, err
	}

	runCtx, cancel := context.WithCancel(context.Background())
	t := &timedRound{
		id:     s.uuid.NewUUID(),
		round:  round,
		bet:    sess.takeBet(game),
		cancel: cancel,
	}
	sess.timed[game] = t

	metrics.RoundStarted(string(game))
	s.logger.Debug("timed round started",
		zap.String("session_id", sess.model.ID),
		zap.String("round_id", t.id),
		zap.String("game", string(game)))

	go s.run(runCtx, sess, t, s.clock.NewTicker(interval))

	return &TimedRoundOutput{
		Status: s.status(sess, t),
	}, nil
}

// run ticks the round until it busts or its context is cancelled
func (s *service) run(ctx context.Context, sess *session, t *timedRound, ticker clock.Ticker) {
	defer ticker.Stop()
	defer metrics.RoundStopped(string(t.round.Game()))

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C():
			outcome, entry, done := s.tick(sess, t)
			if !done {
				continue
			}
			if outcome != nil {
				s.record(context.Background(), outcome, entry)
			}
			return
		}
	}
}

// tick advances the round by one step. done is set when the runner should exit.
func (s *service) tick(sess *session, t *timedRound) (*models.RoundOutcome, *models.HistoryEntry, bool) {
	sess.mu.Lock()
	defer sess.mu.Unlock()

	// stale tick from a replaced or finished round
	if sess.timed[t.round.Game()] != t || t.round.Phase() != models.RoundPhaseRunning {
		return nil, nil, true
	}

	if t.round.Tick() != models.RoundPhaseBusted {
		return nil, nil, false
	}

	outcome, err := t.round.Outcome()
	if err != nil {
		s.logger.Error("failed to resolve busted round", zap.String("round_id", t.id), zap.Error(err))
		return nil, nil, true
	}

	entry := s.finish(sess, t.id, outcome, t.bet)
	t.outcome = outcome

	return outcome, entry, true
}

// stopTimed cashes out the running round with the boost as it is now
func (s *service) stopTimed(ctx context.Context, sessionID string, game models.GameKind) (*PlayRoundOutput, error) {
	sess, err := s.getSession(sessionID)
	if err != nil {
		return nil, err
	}

	sess.mu.Lock()

	t, ok := sess.timed[game]
	if !ok {
		sess.mu.Unlock()
		return nil, ErrNoRound
	}

	if _, err := t.round.CashOut(sess.boost.Boost()); err != nil {
		sess.mu.Unlock()
		return nil, ErrRoundNotRunning
	}
	t.cancel()

	outcome, err := t.round.Outcome()
	if err != nil {
		sess.mu.Unlock()
		return nil, err
	}

	entry := s.finish(sess, t.id, outcome, t.bet)
	t.outcome = outcome
	pending := sess.model.PendingReward
	sess.mu.Unlock()

	s.record(ctx, outcome, entry)

	return &PlayRoundOutput{
		Outcome:       outcome,
		PendingReward: pending,
	}, nil
}

func (s *service) timedStatus(sessionID string, game models.GameKind) (*TimedRoundOutput, error) {
	sess, err := s.getSession(sessionID)
	if err != nil {
		return nil, err
	}

	sess.mu.Lock()
	defer sess.mu.Unlock()

	t, ok := sess.timed[game]
	if !ok {
		return nil, ErrNoRound
	}

	return &TimedRoundOutput{
		Status: s.status(sess, t),
	}, nil
}

// status builds the live view of a round, callers hold sess.mu
func (s *service) status(sess *session, t *timedRound) *RoundStatus {
	b := sess.boost.Boost()
	phase := t.round.Phase()

	st := &RoundStatus{
		RoundID:         t.id,
		Game:            t.round.Game(),
		Phase:           phase,
		Ticks:           t.round.Ticks(),
		Value:           t.round.Value(),
		Display:         t.round.Display(),
		PotentialPayout: t.round.PotentialPayout(b),
		Boosted:         b.Active && phase == models.RoundPhaseRunning,
		Outcome:         t.outcome,
	}
	if t.outcome != nil {
		st.Boosted = t.outcome.Boosted
	}

	return st
}
