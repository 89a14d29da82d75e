package casino

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"
	"unicode/utf8"

	"github.com/patrickmn/go-cache"
	"go.uber.org/zap"

	"github.com/KirkDiggler/robuxroyale/internal/common/clock"
	"github.com/KirkDiggler/robuxroyale/internal/common/uuid"
	"github.com/KirkDiggler/robuxroyale/internal/games"
	"github.com/KirkDiggler/robuxroyale/internal/logger"
	"github.com/KirkDiggler/robuxroyale/internal/metrics"
	"github.com/KirkDiggler/robuxroyale/internal/models"
	"github.com/KirkDiggler/robuxroyale/internal/random"
	"github.com/KirkDiggler/robuxroyale/internal/repositories/history"
	"github.com/KirkDiggler/robuxroyale/internal/services/boost"
)

// service implements the Service interface
type service struct {
	historyRepo history.Repository
	random      random.Source
	clock       clock.Clock
	uuid        uuid.UUID
	logger      *zap.Logger

	sessions *cache.Cache

	requireTerms  bool
	termsDelay    time.Duration
	redirectURL   string
	minBet        int
	maxBet        int
	historyLimit  int
	boostDuration int

	roulette *games.RouletteConfig
	slots    *games.SlotsConfig
	dice     *games.DiceConfig
	crash    *games.CrashConfig
	nyanCat  *games.NyanCatConfig

	listenersMu sync.RWMutex
	listeners   []RoundListener
}

// New creates a new casino service
func New(cfg *Config) (*service, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}

	if cfg.HistoryRepo == nil {
		return nil, ErrNilHistoryRepo
	}

	if cfg.Random == nil {
		return nil, ErrNilRandom
	}

	if cfg.Clock == nil {
		return nil, ErrNilClock
	}

	if cfg.UUID == nil {
		return nil, ErrNilUUIDGenerator
	}

	s := &service{
		historyRepo:   cfg.HistoryRepo,
		random:        cfg.Random,
		clock:         cfg.Clock,
		uuid:          cfg.UUID,
		logger:        logger.OrNop(cfg.Logger),
		requireTerms:  cfg.RequireTerms,
		termsDelay:    cfg.TermsDelay,
		redirectURL:   cfg.RedirectURL,
		minBet:        cfg.MinBet,
		maxBet:        cfg.MaxBet,
		historyLimit:  cfg.HistoryLimit,
		boostDuration: cfg.BoostDuration,
		roulette:      cfg.Roulette,
		slots:         cfg.Slots,
		dice:          cfg.Dice,
		crash:         cfg.Crash,
		nyanCat:       cfg.NyanCat,
	}

	// Set default values if not provided
	if s.termsDelay <= 0 {
		s.termsDelay = DefaultTermsDelay
	}
	if s.redirectURL == "" {
		s.redirectURL = DefaultRedirectURL
	}
	if s.minBet <= 0 {
		s.minBet = DefaultMinBet
	}
	if s.maxBet < s.minBet {
		s.maxBet = DefaultMaxBet
	}
	if s.historyLimit <= 0 {
		s.historyLimit = DefaultHistoryLimit
	}
	if s.roulette == nil {
		s.roulette = games.DefaultRouletteConfig()
	}
	if s.slots == nil {
		s.slots = games.DefaultSlotsConfig()
	}
	if s.dice == nil {
		s.dice = games.DefaultDiceConfig()
	}
	if s.crash == nil {
		s.crash = games.DefaultCrashConfig()
	}
	if s.nyanCat == nil {
		s.nyanCat = games.DefaultNyanCatConfig()
	}

	ttl := cfg.SessionTTL
	if ttl <= 0 {
		ttl = DefaultSessionTTL
	}
	cleanup := time.Minute
	if ttl < cleanup {
		cleanup = ttl
	}
	s.sessions = cache.New(ttl, cleanup)
	s.sessions.OnEvicted(s.onEvicted)

	return s, nil
}

// onEvicted runs for expired and deleted sessions alike
func (s *service) onEvicted(sessionID string, value interface{}) {
	sess, ok := value.(*session)
	if !ok {
		return
	}

	sess.stop()
	metrics.SessionClosed()

	if err := s.historyRepo.DeleteSession(context.Background(), &history.DeleteSessionInput{
		SessionID: sessionID,
	}); err != nil {
		s.logger.Warn("failed to drop session history", zap.String("session_id", sessionID), zap.Error(err))
	}

	s.logger.Debug("session closed", zap.String("session_id", sessionID))
}

func (s *service) newModifier() (*boost.Modifier, error) {
	return boost.New(&boost.Config{
		Duration: s.boostDuration,
		Clock:    s.clock,
		Logger:   s.logger,
	})
}

func (s *service) buildSession(sessionID, playerName string) (*session, error) {
	modifier, err := s.newModifier()
	if err != nil {
		return nil, fmt.Errorf("failed to create boost modifier: %w", err)
	}

	now := s.clock.Now()
	model := models.Session{
		ID:         sessionID,
		PlayerName: playerName,
		CreatedAt:  now,
	}
	if !s.requireTerms {
		model.TermsAccepted = true
		model.TermsAcceptedAt = now
	}

	return newSession(model, modifier), nil
}

func normalizeName(name string) (string, error) {
	name = strings.TrimSpace(name)
	if utf8.RuneCountInString(name) > MaxPlayerNameLength {
		return "", fmt.Errorf("%w: player name must be at most %d characters", ErrInvalidInput, MaxPlayerNameLength)
	}
	return name, nil
}

// CreateSession opens a new session with a generated ID
func (s *service) CreateSession(ctx context.Context, input *CreateSessionInput) (*CreateSessionOutput, error) {
	if input == nil {
		input = &CreateSessionInput{}
	}

	name, err := normalizeName(input.PlayerName)
	if err != nil {
		return nil, err
	}

	sess, err := s.buildSession(s.uuid.NewUUID(), name)
	if err != nil {
		return nil, err
	}

	s.sessions.SetDefault(sess.model.ID, sess)
	metrics.SessionOpened()
	s.logger.Info("session opened", zap.String("session_id", sess.model.ID))

	sess.mu.Lock()
	defer sess.mu.Unlock()

	return &CreateSessionOutput{
		Session: sess.snapshot(),
	}, nil
}

// EnsureSession returns the session with the given ID, opening it when missing
func (s *service) EnsureSession(ctx context.Context, input *EnsureSessionInput) (*EnsureSessionOutput, error) {
	if input == nil || input.SessionID == "" {
		return nil, fmt.Errorf("%w: session ID is required", ErrInvalidInput)
	}

	if sess, err := s.getSession(input.SessionID); err == nil {
		sess.mu.Lock()
		defer sess.mu.Unlock()
		return &EnsureSessionOutput{Session: sess.snapshot()}, nil
	}

	name, err := normalizeName(input.PlayerName)
	if err != nil {
		return nil, err
	}

	// Add overwrites an expired entry without OnEvicted, so evict it first
	s.sessions.DeleteExpired()

	sess, err := s.buildSession(input.SessionID, name)
	if err != nil {
		return nil, err
	}

	created := true
	if err := s.sessions.Add(input.SessionID, sess, cache.DefaultExpiration); err != nil {
		// Lost a race with another caller, use theirs
		existing, getErr := s.getSession(input.SessionID)
		if getErr != nil {
			return nil, getErr
		}
		sess = existing
		created = false
	} else {
		metrics.SessionOpened()
		s.logger.Info("session opened", zap.String("session_id", input.SessionID))
	}

	sess.mu.Lock()
	defer sess.mu.Unlock()

	return &EnsureSessionOutput{
		Session: sess.snapshot(),
		Created: created,
	}, nil
}

// getSession looks a session up and refreshes its expiry
func (s *service) getSession(sessionID string) (*session, error) {
	if sessionID == "" {
		return nil, ErrSessionNotFound
	}

	value, found := s.sessions.Get(sessionID)
	if !found {
		return nil, ErrSessionNotFound
	}

	sess, ok := value.(*session)
	if !ok {
		return nil, ErrSessionNotFound
	}

	s.sessions.SetDefault(sessionID, sess)
	return sess, nil
}

// checkTerms returns an error until the session may play, callers hold sess.mu
func (s *service) checkTerms(sess *session) error {
	if sess.closed {
		return ErrSessionNotFound
	}
	if s.requireTerms && !sess.model.TermsAccepted {
		return ErrTermsNotAccepted
	}
	return nil
}

// termsRemaining is what is left of the reading countdown, callers hold sess.mu
func (s *service) termsRemaining(sess *session) time.Duration {
	if sess.model.TermsAccepted {
		return 0
	}
	remaining := s.termsDelay - s.clock.Now().Sub(sess.model.CreatedAt)
	if remaining < 0 {
		return 0
	}
	return remaining
}

// GetSession returns the session with its boost, overlay and bet state
func (s *service) GetSession(ctx context.Context, input *GetSessionInput) (*GetSessionOutput, error) {
	if input == nil {
		return nil, ErrSessionNotFound
	}

	sess, err := s.getSession(input.SessionID)
	if err != nil {
		return nil, err
	}

	sess.mu.Lock()
	defer sess.mu.Unlock()

	out := &GetSessionOutput{
		Session:        sess.snapshot(),
		Boost:          sess.boost.State(),
		Overlay:        sess.panel.State(),
		TermsRemaining: s.termsRemaining(sess),
	}
	if sess.bet != nil {
		bet := *sess.bet
		out.Bet = &bet
	}

	return out, nil
}

// CloseSession stops the session timers and drops its history
func (s *service) CloseSession(ctx context.Context, input *CloseSessionInput) error {
	if input == nil {
		return ErrSessionNotFound
	}

	if _, found := s.sessions.Get(input.SessionID); !found {
		return ErrSessionNotFound
	}

	// Delete runs onEvicted
	s.sessions.Delete(input.SessionID)
	return nil
}

// AcceptTerms unlocks the games once the reading countdown has passed
func (s *service) AcceptTerms(ctx context.Context, input *AcceptTermsInput) (*AcceptTermsOutput, error) {
	if input == nil {
		return nil, ErrSessionNotFound
	}

	sess, err := s.getSession(input.SessionID)
	if err != nil {
		return nil, err
	}

	sess.mu.Lock()
	defer sess.mu.Unlock()

	if sess.model.TermsAccepted {
		return &AcceptTermsOutput{Session: sess.snapshot()}, nil
	}

	if s.termsRemaining(sess) > 0 {
		return nil, ErrTermsCountdown
	}

	sess.model.TermsAccepted = true
	sess.model.TermsAcceptedAt = s.clock.Now()

	return &AcceptTermsOutput{
		Session: sess.snapshot(),
	}, nil
}

// PlaceBet captures the bet context for the next round of a game
func (s *service) PlaceBet(ctx context.Context, input *PlaceBetInput) (*PlaceBetOutput, error) {
	if input == nil {
		return nil, ErrInvalidInput
	}

	name, err := normalizeName(input.PlayerName)
	if err != nil {
		return nil, err
	}
	if name == "" {
		return nil, fmt.Errorf("%w: player name is required", ErrInvalidInput)
	}
	if input.BetAmount < s.minBet || input.BetAmount > s.maxBet {
		return nil, fmt.Errorf("%w: bet must be between %d and %d", ErrInvalidInput, s.minBet, s.maxBet)
	}
	if !input.Game.IsValid() {
		return nil, fmt.Errorf("%w: unknown game %q", ErrInvalidInput, input.Game)
	}

	sess, err := s.getSession(input.SessionID)
	if err != nil {
		return nil, err
	}

	sess.mu.Lock()
	defer sess.mu.Unlock()

	if err := s.checkTerms(sess); err != nil {
		return nil, err
	}

	sess.bet = &models.BetContext{
		PlayerName: name,
		BetAmount:  input.BetAmount,
		Game:       input.Game,
	}
	sess.model.PlayerName = name

	bet := *sess.bet
	return &PlaceBetOutput{
		Bet: &bet,
	}, nil
}

// playInstant resolves a round that has no live timer
func (s *service) playInstant(ctx context.Context, sessionID string, game models.GameKind, compute func(games.Boost) (*models.RoundOutcome, error)) (*PlayRoundOutput, error) {
	sess, err := s.getSession(sessionID)
	if err != nil {
		return nil, err
	}

	sess.mu.Lock()
	if err := s.checkTerms(sess); err != nil {
		sess.mu.Unlock()
		return nil, err
	}

	outcome, err := compute(sess.boost.Boost())
	if err != nil {
		sess.mu.Unlock()
		return nil, fmt.Errorf("failed to resolve %s round: %w", game, err)
	}

	entry := s.finish(sess, s.uuid.NewUUID(), outcome, sess.takeBet(game))
	pending := sess.model.PendingReward
	sess.mu.Unlock()

	s.record(ctx, outcome, entry)

	return &PlayRoundOutput{
		Outcome:       outcome,
		PendingReward: pending,
	}, nil
}

// SpinRoulette resolves a roulette spin
func (s *service) SpinRoulette(ctx context.Context, input *PlayRoundInput) (*PlayRoundOutput, error) {
	if input == nil {
		return nil, ErrSessionNotFound
	}

	var draw games.RouletteDraw
	out, err := s.playInstant(ctx, input.SessionID, models.GameKindRoulette, func(b games.Boost) (*models.RoundOutcome, error) {
		var err error
		draw, err = games.DrawRoulette(s.random, s.roulette, b)
		if err != nil {
			return nil, err
		}
		return games.ComputeRoulette(draw, s.roulette, b)
	})
	if err != nil {
		return nil, err
	}

	out.Rotation = draw.Rotation(s.roulette)
	return out, nil
}

// SpinSlots resolves a slot machine pull
func (s *service) SpinSlots(ctx context.Context, input *PlayRoundInput) (*PlayRoundOutput, error) {
	if input == nil {
		return nil, ErrSessionNotFound
	}

	out, err := s.playInstant(ctx, input.SessionID, models.GameKindSlots, func(b games.Boost) (*models.RoundOutcome, error) {
		draw, err := games.DrawSlots(s.random, s.slots, b)
		if err != nil {
			return nil, err
		}
		return games.ComputeSlots(draw, s.slots, b)
	})
	if err != nil {
		return nil, err
	}

	out.ReelStops = append([]time.Duration(nil), s.slots.ReelStops[:]...)
	return out, nil
}

// RollDice resolves a dice roll against the player's prediction
func (s *service) RollDice(ctx context.Context, input *RollDiceInput) (*PlayRoundOutput, error) {
	if input == nil {
		return nil, ErrSessionNotFound
	}

	bet := games.DiceBet{
		Threshold: input.Threshold,
		Mode:      input.Mode,
	}
	if err := bet.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}

	return s.playInstant(ctx, input.SessionID, models.GameKindDice, func(b games.Boost) (*models.RoundOutcome, error) {
		return games.ComputeDice(games.DrawDice(s.random, s.dice), bet, s.dice, b)
	})
}

// finish stamps a resolved outcome and builds its history entry, callers hold sess.mu
func (s *service) finish(sess *session, roundID string, outcome *models.RoundOutcome, bet *models.BetContext) *models.HistoryEntry {
	now := s.clock.Now()

	outcome.ID = roundID
	outcome.SessionID = sess.model.ID
	outcome.Bet = bet
	outcome.CreatedAt = now

	if outcome.Payout > 0 {
		sess.model.PendingReward = outcome.Payout
	}

	result := models.HistoryResultLost
	if outcome.Won {
		result = models.HistoryResultWon
	}

	betAmount := 0
	if bet != nil {
		betAmount = bet.BetAmount
	}

	return &models.HistoryEntry{
		ID:         roundID,
		PlayerName: sess.playerName(bet),
		Game:       outcome.Game,
		BetAmount:  betAmount,
		Result:     result,
		Winnings:   outcome.Payout,
		Timestamp:  now,
	}
}

// record stores the history entry and tells everyone who listens. The round stands even if storage fails.
func (s *service) record(ctx context.Context, outcome *models.RoundOutcome, entry *models.HistoryEntry) {
	if err := s.historyRepo.AddEntry(ctx, &history.AddEntryInput{
		SessionID: outcome.SessionID,
		Entry:     entry,
	}); err != nil {
		s.logger.Error("failed to record round",
			zap.String("session_id", outcome.SessionID),
			zap.String("round_id", outcome.ID),
			zap.Error(err))
	}

	metrics.RoundCompleted(string(outcome.Game), outcome.Won, outcome.Payout)

	s.logger.Info("round completed",
		zap.String("session_id", outcome.SessionID),
		zap.String("round_id", outcome.ID),
		zap.String("game", string(outcome.Game)),
		zap.String("display", outcome.Display),
		zap.Bool("won", outcome.Won),
		zap.Int("payout", outcome.Payout),
		zap.Bool("boosted", outcome.Boosted))

	for _, listener := range s.roundListeners() {
		listener.OnRoundComplete(ctx, outcome)
	}
}

// AddRoundListener registers a callback for every completed round
func (s *service) AddRoundListener(listener RoundListener) {
	if listener == nil {
		return
	}

	s.listenersMu.Lock()
	defer s.listenersMu.Unlock()

	s.listeners = append(s.listeners, listener)
}

func (s *service) roundListeners() []RoundListener {
	s.listenersMu.RLock()
	defer s.listenersMu.RUnlock()

	return append([]RoundListener(nil), s.listeners...)
}

// HandleKey applies a keyboard event to the overlay and the boost
func (s *service) HandleKey(ctx context.Context, input *HandleKeyInput) (*HandleKeyOutput, error) {
	if input == nil {
		return nil, ErrSessionNotFound
	}

	sess, err := s.getSession(input.SessionID)
	if err != nil {
		return nil, err
	}

	commands := overlayCommands(input.Event, sess)
	for _, cmd := range commands {
		applyCommand(sess, cmd)
	}

	return &HandleKeyOutput{
		Commands: commands,
		Boost:    sess.boost.State(),
		Overlay:  sess.panel.State(),
	}, nil
}

// ActivateBoost starts a full boost countdown
func (s *service) ActivateBoost(ctx context.Context, input *BoostInput) (*BoostOutput, error) {
	if input == nil {
		return nil, ErrSessionNotFound
	}

	sess, err := s.getSession(input.SessionID)
	if err != nil {
		return nil, err
	}

	return &BoostOutput{
		Boost: sess.boost.Activate(),
	}, nil
}

// GetBoost returns the boost state
func (s *service) GetBoost(ctx context.Context, input *BoostInput) (*BoostOutput, error) {
	if input == nil {
		return nil, ErrSessionNotFound
	}

	sess, err := s.getSession(input.SessionID)
	if err != nil {
		return nil, err
	}

	return &BoostOutput{
		Boost: sess.boost.State(),
	}, nil
}

// GetHistory lists the latest rounds, newest first
func (s *service) GetHistory(ctx context.Context, input *GetHistoryInput) (*GetHistoryOutput, error) {
	if input == nil {
		return nil, ErrSessionNotFound
	}

	if _, err := s.getSession(input.SessionID); err != nil {
		return nil, err
	}

	limit := input.Limit
	if limit <= 0 {
		limit = s.historyLimit
	}

	out, err := s.historyRepo.ListEntries(ctx, &history.ListEntriesInput{
		SessionID: input.SessionID,
		Limit:     limit,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list history: %w", err)
	}

	return &GetHistoryOutput{
		Entries: out.Entries,
	}, nil
}

// GetStats returns the session totals
func (s *service) GetStats(ctx context.Context, input *GetStatsInput) (*GetStatsOutput, error) {
	if input == nil {
		return nil, ErrSessionNotFound
	}

	if _, err := s.getSession(input.SessionID); err != nil {
		return nil, err
	}

	stats, err := s.historyRepo.GetStats(ctx, &history.GetStatsInput{
		SessionID: input.SessionID,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to get stats: %w", err)
	}

	return &GetStatsOutput{
		Stats:   stats,
		WinRate: stats.WinRate(),
	}, nil
}

// ClaimReward turns the pending reward into a claim and clears it
func (s *service) ClaimReward(ctx context.Context, input *ClaimRewardInput) (*ClaimRewardOutput, error) {
	if input == nil {
		return nil, ErrSessionNotFound
	}

	username := strings.TrimSpace(input.Username)
	if username == "" {
		return nil, fmt.Errorf("%w: username is required", ErrInvalidInput)
	}

	sess, err := s.getSession(input.SessionID)
	if err != nil {
		return nil, err
	}

	sess.mu.Lock()
	defer sess.mu.Unlock()

	if sess.model.PendingReward <= 0 {
		return nil, ErrNoPendingReward
	}

	claim := &models.RewardClaim{
		Username:      username,
		Amount:        sess.model.PendingReward,
		ClipboardText: username,
		RedirectURL:   s.redirectURL,
		RedirectAfter: DefaultRedirectAfter,
	}
	sess.model.PendingReward = 0

	s.logger.Info("reward claimed",
		zap.String("session_id", sess.model.ID),
		zap.String("username", username),
		zap.Int("amount", claim.Amount))

	return &ClaimRewardOutput{
		Claim: claim,
	}, nil
}

// ListGames returns the game catalogue
func (s *service) ListGames(ctx context.Context) []models.GameInfo {
	return games.Catalog()
}

// Close stops every session
func (s *service) Close() {
	for _, item := range s.sessions.Items() {
		if sess, ok := item.Object.(*session); ok {
			sess.stop()
		}
	}
}
