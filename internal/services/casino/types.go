package casino

import (
	"time"

	"go.uber.org/zap"

	"github.com/KirkDiggler/robuxroyale/internal/common/clock"
	"github.com/KirkDiggler/robuxroyale/internal/common/uuid"
	"github.com/KirkDiggler/robuxroyale/internal/games"
	"github.com/KirkDiggler/robuxroyale/internal/models"
	"github.com/KirkDiggler/robuxroyale/internal/random"
	"github.com/KirkDiggler/robuxroyale/internal/repositories/history"
	"github.com/KirkDiggler/robuxroyale/internal/services/overlay"
)

const (
	DefaultSessionTTL    = 2 * time.Hour
	DefaultTermsDelay    = 15 * time.Second
	DefaultRedirectURL   = "https://www.roblox.com/fr/games/8737602449/PLS-DONATE"
	DefaultRedirectAfter = 3 * time.Second
	DefaultMinBet        = 1
	DefaultMaxBet        = 1000
	DefaultHistoryLimit  = 10
	DefaultPlayerName    = "Player"

	// MaxPlayerNameLength is counted in runes
	MaxPlayerNameLength = 20
)

// Config holds configuration for the casino service
type Config struct {
	HistoryRepo history.Repository
	Random      random.Source
	Clock       clock.Clock
	UUID        uuid.UUID
	Logger      *zap.Logger

	// SessionTTL is how long an untouched session lives
	SessionTTL time.Duration

	// RequireTerms gates the games behind AcceptTerms
	RequireTerms bool

	// TermsDelay is the reading countdown before the terms can be accepted
	TermsDelay time.Duration

	// RedirectURL is where a reward claim sends the player
	RedirectURL string

	MinBet int
	MaxBet int

	// HistoryLimit is how many entries GetHistory returns by default
	HistoryLimit int

	// BoostDuration is the length of one boost activation in seconds
	BoostDuration int

	Roulette *games.RouletteConfig
	Slots    *games.SlotsConfig
	Dice     *games.DiceConfig
	Crash    *games.CrashConfig
	NyanCat  *games.NyanCatConfig
}

type CreateSessionInput struct {
	PlayerName string
}

type CreateSessionOutput struct {
	Session *models.Session
}

type EnsureSessionInput struct {
	SessionID  string
	PlayerName string
}

type EnsureSessionOutput struct {
	Session *models.Session
	Created bool
}

type GetSessionInput struct {
	SessionID string
}

type GetSessionOutput struct {
	Session *models.Session
	Boost   models.BoostState
	Overlay models.OverlayState

	// Bet is the bet waiting for its round, nil when none
	Bet *models.BetContext

	// TermsRemaining is what is left of the reading countdown
	TermsRemaining time.Duration
}

type CloseSessionInput struct {
	SessionID string
}

type AcceptTermsInput struct {
	SessionID string
}

type AcceptTermsOutput struct {
	Session *models.Session
}

type PlaceBetInput struct {
	SessionID  string
	PlayerName string
	BetAmount  int
	Game       models.GameKind
}

type PlaceBetOutput struct {
	Bet *models.BetContext
}

type PlayRoundInput struct {
	SessionID string
}

type RollDiceInput struct {
	SessionID string
	Threshold int
	Mode      games.DiceMode
}

type PlayRoundOutput struct {
	Outcome *models.RoundOutcome

	// Rotation is the final wheel angle of a roulette spin
	Rotation float64

	// ReelStops are the reveal offsets of each slot reel
	ReelStops []time.Duration

	// PendingReward is the reward waiting to be claimed after this round
	PendingReward int
}

type TimedRoundInput struct {
	SessionID string
}

// RoundStatus is a live view of a timed round
type RoundStatus struct {
	RoundID string
	Game    models.GameKind
	Phase   models.RoundPhase
	Ticks   int

	// Value is the multiplier or the height
	Value   float64
	Display string

	// PotentialPayout is what stopping now would pay with the current boost
	PotentialPayout int
	Boosted         bool

	// Outcome is set once the round has finished
	Outcome *models.RoundOutcome
}

type TimedRoundOutput struct {
	Status *RoundStatus
}

type HandleKeyInput struct {
	SessionID string
	Event     models.KeyEvent
}

type HandleKeyOutput struct {
	Commands []overlay.Command
	Boost    models.BoostState
	Overlay  models.OverlayState
}

type BoostInput struct {
	SessionID string
}

type BoostOutput struct {
	Boost models.BoostState
}

type GetHistoryInput struct {
	SessionID string

	// Limit defaults to the configured history limit
	Limit int
}

type GetHistoryOutput struct {
	Entries []*models.HistoryEntry
}

type GetStatsInput struct {
	SessionID string
}

type GetStatsOutput struct {
	Stats   *models.SessionStats
	WinRate int
}

type ClaimRewardInput struct {
	SessionID string
	Username  string
}

type ClaimRewardOutput struct {
	Claim *models.RewardClaim
}
