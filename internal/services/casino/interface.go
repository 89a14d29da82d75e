package casino

//go:generate mockgen -package=mocks -destination=mocks/mock_service.go github.com/KirkDiggler/robuxroyale/internal/services/casino Service,RoundListener

import (
	"context"

	"github.com/KirkDiggler/robuxroyale/internal/models"
)

// Service defines the operations of the mini-game casino
type Service interface {
	// CreateSession opens a new session with a generated ID
	CreateSession(ctx context.Context, input *CreateSessionInput) (*CreateSessionOutput, error)

	// EnsureSession returns the session with the given ID, opening it when missing
	EnsureSession(ctx context.Context, input *EnsureSessionInput) (*EnsureSessionOutput, error)

	// GetSession returns the session with its boost, overlay and bet state
	GetSession(ctx context.Context, input *GetSessionInput) (*GetSessionOutput, error)

	// CloseSession stops the session timers and drops its history
	CloseSession(ctx context.Context, input *CloseSessionInput) error

	// AcceptTerms unlocks the games once the reading countdown has passed
	AcceptTerms(ctx context.Context, input *AcceptTermsInput) (*AcceptTermsOutput, error)

	// PlaceBet captures the bet context for the next round of a game
	PlaceBet(ctx context.Context, input *PlaceBetInput) (*PlaceBetOutput, error)

	// SpinRoulette resolves a roulette spin
	SpinRoulette(ctx context.Context, input *PlayRoundInput) (*PlayRoundOutput, error)

	// SpinSlots resolves a slot machine pull
	SpinSlots(ctx context.Context, input *PlayRoundInput) (*PlayRoundOutput, error)

	// RollDice resolves a dice roll against the player's prediction
	RollDice(ctx context.Context, input *RollDiceInput) (*PlayRoundOutput, error)

	// StartCrash draws a crash point and starts the multiplier
	StartCrash(ctx context.Context, input *TimedRoundInput) (*TimedRoundOutput, error)

	// CashOutCrash stops the running multiplier and pays it
	CashOutCrash(ctx context.Context, input *TimedRoundInput) (*PlayRoundOutput, error)

	// GetCrashStatus returns the live state of the crash round
	GetCrashStatus(ctx context.Context, input *TimedRoundInput) (*TimedRoundOutput, error)

	// LaunchNyanCat draws a ceiling and starts the flight
	LaunchNyanCat(ctx context.Context, input *TimedRoundInput) (*TimedRoundOutput, error)

	// SaveNyanCat stops the flight and pays the height reached
	SaveNyanCat(ctx context.Context, input *TimedRoundInput) (*PlayRoundOutput, error)

	// GetNyanCatStatus returns the live state of the flight
	GetNyanCatStatus(ctx context.Context, input *TimedRoundInput) (*TimedRoundOutput, error)

	// HandleKey applies a keyboard event to the overlay and the boost
	HandleKey(ctx context.Context, input *HandleKeyInput) (*HandleKeyOutput, error)

	// ActivateBoost starts a full boost countdown
	ActivateBoost(ctx context.Context, input *BoostInput) (*BoostOutput, error)

	// GetBoost returns the boost state
	GetBoost(ctx context.Context, input *BoostInput) (*BoostOutput, error)

	// GetHistory lists the latest rounds, newest first
	GetHistory(ctx context.Context, input *GetHistoryInput) (*GetHistoryOutput, error)

	// GetStats returns the session totals
	GetStats(ctx context.Context, input *GetStatsInput) (*GetStatsOutput, error)

	// ClaimReward turns the pending reward into a claim and clears it
	ClaimReward(ctx context.Context, input *ClaimRewardInput) (*ClaimRewardOutput, error)

	// ListGames returns the game catalogue
	ListGames(ctx context.Context) []models.GameInfo

	// AddRoundListener registers a callback for every completed round
	AddRoundListener(listener RoundListener)

	// Close stops every session
	Close()
}

// RoundListener is told about every completed round, including timed rounds that bust on their own
type RoundListener interface {
	OnRoundComplete(ctx context.Context, outcome *models.RoundOutcome)
}

// RoundListenerFunc adapts a function to RoundListener
type RoundListenerFunc func(ctx context.Context, outcome *models.RoundOutcome)

// OnRoundComplete calls f
func (f RoundListenerFunc) OnRoundComplete(ctx context.Context, outcome *models.RoundOutcome) {
	f(ctx, outcome)
}
