package messaging

import (
	"context"
	"errors"
	"fmt"

	"github.com/KirkDiggler/robuxroyale/internal/models"
	"github.com/KirkDiggler/robuxroyale/internal/random"
	"github.com/KirkDiggler/robuxroyale/internal/services/casino"
)

// bigWin is the payout from which a win gets the celebration tone
const bigWin = 50

// service implements the Service interface
type service struct {
	rand random.Source
}

// NewService creates a new messaging service
func NewService(cfg *ServiceConfig) (Service, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}
	if cfg.Random == nil {
		return nil, ErrNilRandom
	}

	return &service{
		rand: cfg.Random,
	}, nil
}

func (s *service) pick(options []string) string {
	return options[s.rand.Intn(len(options))]
}

// GetRoundResultMessage returns a title and a line for a finished round
func (s *service) GetRoundResultMessage(ctx context.Context, input *GetRoundResultMessageInput) (*GetRoundResultMessageOutput, error) {
	if input == nil || input.Outcome == nil {
		return nil, ErrNilInput
	}

	name := input.PlayerName
	if name == "" {
		name = casino.DefaultPlayerName
	}
	outcome := input.Outcome

	tone := input.PreferredTone
	if tone == "" {
		switch {
		case outcome.Won && (outcome.Boosted || outcome.Payout >= bigWin):
			tone = ToneCelebration
		case outcome.Won:
			tone = ToneFunny
		default:
			tone = ToneSarcastic
		}
	}

	var titles, messages []string
	switch {
	case outcome.Won && tone == ToneCelebration:
		titles = []string{
			"JACKPOT!",
			"Big Win!",
			"Money Rain!",
		}
		messages = []string{
			fmt.Sprintf("%s just bagged **%d R$**! 🤑", name, outcome.Payout),
			fmt.Sprintf("Somebody stop %s! **%d R$** in one go! 💰", name, outcome.Payout),
			fmt.Sprintf("The house is crying. %s takes **%d R$**! 🎉", name, outcome.Payout),
		}
		if outcome.Boosted {
			messages = append(messages, fmt.Sprintf("Boost engaged and %s cashes **%d R$**! 🚀", name, outcome.Payout))
		}
	case outcome.Won:
		titles = []string{
			"Winner!",
			"Nice!",
			"Cha-ching!",
		}
		messages = []string{
			fmt.Sprintf("%s pockets **%d R$**. Not bad! 💸", name, outcome.Payout),
			fmt.Sprintf("**%d R$** for %s. Every coin counts! 🪙", outcome.Payout, name),
			fmt.Sprintf("%s walks away **%d R$** richer. 😎", name, outcome.Payout),
		}
	case outcome.Game == models.GameKindCrash:
		titles = []string{
			"Crashed!",
			"Kaboom!",
		}
		messages = []string{
			fmt.Sprintf("It crashed at %s and %s was still on board. 💥", outcome.Display, name),
			fmt.Sprintf("%s held on a little too long. Crash at %s! 📉", name, outcome.Display),
		}
	case outcome.Game == models.GameKindNyanCat:
		titles = []string{
			"Cat Lost!",
			"Too High!",
		}
		messages = []string{
			fmt.Sprintf("The cat flew off at %s. %s waved goodbye. 🐱", outcome.Display, name),
			fmt.Sprintf("%s let the cat reach %s. It's gone now. 🌈", name, outcome.Display),
		}
	default:
		titles = []string{
			"No Luck",
			"So Close",
			"Try Again",
		}
		messages = []string{
			fmt.Sprintf("Not this time, %s. The %s wasn't feeling it. 🎲", name, outcome.Game),
			fmt.Sprintf("%s got %s. The house says thanks! 🏠", name, outcome.Display),
			fmt.Sprintf("Nothing for %s this round. Spin it back! 🔁", name),
		}
	}

	return &GetRoundResultMessageOutput{
		Title:   s.pick(titles),
		Message: s.pick(messages),
		Tone:    tone,
	}, nil
}

// GetRoundStartMessage returns a line for a timed round that just started
func (s *service) GetRoundStartMessage(ctx context.Context, input *GetRoundStartMessageInput) (*GetRoundStartMessageOutput, error) {
	if input == nil {
		return nil, ErrNilInput
	}

	name := input.PlayerName
	if name == "" {
		name = casino.DefaultPlayerName
	}

	var messages []string
	switch input.Game {
	case models.GameKindNyanCat:
		messages = []string{
			fmt.Sprintf("The cat is airborne, %s! Save it before it's too late. 🐱", name),
			fmt.Sprintf("Up, up and away! %s, hit save whenever you dare. 🌈", name),
		}
	default:
		messages = []string{
			fmt.Sprintf("The rocket is climbing, %s! Cash out before it crashes. 🚀", name),
			fmt.Sprintf("Hold tight %s, the multiplier is going up! 📈", name),
		}
	}

	return &GetRoundStartMessageOutput{
		Message: s.pick(messages),
	}, nil
}

// GetClaimMessage returns a title and a line for a reward claim
func (s *service) GetClaimMessage(ctx context.Context, input *GetClaimMessageInput) (*GetClaimMessageOutput, error) {
	if input == nil {
		return nil, ErrNilInput
	}

	titles := []string{
		"Reward Claimed!",
		"On Its Way!",
	}
	messages := []string{
		fmt.Sprintf("**%d R$** reserved for **%s**. Head to PLS DONATE to collect! 🎁", input.Amount, input.Username),
		fmt.Sprintf("**%s**, your **%d R$** are waiting in PLS DONATE. Your name is in the clipboard! 📋", input.Username, input.Amount),
	}

	return &GetClaimMessageOutput{
		Title:   s.pick(titles),
		Message: s.pick(messages),
	}, nil
}

// GetErrorMessage returns a user-friendly error message
func (s *service) GetErrorMessage(ctx context.Context, input *GetErrorMessageInput) (*GetErrorMessageOutput, error) {
	if input == nil || input.Err == nil {
		return nil, ErrNilInput
	}

	var message string
	switch err := input.Err; {
	case errors.Is(err, casino.ErrTermsNotAccepted):
		message = "Read and accept the terms first with `/casino terms`. 📜"
	case errors.Is(err, casino.ErrTermsCountdown):
		message = "Keep reading! The accept button unlocks after the countdown. ⏳"
	case errors.Is(err, casino.ErrNoPendingReward):
		message = "Nothing to claim yet. Win a round first! 🎰"
	case errors.Is(err, casino.ErrRoundInProgress):
		message = "That round is still running. Finish it first! 🏃"
	case errors.Is(err, casino.ErrNoRound):
		message = "There is no round to stop. Start one first! 🚦"
	case errors.Is(err, casino.ErrRoundNotRunning):
		message = "Too late, that round is already over. ⌛"
	case errors.Is(err, casino.ErrInvalidInput):
		message = fmt.Sprintf("That doesn't look right: %s", err)
	case errors.Is(err, casino.ErrSessionNotFound):
		message = "Your table was cleared. Start a new round! 🧹"
	default:
		message = s.pick([]string{
			"The croupier tripped over a cable. Try again in a moment. 🔌",
			"Something went wrong at the table. Try again! 🃏",
		})
	}

	return &GetErrorMessageOutput{
		Message: message,
	}, nil
}
