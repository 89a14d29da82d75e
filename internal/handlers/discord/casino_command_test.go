package discord

import (
	"context"
	"testing"
	"time"

	"github.com/bwmarrin/discordgo"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	clockMocks "github.com/KirkDiggler/robuxroyale/internal/common/clock/mocks"
	"github.com/KirkDiggler/robuxroyale/internal/handlers/discord/mocks"
	"github.com/KirkDiggler/robuxroyale/internal/models"
	"github.com/KirkDiggler/robuxroyale/internal/services/casino"
	casinomocks "github.com/KirkDiggler/robuxroyale/internal/services/casino/mocks"
	"github.com/KirkDiggler/robuxroyale/internal/services/messaging"
	messagingmocks "github.com/KirkDiggler/robuxroyale/internal/services/messaging/mocks"
)

type CasinoCommandTestSuite struct {
	suite.Suite
	mockCtrl      *gomock.Controller
	mockCasino    *casinomocks.MockService
	mockMessaging *messagingmocks.MockService
	mockResponder *mocks.MockResponder
	cmd           *CasinoCommand
	ctx           context.Context
}

func (s *CasinoCommandTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.mockCasino = casinomocks.NewMockService(s.mockCtrl)
	s.mockMessaging = messagingmocks.NewMockService(s.mockCtrl)
	s.mockResponder = mocks.NewMockResponder(s.mockCtrl)
	s.ctx = context.Background()

	cmd, err := NewCasinoCommand(&CasinoCommandConfig{
		CasinoService:    s.mockCasino,
		MessagingService: s.mockMessaging,
	})
	s.Require().NoError(err)
	s.cmd = cmd
}

func (s *CasinoCommandTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestCasinoCommandTestSuite(t *testing.T) {
	suite.Run(t, new(CasinoCommandTestSuite))
}

func (s *CasinoCommandTestSuite) TestNewValidation() {
	_, err := NewCasinoCommand(nil)
	s.Equal(ErrNilConfig, err)

	_, err = NewCasinoCommand(&CasinoCommandConfig{MessagingService: s.mockMessaging})
	s.Equal(ErrNilCasinoService, err)

	_, err = NewCasinoCommand(&CasinoCommandConfig{CasinoService: s.mockCasino})
	s.Equal(ErrNilMessagingService, err)
}

func (s *CasinoCommandTestSuite) TestCommandDefinition() {
	command := s.cmd.GetCommand()
	s.Equal("casino", command.Name)

	names := make([]string, 0, len(command.Options))
	for _, opt := range command.Options {
		names = append(names, opt.Name)
	}
	s.Equal([]string{"roulette", "slots", "dice", "crash", "nyancat", "bet", "history", "stats", "boost", "terms", "claim", "games"}, names)
}

func (s *CasinoCommandTestSuite) TestEnsureSessionUsesNickAndTruncates() {
	i := &discordgo.InteractionCreate{
		Interaction: &discordgo.Interaction{
			Member: &discordgo.Member{
				Nick: "TheGreatAndPowerfulGambler",
				User: &discordgo.User{ID: "123", Username: "ada"},
			},
		},
	}

	s.mockCasino.EXPECT().EnsureSession(s.ctx, &casino.EnsureSessionInput{
		SessionID:  "discord-123",
		PlayerName: "TheGreatAndPowerfulG",
	}).Return(&casino.EnsureSessionOutput{
		Session: &models.Session{ID: "discord-123"},
	}, nil)

	sessionID, name, err := s.cmd.ensureSession(s.ctx, i)
	s.Require().NoError(err)
	s.Equal("discord-123", sessionID)
	s.Equal("TheGreatAndPowerfulG", name)
}

func (s *CasinoCommandTestSuite) TestEnsureSessionInDirectMessage() {
	i := &discordgo.InteractionCreate{
		Interaction: &discordgo.Interaction{
			User: &discordgo.User{ID: "456", Username: "ada"},
		},
	}

	s.mockCasino.EXPECT().EnsureSession(s.ctx, &casino.EnsureSessionInput{
		SessionID:  "discord-456",
		PlayerName: "ada",
	}).Return(&casino.EnsureSessionOutput{
		Session: &models.Session{ID: "discord-456"},
	}, nil)

	sessionID, _, err := s.cmd.ensureSession(s.ctx, i)
	s.Require().NoError(err)
	s.Equal("discord-456", sessionID)
}

func (s *CasinoCommandTestSuite) TestEnsureSessionWithoutUser() {
	_, _, err := s.cmd.ensureSession(s.ctx, &discordgo.InteractionCreate{Interaction: &discordgo.Interaction{}})
	s.ErrorIs(err, casino.ErrSessionNotFound)
}

func (s *CasinoCommandTestSuite) TestRoundListenerForgetsCashedOutRounds() {
	i := &discordgo.InteractionCreate{Interaction: &discordgo.Interaction{ID: "interaction"}}
	s.cmd.track("round-1", s.mockResponder, i)
	s.Len(s.cmd.live, 1)

	s.cmd.OnRoundComplete(s.ctx, &models.RoundOutcome{ID: "round-1", Game: models.GameKindCrash, Won: true})

	s.Empty(s.cmd.live)
}

func (s *CasinoCommandTestSuite) TestRoundListenerIgnoresUntrackedRounds() {
	s.cmd.OnRoundComplete(s.ctx, &models.RoundOutcome{ID: "web-round", Game: models.GameKindCrash})

	s.Empty(s.cmd.live)
}

func (s *CasinoCommandTestSuite) TestWithPlayerCopiesOutcome() {
	outcome := &models.RoundOutcome{ID: "round-1", Game: models.GameKindCrash}

	named := withPlayer(outcome, "ada")

	s.Nil(outcome.Bet)
	s.Equal(&models.BetContext{PlayerName: "ada", Game: models.GameKindCrash}, named.Bet)

	bet := &models.BetContext{PlayerName: "Ada", BetAmount: 5, Game: models.GameKindCrash}
	outcome.Bet = bet
	s.Same(bet, withPlayer(outcome, "ada").Bet)
}

func (s *CasinoCommandTestSuite) buttonClick(customID string) *discordgo.InteractionCreate {
	return &discordgo.InteractionCreate{
		Interaction: &discordgo.Interaction{
			ID:   "click",
			Type: discordgo.InteractionMessageComponent,
			Data: discordgo.MessageComponentInteractionData{CustomID: customID},
			Member: &discordgo.Member{
				User: &discordgo.User{ID: "123", Username: "ada"},
			},
		},
	}
}

func (s *CasinoCommandTestSuite) expectSession() {
	s.mockCasino.EXPECT().EnsureSession(s.ctx, &casino.EnsureSessionInput{
		SessionID:  "discord-123",
		PlayerName: "ada",
	}).Return(&casino.EnsureSessionOutput{
		Session: &models.Session{ID: "discord-123"},
	}, nil)
}

func (s *CasinoCommandTestSuite) TestCashOutButtonRendersOutcome() {
	i := s.buttonClick("stop:crash")
	s.expectSession()

	outcome := &models.RoundOutcome{
		ID:      "round-1",
		Game:    models.GameKindCrash,
		Value:   2.5,
		Display: "2.50x",
		Won:     true,
		Payout:  25,
	}
	s.mockCasino.EXPECT().CashOutCrash(s.ctx, &casino.TimedRoundInput{SessionID: "discord-123"}).
		Return(&casino.PlayRoundOutput{Outcome: outcome, PendingReward: 25}, nil)

	s.mockMessaging.EXPECT().GetRoundResultMessage(s.ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, input *messaging.GetRoundResultMessageInput) (*messaging.GetRoundResultMessageOutput, error) {
			s.Equal("ada", input.PlayerName)
			s.Equal("round-1", input.Outcome.ID)
			return &messaging.GetRoundResultMessageOutput{Title: "Cashed out", Message: "Nice timing"}, nil
		})

	var response *discordgo.InteractionResponse
	s.mockResponder.EXPECT().InteractionRespond(i.Interaction, gomock.Any()).
		DoAndReturn(func(_ *discordgo.Interaction, resp *discordgo.InteractionResponse, _ ...discordgo.RequestOption) error {
			response = resp
			return nil
		})

	err := s.cmd.HandleComponent(s.mockResponder, i)
	s.Require().NoError(err)

	s.Require().NotNil(response)
	s.Equal(discordgo.InteractionResponseUpdateMessage, response.Type)
	s.Require().Len(response.Data.Embeds, 1)
	embed := response.Data.Embeds[0]
	s.Equal("Nice timing", embed.Description)
	s.Equal(colorWin, embed.Color)
	s.Contains(embed.Title, "Cashed out")
	s.Nil(outcome.Bet)
}

func (s *CasinoCommandTestSuite) TestSaveButtonOnBustedRoundShowsResult() {
	i := s.buttonClick("stop:nyancat")
	s.expectSession()

	input := &casino.TimedRoundInput{SessionID: "discord-123"}
	s.mockCasino.EXPECT().SaveNyanCat(s.ctx, input).Return(nil, casino.ErrRoundNotRunning)

	outcome := &models.RoundOutcome{
		ID:      "round-2",
		Game:    models.GameKindNyanCat,
		Display: "Crashed at 40m",
	}
	s.mockCasino.EXPECT().GetNyanCatStatus(s.ctx, input).Return(&casino.TimedRoundOutput{
		Status: &casino.RoundStatus{
			RoundID: "round-2",
			Game:    models.GameKindNyanCat,
			Phase:   models.RoundPhaseBusted,
			Outcome: outcome,
		},
	}, nil)
	s.mockCasino.EXPECT().GetSession(s.ctx, &casino.GetSessionInput{SessionID: "discord-123"}).
		Return(&casino.GetSessionOutput{Session: &models.Session{ID: "discord-123", PendingReward: 10}}, nil)
	s.mockMessaging.EXPECT().GetRoundResultMessage(s.ctx, gomock.Any()).
		Return(&messaging.GetRoundResultMessageOutput{Title: "Splat", Message: "Too high"}, nil)

	var response *discordgo.InteractionResponse
	s.mockResponder.EXPECT().InteractionRespond(i.Interaction, gomock.Any()).
		DoAndReturn(func(_ *discordgo.Interaction, resp *discordgo.InteractionResponse, _ ...discordgo.RequestOption) error {
			response = resp
			return nil
		})

	err := s.cmd.HandleComponent(s.mockResponder, i)
	s.Require().NoError(err)

	s.Require().NotNil(response)
	s.Equal(discordgo.InteractionResponseUpdateMessage, response.Type)
	s.Require().Len(response.Data.Embeds, 1)
	s.Equal(colorLoss, response.Data.Embeds[0].Color)
	s.Equal("Too high", response.Data.Embeds[0].Description)
}

func (s *CasinoCommandTestSuite) TestRoundListenerEditsBustedRound() {
	i := &discordgo.InteractionCreate{Interaction: &discordgo.Interaction{ID: "interaction"}}
	s.cmd.track("round-3", s.mockResponder, i)

	outcome := &models.RoundOutcome{
		ID:      "round-3",
		Game:    models.GameKindCrash,
		Display: "Crashed at 1.20x",
		Bet:     &models.BetContext{PlayerName: "ada", BetAmount: 5, Game: models.GameKindCrash},
	}
	s.mockMessaging.EXPECT().GetRoundResultMessage(s.ctx, &messaging.GetRoundResultMessageInput{
		PlayerName: "ada",
		Outcome:    outcome,
	}).Return(&messaging.GetRoundResultMessageOutput{Title: "Busted", Message: "So close"}, nil)

	var edit *discordgo.WebhookEdit
	s.mockResponder.EXPECT().InteractionResponseEdit(i.Interaction, gomock.Any()).
		DoAndReturn(func(_ *discordgo.Interaction, newresp *discordgo.WebhookEdit, _ ...discordgo.RequestOption) (*discordgo.Message, error) {
			edit = newresp
			return &discordgo.Message{}, nil
		})

	s.cmd.OnRoundComplete(s.ctx, outcome)

	s.Empty(s.cmd.live)
	s.Require().NotNil(edit)
	s.Require().NotNil(edit.Embeds)
	s.Require().Len(*edit.Embeds, 1)
	s.Equal("So close", (*edit.Embeds)[0].Description)
	s.Equal(colorLoss, (*edit.Embeds)[0].Color)
	s.Require().NotNil(edit.Components)
	s.NotEmpty(*edit.Components)
}

func (s *CasinoCommandTestSuite) TestTrackDropsExpiredMessages() {
	mockClock := clockMocks.NewMockClock(s.mockCtrl)
	cmd, err := NewCasinoCommand(&CasinoCommandConfig{
		CasinoService:    s.mockCasino,
		MessagingService: s.mockMessaging,
		Clock:            mockClock,
	})
	s.Require().NoError(err)

	start := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	i := &discordgo.InteractionCreate{Interaction: &discordgo.Interaction{ID: "interaction"}}

	mockClock.EXPECT().Now().Return(start)
	cmd.track("evicted-round", s.mockResponder, i)

	mockClock.EXPECT().Now().Return(start.Add(time.Minute))
	cmd.track("recent-round", s.mockResponder, i)
	s.Len(cmd.live, 2)

	mockClock.EXPECT().Now().Return(start.Add(interactionTokenTTL))
	cmd.track("new-round", s.mockResponder, i)

	s.Len(cmd.live, 2)
	s.NotContains(cmd.live, "evicted-round")
	s.Contains(cmd.live, "recent-round")
	s.Contains(cmd.live, "new-round")
}
