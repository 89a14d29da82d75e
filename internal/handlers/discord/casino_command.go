package discord

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/bwmarrin/discordgo"
	"go.uber.org/zap"

	"github.com/KirkDiggler/robuxroyale/internal/common/clock"
	"github.com/KirkDiggler/robuxroyale/internal/games"
	"github.com/KirkDiggler/robuxroyale/internal/logger"
	"github.com/KirkDiggler/robuxroyale/internal/models"
	"github.com/KirkDiggler/robuxroyale/internal/services/casino"
	"github.com/KirkDiggler/robuxroyale/internal/services/messaging"
)

const (
	sessionPrefix = "discord-"

	// interactionTokenTTL is how long Discord accepts edits through an interaction token
	interactionTokenTTL = 15 * time.Minute
)

// CasinoCommand handles the /casino command and its buttons
type CasinoCommand struct {
	BaseCommand
	casino    casino.Service
	messaging messaging.Service
	clock     clock.Clock
	log       *zap.Logger

	// live holds the message of each running timed round so a bust can edit it
	mu   sync.Mutex
	live map[string]liveMessage
}

type liveMessage struct {
	session     Responder
	interaction *discordgo.Interaction
	dice        *games.DiceBet
	trackedAt   time.Time
}

// CasinoCommandConfig holds the dependencies of the casino command
type CasinoCommandConfig struct {
	CasinoService    casino.Service
	MessagingService messaging.Service
	Logger           *zap.Logger

	// Clock defaults to the system clock
	Clock clock.Clock
}

// NewCasinoCommand creates a new casino command handler
func NewCasinoCommand(cfg *CasinoCommandConfig) (*CasinoCommand, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}
	if cfg.CasinoService == nil {
		return nil, ErrNilCasinoService
	}
	if cfg.MessagingService == nil {
		return nil, ErrNilMessagingService
	}

	log := logger.OrNop(cfg.Logger)

	clk := cfg.Clock
	if clk == nil {
		clk = &clock.DefaultClock{}
	}

	minThreshold := float64(games.MinThreshold)
	minBet := float64(casino.DefaultMinBet)
	minLimit := float64(1)

	gameChoices := make([]*discordgo.ApplicationCommandOptionChoice, 0, len(models.GameKinds))
	for _, info := range games.Catalog() {
		gameChoices = append(gameChoices, &discordgo.ApplicationCommandOptionChoice{
			Name:  info.Name,
			Value: string(info.Kind),
		})
	}

	return &CasinoCommand{
		BaseCommand: BaseCommand{
			Name:        "casino",
			Description: "Play the Robux Royale mini-games",
			Options: []*discordgo.ApplicationCommandOption{
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "roulette",
					Description: "Spin the prize wheel",
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "slots",
					Description: "Pull the slot machine lever",
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "dice",
					Description: "Bet the roll lands over or under your number",
					Options: []*discordgo.ApplicationCommandOption{
						{
							Type:        discordgo.ApplicationCommandOptionInteger,
							Name:        "threshold",
							Description: "Your number",
							Required:    true,
							MinValue:    &minThreshold,
							MaxValue:    games.MaxThreshold,
						},
						{
							Type:        discordgo.ApplicationCommandOptionString,
							Name:        "mode",
							Description: "Over or under your number",
							Required:    true,
							Choices: []*discordgo.ApplicationCommandOptionChoice{
								{Name: "Over", Value: string(games.DiceModeOver)},
								{Name: "Under", Value: string(games.DiceModeUnder)},
							},
						},
					},
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "crash",
					Description: "Launch the rocket and cash out before it crashes",
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "nyancat",
					Description: "Launch the cat and save it before it flies away",
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "bet",
					Description: "Place a bet on the next round of a game",
					Options: []*discordgo.ApplicationCommandOption{
						{
							Type:        discordgo.ApplicationCommandOptionString,
							Name:        "game",
							Description: "The game to bet on",
							Required:    true,
							Choices:     gameChoices,
						},
						{
							Type:        discordgo.ApplicationCommandOptionInteger,
							Name:        "amount",
							Description: "How many R$ to bet",
							Required:    true,
							MinValue:    &minBet,
							MaxValue:    casino.DefaultMaxBet,
						},
						{
							Type:        discordgo.ApplicationCommandOptionString,
							Name:        "name",
							Description: "Name shown in the history (defaults to yours)",
							MaxLength:   casino.MaxPlayerNameLength,
						},
					},
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "history",
					Description: "Show your last rounds",
					Options: []*discordgo.ApplicationCommandOption{
						{
							Type:        discordgo.ApplicationCommandOptionInteger,
							Name:        "limit",
							Description: "How many rounds to show",
							MinValue:    &minLimit,
							MaxValue:    50,
						},
					},
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "stats",
					Description: "Show your win rate and totals",
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "boost",
					Description: "Turn on the payout boost",
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "terms",
					Description: "Read and accept the terms",
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "claim",
					Description: "Claim your latest reward",
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "games",
					Description: "List the games and how they pay",
				},
			},
		},
		casino:    cfg.CasinoService,
		messaging: cfg.MessagingService,
		clock:     clk,
		log:       log,
		live:      make(map[string]liveMessage),
	}, nil
}

// Handle processes the /casino slash command
func (c *CasinoCommand) Handle(s Responder, i *discordgo.InteractionCreate) error {
	ctx := context.Background()
	data := i.ApplicationCommandData()
	if len(data.Options) == 0 {
		return RespondWithError(s, i, "Pick a subcommand, like `/casino roulette`.")
	}

	sub := data.Options[0]
	options := make(map[string]*discordgo.ApplicationCommandInteractionDataOption, len(sub.Options))
	for _, opt := range sub.Options {
		options[opt.Name] = opt
	}

	sessionID, name, err := c.ensureSession(ctx, i)
	if err != nil {
		return c.fail(ctx, s, i, err)
	}

	switch sub.Name {
	case "roulette":
		return c.playInstant(ctx, s, i, sessionID, name, models.GameKindRoulette, nil)
	case "slots":
		return c.playInstant(ctx, s, i, sessionID, name, models.GameKindSlots, nil)
	case "dice":
		dice := &games.DiceBet{}
		if opt, ok := options["threshold"]; ok {
			dice.Threshold = int(opt.IntValue())
		}
		if opt, ok := options["mode"]; ok {
			dice.Mode = games.DiceMode(opt.StringValue())
		}
		return c.playInstant(ctx, s, i, sessionID, name, models.GameKindDice, dice)
	case "crash":
		return c.startTimed(ctx, s, i, sessionID, name, models.GameKindCrash)
	case "nyancat":
		return c.startTimed(ctx, s, i, sessionID, name, models.GameKindNyanCat)
	case "bet":
		input := &casino.PlaceBetInput{
			SessionID:  sessionID,
			PlayerName: name,
		}
		if opt, ok := options["game"]; ok {
			input.Game = models.GameKind(opt.StringValue())
		}
		if opt, ok := options["amount"]; ok {
			input.BetAmount = int(opt.IntValue())
		}
		if opt, ok := options["name"]; ok && opt.StringValue() != "" {
			input.PlayerName = opt.StringValue()
		}
		return c.placeBet(ctx, s, i, input)
	case "history":
		limit := 0
		if opt, ok := options["limit"]; ok {
			limit = int(opt.IntValue())
		}
		return c.showHistory(ctx, s, i, sessionID, limit)
	case "stats":
		return c.showStats(ctx, s, i, sessionID)
	case "boost":
		return c.activateBoost(ctx, s, i, sessionID)
	case "terms":
		return c.showTerms(ctx, s, i, sessionID)
	case "claim":
		return c.openClaim(ctx, s, i, sessionID)
	case "games":
		return respond(s, i, gamesEmbed(c.casino.ListGames(ctx)), nil)
	default:
		return RespondWithError(s, i, fmt.Sprintf("Unknown subcommand: %s", sub.Name))
	}
}

// HandleComponent processes the buttons attached to casino messages
func (c *CasinoCommand) HandleComponent(s Responder, i *discordgo.InteractionCreate) error {
	ctx := context.Background()
	action, args := parseCustomID(i.MessageComponentData().CustomID)

	sessionID, name, err := c.ensureSession(ctx, i)
	if err != nil {
		return c.fail(ctx, s, i, err)
	}

	var game models.GameKind
	if len(args) > 0 {
		game = models.GameKind(args[0])
	}

	switch action {
	case actionAgain:
		if game.IsTimed() {
			return c.startTimed(ctx, s, i, sessionID, name, game)
		}
		var dice *games.DiceBet
		if game == models.GameKindDice {
			bet, err := parseDiceArgs(args[1:])
			if err != nil {
				return c.fail(ctx, s, i, err)
			}
			dice = &bet
		}
		return c.playInstant(ctx, s, i, sessionID, name, game, dice)
	case actionStop:
		return c.stopTimed(ctx, s, i, sessionID, name, game)
	case actionRefresh:
		return c.refreshTimed(ctx, s, i, sessionID, name, game)
	case actionClaim:
		return c.openClaim(ctx, s, i, sessionID)
	case actionTerms:
		return c.acceptTerms(ctx, s, i, sessionID)
	default:
		return RespondWithError(s, i, "That button doesn't do anything anymore.")
	}
}

// HandleModal processes the claim popup
func (c *CasinoCommand) HandleModal(s Responder, i *discordgo.InteractionCreate) error {
	ctx := context.Background()
	data := i.ModalSubmitData()
	if data.CustomID != claimModalID {
		return RespondWithError(s, i, "Unknown form.")
	}

	sessionID, _, err := c.ensureSession(ctx, i)
	if err != nil {
		return c.fail(ctx, s, i, err)
	}

	output, err := c.casino.ClaimReward(ctx, &casino.ClaimRewardInput{
		SessionID: sessionID,
		Username:  modalValue(data, claimUsernameID),
	})
	if err != nil {
		return c.fail(ctx, s, i, err)
	}

	message, err := c.messaging.GetClaimMessage(ctx, &messaging.GetClaimMessageInput{
		Username: output.Claim.Username,
		Amount:   output.Claim.Amount,
	})
	if err != nil {
		return c.fail(ctx, s, i, err)
	}

	return s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{
			Embeds: []*discordgo.MessageEmbed{claimEmbed(output.Claim, message)},
			Components: []discordgo.MessageComponent{
				discordgo.ActionsRow{
					Components: []discordgo.MessageComponent{
						discordgo.Button{
							Label: "Open PLS DONATE",
							Style: discordgo.LinkButton,
							URL:   output.Claim.RedirectURL,
						},
					},
				},
			},
			Flags: discordgo.MessageFlagsEphemeral,
		},
	})
}

// OnRoundComplete edits the message of a timed round that busted on its own
func (c *CasinoCommand) OnRoundComplete(ctx context.Context, outcome *models.RoundOutcome) {
	c.mu.Lock()
	live, ok := c.live[outcome.ID]
	delete(c.live, outcome.ID)
	c.mu.Unlock()

	// cash-outs are answered by the button that stopped them
	if !ok || outcome.Won {
		return
	}

	embed, components, err := c.renderOutcome(ctx, outcome, live.dice, 0)
	if err != nil {
		c.log.Warn("failed to render busted round", zap.String("round_id", outcome.ID), zap.Error(err))
		return
	}

	embeds := []*discordgo.MessageEmbed{embed}
	if _, err := live.session.InteractionResponseEdit(live.interaction, &discordgo.WebhookEdit{
		Embeds:     &embeds,
		Components: &components,
	}); err != nil {
		c.log.Warn("failed to edit busted round message", zap.String("round_id", outcome.ID), zap.Error(err))
	}
}

// track remembers the message of a running round. Entries older than an
// interaction token are dropped, they belong to rounds that ended without a callback.
func (c *CasinoCommand) track(roundID string, s Responder, i *discordgo.InteractionCreate) {
	c.mu.Lock()
	defer c.mu.Unlock()

	now := c.clock.Now()
	for id, live := range c.live {
		if now.Sub(live.trackedAt) >= interactionTokenTTL {
			delete(c.live, id)
		}
	}

	c.live[roundID] = liveMessage{session: s, interaction: i.Interaction, trackedAt: now}
}

// ensureSession maps the Discord user onto a casino session
func (c *CasinoCommand) ensureSession(ctx context.Context, i *discordgo.InteractionCreate) (string, string, error) {
	userID, name := interactionUser(i)
	if userID == "" {
		return "", "", casino.ErrSessionNotFound
	}

	if len([]rune(name)) > casino.MaxPlayerNameLength {
		name = string([]rune(name)[:casino.MaxPlayerNameLength])
	}

	output, err := c.casino.EnsureSession(ctx, &casino.EnsureSessionInput{
		SessionID:  sessionPrefix + userID,
		PlayerName: name,
	})
	if err != nil {
		return "", "", err
	}

	return output.Session.ID, name, nil
}

func (c *CasinoCommand) renderOutcome(ctx context.Context, outcome *models.RoundOutcome, dice *games.DiceBet, pendingReward int) (*discordgo.MessageEmbed, []discordgo.MessageComponent, error) {
	name := ""
	if outcome.Bet != nil {
		name = outcome.Bet.PlayerName
	}

	message, err := c.messaging.GetRoundResultMessage(ctx, &messaging.GetRoundResultMessageInput{
		PlayerName: name,
		Outcome:    outcome,
	})
	if err != nil {
		return nil, nil, err
	}

	return outcomeEmbed(outcome, message, pendingReward), outcomeComponents(outcome, dice, pendingReward), nil
}

func (c *CasinoCommand) playInstant(ctx context.Context, s Responder, i *discordgo.InteractionCreate, sessionID, name string, game models.GameKind, dice *games.DiceBet) error {
	var (
		output *casino.PlayRoundOutput
		err    error
	)

	input := &casino.PlayRoundInput{SessionID: sessionID}
	switch game {
	case models.GameKindRoulette:
		output, err = c.casino.SpinRoulette(ctx, input)
	case models.GameKindSlots:
		output, err = c.casino.SpinSlots(ctx, input)
	case models.GameKindDice:
		if dice == nil {
			return c.fail(ctx, s, i, casino.ErrInvalidInput)
		}
		output, err = c.casino.RollDice(ctx, &casino.RollDiceInput{
			SessionID: sessionID,
			Threshold: dice.Threshold,
			Mode:      dice.Mode,
		})
	default:
		err = fmt.Errorf("%w: unknown game %q", casino.ErrInvalidInput, game)
	}
	if err != nil {
		return c.fail(ctx, s, i, err)
	}

	outcome := withPlayer(output.Outcome, name)
	embed, components, err := c.renderOutcome(ctx, outcome, dice, output.PendingReward)
	if err != nil {
		return c.fail(ctx, s, i, err)
	}

	return respond(s, i, embed, components)
}

// withPlayer names the player on a copy of an outcome played without a bet
func withPlayer(outcome *models.RoundOutcome, name string) *models.RoundOutcome {
	named := *outcome
	if named.Bet == nil {
		named.Bet = &models.BetContext{PlayerName: name, Game: outcome.Game}
	}
	return &named
}

func (c *CasinoCommand) startTimed(ctx context.Context, s Responder, i *discordgo.InteractionCreate, sessionID, name string, game models.GameKind) error {
	input := &casino.TimedRoundInput{SessionID: sessionID}

	var (
		output *casino.TimedRoundOutput
		err    error
	)
	if game == models.GameKindNyanCat {
		output, err = c.casino.LaunchNyanCat(ctx, input)
	} else {
		output, err = c.casino.StartCrash(ctx, input)
	}
	if err != nil {
		return c.fail(ctx, s, i, err)
	}

	message, err := c.messaging.GetRoundStartMessage(ctx, &messaging.GetRoundStartMessageInput{
		PlayerName: name,
		Game:       game,
	})
	if err != nil {
		return c.fail(ctx, s, i, err)
	}

	c.track(output.Status.RoundID, s, i)

	return respond(s, i, statusEmbed(output.Status, message.Message), statusComponents(output.Status))
}

func (c *CasinoCommand) stopTimed(ctx context.Context, s Responder, i *discordgo.InteractionCreate, sessionID, name string, game models.GameKind) error {
	input := &casino.TimedRoundInput{SessionID: sessionID}

	var (
		output *casino.PlayRoundOutput
		err    error
	)
	if game == models.GameKindNyanCat {
		output, err = c.casino.SaveNyanCat(ctx, input)
	} else {
		output, err = c.casino.CashOutCrash(ctx, input)
	}
	if errors.Is(err, casino.ErrRoundNotRunning) {
		// the round busted between the last refresh and the click
		return c.refreshTimed(ctx, s, i, sessionID, name, game)
	}
	if err != nil {
		return c.fail(ctx, s, i, err)
	}

	outcome := withPlayer(output.Outcome, name)
	embed, components, err := c.renderOutcome(ctx, outcome, nil, output.PendingReward)
	if err != nil {
		return c.fail(ctx, s, i, err)
	}

	return respond(s, i, embed, components)
}

func (c *CasinoCommand) refreshTimed(ctx context.Context, s Responder, i *discordgo.InteractionCreate, sessionID, name string, game models.GameKind) error {
	input := &casino.TimedRoundInput{SessionID: sessionID}

	var (
		output *casino.TimedRoundOutput
		err    error
	)
	if game == models.GameKindNyanCat {
		output, err = c.casino.GetNyanCatStatus(ctx, input)
	} else {
		output, err = c.casino.GetCrashStatus(ctx, input)
	}
	if err != nil {
		return c.fail(ctx, s, i, err)
	}

	return c.respondStatus(ctx, s, i, sessionID, name, output.Status)
}

func (c *CasinoCommand) respondStatus(ctx context.Context, s Responder, i *discordgo.InteractionCreate, sessionID, name string, status *casino.RoundStatus) error {
	if status.Outcome == nil {
		return respond(s, i, statusEmbed(status, ""), statusComponents(status))
	}

	session, err := c.casino.GetSession(ctx, &casino.GetSessionInput{SessionID: sessionID})
	if err != nil {
		return c.fail(ctx, s, i, err)
	}

	outcome := withPlayer(status.Outcome, name)
	embed, components, err := c.renderOutcome(ctx, outcome, nil, session.Session.PendingReward)
	if err != nil {
		return c.fail(ctx, s, i, err)
	}

	return respond(s, i, embed, components)
}

func (c *CasinoCommand) placeBet(ctx context.Context, s Responder, i *discordgo.InteractionCreate, input *casino.PlaceBetInput) error {
	output, err := c.casino.PlaceBet(ctx, input)
	if err != nil {
		return c.fail(ctx, s, i, err)
	}

	return respond(s, i, betEmbed(output.Bet), nil)
}

func (c *CasinoCommand) showHistory(ctx context.Context, s Responder, i *discordgo.InteractionCreate, sessionID string, limit int) error {
	output, err := c.casino.GetHistory(ctx, &casino.GetHistoryInput{
		SessionID: sessionID,
		Limit:     limit,
	})
	if err != nil {
		return c.fail(ctx, s, i, err)
	}

	return respond(s, i, historyEmbed(output.Entries), nil)
}

func (c *CasinoCommand) showStats(ctx context.Context, s Responder, i *discordgo.InteractionCreate, sessionID string) error {
	output, err := c.casino.GetStats(ctx, &casino.GetStatsInput{SessionID: sessionID})
	if err != nil {
		return c.fail(ctx, s, i, err)
	}

	return respond(s, i, statsEmbed(output.Stats, output.WinRate), nil)
}

func (c *CasinoCommand) activateBoost(ctx context.Context, s Responder, i *discordgo.InteractionCreate, sessionID string) error {
	output, err := c.casino.ActivateBoost(ctx, &casino.BoostInput{SessionID: sessionID})
	if err != nil {
		return c.fail(ctx, s, i, err)
	}

	return respond(s, i, boostEmbed(output.Boost), nil)
}

func (c *CasinoCommand) showTerms(ctx context.Context, s Responder, i *discordgo.InteractionCreate, sessionID string) error {
	output, err := c.casino.GetSession(ctx, &casino.GetSessionInput{SessionID: sessionID})
	if err != nil {
		return c.fail(ctx, s, i, err)
	}

	accepted := output.Session.TermsAccepted
	return respond(s, i, termsEmbed(accepted, output.TermsRemaining), termsComponents(accepted))
}

func (c *CasinoCommand) acceptTerms(ctx context.Context, s Responder, i *discordgo.InteractionCreate, sessionID string) error {
	if _, err := c.casino.AcceptTerms(ctx, &casino.AcceptTermsInput{SessionID: sessionID}); err != nil {
		if errors.Is(err, casino.ErrTermsCountdown) {
			return c.showTerms(ctx, s, i, sessionID)
		}
		return c.fail(ctx, s, i, err)
	}

	return respond(s, i, termsEmbed(true, 0), termsComponents(true))
}

func (c *CasinoCommand) openClaim(ctx context.Context, s Responder, i *discordgo.InteractionCreate, sessionID string) error {
	output, err := c.casino.GetSession(ctx, &casino.GetSessionInput{SessionID: sessionID})
	if err != nil {
		return c.fail(ctx, s, i, err)
	}
	if output.Session.PendingReward <= 0 {
		return c.fail(ctx, s, i, casino.ErrNoPendingReward)
	}

	return s.InteractionRespond(i.Interaction, claimModal(output.Session.PendingReward))
}

// fail answers with a friendly message; only unexpected errors are logged
func (c *CasinoCommand) fail(ctx context.Context, s Responder, i *discordgo.InteractionCreate, err error) error {
	var casinoErr casino.CasinoError
	var gameErr games.GameError
	if !errors.As(err, &casinoErr) && !errors.As(err, &gameErr) {
		c.log.Error("casino interaction failed", zap.String("interaction_id", i.ID), zap.Error(err))
	}

	message, msgErr := c.messaging.GetErrorMessage(ctx, &messaging.GetErrorMessageInput{Err: err})
	if msgErr != nil {
		return RespondWithError(s, i, "Something went wrong.")
	}

	return RespondWithError(s, i, message.Message)
}
