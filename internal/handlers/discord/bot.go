package discord

import (
	"fmt"

	"github.com/bwmarrin/discordgo"
	"go.uber.org/zap"

	"github.com/KirkDiggler/robuxroyale/internal/logger"
	"github.com/KirkDiggler/robuxroyale/internal/services/casino"
	"github.com/KirkDiggler/robuxroyale/internal/services/messaging"
)

// Bot represents the Discord bot instance
type Bot struct {
	session    *discordgo.Session
	commands   map[string]CommandHandler
	commandIDs map[string]string // Maps command name to command ID
	casinoCmd  *CasinoCommand
	config     *Config
	log        *zap.Logger
}

// Config holds the configuration for the bot
type Config struct {
	// Discord bot token
	Token string

	// Application ID for the bot
	ApplicationID string

	// Optional guild ID for development (server-specific commands)
	GuildID string

	CasinoService    casino.Service
	MessagingService messaging.Service
	Logger           *zap.Logger
}

// New creates a new Discord bot
func New(cfg *Config) (*Bot, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}
	if cfg.Token == "" {
		return nil, ErrEmptyToken
	}

	log := logger.OrNop(cfg.Logger)

	casinoCmd, err := NewCasinoCommand(&CasinoCommandConfig{
		CasinoService:    cfg.CasinoService,
		MessagingService: cfg.MessagingService,
		Logger:           log,
	})
	if err != nil {
		return nil, err
	}

	session, err := discordgo.New("Bot " + cfg.Token)
	if err != nil {
		return nil, fmt.Errorf("failed to create Discord session: %w", err)
	}

	bot := &Bot{
		session:    session,
		commands:   make(map[string]CommandHandler),
		commandIDs: make(map[string]string),
		casinoCmd:  casinoCmd,
		config:     cfg,
		log:        log,
	}

	session.AddHandler(bot.handleInteraction)

	return bot, nil
}

// Start opens the connection, registers the commands and listens for busted rounds
func (b *Bot) Start() error {
	if err := b.session.Open(); err != nil {
		return fmt.Errorf("failed to open Discord connection: %w", err)
	}

	if err := b.RegisterCommand(b.casinoCmd); err != nil {
		return fmt.Errorf("failed to register casino command: %w", err)
	}

	b.config.CasinoService.AddRoundListener(b.casinoCmd)

	b.log.Info("discord bot is running")
	return nil
}

// Stop removes the registered commands and closes the connection
func (b *Bot) Stop() error {
	appID := b.appID()

	for cmdName, cmdID := range b.commandIDs {
		if err := b.session.ApplicationCommandDelete(appID, b.config.GuildID, cmdID); err != nil {
			b.log.Warn("failed to delete command", zap.String("command", cmdName), zap.String("command_id", cmdID), zap.Error(err))
		} else {
			b.log.Debug("deleted command", zap.String("command", cmdName), zap.String("command_id", cmdID))
		}
	}

	return b.session.Close()
}

func (b *Bot) appID() string {
	if b.config.ApplicationID != "" {
		return b.config.ApplicationID
	}
	// Fall back to session user ID if application ID is not provided
	return b.session.State.User.ID
}

// RegisterCommand registers a command with Discord, for one guild when GuildID is set
func (b *Bot) RegisterCommand(cmd CommandHandler) error {
	createdCmd, err := b.session.ApplicationCommandCreate(b.appID(), b.config.GuildID, cmd.GetCommand())
	if err != nil {
		return fmt.Errorf("failed to create command %s: %w", cmd.GetName(), err)
	}

	b.commands[cmd.GetName()] = cmd
	b.commandIDs[cmd.GetName()] = createdCmd.ID
	b.log.Info("registered command",
		zap.String("command", cmd.GetName()),
		zap.String("command_id", createdCmd.ID),
		zap.String("guild_id", b.config.GuildID),
	)

	return nil
}

// handleInteraction routes Discord interactions
func (b *Bot) handleInteraction(s *discordgo.Session, i *discordgo.InteractionCreate) {
	switch i.Type {
	case discordgo.InteractionApplicationCommand:
		name := i.ApplicationCommandData().Name
		h, ok := b.commands[name]
		if !ok {
			if err := RespondWithEphemeralMessage(s, i, "That command is not available anymore."); err != nil {
				b.log.Warn("failed to respond to unknown command", zap.String("command", name), zap.Error(err))
			}
			return
		}
		if err := h.Handle(s, i); err != nil {
			b.log.Error("error handling command", zap.String("command", name), zap.Error(err))
		}
	case discordgo.InteractionMessageComponent:
		if err := b.casinoCmd.HandleComponent(s, i); err != nil {
			b.log.Error("error handling component interaction",
				zap.String("custom_id", i.MessageComponentData().CustomID),
				zap.Error(err),
			)
		}
	case discordgo.InteractionModalSubmit:
		if err := b.casinoCmd.HandleModal(s, i); err != nil {
			b.log.Error("error handling modal submit",
				zap.String("custom_id", i.ModalSubmitData().CustomID),
				zap.Error(err),
			)
		}
	}
}
