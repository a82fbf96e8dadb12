package discord

import (
	"errors"
	"fmt"

	"github.com/KirkDiggler/crease/internal/common/logger"
	"github.com/KirkDiggler/crease/internal/dice"
	"github.com/KirkDiggler/crease/internal/services/career"
	"github.com/KirkDiggler/crease/internal/services/messaging"
	"github.com/bwmarrin/discordgo"
	"github.com/sirupsen/logrus"
)

// Bot represents the Discord bot instance
type Bot struct {
	session    *discordgo.Session
	commands   map[string]CommandHandler
	commandIDs map[string]string // Maps command name to command ID
	cricket    *CricketCommand
	config     *Config
	log        *logrus.Entry
}

// Config holds the configuration for the bot
type Config struct {
	// Discord bot token
	Token string

	// Application ID for the bot
	ApplicationID string

	// Optional guild ID for development (server-specific commands)
	GuildID string

	CareerService    career.Service
	MessagingService messaging.Service

	// DiceRoller drives the random choices made for players on Discord
	DiceRoller dice.Roller

	Logger *logrus.Entry
}

// New creates a new Discord bot
func New(cfg *Config) (*Bot, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	if cfg.Token == "" {
		return nil, errors.New("token cannot be empty")
	}

	if cfg.CareerService == nil {
		return nil, errors.New("career service cannot be nil")
	}

	if cfg.MessagingService == nil {
		return nil, errors.New("messaging service cannot be nil")
	}

	if cfg.DiceRoller == nil {
		return nil, errors.New("dice roller cannot be nil")
	}

	log := cfg.Logger
	if log == nil {
		log = logger.WithService("discord")
	}

	// Create a new Discord session
	session, err := discordgo.New("Bot " + cfg.Token)
	if err != nil {
		return nil, fmt.Errorf("failed to create Discord session: %w", err)
	}

	bot := &Bot{
		session:    session,
		commands:   make(map[string]CommandHandler),
		commandIDs: make(map[string]string),
		cricket:    NewCricketCommand(cfg.CareerService, cfg.MessagingService, cfg.DiceRoller, log),
		config:     cfg,
		log:        log,
	}

	// Register the interaction handler
	session.AddHandler(bot.handleInteraction)

	return bot, nil
}

// Start initializes the Discord connection and registers commands
func (b *Bot) Start() error {
	// Open the websocket connection to Discord
	if err := b.session.Open(); err != nil {
		return fmt.Errorf("failed to open Discord connection: %w", err)
	}

	if err := b.RegisterCommand(b.cricket); err != nil {
		return fmt.Errorf("failed to register cricket command: %w", err)
	}

	b.log.Info("Bot is now running")
	return nil
}

// Stop gracefully shuts down the Discord connection
func (b *Bot) Stop() error {
	appID := b.appID()
	for cmdName, cmdID := range b.commandIDs {
		log := b.log.WithFields(logrus.Fields{
			"command":    cmdName,
			"command_id": cmdID,
		})
		if err := b.session.ApplicationCommandDelete(appID, b.config.GuildID, cmdID); err != nil {
			log.WithError(err).Warn("Failed to delete command")
		} else {
			log.Debug("Deleted command")
		}
	}

	return b.session.Close()
}

// RegisterCommand registers a command with Discord, for one guild when a
// guild ID is configured and globally otherwise
func (b *Bot) RegisterCommand(cmd CommandHandler) error {
	createdCmd, err := b.session.ApplicationCommandCreate(b.appID(), b.config.GuildID, cmd.GetCommand())
	if err != nil {
		return fmt.Errorf("failed to create command %s: %w", cmd.GetName(), err)
	}

	b.commands[cmd.GetName()] = cmd
	b.commandIDs[cmd.GetName()] = createdCmd.ID
	b.log.WithFields(logrus.Fields{
		"command":    cmd.GetName(),
		"command_id": createdCmd.ID,
		"guild_id":   b.config.GuildID,
	}).Info("Registered command")

	return nil
}

// appID falls back to the session user when no application ID is configured
func (b *Bot) appID() string {
	if b.config.ApplicationID != "" {
		return b.config.ApplicationID
	}
	return b.session.State.User.ID
}

// handleInteraction handles Discord interactions
func (b *Bot) handleInteraction(s *discordgo.Session, i *discordgo.InteractionCreate) {
	switch i.Type {
	case discordgo.InteractionApplicationCommand:
		name := i.ApplicationCommandData().Name
		if h, ok := b.commands[name]; ok {
			if err := h.Handle(s, i); err != nil {
				b.log.WithError(err).WithField("command", name).Error("Error handling command")
			}
		}
	case discordgo.InteractionMessageComponent:
		if err := b.handleComponentInteraction(s, i); err != nil {
			b.log.WithError(err).Error("Error handling component interaction")
		}
	}
}

// handleComponentInteraction handles button clicks
func (b *Bot) handleComponentInteraction(s *discordgo.Session, i *discordgo.InteractionCreate) error {
	customID := i.MessageComponentData().CustomID

	switch customID {
	case ButtonPlayNext:
		return b.cricket.HandlePlayNext(s, i)
	default:
		return RespondWithError(s, i, fmt.Sprintf("Unknown button: %s", customID))
	}
}
