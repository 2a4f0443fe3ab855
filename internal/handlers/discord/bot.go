package discord

import (
	"errors"
	"fmt"
	"strings"

	"github.com/KirkDiggler/stumped/internal/services/game"
	"github.com/KirkDiggler/stumped/internal/services/messaging"
	"github.com/bwmarrin/discordgo"
	"github.com/rs/zerolog"
)

var (
	ErrNilConfig  = errors.New("config cannot be nil")
	ErrEmptyToken = errors.New("token cannot be empty")
)

// Bot represents the Discord bot instance
type Bot struct {
	session    *discordgo.Session
	commands   map[string]CommandHandler
	commandIDs map[string]string // command name to registered ID
	stumped    *StumpedCommand
	config     *Config
	logger     zerolog.Logger
}

// Config holds the configuration for the bot
type Config struct {
	// Discord bot token
	Token string

	// Application ID for the bot
	ApplicationID string

	// Optional guild ID for development (server-specific commands)
	GuildID string

	Game      game.Service
	Messaging messaging.Service
	Logger    zerolog.Logger
}

// New creates a new Discord bot
func New(cfg *Config) (*Bot, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}

	if cfg.Token == "" {
		return nil, ErrEmptyToken
	}

	stumped, err := NewStumpedCommand(&CommandConfig{
		Game:      cfg.Game,
		Messaging: cfg.Messaging,
		Logger:    cfg.Logger,
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
		stumped:    stumped,
		config:     cfg,
		logger:     cfg.Logger.With().Str("component", "discord").Logger(),
	}

	session.AddHandler(bot.handleInteraction)

	return bot, nil
}

// Start opens the Discord connection and registers commands
func (b *Bot) Start() error {
	if err := b.session.Open(); err != nil {
		return fmt.Errorf("failed to open Discord connection: %w", err)
	}

	if err := b.RegisterCommand(b.stumped); err != nil {
		return fmt.Errorf("failed to register %s command: %w", b.stumped.GetName(), err)
	}

	b.logger.Info().Msg("bot is running")
	return nil
}

// Stop removes the registered commands and closes the connection
func (b *Bot) Stop() error {
	appID := b.appID()

	for name, id := range b.commandIDs {
		if err := b.session.ApplicationCommandDelete(appID, b.config.GuildID, id); err != nil {
			b.logger.Warn().Err(err).Str("command", name).Msg("failed to delete command")
		} else {
			b.logger.Debug().Str("command", name).Msg("deleted command")
		}
	}

	return b.session.Close()
}

func (b *Bot) appID() string {
	if b.config.ApplicationID != "" {
		return b.config.ApplicationID
	}
	// Fall back to the bot user when no application ID is configured
	return b.session.State.User.ID
}

// RegisterCommand registers a command with Discord, for one guild when a
// guild ID is configured and globally otherwise
func (b *Bot) RegisterCommand(cmd CommandHandler) error {
	created, err := b.session.ApplicationCommandCreate(b.appID(), b.config.GuildID, cmd.GetCommand())
	if err != nil {
		return fmt.Errorf("failed to create command %s: %w", cmd.GetName(), err)
	}

	b.commands[cmd.GetName()] = cmd
	b.commandIDs[cmd.GetName()] = created.ID

	b.logger.Info().
		Str("command", cmd.GetName()).
		Str("command_id", created.ID).
		Str("guild_id", b.config.GuildID).
		Msg("registered command")

	return nil
}

// handleInteraction routes slash commands by name and button presses by the
// command prefix of their custom ID
func (b *Bot) handleInteraction(s *discordgo.Session, i *discordgo.InteractionCreate) {
	switch i.Type {
	case discordgo.InteractionApplicationCommand:
		name := i.ApplicationCommandData().Name
		if h, ok := b.commands[name]; ok {
			if err := h.Handle(s, i); err != nil {
				b.logger.Error().Err(err).Str("command", name).Msg("failed to handle command")
			}
		}

	case discordgo.InteractionMessageComponent:
		customID := i.MessageComponentData().CustomID
		name, _, _ := strings.Cut(customID, "_")
		if h, ok := b.commands[name]; ok {
			if err := h.HandleComponent(s, i); err != nil {
				b.logger.Error().Err(err).Str("custom_id", customID).Msg("failed to handle component")
			}
		}
	}
}
