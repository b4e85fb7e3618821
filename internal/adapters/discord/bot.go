package discord

import (
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/bwmarrin/discordgo"

	"prefbot/internal/application"
	"prefbot/internal/config"
	"prefbot/internal/ports/output"
	pkgdiscord "prefbot/pkg/discord"
)

// Bot is the Discord adapter.
type Bot struct {
	session *discordgo.Session
	config  *config.Config
	catalog output.Catalog
	handler *Handler
	logger  *slog.Logger
}

// NewBot creates a Bot and wires ports: output adapters -> application (use cases) -> handler.
func NewBot(cfg *config.Config, catalog output.Catalog, prefRepo output.PreferenceRepository, logger *slog.Logger) (*Bot, error) {
	preferenceUC := application.NewPreferenceService(prefRepo, catalog, logger)

	s, err := discordgo.New("Bot " + cfg.Token)
	if err != nil {
		return nil, fmt.Errorf("discord session: %w", err)
	}

	bot := &Bot{
		session: s,
		config:  cfg,
		catalog: catalog,
		handler: NewHandler(preferenceUC, logger),
		logger:  logger,
	}
	bot.setupHandlers()
	return bot, nil
}

func (b *Bot) setupHandlers() {
	b.session.AddHandler(b.handleInteraction)
}

func (b *Bot) handleInteraction(s *discordgo.Session, i *discordgo.InteractionCreate) {
	switch i.Type {
	case discordgo.InteractionApplicationCommand:
		if i.ApplicationCommandData().Name == settingsCommandName {
			b.handler.HandleSettings(s, i)
		}
	case discordgo.InteractionMessageComponent:
		switch i.MessageComponentData().CustomID {
		case pkgdiscord.SelectLocaleID:
			b.handler.HandleLocaleSelect(s, i)
		case pkgdiscord.SelectThemeID:
			b.handler.HandleThemeSelect(s, i)
		}
	}
}

// Start runs the bot until interrupted.
func (b *Bot) Start() error {
	if err := b.session.Open(); err != nil {
		return fmt.Errorf("discord open: %w", err)
	}
	defer b.session.Close()

	cmd := settingsCommand(b.catalog)
	if _, err := b.session.ApplicationCommandCreate(b.session.State.User.ID, b.config.GuildID, cmd); err != nil {
		b.logger.Warn("discord: command registration failed", "command", cmd.Name, "error", err)
	}

	b.logger.Info("🤖 bot online, press CTRL+C to quit", "user", b.session.State.User.Username)
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop

	b.logger.Info("bot shutting down")
	return nil
}
