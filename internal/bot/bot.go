package bot

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/bwmarrin/discordgo"
	"go.uber.org/zap"

	"github.com/suzi-bot/suzi/internal/config"
	"github.com/suzi-bot/suzi/internal/i18n"
)

// New creates the Suzi bot with the provided configuration and services.
func New(cfg *config.Config, services Services, logger *zap.Logger) (*Bot, error) {
	session, err := discordgo.New("Bot " + cfg.DiscordToken)
	if err != nil {
		return nil, fmt.Errorf("error creating Discord session: %w", err)
	}

	b := &Bot{
		Session:         session,
		Config:          cfg,
		Logger:          logger,
		Tracker:         services.Tracker,
		Ledger:          services.Ledger,
		Titles:          services.Titles,
		Steam:           services.Steam,
		SteamCache:      services.SteamCache,
		LLM:             services.LLM,
		GuildID:         cfg.GuildID,
		CommandHandlers: make(map[string]func(s *discordgo.Session, i *discordgo.InteractionCreate)),
		lastUse:         make(map[string]time.Time),
		rng:             rand.New(rand.NewSource(time.Now().UnixNano())),
	}

	// Set up command handlers
	b.CommandHandlers["rolar"] = b.handleRollCommand
	b.CommandHandlers["pergunta"] = b.handleQuestionCommand
	b.CommandHandlers["jogo"] = b.handleGameCommand
	b.CommandHandlers["registrar"] = b.handleRegisterCommand
	b.CommandHandlers["perfil"] = b.handleProfileCommand
	b.CommandHandlers["nivel"] = b.handleLevelCommand
	b.CommandHandlers["steam"] = b.handleSteamCommand
	b.CommandHandlers["conquistas"] = b.handleAchievementsCommand
	b.CommandHandlers["titulos"] = b.handleTitlesCommand
	b.CommandHandlers["ajuda"] = b.handleHelpCommand
	b.CommandHandlers["sobre"] = b.handleAboutCommand

	return b, nil
}

// Start opens the gateway connection and registers the slash commands.
func (b *Bot) Start() error {
	user, err := b.Session.User("@me")
	if err != nil {
		return fmt.Errorf("error getting bot user: %w", err)
	}
	b.BotUserID = user.ID

	b.Session.AddHandler(b.interactionHandler)

	if err := b.Session.Open(); err != nil {
		return fmt.Errorf("error opening Discord session: %w", err)
	}

	registeredCommands, err := b.registerCommands()
	if err != nil {
		return fmt.Errorf("error registering commands: %w", err)
	}
	b.Commands = registeredCommands

	b.Logger.Info("bot running with slash commands registered",
		zap.Int("commands", len(registeredCommands)))
	return nil
}

// Stop removes the registered commands and closes the session.
func (b *Bot) Stop() error {
	b.Logger.Info("removing commands")
	for _, cmd := range b.Commands {
		err := b.Session.ApplicationCommandDelete(b.Session.State.User.ID, b.GuildID, cmd.ID)
		if err != nil {
			b.Logger.Warn("error removing command",
				zap.String("command", cmd.Name), zap.Error(err))
		}
	}

	return b.Session.Close()
}

// registerCommands registers the defined slash commands
func (b *Bot) registerCommands() ([]*discordgo.ApplicationCommand, error) {
	registeredCommands := make([]*discordgo.ApplicationCommand, len(commands))

	for i, cmd := range commands {
		registered, err := b.Session.ApplicationCommandCreate(b.Session.State.User.ID, b.GuildID, cmd)
		if err != nil {
			return nil, fmt.Errorf("error creating command '%s': %w", cmd.Name, err)
		}
		registeredCommands[i] = registered
	}

	return registeredCommands, nil
}

// interactionHandler dispatches Discord interaction events to the command
// handlers. It is the outer boundary: a panic anywhere inside a handler is
// converted into a generic localized failure reply so the interaction never
// hangs.
func (b *Bot) interactionHandler(s *discordgo.Session, i *discordgo.InteractionCreate) {
	if i.Type != discordgo.InteractionApplicationCommand {
		return
	}

	commandName := i.ApplicationCommandData().Name
	handler, ok := b.CommandHandlers[commandName]
	if !ok {
		return
	}

	defer func() {
		if r := recover(); r != nil {
			b.Logger.Error("panic in command handler",
				zap.String("command", commandName), zap.Any("panic", r))
			b.editReply(s, i, errorEmbed(i18n.T("error.generic", nil), ""))
		}
	}()

	handler(s, i)
}
