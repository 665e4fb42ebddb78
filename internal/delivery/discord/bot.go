package discord

import (
	"context"
	"strings"

	"baskettracker/internal/application"
	"baskettracker/internal/snapshot"
	"baskettracker/pkg/config"

	"github.com/bwmarrin/discordgo"
)

type Bot struct {
	session  *discordgo.Session
	services *application.Service
	logger   application.Logger
	commands []*discordgo.ApplicationCommand

	guildID          string
	adminIDs         map[string]struct{}
	allowedChannelID string
}

func NewBot(cfg *config.Config, services *application.Service, logger application.Logger) (*Bot, error) {
	s, err := discordgo.New("Bot " + cfg.DiscordToken)
	if err != nil {
		return nil, err
	}

	admins := make(map[string]struct{})
	for _, id := range cfg.AdminUserIDs {
		cleanID := strings.TrimSpace(id)
		if cleanID != "" {
			admins[cleanID] = struct{}{}
		}
	}

	return &Bot{
		session:          s,
		services:         services,
		logger:           logger,
		guildID:          cfg.DiscordGuildID,
		adminIDs:         admins,
		allowedChannelID: cfg.AllowedChannelID,
	}, nil
}

func (b *Bot) Name() string { return "discord" }

func (b *Bot) Init() error {
	b.session.Identify.Intents = discordgo.IntentsGuildMessages | discordgo.IntentsMessageContent
	b.session.AddHandler(b.onInteraction)
	b.session.AddHandler(b.onMessage)

	b.addCommands(
		b.newStartCommand(),
		b.newMatchInfoCommand(),
		b.newQuickFillCommand(),
		b.newAddPlayerCommand(),
		b.newRemovePlayerCommand(),
		b.newStatCommand(),
		b.newOpponentCommand(),
		b.newQuarterCommand(),
		b.newScoreCommand(),
		b.newBoxCommand(),
		b.newExportCommand(),
		b.newImportCommand(),
		b.newResetStatsCommand(),
		b.newFullResetCommand(),
		b.newReportCommand(),
		b.newExcelCommand(),
		b.newSyncSheetCommand(),
	)
	return nil
}

func (b *Bot) Run(ctx context.Context) {
	if err := b.session.Open(); err != nil {
		b.logger.Error("failed to open discord session: %v", err)
		return
	}

	b.logger.Info("Discord Bot Started. Registering %d slash commands...", len(b.commands))

	_, err := b.session.ApplicationCommandBulkOverwrite(b.session.State.User.ID, b.guildID, b.commands)
	if err != nil {
		b.logger.Error("Failed to register commands: %v", err)
	} else {
		b.logger.Info("Slash commands registered successfully")
	}
}

func (b *Bot) Stop() {
	if err := b.session.Close(); err != nil {
		b.logger.Warn("failed to close discord session: %v", err)
	}
}

func (b *Bot) onInteraction(s *discordgo.Session, i *discordgo.InteractionCreate) {
	if i.Type != discordgo.InteractionApplicationCommand {
		return
	}

	switch i.ApplicationCommandData().Name {
	case "score":
		b.handleScore(s, i.Interaction)
	case "box":
		b.handleBox(s, i.Interaction)
	case "export":
		b.handleExport(s, i.Interaction)
	case "report":
		b.handleReport(s, i.Interaction)
	case "excel":
		b.handleExcel(s, i.Interaction)

	case "start":
		b.ensureAdmin(s, i.Interaction, b.handleStart)
	case "match_info":
		b.ensureAdmin(s, i.Interaction, b.handleMatchInfo)
	case "quick_fill":
		b.ensureAdmin(s, i.Interaction, b.handleQuickFill)
	case "add_player":
		b.ensureAdmin(s, i.Interaction, b.handleAddPlayer)
	case "remove_player":
		b.ensureAdmin(s, i.Interaction, b.handleRemovePlayer)
	case "stat":
		b.ensureAdmin(s, i.Interaction, b.handleStat)
	case "opponent":
		b.ensureAdmin(s, i.Interaction, b.handleOpponent)
	case "quarter":
		b.ensureAdmin(s, i.Interaction, b.handleQuarter)
	case "import":
		b.ensureAdmin(s, i.Interaction, b.handleImport)
	case "reset_stats":
		b.ensureAdmin(s, i.Interaction, b.handleResetStats)
	case "full_reset":
		b.ensureAdmin(s, i.Interaction, b.handleFullReset)
	case "sync_sheet":
		b.ensureAdmin(s, i.Interaction, b.handleSyncSheet)
	}
}

// onMessage picks up exported matches pasted straight into the channel.
func (b *Bot) onMessage(s *discordgo.Session, m *discordgo.MessageCreate) {
	if m.Author == nil || m.Author.ID == s.State.User.ID {
		return
	}

	if b.allowedChannelID != "" && m.ChannelID != b.allowedChannelID {
		return
	}

	if !strings.Contains(m.Content, snapshot.MarkerPrefix) || !b.isAdmin(m.Author.ID) {
		return
	}

	b.handlePastedExport(s, m)
}
