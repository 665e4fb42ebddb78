package discord

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"baskettracker/internal/feedback"
	"baskettracker/internal/models"

	"github.com/bwmarrin/discordgo"
)

const reportTimeout = 60 * time.Second

func (b *Bot) handleScore(s *discordgo.Session, i *discordgo.Interaction) {
	session := b.services.Session.Session()

	highlight, subtract := "", false
	if fb, ok := b.services.Session.Feedback(); ok {
		if p, found := b.services.Session.Player(fb.PlayerID); found {
			highlight = formatFeedback(fb, p)
			subtract = fb.Magnitude < 0
		}
	}

	b.respondEmbed(s, i, scoreEmbed(session, highlight, subtract))
}

func (b *Bot) handleBox(s *discordgo.Session, i *discordgo.Interaction) {
	embed := &discordgo.MessageEmbed{
		Title:       "Feuille de stats",
		Description: codeBlock(b.services.Report.BoxScore()),
		Color:       colorBlue,
	}
	b.respondEmbed(s, i, embed)
}

func (b *Bot) handleExport(s *discordgo.Session, i *discordgo.Interaction) {
	text, err := b.services.Session.ExportSession()
	if err != nil {
		b.logger.Error("Export error: %v", err)
		b.respondMessage(s, i, "Erreur d'export : "+err.Error(), true)
		return
	}

	if len(text) <= maxMessageLength {
		b.respondMessage(s, i, text, false)
		return
	}

	b.deferResponse(s, i)
	b.editResponse(s, i, "Export du match :", &discordgo.File{
		Name:        exportFileName,
		ContentType: "text/markdown",
		Reader:      strings.NewReader(text),
	})
}

func (b *Bot) handleReport(s *discordgo.Session, i *discordgo.Interaction) {
	b.deferResponse(s, i)

	ctx, cancel := context.WithTimeout(context.Background(), reportTimeout)
	defer cancel()

	b.editResponse(s, i, b.services.Report.Narrative(ctx))
}

func (b *Bot) handleExcel(s *discordgo.Session, i *discordgo.Interaction) {
	b.deferResponse(s, i)

	data, err := b.services.Report.ExcelBoxScore()
	if err != nil {
		b.logger.Error("Excel export error: %v", err)
		b.editResponse(s, i, "Erreur d'export Excel : "+err.Error())
		return
	}

	b.editResponse(s, i, "Votre feuille de match est prête !", &discordgo.File{
		Name:   excelFileName,
		Reader: bytes.NewReader(data),
	})
}

func (b *Bot) handleStart(s *discordgo.Session, i *discordgo.Interaction) {
	if len(b.services.Session.Session().Players) == 0 {
		b.respondMessage(s, i, "Ajoutez au moins un joueur avant de démarrer.", true)
		return
	}
	b.services.Session.StartMatch()
	b.respondEmbed(s, i, scoreEmbed(b.services.Session.Session(), "Coup d'envoi !", false))
}

func (b *Bot) handleMatchInfo(s *discordgo.Session, i *discordgo.Interaction) {
	opts := optionMap(i.ApplicationCommandData().Options)
	info := mergeMatchInfo(b.services.Session.Session().MatchInfo, opts)

	if err := b.services.Session.UpdateMatchInfo(info); err != nil {
		b.respondMessage(s, i, sessionErrorMessage(err), true)
		return
	}

	e := info.Effective()
	b.respondMessage(s, i, fmt.Sprintf("**%s** vs **%s**\n%s à %s, %s (%s)", e.TeamName, e.Opponent, e.Date, e.Time, e.Location, e.Championship), false)
}

func (b *Bot) handleQuickFill(s *discordgo.Session, i *discordgo.Interaction) {
	if err := b.services.Session.QuickFill(); err != nil {
		b.respondMessage(s, i, sessionErrorMessage(err), true)
		return
	}
	b.respondMessage(s, i, "Effectif de démonstration ajouté :\n"+b.rosterList(), false)
}

func (b *Bot) handleAddPlayer(s *discordgo.Session, i *discordgo.Interaction) {
	opts := optionMap(i.ApplicationCommandData().Options)

	p, err := b.services.Session.AddPlayer(stringOption(opts, "name"), stringOption(opts, "number"))
	if err != nil {
		b.respondMessage(s, i, sessionErrorMessage(err), true)
		return
	}
	b.respondMessage(s, i, fmt.Sprintf("Joueur ajouté : `#%s` **%s**", p.Number, p.Name), false)
}

func (b *Bot) handleRemovePlayer(s *discordgo.Session, i *discordgo.Interaction) {
	opts := optionMap(i.ApplicationCommandData().Options)
	query := stringOption(opts, "player")

	p, ok := b.services.Session.FindPlayer(query)
	if !ok {
		b.respondMessage(s, i, fmt.Sprintf("Joueur « %s » introuvable.", query), true)
		return
	}

	if err := b.services.Session.RemovePlayer(p.ID); err != nil {
		b.respondMessage(s, i, sessionErrorMessage(err), true)
		return
	}
	b.respondMessage(s, i, fmt.Sprintf("Joueur retiré : `#%s` **%s**", p.Number, p.Name), false)
}

func (b *Bot) handleStat(s *discordgo.Session, i *discordgo.Interaction) {
	opts := optionMap(i.ApplicationCommandData().Options)
	query := stringOption(opts, "player")

	action, err := models.ParseActionKind(stringOption(opts, "action"))
	if err != nil {
		b.respondMessage(s, i, sessionErrorMessage(err), true)
		return
	}

	subtract := false
	if opt, ok := opts["undo"]; ok {
		subtract = opt.BoolValue()
	}

	target, ok := b.services.Session.FindPlayer(query)
	if !ok {
		b.respondMessage(s, i, fmt.Sprintf("Joueur « %s » introuvable.", query), true)
		return
	}

	p, err := b.services.Session.Dispatch(target.ID, action, subtract)
	if err != nil {
		b.respondMessage(s, i, sessionErrorMessage(err), true)
		return
	}

	fb := feedback.Feedback{PlayerID: p.ID, Action: action, Magnitude: action.Magnitude(subtract)}

	embed := scoreEmbed(b.services.Session.Session(), formatFeedback(fb, p), subtract)
	embed.Fields = append(embed.Fields, &discordgo.MessageEmbedField{Name: "Joueur", Value: formatPlayerLine(p)})
	b.respondEmbed(s, i, embed)
}

func (b *Bot) handleOpponent(s *discordgo.Session, i *discordgo.Interaction) {
	opts := optionMap(i.ApplicationCommandData().Options)

	var score int
	if stringOption(opts, "op") == "dec" {
		score = b.services.Session.DecrementOpponent()
	} else {
		score = b.services.Session.IncrementOpponent()
	}
	b.respondMessage(s, i, fmt.Sprintf("Score adverse : **%d**", score), false)
}

func (b *Bot) handleQuarter(s *discordgo.Session, i *discordgo.Interaction) {
	q := b.services.Session.AdvanceQuarter()
	b.respondMessage(s, i, fmt.Sprintf("Quart-temps : **QT%d**", q), false)
}

func (b *Bot) handleImport(s *discordgo.Session, i *discordgo.Interaction) {
	opts := optionMap(i.ApplicationCommandData().Options)

	if err := b.services.Session.ImportSession(stringOption(opts, "data")); err != nil {
		b.respondMessage(s, i, sessionErrorMessage(err), true)
		return
	}
	b.respondEmbed(s, i, scoreEmbed(b.services.Session.Session(), "Match importé", false))
}

func (b *Bot) handlePastedExport(s *discordgo.Session, m *discordgo.MessageCreate) {
	if err := b.services.Session.ImportSession(m.Content); err != nil {
		s.ChannelMessageSend(m.ChannelID, sessionErrorMessage(err))
		return
	}

	s.ChannelMessageSendEmbed(m.ChannelID, scoreEmbed(b.services.Session.Session(), "Match importé", false))
}

func (b *Bot) handleResetStats(s *discordgo.Session, i *discordgo.Interaction) {
	b.services.Session.ResetStats()
	b.respondMessage(s, i, "Statistiques et score remis à zéro. L'effectif est conservé.", false)
}

func (b *Bot) handleFullReset(s *discordgo.Session, i *discordgo.Interaction) {
	b.services.Session.FullReset()
	b.respondMessage(s, i, "Match effacé. Retour à la configuration.", false)
}

func (b *Bot) handleSyncSheet(s *discordgo.Session, i *discordgo.Interaction) {
	b.deferResponse(s, i)

	url, err := b.services.Report.SyncToGoogleSheet()
	if err != nil {
		b.editResponse(s, i, "Erreur de synchronisation : "+err.Error())
		return
	}

	b.editResponse(s, i, fmt.Sprintf("Feuille mise à jour !\nLien : %s", url))
}

func (b *Bot) rosterList() string {
	var sb strings.Builder
	for _, p := range b.services.Session.Session().Players {
		sb.WriteString(formatPlayerLine(p))
		sb.WriteString("\n")
	}
	return sb.String()
}

func sessionErrorMessage(err error) string {
	switch {
	case errors.Is(err, models.ErrEmptyName):
		return "Le nom du joueur est obligatoire."
	case errors.Is(err, models.ErrMatchStarted):
		return "Impossible : le match a déjà commencé."
	case errors.Is(err, models.ErrPlayerNotFound):
		return "Joueur introuvable."
	case errors.Is(err, models.ErrInvalidActionKind):
		return "Action inconnue."
	case errors.Is(err, models.ErrUnrecognizedFormat):
		return "Format non reconnu. Collez le texte exporté ou un JSON de match."
	default:
		return "Erreur : " + err.Error()
	}
}
