package telegram

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"baskettracker/internal/models"
	"baskettracker/internal/snapshot"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

const (
	reportTimeout = 60 * time.Second

	helpText = "Commandes :\n\n" +
		"/score - Tableau de marque\n" +
		"/box - Feuille de stats\n" +
		"/export - Texte partageable\n" +
		"/report - Analyse de l'assistant coach\n" +
		"/excel - Feuille de match Excel\n\n" +
		"Admins :\n" +
		"/add [nom] [numéro] - Ajouter un joueur\n" +
		"/remove [joueur] - Retirer un joueur (avant le match)\n" +
		"/info [champ] [valeur] - team, opponent, championship, location, date, time\n" +
		"/quickfill - Effectif de démonstration\n" +
		"/begin - Démarrer le match\n" +
		"/stat [joueur] [action] - ex: /stat 23 3pt\n" +
		"/undo [joueur] [action] - Correction\n" +
		"/opp [+|-] - Score adverse\n" +
		"/quarter - Quart-temps suivant\n" +
		"/import [texte] - Importer un match\n" +
		"/reset_stats - Stats à zéro\n" +
		"/full_reset - Tout effacer\n" +
		"/sheet - Synchroniser Google Sheet"
)

func (b *Bot) handleMessage(ctx context.Context, msg *tgbotapi.Message) {
	chatID := msg.Chat.ID
	admin := msg.From != nil && b.isAdmin(msg.From.ID)

	if !msg.IsCommand() {
		if admin && strings.Contains(msg.Text, snapshot.MarkerPrefix) {
			b.handleImport(chatID, msg.Text)
		}
		return
	}

	args := msg.CommandArguments()

	switch msg.Command() {
	case "start", "help":
		b.sendMessage(chatID, helpText)
		return
	case "score":
		b.sendMessage(chatID, b.scoreText())
		return
	case "box":
		b.sendMessage(chatID, b.services.Report.BoxScore())
		return
	case "export":
		b.handleExport(chatID)
		return
	case "report":
		b.handleReport(ctx, chatID)
		return
	case "excel":
		b.handleExcel(chatID)
		return
	}

	if !admin {
		b.sendMessage(chatID, "Vous n'avez pas les droits.")
		return
	}

	switch msg.Command() {
	case "add":
		b.handleAdd(chatID, args)
	case "remove":
		b.handleRemove(chatID, args)
	case "info":
		b.handleInfo(chatID, args)
	case "quickfill":
		b.handleQuickFill(chatID)
	case "begin":
		b.services.Session.StartMatch()
		b.sendMessage(chatID, "Coup d'envoi !\n"+b.scoreText())
	case "stat":
		b.handleStat(chatID, args, false)
	case "undo":
		b.handleStat(chatID, args, true)
	case "opp":
		b.handleOpponent(chatID, args)
	case "quarter":
		b.sendMessage(chatID, fmt.Sprintf("Quart-temps : QT%d", b.services.Session.AdvanceQuarter()))
	case "import":
		b.handleImport(chatID, args)
	case "reset_stats":
		b.services.Session.ResetStats()
		b.sendMessage(chatID, "Statistiques et score remis à zéro. L'effectif est conservé.")
	case "full_reset":
		b.services.Session.FullReset()
		b.sendMessage(chatID, "Match effacé. Retour à la configuration.")
	case "sheet":
		b.handleSheet(chatID)
	default:
		b.sendMessage(chatID, "Commande inconnue. /help")
	}
}

func (b *Bot) scoreText() string {
	session := b.services.Session.Session()
	text := formatScore(session)

	if fb, ok := b.services.Session.Feedback(); ok {
		if p, found := b.services.Session.Player(fb.PlayerID); found {
			text += fmt.Sprintf("\nDernière action : #%s %s %+d %s", p.Number, p.Name, fb.Magnitude, fb.Action.Label())
		}
	}
	return text
}

func (b *Bot) handleExport(chatID int64) {
	text, err := b.services.Session.ExportSession()
	if err != nil {
		b.sendMessage(chatID, "Erreur d'export : "+err.Error())
		return
	}

	if len(text) > maxMessageLength {
		b.sendDocument(chatID, "match.md", []byte(text))
		return
	}
	b.sendMessage(chatID, text)
}

func (b *Bot) handleReport(ctx context.Context, chatID int64) {
	b.bot.Send(tgbotapi.NewChatAction(chatID, tgbotapi.ChatTyping))

	ctx, cancel := context.WithTimeout(ctx, reportTimeout)
	defer cancel()

	b.sendMessage(chatID, b.services.Report.Narrative(ctx))
}

func (b *Bot) handleExcel(chatID int64) {
	data, err := b.services.Report.ExcelBoxScore()
	if err != nil {
		b.logger.Error("Excel export error: %v", err)
		b.sendMessage(chatID, "Erreur d'export Excel : "+err.Error())
		return
	}
	b.sendDocument(chatID, "feuille-de-match.xlsx", data)
}

func (b *Bot) handleAdd(chatID int64, args string) {
	name, number := parseAddArgs(args)

	p, err := b.services.Session.AddPlayer(name, number)
	if err != nil {
		b.sendMessage(chatID, errorMessage(err))
		return
	}
	b.sendMessage(chatID, fmt.Sprintf("Joueur ajouté : #%s %s", p.Number, p.Name))
}

func (b *Bot) handleRemove(chatID int64, args string) {
	p, ok := b.services.Session.FindPlayer(args)
	if !ok {
		b.sendMessage(chatID, fmt.Sprintf("Joueur « %s » introuvable.", strings.TrimSpace(args)))
		return
	}

	if err := b.services.Session.RemovePlayer(p.ID); err != nil {
		b.sendMessage(chatID, errorMessage(err))
		return
	}
	b.sendMessage(chatID, fmt.Sprintf("Joueur retiré : #%s %s", p.Number, p.Name))
}

func (b *Bot) handleInfo(chatID int64, args string) {
	info, err := parseInfoArgs(b.services.Session.Session().MatchInfo, args)
	if err != nil {
		b.sendMessage(chatID, err.Error())
		return
	}

	if err := b.services.Session.UpdateMatchInfo(info); err != nil {
		b.sendMessage(chatID, errorMessage(err))
		return
	}
	b.sendMessage(chatID, formatScore(b.services.Session.Session()))
}

func (b *Bot) handleQuickFill(chatID int64) {
	if err := b.services.Session.QuickFill(); err != nil {
		b.sendMessage(chatID, errorMessage(err))
		return
	}

	var sb strings.Builder
	sb.WriteString("Effectif de démonstration ajouté :\n")
	for _, p := range b.services.Session.Session().Players {
		sb.WriteString(fmt.Sprintf("#%s %s\n", p.Number, p.Name))
	}
	b.sendMessage(chatID, sb.String())
}

func (b *Bot) handleStat(chatID int64, args string, subtract bool) {
	query, action, err := parseStatArgs(args)
	if err != nil {
		b.sendMessage(chatID, errorMessage(err))
		return
	}

	target, ok := b.services.Session.FindPlayer(query)
	if !ok {
		b.sendMessage(chatID, fmt.Sprintf("Joueur « %s » introuvable.", query))
		return
	}

	p, err := b.services.Session.Dispatch(target.ID, action, subtract)
	if err != nil {
		b.sendMessage(chatID, errorMessage(err))
		return
	}

	b.sendMessage(chatID, fmt.Sprintf("%+d %s\n%s\n%s", action.Magnitude(subtract), action.Label(), formatPlayer(p), formatScore(b.services.Session.Session())))
}

func (b *Bot) handleOpponent(chatID int64, args string) {
	var score int
	if strings.TrimSpace(args) == "-" {
		score = b.services.Session.DecrementOpponent()
	} else {
		score = b.services.Session.IncrementOpponent()
	}
	b.sendMessage(chatID, fmt.Sprintf("Score adverse : %d", score))
}

func (b *Bot) handleImport(chatID int64, text string) {
	if err := b.services.Session.ImportSession(text); err != nil {
		b.sendMessage(chatID, errorMessage(err))
		return
	}
	b.sendMessage(chatID, "Match importé.\n"+formatScore(b.services.Session.Session()))
}

func (b *Bot) handleSheet(chatID int64) {
	url, err := b.services.Report.SyncToGoogleSheet()
	if err != nil {
		b.sendMessage(chatID, "Erreur de synchronisation : "+err.Error())
		return
	}
	b.sendMessage(chatID, "Feuille mise à jour !\n"+url)
}

func errorMessage(err error) string {
	switch {
	case errors.Is(err, models.ErrEmptyName):
		return "Le nom du joueur est obligatoire."
	case errors.Is(err, models.ErrMatchStarted):
		return "Impossible : le match a déjà commencé."
	case errors.Is(err, models.ErrPlayerNotFound):
		return "Joueur introuvable."
	case errors.Is(err, models.ErrInvalidActionKind):
		return "Action inconnue. Actions : 2pt, 3pt, lf, reb, ast, stl, blk, min."
	case errors.Is(err, models.ErrUnrecognizedFormat):
		return "Format non reconnu. Collez le texte exporté ou un JSON de match."
	default:
		return "Erreur : " + err.Error()
	}
}
