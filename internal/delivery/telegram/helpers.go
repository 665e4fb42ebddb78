package telegram

import (
	"fmt"
	"strings"
	"unicode"

	"baskettracker/internal/models"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

const maxMessageLength = 4096

func (b *Bot) isAdmin(id int64) bool {
	_, ok := b.adminIDs[id]
	return ok
}

func (b *Bot) sendMessage(chatID int64, text string) {
	if text == "" {
		return
	}
	if len(text) > maxMessageLength {
		text = strings.ToValidUTF8(text[:maxMessageLength-4], "") + "\n..."
	}

	msg := tgbotapi.NewMessage(chatID, text)
	msg.ReplyMarkup = tgbotapi.NewRemoveKeyboard(true)
	if _, err := b.bot.Send(msg); err != nil {
		b.logger.Error("failed to send telegram message: %v", err)
	}
}

func (b *Bot) sendDocument(chatID int64, name string, data []byte) {
	doc := tgbotapi.NewDocument(chatID, tgbotapi.FileBytes{Name: name, Bytes: data})
	if _, err := b.bot.Send(doc); err != nil {
		b.logger.Error("failed to send telegram document: %v", err)
	}
}

// parseAddArgs splits "Léo Martin 23" into name and jersey number. A trailing
// token made of digits is taken as the number.
func parseAddArgs(args string) (name, number string) {
	fields := strings.Fields(args)
	if len(fields) > 1 && isNumber(fields[len(fields)-1]) {
		return strings.Join(fields[:len(fields)-1], " "), strings.TrimPrefix(fields[len(fields)-1], "#")
	}
	return strings.Join(fields, " "), ""
}

// parseStatArgs reads "<player> <action>", the player being a number or a name.
func parseStatArgs(args string) (query string, action models.ActionKind, err error) {
	fields := strings.Fields(args)
	if len(fields) < 2 {
		return "", "", fmt.Errorf("usage: <joueur> <action>")
	}

	action, err = models.ParseActionKind(fields[len(fields)-1])
	if err != nil {
		return "", "", err
	}
	return strings.Join(fields[:len(fields)-1], " "), action, nil
}

// parseInfoArgs reads "<field> <value>" and applies it to info.
func parseInfoArgs(info models.MatchInfo, args string) (models.MatchInfo, error) {
	field, value, _ := strings.Cut(strings.TrimSpace(args), " ")
	value = strings.TrimSpace(value)
	if value == "" {
		return info, fmt.Errorf("usage: <champ> <valeur>")
	}

	switch strings.ToLower(field) {
	case "team", "equipe", "équipe":
		info.TeamName = value
	case "opponent", "adversaire":
		info.Opponent = value
	case "championship", "competition", "compétition":
		info.Championship = value
	case "location", "lieu":
		info.Location = value
	case "date":
		info.Date = value
	case "time", "heure":
		info.Time = value
	default:
		return info, fmt.Errorf("champ inconnu: %s", field)
	}
	return info, nil
}

func isNumber(s string) bool {
	s = strings.TrimPrefix(s, "#")
	if s == "" {
		return false
	}
	for _, r := range s {
		if !unicode.IsDigit(r) {
			return false
		}
	}
	return true
}

func formatPlayer(p models.Player) string {
	st := p.Stats
	return fmt.Sprintf("#%s %s: %d pts, %d reb, %d ast, %d int, %d ctr", p.Number, p.Name, st.Points, st.Rebounds, st.Assists, st.Steals, st.Blocks)
}

func formatScore(s models.MatchSession) string {
	info := s.MatchInfo.Effective()
	return fmt.Sprintf("%s %d - %d %s (QT%d)", info.TeamName, s.TotalPoints(), s.OpponentScore, info.Opponent, s.Quarter)
}
