package application

import (
	"fmt"
	"strings"

	"baskettracker/internal/models"
)

var demoRoster = []struct{ name, number string }{
	{"Léo", "23"},
	{"Lucas", "8"},
	{"Gabriel", "30"},
	{"Arthur", "11"},
	{"Louis", "5"},
}

var demoMatchInfo = models.MatchInfo{
	TeamName:     "Étoiles Sportives",
	Championship: "Championnat Régional U15",
	Opponent:     "Dragons de Ville",
	Time:         "14:30",
	Location:     "Gymnase Central",
}

// FormatLastAction renders a player's last mutation time, or "" if none.
func FormatLastAction(p models.Player) string {
	t, ok := p.LastUpdatedAt()
	if !ok {
		return ""
	}
	return t.Format(lastActionLayout)
}

func teamTotals(players []models.Player) models.StatRecord {
	var total models.StatRecord
	for _, p := range players {
		total = total.Add(p.Stats)
	}
	return total
}

func freeThrows(s models.StatRecord) string {
	return fmt.Sprintf("%d/%d", s.FreeThrowsMade, s.FreeThrowsAttempted)
}

func renderBoxScore(s models.MatchSession) string {
	info := s.MatchInfo.Effective()

	var sb strings.Builder
	fmt.Fprintf(&sb, "%s VS %s\n", strings.ToUpper(info.TeamName), strings.ToUpper(info.Opponent))
	fmt.Fprintf(&sb, "Score: %d-%d | QT%d\n\n", s.TotalPoints(), s.OpponentScore, s.Quarter)

	const row = "%-16s %3s %3s %3s %3s %3s %5s %3s %3s\n"
	fmt.Fprintf(&sb, row, "Joueur", "PTS", "REB", "AST", "INT", "CTR", "LF", "3PT", "MIN")
	for _, p := range s.Players {
		fmt.Fprintf(&sb, row, truncate(fmt.Sprintf("#%s %s", p.Number, p.Name), 16),
			itoa(p.Stats.Points), itoa(p.Stats.Rebounds), itoa(p.Stats.Assists),
			itoa(p.Stats.Steals), itoa(p.Stats.Blocks), freeThrows(p.Stats),
			itoa(p.Stats.ThreePointersMade), itoa(p.Stats.MinutesPlayed))
	}

	t := teamTotals(s.Players)
	fmt.Fprintf(&sb, row, "Total",
		itoa(t.Points), itoa(t.Rebounds), itoa(t.Assists),
		itoa(t.Steals), itoa(t.Blocks), freeThrows(t),
		itoa(t.ThreePointersMade), itoa(t.MinutesPlayed))

	return sb.String()
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n-1]) + "…"
}

func itoa(n int) string {
	return fmt.Sprintf("%d", n)
}
