package discord

import (
	"fmt"
	"strings"

	"baskettracker/internal/feedback"
	"baskettracker/internal/models"

	"github.com/bwmarrin/discordgo"
)

func actionChoices() []*discordgo.ApplicationCommandOptionChoice {
	choices := make([]*discordgo.ApplicationCommandOptionChoice, 0, len(models.ActionKinds))
	for _, k := range models.ActionKinds {
		choices = append(choices, &discordgo.ApplicationCommandOptionChoice{Name: k.Label(), Value: string(k)})
	}
	return choices
}

func optionMap(options []*discordgo.ApplicationCommandInteractionDataOption) map[string]*discordgo.ApplicationCommandInteractionDataOption {
	m := make(map[string]*discordgo.ApplicationCommandInteractionDataOption, len(options))
	for _, opt := range options {
		m[opt.Name] = opt
	}
	return m
}

func stringOption(opts map[string]*discordgo.ApplicationCommandInteractionDataOption, name string) string {
	if opt, ok := opts[name]; ok {
		return strings.TrimSpace(opt.StringValue())
	}
	return ""
}

// mergeMatchInfo overlays the provided fields on the current details.
func mergeMatchInfo(current models.MatchInfo, opts map[string]*discordgo.ApplicationCommandInteractionDataOption) models.MatchInfo {
	fields := []struct {
		name string
		dst  *string
	}{
		{"team", &current.TeamName},
		{"opponent", &current.Opponent},
		{"championship", &current.Championship},
		{"location", &current.Location},
		{"date", &current.Date},
		{"time", &current.Time},
	}
	for _, f := range fields {
		if v := stringOption(opts, f.name); v != "" {
			*f.dst = v
		}
	}
	return current
}

func formatFeedback(fb feedback.Feedback, p models.Player) string {
	return fmt.Sprintf("#%s %s %+d %s", p.Number, p.Name, fb.Magnitude, fb.Action.Label())
}

func formatPlayerLine(p models.Player) string {
	st := p.Stats
	return fmt.Sprintf("`#%s` **%s** | %d pts, %d reb, %d ast", p.Number, p.Name, st.Points, st.Rebounds, st.Assists)
}

func scoreEmbed(session models.MatchSession, highlight string, subtract bool) *discordgo.MessageEmbed {
	info := session.MatchInfo.Effective()

	color := colorOrange
	if highlight != "" {
		color = colorGreen
		if subtract {
			color = colorRed
		}
	}

	status := "Configuration"
	if session.HasStarted {
		status = fmt.Sprintf("QT%d", session.Quarter)
	}

	embed := &discordgo.MessageEmbed{
		Title: fmt.Sprintf("%s %d - %d %s", info.TeamName, session.TotalPoints(), session.OpponentScore, info.Opponent),
		Color: color,
		Fields: []*discordgo.MessageEmbedField{
			{Name: "Période", Value: status, Inline: true},
			{Name: "Lieu", Value: info.Location, Inline: true},
			{Name: "Compétition", Value: info.Championship, Inline: true},
		},
		Footer: &discordgo.MessageEmbedFooter{Text: fmt.Sprintf("%s à %s", info.Date, info.Time)},
	}
	if highlight != "" {
		embed.Description = "**" + highlight + "**"
	}
	return embed
}

func codeBlock(s string) string {
	return "```\n" + s + "```"
}

func truncateMessage(msg string) string {
	if len(msg) <= maxMessageLength {
		return msg
	}
	return strings.ToValidUTF8(msg[:maxMessageTruncation], "") + "...\n"
}
