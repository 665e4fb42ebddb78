package ai

import (
	"encoding/json"
	"fmt"

	"baskettracker/internal/models"
)

const (
	// AI Model configuration
	geminiModel   = "gemini-2.5-flash"
	aiTemperature = 0.7
)

// ReportPrompt is filled with team, opponent, location, date, time,
// competition and the JSON player stats.
const ReportPrompt = `Agis comme un coach de basketball professionnel et charismatique.
Voici les détails du match :
- Équipe : %s
- Adversaire : %s
- Lieu : %s
- Date : %s à %s
- Compétition : %s

Statistiques des joueurs :
%s

Génère un résumé de match de haut niveau (en français).
1. Un titre percutant citant explicitement les deux équipes, la date et le lieu (ex: Rapport : [Team] vs [Adversaire] - [Date] @ [Lieu]).
2. Analyse du MVP du match avec une justification technique précise basée sur les chiffres.
3. Analyse tactique globale (points forts, axes de progression).
4. Un message de motivation inspirant pour la suite.

Utilise des emojis de basketball 🏀🔥. Formatte la réponse en Markdown élégant.`

type playerSummary struct {
	Name   string            `json:"name"`
	Number string            `json:"number"`
	Stats  models.StatRecord `json:"stats"`
}

func BuildReportPrompt(players []models.Player, info models.MatchInfo) (string, error) {
	summary := make([]playerSummary, 0, len(players))
	for _, p := range players {
		summary = append(summary, playerSummary{Name: p.Name, Number: p.Number, Stats: p.Stats})
	}

	stats, err := json.MarshalIndent(summary, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to encode player stats: %w", err)
	}

	e := info.Effective()
	return fmt.Sprintf(ReportPrompt, e.TeamName, e.Opponent, e.Location, e.Date, e.Time, e.Championship, stats), nil
}
