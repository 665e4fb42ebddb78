package models

const (
	DefaultTeamName     = "Mon Équipe"
	DefaultOpponent     = "Adversaire"
	DefaultLocation     = "Lieu inconnu"
	DefaultChampionship = "Match amical"
)

// Effective returns a copy with display fallbacks filled in. It is meant for
// rendering only; the stored MatchInfo keeps its blanks.
func (m MatchInfo) Effective() MatchInfo {
	m.TeamName = valueOrDefault(m.TeamName, DefaultTeamName)
	m.Opponent = valueOrDefault(m.Opponent, DefaultOpponent)
	m.Location = valueOrDefault(m.Location, DefaultLocation)
	m.Championship = valueOrDefault(m.Championship, DefaultChampionship)
	return m
}

func valueOrDefault(value, defaultValue string) string {
	if value == "" {
		return defaultValue
	}
	return value
}
