package snapshot

import (
	"encoding/base64"
	"encoding/json"
	"fmt"
	"regexp"
	"strings"

	"baskettracker/internal/models"
)

const (
	// MarkerPrefix opens the base64 session payload appended to exports.
	MarkerPrefix = "<!-- JSON_DATA:"
	markerSuffix = " -->"
)

var markerRegex = regexp.MustCompile(`<!-- JSON_DATA:(.*?) -->`)

// Export renders the shareable summary with the full session embedded as a
// base64 marker at the end.
func Export(s models.MatchSession) (string, error) {
	s.HasStarted = true
	payload, err := Encode(s)
	if err != nil {
		return "", err
	}

	info := s.MatchInfo.Effective()

	var sb strings.Builder
	fmt.Fprintf(&sb, "🏀 *Stats Match - %s vs %s*\n", info.TeamName, info.Opponent)
	fmt.Fprintf(&sb, "📅 %s à %s\n", info.Date, info.Time)
	fmt.Fprintf(&sb, "📍 %s\n", info.Location)
	fmt.Fprintf(&sb, "🏆 %s\n\n", info.Championship)
	fmt.Fprintf(&sb, "*SCORE FINAL: %d - %d (QT%d)*\n\n", s.TotalPoints(), s.OpponentScore, s.Quarter)
	sb.WriteString("| Joueur | Pts | Reb | Ast |\n")
	sb.WriteString("| :--- | :---: | :---: | :---: |\n")
	for _, p := range s.Players {
		fmt.Fprintf(&sb, "| %s | %d | %d | %d |\n", p.Name, p.Stats.Points, p.Stats.Rebounds, p.Stats.Assists)
	}
	sb.WriteString("\n")
	sb.WriteString(MarkerPrefix)
	sb.WriteString(base64.StdEncoding.EncodeToString(payload))
	sb.WriteString(markerSuffix)

	return sb.String(), nil
}

// Import recovers a session from pasted text: the embedded marker first, the
// whole text as raw JSON otherwise. Markers are tried from the end since the
// real one always follows the table, where player names may contain look-alikes.
func Import(text string) (Patch, error) {
	matches := markerRegex.FindAllStringSubmatch(text, -1)
	for i := len(matches) - 1; i >= 0; i-- {
		if patch, ok := decodeMarker(matches[i][1]); ok {
			return patch, nil
		}
	}

	patch, err := parseDocument([]byte(text))
	if err != nil {
		return Patch{}, fmt.Errorf("%w: no embedded data and not a session document", models.ErrUnrecognizedFormat)
	}
	return patch, nil
}

func decodeMarker(payload string) (Patch, bool) {
	payload = strings.TrimSpace(payload)
	if payload == "" {
		return Patch{}, false
	}
	data, err := base64.StdEncoding.DecodeString(payload)
	if err != nil || !json.Valid(data) {
		return Patch{}, false
	}
	patch, err := parseDocument(data)
	if err != nil {
		return Patch{}, false
	}
	return patch, true
}
