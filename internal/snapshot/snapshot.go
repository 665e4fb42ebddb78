package snapshot

import (
	"bytes"
	"encoding/json"
	"fmt"

	"baskettracker/internal/models"

	"github.com/google/uuid"
)

// Key is the fixed name the running session is persisted under.
const Key = "basket-tracker-current-game"

// Patch is a decoded session document. Nil fields were absent from the input
// and must leave the current value alone.
type Patch struct {
	Players       []models.Player
	HasStarted    *bool
	OpponentScore *int
	Quarter       *int
	MatchInfo     *models.MatchInfo
}

type document struct {
	Players       json.RawMessage   `json:"players"`
	HasStarted    *bool             `json:"hasStarted"`
	OpponentScore *int              `json:"opponentScore"`
	Quarter       *int              `json:"quarter"`
	MatchInfo     *models.MatchInfo `json:"matchInfo"`
}

// Encode serialises the session for the snapshot store.
func Encode(s models.MatchSession) ([]byte, error) {
	if s.Players == nil {
		s.Players = []models.Player{}
	}
	data, err := json.Marshal(s)
	if err != nil {
		return nil, fmt.Errorf("marshaling session: %w", err)
	}
	return data, nil
}

// Decode reads a persisted snapshot. Only the object form is accepted.
func Decode(data []byte) (Patch, error) {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 || trimmed[0] != '{' {
		return Patch{}, models.ErrUnrecognizedFormat
	}
	return parseDocument(trimmed)
}

// parseDocument accepts either a bare player list or an object carrying a
// players array.
func parseDocument(data []byte) (Patch, error) {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 {
		return Patch{}, models.ErrUnrecognizedFormat
	}

	switch trimmed[0] {
	case '[':
		var players []models.Player
		if err := json.Unmarshal(trimmed, &players); err != nil {
			return Patch{}, fmt.Errorf("%w: %v", models.ErrUnrecognizedFormat, err)
		}
		return Patch{Players: sanitizePlayers(players)}, nil
	case '{':
		var doc document
		if err := json.Unmarshal(trimmed, &doc); err != nil {
			return Patch{}, fmt.Errorf("%w: %v", models.ErrUnrecognizedFormat, err)
		}
		raw := bytes.TrimSpace(doc.Players)
		if len(raw) == 0 || raw[0] != '[' {
			return Patch{}, fmt.Errorf("%w: missing players list", models.ErrUnrecognizedFormat)
		}
		var players []models.Player
		if err := json.Unmarshal(raw, &players); err != nil {
			return Patch{}, fmt.Errorf("%w: %v", models.ErrUnrecognizedFormat, err)
		}
		return Patch{
			Players:       sanitizePlayers(players),
			HasStarted:    doc.HasStarted,
			OpponentScore: doc.OpponentScore,
			Quarter:       doc.Quarter,
			MatchInfo:     doc.MatchInfo,
		}, nil
	default:
		return Patch{}, models.ErrUnrecognizedFormat
	}
}

// sanitizePlayers restores the invariants a hand-edited document may break.
func sanitizePlayers(players []models.Player) []models.Player {
	out := make([]models.Player, len(players))
	for i, p := range players {
		p.Stats = p.Stats.Clamp()
		if p.ID == "" {
			p.ID = uuid.NewString()
		}
		if p.Number == "" {
			p.Number = "0"
		}
		out[i] = p
	}
	return out
}
