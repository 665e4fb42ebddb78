package models

import (
	"bytes"
	"encoding/json"
	"fmt"
	"time"
)

type Player struct {
	ID          string     `json:"id"`
	Name        string     `json:"name"`
	Number      string     `json:"number"`
	Stats       StatRecord `json:"stats"`
	LastUpdated *int64     `json:"lastUpdated,omitempty"`
}

// UnmarshalJSON accepts the jersey number as a JSON string or a bare number,
// as hand-written rosters often use "number": 23.
func (p *Player) UnmarshalJSON(data []byte) error {
	type plain Player
	aux := struct {
		*plain
		Number json.RawMessage `json:"number"`
	}{plain: (*plain)(p)}

	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}

	number, err := decodeJersey(aux.Number)
	if err != nil {
		return err
	}
	p.Number = number
	return nil
}

func decodeJersey(raw json.RawMessage) (string, error) {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		return "", nil
	}
	if raw[0] == '"' {
		var s string
		if err := json.Unmarshal(raw, &s); err != nil {
			return "", err
		}
		return s, nil
	}
	var n json.Number
	if err := json.Unmarshal(raw, &n); err != nil {
		return "", fmt.Errorf("jersey number must be a string or a number: %w", err)
	}
	return n.String(), nil
}

// Active reports whether the player has anything worth reporting on.
func (p Player) Active() bool {
	return p.Stats.Points > 0 || p.Stats.Rebounds > 0 || p.Stats.Assists > 0 || p.Stats.MinutesPlayed > 0
}

func (p Player) LastUpdatedAt() (time.Time, bool) {
	if p.LastUpdated == nil {
		return time.Time{}, false
	}
	return time.UnixMilli(*p.LastUpdated), true
}

func (p Player) Clone() Player {
	c := p
	if p.LastUpdated != nil {
		ts := *p.LastUpdated
		c.LastUpdated = &ts
	}
	return c
}
