package models

import (
	"encoding/json"
	"testing"
)

func TestPlayerJerseyNumberForms(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"string", `{"id":"1","name":"Léo","number":"23"}`, "23"},
		{"number", `{"id":"1","name":"Léo","number":23}`, "23"},
		{"leading zero string", `{"id":"1","name":"Léo","number":"07"}`, "07"},
		{"null", `{"id":"1","name":"Léo","number":null}`, ""},
		{"absent", `{"id":"1","name":"Léo"}`, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var p Player
			if err := json.Unmarshal([]byte(tt.in), &p); err != nil {
				t.Fatalf("unmarshal: %v", err)
			}
			if p.Number != tt.want || p.Name != "Léo" || p.ID != "1" {
				t.Fatalf("got %+v, want number %q", p, tt.want)
			}
		})
	}
}

func TestPlayerJerseyNumberRejectsObjects(t *testing.T) {
	var p Player
	if err := json.Unmarshal([]byte(`{"name":"Léo","number":{"n":23}}`), &p); err == nil {
		t.Fatalf("expected error for object jersey number")
	}
}

func TestPlayerUnmarshalKeepsStats(t *testing.T) {
	var p Player
	in := `{"id":"1","name":"Léo","number":4,"stats":{"points":12,"rebounds":3},"lastUpdated":1760000000000}`
	if err := json.Unmarshal([]byte(in), &p); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if p.Stats.Points != 12 || p.Stats.Rebounds != 3 || p.LastUpdated == nil || *p.LastUpdated != 1760000000000 {
		t.Fatalf("unexpected player %+v", p)
	}
}
