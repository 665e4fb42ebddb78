package telegram

import (
	"errors"
	"testing"

	"baskettracker/internal/models"
)

func TestParseAddArgs(t *testing.T) {
	tests := []struct {
		args, name, number string
	}{
		{"Léo 23", "Léo", "23"},
		{"Léo Martin #7", "Léo Martin", "7"},
		{"Gabriel", "Gabriel", ""},
		{"  ", "", ""},
		{"23", "23", ""},
	}
	for _, tt := range tests {
		name, number := parseAddArgs(tt.args)
		if name != tt.name || number != tt.number {
			t.Fatalf("%q: got (%q, %q), want (%q, %q)", tt.args, name, number, tt.name, tt.number)
		}
	}
}

func TestParseStatArgs(t *testing.T) {
	query, action, err := parseStatArgs("Léo Martin 3pt")
	if err != nil || query != "Léo Martin" || action != models.Add3PT {
		t.Fatalf("got (%q, %q, %v)", query, action, err)
	}

	if _, action, err := parseStatArgs("23 ADD_REB"); err != nil || action != models.AddREB {
		t.Fatalf("canonical kind not accepted: %q, %v", action, err)
	}

	if _, _, err := parseStatArgs("23 dunk"); !errors.Is(err, models.ErrInvalidActionKind) {
		t.Fatalf("expected ErrInvalidActionKind, got %v", err)
	}

	if _, _, err := parseStatArgs("23"); err == nil {
		t.Fatalf("expected usage error")
	}
}

func TestParseInfoArgs(t *testing.T) {
	info, err := parseInfoArgs(models.MatchInfo{TeamName: "Étoiles"}, "adversaire Dragons de Ville")
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if info.TeamName != "Étoiles" || info.Opponent != "Dragons de Ville" {
		t.Fatalf("unexpected info %+v", info)
	}

	if _, err := parseInfoArgs(models.MatchInfo{}, "couleur rouge"); err == nil {
		t.Fatalf("expected unknown field error")
	}
	if _, err := parseInfoArgs(models.MatchInfo{}, "lieu"); err == nil {
		t.Fatalf("expected missing value error")
	}
}

func TestErrorMessage(t *testing.T) {
	if got := errorMessage(models.ErrMatchStarted); got != "Impossible : le match a déjà commencé." {
		t.Fatalf("unexpected message %q", got)
	}
}
