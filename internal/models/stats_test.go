package models

import (
	"errors"
	"testing"
)

func TestParseActionKind(t *testing.T) {
	tests := []struct {
		in   string
		want ActionKind
	}{
		{in: "ADD_2PT", want: Add2PT},
		{in: "add_3pt", want: Add3PT},
		{in: "lf", want: AddFT},
		{in: " reb ", want: AddREB},
		{in: "Contre", want: AddBLK},
		{in: "min", want: AddMIN},
	}
	for _, tc := range tests {
		got, err := ParseActionKind(tc.in)
		if err != nil {
			t.Fatalf("%q: unexpected error %v", tc.in, err)
		}
		if got != tc.want {
			t.Fatalf("%q: expected %s, got %s", tc.in, tc.want, got)
		}
	}

	if _, err := ParseActionKind("dunk"); !errors.Is(err, ErrInvalidActionKind) {
		t.Fatalf("expected ErrInvalidActionKind, got %v", err)
	}
}

func TestMagnitude(t *testing.T) {
	if Add2PT.Magnitude(false) != 2 || Add2PT.Magnitude(true) != -2 {
		t.Fatalf("unexpected 2pt magnitudes")
	}
	if Add3PT.Magnitude(true) != -3 {
		t.Fatalf("unexpected 3pt subtract magnitude")
	}
	for _, k := range []ActionKind{AddFT, AddREB, AddAST, AddSTL, AddBLK, AddMIN} {
		if k.Magnitude(false) != 1 {
			t.Fatalf("%s: expected magnitude 1", k)
		}
	}
}

func TestClamp(t *testing.T) {
	got := StatRecord{Points: -3, Rebounds: 2, MinutesPlayed: -1}.Clamp()
	want := StatRecord{Rebounds: 2}
	if got != want {
		t.Fatalf("expected %+v, got %+v", want, got)
	}
}
