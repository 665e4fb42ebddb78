package models

import (
	"fmt"
	"strings"
)

type ActionKind string

const (
	Add2PT ActionKind = "ADD_2PT"
	Add3PT ActionKind = "ADD_3PT"
	AddFT  ActionKind = "ADD_FT"
	AddREB ActionKind = "ADD_REB"
	AddAST ActionKind = "ADD_AST"
	AddSTL ActionKind = "ADD_STL"
	AddBLK ActionKind = "ADD_BLK"
	AddMIN ActionKind = "ADD_MIN"
)

// ActionKinds lists every action in menu order.
var ActionKinds = []ActionKind{Add2PT, Add3PT, AddFT, AddREB, AddAST, AddSTL, AddBLK, AddMIN}

var actionLabels = map[ActionKind]string{
	Add2PT: "2 Pts",
	Add3PT: "3 Pts",
	AddFT:  "LF",
	AddREB: "Rebond",
	AddAST: "Passe D.",
	AddSTL: "Interc.",
	AddBLK: "Contre",
	AddMIN: "Min",
}

// short aliases accepted from chat commands
var actionAliases = map[string]ActionKind{
	"2pt": Add2PT, "2": Add2PT,
	"3pt": Add3PT, "3": Add3PT,
	"ft": AddFT, "lf": AddFT,
	"reb": AddREB, "rebond": AddREB,
	"ast": AddAST, "passe": AddAST,
	"stl": AddSTL, "interc": AddSTL,
	"blk": AddBLK, "contre": AddBLK,
	"min": AddMIN,
}

func ParseActionKind(s string) (ActionKind, error) {
	s = strings.TrimSpace(s)
	k := ActionKind(strings.ToUpper(s))
	if k.Valid() {
		return k, nil
	}
	if k, ok := actionAliases[strings.ToLower(s)]; ok {
		return k, nil
	}
	return "", fmt.Errorf("%w: %q", ErrInvalidActionKind, s)
}

func (k ActionKind) Valid() bool {
	_, ok := actionLabels[k]
	return ok
}

func (k ActionKind) Label() string {
	if l, ok := actionLabels[k]; ok {
		return l
	}
	return string(k)
}

// Canonical returns the unsigned magnitude of one occurrence of the event.
func (k ActionKind) Canonical() int {
	switch k {
	case Add2PT:
		return 2
	case Add3PT:
		return 3
	case AddFT, AddREB, AddAST, AddSTL, AddBLK, AddMIN:
		return 1
	default:
		return 0
	}
}

// Magnitude is the signed value dispatched for the kind; subtract mode negates it.
func (k ActionKind) Magnitude(subtract bool) int {
	if subtract {
		return -k.Canonical()
	}
	return k.Canonical()
}

type StatRecord struct {
	Points              int `json:"points"`
	Rebounds            int `json:"rebounds"`
	Assists             int `json:"assists"`
	Steals              int `json:"steals"`
	Blocks              int `json:"blocks"`
	FreeThrowsMade      int `json:"freeThrowsMade"`
	FreeThrowsAttempted int `json:"freeThrowsAttempted"`
	ThreePointersMade   int `json:"threePointersMade"`
	MinutesPlayed       int `json:"minutesPlayed"`
}

// Clamp floors every counter at zero.
func (s StatRecord) Clamp() StatRecord {
	for _, f := range s.fields() {
		if *f < 0 {
			*f = 0
		}
	}
	return s
}

func (s StatRecord) IsZero() bool {
	return s == StatRecord{}
}

func (s *StatRecord) fields() []*int {
	return []*int{
		&s.Points, &s.Rebounds, &s.Assists, &s.Steals, &s.Blocks,
		&s.FreeThrowsMade, &s.FreeThrowsAttempted, &s.ThreePointersMade, &s.MinutesPlayed,
	}
}

func (s StatRecord) Add(o StatRecord) StatRecord {
	return StatRecord{
		Points:              s.Points + o.Points,
		Rebounds:            s.Rebounds + o.Rebounds,
		Assists:             s.Assists + o.Assists,
		Steals:              s.Steals + o.Steals,
		Blocks:              s.Blocks + o.Blocks,
		FreeThrowsMade:      s.FreeThrowsMade + o.FreeThrowsMade,
		FreeThrowsAttempted: s.FreeThrowsAttempted + o.FreeThrowsAttempted,
		ThreePointersMade:   s.ThreePointersMade + o.ThreePointersMade,
		MinutesPlayed:       s.MinutesPlayed + o.MinutesPlayed,
	}
}
