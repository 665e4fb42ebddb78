package models

import "time"

const (
	dateLayout = "2006-01-02"
	timeLayout = "15:04"
)

type MatchInfo struct {
	TeamName     string `json:"teamName"`
	Championship string `json:"championship"`
	Opponent     string `json:"opponent"`
	Date         string `json:"date"`
	Time         string `json:"time"`
	Location     string `json:"location"`
}

// NewMatchInfo returns blank match info dated at now.
func NewMatchInfo(now time.Time) MatchInfo {
	return MatchInfo{
		Date: now.Format(dateLayout),
		Time: now.Format(timeLayout),
	}
}

type MatchSession struct {
	Players       []Player  `json:"players"`
	HasStarted    bool      `json:"hasStarted"`
	OpponentScore int       `json:"opponentScore"`
	Quarter       int       `json:"quarter"`
	MatchInfo     MatchInfo `json:"matchInfo"`
}

func (s MatchSession) TotalPoints() int {
	total := 0
	for _, p := range s.Players {
		total += p.Stats.Points
	}
	return total
}

// ShouldPersist reports whether the session carries anything worth a snapshot.
func (s MatchSession) ShouldPersist() bool {
	return s.HasStarted || len(s.Players) > 0
}
