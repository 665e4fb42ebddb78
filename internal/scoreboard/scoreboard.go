package scoreboard

const (
	FirstQuarter = 1
	LastQuarter  = 4
)

// Scoreboard tracks what is not attributable to a player: the opponent's
// points and the running quarter.
type Scoreboard struct {
	opponentScore int
	quarter       int
}

func New() *Scoreboard {
	return &Scoreboard{quarter: FirstQuarter}
}

func (s *Scoreboard) OpponentScore() int { return s.opponentScore }

func (s *Scoreboard) Quarter() int { return s.quarter }

func (s *Scoreboard) IncrementOpponent() int {
	s.opponentScore++
	return s.opponentScore
}

func (s *Scoreboard) DecrementOpponent() int {
	if s.opponentScore > 0 {
		s.opponentScore--
	}
	return s.opponentScore
}

// AdvanceQuarter wraps from the fourth quarter back to the first.
func (s *Scoreboard) AdvanceQuarter() int {
	if s.quarter >= LastQuarter {
		s.quarter = FirstQuarter
	} else {
		s.quarter++
	}
	return s.quarter
}

// Restore loads persisted values, normalising anything out of range.
func (s *Scoreboard) Restore(opponentScore, quarter int) {
	s.opponentScore = max(opponentScore, 0)
	if quarter < FirstQuarter || quarter > LastQuarter {
		quarter = FirstQuarter
	}
	s.quarter = quarter
}

func (s *Scoreboard) Reset() {
	s.opponentScore = 0
	s.quarter = FirstQuarter
}
