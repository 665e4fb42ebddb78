package scoreboard

import "testing"

func TestQuarterCycles(t *testing.T) {
	s := New()
	want := []int{2, 3, 4, 1, 2}
	for i, w := range want {
		if got := s.AdvanceQuarter(); got != w {
			t.Fatalf("step %d: expected quarter %d, got %d", i, w, got)
		}
	}
}

func TestOpponentScoreFloor(t *testing.T) {
	s := New()
	if got := s.DecrementOpponent(); got != 0 {
		t.Fatalf("expected 0, got %d", got)
	}
	s.IncrementOpponent()
	s.IncrementOpponent()
	if got := s.DecrementOpponent(); got != 1 {
		t.Fatalf("expected 1, got %d", got)
	}
}

func TestRestoreNormalises(t *testing.T) {
	tests := []struct {
		name           string
		score, quarter int
		wantScore      int
		wantQuarter    int
	}{
		{name: "valid", score: 42, quarter: 3, wantScore: 42, wantQuarter: 3},
		{name: "negative score", score: -5, quarter: 2, wantScore: 0, wantQuarter: 2},
		{name: "quarter too high", score: 1, quarter: 7, wantScore: 1, wantQuarter: 1},
		{name: "quarter zero", score: 1, quarter: 0, wantScore: 1, wantQuarter: 1},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			s := New()
			s.Restore(tc.score, tc.quarter)
			if s.OpponentScore() != tc.wantScore || s.Quarter() != tc.wantQuarter {
				t.Fatalf("expected %d/%d, got %d/%d", tc.wantScore, tc.wantQuarter, s.OpponentScore(), s.Quarter())
			}
		})
	}
}

func TestReset(t *testing.T) {
	s := New()
	s.IncrementOpponent()
	s.AdvanceQuarter()
	s.Reset()
	if s.OpponentScore() != 0 || s.Quarter() != 1 {
		t.Fatalf("expected 0/1 after reset, got %d/%d", s.OpponentScore(), s.Quarter())
	}
}
