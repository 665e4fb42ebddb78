package reducer

import (
	"errors"
	"math/rand"
	"testing"

	"baskettracker/internal/models"
)

func mustApply(t *testing.T, rec models.StatRecord, action models.ActionKind, magnitude int) models.StatRecord {
	t.Helper()
	next, err := Apply(rec, action, magnitude)
	if err != nil {
		t.Fatalf("apply %s(%d): %v", action, magnitude, err)
	}
	return next
}

func TestApplyFieldEffects(t *testing.T) {
	tests := []struct {
		name      string
		action    models.ActionKind
		magnitude int
		want      models.StatRecord
	}{
		{name: "two pointer", action: models.Add2PT, magnitude: 2, want: models.StatRecord{Points: 2}},
		{name: "three pointer", action: models.Add3PT, magnitude: 3, want: models.StatRecord{Points: 3, ThreePointersMade: 1}},
		{name: "free throw", action: models.AddFT, magnitude: 1, want: models.StatRecord{Points: 1, FreeThrowsMade: 1, FreeThrowsAttempted: 1}},
		{name: "rebound", action: models.AddREB, magnitude: 1, want: models.StatRecord{Rebounds: 1}},
		{name: "assist", action: models.AddAST, magnitude: 1, want: models.StatRecord{Assists: 1}},
		{name: "steal", action: models.AddSTL, magnitude: 1, want: models.StatRecord{Steals: 1}},
		{name: "block", action: models.AddBLK, magnitude: 1, want: models.StatRecord{Blocks: 1}},
		{name: "minute", action: models.AddMIN, magnitude: 1, want: models.StatRecord{MinutesPlayed: 1}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := mustApply(t, models.StatRecord{}, tc.action, tc.magnitude)
			if got != tc.want {
				t.Fatalf("expected %+v, got %+v", tc.want, got)
			}
		})
	}
}

func TestApplyRejectsUnknownKind(t *testing.T) {
	rec := models.StatRecord{Points: 4}
	got, err := Apply(rec, models.ActionKind("ADD_DUNK"), 2)
	if !errors.Is(err, models.ErrInvalidActionKind) {
		t.Fatalf("expected ErrInvalidActionKind, got %v", err)
	}
	if got != rec {
		t.Fatalf("record changed on rejected action: %+v", got)
	}
}

func TestApplyRejectsNonCanonicalMagnitude(t *testing.T) {
	for _, m := range []int{0, 1, 4, -2} {
		if _, err := Apply(models.StatRecord{}, models.Add3PT, m); !errors.Is(err, models.ErrInvalidMagnitude) {
			t.Fatalf("magnitude %d: expected ErrInvalidMagnitude, got %v", m, err)
		}
	}
}

func TestReboundCorrectionClampsAtZero(t *testing.T) {
	rec := mustApply(t, models.StatRecord{}, models.Add2PT, 2)
	if rec.Points != 2 {
		t.Fatalf("expected 2 points, got %d", rec.Points)
	}
	rec = mustApply(t, rec, models.AddREB, 1)
	if rec.Rebounds != 1 {
		t.Fatalf("expected 1 rebound, got %d", rec.Rebounds)
	}
	rec = mustApply(t, rec, models.AddREB, -1)
	if rec.Rebounds != 0 {
		t.Fatalf("expected 0 rebounds, got %d", rec.Rebounds)
	}
	rec = mustApply(t, rec, models.AddREB, -1)
	if rec.Rebounds != 0 {
		t.Fatalf("expected rebounds clamped at 0, got %d", rec.Rebounds)
	}
}

func TestThreePointerCorrection(t *testing.T) {
	rec := mustApply(t, models.StatRecord{}, models.Add3PT, 3)
	rec = mustApply(t, rec, models.Add3PT, 3)
	rec = mustApply(t, rec, models.Add3PT, -3)
	if rec.Points != 3 || rec.ThreePointersMade != 1 {
		t.Fatalf("expected 3 points / 1 made, got %d / %d", rec.Points, rec.ThreePointersMade)
	}
}

func TestThreePointerRoundTrip(t *testing.T) {
	start := models.StatRecord{Points: 7, ThreePointersMade: 1}
	rec := mustApply(t, start, models.Add3PT, 3)
	rec = mustApply(t, rec, models.Add3PT, -3)
	if rec != start {
		t.Fatalf("expected %+v after +3/-3, got %+v", start, rec)
	}

	// subtracting first from zero is swallowed by the clamp
	rec = mustApply(t, models.StatRecord{}, models.Add3PT, -3)
	rec = mustApply(t, rec, models.Add3PT, 3)
	if rec.Points != 3 || rec.ThreePointersMade != 1 {
		t.Fatalf("expected clamp to break exact inverse, got %+v", rec)
	}
}

func TestFreeThrowsStayInLockstep(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	rec := models.StatRecord{}
	for i := 0; i < 500; i++ {
		m := 1
		if rng.Intn(3) == 0 {
			m = -1
		}
		rec = mustApply(t, rec, models.AddFT, m)
		if rec.FreeThrowsMade != rec.FreeThrowsAttempted {
			t.Fatalf("step %d: made %d != attempted %d", i, rec.FreeThrowsMade, rec.FreeThrowsAttempted)
		}
	}
}

func TestRandomSequencesStayNonNegative(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	rec := models.StatRecord{}
	for i := 0; i < 2000; i++ {
		kind := models.ActionKinds[rng.Intn(len(models.ActionKinds))]
		rec = mustApply(t, rec, kind, kind.Magnitude(rng.Intn(2) == 0))
		if rec.Points < 0 || rec.Rebounds < 0 || rec.Assists < 0 || rec.Steals < 0 || rec.Blocks < 0 ||
			rec.FreeThrowsMade < 0 || rec.FreeThrowsAttempted < 0 || rec.ThreePointersMade < 0 || rec.MinutesPlayed < 0 {
			t.Fatalf("step %d: negative counter in %+v", i, rec)
		}
	}
}
