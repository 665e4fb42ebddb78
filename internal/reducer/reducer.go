package reducer

import (
	"fmt"

	"baskettracker/internal/models"
)

// Apply returns the record that results from one event. It never reads outside
// state; the caller owns timestamps and target selection.
func Apply(record models.StatRecord, action models.ActionKind, magnitude int) (models.StatRecord, error) {
	if !action.Valid() {
		return record, fmt.Errorf("%w: %q", models.ErrInvalidActionKind, action)
	}
	if magnitude != action.Canonical() && magnitude != -action.Canonical() {
		return record, fmt.Errorf("%w: %d for %s", models.ErrInvalidMagnitude, magnitude, action)
	}

	next := record
	unit := sign(magnitude)

	switch action {
	case models.Add2PT:
		next.Points += magnitude
	case models.Add3PT:
		next.Points += magnitude
		next.ThreePointersMade += unit
	case models.AddFT:
		next.Points += magnitude
		next.FreeThrowsMade += unit
		next.FreeThrowsAttempted += unit
	case models.AddREB:
		next.Rebounds += magnitude
	case models.AddAST:
		next.Assists += magnitude
	case models.AddSTL:
		next.Steals += magnitude
	case models.AddBLK:
		next.Blocks += magnitude
	case models.AddMIN:
		next.MinutesPlayed += magnitude
	}

	return next.Clamp(), nil
}

func sign(n int) int {
	if n < 0 {
		return -1
	}
	return 1
}
