package planning

import (
	"context"

	"dodoensemble/internal/core/domain/user"
)

// Slot labels one day of the weekly work/rest grid. "work" and "rest"
// are the common values, anything else is treated as free text.
const SlotWork = "work"
const SlotRest = "rest"

// Entry is one user's plan for one day of a week. WeekStart is the
// Monday of the week in "2006-01-02" form, Weekday is ISO (1=Monday).
type Entry struct {
	UserID    user.ID
	WeekStart string
	Weekday   int
	Slot      string
}

type Repository interface {
	// SaveWeek replaces the user's entries for the given week.
	SaveWeek(ctx context.Context, userID user.ID, weekStart string, entries []Entry) error
	ReadWeek(ctx context.Context, weekStart string) ([]Entry, error)
}
