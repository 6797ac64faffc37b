package planning

import (
	"context"
	"sync"

	"dodoensemble/internal/core/domain/user"
)

type TestPlanningRepository struct {
	Entries   []Entry
	SaveError error
	ReadError error
	lock      sync.Mutex
}

func NewTestPlanningRepository(entries ...Entry) *TestPlanningRepository {
	return &TestPlanningRepository{Entries: entries}
}

func (r *TestPlanningRepository) SaveWeek(
	ctx context.Context,
	userID user.ID,
	weekStart string,
	entries []Entry,
) error {
	if r.SaveError != nil {
		return r.SaveError
	}
	r.lock.Lock()
	defer r.lock.Unlock()
	kept := r.Entries[:0]
	for _, stored := range r.Entries {
		if stored.UserID != userID || stored.WeekStart != weekStart {
			kept = append(kept, stored)
		}
	}
	r.Entries = append(kept, entries...)
	return nil
}

func (r *TestPlanningRepository) ReadWeek(ctx context.Context, weekStart string) ([]Entry, error) {
	if r.ReadError != nil {
		return nil, r.ReadError
	}
	r.lock.Lock()
	defer r.lock.Unlock()
	week := make([]Entry, 0, 14)
	for _, stored := range r.Entries {
		if stored.WeekStart == weekStart {
			week = append(week, stored)
		}
	}
	return week, nil
}
