package milestone

import (
	"context"
	"sync"
)

type TestMilestoneRepository struct {
	Milestones  []Milestone
	CreateError error
	ReadError   error
	DeleteError error
	nextID      ID
	lock        sync.Mutex
}

func NewTestMilestoneRepository(milestones ...Milestone) *TestMilestoneRepository {
	return &TestMilestoneRepository{Milestones: milestones}
}

func (r *TestMilestoneRepository) Create(ctx context.Context, input CreateInput) (m Milestone, err error) {
	if r.CreateError != nil {
		return m, r.CreateError
	}
	r.lock.Lock()
	defer r.lock.Unlock()
	r.nextID++
	m = Milestone{
		ID:          r.nextID,
		Date:        input.Date,
		Title:       input.Title,
		Description: input.Description,
		CreatedBy:   input.CreatedBy,
		CreatedAt:   input.CreatedAt,
	}
	r.Milestones = append(r.Milestones, m)
	return m, nil
}

func (r *TestMilestoneRepository) ReadAll(ctx context.Context) ([]Milestone, error) {
	if r.ReadError != nil {
		return nil, r.ReadError
	}
	r.lock.Lock()
	defer r.lock.Unlock()
	return r.Milestones, nil
}

func (r *TestMilestoneRepository) Delete(ctx context.Context, id ID) error {
	if r.DeleteError != nil {
		return r.DeleteError
	}
	r.lock.Lock()
	defer r.lock.Unlock()
	for ix, stored := range r.Milestones {
		if stored.ID == id {
			r.Milestones = append(r.Milestones[:ix], r.Milestones[ix+1:]...)
			return nil
		}
	}
	return ErrMilestoneDoesNotExist
}
