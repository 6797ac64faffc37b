package event

import (
	"context"
	"sync"
)

type TestEventRepository struct {
	Events      []Event
	ReadError   error
	CreateError error
	UpdateError error
	DeleteError error
	ReadCount   int
	nextID      ID
	lock        sync.Mutex
}

func NewTestEventRepository(events ...Event) *TestEventRepository {
	return &TestEventRepository{Events: events}
}

func (r *TestEventRepository) Create(ctx context.Context, input CreateInput) (ev Event, err error) {
	if r.CreateError != nil {
		return ev, r.CreateError
	}
	r.lock.Lock()
	defer r.lock.Unlock()
	r.nextID++
	ev = Event{
		ID:          r.nextID,
		Date:        input.Date,
		Time:        input.Time,
		Title:       input.Title,
		Location:    input.Location,
		Description: input.Description,
		IsMystery:   input.IsMystery,
		CreatedBy:   input.CreatedBy,
		CreatedAt:   input.CreatedAt,
	}
	r.Events = append(r.Events, ev)
	return ev, nil
}

func (r *TestEventRepository) GetByID(ctx context.Context, id ID) (ev Event, err error) {
	r.lock.Lock()
	defer r.lock.Unlock()
	for _, ev := range r.Events {
		if ev.ID == id {
			return ev, nil
		}
	}
	return ev, ErrEventDoesNotExist
}

func (r *TestEventRepository) ReadAll(ctx context.Context) ([]Event, error) {
	r.lock.Lock()
	defer r.lock.Unlock()
	r.ReadCount++
	if r.ReadError != nil {
		return nil, r.ReadError
	}
	return r.Events, nil
}

func (r *TestEventRepository) Update(ctx context.Context, input UpdateInput) (ev Event, err error) {
	if r.UpdateError != nil {
		return ev, r.UpdateError
	}
	r.lock.Lock()
	defer r.lock.Unlock()
	for ix, stored := range r.Events {
		if stored.ID != input.ID {
			continue
		}
		stored.Date = input.Date
		stored.Time = input.Time
		stored.Title = input.Title
		stored.Location = input.Location
		stored.Description = input.Description
		stored.IsMystery = input.IsMystery
		r.Events[ix] = stored
		return stored, nil
	}
	return ev, ErrEventDoesNotExist
}

func (r *TestEventRepository) Delete(ctx context.Context, id ID) error {
	if r.DeleteError != nil {
		return r.DeleteError
	}
	r.lock.Lock()
	defer r.lock.Unlock()
	for ix, stored := range r.Events {
		if stored.ID == id {
			r.Events = append(r.Events[:ix], r.Events[ix+1:]...)
			return nil
		}
	}
	return ErrEventDoesNotExist
}
