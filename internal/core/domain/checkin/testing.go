package checkin

import (
	"context"
	"sync"
)

type TestCheckinRepository struct {
	Checkins    []Checkin
	UpsertError error
	ReadError   error
	lock        sync.Mutex
}

func NewTestCheckinRepository(checkins ...Checkin) *TestCheckinRepository {
	return &TestCheckinRepository{Checkins: checkins}
}

func (r *TestCheckinRepository) Upsert(ctx context.Context, input UpsertInput) (ch Checkin, err error) {
	if r.UpsertError != nil {
		return ch, r.UpsertError
	}
	r.lock.Lock()
	defer r.lock.Unlock()
	ch = Checkin{UserID: input.UserID, Date: input.Date, Answer: input.Answer, UpdatedAt: input.UpdatedAt}
	for ix, stored := range r.Checkins {
		if stored.UserID == input.UserID && stored.Date == input.Date {
			r.Checkins[ix] = ch
			return ch, nil
		}
	}
	r.Checkins = append(r.Checkins, ch)
	return ch, nil
}

func (r *TestCheckinRepository) ReadByDate(ctx context.Context, date string) ([]Checkin, error) {
	if r.ReadError != nil {
		return nil, r.ReadError
	}
	r.lock.Lock()
	defer r.lock.Unlock()
	checkins := make([]Checkin, 0, 2)
	for _, stored := range r.Checkins {
		if stored.Date == date {
			checkins = append(checkins, stored)
		}
	}
	return checkins, nil
}
