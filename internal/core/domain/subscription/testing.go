package subscription

import (
	"context"
	"sync"
)

type TestSubscriptionRepository struct {
	Subscriptions []Subscription
	ReadError     error
	UpsertError   error
	ReadCount     int
	nextID        ID
	lock          sync.Mutex
}

func NewTestSubscriptionRepository(subscriptions ...Subscription) *TestSubscriptionRepository {
	return &TestSubscriptionRepository{Subscriptions: subscriptions}
}

func (r *TestSubscriptionRepository) Upsert(ctx context.Context, input UpsertInput) (sub Subscription, err error) {
	if r.UpsertError != nil {
		return sub, r.UpsertError
	}
	r.lock.Lock()
	defer r.lock.Unlock()
	for ix, stored := range r.Subscriptions {
		if stored.UserID != input.UserID {
			continue
		}
		stored.Endpoint = input.Endpoint
		stored.Keys = input.Keys
		stored.UpdatedAt = input.UpdatedAt
		r.Subscriptions[ix] = stored
		return stored, nil
	}
	r.nextID++
	sub = Subscription{
		ID:        r.nextID,
		UserID:    input.UserID,
		Endpoint:  input.Endpoint,
		Keys:      input.Keys,
		UpdatedAt: input.UpdatedAt,
	}
	r.Subscriptions = append(r.Subscriptions, sub)
	return sub, nil
}

func (r *TestSubscriptionRepository) ReadAll(ctx context.Context) ([]Subscription, error) {
	r.lock.Lock()
	defer r.lock.Unlock()
	r.ReadCount++
	if r.ReadError != nil {
		return nil, r.ReadError
	}
	return r.Subscriptions, nil
}
