package push

import (
	"context"
	"sync"

	"dodoensemble/internal/core/domain/subscription"
)

type SentNotification struct {
	Subscription subscription.Subscription
	Notification Notification
}

type TestSender struct {
	// Sent records every successful delivery in attempt order.
	Sent []SentNotification
	// Attempts counts every delivery attempt, failed ones included.
	Attempts int
	// ErrorByEndpoint makes deliveries to the given endpoints fail.
	ErrorByEndpoint map[string]error
	lock            sync.Mutex
}

func NewTestSender() *TestSender {
	return &TestSender{ErrorByEndpoint: make(map[string]error)}
}

func (s *TestSender) SendNotification(
	ctx context.Context,
	sub subscription.Subscription,
	notification Notification,
) error {
	s.lock.Lock()
	defer s.lock.Unlock()
	s.Attempts++
	if err := s.ErrorByEndpoint[sub.Endpoint]; err != nil {
		return err
	}
	s.Sent = append(s.Sent, SentNotification{Subscription: sub, Notification: notification})
	return nil
}
