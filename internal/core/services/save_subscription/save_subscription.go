package savesubscription

import (
	"context"
	"time"

	e "dodoensemble/internal/core/domain/errors"
	"dodoensemble/internal/core/domain/logging"
	"dodoensemble/internal/core/domain/subscription"
	"dodoensemble/internal/core/domain/user"
	"dodoensemble/internal/core/services"
	"dodoensemble/internal/core/services/auth"
)

type Input struct {
	UserID   user.ID
	Endpoint string
	P256dh   string
	Auth     string
}

func (i Input) WithAuthenticatedUser(u user.User) auth.Input {
	i.UserID = u.ID
	return i
}

type Result struct {
	Subscription subscription.Subscription
}

type service struct {
	log                    logging.Logger
	subscriptionRepository subscription.Repository
	now                    func() time.Time
}

func New(
	log logging.Logger,
	subscriptionRepository subscription.Repository,
	now func() time.Time,
) services.Service[Input, Result] {
	if log == nil {
		panic(e.NewNilArgumentError("log"))
	}
	if subscriptionRepository == nil {
		panic(e.NewNilArgumentError("subscriptionRepository"))
	}
	if now == nil {
		panic(e.NewNilArgumentError("now"))
	}
	return &service{log: log, subscriptionRepository: subscriptionRepository, now: now}
}

// Run stores the browser push endpoint for the user, replacing any
// previous registration. Re-granting permission simply overwrites.
func (s *service) Run(ctx context.Context, input Input) (result Result, err error) {
	sub, err := s.subscriptionRepository.Upsert(ctx, subscription.UpsertInput{
		UserID:    input.UserID,
		Endpoint:  input.Endpoint,
		Keys:      subscription.Keys{P256dh: input.P256dh, Auth: input.Auth},
		UpdatedAt: s.now(),
	})
	if err != nil {
		logging.Error(ctx, s.log, err, logging.Entry("userID", input.UserID))
		return result, err
	}
	s.log.Info(
		ctx,
		"Push subscription saved.",
		logging.Entry("userID", sub.UserID),
		logging.Entry("subscriptionID", sub.ID),
	)
	result.Subscription = sub
	return result, nil
}
