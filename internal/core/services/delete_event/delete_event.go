package deleteevent

import (
	"context"
	"errors"

	e "dodoensemble/internal/core/domain/errors"
	"dodoensemble/internal/core/domain/event"
	"dodoensemble/internal/core/domain/logging"
	"dodoensemble/internal/core/domain/user"
	"dodoensemble/internal/core/services"
	"dodoensemble/internal/core/services/auth"
)

type Input struct {
	UserID  user.ID
	EventID event.ID
}

func (i Input) WithAuthenticatedUser(u user.User) auth.Input {
	i.UserID = u.ID
	return i
}

type Result struct{}

type service struct {
	log             logging.Logger
	eventRepository event.Repository
}

func New(
	log logging.Logger,
	eventRepository event.Repository,
) services.Service[Input, Result] {
	if log == nil {
		panic(e.NewNilArgumentError("log"))
	}
	if eventRepository == nil {
		panic(e.NewNilArgumentError("eventRepository"))
	}
	return &service{log: log, eventRepository: eventRepository}
}

func (s *service) Run(ctx context.Context, input Input) (result Result, err error) {
	err = s.eventRepository.Delete(ctx, input.EventID)
	if errors.Is(err, event.ErrEventDoesNotExist) {
		return result, err
	}
	if err != nil {
		logging.Error(ctx, s.log, err, logging.Entry("input", input))
		return result, err
	}
	s.log.Info(ctx, "Event deleted.", logging.Entry("eventID", input.EventID))
	return result, nil
}
