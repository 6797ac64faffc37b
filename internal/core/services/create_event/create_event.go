package createevent

import (
	"context"
	"time"

	c "dodoensemble/internal/core/domain/common"
	e "dodoensemble/internal/core/domain/errors"
	"dodoensemble/internal/core/domain/event"
	"dodoensemble/internal/core/domain/logging"
	"dodoensemble/internal/core/domain/user"
	"dodoensemble/internal/core/services"
	"dodoensemble/internal/core/services/auth"
)

type Input struct {
	UserID      user.ID
	Date        string
	Time        c.Optional[string]
	Title       string
	Location    c.Optional[string]
	Description c.Optional[string]
	IsMystery   bool
}

func (i Input) WithAuthenticatedUser(u user.User) auth.Input {
	i.UserID = u.ID
	return i
}

type Result struct {
	Event event.Event
}

type service struct {
	log             logging.Logger
	eventRepository event.Repository
	now             func() time.Time
}

func New(
	log logging.Logger,
	eventRepository event.Repository,
	now func() time.Time,
) services.Service[Input, Result] {
	if log == nil {
		panic(e.NewNilArgumentError("log"))
	}
	if eventRepository == nil {
		panic(e.NewNilArgumentError("eventRepository"))
	}
	if now == nil {
		panic(e.NewNilArgumentError("now"))
	}
	return &service{log: log, eventRepository: eventRepository, now: now}
}

func (s *service) Run(ctx context.Context, input Input) (result Result, err error) {
	if err := event.ValidateDate(input.Date); err != nil {
		return result, err
	}
	if input.Time.IsPresent {
		if err := event.ValidateTime(input.Time.Value); err != nil {
			return result, err
		}
	}

	created, err := s.eventRepository.Create(ctx, event.CreateInput{
		Date:        input.Date,
		Time:        input.Time,
		Title:       input.Title,
		Location:    input.Location,
		Description: input.Description,
		IsMystery:   input.IsMystery,
		CreatedBy:   input.UserID,
		CreatedAt:   s.now(),
	})
	if err != nil {
		logging.Error(ctx, s.log, err, logging.Entry("input", input))
		return result, err
	}

	s.log.Info(
		ctx,
		"Event created.",
		logging.Entry("eventID", created.ID),
		logging.Entry("date", created.Date),
		logging.Entry("userID", created.CreatedBy),
	)
	result.Event = created
	return result, nil
}
