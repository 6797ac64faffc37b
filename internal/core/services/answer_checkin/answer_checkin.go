package answercheckin

import (
	"context"
	"time"

	"dodoensemble/internal/core/domain/checkin"
	e "dodoensemble/internal/core/domain/errors"
	"dodoensemble/internal/core/domain/event"
	"dodoensemble/internal/core/domain/logging"
	"dodoensemble/internal/core/domain/user"
	"dodoensemble/internal/core/services"
	"dodoensemble/internal/core/services/auth"
)

type Input struct {
	UserID user.ID
	Date   string
	Answer bool
}

func (i Input) WithAuthenticatedUser(u user.User) auth.Input {
	i.UserID = u.ID
	return i
}

type Result struct {
	Checkin checkin.Checkin
}

type service struct {
	log               logging.Logger
	checkinRepository checkin.Repository
	now               func() time.Time
}

func New(
	log logging.Logger,
	checkinRepository checkin.Repository,
	now func() time.Time,
) services.Service[Input, Result] {
	if log == nil {
		panic(e.NewNilArgumentError("log"))
	}
	if checkinRepository == nil {
		panic(e.NewNilArgumentError("checkinRepository"))
	}
	if now == nil {
		panic(e.NewNilArgumentError("now"))
	}
	return &service{log: log, checkinRepository: checkinRepository, now: now}
}

// Run records the user's yes/no answer for a day. An empty date means
// today; answering again the same day overwrites.
func (s *service) Run(ctx context.Context, input Input) (result Result, err error) {
	date := input.Date
	if date == "" {
		date = s.now().Format(event.DateLayout)
	}
	if err := event.ValidateDate(date); err != nil {
		return result, err
	}

	ch, err := s.checkinRepository.Upsert(ctx, checkin.UpsertInput{
		UserID:    input.UserID,
		Date:      date,
		Answer:    input.Answer,
		UpdatedAt: s.now(),
	})
	if err != nil {
		logging.Error(ctx, s.log, err, logging.Entry("input", input))
		return result, err
	}
	s.log.Info(
		ctx,
		"Daily check-in saved.",
		logging.Entry("userID", ch.UserID),
		logging.Entry("date", ch.Date),
	)
	result.Checkin = ch
	return result, nil
}
