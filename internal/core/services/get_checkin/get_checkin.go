package getcheckin

import (
	"context"

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
}

func (i Input) WithAuthenticatedUser(u user.User) auth.Input {
	i.UserID = u.ID
	return i
}

type Result struct {
	Checkins []checkin.Checkin
}

type service struct {
	log               logging.Logger
	checkinRepository checkin.Repository
}

func New(
	log logging.Logger,
	checkinRepository checkin.Repository,
) services.Service[Input, Result] {
	if log == nil {
		panic(e.NewNilArgumentError("log"))
	}
	if checkinRepository == nil {
		panic(e.NewNilArgumentError("checkinRepository"))
	}
	return &service{log: log, checkinRepository: checkinRepository}
}

func (s *service) Run(ctx context.Context, input Input) (result Result, err error) {
	if err := event.ValidateDate(input.Date); err != nil {
		return result, err
	}
	checkins, err := s.checkinRepository.ReadByDate(ctx, input.Date)
	if err != nil {
		logging.Error(ctx, s.log, err, logging.Entry("date", input.Date))
		return result, err
	}
	result.Checkins = checkins
	return result, nil
}
