package getplanning

import (
	"context"

	e "dodoensemble/internal/core/domain/errors"
	"dodoensemble/internal/core/domain/event"
	"dodoensemble/internal/core/domain/logging"
	"dodoensemble/internal/core/domain/planning"
	"dodoensemble/internal/core/domain/user"
	"dodoensemble/internal/core/services"
	"dodoensemble/internal/core/services/auth"
)

type Input struct {
	UserID    user.ID
	WeekStart string
}

func (i Input) WithAuthenticatedUser(u user.User) auth.Input {
	i.UserID = u.ID
	return i
}

type Result struct {
	Entries []planning.Entry
}

type service struct {
	log                logging.Logger
	planningRepository planning.Repository
}

func New(
	log logging.Logger,
	planningRepository planning.Repository,
) services.Service[Input, Result] {
	if log == nil {
		panic(e.NewNilArgumentError("log"))
	}
	if planningRepository == nil {
		panic(e.NewNilArgumentError("planningRepository"))
	}
	return &service{log: log, planningRepository: planningRepository}
}

func (s *service) Run(ctx context.Context, input Input) (result Result, err error) {
	if err := event.ValidateDate(input.WeekStart); err != nil {
		return result, err
	}
	entries, err := s.planningRepository.ReadWeek(ctx, input.WeekStart)
	if err != nil {
		logging.Error(ctx, s.log, err, logging.Entry("weekStart", input.WeekStart))
		return result, err
	}
	result.Entries = entries
	return result, nil
}
