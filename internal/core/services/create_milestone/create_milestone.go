package createmilestone

import (
	"context"
	"time"

	c "dodoensemble/internal/core/domain/common"
	e "dodoensemble/internal/core/domain/errors"
	"dodoensemble/internal/core/domain/event"
	"dodoensemble/internal/core/domain/logging"
	"dodoensemble/internal/core/domain/milestone"
	"dodoensemble/internal/core/domain/user"
	"dodoensemble/internal/core/services"
	"dodoensemble/internal/core/services/auth"
)

type Input struct {
	UserID      user.ID
	Date        string
	Title       string
	Description c.Optional[string]
}

func (i Input) WithAuthenticatedUser(u user.User) auth.Input {
	i.UserID = u.ID
	return i
}

type Result struct {
	Milestone milestone.Milestone
}

type service struct {
	log                 logging.Logger
	milestoneRepository milestone.Repository
	now                 func() time.Time
}

func New(
	log logging.Logger,
	milestoneRepository milestone.Repository,
	now func() time.Time,
) services.Service[Input, Result] {
	if log == nil {
		panic(e.NewNilArgumentError("log"))
	}
	if milestoneRepository == nil {
		panic(e.NewNilArgumentError("milestoneRepository"))
	}
	if now == nil {
		panic(e.NewNilArgumentError("now"))
	}
	return &service{log: log, milestoneRepository: milestoneRepository, now: now}
}

func (s *service) Run(ctx context.Context, input Input) (result Result, err error) {
	if err := event.ValidateDate(input.Date); err != nil {
		return result, err
	}
	m, err := s.milestoneRepository.Create(ctx, milestone.CreateInput{
		Date:        input.Date,
		Title:       input.Title,
		Description: input.Description,
		CreatedBy:   input.UserID,
		CreatedAt:   s.now(),
	})
	if err != nil {
		logging.Error(ctx, s.log, err, logging.Entry("input", input))
		return result, err
	}
	s.log.Info(ctx, "Milestone created.", logging.Entry("milestoneID", m.ID))
	result.Milestone = m
	return result, nil
}
