package deletemilestone

import (
	"context"
	"errors"

	e "dodoensemble/internal/core/domain/errors"
	"dodoensemble/internal/core/domain/logging"
	"dodoensemble/internal/core/domain/milestone"
	"dodoensemble/internal/core/domain/user"
	"dodoensemble/internal/core/services"
	"dodoensemble/internal/core/services/auth"
)

type Input struct {
	UserID      user.ID
	MilestoneID milestone.ID
}

func (i Input) WithAuthenticatedUser(u user.User) auth.Input {
	i.UserID = u.ID
	return i
}

type Result struct{}

type service struct {
	log                 logging.Logger
	milestoneRepository milestone.Repository
}

func New(
	log logging.Logger,
	milestoneRepository milestone.Repository,
) services.Service[Input, Result] {
	if log == nil {
		panic(e.NewNilArgumentError("log"))
	}
	if milestoneRepository == nil {
		panic(e.NewNilArgumentError("milestoneRepository"))
	}
	return &service{log: log, milestoneRepository: milestoneRepository}
}

func (s *service) Run(ctx context.Context, input Input) (result Result, err error) {
	err = s.milestoneRepository.Delete(ctx, input.MilestoneID)
	if errors.Is(err, milestone.ErrMilestoneDoesNotExist) {
		return result, err
	}
	if err != nil {
		logging.Error(ctx, s.log, err, logging.Entry("input", input))
		return result, err
	}
	s.log.Info(ctx, "Milestone deleted.", logging.Entry("milestoneID", input.MilestoneID))
	return result, nil
}
