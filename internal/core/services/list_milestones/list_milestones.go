package listmilestones

import (
	"context"

	e "dodoensemble/internal/core/domain/errors"
	"dodoensemble/internal/core/domain/logging"
	"dodoensemble/internal/core/domain/milestone"
	"dodoensemble/internal/core/domain/user"
	"dodoensemble/internal/core/services"
	"dodoensemble/internal/core/services/auth"
)

type Input struct {
	UserID user.ID
}

func (i Input) WithAuthenticatedUser(u user.User) auth.Input {
	i.UserID = u.ID
	return i
}

type Result struct {
	Milestones []milestone.Milestone
}

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
	milestones, err := s.milestoneRepository.ReadAll(ctx)
	if err != nil {
		logging.Error(ctx, s.log, err)
		return result, err
	}
	result.Milestones = milestones
	return result, nil
}
