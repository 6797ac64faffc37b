package listmatches

import (
	"context"

	e "dodoensemble/internal/core/domain/errors"
	"dodoensemble/internal/core/domain/logging"
	"dodoensemble/internal/core/domain/movie"
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
	Matches []movie.Movie
}

type service struct {
	log             logging.Logger
	swipeRepository movie.SwipeRepository
}

func New(
	log logging.Logger,
	swipeRepository movie.SwipeRepository,
) services.Service[Input, Result] {
	if log == nil {
		panic(e.NewNilArgumentError("log"))
	}
	if swipeRepository == nil {
		panic(e.NewNilArgumentError("swipeRepository"))
	}
	return &service{log: log, swipeRepository: swipeRepository}
}

func (s *service) Run(ctx context.Context, input Input) (result Result, err error) {
	matches, err := s.swipeRepository.ReadMatches(ctx)
	if err != nil {
		logging.Error(ctx, s.log, err)
		return result, err
	}
	result.Matches = matches
	return result, nil
}
