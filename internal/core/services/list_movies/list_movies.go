package listmovies

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
	Movies []movie.Movie
}

type service struct {
	log             logging.Logger
	movieRepository movie.Repository
}

func New(
	log logging.Logger,
	movieRepository movie.Repository,
) services.Service[Input, Result] {
	if log == nil {
		panic(e.NewNilArgumentError("log"))
	}
	if movieRepository == nil {
		panic(e.NewNilArgumentError("movieRepository"))
	}
	return &service{log: log, movieRepository: movieRepository}
}

func (s *service) Run(ctx context.Context, input Input) (result Result, err error) {
	movies, err := s.movieRepository.ReadAll(ctx)
	if err != nil {
		logging.Error(ctx, s.log, err)
		return result, err
	}
	result.Movies = movies
	return result, nil
}
