package addmovie

import (
	"context"
	"time"

	c "dodoensemble/internal/core/domain/common"
	e "dodoensemble/internal/core/domain/errors"
	"dodoensemble/internal/core/domain/logging"
	"dodoensemble/internal/core/domain/movie"
	"dodoensemble/internal/core/domain/user"
	"dodoensemble/internal/core/services"
	"dodoensemble/internal/core/services/auth"
)

type Input struct {
	UserID    user.ID
	Title     string
	PosterURL c.Optional[string]
}

func (i Input) WithAuthenticatedUser(u user.User) auth.Input {
	i.UserID = u.ID
	return i
}

type Result struct {
	Movie movie.Movie
}

type service struct {
	log             logging.Logger
	movieRepository movie.Repository
	now             func() time.Time
}

func New(
	log logging.Logger,
	movieRepository movie.Repository,
	now func() time.Time,
) services.Service[Input, Result] {
	if log == nil {
		panic(e.NewNilArgumentError("log"))
	}
	if movieRepository == nil {
		panic(e.NewNilArgumentError("movieRepository"))
	}
	if now == nil {
		panic(e.NewNilArgumentError("now"))
	}
	return &service{log: log, movieRepository: movieRepository, now: now}
}

func (s *service) Run(ctx context.Context, input Input) (result Result, err error) {
	m, err := s.movieRepository.Create(ctx, movie.CreateInput{
		Title:     input.Title,
		PosterURL: input.PosterURL,
		AddedBy:   input.UserID,
		CreatedAt: s.now(),
	})
	if err != nil {
		logging.Error(ctx, s.log, err, logging.Entry("input", input))
		return result, err
	}
	s.log.Info(ctx, "Movie added to the pool.", logging.Entry("movieID", m.ID))
	result.Movie = m
	return result, nil
}
