package swipemovie

import (
	"context"
	"errors"
	"time"

	e "dodoensemble/internal/core/domain/errors"
	"dodoensemble/internal/core/domain/logging"
	"dodoensemble/internal/core/domain/movie"
	"dodoensemble/internal/core/domain/user"
	"dodoensemble/internal/core/services"
	"dodoensemble/internal/core/services/auth"
)

type Input struct {
	UserID  user.ID
	MovieID movie.ID
	Liked   bool
}

func (i Input) WithAuthenticatedUser(u user.User) auth.Input {
	i.UserID = u.ID
	return i
}

type Result struct {
	IsMatch bool
	Movie   movie.Movie
}

type service struct {
	log             logging.Logger
	movieRepository movie.Repository
	swipeRepository movie.SwipeRepository
	matchAnnouncer  movie.MatchAnnouncer
	now             func() time.Time
}

func New(
	log logging.Logger,
	movieRepository movie.Repository,
	swipeRepository movie.SwipeRepository,
	matchAnnouncer movie.MatchAnnouncer,
	now func() time.Time,
) services.Service[Input, Result] {
	if log == nil {
		panic(e.NewNilArgumentError("log"))
	}
	if movieRepository == nil {
		panic(e.NewNilArgumentError("movieRepository"))
	}
	if swipeRepository == nil {
		panic(e.NewNilArgumentError("swipeRepository"))
	}
	if matchAnnouncer == nil {
		panic(e.NewNilArgumentError("matchAnnouncer"))
	}
	if now == nil {
		panic(e.NewNilArgumentError("now"))
	}
	return &service{
		log:             log,
		movieRepository: movieRepository,
		swipeRepository: swipeRepository,
		matchAnnouncer:  matchAnnouncer,
		now:             now,
	}
}

// Run records the swipe and, when a right swipe completes the pair,
// reports the movie as a match and announces it to connected clients.
func (s *service) Run(ctx context.Context, input Input) (result Result, err error) {
	m, err := s.movieRepository.GetByID(ctx, input.MovieID)
	if errors.Is(err, movie.ErrMovieDoesNotExist) {
		return result, err
	}
	if err != nil {
		logging.Error(ctx, s.log, err, logging.Entry("input", input))
		return result, err
	}
	result.Movie = m

	err = s.swipeRepository.Save(ctx, movie.Swipe{
		MovieID:   input.MovieID,
		UserID:    input.UserID,
		Liked:     input.Liked,
		CreatedAt: s.now(),
	})
	if err != nil {
		logging.Error(ctx, s.log, err, logging.Entry("input", input))
		return result, err
	}
	if !input.Liked {
		return result, nil
	}

	likes, err := s.swipeRepository.ReadLikes(ctx, input.MovieID)
	if err != nil {
		logging.Error(ctx, s.log, err, logging.Entry("input", input))
		return result, err
	}
	likedByPartner := false
	for _, likerID := range likes {
		if likerID != input.UserID {
			likedByPartner = true
		}
	}
	if !likedByPartner {
		return result, nil
	}

	result.IsMatch = true
	s.log.Info(
		ctx,
		"Movie match.",
		logging.Entry("movieID", m.ID),
		logging.Entry("title", m.Title),
	)
	if err := s.matchAnnouncer.AnnounceMatch(ctx, m); err != nil {
		// A match is a match even if nobody is listening right now.
		s.log.Warning(
			ctx,
			"Could not announce movie match.",
			logging.Entry("movieID", m.ID),
			logging.Entry("err", err),
		)
	}
	return result, nil
}
