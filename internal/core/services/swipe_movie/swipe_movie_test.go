package swipemovie

import (
	"context"
	"errors"
	"testing"
	"time"

	"dodoensemble/internal/core/domain/logging"
	"dodoensemble/internal/core/domain/movie"
	"dodoensemble/internal/core/domain/user"
	"dodoensemble/internal/core/services"

	"github.com/stretchr/testify/suite"
)

var Now = time.Date(2025, 9, 1, 21, 0, 0, 0, time.UTC)

const Alice = user.ID(1)
const Bob = user.ID(2)

type testSuite struct {
	suite.Suite
	logger    *logging.FakeLogger
	movies    *movie.TestMovieRepository
	swipes    *movie.TestSwipeRepository
	announcer *movie.TestMatchAnnouncer
	service   services.Service[Input, Result]
}

func TestSwipeMovieService(t *testing.T) {
	suite.Run(t, new(testSuite))
}

func (s *testSuite) SetupTest() {
	s.logger = logging.NewFakeLogger()
	s.movies = movie.NewTestMovieRepository(movie.Movie{ID: 1, Title: "Amélie", AddedBy: Alice})
	s.swipes = movie.NewTestSwipeRepository()
	s.announcer = movie.NewTestMatchAnnouncer()
	s.service = New(s.logger, s.movies, s.swipes, s.announcer, func() time.Time { return Now })
}

func (s *testSuite) TestFirstRightSwipeIsNotAMatch() {
	result, err := s.service.Run(context.Background(), Input{UserID: Alice, MovieID: 1, Liked: true})

	assert := s.Require()
	assert.Nil(err)
	assert.False(result.IsMatch)
	assert.Len(s.swipes.Swipes, 1)
	assert.Empty(s.announcer.Announced)
}

func (s *testSuite) TestSecondRightSwipeCompletesTheMatch() {
	s.swipes.Swipes = []movie.Swipe{{MovieID: 1, UserID: Bob, Liked: true}}

	result, err := s.service.Run(context.Background(), Input{UserID: Alice, MovieID: 1, Liked: true})

	assert := s.Require()
	assert.Nil(err)
	assert.True(result.IsMatch)
	assert.Equal("Amélie", result.Movie.Title)
	assert.Len(s.announcer.Announced, 1)
	assert.Equal(movie.ID(1), s.announcer.Announced[0].ID)
}

func (s *testSuite) TestLeftSwipeNeverMatches() {
	s.swipes.Swipes = []movie.Swipe{{MovieID: 1, UserID: Bob, Liked: true}}

	result, err := s.service.Run(context.Background(), Input{UserID: Alice, MovieID: 1, Liked: false})

	assert := s.Require()
	assert.Nil(err)
	assert.False(result.IsMatch)
	assert.Empty(s.announcer.Announced)
}

func (s *testSuite) TestPartnerLeftSwipeDoesNotMatch() {
	s.swipes.Swipes = []movie.Swipe{{MovieID: 1, UserID: Bob, Liked: false}}

	result, err := s.service.Run(context.Background(), Input{UserID: Alice, MovieID: 1, Liked: true})

	s.Require().Nil(err)
	s.False(result.IsMatch)
}

func (s *testSuite) TestOwnRepeatedSwipeDoesNotMatch() {
	// Re-swiping right on an already liked movie must not count the
	// user as their own partner.
	s.swipes.Swipes = []movie.Swipe{{MovieID: 1, UserID: Alice, Liked: true}}

	result, err := s.service.Run(context.Background(), Input{UserID: Alice, MovieID: 1, Liked: true})

	s.Require().Nil(err)
	s.False(result.IsMatch)
	s.Len(s.swipes.Swipes, 1)
}

func (s *testSuite) TestUnknownMovie() {
	_, err := s.service.Run(context.Background(), Input{UserID: Alice, MovieID: 99, Liked: true})

	s.Require().ErrorIs(err, movie.ErrMovieDoesNotExist)
	s.Empty(s.swipes.Swipes)
}

func (s *testSuite) TestAnnouncerFailureDoesNotFailTheSwipe() {
	s.swipes.Swipes = []movie.Swipe{{MovieID: 1, UserID: Bob, Liked: true}}
	s.announcer.Error = errors.New("no stream")

	result, err := s.service.Run(context.Background(), Input{UserID: Alice, MovieID: 1, Liked: true})

	s.Require().Nil(err)
	s.True(result.IsMatch)
}
