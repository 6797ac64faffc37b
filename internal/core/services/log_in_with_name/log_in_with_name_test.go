package loginwithname

import (
	"context"
	"testing"
	"time"

	"dodoensemble/internal/core/domain/logging"
	"dodoensemble/internal/core/domain/user"
	"dodoensemble/internal/core/services"

	"github.com/stretchr/testify/suite"
)

var Now = time.Date(2025, 9, 1, 9, 0, 0, 0, time.UTC)

const Token = user.SessionToken("test-session-token")

type testSuite struct {
	suite.Suite
	logger   *logging.FakeLogger
	users    *user.TestUserRepository
	sessions *user.TestSessionRepository
	service  services.Service[Input, Result]
}

func TestLogInWithNameService(t *testing.T) {
	suite.Run(t, new(testSuite))
}

func (s *testSuite) SetupTest() {
	s.logger = logging.NewFakeLogger()
	s.users = user.NewTestUserRepository(
		user.User{ID: 1, Name: "alice"},
		user.User{ID: 2, Name: "bob"},
	)
	s.sessions = user.NewTestSessionRepository()
	s.service = New(
		s.logger,
		s.users,
		s.sessions,
		user.NewTestSessionTokenGenerator(Token),
		func() time.Time { return Now },
	)
}

func (s *testSuite) TestSuccess() {
	result, err := s.service.Run(context.Background(), Input{Name: "alice"})

	assert := s.Require()
	assert.Nil(err)
	assert.Equal(user.ID(1), result.User.ID)
	assert.Equal(Token, result.Token)
	assert.Len(s.sessions.Created, 1)
	assert.Equal(
		user.CreateSessionInput{UserID: 1, Token: Token, CreatedAt: Now},
		s.sessions.Created[0],
	)
}

func (s *testSuite) TestNameIsTrimmed() {
	result, err := s.service.Run(context.Background(), Input{Name: "  bob "})

	s.Require().Nil(err)
	s.Equal(user.ID(2), result.User.ID)
}

func (s *testSuite) TestUnknownName() {
	_, err := s.service.Run(context.Background(), Input{Name: "mallory"})

	s.Require().ErrorIs(err, user.ErrInvalidName)
	s.Empty(s.sessions.Created)
}

func (s *testSuite) TestSessionCreationFailure() {
	s.sessions.CreateError = context.DeadlineExceeded

	_, err := s.service.Run(context.Background(), Input{Name: "alice"})

	s.Require().ErrorIs(err, s.sessions.CreateError)
}
