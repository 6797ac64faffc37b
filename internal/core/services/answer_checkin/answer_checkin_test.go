package answercheckin

import (
	"context"
	"testing"
	"time"

	"dodoensemble/internal/core/domain/checkin"
	"dodoensemble/internal/core/domain/event"
	"dodoensemble/internal/core/domain/logging"
	"dodoensemble/internal/core/domain/user"
	"dodoensemble/internal/core/services"

	"github.com/stretchr/testify/suite"
)

var Now = time.Date(2025, 9, 1, 8, 30, 0, 0, time.UTC)

type testSuite struct {
	suite.Suite
	logger   *logging.FakeLogger
	checkins *checkin.TestCheckinRepository
	service  services.Service[Input, Result]
}

func TestAnswerCheckinService(t *testing.T) {
	suite.Run(t, new(testSuite))
}

func (s *testSuite) SetupTest() {
	s.logger = logging.NewFakeLogger()
	s.checkins = checkin.NewTestCheckinRepository()
	s.service = New(s.logger, s.checkins, func() time.Time { return Now })
}

func (s *testSuite) TestEmptyDateDefaultsToToday() {
	result, err := s.service.Run(context.Background(), Input{UserID: 1, Answer: true})

	assert := s.Require()
	assert.Nil(err)
	assert.Equal("2025-09-01", result.Checkin.Date)
	assert.True(result.Checkin.Answer)
}

func (s *testSuite) TestAnsweringTwiceOverwrites() {
	_, err := s.service.Run(context.Background(), Input{UserID: 1, Date: "2025-09-01", Answer: true})
	s.Require().Nil(err)
	result, err := s.service.Run(context.Background(), Input{UserID: 1, Date: "2025-09-01", Answer: false})
	s.Require().Nil(err)

	s.False(result.Checkin.Answer)
	s.Len(s.checkins.Checkins, 1)
}

func (s *testSuite) TestBothPartnersAnswerTheSameDay() {
	_, err := s.service.Run(context.Background(), Input{UserID: 1, Date: "2025-09-01", Answer: true})
	s.Require().Nil(err)
	_, err = s.service.Run(context.Background(), Input{UserID: 2, Date: "2025-09-01", Answer: false})
	s.Require().Nil(err)

	answers, err := s.checkins.ReadByDate(context.Background(), "2025-09-01")
	s.Require().Nil(err)
	s.Len(answers, 2)
}

func (s *testSuite) TestInvalidDate() {
	_, err := s.service.Run(context.Background(), Input{UserID: user.ID(1), Date: "01/09/2025", Answer: true})

	s.Require().ErrorIs(err, event.ErrInvalidDate)
	s.Empty(s.checkins.Checkins)
}
