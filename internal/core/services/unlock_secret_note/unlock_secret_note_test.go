package unlocksecretnote

import (
	"context"
	"testing"
	"time"

	c "dodoensemble/internal/core/domain/common"
	"dodoensemble/internal/core/domain/logging"
	"dodoensemble/internal/core/domain/secretbox"
	"dodoensemble/internal/core/domain/user"
	"dodoensemble/internal/core/services"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
)

var Now = time.Date(2025, 9, 1, 12, 0, 0, 0, time.UTC)

var TimeLockedID = uuid.MustParse("11111111-1111-1111-1111-111111111111")
var ManualID = uuid.MustParse("22222222-2222-2222-2222-222222222222")

type testSuite struct {
	suite.Suite
	logger  *logging.FakeLogger
	notes   *secretbox.TestNoteRepository
	service services.Service[Input, Result]
}

func TestUnlockSecretNoteService(t *testing.T) {
	suite.Run(t, new(testSuite))
}

func (s *testSuite) SetupTest() {
	s.logger = logging.NewFakeLogger()
	s.notes = secretbox.NewTestNoteRepository(
		secretbox.Note{
			ID:        TimeLockedID,
			Author:    user.ID(1),
			Title:     "Pour notre anniversaire",
			Body:      "Surprise !",
			UnlocksAt: c.NewOptional(Now.Add(24*time.Hour), true),
		},
		secretbox.Note{
			ID:     ManualID,
			Author: user.ID(2),
			Title:  "Petit mot",
			Body:   "Coucou",
		},
	)
	s.service = New(s.logger, s.notes, func() time.Time { return Now })
}

func (s *testSuite) TestManualNoteUnlocksOnDemand() {
	result, err := s.service.Run(context.Background(), Input{UserID: 1, NoteID: ManualID})

	assert := s.Require()
	assert.Nil(err)
	assert.True(result.Note.Unlocked)
	assert.True(result.Note.IsReadable(Now))
}

func (s *testSuite) TestTimeLockedNoteRefusesEarlyUnlock() {
	_, err := s.service.Run(context.Background(), Input{UserID: 1, NoteID: TimeLockedID})

	s.Require().ErrorIs(err, secretbox.ErrNoteStillLocked)
	note, getErr := s.notes.GetByID(context.Background(), TimeLockedID)
	s.Require().Nil(getErr)
	s.False(note.Unlocked)
}

func (s *testSuite) TestTimeLockedNoteUnlocksAfterItsInstant() {
	later := Now.Add(25 * time.Hour)
	service := New(s.logger, s.notes, func() time.Time { return later })

	result, err := service.Run(context.Background(), Input{UserID: 1, NoteID: TimeLockedID})

	s.Require().Nil(err)
	s.True(result.Note.Unlocked)
}

func (s *testSuite) TestUnknownNote() {
	_, err := s.service.Run(context.Background(), Input{UserID: 1, NoteID: uuid.New()})

	s.Require().ErrorIs(err, secretbox.ErrNoteDoesNotExist)
}
