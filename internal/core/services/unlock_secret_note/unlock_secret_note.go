package unlocksecretnote

import (
	"context"
	"errors"
	"time"

	e "dodoensemble/internal/core/domain/errors"
	"dodoensemble/internal/core/domain/logging"
	"dodoensemble/internal/core/domain/secretbox"
	"dodoensemble/internal/core/domain/user"
	"dodoensemble/internal/core/services"
	"dodoensemble/internal/core/services/auth"

	"github.com/google/uuid"
)

type Input struct {
	UserID user.ID
	NoteID uuid.UUID
}

func (i Input) WithAuthenticatedUser(u user.User) auth.Input {
	i.UserID = u.ID
	return i
}

type Result struct {
	Note secretbox.Note
}

type service struct {
	log            logging.Logger
	noteRepository secretbox.Repository
	now            func() time.Time
}

func New(
	log logging.Logger,
	noteRepository secretbox.Repository,
	now func() time.Time,
) services.Service[Input, Result] {
	if log == nil {
		panic(e.NewNilArgumentError("log"))
	}
	if noteRepository == nil {
		panic(e.NewNilArgumentError("noteRepository"))
	}
	if now == nil {
		panic(e.NewNilArgumentError("now"))
	}
	return &service{log: log, noteRepository: noteRepository, now: now}
}

// Run opens a secret note. Time-locked notes refuse to open before
// their unlock instant; notes without one open on demand.
func (s *service) Run(ctx context.Context, input Input) (result Result, err error) {
	note, err := s.noteRepository.GetByID(ctx, input.NoteID)
	if errors.Is(err, secretbox.ErrNoteDoesNotExist) {
		return result, err
	}
	if err != nil {
		logging.Error(ctx, s.log, err, logging.Entry("noteID", input.NoteID))
		return result, err
	}

	if note.UnlocksAt.IsPresent && s.now().Before(note.UnlocksAt.Value) {
		return result, secretbox.ErrNoteStillLocked
	}

	unlocked, err := s.noteRepository.MarkUnlocked(ctx, input.NoteID)
	if err != nil {
		logging.Error(ctx, s.log, err, logging.Entry("noteID", input.NoteID))
		return result, err
	}
	s.log.Info(
		ctx,
		"Secret note unlocked.",
		logging.Entry("noteID", unlocked.ID),
		logging.Entry("userID", input.UserID),
	)
	result.Note = unlocked
	return result, nil
}
