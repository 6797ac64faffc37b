package listsecretnotes

import (
	"context"
	"time"

	e "dodoensemble/internal/core/domain/errors"
	"dodoensemble/internal/core/domain/logging"
	"dodoensemble/internal/core/domain/secretbox"
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

// ListedNote carries the note with its body blanked while the note is
// still sealed.
type ListedNote struct {
	Note     secretbox.Note
	Readable bool
}

type Result struct {
	Notes []ListedNote
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

func (s *service) Run(ctx context.Context, input Input) (result Result, err error) {
	notes, err := s.noteRepository.ReadAll(ctx)
	if err != nil {
		logging.Error(ctx, s.log, err)
		return result, err
	}
	now := s.now()
	listed := make([]ListedNote, 0, len(notes))
	for _, note := range notes {
		readable := note.IsReadable(now)
		if !readable {
			note.Body = ""
		}
		listed = append(listed, ListedNote{Note: note, Readable: readable})
	}
	result.Notes = listed
	return result, nil
}
