package createsecretnote

import (
	"context"
	"time"

	c "dodoensemble/internal/core/domain/common"
	e "dodoensemble/internal/core/domain/errors"
	"dodoensemble/internal/core/domain/logging"
	"dodoensemble/internal/core/domain/secretbox"
	"dodoensemble/internal/core/domain/user"
	"dodoensemble/internal/core/services"
	"dodoensemble/internal/core/services/auth"

	"github.com/google/uuid"
)

type Input struct {
	UserID    user.ID
	Title     string
	Body      string
	UnlocksAt c.Optional[time.Time]
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

func (s *service) Run(ctx context.Context, input Input) (result Result, err error) {
	note, err := s.noteRepository.Create(ctx, secretbox.CreateInput{
		ID:        uuid.New(),
		Author:    input.UserID,
		Title:     input.Title,
		Body:      input.Body,
		UnlocksAt: input.UnlocksAt,
		CreatedAt: s.now(),
	})
	if err != nil {
		logging.Error(ctx, s.log, err, logging.Entry("userID", input.UserID))
		return result, err
	}
	s.log.Info(
		ctx,
		"Secret note created.",
		logging.Entry("noteID", note.ID),
		logging.Entry("timeLocked", note.UnlocksAt.IsPresent),
	)
	result.Note = note
	return result, nil
}
