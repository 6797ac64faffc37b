package loginwithname

import (
	"context"
	"errors"
	"strings"
	"time"

	e "dodoensemble/internal/core/domain/errors"
	"dodoensemble/internal/core/domain/logging"
	"dodoensemble/internal/core/domain/user"
	"dodoensemble/internal/core/services"
)

type Input struct {
	Name string
}

func (i Input) GetRateLimitKey() string {
	return "log-in-with-name::" + strings.ToLower(i.Name)
}

type Result struct {
	User  user.User
	Token user.SessionToken
}

type service struct {
	log                   logging.Logger
	userRepository        user.Repository
	sessionRepository     user.SessionRepository
	sessionTokenGenerator user.SessionTokenGenerator
	now                   func() time.Time
}

func New(
	log logging.Logger,
	userRepository user.Repository,
	sessionRepository user.SessionRepository,
	sessionTokenGenerator user.SessionTokenGenerator,
	now func() time.Time,
) services.Service[Input, Result] {
	if log == nil {
		panic(e.NewNilArgumentError("log"))
	}
	if userRepository == nil {
		panic(e.NewNilArgumentError("userRepository"))
	}
	if sessionRepository == nil {
		panic(e.NewNilArgumentError("sessionRepository"))
	}
	if sessionTokenGenerator == nil {
		panic(e.NewNilArgumentError("sessionTokenGenerator"))
	}
	if now == nil {
		panic(e.NewNilArgumentError("now"))
	}
	return &service{
		log:                   log,
		userRepository:        userRepository,
		sessionRepository:     sessionRepository,
		sessionTokenGenerator: sessionTokenGenerator,
		now:                   now,
	}
}

// Run logs a partner in by first name. Names are matched
// case-insensitively against the two configured users.
func (s *service) Run(ctx context.Context, input Input) (result Result, err error) {
	name := strings.TrimSpace(input.Name)
	u, err := s.userRepository.GetByName(ctx, name)
	if errors.Is(err, context.Canceled) {
		return result, err
	}
	if errors.Is(err, user.ErrUserDoesNotExist) {
		return result, user.ErrInvalidName
	}
	if err != nil {
		logging.Error(ctx, s.log, err, logging.Entry("name", name))
		return result, err
	}

	sessionToken := s.sessionTokenGenerator.GenerateSessionToken()
	err = s.sessionRepository.Create(ctx, user.CreateSessionInput{
		UserID:    u.ID,
		Token:     sessionToken,
		CreatedAt: s.now(),
	})
	if err != nil {
		s.log.Error(
			ctx,
			"Could not create session token for user.",
			logging.Entry("userID", u.ID),
			logging.Entry("err", err),
		)
		return result, err
	}

	s.log.Info(
		ctx,
		"User successfully authenticated, session token created.",
		logging.Entry("userID", u.ID),
	)
	result.User = u
	result.Token = sessionToken
	return result, nil
}
