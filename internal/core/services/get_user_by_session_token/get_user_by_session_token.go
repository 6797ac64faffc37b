package getuserbysessiontoken

import (
	"context"

	e "dodoensemble/internal/core/domain/errors"
	"dodoensemble/internal/core/domain/user"
	"dodoensemble/internal/core/services"
)

type Input struct {
	Token user.SessionToken
}

type Result struct {
	User user.User
}

type service struct {
	sessionRepository user.SessionRepository
}

func New(sessionRepository user.SessionRepository) services.Service[Input, Result] {
	if sessionRepository == nil {
		panic(e.NewNilArgumentError("sessionRepository"))
	}
	return &service{sessionRepository: sessionRepository}
}

func (s *service) Run(ctx context.Context, input Input) (result Result, err error) {
	u, err := s.sessionRepository.GetUserByToken(ctx, input.Token)
	if err != nil {
		return result, err
	}
	result.User = u
	return result, nil
}
