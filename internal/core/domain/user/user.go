package user

import (
	"context"
	"time"
)

type ID int64

// User is one of the two partners sharing the app. The pair of allowed
// names is fixed by configuration; there is no open registration.
type User struct {
	ID        ID
	Name      string
	CreatedAt time.Time
}

type SessionToken string

type Repository interface {
	GetByName(ctx context.Context, name string) (User, error)
	GetByID(ctx context.Context, id ID) (User, error)
}

type CreateSessionInput struct {
	UserID    ID
	Token     SessionToken
	CreatedAt time.Time
}

type SessionRepository interface {
	Create(ctx context.Context, input CreateSessionInput) error
	GetUserByToken(ctx context.Context, token SessionToken) (User, error)
	Delete(ctx context.Context, token SessionToken) (ID, error)
}

type SessionTokenGenerator interface {
	GenerateSessionToken() SessionToken
}
