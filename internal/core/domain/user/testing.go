package user

import (
	"context"
	"sync"
)

type TestUserRepository struct {
	Users    []User
	GetError error
}

func NewTestUserRepository(users ...User) *TestUserRepository {
	return &TestUserRepository{Users: users}
}

func (r *TestUserRepository) GetByName(ctx context.Context, name string) (u User, err error) {
	if r.GetError != nil {
		return u, r.GetError
	}
	for _, u := range r.Users {
		if u.Name == name {
			return u, nil
		}
	}
	return u, ErrUserDoesNotExist
}

func (r *TestUserRepository) GetByID(ctx context.Context, id ID) (u User, err error) {
	if r.GetError != nil {
		return u, r.GetError
	}
	for _, u := range r.Users {
		if u.ID == id {
			return u, nil
		}
	}
	return u, ErrUserDoesNotExist
}

type TestSessionRepository struct {
	CreateError error
	Created     []CreateSessionInput
	UserByToken map[SessionToken]User
	lock        sync.Mutex
}

func NewTestSessionRepository() *TestSessionRepository {
	return &TestSessionRepository{UserByToken: make(map[SessionToken]User)}
}

func (r *TestSessionRepository) Create(ctx context.Context, input CreateSessionInput) error {
	if r.CreateError != nil {
		return r.CreateError
	}
	r.lock.Lock()
	defer r.lock.Unlock()
	r.Created = append(r.Created, input)
	return nil
}

func (r *TestSessionRepository) GetUserByToken(ctx context.Context, token SessionToken) (u User, err error) {
	r.lock.Lock()
	defer r.lock.Unlock()
	u, ok := r.UserByToken[token]
	if !ok {
		return u, ErrUserDoesNotExist
	}
	return u, nil
}

func (r *TestSessionRepository) Delete(ctx context.Context, token SessionToken) (userID ID, err error) {
	r.lock.Lock()
	defer r.lock.Unlock()
	u, ok := r.UserByToken[token]
	if !ok {
		return userID, ErrSessionDoesNotExist
	}
	delete(r.UserByToken, token)
	return u.ID, nil
}

type TestSessionTokenGenerator struct {
	Token SessionToken
}

func NewTestSessionTokenGenerator(token SessionToken) *TestSessionTokenGenerator {
	return &TestSessionTokenGenerator{Token: token}
}

func (g *TestSessionTokenGenerator) GenerateSessionToken() SessionToken {
	return g.Token
}
