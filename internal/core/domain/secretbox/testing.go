package secretbox

import (
	"context"
	"sync"

	"github.com/google/uuid"
)

type TestNoteRepository struct {
	Notes       []Note
	CreateError error
	ReadError   error
	lock        sync.Mutex
}

func NewTestNoteRepository(notes ...Note) *TestNoteRepository {
	return &TestNoteRepository{Notes: notes}
}

func (r *TestNoteRepository) Create(ctx context.Context, input CreateInput) (n Note, err error) {
	if r.CreateError != nil {
		return n, r.CreateError
	}
	r.lock.Lock()
	defer r.lock.Unlock()
	n = Note{
		ID:        input.ID,
		Author:    input.Author,
		Title:     input.Title,
		Body:      input.Body,
		UnlocksAt: input.UnlocksAt,
		CreatedAt: input.CreatedAt,
	}
	r.Notes = append(r.Notes, n)
	return n, nil
}

func (r *TestNoteRepository) GetByID(ctx context.Context, id uuid.UUID) (n Note, err error) {
	r.lock.Lock()
	defer r.lock.Unlock()
	for _, n := range r.Notes {
		if n.ID == id {
			return n, nil
		}
	}
	return n, ErrNoteDoesNotExist
}

func (r *TestNoteRepository) ReadAll(ctx context.Context) ([]Note, error) {
	if r.ReadError != nil {
		return nil, r.ReadError
	}
	r.lock.Lock()
	defer r.lock.Unlock()
	return r.Notes, nil
}

func (r *TestNoteRepository) MarkUnlocked(ctx context.Context, id uuid.UUID) (n Note, err error) {
	r.lock.Lock()
	defer r.lock.Unlock()
	for ix, stored := range r.Notes {
		if stored.ID == id {
			stored.Unlocked = true
			r.Notes[ix] = stored
			return stored, nil
		}
	}
	return n, ErrNoteDoesNotExist
}
