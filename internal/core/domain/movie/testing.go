package movie

import (
	"context"
	"sync"

	"dodoensemble/internal/core/domain/user"
)

type TestMovieRepository struct {
	Movies      []Movie
	CreateError error
	ReadError   error
	nextID      ID
	lock        sync.Mutex
}

func NewTestMovieRepository(movies ...Movie) *TestMovieRepository {
	return &TestMovieRepository{Movies: movies}
}

func (r *TestMovieRepository) Create(ctx context.Context, input CreateInput) (m Movie, err error) {
	if r.CreateError != nil {
		return m, r.CreateError
	}
	r.lock.Lock()
	defer r.lock.Unlock()
	r.nextID++
	m = Movie{
		ID:        r.nextID,
		Title:     input.Title,
		PosterURL: input.PosterURL,
		AddedBy:   input.AddedBy,
		CreatedAt: input.CreatedAt,
	}
	r.Movies = append(r.Movies, m)
	return m, nil
}

func (r *TestMovieRepository) GetByID(ctx context.Context, id ID) (m Movie, err error) {
	r.lock.Lock()
	defer r.lock.Unlock()
	for _, m := range r.Movies {
		if m.ID == id {
			return m, nil
		}
	}
	return m, ErrMovieDoesNotExist
}

func (r *TestMovieRepository) ReadAll(ctx context.Context) ([]Movie, error) {
	if r.ReadError != nil {
		return nil, r.ReadError
	}
	r.lock.Lock()
	defer r.lock.Unlock()
	return r.Movies, nil
}

type TestSwipeRepository struct {
	Swipes    []Swipe
	Matches   []Movie
	SaveError error
	ReadError error
	lock      sync.Mutex
}

func NewTestSwipeRepository(swipes ...Swipe) *TestSwipeRepository {
	return &TestSwipeRepository{Swipes: swipes}
}

func (r *TestSwipeRepository) Save(ctx context.Context, swipe Swipe) error {
	if r.SaveError != nil {
		return r.SaveError
	}
	r.lock.Lock()
	defer r.lock.Unlock()
	for ix, stored := range r.Swipes {
		if stored.MovieID == swipe.MovieID && stored.UserID == swipe.UserID {
			r.Swipes[ix] = swipe
			return nil
		}
	}
	r.Swipes = append(r.Swipes, swipe)
	return nil
}

func (r *TestSwipeRepository) ReadLikes(ctx context.Context, movieID ID) ([]user.ID, error) {
	if r.ReadError != nil {
		return nil, r.ReadError
	}
	r.lock.Lock()
	defer r.lock.Unlock()
	likes := make([]user.ID, 0, 2)
	for _, stored := range r.Swipes {
		if stored.MovieID == movieID && stored.Liked {
			likes = append(likes, stored.UserID)
		}
	}
	return likes, nil
}

func (r *TestSwipeRepository) ReadMatches(ctx context.Context) ([]Movie, error) {
	if r.ReadError != nil {
		return nil, r.ReadError
	}
	return r.Matches, nil
}

type TestMatchAnnouncer struct {
	Announced []Movie
	Error     error
	lock      sync.Mutex
}

func NewTestMatchAnnouncer() *TestMatchAnnouncer {
	return &TestMatchAnnouncer{}
}

func (a *TestMatchAnnouncer) AnnounceMatch(ctx context.Context, m Movie) error {
	if a.Error != nil {
		return a.Error
	}
	a.lock.Lock()
	defer a.lock.Unlock()
	a.Announced = append(a.Announced, m)
	return nil
}
