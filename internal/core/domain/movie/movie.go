package movie

import (
	"context"
	"time"

	c "dodoensemble/internal/core/domain/common"
	"dodoensemble/internal/core/domain/user"
)

type ID int64

type Movie struct {
	ID        ID
	Title     string
	PosterURL c.Optional[string]
	AddedBy   user.ID
	CreatedAt time.Time
}

// Swipe is one user's verdict on one movie; at most one per pair,
// re-swiping overwrites.
type Swipe struct {
	MovieID   ID
	UserID    user.ID
	Liked     bool
	CreatedAt time.Time
}

type CreateInput struct {
	Title     string
	PosterURL c.Optional[string]
	AddedBy   user.ID
	CreatedAt time.Time
}

type Repository interface {
	Create(ctx context.Context, input CreateInput) (Movie, error)
	GetByID(ctx context.Context, id ID) (Movie, error)
	ReadAll(ctx context.Context) ([]Movie, error)
}

type SwipeRepository interface {
	Save(ctx context.Context, swipe Swipe) error
	// ReadLikes returns the user IDs that swiped right on the movie.
	ReadLikes(ctx context.Context, movieID ID) ([]user.ID, error)
	// ReadMatches returns the movies every given user swiped right on.
	ReadMatches(ctx context.Context) ([]Movie, error)
}

// MatchAnnouncer pushes a freshly detected match to connected clients.
type MatchAnnouncer interface {
	AnnounceMatch(ctx context.Context, m Movie) error
}
