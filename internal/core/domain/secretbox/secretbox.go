package secretbox

import (
	"context"
	"time"

	c "dodoensemble/internal/core/domain/common"
	"dodoensemble/internal/core/domain/user"

	"github.com/google/uuid"
)

// Note is a message left for the partner inside the secret box. A note
// with an unlock time stays sealed until that instant; a note without
// one can be opened manually at any moment.
type Note struct {
	ID        uuid.UUID
	Author    user.ID
	Title     string
	Body      string
	UnlocksAt c.Optional[time.Time]
	Unlocked  bool
	CreatedAt time.Time
}

// IsReadable reports whether the note body may be shown at the given
// instant.
func (n Note) IsReadable(now time.Time) bool {
	if n.Unlocked {
		return true
	}
	return n.UnlocksAt.IsPresent && !now.Before(n.UnlocksAt.Value)
}

type CreateInput struct {
	ID        uuid.UUID
	Author    user.ID
	Title     string
	Body      string
	UnlocksAt c.Optional[time.Time]
	CreatedAt time.Time
}

type Repository interface {
	Create(ctx context.Context, input CreateInput) (Note, error)
	GetByID(ctx context.Context, id uuid.UUID) (Note, error)
	ReadAll(ctx context.Context) ([]Note, error)
	MarkUnlocked(ctx context.Context, id uuid.UUID) (Note, error)
}
