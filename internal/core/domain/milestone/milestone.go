package milestone

import (
	"context"
	"time"

	c "dodoensemble/internal/core/domain/common"
	"dodoensemble/internal/core/domain/user"
)

type ID int64

// Milestone is a dated entry on the relationship timeline.
type Milestone struct {
	ID          ID
	Date        string
	Title       string
	Description c.Optional[string]
	CreatedBy   user.ID
	CreatedAt   time.Time
}

type CreateInput struct {
	Date        string
	Title       string
	Description c.Optional[string]
	CreatedBy   user.ID
	CreatedAt   time.Time
}

type Repository interface {
	Create(ctx context.Context, input CreateInput) (Milestone, error)
	// ReadAll returns milestones ordered by date ascending.
	ReadAll(ctx context.Context) ([]Milestone, error)
	Delete(ctx context.Context, id ID) error
}
