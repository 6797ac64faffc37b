package event

import (
	"context"
	"time"

	c "dodoensemble/internal/core/domain/common"
	"dodoensemble/internal/core/domain/user"
)

type CreateInput struct {
	Date        string
	Time        c.Optional[string]
	Title       string
	Location    c.Optional[string]
	Description c.Optional[string]
	IsMystery   bool
	CreatedBy   user.ID
	CreatedAt   time.Time
}

type UpdateInput struct {
	ID          ID
	Date        string
	Time        c.Optional[string]
	Title       string
	Location    c.Optional[string]
	Description c.Optional[string]
	IsMystery   bool
}

type Repository interface {
	Create(ctx context.Context, input CreateInput) (Event, error)
	GetByID(ctx context.Context, id ID) (Event, error)
	// ReadAll returns every stored event ordered by date; the reminder
	// dispatcher filters in process.
	ReadAll(ctx context.Context) ([]Event, error)
	Update(ctx context.Context, input UpdateInput) (Event, error)
	Delete(ctx context.Context, id ID) error
}
