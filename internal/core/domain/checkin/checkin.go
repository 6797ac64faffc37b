package checkin

import (
	"context"
	"time"

	"dodoensemble/internal/core/domain/user"
)

// Checkin is one partner's yes/no answer for one calendar day. The day
// is a naive "2006-01-02" string, matching the agenda.
type Checkin struct {
	UserID    user.ID
	Date      string
	Answer    bool
	UpdatedAt time.Time
}

type UpsertInput struct {
	UserID    user.ID
	Date      string
	Answer    bool
	UpdatedAt time.Time
}

type Repository interface {
	// Upsert keeps at most one answer per user per day, last write wins.
	Upsert(ctx context.Context, input UpsertInput) (Checkin, error)
	ReadByDate(ctx context.Context, date string) ([]Checkin, error)
}
