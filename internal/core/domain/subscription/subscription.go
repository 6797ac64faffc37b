package subscription

import (
	"context"
	"time"

	"dodoensemble/internal/core/domain/user"
)

type ID int64

// Keys are the browser-generated credentials needed to encrypt a push
// message for the endpoint. Opaque to everything but the push sender.
type Keys struct {
	P256dh string
	Auth   string
}

type Subscription struct {
	ID        ID
	UserID    user.ID
	Endpoint  string
	Keys      Keys
	UpdatedAt time.Time
}

type UpsertInput struct {
	UserID    user.ID
	Endpoint  string
	Keys      Keys
	UpdatedAt time.Time
}

type Repository interface {
	// Upsert replaces the user's subscription if one exists. The write
	// path keeps at most one row per user, but readers must not rely
	// on that.
	Upsert(ctx context.Context, input UpsertInput) (Subscription, error)
	ReadAll(ctx context.Context) ([]Subscription, error)
}
