package subscription

import (
	"context"

	e "dodoensemble/internal/core/domain/errors"
	"dodoensemble/internal/core/domain/subscription"

	"github.com/jackc/pgx/v4/pgxpool"
)

type PgxSubscriptionRepository struct {
	db *pgxpool.Pool
}

func NewPgxSubscriptionRepository(db *pgxpool.Pool) *PgxSubscriptionRepository {
	if db == nil {
		panic(e.NewNilArgumentError("db"))
	}
	return &PgxSubscriptionRepository{db: db}
}

func (r *PgxSubscriptionRepository) Upsert(
	ctx context.Context,
	input subscription.UpsertInput,
) (sub subscription.Subscription, err error) {
	row := r.db.QueryRow(
		ctx,
		`INSERT INTO push_subscription (user_id, endpoint, p256dh, auth, updated_at)
		 VALUES ($1, $2, $3, $4, $5)
		 ON CONFLICT (user_id) DO UPDATE
		 SET endpoint = EXCLUDED.endpoint,
		     p256dh = EXCLUDED.p256dh,
		     auth = EXCLUDED.auth,
		     updated_at = EXCLUDED.updated_at
		 RETURNING id, user_id, endpoint, p256dh, auth, updated_at`,
		int64(input.UserID),
		input.Endpoint,
		input.Keys.P256dh,
		input.Keys.Auth,
		input.UpdatedAt,
	)
	err = row.Scan(&sub.ID, &sub.UserID, &sub.Endpoint, &sub.Keys.P256dh, &sub.Keys.Auth, &sub.UpdatedAt)
	return sub, err
}

func (r *PgxSubscriptionRepository) ReadAll(
	ctx context.Context,
) (subscriptions []subscription.Subscription, err error) {
	rows, err := r.db.Query(
		ctx,
		`SELECT id, user_id, endpoint, p256dh, auth, updated_at FROM push_subscription ORDER BY id`,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	for rows.Next() {
		var sub subscription.Subscription
		err = rows.Scan(&sub.ID, &sub.UserID, &sub.Endpoint, &sub.Keys.P256dh, &sub.Keys.Auth, &sub.UpdatedAt)
		if err != nil {
			return nil, err
		}
		subscriptions = append(subscriptions, sub)
	}
	return subscriptions, rows.Err()
}
