package checkin

import (
	"context"

	"dodoensemble/internal/core/domain/checkin"
	e "dodoensemble/internal/core/domain/errors"

	"github.com/jackc/pgx/v4/pgxpool"
)

type PgxCheckinRepository struct {
	db *pgxpool.Pool
}

func NewPgxCheckinRepository(db *pgxpool.Pool) *PgxCheckinRepository {
	if db == nil {
		panic(e.NewNilArgumentError("db"))
	}
	return &PgxCheckinRepository{db: db}
}

func (r *PgxCheckinRepository) Upsert(
	ctx context.Context,
	input checkin.UpsertInput,
) (ch checkin.Checkin, err error) {
	row := r.db.QueryRow(
		ctx,
		`INSERT INTO daily_checkin (user_id, date, answer, updated_at)
		 VALUES ($1, $2, $3, $4)
		 ON CONFLICT (user_id, date) DO UPDATE
		 SET answer = EXCLUDED.answer, updated_at = EXCLUDED.updated_at
		 RETURNING user_id, date, answer, updated_at`,
		int64(input.UserID),
		input.Date,
		input.Answer,
		input.UpdatedAt,
	)
	err = row.Scan(&ch.UserID, &ch.Date, &ch.Answer, &ch.UpdatedAt)
	return ch, err
}

func (r *PgxCheckinRepository) ReadByDate(
	ctx context.Context,
	date string,
) (checkins []checkin.Checkin, err error) {
	rows, err := r.db.Query(
		ctx,
		`SELECT user_id, date, answer, updated_at FROM daily_checkin WHERE date = $1 ORDER BY user_id`,
		date,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	for rows.Next() {
		var ch checkin.Checkin
		if err = rows.Scan(&ch.UserID, &ch.Date, &ch.Answer, &ch.UpdatedAt); err != nil {
			return nil, err
		}
		checkins = append(checkins, ch)
	}
	return checkins, rows.Err()
}
