package event

import (
	"context"
	"errors"

	c "dodoensemble/internal/core/domain/common"
	e "dodoensemble/internal/core/domain/errors"
	"dodoensemble/internal/core/domain/event"

	"github.com/jackc/pgtype"
	"github.com/jackc/pgx/v4"
	"github.com/jackc/pgx/v4/pgxpool"
)

type PgxEventRepository struct {
	db *pgxpool.Pool
}

func NewPgxEventRepository(db *pgxpool.Pool) *PgxEventRepository {
	if db == nil {
		panic(e.NewNilArgumentError("db"))
	}
	return &PgxEventRepository{db: db}
}

func (r *PgxEventRepository) Create(ctx context.Context, input event.CreateInput) (ev event.Event, err error) {
	row := r.db.QueryRow(
		ctx,
		`INSERT INTO event (date, time, title, location, description, is_mystery, created_by, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		 RETURNING id, date, time, title, location, description, is_mystery, created_by, created_at`,
		input.Date,
		encodeText(input.Time),
		input.Title,
		encodeText(input.Location),
		encodeText(input.Description),
		input.IsMystery,
		int64(input.CreatedBy),
		input.CreatedAt,
	)
	return scanEvent(row)
}

func (r *PgxEventRepository) GetByID(ctx context.Context, id event.ID) (ev event.Event, err error) {
	row := r.db.QueryRow(
		ctx,
		`SELECT id, date, time, title, location, description, is_mystery, created_by, created_at
		 FROM event WHERE id = $1`,
		int64(id),
	)
	ev, err = scanEvent(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return ev, event.ErrEventDoesNotExist
	}
	return ev, err
}

func (r *PgxEventRepository) ReadAll(ctx context.Context) (events []event.Event, err error) {
	rows, err := r.db.Query(
		ctx,
		`SELECT id, date, time, title, location, description, is_mystery, created_by, created_at
		 FROM event ORDER BY date, time NULLS FIRST, id`,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	for rows.Next() {
		ev, err := scanEvent(rows)
		if err != nil {
			return nil, err
		}
		events = append(events, ev)
	}
	return events, rows.Err()
}

func (r *PgxEventRepository) Update(ctx context.Context, input event.UpdateInput) (ev event.Event, err error) {
	row := r.db.QueryRow(
		ctx,
		`UPDATE event
		 SET date = $2, time = $3, title = $4, location = $5, description = $6, is_mystery = $7
		 WHERE id = $1
		 RETURNING id, date, time, title, location, description, is_mystery, created_by, created_at`,
		int64(input.ID),
		input.Date,
		encodeText(input.Time),
		input.Title,
		encodeText(input.Location),
		encodeText(input.Description),
		input.IsMystery,
	)
	ev, err = scanEvent(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return ev, event.ErrEventDoesNotExist
	}
	return ev, err
}

func (r *PgxEventRepository) Delete(ctx context.Context, id event.ID) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM event WHERE id = $1`, int64(id))
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return event.ErrEventDoesNotExist
	}
	return nil
}

func encodeText(value c.Optional[string]) pgtype.Text {
	if !value.IsPresent {
		return pgtype.Text{Status: pgtype.Null}
	}
	return pgtype.Text{String: value.Value, Status: pgtype.Present}
}

func decodeText(value pgtype.Text) c.Optional[string] {
	return c.NewOptional(value.String, value.Status == pgtype.Present)
}

func scanEvent(row pgx.Row) (ev event.Event, err error) {
	var eventTime, location, description pgtype.Text
	err = row.Scan(
		&ev.ID,
		&ev.Date,
		&eventTime,
		&ev.Title,
		&location,
		&description,
		&ev.IsMystery,
		&ev.CreatedBy,
		&ev.CreatedAt,
	)
	if err != nil {
		return ev, err
	}
	ev.Time = decodeText(eventTime)
	ev.Location = decodeText(location)
	ev.Description = decodeText(description)
	return ev, nil
}
