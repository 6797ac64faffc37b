package milestone

import (
	"context"

	c "dodoensemble/internal/core/domain/common"
	e "dodoensemble/internal/core/domain/errors"
	"dodoensemble/internal/core/domain/milestone"

	"github.com/jackc/pgtype"
	"github.com/jackc/pgx/v4"
	"github.com/jackc/pgx/v4/pgxpool"
)

type PgxMilestoneRepository struct {
	db *pgxpool.Pool
}

func NewPgxMilestoneRepository(db *pgxpool.Pool) *PgxMilestoneRepository {
	if db == nil {
		panic(e.NewNilArgumentError("db"))
	}
	return &PgxMilestoneRepository{db: db}
}

func (r *PgxMilestoneRepository) Create(
	ctx context.Context,
	input milestone.CreateInput,
) (m milestone.Milestone, err error) {
	description := pgtype.Text{Status: pgtype.Null}
	if input.Description.IsPresent {
		description = pgtype.Text{String: input.Description.Value, Status: pgtype.Present}
	}
	row := r.db.QueryRow(
		ctx,
		`INSERT INTO milestone (date, title, description, created_by, created_at)
		 VALUES ($1, $2, $3, $4, $5)
		 RETURNING id, date, title, description, created_by, created_at`,
		input.Date,
		input.Title,
		description,
		int64(input.CreatedBy),
		input.CreatedAt,
	)
	return scanMilestone(row)
}

func (r *PgxMilestoneRepository) ReadAll(ctx context.Context) (milestones []milestone.Milestone, err error) {
	rows, err := r.db.Query(
		ctx,
		`SELECT id, date, title, description, created_by, created_at FROM milestone ORDER BY date, id`,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	for rows.Next() {
		m, err := scanMilestone(rows)
		if err != nil {
			return nil, err
		}
		milestones = append(milestones, m)
	}
	return milestones, rows.Err()
}

func (r *PgxMilestoneRepository) Delete(ctx context.Context, id milestone.ID) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM milestone WHERE id = $1`, int64(id))
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return milestone.ErrMilestoneDoesNotExist
	}
	return nil
}

func scanMilestone(row pgx.Row) (m milestone.Milestone, err error) {
	var description pgtype.Text
	err = row.Scan(&m.ID, &m.Date, &m.Title, &description, &m.CreatedBy, &m.CreatedAt)
	if err != nil {
		return m, err
	}
	m.Description = c.NewOptional(description.String, description.Status == pgtype.Present)
	return m, nil
}
