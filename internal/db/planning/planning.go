package planning

import (
	"context"

	e "dodoensemble/internal/core/domain/errors"
	"dodoensemble/internal/core/domain/planning"
	"dodoensemble/internal/core/domain/user"

	"github.com/jackc/pgx/v4"
	"github.com/jackc/pgx/v4/pgxpool"
)

type PgxPlanningRepository struct {
	db *pgxpool.Pool
}

func NewPgxPlanningRepository(db *pgxpool.Pool) *PgxPlanningRepository {
	if db == nil {
		panic(e.NewNilArgumentError("db"))
	}
	return &PgxPlanningRepository{db: db}
}

// SaveWeek replaces the user's week inside one transaction so readers
// never observe a half-written grid.
func (r *PgxPlanningRepository) SaveWeek(
	ctx context.Context,
	userID user.ID,
	weekStart string,
	entries []planning.Entry,
) error {
	return r.db.BeginTxFunc(ctx, pgx.TxOptions{}, func(tx pgx.Tx) error {
		_, err := tx.Exec(
			ctx,
			`DELETE FROM planning_entry WHERE user_id = $1 AND week_start = $2`,
			int64(userID),
			weekStart,
		)
		if err != nil {
			return err
		}
		for _, entry := range entries {
			_, err = tx.Exec(
				ctx,
				`INSERT INTO planning_entry (user_id, week_start, weekday, slot)
				 VALUES ($1, $2, $3, $4)`,
				int64(entry.UserID),
				entry.WeekStart,
				entry.Weekday,
				entry.Slot,
			)
			if err != nil {
				return err
			}
		}
		return nil
	})
}

func (r *PgxPlanningRepository) ReadWeek(
	ctx context.Context,
	weekStart string,
) (entries []planning.Entry, err error) {
	rows, err := r.db.Query(
		ctx,
		`SELECT user_id, week_start, weekday, slot
		 FROM planning_entry WHERE week_start = $1 ORDER BY user_id, weekday`,
		weekStart,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	for rows.Next() {
		var entry planning.Entry
		if err = rows.Scan(&entry.UserID, &entry.WeekStart, &entry.Weekday, &entry.Slot); err != nil {
			return nil, err
		}
		entries = append(entries, entry)
	}
	return entries, rows.Err()
}
