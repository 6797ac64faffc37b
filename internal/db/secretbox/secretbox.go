package secretbox

import (
	"context"
	"errors"

	c "dodoensemble/internal/core/domain/common"
	e "dodoensemble/internal/core/domain/errors"
	"dodoensemble/internal/core/domain/secretbox"

	"github.com/google/uuid"
	"github.com/jackc/pgtype"
	"github.com/jackc/pgx/v4"
	"github.com/jackc/pgx/v4/pgxpool"
)

type PgxNoteRepository struct {
	db *pgxpool.Pool
}

func NewPgxNoteRepository(db *pgxpool.Pool) *PgxNoteRepository {
	if db == nil {
		panic(e.NewNilArgumentError("db"))
	}
	return &PgxNoteRepository{db: db}
}

func (r *PgxNoteRepository) Create(
	ctx context.Context,
	input secretbox.CreateInput,
) (n secretbox.Note, err error) {
	unlocksAt := pgtype.Timestamptz{Status: pgtype.Null}
	if input.UnlocksAt.IsPresent {
		unlocksAt = pgtype.Timestamptz{Time: input.UnlocksAt.Value, Status: pgtype.Present}
	}
	row := r.db.QueryRow(
		ctx,
		`INSERT INTO secret_note (id, author, title, body, unlocks_at, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6)
		 RETURNING id, author, title, body, unlocks_at, unlocked, created_at`,
		input.ID,
		int64(input.Author),
		input.Title,
		input.Body,
		unlocksAt,
		input.CreatedAt,
	)
	return scanNote(row)
}

func (r *PgxNoteRepository) GetByID(ctx context.Context, id uuid.UUID) (n secretbox.Note, err error) {
	row := r.db.QueryRow(
		ctx,
		`SELECT id, author, title, body, unlocks_at, unlocked, created_at FROM secret_note WHERE id = $1`,
		id,
	)
	n, err = scanNote(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return n, secretbox.ErrNoteDoesNotExist
	}
	return n, err
}

func (r *PgxNoteRepository) ReadAll(ctx context.Context) (notes []secretbox.Note, err error) {
	rows, err := r.db.Query(
		ctx,
		`SELECT id, author, title, body, unlocks_at, unlocked, created_at
		 FROM secret_note ORDER BY created_at DESC`,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	for rows.Next() {
		n, err := scanNote(rows)
		if err != nil {
			return nil, err
		}
		notes = append(notes, n)
	}
	return notes, rows.Err()
}

func (r *PgxNoteRepository) MarkUnlocked(ctx context.Context, id uuid.UUID) (n secretbox.Note, err error) {
	row := r.db.QueryRow(
		ctx,
		`UPDATE secret_note SET unlocked = TRUE WHERE id = $1
		 RETURNING id, author, title, body, unlocks_at, unlocked, created_at`,
		id,
	)
	n, err = scanNote(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return n, secretbox.ErrNoteDoesNotExist
	}
	return n, err
}

func scanNote(row pgx.Row) (n secretbox.Note, err error) {
	var unlocksAt pgtype.Timestamptz
	err = row.Scan(&n.ID, &n.Author, &n.Title, &n.Body, &unlocksAt, &n.Unlocked, &n.CreatedAt)
	if err != nil {
		return n, err
	}
	n.UnlocksAt = c.NewOptional(unlocksAt.Time, unlocksAt.Status == pgtype.Present)
	return n, nil
}
