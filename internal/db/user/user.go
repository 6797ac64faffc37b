package user

import (
	"context"
	"errors"

	e "dodoensemble/internal/core/domain/errors"
	"dodoensemble/internal/core/domain/user"

	"github.com/jackc/pgx/v4"
	"github.com/jackc/pgx/v4/pgxpool"
)

type PgxUserRepository struct {
	db *pgxpool.Pool
}

func NewPgxUserRepository(db *pgxpool.Pool) *PgxUserRepository {
	if db == nil {
		panic(e.NewNilArgumentError("db"))
	}
	return &PgxUserRepository{db: db}
}

func (r *PgxUserRepository) GetByName(ctx context.Context, name string) (u user.User, err error) {
	row := r.db.QueryRow(
		ctx,
		`SELECT id, name, created_at FROM "user" WHERE LOWER(name) = LOWER($1)`,
		name,
	)
	err = row.Scan(&u.ID, &u.Name, &u.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return u, user.ErrUserDoesNotExist
	}
	return u, err
}

func (r *PgxUserRepository) GetByID(ctx context.Context, id user.ID) (u user.User, err error) {
	row := r.db.QueryRow(
		ctx,
		`SELECT id, name, created_at FROM "user" WHERE id = $1`,
		int64(id),
	)
	err = row.Scan(&u.ID, &u.Name, &u.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return u, user.ErrUserDoesNotExist
	}
	return u, err
}

// EnsureExists creates the configured partner accounts on first start.
// Existing rows are left untouched.
func (r *PgxUserRepository) EnsureExists(ctx context.Context, names []string) error {
	for _, name := range names {
		_, err := r.db.Exec(
			ctx,
			`INSERT INTO "user" (name) VALUES ($1) ON CONFLICT (name) DO NOTHING`,
			name,
		)
		if err != nil {
			return err
		}
	}
	return nil
}
