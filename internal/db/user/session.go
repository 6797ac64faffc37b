package user

import (
	"context"
	"errors"

	e "dodoensemble/internal/core/domain/errors"
	"dodoensemble/internal/core/domain/user"

	"github.com/jackc/pgx/v4"
	"github.com/jackc/pgx/v4/pgxpool"
)

type PgxSessionRepository struct {
	db *pgxpool.Pool
}

func NewPgxSessionRepository(db *pgxpool.Pool) *PgxSessionRepository {
	if db == nil {
		panic(e.NewNilArgumentError("db"))
	}
	return &PgxSessionRepository{db: db}
}

func (r *PgxSessionRepository) Create(ctx context.Context, input user.CreateSessionInput) error {
	_, err := r.db.Exec(
		ctx,
		`INSERT INTO session (token, user_id, created_at) VALUES ($1, $2, $3)`,
		string(input.Token),
		int64(input.UserID),
		input.CreatedAt,
	)
	return err
}

func (r *PgxSessionRepository) GetUserByToken(
	ctx context.Context,
	token user.SessionToken,
) (u user.User, err error) {
	row := r.db.QueryRow(
		ctx,
		`SELECT u.id, u.name, u.created_at
		 FROM session s JOIN "user" u ON u.id = s.user_id
		 WHERE s.token = $1`,
		string(token),
	)
	err = row.Scan(&u.ID, &u.Name, &u.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return u, user.ErrUserDoesNotExist
	}
	return u, err
}

func (r *PgxSessionRepository) Delete(
	ctx context.Context,
	token user.SessionToken,
) (userID user.ID, err error) {
	row := r.db.QueryRow(
		ctx,
		`DELETE FROM session WHERE token = $1 RETURNING user_id`,
		string(token),
	)
	var rawUserID int64
	err = row.Scan(&rawUserID)
	if errors.Is(err, pgx.ErrNoRows) {
		return userID, user.ErrSessionDoesNotExist
	}
	return user.ID(rawUserID), err
}
