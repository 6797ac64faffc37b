package movie

import (
	"context"
	"errors"

	c "dodoensemble/internal/core/domain/common"
	e "dodoensemble/internal/core/domain/errors"
	"dodoensemble/internal/core/domain/movie"
	"dodoensemble/internal/core/domain/user"

	"github.com/jackc/pgconn"
	"github.com/jackc/pgtype"
	"github.com/jackc/pgx/v4"
	"github.com/jackc/pgx/v4/pgxpool"
)

const foreignKeyViolationCode = "23503"

type PgxMovieRepository struct {
	db *pgxpool.Pool
}

func NewPgxMovieRepository(db *pgxpool.Pool) *PgxMovieRepository {
	if db == nil {
		panic(e.NewNilArgumentError("db"))
	}
	return &PgxMovieRepository{db: db}
}

func (r *PgxMovieRepository) Create(ctx context.Context, input movie.CreateInput) (m movie.Movie, err error) {
	posterURL := pgtype.Text{Status: pgtype.Null}
	if input.PosterURL.IsPresent {
		posterURL = pgtype.Text{String: input.PosterURL.Value, Status: pgtype.Present}
	}
	row := r.db.QueryRow(
		ctx,
		`INSERT INTO movie (title, poster_url, added_by, created_at)
		 VALUES ($1, $2, $3, $4)
		 RETURNING id, title, poster_url, added_by, created_at`,
		input.Title,
		posterURL,
		int64(input.AddedBy),
		input.CreatedAt,
	)
	return scanMovie(row)
}

func (r *PgxMovieRepository) GetByID(ctx context.Context, id movie.ID) (m movie.Movie, err error) {
	row := r.db.QueryRow(
		ctx,
		`SELECT id, title, poster_url, added_by, created_at FROM movie WHERE id = $1`,
		int64(id),
	)
	m, err = scanMovie(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return m, movie.ErrMovieDoesNotExist
	}
	return m, err
}

func (r *PgxMovieRepository) ReadAll(ctx context.Context) (movies []movie.Movie, err error) {
	rows, err := r.db.Query(
		ctx,
		`SELECT id, title, poster_url, added_by, created_at FROM movie ORDER BY id`,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	for rows.Next() {
		m, err := scanMovie(rows)
		if err != nil {
			return nil, err
		}
		movies = append(movies, m)
	}
	return movies, rows.Err()
}

func scanMovie(row pgx.Row) (m movie.Movie, err error) {
	var posterURL pgtype.Text
	err = row.Scan(&m.ID, &m.Title, &posterURL, &m.AddedBy, &m.CreatedAt)
	if err != nil {
		return m, err
	}
	m.PosterURL = c.NewOptional(posterURL.String, posterURL.Status == pgtype.Present)
	return m, nil
}

type PgxSwipeRepository struct {
	db *pgxpool.Pool
}

func NewPgxSwipeRepository(db *pgxpool.Pool) *PgxSwipeRepository {
	if db == nil {
		panic(e.NewNilArgumentError("db"))
	}
	return &PgxSwipeRepository{db: db}
}

func (r *PgxSwipeRepository) Save(ctx context.Context, swipe movie.Swipe) error {
	_, err := r.db.Exec(
		ctx,
		`INSERT INTO movie_swipe (movie_id, user_id, liked, created_at)
		 VALUES ($1, $2, $3, $4)
		 ON CONFLICT (movie_id, user_id) DO UPDATE
		 SET liked = EXCLUDED.liked, created_at = EXCLUDED.created_at`,
		int64(swipe.MovieID),
		int64(swipe.UserID),
		swipe.Liked,
		swipe.CreatedAt,
	)
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == foreignKeyViolationCode {
		return movie.ErrMovieDoesNotExist
	}
	return err
}

func (r *PgxSwipeRepository) ReadLikes(ctx context.Context, movieID movie.ID) (likes []user.ID, err error) {
	rows, err := r.db.Query(
		ctx,
		`SELECT user_id FROM movie_swipe WHERE movie_id = $1 AND liked`,
		int64(movieID),
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	for rows.Next() {
		var likerID int64
		if err = rows.Scan(&likerID); err != nil {
			return nil, err
		}
		likes = append(likes, user.ID(likerID))
	}
	return likes, rows.Err()
}

func (r *PgxSwipeRepository) ReadMatches(ctx context.Context) (matches []movie.Movie, err error) {
	rows, err := r.db.Query(
		ctx,
		`SELECT m.id, m.title, m.poster_url, m.added_by, m.created_at
		 FROM movie m
		 JOIN movie_swipe s ON s.movie_id = m.id AND s.liked
		 GROUP BY m.id
		 HAVING COUNT(DISTINCT s.user_id) >= 2
		 ORDER BY m.id`,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	for rows.Next() {
		m, err := scanMovie(rows)
		if err != nil {
			return nil, err
		}
		matches = append(matches, m)
	}
	return matches, rows.Err()
}
