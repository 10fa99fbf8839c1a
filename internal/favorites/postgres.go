package favorites

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PostgresStore persists favorites in Postgres.
//
// Expected schema:
//
//	CREATE TABLE favorites (
//	    id             UUID PRIMARY KEY,
//	    user_id        TEXT NOT NULL,
//	    movie_id       INTEGER NOT NULL,
//	    title          TEXT NOT NULL,
//	    release_date   TEXT NOT NULL DEFAULT '',
//	    poster_path    TEXT NOT NULL DEFAULT '',
//	    custom_title   TEXT NOT NULL DEFAULT '',
//	    personal_notes TEXT NOT NULL DEFAULT '',
//	    created_at     TIMESTAMPTZ NOT NULL DEFAULT now(),
//	    UNIQUE (user_id, movie_id)
//	);
type PostgresStore struct {
	pool *pgxpool.Pool
}

func NewPostgresStore(pool *pgxpool.Pool) *PostgresStore {
	return &PostgresStore{pool: pool}
}

func (s *PostgresStore) ListByUser(ctx context.Context, userID string) ([]Favorite, error) {
	const q = `SELECT id, user_id, movie_id, title, release_date, poster_path,
	                  custom_title, personal_notes, created_at
	           FROM favorites WHERE user_id = $1
	           ORDER BY created_at DESC`
	rows, err := s.pool.Query(ctx, q, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Favorite
	for rows.Next() {
		var f Favorite
		if err := rows.Scan(&f.ID, &f.UserID, &f.MovieID, &f.Title, &f.ReleaseDate,
			&f.PosterPath, &f.CustomTitle, &f.PersonalNotes, &f.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, f)
	}
	return out, rows.Err()
}

func (s *PostgresStore) Create(ctx context.Context, fav Favorite) (Favorite, error) {
	const q = `INSERT INTO favorites
	             (id, user_id, movie_id, title, release_date, poster_path, custom_title, personal_notes)
	           VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	           RETURNING created_at`
	fav.ID = uuid.NewString()
	err := s.pool.QueryRow(ctx, q, fav.ID, fav.UserID, fav.MovieID, fav.Title,
		fav.ReleaseDate, fav.PosterPath, fav.CustomTitle, fav.PersonalNotes).Scan(&fav.CreatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return Favorite{}, ErrDuplicate
		}
		return Favorite{}, err
	}
	return fav, nil
}

func (s *PostgresStore) Update(ctx context.Context, userID, id string, upd Update) (Favorite, error) {
	const q = `UPDATE favorites SET
	             custom_title   = COALESCE($3, custom_title),
	             personal_notes = COALESCE($4, personal_notes)
	           WHERE id = $1 AND user_id = $2
	           RETURNING id, user_id, movie_id, title, release_date, poster_path,
	                     custom_title, personal_notes, created_at`
	var f Favorite
	err := s.pool.QueryRow(ctx, q, id, userID, upd.CustomTitle, upd.PersonalNotes).
		Scan(&f.ID, &f.UserID, &f.MovieID, &f.Title, &f.ReleaseDate,
			&f.PosterPath, &f.CustomTitle, &f.PersonalNotes, &f.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return Favorite{}, ErrNotFound
		}
		return Favorite{}, err
	}
	return f, nil
}

func (s *PostgresStore) Delete(ctx context.Context, userID, id string) error {
	const q = `DELETE FROM favorites WHERE id = $1 AND user_id = $2`
	tag, err := s.pool.Exec(ctx, q, id, userID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
