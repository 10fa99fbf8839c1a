// Package favorites persists a user's saved movies.
package favorites

import (
	"context"
	"errors"
	"time"
)

var (
	// ErrNotFound covers both missing ids and favorites owned by someone else.
	ErrNotFound = errors.New("favorites: not found")
	// ErrDuplicate reports a movie already saved by the user.
	ErrDuplicate = errors.New("favorites: movie already saved")
)

type Favorite struct {
	ID            string    `json:"id"`
	UserID        string    `json:"-"`
	MovieID       int       `json:"movie_id"`
	Title         string    `json:"title"`
	ReleaseDate   string    `json:"release_date,omitempty"`
	PosterPath    string    `json:"poster_path,omitempty"`
	CustomTitle   string    `json:"custom_title,omitempty"`
	PersonalNotes string    `json:"personal_notes,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
}

// Update carries the mutable fields. Nil means "leave unchanged",
// a pointer to the empty string clears the field.
type Update struct {
	CustomTitle   *string
	PersonalNotes *string
}

type Store interface {
	ListByUser(ctx context.Context, userID string) ([]Favorite, error)
	Create(ctx context.Context, fav Favorite) (Favorite, error)
	Update(ctx context.Context, userID, id string, upd Update) (Favorite, error)
	Delete(ctx context.Context, userID, id string) error
}
