// Package catalog talks to the movie catalog. It exposes one capability
// interface with a live TMDB-backed implementation and an offline mock,
// both governed by the same filtering and pagination rules.
package catalog

import "strconv"

type Movie struct {
	ID          int    `json:"id"`
	Title       string `json:"title"`
	Overview    string `json:"overview,omitempty"`
	ReleaseDate string `json:"release_date,omitempty"` // YYYY-MM-DD
	PosterPath  string `json:"poster_path,omitempty"`
	GenreIDs    []int  `json:"genre_ids,omitempty"`
}

type Genre struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

type MovieDetails struct {
	Movie
	Genres []Genre `json:"genres"`
}

type Page struct {
	Page         int     `json:"page"`
	Results      []Movie `json:"results"`
	TotalPages   int     `json:"total_pages"`
	TotalResults int     `json:"total_results"`
}

// Filter narrows list operations. Zero values mean "not requested".
type Filter struct {
	Page     int
	Year     int
	GenreIDs []int
}

// ReleaseYear parses the year out of the release date.
// ok is false when the date is absent or malformed.
func (m Movie) ReleaseYear() (int, bool) {
	if len(m.ReleaseDate) < 4 {
		return 0, false
	}
	y, err := strconv.Atoi(m.ReleaseDate[:4])
	if err != nil || y <= 0 {
		return 0, false
	}
	return y, true
}
