package catalog

import "context"

// Client is the port for the movie catalog. Implementations are chosen
// once at construction; callers never branch on live vs. mock.
type Client interface {
	Trending(ctx context.Context, page int) (Page, error)
	Search(ctx context.Context, query string, f Filter) (Page, error)
	Discover(ctx context.Context, f Filter) (Page, error)
	Details(ctx context.Context, id int) (MovieDetails, error)
	// SearchIDByTitle resolves a title (and optional YYYY year) to a
	// catalog id. ok is false when nothing matched; that is not an error.
	SearchIDByTitle(ctx context.Context, title, year string) (id int, ok bool, err error)
	Similar(ctx context.Context, id int) ([]Movie, error)
	Genres(ctx context.Context) ([]Genre, error)
}
