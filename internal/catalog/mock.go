package catalog

import (
	"context"
	"sort"
	"strings"
)

// MockClient serves the built-in dataset. It exists so the rest of the
// service, and its tests, run without a TMDB key while observing exactly
// the same filter and pagination behavior as the live client.
type MockClient struct {
	data []MovieDetails
}

func NewMockClient() *MockClient {
	return &MockClient{data: mockDataset}
}

func (c *MockClient) movies() []Movie {
	out := make([]Movie, 0, len(c.data))
	for _, d := range c.data {
		out = append(out, d.Movie)
	}
	return out
}

func (c *MockClient) Trending(_ context.Context, page int) (Page, error) {
	return Paginate(c.movies(), page), nil
}

func (c *MockClient) Search(_ context.Context, query string, f Filter) (Page, error) {
	q := strings.ToLower(strings.TrimSpace(query))
	matched := make([]Movie, 0, len(c.data))
	for _, m := range c.movies() {
		if q == "" || strings.Contains(strings.ToLower(m.Title+" "+m.Overview), q) {
			matched = append(matched, m)
		}
	}
	return Paginate(ApplyFilters(matched, f), f.Page), nil
}

func (c *MockClient) Discover(_ context.Context, f Filter) (Page, error) {
	return Paginate(ApplyFilters(c.movies(), f), f.Page), nil
}

func (c *MockClient) find(id int) (MovieDetails, bool) {
	for _, d := range c.data {
		if d.ID == id {
			return d, true
		}
	}
	return MovieDetails{}, false
}

func (c *MockClient) Details(_ context.Context, id int) (MovieDetails, error) {
	if d, ok := c.find(id); ok {
		return d, nil
	}
	return MovieDetails{}, ErrNotFound
}

func (c *MockClient) SearchIDByTitle(_ context.Context, title, year string) (int, bool, error) {
	want := strings.ToLower(strings.TrimSpace(title))
	if want == "" {
		return 0, false, nil
	}

	best := 0
	for _, m := range c.movies() {
		have := strings.ToLower(m.Title)
		if have != want && !strings.Contains(have, want) {
			continue
		}
		if year != "" && len(m.ReleaseDate) >= 4 && m.ReleaseDate[:4] == year {
			return m.ID, true, nil
		}
		if best == 0 {
			best = m.ID
		}
	}
	if best == 0 {
		return 0, false, nil
	}
	return best, true, nil
}

// Similar returns every other movie sharing at least one genre with the
// subject, in dataset order.
func (c *MockClient) Similar(_ context.Context, id int) ([]Movie, error) {
	subject, ok := c.find(id)
	if !ok {
		return nil, ErrNotFound
	}

	similar := make([]Movie, 0, len(c.data))
	for _, m := range c.movies() {
		if m.ID == id {
			continue
		}
		if matchesAnyGenre(m, subject.GenreIDs) {
			similar = append(similar, m)
		}
	}
	return similar, nil
}

func (c *MockClient) Genres(_ context.Context) ([]Genre, error) {
	seen := map[int]Genre{}
	for _, d := range c.data {
		for _, g := range d.Genres {
			seen[g.ID] = g
		}
	}
	out := make([]Genre, 0, len(seen))
	for _, g := range seen {
		out = append(out, g)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}
