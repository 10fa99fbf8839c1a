package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"
)

const defaultBaseURL = "https://api.themoviedb.org/3"

// TMDBClient is the live catalog implementation. Genre and year semantics
// are applied locally through the shared pipeline so the live path and the
// mock path never diverge; upstream parameters only pre-narrow candidates.
type TMDBClient struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
}

func NewTMDBClient(baseURL, apiKey string) *TMDBClient {
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	return &TMDBClient{
		baseURL:    strings.TrimRight(baseURL, "/"),
		apiKey:     apiKey,
		httpClient: &http.Client{Timeout: 10 * time.Second},
	}
}

type tmdbMovie struct {
	ID          int    `json:"id"`
	Title       string `json:"title"`
	Overview    string `json:"overview"`
	ReleaseDate string `json:"release_date"`
	PosterPath  string `json:"poster_path"`
	GenreIDs    []int  `json:"genre_ids"`
}

type tmdbPage struct {
	Page         int         `json:"page"`
	Results      []tmdbMovie `json:"results"`
	TotalPages   int         `json:"total_pages"`
	TotalResults int         `json:"total_results"`
}

type tmdbDetails struct {
	ID          int     `json:"id"`
	Title       string  `json:"title"`
	Overview    string  `json:"overview"`
	ReleaseDate string  `json:"release_date"`
	PosterPath  string  `json:"poster_path"`
	Genres      []Genre `json:"genres"`
}

type tmdbGenreList struct {
	Genres []Genre `json:"genres"`
}

func (c *TMDBClient) Trending(ctx context.Context, page int) (Page, error) {
	q := url.Values{"page": {strconv.Itoa(clampPage(page, 0))}}
	var out tmdbPage
	if err := c.get(ctx, "trending", "/trending/movie/week", q, &out); err != nil {
		return Page{}, err
	}
	return out.toPage(), nil
}

func (c *TMDBClient) Search(ctx context.Context, query string, f Filter) (Page, error) {
	q := url.Values{
		"query":         {query},
		"page":          {strconv.Itoa(clampPage(f.Page, 0))},
		"include_adult": {"false"},
		"language":      {"en-US"},
	}
	var out tmdbPage
	if err := c.get(ctx, "search", "/search/movie", q, &out); err != nil {
		return Page{}, err
	}
	if f.Year == 0 && len(f.GenreIDs) == 0 {
		return out.toPage(), nil
	}
	return Paginate(ApplyFilters(out.movies(), f), f.Page), nil
}

func (c *TMDBClient) Discover(ctx context.Context, f Filter) (Page, error) {
	q := url.Values{
		"page":          {strconv.Itoa(clampPage(f.Page, 0))},
		"include_adult": {"false"},
		"language":      {"en-US"},
		"sort_by":       {"popularity.desc"},
	}
	// Pipe-joined genres ask upstream for the same any-of match the local
	// pipeline applies. The year is deliberately not forwarded: a strict
	// upstream year filter would leave nothing to relax onto.
	if len(f.GenreIDs) > 0 {
		q.Set("with_genres", joinInts(f.GenreIDs, "|"))
	}
	var out tmdbPage
	if err := c.get(ctx, "discover", "/discover/movie", q, &out); err != nil {
		return Page{}, err
	}
	if f.Year == 0 && len(f.GenreIDs) == 0 {
		return out.toPage(), nil
	}
	return Paginate(ApplyFilters(out.movies(), f), f.Page), nil
}

func (c *TMDBClient) Details(ctx context.Context, id int) (MovieDetails, error) {
	var out tmdbDetails
	if err := c.get(ctx, "details", "/movie/"+strconv.Itoa(id), url.Values{"language": {"en-US"}}, &out); err != nil {
		return MovieDetails{}, err
	}

	genreIDs := make([]int, 0, len(out.Genres))
	for _, g := range out.Genres {
		genreIDs = append(genreIDs, g.ID)
	}
	return MovieDetails{
		Movie: Movie{
			ID:          out.ID,
			Title:       out.Title,
			Overview:    out.Overview,
			ReleaseDate: out.ReleaseDate,
			PosterPath:  out.PosterPath,
			GenreIDs:    genreIDs,
		},
		Genres: out.Genres,
	}, nil
}

func (c *TMDBClient) SearchIDByTitle(ctx context.Context, title, year string) (int, bool, error) {
	q := url.Values{"query": {title}, "include_adult": {"false"}}
	if year != "" {
		q.Set("year", year)
	}
	var out tmdbPage
	if err := c.get(ctx, "search", "/search/movie", q, &out); err != nil {
		return 0, false, err
	}
	for _, m := range out.Results {
		if m.ID > 0 {
			return m.ID, true, nil
		}
	}
	return 0, false, nil
}

func (c *TMDBClient) Similar(ctx context.Context, id int) ([]Movie, error) {
	var out tmdbPage
	if err := c.get(ctx, "similar", "/movie/"+strconv.Itoa(id)+"/similar", nil, &out); err != nil {
		return nil, err
	}

	movies := make([]Movie, 0, len(out.Results))
	for _, m := range out.Results {
		if m.ID <= 0 || strings.TrimSpace(m.Title) == "" {
			continue
		}
		movies = append(movies, m.toMovie())
	}
	return movies, nil
}

func (c *TMDBClient) Genres(ctx context.Context) ([]Genre, error) {
	var out tmdbGenreList
	if err := c.get(ctx, "genres", "/genre/movie/list", url.Values{"language": {"en-US"}}, &out); err != nil {
		return nil, err
	}
	return out.Genres, nil
}

func (c *TMDBClient) get(ctx context.Context, op, path string, q url.Values, dst any) error {
	if q == nil {
		q = url.Values{}
	}
	q.Set("api_key", c.apiKey)
	rawURL := c.baseURL + path + "?" + q.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return err
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", "movie-discovery/1.0")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return &UpstreamError{Kind: KindNetwork, Op: op, Err: err}
	}
	defer resp.Body.Close()

	b, err := io.ReadAll(io.LimitReader(resp.Body, 4<<20))
	if err != nil {
		return &UpstreamError{Kind: KindNetwork, Op: op, Err: err}
	}

	switch {
	case resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden:
		return &UpstreamError{Kind: KindAuth, Op: op}
	case resp.StatusCode == http.StatusNotFound:
		return ErrNotFound
	case resp.StatusCode != http.StatusOK:
		return &UpstreamError{Kind: KindGeneric, Op: op, Status: resp.StatusCode}
	}

	if err := json.Unmarshal(b, dst); err != nil {
		return &UpstreamError{Kind: KindGeneric, Op: op, Status: resp.StatusCode,
			Err: fmt.Errorf("decode response: %w", err)}
	}
	return nil
}

func (p tmdbPage) movies() []Movie {
	out := make([]Movie, 0, len(p.Results))
	for _, m := range p.Results {
		out = append(out, m.toMovie())
	}
	return out
}

// toPage passes upstream pagination through while re-asserting the local
// invariants on page bounds.
func (p tmdbPage) toPage() Page {
	return Page{
		Page:         clampPage(p.Page, p.TotalPages),
		Results:      p.movies(),
		TotalPages:   p.TotalPages,
		TotalResults: p.TotalResults,
	}
}

func (m tmdbMovie) toMovie() Movie {
	return Movie{
		ID:          m.ID,
		Title:       strings.TrimSpace(m.Title),
		Overview:    m.Overview,
		ReleaseDate: m.ReleaseDate,
		PosterPath:  m.PosterPath,
		GenreIDs:    m.GenreIDs,
	}
}

func joinInts(ids []int, sep string) string {
	parts := make([]string, 0, len(ids))
	for _, id := range ids {
		parts = append(parts, strconv.Itoa(id))
	}
	return strings.Join(parts, sep)
}
