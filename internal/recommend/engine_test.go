package recommend

import (
	"context"
	"errors"
	"testing"
	"time"

	"go.uber.org/zap"

	"github.com/example/movie-discovery/internal/catalog"
	"github.com/example/movie-discovery/internal/genai"
)

type stubCatalog struct {
	details    map[int]catalog.MovieDetails
	similar    []catalog.Movie
	resolve    map[string]int
	similarErr error
}

func (s *stubCatalog) Trending(context.Context, int) (catalog.Page, error) {
	return catalog.Page{}, nil
}

func (s *stubCatalog) Search(context.Context, string, catalog.Filter) (catalog.Page, error) {
	return catalog.Page{}, nil
}

func (s *stubCatalog) Discover(context.Context, catalog.Filter) (catalog.Page, error) {
	return catalog.Page{}, nil
}

func (s *stubCatalog) Details(_ context.Context, id int) (catalog.MovieDetails, error) {
	d, ok := s.details[id]
	if !ok {
		return catalog.MovieDetails{}, catalog.ErrNotFound
	}
	return d, nil
}

func (s *stubCatalog) SearchIDByTitle(_ context.Context, title, _ string) (int, bool, error) {
	id, ok := s.resolve[title]
	return id, ok, nil
}

func (s *stubCatalog) Similar(context.Context, int) ([]catalog.Movie, error) {
	return s.similar, s.similarErr
}

func (s *stubCatalog) Genres(context.Context) ([]catalog.Genre, error) {
	return nil, nil
}

type stubCompleter struct {
	content string
	err     error
	calls   int
}

func (s *stubCompleter) Complete(context.Context, string) (string, error) {
	s.calls++
	return s.content, s.err
}

func subjectCatalog() *stubCatalog {
	return &stubCatalog{
		details: map[int]catalog.MovieDetails{
			603: {Movie: catalog.Movie{ID: 603, Title: "The Matrix", ReleaseDate: "1999-03-30", GenreIDs: []int{28, 878}}},
		},
		resolve: map[string]int{},
	}
}

func TestEngine_GeneratedCapsAtFive(t *testing.T) {
	cat := subjectCatalog()
	gen := &stubCompleter{content: `{"recommendations":[
		{"title":"A"},{"title":"B"},{"title":"C"},{"title":"D"},{"title":"E"}
	]}`}
	e := NewEngine(cat, gen, NewCache(time.Hour, nil, ""), zap.NewNop())

	res, err := e.Recommendations(context.Background(), 603)
	if err != nil {
		t.Fatalf("Recommendations: %v", err)
	}
	if res.Source != SourceGenerated {
		t.Fatalf("expected generated source, got %q", res.Source)
	}
	if len(res.Items) != 5 {
		t.Fatalf("expected 5 items, got %d", len(res.Items))
	}
}

func TestEngine_NoCredentialFallsBack(t *testing.T) {
	cat := subjectCatalog()
	cat.similar = []catalog.Movie{
		{ID: 27205, Title: "Inception", ReleaseDate: "2010-07-16", PosterPath: "/p.jpg"},
	}
	e := NewEngine(cat, nil, NewCache(time.Hour, nil, ""), zap.NewNop())

	res, err := e.Recommendations(context.Background(), 603)
	if err != nil {
		t.Fatalf("Recommendations: %v", err)
	}
	if res.Source != SourceCatalogFallback {
		t.Fatalf("expected catalog fallback, got %q", res.Source)
	}
	if len(res.Items) != 1 {
		t.Fatalf("expected 1 item, got %d", len(res.Items))
	}
	it := res.Items[0]
	if it.MovieID == nil || *it.MovieID != 27205 || it.Year != "2010" {
		t.Fatalf("unexpected item: %+v", it)
	}
}

func TestEngine_AuthErrorFallsBack(t *testing.T) {
	cat := subjectCatalog()
	cat.similar = []catalog.Movie{{ID: 155, Title: "The Dark Knight", ReleaseDate: "2008-07-18"}}
	gen := &stubCompleter{err: genai.ErrAuth}
	e := NewEngine(cat, gen, NewCache(time.Hour, nil, ""), zap.NewNop())

	res, err := e.Recommendations(context.Background(), 603)
	if err != nil {
		t.Fatalf("Recommendations: %v", err)
	}
	if res.Source != SourceCatalogFallback {
		t.Fatalf("expected catalog fallback, got %q", res.Source)
	}
}

func TestEngine_FallbackCapsAtFive(t *testing.T) {
	cat := subjectCatalog()
	for i := 1; i <= 8; i++ {
		cat.similar = append(cat.similar, catalog.Movie{ID: i, Title: "M"})
	}
	e := NewEngine(cat, nil, NewCache(time.Hour, nil, ""), zap.NewNop())

	res, err := e.Recommendations(context.Background(), 603)
	if err != nil {
		t.Fatalf("Recommendations: %v", err)
	}
	if len(res.Items) != 5 {
		t.Fatalf("expected 5 items, got %d", len(res.Items))
	}
}

func TestEngine_CacheAvoidsRepeatGeneration(t *testing.T) {
	cat := subjectCatalog()
	gen := &stubCompleter{content: `{"recommendations":[{"title":"A"}]}`}
	cache := NewCache(time.Hour, nil, "")
	base := time.Now()
	cache.now = func() time.Time { return base }
	e := NewEngine(cat, gen, cache, zap.NewNop())

	for i := 0; i < 2; i++ {
		if _, err := e.Recommendations(context.Background(), 603); err != nil {
			t.Fatalf("Recommendations: %v", err)
		}
	}
	if gen.calls != 1 {
		t.Fatalf("expected a single generation within the ttl, got %d", gen.calls)
	}

	cache.now = func() time.Time { return base.Add(2 * time.Hour) }
	if _, err := e.Recommendations(context.Background(), 603); err != nil {
		t.Fatalf("Recommendations: %v", err)
	}
	if gen.calls != 2 {
		t.Fatalf("expected a fresh generation after expiry, got %d", gen.calls)
	}
}

func TestEngine_UnresolvedTitleKept(t *testing.T) {
	cat := subjectCatalog()
	cat.resolve["Known"] = 42
	gen := &stubCompleter{content: `{"recommendations":[
		{"title":"Known","year":"2001"},
		{"title":"Obscure Festival Film","year":"2019"}
	]}`}
	e := NewEngine(cat, gen, NewCache(time.Hour, nil, ""), zap.NewNop())

	res, err := e.Recommendations(context.Background(), 603)
	if err != nil {
		t.Fatalf("Recommendations: %v", err)
	}
	if len(res.Items) != 2 {
		t.Fatalf("expected both items back, got %d", len(res.Items))
	}
	if res.Items[0].MovieID == nil || *res.Items[0].MovieID != 42 {
		t.Fatalf("expected first item resolved to 42, got %+v", res.Items[0])
	}
	if res.Items[1].MovieID != nil {
		t.Fatalf("expected second item unresolved, got id %d", *res.Items[1].MovieID)
	}
	if res.Items[1].Title != "Obscure Festival Film" {
		t.Fatalf("item order not preserved: %+v", res.Items)
	}
}

func TestEngine_MalformedOutputIsFatalAndUncached(t *testing.T) {
	cat := subjectCatalog()
	gen := &stubCompleter{content: `sure! here are five movies:`}
	e := NewEngine(cat, gen, NewCache(time.Hour, nil, ""), zap.NewNop())

	_, err := e.Recommendations(context.Background(), 603)
	if !IsMalformedOutput(err) {
		t.Fatalf("expected malformed output error, got %v", err)
	}

	// A second call must hit the backend again: failures are not cached.
	_, _ = e.Recommendations(context.Background(), 603)
	if gen.calls != 2 {
		t.Fatalf("expected 2 generation attempts, got %d", gen.calls)
	}
}

func TestEngine_UnknownMovie(t *testing.T) {
	e := NewEngine(subjectCatalog(), nil, NewCache(time.Hour, nil, ""), zap.NewNop())

	_, err := e.Recommendations(context.Background(), 999999)
	if !errors.Is(err, catalog.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}
