package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"

	"github.com/example/movie-discovery/internal/catalog"
)

// errCatalog fails every call with the configured error.
type errCatalog struct {
	err error
}

func (e *errCatalog) Trending(context.Context, int) (catalog.Page, error) {
	return catalog.Page{}, e.err
}

func (e *errCatalog) Search(context.Context, string, catalog.Filter) (catalog.Page, error) {
	return catalog.Page{}, e.err
}

func (e *errCatalog) Discover(context.Context, catalog.Filter) (catalog.Page, error) {
	return catalog.Page{}, e.err
}

func (e *errCatalog) Details(context.Context, int) (catalog.MovieDetails, error) {
	return catalog.MovieDetails{}, e.err
}

func (e *errCatalog) SearchIDByTitle(context.Context, string, string) (int, bool, error) {
	return 0, false, e.err
}

func (e *errCatalog) Similar(context.Context, int) ([]catalog.Movie, error) {
	return nil, e.err
}

func (e *errCatalog) Genres(context.Context) ([]catalog.Genre, error) {
	return nil, e.err
}

func chiReq(method, url string, params map[string]string) *http.Request {
	req := httptest.NewRequest(method, url, nil)
	rctx := chi.NewRouteContext()
	for k, v := range params {
		rctx.URLParams.Add(k, v)
	}
	return req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, rctx))
}

func TestTrending_OK(t *testing.T) {
	handler := Trending(catalog.NewMockClient())
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, chiReq(http.MethodGet, "/v1/movies/trending", nil))

	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rr.Code, rr.Body.String())
	}
	var page catalog.Page
	if err := json.NewDecoder(rr.Body).Decode(&page); err != nil {
		t.Fatal(err)
	}
	if page.Page != 1 || page.TotalResults == 0 {
		t.Fatalf("unexpected page: %+v", page)
	}
}

func TestTrending_BadPage(t *testing.T) {
	handler := Trending(catalog.NewMockClient())
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, chiReq(http.MethodGet, "/v1/movies/trending?page=zero", nil))

	if rr.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rr.Code)
	}
}

func TestSearch_MissingQuery(t *testing.T) {
	handler := Search(catalog.NewMockClient())
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, chiReq(http.MethodGet, "/v1/movies/search", nil))

	if rr.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rr.Code)
	}
}

func TestSearch_WithFilters(t *testing.T) {
	handler := Search(catalog.NewMockClient())
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, chiReq(http.MethodGet, "/v1/movies/search?query=the&genres=80", nil))

	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rr.Code, rr.Body.String())
	}
	var page catalog.Page
	if err := json.NewDecoder(rr.Body).Decode(&page); err != nil {
		t.Fatal(err)
	}
	if len(page.Results) != 1 || page.Results[0].Title != "The Dark Knight" {
		t.Fatalf("unexpected results: %+v", page.Results)
	}
}

func TestDiscover_InvalidGenres(t *testing.T) {
	handler := Discover(catalog.NewMockClient())
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, chiReq(http.MethodGet, "/v1/movies/discover?genres=28,action", nil))

	if rr.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rr.Code)
	}
}

func TestGetMovie_OK(t *testing.T) {
	handler := GetMovie(catalog.NewMockClient())
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, chiReq(http.MethodGet, "/v1/movies/603", map[string]string{"movie_id": "603"}))

	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rr.Code, rr.Body.String())
	}
	var details catalog.MovieDetails
	if err := json.NewDecoder(rr.Body).Decode(&details); err != nil {
		t.Fatal(err)
	}
	if details.Title != "The Matrix" {
		t.Fatalf("unexpected details: %+v", details)
	}
}

func TestGetMovie_NotFound(t *testing.T) {
	handler := GetMovie(catalog.NewMockClient())
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, chiReq(http.MethodGet, "/v1/movies/999999", map[string]string{"movie_id": "999999"}))

	if rr.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rr.Code)
	}
}

func TestGetMovie_BadID(t *testing.T) {
	handler := GetMovie(catalog.NewMockClient())
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, chiReq(http.MethodGet, "/v1/movies/abc", map[string]string{"movie_id": "abc"}))

	if rr.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rr.Code)
	}
}

func TestGetMovie_UpstreamError(t *testing.T) {
	handler := GetMovie(&errCatalog{err: &catalog.UpstreamError{Kind: catalog.KindAuth, Op: "details"}})
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, chiReq(http.MethodGet, "/v1/movies/603", map[string]string{"movie_id": "603"}))

	if rr.Code != http.StatusBadGateway {
		t.Fatalf("expected 502, got %d", rr.Code)
	}
}

func TestGetGenres_OK(t *testing.T) {
	handler := GetGenres(catalog.NewMockClient())
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, chiReq(http.MethodGet, "/v1/genres", nil))

	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rr.Code, rr.Body.String())
	}
	var resp struct {
		Genres []catalog.Genre `json:"genres"`
	}
	if err := json.NewDecoder(rr.Body).Decode(&resp); err != nil {
		t.Fatal(err)
	}
	if len(resp.Genres) == 0 {
		t.Fatalf("expected genres back")
	}
}
