package handlers

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/example/movie-discovery/internal/catalog"
	"github.com/example/movie-discovery/internal/platform/api"
	"github.com/example/movie-discovery/internal/platform/httpserver"
)

// Trending handles GET /v1/movies/trending?page=N
func Trending(client catalog.Client) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		rid := httpserver.RequestIDFromContext(r.Context())

		page, ok := parseIntQuery(r.URL.Query().Get("page"), 1, 1, 10000)
		if !ok {
			api.BadRequest(w, "INVALID_PAGE", "page must be a positive integer", rid, nil)
			return
		}

		result, err := client.Trending(r.Context(), page)
		if err != nil {
			writeCatalogError(w, rid, err)
			return
		}
		api.WriteJSON(w, http.StatusOK, result)
	}
}

// Search handles GET /v1/movies/search?query=&page=&year=&genres=28,878
func Search(client catalog.Client) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		rid := httpserver.RequestIDFromContext(r.Context())
		q := r.URL.Query()

		query := strings.TrimSpace(q.Get("query"))
		if query == "" {
			api.BadRequest(w, "MISSING_QUERY", "query is required", rid, nil)
			return
		}
		f, ok := parseFilter(q.Get("page"), q.Get("year"), q.Get("genres"))
		if !ok {
			api.BadRequest(w, "INVALID_FILTER", "page, year and genres must be valid integers", rid, nil)
			return
		}

		result, err := client.Search(r.Context(), query, f)
		if err != nil {
			writeCatalogError(w, rid, err)
			return
		}
		api.WriteJSON(w, http.StatusOK, result)
	}
}

// Discover handles GET /v1/movies/discover?page=&year=&genres=
func Discover(client catalog.Client) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		rid := httpserver.RequestIDFromContext(r.Context())
		q := r.URL.Query()

		f, ok := parseFilter(q.Get("page"), q.Get("year"), q.Get("genres"))
		if !ok {
			api.BadRequest(w, "INVALID_FILTER", "page, year and genres must be valid integers", rid, nil)
			return
		}

		result, err := client.Discover(r.Context(), f)
		if err != nil {
			writeCatalogError(w, rid, err)
			return
		}
		api.WriteJSON(w, http.StatusOK, result)
	}
}

// GetMovie handles GET /v1/movies/{movie_id}
func GetMovie(client catalog.Client) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		rid := httpserver.RequestIDFromContext(r.Context())

		id, err := strconv.Atoi(chi.URLParam(r, "movie_id"))
		if err != nil || id <= 0 {
			api.BadRequest(w, "INVALID_ID", "movie_id must be a positive integer", rid, nil)
			return
		}

		details, err := client.Details(r.Context(), id)
		if err != nil {
			writeCatalogError(w, rid, err)
			return
		}
		api.WriteJSON(w, http.StatusOK, details)
	}
}

// GetGenres handles GET /v1/genres
func GetGenres(client catalog.Client) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		rid := httpserver.RequestIDFromContext(r.Context())

		genres, err := client.Genres(r.Context())
		if err != nil {
			writeCatalogError(w, rid, err)
			return
		}
		api.WriteJSON(w, http.StatusOK, map[string]any{"genres": genres})
	}
}
