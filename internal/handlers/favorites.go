package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/example/movie-discovery/internal/favorites"
	"github.com/example/movie-discovery/internal/platform/api"
	"github.com/example/movie-discovery/internal/platform/auth"
	"github.com/example/movie-discovery/internal/platform/httpserver"
)

type createFavoriteRequest struct {
	MovieID       int    `json:"movie_id"`
	Title         string `json:"title"`
	ReleaseDate   string `json:"release_date"`
	PosterPath    string `json:"poster_path"`
	CustomTitle   string `json:"custom_title"`
	PersonalNotes string `json:"personal_notes"`
}

type updateFavoriteRequest struct {
	CustomTitle   *string `json:"custom_title"`
	PersonalNotes *string `json:"personal_notes"`
}

// ListFavorites handles GET /v1/favorites
func ListFavorites(store favorites.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		rid := httpserver.RequestIDFromContext(r.Context())
		userID, ok := auth.UserIDFromContext(r.Context())
		if !ok {
			api.Unauthorized(w, "UNAUTHORIZED", "Missing user identity", rid)
			return
		}

		favs, err := store.ListByUser(r.Context(), userID)
		if err != nil {
			api.Internal(w, rid)
			return
		}
		if favs == nil {
			favs = []favorites.Favorite{}
		}
		api.WriteJSON(w, http.StatusOK, map[string]any{"favorites": favs})
	}
}

// CreateFavorite handles POST /v1/favorites
func CreateFavorite(store favorites.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		rid := httpserver.RequestIDFromContext(r.Context())
		userID, ok := auth.UserIDFromContext(r.Context())
		if !ok {
			api.Unauthorized(w, "UNAUTHORIZED", "Missing user identity", rid)
			return
		}

		var req createFavoriteRequest
		if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, 1<<20)).Decode(&req); err != nil {
			api.BadRequest(w, "INVALID_JSON", "Invalid JSON", rid, nil)
			return
		}
		if req.MovieID <= 0 {
			api.BadRequest(w, "INVALID_MOVIE_ID", "movie_id must be a positive integer", rid, nil)
			return
		}
		if strings.TrimSpace(req.Title) == "" {
			api.BadRequest(w, "MISSING_TITLE", "title is required", rid, nil)
			return
		}

		fav, err := store.Create(r.Context(), favorites.Favorite{
			UserID:        userID,
			MovieID:       req.MovieID,
			Title:         strings.TrimSpace(req.Title),
			ReleaseDate:   strings.TrimSpace(req.ReleaseDate),
			PosterPath:    strings.TrimSpace(req.PosterPath),
			CustomTitle:   strings.TrimSpace(req.CustomTitle),
			PersonalNotes: req.PersonalNotes,
		})
		if err != nil {
			if errors.Is(err, favorites.ErrDuplicate) {
				api.Conflict(w, "ALREADY_SAVED", "Movie already in favorites", rid, nil)
				return
			}
			api.Internal(w, rid)
			return
		}
		api.WriteJSON(w, http.StatusCreated, map[string]any{"favorite": fav})
	}
}

// UpdateFavorite handles PUT /v1/favorites/{id}
func UpdateFavorite(store favorites.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		rid := httpserver.RequestIDFromContext(r.Context())
		userID, ok := auth.UserIDFromContext(r.Context())
		if !ok {
			api.Unauthorized(w, "UNAUTHORIZED", "Missing user identity", rid)
			return
		}

		id := strings.TrimSpace(chi.URLParam(r, "id"))
		if id == "" {
			api.BadRequest(w, "MISSING_ID", "favorite id is required", rid, nil)
			return
		}

		var req updateFavoriteRequest
		if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, 1<<20)).Decode(&req); err != nil {
			api.BadRequest(w, "INVALID_JSON", "Invalid JSON", rid, nil)
			return
		}

		fav, err := store.Update(r.Context(), userID, id, favorites.Update{
			CustomTitle:   req.CustomTitle,
			PersonalNotes: req.PersonalNotes,
		})
		if err != nil {
			if errors.Is(err, favorites.ErrNotFound) {
				api.NotFound(w, "NOT_FOUND", "favorite not found", rid)
				return
			}
			api.Internal(w, rid)
			return
		}
		api.WriteJSON(w, http.StatusOK, map[string]any{"favorite": fav})
	}
}

// DeleteFavorite handles DELETE /v1/favorites/{id}
func DeleteFavorite(store favorites.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		rid := httpserver.RequestIDFromContext(r.Context())
		userID, ok := auth.UserIDFromContext(r.Context())
		if !ok {
			api.Unauthorized(w, "UNAUTHORIZED", "Missing user identity", rid)
			return
		}

		id := strings.TrimSpace(chi.URLParam(r, "id"))
		if id == "" {
			api.BadRequest(w, "MISSING_ID", "favorite id is required", rid, nil)
			return
		}

		if err := store.Delete(r.Context(), userID, id); err != nil {
			if errors.Is(err, favorites.ErrNotFound) {
				api.NotFound(w, "NOT_FOUND", "favorite not found", rid)
				return
			}
			api.Internal(w, rid)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}
