package handlers

import (
	"context"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/example/movie-discovery/internal/platform/api"
	"github.com/example/movie-discovery/internal/platform/httpserver"
	"github.com/example/movie-discovery/internal/recommend"
)

// Recommender is what this handler needs from the recommendation engine.
type Recommender interface {
	Recommendations(ctx context.Context, movieID int) (recommend.Result, error)
}

// GetRecommendations handles GET /v1/movies/{movie_id}/recommendations
func GetRecommendations(engine Recommender) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		rid := httpserver.RequestIDFromContext(r.Context())

		id, err := strconv.Atoi(chi.URLParam(r, "movie_id"))
		if err != nil || id <= 0 {
			api.BadRequest(w, "INVALID_ID", "movie_id must be a positive integer", rid, nil)
			return
		}

		result, err := engine.Recommendations(r.Context(), id)
		if err != nil {
			writeRecommendError(w, rid, err)
			return
		}
		api.WriteJSON(w, http.StatusOK, result)
	}
}
