package handlers

import (
	"errors"
	"net/http"

	"github.com/example/movie-discovery/internal/catalog"
	"github.com/example/movie-discovery/internal/platform/api"
	"github.com/example/movie-discovery/internal/recommend"
)

// writeCatalogError maps catalog failures onto the API envelope. Upstream
// failures of any kind surface as 502; the upstream credential itself is
// never echoed.
func writeCatalogError(w http.ResponseWriter, requestID string, err error) {
	if errors.Is(err, catalog.ErrNotFound) {
		api.NotFound(w, "NOT_FOUND", "movie not found", requestID)
		return
	}

	var ue *catalog.UpstreamError
	if errors.As(err, &ue) {
		api.BadGateway(w, "UPSTREAM_ERROR", ue.Error(), requestID)
		return
	}

	api.Internal(w, requestID)
}

func writeRecommendError(w http.ResponseWriter, requestID string, err error) {
	switch {
	case recommend.IsMalformedOutput(err):
		api.BadGateway(w, "MALFORMED_GENERATION", "AI response was not valid JSON", requestID)
	case errors.Is(err, catalog.ErrNotFound):
		api.NotFound(w, "NOT_FOUND", "movie not found", requestID)
	default:
		// Whatever else failed here was an upstream call, catalog or
		// generative; both gateways answer 502.
		api.BadGateway(w, "UPSTREAM_ERROR", err.Error(), requestID)
	}
}
