package recommend

import (
	"fmt"
	"strings"

	"github.com/example/movie-discovery/internal/catalog"
)

// buildPrompt embeds the subject's title, year, genres and overview and
// pins the backend to JSON-only output in the exact shape parseGenerated
// expects.
func buildPrompt(d catalog.MovieDetails) string {
	year := "n/a"
	if y, ok := d.ReleaseYear(); ok {
		year = fmt.Sprintf("%d", y)
	}

	names := make([]string, 0, len(d.Genres))
	for _, g := range d.Genres {
		names = append(names, g.Name)
	}
	genres := strings.Join(names, ", ")
	if genres == "" {
		genres = "n/a"
	}

	overview := strings.TrimSpace(d.Overview)
	if overview == "" {
		overview = "n/a"
	}

	return "You are a movie recommender. Return JSON only. " +
		fmt.Sprintf("Recommend up to %d movies similar in vibe/theme to: %s (%s). ", maxItems, d.Title, year) +
		fmt.Sprintf("Genres: %s. Overview: %s. ", genres, overview) +
		`Return exactly this shape: {"recommendations":[{"title":"...","year":"YYYY","reason":"short"}]}. ` +
		"Do not include markdown or extra keys."
}
