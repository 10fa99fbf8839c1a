// Package handlers wires the HTTP surface over the catalog, the
// recommendation engine and the favorites store.
package handlers

import (
	"strconv"
	"strings"

	"github.com/example/movie-discovery/internal/catalog"
)

func parseIntQuery(raw string, fallback, min, max int) (int, bool) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return fallback, true
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n < min || n > max {
		return 0, false
	}
	return n, true
}

// parseGenres parses a comma-separated genre id list ("28,878").
func parseGenres(raw string) ([]int, bool) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, true
	}
	parts := strings.Split(raw, ",")
	ids := make([]int, 0, len(parts))
	for _, p := range parts {
		n, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil || n <= 0 {
			return nil, false
		}
		ids = append(ids, n)
	}
	return ids, true
}

func parseFilter(page, year, genres string) (catalog.Filter, bool) {
	var f catalog.Filter
	var ok bool
	if f.Page, ok = parseIntQuery(page, 1, 1, 10000); !ok {
		return catalog.Filter{}, false
	}
	if f.Year, ok = parseIntQuery(year, 0, 1800, 2200); !ok {
		return catalog.Filter{}, false
	}
	if f.GenreIDs, ok = parseGenres(genres); !ok {
		return catalog.Filter{}, false
	}
	return f, true
}
