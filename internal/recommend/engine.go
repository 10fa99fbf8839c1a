// Package recommend assembles "similar movie" suggestions for a subject
// movie, preferring the generative backend and falling back to the
// catalog's own similarity endpoint when generation is unavailable.
package recommend

import (
	"context"
	"errors"
	"sync"

	"go.uber.org/zap"

	"github.com/example/movie-discovery/internal/catalog"
	"github.com/example/movie-discovery/internal/genai"
)

const (
	maxItems       = 5
	fallbackReason = "Similar on TMDb."
)

type Source string

const (
	SourceGenerated       Source = "generated"
	SourceCatalogFallback Source = "catalog-fallback"
)

// Item is one recommendation. MovieID is nil when the title could not be
// resolved against the catalog; the item is still returned.
type Item struct {
	Title      string  `json:"title"`
	Year       string  `json:"year,omitempty"`
	Reason     string  `json:"reason,omitempty"`
	MovieID    *int    `json:"movie_id"`
	PosterPath *string `json:"poster_path,omitempty"`
}

type Result struct {
	Items  []Item `json:"recommendations"`
	Source Source `json:"source"`
}

type Engine struct {
	catalog catalog.Client
	gen     genai.Completer // nil when no credential is configured
	cache   *Cache
	log     *zap.Logger
}

func NewEngine(cat catalog.Client, gen genai.Completer, cache *Cache, log *zap.Logger) *Engine {
	return &Engine{catalog: cat, gen: gen, cache: cache, log: log}
}

// Recommendations returns cached or freshly computed suggestions for the
// subject movie. Concurrent first calls for the same subject are not
// coalesced; each performs its own generation.
func (e *Engine) Recommendations(ctx context.Context, movieID int) (Result, error) {
	if cached, ok := e.cache.Get(movieID); ok {
		return cached, nil
	}

	details, err := e.catalog.Details(ctx, movieID)
	if err != nil {
		return Result{}, err
	}

	if e.gen == nil {
		return e.fromSimilar(ctx, movieID)
	}

	content, err := e.gen.Complete(ctx, buildPrompt(details))
	if errors.Is(err, genai.ErrAuth) {
		e.log.Warn("generative backend rejected credential, using catalog similarity",
			zap.Int("movie_id", movieID))
		return e.fromSimilar(ctx, movieID)
	}
	if err != nil {
		return Result{}, err
	}

	generated, err := parseGenerated(content)
	if err != nil {
		// Fatal and uncached: a bad generation must not poison the TTL window.
		return Result{}, err
	}

	result := Result{
		Items:  e.resolveAll(ctx, generated),
		Source: SourceGenerated,
	}
	e.cache.Set(movieID, result)
	return result, nil
}

// fromSimilar builds the result from the catalog's similarity endpoint.
// Ids are already known, so no resolution pass is needed.
func (e *Engine) fromSimilar(ctx context.Context, movieID int) (Result, error) {
	similar, err := e.catalog.Similar(ctx, movieID)
	if err != nil {
		return Result{}, err
	}
	if len(similar) > maxItems {
		similar = similar[:maxItems]
	}

	items := make([]Item, 0, len(similar))
	for _, m := range similar {
		m := m
		item := Item{
			Title:   m.Title,
			Reason:  fallbackReason,
			MovieID: &m.ID,
		}
		if _, ok := m.ReleaseYear(); ok {
			item.Year = m.ReleaseDate[:4]
		}
		if m.PosterPath != "" {
			item.PosterPath = &m.PosterPath
		}
		items = append(items, item)
	}

	result := Result{Items: items, Source: SourceCatalogFallback}
	e.cache.Set(movieID, result)
	return result, nil
}

// resolveAll maps each generated title back to a catalog id, fanning out
// one lookup per item (at most five) and preserving item order. A failed
// or empty resolution leaves MovieID nil; the item is never dropped.
func (e *Engine) resolveAll(ctx context.Context, generated []generatedItem) []Item {
	items := make([]Item, len(generated))

	var wg sync.WaitGroup
	for i, g := range generated {
		items[i] = Item{Title: g.Title, Year: g.Year, Reason: g.Reason}

		wg.Add(1)
		go func(i int, g generatedItem) {
			defer wg.Done()

			id, ok, err := e.catalog.SearchIDByTitle(ctx, g.Title, g.Year)
			if err != nil {
				e.log.Warn("title resolution failed", zap.String("title", g.Title), zap.Error(err))
				return
			}
			if !ok {
				return
			}
			items[i].MovieID = &id

			// Poster lookup is best effort; a miss keeps the resolved id.
			if details, err := e.catalog.Details(ctx, id); err == nil && details.PosterPath != "" {
				poster := details.PosterPath
				items[i].PosterPath = &poster
			}
		}(i, g)
	}
	wg.Wait()

	return items
}
