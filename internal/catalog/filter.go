package catalog

import "sort"

// PageSize is fixed for every list operation, mock and live alike.
const PageSize = 20

// ApplyFilters runs the shared filter and ranking pipeline:
//
//  1. genre filter is any-of: an item passes when its genre ids intersect
//     the requested set; no requested set passes everything;
//  2. a requested year is applied strictly on top of the genre filter;
//  3. a strict miss with a year requested relaxes back to the genre-only
//     list, re-ranked by closeness to the requested year with ties broken
//     by title, instead of returning nothing.
func ApplyFilters(items []Movie, f Filter) []Movie {
	byGenre := make([]Movie, 0, len(items))
	for _, m := range items {
		if matchesAnyGenre(m, f.GenreIDs) {
			byGenre = append(byGenre, m)
		}
	}
	if f.Year == 0 {
		return byGenre
	}

	strict := make([]Movie, 0, len(byGenre))
	for _, m := range byGenre {
		if y, ok := m.ReleaseYear(); ok && y == f.Year {
			strict = append(strict, m)
		}
	}
	if len(strict) > 0 {
		return strict
	}

	ranked := make([]Movie, len(byGenre))
	copy(ranked, byGenre)
	sort.Slice(ranked, func(i, j int) bool {
		di, dj := yearDistance(ranked[i], f.Year), yearDistance(ranked[j], f.Year)
		if di != dj {
			return di < dj
		}
		return ranked[i].Title < ranked[j].Title
	})
	return ranked
}

// Paginate slices the final filtered list. The page is clamped into
// [1, max(totalPages,1)] so callers always get a valid page back.
func Paginate(items []Movie, page int) Page {
	totalResults := len(items)
	totalPages := (totalResults + PageSize - 1) / PageSize

	page = clampPage(page, totalPages)
	start := (page - 1) * PageSize
	if start > totalResults {
		start = totalResults
	}
	end := start + PageSize
	if end > totalResults {
		end = totalResults
	}

	return Page{
		Page:         page,
		Results:      items[start:end],
		TotalPages:   totalPages,
		TotalResults: totalResults,
	}
}

func clampPage(page, totalPages int) int {
	if totalPages < 1 {
		totalPages = 1
	}
	if page < 1 {
		return 1
	}
	if page > totalPages {
		return totalPages
	}
	return page
}

func matchesAnyGenre(m Movie, want []int) bool {
	if len(want) == 0 {
		return true
	}
	for _, g := range m.GenreIDs {
		for _, w := range want {
			if g == w {
				return true
			}
		}
	}
	return false
}

// yearDistance ranks items without a parseable release date last.
func yearDistance(m Movie, year int) int {
	y, ok := m.ReleaseYear()
	if !ok {
		return 1 << 30
	}
	if y > year {
		return y - year
	}
	return year - y
}
