package catalog

import (
	"slices"
	"strings"
	"time"
)

const (
	AlbumPageSize = 12
	VideoPageSize = 12
)

// Item is anything the public catalog can list.
type Item interface {
	CatalogCategory() string
	CatalogFeatured() bool
	CatalogDate() time.Time
}

type Page[T Item] struct {
	Items      []T `json:"items"`
	Total      int `json:"total"`
	Page       int `json:"page"`
	PageSize   int `json:"pageSize"`
	TotalPages int `json:"totalPages"`
}

// Filter keeps items whose category equals the canonical token. "all" and ""
// return the input unfiltered.
func Filter[T Item](items []T, category string) []T {
	if category == "" || category == CategoryAll {
		return items
	}
	out := make([]T, 0, len(items))
	for _, it := range items {
		if it.CatalogCategory() == category {
			out = append(out, it)
		}
	}
	return out
}

// SortFeatured orders featured items first, then by date descending. The sort
// is stable and works on a copy.
func SortFeatured[T Item](items []T) []T {
	out := slices.Clone(items)
	slices.SortStableFunc(out, func(a, b T) int {
		fa, fb := a.CatalogFeatured(), b.CatalogFeatured()
		if fa != fb {
			if fa {
				return -1
			}
			return 1
		}
		return b.CatalogDate().Compare(a.CatalogDate())
	})
	return out
}

// SortByDate orders by date only, newest first unless asc.
func SortByDate[T Item](items []T, asc bool) []T {
	out := slices.Clone(items)
	slices.SortStableFunc(out, func(a, b T) int {
		if asc {
			return a.CatalogDate().Compare(b.CatalogDate())
		}
		return b.CatalogDate().Compare(a.CatalogDate())
	})
	return out
}

// Paginate returns the 1-based page p. Out-of-range pages are empty.
func Paginate[T Item](items []T, page, size int) []T {
	if page < 1 || size < 1 || len(items) == 0 {
		return []T{}
	}
	// compare in page units so (page-1)*size cannot overflow
	if page-1 > (len(items)-1)/size {
		return []T{}
	}
	start := (page - 1) * size
	end := min(start+size, len(items))
	return items[start:end]
}

// Query runs filter, featured sort and pagination in one go.
func Query[T Item](items []T, category string, page, size int) Page[T] {
	sorted := SortFeatured(Filter(items, category))
	total := len(sorted)
	pages := 0
	if size > 0 {
		pages = (total + size - 1) / size
	}
	return Page[T]{
		Items:      Paginate(sorted, page, size),
		Total:      total,
		Page:       page,
		PageSize:   size,
		TotalPages: pages,
	}
}

// CountByCategory returns per-token counts plus the "all" total.
func CountByCategory[T Item](items []T) map[string]int {
	counts := map[string]int{CategoryAll: len(items)}
	for _, it := range items {
		counts[it.CatalogCategory()]++
	}
	return counts
}

type Searchable interface {
	SearchText() []string
}

// Search keeps items where any searchable field contains q, ignoring case.
func Search[T Searchable](items []T, q string) []T {
	q = strings.TrimSpace(q)
	if q == "" {
		return items
	}
	needle := lower(q)
	out := make([]T, 0, len(items))
	for _, it := range items {
		for _, field := range it.SearchText() {
			if strings.Contains(lower(field), needle) {
				out = append(out, it)
				break
			}
		}
	}
	return out
}
