package utils

import (
	"math"
	"sort"
	"strconv"
	"strings"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// Page is one slice of a filtered collection plus pagination metadata computed
// over the full filtered length, before slicing.
type Page[T any] struct {
	Items       []T
	TotalItems  int
	TotalPages  int
	CurrentPage int
	HasNextPage bool
	HasPrevPage bool
}

// Filter returns the records satisfying keep, preserving order. The input
// slice is never modified.
func Filter[T any](items []T, keep func(T) bool) []T {
	out := make([]T, 0, len(items))
	for _, it := range items {
		if keep(it) {
			out = append(out, it)
		}
	}
	return out
}

// MatchesField implements the category/brand filter semantics: an empty filter
// or the literal sentinel "all" keeps every record, anything else is a
// case-insensitive equality check. The sentinel check is case-sensitive, so a
// filter of "ALL" matches a field named "all" or "ALL" rather than disabling
// the filter.
func MatchesField(value, filter string) bool {
	if filter == "" || filter == "all" {
		return true
	}
	return strings.EqualFold(value, filter)
}

// ContainsFold reports whether needle occurs within haystack, ignoring case.
func ContainsFold(haystack, needle string) bool {
	return strings.Contains(strings.ToLower(haystack), strings.ToLower(needle))
}

// ParseIntFilter parses a numeric bound from a query parameter. Absent or
// non-numeric input reports ok=false, meaning the bound is not applied.
func ParseIntFilter(s string) (int, bool) {
	if s == "" {
		return 0, false
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, false
	}
	return n, true
}

// SortStable sorts items in place, keeping the relative order of equal
// elements so that records the comparator ties on stay in collection order.
func SortStable[T any](items []T, less func(a, b T) bool) {
	sort.SliceStable(items, func(i, j int) bool { return less(items[i], items[j]) })
}

// NameCollator returns a locale-aware string collator for name sorting.
// Collators keep internal buffers, so each sort gets its own.
func NameCollator() *collate.Collator {
	return collate.New(language.English)
}

// Paginate slices one page out of items. start and end follow the listing
// contract literally: start = (page-1)*limit, end = start+limit, clamped to
// the slice bounds, so an out-of-range page yields an empty page rather than
// an error. HasNextPage and HasPrevPage are computed from the unclamped
// offsets. Callers must pass page >= 1 and limit >= 1.
func Paginate[T any](items []T, page, limit int) Page[T] {
	total := len(items)
	start := (page - 1) * limit
	end := start + limit

	from, to := start, end
	if from < 0 {
		from = 0
	}
	if from > total {
		from = total
	}
	if to > total {
		to = total
	}
	if to < from {
		to = from
	}

	return Page[T]{
		Items:       items[from:to],
		TotalItems:  total,
		TotalPages:  int(math.Ceil(float64(total) / float64(limit))),
		CurrentPage: page,
		HasNextPage: end < total,
		HasPrevPage: start > 0,
	}
}
