package search

import (
	"strings"

	"palette/internal/models"
)

// MatchesKinds passes everything when kinds is empty.
func MatchesKinds(item models.SearchableItem, kinds []models.ContentKind) bool {
	return len(kinds) == 0 || models.ContainsKind(kinds, item.Kind)
}

// MatchesDateRange always passes undated items.
func MatchesDateRange(item models.SearchableItem, r *models.DateRange) bool {
	if r == nil || item.Date == nil {
		return true
	}
	return r.Contains(*item.Date)
}

// MatchesTags requires at least one shared tag when tags is non-empty.
// Comparison ignores case.
func MatchesTags(item models.SearchableItem, tags []string) bool {
	if len(tags) == 0 {
		return true
	}
	for _, have := range item.Tags {
		for _, want := range tags {
			if strings.EqualFold(have, want) {
				return true
			}
		}
	}
	return false
}

// Matches applies every predicate in filters.
func Matches(item models.SearchableItem, filters models.SearchFilters) bool {
	return MatchesKinds(item, filters.Kinds) &&
		MatchesDateRange(item, filters.DateRange) &&
		MatchesTags(item, filters.Tags)
}

// Filter returns the items that pass filters, preserving order.
func Filter(items []models.SearchableItem, filters models.SearchFilters) []models.SearchableItem {
	out := make([]models.SearchableItem, 0, len(items))
	for _, item := range items {
		if Matches(item, filters) {
			out = append(out, item)
		}
	}
	return out
}
