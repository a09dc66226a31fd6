package services

import (
	"palette/internal/models"
)

// Ranker is the ranking core as seen by the service.
type Ranker interface {
	Rank(query string, c models.Collections, filters models.SearchFilters) []models.SearchableItem
}

// EmptyQueryPolicy decides what a blank query returns.
type EmptyQueryPolicy string

const (
	// EmptyQueryNone returns no results for a blank query.
	EmptyQueryNone EmptyQueryPolicy = "none"
	// EmptyQueryAll returns every filtered item, unranked, in aggregation order.
	EmptyQueryAll EmptyQueryPolicy = "all"
)

// SearchPolicy holds the caller-side decisions the ranking core leaves open.
type SearchPolicy struct {
	DefaultLimit int
	MinRelevance float64
	EmptyQuery   EmptyQueryPolicy
}

func DefaultSearchPolicy() SearchPolicy {
	return SearchPolicy{DefaultLimit: 10, EmptyQuery: EmptyQueryNone}
}

// --- Parameter Structs ---

type SearchParams struct {
	Query   string
	Filters models.SearchFilters
	Limit   int
	// MinRelevance overrides the policy threshold when set.
	MinRelevance *float64
	// ShowAll overrides the empty-query policy with EmptyQueryAll.
	ShowAll bool
}

type SearchResponse struct {
	RequestID string                  `json:"request_id"`
	Query     string                  `json:"query"`
	Items     []models.SearchableItem `json:"items"`
	// Total counts matches before the limit was applied.
	Total int `json:"total"`
}
