package search

import (
	"sort"

	"palette/internal/models"
)

// Ranker aggregates, scores, filters and sorts. It holds no mutable state
// and is safe for concurrent use.
type Ranker struct {
	projector Projector
	scorer    Scorer
}

type Option func(*Ranker)

func WithWeights(w Weights) Option {
	return func(r *Ranker) { r.scorer = NewScorer(w) }
}

func WithExcerptLength(n int) Option {
	return func(r *Ranker) { r.projector.ExcerptLength = n }
}

func WithRoutes(routes Routes) Option {
	return func(r *Ranker) { r.projector.Routes = routes }
}

func NewRanker(opts ...Option) *Ranker {
	r := &Ranker{
		projector: NewProjector(),
		scorer:    NewScorer(DefaultWeights()),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Rank returns every matching item sorted by relevance, highest first.
// Items with equal relevance keep their aggregation order. Truncation and
// thresholds are left to the caller.
func (r *Ranker) Rank(query string, c models.Collections, filters models.SearchFilters) []models.SearchableItem {
	items := r.projector.Aggregate(c, filters.Kinds)

	tokens := Tokenize(query)
	for i := range items {
		items[i].Relevance = r.scorer.Score(items[i], tokens)
	}

	items = Filter(items, filters)

	sort.SliceStable(items, func(i, j int) bool {
		return items[i].Relevance > items[j].Relevance
	})
	return items
}
