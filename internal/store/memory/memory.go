package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"palette/internal/models"
	"palette/internal/store"
)

var (
	_ store.CollectionStore    = (*Store)(nil)
	_ store.SearchHistoryStore = (*Store)(nil)
)

// Store keeps collections and search history in process memory. Collections
// are fixed at construction; history is guarded by a mutex.
type Store struct {
	collections models.Collections

	mu           sync.RWMutex
	nextID       int64
	nextResultID int64
	queries      []*models.SearchQuery
	results      map[int64][]models.SearchResult
	now          func() time.Time
}

func NewStore(c models.Collections) *Store {
	return &Store{
		collections: c,
		results:     make(map[int64][]models.SearchResult),
		now:         time.Now,
	}
}

// NewSeededStore returns a store holding the demo dashboard content.
func NewSeededStore() *Store {
	return NewStore(Fixtures())
}

func (s *Store) Ping(ctx context.Context) error {
	return ctx.Err()
}

func (s *Store) ListArticles(ctx context.Context) ([]models.Article, error) {
	return s.collections.Articles, ctx.Err()
}

func (s *Store) ListResources(ctx context.Context) ([]models.Resource, error) {
	return s.collections.Resources, ctx.Err()
}

func (s *Store) ListScripts(ctx context.Context) ([]models.Script, error) {
	return s.collections.Scripts, ctx.Err()
}

func (s *Store) ListEvents(ctx context.Context) ([]models.Event, error) {
	return s.collections.Events, ctx.Err()
}

// --- Search History ---

func (s *Store) RecordSearch(ctx context.Context, query string, resultsCount int, results []models.SearchResult) (*models.SearchQuery, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	s.nextID++
	now := s.now()
	q := &models.SearchQuery{
		ID:           s.nextID,
		Query:        query,
		ResultsCount: resultsCount,
		ExecutedAt:   now,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	s.queries = append(s.queries, q)

	stored := make([]models.SearchResult, len(results))
	for i, r := range results {
		s.nextResultID++
		r.ID = s.nextResultID
		r.SearchQueryID = q.ID
		r.CreatedAt = now
		stored[i] = r
	}
	s.results[q.ID] = stored

	out := *q
	return &out, nil
}

func (s *Store) ListSearchQueries(ctx context.Context, limit int) ([]*models.SearchQuery, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if limit <= 0 {
		limit = 20
	}
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]*models.SearchQuery, 0, len(s.queries))
	for _, q := range s.queries {
		c := *q
		out = append(out, &c)
	}
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].ExecutedAt.Equal(out[j].ExecutedAt) {
			return out[i].ID > out[j].ID
		}
		return out[i].ExecutedAt.After(out[j].ExecutedAt)
	})
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (s *Store) ListSearchResults(ctx context.Context, queryID int64) ([]models.SearchResult, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()

	if !s.hasQuery(queryID) {
		return nil, store.ErrNotFound
	}
	out := make([]models.SearchResult, len(s.results[queryID]))
	copy(out, s.results[queryID])
	return out, nil
}

func (s *Store) hasQuery(id int64) bool {
	for _, q := range s.queries {
		if q.ID == id {
			return true
		}
	}
	return false
}
