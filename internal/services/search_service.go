package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"palette/internal/models"
	"palette/internal/search"
	"palette/internal/store"
)

type SearchService struct {
	collections store.CollectionStore
	ranker      Ranker
	history     store.SearchHistoryStore
	recorder    HistoryRecorder
	policy      SearchPolicy
}

func NewSearchService(cs store.CollectionStore, r Ranker, hs store.SearchHistoryStore, rec HistoryRecorder, policy SearchPolicy) *SearchService {
	if r == nil {
		r = search.NewRanker()
	}
	if rec == nil {
		rec = NewNoopHistoryRecorder()
	}
	if policy.DefaultLimit <= 0 {
		policy.DefaultLimit = DefaultSearchPolicy().DefaultLimit
	}
	if policy.EmptyQuery == "" {
		policy.EmptyQuery = EmptyQueryNone
	}
	return &SearchService{
		collections: cs,
		ranker:      r,
		history:     hs,
		recorder:    rec,
		policy:      policy,
	}
}

// --- Service Methods ---

// Search ranks the current collections against params.Query. A request whose
// context is cancelled while ranking returns the context error and no items,
// so a superseded request never overwrites a newer one.
func (s *SearchService) Search(ctx context.Context, params SearchParams) (*SearchResponse, error) {
	if s.collections == nil {
		return nil, fmt.Errorf("collection store is not initialized")
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	requestID := uuid.NewString()
	logger := log.WithFields(log.Fields{"request_id": requestID, "query": params.Query})
	started := time.Now()

	collections, err := LoadCollections(ctx, s.collections)
	if err != nil {
		return nil, fmt.Errorf("load collections: %w", err)
	}

	ranked, err := s.rank(params.Query, collections, params.Filters)
	if err != nil {
		logger.WithError(err).Error("Ranking failed")
		return nil, err
	}

	if err := ctx.Err(); err != nil {
		logger.Debug("Discarding results of cancelled search")
		return nil, err
	}

	items := s.applyPolicy(params, ranked)
	total := len(items)

	limit := params.Limit
	if limit <= 0 {
		limit = s.policy.DefaultLimit
	}
	if len(items) > limit {
		items = items[:limit]
	}

	logger.WithFields(log.Fields{
		"candidates": collections.Len(),
		"matches":    total,
		"returned":   len(items),
		"elapsed":    time.Since(started),
	}).Debug("Search completed")

	if err := s.recorder.Record(ctx, newRecordPayload(requestID, params.Query, total, items)); err != nil {
		logger.WithError(err).Warn("Failed to record search history")
	}

	return &SearchResponse{
		RequestID: requestID,
		Query:     params.Query,
		Items:     items,
		Total:     total,
	}, nil
}

// rank converts a panic raised by malformed input into ErrRankingFailed.
func (s *SearchService) rank(query string, c models.Collections, f models.SearchFilters) (items []models.SearchableItem, err error) {
	defer func() {
		if r := recover(); r != nil {
			items = nil
			err = fmt.Errorf("%w: %v", models.ErrRankingFailed, r)
		}
	}()
	return s.ranker.Rank(query, c, f), nil
}

func (s *SearchService) applyPolicy(params SearchParams, ranked []models.SearchableItem) []models.SearchableItem {
	if len(search.Tokenize(params.Query)) == 0 {
		if params.ShowAll || s.policy.EmptyQuery == EmptyQueryAll {
			return ranked
		}
		return []models.SearchableItem{}
	}

	threshold := s.policy.MinRelevance
	if params.MinRelevance != nil {
		threshold = *params.MinRelevance
	}
	out := make([]models.SearchableItem, 0, len(ranked))
	for _, item := range ranked {
		if item.Relevance > 0 && item.Relevance >= threshold {
			out = append(out, item)
		}
	}
	return out
}

// ListSearchHistory retrieves recent search queries.
func (s *SearchService) ListSearchHistory(ctx context.Context, limit int) ([]*models.SearchQuery, error) {
	if s.history == nil {
		return nil, fmt.Errorf("search history store is not initialized")
	}
	queries, err := s.history.ListSearchQueries(ctx, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list search history from store: %w", err)
	}
	return queries, nil
}

// SearchHistoryResults returns the ranked items recorded for one past query.
func (s *SearchService) SearchHistoryResults(ctx context.Context, queryID int64) ([]models.SearchResult, error) {
	if s.history == nil {
		return nil, fmt.Errorf("search history store is not initialized")
	}
	results, err := s.history.ListSearchResults(ctx, queryID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, fmt.Errorf("search query %d: %w", queryID, models.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to list results for search query %d: %w", queryID, err)
	}
	return results, nil
}

// Ping checks the collection backend.
func (s *SearchService) Ping(ctx context.Context) error {
	if s.collections == nil {
		return fmt.Errorf("collection store is not initialized")
	}
	return s.collections.Ping(ctx)
}

// LoadCollections reads the four sources concurrently.
func LoadCollections(ctx context.Context, cs store.CollectionStore) (models.Collections, error) {
	var c models.Collections
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() (err error) {
		c.Articles, err = cs.ListArticles(gctx)
		if err != nil {
			return fmt.Errorf("list articles: %w", err)
		}
		return nil
	})
	g.Go(func() (err error) {
		c.Resources, err = cs.ListResources(gctx)
		if err != nil {
			return fmt.Errorf("list resources: %w", err)
		}
		return nil
	})
	g.Go(func() (err error) {
		c.Scripts, err = cs.ListScripts(gctx)
		if err != nil {
			return fmt.Errorf("list scripts: %w", err)
		}
		return nil
	})
	g.Go(func() (err error) {
		c.Events, err = cs.ListEvents(gctx)
		if err != nil {
			return fmt.Errorf("list events: %w", err)
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		return models.Collections{}, err
	}
	return c, nil
}
