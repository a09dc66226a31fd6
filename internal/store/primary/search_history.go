package primary

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"palette/internal/models"
	"palette/internal/store"
)

var _ store.SearchHistoryStore = (*StoreImpl)(nil)

// RecordSearch inserts the query row and its results in one transaction, so
// a failed attempt leaves nothing behind for a retry to duplicate.
func (s *StoreImpl) RecordSearch(ctx context.Context, query string, resultsCount int, results []models.SearchResult) (*models.SearchQuery, error) {
	tx, err := s.db.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction for recording search: %w", err)
	}
	defer tx.Rollback(ctx)

	now := time.Now()
	searchQuery := &models.SearchQuery{
		Query:        query,
		ResultsCount: resultsCount,
	}
	err = tx.QueryRow(ctx, `
		INSERT INTO search_queries (query, results_count, executed_at, created_at, updated_at)
		VALUES ($1, $2, $3, $3, $3)
		RETURNING id, executed_at, created_at, updated_at`,
		query, resultsCount, now,
	).Scan(&searchQuery.ID, &searchQuery.ExecutedAt, &searchQuery.CreatedAt, &searchQuery.UpdatedAt)
	if err != nil {
		return nil, fmt.Errorf("failed to record search query: %w", err)
	}

	sql := `
		INSERT INTO search_results (search_query_id, item_id, kind, relevance_score, rank, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)`
	for _, res := range results {
		_, err := tx.Exec(ctx, sql, searchQuery.ID, res.ItemID, string(res.Kind), res.RelevanceScore, res.Rank, now)
		if err != nil {
			return nil, fmt.Errorf("failed to insert search result for query %d, item %s/%s: %w", searchQuery.ID, res.Kind, res.ItemID, err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("failed to commit transaction for recording search: %w", err)
	}
	return searchQuery, nil
}

func (s *StoreImpl) ListSearchQueries(ctx context.Context, limit int) ([]*models.SearchQuery, error) {
	if limit <= 0 {
		limit = 20
	}
	sql := `
		SELECT id, query, results_count, executed_at, created_at, updated_at
		FROM search_queries
		ORDER BY executed_at DESC, id DESC
		LIMIT $1`

	rows, err := s.db.Query(ctx, sql, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list search queries: %w", err)
	}
	defer rows.Close()

	queries := []*models.SearchQuery{}
	for rows.Next() {
		q := &models.SearchQuery{}
		if err := rows.Scan(&q.ID, &q.Query, &q.ResultsCount, &q.ExecutedAt, &q.CreatedAt, &q.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan search query row: %w", err)
		}
		queries = append(queries, q)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating search query rows: %w", err)
	}
	return queries, nil
}

func (s *StoreImpl) ListSearchResults(ctx context.Context, queryID int64) ([]models.SearchResult, error) {
	var exists bool
	err := s.db.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM search_queries WHERE id = $1)`, queryID).Scan(&exists)
	if err != nil && !errors.Is(err, pgx.ErrNoRows) {
		return nil, fmt.Errorf("failed to look up search query %d: %w", queryID, err)
	}
	if !exists {
		return nil, store.ErrNotFound
	}

	rows, err := s.db.Query(ctx, `
		SELECT id, search_query_id, item_id, kind, relevance_score, rank, created_at
		FROM search_results
		WHERE search_query_id = $1
		ORDER BY rank`, queryID)
	if err != nil {
		return nil, fmt.Errorf("failed to list search results for query %d: %w", queryID, err)
	}
	defer rows.Close()

	results := []models.SearchResult{}
	for rows.Next() {
		var r models.SearchResult
		var kind string
		if err := rows.Scan(&r.ID, &r.SearchQueryID, &r.ItemID, &kind, &r.RelevanceScore, &r.Rank, &r.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan search result row: %w", err)
		}
		r.Kind = models.ContentKind(kind)
		results = append(results, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating search result rows: %w", err)
	}
	return results, nil
}
