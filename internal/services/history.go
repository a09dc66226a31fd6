package services

import (
	"context"
	"fmt"

	"palette/internal/models"
	"palette/internal/store"
	"palette/internal/tasks"
)

// HistoryRecorder persists executed searches.
type HistoryRecorder interface {
	Record(ctx context.Context, payload tasks.SearchRecordPayload) error
}

func newRecordPayload(requestID, query string, total int, items []models.SearchableItem) tasks.SearchRecordPayload {
	results := make([]tasks.RecordedResult, len(items))
	for i, item := range items {
		results[i] = tasks.RecordedResult{
			ItemID:    item.ID,
			Kind:      item.Kind,
			Relevance: item.Relevance,
			Rank:      i + 1,
		}
	}
	return tasks.SearchRecordPayload{
		RequestID:    requestID,
		Query:        query,
		ResultsCount: total,
		Results:      results,
	}
}

// RecordSearch writes one search and its ranked results to hs.
func RecordSearch(ctx context.Context, hs store.SearchHistoryStore, p tasks.SearchRecordPayload) error {
	results := make([]models.SearchResult, len(p.Results))
	for i, r := range p.Results {
		results[i] = models.SearchResult{
			ItemID:         r.ItemID,
			Kind:           r.Kind,
			RelevanceScore: r.Relevance,
			Rank:           r.Rank,
		}
	}
	if _, err := hs.RecordSearch(ctx, p.Query, p.ResultsCount, results); err != nil {
		return fmt.Errorf("record search %q: %w", p.Query, err)
	}
	return nil
}

// DirectHistoryRecorder writes history synchronously.
type DirectHistoryRecorder struct {
	store store.SearchHistoryStore
}

func NewDirectHistoryRecorder(hs store.SearchHistoryStore) *DirectHistoryRecorder {
	return &DirectHistoryRecorder{store: hs}
}

func (r *DirectHistoryRecorder) Record(ctx context.Context, p tasks.SearchRecordPayload) error {
	return RecordSearch(ctx, r.store, p)
}

// QueuedHistoryRecorder hands history off to the background worker.
type QueuedHistoryRecorder struct {
	client store.JobClient
}

func NewQueuedHistoryRecorder(jc store.JobClient) *QueuedHistoryRecorder {
	return &QueuedHistoryRecorder{client: jc}
}

func (r *QueuedHistoryRecorder) Record(ctx context.Context, p tasks.SearchRecordPayload) error {
	return r.client.EnqueueSearchRecord(ctx, p)
}
