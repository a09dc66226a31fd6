package store

import (
	"context"

	"github.com/hibiken/asynq"

	"palette/internal/models"
	"palette/internal/tasks"
)

// --- Job Client ---

type JobClient interface {
	Enqueue(ctx context.Context, task *asynq.Task, opts ...asynq.Option) (*asynq.TaskInfo, error)
	EnqueueSearchRecord(ctx context.Context, payload tasks.SearchRecordPayload) error
	Close() error
}

// --- Collection Store ---

// CollectionStore is the read-only view of the four content sources.
type CollectionStore interface {
	ListArticles(ctx context.Context) ([]models.Article, error)
	ListResources(ctx context.Context) ([]models.Resource, error)
	ListScripts(ctx context.Context) ([]models.Script, error)
	ListEvents(ctx context.Context) ([]models.Event, error)

	Ping(ctx context.Context) error
}

// --- Search History Store ---

type SearchHistoryStore interface {
	// RecordSearch writes the query row and its ranked results atomically.
	RecordSearch(ctx context.Context, query string, resultsCount int, results []models.SearchResult) (*models.SearchQuery, error)
	ListSearchQueries(ctx context.Context, limit int) ([]*models.SearchQuery, error)
	ListSearchResults(ctx context.Context, queryID int64) ([]models.SearchResult, error)
}
