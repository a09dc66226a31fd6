package mock_store

import (
	"context"

	"github.com/hibiken/asynq"
	"github.com/stretchr/testify/mock"

	"palette/internal/models"
	"palette/internal/store"
	"palette/internal/tasks"
)

var (
	_ store.JobClient          = (*JobClient)(nil)
	_ store.CollectionStore    = (*CollectionStore)(nil)
	_ store.SearchHistoryStore = (*SearchHistoryStore)(nil)
)

// JobClient is a mock type for the store.JobClient type
type JobClient struct {
	mock.Mock
}

func (m *JobClient) Enqueue(ctx context.Context, task *asynq.Task, opts ...asynq.Option) (*asynq.TaskInfo, error) {
	ret := m.Called(ctx, task, opts)
	var info *asynq.TaskInfo
	if v := ret.Get(0); v != nil {
		info = v.(*asynq.TaskInfo)
	}
	return info, ret.Error(1)
}

func (m *JobClient) EnqueueSearchRecord(ctx context.Context, payload tasks.SearchRecordPayload) error {
	ret := m.Called(ctx, payload)
	return ret.Error(0)
}

func (m *JobClient) Close() error {
	ret := m.Called()
	return ret.Error(0)
}

// CollectionStore is a mock type for the store.CollectionStore type
type CollectionStore struct {
	mock.Mock
}

func (m *CollectionStore) ListArticles(ctx context.Context) ([]models.Article, error) {
	ret := m.Called(ctx)
	var out []models.Article
	if v := ret.Get(0); v != nil {
		out = v.([]models.Article)
	}
	return out, ret.Error(1)
}

func (m *CollectionStore) ListResources(ctx context.Context) ([]models.Resource, error) {
	ret := m.Called(ctx)
	var out []models.Resource
	if v := ret.Get(0); v != nil {
		out = v.([]models.Resource)
	}
	return out, ret.Error(1)
}

func (m *CollectionStore) ListScripts(ctx context.Context) ([]models.Script, error) {
	ret := m.Called(ctx)
	var out []models.Script
	if v := ret.Get(0); v != nil {
		out = v.([]models.Script)
	}
	return out, ret.Error(1)
}

func (m *CollectionStore) ListEvents(ctx context.Context) ([]models.Event, error) {
	ret := m.Called(ctx)
	var out []models.Event
	if v := ret.Get(0); v != nil {
		out = v.([]models.Event)
	}
	return out, ret.Error(1)
}

func (m *CollectionStore) Ping(ctx context.Context) error {
	ret := m.Called(ctx)
	return ret.Error(0)
}

// SearchHistoryStore is a mock type for the store.SearchHistoryStore type
type SearchHistoryStore struct {
	mock.Mock
}

func (m *SearchHistoryStore) RecordSearch(ctx context.Context, query string, resultsCount int, results []models.SearchResult) (*models.SearchQuery, error) {
	ret := m.Called(ctx, query, resultsCount, results)
	var q *models.SearchQuery
	if v := ret.Get(0); v != nil {
		q = v.(*models.SearchQuery)
	}
	return q, ret.Error(1)
}

func (m *SearchHistoryStore) ListSearchQueries(ctx context.Context, limit int) ([]*models.SearchQuery, error) {
	ret := m.Called(ctx, limit)
	var out []*models.SearchQuery
	if v := ret.Get(0); v != nil {
		out = v.([]*models.SearchQuery)
	}
	return out, ret.Error(1)
}

func (m *SearchHistoryStore) ListSearchResults(ctx context.Context, queryID int64) ([]models.SearchResult, error) {
	ret := m.Called(ctx, queryID)
	var out []models.SearchResult
	if v := ret.Get(0); v != nil {
		out = v.([]models.SearchResult)
	}
	return out, ret.Error(1)
}
