package services_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"palette/internal/models"
	"palette/internal/services"
	"palette/internal/store/memory"
	"palette/internal/tasks"
	mock_store "palette/internal/tests/mocks/store"
)

type panicRanker struct{}

func (panicRanker) Rank(string, models.Collections, models.SearchFilters) []models.SearchableItem {
	panic("malformed entity")
}

type failingRecorder struct{}

func (failingRecorder) Record(context.Context, tasks.SearchRecordPayload) error {
	return errors.New("redis unavailable")
}

func newService(policy services.SearchPolicy) (*services.SearchService, *memory.Store) {
	st := memory.NewSeededStore()
	return services.NewSearchService(st, nil, st, services.NewDirectHistoryRecorder(st), policy), st
}

func ids(items []models.SearchableItem) []string {
	out := make([]string, len(items))
	for i, item := range items {
		out[i] = string(item.Kind) + ":" + item.ID
	}
	return out
}

func TestSearch_RanksFixtures(t *testing.T) {
	svc, _ := newService(services.DefaultSearchPolicy())

	resp, err := svc.Search(context.Background(), services.SearchParams{Query: "seo"})
	require.NoError(t, err)

	assert.Equal(t, []string{"resource:1", "article:3"}, ids(resp.Items))
	assert.InDelta(t, 27.0, resp.Items[0].Relevance, 1e-9)
	assert.InDelta(t, 18.0, resp.Items[1].Relevance, 1e-9)
	assert.Equal(t, 2, resp.Total)
	assert.NotEmpty(t, resp.RequestID)
	assert.Equal(t, "seo", resp.Query)
}

func TestSearch_EmptyQueryPolicy(t *testing.T) {
	t.Run("none", func(t *testing.T) {
		svc, _ := newService(services.SearchPolicy{EmptyQuery: services.EmptyQueryNone})
		resp, err := svc.Search(context.Background(), services.SearchParams{Query: "   "})
		require.NoError(t, err)
		assert.Empty(t, resp.Items)
		assert.Zero(t, resp.Total)
	})

	t.Run("all", func(t *testing.T) {
		svc, _ := newService(services.SearchPolicy{EmptyQuery: services.EmptyQueryAll, DefaultLimit: 50})
		resp, err := svc.Search(context.Background(), services.SearchParams{Query: ""})
		require.NoError(t, err)
		require.Len(t, resp.Items, 10)
		assert.Equal(t, "article:1", ids(resp.Items)[0])
		assert.Equal(t, "event:2", ids(resp.Items)[9])
		for _, item := range resp.Items {
			assert.Zero(t, item.Relevance)
		}
	})

	t.Run("show all overrides none", func(t *testing.T) {
		svc, _ := newService(services.SearchPolicy{EmptyQuery: services.EmptyQueryNone, DefaultLimit: 50})
		resp, err := svc.Search(context.Background(), services.SearchParams{
			ShowAll: true,
			Filters: models.SearchFilters{Kinds: []models.ContentKind{models.KindEvent}},
		})
		require.NoError(t, err)
		assert.Equal(t, []string{"event:1", "event:2"}, ids(resp.Items))
	})
}

func TestSearch_LimitAndThreshold(t *testing.T) {
	svc, _ := newService(services.DefaultSearchPolicy())

	resp, err := svc.Search(context.Background(), services.SearchParams{Query: "marketing", Limit: 1})
	require.NoError(t, err)
	require.Len(t, resp.Items, 1)
	assert.Greater(t, resp.Total, 1)

	minRel := 20.0
	resp, err = svc.Search(context.Background(), services.SearchParams{Query: "seo", MinRelevance: &minRel})
	require.NoError(t, err)
	assert.Equal(t, []string{"resource:1"}, ids(resp.Items))
}

func TestSearch_Filters(t *testing.T) {
	svc, _ := newService(services.DefaultSearchPolicy())

	resp, err := svc.Search(context.Background(), services.SearchParams{
		Query:   "seo",
		Filters: models.SearchFilters{Kinds: []models.ContentKind{models.KindArticle}},
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"article:3"}, ids(resp.Items))
}

func TestSearch_RankingPanicBecomesError(t *testing.T) {
	st := memory.NewSeededStore()
	svc := services.NewSearchService(st, panicRanker{}, st, nil, services.DefaultSearchPolicy())

	resp, err := svc.Search(context.Background(), services.SearchParams{Query: "seo"})
	require.Error(t, err)
	assert.Nil(t, resp)
	assert.True(t, errors.Is(err, models.ErrRankingFailed))
}

func TestSearch_CancelledContext(t *testing.T) {
	svc, st := newService(services.DefaultSearchPolicy())
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	resp, err := svc.Search(ctx, services.SearchParams{Query: "seo"})
	require.ErrorIs(t, err, context.Canceled)
	assert.Nil(t, resp)

	history, err := st.ListSearchQueries(context.Background(), 10)
	require.NoError(t, err)
	assert.Empty(t, history)
}

func TestSearch_CollectionLoadError(t *testing.T) {
	cs := new(mock_store.CollectionStore)
	cs.On("ListArticles", mock.Anything).Return(nil, errors.New("db down"))
	cs.On("ListResources", mock.Anything).Return([]models.Resource{}, nil).Maybe()
	cs.On("ListScripts", mock.Anything).Return([]models.Script{}, nil).Maybe()
	cs.On("ListEvents", mock.Anything).Return([]models.Event{}, nil).Maybe()

	svc := services.NewSearchService(cs, nil, nil, nil, services.DefaultSearchPolicy())
	_, err := svc.Search(context.Background(), services.SearchParams{Query: "seo"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "list articles")
	cs.AssertExpectations(t)
}

func TestSearch_RecordsHistory(t *testing.T) {
	svc, _ := newService(services.DefaultSearchPolicy())
	ctx := context.Background()

	_, err := svc.Search(ctx, services.SearchParams{Query: "seo"})
	require.NoError(t, err)

	queries, err := svc.ListSearchHistory(ctx, 10)
	require.NoError(t, err)
	require.Len(t, queries, 1)
	assert.Equal(t, "seo", queries[0].Query)
	assert.Equal(t, 2, queries[0].ResultsCount)

	results, err := svc.SearchHistoryResults(ctx, queries[0].ID)
	require.NoError(t, err)
	require.Len(t, results, 2)
	assert.Equal(t, "1", results[0].ItemID)
	assert.Equal(t, models.KindResource, results[0].Kind)
	assert.Equal(t, 1, results[0].Rank)
	assert.Equal(t, 2, results[1].Rank)

	_, err = svc.SearchHistoryResults(ctx, 999)
	assert.ErrorIs(t, err, models.ErrNotFound)
}

func TestSearch_QueuedHistory(t *testing.T) {
	st := memory.NewSeededStore()
	jc := new(mock_store.JobClient)
	jc.On("EnqueueSearchRecord", mock.Anything, mock.MatchedBy(func(p tasks.SearchRecordPayload) bool {
		return p.Query == "seo" && p.ResultsCount == 2 && len(p.Results) == 2 &&
			p.Results[0].ItemID == "1" && p.Results[0].Rank == 1 && p.RequestID != ""
	})).Return(nil).Once()

	svc := services.NewSearchService(st, nil, st, services.NewQueuedHistoryRecorder(jc), services.DefaultSearchPolicy())
	_, err := svc.Search(context.Background(), services.SearchParams{Query: "seo"})
	require.NoError(t, err)
	jc.AssertExpectations(t)
}

func TestSearch_HistoryFailureDoesNotFailSearch(t *testing.T) {
	st := memory.NewSeededStore()
	svc := services.NewSearchService(st, nil, st, failingRecorder{}, services.DefaultSearchPolicy())

	resp, err := svc.Search(context.Background(), services.SearchParams{Query: "seo"})
	require.NoError(t, err)
	assert.Len(t, resp.Items, 2)
}

func TestRecordSearch_MapsPayloadToHistoryRows(t *testing.T) {
	hs := new(mock_store.SearchHistoryStore)
	hs.On("RecordSearch", mock.Anything, "seo", 4, []models.SearchResult{
		{ItemID: "1", Kind: models.KindResource, RelevanceScore: 27, Rank: 1},
	}).Return(&models.SearchQuery{ID: 7, Query: "seo"}, nil).Once()

	err := services.RecordSearch(context.Background(), hs, tasks.SearchRecordPayload{
		Query:        "seo",
		ResultsCount: 4,
		Results:      []tasks.RecordedResult{{ItemID: "1", Kind: models.KindResource, Relevance: 27, Rank: 1}},
	})
	require.NoError(t, err)
	hs.AssertExpectations(t)
}
