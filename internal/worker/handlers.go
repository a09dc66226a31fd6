package worker

import (
	"context"
	"fmt"

	"github.com/hibiken/asynq"
	log "github.com/sirupsen/logrus"

	"palette/internal/services"
	"palette/internal/store"
	"palette/internal/tasks"
)

// HistoryDeps holds what the search history handler needs.
type HistoryDeps struct {
	History store.SearchHistoryStore
}

// RegisterHandlers wires every task handler onto mux.
func RegisterHandlers(mux *asynq.ServeMux, deps HistoryDeps) {
	mux.HandleFunc(tasks.TypeSearchRecord, HandleSearchRecord(deps))
}

// HandleSearchRecord persists one executed search. A malformed payload is
// not retried.
func HandleSearchRecord(deps HistoryDeps) asynq.HandlerFunc {
	return func(ctx context.Context, t *asynq.Task) error {
		p, err := tasks.ParseSearchRecordPayload(t)
		if err != nil {
			return fmt.Errorf("%v: %w", err, asynq.SkipRetry)
		}
		if deps.History == nil {
			return fmt.Errorf("search history store is not configured: %w", asynq.SkipRetry)
		}

		logger := log.WithFields(log.Fields{"request_id": p.RequestID, "query": p.Query})
		if err := services.RecordSearch(ctx, deps.History, p); err != nil {
			logger.WithError(err).Error("Failed to record search")
			return err
		}
		logger.WithField("results", len(p.Results)).Debug("Recorded search")
		return nil
	}
}
