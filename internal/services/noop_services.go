package services

import (
	"context"

	"palette/internal/tasks"
)

type NoopHistoryRecorder struct{}

func (r *NoopHistoryRecorder) Record(ctx context.Context, p tasks.SearchRecordPayload) error {
	return nil
}

func NewNoopHistoryRecorder() HistoryRecorder {
	return &NoopHistoryRecorder{}
}
