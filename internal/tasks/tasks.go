package tasks

import (
	"encoding/json"
	"fmt"

	"github.com/hibiken/asynq"

	"palette/internal/models"
)

const (
	// TypeSearchRecord persists one executed search to the history store.
	TypeSearchRecord = "search:record"

	QueueHistory = "history"
)

// RecordedResult is one ranked item as stored in history.
type RecordedResult struct {
	ItemID    string             `json:"item_id"`
	Kind      models.ContentKind `json:"kind"`
	Relevance float64            `json:"relevance"`
	Rank      int                `json:"rank"`
}

type SearchRecordPayload struct {
	RequestID    string           `json:"request_id"`
	Query        string           `json:"query"`
	ResultsCount int              `json:"results_count"`
	Results      []RecordedResult `json:"results"`
}

func NewSearchRecordTask(p SearchRecordPayload, opts ...asynq.Option) (*asynq.Task, error) {
	b, err := json.Marshal(p)
	if err != nil {
		return nil, fmt.Errorf("marshal search record payload: %w", err)
	}
	return asynq.NewTask(TypeSearchRecord, b, opts...), nil
}

func ParseSearchRecordPayload(t *asynq.Task) (SearchRecordPayload, error) {
	var p SearchRecordPayload
	if err := json.Unmarshal(t.Payload(), &p); err != nil {
		return p, fmt.Errorf("unmarshal %s payload: %w", t.Type(), err)
	}
	return p, nil
}
