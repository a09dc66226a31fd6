package store

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/hibiken/asynq"
	log "github.com/sirupsen/logrus"

	"palette/internal/tasks"
)

var _ JobClient = (*AsynqJobClient)(nil)

// AsynqJobClient enqueues background tasks on Redis.
type AsynqJobClient struct {
	client *asynq.Client
}

func NewAsynqJobClient(opt asynq.RedisClientOpt) (*AsynqJobClient, error) {
	if opt.Addr == "" {
		return nil, fmt.Errorf("redis address cannot be empty")
	}
	return &AsynqJobClient{client: asynq.NewClient(opt)}, nil
}

func (jc *AsynqJobClient) Close() error {
	return jc.client.Close()
}

func (jc *AsynqJobClient) Enqueue(ctx context.Context, task *asynq.Task, opts ...asynq.Option) (*asynq.TaskInfo, error) {
	if jc.client == nil {
		return nil, fmt.Errorf("asynq client is not initialized")
	}
	info, err := jc.client.EnqueueContext(ctx, task, opts...)
	if err != nil {
		return nil, fmt.Errorf("enqueue %s: %w", task.Type(), err)
	}
	log.WithFields(log.Fields{"task_id": info.ID, "type": task.Type(), "queue": info.Queue}).Debug("Enqueued task")
	return info, nil
}

func (jc *AsynqJobClient) EnqueueSearchRecord(ctx context.Context, payload tasks.SearchRecordPayload) error {
	if payload.RequestID == "" {
		payload.RequestID = uuid.NewString()
	}
	task, err := tasks.NewSearchRecordTask(payload)
	if err != nil {
		return err
	}
	// the request id doubles as task id so a retried request is not recorded twice
	_, err = jc.Enqueue(ctx, task, asynq.Queue(tasks.QueueHistory), asynq.TaskID(payload.RequestID), asynq.MaxRetry(3))
	if err != nil {
		return fmt.Errorf("enqueue search record for request %s: %w", payload.RequestID, err)
	}
	return nil
}
