package worker

import (
	"context"
	"encoding/json"

	"github.com/Shahwaiz-Dev/Dimo-amathountas-sub000/internal/cache"
	"github.com/Shahwaiz-Dev/Dimo-amathountas-sub000/internal/logger"
	"github.com/Shahwaiz-Dev/Dimo-amathountas-sub000/internal/provider"
	"github.com/Shahwaiz-Dev/Dimo-amathountas-sub000/internal/queue"
	"github.com/Shahwaiz-Dev/Dimo-amathountas-sub000/internal/service"

	"github.com/hibiken/asynq"
)

// Consumer async task consumer
type Consumer struct {
	*provider.Container
}

// NewConsumer creates the consumer
func NewConsumer(c *provider.Container) *Consumer {
	return &Consumer{
		Container: c,
	}
}

// Register registers task handlers
func (c *Consumer) Register(mux *asynq.ServeMux) {
	if c == nil || mux == nil {
		logger.Debugw("worker_register_skip_nil", "consumer_nil", c == nil, "mux_nil", mux == nil)
		return
	}
	mux.HandleFunc(queue.TaskContentPublish, c.handleContentPublish)
}

// handleContentPublish flips a scheduled record to published. The service
// re-checks the publish date, so a task for a rescheduled or already
// published record is a harmless no-op.
func (c *Consumer) handleContentPublish(ctx context.Context, task *asynq.Task) error {
	if c == nil || task == nil {
		logger.Debugw("worker_content_publish_skip_nil", "consumer_nil", c == nil, "task_nil", task == nil)
		return nil
	}
	var payload queue.ContentPublishPayload
	if err := json.Unmarshal(task.Payload(), &payload); err != nil {
		logger.Warnw("worker_content_publish_unmarshal_failed", "error", err)
		return err
	}
	if payload.ID == 0 {
		logger.Debugw("worker_content_publish_skip_invalid_payload", "id", payload.ID)
		return nil
	}

	var err error
	switch payload.Collection {
	case service.CollectionNews:
		err = c.NewsService.CompleteScheduledPublish(payload.ID)
	case service.CollectionEvents:
		err = c.EventService.CompleteScheduledPublish(payload.ID)
	case service.CollectionMuseums:
		err = c.MuseumService.CompleteScheduledPublish(payload.ID)
	default:
		logger.Debugw("worker_content_publish_skip_unknown_collection", "collection", payload.Collection)
		return nil
	}
	if err != nil {
		logger.Warnw("worker_content_publish_failed", "collection", payload.Collection, "id", payload.ID, "error", err)
		return err
	}

	cache.InvalidateCollection(ctx, payload.Collection)
	return nil
}
