package queue

import (
	"encoding/json"

	"github.com/hibiken/asynq"
)

// TaskContentPublish flips a scheduled record to published at its publish
// date.
const TaskContentPublish = "content:publish"

// ContentPublishPayload identifies the record to publish.
type ContentPublishPayload struct {
	Collection string `json:"collection"`
	ID         uint   `json:"id"`
}

// NewContentPublishTask creates the deferred publish task
func NewContentPublishTask(payload ContentPublishPayload) (*asynq.Task, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}
	return asynq.NewTask(TaskContentPublish, body), nil
}
