package service

import (
	"time"

	"github.com/Shahwaiz-Dev/Dimo-amathountas-sub000/internal/content"
)

// maxPublishDateAge how far in the past a submitted publish date may lie.
const maxPublishDateAge = 24 * time.Hour

// PublishScheduler enqueues a deferred publication for a content record.
// Scheduling is best effort; public visibility re-checks the date on read.
type PublishScheduler interface {
	ScheduleContentPublish(collection string, id uint, publishAt time.Time) error
}

// resolvePublishDate normalizes the tolerant publish date encoding and
// applies the publication policy: an absent date publishes immediately, a
// future date defers publication, a date older than maxPublishDateAge is
// rejected as stale input.
func resolvePublishDate(raw interface{}, now time.Time) (publishDate *time.Time, scheduled bool, err error) {
	millis, ok := content.ToEpochMillis(raw)
	if !ok {
		if content.DateAbsent(raw) {
			return nil, false, nil
		}
		return nil, false, ErrInvalidPublishDate
	}

	at := time.UnixMilli(millis)
	if now.Sub(at) > maxPublishDateAge {
		return nil, false, ErrPublishDateTooOld
	}
	return &at, at.After(now), nil
}
