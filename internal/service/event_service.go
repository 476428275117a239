package service

import (
	"time"

	"github.com/Shahwaiz-Dev/Dimo-amathountas-sub000/internal/content"
	"github.com/Shahwaiz-Dev/Dimo-amathountas-sub000/internal/logger"
	"github.com/Shahwaiz-Dev/Dimo-amathountas-sub000/internal/models"
	"github.com/Shahwaiz-Dev/Dimo-amathountas-sub000/internal/repository"
)

// EventService event business logic
type EventService struct {
	repo      repository.EventRepository
	scheduler PublishScheduler
}

// NewEventService creates the event service
func NewEventService(repo repository.EventRepository, scheduler PublishScheduler) *EventService {
	return &EventService{repo: repo, scheduler: scheduler}
}

// EventInput create/update payload for an event
type EventInput struct {
	Slug         string
	TitleJSON    map[string]interface{}
	ExcerptJSON  map[string]interface{}
	ContentJSON  map[string]interface{}
	LocationJSON map[string]interface{}
	ImageURL     string
	Category     string
	Published    *bool
	Featured     *bool
	PublishDate  interface{}
	Date         interface{}
	TimeOfDay    string
	EndTime      string
}

func eventContentItem(event *models.Event) content.Item {
	return content.Item{
		Ref:         event,
		Published:   event.Published,
		Featured:    event.Featured,
		PublishDate: event.PublishDate,
		EventDate:   event.Date,
		CreatedAt:   event.CreatedAt,
		Category:    event.Category,
		Location:    event.LocationJSON,
		Texts:       []interface{}{event.TitleJSON, event.ExcerptJSON, event.ContentJSON, event.LocationJSON},
	}
}

// ListPublic returns publicly visible events, filtered and paginated.
func (s *EventService) ListPublic(filters content.Filters, page, pageSize int) ([]models.Event, int64, error) {
	events, _, err := s.repo.List(repository.EventListFilter{OnlyPublished: true})
	if err != nil {
		return nil, 0, err
	}

	now := time.Now()
	visible := make([]content.Item, 0, len(events))
	for i := range events {
		ci := eventContentItem(&events[i])
		if content.Visible(ci, now, content.ContextPublic) {
			visible = append(visible, ci)
		}
	}

	filtered := content.ApplyFilters(visible, now, filters)
	start, end := slicePage(len(filtered), page, pageSize)

	result := make([]models.Event, 0, end-start)
	for _, ci := range filtered[start:end] {
		result = append(result, *ci.Ref.(*models.Event))
	}
	return result, int64(len(filtered)), nil
}

// ListUpcoming returns featured events that are visible and have not yet
// taken place, soonest first, for the home page.
func (s *EventService) ListUpcoming(limit int) ([]models.Event, error) {
	now := time.Now()
	events, err := s.repo.ListUpcoming(now, 0)
	if err != nil {
		return nil, err
	}

	result := make([]models.Event, 0)
	for i := range events {
		if !content.Visible(eventContentItem(&events[i]), now, content.ContextHomeUpcoming) {
			continue
		}
		result = append(result, events[i])
		if limit > 0 && len(result) >= limit {
			break
		}
	}
	return result, nil
}

// GetPublicBySlug returns a visible event or ErrNotFound.
func (s *EventService) GetPublicBySlug(slug string) (*models.Event, error) {
	event, err := s.repo.GetBySlug(slug, true)
	if err != nil {
		return nil, err
	}
	if event == nil || !content.Visible(eventContentItem(event), time.Now(), content.ContextPublic) {
		return nil, ErrNotFound
	}
	return event, nil
}

// ListAdmin returns events for the admin panel with the full filter
// vocabulary applied.
func (s *EventService) ListAdmin(filters content.Filters, page, pageSize int) ([]models.Event, int64, error) {
	search := filters.Search
	filters.Search = ""
	events, _, err := s.repo.List(repository.EventListFilter{Search: search, OrderBy: "created_at DESC"})
	if err != nil {
		return nil, 0, err
	}

	now := time.Now()
	all := make([]content.Item, 0, len(events))
	for i := range events {
		all = append(all, eventContentItem(&events[i]))
	}

	filtered := content.ApplyFilters(all, now, filters)
	start, end := slicePage(len(filtered), page, pageSize)

	result := make([]models.Event, 0, end-start)
	for _, ci := range filtered[start:end] {
		result = append(result, *ci.Ref.(*models.Event))
	}
	return result, int64(len(filtered)), nil
}

// GetByID returns an event for the admin panel.
func (s *EventService) GetByID(id uint) (*models.Event, error) {
	event, err := s.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if event == nil {
		return nil, ErrNotFound
	}
	return event, nil
}

// Create creates an event under the shared publication policy.
func (s *EventService) Create(input EventInput) (*models.Event, error) {
	count, err := s.repo.CountBySlug(input.Slug, nil)
	if err != nil {
		return nil, err
	}
	if count > 0 {
		return nil, ErrSlugExists
	}

	now := time.Now()
	publishDate, scheduled, err := resolvePublishDate(input.PublishDate, now)
	if err != nil {
		return nil, err
	}
	eventDate, err := resolveEventDate(input.Date)
	if err != nil {
		return nil, err
	}

	published := false
	if input.Published != nil {
		published = *input.Published
	}
	if scheduled {
		published = false
	}

	featured := false
	if input.Featured != nil {
		featured = *input.Featured
	}

	event := models.Event{
		Slug:         input.Slug,
		TitleJSON:    models.JSON(input.TitleJSON),
		ExcerptJSON:  models.JSON(input.ExcerptJSON),
		ContentJSON:  models.JSON(input.ContentJSON),
		LocationJSON: models.JSON(input.LocationJSON),
		ImageURL:     input.ImageURL,
		Category:     input.Category,
		Published:    published,
		Featured:     featured,
		PublishDate:  publishDate,
		Date:         eventDate,
		TimeOfDay:    input.TimeOfDay,
		EndTime:      input.EndTime,
	}
	if err := s.repo.Create(&event); err != nil {
		return nil, err
	}

	if scheduled {
		s.schedulePublish(event.ID, *publishDate)
	}
	return &event, nil
}

// Update updates an event under the same policy as Create.
func (s *EventService) Update(id uint, input EventInput) (*models.Event, error) {
	event, err := s.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if event == nil {
		return nil, ErrNotFound
	}

	count, err := s.repo.CountBySlug(input.Slug, &id)
	if err != nil {
		return nil, err
	}
	if count > 0 {
		return nil, ErrSlugExists
	}

	now := time.Now()
	publishDate, scheduled, err := resolvePublishDate(input.PublishDate, now)
	if err != nil {
		return nil, err
	}
	eventDate, err := resolveEventDate(input.Date)
	if err != nil {
		return nil, err
	}

	event.Slug = input.Slug
	event.TitleJSON = models.JSON(input.TitleJSON)
	event.ExcerptJSON = models.JSON(input.ExcerptJSON)
	event.ContentJSON = models.JSON(input.ContentJSON)
	event.LocationJSON = models.JSON(input.LocationJSON)
	event.ImageURL = input.ImageURL
	event.Category = input.Category
	event.PublishDate = publishDate
	event.Date = eventDate
	event.TimeOfDay = input.TimeOfDay
	event.EndTime = input.EndTime
	if input.Published != nil {
		event.Published = *input.Published
	}
	if input.Featured != nil {
		event.Featured = *input.Featured
	}
	if scheduled {
		event.Published = false
	}

	if err := s.repo.Update(event); err != nil {
		return nil, err
	}

	if scheduled {
		s.schedulePublish(event.ID, *publishDate)
	}
	return event, nil
}

// Delete removes an event
func (s *EventService) Delete(id uint) error {
	event, err := s.repo.GetByID(id)
	if err != nil {
		return err
	}
	if event == nil {
		return ErrNotFound
	}
	return s.repo.Delete(id)
}

// CompleteScheduledPublish flips the published flag once the scheduled
// moment arrives.
func (s *EventService) CompleteScheduledPublish(id uint) error {
	event, err := s.repo.GetByID(id)
	if err != nil {
		return err
	}
	if event == nil || event.Published {
		return nil
	}
	if event.PublishDate != nil && event.PublishDate.After(time.Now()) {
		return nil
	}
	event.Published = true
	return s.repo.Update(event)
}

// resolveEventDate normalizes the event day; unlike the publish date, past
// values stay valid so historical events can be recorded.
func resolveEventDate(raw interface{}) (*time.Time, error) {
	millis, ok := content.ToEpochMillis(raw)
	if !ok {
		if content.DateAbsent(raw) {
			return nil, nil
		}
		return nil, ErrInvalidPublishDate
	}
	at := time.UnixMilli(millis)
	return &at, nil
}

func (s *EventService) schedulePublish(id uint, at time.Time) {
	if s.scheduler == nil {
		return
	}
	if err := s.scheduler.ScheduleContentPublish(CollectionEvents, id, at); err != nil {
		logger.Warnw("event_publish_schedule_failed", "id", id, "publish_at", at, "error", err)
	}
}
