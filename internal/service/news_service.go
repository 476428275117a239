package service

import (
	"time"

	"github.com/Shahwaiz-Dev/Dimo-amathountas-sub000/internal/content"
	"github.com/Shahwaiz-Dev/Dimo-amathountas-sub000/internal/logger"
	"github.com/Shahwaiz-Dev/Dimo-amathountas-sub000/internal/models"
	"github.com/Shahwaiz-Dev/Dimo-amathountas-sub000/internal/repository"
)

// NewsService news item business logic
type NewsService struct {
	repo      repository.NewsRepository
	scheduler PublishScheduler
}

// NewNewsService creates the news service
func NewNewsService(repo repository.NewsRepository, scheduler PublishScheduler) *NewsService {
	return &NewsService{repo: repo, scheduler: scheduler}
}

// NewsInput create/update payload for a news item
type NewsInput struct {
	Slug        string
	TitleJSON   map[string]interface{}
	ExcerptJSON map[string]interface{}
	ContentJSON map[string]interface{}
	ImageURL    string
	Category    string
	Published   *bool
	Featured    *bool
	PublishDate interface{}
}

// newsContentItem adapts a record to the shared visibility/filter view.
func newsContentItem(item *models.NewsItem) content.Item {
	return content.Item{
		Ref:         item,
		Published:   item.Published,
		Featured:    item.Featured,
		PublishDate: item.PublishDate,
		CreatedAt:   item.CreatedAt,
		Category:    item.Category,
		Texts:       []interface{}{item.TitleJSON, item.ExcerptJSON, item.ContentJSON},
	}
}

// ListPublic returns publicly visible news, filtered and paginated.
func (s *NewsService) ListPublic(filters content.Filters, page, pageSize int) ([]models.NewsItem, int64, error) {
	items, _, err := s.repo.List(repository.NewsListFilter{OnlyPublished: true})
	if err != nil {
		return nil, 0, err
	}

	now := time.Now()
	visible := make([]content.Item, 0, len(items))
	for i := range items {
		ci := newsContentItem(&items[i])
		if content.Visible(ci, now, content.ContextPublic) {
			visible = append(visible, ci)
		}
	}

	filtered := content.ApplyFilters(visible, now, filters)
	start, end := slicePage(len(filtered), page, pageSize)

	result := make([]models.NewsItem, 0, end-start)
	for _, ci := range filtered[start:end] {
		result = append(result, *ci.Ref.(*models.NewsItem))
	}
	return result, int64(len(filtered)), nil
}

// ListFeatured returns visible featured news for the home page.
func (s *NewsService) ListFeatured(limit int) ([]models.NewsItem, error) {
	items, _, err := s.repo.List(repository.NewsListFilter{OnlyPublished: true, OnlyFeatured: true})
	if err != nil {
		return nil, err
	}

	now := time.Now()
	result := make([]models.NewsItem, 0)
	for i := range items {
		if !content.Visible(newsContentItem(&items[i]), now, content.ContextHomeFeatured) {
			continue
		}
		result = append(result, items[i])
		if limit > 0 && len(result) >= limit {
			break
		}
	}
	return result, nil
}

// GetPublicBySlug returns a visible news item or ErrNotFound.
func (s *NewsService) GetPublicBySlug(slug string) (*models.NewsItem, error) {
	item, err := s.repo.GetBySlug(slug, true)
	if err != nil {
		return nil, err
	}
	if item == nil || !content.Visible(newsContentItem(item), time.Now(), content.ContextPublic) {
		return nil, ErrNotFound
	}
	return item, nil
}

// ListAdmin returns news for the admin panel with the full filter
// vocabulary applied, including drafts and scheduled items. Search runs in
// SQL across every stored language; the remaining criteria run in memory.
func (s *NewsService) ListAdmin(filters content.Filters, page, pageSize int) ([]models.NewsItem, int64, error) {
	search := filters.Search
	filters.Search = ""
	items, _, err := s.repo.List(repository.NewsListFilter{Search: search, OrderBy: "created_at DESC"})
	if err != nil {
		return nil, 0, err
	}

	now := time.Now()
	all := make([]content.Item, 0, len(items))
	for i := range items {
		all = append(all, newsContentItem(&items[i]))
	}

	filtered := content.ApplyFilters(all, now, filters)
	start, end := slicePage(len(filtered), page, pageSize)

	result := make([]models.NewsItem, 0, end-start)
	for _, ci := range filtered[start:end] {
		result = append(result, *ci.Ref.(*models.NewsItem))
	}
	return result, int64(len(filtered)), nil
}

// GetByID returns a news item for the admin panel.
func (s *NewsService) GetByID(id uint) (*models.NewsItem, error) {
	item, err := s.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, ErrNotFound
	}
	return item, nil
}

// Create creates a news item. A future publish date defers publication and
// schedules the flip.
func (s *NewsService) Create(input NewsInput) (*models.NewsItem, error) {
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

	item := models.NewsItem{
		Slug:        input.Slug,
		TitleJSON:   models.JSON(input.TitleJSON),
		ExcerptJSON: models.JSON(input.ExcerptJSON),
		ContentJSON: models.JSON(input.ContentJSON),
		ImageURL:    input.ImageURL,
		Category:    input.Category,
		Published:   published,
		Featured:    featured,
		PublishDate: publishDate,
	}
	if err := s.repo.Create(&item); err != nil {
		return nil, err
	}

	if scheduled {
		s.schedulePublish(item.ID, *publishDate)
	}
	return &item, nil
}

// Update updates a news item under the same publication policy as Create.
func (s *NewsService) Update(id uint, input NewsInput) (*models.NewsItem, error) {
	item, err := s.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if item == nil {
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

	item.Slug = input.Slug
	item.TitleJSON = models.JSON(input.TitleJSON)
	item.ExcerptJSON = models.JSON(input.ExcerptJSON)
	item.ContentJSON = models.JSON(input.ContentJSON)
	item.ImageURL = input.ImageURL
	item.Category = input.Category
	item.PublishDate = publishDate
	if input.Published != nil {
		item.Published = *input.Published
	}
	if input.Featured != nil {
		item.Featured = *input.Featured
	}
	if scheduled {
		item.Published = false
	}

	if err := s.repo.Update(item); err != nil {
		return nil, err
	}

	if scheduled {
		s.schedulePublish(item.ID, *publishDate)
	}
	return item, nil
}

// Delete removes a news item
func (s *NewsService) Delete(id uint) error {
	item, err := s.repo.GetByID(id)
	if err != nil {
		return err
	}
	if item == nil {
		return ErrNotFound
	}
	return s.repo.Delete(id)
}

// CompleteScheduledPublish flips the published flag once the scheduled
// moment arrives. A record whose date moved further into the future is left
// alone; the rescheduled task will pick it up.
func (s *NewsService) CompleteScheduledPublish(id uint) error {
	item, err := s.repo.GetByID(id)
	if err != nil {
		return err
	}
	if item == nil || item.Published {
		return nil
	}
	if item.PublishDate != nil && item.PublishDate.After(time.Now()) {
		return nil
	}
	item.Published = true
	return s.repo.Update(item)
}

func (s *NewsService) schedulePublish(id uint, at time.Time) {
	if s.scheduler == nil {
		return
	}
	if err := s.scheduler.ScheduleContentPublish(CollectionNews, id, at); err != nil {
		logger.Warnw("news_publish_schedule_failed", "id", id, "publish_at", at, "error", err)
	}
}
