package service

import (
	"time"

	"github.com/Shahwaiz-Dev/Dimo-amathountas-sub000/internal/content"
	"github.com/Shahwaiz-Dev/Dimo-amathountas-sub000/internal/logger"
	"github.com/Shahwaiz-Dev/Dimo-amathountas-sub000/internal/models"
	"github.com/Shahwaiz-Dev/Dimo-amathountas-sub000/internal/repository"
)

// MuseumService museum business logic
type MuseumService struct {
	repo      repository.MuseumRepository
	scheduler PublishScheduler
}

// NewMuseumService creates the museum service
func NewMuseumService(repo repository.MuseumRepository, scheduler PublishScheduler) *MuseumService {
	return &MuseumService{repo: repo, scheduler: scheduler}
}

// MuseumInput create/update payload for a museum
type MuseumInput struct {
	Slug            string
	TitleJSON       map[string]interface{}
	DescriptionJSON map[string]interface{}
	ContentJSON     map[string]interface{}
	LocationJSON    map[string]interface{}
	HoursJSON       map[string]interface{}
	ImageURL        string
	Accessible      *bool
	Published       *bool
	Featured        *bool
	PublishDate     interface{}
}

func museumContentItem(museum *models.Museum) content.Item {
	accessible := museum.Accessible
	return content.Item{
		Ref:         museum,
		Published:   museum.Published,
		Featured:    museum.Featured,
		PublishDate: museum.PublishDate,
		CreatedAt:   museum.CreatedAt,
		Location:    museum.LocationJSON,
		Accessible:  &accessible,
		Texts:       []interface{}{museum.TitleJSON, museum.DescriptionJSON, museum.LocationJSON},
	}
}

// ListPublic returns publicly visible museums, filtered and paginated.
func (s *MuseumService) ListPublic(filters content.Filters, page, pageSize int) ([]models.Museum, int64, error) {
	museums, _, err := s.repo.List(repository.MuseumListFilter{OnlyPublished: true})
	if err != nil {
		return nil, 0, err
	}

	now := time.Now()
	visible := make([]content.Item, 0, len(museums))
	for i := range museums {
		ci := museumContentItem(&museums[i])
		if content.Visible(ci, now, content.ContextPublic) {
			visible = append(visible, ci)
		}
	}

	filtered := content.ApplyFilters(visible, now, filters)
	start, end := slicePage(len(filtered), page, pageSize)

	result := make([]models.Museum, 0, end-start)
	for _, ci := range filtered[start:end] {
		result = append(result, *ci.Ref.(*models.Museum))
	}
	return result, int64(len(filtered)), nil
}

// GetPublicBySlug returns a visible museum or ErrNotFound.
func (s *MuseumService) GetPublicBySlug(slug string) (*models.Museum, error) {
	museum, err := s.repo.GetBySlug(slug, true)
	if err != nil {
		return nil, err
	}
	if museum == nil || !content.Visible(museumContentItem(museum), time.Now(), content.ContextPublic) {
		return nil, ErrNotFound
	}
	return museum, nil
}

// ListAdmin returns museums for the admin panel with the full filter
// vocabulary applied.
func (s *MuseumService) ListAdmin(filters content.Filters, page, pageSize int) ([]models.Museum, int64, error) {
	search := filters.Search
	filters.Search = ""
	museums, _, err := s.repo.List(repository.MuseumListFilter{Search: search, OrderBy: "created_at DESC"})
	if err != nil {
		return nil, 0, err
	}

	now := time.Now()
	all := make([]content.Item, 0, len(museums))
	for i := range museums {
		all = append(all, museumContentItem(&museums[i]))
	}

	filtered := content.ApplyFilters(all, now, filters)
	start, end := slicePage(len(filtered), page, pageSize)

	result := make([]models.Museum, 0, end-start)
	for _, ci := range filtered[start:end] {
		result = append(result, *ci.Ref.(*models.Museum))
	}
	return result, int64(len(filtered)), nil
}

// GetByID returns a museum for the admin panel.
func (s *MuseumService) GetByID(id uint) (*models.Museum, error) {
	museum, err := s.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if museum == nil {
		return nil, ErrNotFound
	}
	return museum, nil
}

// Create creates a museum under the shared publication policy.
func (s *MuseumService) Create(input MuseumInput) (*models.Museum, error) {
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
	accessible := false
	if input.Accessible != nil {
		accessible = *input.Accessible
	}

	museum := models.Museum{
		Slug:            input.Slug,
		TitleJSON:       models.JSON(input.TitleJSON),
		DescriptionJSON: models.JSON(input.DescriptionJSON),
		ContentJSON:     models.JSON(input.ContentJSON),
		LocationJSON:    models.JSON(input.LocationJSON),
		HoursJSON:       models.JSON(input.HoursJSON),
		ImageURL:        input.ImageURL,
		Accessible:      accessible,
		Published:       published,
		Featured:        featured,
		PublishDate:     publishDate,
	}
	if err := s.repo.Create(&museum); err != nil {
		return nil, err
	}

	if scheduled {
		s.schedulePublish(museum.ID, *publishDate)
	}
	return &museum, nil
}

// Update updates a museum under the same policy as Create.
func (s *MuseumService) Update(id uint, input MuseumInput) (*models.Museum, error) {
	museum, err := s.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if museum == nil {
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

	museum.Slug = input.Slug
	museum.TitleJSON = models.JSON(input.TitleJSON)
	museum.DescriptionJSON = models.JSON(input.DescriptionJSON)
	museum.ContentJSON = models.JSON(input.ContentJSON)
	museum.LocationJSON = models.JSON(input.LocationJSON)
	museum.HoursJSON = models.JSON(input.HoursJSON)
	museum.ImageURL = input.ImageURL
	museum.PublishDate = publishDate
	if input.Accessible != nil {
		museum.Accessible = *input.Accessible
	}
	if input.Published != nil {
		museum.Published = *input.Published
	}
	if input.Featured != nil {
		museum.Featured = *input.Featured
	}
	if scheduled {
		museum.Published = false
	}

	if err := s.repo.Update(museum); err != nil {
		return nil, err
	}

	if scheduled {
		s.schedulePublish(museum.ID, *publishDate)
	}
	return museum, nil
}

// Delete removes a museum
func (s *MuseumService) Delete(id uint) error {
	museum, err := s.repo.GetByID(id)
	if err != nil {
		return err
	}
	if museum == nil {
		return ErrNotFound
	}
	return s.repo.Delete(id)
}

// CompleteScheduledPublish flips the published flag once the scheduled
// moment arrives.
func (s *MuseumService) CompleteScheduledPublish(id uint) error {
	museum, err := s.repo.GetByID(id)
	if err != nil {
		return err
	}
	if museum == nil || museum.Published {
		return nil
	}
	if museum.PublishDate != nil && museum.PublishDate.After(time.Now()) {
		return nil
	}
	museum.Published = true
	return s.repo.Update(museum)
}

func (s *MuseumService) schedulePublish(id uint, at time.Time) {
	if s.scheduler == nil {
		return
	}
	if err := s.scheduler.ScheduleContentPublish(CollectionMuseums, id, at); err != nil {
		logger.Warnw("museum_publish_schedule_failed", "id", id, "publish_at", at, "error", err)
	}
}
