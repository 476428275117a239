package service

import (
	"github.com/Shahwaiz-Dev/Dimo-amathountas-sub000/internal/models"
	"github.com/Shahwaiz-Dev/Dimo-amathountas-sub000/internal/repository"
)

// PageService municipality page business logic
type PageService struct {
	repo         repository.PageRepository
	categoryRepo repository.PageCategoryRepository
}

// NewPageService creates the page service
func NewPageService(repo repository.PageRepository, categoryRepo repository.PageCategoryRepository) *PageService {
	return &PageService{repo: repo, categoryRepo: categoryRepo}
}

// PageInput create/update payload for a page
type PageInput struct {
	Slug        string
	TitleJSON   map[string]interface{}
	ExcerptJSON map[string]interface{}
	ContentJSON map[string]interface{}
	CategoryID  *uint
	Layout      string
	IsPublished *bool
}

// GetPublicBySlug returns a published page or ErrNotFound.
func (s *PageService) GetPublicBySlug(slug string) (*models.Page, error) {
	page, err := s.repo.GetBySlug(slug, true)
	if err != nil {
		return nil, err
	}
	if page == nil {
		return nil, ErrNotFound
	}
	return page, nil
}

// ListPublicByCategory returns published pages of a category, identified by
// its slug.
func (s *PageService) ListPublicByCategory(categorySlug string, page, pageSize int) ([]models.Page, int64, error) {
	category, err := s.categoryRepo.GetBySlug(categorySlug)
	if err != nil {
		return nil, 0, err
	}
	if category == nil || !category.IsActive {
		return nil, 0, ErrNotFound
	}

	return s.repo.List(repository.PageListFilter{
		Page:          page,
		PageSize:      pageSize,
		CategoryID:    &category.ID,
		OnlyPublished: true,
	})
}

// ListAdmin returns pages for the admin panel.
func (s *PageService) ListAdmin(search string, categoryID *uint, page, pageSize int) ([]models.Page, int64, error) {
	return s.repo.List(repository.PageListFilter{
		Page:       page,
		PageSize:   pageSize,
		CategoryID: categoryID,
		Search:     search,
	})
}

// GetByID returns a page for the admin panel.
func (s *PageService) GetByID(id uint) (*models.Page, error) {
	page, err := s.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if page == nil {
		return nil, ErrNotFound
	}
	return page, nil
}

// GetAdminBySlug returns a page by slug regardless of publication state.
func (s *PageService) GetAdminBySlug(slug string) (*models.Page, error) {
	page, err := s.repo.GetBySlug(slug, false)
	if err != nil {
		return nil, err
	}
	if page == nil {
		return nil, ErrNotFound
	}
	return page, nil
}

// UpdateBySlug updates a page addressed by its current slug. The payload may
// carry a new slug.
func (s *PageService) UpdateBySlug(slug string, input PageInput) (*models.Page, error) {
	page, err := s.repo.GetBySlug(slug, false)
	if err != nil {
		return nil, err
	}
	if page == nil {
		return nil, ErrNotFound
	}
	return s.Update(page.ID, input)
}

// DeleteBySlug removes a page addressed by its slug.
func (s *PageService) DeleteBySlug(slug string) error {
	page, err := s.repo.GetBySlug(slug, false)
	if err != nil {
		return err
	}
	if page == nil {
		return ErrNotFound
	}
	return s.repo.Delete(page.ID)
}

// Create creates a page. The category reference is validated but kept by
// convention only, so a later category deletion never breaks the page.
func (s *PageService) Create(input PageInput) (*models.Page, error) {
	layout, err := s.resolveLayout(input.Layout)
	if err != nil {
		return nil, err
	}
	if err := s.validateCategory(input.CategoryID); err != nil {
		return nil, err
	}

	count, err := s.repo.CountBySlug(input.Slug, nil)
	if err != nil {
		return nil, err
	}
	if count > 0 {
		return nil, ErrSlugExists
	}

	isPublished := false
	if input.IsPublished != nil {
		isPublished = *input.IsPublished
	}

	page := models.Page{
		Slug:        input.Slug,
		TitleJSON:   models.JSON(input.TitleJSON),
		ExcerptJSON: models.JSON(input.ExcerptJSON),
		ContentJSON: models.JSON(input.ContentJSON),
		CategoryID:  input.CategoryID,
		Layout:      layout,
		IsPublished: isPublished,
	}
	if err := s.repo.Create(&page); err != nil {
		return nil, err
	}
	return &page, nil
}

// Update updates a page
func (s *PageService) Update(id uint, input PageInput) (*models.Page, error) {
	layout, err := s.resolveLayout(input.Layout)
	if err != nil {
		return nil, err
	}
	if err := s.validateCategory(input.CategoryID); err != nil {
		return nil, err
	}

	page, err := s.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if page == nil {
		return nil, ErrNotFound
	}

	count, err := s.repo.CountBySlug(input.Slug, &id)
	if err != nil {
		return nil, err
	}
	if count > 0 {
		return nil, ErrSlugExists
	}

	page.Slug = input.Slug
	page.TitleJSON = models.JSON(input.TitleJSON)
	page.ExcerptJSON = models.JSON(input.ExcerptJSON)
	page.ContentJSON = models.JSON(input.ContentJSON)
	page.CategoryID = input.CategoryID
	page.Layout = layout
	if input.IsPublished != nil {
		page.IsPublished = *input.IsPublished
	}

	if err := s.repo.Update(page); err != nil {
		return nil, err
	}
	return page, nil
}

// Delete removes a page
func (s *PageService) Delete(id uint) error {
	page, err := s.repo.GetByID(id)
	if err != nil {
		return err
	}
	if page == nil {
		return ErrNotFound
	}
	return s.repo.Delete(id)
}

func (s *PageService) resolveLayout(layout string) (string, error) {
	if layout == "" {
		return models.PageLayoutDefault, nil
	}
	if !models.IsAllowedPageLayout(layout) {
		return "", ErrInvalidLayout
	}
	return layout, nil
}

func (s *PageService) validateCategory(categoryID *uint) error {
	if categoryID == nil {
		return nil
	}
	category, err := s.categoryRepo.GetByID(*categoryID)
	if err != nil {
		return err
	}
	if category == nil {
		return ErrInvalidParent
	}
	return nil
}
