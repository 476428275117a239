package service

import (
	"github.com/Shahwaiz-Dev/Dimo-amathountas-sub000/internal/content"
	"github.com/Shahwaiz-Dev/Dimo-amathountas-sub000/internal/models"
	"github.com/Shahwaiz-Dev/Dimo-amathountas-sub000/internal/repository"
)

// PageCategoryService page category business logic, including the public
// navigation projection.
type PageCategoryService struct {
	repo     repository.PageCategoryRepository
	pageRepo repository.PageRepository
}

// NewPageCategoryService creates the page category service
func NewPageCategoryService(repo repository.PageCategoryRepository, pageRepo repository.PageRepository) *PageCategoryService {
	return &PageCategoryService{repo: repo, pageRepo: pageRepo}
}

// PageCategoryInput create/update payload for a category
type PageCategoryInput struct {
	Slug            string
	NameJSON        map[string]interface{}
	DescriptionJSON map[string]interface{}
	Icon            string
	Color           string
	IsActive        *bool
	ShowInNavbar    *bool
	NavOrder        int
	SortOrder       int
	ParentID        *uint
}

// List returns all categories ordered for the admin panel.
func (s *PageCategoryService) List() ([]models.PageCategory, error) {
	return s.repo.List(false)
}

// Tree returns active categories organized into main/sub levels.
func (s *PageCategoryService) Tree() (content.Tree, error) {
	categories, err := s.repo.List(true)
	if err != nil {
		return content.Tree{}, err
	}
	return content.BuildTree(categories), nil
}

// Navbar returns the public navigation entries.
func (s *PageCategoryService) Navbar() ([]content.NavbarEntry, error) {
	categories, err := s.repo.List(true)
	if err != nil {
		return nil, err
	}
	counts, err := s.pageRepo.PublishedCountByCategory()
	if err != nil {
		return nil, err
	}
	return content.NavbarEntries(categories, counts), nil
}

// GetBySlug returns an active category or ErrNotFound.
func (s *PageCategoryService) GetBySlug(slug string) (*models.PageCategory, error) {
	category, err := s.repo.GetBySlug(slug)
	if err != nil {
		return nil, err
	}
	if category == nil {
		return nil, ErrNotFound
	}
	return category, nil
}

// GetByID returns a category for the admin panel.
func (s *PageCategoryService) GetByID(id uint) (*models.PageCategory, error) {
	category, err := s.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if category == nil {
		return nil, ErrNotFound
	}
	return category, nil
}

// Create creates a category. Nesting stops at one level: the parent must
// exist and must itself be a main category.
func (s *PageCategoryService) Create(input PageCategoryInput) (*models.PageCategory, error) {
	if err := s.validateParent(input.ParentID, nil); err != nil {
		return nil, err
	}

	count, err := s.repo.CountBySlug(input.Slug, nil)
	if err != nil {
		return nil, err
	}
	if count > 0 {
		return nil, ErrSlugExists
	}

	isActive := true
	if input.IsActive != nil {
		isActive = *input.IsActive
	}
	showInNavbar := false
	if input.ShowInNavbar != nil {
		showInNavbar = *input.ShowInNavbar
	}

	category := models.PageCategory{
		Slug:            input.Slug,
		NameJSON:        models.JSON(input.NameJSON),
		DescriptionJSON: models.JSON(input.DescriptionJSON),
		Icon:            input.Icon,
		Color:           input.Color,
		IsActive:        isActive,
		ShowInNavbar:    showInNavbar,
		NavOrder:        input.NavOrder,
		SortOrder:       input.SortOrder,
		ParentID:        input.ParentID,
	}
	if err := s.repo.Create(&category); err != nil {
		return nil, err
	}
	return &category, nil
}

// Update updates a category
func (s *PageCategoryService) Update(id uint, input PageCategoryInput) (*models.PageCategory, error) {
	category, err := s.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if category == nil {
		return nil, ErrNotFound
	}

	if err := s.validateParent(input.ParentID, &id); err != nil {
		return nil, err
	}

	count, err := s.repo.CountBySlug(input.Slug, &id)
	if err != nil {
		return nil, err
	}
	if count > 0 {
		return nil, ErrSlugExists
	}

	category.Slug = input.Slug
	category.NameJSON = models.JSON(input.NameJSON)
	category.DescriptionJSON = models.JSON(input.DescriptionJSON)
	category.Icon = input.Icon
	category.Color = input.Color
	category.NavOrder = input.NavOrder
	category.SortOrder = input.SortOrder
	category.ParentID = input.ParentID
	if input.IsActive != nil {
		category.IsActive = *input.IsActive
	}
	if input.ShowInNavbar != nil {
		category.ShowInNavbar = *input.ShowInNavbar
	}

	if err := s.repo.Update(category); err != nil {
		return nil, err
	}
	return category, nil
}

// Delete removes a category, refusing while pages or subcategories still
// reference it.
func (s *PageCategoryService) Delete(id uint) error {
	category, err := s.repo.GetByID(id)
	if err != nil {
		return err
	}
	if category == nil {
		return ErrNotFound
	}

	pages, err := s.pageRepo.CountByCategory(id, false)
	if err != nil {
		return err
	}
	if pages > 0 {
		return ErrCategoryInUse
	}

	children, err := s.repo.CountChildren(id)
	if err != nil {
		return err
	}
	if children > 0 {
		return ErrCategoryInUse
	}

	return s.repo.Delete(id)
}

func (s *PageCategoryService) validateParent(parentID, selfID *uint) error {
	if parentID == nil {
		return nil
	}
	if selfID != nil && *parentID == *selfID {
		return ErrInvalidParent
	}
	parent, err := s.repo.GetByID(*parentID)
	if err != nil {
		return err
	}
	if parent == nil || parent.ParentID != nil {
		return ErrInvalidParent
	}
	return nil
}
