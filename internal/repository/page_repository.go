package repository

import (
	"errors"
	"strings"

	"github.com/Shahwaiz-Dev/Dimo-amathountas-sub000/internal/models"

	"gorm.io/gorm"
)

// PageRepository municipality page data access
type PageRepository interface {
	List(filter PageListFilter) ([]models.Page, int64, error)
	GetBySlug(slug string, onlyPublished bool) (*models.Page, error)
	GetByID(id uint) (*models.Page, error)
	Create(page *models.Page) error
	Update(page *models.Page) error
	Delete(id uint) error
	CountBySlug(slug string, excludeID *uint) (int64, error)
	CountByCategory(categoryID uint, onlyPublished bool) (int64, error)
	PublishedCountByCategory() (map[uint]int, error)
}

// GormPageRepository GORM implementation
type GormPageRepository struct {
	db *gorm.DB
}

// NewPageRepository creates the page repository
func NewPageRepository(db *gorm.DB) *GormPageRepository {
	return &GormPageRepository{db: db}
}

// List pages
func (r *GormPageRepository) List(filter PageListFilter) ([]models.Page, int64, error) {
	var pages []models.Page
	query := r.db.Model(&models.Page{})

	if filter.OnlyPublished {
		query = query.Where("is_published = ?", true)
	}
	if filter.CategoryID != nil {
		query = query.Where("category_id = ?", *filter.CategoryID)
	}
	if search := strings.TrimSpace(filter.Search); search != "" {
		like := "%" + search + "%"
		condition, argCount := buildLocalizedLikeCondition(r.db, []string{"slug"}, []string{"title_json", "excerpt_json"})
		query = query.Where(condition, repeatLikeArgs(like, argCount)...)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	query = applyPagination(query, filter.Page, filter.PageSize)

	orderBy := filter.OrderBy
	if orderBy == "" {
		orderBy = "created_at DESC"
	}

	if err := query.Order(orderBy).Find(&pages).Error; err != nil {
		return nil, 0, err
	}
	return pages, total, nil
}

// GetBySlug gets a page by slug
func (r *GormPageRepository) GetBySlug(slug string, onlyPublished bool) (*models.Page, error) {
	query := r.db.Where("slug = ?", slug)
	if onlyPublished {
		query = query.Where("is_published = ?", true)
	}

	var page models.Page
	if err := query.First(&page).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &page, nil
}

// GetByID gets a page by ID
func (r *GormPageRepository) GetByID(id uint) (*models.Page, error) {
	var page models.Page
	if err := r.db.First(&page, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &page, nil
}

// Create creates a page
func (r *GormPageRepository) Create(page *models.Page) error {
	return r.db.Create(page).Error
}

// Update saves a page
func (r *GormPageRepository) Update(page *models.Page) error {
	return r.db.Save(page).Error
}

// Delete removes a page
func (r *GormPageRepository) Delete(id uint) error {
	return r.db.Delete(&models.Page{}, id).Error
}

// CountBySlug counts slug usage
func (r *GormPageRepository) CountBySlug(slug string, excludeID *uint) (int64, error) {
	var count int64
	query := r.db.Model(&models.Page{}).Where("slug = ?", slug)
	if excludeID != nil {
		query = query.Where("id != ?", *excludeID)
	}
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// CountByCategory counts pages attached to a category
func (r *GormPageRepository) CountByCategory(categoryID uint, onlyPublished bool) (int64, error) {
	var count int64
	query := r.db.Model(&models.Page{}).Where("category_id = ?", categoryID)
	if onlyPublished {
		query = query.Where("is_published = ?", true)
	}
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// PublishedCountByCategory returns published page counts keyed by category ID.
func (r *GormPageRepository) PublishedCountByCategory() (map[uint]int, error) {
	type row struct {
		CategoryID uint
		Total      int
	}
	rows := make([]row, 0)
	err := r.db.Model(&models.Page{}).
		Select("category_id, COUNT(*) AS total").
		Where("is_published = ?", true).
		Where("category_id IS NOT NULL").
		Group("category_id").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	counts := make(map[uint]int, len(rows))
	for _, r := range rows {
		counts[r.CategoryID] = r.Total
	}
	return counts, nil
}
