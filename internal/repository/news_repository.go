package repository

import (
	"errors"
	"strings"

	"github.com/Shahwaiz-Dev/Dimo-amathountas-sub000/internal/models"

	"gorm.io/gorm"
)

// NewsRepository news item data access
type NewsRepository interface {
	List(filter NewsListFilter) ([]models.NewsItem, int64, error)
	GetBySlug(slug string, onlyPublished bool) (*models.NewsItem, error)
	GetByID(id uint) (*models.NewsItem, error)
	Create(item *models.NewsItem) error
	Update(item *models.NewsItem) error
	Delete(id uint) error
	CountBySlug(slug string, excludeID *uint) (int64, error)
}

// GormNewsRepository GORM implementation
type GormNewsRepository struct {
	db *gorm.DB
}

// NewNewsRepository creates the news repository
func NewNewsRepository(db *gorm.DB) *GormNewsRepository {
	return &GormNewsRepository{db: db}
}

// List news items
func (r *GormNewsRepository) List(filter NewsListFilter) ([]models.NewsItem, int64, error) {
	var items []models.NewsItem
	query := r.db.Model(&models.NewsItem{})

	if filter.OnlyPublished {
		query = query.Where("published = ?", true)
	}
	if filter.OnlyFeatured {
		query = query.Where("featured = ?", true)
	}
	if filter.Category != "" {
		query = query.Where("category = ?", filter.Category)
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
		orderBy = "publish_date DESC, created_at DESC"
	}

	if err := query.Order(orderBy).Find(&items).Error; err != nil {
		return nil, 0, err
	}
	return items, total, nil
}

// GetBySlug gets a news item by slug
func (r *GormNewsRepository) GetBySlug(slug string, onlyPublished bool) (*models.NewsItem, error) {
	query := r.db.Where("slug = ?", slug)
	if onlyPublished {
		query = query.Where("published = ?", true)
	}

	var item models.NewsItem
	if err := query.First(&item).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &item, nil
}

// GetByID gets a news item by ID
func (r *GormNewsRepository) GetByID(id uint) (*models.NewsItem, error) {
	var item models.NewsItem
	if err := r.db.First(&item, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &item, nil
}

// Create creates a news item
func (r *GormNewsRepository) Create(item *models.NewsItem) error {
	return r.db.Create(item).Error
}

// Update saves a news item
func (r *GormNewsRepository) Update(item *models.NewsItem) error {
	return r.db.Save(item).Error
}

// Delete removes a news item
func (r *GormNewsRepository) Delete(id uint) error {
	return r.db.Delete(&models.NewsItem{}, id).Error
}

// CountBySlug counts slug usage
func (r *GormNewsRepository) CountBySlug(slug string, excludeID *uint) (int64, error) {
	var count int64
	query := r.db.Model(&models.NewsItem{}).Where("slug = ?", slug)
	if excludeID != nil {
		query = query.Where("id != ?", *excludeID)
	}
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
