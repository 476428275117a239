package repository

import (
	"errors"

	"github.com/Shahwaiz-Dev/Dimo-amathountas-sub000/internal/models"

	"gorm.io/gorm"
)

// PageCategoryRepository page category data access
type PageCategoryRepository interface {
	List(onlyActive bool) ([]models.PageCategory, error)
	GetByID(id uint) (*models.PageCategory, error)
	GetBySlug(slug string) (*models.PageCategory, error)
	Create(category *models.PageCategory) error
	Update(category *models.PageCategory) error
	Delete(id uint) error
	CountBySlug(slug string, excludeID *uint) (int64, error)
	CountChildren(parentID uint) (int64, error)
}

// GormPageCategoryRepository GORM implementation
type GormPageCategoryRepository struct {
	db *gorm.DB
}

// NewPageCategoryRepository creates the page category repository
func NewPageCategoryRepository(db *gorm.DB) *GormPageCategoryRepository {
	return &GormPageCategoryRepository{db: db}
}

// List categories
func (r *GormPageCategoryRepository) List(onlyActive bool) ([]models.PageCategory, error) {
	categories := make([]models.PageCategory, 0)
	query := r.db.Order("sort_order ASC, id ASC")
	if onlyActive {
		query = query.Where("is_active = ?", true)
	}
	if err := query.Find(&categories).Error; err != nil {
		return nil, err
	}
	return categories, nil
}

// GetByID gets a category by ID
func (r *GormPageCategoryRepository) GetByID(id uint) (*models.PageCategory, error) {
	var category models.PageCategory
	if err := r.db.First(&category, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &category, nil
}

// GetBySlug gets a category by slug
func (r *GormPageCategoryRepository) GetBySlug(slug string) (*models.PageCategory, error) {
	var category models.PageCategory
	if err := r.db.Where("slug = ?", slug).First(&category).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &category, nil
}

// Create creates a category
func (r *GormPageCategoryRepository) Create(category *models.PageCategory) error {
	return r.db.Create(category).Error
}

// Update saves a category
func (r *GormPageCategoryRepository) Update(category *models.PageCategory) error {
	return r.db.Save(category).Error
}

// Delete removes a category
func (r *GormPageCategoryRepository) Delete(id uint) error {
	return r.db.Delete(&models.PageCategory{}, id).Error
}

// CountBySlug counts slug usage
func (r *GormPageCategoryRepository) CountBySlug(slug string, excludeID *uint) (int64, error) {
	var count int64
	query := r.db.Model(&models.PageCategory{}).Where("slug = ?", slug)
	if excludeID != nil {
		query = query.Where("id != ?", *excludeID)
	}
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// CountChildren counts direct subcategories
func (r *GormPageCategoryRepository) CountChildren(parentID uint) (int64, error) {
	var count int64
	if err := r.db.Model(&models.PageCategory{}).Where("parent_id = ?", parentID).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
