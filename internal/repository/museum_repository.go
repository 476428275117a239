package repository

import (
	"errors"
	"strings"

	"github.com/Shahwaiz-Dev/Dimo-amathountas-sub000/internal/models"

	"gorm.io/gorm"
)

// MuseumRepository museum data access
type MuseumRepository interface {
	List(filter MuseumListFilter) ([]models.Museum, int64, error)
	GetBySlug(slug string, onlyPublished bool) (*models.Museum, error)
	GetByID(id uint) (*models.Museum, error)
	Create(museum *models.Museum) error
	Update(museum *models.Museum) error
	Delete(id uint) error
	CountBySlug(slug string, excludeID *uint) (int64, error)
}

// GormMuseumRepository GORM implementation
type GormMuseumRepository struct {
	db *gorm.DB
}

// NewMuseumRepository creates the museum repository
func NewMuseumRepository(db *gorm.DB) *GormMuseumRepository {
	return &GormMuseumRepository{db: db}
}

// List museums
func (r *GormMuseumRepository) List(filter MuseumListFilter) ([]models.Museum, int64, error) {
	var museums []models.Museum
	query := r.db.Model(&models.Museum{})

	if filter.OnlyPublished {
		query = query.Where("published = ?", true)
	}
	if filter.Accessible != nil {
		query = query.Where("accessible = ?", *filter.Accessible)
	}
	if search := strings.TrimSpace(filter.Search); search != "" {
		like := "%" + search + "%"
		condition, argCount := buildLocalizedLikeCondition(r.db, []string{"slug"}, []string{"title_json", "description_json", "location_json"})
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

	if err := query.Order(orderBy).Find(&museums).Error; err != nil {
		return nil, 0, err
	}
	return museums, total, nil
}

// GetBySlug gets a museum by slug
func (r *GormMuseumRepository) GetBySlug(slug string, onlyPublished bool) (*models.Museum, error) {
	query := r.db.Where("slug = ?", slug)
	if onlyPublished {
		query = query.Where("published = ?", true)
	}

	var museum models.Museum
	if err := query.First(&museum).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &museum, nil
}

// GetByID gets a museum by ID
func (r *GormMuseumRepository) GetByID(id uint) (*models.Museum, error) {
	var museum models.Museum
	if err := r.db.First(&museum, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &museum, nil
}

// Create creates a museum
func (r *GormMuseumRepository) Create(museum *models.Museum) error {
	return r.db.Create(museum).Error
}

// Update saves a museum
func (r *GormMuseumRepository) Update(museum *models.Museum) error {
	return r.db.Save(museum).Error
}

// Delete removes a museum
func (r *GormMuseumRepository) Delete(id uint) error {
	return r.db.Delete(&models.Museum{}, id).Error
}

// CountBySlug counts slug usage
func (r *GormMuseumRepository) CountBySlug(slug string, excludeID *uint) (int64, error) {
	var count int64
	query := r.db.Model(&models.Museum{}).Where("slug = ?", slug)
	if excludeID != nil {
		query = query.Where("id != ?", *excludeID)
	}
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
