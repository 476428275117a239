package repository

import (
	"errors"
	"strings"
	"time"

	"github.com/Shahwaiz-Dev/Dimo-amathountas-sub000/internal/models"

	"gorm.io/gorm"
)

// EventRepository event data access
type EventRepository interface {
	List(filter EventListFilter) ([]models.Event, int64, error)
	ListUpcoming(from time.Time, limit int) ([]models.Event, error)
	GetBySlug(slug string, onlyPublished bool) (*models.Event, error)
	GetByID(id uint) (*models.Event, error)
	Create(event *models.Event) error
	Update(event *models.Event) error
	Delete(id uint) error
	CountBySlug(slug string, excludeID *uint) (int64, error)
}

// GormEventRepository GORM implementation
type GormEventRepository struct {
	db *gorm.DB
}

// NewEventRepository creates the event repository
func NewEventRepository(db *gorm.DB) *GormEventRepository {
	return &GormEventRepository{db: db}
}

// List events
func (r *GormEventRepository) List(filter EventListFilter) ([]models.Event, int64, error) {
	var events []models.Event
	query := r.db.Model(&models.Event{})

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
		condition, argCount := buildLocalizedLikeCondition(r.db, []string{"slug"}, []string{"title_json", "excerpt_json", "location_json"})
		query = query.Where(condition, repeatLikeArgs(like, argCount)...)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	query = applyPagination(query, filter.Page, filter.PageSize)

	orderBy := filter.OrderBy
	if orderBy == "" {
		orderBy = "date ASC, created_at DESC"
	}

	if err := query.Order(orderBy).Find(&events).Error; err != nil {
		return nil, 0, err
	}
	return events, total, nil
}

// ListUpcoming published events whose date is not yet past, soonest first.
func (r *GormEventRepository) ListUpcoming(from time.Time, limit int) ([]models.Event, error) {
	events := make([]models.Event, 0)
	query := r.db.
		Where("published = ?", true).
		Where("date IS NOT NULL AND date >= ?", from).
		Order("date ASC")
	if limit > 0 {
		query = query.Limit(limit)
	}
	if err := query.Find(&events).Error; err != nil {
		return nil, err
	}
	return events, nil
}

// GetBySlug gets an event by slug
func (r *GormEventRepository) GetBySlug(slug string, onlyPublished bool) (*models.Event, error) {
	query := r.db.Where("slug = ?", slug)
	if onlyPublished {
		query = query.Where("published = ?", true)
	}

	var event models.Event
	if err := query.First(&event).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &event, nil
}

// GetByID gets an event by ID
func (r *GormEventRepository) GetByID(id uint) (*models.Event, error) {
	var event models.Event
	if err := r.db.First(&event, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &event, nil
}

// Create creates an event
func (r *GormEventRepository) Create(event *models.Event) error {
	return r.db.Create(event).Error
}

// Update saves an event
func (r *GormEventRepository) Update(event *models.Event) error {
	return r.db.Save(event).Error
}

// Delete removes an event
func (r *GormEventRepository) Delete(id uint) error {
	return r.db.Delete(&models.Event{}, id).Error
}

// CountBySlug counts slug usage
func (r *GormEventRepository) CountBySlug(slug string, excludeID *uint) (int64, error) {
	var count int64
	query := r.db.Model(&models.Event{}).Where("slug = ?", slug)
	if excludeID != nil {
		query = query.Where("id != ?", *excludeID)
	}
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
