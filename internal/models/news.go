package models

import (
	"time"

	"gorm.io/gorm"
)

// NewsItem municipality news article
type NewsItem struct {
	ID          uint           `gorm:"primarykey" json:"id"`                        // primary key
	Slug        string         `gorm:"uniqueIndex;not null" json:"slug"`            // unique identifier
	TitleJSON   JSON           `gorm:"type:json;not null" json:"title"`             // bilingual title
	ExcerptJSON JSON           `gorm:"type:json" json:"excerpt"`                    // bilingual excerpt
	ContentJSON JSON           `gorm:"type:json" json:"content"`                    // bilingual body
	ImageURL    string         `gorm:"type:varchar(500)" json:"image_url"`          // cover image
	Category    string         `gorm:"type:varchar(120);index" json:"category"`     // free-text label, no FK
	Published   bool           `gorm:"default:false;index" json:"published"`        // live flag
	Featured    bool           `gorm:"default:false;index" json:"featured"`         // homepage highlight flag
	PublishDate *time.Time     `gorm:"index" json:"publish_date"`                   // visible after this instant; nil = always
	CreatedAt   time.Time      `gorm:"index" json:"created_at"`                     // created
	UpdatedAt   time.Time      `json:"updated_at"`                                  // updated
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"-"`                              // soft delete
}

// TableName table name
func (NewsItem) TableName() string {
	return "news_items"
}
