package models

import (
	"time"

	"gorm.io/gorm"
)

// Event municipal event (concerts, assemblies, ceremonies)
type Event struct {
	ID           uint           `gorm:"primarykey" json:"id"`                    // primary key
	Slug         string         `gorm:"uniqueIndex;not null" json:"slug"`        // unique identifier
	TitleJSON    JSON           `gorm:"type:json;not null" json:"title"`         // bilingual title
	ExcerptJSON  JSON           `gorm:"type:json" json:"excerpt"`                // bilingual excerpt
	ContentJSON  JSON           `gorm:"type:json" json:"content"`                // bilingual body
	LocationJSON JSON           `gorm:"type:json" json:"location"`               // bilingual venue
	ImageURL     string         `gorm:"type:varchar(500)" json:"image_url"`      // cover image
	Category     string         `gorm:"type:varchar(120);index" json:"category"` // free-text label, no FK
	Published    bool           `gorm:"default:false;index" json:"published"`    // live flag
	Featured     bool           `gorm:"default:false;index" json:"featured"`     // homepage highlight flag
	PublishDate  *time.Time     `gorm:"index" json:"publish_date"`               // visible after this instant; nil = always
	Date         *time.Time     `gorm:"index" json:"date"`                       // occurrence date, independent of publish date
	TimeOfDay    string         `gorm:"type:varchar(10)" json:"time"`            // "HH:MM" start
	EndTime      string         `gorm:"type:varchar(10)" json:"end_time"`        // "HH:MM" end
	CreatedAt    time.Time      `gorm:"index" json:"created_at"`                 // created
	UpdatedAt    time.Time      `json:"updated_at"`                              // updated
	DeletedAt    gorm.DeletedAt `gorm:"index" json:"-"`                          // soft delete
}

// TableName table name
func (Event) TableName() string {
	return "events"
}
