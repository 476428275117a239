package models

import (
	"time"

	"gorm.io/gorm"
)

// PageCategory grouping for static pages; forms at most a two-level tree
type PageCategory struct {
	ID              uint           `gorm:"primarykey" json:"id"`                    // primary key
	Slug            string         `gorm:"uniqueIndex;not null" json:"slug"`        // unique identifier
	NameJSON        JSON           `gorm:"type:json;not null" json:"name"`          // bilingual name
	DescriptionJSON JSON           `gorm:"type:json" json:"description"`            // bilingual description
	Icon            string         `gorm:"type:varchar(120)" json:"icon"`           // icon name
	Color           string         `gorm:"type:varchar(30)" json:"color"`           // accent color
	IsActive        bool           `gorm:"default:true;index" json:"is_active"`     // enabled flag
	ShowInNavbar    bool           `gorm:"default:false;index" json:"show_in_navbar"` // navbar projection flag
	NavOrder        int            `gorm:"default:0;index" json:"nav_order"`        // navbar ordering, ascending
	SortOrder       int            `gorm:"default:0;index" json:"sort_order"`       // admin listing order
	ParentID        *uint          `gorm:"index" json:"parent_category"`            // optional parent, one level of nesting only
	CreatedAt       time.Time      `gorm:"index" json:"created_at"`                 // created
	UpdatedAt       time.Time      `json:"updated_at"`                              // updated
	DeletedAt       gorm.DeletedAt `gorm:"index" json:"-"`                          // soft delete
}

// TableName table name
func (PageCategory) TableName() string {
	return "page_categories"
}
