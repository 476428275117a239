package models

import (
	"time"

	"gorm.io/gorm"
)

// Page layout templates
const (
	PageLayoutDefault = "default"
	PageLayoutWide    = "wide"
	PageLayoutSidebar = "sidebar"
)

// Page static municipality page, looked up by slug
type Page struct {
	ID          uint           `gorm:"primarykey" json:"id"`                                       // primary key
	Slug        string         `gorm:"uniqueIndex;not null" json:"slug"`                           // unique lookup key
	TitleJSON   JSON           `gorm:"type:json;not null" json:"title"`                            // bilingual title
	ExcerptJSON JSON           `gorm:"type:json" json:"excerpt"`                                   // bilingual excerpt
	ContentJSON JSON           `gorm:"type:json" json:"content"`                                   // bilingual body
	CategoryID  *uint          `gorm:"index" json:"category_id"`                                   // references a PageCategory by convention, not enforced
	Layout      string         `gorm:"type:varchar(20);not null;default:'default'" json:"layout"`  // presentation template
	IsPublished bool           `gorm:"default:false;index" json:"is_published"`                    // live flag
	CreatedAt   time.Time      `gorm:"index" json:"created_at"`                                    // created
	UpdatedAt   time.Time      `json:"updated_at"`                                                 // updated
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"-"`                                             // soft delete
}

// TableName table name
func (Page) TableName() string {
	return "pages"
}

// IsAllowedPageLayout reports whether the layout is one of the known templates.
func IsAllowedPageLayout(layout string) bool {
	switch layout {
	case PageLayoutDefault, PageLayoutWide, PageLayoutSidebar:
		return true
	}
	return false
}
