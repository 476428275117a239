package models

import (
	"time"

	"gorm.io/gorm"
)

// Admin back-office account
type Admin struct {
	ID                 uint           `gorm:"primarykey" json:"id"`                    // primary key
	Username           string         `gorm:"uniqueIndex;not null" json:"username"`    // login name
	PasswordHash       string         `gorm:"not null" json:"-"`                       // bcrypt hash
	TokenVersion       uint64         `gorm:"default:0" json:"-"`                      // bumped to revoke issued tokens
	TokenInvalidBefore *time.Time     `json:"-"`                                       // tokens issued before this are rejected
	LastLoginAt        *time.Time     `json:"last_login_at"`                           // last successful login
	CreatedAt          time.Time      `json:"created_at"`                              // created
	UpdatedAt          time.Time      `json:"updated_at"`                              // updated
	DeletedAt          gorm.DeletedAt `gorm:"index" json:"-"`                          // soft delete
}

// TableName table name
func (Admin) TableName() string {
	return "admins"
}
