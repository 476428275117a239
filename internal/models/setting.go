package models

// Setting keys
const (
	SettingKeyAppearance = "appearance"
	SettingKeySiteConfig = "site_config"
)

// Setting key/value settings table; the appearance record is a singleton,
// last writer wins.
type Setting struct {
	Key       string `gorm:"primarykey" json:"key"`  // setting key
	ValueJSON JSON   `gorm:"type:json" json:"value"` // setting value
}

// TableName table name
func (Setting) TableName() string {
	return "settings"
}
