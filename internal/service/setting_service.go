package service

import (
	"github.com/Shahwaiz-Dev/Dimo-amathountas-sub000/internal/models"
	"github.com/Shahwaiz-Dev/Dimo-amathountas-sub000/internal/repository"
)

// SettingService site settings business logic
type SettingService struct {
	repo repository.SettingRepository
}

// NewSettingService creates the settings service
func NewSettingService(repo repository.SettingRepository) *SettingService {
	return &SettingService{repo: repo}
}

// GetConfig returns the public site configuration merged over defaults.
func (s *SettingService) GetConfig(defaults map[string]interface{}) (map[string]interface{}, error) {
	data := make(map[string]interface{}, len(defaults))
	for k, v := range defaults {
		data[k] = v
	}

	setting, err := s.repo.GetByKey(models.SettingKeySiteConfig)
	if err != nil {
		return nil, err
	}
	if setting == nil {
		return data, nil
	}

	for k, v := range setting.ValueJSON {
		data[k] = v
	}
	return data, nil
}

// GetAppearance returns the stored appearance merged over the defaults so
// new fields always come back populated.
func (s *SettingService) GetAppearance() (models.JSON, error) {
	appearance := DefaultAppearanceSetting()

	setting, err := s.repo.GetByKey(models.SettingKeyAppearance)
	if err != nil {
		return nil, err
	}
	if setting == nil {
		return appearance, nil
	}

	for k, v := range setting.ValueJSON {
		if _, known := appearance[k]; known {
			appearance[k] = v
		}
	}
	return appearance, nil
}

// GetByKey returns a raw setting value, nil when unset.
func (s *SettingService) GetByKey(key string) (models.JSON, error) {
	setting, err := s.repo.GetByKey(key)
	if err != nil {
		return nil, err
	}
	if setting == nil {
		return nil, nil
	}
	return setting.ValueJSON, nil
}

// Update normalizes and stores a setting value.
func (s *SettingService) Update(key string, value map[string]interface{}) (models.JSON, error) {
	normalized := normalizeSettingValueByKey(key, value)

	setting, err := s.repo.Upsert(key, normalized)
	if err != nil {
		return nil, err
	}
	return setting.ValueJSON, nil
}

// normalizeSettingValueByKey applies per-key normalization so malformed
// values never reach storage.
func normalizeSettingValueByKey(key string, value map[string]interface{}) models.JSON {
	switch key {
	case models.SettingKeyAppearance:
		return normalizeAppearanceSetting(value)
	default:
		return models.JSON(value)
	}
}
