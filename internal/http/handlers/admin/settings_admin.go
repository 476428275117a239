package admin

import (
	"github.com/Shahwaiz-Dev/Dimo-amathountas-sub000/internal/cache"
	"github.com/Shahwaiz-Dev/Dimo-amathountas-sub000/internal/http/response"
	"github.com/Shahwaiz-Dev/Dimo-amathountas-sub000/internal/models"

	"github.com/gin-gonic/gin"
)

// editableSettingKeys settings the admin panel may read and write.
var editableSettingKeys = map[string]struct{}{
	models.SettingKeyAppearance: {},
	models.SettingKeySiteConfig: {},
}

// GetAdminSetting read a setting value (admin)
func (h *Handler) GetAdminSetting(c *gin.Context) {
	key := c.Param("key")
	if _, ok := editableSettingKeys[key]; !ok {
		respondError(c, response.CodeNotFound, "error.not_found", nil)
		return
	}

	if key == models.SettingKeyAppearance {
		// merged over defaults so the panel always sees every field
		data, err := h.SettingService.GetAppearance()
		if err != nil {
			respondError(c, response.CodeInternal, "error.settings_fetch_failed", err)
			return
		}
		response.Success(c, data)
		return
	}

	data, err := h.SettingService.GetByKey(key)
	if err != nil {
		respondError(c, response.CodeInternal, "error.settings_fetch_failed", err)
		return
	}
	if data == nil {
		data = models.JSON{}
	}
	response.Success(c, data)
}

// UpdateAdminSetting store a setting value (admin)
func (h *Handler) UpdateAdminSetting(c *gin.Context) {
	key := c.Param("key")
	if _, ok := editableSettingKeys[key]; !ok {
		respondError(c, response.CodeNotFound, "error.not_found", nil)
		return
	}

	var value map[string]interface{}
	if err := c.ShouldBindJSON(&value); err != nil {
		respondError(c, response.CodeBadRequest, "error.bad_request", err)
		return
	}

	stored, err := h.SettingService.Update(key, value)
	if err != nil {
		respondError(c, response.CodeInternal, "error.settings_save_failed", err)
		return
	}

	cache.InvalidateSetting(c.Request.Context(), key)
	response.Success(c, stored)
}
