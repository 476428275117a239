package public

import (
	"github.com/Shahwaiz-Dev/Dimo-amathountas-sub000/internal/cache"
	"github.com/Shahwaiz-Dev/Dimo-amathountas-sub000/internal/http/response"
	"github.com/Shahwaiz-Dev/Dimo-amathountas-sub000/internal/models"

	"github.com/gin-gonic/gin"
)

// GetConfig public site configuration
func (h *Handler) GetConfig(c *gin.Context) {
	defaults := map[string]interface{}{}
	if h.Config != nil {
		defaults = h.Config.Site.SiteDefaults()
	}

	cacheKey := cache.SettingKey(models.SettingKeySiteConfig)
	var cached map[string]interface{}
	if hit, err := cache.GetJSON(c.Request.Context(), cacheKey, &cached); err == nil && hit {
		response.Success(c, cached)
		return
	}

	data, err := h.SettingService.GetConfig(defaults)
	if err != nil {
		respondError(c, response.CodeInternal, "error.config_fetch_failed", err)
		return
	}

	data["captcha_enabled"] = h.CaptchaService.Enabled()

	_ = cache.SetJSON(c.Request.Context(), cacheKey, data, cache.ContentCacheTTL)
	response.Success(c, data)
}

// GetAppearance appearance settings for the public frontend
func (h *Handler) GetAppearance(c *gin.Context) {
	cacheKey := cache.SettingKey(models.SettingKeyAppearance)
	var cached models.JSON
	if hit, err := cache.GetJSON(c.Request.Context(), cacheKey, &cached); err == nil && hit {
		response.Success(c, cached)
		return
	}

	data, err := h.SettingService.GetAppearance()
	if err != nil {
		respondError(c, response.CodeInternal, "error.settings_fetch_failed", err)
		return
	}

	_ = cache.SetJSON(c.Request.Context(), cacheKey, data, cache.ContentCacheTTL)
	response.Success(c, data)
}
