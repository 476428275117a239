package service

import (
	"regexp"
	"strings"

	"github.com/Shahwaiz-Dev/Dimo-amathountas-sub000/internal/models"
)

var hexColorPattern = regexp.MustCompile(`^#(?:[0-9a-fA-F]{3}|[0-9a-fA-F]{6})$`)

// Appearance field names stored under the appearance setting key.
const (
	AppearanceFieldShowHero           = "show_hero"
	AppearanceFieldShowFeaturedNews   = "show_featured_news"
	AppearanceFieldShowUpcomingEvents = "show_upcoming_events"
	AppearanceFieldShowMuseums        = "show_museums"
	AppearanceFieldShowNavbar         = "show_navbar"
	AppearanceFieldPrimaryColor       = "primary_color"
	AppearanceFieldSecondaryColor     = "secondary_color"
	AppearanceFieldHeroImageURL       = "hero_image_url"
	AppearanceFieldLogoURL            = "logo_url"
	AppearanceFieldFooterTextJSON     = "footer_text"
)

// DefaultAppearanceSetting baseline appearance used until the admin saves
// an override. Every homepage section starts visible.
func DefaultAppearanceSetting() models.JSON {
	return models.JSON{
		AppearanceFieldShowHero:           true,
		AppearanceFieldShowFeaturedNews:   true,
		AppearanceFieldShowUpcomingEvents: true,
		AppearanceFieldShowMuseums:        true,
		AppearanceFieldShowNavbar:         true,
		AppearanceFieldPrimaryColor:       "#00498f",
		AppearanceFieldSecondaryColor:     "#f4a100",
		AppearanceFieldHeroImageURL:       "",
		AppearanceFieldLogoURL:            "",
		AppearanceFieldFooterTextJSON:     map[string]interface{}{"en": "", "el": ""},
	}
}

// normalizeAppearanceSetting coerces a raw admin payload onto the known
// appearance schema. Unknown keys are dropped, malformed values fall back
// to the defaults.
func normalizeAppearanceSetting(value map[string]interface{}) models.JSON {
	defaults := DefaultAppearanceSetting()
	normalized := make(models.JSON, len(defaults))

	for _, field := range []string{
		AppearanceFieldShowHero,
		AppearanceFieldShowFeaturedNews,
		AppearanceFieldShowUpcomingEvents,
		AppearanceFieldShowMuseums,
		AppearanceFieldShowNavbar,
	} {
		normalized[field] = parseSettingBool(value[field], defaults[field].(bool))
	}

	for _, field := range []string{AppearanceFieldPrimaryColor, AppearanceFieldSecondaryColor} {
		normalized[field] = normalizeHexColor(value[field], defaults[field].(string))
	}

	for _, field := range []string{AppearanceFieldHeroImageURL, AppearanceFieldLogoURL} {
		if raw, ok := value[field].(string); ok {
			normalized[field] = strings.TrimSpace(raw)
		} else {
			normalized[field] = ""
		}
	}

	normalized[AppearanceFieldFooterTextJSON] = normalizeLocalizedText(value[AppearanceFieldFooterTextJSON])
	return normalized
}

func parseSettingBool(raw interface{}, fallback bool) bool {
	switch v := raw.(type) {
	case bool:
		return v
	case string:
		switch strings.ToLower(strings.TrimSpace(v)) {
		case "true", "1", "yes", "on":
			return true
		case "false", "0", "no", "off":
			return false
		}
	case float64:
		return v != 0
	case int:
		return v != 0
	}
	return fallback
}

func normalizeHexColor(raw interface{}, fallback string) string {
	value, ok := raw.(string)
	if !ok {
		return fallback
	}
	trimmed := strings.TrimSpace(value)
	if !hexColorPattern.MatchString(trimmed) {
		return fallback
	}
	return strings.ToLower(trimmed)
}

func normalizeLocalizedText(raw interface{}) map[string]interface{} {
	normalized := map[string]interface{}{"en": "", "el": ""}
	values, ok := raw.(map[string]interface{})
	if !ok {
		return normalized
	}
	for _, lang := range []string{"en", "el"} {
		if text, ok := values[lang].(string); ok {
			normalized[lang] = strings.TrimSpace(text)
		}
	}
	return normalized
}
