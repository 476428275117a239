package i18n

import (
	"strings"

	"github.com/gin-gonic/gin"
)

// Supported locales
const (
	LocaleEN = "en"
	LocaleEL = "el"
)

// DefaultLocale fallback locale for unknown or missing language tags.
const DefaultLocale = LocaleEN

// NormalizeLocale maps a raw language tag to a supported locale.
func NormalizeLocale(raw string) string {
	tag := strings.ToLower(strings.TrimSpace(raw))
	if tag == "" {
		return DefaultLocale
	}
	if idx := strings.IndexAny(tag, "-_"); idx > 0 {
		tag = tag[:idx]
	}
	switch tag {
	case LocaleEL, "gr", "gre", "ell":
		return LocaleEL
	case LocaleEN:
		return LocaleEN
	}
	return DefaultLocale
}

// ResolveLocale picks the request locale from the lang query parameter,
// then the Accept-Language header, defaulting to English.
func ResolveLocale(c *gin.Context) string {
	if c == nil {
		return DefaultLocale
	}
	if lang := strings.TrimSpace(c.Query("lang")); lang != "" {
		return NormalizeLocale(lang)
	}
	header := c.GetHeader("Accept-Language")
	for _, part := range strings.Split(header, ",") {
		tag := part
		if idx := strings.Index(tag, ";"); idx >= 0 {
			tag = tag[:idx]
		}
		tag = strings.TrimSpace(tag)
		if tag == "" {
			continue
		}
		return NormalizeLocale(tag)
	}
	return DefaultLocale
}
