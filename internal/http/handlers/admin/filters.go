package admin

import (
	"strings"

	"github.com/Shahwaiz-Dev/Dimo-amathountas-sub000/internal/content"
	"github.com/Shahwaiz-Dev/Dimo-amathountas-sub000/internal/i18n"

	"github.com/gin-gonic/gin"
)

// parseFilters builds the list filter criteria from query parameters. The
// admin view filters over every record, so the status criterion applies.
func parseFilters(c *gin.Context) content.Filters {
	return content.Filters{
		Search:        strings.TrimSpace(c.Query("search")),
		Status:        strings.TrimSpace(c.Query("status")),
		Featured:      strings.TrimSpace(c.Query("featured")),
		DateRange:     strings.TrimSpace(c.Query("date_range")),
		Category:      strings.TrimSpace(c.Query("category")),
		Location:      strings.TrimSpace(c.Query("location")),
		Accessibility: strings.TrimSpace(c.Query("accessibility")),
		Locale:        i18n.ResolveLocale(c),
	}
}
