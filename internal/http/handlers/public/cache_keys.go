package public

import (
	"github.com/Shahwaiz-Dev/Dimo-amathountas-sub000/internal/http/response"
	"github.com/Shahwaiz-Dev/Dimo-amathountas-sub000/internal/i18n"

	"github.com/gin-gonic/gin"
)

// listCacheVariant derives the list cache key variant from the request. The
// raw query encodes paging and every filter criterion, but the locale can
// also arrive via Accept-Language, so the resolved locale is keyed
// explicitly: search and location match against the resolved language only.
func listCacheVariant(c *gin.Context) string {
	variant := "default"
	if raw := c.Request.URL.RawQuery; raw != "" {
		variant = raw
	}
	return i18n.ResolveLocale(c) + ":" + variant
}

func buildPagination(page, pageSize int, total int64) response.Pagination {
	return response.Pagination{
		Page:      page,
		PageSize:  pageSize,
		Total:     total,
		TotalPage: (total + int64(pageSize) - 1) / int64(pageSize),
	}
}
