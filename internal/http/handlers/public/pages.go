package public

import (
	"errors"
	"strconv"

	"github.com/Shahwaiz-Dev/Dimo-amathountas-sub000/internal/cache"
	"github.com/Shahwaiz-Dev/Dimo-amathountas-sub000/internal/http/response"
	"github.com/Shahwaiz-Dev/Dimo-amathountas-sub000/internal/models"
	"github.com/Shahwaiz-Dev/Dimo-amathountas-sub000/internal/service"

	"github.com/gin-gonic/gin"
)

// GetPageBySlug published municipality page by slug
func (h *Handler) GetPageBySlug(c *gin.Context) {
	slug := c.Param("slug")

	cacheKey := cache.ContentDetailKey(service.CollectionPages, slug)
	var cached models.Page
	if hit, err := cache.GetJSON(c.Request.Context(), cacheKey, &cached); err == nil && hit {
		response.Success(c, cached)
		return
	}

	page, err := h.PageService.GetPublicBySlug(slug)
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			respondError(c, response.CodeNotFound, "error.page_not_found", nil)
			return
		}
		respondError(c, response.CodeInternal, "error.page_fetch_failed", err)
		return
	}

	_ = cache.SetJSON(c.Request.Context(), cacheKey, page, cache.ContentCacheTTL)
	response.Success(c, page)
}

type cachedPageList struct {
	Items      []models.Page       `json:"items"`
	Pagination response.Pagination `json:"pagination"`
}

// GetCategoryPages published pages inside an active category
func (h *Handler) GetCategoryPages(c *gin.Context) {
	slug := c.Param("slug")
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "20"))
	page, pageSize = normalizePagination(page, pageSize)

	cacheKey := cache.ContentListKey(service.CollectionPages, "category:"+slug+":"+listCacheVariant(c))
	var cached cachedPageList
	if hit, err := cache.GetJSON(c.Request.Context(), cacheKey, &cached); err == nil && hit {
		response.SuccessWithPage(c, cached.Items, cached.Pagination)
		return
	}

	items, total, err := h.PageService.ListPublicByCategory(slug, page, pageSize)
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			respondError(c, response.CodeNotFound, "error.category_not_found", nil)
			return
		}
		respondError(c, response.CodeInternal, "error.page_fetch_failed", err)
		return
	}

	pagination := buildPagination(page, pageSize, total)
	_ = cache.SetJSON(c.Request.Context(), cacheKey, cachedPageList{
		Items:      items,
		Pagination: pagination,
	}, cache.ContentCacheTTL)
	response.SuccessWithPage(c, items, pagination)
}
