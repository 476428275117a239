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

type cachedMuseumList struct {
	Items      []models.Museum     `json:"items"`
	Pagination response.Pagination `json:"pagination"`
}

// GetMuseums published museum list
func (h *Handler) GetMuseums(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "20"))
	page, pageSize = normalizePagination(page, pageSize)
	filters := parseFilters(c)

	cacheKey := cache.ContentListKey(service.CollectionMuseums, listCacheVariant(c))
	var cached cachedMuseumList
	if hit, err := cache.GetJSON(c.Request.Context(), cacheKey, &cached); err == nil && hit {
		response.SuccessWithPage(c, cached.Items, cached.Pagination)
		return
	}

	items, total, err := h.MuseumService.ListPublic(filters, page, pageSize)
	if err != nil {
		respondError(c, response.CodeInternal, "error.museum_fetch_failed", err)
		return
	}

	pagination := buildPagination(page, pageSize, total)
	_ = cache.SetJSON(c.Request.Context(), cacheKey, cachedMuseumList{
		Items:      items,
		Pagination: pagination,
	}, cache.ContentCacheTTL)
	response.SuccessWithPage(c, items, pagination)
}

// GetMuseumBySlug published museum detail by slug
func (h *Handler) GetMuseumBySlug(c *gin.Context) {
	slug := c.Param("slug")

	cacheKey := cache.ContentDetailKey(service.CollectionMuseums, slug)
	var cached models.Museum
	if hit, err := cache.GetJSON(c.Request.Context(), cacheKey, &cached); err == nil && hit {
		response.Success(c, cached)
		return
	}

	item, err := h.MuseumService.GetPublicBySlug(slug)
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			respondError(c, response.CodeNotFound, "error.museum_not_found", nil)
			return
		}
		respondError(c, response.CodeInternal, "error.museum_fetch_failed", err)
		return
	}

	_ = cache.SetJSON(c.Request.Context(), cacheKey, item, cache.ContentCacheTTL)
	response.Success(c, item)
}
