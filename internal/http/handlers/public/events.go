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

type cachedEventList struct {
	Items      []models.Event      `json:"items"`
	Pagination response.Pagination `json:"pagination"`
}

// GetEvents published event list
func (h *Handler) GetEvents(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "20"))
	page, pageSize = normalizePagination(page, pageSize)
	filters := parseFilters(c)

	cacheKey := cache.ContentListKey(service.CollectionEvents, listCacheVariant(c))
	var cached cachedEventList
	if hit, err := cache.GetJSON(c.Request.Context(), cacheKey, &cached); err == nil && hit {
		response.SuccessWithPage(c, cached.Items, cached.Pagination)
		return
	}

	items, total, err := h.EventService.ListPublic(filters, page, pageSize)
	if err != nil {
		respondError(c, response.CodeInternal, "error.event_fetch_failed", err)
		return
	}

	pagination := buildPagination(page, pageSize, total)
	_ = cache.SetJSON(c.Request.Context(), cacheKey, cachedEventList{
		Items:      items,
		Pagination: pagination,
	}, cache.ContentCacheTTL)
	response.SuccessWithPage(c, items, pagination)
}

// GetUpcomingEvents upcoming events for the home page
func (h *Handler) GetUpcomingEvents(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "6"))
	if limit < 1 || limit > 20 {
		limit = 6
	}

	cacheKey := cache.ContentListKey(service.CollectionEvents, "upcoming:"+strconv.Itoa(limit))
	var cached []models.Event
	if hit, err := cache.GetJSON(c.Request.Context(), cacheKey, &cached); err == nil && hit {
		response.Success(c, cached)
		return
	}

	items, err := h.EventService.ListUpcoming(limit)
	if err != nil {
		respondError(c, response.CodeInternal, "error.event_fetch_failed", err)
		return
	}

	_ = cache.SetJSON(c.Request.Context(), cacheKey, items, cache.ContentCacheTTL)
	response.Success(c, items)
}

// GetEventBySlug published event detail by slug
func (h *Handler) GetEventBySlug(c *gin.Context) {
	slug := c.Param("slug")

	cacheKey := cache.ContentDetailKey(service.CollectionEvents, slug)
	var cached models.Event
	if hit, err := cache.GetJSON(c.Request.Context(), cacheKey, &cached); err == nil && hit {
		response.Success(c, cached)
		return
	}

	item, err := h.EventService.GetPublicBySlug(slug)
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			respondError(c, response.CodeNotFound, "error.event_not_found", nil)
			return
		}
		respondError(c, response.CodeInternal, "error.event_fetch_failed", err)
		return
	}

	_ = cache.SetJSON(c.Request.Context(), cacheKey, item, cache.ContentCacheTTL)
	response.Success(c, item)
}
