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

type cachedNewsList struct {
	Items      []models.NewsItem   `json:"items"`
	Pagination response.Pagination `json:"pagination"`
}

// GetNews published news list
func (h *Handler) GetNews(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "20"))
	page, pageSize = normalizePagination(page, pageSize)
	filters := parseFilters(c)

	cacheKey := cache.ContentListKey(service.CollectionNews, listCacheVariant(c))
	var cached cachedNewsList
	if hit, err := cache.GetJSON(c.Request.Context(), cacheKey, &cached); err == nil && hit {
		response.SuccessWithPage(c, cached.Items, cached.Pagination)
		return
	}

	items, total, err := h.NewsService.ListPublic(filters, page, pageSize)
	if err != nil {
		respondError(c, response.CodeInternal, "error.news_fetch_failed", err)
		return
	}

	pagination := buildPagination(page, pageSize, total)
	_ = cache.SetJSON(c.Request.Context(), cacheKey, cachedNewsList{
		Items:      items,
		Pagination: pagination,
	}, cache.ContentCacheTTL)
	response.SuccessWithPage(c, items, pagination)
}

// GetFeaturedNews featured news for the home page
func (h *Handler) GetFeaturedNews(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "6"))
	if limit < 1 || limit > 20 {
		limit = 6
	}

	cacheKey := cache.ContentListKey(service.CollectionNews, "featured:"+strconv.Itoa(limit))
	var cached []models.NewsItem
	if hit, err := cache.GetJSON(c.Request.Context(), cacheKey, &cached); err == nil && hit {
		response.Success(c, cached)
		return
	}

	items, err := h.NewsService.ListFeatured(limit)
	if err != nil {
		respondError(c, response.CodeInternal, "error.news_fetch_failed", err)
		return
	}

	_ = cache.SetJSON(c.Request.Context(), cacheKey, items, cache.ContentCacheTTL)
	response.Success(c, items)
}

// GetNewsBySlug published news detail by slug
func (h *Handler) GetNewsBySlug(c *gin.Context) {
	slug := c.Param("slug")

	cacheKey := cache.ContentDetailKey(service.CollectionNews, slug)
	var cached models.NewsItem
	if hit, err := cache.GetJSON(c.Request.Context(), cacheKey, &cached); err == nil && hit {
		response.Success(c, cached)
		return
	}

	item, err := h.NewsService.GetPublicBySlug(slug)
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			respondError(c, response.CodeNotFound, "error.news_not_found", nil)
			return
		}
		respondError(c, response.CodeInternal, "error.news_fetch_failed", err)
		return
	}

	_ = cache.SetJSON(c.Request.Context(), cacheKey, item, cache.ContentCacheTTL)
	response.Success(c, item)
}
