package admin

import (
	"errors"
	"strconv"

	"github.com/Shahwaiz-Dev/Dimo-amathountas-sub000/internal/cache"
	"github.com/Shahwaiz-Dev/Dimo-amathountas-sub000/internal/http/response"
	"github.com/Shahwaiz-Dev/Dimo-amathountas-sub000/internal/service"

	"github.com/gin-gonic/gin"
)

// GetAdminNews news list (admin)
func (h *Handler) GetAdminNews(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "20"))
	page, pageSize = normalizePagination(page, pageSize)
	filters := parseFilters(c)

	items, total, err := h.NewsService.ListAdmin(filters, page, pageSize)
	if err != nil {
		respondError(c, response.CodeInternal, "error.news_fetch_failed", err)
		return
	}

	pagination := response.Pagination{
		Page:      page,
		PageSize:  pageSize,
		Total:     total,
		TotalPage: (total + int64(pageSize) - 1) / int64(pageSize),
	}
	response.SuccessWithPage(c, items, pagination)
}

// GetAdminNewsItem news detail (admin)
func (h *Handler) GetAdminNewsItem(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	item, err := h.NewsService.GetByID(id)
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			respondError(c, response.CodeNotFound, "error.news_not_found", nil)
			return
		}
		respondError(c, response.CodeInternal, "error.news_fetch_failed", err)
		return
	}

	response.Success(c, item)
}

// NewsRequest create/update news request
type NewsRequest struct {
	Slug        string                 `json:"slug" binding:"required"`
	TitleJSON   map[string]interface{} `json:"title" binding:"required"`
	ExcerptJSON map[string]interface{} `json:"excerpt"`
	ContentJSON map[string]interface{} `json:"content"`
	ImageURL    string                 `json:"image_url"`
	Category    string                 `json:"category"`
	Published   *bool                  `json:"published"`
	Featured    *bool                  `json:"featured"`
	PublishDate interface{}            `json:"publish_date"`
}

func (r NewsRequest) toInput() service.NewsInput {
	return service.NewsInput{
		Slug:        r.Slug,
		TitleJSON:   r.TitleJSON,
		ExcerptJSON: r.ExcerptJSON,
		ContentJSON: r.ContentJSON,
		ImageURL:    r.ImageURL,
		Category:    r.Category,
		Published:   r.Published,
		Featured:    r.Featured,
		PublishDate: r.PublishDate,
	}
}

// CreateNews create a news item
func (h *Handler) CreateNews(c *gin.Context) {
	var req NewsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "error.bad_request", err)
		return
	}

	item, err := h.NewsService.Create(req.toInput())
	if err != nil {
		h.respondNewsSaveError(c, err)
		return
	}

	cache.InvalidateCollection(c.Request.Context(), service.CollectionNews)
	response.Success(c, item)
}

// UpdateNews update a news item
func (h *Handler) UpdateNews(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	var req NewsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "error.bad_request", err)
		return
	}

	item, err := h.NewsService.Update(id, req.toInput())
	if err != nil {
		h.respondNewsSaveError(c, err)
		return
	}

	cache.InvalidateCollection(c.Request.Context(), service.CollectionNews)
	response.Success(c, item)
}

// DeleteNews delete a news item
func (h *Handler) DeleteNews(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	if err := h.NewsService.Delete(id); err != nil {
		if errors.Is(err, service.ErrNotFound) {
			respondError(c, response.CodeNotFound, "error.news_not_found", nil)
			return
		}
		respondError(c, response.CodeInternal, "error.news_delete_failed", err)
		return
	}

	cache.InvalidateCollection(c.Request.Context(), service.CollectionNews)
	response.Success(c, nil)
}

func (h *Handler) respondNewsSaveError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrNotFound):
		respondError(c, response.CodeNotFound, "error.news_not_found", nil)
	case errors.Is(err, service.ErrSlugExists):
		respondError(c, response.CodeBadRequest, "error.slug_exists", nil)
	case errors.Is(err, service.ErrPublishDateTooOld):
		respondError(c, response.CodeBadRequest, "error.publish_date_too_old", nil)
	case errors.Is(err, service.ErrInvalidPublishDate):
		respondError(c, response.CodeBadRequest, "error.publish_date_invalid", nil)
	default:
		respondError(c, response.CodeInternal, "error.news_save_failed", err)
	}
}
