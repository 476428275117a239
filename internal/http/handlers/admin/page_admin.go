package admin

import (
	"errors"
	"strconv"
	"strings"

	"github.com/Shahwaiz-Dev/Dimo-amathountas-sub000/internal/cache"
	"github.com/Shahwaiz-Dev/Dimo-amathountas-sub000/internal/http/response"
	"github.com/Shahwaiz-Dev/Dimo-amathountas-sub000/internal/service"

	"github.com/gin-gonic/gin"
)

// GetAdminPages page list (admin)
func (h *Handler) GetAdminPages(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "20"))
	page, pageSize = normalizePagination(page, pageSize)
	search := strings.TrimSpace(c.Query("search"))

	var categoryID *uint
	if raw := strings.TrimSpace(c.Query("category_id")); raw != "" {
		parsed, err := strconv.ParseUint(raw, 10, 64)
		if err != nil {
			respondError(c, response.CodeBadRequest, "error.bad_request", err)
			return
		}
		id := uint(parsed)
		categoryID = &id
	}

	pages, total, err := h.PageService.ListAdmin(search, categoryID, page, pageSize)
	if err != nil {
		respondError(c, response.CodeInternal, "error.page_fetch_failed", err)
		return
	}

	pagination := response.Pagination{
		Page:      page,
		PageSize:  pageSize,
		Total:     total,
		TotalPage: (total + int64(pageSize) - 1) / int64(pageSize),
	}
	response.SuccessWithPage(c, pages, pagination)
}

// GetAdminPage page detail (admin)
func (h *Handler) GetAdminPage(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	page, err := h.PageService.GetByID(id)
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			respondError(c, response.CodeNotFound, "error.page_not_found", nil)
			return
		}
		respondError(c, response.CodeInternal, "error.page_fetch_failed", err)
		return
	}

	response.Success(c, page)
}

// PageRequest create/update page request
type PageRequest struct {
	Slug        string                 `json:"slug" binding:"required"`
	TitleJSON   map[string]interface{} `json:"title" binding:"required"`
	ExcerptJSON map[string]interface{} `json:"excerpt"`
	ContentJSON map[string]interface{} `json:"content"`
	CategoryID  *uint                  `json:"category_id"`
	Layout      string                 `json:"layout"`
	IsPublished *bool                  `json:"is_published"`
}

func (r PageRequest) toInput() service.PageInput {
	return service.PageInput{
		Slug:        r.Slug,
		TitleJSON:   r.TitleJSON,
		ExcerptJSON: r.ExcerptJSON,
		ContentJSON: r.ContentJSON,
		CategoryID:  r.CategoryID,
		Layout:      r.Layout,
		IsPublished: r.IsPublished,
	}
}

// CreatePage create a page
func (h *Handler) CreatePage(c *gin.Context) {
	var req PageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "error.bad_request", err)
		return
	}

	page, err := h.PageService.Create(req.toInput())
	if err != nil {
		h.respondPageSaveError(c, err)
		return
	}

	h.invalidatePageCaches(c)
	response.Success(c, page)
}

// UpdatePage update a page
func (h *Handler) UpdatePage(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	var req PageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "error.bad_request", err)
		return
	}

	page, err := h.PageService.Update(id, req.toInput())
	if err != nil {
		h.respondPageSaveError(c, err)
		return
	}

	h.invalidatePageCaches(c)
	response.Success(c, page)
}

// DeletePage delete a page
func (h *Handler) DeletePage(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	if err := h.PageService.Delete(id); err != nil {
		if errors.Is(err, service.ErrNotFound) {
			respondError(c, response.CodeNotFound, "error.page_not_found", nil)
			return
		}
		respondError(c, response.CodeInternal, "error.page_delete_failed", err)
		return
	}

	h.invalidatePageCaches(c)
	response.Success(c, nil)
}

// GetAdminPageBySlug page detail addressed by slug (admin)
func (h *Handler) GetAdminPageBySlug(c *gin.Context) {
	slug := strings.TrimSpace(c.Param("slug"))
	if slug == "" {
		respondError(c, response.CodeBadRequest, "error.bad_request", nil)
		return
	}

	page, err := h.PageService.GetAdminBySlug(slug)
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			respondError(c, response.CodeNotFound, "error.page_not_found", nil)
			return
		}
		respondError(c, response.CodeInternal, "error.page_fetch_failed", err)
		return
	}

	response.Success(c, page)
}

// UpdatePageBySlug update a page addressed by slug
func (h *Handler) UpdatePageBySlug(c *gin.Context) {
	slug := strings.TrimSpace(c.Param("slug"))
	if slug == "" {
		respondError(c, response.CodeBadRequest, "error.bad_request", nil)
		return
	}

	var req PageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "error.bad_request", err)
		return
	}

	page, err := h.PageService.UpdateBySlug(slug, req.toInput())
	if err != nil {
		h.respondPageSaveError(c, err)
		return
	}

	h.invalidatePageCaches(c)
	response.Success(c, page)
}

// DeletePageBySlug delete a page addressed by slug
func (h *Handler) DeletePageBySlug(c *gin.Context) {
	slug := strings.TrimSpace(c.Param("slug"))
	if slug == "" {
		respondError(c, response.CodeBadRequest, "error.bad_request", nil)
		return
	}

	if err := h.PageService.DeleteBySlug(slug); err != nil {
		if errors.Is(err, service.ErrNotFound) {
			respondError(c, response.CodeNotFound, "error.page_not_found", nil)
			return
		}
		respondError(c, response.CodeInternal, "error.page_delete_failed", err)
		return
	}

	h.invalidatePageCaches(c)
	response.Success(c, nil)
}

// invalidatePageCaches drops page views and navigation, which depends on
// published page counts.
func (h *Handler) invalidatePageCaches(c *gin.Context) {
	cache.InvalidateCollection(c.Request.Context(), service.CollectionPages)
	cache.InvalidateCollection(c.Request.Context(), service.CollectionCategories)
}

func (h *Handler) respondPageSaveError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrNotFound):
		respondError(c, response.CodeNotFound, "error.page_not_found", nil)
	case errors.Is(err, service.ErrSlugExists):
		respondError(c, response.CodeBadRequest, "error.slug_exists", nil)
	case errors.Is(err, service.ErrInvalidLayout):
		respondError(c, response.CodeBadRequest, "error.layout_invalid", nil)
	case errors.Is(err, service.ErrInvalidParent):
		respondError(c, response.CodeBadRequest, "error.category_parent_invalid", nil)
	default:
		respondError(c, response.CodeInternal, "error.page_save_failed", err)
	}
}
