package admin

import (
	"errors"

	"github.com/Shahwaiz-Dev/Dimo-amathountas-sub000/internal/cache"
	"github.com/Shahwaiz-Dev/Dimo-amathountas-sub000/internal/http/response"
	"github.com/Shahwaiz-Dev/Dimo-amathountas-sub000/internal/service"

	"github.com/gin-gonic/gin"
)

// GetAdminCategories category list (admin)
func (h *Handler) GetAdminCategories(c *gin.Context) {
	categories, err := h.PageCategoryService.List()
	if err != nil {
		respondError(c, response.CodeInternal, "error.category_fetch_failed", err)
		return
	}

	response.Success(c, categories)
}

// GetAdminCategory category detail (admin)
func (h *Handler) GetAdminCategory(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	category, err := h.PageCategoryService.GetByID(id)
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			respondError(c, response.CodeNotFound, "error.category_not_found", nil)
			return
		}
		respondError(c, response.CodeInternal, "error.category_fetch_failed", err)
		return
	}

	response.Success(c, category)
}

// CategoryRequest create/update category request
type CategoryRequest struct {
	Slug            string                 `json:"slug" binding:"required"`
	NameJSON        map[string]interface{} `json:"name" binding:"required"`
	DescriptionJSON map[string]interface{} `json:"description"`
	Icon            string                 `json:"icon"`
	Color           string                 `json:"color"`
	IsActive        *bool                  `json:"is_active"`
	ShowInNavbar    *bool                  `json:"show_in_navbar"`
	NavOrder        int                    `json:"nav_order"`
	SortOrder       int                    `json:"sort_order"`
	ParentID        *uint                  `json:"parent_category"`
}

func (r CategoryRequest) toInput() service.PageCategoryInput {
	return service.PageCategoryInput{
		Slug:            r.Slug,
		NameJSON:        r.NameJSON,
		DescriptionJSON: r.DescriptionJSON,
		Icon:            r.Icon,
		Color:           r.Color,
		IsActive:        r.IsActive,
		ShowInNavbar:    r.ShowInNavbar,
		NavOrder:        r.NavOrder,
		SortOrder:       r.SortOrder,
		ParentID:        r.ParentID,
	}
}

// CreateCategory create a category
func (h *Handler) CreateCategory(c *gin.Context) {
	var req CategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "error.bad_request", err)
		return
	}

	category, err := h.PageCategoryService.Create(req.toInput())
	if err != nil {
		h.respondCategorySaveError(c, err)
		return
	}

	cache.InvalidateCollection(c.Request.Context(), service.CollectionCategories)
	response.Success(c, category)
}

// UpdateCategory update a category
func (h *Handler) UpdateCategory(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	var req CategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "error.bad_request", err)
		return
	}

	category, err := h.PageCategoryService.Update(id, req.toInput())
	if err != nil {
		h.respondCategorySaveError(c, err)
		return
	}

	cache.InvalidateCollection(c.Request.Context(), service.CollectionCategories)
	response.Success(c, category)
}

// DeleteCategory delete a category; refused while pages or subcategories
// still reference it.
func (h *Handler) DeleteCategory(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	if err := h.PageCategoryService.Delete(id); err != nil {
		if errors.Is(err, service.ErrNotFound) {
			respondError(c, response.CodeNotFound, "error.category_not_found", nil)
			return
		}
		if errors.Is(err, service.ErrCategoryInUse) {
			respondError(c, response.CodeBadRequest, "error.category_in_use", nil)
			return
		}
		respondError(c, response.CodeInternal, "error.category_delete_failed", err)
		return
	}

	cache.InvalidateCollection(c.Request.Context(), service.CollectionCategories)
	response.Success(c, nil)
}

func (h *Handler) respondCategorySaveError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrNotFound):
		respondError(c, response.CodeNotFound, "error.category_not_found", nil)
	case errors.Is(err, service.ErrSlugExists):
		respondError(c, response.CodeBadRequest, "error.slug_exists", nil)
	case errors.Is(err, service.ErrInvalidParent):
		respondError(c, response.CodeBadRequest, "error.category_parent_invalid", nil)
	default:
		respondError(c, response.CodeInternal, "error.category_save_failed", err)
	}
}
