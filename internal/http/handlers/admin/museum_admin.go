package admin

import (
	"errors"
	"strconv"

	"github.com/Shahwaiz-Dev/Dimo-amathountas-sub000/internal/cache"
	"github.com/Shahwaiz-Dev/Dimo-amathountas-sub000/internal/http/response"
	"github.com/Shahwaiz-Dev/Dimo-amathountas-sub000/internal/service"

	"github.com/gin-gonic/gin"
)

// GetAdminMuseums museum list (admin)
func (h *Handler) GetAdminMuseums(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "20"))
	page, pageSize = normalizePagination(page, pageSize)
	filters := parseFilters(c)

	items, total, err := h.MuseumService.ListAdmin(filters, page, pageSize)
	if err != nil {
		respondError(c, response.CodeInternal, "error.museum_fetch_failed", err)
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

// GetAdminMuseum museum detail (admin)
func (h *Handler) GetAdminMuseum(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	museum, err := h.MuseumService.GetByID(id)
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			respondError(c, response.CodeNotFound, "error.museum_not_found", nil)
			return
		}
		respondError(c, response.CodeInternal, "error.museum_fetch_failed", err)
		return
	}

	response.Success(c, museum)
}

// MuseumRequest create/update museum request
type MuseumRequest struct {
	Slug            string                 `json:"slug" binding:"required"`
	TitleJSON       map[string]interface{} `json:"title" binding:"required"`
	DescriptionJSON map[string]interface{} `json:"description"`
	ContentJSON     map[string]interface{} `json:"content"`
	LocationJSON    map[string]interface{} `json:"location"`
	HoursJSON       map[string]interface{} `json:"hours"`
	ImageURL        string                 `json:"image_url"`
	Accessible      *bool                  `json:"accessible"`
	Published       *bool                  `json:"published"`
	Featured        *bool                  `json:"featured"`
	PublishDate     interface{}            `json:"publish_date"`
}

func (r MuseumRequest) toInput() service.MuseumInput {
	return service.MuseumInput{
		Slug:            r.Slug,
		TitleJSON:       r.TitleJSON,
		DescriptionJSON: r.DescriptionJSON,
		ContentJSON:     r.ContentJSON,
		LocationJSON:    r.LocationJSON,
		HoursJSON:       r.HoursJSON,
		ImageURL:        r.ImageURL,
		Accessible:      r.Accessible,
		Published:       r.Published,
		Featured:        r.Featured,
		PublishDate:     r.PublishDate,
	}
}

// CreateMuseum create a museum
func (h *Handler) CreateMuseum(c *gin.Context) {
	var req MuseumRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "error.bad_request", err)
		return
	}

	museum, err := h.MuseumService.Create(req.toInput())
	if err != nil {
		h.respondMuseumSaveError(c, err)
		return
	}

	cache.InvalidateCollection(c.Request.Context(), service.CollectionMuseums)
	response.Success(c, museum)
}

// UpdateMuseum update a museum
func (h *Handler) UpdateMuseum(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	var req MuseumRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "error.bad_request", err)
		return
	}

	museum, err := h.MuseumService.Update(id, req.toInput())
	if err != nil {
		h.respondMuseumSaveError(c, err)
		return
	}

	cache.InvalidateCollection(c.Request.Context(), service.CollectionMuseums)
	response.Success(c, museum)
}

// DeleteMuseum delete a museum
func (h *Handler) DeleteMuseum(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	if err := h.MuseumService.Delete(id); err != nil {
		if errors.Is(err, service.ErrNotFound) {
			respondError(c, response.CodeNotFound, "error.museum_not_found", nil)
			return
		}
		respondError(c, response.CodeInternal, "error.museum_delete_failed", err)
		return
	}

	cache.InvalidateCollection(c.Request.Context(), service.CollectionMuseums)
	response.Success(c, nil)
}

func (h *Handler) respondMuseumSaveError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrNotFound):
		respondError(c, response.CodeNotFound, "error.museum_not_found", nil)
	case errors.Is(err, service.ErrSlugExists):
		respondError(c, response.CodeBadRequest, "error.slug_exists", nil)
	case errors.Is(err, service.ErrPublishDateTooOld):
		respondError(c, response.CodeBadRequest, "error.publish_date_too_old", nil)
	case errors.Is(err, service.ErrInvalidPublishDate):
		respondError(c, response.CodeBadRequest, "error.publish_date_invalid", nil)
	default:
		respondError(c, response.CodeInternal, "error.museum_save_failed", err)
	}
}
