package admin

import (
	"errors"
	"strconv"

	"github.com/Shahwaiz-Dev/Dimo-amathountas-sub000/internal/cache"
	"github.com/Shahwaiz-Dev/Dimo-amathountas-sub000/internal/http/response"
	"github.com/Shahwaiz-Dev/Dimo-amathountas-sub000/internal/service"

	"github.com/gin-gonic/gin"
)

// GetAdminEvents event list (admin)
func (h *Handler) GetAdminEvents(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "20"))
	page, pageSize = normalizePagination(page, pageSize)
	filters := parseFilters(c)

	items, total, err := h.EventService.ListAdmin(filters, page, pageSize)
	if err != nil {
		respondError(c, response.CodeInternal, "error.event_fetch_failed", err)
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

// GetAdminEvent event detail (admin)
func (h *Handler) GetAdminEvent(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	event, err := h.EventService.GetByID(id)
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			respondError(c, response.CodeNotFound, "error.event_not_found", nil)
			return
		}
		respondError(c, response.CodeInternal, "error.event_fetch_failed", err)
		return
	}

	response.Success(c, event)
}

// EventRequest create/update event request
type EventRequest struct {
	Slug         string                 `json:"slug" binding:"required"`
	TitleJSON    map[string]interface{} `json:"title" binding:"required"`
	ExcerptJSON  map[string]interface{} `json:"excerpt"`
	ContentJSON  map[string]interface{} `json:"content"`
	LocationJSON map[string]interface{} `json:"location"`
	ImageURL     string                 `json:"image_url"`
	Category     string                 `json:"category"`
	Published    *bool                  `json:"published"`
	Featured     *bool                  `json:"featured"`
	PublishDate  interface{}            `json:"publish_date"`
	Date         interface{}            `json:"date"`
	TimeOfDay    string                 `json:"time"`
	EndTime      string                 `json:"end_time"`
}

func (r EventRequest) toInput() service.EventInput {
	return service.EventInput{
		Slug:         r.Slug,
		TitleJSON:    r.TitleJSON,
		ExcerptJSON:  r.ExcerptJSON,
		ContentJSON:  r.ContentJSON,
		LocationJSON: r.LocationJSON,
		ImageURL:     r.ImageURL,
		Category:     r.Category,
		Published:    r.Published,
		Featured:     r.Featured,
		PublishDate:  r.PublishDate,
		Date:         r.Date,
		TimeOfDay:    r.TimeOfDay,
		EndTime:      r.EndTime,
	}
}

// CreateEvent create an event
func (h *Handler) CreateEvent(c *gin.Context) {
	var req EventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "error.bad_request", err)
		return
	}

	event, err := h.EventService.Create(req.toInput())
	if err != nil {
		h.respondEventSaveError(c, err)
		return
	}

	cache.InvalidateCollection(c.Request.Context(), service.CollectionEvents)
	response.Success(c, event)
}

// UpdateEvent update an event
func (h *Handler) UpdateEvent(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	var req EventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "error.bad_request", err)
		return
	}

	event, err := h.EventService.Update(id, req.toInput())
	if err != nil {
		h.respondEventSaveError(c, err)
		return
	}

	cache.InvalidateCollection(c.Request.Context(), service.CollectionEvents)
	response.Success(c, event)
}

// DeleteEvent delete an event
func (h *Handler) DeleteEvent(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	if err := h.EventService.Delete(id); err != nil {
		if errors.Is(err, service.ErrNotFound) {
			respondError(c, response.CodeNotFound, "error.event_not_found", nil)
			return
		}
		respondError(c, response.CodeInternal, "error.event_delete_failed", err)
		return
	}

	cache.InvalidateCollection(c.Request.Context(), service.CollectionEvents)
	response.Success(c, nil)
}

func (h *Handler) respondEventSaveError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrNotFound):
		respondError(c, response.CodeNotFound, "error.event_not_found", nil)
	case errors.Is(err, service.ErrSlugExists):
		respondError(c, response.CodeBadRequest, "error.slug_exists", nil)
	case errors.Is(err, service.ErrPublishDateTooOld):
		respondError(c, response.CodeBadRequest, "error.publish_date_too_old", nil)
	case errors.Is(err, service.ErrInvalidPublishDate):
		respondError(c, response.CodeBadRequest, "error.publish_date_invalid", nil)
	default:
		respondError(c, response.CodeInternal, "error.event_save_failed", err)
	}
}
