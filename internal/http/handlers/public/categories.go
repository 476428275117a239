package public

import (
	"github.com/Shahwaiz-Dev/Dimo-amathountas-sub000/internal/cache"
	"github.com/Shahwaiz-Dev/Dimo-amathountas-sub000/internal/content"
	"github.com/Shahwaiz-Dev/Dimo-amathountas-sub000/internal/http/response"
	"github.com/Shahwaiz-Dev/Dimo-amathountas-sub000/internal/models"
	"github.com/Shahwaiz-Dev/Dimo-amathountas-sub000/internal/service"

	"github.com/gin-gonic/gin"
)

// categoryTreeView public category tree response structure
type categoryTreeView struct {
	Category      models.PageCategory   `json:"category"`
	Subcategories []models.PageCategory `json:"subcategories"`
}

// GetCategories active page categories as a two-level tree
func (h *Handler) GetCategories(c *gin.Context) {
	cacheKey := cache.ContentListKey(service.CollectionCategories, "tree")
	var cached []categoryTreeView
	if hit, err := cache.GetJSON(c.Request.Context(), cacheKey, &cached); err == nil && hit {
		response.Success(c, cached)
		return
	}

	tree, err := h.PageCategoryService.Tree()
	if err != nil {
		respondError(c, response.CodeInternal, "error.category_fetch_failed", err)
		return
	}

	views := make([]categoryTreeView, 0, len(tree.MainCategories))
	for _, category := range tree.MainCategories {
		children := tree.SubcategoriesByParent[category.ID]
		if children == nil {
			children = make([]models.PageCategory, 0)
		}
		views = append(views, categoryTreeView{Category: category, Subcategories: children})
	}

	_ = cache.SetJSON(c.Request.Context(), cacheKey, views, cache.ContentCacheTTL)
	response.Success(c, views)
}

// GetNavigation navbar entries derived from categories and published pages
func (h *Handler) GetNavigation(c *gin.Context) {
	cacheKey := cache.ContentListKey(service.CollectionCategories, "navbar")
	var cached []content.NavbarEntry
	if hit, err := cache.GetJSON(c.Request.Context(), cacheKey, &cached); err == nil && hit {
		response.Success(c, cached)
		return
	}

	entries, err := h.PageCategoryService.Navbar()
	if err != nil {
		respondError(c, response.CodeInternal, "error.category_fetch_failed", err)
		return
	}

	_ = cache.SetJSON(c.Request.Context(), cacheKey, entries, cache.ContentCacheTTL)
	response.Success(c, entries)
}
