package content

import (
	"fmt"
	"testing"

	"github.com/Shahwaiz-Dev/Dimo-amathountas-sub000/internal/models"
)

func uintPtr(v uint) *uint { return &v }

func TestBuildTreePromotesOrphans(t *testing.T) {
	categories := []models.PageCategory{
		{ID: 1, Slug: "municipality"},
		{ID: 2, Slug: "mayor", ParentID: uintPtr(1)},
		{ID: 3, Slug: "orphan", ParentID: uintPtr(99)},
	}

	tree := BuildTree(categories)
	if len(tree.MainCategories) != 2 {
		t.Fatalf("main categories want 2 got %d", len(tree.MainCategories))
	}
	if len(tree.SubcategoriesByParent[1]) != 1 || tree.SubcategoriesByParent[1][0].ID != 2 {
		t.Fatalf("category 2 should hang under 1")
	}
	found := false
	for _, category := range tree.MainCategories {
		if category.ID == 3 {
			found = true
		}
	}
	if !found {
		t.Fatalf("orphan should be promoted to top level, not dropped")
	}
}

func TestNavbarEntriesFiltersAndOrders(t *testing.T) {
	categories := []models.PageCategory{
		{ID: 1, Slug: "second", IsActive: true, ShowInNavbar: true, NavOrder: 2},
		{ID: 2, Slug: "first", IsActive: true, ShowInNavbar: true, NavOrder: 1},
		{ID: 3, Slug: "hidden", IsActive: true, ShowInNavbar: false, NavOrder: 0},
		{ID: 4, Slug: "inactive", IsActive: false, ShowInNavbar: true, NavOrder: 0},
		{ID: 5, Slug: "empty", IsActive: true, ShowInNavbar: true, NavOrder: 3},
	}
	published := map[uint]int{1: 2, 2: 1}

	entries := NavbarEntries(categories, published)
	if len(entries) != 2 {
		t.Fatalf("entries want 2 got %d", len(entries))
	}
	if entries[0].Category.Slug != "first" || entries[1].Category.Slug != "second" {
		t.Fatalf("entries must order by nav_order: got %s, %s", entries[0].Category.Slug, entries[1].Category.Slug)
	}
}

func TestNavbarEntriesKeptByActiveChildWithPages(t *testing.T) {
	categories := []models.PageCategory{
		{ID: 1, Slug: "parent", IsActive: true, ShowInNavbar: true},
		{ID: 2, Slug: "child", IsActive: true, ParentID: uintPtr(1)},
		{ID: 3, Slug: "dead-child", IsActive: false, ParentID: uintPtr(1)},
	}
	// parent has no direct pages, the active child does
	published := map[uint]int{2: 1}

	entries := NavbarEntries(categories, published)
	if len(entries) != 1 {
		t.Fatalf("entries want 1 got %d", len(entries))
	}
	if len(entries[0].Children) != 1 || entries[0].Children[0].ID != 2 {
		t.Fatalf("only the active child with pages is rendered")
	}
}

func TestNavbarEntriesCap(t *testing.T) {
	categories := make([]models.PageCategory, 0, MaxNavbarEntries+5)
	published := map[uint]int{}
	for i := 1; i <= MaxNavbarEntries+5; i++ {
		id := uint(i)
		categories = append(categories, models.PageCategory{
			ID:           id,
			Slug:         fmt.Sprintf("cat-%d", i),
			IsActive:     true,
			ShowInNavbar: true,
			NavOrder:     i,
		})
		published[id] = 1
	}

	entries := NavbarEntries(categories, published)
	if len(entries) != MaxNavbarEntries {
		t.Fatalf("entries capped at %d, got %d", MaxNavbarEntries, len(entries))
	}
}
