package content

import (
	"sort"

	"github.com/Shahwaiz-Dev/Dimo-amathountas-sub000/internal/models"
)

// MaxNavbarEntries cap on top-level navigation entries.
const MaxNavbarEntries = 10

// Tree two-level category structure for navigation and the admin sidebar.
type Tree struct {
	MainCategories        []models.PageCategory
	SubcategoriesByParent map[uint][]models.PageCategory
}

// BuildTree organizes a flat category list into main categories and one
// level of subcategories. A category referencing a nonexistent parent is an
// orphan and is promoted to top level rather than silently dropped.
func BuildTree(categories []models.PageCategory) Tree {
	known := make(map[uint]struct{}, len(categories))
	for _, category := range categories {
		known[category.ID] = struct{}{}
	}

	tree := Tree{
		MainCategories:        make([]models.PageCategory, 0, len(categories)),
		SubcategoriesByParent: make(map[uint][]models.PageCategory),
	}
	for _, category := range categories {
		parent := category.ParentID
		if parent == nil {
			tree.MainCategories = append(tree.MainCategories, category)
			continue
		}
		if _, exists := known[*parent]; !exists {
			// orphan
			tree.MainCategories = append(tree.MainCategories, category)
			continue
		}
		tree.SubcategoriesByParent[*parent] = append(tree.SubcategoriesByParent[*parent], category)
	}
	return tree
}

// NavbarEntry a navigable menu entry with its rendered children.
type NavbarEntry struct {
	Category models.PageCategory   `json:"category"`
	Children []models.PageCategory `json:"children"`
}

// NavbarEntries projects categories into the public navigation bar:
// active + show-in-navbar only, ordered by nav_order ascending (stable for
// ties), capped at MaxNavbarEntries. An entry is kept only when it has at
// least one published page directly or at least one active subcategory
// that itself has a published page; nesting stops at depth two.
func NavbarEntries(categories []models.PageCategory, publishedPages map[uint]int) []NavbarEntry {
	tree := BuildTree(categories)

	sort.SliceStable(tree.MainCategories, func(i, j int) bool {
		return tree.MainCategories[i].NavOrder < tree.MainCategories[j].NavOrder
	})

	entries := make([]NavbarEntry, 0, MaxNavbarEntries)
	for _, category := range tree.MainCategories {
		if !category.IsActive || !category.ShowInNavbar {
			continue
		}

		children := make([]models.PageCategory, 0)
		for _, child := range tree.SubcategoriesByParent[category.ID] {
			if child.IsActive && publishedPages[child.ID] > 0 {
				children = append(children, child)
			}
		}
		sort.SliceStable(children, func(i, j int) bool {
			return children[i].NavOrder < children[j].NavOrder
		})

		if publishedPages[category.ID] == 0 && len(children) == 0 {
			continue
		}

		entries = append(entries, NavbarEntry{Category: category, Children: children})
		if len(entries) >= MaxNavbarEntries {
			break
		}
	}
	return entries
}
