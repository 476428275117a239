package service

import (
	"errors"
	"testing"

	"github.com/Shahwaiz-Dev/Dimo-amathountas-sub000/internal/models"
	"github.com/Shahwaiz-Dev/Dimo-amathountas-sub000/internal/repository"
)

type fakeCategoryRepository struct {
	categories []models.PageCategory
	nextID     uint
}

func (r *fakeCategoryRepository) List(onlyActive bool) ([]models.PageCategory, error) {
	out := make([]models.PageCategory, 0, len(r.categories))
	for _, category := range r.categories {
		if onlyActive && !category.IsActive {
			continue
		}
		out = append(out, category)
	}
	return out, nil
}

func (r *fakeCategoryRepository) GetByID(id uint) (*models.PageCategory, error) {
	for i := range r.categories {
		if r.categories[i].ID == id {
			category := r.categories[i]
			return &category, nil
		}
	}
	return nil, nil
}

func (r *fakeCategoryRepository) GetBySlug(slug string) (*models.PageCategory, error) {
	for i := range r.categories {
		if r.categories[i].Slug == slug && r.categories[i].IsActive {
			category := r.categories[i]
			return &category, nil
		}
	}
	return nil, nil
}

func (r *fakeCategoryRepository) Create(category *models.PageCategory) error {
	r.nextID++
	category.ID = r.nextID
	r.categories = append(r.categories, *category)
	return nil
}

func (r *fakeCategoryRepository) Update(category *models.PageCategory) error {
	for i := range r.categories {
		if r.categories[i].ID == category.ID {
			r.categories[i] = *category
			return nil
		}
	}
	return errors.New("missing record")
}

func (r *fakeCategoryRepository) Delete(id uint) error {
	for i := range r.categories {
		if r.categories[i].ID == id {
			r.categories = append(r.categories[:i], r.categories[i+1:]...)
			return nil
		}
	}
	return errors.New("missing record")
}

func (r *fakeCategoryRepository) CountBySlug(slug string, excludeID *uint) (int64, error) {
	var count int64
	for _, category := range r.categories {
		if category.Slug != slug {
			continue
		}
		if excludeID != nil && category.ID == *excludeID {
			continue
		}
		count++
	}
	return count, nil
}

func (r *fakeCategoryRepository) CountChildren(parentID uint) (int64, error) {
	var count int64
	for _, category := range r.categories {
		if category.ParentID != nil && *category.ParentID == parentID {
			count++
		}
	}
	return count, nil
}

type fakePageRepository struct {
	pagesByCategory map[uint]int64
}

func (r *fakePageRepository) List(filter repository.PageListFilter) ([]models.Page, int64, error) {
	return nil, 0, nil
}

func (r *fakePageRepository) GetBySlug(slug string, onlyPublished bool) (*models.Page, error) {
	return nil, nil
}

func (r *fakePageRepository) GetByID(id uint) (*models.Page, error) { return nil, nil }
func (r *fakePageRepository) Create(page *models.Page) error        { return nil }
func (r *fakePageRepository) Update(page *models.Page) error        { return nil }
func (r *fakePageRepository) Delete(id uint) error                  { return nil }

func (r *fakePageRepository) CountBySlug(slug string, excludeID *uint) (int64, error) {
	return 0, nil
}

func (r *fakePageRepository) CountByCategory(categoryID uint, onlyPublished bool) (int64, error) {
	return r.pagesByCategory[categoryID], nil
}

func (r *fakePageRepository) PublishedCountByCategory() (map[uint]int, error) {
	counts := make(map[uint]int, len(r.pagesByCategory))
	for id, n := range r.pagesByCategory {
		counts[id] = int(n)
	}
	return counts, nil
}

func categoryName(en string) map[string]interface{} {
	return map[string]interface{}{"en": en}
}

func newCategoryService(categories ...models.PageCategory) (*PageCategoryService, *fakeCategoryRepository, *fakePageRepository) {
	repo := &fakeCategoryRepository{categories: categories}
	for _, category := range categories {
		if category.ID > repo.nextID {
			repo.nextID = category.ID
		}
	}
	pages := &fakePageRepository{pagesByCategory: map[uint]int64{}}
	return NewPageCategoryService(repo, pages), repo, pages
}

func TestCategoryCreateUnderMainParent(t *testing.T) {
	svc, _, _ := newCategoryService(
		models.PageCategory{ID: 1, Slug: "municipality", IsActive: true},
	)

	parent := uint(1)
	category, err := svc.Create(PageCategoryInput{
		Slug:     "mayor-office",
		NameJSON: categoryName("Mayor's Office"),
		ParentID: &parent,
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if category.ParentID == nil || *category.ParentID != 1 {
		t.Fatalf("parent not recorded: %+v", category)
	}
	if !category.IsActive {
		t.Fatalf("is_active defaults to true")
	}
}

func TestCategoryCreateRejectsMissingParent(t *testing.T) {
	svc, _, _ := newCategoryService()

	parent := uint(42)
	_, err := svc.Create(PageCategoryInput{Slug: "orphan", NameJSON: categoryName("x"), ParentID: &parent})
	if !errors.Is(err, ErrInvalidParent) {
		t.Fatalf("missing parent want ErrInvalidParent got %v", err)
	}
}

func TestCategoryCreateRejectsNestedParent(t *testing.T) {
	parent := uint(1)
	svc, _, _ := newCategoryService(
		models.PageCategory{ID: 1, Slug: "main", IsActive: true},
		models.PageCategory{ID: 2, Slug: "sub", IsActive: true, ParentID: &parent},
	)

	// nesting stops at one level: a subcategory cannot be a parent
	grandparent := uint(2)
	_, err := svc.Create(PageCategoryInput{Slug: "deep", NameJSON: categoryName("x"), ParentID: &grandparent})
	if !errors.Is(err, ErrInvalidParent) {
		t.Fatalf("nested parent want ErrInvalidParent got %v", err)
	}
}

func TestCategoryUpdateRejectsSelfParent(t *testing.T) {
	svc, _, _ := newCategoryService(
		models.PageCategory{ID: 1, Slug: "main", IsActive: true},
	)

	self := uint(1)
	_, err := svc.Update(1, PageCategoryInput{Slug: "main", NameJSON: categoryName("x"), ParentID: &self})
	if !errors.Is(err, ErrInvalidParent) {
		t.Fatalf("self parent want ErrInvalidParent got %v", err)
	}
}

func TestCategoryCreateSlugConflict(t *testing.T) {
	svc, _, _ := newCategoryService(
		models.PageCategory{ID: 1, Slug: "dup", IsActive: true},
	)

	if _, err := svc.Create(PageCategoryInput{Slug: "dup", NameJSON: categoryName("x")}); !errors.Is(err, ErrSlugExists) {
		t.Fatalf("want ErrSlugExists got %v", err)
	}
}

func TestCategoryDeleteRefusesWhileInUse(t *testing.T) {
	parent := uint(1)
	svc, repo, pages := newCategoryService(
		models.PageCategory{ID: 1, Slug: "with-child", IsActive: true},
		models.PageCategory{ID: 2, Slug: "child", IsActive: true, ParentID: &parent},
		models.PageCategory{ID: 3, Slug: "with-pages", IsActive: true},
		models.PageCategory{ID: 4, Slug: "empty", IsActive: true},
	)
	pages.pagesByCategory[3] = 2

	if err := svc.Delete(1); !errors.Is(err, ErrCategoryInUse) {
		t.Fatalf("category with children want ErrCategoryInUse got %v", err)
	}
	if err := svc.Delete(3); !errors.Is(err, ErrCategoryInUse) {
		t.Fatalf("category with pages want ErrCategoryInUse got %v", err)
	}
	if err := svc.Delete(4); err != nil {
		t.Fatalf("empty category deletes: %v", err)
	}
	if category, _ := repo.GetByID(4); category != nil {
		t.Fatalf("category 4 should be gone")
	}
	if err := svc.Delete(99); !errors.Is(err, ErrNotFound) {
		t.Fatalf("unknown id want ErrNotFound got %v", err)
	}
}

func TestCategoryNavbarCountsPublishedPages(t *testing.T) {
	svc, _, pages := newCategoryService(
		models.PageCategory{ID: 1, Slug: "shown", IsActive: true, ShowInNavbar: true, NavOrder: 1},
		models.PageCategory{ID: 2, Slug: "no-pages", IsActive: true, ShowInNavbar: true, NavOrder: 2},
	)
	pages.pagesByCategory[1] = 1

	entries, err := svc.Navbar()
	if err != nil {
		t.Fatalf("navbar: %v", err)
	}
	if len(entries) != 1 || entries[0].Category.Slug != "shown" {
		t.Fatalf("only categories with published pages appear, got %+v", entries)
	}
}
