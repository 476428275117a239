package service

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/Shahwaiz-Dev/Dimo-amathountas-sub000/internal/content"
	"github.com/Shahwaiz-Dev/Dimo-amathountas-sub000/internal/models"
	"github.com/Shahwaiz-Dev/Dimo-amathountas-sub000/internal/repository"
)

type fakeNewsRepository struct {
	items  []models.NewsItem
	nextID uint
}

// matchesAnyLanguage mimics the SQL localized LIKE: slug or any stored
// language of the title, regardless of the request locale.
func matchesAnyLanguage(item models.NewsItem, search string) bool {
	if search == "" {
		return true
	}
	if strings.Contains(item.Slug, search) {
		return true
	}
	for _, value := range item.TitleJSON {
		if text, ok := value.(string); ok && strings.Contains(text, search) {
			return true
		}
	}
	return false
}

func (r *fakeNewsRepository) List(filter repository.NewsListFilter) ([]models.NewsItem, int64, error) {
	out := make([]models.NewsItem, 0, len(r.items))
	for _, item := range r.items {
		if filter.OnlyPublished && !item.Published {
			continue
		}
		if filter.OnlyFeatured && !item.Featured {
			continue
		}
		if !matchesAnyLanguage(item, strings.TrimSpace(filter.Search)) {
			continue
		}
		out = append(out, item)
	}
	return out, int64(len(out)), nil
}

func (r *fakeNewsRepository) GetBySlug(slug string, onlyPublished bool) (*models.NewsItem, error) {
	for i := range r.items {
		if r.items[i].Slug != slug {
			continue
		}
		if onlyPublished && !r.items[i].Published {
			return nil, nil
		}
		item := r.items[i]
		return &item, nil
	}
	return nil, nil
}

func (r *fakeNewsRepository) GetByID(id uint) (*models.NewsItem, error) {
	for i := range r.items {
		if r.items[i].ID == id {
			item := r.items[i]
			return &item, nil
		}
	}
	return nil, nil
}

func (r *fakeNewsRepository) Create(item *models.NewsItem) error {
	r.nextID++
	item.ID = r.nextID
	item.CreatedAt = time.Now()
	r.items = append(r.items, *item)
	return nil
}

func (r *fakeNewsRepository) Update(item *models.NewsItem) error {
	for i := range r.items {
		if r.items[i].ID == item.ID {
			r.items[i] = *item
			return nil
		}
	}
	return errors.New("missing record")
}

func (r *fakeNewsRepository) Delete(id uint) error {
	for i := range r.items {
		if r.items[i].ID == id {
			r.items = append(r.items[:i], r.items[i+1:]...)
			return nil
		}
	}
	return errors.New("missing record")
}

func (r *fakeNewsRepository) CountBySlug(slug string, excludeID *uint) (int64, error) {
	var count int64
	for _, item := range r.items {
		if item.Slug != slug {
			continue
		}
		if excludeID != nil && item.ID == *excludeID {
			continue
		}
		count++
	}
	return count, nil
}

type scheduledPublish struct {
	collection string
	id         uint
	at         time.Time
}

type fakeScheduler struct {
	calls []scheduledPublish
	err   error
}

func (s *fakeScheduler) ScheduleContentPublish(collection string, id uint, publishAt time.Time) error {
	s.calls = append(s.calls, scheduledPublish{collection: collection, id: id, at: publishAt})
	return s.err
}

func newsTitle(en string) map[string]interface{} {
	return map[string]interface{}{"en": en}
}

func TestNewsCreatePublishesImmediately(t *testing.T) {
	repo := &fakeNewsRepository{}
	scheduler := &fakeScheduler{}
	svc := NewNewsService(repo, scheduler)

	published := true
	item, err := svc.Create(NewsInput{
		Slug:      "road-works",
		TitleJSON: newsTitle("Road works"),
		Published: &published,
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if !item.Published || item.PublishDate != nil {
		t.Fatalf("absent date publishes immediately, got published=%v date=%v", item.Published, item.PublishDate)
	}
	if len(scheduler.calls) != 0 {
		t.Fatalf("no scheduling without a future date")
	}
}

func TestNewsCreateFutureDateSchedules(t *testing.T) {
	repo := &fakeNewsRepository{}
	scheduler := &fakeScheduler{}
	svc := NewNewsService(repo, scheduler)

	published := true
	future := time.Now().Add(2 * time.Hour)
	item, err := svc.Create(NewsInput{
		Slug:        "festival",
		TitleJSON:   newsTitle("Festival"),
		Published:   &published,
		PublishDate: &future,
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if item.Published {
		t.Fatalf("future date forces published=false even when the payload says otherwise")
	}
	if len(scheduler.calls) != 1 {
		t.Fatalf("scheduler calls want 1 got %d", len(scheduler.calls))
	}
	call := scheduler.calls[0]
	if call.collection != CollectionNews || call.id != item.ID {
		t.Fatalf("scheduled wrong target: %+v", call)
	}
}

func TestNewsCreateSchedulerFailureDoesNotFail(t *testing.T) {
	repo := &fakeNewsRepository{}
	scheduler := &fakeScheduler{err: errors.New("broker down")}
	svc := NewNewsService(repo, scheduler)

	future := time.Now().Add(time.Hour)
	if _, err := svc.Create(NewsInput{Slug: "n", TitleJSON: newsTitle("n"), PublishDate: &future}); err != nil {
		t.Fatalf("scheduling is best effort, create must succeed: %v", err)
	}
}

func TestNewsCreateSlugConflict(t *testing.T) {
	repo := &fakeNewsRepository{}
	svc := NewNewsService(repo, nil)

	if _, err := svc.Create(NewsInput{Slug: "dup", TitleJSON: newsTitle("a")}); err != nil {
		t.Fatalf("first create: %v", err)
	}
	if _, err := svc.Create(NewsInput{Slug: "dup", TitleJSON: newsTitle("b")}); !errors.Is(err, ErrSlugExists) {
		t.Fatalf("want ErrSlugExists got %v", err)
	}
}

func TestNewsUpdateKeepsOwnSlug(t *testing.T) {
	repo := &fakeNewsRepository{}
	svc := NewNewsService(repo, nil)

	item, err := svc.Create(NewsInput{Slug: "keep", TitleJSON: newsTitle("a")})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if _, err := svc.Update(item.ID, NewsInput{Slug: "keep", TitleJSON: newsTitle("b")}); err != nil {
		t.Fatalf("update with unchanged slug: %v", err)
	}
	if _, err := svc.Update(999, NewsInput{Slug: "other", TitleJSON: newsTitle("c")}); !errors.Is(err, ErrNotFound) {
		t.Fatalf("unknown id want ErrNotFound got %v", err)
	}
}

func TestNewsCreateRejectsStaleDate(t *testing.T) {
	svc := NewNewsService(&fakeNewsRepository{}, nil)

	stale := time.Now().Add(-48 * time.Hour)
	if _, err := svc.Create(NewsInput{Slug: "old", TitleJSON: newsTitle("old"), PublishDate: &stale}); !errors.Is(err, ErrPublishDateTooOld) {
		t.Fatalf("want ErrPublishDateTooOld got %v", err)
	}
	if _, err := svc.Create(NewsInput{Slug: "bad", TitleJSON: newsTitle("bad"), PublishDate: "garbage"}); !errors.Is(err, ErrInvalidPublishDate) {
		t.Fatalf("want ErrInvalidPublishDate got %v", err)
	}
}

func TestNewsListPublicGatesOnDate(t *testing.T) {
	now := time.Now()
	past := now.Add(-time.Hour)
	future := now.Add(time.Hour)
	repo := &fakeNewsRepository{
		items: []models.NewsItem{
			{ID: 1, Slug: "visible", Published: true, PublishDate: &past, TitleJSON: models.JSON(newsTitle("visible"))},
			{ID: 2, Slug: "early", Published: true, PublishDate: &future, TitleJSON: models.JSON(newsTitle("early"))},
			{ID: 3, Slug: "draft", Published: false, TitleJSON: models.JSON(newsTitle("draft"))},
		},
	}
	svc := NewNewsService(repo, nil)

	items, total, err := svc.ListPublic(content.Filters{}, 1, 10)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if total != 1 || len(items) != 1 || items[0].Slug != "visible" {
		t.Fatalf("only the past-dated published item shows, got total=%d items=%v", total, items)
	}
}

func TestNewsListAdminSearchesAllLanguages(t *testing.T) {
	repo := &fakeNewsRepository{
		items: []models.NewsItem{
			{ID: 1, Slug: "festival", Published: true, TitleJSON: models.JSON{"el": "Καλοκαιρινό φεστιβάλ"}},
			{ID: 2, Slug: "road-works", Published: true, TitleJSON: models.JSON{"en": "Road works"}},
		},
		nextID: 2,
	}
	svc := NewNewsService(repo, nil)

	// greek-only title must match even when the request resolves to english
	items, total, err := svc.ListAdmin(content.Filters{Search: "φεστιβάλ", Locale: "en"}, 1, 10)
	if err != nil {
		t.Fatalf("list admin: %v", err)
	}
	if total != 1 || len(items) != 1 || items[0].Slug != "festival" {
		t.Fatalf("admin search matches any stored language, got total=%d items=%v", total, items)
	}
}

func TestNewsGetPublicBySlugHidesScheduled(t *testing.T) {
	future := time.Now().Add(time.Hour)
	repo := &fakeNewsRepository{
		items: []models.NewsItem{
			{ID: 1, Slug: "early", Published: true, PublishDate: &future},
		},
	}
	svc := NewNewsService(repo, nil)

	if _, err := svc.GetPublicBySlug("early"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("scheduled item hidden from public detail, got %v", err)
	}
	if _, err := svc.GetPublicBySlug("missing"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("missing slug want ErrNotFound got %v", err)
	}
}

func TestNewsCompleteScheduledPublish(t *testing.T) {
	past := time.Now().Add(-time.Minute)
	future := time.Now().Add(time.Hour)
	repo := &fakeNewsRepository{
		items: []models.NewsItem{
			{ID: 1, Slug: "due", Published: false, PublishDate: &past},
			{ID: 2, Slug: "moved", Published: false, PublishDate: &future},
		},
		nextID: 2,
	}
	svc := NewNewsService(repo, nil)

	if err := svc.CompleteScheduledPublish(1); err != nil {
		t.Fatalf("complete: %v", err)
	}
	item, _ := repo.GetByID(1)
	if !item.Published {
		t.Fatalf("due item flips to published")
	}

	if err := svc.CompleteScheduledPublish(2); err != nil {
		t.Fatalf("complete rescheduled: %v", err)
	}
	item, _ = repo.GetByID(2)
	if item.Published {
		t.Fatalf("item moved into the future is left for the rescheduled task")
	}

	if err := svc.CompleteScheduledPublish(999); err != nil {
		t.Fatalf("deleted record is a no-op, got %v", err)
	}
}
