package content

import (
	"testing"
	"time"
)

func boolPtr(v bool) *bool { return &v }

func sampleItems(now time.Time) []Item {
	past := now.Add(-time.Hour)
	future := now.Add(time.Hour)
	return []Item{
		{
			Ref:         "waste",
			Published:   true,
			Featured:    true,
			PublishDate: &past,
			CreatedAt:   now.Add(-time.Hour),
			Category:    "announcements",
			Texts: []interface{}{
				map[string]interface{}{"en": "Waste collection", "el": "Αποκομιδή απορριμμάτων"},
			},
		},
		{
			Ref:         "festival",
			Published:   false,
			PublishDate: &future,
			CreatedAt:   now.AddDate(0, 0, -40),
			Category:    "culture",
			Location:    map[string]interface{}{"en": "Seafront Park", "el": "Παραλιακό Πάρκο"},
			Accessible:  boolPtr(true),
			Texts: []interface{}{
				map[string]interface{}{"en": "Summer festival", "el": "Καλοκαιρινό φεστιβάλ"},
			},
		},
		{
			Ref:       "draft",
			Published: false,
			CreatedAt: now.Add(-time.Minute),
			Category:  "culture",
			Texts: []interface{}{
				map[string]interface{}{"en": "Draft notice"},
			},
		},
	}
}

func refs(items []Item) []string {
	out := make([]string, 0, len(items))
	for _, item := range items {
		out = append(out, item.Ref.(string))
	}
	return out
}

func TestApplyFiltersIdentity(t *testing.T) {
	now := time.Now()
	items := sampleItems(now)
	got := ApplyFilters(items, now, Filters{})
	if len(got) != len(items) {
		t.Fatalf("zero filters keep everything: want %d got %d", len(items), len(got))
	}
}

func TestApplyFiltersSearchResolvedLanguage(t *testing.T) {
	now := time.Now()
	items := sampleItems(now)

	got := ApplyFilters(items, now, Filters{Search: "φεστιβάλ", Locale: "el"})
	if len(got) != 1 || got[0].Ref != "festival" {
		t.Fatalf("greek search want [festival] got %v", refs(got))
	}

	// same term against the english resolution finds nothing
	got = ApplyFilters(items, now, Filters{Search: "φεστιβάλ", Locale: "en"})
	if len(got) != 0 {
		t.Fatalf("english resolution should not match greek text, got %v", refs(got))
	}

	got = ApplyFilters(items, now, Filters{Search: "FESTIVAL", Locale: "en"})
	if len(got) != 1 || got[0].Ref != "festival" {
		t.Fatalf("search is case-insensitive, got %v", refs(got))
	}
}

func TestApplyFiltersStatus(t *testing.T) {
	now := time.Now()
	items := sampleItems(now)

	got := ApplyFilters(items, now, Filters{Status: StatusPublished})
	if len(got) != 1 || got[0].Ref != "waste" {
		t.Fatalf("published want [waste] got %v", refs(got))
	}
	got = ApplyFilters(items, now, Filters{Status: StatusScheduled})
	if len(got) != 1 || got[0].Ref != "festival" {
		t.Fatalf("scheduled want [festival] got %v", refs(got))
	}
	got = ApplyFilters(items, now, Filters{Status: StatusDraft})
	if len(got) != 1 || got[0].Ref != "draft" {
		t.Fatalf("draft want [draft] got %v", refs(got))
	}
	got = ApplyFilters(items, now, Filters{Status: FilterAll})
	if len(got) != len(items) {
		t.Fatalf("all is a no-op, got %v", refs(got))
	}
}

func TestApplyFiltersFeaturedAndCategory(t *testing.T) {
	now := time.Now()
	items := sampleItems(now)

	got := ApplyFilters(items, now, Filters{Featured: FeaturedOnly})
	if len(got) != 1 || got[0].Ref != "waste" {
		t.Fatalf("featured want [waste] got %v", refs(got))
	}
	got = ApplyFilters(items, now, Filters{Featured: FeaturedExclude})
	if len(got) != 2 {
		t.Fatalf("not-featured want 2 got %v", refs(got))
	}
	got = ApplyFilters(items, now, Filters{Category: "culture"})
	if len(got) != 2 {
		t.Fatalf("category culture want 2 got %v", refs(got))
	}
}

func TestApplyFiltersDateRange(t *testing.T) {
	now := time.Now()
	items := sampleItems(now)

	got := ApplyFilters(items, now, Filters{DateRange: DateRangeToday})
	for _, item := range got {
		if item.Ref == "festival" {
			t.Fatalf("40-day-old item should not fall in today bucket")
		}
	}
	got = ApplyFilters(items, now, Filters{DateRange: DateRangeYear})
	if len(got) < 2 {
		t.Fatalf("year bucket keeps recent items, got %v", refs(got))
	}
}

func TestApplyFiltersAccessibility(t *testing.T) {
	now := time.Now()
	items := sampleItems(now)

	got := ApplyFilters(items, now, Filters{Accessibility: AccessibleOnly})
	if len(got) != 1 || got[0].Ref != "festival" {
		t.Fatalf("accessible want [festival] got %v", refs(got))
	}
	got = ApplyFilters(items, now, Filters{Accessibility: AccessibleExclude})
	if len(got) != 2 {
		t.Fatalf("not-accessible keeps items without the flag, got %v", refs(got))
	}
}

func TestApplyFiltersLocation(t *testing.T) {
	now := time.Now()
	items := sampleItems(now)

	got := ApplyFilters(items, now, Filters{Location: "Seafront Park", Locale: "en"})
	if len(got) != 1 || got[0].Ref != "festival" {
		t.Fatalf("location match want [festival] got %v", refs(got))
	}
	got = ApplyFilters(items, now, Filters{Location: "Παραλιακό Πάρκο", Locale: "el"})
	if len(got) != 1 || got[0].Ref != "festival" {
		t.Fatalf("greek location match want [festival] got %v", refs(got))
	}
}

func TestApplyFiltersConjunctionCommutes(t *testing.T) {
	now := time.Now()
	items := sampleItems(now)

	a := ApplyFilters(items, now, Filters{Category: "culture", Status: StatusScheduled})
	b := ApplyFilters(ApplyFilters(items, now, Filters{Status: StatusScheduled}), now, Filters{Category: "culture"})
	if len(a) != len(b) {
		t.Fatalf("criteria order must not matter: %v vs %v", refs(a), refs(b))
	}
	for i := range a {
		if a[i].Ref != b[i].Ref {
			t.Fatalf("criteria order must not matter: %v vs %v", refs(a), refs(b))
		}
	}
}
