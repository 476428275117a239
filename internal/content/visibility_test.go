package content

import (
	"testing"
	"time"
)

func TestVisiblePublic(t *testing.T) {
	now := time.Now()
	past := now.Add(-time.Hour)
	future := now.Add(time.Hour)

	cases := []struct {
		name string
		item Item
		want bool
	}{
		{"published with past date", Item{Published: true, PublishDate: &past}, true},
		{"published with absent date", Item{Published: true}, true},
		{"published with future date", Item{Published: true, PublishDate: &future}, false},
		{"published with unresolvable date", Item{Published: true, PublishDate: "garbage"}, false},
		{"unpublished", Item{Published: false, PublishDate: &past}, false},
	}
	for _, tc := range cases {
		if got := Visible(tc.item, now, ContextPublic); got != tc.want {
			t.Fatalf("%s: want %v got %v", tc.name, tc.want, got)
		}
	}
}

func TestVisibleAdminAlwaysTrue(t *testing.T) {
	if !Visible(Item{}, time.Now(), ContextAdmin) {
		t.Fatalf("admin context shows everything")
	}
}

func TestVisibleHomeFeatured(t *testing.T) {
	now := time.Now()
	past := now.Add(-time.Hour)

	if !Visible(Item{Published: true, Featured: true, PublishDate: &past}, now, ContextHomeFeatured) {
		t.Fatalf("featured published item should show")
	}
	if Visible(Item{Published: true, Featured: false, PublishDate: &past}, now, ContextHomeFeatured) {
		t.Fatalf("non-featured item should not show")
	}
}

func TestVisibleHomeUpcoming(t *testing.T) {
	now := time.Now()
	dayAgo := now.Add(-24 * time.Hour)
	dayAhead := now.Add(24 * time.Hour)

	item := Item{Featured: true, PublishDate: &dayAgo, EventDate: &dayAhead}
	if !Visible(item, now, ContextHomeUpcoming) {
		t.Fatalf("featured future event should be upcoming")
	}

	pastEvent := item
	pastEvent.EventDate = &dayAgo
	if Visible(pastEvent, now, ContextHomeUpcoming) {
		t.Fatalf("past event never shows as upcoming")
	}

	// publish date absent fails closed in this context
	noPublish := Item{Featured: true, EventDate: &dayAhead}
	if Visible(noPublish, now, ContextHomeUpcoming) {
		t.Fatalf("absent publish date fails closed for upcoming")
	}

	notFeatured := item
	notFeatured.Featured = false
	if Visible(notFeatured, now, ContextHomeUpcoming) {
		t.Fatalf("non-featured event should not show as upcoming")
	}
}

func TestStatusDerivation(t *testing.T) {
	now := time.Now()
	future := now.Add(time.Hour)
	past := now.Add(-time.Hour)

	if got := Status(Item{Published: true}, now); got != StatusPublished {
		t.Fatalf("want published got %s", got)
	}
	if got := Status(Item{Published: false, PublishDate: &future}, now); got != StatusScheduled {
		t.Fatalf("want scheduled got %s", got)
	}
	if got := Status(Item{Published: false, PublishDate: &past}, now); got != StatusDraft {
		t.Fatalf("want draft got %s", got)
	}
	if got := Status(Item{Published: false}, now); got != StatusDraft {
		t.Fatalf("absent date want draft got %s", got)
	}
}
