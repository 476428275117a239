package content

import (
	"strings"
	"time"
)

// VisibilityContext selects which gating rule applies to an item.
type VisibilityContext string

// Visibility contexts
const (
	ContextPublic       VisibilityContext = "public"
	ContextHomeFeatured VisibilityContext = "home_featured"
	ContextHomeUpcoming VisibilityContext = "home_upcoming"
	ContextAdmin        VisibilityContext = "admin"
)

// Derived publication states
const (
	StatusPublished = "published"
	StatusScheduled = "scheduled"
	StatusDraft     = "draft"
)

// Item is the collection-independent view of a content record that the
// visibility predicate and filter composer operate on. Ref carries the
// caller's backing record through filtering.
type Item struct {
	Ref         interface{}
	Published   bool
	Featured    bool
	PublishDate interface{} // tolerant encoding, see ToEpochMillis
	EventDate   interface{} // events only
	CreatedAt   time.Time
	Category    string
	Location    interface{} // bilingual, events/museums only
	Accessible  *bool       // museums only
	Texts       []interface{} // bilingual searchable values (title/excerpt/content/location)
}

// Visible reports whether the item should be shown in the given context at
// the given instant. The published flag is never trusted alone for public
// contexts; the publish date is always re-checked.
func Visible(item Item, now time.Time, ctx VisibilityContext) bool {
	switch ctx {
	case ContextAdmin:
		return true
	case ContextPublic:
		return item.Published && publishDatePassed(item, now)
	case ContextHomeFeatured:
		return item.Published && item.Featured && publishDatePassed(item, now)
	case ContextHomeUpcoming:
		if !item.Featured {
			return false
		}
		publishMillis, ok := ToEpochMillis(item.PublishDate)
		if !ok || publishMillis > now.UnixMilli() {
			return false
		}
		eventMillis, ok := ToEpochMillis(item.EventDate)
		if !ok {
			return false
		}
		return eventMillis >= now.UnixMilli()
	default:
		return false
	}
}

// Status derives the publication state label shown in admin listings.
// Scheduled means the publish date is still in the future and the item is
// not yet published.
func Status(item Item, now time.Time) string {
	if item.Published {
		return StatusPublished
	}
	if millis, ok := ToEpochMillis(item.PublishDate); ok && millis > now.UnixMilli() {
		return StatusScheduled
	}
	return StatusDraft
}

// publishDatePassed fails open when the publish date is absent and closed
// when it is present but unresolvable.
func publishDatePassed(item Item, now time.Time) bool {
	if DateAbsent(item.PublishDate) {
		return true
	}
	millis, ok := ToEpochMillis(item.PublishDate)
	if !ok {
		return false
	}
	return millis <= now.UnixMilli()
}

// DateAbsent distinguishes "no date at all" (which fails open for public
// visibility) from a present but unresolvable one (which fails closed).
func DateAbsent(value interface{}) bool {
	switch v := value.(type) {
	case nil:
		return true
	case *time.Time:
		return v == nil || v.IsZero()
	case time.Time:
		return v.IsZero()
	case string:
		return strings.TrimSpace(v) == ""
	}
	return false
}
