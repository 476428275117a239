package content

import (
	"strings"
	"time"

	"github.com/Shahwaiz-Dev/Dimo-amathountas-sub000/internal/i18n"
)

// Filter option values shared by several criteria.
const (
	FilterAll = "all"

	FeaturedOnly    = "featured"
	FeaturedExclude = "not-featured"

	AccessibleOnly    = "accessible"
	AccessibleExclude = "not-accessible"

	DateRangeToday = "today"
	DateRangeWeek  = "week"
	DateRangeMonth = "month"
	DateRangeYear  = "year"
)

// Filters user-supplied list criteria. A zero/"all" value is a no-op for
// its criterion; the zero Filters value is the identity.
type Filters struct {
	Search        string // case-insensitive substring, union across resolved texts
	Status        string // all|published|draft|scheduled
	Featured      string // all|featured|not-featured
	DateRange     string // all|today|week|month|year, bucketed from CreatedAt
	Category      string // exact match
	Location      string // exact match on resolved location text
	Accessibility string // all|accessible|not-accessible
	Locale        string // language used to resolve bilingual texts for matching
}

// ApplyFilters returns the items satisfying every active criterion, in the
// input order. Pure function: the conjunction is commutative, so criteria
// order never changes the result.
func ApplyFilters(items []Item, now time.Time, f Filters) []Item {
	out := make([]Item, 0, len(items))
	for _, item := range items {
		if matches(item, now, f) {
			out = append(out, item)
		}
	}
	return out
}

func matches(item Item, now time.Time, f Filters) bool {
	return matchesSearch(item, f) &&
		matchesStatus(item, now, f.Status) &&
		matchesFeatured(item, f.Featured) &&
		matchesDateRange(item, now, f.DateRange) &&
		matchesCategory(item, f.Category) &&
		matchesLocation(item, f) &&
		matchesAccessibility(item, f.Accessibility)
}

// matchesSearch matches only the text resolved for the requested language
// (with the English fallback applied), not every stored language.
func matchesSearch(item Item, f Filters) bool {
	term := strings.ToLower(strings.TrimSpace(f.Search))
	if term == "" {
		return true
	}
	for _, text := range item.Texts {
		resolved := strings.ToLower(i18n.Localize(text, f.Locale))
		if resolved != "" && strings.Contains(resolved, term) {
			return true
		}
	}
	return false
}

func matchesStatus(item Item, now time.Time, status string) bool {
	if status == "" || status == FilterAll {
		return true
	}
	return Status(item, now) == status
}

func matchesFeatured(item Item, featured string) bool {
	switch featured {
	case "", FilterAll:
		return true
	case FeaturedOnly:
		return item.Featured
	case FeaturedExclude:
		return !item.Featured
	}
	return true
}

func matchesDateRange(item Item, now time.Time, dateRange string) bool {
	if dateRange == "" || dateRange == FilterAll {
		return true
	}
	start, ok := rangeStart(now, dateRange)
	if !ok {
		return true
	}
	return !item.CreatedAt.Before(start)
}

// rangeStart computes calendar-local bucket boundaries; the week starts on
// Sunday.
func rangeStart(now time.Time, dateRange string) (time.Time, bool) {
	year, month, day := now.Date()
	loc := now.Location()
	switch dateRange {
	case DateRangeToday:
		return time.Date(year, month, day, 0, 0, 0, 0, loc), true
	case DateRangeWeek:
		startOfDay := time.Date(year, month, day, 0, 0, 0, 0, loc)
		return startOfDay.AddDate(0, 0, -int(now.Weekday())), true
	case DateRangeMonth:
		return time.Date(year, month, 1, 0, 0, 0, 0, loc), true
	case DateRangeYear:
		return time.Date(year, time.January, 1, 0, 0, 0, 0, loc), true
	}
	return time.Time{}, false
}

func matchesCategory(item Item, category string) bool {
	if strings.TrimSpace(category) == "" || category == FilterAll {
		return true
	}
	return item.Category == category
}

func matchesLocation(item Item, f Filters) bool {
	want := strings.TrimSpace(f.Location)
	if want == "" || want == FilterAll {
		return true
	}
	return i18n.Localize(item.Location, f.Locale) == want
}

func matchesAccessibility(item Item, accessibility string) bool {
	switch accessibility {
	case "", FilterAll:
		return true
	case AccessibleOnly:
		return item.Accessible != nil && *item.Accessible
	case AccessibleExclude:
		return item.Accessible == nil || !*item.Accessible
	}
	return true
}
