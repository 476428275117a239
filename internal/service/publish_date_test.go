package service

import (
	"errors"
	"testing"
	"time"
)

func TestResolvePublishDateAbsent(t *testing.T) {
	now := time.Now()

	for _, raw := range []interface{}{nil, "", "   "} {
		date, scheduled, err := resolvePublishDate(raw, now)
		if err != nil {
			t.Fatalf("absent date must not error: %v", err)
		}
		if date != nil || scheduled {
			t.Fatalf("absent date publishes immediately, got date=%v scheduled=%v", date, scheduled)
		}
	}
}

func TestResolvePublishDateFuture(t *testing.T) {
	now := time.Now()
	future := now.Add(2 * time.Hour)

	date, scheduled, err := resolvePublishDate(&future, now)
	if err != nil {
		t.Fatalf("future date must not error: %v", err)
	}
	if date == nil || !scheduled {
		t.Fatalf("future date defers publication, got date=%v scheduled=%v", date, scheduled)
	}
	if !date.Equal(future.Truncate(time.Millisecond)) {
		t.Fatalf("date want %v got %v", future, *date)
	}
}

func TestResolvePublishDateRecentPast(t *testing.T) {
	now := time.Now()
	past := now.Add(-time.Hour)

	date, scheduled, err := resolvePublishDate(&past, now)
	if err != nil {
		t.Fatalf("recent past date must not error: %v", err)
	}
	if date == nil || scheduled {
		t.Fatalf("recent past date publishes now, got date=%v scheduled=%v", date, scheduled)
	}
}

func TestResolvePublishDateTooOld(t *testing.T) {
	now := time.Now()
	stale := now.Add(-25 * time.Hour)

	_, _, err := resolvePublishDate(&stale, now)
	if !errors.Is(err, ErrPublishDateTooOld) {
		t.Fatalf("want ErrPublishDateTooOld got %v", err)
	}
}

func TestResolvePublishDateUnresolvable(t *testing.T) {
	now := time.Now()

	_, _, err := resolvePublishDate("not a date", now)
	if !errors.Is(err, ErrInvalidPublishDate) {
		t.Fatalf("want ErrInvalidPublishDate got %v", err)
	}
	_, _, err = resolvePublishDate(map[string]interface{}{"seconds": "x"}, now)
	if !errors.Is(err, ErrInvalidPublishDate) {
		t.Fatalf("map with bad seconds want ErrInvalidPublishDate got %v", err)
	}
}

func TestResolvePublishDateSecondsObject(t *testing.T) {
	now := time.Now()
	at := now.Add(3 * time.Hour)

	date, scheduled, err := resolvePublishDate(map[string]interface{}{"seconds": float64(at.Unix())}, now)
	if err != nil {
		t.Fatalf("seconds object must not error: %v", err)
	}
	if date == nil || !scheduled {
		t.Fatalf("future seconds object defers publication, got date=%v scheduled=%v", date, scheduled)
	}
}

func TestSlicePage(t *testing.T) {
	cases := []struct {
		name                     string
		total, page, pageSize    int
		wantStart, wantEnd       int
	}{
		{"first page", 10, 1, 3, 0, 3},
		{"middle page", 10, 2, 3, 3, 6},
		{"last partial page", 10, 4, 3, 9, 10},
		{"past the end", 10, 5, 3, 10, 10},
		{"page below one clamps", 10, 0, 3, 0, 3},
		{"pagination disabled", 10, 1, 0, 0, 10},
		{"empty slice", 0, 1, 5, 0, 0},
	}
	for _, tc := range cases {
		start, end := slicePage(tc.total, tc.page, tc.pageSize)
		if start != tc.wantStart || end != tc.wantEnd {
			t.Fatalf("%s: want [%d,%d) got [%d,%d)", tc.name, tc.wantStart, tc.wantEnd, start, end)
		}
	}
}
