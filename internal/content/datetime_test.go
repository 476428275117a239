package content

import (
	"encoding/json"
	"testing"
	"time"
)

func TestToEpochMillisSecondsObject(t *testing.T) {
	millis, ok := ToEpochMillis(map[string]interface{}{"seconds": float64(1700000000)})
	if !ok {
		t.Fatalf("seconds object should resolve")
	}
	if millis != 1700000000000 {
		t.Fatalf("millis want 1700000000000 got %d", millis)
	}
}

func TestToEpochMillisSecondsString(t *testing.T) {
	millis, ok := ToEpochMillis(map[string]interface{}{"seconds": " 1700000000 "})
	if !ok || millis != 1700000000000 {
		t.Fatalf("string seconds want 1700000000000 got %d ok=%v", millis, ok)
	}
}

func TestToEpochMillisNamedMap(t *testing.T) {
	type timestamp map[string]interface{}
	millis, ok := ToEpochMillis(timestamp{"seconds": int64(1700000000)})
	if !ok || millis != 1700000000000 {
		t.Fatalf("named map want 1700000000000 got %d ok=%v", millis, ok)
	}
}

func TestToEpochMillisNumeric(t *testing.T) {
	millis, ok := ToEpochMillis(float64(1700000000000))
	if !ok || millis != 1700000000000 {
		t.Fatalf("numeric want 1700000000000 got %d ok=%v", millis, ok)
	}
	millis, ok = ToEpochMillis(json.Number("1700000000000"))
	if !ok || millis != 1700000000000 {
		t.Fatalf("json.Number want 1700000000000 got %d ok=%v", millis, ok)
	}
}

func TestToEpochMillisStringDate(t *testing.T) {
	millis, ok := ToEpochMillis("2024-03-01T12:00:00Z")
	if !ok {
		t.Fatalf("RFC3339 string should resolve")
	}
	want := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC).UnixMilli()
	if millis != want {
		t.Fatalf("millis want %d got %d", want, millis)
	}

	if _, ok := ToEpochMillis("2024-03-01"); !ok {
		t.Fatalf("date-only string should resolve")
	}
	if _, ok := ToEpochMillis("not a date"); ok {
		t.Fatalf("garbage string should not resolve")
	}
}

func TestToEpochMillisTime(t *testing.T) {
	at := time.Date(2024, 6, 1, 9, 30, 0, 0, time.UTC)
	millis, ok := ToEpochMillis(at)
	if !ok || millis != at.UnixMilli() {
		t.Fatalf("time.Time want %d got %d ok=%v", at.UnixMilli(), millis, ok)
	}
	millis, ok = ToEpochMillis(&at)
	if !ok || millis != at.UnixMilli() {
		t.Fatalf("*time.Time want %d got %d ok=%v", at.UnixMilli(), millis, ok)
	}

	var nilTime *time.Time
	if _, ok := ToEpochMillis(nilTime); ok {
		t.Fatalf("nil *time.Time should not resolve")
	}
}

func TestToEpochMillisAbsent(t *testing.T) {
	if _, ok := ToEpochMillis(nil); ok {
		t.Fatalf("nil should not resolve")
	}
	if _, ok := ToEpochMillis(""); ok {
		t.Fatalf("empty string should not resolve")
	}
	if _, ok := ToEpochMillis(map[string]interface{}{"nanos": 5}); ok {
		t.Fatalf("map without seconds should not resolve")
	}
}

func TestDateAbsent(t *testing.T) {
	if !DateAbsent(nil) {
		t.Fatalf("nil is absent")
	}
	if !DateAbsent("  ") {
		t.Fatalf("blank string is absent")
	}
	var nilTime *time.Time
	if !DateAbsent(nilTime) {
		t.Fatalf("nil *time.Time is absent")
	}
	if DateAbsent("garbage") {
		t.Fatalf("non-empty string is present, even if unresolvable")
	}
	if DateAbsent(map[string]interface{}{"seconds": "x"}) {
		t.Fatalf("map value is present")
	}
}
