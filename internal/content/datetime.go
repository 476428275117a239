package content

import (
	"encoding/json"
	"reflect"
	"strconv"
	"strings"
	"time"
)

// stringDateLayouts accepted encodings for string dates, tried in order.
var stringDateLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
	"02/01/2006",
}

// ToEpochMillis normalizes the date encodings found in stored content to
// epoch milliseconds: a timestamp-like map with a numeric "seconds" field,
// a numeric epoch-millis value, a parseable date string, or a time.Time.
// Every date comparison in the system routes through this function.
func ToEpochMillis(value interface{}) (int64, bool) {
	switch v := value.(type) {
	case nil:
		return 0, false
	case time.Time:
		if v.IsZero() {
			return 0, false
		}
		return v.UnixMilli(), true
	case *time.Time:
		if v == nil || v.IsZero() {
			return 0, false
		}
		return v.UnixMilli(), true
	case int:
		return int64(v), true
	case int64:
		return v, true
	case float64:
		return int64(v), true
	case json.Number:
		if f, err := v.Float64(); err == nil {
			return int64(f), true
		}
		return 0, false
	case string:
		return parseStringDate(v)
	case map[string]interface{}:
		return secondsField(v)
	default:
		// named map types arrive here
		rv := reflect.ValueOf(value)
		if rv.IsValid() && rv.Kind() == reflect.Map && rv.Type().Key().Kind() == reflect.String {
			seconds := rv.MapIndex(reflect.ValueOf("seconds"))
			if seconds.IsValid() {
				return secondsField(map[string]interface{}{"seconds": seconds.Interface()})
			}
		}
		return 0, false
	}
}

func secondsField(m map[string]interface{}) (int64, bool) {
	raw, ok := m["seconds"]
	if !ok {
		return 0, false
	}
	switch s := raw.(type) {
	case int:
		return int64(s) * 1000, true
	case int64:
		return s * 1000, true
	case float64:
		return int64(s) * 1000, true
	case json.Number:
		if f, err := s.Float64(); err == nil {
			return int64(f) * 1000, true
		}
	case string:
		if parsed, err := strconv.ParseInt(strings.TrimSpace(s), 10, 64); err == nil {
			return parsed * 1000, true
		}
	}
	return 0, false
}

func parseStringDate(raw string) (int64, bool) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return 0, false
	}
	if millis, err := strconv.ParseInt(trimmed, 10, 64); err == nil {
		return millis, true
	}
	for _, layout := range stringDateLayouts {
		if t, err := time.ParseInLocation(layout, trimmed, time.Local); err == nil {
			return t.UnixMilli(), true
		}
	}
	return 0, false
}
