package i18n

import (
	"reflect"
	"strings"
)

// Localize resolves a bilingual content value to display text.
//
// A value is either a plain string (legacy content, returned as-is) or a
// map with "en"/"el" keys. A missing or empty key falls back to English,
// and an empty English value yields "". Never panics; nil resolves to "".
func Localize(value interface{}, locale string) string {
	switch v := value.(type) {
	case nil:
		return ""
	case string:
		return v
	case map[string]interface{}:
		return localizeMap(v, locale)
	case map[string]string:
		m := make(map[string]interface{}, len(v))
		for k, s := range v {
			m[k] = s
		}
		return localizeMap(m, locale)
	default:
		// named map types (e.g. the models JSON column type) arrive here
		if m := stringKeyMap(value); m != nil {
			return localizeMap(m, locale)
		}
		return ""
	}
}

func stringKeyMap(value interface{}) map[string]interface{} {
	rv := reflect.ValueOf(value)
	if !rv.IsValid() || rv.Kind() != reflect.Map || rv.Type().Key().Kind() != reflect.String {
		return nil
	}
	m := make(map[string]interface{}, rv.Len())
	for _, key := range rv.MapKeys() {
		m[key.String()] = rv.MapIndex(key).Interface()
	}
	return m
}

func localizeMap(m map[string]interface{}, locale string) string {
	locale = NormalizeLocale(locale)
	if s := stringValue(m[locale]); s != "" {
		return s
	}
	return stringValue(m[LocaleEN])
}

func stringValue(v interface{}) string {
	s, _ := v.(string)
	return strings.TrimSpace(s)
}
