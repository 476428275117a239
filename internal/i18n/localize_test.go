package i18n

import "testing"

func TestNormalizeLocale(t *testing.T) {
	cases := map[string]string{
		"":       "en",
		"en":     "en",
		"EN-us":  "en",
		"el":     "el",
		"el-GR":  "el",
		"gr":     "el",
		"de":     "en",
		" el ":   "el",
		"el_GR":  "el",
		"french": "en",
	}
	for input, want := range cases {
		if got := NormalizeLocale(input); got != want {
			t.Fatalf("NormalizeLocale(%q) want %q got %q", input, want, got)
		}
	}
}

func TestLocalizeMap(t *testing.T) {
	value := map[string]interface{}{"en": "Town Hall", "el": "Δημαρχείο"}
	if got := Localize(value, "el"); got != "Δημαρχείο" {
		t.Fatalf("el want Δημαρχείο got %q", got)
	}
	if got := Localize(value, "en"); got != "Town Hall" {
		t.Fatalf("en want Town Hall got %q", got)
	}
}

func TestLocalizeFallsBackToEnglish(t *testing.T) {
	value := map[string]interface{}{"en": "Town Hall", "el": ""}
	if got := Localize(value, "el"); got != "Town Hall" {
		t.Fatalf("empty el falls back to en, got %q", got)
	}
	if got := Localize(map[string]interface{}{"el": "Δημαρχείο"}, "en"); got != "" {
		t.Fatalf("missing en resolves empty, got %q", got)
	}
}

func TestLocalizePlainStringAndNil(t *testing.T) {
	if got := Localize("legacy value", "el"); got != "legacy value" {
		t.Fatalf("plain string passes through, got %q", got)
	}
	if got := Localize(nil, "en"); got != "" {
		t.Fatalf("nil resolves empty, got %q", got)
	}
	if got := Localize(42, "en"); got != "" {
		t.Fatalf("non-text resolves empty, got %q", got)
	}
}

func TestLocalizeNamedMapType(t *testing.T) {
	type jsonValue map[string]interface{}
	value := jsonValue{"en": "Museum", "el": "Μουσείο"}
	if got := Localize(value, "el"); got != "Μουσείο" {
		t.Fatalf("named map type want Μουσείο got %q", got)
	}
}

func TestMessagesResolveWithFallback(t *testing.T) {
	if got := T("el", "error.not_found"); got == "" {
		t.Fatalf("greek catalog should carry error.not_found")
	}
	en := T("en", "error.not_found")
	if got := T("de", "error.not_found"); got != en {
		t.Fatalf("unknown locale falls back to english: want %q got %q", en, got)
	}
	if got := T("en", "error.never_defined"); got != "error.never_defined" {
		t.Fatalf("unknown key echoes the key, got %q", got)
	}
}

func TestSprintfFormatsArgs(t *testing.T) {
	got := Sprintf("en", "error.password_min_length", 8)
	if got == "" || got == "error.password_min_length" {
		t.Fatalf("formatted message expected, got %q", got)
	}
}
