package service

import "testing"

func TestNormalizeAppearanceDropsUnknownKeys(t *testing.T) {
	normalized := normalizeAppearanceSetting(map[string]interface{}{
		"show_hero":     false,
		"injected_key":  "evil",
		"primary_color": "#112233",
	})
	if _, exists := normalized["injected_key"]; exists {
		t.Fatalf("unknown keys must be dropped")
	}
	if normalized[AppearanceFieldShowHero] != false {
		t.Fatalf("show_hero override lost")
	}
	if normalized[AppearanceFieldPrimaryColor] != "#112233" {
		t.Fatalf("primary_color want #112233 got %v", normalized[AppearanceFieldPrimaryColor])
	}
}

func TestNormalizeAppearanceHexColorFallback(t *testing.T) {
	defaults := DefaultAppearanceSetting()
	cases := map[string]string{
		"#abc":     "#abc",
		"#AABBCC":  "#aabbcc",
		" #abc ":   "#abc",
		"abc":      defaults[AppearanceFieldPrimaryColor].(string),
		"#abcd":    defaults[AppearanceFieldPrimaryColor].(string),
		"#gghhii":  defaults[AppearanceFieldPrimaryColor].(string),
		"red":      defaults[AppearanceFieldPrimaryColor].(string),
		"":         defaults[AppearanceFieldPrimaryColor].(string),
	}
	for input, want := range cases {
		normalized := normalizeAppearanceSetting(map[string]interface{}{
			AppearanceFieldPrimaryColor: input,
		})
		if got := normalized[AppearanceFieldPrimaryColor]; got != want {
			t.Fatalf("color %q want %q got %v", input, want, got)
		}
	}
}

func TestNormalizeAppearanceBoolParsing(t *testing.T) {
	cases := []struct {
		raw  interface{}
		want bool
	}{
		{true, true},
		{false, false},
		{"true", true},
		{"FALSE", false},
		{"1", true},
		{"0", false},
		{"on", true},
		{"off", false},
		{float64(1), true},
		{float64(0), false},
		{"maybe", true}, // unparseable falls back to the default (visible)
		{nil, true},
	}
	for _, tc := range cases {
		normalized := normalizeAppearanceSetting(map[string]interface{}{
			AppearanceFieldShowNavbar: tc.raw,
		})
		if got := normalized[AppearanceFieldShowNavbar]; got != tc.want {
			t.Fatalf("bool %v want %v got %v", tc.raw, tc.want, got)
		}
	}
}

func TestNormalizeAppearanceFooterText(t *testing.T) {
	normalized := normalizeAppearanceSetting(map[string]interface{}{
		AppearanceFieldFooterTextJSON: map[string]interface{}{
			"en": " Town of Amathounta ",
			"el": "Δήμος Αμαθούντας",
			"fr": "dropped",
		},
	})
	footer, ok := normalized[AppearanceFieldFooterTextJSON].(map[string]interface{})
	if !ok {
		t.Fatalf("footer_text must normalize to a map, got %T", normalized[AppearanceFieldFooterTextJSON])
	}
	if footer["en"] != "Town of Amathounta" || footer["el"] != "Δήμος Αμαθούντας" {
		t.Fatalf("footer text trimmed per language, got %v", footer)
	}
	if _, exists := footer["fr"]; exists {
		t.Fatalf("unsupported languages must be dropped")
	}

	// malformed payloads still yield the empty bilingual shape
	normalized = normalizeAppearanceSetting(map[string]interface{}{
		AppearanceFieldFooterTextJSON: "plain string",
	})
	footer = normalized[AppearanceFieldFooterTextJSON].(map[string]interface{})
	if footer["en"] != "" || footer["el"] != "" {
		t.Fatalf("malformed footer_text resets to empty, got %v", footer)
	}
}

func TestNormalizeAppearanceURLFields(t *testing.T) {
	normalized := normalizeAppearanceSetting(map[string]interface{}{
		AppearanceFieldHeroImageURL: " /uploads/hero.jpg ",
		AppearanceFieldLogoURL:      42,
	})
	if normalized[AppearanceFieldHeroImageURL] != "/uploads/hero.jpg" {
		t.Fatalf("hero url trimmed, got %v", normalized[AppearanceFieldHeroImageURL])
	}
	if normalized[AppearanceFieldLogoURL] != "" {
		t.Fatalf("non-string url resets to empty, got %v", normalized[AppearanceFieldLogoURL])
	}
}
