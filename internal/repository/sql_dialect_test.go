package repository

import (
	"strings"
	"testing"
)

func TestJSONTextExprByDialectSQLite(t *testing.T) {
	got := jsonTextExprByDialect("sqlite", "title_json", "el")
	want := "json_extract(title_json, '$.\"el\"')"
	if got != want {
		t.Fatalf("sqlite json expr mismatch, want %s got %s", want, got)
	}
}

func TestJSONTextExprByDialectPostgres(t *testing.T) {
	got := jsonTextExprByDialect("postgres", "title_json", "el")
	want := "(title_json::jsonb ->> 'el')"
	if got != want {
		t.Fatalf("postgres json expr mismatch, want %s got %s", want, got)
	}
}

func TestBuildLocalizedLikeCondition(t *testing.T) {
	condition, argCount := buildLocalizedLikeCondition(nil, []string{"slug"}, []string{"title_json", "excerpt_json"})
	if argCount != 5 {
		t.Fatalf("arg count want 5 got %d", argCount)
	}
	if !strings.Contains(condition, "slug LIKE ?") {
		t.Fatalf("condition should contain slug LIKE, got %s", condition)
	}
	if !strings.Contains(condition, "json_extract(title_json, '$.\"en\"') LIKE ?") {
		t.Fatalf("condition should contain title en LIKE, got %s", condition)
	}
	if !strings.Contains(condition, "json_extract(excerpt_json, '$.\"el\"') LIKE ?") {
		t.Fatalf("condition should contain excerpt el LIKE, got %s", condition)
	}
}

func TestBuildLocalizedLikeConditionPostgresOperator(t *testing.T) {
	condition, _ := buildLocalizedLikeConditionByDialect("postgres", []string{"slug"}, nil)
	if !strings.Contains(condition, "slug ILIKE ?") {
		t.Fatalf("postgres condition should use ILIKE, got %s", condition)
	}
}

func TestRepeatLikeArgs(t *testing.T) {
	args := repeatLikeArgs("%test%", 3)
	if len(args) != 3 {
		t.Fatalf("args len want 3 got %d", len(args))
	}
	for idx, arg := range args {
		if arg != "%test%" {
			t.Fatalf("args[%d] want %%test%% got %v", idx, arg)
		}
	}
}
