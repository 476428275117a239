package service

import (
	"errors"
	"testing"

	"github.com/Shahwaiz-Dev/Dimo-amathountas-sub000/internal/config"
)

func TestValidatePasswordDisabledPolicy(t *testing.T) {
	if err := validatePassword(config.PasswordPolicyConfig{}, "x"); err != nil {
		t.Fatalf("empty policy accepts anything, got %v", err)
	}
}

func TestValidatePasswordMinLength(t *testing.T) {
	policy := config.PasswordPolicyConfig{MinLength: 8}

	err := validatePassword(policy, "short")
	if !errors.Is(err, ErrWeakPassword) {
		t.Fatalf("want ErrWeakPassword got %v", err)
	}

	var policyErr interface {
		Key() string
		Args() []interface{}
	}
	if !errors.As(err, &policyErr) {
		t.Fatalf("policy error must expose a message key")
	}
	if policyErr.Key() != "error.password_min_length" {
		t.Fatalf("key want error.password_min_length got %s", policyErr.Key())
	}
	if len(policyErr.Args()) != 1 || policyErr.Args()[0] != 8 {
		t.Fatalf("args want [8] got %v", policyErr.Args())
	}

	if err := validatePassword(policy, "longenough"); err != nil {
		t.Fatalf("long password passes, got %v", err)
	}
	// length counts runes, not bytes
	if err := validatePassword(policy, "κωδικός8"); err != nil {
		t.Fatalf("8-rune greek password passes, got %v", err)
	}
}

func TestValidatePasswordCharacterClasses(t *testing.T) {
	policy := config.PasswordPolicyConfig{
		RequireUpper:   true,
		RequireLower:   true,
		RequireNumber:  true,
		RequireSpecial: true,
	}

	cases := map[string]string{
		"lower1!": "error.password_require_upper",
		"UPPER1!": "error.password_require_lower",
		"Upper!!": "error.password_require_number",
		"Upper11": "error.password_require_special",
	}
	for password, wantKey := range cases {
		err := validatePassword(policy, password)
		if !errors.Is(err, ErrWeakPassword) {
			t.Fatalf("%q: want ErrWeakPassword got %v", password, err)
		}
		var policyErr interface{ Key() string }
		if !errors.As(err, &policyErr) || policyErr.Key() != wantKey {
			t.Fatalf("%q: key want %s got %v", password, wantKey, err)
		}
	}

	if err := validatePassword(policy, "Upper1!"); err != nil {
		t.Fatalf("all classes present passes, got %v", err)
	}
}
