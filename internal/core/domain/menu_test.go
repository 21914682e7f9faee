package domain

import (
	"errors"
	"testing"
)

func TestMenuConfiguration_Normalize_SortsAndCloses(t *testing.T) {
	cfg := MenuConfiguration{Items: []MenuItem{
		{ID: "c", Order: 9},
		{ID: "a", Order: 2},
		{ID: "b", Order: 2},
		{ID: "d", Order: -4},
	}}

	cfg.Normalize()

	want := []string{"d", "a", "b", "c"}
	for i, id := range want {
		if cfg.Items[i].ID != id {
			t.Fatalf("position %d: expected %s, got %s", i, id, cfg.Items[i].ID)
		}
		if cfg.Items[i].Order != i+1 {
			t.Fatalf("position %d: expected order %d, got %d", i, i+1, cfg.Items[i].Order)
		}
	}
}

func TestMenuConfiguration_CloneIsIndependent(t *testing.T) {
	src := MenuConfiguration{ID: "x", Items: []MenuItem{{ID: "tasks", Label: "Tasks"}}}
	cp := src.Clone()
	cp.Items[0].Label = "changed"

	if src.Items[0].Label != "Tasks" {
		t.Fatalf("expected source untouched, got %q", src.Items[0].Label)
	}
}

func TestMenuConfiguration_CheckItemIDs(t *testing.T) {
	cfg := MenuConfiguration{Items: []MenuItem{{ID: "a"}, {ID: "a"}}}

	err := cfg.CheckItemIDs()
	if !errors.Is(err, ErrValidation) {
		t.Fatalf("expected ErrValidation, got %v", err)
	}
	var ve *ValidationError
	if !errors.As(err, &ve) || ve.Field != "items" {
		t.Fatalf("expected field items, got %v", err)
	}
}

func TestFeatureFlags_Suppresses(t *testing.T) {
	flags := AllEnabled()
	flags[FeatureExams] = false

	if !flags.Suppresses("exams") {
		t.Fatalf("expected exams suppressed")
	}
	if flags.Suppresses("tasks") {
		t.Fatalf("expected tasks to pass")
	}
	if flags.Suppresses("reports") {
		t.Fatalf("expected ids without a flag key to pass")
	}
}

func TestParseIcon(t *testing.T) {
	if i, err := ParseIcon(""); err != nil || i != IconFallback {
		t.Fatalf("expected fallback for empty ref, got %v %v", i, err)
	}
	if _, err := ParseIcon("Unicorn"); !errors.Is(err, ErrValidation) {
		t.Fatalf("expected ErrValidation, got %v", err)
	}
	if Icon("Unicorn").Glyph() != "circle" {
		t.Fatalf("expected fallback glyph")
	}
	if IconMail.Glyph() != "mail" {
		t.Fatalf("expected mail glyph, got %s", IconMail.Glyph())
	}
}

func TestParseRole(t *testing.T) {
	if r, err := ParseRole("custom"); err != nil || r != RoleCustom {
		t.Fatalf("expected custom, got %v %v", r, err)
	}
	if _, err := ParseRole("guest"); !errors.Is(err, ErrInvalidRole) {
		t.Fatalf("expected ErrInvalidRole, got %v", err)
	}
	if RoleCustom.IsUserRole() {
		t.Fatalf("custom must not be a user role")
	}
}
