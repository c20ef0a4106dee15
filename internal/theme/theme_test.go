package theme

import (
	"testing"

	"github.com/atomicstack/hero-slider/internal/catalog"
)

func TestBlendEndpoints(t *testing.T) {
	if got := Blend("#ffffff", "#000000", 0); got != "#ffffff" {
		t.Fatalf("amount 0: got %s", got)
	}
	if got := Blend("#ffffff", "#000000", 1); got != "#000000" {
		t.Fatalf("amount 1: got %s", got)
	}
}

func TestBlendInvalidInputIsReturnedUnchanged(t *testing.T) {
	if got := Blend("gold", "#000000", 0.5); got != "gold" {
		t.Fatalf("expected passthrough, got %s", got)
	}
}

func TestForItemKeepsAccent(t *testing.T) {
	item := catalog.Default().At(1)
	s := ForItem(item.Theme)
	if s.Accent != item.Theme.Accent {
		t.Fatalf("expected accent %s, got %s", item.Theme.Accent, s.Accent)
	}
	if s.Title.Render("X") == "" {
		t.Fatalf("expected rendered title")
	}
}
