package ident

import (
	"strings"
	"testing"
	"time"
)

func TestReferenceFormat(t *testing.T) {
	at := time.Date(2024, 1, 31, 12, 0, 0, 0, time.UTC)
	gen := NewDeterministic(at, 1)

	ref := gen.Reference("CASE")

	parts := strings.Split(ref, "-")
	if len(parts) != 3 {
		t.Fatalf("expected 3 parts, got %d in %q", len(parts), ref)
	}
	if parts[0] != "CASE" {
		t.Fatalf("expected CASE prefix, got %q", parts[0])
	}
	if parts[1] != "20240131120000" {
		t.Fatalf("expected timestamp 20240131120000, got %q", parts[1])
	}
	if len(parts[2]) != 6 {
		t.Fatalf("expected 6-char suffix, got %q", parts[2])
	}
}

func TestReferenceUnique(t *testing.T) {
	gen := New()

	seen := make(map[string]bool)
	for i := 0; i < 1000; i++ {
		ref := gen.Reference("CUS")
		if seen[ref] {
			t.Fatalf("duplicate reference %q", ref)
		}
		seen[ref] = true
	}
}

func TestReferenceDeterministic(t *testing.T) {
	at := time.Date(2024, 6, 1, 8, 30, 0, 0, time.UTC)

	a := NewDeterministic(at, 42).Reference("TXN")
	b := NewDeterministic(at, 42).Reference("TXN")
	if a != b {
		t.Fatalf("same seed produced %q and %q", a, b)
	}
}

func TestProviderMessageID(t *testing.T) {
	gen := NewDeterministic(time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC), 7)

	id := gen.ProviderMessageID("wamid")
	if !strings.HasPrefix(id, "wamid.") {
		t.Fatalf("expected wamid. prefix, got %q", id)
	}
	rest := strings.TrimPrefix(id, "wamid.")
	if len(rest) != 26 {
		t.Fatalf("expected 26-char ulid, got %d chars", len(rest))
	}
	if rest != strings.ToLower(rest) {
		t.Fatalf("expected lowercase ulid, got %q", rest)
	}
}

func TestNewIDUnique(t *testing.T) {
	gen := New()

	a := gen.NewID()
	b := gen.NewID()
	if a == b {
		t.Fatalf("NewID returned the same uuid twice: %s", a)
	}
}
