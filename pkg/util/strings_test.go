package util

import "testing"

func TestParseIntDefault(t *testing.T) {
	if got := ParseIntDefault("42", 7); got != 42 {
		t.Fatalf("expected 42, got %d", got)
	}
	if got := ParseIntDefault("", 7); got != 7 {
		t.Fatalf("expected default for empty, got %d", got)
	}
	if got := ParseIntDefault("4.2", 7); got != 7 {
		t.Fatalf("expected default for non-integer, got %d", got)
	}
	if got := ParseIntDefault("-3", 7); got != -3 {
		t.Fatalf("expected -3, got %d", got)
	}
}
