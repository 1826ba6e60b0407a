package vocabulary

import (
	"testing"

	"StratParse/internal/domain/models"
)

func TestFindMatchCanonical(t *testing.T) {
	m := NewMatcher()
	got := m.FindMatch("rsi")
	if got == nil {
		t.Fatalf("expected match for rsi")
	}
	if got.Entry.TokenType != models.TokenIndicator {
		t.Fatalf("unexpected token type %s", got.Entry.TokenType)
	}
	if got.Entry.CanonicalID() != "rsi" {
		t.Fatalf("unexpected id %s", got.Entry.CanonicalID())
	}
	if got.Confidence != got.Entry.Confidence {
		t.Fatalf("canonical match must carry entry confidence, got %v", got.Confidence)
	}
}

func TestFindMatchSynonym(t *testing.T) {
	m := NewMatcher()
	got := m.FindMatch("relative strength index")
	if got == nil {
		t.Fatalf("expected synonym match")
	}
	if got.Entry.CanonicalID() != "rsi" {
		t.Fatalf("synonym must resolve to rsi, got %s", got.Entry.CanonicalID())
	}
}

func TestFindMatchCaseInsensitive(t *testing.T) {
	m := NewMatcher()
	got := m.FindMatch("  MACD ")
	if got == nil || got.Entry.CanonicalID() != "macd" {
		t.Fatalf("expected macd match, got %+v", got)
	}
}

func TestFindMatchOverlapFallback(t *testing.T) {
	m := NewMatcher()
	// "bollinger band" is a synonym; "bollinger bands" canonical. A close
	// containing form should still resolve with scaled confidence.
	got := m.FindMatch("bollinger ban")
	if got == nil {
		t.Fatalf("expected overlap match")
	}
	if got.Entry.CanonicalID() != "bollinger" {
		t.Fatalf("unexpected id %s", got.Entry.CanonicalID())
	}
	if got.Confidence >= got.Entry.Confidence {
		t.Fatalf("overlap match must scale confidence down, got %v", got.Confidence)
	}
}

func TestFindMatchUnknown(t *testing.T) {
	m := NewMatcher()
	if got := m.FindMatch("zzz"); got != nil {
		t.Fatalf("expected nil for unknown term, got %+v", got)
	}
	if got := m.FindMatch(""); got != nil {
		t.Fatalf("expected nil for empty term")
	}
}

func TestFindByTokenType(t *testing.T) {
	m := NewMatcher()
	actions := m.FindByTokenType(models.TokenAction)
	if len(actions) == 0 {
		t.Fatalf("expected action entries")
	}
	for _, e := range actions {
		if e.TokenType != models.TokenAction {
			t.Fatalf("entry %s has type %s", e.Canonical, e.TokenType)
		}
	}
}

func TestMultiWordTerms(t *testing.T) {
	m := NewMatcher()
	terms := m.MultiWordTerms()
	found := false
	for _, term := range terms {
		if term == "relative strength index" {
			found = true
		}
	}
	if !found {
		t.Fatalf("multi-word terms must include synonyms")
	}
}
