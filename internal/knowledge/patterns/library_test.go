package patterns

import (
	"context"
	"testing"

	"StratParse/internal/domain/models"
)

func TestFindMatchesMeanReversion(t *testing.T) {
	l := NewLibrary(nil)
	matches := l.FindMatches(context.Background(),
		[]string{"rsi", "oversold", "reversion"},
		[]string{"rsi"},
		nil,
		models.PatternFilter{},
	)
	if len(matches) == 0 {
		t.Fatalf("expected matches")
	}
	top := matches[0]
	if top.StrategyType != models.StrategyMeanReversion {
		t.Fatalf("expected mean_reversion, got %s", top.StrategyType)
	}
	if top.Pattern.ID != "rsi_oversold_overbought" {
		t.Fatalf("unexpected top pattern %s", top.Pattern.ID)
	}
	if top.Confidence <= 0.3 || top.Confidence > 1 {
		t.Fatalf("confidence out of range: %v", top.Confidence)
	}
	for i := 1; i < len(matches); i++ {
		if matches[i].Confidence > matches[i-1].Confidence {
			t.Fatalf("matches not sorted descending")
		}
	}
}

func TestFindMatchesNoEvidence(t *testing.T) {
	l := NewLibrary(nil)
	matches := l.FindMatches(context.Background(),
		[]string{"hello", "world"}, nil, nil, models.PatternFilter{})
	if len(matches) != 0 {
		t.Fatalf("expected no matches, got %d", len(matches))
	}
}

func TestFindMatchesShortWordsIgnored(t *testing.T) {
	l := NewLibrary(nil)
	// articles and stray letters must not hit pattern terms by substring
	matches := l.FindMatches(context.Background(),
		[]string{"a", "is", "on"}, nil, nil, models.PatternFilter{})
	if len(matches) != 0 {
		t.Fatalf("short words must not match, got %d matches", len(matches))
	}
}

func TestFindMatchesCachedReordered(t *testing.T) {
	l := NewLibrary(nil)
	ctx := context.Background()

	first := l.FindMatches(ctx, []string{"oversold", "rsi"}, []string{"rsi"}, nil, models.PatternFilter{})
	second := l.FindMatches(ctx, []string{"rsi", "oversold"}, []string{"rsi"}, nil, models.PatternFilter{})

	if len(first) != len(second) {
		t.Fatalf("reordered inputs must hit the same cache entry: %d vs %d", len(first), len(second))
	}
	for i := range first {
		if first[i].Pattern.ID != second[i].Pattern.ID || first[i].Confidence != second[i].Confidence {
			t.Fatalf("cached result mismatch at %d", i)
		}
	}
}

func TestFindMatchesFilter(t *testing.T) {
	l := NewLibrary(nil)
	ctx := context.Background()

	all := l.FindMatches(ctx, []string{"rsi", "oversold", "reversion"}, []string{"rsi"}, nil, models.PatternFilter{})
	filtered := l.FindMatches(ctx, []string{"rsi", "oversold", "reversion"}, []string{"rsi"}, nil,
		models.PatternFilter{Difficulty: models.DifficultyBeginner})

	if len(filtered) > len(all) {
		t.Fatalf("filter must narrow results")
	}
	for _, m := range filtered {
		if m.Pattern.Difficulty != models.DifficultyBeginner {
			t.Fatalf("filter leaked difficulty %s", m.Pattern.Difficulty)
		}
	}
}

func TestPatternsForStrategy(t *testing.T) {
	l := NewLibrary(nil)
	ps := l.PatternsForStrategy(models.StrategyMeanReversion)
	if len(ps) == 0 {
		t.Fatalf("expected mean reversion table")
	}
	if got := l.PatternsForStrategy(models.StrategyScalping); got != nil {
		t.Fatalf("no table expected for scalping, got %d", len(got))
	}
}

func TestMatcherRatioWeights(t *testing.T) {
	table := []models.TradingPattern{{
		ID:              "p1",
		Keywords:        []string{"alpha", "beta"},
		Indicators:      []string{"rsi"},
		EntryConditions: []string{"cond"},
	}}
	m := NewMatcher(models.StrategyCustom, table)

	got := m.FindMatches([]string{"alpha", "beta"}, []string{"rsi"}, []string{"cond"})
	if len(got) != 1 {
		t.Fatalf("expected one match")
	}
	if got[0].Confidence != 1.0 {
		t.Fatalf("full overlap must score 1.0, got %v", got[0].Confidence)
	}

	got = m.FindMatches([]string{"alpha"}, nil, nil)
	// 0.4 * 1/2 keyword ratio only
	if len(got) != 0 {
		t.Fatalf("0.2 score must be cut by the 0.3 floor, got %v", got[0].Confidence)
	}
}
