package indicators

import (
	"testing"

	"StratParse/internal/domain/models"
)

func TestGetAndAll(t *testing.T) {
	db := NewDatabase(nil)
	ind, ok := db.Get("RSI")
	if !ok {
		t.Fatalf("expected rsi in catalog")
	}
	if ind.ID != "rsi" || ind.Category != models.CategoryMomentum {
		t.Fatalf("unexpected entry %+v", ind)
	}
	if len(db.All()) < 10 {
		t.Fatalf("catalog too small: %d", len(db.All()))
	}
	if _, ok := db.Get("nope"); ok {
		t.Fatalf("unknown id must miss")
	}
}

func TestSearchIndicators(t *testing.T) {
	db := NewDatabase(nil)
	got := db.SearchIndicators([]string{"momentum"})
	if len(got) == 0 {
		t.Fatalf("expected momentum hits")
	}
	found := false
	for _, ind := range got {
		if ind.ID == "rsi" {
			found = true
		}
	}
	if !found {
		t.Fatalf("rsi should surface for momentum search")
	}
}

func TestGetSuggestionsLevelGap(t *testing.T) {
	db := NewDatabase(nil)
	got := db.GetSuggestions(models.StrategyTrendFollowing, nil, models.DifficultyBeginner, "", "")
	if len(got) == 0 || len(got) > 5 {
		t.Fatalf("expected 1..5 suggestions, got %d", len(got))
	}
	for _, s := range got {
		if s.Indicator.ID == "obv" {
			t.Fatalf("advanced indicator must be rejected for a beginner")
		}
		gap := models.DifficultyRank(s.Indicator.Difficulty)
		if gap == 1 && s.Confidence > 0.7 {
			t.Fatalf("adjacent level must cap confidence at 0.7, got %v", s.Confidence)
		}
	}
	for i := 1; i < len(got); i++ {
		if got[i].Priority > got[i-1].Priority {
			t.Fatalf("suggestions not sorted by priority")
		}
	}
}

func TestGetSuggestionsExcludesExisting(t *testing.T) {
	db := NewDatabase(nil)
	got := db.GetSuggestions(models.StrategyMeanReversion, []string{"RSI"}, models.DifficultyAdvanced, "", "")
	for _, s := range got {
		if s.Indicator.ID == "rsi" {
			t.Fatalf("existing indicator must not be suggested again")
		}
	}
}

func TestRecommendedIDs(t *testing.T) {
	db := NewDatabase(nil)
	ids := db.RecommendedIDs(models.StrategyMeanReversion)
	if len(ids) == 0 || ids[0] != "rsi" {
		t.Fatalf("mean reversion must lead with rsi, got %v", ids)
	}
	if got := db.RecommendedIDs(models.StrategyType("unknown")); len(got) == 0 {
		t.Fatalf("unknown strategy must fall back to the custom seeds")
	}
}

func TestGetParameterOptimizationsScalping(t *testing.T) {
	db := NewDatabase(nil)
	got := db.GetParameterOptimizations("rsi", models.StrategyScalping, map[string]float64{"period": 14}, "")
	if len(got) == 0 {
		t.Fatalf("expected a period adjustment for scalping")
	}
	opt := got[0]
	if opt.Parameter != "period" || opt.Suggested >= opt.Current {
		t.Fatalf("scalping must shorten the period, got %+v", opt)
	}
}

func TestGetParameterOptimizationsNoise(t *testing.T) {
	db := NewDatabase(nil)
	// mean reversion applies no period factor, nothing should be reported
	got := db.GetParameterOptimizations("rsi", models.StrategyMeanReversion, map[string]float64{"period": 14}, "")
	if len(got) != 0 {
		t.Fatalf("expected no adjustments, got %+v", got)
	}
}

func TestAnalyzeSuitability(t *testing.T) {
	db := NewDatabase(nil)
	fit := db.AnalyzeSuitability("rsi", models.StrategyMeanReversion, "ranging", "")
	if !fit.Suitable || fit.Score <= 0.5 {
		t.Fatalf("rsi should suit ranging mean reversion, got %+v", fit)
	}
	misfit := db.AnalyzeSuitability("rsi", models.StrategyTrendFollowing, "trending", "")
	if misfit.Score >= fit.Score {
		t.Fatalf("mean reversion fit should outscore trend fit: %v vs %v", fit.Score, misfit.Score)
	}
}

func TestGetCompatibilityAnalysis(t *testing.T) {
	db := NewDatabase(nil)
	got := db.GetCompatibilityAnalysis([]string{"rsi", "stochastic", "sma"})
	foundIncompatible := false
	for _, pair := range got.Incompatible {
		if (pair.A == "rsi" && pair.B == "stochastic") || (pair.A == "stochastic" && pair.B == "rsi") {
			foundIncompatible = true
		}
	}
	if !foundIncompatible {
		t.Fatalf("rsi+stochastic must be flagged incompatible")
	}
	foundCompatible := false
	for _, pair := range got.Compatible {
		if (pair.A == "rsi" && pair.B == "sma") || (pair.A == "sma" && pair.B == "rsi") {
			foundCompatible = true
		}
	}
	if !foundCompatible {
		t.Fatalf("rsi+sma must be flagged compatible")
	}
}
