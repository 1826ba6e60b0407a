package risk

import (
	"math"
	"testing"

	"StratParse/internal/domain/models"
)

func TestCalculatePositionSizeBasic(t *testing.T) {
	eng := newTestEngine(t)
	got := eng.CalculatePositionSize(models.PositionSizeInput{
		AccountBalance:  10000,
		RiskPerTrade:    0.01,
		StopDistancePct: 2,
	})
	// 10000 * 0.01 / 0.02 = 5000, capped at 10% of balance
	if !got.Capped {
		t.Fatalf("expected cap, got %+v", got)
	}
	if got.Size != 1000 {
		t.Fatalf("expected 1000, got %v", got.Size)
	}
}

func TestCalculatePositionSizeAdjustments(t *testing.T) {
	eng := newTestEngine(t)
	plain := eng.CalculatePositionSize(models.PositionSizeInput{
		AccountBalance:  10000,
		RiskPerTrade:    0.005,
		StopDistancePct: 10,
	})
	if plain.Capped || plain.Size != 500 {
		t.Fatalf("expected uncapped 500, got %+v", plain)
	}

	vol := eng.CalculatePositionSize(models.PositionSizeInput{
		AccountBalance:  10000,
		RiskPerTrade:    0.005,
		StopDistancePct: 10,
		VolatilityRatio: 2.25,
	})
	want := math.Round(500/1.5*100) / 100
	if vol.Size != want {
		t.Fatalf("volatility should divide by sqrt: want %v got %v", want, vol.Size)
	}

	conf := eng.CalculatePositionSize(models.PositionSizeInput{
		AccountBalance:  10000,
		RiskPerTrade:    0.005,
		StopDistancePct: 10,
		Confidence:      0.5,
	})
	if conf.Size != 250 {
		t.Fatalf("low confidence should halve size, got %v", conf.Size)
	}

	corr := eng.CalculatePositionSize(models.PositionSizeInput{
		AccountBalance:  10000,
		RiskPerTrade:    0.005,
		StopDistancePct: 10,
		Correlation:     0.9,
	})
	if corr.Size != 300 {
		t.Fatalf("correlation 0.9 should scale by 0.6, got %v", corr.Size)
	}
}

func TestCalculatePositionSizeInvalid(t *testing.T) {
	eng := newTestEngine(t)
	if got := eng.CalculatePositionSize(models.PositionSizeInput{}); got.Size != 0 {
		t.Fatalf("zero inputs must yield zero size, got %+v", got)
	}
	if got := eng.CalculatePositionSize(models.PositionSizeInput{AccountBalance: -1, RiskPerTrade: 0.01}); got.Size != 0 {
		t.Fatalf("negative balance must yield zero size")
	}
}

func TestCalculateRiskRewardClasses(t *testing.T) {
	eng := newTestEngine(t)
	cases := []struct {
		target float64
		want   models.RiskRewardClass
	}{
		{130, models.RRExcellent},    // ratio 3.0
		{120, models.RRGood},         // ratio 2.0
		{115, models.RRAcceptable},   // ratio 1.5
		{110, models.RRPoor},         // ratio 1.0
		{109, models.RRUnacceptable}, // ratio 0.9
	}
	for _, c := range cases {
		got := eng.CalculateRiskReward(100, 90, c.target, nil)
		if got.Classification != c.want {
			t.Fatalf("target %v: want %s got %s (ratio %v)", c.target, c.want, got.Classification, got.Ratio)
		}
	}
}

func TestCalculateRiskRewardExpectancy(t *testing.T) {
	eng := newTestEngine(t)
	got := eng.CalculateRiskReward(100, 90, 130, nil)
	if got.WinProbability != 0.35 {
		t.Fatalf("excellent class assumes 0.35, got %v", got.WinProbability)
	}
	// 0.35*30 - 0.65*10 = 4.0
	if got.Expectancy != 4.0 {
		t.Fatalf("expected expectancy 4.0, got %v", got.Expectancy)
	}

	wp := 0.6
	explicit := eng.CalculateRiskReward(100, 90, 130, &wp)
	if explicit.WinProbability != 0.6 {
		t.Fatalf("explicit win probability must win, got %v", explicit.WinProbability)
	}

	bad := 1.5
	clamped := eng.CalculateRiskReward(100, 90, 130, &bad)
	if clamped.WinProbability != 0.35 {
		t.Fatalf("out-of-range probability must fall back, got %v", clamped.WinProbability)
	}
}

func TestCalculateRiskRewardZeroRisk(t *testing.T) {
	eng := newTestEngine(t)
	got := eng.CalculateRiskReward(100, 100, 130, nil)
	if got.Classification != models.RRUnacceptable || got.Ratio != 0 {
		t.Fatalf("zero stop distance must be unacceptable, got %+v", got)
	}
}

func TestSuggestRiskComponents(t *testing.T) {
	eng := newTestEngine(t)
	got := eng.SuggestRiskComponents(models.StrategyTrendFollowing, []string{"data_source", "entry_signal"})

	seenRecommended := false
	for _, s := range got {
		if s.Component.ID == "data_source" || s.Component.ID == "entry_signal" {
			t.Fatalf("declared components must not be suggested")
		}
		if !s.Required {
			seenRecommended = true
		} else if seenRecommended {
			t.Fatalf("required suggestions must come first")
		}
	}
	if !seenRecommended {
		t.Fatalf("expected recommended suggestions too")
	}
}

func TestAssessStrategyCompleteness(t *testing.T) {
	eng := newTestEngine(t)
	got := eng.AssessStrategyCompleteness(models.StrategyTrendFollowing, []string{"data_source"})
	if got.Completeness != 17.5 {
		t.Fatalf("expected 17.5, got %v", got.Completeness)
	}
	if len(got.MissingRequired) != 3 {
		t.Fatalf("expected 3 missing required, got %d", len(got.MissingRequired))
	}
	// base low escalated three steps
	if got.RiskLevel != models.RiskVeryHigh {
		t.Fatalf("expected very_high, got %s", got.RiskLevel)
	}
}

func TestAssessStrategyCompletenessFull(t *testing.T) {
	eng := newTestEngine(t)
	got := eng.AssessStrategyCompleteness(models.StrategyTrendFollowing, []string{
		"data_source", "entry_signal", "exit_signal", "stop_loss",
		"trend_filter", "position_sizing", "take_profit",
	})
	if got.Completeness != 100 {
		t.Fatalf("expected 100, got %v", got.Completeness)
	}
	if got.RiskLevel != models.RiskLow {
		t.Fatalf("complete strategy keeps its base risk, got %s", got.RiskLevel)
	}
}
