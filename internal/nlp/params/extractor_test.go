package params

import (
	"context"
	"testing"

	"StratParse/internal/domain/models"
	"StratParse/internal/nlp/tokenizer"
	"StratParse/internal/nlp/vocabulary"
)

func extract(t *testing.T, text string, indicators ...string) models.ParameterExtraction {
	t.Helper()
	tk := tokenizer.New(vocabulary.NewMatcher(), tokenizer.DefaultConfig(), nil)
	res := tk.Tokenize(text)
	intent := &models.TradingIntent{StrategyType: models.StrategyCustom, Indicators: indicators}
	return NewExtractor(nil).Extract(context.Background(), res, intent)
}

func TestExtractThresholdOversold(t *testing.T) {
	got := extract(t, "buy when rsi is below 30", "rsi")

	pv, ok := got.Parameters["oversoldLevel"]
	if !ok {
		t.Fatalf("expected oversoldLevel, got %v", got.Parameters)
	}
	if pv.Value != 30.0 || pv.Source != models.SourceExplicit {
		t.Fatalf("expected explicit 30, got %+v", pv)
	}
	if len(got.Issues) != 0 {
		t.Fatalf("unexpected issues %v", got.Issues)
	}
}

func TestExtractThresholdOverbought(t *testing.T) {
	got := extract(t, "sell when rsi is above 70", "rsi")
	pv, ok := got.Parameters["overboughtLevel"]
	if !ok || pv.Value != 70.0 {
		t.Fatalf("expected overboughtLevel 70, got %+v", pv)
	}
}

func TestExtractThresholdNonOscillator(t *testing.T) {
	got := extract(t, "enter when volume is above 1000", "volume")
	pv, ok := got.Parameters["threshold"]
	if !ok || pv.Value != 1000.0 {
		t.Fatalf("non-oscillator thresholds stay generic, got %v", got.Parameters)
	}
}

func TestExtractAdjacentPeriod(t *testing.T) {
	got := extract(t, "use a sma 50 crossover", "sma")
	pv, ok := got.Parameters["period"]
	if !ok || pv.Value != 50.0 || pv.Source != models.SourceExplicit {
		t.Fatalf("expected explicit period 50, got %+v", pv)
	}
}

func TestExtractStopLossPercent(t *testing.T) {
	got := extract(t, "set the stop loss at 2%")
	pv, ok := got.Parameters["stopLoss"]
	if !ok || pv.Value != 2.0 {
		t.Fatalf("expected stopLoss 2, got %v", got.Parameters)
	}
	if pv.Type != models.ParamPercent {
		t.Fatalf("stop loss must be a percent parameter, got %s", pv.Type)
	}
}

func TestExtractDefaults(t *testing.T) {
	got := extract(t, "trade with rsi", "rsi")

	for _, name := range []string{"period", "oversoldLevel", "overboughtLevel"} {
		pv, ok := got.Parameters[name]
		if !ok {
			t.Fatalf("expected default %s", name)
		}
		if pv.Source != models.SourceDefault || pv.Confidence != 0.5 {
			t.Fatalf("default %s must carry 0.5 confidence, got %+v", name, pv)
		}
	}
}

func TestExtractContextTimeframe(t *testing.T) {
	got := extract(t, "a swing trade using sma", "sma")
	pv, ok := got.Parameters["timeframe"]
	if !ok || pv.Value != "4h" || pv.Source != models.SourceInferred {
		t.Fatalf("expected inferred 4h, got %+v", pv)
	}
}

func TestExtractExplicitTimeframeWins(t *testing.T) {
	got := extract(t, "a swing trade on the 1h chart", "sma")
	pv := got.Parameters["timeframe"]
	if pv.Value != "1h" || pv.Source != models.SourceExplicit {
		t.Fatalf("explicit timeframe must beat inference, got %+v", pv)
	}
}

func TestValidateValueBounds(t *testing.T) {
	if err := validateValue("period", 200); err != nil {
		t.Fatalf("200 is in range: %v", err)
	}
	if err := validateValue("period", 201); err == nil {
		t.Fatalf("201 must fail")
	}
	if err := validateValue("period", 14.5); err == nil {
		t.Fatalf("fractional period must fail")
	}
	if err := validateValue("stopLoss", 0); err == nil {
		t.Fatalf("stop loss of zero must fail the exclusive bound")
	}
	if err := validateValue("unknown", 1e9); err != nil {
		t.Fatalf("unknown names pass through: %v", err)
	}
}

func TestExtractValidationIssueLowersConfidence(t *testing.T) {
	good := extract(t, "sma 50 strategy", "sma")
	bad := extract(t, "sma 500 strategy", "sma")

	if len(bad.Issues) == 0 {
		t.Fatalf("expected an out-of-range issue")
	}
	if _, ok := bad.Parameters["period"]; !ok {
		t.Fatalf("invalid values are kept, only flagged")
	}
	if bad.Confidence >= good.Confidence {
		t.Fatalf("issues must lower confidence: %v >= %v", bad.Confidence, good.Confidence)
	}
}

func TestCrossChecks(t *testing.T) {
	p := models.StrategyParameters{
		"fastPeriod": {Value: 26.0, Type: models.ParamNumber},
		"slowPeriod": {Value: 12.0, Type: models.ParamNumber},
	}
	issues := crossChecks(p)
	if len(issues) != 1 || issues[0].Name != "fastPeriod" {
		t.Fatalf("expected fastPeriod issue, got %v", issues)
	}

	ok := models.StrategyParameters{
		"fastPeriod": {Value: 12.0, Type: models.ParamNumber},
		"slowPeriod": {Value: 26.0, Type: models.ParamNumber},
	}
	if got := crossChecks(ok); len(got) != 0 {
		t.Fatalf("valid ordering must pass, got %v", got)
	}
}

func TestExtractEmpty(t *testing.T) {
	got := extract(t, "")
	if len(got.Parameters) != 0 || got.Confidence != 0 {
		t.Fatalf("empty input must extract nothing, got %+v", got)
	}
}
