package intent

import (
	"context"
	"testing"

	"StratParse/internal/domain/models"
	"StratParse/internal/knowledge/patterns"
	"StratParse/internal/nlp/tokenizer"
	"StratParse/internal/nlp/vocabulary"
)

func newTestExtractor() (*Extractor, *tokenizer.Tokenizer) {
	tk := tokenizer.New(vocabulary.NewMatcher(), tokenizer.DefaultConfig(), nil)
	ex := NewExtractor(patterns.NewLibrary(nil), nil)
	return ex, tk
}

func TestExtractMeanReversion(t *testing.T) {
	ex, tk := newTestExtractor()
	res := tk.Tokenize("Create a RSI strategy that buys when RSI is below 30")

	intent, err := ex.Extract(context.Background(), res)
	if err != nil {
		t.Fatalf("extract: %v", err)
	}
	if intent.StrategyType != models.StrategyMeanReversion {
		t.Fatalf("expected mean_reversion, got %s", intent.StrategyType)
	}
	if intent.Confidence <= 0.6 {
		t.Fatalf("expected confidence above 0.6, got %v", intent.Confidence)
	}
	if len(intent.Indicators) != 1 || intent.Indicators[0] != "rsi" {
		t.Fatalf("expected indicators [rsi], got %v", intent.Indicators)
	}
	if len(intent.Actions) == 0 {
		t.Fatalf("expected the buy action to be captured")
	}
	if len(intent.RiskManagement) == 0 {
		t.Fatalf("pattern risk management should backfill an empty list")
	}
}

func TestExtractCanonicalIndicator(t *testing.T) {
	ex, tk := newTestExtractor()
	long := tk.Tokenize("buy when the relative strength index is oversold")
	short := tk.Tokenize("buy when rsi is oversold")

	li, err := ex.Extract(context.Background(), long)
	if err != nil {
		t.Fatalf("extract: %v", err)
	}
	si, err := ex.Extract(context.Background(), short)
	if err != nil {
		t.Fatalf("extract: %v", err)
	}
	if len(li.Indicators) != 1 || li.Indicators[0] != "rsi" {
		t.Fatalf("long form must canonicalize to rsi, got %v", li.Indicators)
	}
	if li.StrategyType != si.StrategyType {
		t.Fatalf("synonym and id forms must classify alike: %s vs %s", li.StrategyType, si.StrategyType)
	}
}

func TestExtractCueStrategies(t *testing.T) {
	ex, tk := newTestExtractor()
	cases := []struct {
		text string
		want models.StrategyType
	}{
		{"build me a scalping setup on the 1m chart", models.StrategyScalping},
		{"an arbitrage play on the exchange spread", models.StrategyArbitrage},
	}
	for _, c := range cases {
		res := tk.Tokenize(c.text)
		intent, err := ex.Extract(context.Background(), res)
		if err != nil {
			t.Fatalf("extract %q: %v", c.text, err)
		}
		if intent.StrategyType != c.want {
			t.Fatalf("%q: expected %s, got %s", c.text, c.want, intent.StrategyType)
		}
	}
}

func TestExtractCustomFallback(t *testing.T) {
	ex, tk := newTestExtractor()
	res := tk.Tokenize("please make me some money somehow")

	intent, err := ex.Extract(context.Background(), res)
	if err != nil {
		t.Fatalf("extract: %v", err)
	}
	if intent.StrategyType != models.StrategyCustom {
		t.Fatalf("no evidence must classify custom, got %s", intent.StrategyType)
	}
	if intent.Confidence >= 0.5 {
		t.Fatalf("vague input must score low, got %v", intent.Confidence)
	}
	if len(intent.Actions) == 0 {
		t.Fatalf("defaults must fill actions")
	}
}

func TestExtractNoActionWordsScoresLower(t *testing.T) {
	ex, tk := newTestExtractor()
	bare := tk.Tokenize("rsi oversold reversal")
	acted := tk.Tokenize("buy the rsi oversold reversal")

	bi, err := ex.Extract(context.Background(), bare)
	if err != nil {
		t.Fatalf("extract: %v", err)
	}
	ai, err := ex.Extract(context.Background(), acted)
	if err != nil {
		t.Fatalf("extract: %v", err)
	}
	if len(bi.Actions) == 0 {
		t.Fatalf("defaults must still fill actions")
	}
	if bi.Confidence >= 1 {
		t.Fatalf("input without action words must not score full confidence, got %v", bi.Confidence)
	}
	if bi.Confidence >= ai.Confidence {
		t.Fatalf("explicit action must score higher: %v vs %v", ai.Confidence, bi.Confidence)
	}
}

func TestExtractTimeframeAndSymbol(t *testing.T) {
	ex, tk := newTestExtractor()
	res := tk.Tokenize("buy ETH when macd crosses above the signal on the 4h")

	intent, err := ex.Extract(context.Background(), res)
	if err != nil {
		t.Fatalf("extract: %v", err)
	}
	if intent.Timeframe != "4h" {
		t.Fatalf("expected timeframe 4h, got %q", intent.Timeframe)
	}
	if intent.Symbol != "ETH" {
		t.Fatalf("expected symbol ETH, got %q", intent.Symbol)
	}
}

func TestExtractRiskTerms(t *testing.T) {
	ex, tk := newTestExtractor()
	res := tk.Tokenize("buy breakouts with a stop loss and take profit")

	intent, err := ex.Extract(context.Background(), res)
	if err != nil {
		t.Fatalf("extract: %v", err)
	}
	if len(intent.RiskManagement) < 2 {
		t.Fatalf("expected stop loss and take profit captured, got %v", intent.RiskManagement)
	}
}

func TestScoreConfidenceBounds(t *testing.T) {
	ex, tk := newTestExtractor()
	for _, in := range []string{"", "buy", "macd rsi bollinger crossover breakout buy sell stop loss on the 1h"} {
		res := tk.Tokenize(in)
		intent, err := ex.Extract(context.Background(), res)
		if err != nil {
			t.Fatalf("extract %q: %v", in, err)
		}
		if intent.Confidence < 0 || intent.Confidence > 1 {
			t.Fatalf("confidence out of range for %q: %v", in, intent.Confidence)
		}
	}
}
