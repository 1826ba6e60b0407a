package usecase

import (
	"context"
	"errors"
	"strings"
	"testing"

	"StratParse/internal/domain/models"
	"StratParse/internal/knowledge"
	"StratParse/internal/knowledge/indicators"
	"StratParse/internal/knowledge/patterns"
	"StratParse/internal/knowledge/risk"
	"StratParse/internal/nlp/conversation"
	"StratParse/internal/nlp/intent"
	"StratParse/internal/nlp/params"
	"StratParse/internal/nlp/tokenizer"
	"StratParse/internal/nlp/vocabulary"
)

func newTestProcessor(t *testing.T, cfg Config) *Processor {
	t.Helper()
	lib := patterns.NewLibrary(nil)
	eng, err := risk.NewEngine(nil)
	if err != nil {
		t.Fatalf("risk engine: %v", err)
	}
	kb := knowledge.NewBase(lib, indicators.NewDatabase(nil), eng, nil)
	return NewProcessor(
		tokenizer.New(vocabulary.NewMatcher(), tokenizer.DefaultConfig(), nil),
		intent.NewExtractor(lib, nil),
		params.NewExtractor(nil),
		conversation.NewEngine(nil),
		eng,
		kb,
		cfg,
		nil,
		nil,
	)
}

func TestProcessRSIStrategy(t *testing.T) {
	p := newTestProcessor(t, DefaultConfig())
	res, err := p.Process(context.Background(), "Create a RSI strategy that buys when RSI is below 30", "", "u1")
	if err != nil {
		t.Fatalf("process: %v", err)
	}
	if res.Metadata.Fallback {
		t.Fatalf("expected a real result, got fallback: %s", res.Metadata.FallbackReason)
	}
	if res.Intent.StrategyType != models.StrategyMeanReversion {
		t.Fatalf("expected mean_reversion, got %s", res.Intent.StrategyType)
	}
	if res.Confidence <= 0.6 {
		t.Fatalf("expected confidence above 0.6, got %v", res.Confidence)
	}
	pv, ok := res.Parameters.Parameters["oversoldLevel"]
	if !ok || pv.Value != 30.0 {
		t.Fatalf("expected oversoldLevel 30, got %v", res.Parameters.Parameters)
	}
	if res.Metadata.ConversationID == "" {
		t.Fatalf("a conversation id must be generated")
	}
	if len(res.Suggestions) == 0 {
		t.Fatalf("expected suggestions")
	}
}

func TestProcessEmptyStrict(t *testing.T) {
	p := newTestProcessor(t, DefaultConfig())
	_, err := p.Process(context.Background(), "   ", "c1", "u1")
	if err == nil {
		t.Fatalf("strict mode must reject empty input")
	}
	var verr *ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected ValidationError, got %T", err)
	}
}

func TestProcessEmptyPermissive(t *testing.T) {
	cfg := DefaultConfig()
	cfg.StrictValidation = false
	p := newTestProcessor(t, cfg)

	res, err := p.Process(context.Background(), "", "c1", "u1")
	if err != nil {
		t.Fatalf("permissive mode must fall back, got %v", err)
	}
	if !res.Metadata.Fallback {
		t.Fatalf("expected fallback result")
	}
	if res.Intent.StrategyType != models.StrategyCustom || res.Confidence != 0.1 {
		t.Fatalf("fallback shape wrong: %+v", res.Intent)
	}
}

func TestProcessUnsafeInput(t *testing.T) {
	p := newTestProcessor(t, DefaultConfig())
	for _, in := range []string{
		"<script>alert(1)</script>",
		"javascript:void(0)",
		"img onerror=pwn",
		"eval(document.cookie)",
	} {
		if _, err := p.Process(context.Background(), in, "c1", "u1"); err == nil {
			t.Fatalf("unsafe input %q must be rejected", in)
		}
	}
}

func TestProcessOversizedInput(t *testing.T) {
	cfg := DefaultConfig()
	cfg.MaxInputLength = 50
	p := newTestProcessor(t, cfg)

	long := strings.Repeat("buy rsi ", 20)
	if _, err := p.Process(context.Background(), long, "c1", "u1"); err == nil {
		t.Fatalf("oversized input must be rejected in strict mode")
	}
}

func TestProcessInputLimitCountsRunes(t *testing.T) {
	cfg := DefaultConfig()
	cfg.MaxInputLength = 40
	p := newTestProcessor(t, cfg)

	// 40 runes but 45 bytes, must pass a character-based limit
	in := strings.Repeat("büy rsi ", 5)
	if _, err := p.Process(context.Background(), in, "c1", "u1"); err != nil {
		t.Fatalf("multi-byte input within the character limit must be accepted: %v", err)
	}
}

func TestProcessLowConfidenceFallback(t *testing.T) {
	cfg := DefaultConfig()
	cfg.MinConfidence = 0.9
	p := newTestProcessor(t, cfg)

	res, err := p.Process(context.Background(), "maybe do something clever", "c1", "u1")
	if err != nil {
		t.Fatalf("fallback expected, got error %v", err)
	}
	if !res.Metadata.Fallback {
		t.Fatalf("expected fallback below the confidence floor")
	}
	if len(res.ParsedRequest.Tokens) == 0 {
		t.Fatalf("low-confidence fallback keeps the parsed request")
	}
	if res.Confidence >= 0.9 {
		t.Fatalf("fallback must report the measured confidence, got %v", res.Confidence)
	}
}

func TestProcessLowConfidenceStrictNoFallback(t *testing.T) {
	cfg := DefaultConfig()
	cfg.MinConfidence = 0.9
	cfg.FallbackEnabled = false
	p := newTestProcessor(t, cfg)

	_, err := p.Process(context.Background(), "maybe do something clever", "c1", "u1")
	if err == nil {
		t.Fatalf("expected a low-confidence error")
	}
	var verr *ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected ValidationError, got %T", err)
	}
	if verr.Confidence <= 0 {
		t.Fatalf("error must carry the measured confidence")
	}
}

func TestProcessConversationContinuity(t *testing.T) {
	p := newTestProcessor(t, DefaultConfig())
	ctx := context.Background()

	first, err := p.Process(ctx, "Create a RSI strategy that buys when RSI is below 30", "conv1", "u1")
	if err != nil {
		t.Fatalf("first turn: %v", err)
	}
	second, err := p.Process(ctx, "set it to use a 20 period", "conv1", "u1")
	if err != nil {
		t.Fatalf("second turn: %v", err)
	}
	if second.Metadata.ResolvedText == "" || !strings.Contains(second.Metadata.ResolvedText, "rsi") {
		t.Fatalf("pronoun must resolve against the first turn, got %q", second.Metadata.ResolvedText)
	}
	if first.Metadata.ConversationID != "conv1" || second.Metadata.ConversationID != "conv1" {
		t.Fatalf("conversation id must be preserved")
	}
}

func TestProcessSuggestionsCapped(t *testing.T) {
	cfg := DefaultConfig()
	cfg.MaxSuggestions = 2
	p := newTestProcessor(t, cfg)

	res, err := p.Process(context.Background(), "buy when rsi is below 30", "c1", "u1")
	if err != nil {
		t.Fatalf("process: %v", err)
	}
	if len(res.Suggestions) > 2 {
		t.Fatalf("suggestions must cap at 2, got %d", len(res.Suggestions))
	}
}

func TestMergeConfidenceWeights(t *testing.T) {
	got := mergeConfidence(1, 0, 0)
	if got != 0.3 {
		t.Fatalf("token weight must be 0.3, got %v", got)
	}
	got = mergeConfidence(0, 1, 0)
	if got != 0.5 {
		t.Fatalf("intent weight must be 0.5, got %v", got)
	}
	got = mergeConfidence(0, 0, 1)
	if got != 0.2 {
		t.Fatalf("parameter weight must be 0.2, got %v", got)
	}
}
