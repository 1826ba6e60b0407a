package knowledge

import (
	"context"
	"strings"
	"testing"
	"time"

	"StratParse/internal/domain/models"
	"StratParse/internal/knowledge/indicators"
	"StratParse/internal/knowledge/patterns"
	"StratParse/internal/knowledge/risk"
	"StratParse/pkg/cache"
)

func newTestBase(t *testing.T, opts ...BaseOption) *Base {
	t.Helper()
	eng, err := risk.NewEngine(nil)
	if err != nil {
		t.Fatalf("NewEngine: %v", err)
	}
	return NewBase(patterns.NewLibrary(nil), indicators.NewDatabase(nil), eng, nil, opts...)
}

func TestQueryIndicatorsByID(t *testing.T) {
	b := newTestBase(t)

	ans, err := b.Query(context.Background(), models.KnowledgeQuery{
		Kind:       models.QueryIndicators,
		Indicators: []string{" RSI ", "macd", "no_such_indicator"},
	})
	if err != nil {
		t.Fatalf("Query: %v", err)
	}
	if len(ans.Indicators) != 2 {
		t.Fatalf("expected 2 indicators, got %d", len(ans.Indicators))
	}
	if ans.Indicators[0].ID != "rsi" || ans.Indicators[1].ID != "macd" {
		t.Fatalf("unexpected indicator order: %s, %s", ans.Indicators[0].ID, ans.Indicators[1].ID)
	}
}

func TestQueryIndicatorsByKeywords(t *testing.T) {
	b := newTestBase(t)

	ans, err := b.Query(context.Background(), models.KnowledgeQuery{
		Kind:     models.QueryIndicators,
		Keywords: []string{"momentum"},
	})
	if err != nil {
		t.Fatalf("Query: %v", err)
	}
	if len(ans.Indicators) == 0 {
		t.Fatal("expected keyword search to surface indicators")
	}
	found := false
	for _, ind := range ans.Indicators {
		if ind.ID == "rsi" {
			found = true
		}
	}
	if !found {
		t.Fatal("expected rsi among momentum search results")
	}
}

func TestQueryIndicatorsAll(t *testing.T) {
	b := newTestBase(t)

	ans, err := b.Query(context.Background(), models.KnowledgeQuery{Kind: models.QueryIndicators})
	if err != nil {
		t.Fatalf("Query: %v", err)
	}
	if len(ans.Indicators) < 10 {
		t.Fatalf("expected full catalog, got %d entries", len(ans.Indicators))
	}
}

func TestQueryRiskRules(t *testing.T) {
	b := newTestBase(t)

	all, err := b.Query(context.Background(), models.KnowledgeQuery{Kind: models.QueryRiskRules})
	if err != nil {
		t.Fatalf("Query: %v", err)
	}
	if len(all.Rules) == 0 {
		t.Fatal("expected built-in rules")
	}

	scoped, err := b.Query(context.Background(), models.KnowledgeQuery{
		Kind:         models.QueryRiskRules,
		StrategyType: models.StrategyScalping,
	})
	if err != nil {
		t.Fatalf("Query: %v", err)
	}
	if len(scoped.Rules) == 0 || len(scoped.Rules) > len(all.Rules) {
		t.Fatalf("expected scoped subset, got %d of %d", len(scoped.Rules), len(all.Rules))
	}
	for _, r := range scoped.Rules {
		if len(r.ApplicableStrategies) == 0 {
			continue
		}
		ok := false
		for _, st := range r.ApplicableStrategies {
			if st == models.StrategyScalping {
				ok = true
			}
		}
		if !ok {
			t.Fatalf("rule %s does not apply to scalping", r.ID)
		}
	}
}

func TestQueryPatterns(t *testing.T) {
	b := newTestBase(t)

	ans, err := b.Query(context.Background(), models.KnowledgeQuery{
		Kind:       models.QueryPatterns,
		Keywords:   []string{"oversold", "reversion"},
		Indicators: []string{"rsi"},
	})
	if err != nil {
		t.Fatalf("Query: %v", err)
	}
	if len(ans.Patterns) == 0 {
		t.Fatal("expected pattern matches for oversold rsi evidence")
	}
	if ans.Patterns[0].Pattern.ID != "rsi_oversold_overbought" {
		t.Fatalf("unexpected top pattern %s", ans.Patterns[0].Pattern.ID)
	}
}

func TestQueryUnknownKind(t *testing.T) {
	b := newTestBase(t)

	if _, err := b.Query(context.Background(), models.KnowledgeQuery{Kind: "bogus"}); err == nil {
		t.Fatal("expected error for unknown query kind")
	}
}

func TestStrategyKnowledgeBundle(t *testing.T) {
	b := newTestBase(t)

	sk, err := b.StrategyKnowledge(context.Background(), models.StrategyMeanReversion)
	if err != nil {
		t.Fatalf("StrategyKnowledge: %v", err)
	}
	if sk.StrategyType != models.StrategyMeanReversion {
		t.Fatalf("unexpected strategy type %s", sk.StrategyType)
	}
	if len(sk.RecommendedIndicators) == 0 || sk.RecommendedIndicators[0] != "rsi" {
		t.Fatalf("expected rsi as top recommendation, got %v", sk.RecommendedIndicators)
	}
	if sk.RiskProfile.BaseRisk != models.RiskMedium {
		t.Fatalf("unexpected base risk %s", sk.RiskProfile.BaseRisk)
	}
	if len(sk.Components.Required) == 0 {
		t.Fatal("expected required components")
	}
	if len(sk.Patterns) == 0 {
		t.Fatal("expected patterns for mean reversion")
	}
}

func TestStrategyKnowledgeNormalizesUnknown(t *testing.T) {
	b := newTestBase(t)

	sk, err := b.StrategyKnowledge(context.Background(), models.StrategyType("lunar cycles"))
	if err != nil {
		t.Fatalf("StrategyKnowledge: %v", err)
	}
	if sk.StrategyType != models.StrategyCustom {
		t.Fatalf("expected custom fallback, got %s", sk.StrategyType)
	}
	if sk.RiskProfile.StrategyType != models.StrategyCustom {
		t.Fatalf("expected custom risk profile, got %s", sk.RiskProfile.StrategyType)
	}
}

func TestQueryAnswersAreCached(t *testing.T) {
	b := newTestBase(t, WithTTL(time.Minute))
	ctx := context.Background()
	q := models.KnowledgeQuery{Kind: models.QueryIndicators, Indicators: []string{"rsi"}}

	first, err := b.Query(ctx, q)
	if err != nil {
		t.Fatalf("Query: %v", err)
	}

	key := cache.GenerateKeyWithParams(kbKeyPrefix, "indicators",
		strings.Join(q.Keywords, ","), strings.Join(q.Indicators, ","))
	var cached models.KnowledgeAnswer
	if !b.cacheGet(ctx, key, &cached) {
		t.Fatal("expected indicator answer to be cached after first query")
	}

	second, err := b.Query(ctx, q)
	if err != nil {
		t.Fatalf("Query: %v", err)
	}
	if len(second.Indicators) != len(first.Indicators) {
		t.Fatalf("cached answer diverged: %d vs %d", len(second.Indicators), len(first.Indicators))
	}

	if err := b.Invalidate(ctx); err != nil {
		t.Fatalf("Invalidate: %v", err)
	}
	if b.cacheGet(ctx, key, &cached) {
		t.Fatal("expected cache to be empty after invalidation")
	}
}
