package knowledge

import (
	"context"
	"fmt"
	"strings"
	"time"

	"StratParse/internal/domain/models"
	"StratParse/internal/domain/service"
	"StratParse/internal/knowledge/indicators"
	"StratParse/internal/knowledge/patterns"
	"StratParse/internal/knowledge/risk"
	"StratParse/pkg/cache"
	"StratParse/pkg/logger"
)

const (
	kbKeyPrefix  = "kb"
	defaultKBTTL = 10 * time.Minute
)

// Base unifies the pattern library, indicator database and risk engine behind
// one query surface. Query answers are cached in memory, and through redis as
// a second layer when one is configured. Pattern queries delegate to the
// library, which keeps its own shorter-lived cache.
type Base struct {
	patterns   *patterns.Library
	indicators *indicators.Database
	risk       *risk.Engine
	cache      cache.Service
	ttl        time.Duration
	log        *logger.Logger
	metrics    service.Metrics
}

// BaseOption configures the knowledge base.
type BaseOption func(*Base)

// WithRedis layers a redis cache behind the in-memory one.
func WithRedis(rc *cache.RedisCache) BaseOption {
	return func(b *Base) {
		if rc != nil {
			b.cache = cache.NewLayeredCache(rc, cache.WithLayeredMemorySize(256))
		}
	}
}

// WithTTL overrides the 10 minute answer TTL.
func WithTTL(ttl time.Duration) BaseOption {
	return func(b *Base) { b.ttl = ttl }
}

// WithBaseMetrics wires the observability side channel.
func WithBaseMetrics(m service.Metrics) BaseOption {
	return func(b *Base) { b.metrics = m }
}

// NewBase builds the facade over the three knowledge components.
func NewBase(lib *patterns.Library, db *indicators.Database, eng *risk.Engine, log *logger.Logger, opts ...BaseOption) *Base {
	b := &Base{
		patterns:   lib,
		indicators: db,
		risk:       eng,
		ttl:        defaultKBTTL,
		log:        log,
	}
	for _, opt := range opts {
		opt(b)
	}
	if b.cache == nil {
		b.cache = cache.NewMemoryCache(cache.WithMemoryMaxSize(256))
	}
	return b
}

// Query answers a unified knowledge query. Indicator, rule and strategy
// answers are cached; pattern answers rely on the library's own cache.
func (b *Base) Query(ctx context.Context, q models.KnowledgeQuery) (*models.KnowledgeAnswer, error) {
	switch q.Kind {
	case models.QueryPatterns:
		return &models.KnowledgeAnswer{
			Patterns: b.patterns.FindMatches(ctx, q.Keywords, q.Indicators, q.Conditions, q.Filter),
		}, nil
	case models.QueryIndicators:
		return b.queryIndicators(ctx, q)
	case models.QueryRiskRules:
		return b.queryRiskRules(ctx, q)
	case models.QueryStrategy:
		sk, err := b.StrategyKnowledge(ctx, q.StrategyType)
		if err != nil {
			return nil, err
		}
		return &models.KnowledgeAnswer{Strategy: sk}, nil
	}
	return nil, fmt.Errorf("knowledge: unknown query kind %q", q.Kind)
}

func (b *Base) queryIndicators(ctx context.Context, q models.KnowledgeQuery) (*models.KnowledgeAnswer, error) {
	key := cache.GenerateKeyWithParams(kbKeyPrefix, "indicators",
		strings.Join(q.Keywords, ","), strings.Join(q.Indicators, ","))

	var answer models.KnowledgeAnswer
	if b.cacheGet(ctx, key, &answer) {
		return &answer, nil
	}

	if len(q.Indicators) > 0 {
		for _, id := range q.Indicators {
			if ind, ok := b.indicators.Get(strings.ToLower(strings.TrimSpace(id))); ok {
				answer.Indicators = append(answer.Indicators, *ind)
			}
		}
	} else if len(q.Keywords) > 0 {
		answer.Indicators = b.indicators.SearchIndicators(q.Keywords)
	} else {
		answer.Indicators = b.indicators.All()
	}

	b.cacheSet(ctx, key, answer)
	return &answer, nil
}

func (b *Base) queryRiskRules(ctx context.Context, q models.KnowledgeQuery) (*models.KnowledgeAnswer, error) {
	key := cache.GenerateKeyWithParams(kbKeyPrefix, "rules", string(q.StrategyType))

	var answer models.KnowledgeAnswer
	if b.cacheGet(ctx, key, &answer) {
		return &answer, nil
	}

	if q.StrategyType != "" {
		answer.Rules = b.risk.RulesForStrategy(q.StrategyType)
	} else {
		answer.Rules = b.risk.Rules()
	}

	b.cacheSet(ctx, key, answer)
	return &answer, nil
}

// StrategyKnowledge bundles everything known about one archetype.
func (b *Base) StrategyKnowledge(ctx context.Context, st models.StrategyType) (*models.StrategyKnowledge, error) {
	st = models.ParseStrategyType(string(st))
	key := cache.GenerateKey(kbKeyPrefix+":strategy", string(st))

	var sk models.StrategyKnowledge
	if b.cacheGet(ctx, key, &sk) {
		return &sk, nil
	}

	sk = models.StrategyKnowledge{
		StrategyType:          st,
		Patterns:              b.patterns.PatternsForStrategy(st),
		RecommendedIndicators: b.indicators.RecommendedIDs(st),
		RiskProfile:           b.risk.Profile(st),
		Components:            b.risk.ComponentProfileFor(st),
	}

	b.cacheSet(ctx, key, sk)
	return &sk, nil
}

// Invalidate drops every cached answer. Called after the rule set or the
// catalog changes under a running process.
func (b *Base) Invalidate(ctx context.Context) error {
	return b.cache.DeleteByPattern(ctx, cache.BuildPattern(kbKeyPrefix))
}

func (b *Base) cacheGet(ctx context.Context, key string, dest interface{}) bool {
	err := b.cache.Get(ctx, key, dest)
	hit := err == nil
	if b.metrics != nil {
		b.metrics.RecordCache("knowledge", hit)
	}
	return hit
}

func (b *Base) cacheSet(ctx context.Context, key string, value interface{}) {
	if err := b.cache.Set(ctx, key, value, b.ttl); err != nil && b.log != nil {
		b.log.Warn("knowledge cache set failed", logger.Error(err))
	}
}

var _ service.KnowledgeBase = (*Base)(nil)
