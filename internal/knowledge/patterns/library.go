package patterns

import (
	"context"
	"sort"
	"strings"
	"time"

	"StratParse/internal/domain/models"
	"StratParse/internal/domain/service"
	"StratParse/pkg/cache"
	"StratParse/pkg/logger"
)

const cacheKeyPrefix = "patterns"

// Library fans pattern matching across the three archetype matchers, applies
// caller filters and memoizes results. Inputs are canonicalized (lowercased,
// deduplicated, sorted) before both matching and cache keying, so reordered
// queries hit the same entry.
type Library struct {
	matchers []*Matcher
	cache    *cache.MemoryCache
	ttl      time.Duration
	log      *logger.Logger
	metrics  service.Metrics
}

// LibraryOption configures the library.
type LibraryOption func(*Library)

// WithCacheTTL overrides the 5 minute result TTL.
func WithCacheTTL(ttl time.Duration) LibraryOption {
	return func(l *Library) { l.ttl = ttl }
}

// WithCacheSize bounds the memoization cache.
func WithCacheSize(n int) LibraryOption {
	return func(l *Library) { l.cache = cache.NewMemoryCache(cache.WithMemoryMaxSize(n)) }
}

// WithMetrics wires the observability side channel.
func WithMetrics(m service.Metrics) LibraryOption {
	return func(l *Library) { l.metrics = m }
}

// NewLibrary builds the facade over all archetype tables.
func NewLibrary(log *logger.Logger, opts ...LibraryOption) *Library {
	l := &Library{
		matchers: []*Matcher{
			NewMatcher(models.StrategyTrendFollowing, trendFollowingTable()),
			NewMatcher(models.StrategyMeanReversion, meanReversionTable()),
			NewMatcher(models.StrategyBreakout, breakoutTable()),
		},
		ttl: 5 * time.Minute,
		log: log,
	}
	for _, opt := range opts {
		opt(l)
	}
	if l.cache == nil {
		l.cache = cache.NewMemoryCache(cache.WithMemoryMaxSize(512), cache.WithMemoryCleanup(time.Minute))
	}
	return l
}

// FindMatches scores all archetype tables and returns filtered matches
// sorted by confidence descending. Results are cached for the TTL window.
func (l *Library) FindMatches(ctx context.Context, keywords, indicators, conditions []string, filter models.PatternFilter) []models.PatternMatch {
	kw := canonicalize(keywords)
	ind := canonicalize(indicators)
	cond := canonicalize(conditions)
	key := l.cacheKey(kw, ind, cond, filter)

	var cached []models.PatternMatch
	if err := l.cache.Get(ctx, key, &cached); err == nil {
		if l.metrics != nil {
			l.metrics.RecordCache("patterns", true)
		}
		return cached
	}
	if l.metrics != nil {
		l.metrics.RecordCache("patterns", false)
	}

	var all []models.PatternMatch
	for _, m := range l.matchers {
		all = append(all, m.FindMatches(kw, ind, cond)...)
	}
	all = applyFilter(all, filter)
	sort.SliceStable(all, func(i, j int) bool { return all[i].Confidence > all[j].Confidence })

	if err := l.cache.Set(ctx, key, all, l.ttl); err != nil && l.log != nil {
		l.log.Warn("pattern cache set failed", logger.Error(err))
	}
	return all
}

// PatternsForStrategy enumerates the static table of one archetype.
func (l *Library) PatternsForStrategy(strategyType models.StrategyType) []models.TradingPattern {
	for _, m := range l.matchers {
		if m.StrategyType() == strategyType {
			return m.Patterns()
		}
	}
	return nil
}

func (l *Library) cacheKey(kw, ind, cond []string, f models.PatternFilter) string {
	// keywords come straight out of user text, hash them to bound key length
	evidence := cache.HashKey(strings.Join(kw, ",") + "|" + strings.Join(ind, ",") + "|" + strings.Join(cond, ","))
	return cache.GenerateKeyWithParams(cacheKeyPrefix, evidence,
		string(f.Difficulty), string(f.RiskLevel), f.Timeframe, f.MarketCondition,
		f.MinSuccessRate, f.MinConfidence,
	)
}

func applyFilter(matches []models.PatternMatch, f models.PatternFilter) []models.PatternMatch {
	out := matches[:0]
	for _, m := range matches {
		p := m.Pattern
		if f.Difficulty != "" && p.Difficulty != f.Difficulty {
			continue
		}
		if f.RiskLevel != "" && models.RiskRank(p.RiskLevel) > models.RiskRank(f.RiskLevel) {
			continue
		}
		if f.Timeframe != "" && !containsString(p.Timeframes, f.Timeframe) {
			continue
		}
		if f.MarketCondition != "" && !containsString(p.MarketConditions, f.MarketCondition) {
			continue
		}
		if f.MinSuccessRate > 0 && p.SuccessRate < f.MinSuccessRate {
			continue
		}
		if f.MinConfidence > 0 && m.Confidence < f.MinConfidence {
			continue
		}
		out = append(out, m)
	}
	return out
}

func canonicalize(in []string) []string {
	seen := make(map[string]bool, len(in))
	out := make([]string, 0, len(in))
	for _, s := range in {
		s = strings.ToLower(strings.TrimSpace(s))
		if s == "" || seen[s] {
			continue
		}
		seen[s] = true
		out = append(out, s)
	}
	sort.Strings(out)
	return out
}

func containsString(xs []string, want string) bool {
	for _, x := range xs {
		if strings.EqualFold(x, want) {
			return true
		}
	}
	return false
}

var _ service.PatternLibrary = (*Library)(nil)
