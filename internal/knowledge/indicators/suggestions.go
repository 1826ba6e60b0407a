package indicators

import (
	"fmt"
	"sort"
	"strings"

	"StratParse/internal/domain/models"
)

type suggestionSeed struct {
	id       string
	priority int
	reason   string
}

// strategyIndicatorMap is the static strategy → indicator seeding table.
var strategyIndicatorMap = map[models.StrategyType][]suggestionSeed{
	models.StrategyTrendFollowing: {
		{id: "ema", priority: 10, reason: "defines trend direction and dynamic support"},
		{id: "macd", priority: 9, reason: "confirms momentum behind the trend"},
		{id: "adx", priority: 8, reason: "filters out weak trends before entry"},
		{id: "atr", priority: 7, reason: "sizes stops to current volatility"},
		{id: "sma", priority: 6, reason: "baseline trend reference for crossovers"},
		{id: "obv", priority: 4, reason: "volume confirmation of trend legs"},
	},
	models.StrategyMeanReversion: {
		{id: "rsi", priority: 10, reason: "flags oversold and overbought extremes"},
		{id: "bollinger", priority: 9, reason: "marks statistical price extremes"},
		{id: "stochastic", priority: 8, reason: "times reversals inside the range"},
		{id: "williams_r", priority: 6, reason: "fast secondary extreme gauge"},
		{id: "cci", priority: 5, reason: "unbounded deviation extremes"},
		{id: "vwap", priority: 5, reason: "intraday reversion anchor"},
	},
	models.StrategyBreakout: {
		{id: "volume", priority: 10, reason: "validates the breakout with participation"},
		{id: "atr", priority: 9, reason: "detects volatility contraction before the break"},
		{id: "bollinger", priority: 8, reason: "squeeze setups precede expansions"},
		{id: "obv", priority: 6, reason: "accumulation ahead of the break"},
		{id: "adx", priority: 5, reason: "confirms the new trend after the break"},
	},
	models.StrategyMomentum: {
		{id: "macd", priority: 10, reason: "primary momentum gauge"},
		{id: "rsi", priority: 9, reason: "momentum strength and exhaustion"},
		{id: "adx", priority: 7, reason: "sustained directional strength"},
		{id: "vwap", priority: 6, reason: "intraday momentum reference"},
	},
	models.StrategyScalping: {
		{id: "vwap", priority: 10, reason: "the intraday anchor scalpers trade around"},
		{id: "ema", priority: 9, reason: "fast trend read on short charts"},
		{id: "stochastic", priority: 7, reason: "quick overbought/oversold timing"},
		{id: "atr", priority: 7, reason: "keeps stops proportional on fast charts"},
	},
	models.StrategyArbitrage: {
		{id: "sma", priority: 8, reason: "spread mean for convergence trades"},
		{id: "atr", priority: 7, reason: "volatility of the spread legs"},
		{id: "cci", priority: 5, reason: "deviation extremes on the spread"},
	},
	models.StrategyCustom: {
		{id: "rsi", priority: 8, reason: "broadly useful momentum gauge"},
		{id: "sma", priority: 8, reason: "baseline trend context"},
		{id: "atr", priority: 7, reason: "volatility context for risk"},
		{id: "volume", priority: 6, reason: "participation check on any signal"},
	},
}

// GetSuggestions proposes up to five indicators for a strategy, filtered by
// experience level (adjacent level allowed at 0.7 confidence, a two-level gap
// rejected) and penalized for market/timeframe mismatch (0.6/0.7 factors).
// Only suggestions above 0.5 confidence survive; ranking is priority, then
// confidence.
func (db *Database) GetSuggestions(strategyType models.StrategyType, existing []string, userLevel models.Difficulty, marketCondition, timeframe string) []models.IndicatorSuggestion {
	seeds := strategyIndicatorMap[strategyType]
	if seeds == nil {
		seeds = strategyIndicatorMap[models.StrategyCustom]
	}
	have := make(map[string]bool, len(existing))
	for _, id := range existing {
		have[strings.ToLower(id)] = true
	}

	var out []models.IndicatorSuggestion
	for _, seed := range seeds {
		if have[seed.id] {
			continue
		}
		ind, ok := db.Get(seed.id)
		if !ok {
			continue
		}
		gap := models.DifficultyRank(ind.Difficulty) - models.DifficultyRank(userLevel)
		if gap < 0 {
			gap = -gap
		}
		conf := 1.0
		switch {
		case gap >= 2:
			continue
		case gap == 1:
			conf = 0.7
		}
		if marketCondition != "" && !containsFold(ind.MarketConditions, marketCondition) {
			conf *= 0.6
		}
		if timeframe != "" && !containsFold(ind.BestTimeframes, timeframe) {
			conf *= 0.7
		}
		if conf <= 0.5 {
			continue
		}
		out = append(out, models.IndicatorSuggestion{
			Indicator:  *ind,
			Confidence: conf,
			Priority:   seed.priority,
			Reason:     seed.reason,
		})
	}
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Priority != out[j].Priority {
			return out[i].Priority > out[j].Priority
		}
		return out[i].Confidence > out[j].Confidence
	})
	if len(out) > 5 {
		out = out[:5]
	}
	return out
}

// RecommendedIDs lists the seeded indicator ids for a strategy type in
// priority order.
func (db *Database) RecommendedIDs(strategyType models.StrategyType) []string {
	seeds := strategyIndicatorMap[strategyType]
	if seeds == nil {
		seeds = strategyIndicatorMap[models.StrategyCustom]
	}
	out := make([]string, 0, len(seeds))
	for _, s := range seeds {
		out = append(out, s.id)
	}
	return out
}

type compatRule struct {
	a, b       string
	compatible bool
	note       string
}

// compatibilityRules is symmetric: (a,b) covers (b,a).
var compatibilityRules = []compatRule{
	{a: "rsi", b: "stochastic", compatible: false, note: "two range oscillators duplicate the same signal"},
	{a: "rsi", b: "williams_r", compatible: false, note: "redundant overbought/oversold reads"},
	{a: "stochastic", b: "williams_r", compatible: false, note: "near-identical formulas"},
	{a: "sma", b: "ema", compatible: false, note: "two baseline averages add lag without new information"},
	{a: "rsi", b: "sma", compatible: true, note: "momentum extreme plus trend context"},
	{a: "rsi", b: "bollinger", compatible: true, note: "oscillator extreme confirmed at a band extreme"},
	{a: "macd", b: "adx", compatible: true, note: "momentum shift gated by trend strength"},
	{a: "ema", b: "macd", compatible: true, note: "trend direction plus momentum confirmation"},
	{a: "ema", b: "adx", compatible: true, note: "direction plus strength"},
	{a: "bollinger", b: "atr", compatible: true, note: "two volatility views: envelope and range"},
	{a: "volume", b: "obv", compatible: true, note: "raw and cumulative participation"},
	{a: "vwap", b: "volume", compatible: true, note: "anchor plus participation"},
	{a: "atr", b: "adx", compatible: true, note: "volatility plus trend strength regime filter"},
}

// GetCompatibilityAnalysis reports pairwise fit inside an indicator set and
// proposes extensions drawn from the members' listed combinations.
func (db *Database) GetCompatibilityAnalysis(ids []string) models.CompatibilityAnalysis {
	norm := make([]string, 0, len(ids))
	have := make(map[string]bool, len(ids))
	for _, id := range ids {
		id = strings.ToLower(strings.TrimSpace(id))
		if id == "" || have[id] {
			continue
		}
		have[id] = true
		norm = append(norm, id)
	}

	var analysis models.CompatibilityAnalysis
	for i := 0; i < len(norm); i++ {
		for j := i + 1; j < len(norm); j++ {
			rule, ok := findRule(norm[i], norm[j])
			if !ok {
				continue
			}
			note := models.IndicatorPairNote{A: norm[i], B: norm[j], Note: rule.note}
			if rule.compatible {
				analysis.Compatible = append(analysis.Compatible, note)
			} else {
				analysis.Incompatible = append(analysis.Incompatible, note)
			}
		}
	}

	extSeen := make(map[string]bool)
	for _, id := range norm {
		ind, ok := db.Get(id)
		if !ok {
			continue
		}
		for _, c := range ind.Combinations {
			if have[c] || extSeen[c] {
				continue
			}
			extSeen[c] = true
			analysis.Extensions = append(analysis.Extensions,
				fmt.Sprintf("consider adding %s alongside %s", c, id))
		}
	}
	return analysis
}

func findRule(a, b string) (compatRule, bool) {
	for _, r := range compatibilityRules {
		if (r.a == a && r.b == b) || (r.a == b && r.b == a) {
			return r, true
		}
	}
	return compatRule{}, false
}
