package intent

import (
	"context"
	"sort"
	"strings"

	"StratParse/internal/domain/models"
	"StratParse/internal/domain/service"
	"StratParse/pkg/logger"
)

// strategyDefaults fills in actions and conditions the user implied but never
// said, keyed by the classified archetype.
var strategyDefaults = map[models.StrategyType]struct {
	actions    []string
	conditions []string
}{
	models.StrategyTrendFollowing: {
		actions:    []string{"buy", "sell"},
		conditions: []string{"crosses above", "crosses below"},
	},
	models.StrategyMeanReversion: {
		actions:    []string{"buy", "sell"},
		conditions: []string{"oversold", "overbought"},
	},
	models.StrategyBreakout: {
		actions:    []string{"buy"},
		conditions: []string{"breaks above", "volume spike"},
	},
	models.StrategyMomentum: {
		actions:    []string{"buy", "sell"},
		conditions: []string{"rising", "falling"},
	},
	models.StrategyScalping: {
		actions:    []string{"buy", "sell", "exit"},
		conditions: []string{"crosses above", "crosses below"},
	},
	models.StrategyArbitrage: {
		actions:    []string{"buy", "sell"},
		conditions: []string{"diverges", "converges"},
	},
	models.StrategyCustom: {
		actions:    []string{"buy"},
		conditions: []string{},
	},
}

// momentumCue words nudge classification when pattern evidence is thin.
var momentumCues = map[string]models.StrategyType{
	"scalp":     models.StrategyScalping,
	"scalping":  models.StrategyScalping,
	"arbitrage": models.StrategyArbitrage,
	"spread":    models.StrategyArbitrage,
	"momentum":  models.StrategyMomentum,
}

// Extractor classifies a strategy archetype from tokenized input by querying
// the pattern library and scoring component coverage.
type Extractor struct {
	library service.PatternLibrary
	log     *logger.Logger
}

func NewExtractor(library service.PatternLibrary, log *logger.Logger) *Extractor {
	return &Extractor{library: library, log: log}
}

// Extract builds a TradingIntent from the tokenization result. Internal
// failures never surface: the fallback is a custom-strategy intent with
// confidence 0.1.
func (e *Extractor) Extract(ctx context.Context, result models.TokenizationResult) (intent *models.TradingIntent, err error) {
	defer func() {
		if r := recover(); r != nil {
			if e.log != nil {
				e.log.Error("intent extraction panic", logger.Any("panic", r))
			}
			intent, err = fallbackIntent(), nil
		}
	}()

	keywords, indicators, conditions, actions, riskTerms, timeframe, symbol := splitTokens(result.Tokens)

	matches := e.library.FindMatches(ctx, keywords, indicators, conditions, models.PatternFilter{})

	intent = &models.TradingIntent{
		StrategyType:   models.StrategyCustom,
		Indicators:     indicators,
		Conditions:     conditions,
		Actions:        actions,
		RiskManagement: riskTerms,
		Timeframe:      timeframe,
		Symbol:         symbol,
	}

	best := 0.0
	if len(matches) > 0 {
		top := matches[0]
		intent.StrategyType = top.StrategyType
		best = top.Confidence
		intent.Conditions = mergeUnique(intent.Conditions, top.Pattern.EntryConditions)
		if len(intent.RiskManagement) == 0 {
			intent.RiskManagement = append([]string(nil), top.Pattern.RiskManagement...)
		}
	} else if cue := cueStrategy(keywords); cue != "" {
		intent.StrategyType = cue
	}

	// score before default filling, absent components must keep their penalty
	intent.Confidence = scoreConfidence(best, intent, result)

	defaults := strategyDefaults[intent.StrategyType]
	if len(intent.Actions) == 0 {
		intent.Actions = append([]string(nil), defaults.actions...)
	}
	if len(intent.Conditions) == 0 {
		intent.Conditions = append([]string(nil), defaults.conditions...)
	}
	return intent, nil
}

// splitTokens buckets classified tokens into intent components. The first
// timeframe and symbol seen win.
func splitTokens(tokens []models.Token) (keywords, indicators, conditions, actions, riskTerms []string, timeframe, symbol string) {
	for _, t := range tokens {
		switch t.Type {
		case models.TokenIndicator:
			indicators = appendUnique(indicators, canonicalText(t))
			keywords = append(keywords, t.Text)
		case models.TokenCondition:
			conditions = appendUnique(conditions, t.Text)
			keywords = append(keywords, t.Text)
		case models.TokenAction:
			actions = appendUnique(actions, t.Text)
			keywords = append(keywords, t.Text)
		case models.TokenParameter:
			if isRiskTerm(t) {
				riskTerms = appendUnique(riskTerms, t.Text)
			}
			keywords = append(keywords, t.Text)
		case models.TokenTimeframe:
			if timeframe == "" {
				timeframe = t.Text
			}
		case models.TokenSymbol:
			if symbol == "" {
				symbol = t.Text
			}
		case models.TokenModifier, models.TokenUnknown:
			keywords = append(keywords, t.Text)
		}
	}
	return
}

// canonicalText prefers the vocabulary id when the token carries one, so
// "relative strength index" and "rsi" land on the same indicator.
func canonicalText(t models.Token) string {
	if id, ok := t.Metadata["id"].(string); ok && id != "" {
		return id
	}
	return strings.ToLower(t.Text)
}

func isRiskTerm(t models.Token) bool {
	id := canonicalText(t)
	switch id {
	case "stopLoss", "takeProfit", "positionSize", "riskPerTrade", "trailingStop", "leverage":
		return true
	}
	return false
}

func cueStrategy(keywords []string) models.StrategyType {
	for _, kw := range keywords {
		if st, ok := momentumCues[strings.ToLower(kw)]; ok {
			return st
		}
	}
	return ""
}

// scoreConfidence combines the best pattern match with a component-presence
// boost (0.04 per populated component, max 0.2) and a trading-token density
// boost (max 0.2), minus penalties for missing indicators and actions.
func scoreConfidence(best float64, intent *models.TradingIntent, result models.TokenizationResult) float64 {
	conf := best

	components := 0
	if len(intent.Indicators) > 0 {
		components++
	}
	if len(intent.Conditions) > 0 {
		components++
	}
	if len(intent.Actions) > 0 {
		components++
	}
	if len(intent.RiskManagement) > 0 {
		components++
	}
	if intent.Timeframe != "" {
		components++
	}
	conf += 0.04 * float64(components)

	if n := len(result.Tokens); n > 0 {
		density := float64(result.TradingTokenCount()) / float64(n)
		boost := density * 0.2
		if boost > 0.2 {
			boost = 0.2
		}
		conf += boost
	}

	if len(intent.Indicators) == 0 {
		conf -= 0.1
	}
	if len(intent.Actions) == 0 {
		conf -= 0.15
	}

	if conf < 0 {
		conf = 0
	}
	if conf > 1 {
		conf = 1
	}
	return conf
}

func fallbackIntent() *models.TradingIntent {
	return &models.TradingIntent{
		StrategyType:   models.StrategyCustom,
		Indicators:     []string{},
		Conditions:     []string{},
		Actions:        []string{"buy"},
		RiskManagement: []string{},
		Confidence:     0.1,
	}
}

func appendUnique(xs []string, s string) []string {
	for _, x := range xs {
		if strings.EqualFold(x, s) {
			return xs
		}
	}
	return append(xs, s)
}

func mergeUnique(base, extra []string) []string {
	out := append([]string(nil), base...)
	for _, s := range extra {
		out = appendUnique(out, s)
	}
	sort.Strings(out)
	return out
}

var _ service.IntentExtractor = (*Extractor)(nil)
