package patterns

import (
	"sort"
	"strings"

	"StratParse/internal/domain/models"
)

// Matcher scores candidate patterns of a single archetype table against
// keyword/indicator/condition overlap. The scoring is identical across
// archetypes; only the table differs.
type Matcher struct {
	strategyType models.StrategyType
	table        []models.TradingPattern
}

// NewMatcher builds a matcher over one archetype table.
func NewMatcher(strategyType models.StrategyType, table []models.TradingPattern) *Matcher {
	return &Matcher{strategyType: strategyType, table: table}
}

// StrategyType returns the archetype this matcher scores for.
func (m *Matcher) StrategyType() models.StrategyType { return m.strategyType }

// Patterns returns the static table.
func (m *Matcher) Patterns() []models.TradingPattern { return m.table }

// FindMatches scores every pattern, keeps confidence > 0.3, sorts descending.
// Confidence = 0.4·keywordRatio + 0.4·indicatorRatio + 0.2·entryConditionRatio,
// clamped to 1.0.
func (m *Matcher) FindMatches(keywords, indicators, conditions []string) []models.PatternMatch {
	out := make([]models.PatternMatch, 0, len(m.table))
	for _, p := range m.table {
		kwHits, kwMatched := overlapHits(keywords, p.Keywords)
		indHits, indMatched := overlapHits(indicators, p.Indicators)
		condHits, _ := overlapHits(conditions, p.EntryConditions)

		conf := 0.4*ratio(kwHits, len(p.Keywords)) +
			0.4*ratio(indHits, len(p.Indicators)) +
			0.2*ratio(condHits, len(p.EntryConditions))
		if conf > 1 {
			conf = 1
		}
		if conf <= 0.3 {
			continue
		}
		out = append(out, models.PatternMatch{
			Pattern:           p,
			StrategyType:      m.strategyType,
			Confidence:        conf,
			MatchedKeywords:   kwMatched,
			MatchedIndicators: indMatched,
		})
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Confidence > out[j].Confidence })
	return out
}

// overlapHits counts pattern terms hit by any input via substring overlap in
// either direction. Each pattern term counts at most once.
func overlapHits(inputs, patternTerms []string) (int, []string) {
	if len(inputs) == 0 || len(patternTerms) == 0 {
		return 0, nil
	}
	hits := 0
	var matched []string
	for _, pt := range patternTerms {
		lpt := strings.ToLower(pt)
		for _, in := range inputs {
			lin := strings.ToLower(in)
			if lin == "" {
				continue
			}
			// short inputs must match exactly, substring overlap would let
			// articles and stray letters hit almost every term
			if len(lin) < 3 {
				if lin != lpt {
					continue
				}
			} else if !strings.Contains(lpt, lin) && !strings.Contains(lin, lpt) {
				continue
			}
			hits++
			matched = append(matched, pt)
			break
		}
	}
	return hits, matched
}

func ratio(hits, total int) float64 {
	if total == 0 {
		return 0
	}
	return float64(hits) / float64(total)
}
