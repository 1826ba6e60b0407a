package indicators

import (
	"fmt"
	"math"
	"strings"

	"StratParse/internal/domain/models"
)

// minOptimizationDelta is the relative change below which an adjustment is
// considered noise and not reported.
const minOptimizationDelta = 0.1

// GetParameterOptimizations applies deterministic heuristics to an
// indicator's current parameters for the given strategy and market context:
// scalping shortens period-like parameters by 0.7x, trend following
// lengthens them by 1.3x (1.5x for slow periods), volatile markets widen
// standard-deviation multipliers by 1.2x. A change is only reported when the
// relative delta exceeds 0.1.
func (db *Database) GetParameterOptimizations(indicatorID string, strategyType models.StrategyType, current map[string]float64, marketCondition string) []models.ParameterOptimization {
	ind, ok := db.Get(indicatorID)
	if !ok {
		return nil
	}

	var out []models.ParameterOptimization
	for _, def := range ind.Parameters {
		cur, ok := current[def.Name]
		if !ok {
			cur = def.Default
		}
		suggested := cur
		reason := ""

		if isPeriodParam(def.Name) {
			switch strategyType {
			case models.StrategyScalping:
				suggested = cur * 0.7
				reason = "scalping favors faster, shorter lookbacks"
			case models.StrategyTrendFollowing:
				factor := 1.3
				if strings.EqualFold(def.Name, "slowPeriod") {
					factor = 1.5
				}
				suggested = cur * factor
				reason = "trend following favors longer, smoother lookbacks"
			}
		}
		if strings.EqualFold(def.Name, "stdDev") && strings.EqualFold(marketCondition, "volatile") {
			suggested = cur * 1.2
			reason = "volatile markets need wider bands to avoid false touches"
		}

		suggested = clamp(suggested, def.Min, def.Max)
		if isPeriodParam(def.Name) {
			suggested = math.Round(suggested)
		}
		if cur == 0 || math.Abs(suggested-cur)/math.Max(cur, 1) <= minOptimizationDelta {
			continue
		}
		out = append(out, models.ParameterOptimization{
			IndicatorID: ind.ID,
			Parameter:   def.Name,
			Current:     cur,
			Suggested:   suggested,
			Reason:      reason,
		})
	}
	return out
}

// AnalyzeSuitability grades one indicator for a strategy/market/timeframe
// context. The score starts at 0.5 and moves with strategy-map membership
// and market/timeframe fit; below 0.5 the indicator is flagged unsuitable.
func (db *Database) AnalyzeSuitability(indicatorID string, strategyType models.StrategyType, marketCondition, timeframe string) models.SuitabilityReport {
	report := models.SuitabilityReport{IndicatorID: strings.ToLower(indicatorID)}
	ind, ok := db.Get(indicatorID)
	if !ok {
		report.Notes = append(report.Notes, "unknown indicator")
		return report
	}

	score := 0.5
	if seedsContain(strategyIndicatorMap[strategyType], ind.ID) {
		score += 0.2
		report.Notes = append(report.Notes, fmt.Sprintf("commonly used in %s strategies", strategyType))
	}
	if marketCondition != "" {
		if containsFold(ind.MarketConditions, marketCondition) {
			score += 0.15
		} else {
			score -= 0.2
			report.Notes = append(report.Notes, fmt.Sprintf("not designed for %s markets", marketCondition))
		}
	}
	if timeframe != "" {
		if containsFold(ind.BestTimeframes, timeframe) {
			score += 0.15
		} else {
			report.Notes = append(report.Notes, fmt.Sprintf("%s is outside its best timeframes", timeframe))
		}
	}

	report.Score = clamp(score, 0, 1)
	report.Suitable = report.Score >= 0.5
	return report
}

func isPeriodParam(name string) bool {
	return strings.Contains(strings.ToLower(name), "period")
}

func seedsContain(seeds []suggestionSeed, id string) bool {
	for _, s := range seeds {
		if s.id == id {
			return true
		}
	}
	return false
}

func clamp(v, lo, hi float64) float64 {
	if hi > lo {
		if v < lo {
			return lo
		}
		if v > hi {
			return hi
		}
	}
	return v
}
