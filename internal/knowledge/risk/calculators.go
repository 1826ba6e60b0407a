package risk

import (
	"math"
	"sort"

	"StratParse/internal/domain/models"
)

// maxPositionShare caps any computed size at 10% of account balance.
const maxPositionShare = 0.10

// CalculatePositionSize derives a position size from account balance and
// risk per trade, scaled inversely with stop distance and dampened for
// volatility, low confidence and correlated exposure.
func (e *Engine) CalculatePositionSize(in models.PositionSizeInput) models.PositionSizeResult {
	res := models.PositionSizeResult{}
	if in.AccountBalance <= 0 || in.RiskPerTrade <= 0 {
		return res
	}

	size := in.AccountBalance * in.RiskPerTrade
	if in.StopDistancePct > 0 {
		size = in.AccountBalance * in.RiskPerTrade / (in.StopDistancePct / 100)
		res.Adjustments = append(res.Adjustments, "scaled by stop distance")
	}
	if in.VolatilityRatio > 1.5 {
		size /= math.Sqrt(in.VolatilityRatio)
		res.Adjustments = append(res.Adjustments, "reduced for elevated volatility")
	}
	if in.Confidence > 0 && in.Confidence < 0.8 {
		size *= in.Confidence
		res.Adjustments = append(res.Adjustments, "reduced for low signal confidence")
	}
	if in.Correlation > 0.5 {
		size *= 1 - (in.Correlation-0.5)
		res.Adjustments = append(res.Adjustments, "reduced for correlated exposure")
	}

	limit := in.AccountBalance * maxPositionShare
	if size > limit {
		size = limit
		res.Capped = true
		res.Adjustments = append(res.Adjustments, "capped at 10% of account balance")
	}
	if size < 0 {
		size = 0
	}
	res.Size = math.Round(size*100) / 100
	return res
}

// CalculateRiskReward classifies the reward/risk ratio of a planned trade.
// When the caller supplies no win probability, a fixed lookup keyed on the
// ratio class is used; expectancy = winProb*reward - (1-winProb)*risk.
func (e *Engine) CalculateRiskReward(entry, stop, target float64, winProbability *float64) models.RiskRewardAnalysis {
	analysis := models.RiskRewardAnalysis{Classification: models.RRUnacceptable}
	riskDist := math.Abs(entry - stop)
	rewardDist := math.Abs(target - entry)
	if riskDist == 0 {
		return analysis
	}

	ratio := rewardDist / riskDist
	analysis.Ratio = math.Round(ratio*100) / 100
	switch {
	case ratio >= 3:
		analysis.Classification = models.RRExcellent
	case ratio >= 2:
		analysis.Classification = models.RRGood
	case ratio >= 1.5:
		analysis.Classification = models.RRAcceptable
	case ratio >= 1:
		analysis.Classification = models.RRPoor
	}

	if winProbability != nil && *winProbability > 0 && *winProbability <= 1 {
		analysis.WinProbability = *winProbability
	} else {
		analysis.WinProbability = assumedWinProbability(analysis.Classification)
	}
	analysis.Expectancy = analysis.WinProbability*rewardDist - (1-analysis.WinProbability)*riskDist
	analysis.Expectancy = math.Round(analysis.Expectancy*100) / 100
	return analysis
}

// assumedWinProbability reflects that higher reward targets are hit less
// often when no empirical win rate is available.
func assumedWinProbability(c models.RiskRewardClass) float64 {
	switch c {
	case models.RRExcellent:
		return 0.35
	case models.RRGood:
		return 0.40
	case models.RRAcceptable:
		return 0.45
	case models.RRPoor:
		return 0.50
	}
	return 0.55
}

// SuggestRiskComponents returns components missing from a declared strategy,
// required before recommended.
func (e *Engine) SuggestRiskComponents(st models.StrategyType, existing []string) []models.ComponentSuggestion {
	profile := e.ComponentProfileFor(st)
	have := make(map[string]bool, len(existing))
	for _, id := range existing {
		have[id] = true
	}

	var out []models.ComponentSuggestion
	for _, c := range profile.Required {
		if !have[c.ID] {
			out = append(out, models.ComponentSuggestion{Component: c, Required: true})
		}
	}
	for _, c := range profile.Recommended {
		if !have[c.ID] {
			out = append(out, models.ComponentSuggestion{Component: c, Required: false})
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Required != out[j].Required {
			return out[i].Required
		}
		return out[i].Component.ID < out[j].Component.ID
	})
	return out
}

// AssessStrategyCompleteness scores declared components against the profile:
// 70% weight on required coverage, 30% on recommended. The base risk level
// escalates one step per missing required component.
func (e *Engine) AssessStrategyCompleteness(st models.StrategyType, components []string) models.CompletenessReport {
	profile := e.ComponentProfileFor(st)
	have := make(map[string]bool, len(components))
	for _, id := range components {
		have[id] = true
	}

	report := models.CompletenessReport{
		MissingRequired:    []models.StrategyComponent{},
		MissingRecommended: []models.StrategyComponent{},
	}
	reqHave := 0
	for _, c := range profile.Required {
		if have[c.ID] {
			reqHave++
		} else {
			report.MissingRequired = append(report.MissingRequired, c)
		}
	}
	recHave := 0
	for _, c := range profile.Recommended {
		if have[c.ID] {
			recHave++
		} else {
			report.MissingRecommended = append(report.MissingRecommended, c)
		}
	}

	score := 0.0
	if len(profile.Required) > 0 {
		score += 70 * float64(reqHave) / float64(len(profile.Required))
	} else {
		score += 70
	}
	if len(profile.Recommended) > 0 {
		score += 30 * float64(recHave) / float64(len(profile.Recommended))
	} else {
		score += 30
	}
	report.Completeness = math.Round(score*10) / 10

	rank := models.RiskRank(profile.BaseRisk) + len(report.MissingRequired)
	report.RiskLevel = models.RiskLevelFromRank(rank)
	return report
}
