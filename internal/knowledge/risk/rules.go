package risk

import "StratParse/internal/domain/models"

// builtinRules is the static condition→action catalog. An empty
// ApplicableStrategies slice means the rule applies to every strategy type.
func builtinRules() []models.RiskRule {
	return []models.RiskRule{
		{
			ID:        "max_position_ratio",
			Category:  "position_sizing",
			RiskLevel: models.RiskHigh,
			Conditions: []models.RiskCondition{
				{Metric: models.MetricPositionRatio, Operator: models.OpGreaterThan, Value: 0.20},
			},
			Actions: []models.RiskAction{
				{Kind: models.ActionReducePosition, Factor: 0.5, Message: "position exceeds 20% of account balance; cut size at least in half"},
			},
			Priority: 100,
			Enabled:  true,
		},
		{
			ID:        "elevated_position_ratio",
			Category:  "position_sizing",
			RiskLevel: models.RiskMedium,
			Conditions: []models.RiskCondition{
				{Metric: models.MetricPositionRatio, Operator: models.OpBetween, Value: 0.10, Upper: 0.20},
			},
			Actions: []models.RiskAction{
				{Kind: models.ActionWarn, Message: "position between 10% and 20% of balance is aggressive for most strategies"},
			},
			Priority: 90,
			Enabled:  true,
		},
		{
			ID:        "missing_stop_loss",
			Category:  "stop_loss",
			RiskLevel: models.RiskHigh,
			Conditions: []models.RiskCondition{
				{Metric: models.MetricStopLossPercent, Operator: models.OpEqualTo, Value: 0},
			},
			Actions: []models.RiskAction{
				{Kind: models.ActionRequireStopLoss, Message: "no stop loss defined; every position needs a predefined exit"},
			},
			Priority: 95,
			Enabled:  true,
		},
		{
			ID:        "wide_stop_loss",
			Category:  "stop_loss",
			RiskLevel: models.RiskMedium,
			Conditions: []models.RiskCondition{
				{Metric: models.MetricStopLossPercent, Operator: models.OpGreaterThan, Value: 10},
			},
			Actions: []models.RiskAction{
				{Kind: models.ActionWarn, Message: "stop loss wider than 10% implies outsized per-trade loss; reduce size to compensate"},
			},
			Priority: 70,
			Enabled:  true,
		},
		{
			ID:        "tight_stop_scalping",
			Category:  "stop_loss",
			ApplicableStrategies: []models.StrategyType{
				models.StrategyScalping, models.StrategyMomentum,
			},
			RiskLevel: models.RiskLow,
			Conditions: []models.RiskCondition{
				{Metric: models.MetricStopLossPercent, Operator: models.OpGreaterThan, Value: 2},
			},
			Actions: []models.RiskAction{
				{Kind: models.ActionSuggest, Message: "fast strategies usually keep stops under 2%; a wider stop defeats the edge"},
			},
			Priority: 50,
			Enabled:  true,
		},
		{
			ID:        "excessive_leverage",
			Category:  "leverage",
			RiskLevel: models.RiskVeryHigh,
			Conditions: []models.RiskCondition{
				{Metric: models.MetricLeverage, Operator: models.OpGreaterThan, Value: 10},
			},
			Actions: []models.RiskAction{
				{Kind: models.ActionCapLeverage, Limit: 10, Message: "leverage above 10x can liquidate the position on routine volatility"},
			},
			Priority: 100,
			Enabled:  true,
		},
		{
			ID:        "moderate_leverage",
			Category:  "leverage",
			RiskLevel: models.RiskMedium,
			Conditions: []models.RiskCondition{
				{Metric: models.MetricLeverage, Operator: models.OpBetween, Value: 3, Upper: 10},
			},
			Actions: []models.RiskAction{
				{Kind: models.ActionWarn, Message: "leverage between 3x and 10x amplifies both drawdowns and fees"},
			},
			Priority: 60,
			Enabled:  true,
		},
		{
			ID:        "drawdown_limit",
			Category:  "drawdown",
			RiskLevel: models.RiskHigh,
			Conditions: []models.RiskCondition{
				{Metric: models.MetricDrawdown, Operator: models.OpGreaterThan, Value: 10},
			},
			Actions: []models.RiskAction{
				{Kind: models.ActionReducePosition, Factor: 0.5, Message: "drawdown beyond 10%; halve risk until equity recovers"},
			},
			Priority: 85,
			Enabled:  true,
		},
		{
			ID:        "volatility_spike",
			Category:  "volatility",
			RiskLevel: models.RiskMedium,
			Conditions: []models.RiskCondition{
				{Metric: models.MetricVolatilityRatio, Operator: models.OpGreaterThan, Value: 2},
			},
			Actions: []models.RiskAction{
				{Kind: models.ActionReducePosition, Factor: 0.7, Message: "volatility above 2x normal; shrink size so risk per trade stays constant"},
			},
			Priority: 80,
			Enabled:  true,
		},
		{
			ID:        "mean_reversion_in_volatility",
			Category:  "volatility",
			ApplicableStrategies: []models.StrategyType{
				models.StrategyMeanReversion,
			},
			RiskLevel: models.RiskHigh,
			Conditions: []models.RiskCondition{
				{Metric: models.MetricVolatilityRatio, Operator: models.OpGreaterThan, Value: 1.5},
			},
			Actions: []models.RiskAction{
				{Kind: models.ActionWarn, Message: "fading extremes during a volatility expansion fights the dominant flow"},
			},
			Priority: 75,
			Enabled:  true,
		},
		{
			ID:        "correlated_exposure",
			Category:  "correlation",
			RiskLevel: models.RiskMedium,
			Conditions: []models.RiskCondition{
				{Metric: models.MetricCorrelation, Operator: models.OpGreaterThan, Value: 0.7},
			},
			Actions: []models.RiskAction{
				{Kind: models.ActionWarn, Message: "highly correlated positions behave like one oversized position"},
			},
			Priority: 65,
			Enabled:  true,
		},
		{
			ID:        "low_win_rate",
			Category:  "expectancy",
			RiskLevel: models.RiskMedium,
			Conditions: []models.RiskCondition{
				{Metric: models.MetricWinRate, Operator: models.OpLessThan, Value: 0.35},
			},
			Actions: []models.RiskAction{
				{Kind: models.ActionSuggest, Message: "win rate under 35% requires a reward/risk ratio above 2 to stay profitable"},
			},
			Priority: 55,
			Enabled:  true,
		},
		{
			ID:        "low_signal_confidence",
			Category:  "signal_quality",
			RiskLevel: models.RiskLow,
			Conditions: []models.RiskCondition{
				{Metric: models.MetricConfidence, Operator: models.OpLessThan, Value: 0.5},
			},
			Actions: []models.RiskAction{
				{Kind: models.ActionSuggest, Message: "low-confidence setups deserve reduced size or no trade at all"},
			},
			Priority: 40,
			Enabled:  true,
		},
		{
			ID:        "breakout_without_volume",
			Category:  "signal_quality",
			ApplicableStrategies: []models.StrategyType{
				models.StrategyBreakout,
			},
			RiskLevel: models.RiskMedium,
			Conditions: []models.RiskCondition{
				{Metric: models.MetricVolatilityRatio, Operator: models.OpLessThan, Value: 0.8},
			},
			Actions: []models.RiskAction{
				{Kind: models.ActionWarn, Message: "breakouts in quiet conditions fail more often; wait for expansion"},
			},
			Priority: 45,
			Enabled:  true,
		},
	}
}
