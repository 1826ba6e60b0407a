package risk

import "StratParse/internal/domain/models"

func comp(id, name, reason string) models.StrategyComponent {
	return models.StrategyComponent{ID: id, Name: name, Reason: reason}
}

// riskProfiles is the static per-strategy-type risk posture table.
func riskProfiles() map[models.StrategyType]models.RiskProfile {
	return map[models.StrategyType]models.RiskProfile{
		models.StrategyTrendFollowing: {
			StrategyType: models.StrategyTrendFollowing, BaseRisk: models.RiskLow,
			MaxPositionRatio: 0.10, RecommendedStopPct: 3, MaxLeverage: 3,
			Notes: []string{"losses cluster in choppy regimes; the trend filter is the real risk control"},
		},
		models.StrategyMeanReversion: {
			StrategyType: models.StrategyMeanReversion, BaseRisk: models.RiskMedium,
			MaxPositionRatio: 0.08, RecommendedStopPct: 2, MaxLeverage: 3,
			Notes: []string{"tail risk when a range breaks; hard stops are non-negotiable"},
		},
		models.StrategyBreakout: {
			StrategyType: models.StrategyBreakout, BaseRisk: models.RiskMedium,
			MaxPositionRatio: 0.08, RecommendedStopPct: 2.5, MaxLeverage: 3,
			Notes: []string{"false breaks are the dominant failure mode; volume confirmation matters"},
		},
		models.StrategyMomentum: {
			StrategyType: models.StrategyMomentum, BaseRisk: models.RiskHigh,
			MaxPositionRatio: 0.06, RecommendedStopPct: 2, MaxLeverage: 2,
			Notes: []string{"momentum reverses violently; exits must be mechanical"},
		},
		models.StrategyScalping: {
			StrategyType: models.StrategyScalping, BaseRisk: models.RiskHigh,
			MaxPositionRatio: 0.05, RecommendedStopPct: 0.5, MaxLeverage: 5,
			Notes: []string{"fees and slippage dominate; edge must survive costs"},
		},
		models.StrategyArbitrage: {
			StrategyType: models.StrategyArbitrage, BaseRisk: models.RiskMedium,
			MaxPositionRatio: 0.15, RecommendedStopPct: 1, MaxLeverage: 4,
			Notes: []string{"execution and correlation breakdown are the real risks"},
		},
		models.StrategyCustom: {
			StrategyType: models.StrategyCustom, BaseRisk: models.RiskMedium,
			MaxPositionRatio: 0.08, RecommendedStopPct: 2, MaxLeverage: 2,
		},
	}
}

// componentProfiles lists required and recommended strategy building blocks
// per archetype, used by completeness assessment and suggestions.
func componentProfiles() map[models.StrategyType]models.ComponentProfile {
	dataSource := comp("data_source", "Market Data Source", "every strategy needs price input")
	entrySignal := comp("entry_signal", "Entry Signal", "defines when to open a position")
	exitSignal := comp("exit_signal", "Exit Signal", "defines when to close a position")
	stopLoss := comp("stop_loss", "Stop Loss", "bounds the loss on any single trade")
	takeProfit := comp("take_profit", "Take Profit", "locks in gains at targets")
	positionSizing := comp("position_sizing", "Position Sizing", "keeps risk per trade constant")
	trendFilter := comp("trend_filter", "Trend Filter", "keeps entries aligned with the regime")
	volatilityFilter := comp("volatility_filter", "Volatility Filter", "skips hostile conditions")
	timeFilter := comp("time_filter", "Session/Time Filter", "restricts trading to liquid hours")
	hedgeLeg := comp("hedge_leg", "Hedge Leg", "offsets directional exposure")

	return map[models.StrategyType]models.ComponentProfile{
		models.StrategyTrendFollowing: {
			Required:    []models.StrategyComponent{dataSource, entrySignal, exitSignal, stopLoss},
			Recommended: []models.StrategyComponent{trendFilter, positionSizing, takeProfit},
			BaseRisk:    models.RiskLow,
		},
		models.StrategyMeanReversion: {
			Required:    []models.StrategyComponent{dataSource, entrySignal, exitSignal, stopLoss},
			Recommended: []models.StrategyComponent{volatilityFilter, positionSizing, takeProfit},
			BaseRisk:    models.RiskMedium,
		},
		models.StrategyBreakout: {
			Required:    []models.StrategyComponent{dataSource, entrySignal, stopLoss, positionSizing},
			Recommended: []models.StrategyComponent{volatilityFilter, takeProfit, timeFilter},
			BaseRisk:    models.RiskMedium,
		},
		models.StrategyMomentum: {
			Required:    []models.StrategyComponent{dataSource, entrySignal, exitSignal, stopLoss},
			Recommended: []models.StrategyComponent{positionSizing, volatilityFilter},
			BaseRisk:    models.RiskHigh,
		},
		models.StrategyScalping: {
			Required:    []models.StrategyComponent{dataSource, entrySignal, exitSignal, stopLoss, timeFilter},
			Recommended: []models.StrategyComponent{positionSizing, volatilityFilter},
			BaseRisk:    models.RiskHigh,
		},
		models.StrategyArbitrage: {
			Required:    []models.StrategyComponent{dataSource, entrySignal, exitSignal, hedgeLeg},
			Recommended: []models.StrategyComponent{positionSizing, timeFilter},
			BaseRisk:    models.RiskMedium,
		},
		models.StrategyCustom: {
			Required:    []models.StrategyComponent{dataSource, entrySignal, exitSignal, stopLoss},
			Recommended: []models.StrategyComponent{positionSizing, takeProfit},
			BaseRisk:    models.RiskMedium,
		},
	}
}
