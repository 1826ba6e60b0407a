package patterns

import "StratParse/internal/domain/models"

// meanReversionTable is the static mean-reversion archetype library.
func meanReversionTable() []models.TradingPattern {
	return []models.TradingPattern{
		{
			ID:               "rsi_oversold_overbought",
			Name:             "RSI Oversold/Overbought Reversion",
			Keywords:         []string{"rsi", "oversold", "overbought", "reversion", "below 30", "above 70"},
			Indicators:       []string{"rsi"},
			EntryConditions:  []string{"rsi below oversold level", "rsi turns up from oversold"},
			ExitConditions:   []string{"rsi returns to midline", "rsi reaches overbought level"},
			RiskManagement:   []string{"stop loss beyond recent extreme", "small position size"},
			Timeframes:       []string{"15m", "1h", "4h", "1d"},
			MarketConditions: []string{"ranging", "consolidation"},
			Difficulty:       models.DifficultyBeginner,
			SuccessRate:      0.57,
			RiskLevel:        models.RiskMedium,
			Examples:         []string{"buy when rsi is below 30", "sell when rsi is above 70"},
			Variations:       []string{"rsi 2-period scalp", "rsi divergence reversion"},
		},
		{
			ID:               "bollinger_reversion",
			Name:             "Bollinger Band Reversion",
			Keywords:         []string{"bollinger", "bands", "band touch", "reversion", "standard deviation"},
			Indicators:       []string{"bollinger", "rsi"},
			EntryConditions:  []string{"price touches lower band", "close back inside bands"},
			ExitConditions:   []string{"price reaches middle band", "price reaches opposite band"},
			RiskManagement:   []string{"stop loss beyond band extreme", "avoid during breakouts"},
			Timeframes:       []string{"15m", "1h", "4h"},
			MarketConditions: []string{"ranging", "low volatility"},
			Difficulty:       models.DifficultyIntermediate,
			SuccessRate:      0.55,
			RiskLevel:        models.RiskMedium,
			Examples:         []string{"buy the touch of the lower bollinger band in a range"},
		},
		{
			ID:               "stochastic_reversal",
			Name:             "Stochastic Reversal",
			Keywords:         []string{"stochastic", "oversold", "overbought", "k crosses d", "reversal"},
			Indicators:       []string{"stochastic"},
			EntryConditions:  []string{"stochastic below 20", "%k crosses above %d"},
			ExitConditions:   []string{"stochastic above 80", "%k crosses below %d"},
			RiskManagement:   []string{"tight stop loss beyond swing", "skip in strong trends"},
			Timeframes:       []string{"15m", "1h", "4h"},
			MarketConditions: []string{"ranging"},
			Difficulty:       models.DifficultyBeginner,
			SuccessRate:      0.54,
			RiskLevel:        models.RiskMedium,
		},
		{
			ID:               "vwap_reversion",
			Name:             "VWAP Mean Reversion",
			Keywords:         []string{"vwap", "reversion", "stretch", "fade", "mean"},
			Indicators:       []string{"vwap", "atr"},
			EntryConditions:  []string{"price stretched far from vwap", "momentum exhausts"},
			ExitConditions:   []string{"price returns to vwap"},
			RiskManagement:   []string{"atr sized stop loss", "intraday only"},
			Timeframes:       []string{"1m", "5m", "15m"},
			MarketConditions: []string{"ranging", "high volume"},
			Difficulty:       models.DifficultyAdvanced,
			SuccessRate:      0.52,
			RiskLevel:        models.RiskHigh,
		},
		{
			ID:               "cci_extreme",
			Name:             "CCI Extreme Fade",
			Keywords:         []string{"cci", "extreme", "fade", "commodity channel"},
			Indicators:       []string{"cci"},
			EntryConditions:  []string{"cci below -100", "cci turns back toward zero"},
			ExitConditions:   []string{"cci crosses zero", "cci reaches +100"},
			RiskManagement:   []string{"stop loss beyond entry extreme", "small position size"},
			Timeframes:       []string{"1h", "4h"},
			MarketConditions: []string{"ranging"},
			Difficulty:       models.DifficultyIntermediate,
			SuccessRate:      0.51,
			RiskLevel:        models.RiskMedium,
		},
		{
			ID:               "williams_r_bounce",
			Name:             "Williams %R Bounce",
			Keywords:         []string{"williams", "%r", "bounce", "oversold"},
			Indicators:       []string{"williams_r"},
			EntryConditions:  []string{"williams %r below -80", "turn up from oversold"},
			ExitConditions:   []string{"williams %r above -20"},
			RiskManagement:   []string{"fixed percent stop loss"},
			Timeframes:       []string{"15m", "1h", "4h"},
			MarketConditions: []string{"ranging"},
			Difficulty:       models.DifficultyBeginner,
			SuccessRate:      0.52,
			RiskLevel:        models.RiskMedium,
		},
		{
			ID:               "pair_spread_reversion",
			Name:             "Pair Spread Reversion",
			Keywords:         []string{"pairs", "spread", "correlated", "arbitrage", "convergence"},
			Indicators:       []string{"sma", "atr"},
			EntryConditions:  []string{"spread deviates beyond 2 sigma", "correlation holds"},
			ExitConditions:   []string{"spread converges to mean"},
			RiskManagement:   []string{"hedge both legs", "cut if correlation breaks"},
			Timeframes:       []string{"1h", "4h", "1d"},
			MarketConditions: []string{"ranging", "correlated"},
			Difficulty:       models.DifficultyAdvanced,
			SuccessRate:      0.56,
			RiskLevel:        models.RiskHigh,
		},
		{
			ID:               "gap_fill",
			Name:             "Gap Fill Reversion",
			Keywords:         []string{"gap", "gap fill", "open", "fade the gap"},
			Indicators:       []string{"vwap", "volume"},
			EntryConditions:  []string{"price gaps against prior close", "volume fades after open"},
			ExitConditions:   []string{"gap fills to prior close", "time stop"},
			RiskManagement:   []string{"stop loss beyond gap extreme", "intraday only"},
			Timeframes:       []string{"5m", "15m", "30m"},
			MarketConditions: []string{"ranging"},
			Difficulty:       models.DifficultyIntermediate,
			SuccessRate:      0.53,
			RiskLevel:        models.RiskMedium,
		},
	}
}
