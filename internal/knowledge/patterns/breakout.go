package patterns

import "StratParse/internal/domain/models"

// breakoutTable is the static breakout archetype library.
func breakoutTable() []models.TradingPattern {
	return []models.TradingPattern{
		{
			ID:               "range_breakout",
			Name:             "Range Breakout",
			Keywords:         []string{"breakout", "range", "consolidation", "breaks above", "resistance"},
			Indicators:       []string{"volume", "atr"},
			EntryConditions:  []string{"price breaks above range high", "volume expands on break"},
			ExitConditions:   []string{"measured move target", "close back inside range"},
			RiskManagement:   []string{"stop loss inside the range", "wait for retest on low volume breaks"},
			Timeframes:       []string{"15m", "1h", "4h", "1d"},
			MarketConditions: []string{"consolidation", "volatile"},
			Difficulty:       models.DifficultyBeginner,
			SuccessRate:      0.5,
			RiskLevel:        models.RiskMedium,
			Examples:         []string{"buy the breakout above resistance with volume"},
			Variations:       []string{"opening range breakout", "retest entry"},
		},
		{
			ID:               "bollinger_squeeze",
			Name:             "Bollinger Squeeze Breakout",
			Keywords:         []string{"squeeze", "bollinger", "volatility contraction", "expansion"},
			Indicators:       []string{"bollinger", "atr", "volume"},
			EntryConditions:  []string{"band width at multi-period low", "price closes outside bands"},
			ExitConditions:   []string{"band expansion stalls", "opposite band touch"},
			RiskManagement:   []string{"stop loss at middle band", "scale out into expansion"},
			Timeframes:       []string{"1h", "4h", "1d"},
			MarketConditions: []string{"consolidation", "low volatility"},
			Difficulty:       models.DifficultyIntermediate,
			SuccessRate:      0.53,
			RiskLevel:        models.RiskMedium,
		},
		{
			ID:               "volume_breakout",
			Name:             "Volume Surge Breakout",
			Keywords:         []string{"volume", "surge", "breakout", "spike", "high volume"},
			Indicators:       []string{"volume", "obv", "vwap"},
			EntryConditions:  []string{"volume above 2x average", "price clears resistance"},
			ExitConditions:   []string{"volume dries up", "target reached"},
			RiskManagement:   []string{"stop loss below breakout level", "cut quickly if volume fails"},
			Timeframes:       []string{"5m", "15m", "1h"},
			MarketConditions: []string{"volatile", "high volume"},
			Difficulty:       models.DifficultyIntermediate,
			SuccessRate:      0.51,
			RiskLevel:        models.RiskHigh,
		},
		{
			ID:               "donchian_channel",
			Name:             "Channel High Breakout",
			Keywords:         []string{"channel", "donchian", "new high", "20 day high", "turtle"},
			Indicators:       []string{"atr", "sma"},
			EntryConditions:  []string{"price exceeds n-period high"},
			ExitConditions:   []string{"price falls below n-period low"},
			RiskManagement:   []string{"atr sized position", "2 atr stop loss"},
			Timeframes:       []string{"1d", "1w"},
			MarketConditions: []string{"trending", "volatile"},
			Difficulty:       models.DifficultyIntermediate,
			SuccessRate:      0.48,
			RiskLevel:        models.RiskMedium,
			Examples:         []string{"buy a 20 day high breakout"},
		},
		{
			ID:               "triangle_break",
			Name:             "Triangle Pattern Break",
			Keywords:         []string{"triangle", "wedge", "pennant", "apex", "pattern"},
			Indicators:       []string{"volume", "atr"},
			EntryConditions:  []string{"price breaks triangle boundary before apex", "volume confirms"},
			ExitConditions:   []string{"measured move of triangle height"},
			RiskManagement:   []string{"stop loss inside the triangle"},
			Timeframes:       []string{"1h", "4h", "1d"},
			MarketConditions: []string{"consolidation"},
			Difficulty:       models.DifficultyAdvanced,
			SuccessRate:      0.5,
			RiskLevel:        models.RiskMedium,
		},
		{
			ID:               "momentum_breakout",
			Name:             "Momentum Ignition Breakout",
			Keywords:         []string{"momentum", "ignition", "fast move", "acceleration", "scalp"},
			Indicators:       []string{"macd", "volume", "vwap"},
			EntryConditions:  []string{"sharp momentum burst through level", "macd histogram expands"},
			ExitConditions:   []string{"momentum stalls", "fixed target"},
			RiskManagement:   []string{"very tight stop loss", "small size high frequency"},
			Timeframes:       []string{"1m", "5m"},
			MarketConditions: []string{"volatile", "high volume"},
			Difficulty:       models.DifficultyAdvanced,
			SuccessRate:      0.47,
			RiskLevel:        models.RiskVeryHigh,
		},
		{
			ID:               "support_resistance_flip",
			Name:             "Support/Resistance Flip",
			Keywords:         []string{"flip", "retest", "support becomes resistance", "breakout retest"},
			Indicators:       []string{"ema", "volume"},
			EntryConditions:  []string{"broken resistance retested as support", "rejection candle on retest"},
			ExitConditions:   []string{"next resistance level"},
			RiskManagement:   []string{"stop loss below flipped level"},
			Timeframes:       []string{"1h", "4h", "1d"},
			MarketConditions: []string{"trending", "consolidation"},
			Difficulty:       models.DifficultyIntermediate,
			SuccessRate:      0.54,
			RiskLevel:        models.RiskMedium,
		},
		{
			ID:               "news_volatility_break",
			Name:             "Volatility Event Breakout",
			Keywords:         []string{"news", "event", "volatility", "expansion", "straddle"},
			Indicators:       []string{"atr", "volume"},
			EntryConditions:  []string{"atr expands sharply", "price clears pre-event range"},
			ExitConditions:   []string{"volatility normalizes", "time stop"},
			RiskManagement:   []string{"half size during events", "wide atr stop loss"},
			Timeframes:       []string{"5m", "15m", "1h"},
			MarketConditions: []string{"volatile"},
			Difficulty:       models.DifficultyAdvanced,
			SuccessRate:      0.46,
			RiskLevel:        models.RiskVeryHigh,
		},
	}
}
