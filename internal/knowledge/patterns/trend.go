package patterns

import "StratParse/internal/domain/models"

// trendFollowingTable is the static trend-following archetype library.
func trendFollowingTable() []models.TradingPattern {
	return []models.TradingPattern{
		{
			ID:               "ma_crossover",
			Name:             "Moving Average Crossover",
			Keywords:         []string{"moving average", "crossover", "golden cross", "trend", "cross above"},
			Indicators:       []string{"sma", "ema"},
			EntryConditions:  []string{"fast ma crosses above slow ma", "price above both averages"},
			ExitConditions:   []string{"fast ma crosses below slow ma", "trailing stop hit"},
			RiskManagement:   []string{"stop loss below recent swing low", "trail stop with slow ma"},
			Timeframes:       []string{"1h", "4h", "1d"},
			MarketConditions: []string{"trending", "low volatility"},
			Difficulty:       models.DifficultyBeginner,
			SuccessRate:      0.55,
			RiskLevel:        models.RiskLow,
			Examples:         []string{"buy when the 50 ema crosses above the 200 ema"},
			Variations:       []string{"triple ma crossover", "price/ma crossover"},
		},
		{
			ID:               "macd_trend",
			Name:             "MACD Trend Confirmation",
			Keywords:         []string{"macd", "trend", "momentum", "signal line", "histogram"},
			Indicators:       []string{"macd", "ema"},
			EntryConditions:  []string{"macd crosses above signal line", "histogram turns positive"},
			ExitConditions:   []string{"macd crosses below signal line", "histogram weakens"},
			RiskManagement:   []string{"stop loss at entry swing", "scale out at resistance"},
			Timeframes:       []string{"1h", "4h", "1d"},
			MarketConditions: []string{"trending"},
			Difficulty:       models.DifficultyIntermediate,
			SuccessRate:      0.52,
			RiskLevel:        models.RiskMedium,
			Examples:         []string{"enter long when macd turns bullish on the 4h chart"},
		},
		{
			ID:               "adx_trend_strength",
			Name:             "ADX Trend Strength Filter",
			Keywords:         []string{"adx", "trend strength", "strong trend", "directional"},
			Indicators:       []string{"adx", "ema"},
			EntryConditions:  []string{"adx above 25", "di+ above di-"},
			ExitConditions:   []string{"adx falls below 20", "di crossover"},
			RiskManagement:   []string{"skip entries in weak trends", "fixed percent stop loss"},
			Timeframes:       []string{"4h", "1d"},
			MarketConditions: []string{"trending"},
			Difficulty:       models.DifficultyIntermediate,
			SuccessRate:      0.54,
			RiskLevel:        models.RiskMedium,
		},
		{
			ID:               "pullback_entry",
			Name:             "Trend Pullback Entry",
			Keywords:         []string{"pullback", "dip", "retracement", "buy the dip", "trend continuation"},
			Indicators:       []string{"ema", "rsi", "fibonacci"},
			EntryConditions:  []string{"price pulls back to moving average in uptrend", "rsi resets below 50"},
			ExitConditions:   []string{"prior high reached", "trend structure breaks"},
			RiskManagement:   []string{"stop loss below pullback low", "position size by atr"},
			Timeframes:       []string{"1h", "4h", "1d"},
			MarketConditions: []string{"trending"},
			Difficulty:       models.DifficultyIntermediate,
			SuccessRate:      0.58,
			RiskLevel:        models.RiskMedium,
			Examples:         []string{"buy the dip to the 20 ema in an uptrend"},
		},
		{
			ID:               "vwap_trend",
			Name:             "VWAP Trend Ride",
			Keywords:         []string{"vwap", "intraday trend", "institutional", "volume weighted"},
			Indicators:       []string{"vwap", "volume"},
			EntryConditions:  []string{"price holds above vwap", "volume confirms direction"},
			ExitConditions:   []string{"price closes below vwap", "session end"},
			RiskManagement:   []string{"stop loss just below vwap", "intraday only"},
			Timeframes:       []string{"5m", "15m", "30m"},
			MarketConditions: []string{"trending", "high volume"},
			Difficulty:       models.DifficultyIntermediate,
			SuccessRate:      0.51,
			RiskLevel:        models.RiskMedium,
		},
		{
			ID:               "supertrend_follow",
			Name:             "ATR Channel Trend Following",
			Keywords:         []string{"atr", "channel", "volatility stop", "trend following"},
			Indicators:       []string{"atr", "ema"},
			EntryConditions:  []string{"price closes above the atr band", "trend direction flips up"},
			ExitConditions:   []string{"price closes below the atr band"},
			RiskManagement:   []string{"atr based trailing stop", "one position per direction"},
			Timeframes:       []string{"1h", "4h", "1d"},
			MarketConditions: []string{"trending", "volatile"},
			Difficulty:       models.DifficultyAdvanced,
			SuccessRate:      0.5,
			RiskLevel:        models.RiskMedium,
		},
		{
			ID:               "higher_highs",
			Name:             "Higher Highs Structure",
			Keywords:         []string{"higher highs", "higher lows", "market structure", "uptrend", "swing"},
			Indicators:       []string{"ema"},
			EntryConditions:  []string{"sequence of higher highs and higher lows", "break of prior swing high"},
			ExitConditions:   []string{"lower low printed", "structure break"},
			RiskManagement:   []string{"stop loss below last higher low"},
			Timeframes:       []string{"4h", "1d", "1w"},
			MarketConditions: []string{"trending"},
			Difficulty:       models.DifficultyBeginner,
			SuccessRate:      0.53,
			RiskLevel:        models.RiskLow,
		},
		{
			ID:               "obv_trend_confirm",
			Name:             "OBV Trend Confirmation",
			Keywords:         []string{"obv", "volume trend", "accumulation", "confirmation"},
			Indicators:       []string{"obv", "sma"},
			EntryConditions:  []string{"obv makes new high with price", "obv above its moving average"},
			ExitConditions:   []string{"obv diverges from price"},
			RiskManagement:   []string{"reduce size on divergence", "fixed percent stop loss"},
			Timeframes:       []string{"1d", "1w"},
			MarketConditions: []string{"trending", "high volume"},
			Difficulty:       models.DifficultyAdvanced,
			SuccessRate:      0.5,
			RiskLevel:        models.RiskMedium,
		},
	}
}
