package vocabulary

import "StratParse/internal/domain/models"

func indicator(id, canonical string, confidence float64, synonyms ...string) Entry {
	return Entry{
		Canonical:  canonical,
		Synonyms:   synonyms,
		TokenType:  models.TokenIndicator,
		Confidence: confidence,
		Metadata:   map[string]interface{}{"id": id},
	}
}

func action(id, canonical string, synonyms ...string) Entry {
	return Entry{
		Canonical:  canonical,
		Synonyms:   synonyms,
		TokenType:  models.TokenAction,
		Confidence: 0.9,
		Metadata:   map[string]interface{}{"id": id},
	}
}

func condition(id, canonical string, synonyms ...string) Entry {
	return Entry{
		Canonical:  canonical,
		Synonyms:   synonyms,
		TokenType:  models.TokenCondition,
		Confidence: 0.85,
		Metadata:   map[string]interface{}{"id": id},
	}
}

func parameter(id, canonical string, synonyms ...string) Entry {
	return Entry{
		Canonical:  canonical,
		Synonyms:   synonyms,
		TokenType:  models.TokenParameter,
		Confidence: 0.85,
		Metadata:   map[string]interface{}{"id": id},
	}
}

func timeframe(normalized, canonical string, synonyms ...string) Entry {
	return Entry{
		Canonical:  canonical,
		Synonyms:   synonyms,
		TokenType:  models.TokenTimeframe,
		Confidence: 0.9,
		Metadata:   map[string]interface{}{"id": normalized, "normalized": normalized},
	}
}

func operator(id, canonical string, synonyms ...string) Entry {
	return Entry{
		Canonical:  canonical,
		Synonyms:   synonyms,
		TokenType:  models.TokenOperator,
		Confidence: 0.9,
		Metadata:   map[string]interface{}{"id": id},
	}
}

func modifier(canonical string, synonyms ...string) Entry {
	return Entry{
		Canonical:  canonical,
		Synonyms:   synonyms,
		TokenType:  models.TokenModifier,
		Confidence: 0.7,
		Metadata:   map[string]interface{}{"id": canonical},
	}
}

// builtinEntries is the curated trading vocabulary. Indicator metadata ids
// line up with the indicator database catalog ids.
func builtinEntries() []Entry {
	return []Entry{
		// Indicators
		indicator("rsi", "rsi", 0.95, "relative strength index", "relative strength"),
		indicator("sma", "sma", 0.95, "simple moving average", "moving average", "ma"),
		indicator("ema", "ema", 0.95, "exponential moving average", "exp moving average"),
		indicator("macd", "macd", 0.95, "moving average convergence divergence", "macd histogram"),
		indicator("bollinger", "bollinger bands", 0.95, "bollinger", "bbands", "bollinger band"),
		indicator("stochastic", "stochastic", 0.9, "stochastic oscillator", "stoch"),
		indicator("atr", "atr", 0.9, "average true range", "true range"),
		indicator("adx", "adx", 0.9, "average directional index", "directional index"),
		indicator("obv", "obv", 0.85, "on balance volume", "on-balance volume"),
		indicator("vwap", "vwap", 0.9, "volume weighted average price", "volume-weighted average price"),
		indicator("williams_r", "williams %r", 0.85, "williams r", "williams percent r"),
		indicator("cci", "cci", 0.85, "commodity channel index"),
		indicator("volume", "volume", 0.7, "trading volume", "vol"),

		// Actions
		action("buy", "buy", "buys", "buying", "purchase", "long", "go long", "enter long", "open long"),
		action("sell", "sell", "sells", "selling", "short", "go short", "enter short", "open short"),
		action("exit", "exit", "close", "close position", "take profits", "exit position"),
		action("hold", "hold", "wait", "stay out"),
		action("scale_in", "scale in", "add to position", "pyramid"),
		action("scale_out", "scale out", "reduce position", "trim position"),

		// Conditions
		condition("oversold", "oversold", "over sold", "too low"),
		condition("overbought", "overbought", "over bought", "too high"),
		condition("crossover", "crossover", "crosses over", "crosses above", "golden cross", "cross above"),
		condition("crossunder", "crossunder", "crosses under", "crosses below", "death cross", "cross below"),
		condition("breakout", "breakout", "breaks out", "break out", "breaks above", "breaks resistance"),
		condition("breakdown", "breakdown", "breaks down", "breaks below", "breaks support"),
		condition("divergence", "divergence", "diverges", "divergent"),
		condition("uptrend", "uptrend", "up trend", "trending up", "upward trend", "bullish trend"),
		condition("downtrend", "downtrend", "down trend", "trending down", "downward trend", "bearish trend"),
		condition("support", "support", "support level"),
		condition("resistance", "resistance", "resistance level"),
		condition("pullback", "pullback", "pull back", "retracement", "dip"),
		condition("reversal", "reversal", "reverses", "reversion", "reverts", "mean reversion"),
		condition("consolidation", "consolidation", "consolidates", "range bound", "sideways", "squeeze"),
		condition("momentum", "momentum", "momo"),
		condition("volatile", "volatility spike", "volatile", "high volatility"),

		// Parameters
		parameter("period", "period", "periods", "length", "lookback", "window"),
		parameter("stopLoss", "stop loss", "stop-loss", "stoploss", "stop", "sl"),
		parameter("takeProfit", "take profit", "take-profit", "takeprofit", "target", "tp", "profit target"),
		parameter("threshold", "threshold", "level", "trigger level"),
		parameter("positionSize", "position size", "size", "allocation", "position sizing"),
		parameter("leverage", "leverage", "margin", "leveraged"),
		parameter("riskPerTrade", "risk per trade", "risk percentage", "risk per position"),
		parameter("trailingStop", "trailing stop", "trailing stop loss", "trail"),

		// Timeframes
		timeframe("1m", "1m", "1 minute", "one minute", "1min"),
		timeframe("5m", "5m", "5 minutes", "five minute", "5min"),
		timeframe("15m", "15m", "15 minutes", "15min"),
		timeframe("30m", "30m", "30 minutes", "30min"),
		timeframe("1h", "1h", "1 hour", "hourly", "one hour"),
		timeframe("4h", "4h", "4 hours", "four hour"),
		timeframe("1d", "1d", "daily", "1 day", "day chart"),
		timeframe("1w", "1w", "weekly", "1 week"),

		// Operators
		operator("gt", "above", "over", "greater than", "higher than", "exceeds", ">"),
		operator("lt", "below", "under", "less than", "lower than", "beneath", "<"),
		operator("gte", "at or above", "at least", ">="),
		operator("lte", "at or below", "at most", "<="),
		operator("eq", "equals", "equal to", "at", "="),

		// Modifiers
		modifier("strong", "strongly", "aggressive", "aggressively"),
		modifier("weak", "weakly", "slightly", "conservative", "conservatively"),
		modifier("fast", "quick", "quickly", "rapid", "short term", "short-term"),
		modifier("slow", "slowly", "gradual", "long term", "long-term"),
		modifier("confirmed", "confirmation", "confirm", "confirms"),
	}
}
