package indicators

import "StratParse/internal/domain/models"

func fp(v float64) *float64 { return &v }

// catalog is the static indicator knowledge. IDs line up with the vocabulary
// metadata ids so tokenizer output resolves directly into this table.
func catalog() []models.TechnicalIndicator {
	return []models.TechnicalIndicator{
		{
			ID:          "rsi",
			Name:        "Relative Strength Index",
			Category:    models.CategoryMomentum,
			Description: "Momentum oscillator measuring speed and magnitude of recent price changes on a 0-100 scale.",
			Parameters: []models.IndicatorParameter{
				{Name: "period", Default: 14, Min: 2, Max: 50, Impact: "shorter periods react faster but whipsaw more"},
				{Name: "oversoldLevel", Default: 30, Min: 0, Max: 50, Impact: "lower levels demand deeper selloffs before signaling"},
				{Name: "overboughtLevel", Default: 70, Min: 50, Max: 100, Impact: "higher levels demand stronger rallies before signaling"},
			},
			Outputs: []string{"rsi"},
			Interpretation: models.Interpretation{
				Bullish:    []string{"rsi turns up from oversold", "bullish divergence with price"},
				Bearish:    []string{"rsi turns down from overbought", "bearish divergence with price"},
				Neutral:    []string{"rsi between 40 and 60"},
				Divergence: []string{"price new low with rsi higher low", "price new high with rsi lower high"},
				Overbought: fp(70),
				Oversold:   fp(30),
			},
			UseCases:         []string{"mean reversion entries", "divergence spotting", "trend strength filter"},
			BestTimeframes:   []string{"15m", "1h", "4h", "1d"},
			MarketConditions: []string{"ranging", "consolidation"},
			Combinations:     []string{"sma", "bollinger", "macd"},
			Difficulty:       models.DifficultyBeginner,
			Popularity:       98,
		},
		{
			ID:          "sma",
			Name:        "Simple Moving Average",
			Category:    models.CategoryTrend,
			Description: "Arithmetic mean of closing prices over a lookback window; the baseline trend filter.",
			Parameters: []models.IndicatorParameter{
				{Name: "period", Default: 20, Min: 1, Max: 200, Impact: "longer periods smooth more and lag more"},
			},
			Outputs: []string{"sma"},
			Interpretation: models.Interpretation{
				Bullish: []string{"price above rising sma", "fast sma above slow sma"},
				Bearish: []string{"price below falling sma", "fast sma below slow sma"},
				Neutral: []string{"price oscillating around flat sma"},
			},
			UseCases:         []string{"trend direction", "dynamic support and resistance", "crossover systems"},
			BestTimeframes:   []string{"1h", "4h", "1d", "1w"},
			MarketConditions: []string{"trending"},
			Combinations:     []string{"ema", "rsi", "volume"},
			Difficulty:       models.DifficultyBeginner,
			Popularity:       95,
		},
		{
			ID:          "ema",
			Name:        "Exponential Moving Average",
			Category:    models.CategoryTrend,
			Description: "Moving average weighting recent prices more heavily; reacts faster than the SMA.",
			Parameters: []models.IndicatorParameter{
				{Name: "period", Default: 20, Min: 1, Max: 200, Impact: "longer periods lag more"},
			},
			Outputs: []string{"ema"},
			Interpretation: models.Interpretation{
				Bullish: []string{"price holds above rising ema", "fast ema crosses above slow ema"},
				Bearish: []string{"price breaks below ema", "fast ema crosses below slow ema"},
			},
			UseCases:         []string{"trend following", "pullback entries", "crossover systems"},
			BestTimeframes:   []string{"15m", "1h", "4h", "1d"},
			MarketConditions: []string{"trending"},
			Combinations:     []string{"macd", "rsi", "adx"},
			Difficulty:       models.DifficultyBeginner,
			Popularity:       94,
		},
		{
			ID:          "macd",
			Name:        "Moving Average Convergence Divergence",
			Category:    models.CategoryMomentum,
			Description: "Difference of two EMAs with a signal line; tracks momentum shifts and trend turns.",
			Parameters: []models.IndicatorParameter{
				{Name: "fastPeriod", Default: 12, Min: 2, Max: 50, Impact: "shorter fast period produces earlier, noisier signals"},
				{Name: "slowPeriod", Default: 26, Min: 5, Max: 100, Impact: "longer slow period smooths the baseline"},
				{Name: "signalPeriod", Default: 9, Min: 2, Max: 50, Impact: "shorter signal period triggers faster crossovers"},
			},
			Outputs: []string{"macd", "signal", "histogram"},
			Interpretation: models.Interpretation{
				Bullish:    []string{"macd crosses above signal line", "histogram turns positive"},
				Bearish:    []string{"macd crosses below signal line", "histogram turns negative"},
				Divergence: []string{"price new high with macd lower high"},
			},
			UseCases:         []string{"trend confirmation", "momentum shifts", "divergence"},
			BestTimeframes:   []string{"1h", "4h", "1d"},
			MarketConditions: []string{"trending"},
			Combinations:     []string{"ema", "rsi", "adx"},
			Difficulty:       models.DifficultyIntermediate,
			Popularity:       90,
		},
		{
			ID:          "bollinger",
			Name:        "Bollinger Bands",
			Category:    models.CategoryVolatility,
			Description: "Moving average envelope at a standard-deviation multiple; width tracks volatility.",
			Parameters: []models.IndicatorParameter{
				{Name: "period", Default: 20, Min: 5, Max: 100, Impact: "longer periods widen the effective envelope"},
				{Name: "stdDev", Default: 2, Min: 1, Max: 4, Impact: "larger multipliers produce fewer band touches"},
			},
			Outputs: []string{"upper", "middle", "lower"},
			Interpretation: models.Interpretation{
				Bullish: []string{"price bounces off lower band in range", "squeeze resolves upward"},
				Bearish: []string{"price rejects upper band in range", "squeeze resolves downward"},
				Neutral: []string{"price rides the middle band"},
			},
			UseCases:         []string{"mean reversion", "volatility squeeze breakouts", "dynamic targets"},
			BestTimeframes:   []string{"15m", "1h", "4h"},
			MarketConditions: []string{"ranging", "low volatility"},
			Combinations:     []string{"rsi", "volume", "atr"},
			Difficulty:       models.DifficultyIntermediate,
			Popularity:       88,
		},
		{
			ID:          "stochastic",
			Name:        "Stochastic Oscillator",
			Category:    models.CategoryMomentum,
			Description: "Position of the close within the recent high-low range, smoothed into %K and %D lines.",
			Parameters: []models.IndicatorParameter{
				{Name: "kPeriod", Default: 14, Min: 3, Max: 50, Impact: "shorter %K reacts faster"},
				{Name: "dPeriod", Default: 3, Min: 1, Max: 20, Impact: "longer %D smooths crossovers"},
			},
			Outputs: []string{"k", "d"},
			Interpretation: models.Interpretation{
				Bullish:    []string{"%k crosses above %d below 20"},
				Bearish:    []string{"%k crosses below %d above 80"},
				Overbought: fp(80),
				Oversold:   fp(20),
			},
			UseCases:         []string{"range reversals", "momentum timing"},
			BestTimeframes:   []string{"15m", "1h", "4h"},
			MarketConditions: []string{"ranging"},
			Combinations:     []string{"rsi", "bollinger"},
			Difficulty:       models.DifficultyBeginner,
			Popularity:       80,
		},
		{
			ID:          "atr",
			Name:        "Average True Range",
			Category:    models.CategoryVolatility,
			Description: "Average of the true range over a window; the standard volatility yardstick for stops and sizing.",
			Parameters: []models.IndicatorParameter{
				{Name: "period", Default: 14, Min: 2, Max: 50, Impact: "longer periods smooth volatility spikes"},
			},
			Outputs: []string{"atr"},
			Interpretation: models.Interpretation{
				Bullish: []string{"expanding atr during an up move confirms participation"},
				Bearish: []string{"expanding atr during a down move confirms participation"},
				Neutral: []string{"contracting atr signals consolidation"},
			},
			UseCases:         []string{"stop placement", "position sizing", "volatility filters"},
			BestTimeframes:   []string{"1h", "4h", "1d"},
			MarketConditions: []string{"volatile", "trending"},
			Combinations:     []string{"ema", "bollinger", "adx"},
			Difficulty:       models.DifficultyIntermediate,
			Popularity:       78,
		},
		{
			ID:          "adx",
			Name:        "Average Directional Index",
			Category:    models.CategoryTrend,
			Description: "Trend strength gauge from directional movement; reads strength, not direction.",
			Parameters: []models.IndicatorParameter{
				{Name: "period", Default: 14, Min: 2, Max: 50, Impact: "longer periods demand sustained trends"},
			},
			Outputs: []string{"adx", "di_plus", "di_minus"},
			Interpretation: models.Interpretation{
				Bullish: []string{"adx above 25 with di+ above di-"},
				Bearish: []string{"adx above 25 with di- above di+"},
				Neutral: []string{"adx below 20 means no tradable trend"},
			},
			UseCases:         []string{"trend strength filter", "regime detection"},
			BestTimeframes:   []string{"4h", "1d"},
			MarketConditions: []string{"trending"},
			Combinations:     []string{"ema", "macd", "atr"},
			Difficulty:       models.DifficultyIntermediate,
			Popularity:       70,
		},
		{
			ID:          "obv",
			Name:        "On-Balance Volume",
			Category:    models.CategoryVolume,
			Description: "Cumulative volume signed by price direction; tracks accumulation and distribution.",
			Parameters:  []models.IndicatorParameter{},
			Outputs:     []string{"obv"},
			Interpretation: models.Interpretation{
				Bullish:    []string{"obv makes new highs with price"},
				Bearish:    []string{"obv makes new lows with price"},
				Divergence: []string{"price new high with flat obv warns of distribution"},
			},
			UseCases:         []string{"trend confirmation", "divergence"},
			BestTimeframes:   []string{"1d", "1w"},
			MarketConditions: []string{"trending", "high volume"},
			Combinations:     []string{"sma", "vwap"},
			Difficulty:       models.DifficultyAdvanced,
			Popularity:       55,
		},
		{
			ID:          "vwap",
			Name:        "Volume Weighted Average Price",
			Category:    models.CategoryVolume,
			Description: "Session average price weighted by volume; the intraday institutional reference level.",
			Parameters:  []models.IndicatorParameter{},
			Outputs:     []string{"vwap"},
			Interpretation: models.Interpretation{
				Bullish: []string{"price holds above vwap"},
				Bearish: []string{"price holds below vwap"},
				Neutral: []string{"price chops around vwap"},
			},
			UseCases:         []string{"intraday trend", "execution benchmark", "reversion anchor"},
			BestTimeframes:   []string{"1m", "5m", "15m", "30m"},
			MarketConditions: []string{"high volume"},
			Combinations:     []string{"volume", "obv", "atr"},
			Difficulty:       models.DifficultyIntermediate,
			Popularity:       75,
		},
		{
			ID:          "volume",
			Name:        "Volume",
			Category:    models.CategoryVolume,
			Description: "Raw traded volume per bar; the baseline participation gauge behind every other signal.",
			Parameters: []models.IndicatorParameter{
				{Name: "averagePeriod", Default: 20, Min: 1, Max: 200, Impact: "longer averages smooth out session spikes"},
			},
			Outputs: []string{"volume", "average"},
			Interpretation: models.Interpretation{
				Bullish: []string{"rising volume on up moves"},
				Bearish: []string{"rising volume on down moves"},
				Neutral: []string{"volume below average means weak conviction"},
			},
			UseCases:         []string{"breakout confirmation", "exhaustion detection"},
			BestTimeframes:   []string{"5m", "15m", "1h", "1d"},
			MarketConditions: []string{"volatile", "high volume", "consolidation"},
			Combinations:     []string{"obv", "vwap", "bollinger"},
			Difficulty:       models.DifficultyBeginner,
			Popularity:       85,
		},
		{
			ID:          "williams_r",
			Name:        "Williams %R",
			Category:    models.CategoryMomentum,
			Description: "Inverted range oscillator on a 0 to -100 scale; fast overbought/oversold reads.",
			Parameters: []models.IndicatorParameter{
				{Name: "period", Default: 14, Min: 2, Max: 50, Impact: "shorter periods flip faster between extremes"},
			},
			Outputs: []string{"r"},
			Interpretation: models.Interpretation{
				Bullish:    []string{"%r turns up from below -80"},
				Bearish:    []string{"%r turns down from above -20"},
				Overbought: fp(-20),
				Oversold:   fp(-80),
			},
			UseCases:         []string{"range reversals", "entry timing"},
			BestTimeframes:   []string{"15m", "1h", "4h"},
			MarketConditions: []string{"ranging"},
			Combinations:     []string{"rsi", "stochastic"},
			Difficulty:       models.DifficultyBeginner,
			Popularity:       50,
		},
		{
			ID:          "cci",
			Name:        "Commodity Channel Index",
			Category:    models.CategoryMomentum,
			Description: "Deviation of price from its statistical mean; unbounded oscillator with ±100 extremes.",
			Parameters: []models.IndicatorParameter{
				{Name: "period", Default: 20, Min: 5, Max: 100, Impact: "longer periods dampen extreme readings"},
			},
			Outputs: []string{"cci"},
			Interpretation: models.Interpretation{
				Bullish:    []string{"cci turns up from below -100"},
				Bearish:    []string{"cci turns down from above +100"},
				Overbought: fp(100),
				Oversold:   fp(-100),
			},
			UseCases:         []string{"extreme fades", "trend resumption"},
			BestTimeframes:   []string{"1h", "4h"},
			MarketConditions: []string{"ranging"},
			Combinations:     []string{"atr", "sma"},
			Difficulty:       models.DifficultyIntermediate,
			Popularity:       45,
		},
	}
}
