package models

// IndicatorCategory groups technical indicators by what they measure.
type IndicatorCategory string

const (
	CategoryTrend      IndicatorCategory = "trend"
	CategoryMomentum   IndicatorCategory = "momentum"
	CategoryVolatility IndicatorCategory = "volatility"
	CategoryVolume     IndicatorCategory = "volume"
)

// IndicatorParameter describes one tunable input of an indicator.
type IndicatorParameter struct {
	Name    string  `json:"name"`
	Default float64 `json:"default"`
	Min     float64 `json:"min"`
	Max     float64 `json:"max"`
	Impact  string  `json:"impact"`
}

// Interpretation holds the signal reading rules for an indicator.
type Interpretation struct {
	Bullish    []string `json:"bullish"`
	Bearish    []string `json:"bearish"`
	Neutral    []string `json:"neutral,omitempty"`
	Divergence []string `json:"divergence,omitempty"`
	Overbought *float64 `json:"overbought,omitempty"`
	Oversold   *float64 `json:"oversold,omitempty"`
}

// TechnicalIndicator is one static catalog entry.
type TechnicalIndicator struct {
	ID               string               `json:"id"`
	Name             string               `json:"name"`
	Category         IndicatorCategory    `json:"category"`
	Description      string               `json:"description"`
	Parameters       []IndicatorParameter `json:"parameters"`
	Outputs          []string             `json:"outputs"`
	Interpretation   Interpretation       `json:"interpretation"`
	UseCases         []string             `json:"use_cases"`
	BestTimeframes   []string             `json:"best_timeframes"`
	MarketConditions []string             `json:"market_conditions"`
	Combinations     []string             `json:"combinations"`
	Difficulty       Difficulty           `json:"difficulty"`
	Popularity       int                  `json:"popularity"`
}

// IndicatorSuggestion proposes adding an indicator to a strategy.
type IndicatorSuggestion struct {
	Indicator  TechnicalIndicator `json:"indicator"`
	Confidence float64            `json:"confidence"`
	Priority   int                `json:"priority"`
	Reason     string             `json:"reason"`
}

// IndicatorPairNote explains why two indicators do or do not combine well.
type IndicatorPairNote struct {
	A    string `json:"a"`
	B    string `json:"b"`
	Note string `json:"note"`
}

// CompatibilityAnalysis reports pairwise fit inside an indicator set.
type CompatibilityAnalysis struct {
	Compatible   []IndicatorPairNote `json:"compatible"`
	Incompatible []IndicatorPairNote `json:"incompatible"`
	Extensions   []string            `json:"extensions,omitempty"`
}

// ParameterOptimization suggests a parameter change for a context.
type ParameterOptimization struct {
	IndicatorID string  `json:"indicator_id"`
	Parameter   string  `json:"parameter"`
	Current     float64 `json:"current"`
	Suggested   float64 `json:"suggested"`
	Reason      string  `json:"reason"`
}

// SuitabilityReport grades an indicator for a strategy/market context.
type SuitabilityReport struct {
	IndicatorID string   `json:"indicator_id"`
	Suitable    bool     `json:"suitable"`
	Score       float64  `json:"score"`
	Notes       []string `json:"notes,omitempty"`
}
