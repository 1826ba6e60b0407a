package models

// Difficulty grades patterns and indicators by required experience.
type Difficulty string

const (
	DifficultyBeginner     Difficulty = "beginner"
	DifficultyIntermediate Difficulty = "intermediate"
	DifficultyAdvanced     Difficulty = "advanced"
)

// DifficultyRank returns an ordinal for experience-gap comparisons.
func DifficultyRank(d Difficulty) int {
	switch d {
	case DifficultyBeginner:
		return 0
	case DifficultyIntermediate:
		return 1
	case DifficultyAdvanced:
		return 2
	}
	return 1
}

// TradingPattern is a static, curated strategy archetype description.
// Tables are data only; never mutated at runtime.
type TradingPattern struct {
	ID               string     `json:"id"`
	Name             string     `json:"name"`
	Keywords         []string   `json:"keywords"`
	Indicators       []string   `json:"indicators"`
	EntryConditions  []string   `json:"entry_conditions"`
	ExitConditions   []string   `json:"exit_conditions"`
	RiskManagement   []string   `json:"risk_management"`
	Timeframes       []string   `json:"timeframes"`
	MarketConditions []string   `json:"market_conditions"`
	Difficulty       Difficulty `json:"difficulty"`
	SuccessRate      float64    `json:"success_rate"`
	RiskLevel        RiskLevel  `json:"risk_level"`
	Examples         []string   `json:"examples,omitempty"`
	Variations       []string   `json:"variations,omitempty"`
}

// PatternMatch scores one pattern against the query inputs.
type PatternMatch struct {
	Pattern           TradingPattern `json:"pattern"`
	StrategyType      StrategyType   `json:"strategy_type"`
	Confidence        float64        `json:"confidence"`
	MatchedKeywords   []string       `json:"matched_keywords"`
	MatchedIndicators []string       `json:"matched_indicators"`
}

// PatternFilter narrows facade results. Zero values mean "no constraint".
type PatternFilter struct {
	Difficulty      Difficulty `json:"difficulty,omitempty"`
	RiskLevel       RiskLevel  `json:"risk_level,omitempty"`
	Timeframe       string     `json:"timeframe,omitempty"`
	MarketCondition string     `json:"market_condition,omitempty"`
	MinSuccessRate  float64    `json:"min_success_rate,omitempty"`
	MinConfidence   float64    `json:"min_confidence,omitempty"`
}
