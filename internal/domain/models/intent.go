package models

// StrategyType is the classified strategy archetype.
type StrategyType string

const (
	StrategyTrendFollowing StrategyType = "trend_following"
	StrategyMeanReversion  StrategyType = "mean_reversion"
	StrategyBreakout       StrategyType = "breakout"
	StrategyMomentum       StrategyType = "momentum"
	StrategyScalping       StrategyType = "scalping"
	StrategyArbitrage      StrategyType = "arbitrage"
	StrategyCustom         StrategyType = "custom"
)

// AllStrategyTypes lists every classifiable archetype, custom last.
var AllStrategyTypes = []StrategyType{
	StrategyTrendFollowing,
	StrategyMeanReversion,
	StrategyBreakout,
	StrategyMomentum,
	StrategyScalping,
	StrategyArbitrage,
	StrategyCustom,
}

// ParseStrategyType maps a raw string to a known StrategyType, Custom otherwise.
func ParseStrategyType(s string) StrategyType {
	for _, st := range AllStrategyTypes {
		if string(st) == s {
			return st
		}
	}
	return StrategyCustom
}

// TradingIntent is the classified strategy built from one request, possibly
// merged with the conversation's prior intent.
type TradingIntent struct {
	StrategyType   StrategyType       `json:"strategy_type"`
	Indicators     []string           `json:"indicators"`
	Conditions     []string           `json:"conditions"`
	Actions        []string           `json:"actions"`
	RiskManagement []string           `json:"risk_management"`
	Timeframe      string             `json:"timeframe,omitempty"`
	Symbol         string             `json:"symbol,omitempty"`
	Confidence     float64            `json:"confidence"`
	Parameters     StrategyParameters `json:"parameters,omitempty"`
}
