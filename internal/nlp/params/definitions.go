package params

import (
	"fmt"
	"math"

	"StratParse/internal/domain/models"
)

// definition bounds one named strategy parameter. Min/Max are inclusive
// unless MinExclusive is set; Integer rejects fractional values.
type definition struct {
	Type         models.ParameterType
	Min          float64
	Max          float64
	MinExclusive bool
	Integer      bool
}

// definitions is the closed set of recognized numeric parameters.
var definitions = map[string]definition{
	"period":          {Type: models.ParamNumber, Min: 1, Max: 200, Integer: true},
	"fastPeriod":      {Type: models.ParamNumber, Min: 1, Max: 100, Integer: true},
	"slowPeriod":      {Type: models.ParamNumber, Min: 2, Max: 200, Integer: true},
	"signalPeriod":    {Type: models.ParamNumber, Min: 1, Max: 50, Integer: true},
	"oversoldLevel":   {Type: models.ParamNumber, Min: 0, Max: 100},
	"overboughtLevel": {Type: models.ParamNumber, Min: 0, Max: 100},
	"stdDev":          {Type: models.ParamNumber, Min: 0, Max: 5, MinExclusive: true},
	"threshold":       {Type: models.ParamNumber, Min: math.Inf(-1), Max: math.Inf(1)},
	"stopLoss":        {Type: models.ParamPercent, Min: 0, Max: 50, MinExclusive: true},
	"takeProfit":      {Type: models.ParamPercent, Min: 0, Max: 100, MinExclusive: true},
	"trailingStop":    {Type: models.ParamPercent, Min: 0, Max: 50, MinExclusive: true},
	"riskPerTrade":    {Type: models.ParamPercent, Min: 0, Max: 10, MinExclusive: true},
	"positionSize":    {Type: models.ParamNumber, Min: 0, Max: math.Inf(1), MinExclusive: true},
	"leverage":        {Type: models.ParamNumber, Min: 1, Max: 125},
}

// validateValue checks one value against its definition.
func validateValue(name string, v float64) error {
	def, ok := definitions[name]
	if !ok {
		return nil
	}
	if def.Integer && v != math.Trunc(v) {
		return fmt.Errorf("%s must be a whole number, got %v", name, v)
	}
	if def.MinExclusive {
		if v <= def.Min {
			return fmt.Errorf("%s must be greater than %v, got %v", name, def.Min, v)
		}
	} else if v < def.Min {
		return fmt.Errorf("%s must be at least %v, got %v", name, def.Min, v)
	}
	if v > def.Max {
		return fmt.Errorf("%s must be at most %v, got %v", name, def.Max, v)
	}
	return nil
}

// crossChecks are invariants spanning two parameters, checked only when both
// are present.
func crossChecks(p models.StrategyParameters) []models.ParameterIssue {
	var issues []models.ParameterIssue
	if fast, ok1 := p.Float("fastPeriod"); ok1 {
		if slow, ok2 := p.Float("slowPeriod"); ok2 && fast >= slow {
			issues = append(issues, models.ParameterIssue{
				Name:    "fastPeriod",
				Message: fmt.Sprintf("fastPeriod (%v) must be less than slowPeriod (%v)", fast, slow),
				Value:   fast,
			})
		}
	}
	if lo, ok1 := p.Float("oversoldLevel"); ok1 {
		if hi, ok2 := p.Float("overboughtLevel"); ok2 && lo >= hi {
			issues = append(issues, models.ParameterIssue{
				Name:    "oversoldLevel",
				Message: fmt.Sprintf("oversoldLevel (%v) must be less than overboughtLevel (%v)", lo, hi),
				Value:   lo,
			})
		}
	}
	return issues
}

// indicatorDefaults seeds standard parameters for mentioned indicators when
// the user gave no explicit value.
var indicatorDefaults = map[string]map[string]float64{
	"rsi":        {"period": 14, "oversoldLevel": 30, "overboughtLevel": 70},
	"macd":       {"fastPeriod": 12, "slowPeriod": 26, "signalPeriod": 9},
	"bollinger":  {"period": 20, "stdDev": 2},
	"sma":        {"period": 20},
	"ema":        {"period": 20},
	"stochastic": {"period": 14, "oversoldLevel": 20, "overboughtLevel": 80},
	"atr":        {"period": 14},
	"adx":        {"period": 14},
	"cci":        {"period": 20},
	"williams_r": {"period": 14},
}

// contextTimeframes infers a working timeframe from style words when no
// explicit timeframe token is present.
var contextTimeframes = map[string]string{
	"scalp":     "5m",
	"scalping":  "5m",
	"intraday":  "15m",
	"day":       "15m",
	"swing":     "4h",
	"position":  "1d",
	"long-term": "1d",
}

// oscillatorIDs are indicators whose thresholds map to oversold/overbought
// levels rather than a generic threshold.
var oscillatorIDs = map[string]bool{
	"rsi":        true,
	"stochastic": true,
	"williams_r": true,
	"cci":        true,
}
