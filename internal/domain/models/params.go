package models

// ParameterSource records how a parameter value was obtained.
type ParameterSource string

const (
	SourceExplicit ParameterSource = "explicit"
	SourceInferred ParameterSource = "inferred"
	SourceDefault  ParameterSource = "default"
)

// ParameterType is the value kind of a strategy parameter.
type ParameterType string

const (
	ParamNumber    ParameterType = "number"
	ParamPercent   ParameterType = "percent"
	ParamTimeframe ParameterType = "timeframe"
	ParamSymbol    ParameterType = "symbol"
	ParamCategory  ParameterType = "category"
)

// ParameterValue is one extracted strategy parameter.
type ParameterValue struct {
	Value      interface{}     `json:"value"`
	Type       ParameterType   `json:"type"`
	Confidence float64         `json:"confidence"`
	Source     ParameterSource `json:"source"`
}

// StrategyParameters maps parameter name to its extracted value.
type StrategyParameters map[string]ParameterValue

// Float returns the named parameter as float64 when present and numeric.
func (p StrategyParameters) Float(name string) (float64, bool) {
	pv, ok := p[name]
	if !ok {
		return 0, false
	}
	switch v := pv.Value.(type) {
	case float64:
		return v, true
	case int:
		return float64(v), true
	}
	return 0, false
}

// ParameterIssue is one validation failure; it lowers confidence but never
// aborts extraction.
type ParameterIssue struct {
	Name    string      `json:"name"`
	Message string      `json:"message"`
	Value   interface{} `json:"value,omitempty"`
}

// ParameterExtraction is the parameter extractor output.
type ParameterExtraction struct {
	Parameters StrategyParameters `json:"parameters"`
	Issues     []ParameterIssue   `json:"issues,omitempty"`
	Confidence float64            `json:"confidence"`
}
