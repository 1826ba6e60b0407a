package models

import "time"

// TokenType classifies a token produced by the tokenizer.
type TokenType string

const (
	TokenIndicator TokenType = "indicator"
	TokenAction    TokenType = "action"
	TokenCondition TokenType = "condition"
	TokenParameter TokenType = "parameter"
	TokenTimeframe TokenType = "timeframe"
	TokenSymbol    TokenType = "symbol"
	TokenNumber    TokenType = "number"
	TokenOperator  TokenType = "operator"
	TokenModifier  TokenType = "modifier"
	TokenUnknown   TokenType = "unknown"
)

// Token is an immutable classified fragment of the input text.
// Position is the index of the first underlying word in the normalized text.
type Token struct {
	Text       string                 `json:"text"`
	Type       TokenType              `json:"type"`
	Position   int                    `json:"position"`
	Confidence float64                `json:"confidence"`
	Metadata   map[string]interface{} `json:"metadata,omitempty"`
}

// EntityType classifies a value-carrying entity derived from tokens.
type EntityType string

const (
	EntityIndicatorName  EntityType = "indicator_name"
	EntityParameterValue EntityType = "parameter_value"
	EntityTimeframe      EntityType = "timeframe"
	EntitySymbol         EntityType = "symbol"
	EntityThreshold      EntityType = "threshold"
	EntityPercentage     EntityType = "percentage"
	EntityDuration       EntityType = "duration"
)

// Entity is a typed, positioned fragment carrying a concrete value.
type Entity struct {
	Text       string      `json:"text"`
	Type       EntityType  `json:"type"`
	Value      interface{} `json:"value"`
	Confidence float64     `json:"confidence"`
	Start      int         `json:"start"`
	End        int         `json:"end"`
}

// TokenizationResult is the tokenizer output for one input string.
type TokenizationResult struct {
	Tokens         []Token       `json:"tokens"`
	Entities       []Entity      `json:"entities"`
	Confidence     float64       `json:"confidence"`
	ProcessingTime time.Duration `json:"processing_time"`
}

// TradingTokenCount returns the number of indicator/action/condition tokens.
func (r *TokenizationResult) TradingTokenCount() int {
	n := 0
	for _, t := range r.Tokens {
		switch t.Type {
		case TokenIndicator, TokenAction, TokenCondition:
			n++
		}
	}
	return n
}
