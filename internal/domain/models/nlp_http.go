package models

// Requests for the NLP HTTP endpoints. Defined in domain for consistency and reuse.

type ProcessRequest struct {
	Text           string `json:"text" validate:"required,max=10000"`
	ConversationID string `json:"conversation_id,omitempty"`
	UserID         string `json:"user_id,omitempty"`
}

type RespondRequest struct {
	Text    string   `json:"text" validate:"required,max=10000"`
	Actions []string `json:"actions,omitempty" validate:"max=10"`
}

type AssessRiskRequest struct {
	StrategyType string     `json:"strategy_type" validate:"required,oneof=trend_following mean_reversion breakout momentum scalping arbitrage custom"`
	Inputs       RiskInputs `json:"inputs"`
}

type PositionSizeRequest struct {
	AccountBalance  float64 `json:"account_balance" validate:"required,gt=0"`
	RiskPerTrade    float64 `json:"risk_per_trade" default:"0.02" validate:"gt=0,lte=0.1"`
	StopDistancePct float64 `json:"stop_distance_pct" validate:"gte=0,lte=50"`
	VolatilityRatio float64 `json:"volatility_ratio,omitempty" validate:"gte=0"`
	Confidence      float64 `json:"confidence,omitempty" validate:"gte=0,lte=1"`
	Correlation     float64 `json:"correlation,omitempty" validate:"gte=-1,lte=1"`
}

type RiskRewardRequest struct {
	EntryPrice     float64  `json:"entry_price" validate:"required,gt=0"`
	StopLoss       float64  `json:"stop_loss" validate:"required,gt=0"`
	TakeProfit     float64  `json:"take_profit" validate:"required,gt=0"`
	WinProbability *float64 `json:"win_probability,omitempty" validate:"omitempty,gt=0,lt=1"`
}

type CompletenessRequest struct {
	StrategyType string   `json:"strategy_type" validate:"required,oneof=trend_following mean_reversion breakout momentum scalping arbitrage custom"`
	Components   []string `json:"components"`
}

type SuggestIndicatorsRequest struct {
	StrategyType    string   `query:"strategy_type" json:"strategy_type" validate:"required,oneof=trend_following mean_reversion breakout momentum scalping arbitrage custom"`
	Existing        []string `query:"existing" json:"existing,omitempty"`
	Level           string   `query:"level" json:"level" default:"intermediate" validate:"oneof=beginner intermediate advanced"`
	MarketCondition string   `query:"market_condition" json:"market_condition,omitempty"`
	Timeframe       string   `query:"timeframe" json:"timeframe,omitempty"`
}

type KnowledgeQueryRequest struct {
	Kind         string        `json:"kind" validate:"required,oneof=patterns indicators risk_rules strategy"`
	Keywords     []string      `json:"keywords,omitempty"`
	Indicators   []string      `json:"indicators,omitempty"`
	Conditions   []string      `json:"conditions,omitempty"`
	StrategyType string        `json:"strategy_type,omitempty" validate:"omitempty,oneof=trend_following mean_reversion breakout momentum scalping arbitrage custom"`
	Filter       PatternFilter `json:"filter,omitempty"`
}
