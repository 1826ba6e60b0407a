package models

import "time"

// ParsedRequest echoes the tokenization layer back to the caller.
type ParsedRequest struct {
	Text       string   `json:"text"`
	Tokens     []Token  `json:"tokens"`
	Entities   []Entity `json:"entities"`
	Confidence float64  `json:"confidence"`
}

// ResultMetadata carries processing facts that are not part of the intent.
type ResultMetadata struct {
	ConversationID string   `json:"conversation_id,omitempty"`
	Fallback       bool     `json:"fallback"`
	FallbackReason string   `json:"fallback_reason,omitempty"`
	ResolvedText   string   `json:"resolved_text,omitempty"`
	Notes          []string `json:"notes,omitempty"`
}

// NLPResult is the single structured result of one processed request. The
// caller always receives a well-formed value; severity is conveyed through
// Confidence, Clarifications and Metadata.Fallback.
type NLPResult struct {
	ParsedRequest  ParsedRequest        `json:"parsed_request"`
	Intent         *TradingIntent       `json:"trading_intent,omitempty"`
	Parameters     *ParameterExtraction `json:"parameters,omitempty"`
	Suggestions    []string             `json:"suggestions,omitempty"`
	Clarifications []string             `json:"clarifications,omitempty"`
	Confidence     float64              `json:"confidence"`
	ProcessingTime time.Duration        `json:"processing_time"`
	Metadata       ResultMetadata       `json:"metadata"`
}

// KnowledgeQueryKind selects what a knowledge base query returns.
type KnowledgeQueryKind string

const (
	QueryPatterns   KnowledgeQueryKind = "patterns"
	QueryIndicators KnowledgeQueryKind = "indicators"
	QueryRiskRules  KnowledgeQueryKind = "risk_rules"
	QueryStrategy   KnowledgeQueryKind = "strategy"
)

// KnowledgeQuery is the unified query surface of the knowledge base.
type KnowledgeQuery struct {
	Kind         KnowledgeQueryKind `json:"kind"`
	Keywords     []string           `json:"keywords,omitempty"`
	Indicators   []string           `json:"indicators,omitempty"`
	Conditions   []string           `json:"conditions,omitempty"`
	StrategyType StrategyType       `json:"strategy_type,omitempty"`
	Filter       PatternFilter      `json:"filter,omitempty"`
}

// KnowledgeAnswer is the union result of a knowledge base query.
type KnowledgeAnswer struct {
	Patterns   []PatternMatch       `json:"patterns,omitempty"`
	Indicators []TechnicalIndicator `json:"indicators,omitempty"`
	Rules      []RiskRule           `json:"rules,omitempty"`
	Strategy   *StrategyKnowledge   `json:"strategy,omitempty"`
}

// StrategyKnowledge bundles everything the base knows about one archetype.
type StrategyKnowledge struct {
	StrategyType          StrategyType     `json:"strategy_type"`
	Patterns              []TradingPattern `json:"patterns"`
	RecommendedIndicators []string         `json:"recommended_indicators"`
	RiskProfile           RiskProfile      `json:"risk_profile"`
	Components            ComponentProfile `json:"components"`
}
