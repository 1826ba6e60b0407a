package service

import (
	"context"

	"StratParse/internal/domain/models"
)

// Tokenizer segments and classifies raw text into typed tokens and entities.
// It never returns an error to callers; internal failures yield an empty
// result with confidence 0.
type Tokenizer interface {
	Tokenize(text string) models.TokenizationResult
}

// IntentExtractor classifies the strategy archetype from tokens.
type IntentExtractor interface {
	Extract(ctx context.Context, result models.TokenizationResult) (*models.TradingIntent, error)
}

// ParameterExtractor extracts and validates strategy parameters from tokens
// and entities, given the intent already classified for the request.
type ParameterExtractor interface {
	Extract(ctx context.Context, result models.TokenizationResult, intent *models.TradingIntent) models.ParameterExtraction
}

// ContextEngine maintains per-conversation state and resolves references.
type ContextEngine interface {
	ResolveReferences(conversationID, text string) string
	UpdateWithInput(conversationID, userID, text string, intent *models.TradingIntent, params models.StrategyParameters, entities []models.Entity) *models.ConversationContext
	UpdateWithResponse(conversationID, responseText string, actions []string)
	Snapshot(conversationID string) (*models.ConversationContext, bool)
	CompleteConversation(conversationID string) bool
	ClearConversation(conversationID string)
	ActiveConversations() int
}

// PatternLibrary fans pattern matching across all archetype tables.
type PatternLibrary interface {
	FindMatches(ctx context.Context, keywords, indicators, conditions []string, filter models.PatternFilter) []models.PatternMatch
	PatternsForStrategy(strategyType models.StrategyType) []models.TradingPattern
}

// RiskAssessor is the risk rule engine surface the pipeline consumes.
type RiskAssessor interface {
	AssessRisk(strategyType models.StrategyType, inputs models.RiskInputs) models.RiskAssessment
	CalculatePositionSize(in models.PositionSizeInput) models.PositionSizeResult
	CalculateRiskReward(entry, stop, target float64, winProbability *float64) models.RiskRewardAnalysis
	SuggestRiskComponents(strategyType models.StrategyType, existing []string) []models.ComponentSuggestion
	AssessStrategyCompleteness(strategyType models.StrategyType, components []string) models.CompletenessReport
}

// KnowledgeBase unifies patterns, indicators and risk rules behind one query
// surface with caching.
type KnowledgeBase interface {
	Query(ctx context.Context, q models.KnowledgeQuery) (*models.KnowledgeAnswer, error)
	StrategyKnowledge(ctx context.Context, strategyType models.StrategyType) (*models.StrategyKnowledge, error)
	Invalidate(ctx context.Context) error
}

// Metrics is the observability side channel. Implementations must be safe
// for concurrent use.
type Metrics interface {
	RecordRequest(outcome string)
	RecordFallback(reason string)
	RecordStageLatency(stage string, seconds float64)
	RecordConfidence(v float64)
	RecordCache(cache string, hit bool)
	SetActiveConversations(n int)
}
