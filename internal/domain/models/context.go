package models

import "time"

// ConversationPhase is the deterministic flow state of a conversation.
type ConversationPhase string

const (
	PhaseRequirementGathering ConversationPhase = "requirement_gathering"
	PhaseStrategyBuilding     ConversationPhase = "strategy_building"
	PhaseOptimization         ConversationPhase = "optimization"
	PhaseCompletion           ConversationPhase = "completion"
)

// HistoryRole distinguishes user turns from assistant responses.
type HistoryRole string

const (
	RoleUser      HistoryRole = "user"
	RoleAssistant HistoryRole = "assistant"
)

// HistoryEntry is one recorded conversation turn.
type HistoryEntry struct {
	Role       HistoryRole        `json:"role"`
	Text       string             `json:"text"`
	Intent     *TradingIntent     `json:"intent,omitempty"`
	Parameters StrategyParameters `json:"parameters,omitempty"`
	Entities   []Entity           `json:"entities,omitempty"`
	Timestamp  time.Time          `json:"timestamp"`
}

// MentionStat tracks frequency and recency of a contextual mention.
type MentionStat struct {
	Count    int       `json:"count"`
	LastSeen time.Time `json:"last_seen"`
	LastTurn int       `json:"last_turn"`
}

// ReferenceMap is the explicit reference-resolution state owned by the
// conversation context. Pronouns maps pronoun text to the entity it resolves
// to; StrategyName is what "the strategy" currently refers to.
type ReferenceMap struct {
	Pronouns     map[string]string      `json:"pronouns,omitempty"`
	StrategyName string                 `json:"strategy_name,omitempty"`
	Mentions     map[string]MentionStat `json:"mentions,omitempty"`
}

// NewReferenceMap returns an empty, usable reference map.
func NewReferenceMap() ReferenceMap {
	return ReferenceMap{
		Pronouns: make(map[string]string),
		Mentions: make(map[string]MentionStat),
	}
}

// ConversationFlow tracks where the dialogue stands.
type ConversationFlow struct {
	Phase                ConversationPhase `json:"phase"`
	LastAction           string            `json:"last_action,omitempty"`
	NextSuggestedActions []string          `json:"next_suggested_actions,omitempty"`
	CompletedSteps       []string          `json:"completed_steps,omitempty"`
}

// ConversationContext is the per-conversation mutable aggregate. Created on
// first turn; expiry belongs to the external conversation store.
type ConversationContext struct {
	ID                  string             `json:"id"`
	UserID              string             `json:"user_id,omitempty"`
	CurrentStrategy     *TradingIntent     `json:"current_strategy,omitempty"`
	ActiveIndicators    []string           `json:"active_indicators,omitempty"`
	MentionedParameters StrategyParameters `json:"mentioned_parameters,omitempty"`
	Flow                ConversationFlow   `json:"flow"`
	History             []HistoryEntry     `json:"history,omitempty"`
	References          ReferenceMap       `json:"references"`
	CreatedAt           time.Time          `json:"created_at"`
	UpdatedAt           time.Time          `json:"updated_at"`
}
