package conversation

import (
	"regexp"
	"strings"
	"sync"
	"time"

	"StratParse/internal/domain/models"
	"StratParse/internal/domain/service"
	"StratParse/pkg/logger"
)

const (
	defaultMaxHistory = 100
	resolutionWindow  = 5
	paramRecencyTurns = 3
)

// Engine owns all per-conversation mutable state. A single mutex guards the
// context map; turns of one conversation must be applied in arrival order to
// keep the flow phase and reference resolution coherent.
type Engine struct {
	mu         sync.RWMutex
	contexts   map[string]*models.ConversationContext
	maxHistory int
	log        *logger.Logger
	metrics    service.Metrics
}

// EngineOption configures the engine.
type EngineOption func(*Engine)

// WithMaxHistory overrides the 100-entry history cap.
func WithMaxHistory(n int) EngineOption {
	return func(e *Engine) {
		if n > 0 {
			e.maxHistory = n
		}
	}
}

// WithMetrics wires the observability side channel.
func WithMetrics(m service.Metrics) EngineOption {
	return func(e *Engine) { e.metrics = m }
}

func NewEngine(log *logger.Logger, opts ...EngineOption) *Engine {
	e := &Engine{
		contexts:   make(map[string]*models.ConversationContext),
		maxHistory: defaultMaxHistory,
		log:        log,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// ResolveReferences rewrites pronouns and implicit phrases in the text using
// the most recent history entries, before re-tokenization. Unknown
// conversations return the text unchanged.
func (e *Engine) ResolveReferences(conversationID, text string) string {
	e.mu.RLock()
	defer e.mu.RUnlock()
	cc, ok := e.contexts[conversationID]
	if !ok {
		return text
	}

	resolved := text
	if cc.References.StrategyName != "" {
		resolved = replaceWord(resolved, "the strategy", cc.References.StrategyName)
		resolved = replaceWord(resolved, "my strategy", cc.References.StrategyName)
	}
	if subject := e.recentSubject(cc); subject != "" {
		for _, pronoun := range []string{"it", "its", "that one", "this one"} {
			resolved = replaceWord(resolved, pronoun, subject)
		}
	}
	for pronoun, target := range cc.References.Pronouns {
		resolved = replaceWord(resolved, pronoun, target)
	}
	return resolved
}

// recentSubject is the most recently mentioned indicator in the resolution
// window, newest entry first.
func (e *Engine) recentSubject(cc *models.ConversationContext) string {
	start := len(cc.History) - resolutionWindow
	if start < 0 {
		start = 0
	}
	for i := len(cc.History) - 1; i >= start; i-- {
		entry := cc.History[i]
		if entry.Intent != nil && len(entry.Intent.Indicators) > 0 {
			return entry.Intent.Indicators[len(entry.Intent.Indicators)-1]
		}
		for _, ent := range entry.Entities {
			if ent.Type == models.EntityIndicatorName {
				if id, ok := ent.Value.(string); ok {
					return id
				}
			}
		}
	}
	return ""
}

// UpdateWithInput records a user turn: appends history, merges the intent
// into the current strategy, refreshes the reference map and recomputes the
// flow phase. The context is created lazily on first use.
func (e *Engine) UpdateWithInput(conversationID, userID, text string, intent *models.TradingIntent, params models.StrategyParameters, entities []models.Entity) *models.ConversationContext {
	e.mu.Lock()
	defer e.mu.Unlock()

	cc := e.getOrCreate(conversationID, userID)
	now := time.Now()

	cc.History = append(cc.History, models.HistoryEntry{
		Role:       models.RoleUser,
		Text:       text,
		Intent:     intent,
		Parameters: params,
		Entities:   entities,
		Timestamp:  now,
	})
	if len(cc.History) > e.maxHistory {
		cc.History = cc.History[len(cc.History)-e.maxHistory:]
	}

	if intent != nil {
		cc.CurrentStrategy = mergeIntent(cc.CurrentStrategy, intent)
		cc.References.StrategyName = string(cc.CurrentStrategy.StrategyType)
		for _, id := range intent.Indicators {
			cc.ActiveIndicators = appendUnique(cc.ActiveIndicators, id)
		}
		if len(intent.Indicators) > 0 {
			cc.References.Pronouns["it"] = intent.Indicators[len(intent.Indicators)-1]
		}
	}
	for name, pv := range params {
		cc.MentionedParameters[name] = pv
	}
	for _, ent := range entities {
		e.recordMention(cc, ent, now)
	}

	if cc.Flow.Phase != models.PhaseCompletion {
		cc.Flow.Phase = derivePhase(cc)
	}
	cc.Flow.LastAction = "user_input"
	cc.Flow.NextSuggestedActions = suggestedActions(cc.Flow.Phase)
	cc.UpdatedAt = now

	if e.metrics != nil {
		e.metrics.SetActiveConversations(len(e.contexts))
	}
	return snapshot(cc)
}

// UpdateWithResponse records an assistant turn and its completed actions.
func (e *Engine) UpdateWithResponse(conversationID, responseText string, actions []string) {
	e.mu.Lock()
	defer e.mu.Unlock()
	cc, ok := e.contexts[conversationID]
	if !ok {
		return
	}
	cc.History = append(cc.History, models.HistoryEntry{
		Role:      models.RoleAssistant,
		Text:      responseText,
		Timestamp: time.Now(),
	})
	if len(cc.History) > e.maxHistory {
		cc.History = cc.History[len(cc.History)-e.maxHistory:]
	}
	for _, a := range actions {
		cc.Flow.CompletedSteps = appendUnique(cc.Flow.CompletedSteps, a)
	}
	cc.Flow.LastAction = "assistant_response"
	cc.UpdatedAt = time.Now()
}

// Snapshot returns a deep copy of the conversation context.
func (e *Engine) Snapshot(conversationID string) (*models.ConversationContext, bool) {
	e.mu.RLock()
	defer e.mu.RUnlock()
	cc, ok := e.contexts[conversationID]
	if !ok {
		return nil, false
	}
	return snapshot(cc), true
}

// CompleteConversation moves the flow to the completion phase. Completion is
// only ever reached through this explicit signal, never derived from history.
func (e *Engine) CompleteConversation(conversationID string) bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	cc, ok := e.contexts[conversationID]
	if !ok {
		return false
	}
	cc.Flow.Phase = models.PhaseCompletion
	cc.Flow.LastAction = "completed"
	cc.Flow.NextSuggestedActions = nil
	cc.UpdatedAt = time.Now()
	return true
}

// ClearConversation drops all state for the id.
func (e *Engine) ClearConversation(conversationID string) {
	e.mu.Lock()
	defer e.mu.Unlock()
	delete(e.contexts, conversationID)
	if e.metrics != nil {
		e.metrics.SetActiveConversations(len(e.contexts))
	}
}

// ActiveConversations reports the live context count.
func (e *Engine) ActiveConversations() int {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return len(e.contexts)
}

func (e *Engine) getOrCreate(conversationID, userID string) *models.ConversationContext {
	if cc, ok := e.contexts[conversationID]; ok {
		return cc
	}
	cc := &models.ConversationContext{
		ID:                  conversationID,
		UserID:              userID,
		MentionedParameters: models.StrategyParameters{},
		Flow:                models.ConversationFlow{Phase: models.PhaseRequirementGathering},
		References:          models.NewReferenceMap(),
		CreatedAt:           time.Now(),
	}
	e.contexts[conversationID] = cc
	return cc
}

func (e *Engine) recordMention(cc *models.ConversationContext, ent models.Entity, now time.Time) {
	key := strings.ToLower(ent.Text)
	if s, ok := ent.Value.(string); ok && s != "" {
		key = strings.ToLower(s)
	}
	stat := cc.References.Mentions[key]
	stat.Count++
	stat.LastSeen = now
	stat.LastTurn = len(cc.History)
	cc.References.Mentions[key] = stat
}

// derivePhase is the deterministic flow state machine. Completion is handled
// by the caller and never produced here.
func derivePhase(cc *models.ConversationContext) models.ConversationPhase {
	if cc.CurrentStrategy == nil {
		return models.PhaseRequirementGathering
	}
	if parametersSeenRecently(cc) {
		return models.PhaseOptimization
	}
	return models.PhaseStrategyBuilding
}

func parametersSeenRecently(cc *models.ConversationContext) bool {
	start := len(cc.History) - paramRecencyTurns
	if start < 0 {
		start = 0
	}
	for i := len(cc.History) - 1; i >= start; i-- {
		if len(cc.History[i].Parameters) > 0 {
			return true
		}
	}
	return false
}

func suggestedActions(phase models.ConversationPhase) []string {
	switch phase {
	case models.PhaseRequirementGathering:
		return []string{"describe strategy goal", "name preferred indicators"}
	case models.PhaseStrategyBuilding:
		return []string{"set indicator parameters", "define entry and exit conditions"}
	case models.PhaseOptimization:
		return []string{"review risk assessment", "tune parameters", "complete strategy"}
	}
	return nil
}

// mergeIntent folds a new turn's intent into the running strategy. The new
// strategy type wins unless it is the custom fallback; component lists union.
func mergeIntent(current, incoming *models.TradingIntent) *models.TradingIntent {
	if current == nil {
		cp := *incoming
		return &cp
	}
	merged := *current
	if incoming.StrategyType != models.StrategyCustom || current.StrategyType == models.StrategyCustom {
		merged.StrategyType = incoming.StrategyType
	}
	for _, s := range incoming.Indicators {
		merged.Indicators = appendUnique(merged.Indicators, s)
	}
	for _, s := range incoming.Conditions {
		merged.Conditions = appendUnique(merged.Conditions, s)
	}
	for _, s := range incoming.Actions {
		merged.Actions = appendUnique(merged.Actions, s)
	}
	for _, s := range incoming.RiskManagement {
		merged.RiskManagement = appendUnique(merged.RiskManagement, s)
	}
	if incoming.Timeframe != "" {
		merged.Timeframe = incoming.Timeframe
	}
	if incoming.Symbol != "" {
		merged.Symbol = incoming.Symbol
	}
	if incoming.Confidence > merged.Confidence {
		merged.Confidence = incoming.Confidence
	}
	return &merged
}

func snapshot(cc *models.ConversationContext) *models.ConversationContext {
	cp := *cc
	cp.ActiveIndicators = append([]string(nil), cc.ActiveIndicators...)
	cp.History = append([]models.HistoryEntry(nil), cc.History...)
	cp.MentionedParameters = make(models.StrategyParameters, len(cc.MentionedParameters))
	for k, v := range cc.MentionedParameters {
		cp.MentionedParameters[k] = v
	}
	cp.References = models.ReferenceMap{
		StrategyName: cc.References.StrategyName,
		Pronouns:     make(map[string]string, len(cc.References.Pronouns)),
		Mentions:     make(map[string]models.MentionStat, len(cc.References.Mentions)),
	}
	for k, v := range cc.References.Pronouns {
		cp.References.Pronouns[k] = v
	}
	for k, v := range cc.References.Mentions {
		cp.References.Mentions[k] = v
	}
	if cc.CurrentStrategy != nil {
		cs := *cc.CurrentStrategy
		cp.CurrentStrategy = &cs
	}
	return &cp
}

// replaceWord substitutes whole-word, case-insensitive occurrences. The scan
// runs on the original string so multi-byte input survives untouched.
func replaceWord(text, word, with string) string {
	re, err := regexp.Compile(`(?i)\b` + regexp.QuoteMeta(word) + `\b`)
	if err != nil {
		return text
	}
	return re.ReplaceAllLiteralString(text, with)
}

func appendUnique(xs []string, s string) []string {
	for _, x := range xs {
		if strings.EqualFold(x, s) {
			return xs
		}
	}
	return append(xs, s)
}

var _ service.ContextEngine = (*Engine)(nil)
