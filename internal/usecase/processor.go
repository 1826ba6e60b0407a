package usecase

import (
	"context"
	"fmt"
	"regexp"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"

	"StratParse/internal/domain/models"
	"StratParse/internal/domain/service"
	"StratParse/pkg/logger"
)

// unsafe input patterns, rejected before any pipeline stage runs
var unsafePatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)<script`),
	regexp.MustCompile(`(?i)javascript:`),
	regexp.MustCompile(`(?i)\bon\w+\s*=`),
	regexp.MustCompile(`(?i)\beval\(`),
}

// ValidationError is an input rejection surfaced before the pipeline runs.
// Confidence carries the measured value for low-confidence strict failures.
type ValidationError struct {
	Reason     string
	Confidence float64
}

func (e *ValidationError) Error() string { return e.Reason }

// Config tunes the orchestrator.
type Config struct {
	MinConfidence     float64
	MaxInputLength    int
	MaxProcessingTime time.Duration
	FallbackEnabled   bool
	StrictValidation  bool
	MaxSuggestions    int
}

// DefaultConfig matches the pipeline defaults.
func DefaultConfig() Config {
	return Config{
		MinConfidence:     0.3,
		MaxInputLength:    10000,
		MaxProcessingTime: 5 * time.Second,
		FallbackEnabled:   true,
		StrictValidation:  true,
		MaxSuggestions:    5,
	}
}

// Processor runs the full pipeline for one request: reference resolution,
// tokenization, intent classification, parameter extraction, risk assessment
// and context update. Every internal fault converts to a deterministic
// fallback result when fallback is enabled; the caller always receives a
// well-formed NLPResult.
type Processor struct {
	tokenizer service.Tokenizer
	intents   service.IntentExtractor
	params    service.ParameterExtractor
	contexts  service.ContextEngine
	risk      service.RiskAssessor
	knowledge service.KnowledgeBase
	cfg       Config
	log       *logger.Logger
	metrics   service.Metrics
}

func NewProcessor(
	tokenizer service.Tokenizer,
	intents service.IntentExtractor,
	params service.ParameterExtractor,
	contexts service.ContextEngine,
	risk service.RiskAssessor,
	knowledge service.KnowledgeBase,
	cfg Config,
	log *logger.Logger,
	metrics service.Metrics,
) *Processor {
	if cfg.MaxInputLength <= 0 {
		cfg = DefaultConfig()
	}
	return &Processor{
		tokenizer: tokenizer,
		intents:   intents,
		params:    params,
		contexts:  contexts,
		risk:      risk,
		knowledge: knowledge,
		cfg:       cfg,
		log:       log,
		metrics:   metrics,
	}
}

// Process handles one request. conversationID may be empty; a fresh id is
// generated so the caller can continue the conversation.
func (p *Processor) Process(ctx context.Context, text, conversationID, userID string) (*models.NLPResult, error) {
	start := time.Now()

	if err := p.validateInput(text); err != nil {
		if p.cfg.StrictValidation {
			p.record("rejected")
			return nil, err
		}
		p.record("fallback")
		p.recordFallback(err.Reason)
		return p.fallbackResult(conversationID, err.Reason, start), nil
	}

	if conversationID == "" {
		conversationID = uuid.NewString()
	}

	if p.cfg.MaxProcessingTime > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, p.cfg.MaxProcessingTime)
		defer cancel()
	}

	res, err := p.runPipeline(ctx, text, conversationID, userID, start)
	if err != nil {
		if !p.cfg.FallbackEnabled {
			p.record("error")
			return nil, err
		}
		if p.log != nil {
			p.log.Warn("pipeline fell back", logger.String("conversation_id", conversationID), logger.Error(err))
		}
		p.record("fallback")
		p.recordFallback(err.Error())
		return p.fallbackResult(conversationID, err.Error(), start), nil
	}

	if res.Confidence < p.cfg.MinConfidence {
		if !p.cfg.FallbackEnabled {
			p.record("error")
			return nil, &ValidationError{
				Reason:     fmt.Sprintf("confidence %.2f below threshold %.2f", res.Confidence, p.cfg.MinConfidence),
				Confidence: res.Confidence,
			}
		}
		p.record("fallback")
		p.recordFallback("low_confidence")
		fb := p.fallbackResult(conversationID, "low confidence", start)
		fb.ParsedRequest = res.ParsedRequest
		fb.Confidence = res.Confidence
		return fb, nil
	}

	p.record("ok")
	if p.metrics != nil {
		p.metrics.RecordConfidence(res.Confidence)
	}
	return res, nil
}

func (p *Processor) runPipeline(ctx context.Context, text, conversationID, userID string, start time.Time) (res *models.NLPResult, err error) {
	defer func() {
		if r := recover(); r != nil {
			res, err = nil, fmt.Errorf("pipeline panic: %v", r)
		}
	}()

	resolved := p.stageText("resolve", func() string {
		return p.contexts.ResolveReferences(conversationID, text)
	})
	if err = ctx.Err(); err != nil {
		return nil, fmt.Errorf("resolution: %w", err)
	}

	var tokenized models.TokenizationResult
	p.stage("tokenize", func() { tokenized = p.tokenizer.Tokenize(resolved) })
	if len(tokenized.Tokens) == 0 {
		return nil, fmt.Errorf("no meaningful tokens in input")
	}
	if err = ctx.Err(); err != nil {
		return nil, fmt.Errorf("tokenization: %w", err)
	}

	var intent *models.TradingIntent
	p.stage("intent", func() { intent, err = p.intents.Extract(ctx, tokenized) })
	if err != nil {
		return nil, fmt.Errorf("intent extraction: %w", err)
	}

	var extraction models.ParameterExtraction
	p.stage("params", func() { extraction = p.params.Extract(ctx, tokenized, intent) })
	intent.Parameters = extraction.Parameters
	if err = ctx.Err(); err != nil {
		return nil, fmt.Errorf("parameter extraction: %w", err)
	}

	var assessment models.RiskAssessment
	p.stage("risk", func() { assessment = p.risk.AssessRisk(intent.StrategyType, riskInputs(extraction.Parameters)) })

	cc := p.contexts.UpdateWithInput(conversationID, userID, text, intent, extraction.Parameters, tokenized.Entities)

	confidence := mergeConfidence(tokenized.Confidence, intent.Confidence, extraction.Confidence)

	res = &models.NLPResult{
		ParsedRequest: models.ParsedRequest{
			Text:       resolved,
			Tokens:     tokenized.Tokens,
			Entities:   tokenized.Entities,
			Confidence: tokenized.Confidence,
		},
		Intent:         intent,
		Parameters:     &extraction,
		Suggestions:    p.buildSuggestions(ctx, intent, extraction, assessment),
		Clarifications: buildClarifications(intent, extraction),
		Confidence:     confidence,
		ProcessingTime: time.Since(start),
		Metadata: models.ResultMetadata{
			ConversationID: conversationID,
		},
	}
	if resolved != text {
		res.Metadata.ResolvedText = resolved
	}
	if cc != nil {
		res.Metadata.Notes = append(res.Metadata.Notes, fmt.Sprintf("conversation phase: %s", cc.Flow.Phase))
	}
	return res, nil
}

func (p *Processor) validateInput(text string) *ValidationError {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return &ValidationError{Reason: "input text is empty"}
	}
	if utf8.RuneCountInString(text) > p.cfg.MaxInputLength {
		return &ValidationError{Reason: fmt.Sprintf("input exceeds %d characters", p.cfg.MaxInputLength)}
	}
	for _, re := range unsafePatterns {
		if re.MatchString(text) {
			return &ValidationError{Reason: "input contains unsafe content"}
		}
	}
	return nil
}

// mergeConfidence weights the stages: classification carries the most signal.
func mergeConfidence(tokenConf, intentConf, paramConf float64) float64 {
	c := 0.3*tokenConf + 0.5*intentConf + 0.2*paramConf
	if c > 1 {
		c = 1
	}
	if c < 0 {
		c = 0
	}
	return c
}

// buildSuggestions collects stage suggestions in pipeline order, deduplicates
// and caps them.
func (p *Processor) buildSuggestions(ctx context.Context, intent *models.TradingIntent, extraction models.ParameterExtraction, assessment models.RiskAssessment) []string {
	max := p.cfg.MaxSuggestions
	if max <= 0 {
		max = 5
	}

	var out []string
	seen := make(map[string]bool)
	add := func(s string) {
		key := strings.ToLower(strings.TrimSpace(s))
		if key == "" || seen[key] || len(out) >= max {
			return
		}
		seen[key] = true
		out = append(out, s)
	}

	if len(intent.Indicators) == 0 {
		add("mention at least one indicator, for example RSI or a moving average")
		if p.knowledge != nil {
			if sk, err := p.knowledge.StrategyKnowledge(ctx, intent.StrategyType); err == nil && len(sk.RecommendedIndicators) > 0 {
				n := len(sk.RecommendedIndicators)
				if n > 3 {
					n = 3
				}
				add(fmt.Sprintf("for %s strategies, %s work well",
					strings.ReplaceAll(string(intent.StrategyType), "_", " "),
					strings.Join(sk.RecommendedIndicators[:n], ", ")))
			}
		}
	}
	if intent.Timeframe == "" {
		add("specify a timeframe such as 5m, 1h or 1d")
	}
	if _, ok := extraction.Parameters["stopLoss"]; !ok {
		add("add a stop loss to bound downside risk")
	}
	for _, rec := range assessment.Recommendations {
		add(rec.Message)
	}
	return out
}

func buildClarifications(intent *models.TradingIntent, extraction models.ParameterExtraction) []string {
	var out []string
	for _, issue := range extraction.Issues {
		out = append(out, issue.Message)
	}
	if intent.StrategyType == models.StrategyCustom && intent.Confidence < 0.5 {
		out = append(out, "what style of strategy do you want: trend following, mean reversion or breakout?")
	}
	return out
}

// riskInputs lifts extracted parameters into the risk engine's input shape.
func riskInputs(params models.StrategyParameters) models.RiskInputs {
	var in models.RiskInputs
	if v, ok := params.Float("positionSize"); ok {
		in.PositionSize = v
	}
	if v, ok := params.Float("accountBalance"); ok {
		in.AccountBalance = v
	}
	if v, ok := params.Float("stopLoss"); ok {
		in.StopLossPercent = v
	}
	if v, ok := params.Float("leverage"); ok {
		in.Leverage = v
	}
	return in
}

func (p *Processor) fallbackResult(conversationID, reason string, start time.Time) *models.NLPResult {
	return &models.NLPResult{
		ParsedRequest: models.ParsedRequest{Tokens: []models.Token{}, Entities: []models.Entity{}},
		Intent: &models.TradingIntent{
			StrategyType:   models.StrategyCustom,
			Indicators:     []string{},
			Conditions:     []string{},
			Actions:        []string{},
			RiskManagement: []string{},
			Confidence:     0.1,
		},
		Suggestions: []string{
			"describe the strategy in terms of indicators and conditions",
			"for example: buy when RSI drops below 30 on the 1h chart",
			"include risk settings such as a stop loss percentage",
		},
		Clarifications: []string{"could you rephrase your strategy request?"},
		Confidence:     0.1,
		ProcessingTime: time.Since(start),
		Metadata: models.ResultMetadata{
			ConversationID: conversationID,
			Fallback:       true,
			FallbackReason: reason,
		},
	}
}

func (p *Processor) stage(name string, fn func()) {
	begin := time.Now()
	fn()
	if p.metrics != nil {
		p.metrics.RecordStageLatency(name, time.Since(begin).Seconds())
	}
}

func (p *Processor) stageText(name string, fn func() string) string {
	var out string
	p.stage(name, func() { out = fn() })
	return out
}

func (p *Processor) record(outcome string) {
	if p.metrics != nil {
		p.metrics.RecordRequest(outcome)
	}
}

func (p *Processor) recordFallback(reason string) {
	if p.metrics != nil {
		p.metrics.RecordFallback(reason)
	}
}
