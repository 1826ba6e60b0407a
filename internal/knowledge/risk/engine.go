package risk

import (
	"fmt"
	"sort"
	"sync"

	"StratParse/internal/domain/models"
	"StratParse/internal/domain/service"
	"StratParse/pkg/logger"
)

// Engine evaluates risk rules against strategy parameters and serves the
// sizing, risk/reward and completeness calculators. Rule state only mutates
// through RegisterRule and SetRuleEnabled.
type Engine struct {
	mu         sync.RWMutex
	rules      []models.RiskRule
	profiles   map[models.StrategyType]models.RiskProfile
	components map[models.StrategyType]models.ComponentProfile
	log        *logger.Logger
}

// NewEngine loads and validates the built-in rule catalog.
func NewEngine(log *logger.Logger) (*Engine, error) {
	e := &Engine{
		rules:      builtinRules(),
		profiles:   riskProfiles(),
		components: componentProfiles(),
		log:        log,
	}
	for i := range e.rules {
		if err := e.rules[i].Validate(); err != nil {
			return nil, fmt.Errorf("builtin rules: %w", err)
		}
	}
	return e, nil
}

// RegisterRule adds a custom rule after validation.
func (e *Engine) RegisterRule(r models.RiskRule) error {
	if err := r.Validate(); err != nil {
		return err
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	for _, existing := range e.rules {
		if existing.ID == r.ID {
			return fmt.Errorf("risk rule %s already registered", r.ID)
		}
	}
	e.rules = append(e.rules, r)
	return nil
}

// SetRuleEnabled toggles a rule; returns false for unknown ids.
func (e *Engine) SetRuleEnabled(id string, enabled bool) bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	for i := range e.rules {
		if e.rules[i].ID == id {
			e.rules[i].Enabled = enabled
			return true
		}
	}
	return false
}

// Rules returns a copy of the current rule set.
func (e *Engine) Rules() []models.RiskRule {
	e.mu.RLock()
	defer e.mu.RUnlock()
	out := make([]models.RiskRule, len(e.rules))
	copy(out, e.rules)
	return out
}

// RulesForStrategy returns enabled rules applicable to the strategy type,
// sorted by priority descending.
func (e *Engine) RulesForStrategy(st models.StrategyType) []models.RiskRule {
	e.mu.RLock()
	defer e.mu.RUnlock()
	var out []models.RiskRule
	for _, r := range e.rules {
		if r.Enabled && ruleApplies(r, st) {
			out = append(out, r)
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Priority > out[j].Priority })
	return out
}

// Profile returns the static risk posture for a strategy type.
func (e *Engine) Profile(st models.StrategyType) models.RiskProfile {
	if p, ok := e.profiles[st]; ok {
		return p
	}
	return e.profiles[models.StrategyCustom]
}

// ComponentProfileFor returns the required/recommended component set.
func (e *Engine) ComponentProfileFor(st models.StrategyType) models.ComponentProfile {
	if p, ok := e.components[st]; ok {
		return p
	}
	return e.components[models.StrategyCustom]
}

// severityImpact maps a rule's risk level to its factor impact weight.
func severityImpact(l models.RiskLevel) float64 {
	switch l {
	case models.RiskVeryLow:
		return 5
	case models.RiskLow:
		return 10
	case models.RiskMedium:
		return 20
	case models.RiskHigh:
		return 30
	case models.RiskVeryHigh:
		return 40
	}
	return 20
}

// AssessRisk evaluates all applicable rules against the inputs and produces
// a fresh assessment. Score = base 20 + severity-weighted average of
// triggered factors' impact + additive penalties for position ratio,
// drawdown and volatility, capped at 100.
func (e *Engine) AssessRisk(st models.StrategyType, inputs models.RiskInputs) models.RiskAssessment {
	assessment := models.RiskAssessment{
		RiskFactors:     []models.RiskFactor{},
		Recommendations: []models.RiskRecommendation{},
		AppliedRules:    []string{},
	}

	weightedSum, weightTotal := 0.0, 0.0
	for _, rule := range e.RulesForStrategy(st) {
		if !ruleTriggered(rule, inputs) {
			continue
		}
		impact := severityImpact(rule.RiskLevel)
		weight := float64(models.RiskRank(rule.RiskLevel) + 1)
		weightedSum += impact * weight
		weightTotal += weight

		assessment.AppliedRules = append(assessment.AppliedRules, rule.ID)
		assessment.RiskFactors = append(assessment.RiskFactors, models.RiskFactor{
			Name:        rule.ID,
			Severity:    rule.RiskLevel,
			Impact:      impact,
			Description: ruleDescription(rule),
		})
		for _, a := range rule.Actions {
			assessment.Recommendations = append(assessment.Recommendations, models.RiskRecommendation{
				Priority: rule.Priority,
				Category: rule.Category,
				Message:  a.Message,
			})
			if a.Kind == models.ActionWarn {
				assessment.Warnings = append(assessment.Warnings, a.Message)
			}
		}
	}

	score := 20.0
	if weightTotal > 0 {
		score += weightedSum / weightTotal
	}
	score += positionRatioPenalty(inputs)
	if inputs.Drawdown > 10 {
		score += 25
	}
	if inputs.VolatilityRatio > 2 {
		score += 15
	}
	if score > 100 {
		score = 100
	}
	if score < 0 {
		score = 0
	}

	assessment.RiskScore = score
	assessment.OverallRisk = riskCategory(score)

	sort.SliceStable(assessment.Recommendations, func(i, j int) bool {
		return assessment.Recommendations[i].Priority > assessment.Recommendations[j].Priority
	})
	if e.log != nil {
		e.log.Debug("risk assessed",
			logger.String("strategy", string(st)),
			logger.Float64("score", score),
			logger.Int("rules", len(assessment.AppliedRules)),
		)
	}
	return assessment
}

func positionRatioPenalty(in models.RiskInputs) float64 {
	ratio, ok := in.Metric(models.MetricPositionRatio)
	if !ok {
		return 0
	}
	switch {
	case ratio > 0.20:
		return 30
	case ratio > 0.10:
		return 20
	case ratio > 0.05:
		return 10
	}
	return 0
}

// riskCategory maps a score to the five-level scale using the fixed
// 20/40/60/80 thresholds.
func riskCategory(score float64) models.RiskLevel {
	switch {
	case score <= 20:
		return models.RiskVeryLow
	case score <= 40:
		return models.RiskLow
	case score <= 60:
		return models.RiskMedium
	case score <= 80:
		return models.RiskHigh
	}
	return models.RiskVeryHigh
}

func ruleApplies(r models.RiskRule, st models.StrategyType) bool {
	if len(r.ApplicableStrategies) == 0 {
		return true
	}
	for _, s := range r.ApplicableStrategies {
		if s == st {
			return true
		}
	}
	return false
}

// ruleTriggered requires every condition to hold. A condition on a metric
// absent from the inputs fails, except equal_to zero which matches absence
// (used by the missing-stop-loss rule).
func ruleTriggered(r models.RiskRule, in models.RiskInputs) bool {
	for _, c := range r.Conditions {
		v, present := in.Metric(c.Metric)
		if !present {
			if c.Operator == models.OpEqualTo && c.Value == 0 {
				continue
			}
			return false
		}
		if !conditionHolds(c, v) {
			return false
		}
	}
	return true
}

func conditionHolds(c models.RiskCondition, v float64) bool {
	switch c.Operator {
	case models.OpGreaterThan:
		return v > c.Value
	case models.OpLessThan:
		return v < c.Value
	case models.OpEqualTo:
		return v == c.Value
	case models.OpNotEqualTo:
		return v != c.Value
	case models.OpBetween:
		return v >= c.Value && v <= c.Upper
	}
	return false
}

func ruleDescription(r models.RiskRule) string {
	if len(r.Actions) > 0 {
		return r.Actions[0].Message
	}
	return r.Category
}

var _ service.RiskAssessor = (*Engine)(nil)
