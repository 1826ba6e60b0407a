package models

import "fmt"

// RiskLevel is the five-step risk scale.
type RiskLevel string

const (
	RiskVeryLow  RiskLevel = "very_low"
	RiskLow      RiskLevel = "low"
	RiskMedium   RiskLevel = "medium"
	RiskHigh     RiskLevel = "high"
	RiskVeryHigh RiskLevel = "very_high"
)

// RiskRank returns an ordinal for escalation arithmetic.
func RiskRank(l RiskLevel) int {
	switch l {
	case RiskVeryLow:
		return 0
	case RiskLow:
		return 1
	case RiskMedium:
		return 2
	case RiskHigh:
		return 3
	case RiskVeryHigh:
		return 4
	}
	return 2
}

// RiskLevelFromRank is the inverse of RiskRank, clamped to the scale.
func RiskLevelFromRank(r int) RiskLevel {
	switch {
	case r <= 0:
		return RiskVeryLow
	case r == 1:
		return RiskLow
	case r == 2:
		return RiskMedium
	case r == 3:
		return RiskHigh
	}
	return RiskVeryHigh
}

// RiskMetric names a measurable input a rule condition can test.
type RiskMetric string

const (
	MetricPositionSize    RiskMetric = "position_size"
	MetricPositionRatio   RiskMetric = "position_ratio"
	MetricAccountBalance  RiskMetric = "account_balance"
	MetricStopLossPercent RiskMetric = "stop_loss_percent"
	MetricLeverage        RiskMetric = "leverage"
	MetricDrawdown        RiskMetric = "drawdown"
	MetricVolatilityRatio RiskMetric = "volatility_ratio"
	MetricCorrelation     RiskMetric = "correlation"
	MetricWinRate         RiskMetric = "win_rate"
	MetricConfidence      RiskMetric = "confidence"
)

// ConditionOperator is the closed predicate operator set.
type ConditionOperator string

const (
	OpGreaterThan ConditionOperator = "greater_than"
	OpLessThan    ConditionOperator = "less_than"
	OpEqualTo     ConditionOperator = "equal_to"
	OpNotEqualTo  ConditionOperator = "not_equal_to"
	OpBetween     ConditionOperator = "between"
)

// RiskCondition is one typed predicate of a rule. Upper is only read for
// the between operator.
type RiskCondition struct {
	Metric   RiskMetric        `json:"metric"`
	Operator ConditionOperator `json:"operator"`
	Value    float64           `json:"value"`
	Upper    float64           `json:"upper,omitempty"`
}

// RiskActionKind is the closed effect set a triggered rule can carry.
type RiskActionKind string

const (
	ActionWarn            RiskActionKind = "warn"
	ActionReducePosition  RiskActionKind = "reduce_position"
	ActionRequireStopLoss RiskActionKind = "require_stop_loss"
	ActionCapLeverage     RiskActionKind = "cap_leverage"
	ActionSuggest         RiskActionKind = "suggest"
)

// RiskAction is one typed effect. Factor applies to reduce_position,
// Limit to cap_leverage; both are zero otherwise.
type RiskAction struct {
	Kind    RiskActionKind `json:"kind"`
	Message string         `json:"message"`
	Factor  float64        `json:"factor,omitempty"`
	Limit   float64        `json:"limit,omitempty"`
}

// RiskRule is a condition→action pair applicable to some strategy types.
type RiskRule struct {
	ID                   string          `json:"id"`
	Category             string          `json:"category"`
	ApplicableStrategies []StrategyType  `json:"applicable_strategies"`
	RiskLevel            RiskLevel       `json:"risk_level"`
	Conditions           []RiskCondition `json:"conditions"`
	Actions              []RiskAction    `json:"actions"`
	Priority             int             `json:"priority"`
	Enabled              bool            `json:"enabled"`
}

// Validate rejects malformed rules at construction time.
func (r *RiskRule) Validate() error {
	if r.ID == "" {
		return fmt.Errorf("risk rule: id is required")
	}
	if len(r.Conditions) == 0 {
		return fmt.Errorf("risk rule %s: at least one condition required", r.ID)
	}
	for _, c := range r.Conditions {
		switch c.Operator {
		case OpGreaterThan, OpLessThan, OpEqualTo, OpNotEqualTo:
		case OpBetween:
			if c.Upper <= c.Value {
				return fmt.Errorf("risk rule %s: between requires upper > value", r.ID)
			}
		default:
			return fmt.Errorf("risk rule %s: unknown operator %q", r.ID, c.Operator)
		}
	}
	for _, a := range r.Actions {
		switch a.Kind {
		case ActionWarn, ActionSuggest, ActionRequireStopLoss:
		case ActionReducePosition:
			if a.Factor <= 0 || a.Factor >= 1 {
				return fmt.Errorf("risk rule %s: reduce_position factor must be in (0,1)", r.ID)
			}
		case ActionCapLeverage:
			if a.Limit <= 0 {
				return fmt.Errorf("risk rule %s: cap_leverage limit must be positive", r.ID)
			}
		default:
			return fmt.Errorf("risk rule %s: unknown action kind %q", r.ID, a.Kind)
		}
	}
	return nil
}

// RiskInputs are the measurable facts a risk assessment runs against.
type RiskInputs struct {
	PositionSize    float64 `json:"position_size,omitempty"`
	AccountBalance  float64 `json:"account_balance,omitempty"`
	StopLossPercent float64 `json:"stop_loss_percent,omitempty"`
	Leverage        float64 `json:"leverage,omitempty"`
	Drawdown        float64 `json:"drawdown,omitempty"`
	VolatilityRatio float64 `json:"volatility_ratio,omitempty"`
	Correlation     float64 `json:"correlation,omitempty"`
	WinRate         float64 `json:"win_rate,omitempty"`
	Confidence      float64 `json:"confidence,omitempty"`
}

// Metric resolves a named metric against the inputs. position_ratio is
// derived from position size over balance.
func (in RiskInputs) Metric(m RiskMetric) (float64, bool) {
	switch m {
	case MetricPositionSize:
		return in.PositionSize, in.PositionSize != 0
	case MetricPositionRatio:
		if in.AccountBalance <= 0 {
			return 0, false
		}
		return in.PositionSize / in.AccountBalance, in.PositionSize != 0
	case MetricAccountBalance:
		return in.AccountBalance, in.AccountBalance != 0
	case MetricStopLossPercent:
		return in.StopLossPercent, in.StopLossPercent != 0
	case MetricLeverage:
		return in.Leverage, in.Leverage != 0
	case MetricDrawdown:
		return in.Drawdown, in.Drawdown != 0
	case MetricVolatilityRatio:
		return in.VolatilityRatio, in.VolatilityRatio != 0
	case MetricCorrelation:
		return in.Correlation, in.Correlation != 0
	case MetricWinRate:
		return in.WinRate, in.WinRate != 0
	case MetricConfidence:
		return in.Confidence, in.Confidence != 0
	}
	return 0, false
}

// RiskFactor is one contribution to an assessment.
type RiskFactor struct {
	Name        string    `json:"name"`
	Severity    RiskLevel `json:"severity"`
	Impact      float64   `json:"impact"`
	Description string    `json:"description"`
}

// RiskRecommendation tells the user how to mitigate a flagged exposure.
type RiskRecommendation struct {
	Priority int    `json:"priority"`
	Category string `json:"category"`
	Message  string `json:"message"`
}

// RiskAssessment is computed fresh per call; never cached across inputs.
type RiskAssessment struct {
	OverallRisk     RiskLevel            `json:"overall_risk"`
	RiskScore       float64              `json:"risk_score"`
	RiskFactors     []RiskFactor         `json:"risk_factors"`
	Recommendations []RiskRecommendation `json:"recommendations"`
	AppliedRules    []string             `json:"applied_rules"`
	Warnings        []string             `json:"warnings,omitempty"`
}

// PositionSizeInput carries the sizing calculator inputs.
type PositionSizeInput struct {
	AccountBalance  float64 `json:"account_balance"`
	RiskPerTrade    float64 `json:"risk_per_trade"`
	StopDistancePct float64 `json:"stop_distance_pct"`
	VolatilityRatio float64 `json:"volatility_ratio,omitempty"`
	Confidence      float64 `json:"confidence,omitempty"`
	Correlation     float64 `json:"correlation,omitempty"`
}

// PositionSizeResult is the adjusted, capped position size.
type PositionSizeResult struct {
	Size        float64  `json:"size"`
	Capped      bool     `json:"capped"`
	Adjustments []string `json:"adjustments,omitempty"`
}

// RiskRewardClass buckets a risk/reward ratio.
type RiskRewardClass string

const (
	RRExcellent    RiskRewardClass = "excellent"
	RRGood         RiskRewardClass = "good"
	RRAcceptable   RiskRewardClass = "acceptable"
	RRPoor         RiskRewardClass = "poor"
	RRUnacceptable RiskRewardClass = "unacceptable"
)

// RiskRewardAnalysis classifies a trade's risk/reward profile.
type RiskRewardAnalysis struct {
	Ratio          float64         `json:"ratio"`
	Classification RiskRewardClass `json:"classification"`
	WinProbability float64         `json:"win_probability"`
	Expectancy     float64         `json:"expectancy"`
}

// StrategyComponent is one named building block a complete strategy carries.
type StrategyComponent struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Reason string `json:"reason,omitempty"`
}

// ComponentProfile is the static required/recommended set per strategy type.
type ComponentProfile struct {
	Required    []StrategyComponent `json:"required"`
	Recommended []StrategyComponent `json:"recommended"`
	BaseRisk    RiskLevel           `json:"base_risk"`
}

// ComponentSuggestion proposes a missing component.
type ComponentSuggestion struct {
	Component StrategyComponent `json:"component"`
	Required  bool              `json:"required"`
}

// CompletenessReport diffs declared components against the profile.
type CompletenessReport struct {
	Completeness       float64             `json:"completeness"`
	MissingRequired    []StrategyComponent `json:"missing_required"`
	MissingRecommended []StrategyComponent `json:"missing_recommended"`
	RiskLevel          RiskLevel           `json:"risk_level"`
}

// RiskProfile is the static per-strategy-type risk posture.
type RiskProfile struct {
	StrategyType       StrategyType `json:"strategy_type"`
	BaseRisk           RiskLevel    `json:"base_risk"`
	MaxPositionRatio   float64      `json:"max_position_ratio"`
	RecommendedStopPct float64      `json:"recommended_stop_pct"`
	MaxLeverage        float64      `json:"max_leverage"`
	Notes              []string     `json:"notes,omitempty"`
}
