package params

import (
	"context"
	"sort"
	"strconv"
	"strings"

	"StratParse/internal/domain/models"
	"StratParse/internal/domain/service"
	"StratParse/pkg/logger"
)

// Extractor layers three extraction passes over the tokenization result:
// entity-driven values first, then parameter-name adjacency, then contextual
// inference. Indicator-implied defaults fill remaining gaps, and every value
// is validated against its definition. Validation failures lower confidence
// but never abort extraction.
type Extractor struct {
	log *logger.Logger
}

func NewExtractor(log *logger.Logger) *Extractor {
	return &Extractor{log: log}
}

func (e *Extractor) Extract(ctx context.Context, result models.TokenizationResult, intent *models.TradingIntent) models.ParameterExtraction {
	out := models.ParameterExtraction{Parameters: models.StrategyParameters{}}

	sorted := make([]models.Token, len(result.Tokens))
	copy(sorted, result.Tokens)
	sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].Position < sorted[j].Position })

	indicators := intentIndicators(intent)

	e.entityPass(&out, result.Entities, sorted, indicators)
	e.adjacencyPass(&out, sorted)
	e.contextPass(&out, sorted)
	e.defaultsPass(&out, indicators)
	e.validate(&out)

	out.Confidence = extractionConfidence(out)
	return out
}

// entityPass consumes typed entities. Percentages attach to the nearest
// preceding risk parameter; thresholds map to oversold/overbought levels for
// oscillator strategies based on the comparison direction.
func (e *Extractor) entityPass(out *models.ParameterExtraction, entities []models.Entity, tokens []models.Token, indicators map[string]bool) {
	for _, ent := range entities {
		switch ent.Type {
		case models.EntityTimeframe:
			if tf, ok := ent.Value.(string); ok {
				setParam(out.Parameters, "timeframe", tf, models.ParamTimeframe, ent.Confidence, models.SourceExplicit)
			}
		case models.EntitySymbol:
			if sym, ok := ent.Value.(string); ok {
				setParam(out.Parameters, "symbol", sym, models.ParamSymbol, ent.Confidence, models.SourceExplicit)
			}
		case models.EntityPercentage:
			v, ok := ent.Value.(float64)
			if !ok {
				continue
			}
			if name := precedingParameterID(tokens, ent.Start); name != "" {
				setParam(out.Parameters, name, v, models.ParamPercent, ent.Confidence, models.SourceExplicit)
			}
		case models.EntityThreshold:
			v, ok := ent.Value.(float64)
			if !ok {
				continue
			}
			name := "threshold"
			if hasOscillator(indicators) {
				switch thresholdDirection(tokens, ent.Start) {
				case "lt":
					name = "oversoldLevel"
				case "gt":
					name = "overboughtLevel"
				}
			}
			setParam(out.Parameters, name, v, models.ParamNumber, ent.Confidence, models.SourceExplicit)
		}
	}
}

// adjacencyPass picks up "<parameter> <number>" and "<indicator> <number>"
// shapes, e.g. "stop loss 2" or "rsi 14".
func (e *Extractor) adjacencyPass(out *models.ParameterExtraction, tokens []models.Token) {
	for i := 0; i < len(tokens)-1; i++ {
		cur, next := tokens[i], tokens[i+1]
		if next.Type != models.TokenNumber {
			continue
		}
		v, ok := numberValue(next)
		if !ok {
			continue
		}
		switch cur.Type {
		case models.TokenParameter:
			name := tokenID(cur)
			if _, exists := out.Parameters[name]; exists || name == "" {
				continue
			}
			ptype := models.ParamNumber
			if d, ok := definitions[name]; ok {
				ptype = d.Type
			}
			setParam(out.Parameters, name, v, ptype, 0.85, models.SourceExplicit)
		case models.TokenIndicator:
			if _, exists := out.Parameters["period"]; !exists {
				setParam(out.Parameters, "period", v, models.ParamNumber, 0.8, models.SourceExplicit)
			}
		}
	}
}

// contextPass infers a timeframe from trading-style words when none was said.
func (e *Extractor) contextPass(out *models.ParameterExtraction, tokens []models.Token) {
	if _, ok := out.Parameters["timeframe"]; ok {
		return
	}
	for _, t := range tokens {
		if tf, ok := contextTimeframes[strings.ToLower(t.Text)]; ok {
			setParam(out.Parameters, "timeframe", tf, models.ParamTimeframe, 0.6, models.SourceInferred)
			return
		}
	}
}

// defaultsPass fills standard parameters for every mentioned indicator.
func (e *Extractor) defaultsPass(out *models.ParameterExtraction, indicators map[string]bool) {
	ids := make([]string, 0, len(indicators))
	for id := range indicators {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	for _, id := range ids {
		for name, v := range indicatorDefaults[id] {
			if _, exists := out.Parameters[name]; exists {
				continue
			}
			ptype := models.ParamNumber
			if d, ok := definitions[name]; ok {
				ptype = d.Type
			}
			setParam(out.Parameters, name, v, ptype, 0.5, models.SourceDefault)
		}
	}
}

func (e *Extractor) validate(out *models.ParameterExtraction) {
	names := make([]string, 0, len(out.Parameters))
	for name := range out.Parameters {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		pv := out.Parameters[name]
		v, ok := pv.Value.(float64)
		if !ok {
			continue
		}
		if err := validateValue(name, v); err != nil {
			out.Issues = append(out.Issues, models.ParameterIssue{Name: name, Message: err.Error(), Value: v})
		}
	}
	out.Issues = append(out.Issues, crossChecks(out.Parameters)...)
}

// extractionConfidence is the mean parameter confidence minus 0.1 per
// validation issue plus 0.05 per explicit parameter, clamped to [0,1].
func extractionConfidence(out models.ParameterExtraction) float64 {
	if len(out.Parameters) == 0 {
		return 0
	}
	sum := 0.0
	explicit := 0
	for _, pv := range out.Parameters {
		sum += pv.Confidence
		if pv.Source == models.SourceExplicit {
			explicit++
		}
	}
	conf := sum/float64(len(out.Parameters)) - 0.1*float64(len(out.Issues)) + 0.05*float64(explicit)
	if conf < 0 {
		conf = 0
	}
	if conf > 1 {
		conf = 1
	}
	return conf
}

func setParam(p models.StrategyParameters, name string, value interface{}, t models.ParameterType, conf float64, src models.ParameterSource) {
	if existing, ok := p[name]; ok && existing.Confidence >= conf {
		return
	}
	p[name] = models.ParameterValue{Value: value, Type: t, Confidence: conf, Source: src}
}

func intentIndicators(intent *models.TradingIntent) map[string]bool {
	set := make(map[string]bool)
	if intent == nil {
		return set
	}
	for _, id := range intent.Indicators {
		set[strings.ToLower(id)] = true
	}
	return set
}

func hasOscillator(indicators map[string]bool) bool {
	for id := range indicators {
		if oscillatorIDs[id] {
			return true
		}
	}
	return false
}

// precedingParameterID walks back from a position to the closest parameter
// token within three words.
func precedingParameterID(tokens []models.Token, pos int) string {
	best := ""
	for _, t := range tokens {
		if t.Type != models.TokenParameter {
			continue
		}
		if t.Position < pos && pos-t.Position <= 3 {
			best = tokenID(t)
		}
		if t.Position >= pos {
			break
		}
	}
	return best
}

// thresholdDirection finds the comparison operator immediately before a
// threshold value.
func thresholdDirection(tokens []models.Token, pos int) string {
	dir := ""
	for _, t := range tokens {
		if t.Type == models.TokenOperator && t.Position < pos && pos-t.Position <= 2 {
			dir = tokenID(t)
		}
		if t.Position >= pos {
			break
		}
	}
	switch dir {
	case "lt", "lte":
		return "lt"
	case "gt", "gte":
		return "gt"
	}
	return ""
}

func tokenID(t models.Token) string {
	if t.Metadata != nil {
		if id, ok := t.Metadata["id"].(string); ok {
			return id
		}
	}
	return strings.ToLower(t.Text)
}

func numberValue(t models.Token) (float64, bool) {
	raw := strings.TrimSuffix(t.Text, "%")
	v, err := strconv.ParseFloat(raw, 64)
	return v, err == nil
}

var _ service.ParameterExtractor = (*Extractor)(nil)
