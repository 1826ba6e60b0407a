package tokenizer

import (
	"regexp"
	"sort"
	"strconv"
	"strings"
	"time"

	"StratParse/internal/domain/models"
	"StratParse/internal/nlp/vocabulary"
	"StratParse/pkg/logger"
)

// Config bounds raw token acceptance.
type Config struct {
	MinTokenLength int
	MaxTokenLength int
}

// DefaultConfig matches the pipeline defaults.
func DefaultConfig() Config {
	return Config{MinTokenLength: 1, MaxTokenLength: 30}
}

// Tokenizer segments raw text into typed tokens and entities. Vocabulary
// lookup runs first; regex classification covers numbers, percentages,
// ticker symbols, timeframe shorthand and comparison operators. A merge pass
// splices known multi-word terms found in the original text into single
// tokens. Any internal failure yields an empty result with confidence 0.
type Tokenizer struct {
	vocab *vocabulary.Matcher
	cfg   Config
	log   *logger.Logger

	multiWordRes map[string]*regexp.Regexp
}

// New builds a tokenizer over the given vocabulary.
func New(vocab *vocabulary.Matcher, cfg Config, log *logger.Logger) *Tokenizer {
	if cfg.MaxTokenLength <= 0 {
		cfg = DefaultConfig()
	}
	t := &Tokenizer{
		vocab:        vocab,
		cfg:          cfg,
		log:          log,
		multiWordRes: make(map[string]*regexp.Regexp),
	}
	for _, term := range vocab.MultiWordTerms() {
		t.multiWordRes[term] = regexp.MustCompile(`\b` + regexp.QuoteMeta(term) + `\b`)
	}
	return t
}

// Tokenize processes one input string. It never panics past this boundary.
func (t *Tokenizer) Tokenize(text string) (res models.TokenizationResult) {
	start := time.Now()
	defer func() {
		if r := recover(); r != nil {
			if t.log != nil {
				t.log.Error("tokenizer panic", logger.Any("panic", r))
			}
			res = models.TokenizationResult{ProcessingTime: time.Since(start)}
		}
	}()

	upperWords := upperWordSet(text)
	normalized := normalize(text)
	if normalized == "" {
		return models.TokenizationResult{ProcessingTime: time.Since(start)}
	}

	words := strings.Fields(normalized)
	tokens := make([]models.Token, 0, len(words))
	for pos, w := range words {
		w = trimWord(w)
		if w == "" || isPurePunct(w) {
			continue
		}
		if len(w) < t.cfg.MinTokenLength || len(w) > t.cfg.MaxTokenLength {
			continue
		}
		tokens = append(tokens, t.classify(w, pos, upperWords))
	}

	tokens = t.mergeMultiWord(normalized, tokens)
	entities := deriveEntities(tokens)

	kept := tokens[:0]
	for _, tok := range tokens {
		if tok.Confidence >= 0.1 {
			kept = append(kept, tok)
		}
	}
	tokens = kept
	sort.SliceStable(tokens, func(i, j int) bool { return tokens[i].Position < tokens[j].Position })

	return models.TokenizationResult{
		Tokens:         tokens,
		Entities:       entities,
		Confidence:     overallConfidence(tokens),
		ProcessingTime: time.Since(start),
	}
}

func (t *Tokenizer) classify(w string, pos int, upperWords map[string]bool) models.Token {
	if m := t.vocab.FindMatch(w); m != nil {
		return models.Token{
			Text:       w,
			Type:       m.Entry.TokenType,
			Position:   pos,
			Confidence: m.Confidence,
			Metadata:   m.Entry.Metadata,
		}
	}
	switch {
	case rePercentage.MatchString(w):
		return models.Token{Text: w, Type: models.TokenNumber, Position: pos, Confidence: 0.95,
			Metadata: map[string]interface{}{"percent": true}}
	case reNumber.MatchString(w):
		return models.Token{Text: w, Type: models.TokenNumber, Position: pos, Confidence: 0.95}
	case reTimeframe.MatchString(w):
		return models.Token{Text: w, Type: models.TokenTimeframe, Position: pos, Confidence: 0.9,
			Metadata: map[string]interface{}{"normalized": w}}
	case upperWords[strings.ToUpper(w)] && reTicker.MatchString(strings.ToUpper(w)):
		return models.Token{Text: strings.ToUpper(w), Type: models.TokenSymbol, Position: pos, Confidence: 0.7}
	}
	return models.Token{Text: w, Type: models.TokenUnknown, Position: pos, Confidence: 0.3}
}

// mergeMultiWord splices token runs covered by a known multi-word term into
// one merged token carrying the vocabulary entry's confidence.
func (t *Tokenizer) mergeMultiWord(normalized string, tokens []models.Token) []models.Token {
	starts := wordStarts(normalized)
	byPos := make(map[int]int, len(tokens))
	for i, tok := range tokens {
		byPos[tok.Position] = i
	}

	type span struct {
		term       string
		start, end int // word indexes, inclusive
	}
	var spans []span
	for term, re := range t.multiWordRes {
		for _, loc := range re.FindAllStringIndex(normalized, -1) {
			ws := wordIndexAt(starts, loc[0])
			we := wordIndexAt(starts, loc[1]-1)
			if we > ws {
				spans = append(spans, span{term: term, start: ws, end: we})
			}
		}
	}
	if len(spans) == 0 {
		return tokens
	}
	// longer spans win overlaps
	sort.Slice(spans, func(i, j int) bool {
		if spans[i].end-spans[i].start != spans[j].end-spans[j].start {
			return spans[i].end-spans[i].start > spans[j].end-spans[j].start
		}
		return spans[i].start < spans[j].start
	})

	consumed := make(map[int]bool)
	drop := make(map[int]bool)
	merged := make([]models.Token, 0, len(spans))
	for _, sp := range spans {
		m := t.vocab.FindMatch(sp.term)
		if m == nil {
			continue
		}
		overlap := false
		for p := sp.start; p <= sp.end; p++ {
			if consumed[p] {
				overlap = true
				break
			}
		}
		if overlap {
			continue
		}
		for p := sp.start; p <= sp.end; p++ {
			consumed[p] = true
			if i, ok := byPos[p]; ok {
				drop[i] = true
			}
		}
		md := make(map[string]interface{}, len(m.Entry.Metadata)+1)
		for k, v := range m.Entry.Metadata {
			md[k] = v
		}
		md["words"] = sp.end - sp.start + 1
		merged = append(merged, models.Token{
			Text:       m.Entry.Canonical,
			Type:       m.Entry.TokenType,
			Position:   sp.start,
			Confidence: m.Entry.Confidence,
			Metadata:   md,
		})
	}

	out := make([]models.Token, 0, len(tokens))
	for i, tok := range tokens {
		if !drop[i] {
			out = append(out, tok)
		}
	}
	return append(out, merged...)
}

func deriveEntities(tokens []models.Token) []models.Entity {
	sorted := make([]models.Token, len(tokens))
	copy(sorted, tokens)
	sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].Position < sorted[j].Position })

	entities := make([]models.Entity, 0, len(sorted))
	for i, tok := range sorted {
		switch tok.Type {
		case models.TokenIndicator:
			id := tok.Text
			if tok.Metadata != nil {
				if v, ok := tok.Metadata["id"].(string); ok {
					id = v
				}
			}
			entities = append(entities, models.Entity{
				Text: tok.Text, Type: models.EntityIndicatorName, Value: id,
				Confidence: tok.Confidence, Start: tok.Position, End: entityEnd(tok),
			})
		case models.TokenNumber:
			raw := strings.TrimSuffix(tok.Text, "%")
			v, err := strconv.ParseFloat(raw, 64)
			if err != nil {
				continue
			}
			et := models.EntityParameterValue
			if tok.Metadata != nil && tok.Metadata["percent"] == true {
				et = models.EntityPercentage
			} else if i > 0 && sorted[i-1].Type == models.TokenOperator {
				et = models.EntityThreshold
			}
			entities = append(entities, models.Entity{
				Text: tok.Text, Type: et, Value: v,
				Confidence: tok.Confidence, Start: tok.Position, End: entityEnd(tok),
			})
		case models.TokenTimeframe:
			tf := tok.Text
			if tok.Metadata != nil {
				if v, ok := tok.Metadata["normalized"].(string); ok {
					tf = v
				} else if v, ok := tok.Metadata["id"].(string); ok {
					tf = v
				}
			}
			entities = append(entities, models.Entity{
				Text: tok.Text, Type: models.EntityTimeframe, Value: tf,
				Confidence: tok.Confidence, Start: tok.Position, End: entityEnd(tok),
			})
		case models.TokenSymbol:
			entities = append(entities, models.Entity{
				Text: tok.Text, Type: models.EntitySymbol, Value: strings.ToUpper(tok.Text),
				Confidence: tok.Confidence, Start: tok.Position, End: entityEnd(tok),
			})
		}
	}
	return entities
}

func entityEnd(tok models.Token) int {
	if tok.Metadata != nil {
		if n, ok := tok.Metadata["words"].(int); ok && n > 1 {
			return tok.Position + n - 1
		}
	}
	return tok.Position
}

// overallConfidence is the mean token confidence plus a boost of 0.1 per
// trading token, capped at 0.3, clamped to [0,1]. No tokens means zero.
func overallConfidence(tokens []models.Token) float64 {
	if len(tokens) == 0 {
		return 0
	}
	sum := 0.0
	trading := 0
	for _, t := range tokens {
		sum += t.Confidence
		switch t.Type {
		case models.TokenIndicator, models.TokenAction, models.TokenCondition:
			trading++
		}
	}
	boost := 0.1 * float64(trading)
	if boost > 0.3 {
		boost = 0.3
	}
	c := sum/float64(len(tokens)) + boost
	if c > 1 {
		c = 1
	}
	if c < 0 {
		c = 0
	}
	return c
}

func upperWordSet(text string) map[string]bool {
	set := make(map[string]bool)
	for _, w := range strings.Fields(text) {
		w = trimWord(w)
		if w != "" && w == strings.ToUpper(w) && w != strings.ToLower(w) {
			set[w] = true
		}
	}
	return set
}
