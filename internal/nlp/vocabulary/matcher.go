package vocabulary

import (
	"strings"

	"StratParse/internal/domain/models"
)

// Entry is one canonical trading term with its synonyms.
type Entry struct {
	Canonical  string
	Synonyms   []string
	TokenType  models.TokenType
	Confidence float64
	Metadata   map[string]interface{}
}

// Match is a resolved lookup. Confidence is the entry confidence, scaled
// down when the match came from the overlap fallback.
type Match struct {
	Entry      *Entry
	Confidence float64
}

// Matcher resolves raw words and phrases to canonical trading terms. Two
// maps are built at construction: canonical term → entry and synonym →
// entry, both case-insensitive. Lookups never fail; an unknown term simply
// returns nil.
type Matcher struct {
	entries   []Entry
	canonical map[string]*Entry
	synonyms  map[string]*Entry
	multiWord []string
}

// NewMatcher builds a matcher over the static vocabulary table.
func NewMatcher() *Matcher {
	return newMatcherWith(builtinEntries())
}

func newMatcherWith(entries []Entry) *Matcher {
	m := &Matcher{
		entries:   entries,
		canonical: make(map[string]*Entry, len(entries)),
		synonyms:  make(map[string]*Entry),
	}
	for i := range m.entries {
		e := &m.entries[i]
		m.canonical[strings.ToLower(e.Canonical)] = e
		for _, s := range e.Synonyms {
			m.synonyms[strings.ToLower(s)] = e
		}
		if strings.Contains(e.Canonical, " ") {
			m.multiWord = append(m.multiWord, e.Canonical)
		}
		for _, s := range e.Synonyms {
			if strings.Contains(s, " ") {
				m.multiWord = append(m.multiWord, s)
			}
		}
	}
	return m
}

// FindMatch resolves a term: exact canonical first, then exact synonym, then
// a substring/overlap fallback that accepts the best containing match when
// min(len)/max(len) exceeds 0.7, scaling confidence by that ratio.
func (m *Matcher) FindMatch(term string) *Match {
	t := strings.ToLower(strings.TrimSpace(term))
	if t == "" {
		return nil
	}
	if e, ok := m.canonical[t]; ok {
		return &Match{Entry: e, Confidence: e.Confidence}
	}
	if e, ok := m.synonyms[t]; ok {
		return &Match{Entry: e, Confidence: e.Confidence}
	}
	return m.overlapMatch(t)
}

func (m *Matcher) overlapMatch(t string) *Match {
	var best *Entry
	bestRatio := 0.0
	consider := func(candidate string, e *Entry) {
		if !strings.Contains(candidate, t) && !strings.Contains(t, candidate) {
			return
		}
		r := overlapRatio(candidate, t)
		if r > 0.7 && r > bestRatio {
			bestRatio = r
			best = e
		}
	}
	for c, e := range m.canonical {
		consider(c, e)
	}
	for s, e := range m.synonyms {
		consider(s, e)
	}
	if best == nil {
		return nil
	}
	return &Match{Entry: best, Confidence: best.Confidence * bestRatio}
}

func overlapRatio(a, b string) float64 {
	la, lb := len(a), len(b)
	if la == 0 || lb == 0 {
		return 0
	}
	if la < lb {
		return float64(la) / float64(lb)
	}
	return float64(lb) / float64(la)
}

// FindByTokenType enumerates all entries producing the given token type.
func (m *Matcher) FindByTokenType(tt models.TokenType) []*Entry {
	var out []*Entry
	for i := range m.entries {
		if m.entries[i].TokenType == tt {
			out = append(out, &m.entries[i])
		}
	}
	return out
}

// MultiWordTerms returns every known multi-word canonical term or synonym,
// used by the tokenizer's merge pass over the original text.
func (m *Matcher) MultiWordTerms() []string {
	return m.multiWord
}

// CanonicalID returns the stable id recorded in an entry's metadata, falling
// back to the canonical term itself.
func (e *Entry) CanonicalID() string {
	if e.Metadata != nil {
		if id, ok := e.Metadata["id"].(string); ok && id != "" {
			return id
		}
	}
	return e.Canonical
}
