package tokenizer

import (
	"regexp"
	"strings"
)

var (
	reNumber     = regexp.MustCompile(`^-?\d+(\.\d+)?$`)
	rePercentage = regexp.MustCompile(`^-?\d+(\.\d+)?%$`)
	reTimeframe  = regexp.MustCompile(`^\d+[mhdw]$`)
	reTicker     = regexp.MustCompile(`^[A-Z]{2,6}(/[A-Z]{2,6})?$`)
	reSpaces     = regexp.MustCompile(`\s+`)
)

// contractions expanded during normalization. Keys are matched after
// lowercasing.
var contractions = map[string]string{
	"don't":   "do not",
	"doesn't": "does not",
	"didn't":  "did not",
	"can't":   "cannot",
	"won't":   "will not",
	"isn't":   "is not",
	"aren't":  "are not",
	"it's":    "it is",
	"that's":  "that is",
	"let's":   "let us",
	"i'm":     "i am",
	"i'd":     "i would",
	"i'll":    "i will",
	"we're":   "we are",
	"you're":  "you are",
}

// trimmedPunct is stripped from word edges. Comparison symbols and the
// percent sign survive so operator and percentage classification still work.
const trimmedPunct = `.,!?;:"'()[]{}`

func normalize(text string) string {
	s := strings.ToLower(strings.TrimSpace(text))
	for from, to := range contractions {
		s = strings.ReplaceAll(s, from, to)
	}
	// detach parentheses so "rsi (14)" splits into separate words
	s = strings.NewReplacer("(", " ", ")", " ", ",", " ", ";", " ").Replace(s)
	return reSpaces.ReplaceAllString(s, " ")
}

func trimWord(w string) string {
	return strings.Trim(w, trimmedPunct)
}

func isPurePunct(w string) bool {
	for _, r := range w {
		if r >= 'a' && r <= 'z' || r >= 'A' && r <= 'Z' || r >= '0' && r <= '9' ||
			r == '<' || r == '>' || r == '=' || r == '%' {
			return false
		}
	}
	return true
}

// wordStarts returns the byte offset of each word in a space-normalized string.
func wordStarts(s string) []int {
	starts := make([]int, 0, 16)
	inWord := false
	for i, r := range s {
		if r == ' ' {
			inWord = false
			continue
		}
		if !inWord {
			starts = append(starts, i)
			inWord = true
		}
	}
	return starts
}

// wordIndexAt maps a byte offset to the index of the word containing it.
func wordIndexAt(starts []int, off int) int {
	idx := 0
	for i, s := range starts {
		if s > off {
			break
		}
		idx = i
	}
	return idx
}
