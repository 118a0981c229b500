package search

import (
	"strings"
	"unicode"
)

// defaultStopWords are common English function words that carry no
// search signal. Tokens in this set are dropped during tokenisation.
var defaultStopWords = []string{
	"a", "an", "and", "are", "as", "at", "be", "but", "by", "for",
	"from", "had", "has", "have", "he", "in", "is", "it", "its", "of",
	"on", "or", "she", "that", "the", "to", "was", "were", "will",
	"with",
}

// Tokenizer splits and normalises raw text into lowercase word tokens.
// It is stateless after construction and safe for concurrent use.
type Tokenizer struct {
	stop map[string]struct{}
}

// NewTokenizer creates a tokenizer with the built-in stop-word set
// plus any extra stop words.
func NewTokenizer(extra ...string) *Tokenizer {
	stop := make(map[string]struct{}, len(defaultStopWords)+len(extra))
	for _, w := range defaultStopWords {
		stop[w] = struct{}{}
	}
	for _, w := range extra {
		stop[strings.ToLower(w)] = struct{}{}
	}
	return &Tokenizer{stop: stop}
}

// Tokenize lower-cases the input, replaces every character that is
// neither alphanumeric nor whitespace with a space, splits on
// whitespace, and drops tokens of length <= 1 and stop words.
// Empty input yields an empty slice.
func (t *Tokenizer) Tokenize(text string) []string {
	words := strings.Fields(foldText(text))
	tokens := make([]string, 0, len(words))
	for _, w := range words {
		if len(w) <= 1 {
			continue
		}
		if _, isStop := t.stop[w]; isStop {
			continue
		}
		tokens = append(tokens, w)
	}
	return tokens
}

// NormalizeQuery trims the query, lower-cases it, and collapses
// internal whitespace runs to single spaces. Punctuation is kept so
// exact-title matching still sees it.
func NormalizeQuery(query string) string {
	return strings.Join(strings.Fields(strings.ToLower(query)), " ")
}

// normalizeText lower-cases and whitespace-normalises a search text
// blob. Used by the indexer when composing SearchText.
func normalizeText(text string) string {
	return strings.Join(strings.Fields(strings.ToLower(text)), " ")
}

// foldText lower-cases text and maps every non-alphanumeric,
// non-whitespace rune to a space.
func foldText(text string) string {
	var b strings.Builder
	b.Grow(len(text))
	for _, r := range strings.ToLower(text) {
		switch {
		case unicode.IsLetter(r) || unicode.IsDigit(r) || unicode.IsSpace(r):
			b.WriteRune(r)
		default:
			b.WriteByte(' ')
		}
	}
	return b.String()
}

// containsWord reports whether word occurs in text bounded by
// non-alphanumeric characters (or the text edges). Both arguments must
// already be lowercase.
func containsWord(text, word string) bool {
	if word == "" {
		return false
	}
	for start := 0; ; {
		i := strings.Index(text[start:], word)
		if i < 0 {
			return false
		}
		i += start
		end := i + len(word)
		if boundaryBefore(text, i) && boundaryAfter(text, end) {
			return true
		}
		start = i + 1
	}
}

func boundaryBefore(text string, i int) bool {
	if i == 0 {
		return true
	}
	return !isWordByte(text[i-1])
}

func boundaryAfter(text string, i int) bool {
	if i >= len(text) {
		return true
	}
	return !isWordByte(text[i])
}

func isWordByte(b byte) bool {
	return (b >= 'a' && b <= 'z') || (b >= '0' && b <= '9')
}
