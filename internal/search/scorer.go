package search

import (
	"math"
	"strings"
	"unicode/utf8"

	"github.com/canon-labs/scriptura-cli/internal/core/domain"
)

// Scorer computes the raw relevance of an indexed item for a query.
// It is a pure function of its inputs: no side effects, deterministic,
// and it never fails on missing metadata fields.
type Scorer struct {
	weights  Weights
	synonyms *SynonymTable
}

// NewScorer creates a scorer with the given weights and synonym table.
func NewScorer(weights Weights, synonyms *SynonymTable) *Scorer {
	return &Scorer{weights: weights, synonyms: synonyms}
}

// Score combines the matching signals additively, in priority order:
// full-title matches, word-boundary matches, per-token title and
// search-text matches, fuzzy contributions, synonym contributions, and
// entity metadata bonuses. Long titles are mildly down-weighted. The
// result is rounded to the nearest integer for reproducible ordering;
// items with no signal at all score exactly 0.
func (s *Scorer) Score(item *domain.IndexedItem, tokens []string, query string) float64 {
	if query == "" {
		return 0
	}

	w := s.weights
	title := strings.ToLower(item.Title)
	score := 0.0

	// Full-title signals, strongest first and mutually exclusive.
	switch {
	case title == query:
		score += w.ExactTitle
	case strings.HasPrefix(title, query):
		score += w.TitlePrefix
	case strings.Contains(title, query):
		score += w.TitleContains
	}

	// Word-boundary matches between query words and title words.
	titleWords := strings.Fields(foldText(title))
	for _, qw := range strings.Fields(foldText(query)) {
		for _, tw := range titleWords {
			switch {
			case tw == qw:
				score += w.WordExact
			case len(qw) >= 3 && strings.HasPrefix(tw, qw):
				score += w.WordPrefix
			}
		}
	}

	// Per-token signals.
	for _, tok := range tokens {
		score += matchSignal(title, tok, w.TokenTitleWord, w.TokenTitleSub)
		score += matchSignal(item.SearchText, tok, w.TokenTextWord, w.TokenTextSub)

		score += FuzzyScore(tok, title) * w.FuzzyTitle
		score += FuzzyScore(tok, item.SearchText) * w.FuzzyText

		for _, syn := range s.synonyms.Expand(tok) {
			score += matchSignal(item.SearchText, syn, w.SynonymWord, w.SynonymSub)
		}

		if item.Type == domain.RecordTypeEntity {
			score += s.entityContextBonus(item, tok)
		}
	}

	if score > 0 && utf8.RuneCountInString(item.Title) > w.LongTitleThreshold {
		score *= w.LongTitlePenalty
	}

	return math.Round(score)
}

// entityContextBonus rewards query tokens that match an entity's
// testament, kind, role, location, or category memberships. Missing
// fields contribute nothing.
func (s *Scorer) entityContextBonus(item *domain.IndexedItem, token string) float64 {
	bonus := 0.0
	for _, field := range []string{item.Testament, item.Kind, item.Role, item.Location} {
		if fieldMatches(field, token) {
			bonus += s.weights.EntityContext
		}
	}
	for _, cat := range item.Categories {
		if fieldMatches(cat, token) {
			bonus += s.weights.EntityContext
			break
		}
	}
	return bonus
}

// matchSignal scores a single term against a lowercase text: a
// whole-word occurrence earns wordWeight, a bare substring earns
// subWeight, no occurrence earns nothing.
func matchSignal(text, term string, wordWeight, subWeight float64) float64 {
	term = strings.ToLower(term)
	switch {
	case containsWord(text, term):
		return wordWeight
	case strings.Contains(text, term):
		return subWeight
	default:
		return 0
	}
}

func fieldMatches(field, token string) bool {
	if field == "" {
		return false
	}
	return strings.Contains(strings.ToLower(field), token)
}
