package search

import "time"

// Default engine settings.
const (
	DefaultMaxResults    = 50
	DefaultSuggestLimit  = 8
	DefaultCacheCapacity = 1000
	DefaultDebounceDelay = 150 * time.Millisecond
)

// Config carries every engine tuning knob. The zero value is usable;
// withDefaults fills in anything left unset so fixture tests can
// override a single knob without restating the rest.
type Config struct {
	// MaxResults is the result count used when the caller passes no limit.
	MaxResults int

	// SuggestLimit is the result count for autocomplete queries.
	SuggestLimit int

	// CacheCapacity bounds the result cache entry count.
	CacheCapacity int

	// DebounceDelay is the settle window for debounced queries.
	DebounceDelay time.Duration

	// StopWords are added to the built-in stop-word set.
	StopWords []string

	// Synonyms are added to the built-in synonym table.
	Synonyms map[string][]string

	// Weights are the scoring signal magnitudes.
	Weights Weights

	// Boosts are the per-type relevance boost rules.
	Boosts BoostRules
}

// Weights holds the additive scoring signal magnitudes. The relative
// ordering of the magnitudes is the contract, not the literal values:
// full-title signals dominate word-boundary signals, which dominate
// per-token signals, which dominate fuzzy and synonym contributions.
type Weights struct {
	ExactTitle    float64 // title equals the full query
	TitlePrefix   float64 // title starts with the query
	TitleContains float64 // title contains the query

	WordExact  float64 // query word equals a title word
	WordPrefix float64 // title word starts with a query word (len >= 3)

	TokenTitleWord float64 // token is a whole word of the title
	TokenTitleSub  float64 // token is a substring of the title
	TokenTextWord  float64 // token is a whole word of the search text
	TokenTextSub   float64 // token is a substring of the search text

	FuzzyTitle float64 // multiplier on the fuzzy score against the title
	FuzzyText  float64 // multiplier on the fuzzy score against the search text

	SynonymWord float64 // synonym is a whole word of the search text
	SynonymSub  float64 // synonym is a substring of the search text

	EntityContext float64 // per matching entity metadata field

	// Titles longer than LongTitleThreshold runes are down-weighted by
	// LongTitlePenalty to prefer more specific titles among near ties.
	LongTitleThreshold int
	LongTitlePenalty   float64
}

// DefaultWeights returns the calibrated scoring weights.
func DefaultWeights() Weights {
	return Weights{
		ExactTitle:    100,
		TitlePrefix:   50,
		TitleContains: 30,

		WordExact:  15,
		WordPrefix: 8,

		TokenTitleWord: 12,
		TokenTitleSub:  6,
		TokenTextWord:  6,
		TokenTextSub:   3,

		FuzzyTitle: 10,
		FuzzyText:  5,

		SynonymWord: 8,
		SynonymSub:  4,

		EntityContext: 5,

		LongTitleThreshold: 25,
		LongTitlePenalty:   0.95,
	}
}

// ImportanceBand maps a reference-count threshold to a boost bonus.
type ImportanceBand struct {
	MinReferences int
	Bonus         float64
}

// BoostRules computes the per-item relevance boost.
type BoostRules struct {
	// Book, Chapter, and Category are flat per-type boosts.
	Book     float64
	Chapter  float64
	Category float64

	// EntityKindBase is the baseline boost per entity kind. Unknown
	// kinds fall back to EntityDefaultBase.
	EntityKindBase    map[string]float64
	EntityDefaultBase float64

	// ReferenceWeight scales log10(referenceCount+1); the scaled term
	// is capped at ReferenceCap.
	ReferenceWeight float64
	ReferenceCap    float64

	// Bands are evaluated highest threshold first; the first band the
	// reference count reaches contributes its bonus.
	Bands []ImportanceBand
}

// DefaultBoostRules returns the per-type boost rule table.
func DefaultBoostRules() BoostRules {
	return BoostRules{
		Book:     2.0,
		Chapter:  1.0,
		Category: 1.5,
		EntityKindBase: map[string]float64{
			"person": 1.2,
			"place":  1.0,
			"tribe":  1.1,
			"title":  0.9,
		},
		EntityDefaultBase: 1.0,
		ReferenceWeight:   0.5,
		ReferenceCap:      2.0,
		Bands: []ImportanceBand{
			{MinReferences: 100, Bonus: 1.0},
			{MinReferences: 50, Bonus: 0.8},
			{MinReferences: 20, Bonus: 0.6},
			{MinReferences: 10, Bonus: 0.4},
			{MinReferences: 5, Bonus: 0.2},
		},
	}
}

// withDefaults returns a copy of the config with unset knobs replaced
// by defaults.
func (c Config) withDefaults() Config {
	if c.MaxResults <= 0 {
		c.MaxResults = DefaultMaxResults
	}
	if c.SuggestLimit <= 0 {
		c.SuggestLimit = DefaultSuggestLimit
	}
	if c.CacheCapacity <= 0 {
		c.CacheCapacity = DefaultCacheCapacity
	}
	if c.DebounceDelay <= 0 {
		c.DebounceDelay = DefaultDebounceDelay
	}
	if c.Weights == (Weights{}) {
		c.Weights = DefaultWeights()
	}
	if c.Boosts.Book == 0 && c.Boosts.EntityKindBase == nil {
		c.Boosts = DefaultBoostRules()
	}
	return c
}
