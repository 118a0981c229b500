package search

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDistance(t *testing.T) {
	tests := []struct {
		name string
		a    string
		b    string
		want int
	}{
		{"identical", "david", "david", 0},
		{"empty both", "", "", 0},
		{"empty left", "", "abc", 3},
		{"empty right", "abc", "", 3},
		{"substitution", "david", "davod", 1},
		{"insertion", "david", "davids", 1},
		{"deletion", "david", "davi", 1},
		{"disjoint", "david", "xyz", 5},
		{"transposed pair", "moses", "msoes", 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Distance(tt.a, tt.b))
		})
	}
}

func TestFuzzyScore_ExactMatch(t *testing.T) {
	assert.Equal(t, 1.0, FuzzyScore("david", "david"))
}

func TestFuzzyScore_CaseInsensitive(t *testing.T) {
	// Distance is 0 after normalisation.
	assert.Equal(t, 1.0, FuzzyScore("david", "davID"))
}

func TestFuzzyScore_WithinBound(t *testing.T) {
	// One edit, longest string 5: 1 - 1/5.
	assert.InDelta(t, 0.8, FuzzyScore("david", "davod"), 1e-9)
}

func TestFuzzyScore_ExceedsBound(t *testing.T) {
	// Bound for a 5-rune pattern is min(3, 2) = 2.
	assert.Equal(t, 0.0, FuzzyScore("david", "xyz"))
	assert.Equal(t, 0.0, FuzzyScore("david", "goliath"))
}

func TestFuzzyScore_ShortPattern(t *testing.T) {
	// Bound for a 2-rune pattern is 1.
	assert.Greater(t, FuzzyScore("he", "hex"), 0.0)
	assert.Equal(t, 0.0, FuzzyScore("he", "hexes"))
}

func TestFuzzyScore_LongTextShortCircuits(t *testing.T) {
	// Length gap alone exceeds the bound; no DP table is built.
	blob := "david son of jesse king of israel slayer of goliath"
	assert.Equal(t, 0.0, FuzzyScore("david", blob))
}

func TestMaxFuzzyDistance(t *testing.T) {
	assert.Equal(t, 0, maxFuzzyDistance("a"))
	assert.Equal(t, 1, maxFuzzyDistance("abc"))
	assert.Equal(t, 3, maxFuzzyDistance("abcdef"))
	assert.Equal(t, 3, maxFuzzyDistance("averylongpattern"))
}
