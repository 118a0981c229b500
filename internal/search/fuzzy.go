package search

import "strings"

// maxFuzzyDistance bounds the accepted edit distance for a pattern:
// min(3, len(pattern)/2). Short patterns tolerate fewer edits so that
// dissimilar short tokens do not match.
func maxFuzzyDistance(pattern string) int {
	bound := len(pattern) / 2
	if bound > 3 {
		bound = 3
	}
	return bound
}

// Distance computes the Levenshtein edit distance between a and b
// (insertions, deletions, substitutions at unit cost) using the
// two-row dynamic-programming formulation.
func Distance(a, b string) int {
	if a == b {
		return 0
	}
	if len(a) == 0 {
		return len(b)
	}
	if len(b) == 0 {
		return len(a)
	}

	prev := make([]int, len(b)+1)
	curr := make([]int, len(b)+1)
	for j := 0; j <= len(b); j++ {
		prev[j] = j
	}

	for i := 1; i <= len(a); i++ {
		curr[0] = i
		for j := 1; j <= len(b); j++ {
			cost := 1
			if a[i-1] == b[j-1] {
				cost = 0
			}
			curr[j] = minInt(
				prev[j]+1,      // deletion
				curr[j-1]+1,    // insertion
				prev[j-1]+cost, // substitution
			)
		}
		prev, curr = curr, prev
	}
	return prev[len(b)]
}

// FuzzyScore rates how closely pattern matches text, in [0, 1].
// It returns 1.0 on an exact match and 0 when the edit distance
// exceeds min(3, len(pattern)/2). Otherwise the score is
// 1 - distance/max(len(pattern), len(text)).
//
// The length-gap check short-circuits before the DP table is built, so
// scoring a short token against a long search-text blob is cheap. The
// function is intentionally asymmetric and not a metric.
func FuzzyScore(pattern, text string) float64 {
	pattern = strings.ToLower(pattern)
	text = strings.ToLower(text)
	if pattern == text {
		return 1.0
	}
	bound := maxFuzzyDistance(pattern)

	// The distance is at least the length difference; skip the DP
	// table when it already exceeds the bound.
	gap := len(text) - len(pattern)
	if gap < 0 {
		gap = -gap
	}
	if gap > bound {
		return 0
	}

	d := Distance(pattern, text)
	if d == 0 {
		return 1.0
	}
	if d > bound {
		return 0
	}

	longest := len(pattern)
	if len(text) > longest {
		longest = len(text)
	}
	return 1.0 - float64(d)/float64(longest)
}

func minInt(a, b, c int) int {
	m := a
	if b < m {
		m = b
	}
	if c < m {
		m = c
	}
	return m
}
