// Package search implements the in-memory search engine: tokenisation,
// bounded Levenshtein fuzzy matching, synonym expansion, per-type
// indexing with relevance boosts, layered additive scoring, a bounded
// result cache with bulk eviction, and a debounce primitive for
// keystroke-driven queries.
//
// Indexes are immutable once built. Rebuild constructs a fresh index
// set and swaps it in atomically, so concurrent searches never observe
// a partially built index. The result cache is the only mutable shared
// structure on the read path and is mutex-guarded.
package search
