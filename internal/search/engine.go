package search

import (
	"sort"
	"sync"

	"github.com/canon-labs/scriptura-cli/internal/core/domain"
)

// Engine orchestrates a query end to end: normalise, tokenise, score
// every item across every index, multiply by the item boost, sort,
// and truncate. Results are memoised in the cache.
//
// Search is read-only against the indexes and safe to call
// concurrently. Rebuild constructs a fresh index set and swaps it in
// atomically; in-flight searches finish against the old set.
type Engine struct {
	cfg      Config
	tok      *Tokenizer
	scorer   *Scorer
	indexer  *Indexer
	cache    *Cache
	debounce *Debouncer

	mu      sync.RWMutex
	indexes []*Index
	indexed bool
}

// NewEngine creates an engine with the given configuration. The engine
// serves empty results until SetSnapshot builds its first index set.
func NewEngine(cfg Config) *Engine {
	cfg = cfg.withDefaults()
	e := &Engine{
		cfg:     cfg,
		tok:     NewTokenizer(cfg.StopWords...),
		scorer:  NewScorer(cfg.Weights, NewSynonymTable(cfg.Synonyms)),
		indexer: NewIndexer(cfg.Boosts),
		cache:   NewCache(cfg.CacheCapacity),
	}
	e.debounce = NewDebouncer(e.Suggest)
	return e
}

// SetSnapshot builds indexes from a snapshot and swaps them in,
// purging the result cache. A nil or empty snapshot yields empty
// indexes; it is not an error.
func (e *Engine) SetSnapshot(snap *domain.Snapshot) {
	indexes := e.indexer.BuildAll(snap)

	e.mu.Lock()
	e.indexes = indexes
	e.indexed = true
	e.mu.Unlock()

	e.cache.Purge()
}

// Search returns up to limit ranked results for a query. A limit <= 0
// means the configured default. Searching before the first snapshot,
// or with a query that normalises to empty, returns an empty slice.
func (e *Engine) Search(query string, limit int) []domain.ScoredResult {
	if limit <= 0 {
		limit = e.cfg.MaxResults
	}

	normalized := NormalizeQuery(query)
	if normalized == "" {
		return []domain.ScoredResult{}
	}

	e.mu.RLock()
	indexes := e.indexes
	indexed := e.indexed
	e.mu.RUnlock()

	if !indexed {
		return []domain.ScoredResult{}
	}

	key := cacheKey{query: normalized, limit: limit}
	if cached, ok := e.cache.Get(key); ok {
		return cached
	}

	tokens := e.tok.Tokenize(normalized)

	var results []domain.ScoredResult
	for _, idx := range indexes {
		for i := range idx.Items {
			item := &idx.Items[i]
			raw := e.scorer.Score(item, tokens, normalized)
			if raw > 0 {
				results = append(results, domain.ScoredResult{
					Item:  item,
					Score: raw * item.Boost,
				})
			}
		}
	}

	// Stable sort keeps corpus iteration order for tied scores.
	sort.SliceStable(results, func(i, j int) bool {
		return results[i].Score > results[j].Score
	})

	if len(results) > limit {
		results = results[:limit]
	}
	if results == nil {
		results = []domain.ScoredResult{}
	}

	e.cache.Put(key, results)
	return results
}

// Suggest is the autocomplete entry point: Search limited to the
// configured suggest count.
func (e *Engine) Suggest(query string) []domain.ScoredResult {
	return e.Search(query, e.cfg.SuggestLimit)
}

// ScheduleSuggest runs Suggest for the query after the configured
// debounce delay, discarding any previously scheduled, not-yet-fired
// request.
func (e *Engine) ScheduleSuggest(query string, cb func([]domain.ScoredResult)) {
	e.debounce.Schedule(query, cb, e.cfg.DebounceDelay)
}

// Stats reports per-type item counts and cache counters.
func (e *Engine) Stats() domain.IndexStats {
	e.mu.RLock()
	indexes := e.indexes
	indexed := e.indexed
	e.mu.RUnlock()

	counts := make(map[domain.RecordType]int, len(indexes))
	for _, idx := range indexes {
		counts[idx.Type] = len(idx.Items)
	}

	return domain.IndexStats{
		Indexed:     indexed,
		ItemCounts:  counts,
		CacheHits:   e.cache.Hits(),
		CacheMisses: e.cache.Misses(),
	}
}

// Indexed reports whether the first snapshot has been applied.
func (e *Engine) Indexed() bool {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.indexed
}
