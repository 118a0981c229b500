package domain

// IndexedItem is one searchable unit, built from a content record
// during indexing and immutable afterwards.
//
// SearchText is the lowercase, whitespace-normalised concatenation of
// every semantically relevant field of the source record; it is the
// substrate for token, substring, and fuzzy matching. Boost is a
// positive multiplier applied to the raw relevance score and encodes
// the type's baseline importance.
type IndexedItem struct {
	ID          string     `json:"id"`
	Type        RecordType `json:"type"`
	Title       string     `json:"title"`
	Subtitle    string     `json:"subtitle"`
	Description string     `json:"description,omitempty"`
	URL         string     `json:"url"`
	SearchText  string     `json:"-"`
	Boost       float64    `json:"-"`

	// Entity-only metadata, consulted for contextual scoring bonuses.
	// Zero values for other record types.
	Testament      string   `json:"-"`
	Kind           string   `json:"-"`
	Role           string   `json:"-"`
	Location       string   `json:"-"`
	ReferenceCount int      `json:"-"`
	Categories     []string `json:"-"`
}

// ScoredResult pairs an indexed item with its final relevance score.
// Results are created fresh per query and never mutated.
type ScoredResult struct {
	Item  *IndexedItem `json:"item"`
	Score float64      `json:"score"`
}

// SearchOptions configures a search query.
type SearchOptions struct {
	// Limit is the maximum number of results. Zero means the engine
	// default; negative values are rejected as invalid input.
	Limit int
}

// IndexStats describes the current state of the search indexes.
type IndexStats struct {
	// Indexed reports whether an index build has completed.
	Indexed bool

	// ItemCounts holds the number of indexed items per record type.
	ItemCounts map[RecordType]int

	// CacheHits and CacheMisses count result-cache lookups.
	CacheHits   uint64
	CacheMisses uint64
}
