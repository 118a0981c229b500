package driving

import (
	"context"

	"github.com/canon-labs/scriptura-cli/internal/core/domain"
)

// SearchService resolves free-text queries against the indexed corpus.
type SearchService interface {
	// Search returns ranked results for a query. Empty or blank
	// queries return an empty slice, not an error.
	Search(ctx context.Context, query string, opts domain.SearchOptions) ([]domain.ScoredResult, error)

	// Suggest returns a small autocomplete-sized result set.
	Suggest(ctx context.Context, query string) ([]domain.ScoredResult, error)

	// SuggestDebounced coalesces rapid successive calls: only the most
	// recent query within the debounce window reaches the engine, and
	// cb fires at most once per settled window. Superseded requests
	// are discarded silently.
	SuggestDebounced(query string, cb func([]domain.ScoredResult))

	// Rebuild re-reads the content source and atomically swaps in a
	// freshly built index set.
	Rebuild(ctx context.Context) error

	// Stats reports index and cache statistics.
	Stats(ctx context.Context) (domain.IndexStats, error)
}
