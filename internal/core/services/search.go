package services

import (
	"context"
	"fmt"

	"github.com/canon-labs/scriptura-cli/internal/core/domain"
	"github.com/canon-labs/scriptura-cli/internal/core/ports/driven"
	"github.com/canon-labs/scriptura-cli/internal/core/ports/driving"
	"github.com/canon-labs/scriptura-cli/internal/logger"
	"github.com/canon-labs/scriptura-cli/internal/search"
)

// Ensure SearchService implements the interface.
var _ driving.SearchService = (*SearchService)(nil)

// SearchService resolves queries through the search engine and owns
// the rebuild pipeline from the content source.
type SearchService struct {
	source driven.ContentSource
	engine *search.Engine
}

// NewSearchService creates a search service over a content source and
// a configured engine.
func NewSearchService(source driven.ContentSource, engine *search.Engine) *SearchService {
	return &SearchService{
		source: source,
		engine: engine,
	}
}

// Search returns ranked results for a query.
func (s *SearchService) Search(
	_ context.Context, query string, opts domain.SearchOptions,
) ([]domain.ScoredResult, error) {
	if opts.Limit < 0 {
		return nil, fmt.Errorf("%w: negative limit %d", domain.ErrInvalidInput, opts.Limit)
	}

	logger.Section("Search Execution")
	logger.Debug("Query: %q, limit: %d", query, opts.Limit)

	if !s.engine.Indexed() {
		logger.Warn("Search before index build, returning no results")
	}

	results := s.engine.Search(query, opts.Limit)
	logger.Info("Results: %d", len(results))
	return results, nil
}

// Suggest returns an autocomplete-sized result set.
func (s *SearchService) Suggest(_ context.Context, query string) ([]domain.ScoredResult, error) {
	logger.Debug("Suggest: %q", query)
	return s.engine.Suggest(query), nil
}

// SuggestDebounced schedules a debounced suggest; only the most recent
// query within the settle window reaches the engine.
func (s *SearchService) SuggestDebounced(query string, cb func([]domain.ScoredResult)) {
	s.engine.ScheduleSuggest(query, cb)
}

// Rebuild reads a fresh snapshot from the content source, builds new
// indexes, and swaps them in atomically.
func (s *SearchService) Rebuild(ctx context.Context) error {
	if s.source == nil {
		return domain.ErrSourceUnavailable
	}

	logger.Section("Index Rebuild")

	snap, err := s.source.Snapshot(ctx)
	if err != nil {
		return fmt.Errorf("content snapshot: %w", err)
	}
	if snap.Empty() {
		logger.Warn("Content snapshot is empty")
	}

	s.engine.SetSnapshot(snap)

	stats := s.engine.Stats()
	for recordType, count := range stats.ItemCounts {
		logger.Debug("Indexed %d %s items", count, recordType)
	}
	return nil
}

// Stats reports index and cache statistics.
func (s *SearchService) Stats(_ context.Context) (domain.IndexStats, error) {
	stats := s.engine.Stats()
	if !stats.Indexed {
		return stats, domain.ErrNotIndexed
	}
	return stats, nil
}
