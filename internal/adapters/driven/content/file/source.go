// Package file provides a content source backed by a JSON corpus file,
// plus a watcher that triggers index rebuilds when the file changes.
package file

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/canon-labs/scriptura-cli/internal/core/domain"
	"github.com/canon-labs/scriptura-cli/internal/core/ports/driven"
	"github.com/canon-labs/scriptura-cli/internal/logger"
)

// Ensure Source implements the interface.
var _ driven.ContentSource = (*Source)(nil)

// corpusFile is the on-disk shape of a corpus. Every section is
// optional; absent sections yield empty record slices.
type corpusFile struct {
	Books      []domain.BookRecord     `json:"books"`
	Chapters   []domain.ChapterRecord  `json:"chapters"`
	Categories []domain.CategoryRecord `json:"categories"`
	Entities   []domain.EntityRecord   `json:"entities"`
}

// Source reads content records from a JSON corpus file. The file is
// re-read on every Snapshot call, so a rebuild always sees the current
// contents.
type Source struct {
	path string
}

// NewSource creates a source over the corpus file at path.
func NewSource(path string) *Source {
	return &Source{path: path}
}

// Path returns the corpus file path.
func (s *Source) Path() string {
	return s.path
}

// Snapshot reads and decodes the corpus file. An unreadable or
// unparsable file is an infrastructure error; missing record sections
// within a valid file are tolerated.
func (s *Source) Snapshot(_ context.Context) (*domain.Snapshot, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		return nil, fmt.Errorf("reading corpus %s: %w", s.path, err)
	}

	var corpus corpusFile
	if err := json.Unmarshal(data, &corpus); err != nil {
		return nil, fmt.Errorf("parsing corpus %s: %w", s.path, err)
	}

	logger.Debug("Corpus %s: %d books, %d chapters, %d categories, %d entities",
		s.path, len(corpus.Books), len(corpus.Chapters),
		len(corpus.Categories), len(corpus.Entities))

	return &domain.Snapshot{
		Books:      corpus.Books,
		Chapters:   corpus.Chapters,
		Categories: corpus.Categories,
		Entities:   corpus.Entities,
	}, nil
}
