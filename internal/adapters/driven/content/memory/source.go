// Package memory provides an in-memory content source, used for tests
// and demos.
package memory

import (
	"context"

	"github.com/canon-labs/scriptura-cli/internal/core/domain"
	"github.com/canon-labs/scriptura-cli/internal/core/ports/driven"
)

// Ensure Source implements the interface.
var _ driven.ContentSource = (*Source)(nil)

// Source serves a fixed snapshot from memory.
type Source struct {
	snapshot *domain.Snapshot
}

// NewSource creates a source over the given snapshot. A nil snapshot
// behaves like an empty one.
func NewSource(snapshot *domain.Snapshot) *Source {
	if snapshot == nil {
		snapshot = &domain.Snapshot{}
	}
	return &Source{snapshot: snapshot}
}

// Snapshot returns the fixed record set.
func (s *Source) Snapshot(_ context.Context) (*domain.Snapshot, error) {
	return s.snapshot, nil
}
