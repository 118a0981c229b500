package driven

import (
	"context"

	"github.com/canon-labs/scriptura-cli/internal/core/domain"
)

// ContentSource produces the raw content records the engine indexes.
// The engine does not know how records are retrieved or stored; a
// source may read a JSON corpus, a SQLite database, or an in-memory
// fixture. Missing record sections are tolerated and yield empty
// slices, not errors.
type ContentSource interface {
	// Snapshot returns the source's current complete record set.
	Snapshot(ctx context.Context) (*domain.Snapshot, error)
}
