package search

import (
	"sync"
	"time"

	"github.com/canon-labs/scriptura-cli/internal/core/domain"
)

// Debouncer coalesces rapid successive query requests into a single
// delayed invocation. At most one timer is pending at a time: each
// Schedule call cancels any not-yet-fired invocation and arms a new
// one. Superseded requests are discarded silently; their callbacks
// never fire, even if cancellation races the timer. Safe for
// concurrent use.
type Debouncer struct {
	run func(query string) []domain.ScoredResult

	mu    sync.Mutex
	timer *time.Timer
	gen   uint64
}

// NewDebouncer creates a debouncer that resolves queries with run,
// typically the engine's autocomplete entry point.
func NewDebouncer(run func(query string) []domain.ScoredResult) *Debouncer {
	return &Debouncer{run: run}
}

// Schedule arms an invocation of the query after delay, cancelling any
// previously scheduled one. When the delay settles, cb receives the
// results of the most recent query. A non-positive delay still goes
// through the timer so cancellation semantics hold.
func (d *Debouncer) Schedule(query string, cb func([]domain.ScoredResult), delay time.Duration) {
	if delay < 0 {
		delay = 0
	}

	d.mu.Lock()
	defer d.mu.Unlock()

	if d.timer != nil {
		d.timer.Stop()
	}
	d.gen++
	gen := d.gen

	d.timer = time.AfterFunc(delay, func() {
		// The generation check makes cancellation race-free: a timer
		// that fires after being superseded sees a newer generation
		// and returns without invoking the callback.
		d.mu.Lock()
		if gen != d.gen {
			d.mu.Unlock()
			return
		}
		d.timer = nil
		d.mu.Unlock()

		cb(d.run(query))
	})
}

// Cancel discards any pending invocation.
func (d *Debouncer) Cancel() {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
	d.gen++
}
