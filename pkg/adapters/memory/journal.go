package memory

import (
	"context"
	"sync"

	"github.com/aretw0/tramway/pkg/domain"
)

// DefaultCap bounds how many records are kept per tram before the oldest
// are discarded.
const DefaultCap = 512

// Journal implements ports.TransitionJournal in memory.
// Safe for concurrent use.
type Journal struct {
	mu    sync.RWMutex
	cap   int
	tails map[string][]domain.TransitionRecord
}

// Option configures the journal.
type Option func(*Journal)

// WithCap overrides the per-tram record cap. Zero or negative means
// unbounded.
func WithCap(n int) Option {
	return func(j *Journal) {
		j.cap = n
	}
}

// NewJournal creates an empty in-memory journal.
func NewJournal(opts ...Option) *Journal {
	j := &Journal{
		cap:   DefaultCap,
		tails: make(map[string][]domain.TransitionRecord),
	}
	for _, opt := range opts {
		opt(j)
	}
	return j
}

// Append stores the record at the end of the tram's trail.
func (j *Journal) Append(ctx context.Context, rec domain.TransitionRecord) error {
	j.mu.Lock()
	defer j.mu.Unlock()

	tail := append(j.tails[rec.TramID], rec)
	if j.cap > 0 && len(tail) > j.cap {
		tail = tail[len(tail)-j.cap:]
	}
	j.tails[rec.TramID] = tail
	return nil
}

// Tail returns up to limit of the most recent records, oldest first.
func (j *Journal) Tail(ctx context.Context, tramID string, limit int) ([]domain.TransitionRecord, error) {
	j.mu.RLock()
	defer j.mu.RUnlock()

	tail := j.tails[tramID]
	if limit > 0 && len(tail) > limit {
		tail = tail[len(tail)-limit:]
	}

	// Copy so callers can't mutate the stored trail.
	out := make([]domain.TransitionRecord, len(tail))
	copy(out, tail)
	return out, nil
}

// Clear drops the trail for the tram.
func (j *Journal) Clear(ctx context.Context, tramID string) error {
	j.mu.Lock()
	defer j.mu.Unlock()
	delete(j.tails, tramID)
	return nil
}
