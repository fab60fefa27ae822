package ports

import (
	"context"

	"github.com/aretw0/tramway/pkg/domain"
)

// TransitionJournal records every transition attempt for later inspection.
// It is an observability trail, not persistence: tram state is never
// restored from it, and a restarted process starts every tram at idle.
//
// Implementations must be safe for concurrent use; each tram actor appends
// from its own goroutine.
type TransitionJournal interface {
	// Append stores one record at the end of the tram's trail.
	Append(ctx context.Context, rec domain.TransitionRecord) error

	// Tail returns up to limit of the most recent records for the tram,
	// oldest first. An unknown tram yields an empty slice, not an error.
	// limit <= 0 means no limit.
	Tail(ctx context.Context, tramID string, limit int) ([]domain.TransitionRecord, error)

	// Clear drops the trail for the tram.
	Clear(ctx context.Context, tramID string) error
}
