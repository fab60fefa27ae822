package depot

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"sync"

	"github.com/aretw0/tramway/internal/logging"
	"github.com/aretw0/tramway/internal/metrics"
	"github.com/aretw0/tramway/internal/runtime"
	"github.com/aretw0/tramway/pkg/domain"
	"github.com/aretw0/tramway/pkg/ports"
)

// Depot manages a fleet of named trams. Each tram is an independent actor;
// the depot only guards the name->tram map, never the aggregates themselves.
type Depot struct {
	mu    sync.RWMutex
	trams map[string]*runtime.Tram

	logger  *slog.Logger
	journal ports.TransitionJournal
	metrics *metrics.Metrics
}

// Option configures the Depot.
type Option func(*Depot)

// WithLogger sets the logger handed to every created tram.
func WithLogger(logger *slog.Logger) Option {
	return func(d *Depot) {
		d.logger = logger
	}
}

// WithJournal records every tram's transitions; the trail is cleared when
// the tram is retired.
func WithJournal(journal ports.TransitionJournal) Option {
	return func(d *Depot) {
		d.journal = journal
	}
}

// WithMetrics publishes per-tram metrics; series are dropped on retire.
func WithMetrics(m *metrics.Metrics) Option {
	return func(d *Depot) {
		d.metrics = m
	}
}

// New creates an empty depot.
func New(opts ...Option) *Depot {
	d := &Depot{
		trams:  make(map[string]*runtime.Tram),
		logger: logging.NewNop(),
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Create registers a new tram under the given ID, starting at idle with
// zero passengers.
func (d *Depot) Create(id string) (*runtime.Tram, error) {
	if id == "" {
		return nil, fmt.Errorf("tram id is required")
	}

	d.mu.Lock()
	defer d.mu.Unlock()

	if _, exists := d.trams[id]; exists {
		return nil, fmt.Errorf("%w: %q", domain.ErrTramExists, id)
	}

	opts := []runtime.Option{runtime.WithLogger(d.logger)}
	if d.journal != nil {
		opts = append(opts, runtime.WithJournal(d.journal))
	}
	if d.metrics != nil {
		opts = append(opts, runtime.WithMetrics(d.metrics))
	}

	tram := runtime.New(id, opts...)
	d.trams[id] = tram
	d.logger.Info("tram created", "tram", id)
	return tram, nil
}

// Get returns the tram registered under the ID.
func (d *Depot) Get(id string) (*runtime.Tram, error) {
	d.mu.RLock()
	defer d.mu.RUnlock()

	tram, ok := d.trams[id]
	if !ok {
		return nil, fmt.Errorf("%w: %q", domain.ErrTramNotFound, id)
	}
	return tram, nil
}

// List returns the registered IDs, sorted.
func (d *Depot) List() []string {
	d.mu.RLock()
	defer d.mu.RUnlock()

	ids := make([]string, 0, len(d.trams))
	for id := range d.trams {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// Retire stops the tram's actor and removes it from the fleet, dropping its
// journal trail and metric series.
func (d *Depot) Retire(ctx context.Context, id string) error {
	d.mu.Lock()
	tram, ok := d.trams[id]
	if ok {
		delete(d.trams, id)
	}
	d.mu.Unlock()

	if !ok {
		return fmt.Errorf("%w: %q", domain.ErrTramNotFound, id)
	}

	tram.Stop()
	if d.metrics != nil {
		d.metrics.Forget(id)
	}
	if d.journal != nil {
		if err := d.journal.Clear(ctx, id); err != nil {
			d.logger.Warn("failed to clear journal for retired tram", "tram", id, "err", err)
		}
	}

	d.logger.Info("tram retired", "tram", id)
	return nil
}

// Close retires every tram. Used on shutdown.
func (d *Depot) Close(ctx context.Context) {
	for _, id := range d.List() {
		_ = d.Retire(ctx, id)
	}
}
