package tramway

import (
	"context"
	"log/slog"

	"github.com/aretw0/tramway/internal/metrics"
	"github.com/aretw0/tramway/internal/runtime"
	"github.com/aretw0/tramway/pkg/domain"
	"github.com/aretw0/tramway/pkg/ports"
)

// Version is the current release, overridable at build time via -ldflags.
var Version = "0.1.0"

// Metrics aggregates the Prometheus collectors for one fleet.
type Metrics = metrics.Metrics

// NewMetrics creates a collector set with its own registry.
func NewMetrics() *Metrics {
	return metrics.New()
}

// Tram is the high-level handle for a single tram. It wraps the internal
// actor and provides a simplified API for consumers; fleets of trams are
// managed by pkg/depot.
type Tram struct {
	rt *runtime.Tram
}

// Option defines a functional option for configuring a Tram.
type Option func(*settings)

type settings struct {
	logger  *slog.Logger
	journal ports.TransitionJournal
	metrics *Metrics
}

// WithLogger sets a structured logger for the tram's actor.
func WithLogger(logger *slog.Logger) Option {
	return func(s *settings) {
		s.logger = logger
	}
}

// WithJournal records every transition attempt in the given journal.
func WithJournal(journal ports.TransitionJournal) Option {
	return func(s *settings) {
		s.journal = journal
	}
}

// WithMetrics publishes transition counters and the passenger gauge.
func WithMetrics(m *Metrics) Option {
	return func(s *settings) {
		s.metrics = m
	}
}

// New creates a tram in the idle state with zero passengers and starts its
// actor. Stop must be called to release the actor goroutine.
func New(id string, opts ...Option) *Tram {
	var s settings
	for _, opt := range opts {
		opt(&s)
	}

	var rtOpts []runtime.Option
	if s.logger != nil {
		rtOpts = append(rtOpts, runtime.WithLogger(s.logger))
	}
	if s.journal != nil {
		rtOpts = append(rtOpts, runtime.WithJournal(s.journal))
	}
	if s.metrics != nil {
		rtOpts = append(rtOpts, runtime.WithMetrics(s.metrics))
	}

	return &Tram{rt: runtime.New(id, rtOpts...)}
}

// ID returns the tram's identity.
func (t *Tram) ID() string {
	return t.rt.ID()
}

// State returns a read-only snapshot of the tram.
func (t *Tram) State(ctx context.Context) (domain.Snapshot, error) {
	return t.rt.State(ctx)
}

// Apply attempts the named transition from the current state. On rejection
// the aggregate is untouched and the error is domain.ErrInvalidTransition.
func (t *Tram) Apply(ctx context.Context, event domain.Event, payload map[string]any) (domain.Snapshot, error) {
	return t.rt.Apply(ctx, event, payload)
}

// Stop shuts the actor down; later requests fail with domain.ErrTramRetired.
func (t *Tram) Stop() {
	t.rt.Stop()
}
