package runtime

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/aretw0/tramway/internal/fsm"
	"github.com/aretw0/tramway/internal/logging"
	"github.com/aretw0/tramway/internal/metrics"
	"github.com/aretw0/tramway/pkg/domain"
	"github.com/aretw0/tramway/pkg/ports"
)

type request struct {
	ctx      context.Context
	event    domain.Event
	payload  map[string]any
	snapshot bool
	reply    chan response
}

type response struct {
	snap domain.Snapshot
	err  error
}

// Tram is a single tram aggregate owned by its own goroutine. Requests are
// handed over an unbuffered channel and answered one at a time, so callers
// observe strict request order and never a half-applied transition.
type Tram struct {
	id string

	requests chan request
	quit     chan struct{}
	stopOnce sync.Once

	// Owned by the loop goroutine; never touched elsewhere.
	state domain.State
	data  domain.Data

	logger  *slog.Logger
	journal ports.TransitionJournal
	metrics *metrics.Metrics
}

// Option configures a Tram.
type Option func(*Tram)

// WithLogger sets a structured logger for the actor.
func WithLogger(logger *slog.Logger) Option {
	return func(t *Tram) {
		t.logger = logger
	}
}

// WithJournal records every apply attempt in the given journal.
func WithJournal(journal ports.TransitionJournal) Option {
	return func(t *Tram) {
		t.journal = journal
	}
}

// WithMetrics publishes transition counters and the passenger gauge.
func WithMetrics(m *metrics.Metrics) Option {
	return func(t *Tram) {
		t.metrics = m
	}
}

// New creates a tram in the idle state with zero passengers and starts its
// actor loop.
func New(id string, opts ...Option) *Tram {
	t := &Tram{
		id:       id,
		requests: make(chan request),
		quit:     make(chan struct{}),
		state:    domain.StateIdle,
		data:     domain.NewData(),
		logger:   logging.NewNop(),
	}
	for _, opt := range opts {
		opt(t)
	}
	t.logger = t.logger.With("tram", id)

	go t.loop()
	return t
}

// ID returns the tram's identity.
func (t *Tram) ID() string {
	return t.id
}

// State returns a read-only snapshot. It always succeeds while the actor is
// running.
func (t *Tram) State(ctx context.Context) (domain.Snapshot, error) {
	return t.send(request{ctx: ctx, snapshot: true})
}

// Apply attempts the named transition. On success the returned snapshot
// reflects the new state; on rejection it reflects the unchanged aggregate
// and err is domain.ErrInvalidTransition.
func (t *Tram) Apply(ctx context.Context, event domain.Event, payload map[string]any) (domain.Snapshot, error) {
	return t.send(request{ctx: ctx, event: event, payload: payload})
}

// Stop shuts the actor down. In-flight requests complete; later ones fail
// with domain.ErrTramRetired. Idempotent.
func (t *Tram) Stop() {
	t.stopOnce.Do(func() {
		close(t.quit)
	})
}

func (t *Tram) send(req request) (domain.Snapshot, error) {
	req.reply = make(chan response, 1)

	select {
	case t.requests <- req:
	case <-t.quit:
		return domain.Snapshot{}, domain.ErrTramRetired
	case <-req.ctx.Done():
		return domain.Snapshot{}, req.ctx.Err()
	}

	// The requests channel is unbuffered, so a completed send means the
	// loop holds the request and will reply exactly once.
	resp := <-req.reply
	return resp.snap, resp.err
}

func (t *Tram) loop() {
	for {
		select {
		case <-t.quit:
			return
		case req := <-t.requests:
			req.reply <- t.handle(req)
		}
	}
}

func (t *Tram) handle(req request) response {
	if req.snapshot {
		return response{snap: t.snapshot()}
	}

	from := t.state
	next, nextData, err := fsm.Apply(t.state, t.data, req.event, req.payload)
	accepted := err == nil
	if accepted {
		t.state, t.data = next, nextData
	}

	if accepted {
		t.logger.Debug("transition applied",
			"event", req.event, "from", from, "to", t.state, "passengers", t.data.Passengers)
	} else {
		t.logger.Debug("transition rejected", "event", req.event, "state", t.state)
	}

	if t.metrics != nil {
		t.metrics.ObserveTransition(t.id, req.event, accepted)
		if accepted {
			t.metrics.SetPassengers(t.id, t.data.Passengers)
		}
	}

	if t.journal != nil {
		rec := domain.TransitionRecord{
			TramID:     t.id,
			Event:      req.event,
			From:       from,
			To:         t.state,
			Accepted:   accepted,
			Passengers: t.data.Passengers,
			At:         time.Now().UTC(),
		}
		// Best effort: a journaling hiccup must not fail the transition.
		if jerr := t.journal.Append(req.ctx, rec); jerr != nil {
			t.logger.Warn("failed to journal transition", "event", req.event, "err", jerr)
		}
	}

	return response{snap: t.snapshot(), err: err}
}

func (t *Tram) snapshot() domain.Snapshot {
	return domain.Snapshot{
		State:      t.state,
		Passengers: t.data.Passengers,
	}
}
