package http

import (
	"context"
	_ "embed"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/aretw0/tramway/internal/logging"
	"github.com/aretw0/tramway/internal/metrics"
	"github.com/aretw0/tramway/internal/runtime"
	"github.com/aretw0/tramway/pkg/domain"
	"github.com/aretw0/tramway/pkg/ports"
	"github.com/go-chi/chi/v5"
)

//go:embed openapi.yaml
var specYAML []byte

// Fleet defines the depot operations the API serves.
type Fleet interface {
	Create(id string) (*runtime.Tram, error)
	Get(id string) (*runtime.Tram, error)
	List() []string
	Retire(ctx context.Context, id string) error
}

// Server exposes the tram fleet over a JSON API.
type Server struct {
	fleet   Fleet
	journal ports.TransitionJournal
	metrics *metrics.Metrics
	logger  *slog.Logger
}

// Option configures the server.
type Option func(*Server)

// WithJournal enables the history endpoint.
func WithJournal(journal ports.TransitionJournal) Option {
	return func(s *Server) {
		s.journal = journal
	}
}

// WithMetrics mounts /metrics.
func WithMetrics(m *metrics.Metrics) Option {
	return func(s *Server) {
		s.metrics = m
	}
}

// WithLogger sets the request logger.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Server) {
		s.logger = logger
	}
}

// NewHandler creates the HTTP handler for the fleet.
func NewHandler(fleet Fleet, opts ...Option) http.Handler {
	s := &Server{
		fleet:  fleet,
		logger: logging.NewNop(),
	}
	for _, opt := range opts {
		opt(s)
	}

	r := chi.NewRouter()

	r.Get("/openapi.yaml", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/yaml")
		_, _ = w.Write(specYAML)
	})

	if s.metrics != nil {
		r.Handle("/metrics", s.metrics.Handler())
	}

	r.Route("/trams", func(r chi.Router) {
		r.Post("/", s.createTram)
		r.Get("/", s.listTrams)

		r.Route("/{tramID}", func(r chi.Router) {
			r.Get("/state", s.getState)
			r.Post("/transitions", s.applyTransition)
			r.Get("/history", s.getHistory)
			r.Delete("/", s.retireTram)
		})
	})

	return r
}

type createRequest struct {
	ID string `json:"id"`
}

type transitionRequest struct {
	Event   string         `json:"event"`
	Payload map[string]any `json:"payload"`
}

type errorResponse struct {
	Error string `json:"error"`
}

func (s *Server) createTram(w http.ResponseWriter, r *http.Request) {
	var body createRequest
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		s.writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	tram, err := s.fleet.Create(body.ID)
	if err != nil {
		if errors.Is(err, domain.ErrTramExists) {
			s.writeError(w, http.StatusConflict, err.Error())
			return
		}
		s.writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	s.logger.Info("tram created via API", "tram", tram.ID())
	s.writeJSON(w, http.StatusCreated, createRequest{ID: tram.ID()})
}

func (s *Server) listTrams(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, s.fleet.List())
}

func (s *Server) getState(w http.ResponseWriter, r *http.Request) {
	tram, ok := s.lookup(w, r)
	if !ok {
		return
	}

	snap, err := tram.State(r.Context())
	if err != nil {
		s.writeActorError(w, err)
		return
	}
	s.writeJSON(w, http.StatusOK, snap)
}

func (s *Server) applyTransition(w http.ResponseWriter, r *http.Request) {
	tram, ok := s.lookup(w, r)
	if !ok {
		return
	}

	var body transitionRequest
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		s.writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	event, err := domain.ParseEvent(body.Event)
	if err != nil {
		s.writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	snap, err := tram.Apply(r.Context(), event, body.Payload)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidTransition) {
			// The snapshot still describes the (unchanged) aggregate, so
			// callers can see which state refused the event.
			s.writeJSON(w, http.StatusConflict, struct {
				Error string `json:"error"`
				domain.Snapshot
			}{Error: err.Error(), Snapshot: snap})
			return
		}
		s.writeActorError(w, err)
		return
	}

	s.writeJSON(w, http.StatusOK, snap)
}

func (s *Server) getHistory(w http.ResponseWriter, r *http.Request) {
	tram, ok := s.lookup(w, r)
	if !ok {
		return
	}

	if s.journal == nil {
		s.writeJSON(w, http.StatusOK, []domain.TransitionRecord{})
		return
	}

	limit := 0
	if raw := r.URL.Query().Get("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 0 {
			s.writeError(w, http.StatusBadRequest, "limit must be a non-negative integer")
			return
		}
		limit = n
	}

	tail, err := s.journal.Tail(r.Context(), tram.ID(), limit)
	if err != nil {
		s.logger.Error("failed to read journal", "tram", tram.ID(), "err", err)
		s.writeError(w, http.StatusInternalServerError, "failed to read history")
		return
	}
	s.writeJSON(w, http.StatusOK, tail)
}

func (s *Server) retireTram(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "tramID")
	if err := s.fleet.Retire(r.Context(), id); err != nil {
		if errors.Is(err, domain.ErrTramNotFound) {
			s.writeError(w, http.StatusNotFound, err.Error())
			return
		}
		s.writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) lookup(w http.ResponseWriter, r *http.Request) (*runtime.Tram, bool) {
	id := chi.URLParam(r, "tramID")
	tram, err := s.fleet.Get(id)
	if err != nil {
		s.writeError(w, http.StatusNotFound, err.Error())
		return nil, false
	}
	return tram, true
}

func (s *Server) writeActorError(w http.ResponseWriter, err error) {
	if errors.Is(err, domain.ErrTramRetired) {
		s.writeError(w, http.StatusGone, err.Error())
		return
	}
	s.writeError(w, http.StatusInternalServerError, err.Error())
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.logger.Error("failed to encode response", "err", err)
	}
}

func (s *Server) writeError(w http.ResponseWriter, status int, msg string) {
	s.writeJSON(w, status, errorResponse{Error: msg})
}
