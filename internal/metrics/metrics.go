package metrics

import (
	"net/http"

	"github.com/aretw0/tramway/pkg/domain"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics holds the Prometheus collectors for a tram fleet.
// It carries its own registry so two fleets in one process don't collide.
type Metrics struct {
	registry    *prometheus.Registry
	transitions *prometheus.CounterVec
	passengers  *prometheus.GaugeVec
}

// New creates and registers the fleet collectors.
func New() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		transitions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "tramway",
			Name:      "transitions_total",
			Help:      "Transition requests by tram, event and outcome.",
		}, []string{"tram", "event", "result"}),
		passengers: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: "tramway",
			Name:      "passengers",
			Help:      "Passengers currently aboard, as counted at door closure.",
		}, []string{"tram"}),
	}

	m.registry.MustRegister(m.transitions, m.passengers)
	return m
}

// ObserveTransition counts one apply attempt.
func (m *Metrics) ObserveTransition(tramID string, event domain.Event, accepted bool) {
	result := "accepted"
	if !accepted {
		result = "rejected"
	}
	m.transitions.WithLabelValues(tramID, string(event), result).Inc()
}

// SetPassengers records the current count for the tram.
func (m *Metrics) SetPassengers(tramID string, n int) {
	m.passengers.WithLabelValues(tramID).Set(float64(n))
}

// Forget drops all series for a retired tram.
func (m *Metrics) Forget(tramID string) {
	m.transitions.DeletePartialMatch(prometheus.Labels{"tram": tramID})
	m.passengers.DeleteLabelValues(tramID)
}

// Handler exposes the registry in Prometheus text format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

// Registry exposes the underlying registry, mainly for tests.
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}
