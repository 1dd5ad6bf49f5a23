// Package metrics holds the Prometheus counters of the session core.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

const namespace = "gophauth"

// Outcome labels.
const (
	OutcomeOK                 = "ok"
	OutcomeDuplicate          = "duplicate"
	OutcomeInvalidInput       = "invalid_input"
	OutcomeInvalidCredentials = "invalid_credentials"
	OutcomeInvalidToken       = "invalid_token"
	OutcomeSessionExpired     = "session_expired"
	OutcomeError              = "error"
)

// Metrics owns a private registry so tests and multiple servers in one
// process do not collide on the default one. A nil *Metrics records nothing.
type Metrics struct {
	registry *prometheus.Registry

	registrations   *prometheus.CounterVec
	authentications *prometheus.CounterVec
	rotations       *prometheus.CounterVec
	logouts         prometheus.Counter
	swept           prometheus.Counter
}

func New() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		registrations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "registrations_total",
			Help:      "Register calls by outcome.",
		}, []string{"outcome"}),
		authentications: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "authentications_total",
			Help:      "Authenticate calls by outcome.",
		}, []string{"outcome"}),
		rotations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "rotations_total",
			Help:      "Refresh token rotations by outcome.",
		}, []string{"outcome"}),
		logouts: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "logouts_total",
			Help:      "Logout calls.",
		}),
		swept: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "refresh_tokens_swept_total",
			Help:      "Expired refresh token records removed by the sweeper.",
		}),
	}

	m.registry.MustRegister(
		m.registrations,
		m.authentications,
		m.rotations,
		m.logouts,
		m.swept,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	return m
}

// Registry is what the /metrics handler gathers from.
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

func (m *Metrics) Registration(outcome string) {
	if m != nil {
		m.registrations.WithLabelValues(outcome).Inc()
	}
}

func (m *Metrics) Authentication(outcome string) {
	if m != nil {
		m.authentications.WithLabelValues(outcome).Inc()
	}
}

func (m *Metrics) Rotation(outcome string) {
	if m != nil {
		m.rotations.WithLabelValues(outcome).Inc()
	}
}

func (m *Metrics) Logout() {
	if m != nil {
		m.logouts.Inc()
	}
}

func (m *Metrics) Swept(n int64) {
	if m != nil && n > 0 {
		m.swept.Add(float64(n))
	}
}
