// Package observability provides Prometheus collectors for the toolkit.
package observability

import "github.com/prometheus/client_golang/prometheus"

// Metrics bundles the toolkit's Prometheus collectors.
type Metrics struct {
	// SimulationsTotal counts finished simulations by verdict
	// ("accepted", "rejected", "error").
	SimulationsTotal *prometheus.CounterVec

	// SimulationSteps observes state visits per simulation run.
	SimulationSteps prometheus.Histogram

	// CompositionsTotal counts combinator applications by operator
	// ("concat", "union", "closure").
	CompositionsTotal *prometheus.CounterVec
}

// New creates and registers the collectors on reg.
func New(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		SimulationsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "nfakit_simulations_total",
				Help: "Total number of finished simulations by verdict",
			},
			[]string{"verdict"},
		),
		SimulationSteps: prometheus.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "nfakit_simulation_steps",
				Help:    "State visits per simulation run",
				Buckets: prometheus.ExponentialBuckets(1, 4, 10),
			},
		),
		CompositionsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "nfakit_compositions_total",
				Help: "Total number of combinator applications by operator",
			},
			[]string{"op"},
		),
	}
	reg.MustRegister(m.SimulationsTotal, m.SimulationSteps, m.CompositionsTotal)
	return m
}
