package nfakit

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/nfakit/nfakit/internal/presentation/graph"
	"github.com/nfakit/nfakit/internal/runtime"
	"github.com/nfakit/nfakit/pkg/automaton"
	"github.com/nfakit/nfakit/pkg/observability"
	"github.com/nfakit/nfakit/pkg/ports"
)

// Engine is the high-level entry point for the toolkit. It wraps the
// simulation engine and, when configured, a store and metrics, behind one
// simplified API for consumers.
type Engine struct {
	sim     *runtime.Simulator
	store   ports.Store
	metrics *observability.Metrics
	logger  *slog.Logger

	maxSteps int
}

// Option defines a functional option for configuring the Engine.
type Option func(*Engine)

// WithLogger sets a custom structured logger for the engine.
func WithLogger(logger *slog.Logger) Option {
	return func(e *Engine) {
		if logger != nil {
			e.logger = logger
		}
	}
}

// WithStore attaches a persistence backend for named automata.
func WithStore(store ports.Store) Option {
	return func(e *Engine) {
		e.store = store
	}
}

// WithMetrics attaches Prometheus collectors.
func WithMetrics(m *observability.Metrics) Option {
	return func(e *Engine) {
		e.metrics = m
	}
}

// WithMaxSteps bounds the work of a single simulation run. Zero (the
// default) means unbounded.
func WithMaxSteps(n int) Option {
	return func(e *Engine) {
		e.maxSteps = n
	}
}

// New initializes an Engine. Without options it simulates with no step bound,
// logs nowhere, and has no store attached.
func New(opts ...Option) *Engine {
	e := &Engine{
		logger: slog.New(slog.NewJSONHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(e)
	}
	e.sim = runtime.NewSimulator(
		runtime.WithLogger(e.logger),
		runtime.WithMaxSteps(e.maxSteps),
	)
	return e
}

// Accepts reports whether the automaton accepts the input string. For valid
// automata it fails only on context cancellation or when the configured step
// bound is exceeded.
func (e *Engine) Accepts(ctx context.Context, n *automaton.NFA, input string) (bool, error) {
	res, err := e.sim.Run(ctx, n, input)
	if e.metrics != nil {
		verdict := "rejected"
		switch {
		case err != nil:
			verdict = "error"
		case res.Accepted:
			verdict = "accepted"
		}
		e.metrics.SimulationsTotal.WithLabelValues(verdict).Inc()
		e.metrics.SimulationSteps.Observe(float64(res.Steps))
	}
	if err != nil {
		return false, err
	}
	return res.Accepted, nil
}

// Concatenate composes two automata sequentially.
func (e *Engine) Concatenate(a, b *automaton.NFA) *automaton.NFA {
	e.countComposition("concat")
	return automaton.Concatenate(a, b)
}

// Union composes two automata as alternatives.
func (e *Engine) Union(a, b *automaton.NFA) *automaton.NFA {
	e.countComposition("union")
	return automaton.Union(a, b)
}

// Closure applies the Kleene star to an automaton.
func (e *Engine) Closure(a *automaton.NFA) *automaton.NFA {
	e.countComposition("closure")
	return automaton.Closure(a)
}

func (e *Engine) countComposition(op string) {
	if e.metrics != nil {
		e.metrics.CompositionsTotal.WithLabelValues(op).Inc()
	}
	e.logger.Debug("composition", "op", op)
}

// Validate audits the automaton's invariants.
func (e *Engine) Validate(n *automaton.NFA) error {
	return n.Validate()
}

// Prune removes states unreachable from the start state and returns them.
func (e *Engine) Prune(n *automaton.NFA) []automaton.State {
	removed := n.Prune()
	if len(removed) > 0 {
		e.logger.Debug("pruned unreachable states", "count", len(removed))
	}
	return removed
}

// RenderDOT produces a Graphviz rendering of the automaton.
func (e *Engine) RenderDOT(n *automaton.NFA) string {
	return graph.GenerateDOT(n)
}

// RenderMermaid produces a Mermaid rendering of the automaton.
func (e *Engine) RenderMermaid(n *automaton.NFA) string {
	return graph.GenerateMermaid(n)
}

// Save persists an automaton under name via the configured store.
func (e *Engine) Save(ctx context.Context, name string, n *automaton.NFA) error {
	if e.store == nil {
		return fmt.Errorf("no store configured")
	}
	return e.store.Save(ctx, name, n)
}

// Load retrieves a named automaton from the configured store.
func (e *Engine) Load(ctx context.Context, name string) (*automaton.NFA, error) {
	if e.store == nil {
		return nil, fmt.Errorf("no store configured")
	}
	return e.store.Load(ctx, name)
}

// Delete removes a named automaton from the configured store.
func (e *Engine) Delete(ctx context.Context, name string) error {
	if e.store == nil {
		return fmt.Errorf("no store configured")
	}
	return e.store.Delete(ctx, name)
}

// List returns the names held by the configured store.
func (e *Engine) List(ctx context.Context) ([]string, error) {
	if e.store == nil {
		return nil, fmt.Errorf("no store configured")
	}
	return e.store.List(ctx)
}
