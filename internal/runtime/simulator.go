package runtime

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/nfakit/nfakit/pkg/automaton"
)

// ErrStepLimit is returned when a simulation exceeds the configured step
// bound before consuming the whole input.
var ErrStepLimit = errors.New("simulation step limit exceeded")

// Simulator decides acceptance of input strings. It is stateless across runs
// and safe for concurrent use on independent automata.
type Simulator struct {
	logger   *slog.Logger
	maxSteps int
}

// Option configures a Simulator.
type Option func(*Simulator)

// WithLogger sets a structured logger for per-run debug output.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Simulator) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// WithMaxSteps bounds the number of state visits per run. Zero means
// unbounded; the frontier algorithm terminates on every input regardless, so
// the bound exists to cap work on adversarial automata.
func WithMaxSteps(n int) Option {
	return func(s *Simulator) {
		s.maxSteps = n
	}
}

// NewSimulator creates a Simulator. By default it logs nowhere and runs
// unbounded.
func NewSimulator(opts ...Option) *Simulator {
	s := &Simulator{
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Result carries the verdict of one simulation run.
type Result struct {
	Accepted bool
	// Steps counts state visits across closure and advance phases. It feeds
	// the step-bound check and the observability histogram.
	Steps int
}

// Run decides whether n accepts input. For a well-formed automaton it never
// fails on its own: errors arise only from context cancellation or the
// configured step bound. Input symbols absent from the alphabet simply empty
// the frontier, rejecting the string.
func (s *Simulator) Run(ctx context.Context, n *automaton.NFA, input string) (Result, error) {
	res := Result{}

	frontier := map[automaton.State]struct{}{n.Start(): {}}
	if err := s.closure(n, frontier, &res); err != nil {
		return res, err
	}

	for _, r := range input {
		if err := ctx.Err(); err != nil {
			return res, fmt.Errorf("simulation interrupted: %w", err)
		}

		next := make(map[automaton.State]struct{})
		for state := range frontier {
			res.Steps++
			for _, t := range n.Targets(state, automaton.Symbol(r)) {
				next[t] = struct{}{}
			}
		}
		if s.maxSteps > 0 && res.Steps > s.maxSteps {
			return res, ErrStepLimit
		}
		if err := s.closure(n, next, &res); err != nil {
			return res, err
		}

		frontier = next
		if len(frontier) == 0 {
			// No live branch can consume the rest of the input.
			s.logger.Debug("frontier emptied", "symbol", string(r), "steps", res.Steps)
			return res, nil
		}
	}

	for state := range frontier {
		if n.IsAccept(state) {
			res.Accepted = true
			break
		}
	}
	s.logger.Debug("simulation finished",
		"accepted", res.Accepted,
		"frontier", len(frontier),
		"steps", res.Steps,
	)
	return res, nil
}

// closure expands the set in place to its epsilon-closure using a worklist
// with the set itself as the visited record.
func (s *Simulator) closure(n *automaton.NFA, set map[automaton.State]struct{}, res *Result) error {
	worklist := make([]automaton.State, 0, len(set))
	for state := range set {
		worklist = append(worklist, state)
	}

	for len(worklist) > 0 {
		state := worklist[len(worklist)-1]
		worklist = worklist[:len(worklist)-1]
		res.Steps++
		if s.maxSteps > 0 && res.Steps > s.maxSteps {
			return ErrStepLimit
		}
		for _, t := range n.Targets(state, automaton.Epsilon) {
			if _, seen := set[t]; !seen {
				set[t] = struct{}{}
				worklist = append(worklist, t)
			}
		}
	}
	return nil
}
