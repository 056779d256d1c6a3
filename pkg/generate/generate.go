// Package generate produces random automata for fuzz and stress testing.
//
// Every generated automaton satisfies the model invariants: no edge ever
// targets the start state, and every transition endpoint and symbol is
// declared. Generation is deterministic under a fixed seed.
package generate

import (
	"fmt"
	"math/rand/v2"
	"sort"

	"github.com/nfakit/nfakit/pkg/automaton"
)

type config struct {
	rng     *rand.Rand
	density float64
}

// Option configures generation.
type Option func(*config)

// WithSeed makes generation deterministic.
func WithSeed(seed uint64) Option {
	return func(c *config) {
		c.rng = rand.New(rand.NewPCG(seed, seed))
	}
}

// WithRand supplies an explicit source, overriding WithSeed.
func WithRand(rng *rand.Rand) Option {
	return func(c *config) {
		if rng != nil {
			c.rng = rng
		}
	}
}

// WithDensity sets the probability of each extra (state, symbol, target)
// edge beyond the connecting chain. Must lie in [0, 1]; default 0.1.
func WithDensity(p float64) Option {
	return func(c *config) {
		c.density = p
	}
}

// Random builds an automaton with states 0..n-1, start 0, a small random
// lowercase alphabet, and two to three random accept states. A chain of
// transitions guarantees every non-start state has an incoming edge from a
// lower-numbered state; extra edges are sprinkled with the configured
// density. No edge ever targets state 0.
func Random(n int, opts ...Option) (*automaton.NFA, error) {
	if n < 2 {
		return nil, fmt.Errorf("need at least 2 states, got %d", n)
	}

	cfg := &config{
		rng:     rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64())),
		density: 0.1,
	}
	for _, opt := range opts {
		opt(cfg)
	}
	if cfg.density < 0 || cfg.density > 1 {
		return nil, fmt.Errorf("density %v out of range [0, 1]", cfg.density)
	}
	rng := cfg.rng

	symbolSet := make(map[automaton.Symbol]struct{})
	for range 2 + rng.IntN(2) {
		symbolSet[automaton.Symbol('a'+rng.IntN(26))] = struct{}{}
	}
	alphabet := make([]automaton.Symbol, 0, len(symbolSet))
	for sym := range symbolSet {
		alphabet = append(alphabet, sym)
	}
	// Map iteration order is randomized; the rng-indexed draws below need a
	// fixed order for the seed to reproduce the same automaton.
	sort.Slice(alphabet, func(i, j int) bool { return alphabet[i] < alphabet[j] })

	states := make([]automaton.State, n)
	for i := range states {
		states[i] = automaton.State(i)
	}

	acceptSet := make(map[automaton.State]struct{})
	for range 2 + rng.IntN(2) {
		acceptSet[automaton.State(rng.IntN(n))] = struct{}{}
	}
	accepts := make([]automaton.State, 0, len(acceptSet))
	for s := range acceptSet {
		accepts = append(accepts, s)
	}

	nfa, err := automaton.New(states, alphabet, 0, accepts)
	if err != nil {
		return nil, err
	}

	// Connecting chain: each new state gets an edge sourced below it.
	for i := 1; i < n; i++ {
		from := automaton.State(rng.IntN(i))
		sym := alphabet[rng.IntN(len(alphabet))]
		to := automaton.State(1 + rng.IntN(n-1))
		if err := nfa.AddTransition(from, sym, to); err != nil {
			return nil, err
		}
	}

	for from := range n {
		for _, sym := range alphabet {
			for to := 1; to < n; to++ {
				if rng.Float64() < cfg.density {
					if err := nfa.AddTransition(automaton.State(from), sym, automaton.State(to)); err != nil {
						return nil, err
					}
				}
			}
		}
	}

	return nfa, nil
}
