/*
Package nfakit is a toolkit for building, composing, and simulating
non-deterministic finite automata (NFAs).

Automata are built from primitive transitions through invariant-checked
mutators, combined algebraically with the Thompson-construction operators
(concatenation, union, Kleene closure), pruned of unreachable structure, and
simulated against input strings under full non-determinism with epsilon
transitions.

# Concept

The core model lives in pkg/automaton and is pure: no I/O, no external
dependencies. Everything around it is an adapter — serialization (pkg/codec),
random generation (pkg/generate), persistence (ports.Store implementations),
diagram rendering, and the HTTP service. The Engine in this package wires the
simulation engine, an optional store, and optional metrics into one entry
point, following a Hexagonal Architecture.

# Usage

	package main

	import (
		"context"
		"fmt"
		"log"

		"github.com/nfakit/nfakit"
		"github.com/nfakit/nfakit/pkg/automaton"
	)

	func main() {
		nfa, err := automaton.New(
			[]automaton.State{1, 2, 3},
			[]automaton.Symbol{'a', 'b', 'c'},
			1,
			[]automaton.State{2},
		)
		if err != nil {
			log.Fatal(err)
		}
		if err := nfa.AddTransition(1, 'a', 2, 3); err != nil {
			log.Fatal(err)
		}

		eng := nfakit.New()
		ok, err := eng.Accepts(context.Background(), nfa, "a")
		if err != nil {
			log.Fatal(err)
		}
		fmt.Println(ok) // true
	}

The simulation treats the automaton as immutable during traversal. The
combinators never mutate their operands and may run concurrently on
independent automata.
*/
package nfakit
