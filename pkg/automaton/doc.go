/*
Package automaton contains the core model of a non-deterministic finite
automaton (NFA) and the pure operations over it.

It defines states, symbols, the transition relation, and the invariant-checked
mutators, plus renumbering, reachability pruning, and the Thompson-construction
combinators (concatenation, union, closure). This package is kept pure and free
of external dependencies like I/O or persistence; encoding, rendering, and
simulation live in their own packages and consume the model read-only.

# Key Entities

  - State: an opaque, unique, non-negative integer identifier.
  - Symbol: a character of the alphabet; Epsilon is the reserved meta-symbol
    for transitions that consume no input.
  - NFA: the state set, alphabet, transition relation, start state, and
    accept set.

# Invariants

Every transition endpoint is a member of the state set, every explicit
transition symbol is a member of the alphabet, and no transition ever targets
the automaton's own start state. The public mutators enforce all three; the
combinators insert epsilon edges directly but are written so they never create
an edge into the result's start.
*/
package automaton
