package automaton

import "errors"

// ErrInvalidSymbol is returned when a transition or alphabet extension names a
// symbol that is not part of the automaton's declared alphabet.
var ErrInvalidSymbol = errors.New("symbol does not belong to the alphabet")

// ErrUnknownState is returned when a referenced state is absent from the
// automaton's state set.
var ErrUnknownState = errors.New("state does not belong to the automaton")

// ErrIllegalStartTarget is returned when a transition would target the
// automaton's own start state. The start state is reachable only as the entry
// point, never as a re-entry target.
var ErrIllegalStartTarget = errors.New("transition to the start state is not allowed")

// ErrNotFound is returned by stores when a named automaton does not exist.
var ErrNotFound = errors.New("automaton not found")
