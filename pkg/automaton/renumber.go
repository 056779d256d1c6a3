package automaton

import "fmt"

// WithOffset returns a structurally identical automaton whose every state
// identifier is increased by offset. The transition relation, start state,
// and accept set are remapped consistently. An offset that would renumber
// any state below zero fails with ErrUnknownState.
//
// Its purpose is to guarantee that two automata about to be merged occupy
// disjoint identifier ranges: callers offset the second operand by
// max(first operand's states) + 1 before merging.
func (n *NFA) WithOffset(offset int) (*NFA, error) {
	if offset < 0 {
		for s := range n.states {
			if int(s)+offset < 0 {
				return nil, fmt.Errorf("offset %d renumbers state %d below zero: %w", offset, s, ErrUnknownState)
			}
		}
	}
	return n.shift(offset), nil
}

// shift remaps without validation. The combinators use it directly with
// offsets derived from MaxState, which are always positive.
func (n *NFA) shift(offset int) *NFA {
	out := &NFA{
		states:   make(stateSet, len(n.states)),
		alphabet: make(map[Symbol]struct{}, len(n.alphabet)),
		trans:    make(map[State]map[Symbol]stateSet, len(n.trans)),
		start:    n.start + State(offset),
		accepts:  make(stateSet, len(n.accepts)),
	}

	for s := range n.states {
		out.states[s+State(offset)] = struct{}{}
	}
	for sym := range n.alphabet {
		out.alphabet[sym] = struct{}{}
	}
	for s := range n.accepts {
		out.accepts[s+State(offset)] = struct{}{}
	}
	for from, row := range n.trans {
		newRow := make(map[Symbol]stateSet, len(row))
		for sym, set := range row {
			newSet := make(stateSet, len(set))
			for t := range set {
				newSet[t+State(offset)] = struct{}{}
			}
			newRow[sym] = newSet
		}
		out.trans[from+State(offset)] = newRow
	}

	return out
}
