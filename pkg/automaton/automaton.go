package automaton

import (
	"fmt"
	"sort"
)

// State is an opaque, unique, non-negative state identifier. It carries no
// payload; identity only.
type State int

// Symbol is a character of the input alphabet. The zero value is reserved for
// Epsilon and is never a member of a declared alphabet; the rendering glyph
// 'ε' is reserved alongside it so serialized automata stay unambiguous.
type Symbol rune

// Epsilon is the reserved meta-symbol for transitions that consume no input.
// It is inserted by the Thompson combinators and is never accepted by the
// public mutators.
const Epsilon Symbol = 0

// String renders the symbol, with Epsilon shown as the conventional glyph.
func (s Symbol) String() string {
	if s == Epsilon {
		return "ε"
	}
	return string(rune(s))
}

type stateSet map[State]struct{}

func (ss stateSet) clone() stateSet {
	out := make(stateSet, len(ss))
	for s := range ss {
		out[s] = struct{}{}
	}
	return out
}

func (ss stateSet) sorted() []State {
	out := make([]State, 0, len(ss))
	for s := range ss {
		out = append(out, s)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// NFA is a non-deterministic finite automaton: a state set, an alphabet, a
// transition relation, a single start state, and a set of accept states.
//
// The transition relation maps (state, symbol) pairs to sets of target states;
// it is a relation, not a function. Epsilon-keyed entries denote transitions
// consumable without reading input.
type NFA struct {
	states   stateSet
	alphabet map[Symbol]struct{}
	trans    map[State]map[Symbol]stateSet
	start    State
	accepts  stateSet
}

// Transition is one row of the transition relation in exported form.
// Targets are sorted for deterministic consumption.
type Transition struct {
	From   State
	Symbol Symbol
	To     []State
}

// New constructs an automaton from an initial state set, alphabet, start
// state, and accept set. The state set must be non-empty and contain the start
// state and every accept state; the alphabet must not contain Epsilon or its
// glyph 'ε'.
func New(states []State, alphabet []Symbol, start State, accepts []State) (*NFA, error) {
	if len(states) == 0 {
		return nil, fmt.Errorf("automaton needs at least one state: %w", ErrUnknownState)
	}

	n := &NFA{
		states:   make(stateSet, len(states)),
		alphabet: make(map[Symbol]struct{}, len(alphabet)),
		trans:    make(map[State]map[Symbol]stateSet),
		start:    start,
		accepts:  make(stateSet, len(accepts)),
	}

	for _, s := range states {
		if s < 0 {
			return nil, fmt.Errorf("negative state %d: %w", s, ErrUnknownState)
		}
		n.states[s] = struct{}{}
	}
	if _, ok := n.states[start]; !ok {
		return nil, fmt.Errorf("start state %d: %w", start, ErrUnknownState)
	}
	for _, sym := range alphabet {
		if sym == Epsilon || sym == 'ε' {
			return nil, fmt.Errorf("reserved symbol %q cannot be declared in the alphabet: %w", sym.String(), ErrInvalidSymbol)
		}
		n.alphabet[sym] = struct{}{}
	}
	for _, s := range accepts {
		if _, ok := n.states[s]; !ok {
			return nil, fmt.Errorf("accept state %d: %w", s, ErrUnknownState)
		}
		n.accepts[s] = struct{}{}
	}

	return n, nil
}

// AddTransition unions the target states into the transition set for
// (from, sym). It is idempotent: re-adding an existing target has no effect.
//
// The call is atomic. It fails with ErrInvalidSymbol if sym is Epsilon or not
// declared in the alphabet, ErrUnknownState if from or any target is not a
// member of the state set, and ErrIllegalStartTarget if any target is the
// start state; on failure the transition table is left unchanged.
func (n *NFA) AddTransition(from State, sym Symbol, to ...State) error {
	if sym == Epsilon {
		return fmt.Errorf("epsilon transitions cannot be added explicitly: %w", ErrInvalidSymbol)
	}
	if _, ok := n.alphabet[sym]; !ok {
		return fmt.Errorf("symbol %q: %w", sym.String(), ErrInvalidSymbol)
	}
	if _, ok := n.states[from]; !ok {
		return fmt.Errorf("source state %d: %w", from, ErrUnknownState)
	}
	for _, t := range to {
		if _, ok := n.states[t]; !ok {
			return fmt.Errorf("target state %d: %w", t, ErrUnknownState)
		}
		if t == n.start {
			return fmt.Errorf("%d -> %d: %w", from, t, ErrIllegalStartTarget)
		}
	}

	n.connect(from, sym, to...)
	return nil
}

// AddEpsilon unions epsilon-transition targets into the relation for from.
// Alphabet membership does not apply to epsilon edges, but state membership
// and the start-target prohibition are enforced exactly as in AddTransition.
// Used by decoders reconstructing composed automata.
func (n *NFA) AddEpsilon(from State, to ...State) error {
	if _, ok := n.states[from]; !ok {
		return fmt.Errorf("source state %d: %w", from, ErrUnknownState)
	}
	for _, t := range to {
		if _, ok := n.states[t]; !ok {
			return fmt.Errorf("target state %d: %w", t, ErrUnknownState)
		}
		if t == n.start {
			return fmt.Errorf("%d -> %d: %w", from, t, ErrIllegalStartTarget)
		}
	}

	n.connect(from, Epsilon, to...)
	return nil
}

// connect writes into the relation without validation. The combinators use it
// directly and guarantee the invariants themselves.
func (n *NFA) connect(from State, sym Symbol, to ...State) {
	row, ok := n.trans[from]
	if !ok {
		row = make(map[Symbol]stateSet)
		n.trans[from] = row
	}
	set, ok := row[sym]
	if !ok {
		set = make(stateSet, len(to))
		row[sym] = set
	}
	for _, t := range to {
		set[t] = struct{}{}
	}
}

// NewState allocates a fresh state identifier strictly greater than every
// existing one and adds it to the state set. Identifiers are monotonic and
// never reused.
func (n *NFA) NewState() State {
	s := n.MaxState() + 1
	n.states[s] = struct{}{}
	return s
}

// AddSymbol extends the alphabet. Existing transitions are unaffected.
// Epsilon and its glyph 'ε' are rejected with ErrInvalidSymbol.
func (n *NFA) AddSymbol(sym Symbol) error {
	if sym == Epsilon || sym == 'ε' {
		return fmt.Errorf("reserved symbol %q cannot be declared in the alphabet: %w", sym.String(), ErrInvalidSymbol)
	}
	n.alphabet[sym] = struct{}{}
	return nil
}

// Start returns the start state.
func (n *NFA) Start() State { return n.start }

// IsAccept reports whether s is an accept state.
func (n *NFA) IsAccept(s State) bool {
	_, ok := n.accepts[s]
	return ok
}

// ContainsState reports whether s is a member of the state set.
func (n *NFA) ContainsState(s State) bool {
	_, ok := n.states[s]
	return ok
}

// ContainsSymbol reports whether sym is declared in the alphabet.
func (n *NFA) ContainsSymbol(sym Symbol) bool {
	_, ok := n.alphabet[sym]
	return ok
}

// States returns the state set in ascending order.
func (n *NFA) States() []State { return n.states.sorted() }

// Accepts returns the accept set in ascending order.
func (n *NFA) Accepts() []State { return n.accepts.sorted() }

// Alphabet returns the declared symbols in ascending order.
func (n *NFA) Alphabet() []Symbol {
	out := make([]Symbol, 0, len(n.alphabet))
	for sym := range n.alphabet {
		out = append(out, sym)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// MaxState returns the largest state identifier.
func (n *NFA) MaxState() State {
	first := true
	var max State
	for s := range n.states {
		if first || s > max {
			max = s
			first = false
		}
	}
	return max
}

// Targets returns the transition set for (from, sym) in ascending order.
// A missing entry yields an empty slice.
func (n *NFA) Targets(from State, sym Symbol) []State {
	row, ok := n.trans[from]
	if !ok {
		return nil
	}
	set, ok := row[sym]
	if !ok {
		return nil
	}
	return set.sorted()
}

// Transitions returns the full relation as sorted rows, ordered by source
// state and then symbol (Epsilon first).
func (n *NFA) Transitions() []Transition {
	out := make([]Transition, 0, len(n.trans))
	for from, row := range n.trans {
		for sym, set := range row {
			out = append(out, Transition{From: from, Symbol: sym, To: set.sorted()})
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].From != out[j].From {
			return out[i].From < out[j].From
		}
		return out[i].Symbol < out[j].Symbol
	})
	return out
}

// Clone returns an independent deep copy.
func (n *NFA) Clone() *NFA {
	out := &NFA{
		states:   n.states.clone(),
		alphabet: make(map[Symbol]struct{}, len(n.alphabet)),
		trans:    make(map[State]map[Symbol]stateSet, len(n.trans)),
		start:    n.start,
		accepts:  n.accepts.clone(),
	}
	for sym := range n.alphabet {
		out.alphabet[sym] = struct{}{}
	}
	for from, row := range n.trans {
		newRow := make(map[Symbol]stateSet, len(row))
		for sym, set := range row {
			newRow[sym] = set.clone()
		}
		out.trans[from] = newRow
	}
	return out
}

// Equal reports structural equality: same states, alphabet, start, accepts,
// and transition relation (set equality per source/symbol pair).
func (n *NFA) Equal(other *NFA) bool {
	if other == nil || n.start != other.start ||
		len(n.states) != len(other.states) ||
		len(n.alphabet) != len(other.alphabet) ||
		len(n.accepts) != len(other.accepts) {
		return false
	}
	for s := range n.states {
		if _, ok := other.states[s]; !ok {
			return false
		}
	}
	for sym := range n.alphabet {
		if _, ok := other.alphabet[sym]; !ok {
			return false
		}
	}
	for s := range n.accepts {
		if _, ok := other.accepts[s]; !ok {
			return false
		}
	}
	return relationEqual(n.trans, other.trans) && relationEqual(other.trans, n.trans)
}

func relationEqual(a, b map[State]map[Symbol]stateSet) bool {
	for from, row := range a {
		for sym, set := range row {
			if len(set) == 0 {
				continue
			}
			otherRow, ok := b[from]
			if !ok {
				return false
			}
			otherSet, ok := otherRow[sym]
			if !ok || len(set) != len(otherSet) {
				return false
			}
			for t := range set {
				if _, ok := otherSet[t]; !ok {
					return false
				}
			}
		}
	}
	return true
}

// Validate audits the full invariant set: start membership, accept subset,
// transition endpoint membership, alphabet membership of every non-epsilon
// transition symbol, and the start-target prohibition. Automata built through
// the public API always pass; Validate exists for decoded or hand-assembled
// inputs.
func (n *NFA) Validate() error {
	if len(n.states) == 0 {
		return fmt.Errorf("empty state set: %w", ErrUnknownState)
	}
	if _, ok := n.states[n.start]; !ok {
		return fmt.Errorf("start state %d: %w", n.start, ErrUnknownState)
	}
	for sym := range n.alphabet {
		if sym == Epsilon || sym == 'ε' {
			return fmt.Errorf("reserved symbol %q in the alphabet: %w", sym.String(), ErrInvalidSymbol)
		}
	}
	for s := range n.accepts {
		if _, ok := n.states[s]; !ok {
			return fmt.Errorf("accept state %d: %w", s, ErrUnknownState)
		}
	}
	for from, row := range n.trans {
		if _, ok := n.states[from]; !ok {
			return fmt.Errorf("source state %d: %w", from, ErrUnknownState)
		}
		for sym, set := range row {
			if sym != Epsilon {
				if _, ok := n.alphabet[sym]; !ok {
					return fmt.Errorf("symbol %q: %w", sym.String(), ErrInvalidSymbol)
				}
			}
			for t := range set {
				if _, ok := n.states[t]; !ok {
					return fmt.Errorf("target state %d: %w", t, ErrUnknownState)
				}
				if t == n.start {
					return fmt.Errorf("%d -> %d: %w", from, t, ErrIllegalStartTarget)
				}
			}
		}
	}
	return nil
}
