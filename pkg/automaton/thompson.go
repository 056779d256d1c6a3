package automaton

// Thompson-construction combinators. Operands are treated as immutable; each
// combinator returns a fresh automaton whose state set is the union of the
// (renumbered where needed) operand state sets.
//
// The combinators insert epsilon edges through the unchecked internal path.
// Each is written so no inserted edge can target the result's start state:
// Union and Closure route new epsilon edges out of a freshly allocated start,
// and Concatenate's epsilon edges target the second operand's start, which is
// never the result's start.

// Concatenate returns an automaton accepting xy for every x accepted by a and
// y accepted by b. The second operand is renumbered internally to a disjoint
// identifier range, so the operands need not be disjoint already. The result
// starts at a's start, accepts at b's accept states, and connects every
// accept state of a to b's start with an epsilon edge.
func Concatenate(a, b *NFA) *NFA {
	offset := int(a.MaxState()) + 1
	bShifted := b.shift(offset)

	out := a.Clone()
	merge(out, bShifted)

	out.accepts = bShifted.accepts.clone()
	for s := range a.accepts {
		out.connect(s, Epsilon, bShifted.start)
	}
	return out
}

// Union returns an automaton accepting every string accepted by either
// operand. The second operand is renumbered to a disjoint range, a fresh
// state becomes the new start, and epsilon edges connect it to both operand
// starts. The accept set is the union of the operand accept sets.
func Union(a, b *NFA) *NFA {
	offset := int(a.MaxState()) + 1
	bShifted := b.shift(offset)

	out := a.Clone()
	merge(out, bShifted)
	for s := range bShifted.accepts {
		out.accepts[s] = struct{}{}
	}

	start := out.NewState()
	out.start = start
	out.connect(start, Epsilon, a.start, bShifted.start)
	return out
}

// Closure returns an automaton accepting every concatenation of zero or more
// strings accepted by a (Kleene star). A fresh accepting state becomes the
// new start, with an epsilon edge to a's start; every accept state of a also
// gains an epsilon edge back to a's start, allowing repetition.
func Closure(a *NFA) *NFA {
	out := a.Clone()

	start := out.NewState()
	out.start = start
	out.accepts[start] = struct{}{}
	out.connect(start, Epsilon, a.start)
	for s := range a.accepts {
		out.connect(s, Epsilon, a.start)
	}
	return out
}

// merge folds src's states, alphabet, and transitions into dst. The callers
// guarantee the state ranges are disjoint.
func merge(dst, src *NFA) {
	for s := range src.states {
		dst.states[s] = struct{}{}
	}
	for sym := range src.alphabet {
		dst.alphabet[sym] = struct{}{}
	}
	for from, row := range src.trans {
		for sym, set := range row {
			for t := range set {
				dst.connect(from, sym, t)
			}
		}
	}
}
