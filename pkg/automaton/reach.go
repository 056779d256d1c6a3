package automaton

// Reachable returns, in ascending order, the states reachable from the start
// state following every transition, epsilon edges included.
func (n *NFA) Reachable() []State {
	return n.reachableSet().sorted()
}

// Unreachable returns, in ascending order, the states that no path from the
// start state can reach.
func (n *NFA) Unreachable() []State {
	reachable := n.reachableSet()
	out := make(stateSet)
	for s := range n.states {
		if _, ok := reachable[s]; !ok {
			out[s] = struct{}{}
		}
	}
	return out.sorted()
}

func (n *NFA) reachableSet() stateSet {
	reachable := stateSet{n.start: {}}
	frontier := []State{n.start}

	for len(frontier) > 0 {
		s := frontier[len(frontier)-1]
		frontier = frontier[:len(frontier)-1]
		for _, set := range n.trans[s] {
			for t := range set {
				if _, ok := reachable[t]; !ok {
					reachable[t] = struct{}{}
					frontier = append(frontier, t)
				}
			}
		}
	}

	return reachable
}

// Prune removes the states unreachable from the start state, drops them from
// the accept set, and deletes every transition row sourced at a removed
// state. It returns the removed states in ascending order.
//
// Pruning can never change an acceptance verdict: unreachable states cannot
// appear on any path from the start state.
func (n *NFA) Prune() []State {
	unreachable := n.Unreachable()
	for _, s := range unreachable {
		delete(n.states, s)
		delete(n.accepts, s)
		delete(n.trans, s)
	}
	return unreachable
}
