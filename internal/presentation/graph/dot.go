// Package graph renders automata as directed-graph diagrams. All renderers
// are read-only consumers of the model and produce deterministic output.
package graph

import (
	"fmt"
	"strings"

	"github.com/nfakit/nfakit/pkg/automaton"
)

// GenerateDOT produces a Graphviz digraph for the automaton:
// left-to-right layout, a point-shaped synthetic entry marker pointing at the
// start state, doublecircle accept states, and edges labeled by symbol with
// epsilon rendered as "ε".
func GenerateDOT(n *automaton.NFA) string {
	var sb strings.Builder
	sb.WriteString("digraph nfa {\n")
	sb.WriteString("    rankdir=LR;\n")

	// Synthetic entry marker.
	sb.WriteString("    start [shape=point];\n")
	fmt.Fprintf(&sb, "    start -> s%d;\n", n.Start())

	for _, s := range n.States() {
		shape := "circle"
		if n.IsAccept(s) {
			shape = "doublecircle"
		}
		fmt.Fprintf(&sb, "    s%d [shape=%s, label=\"%d\"];\n", s, shape, s)
	}

	for _, t := range n.Transitions() {
		for _, to := range t.To {
			fmt.Fprintf(&sb, "    s%d -> s%d [label=\"%s\"];\n", t.From, to, t.Symbol.String())
		}
	}

	sb.WriteString("}\n")
	return sb.String()
}
