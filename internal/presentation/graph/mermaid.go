package graph

import (
	"fmt"
	"strings"

	"github.com/nfakit/nfakit/pkg/automaton"
)

// GenerateMermaid produces a Mermaid flowchart (graph LR) for the automaton.
// Accept states use the double-circle shape, the start state is marked by a
// synthetic entry node, and edges carry symbol labels with epsilon rendered
// as "ε".
func GenerateMermaid(n *automaton.NFA) string {
	var sb strings.Builder
	sb.WriteString("graph LR\n")

	// Synthetic entry marker.
	sb.WriteString("    entry(( ))\n")
	fmt.Fprintf(&sb, "    entry --> s%d\n", n.Start())

	for _, s := range n.States() {
		// Double circle for accept states, plain circle otherwise.
		opener, closer := "((", "))"
		if n.IsAccept(s) {
			opener, closer = "(((", ")))"
		}
		fmt.Fprintf(&sb, "    s%d%s\"%d\"%s\n", s, opener, s, closer)
	}

	for _, t := range n.Transitions() {
		label := t.Symbol.String()
		// Quotes would break the Mermaid edge label syntax.
		label = strings.ReplaceAll(label, "\"", "'")
		for _, to := range t.To {
			fmt.Fprintf(&sb, "    s%d -- \"%s\" --> s%d\n", t.From, label, to)
		}
	}

	return sb.String()
}
