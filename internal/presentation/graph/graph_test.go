package graph_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nfakit/nfakit/internal/presentation/graph"
	"github.com/nfakit/nfakit/pkg/automaton"
)

func sample(t *testing.T) *automaton.NFA {
	t.Helper()
	n, err := automaton.New(
		[]automaton.State{1, 2, 3},
		[]automaton.Symbol{'a', 'b'},
		1,
		[]automaton.State{2},
	)
	require.NoError(t, err)
	require.NoError(t, n.AddTransition(1, 'a', 2, 3))
	require.NoError(t, n.AddTransition(2, 'b', 3))
	return n
}

func TestGenerateDOT(t *testing.T) {
	out := graph.GenerateDOT(sample(t))

	assert.True(t, strings.HasPrefix(out, "digraph nfa {"))
	assert.Contains(t, out, "rankdir=LR;")
	assert.Contains(t, out, "start [shape=point];", "synthetic entry marker")
	assert.Contains(t, out, "start -> s1;")
	assert.Contains(t, out, "s2 [shape=doublecircle", "accept state distinguished")
	assert.Contains(t, out, "s1 [shape=circle")
	assert.Contains(t, out, `s1 -> s2 [label="a"];`)
	assert.Contains(t, out, `s2 -> s3 [label="b"];`)
}

func TestGenerateDOT_EpsilonGlyph(t *testing.T) {
	out := graph.GenerateDOT(automaton.Closure(sample(t)))
	assert.Contains(t, out, `[label="ε"]`, "epsilon edges use the distinct glyph")
}

func TestGenerateMermaid(t *testing.T) {
	out := graph.GenerateMermaid(sample(t))

	assert.True(t, strings.HasPrefix(out, "graph LR"))
	assert.Contains(t, out, "entry --> s1", "synthetic entry marker")
	assert.Contains(t, out, `s2((("2")))`, "accept state double-circled")
	assert.Contains(t, out, `s1(("1"))`)
	assert.Contains(t, out, `s1 -- "a" --> s2`)
}

func TestGenerateMermaid_EpsilonGlyph(t *testing.T) {
	out := graph.GenerateMermaid(automaton.Closure(sample(t)))
	assert.Contains(t, out, `-- "ε" -->`)
}

func TestRenderers_Deterministic(t *testing.T) {
	n := automaton.Union(sample(t), sample(t))
	assert.Equal(t, graph.GenerateDOT(n), graph.GenerateDOT(n))
	assert.Equal(t, graph.GenerateMermaid(n), graph.GenerateMermaid(n))
}
