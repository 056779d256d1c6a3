package runtime_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nfakit/nfakit/internal/runtime"
	"github.com/nfakit/nfakit/pkg/automaton"
)

// firstMachine: states {1,2,3}, alphabet {a,b,c}, start 1, accept {2},
// transitions 1-a->{2,3}, 2-b->{3}, 3-c->{3}.
func firstMachine(t *testing.T) *automaton.NFA {
	t.Helper()
	n, err := automaton.New(
		[]automaton.State{1, 2, 3},
		[]automaton.Symbol{'a', 'b', 'c'},
		1,
		[]automaton.State{2},
	)
	require.NoError(t, err)
	require.NoError(t, n.AddTransition(1, 'a', 2, 3))
	require.NoError(t, n.AddTransition(2, 'b', 3))
	require.NoError(t, n.AddTransition(3, 'c', 3))
	return n
}

// secondMachine: states {11,12}, start 11, accept {12}, transitions
// 11-a->{12}, 12-c->{12}.
func secondMachine(t *testing.T) *automaton.NFA {
	t.Helper()
	n, err := automaton.New(
		[]automaton.State{11, 12},
		[]automaton.Symbol{'a', 'b', 'c'},
		11,
		[]automaton.State{12},
	)
	require.NoError(t, err)
	require.NoError(t, n.AddTransition(11, 'a', 12))
	require.NoError(t, n.AddTransition(12, 'c', 12))
	return n
}

func accepts(t *testing.T, n *automaton.NFA, input string) bool {
	t.Helper()
	res, err := runtime.NewSimulator().Run(context.Background(), n, input)
	require.NoError(t, err)
	return res.Accepted
}

func TestRun_FirstMachine(t *testing.T) {
	n := firstMachine(t)

	assert.True(t, accepts(t, n, "a"))
	// State 2 has an outgoing b, but 3 is not accepting.
	assert.False(t, accepts(t, n, "ab"))
	assert.False(t, accepts(t, n, ""))
	assert.False(t, accepts(t, n, "b"))
	assert.False(t, accepts(t, n, "ac"))
	assert.False(t, accepts(t, n, "abccc"))
}

func TestRun_SymbolOutsideAlphabet(t *testing.T) {
	n := firstMachine(t)
	assert.False(t, accepts(t, n, "x"), "undeclared symbols reject, not error")
}

func TestRun_Concatenation(t *testing.T) {
	res := automaton.Concatenate(firstMachine(t), secondMachine(t))

	// First accepts "a", second accepts "ac" through the epsilon bridge.
	assert.True(t, accepts(t, res, "aac"))
	assert.True(t, accepts(t, res, "aa"))
	assert.True(t, accepts(t, res, "aaccc"))
	assert.False(t, accepts(t, res, "a"), "first part alone no longer accepts")
	assert.False(t, accepts(t, res, "ac"))
	assert.False(t, accepts(t, res, ""))
}

func TestRun_Union(t *testing.T) {
	a := firstMachine(t)
	b := secondMachine(t)
	u := automaton.Union(a, b)

	for _, input := range []string{"", "a", "ac", "acc", "ab", "c"} {
		want := accepts(t, a, input) || accepts(t, b, input)
		assert.Equal(t, want, accepts(t, u, input), "input %q", input)
	}
	assert.True(t, accepts(t, u, "a"))
	assert.True(t, accepts(t, u, "acc"))
}

func TestRun_Closure(t *testing.T) {
	// secondMachine accepts a, ac, acc, ...
	c := automaton.Closure(secondMachine(t))

	assert.True(t, accepts(t, c, ""), "closure always accepts the empty string")
	assert.True(t, accepts(t, c, "a"))
	assert.True(t, accepts(t, c, "aa"))
	assert.True(t, accepts(t, c, "acac"))
	assert.True(t, accepts(t, c, "accaacc"))
	assert.False(t, accepts(t, c, "c"))
	assert.False(t, accepts(t, c, "ca"))
}

func TestRun_NestedClosure_Terminates(t *testing.T) {
	// Double closure stacks epsilon cycles; the visited set must keep the
	// closure computation finite.
	n := automaton.Closure(automaton.Closure(firstMachine(t)))

	assert.True(t, accepts(t, n, ""))
	assert.True(t, accepts(t, n, "aaa"))
	assert.False(t, accepts(t, n, "ab"))
}

func TestRun_PruneInvariance(t *testing.T) {
	n := firstMachine(t)
	orphan := n.NewState()
	require.NoError(t, n.AddTransition(orphan, 'c', orphan))

	pruned := n.Clone()
	require.NotEmpty(t, pruned.Prune())

	for _, input := range []string{"", "a", "ab", "ac", "abc", "accc"} {
		assert.Equal(t, accepts(t, n, input), accepts(t, pruned, input), "input %q", input)
	}
}

func TestRun_OffsetInvariance(t *testing.T) {
	n := firstMachine(t)
	shifted, err := n.WithOffset(100)
	require.NoError(t, err)

	for _, input := range []string{"", "a", "ab", "abc", "x"} {
		assert.Equal(t, accepts(t, n, input), accepts(t, shifted, input), "input %q", input)
	}
}

func TestRun_StepLimit(t *testing.T) {
	sim := runtime.NewSimulator(runtime.WithMaxSteps(1))
	_, err := sim.Run(context.Background(), firstMachine(t), "abc")
	assert.ErrorIs(t, err, runtime.ErrStepLimit)
}

func TestRun_ContextCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := runtime.NewSimulator().Run(ctx, firstMachine(t), "abc")
	assert.ErrorIs(t, err, context.Canceled)
}
