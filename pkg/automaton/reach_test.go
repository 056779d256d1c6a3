package automaton_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nfakit/nfakit/pkg/automaton"
)

func TestReachable(t *testing.T) {
	n := scenario(t)
	assert.Equal(t, []automaton.State{1, 2, 3}, n.Reachable())
	assert.Empty(t, n.Unreachable())
}

func TestReachable_FollowsEpsilon(t *testing.T) {
	// In Closure(scenario) the old start 1 is reachable only through epsilon
	// edges from the fresh start.
	n := automaton.Closure(scenario(t))
	assert.Empty(t, n.Unreachable())
}

func TestPrune(t *testing.T) {
	n := scenario(t)

	// Orphan states, one of them accepting; no incoming edges.
	orphan := n.NewState()
	orphanAccept := n.NewState()
	require.NoError(t, n.AddTransition(orphan, 'a', orphanAccept))

	assert.Equal(t, []automaton.State{orphan, orphanAccept}, n.Unreachable())

	removed := n.Prune()
	assert.Equal(t, []automaton.State{orphan, orphanAccept}, removed)
	assert.Equal(t, []automaton.State{1, 2, 3}, n.States())
	assert.False(t, n.ContainsState(orphan))
	assert.Empty(t, n.Targets(orphan, 'a'), "transitions sourced at pruned states are dropped")
	assert.NoError(t, n.Validate())

	// Second prune is a no-op.
	assert.Empty(t, n.Prune())
}

func TestWithOffset(t *testing.T) {
	n := scenario(t)
	shifted, err := n.WithOffset(10)
	require.NoError(t, err)

	assert.Equal(t, []automaton.State{11, 12, 13}, shifted.States())
	assert.Equal(t, automaton.State(11), shifted.Start())
	assert.Equal(t, []automaton.State{12}, shifted.Accepts())
	assert.Equal(t, []automaton.State{12, 13}, shifted.Targets(11, 'a'))
	assert.Equal(t, n.Alphabet(), shifted.Alphabet(), "alphabet is not remapped")

	// The original is untouched.
	assert.Equal(t, []automaton.State{1, 2, 3}, n.States())
	assert.NoError(t, shifted.Validate())
}

func TestWithOffset_Negative(t *testing.T) {
	n := scenario(t)

	// Shifting {1,2,3} down by one keeps every identifier non-negative.
	shifted, err := n.WithOffset(-1)
	require.NoError(t, err)
	assert.Equal(t, []automaton.State{0, 1, 2}, shifted.States())
	assert.NoError(t, shifted.Validate())

	// Shifting further would renumber state 1 below zero.
	_, err = n.WithOffset(-2)
	assert.ErrorIs(t, err, automaton.ErrUnknownState)
}
