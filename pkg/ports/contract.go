package ports

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nfakit/nfakit/pkg/automaton"
)

// RunStoreContract verifies a Store implementation against the shared
// behavioral contract. Adapter test suites call it with a fresh store.
func RunStoreContract(t *testing.T, store Store) {
	t.Helper()
	ctx := context.Background()

	nfa, err := automaton.New(
		[]automaton.State{1, 2, 3},
		[]automaton.Symbol{'a', 'b'},
		1,
		[]automaton.State{2},
	)
	require.NoError(t, err)
	require.NoError(t, nfa.AddTransition(1, 'a', 2, 3))
	require.NoError(t, nfa.AddTransition(2, 'b', 3))

	t.Run("Load missing", func(t *testing.T) {
		_, err := store.Load(ctx, "missing")
		assert.ErrorIs(t, err, automaton.ErrNotFound)
	})

	t.Run("Save and Load", func(t *testing.T) {
		require.NoError(t, store.Save(ctx, "contract", nfa))

		loaded, err := store.Load(ctx, "contract")
		require.NoError(t, err)
		assert.True(t, nfa.Equal(loaded), "loaded automaton differs from saved one")
	})

	t.Run("Save replaces", func(t *testing.T) {
		other, err := automaton.New([]automaton.State{5}, []automaton.Symbol{'x'}, 5, nil)
		require.NoError(t, err)
		require.NoError(t, store.Save(ctx, "contract", other))

		loaded, err := store.Load(ctx, "contract")
		require.NoError(t, err)
		assert.True(t, other.Equal(loaded))
	})

	t.Run("List", func(t *testing.T) {
		require.NoError(t, store.Save(ctx, "second", nfa))

		names, err := store.List(ctx)
		require.NoError(t, err)
		assert.Contains(t, names, "contract")
		assert.Contains(t, names, "second")
	})

	t.Run("Delete", func(t *testing.T) {
		require.NoError(t, store.Delete(ctx, "contract"))

		_, err := store.Load(ctx, "contract")
		assert.ErrorIs(t, err, automaton.ErrNotFound)

		names, err := store.List(ctx)
		require.NoError(t, err)
		assert.NotContains(t, names, "contract")
	})
}
