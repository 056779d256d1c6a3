package codec_test

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nfakit/nfakit/pkg/automaton"
	"github.com/nfakit/nfakit/pkg/codec"
)

func sample(t *testing.T) *automaton.NFA {
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

// composed automata carry epsilon transitions, the interesting case for the
// wire format.
func composed(t *testing.T) *automaton.NFA {
	t.Helper()
	return automaton.Closure(automaton.Union(sample(t), sample(t)))
}

func TestRoundTrip_JSON(t *testing.T) {
	for name, n := range map[string]*automaton.NFA{
		"plain":    sample(t),
		"composed": composed(t),
	} {
		t.Run(name, func(t *testing.T) {
			data, err := codec.MarshalJSON(n)
			require.NoError(t, err)

			back, err := codec.UnmarshalJSON(data)
			require.NoError(t, err)
			assert.True(t, n.Equal(back), "round trip changed the automaton")
		})
	}
}

func TestRoundTrip_YAML(t *testing.T) {
	n := composed(t)

	data, err := codec.MarshalYAML(n)
	require.NoError(t, err)

	back, err := codec.UnmarshalYAML(data)
	require.NoError(t, err)
	assert.True(t, n.Equal(back))
}

func TestRoundTrip_File(t *testing.T) {
	n := sample(t)
	dir := t.TempDir()

	for _, name := range []string{"nfa.json", "nfa.yaml"} {
		t.Run(name, func(t *testing.T) {
			path := filepath.Join(dir, name)
			require.NoError(t, codec.WriteFile(path, n))

			back, err := codec.ReadFile(path)
			require.NoError(t, err)
			assert.True(t, n.Equal(back))
		})
	}
}

func TestDecode_EncodesEpsilonGlyph(t *testing.T) {
	doc := codec.Encode(automaton.Closure(sample(t)))

	found := false
	for _, rec := range doc.TransitionTable {
		if rec.Symbol == "ε" {
			found = true
		}
	}
	assert.True(t, found, "epsilon transitions must serialize as ε")
	assert.NotContains(t, doc.Alphabet, "ε")
}

func TestDecode_Corrupted(t *testing.T) {
	base := func() *codec.Document {
		return &codec.Document{
			States:       []int{1, 2, 3},
			Alphabet:     []string{"a", "b"},
			StartState:   1,
			AcceptStates: []int{2},
		}
	}

	t.Run("transition into start", func(t *testing.T) {
		doc := base()
		doc.TransitionTable = []codec.TransitionRecord{
			{FromState: 2, Symbol: "a", ToStates: []int{1}},
		}
		_, err := codec.Decode(doc)
		assert.ErrorIs(t, err, automaton.ErrIllegalStartTarget)
	})

	t.Run("epsilon into start", func(t *testing.T) {
		doc := base()
		doc.TransitionTable = []codec.TransitionRecord{
			{FromState: 2, Symbol: "ε", ToStates: []int{1}},
		}
		_, err := codec.Decode(doc)
		assert.ErrorIs(t, err, automaton.ErrIllegalStartTarget)
	})

	t.Run("undeclared symbol", func(t *testing.T) {
		doc := base()
		doc.TransitionTable = []codec.TransitionRecord{
			{FromState: 1, Symbol: "z", ToStates: []int{2}},
		}
		_, err := codec.Decode(doc)
		assert.ErrorIs(t, err, automaton.ErrInvalidSymbol)
	})

	t.Run("multi-character symbol", func(t *testing.T) {
		doc := base()
		doc.TransitionTable = []codec.TransitionRecord{
			{FromState: 1, Symbol: "ab", ToStates: []int{2}},
		}
		_, err := codec.Decode(doc)
		assert.ErrorIs(t, err, automaton.ErrInvalidSymbol)
	})

	t.Run("unknown target state", func(t *testing.T) {
		doc := base()
		doc.TransitionTable = []codec.TransitionRecord{
			{FromState: 1, Symbol: "a", ToStates: []int{9}},
		}
		_, err := codec.Decode(doc)
		assert.ErrorIs(t, err, automaton.ErrUnknownState)
	})

	t.Run("epsilon in alphabet", func(t *testing.T) {
		doc := base()
		doc.Alphabet = append(doc.Alphabet, "ε")
		_, err := codec.Decode(doc)
		assert.ErrorIs(t, err, automaton.ErrInvalidSymbol)
	})

	t.Run("start outside states", func(t *testing.T) {
		doc := base()
		doc.StartState = 9
		_, err := codec.Decode(doc)
		assert.ErrorIs(t, err, automaton.ErrUnknownState)
	})
}

func TestUnmarshal_BadPayload(t *testing.T) {
	_, err := codec.UnmarshalJSON([]byte("{not json"))
	assert.Error(t, err)

	_, err = codec.UnmarshalYAML([]byte(":\t:"))
	assert.Error(t, err)
}
