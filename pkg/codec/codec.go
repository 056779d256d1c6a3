package codec

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"gopkg.in/yaml.v3"

	"github.com/nfakit/nfakit/pkg/automaton"
)

// epsilonGlyph is the wire form of the epsilon meta-symbol. It never appears
// in a document's alphabet, only in transition records.
const epsilonGlyph = "ε"

// Document is the exchanged representation of an automaton.
type Document struct {
	States          []int              `json:"states" yaml:"states"`
	Alphabet        []string           `json:"alphabet" yaml:"alphabet"`
	TransitionTable []TransitionRecord `json:"transition_table" yaml:"transition_table"`
	StartState      int                `json:"start_state" yaml:"start_state"`
	AcceptStates    []int              `json:"accept_states" yaml:"accept_states"`
}

// TransitionRecord is one row of the serialized transition relation.
type TransitionRecord struct {
	FromState int    `json:"from_state" yaml:"from_state"`
	Symbol    string `json:"symbol" yaml:"symbol"`
	ToStates  []int  `json:"to_states" yaml:"to_states"`
}

// Encode converts an automaton into its document form with deterministic
// ordering.
func Encode(n *automaton.NFA) *Document {
	doc := &Document{
		StartState: int(n.Start()),
	}
	for _, s := range n.States() {
		doc.States = append(doc.States, int(s))
	}
	for _, sym := range n.Alphabet() {
		doc.Alphabet = append(doc.Alphabet, sym.String())
	}
	for _, s := range n.Accepts() {
		doc.AcceptStates = append(doc.AcceptStates, int(s))
	}
	for _, t := range n.Transitions() {
		rec := TransitionRecord{
			FromState: int(t.From),
			Symbol:    t.Symbol.String(),
		}
		for _, to := range t.To {
			rec.ToStates = append(rec.ToStates, int(to))
		}
		doc.TransitionTable = append(doc.TransitionTable, rec)
	}
	return doc
}

// Decode reconstructs an automaton from its document form, applying the full
// invariant checks of manual construction.
func Decode(doc *Document) (*automaton.NFA, error) {
	states := make([]automaton.State, 0, len(doc.States))
	for _, s := range doc.States {
		states = append(states, automaton.State(s))
	}
	alphabet := make([]automaton.Symbol, 0, len(doc.Alphabet))
	for _, raw := range doc.Alphabet {
		sym, err := parseSymbol(raw)
		if err != nil {
			return nil, err
		}
		if sym == automaton.Epsilon {
			return nil, fmt.Errorf("epsilon in alphabet: %w", automaton.ErrInvalidSymbol)
		}
		alphabet = append(alphabet, sym)
	}
	accepts := make([]automaton.State, 0, len(doc.AcceptStates))
	for _, s := range doc.AcceptStates {
		accepts = append(accepts, automaton.State(s))
	}

	n, err := automaton.New(states, alphabet, automaton.State(doc.StartState), accepts)
	if err != nil {
		return nil, fmt.Errorf("decode automaton: %w", err)
	}

	for _, rec := range doc.TransitionTable {
		sym, err := parseSymbol(rec.Symbol)
		if err != nil {
			return nil, err
		}
		targets := make([]automaton.State, 0, len(rec.ToStates))
		for _, to := range rec.ToStates {
			targets = append(targets, automaton.State(to))
		}
		if sym == automaton.Epsilon {
			err = n.AddEpsilon(automaton.State(rec.FromState), targets...)
		} else {
			err = n.AddTransition(automaton.State(rec.FromState), sym, targets...)
		}
		if err != nil {
			return nil, fmt.Errorf("decode transition from %d on %q: %w", rec.FromState, rec.Symbol, err)
		}
	}

	return n, nil
}

func parseSymbol(raw string) (automaton.Symbol, error) {
	if raw == epsilonGlyph {
		return automaton.Epsilon, nil
	}
	r, size := utf8.DecodeRuneInString(raw)
	if size == 0 || size != len(raw) || r == utf8.RuneError {
		return 0, fmt.Errorf("symbol %q is not a single character: %w", raw, automaton.ErrInvalidSymbol)
	}
	return automaton.Symbol(r), nil
}

// MarshalJSON encodes an automaton as indented JSON.
func MarshalJSON(n *automaton.NFA) ([]byte, error) {
	return json.MarshalIndent(Encode(n), "", "  ")
}

// UnmarshalJSON decodes an automaton from JSON.
func UnmarshalJSON(data []byte) (*automaton.NFA, error) {
	var doc Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parse json: %w", err)
	}
	return Decode(&doc)
}

// MarshalYAML encodes an automaton as YAML.
func MarshalYAML(n *automaton.NFA) ([]byte, error) {
	return yaml.Marshal(Encode(n))
}

// UnmarshalYAML decodes an automaton from YAML.
func UnmarshalYAML(data []byte) (*automaton.NFA, error) {
	var doc Document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parse yaml: %w", err)
	}
	return Decode(&doc)
}

// WriteFile persists an automaton, choosing the format by file extension
// (.yaml/.yml for YAML, anything else JSON).
func WriteFile(path string, n *automaton.NFA) error {
	var (
		data []byte
		err  error
	)
	if isYAML(path) {
		data, err = MarshalYAML(n)
	} else {
		data, err = MarshalJSON(n)
	}
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}

// ReadFile loads an automaton, choosing the format by file extension.
func ReadFile(path string) (*automaton.NFA, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read automaton file: %w", err)
	}
	if isYAML(path) {
		return UnmarshalYAML(data)
	}
	return UnmarshalJSON(data)
}

func isYAML(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return true
	}
	return false
}
