package ports

import (
	"context"

	"github.com/nfakit/nfakit/pkg/automaton"
)

// Store defines the interface for persisting named automata.
type Store interface {
	// Save persists the automaton under the given name, replacing any
	// previous version.
	Save(ctx context.Context, name string, n *automaton.NFA) error

	// Load retrieves the automaton stored under name.
	// Returns automaton.ErrNotFound if the name does not exist.
	Load(ctx context.Context, name string) (*automaton.NFA, error)

	// Delete removes the automaton stored under name.
	Delete(ctx context.Context, name string) error

	// List returns the stored names.
	List(ctx context.Context) ([]string, error)
}
