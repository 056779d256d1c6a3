// Package memory provides an in-memory Store, suitable for tests and for
// serving without external infrastructure.
package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/nfakit/nfakit/pkg/automaton"
)

// Store implements ports.Store with a mutex-guarded map. Automata are deep
// copied on the way in and out, so callers can never alias stored structure.
type Store struct {
	mu       sync.RWMutex
	automata map[string]*automaton.NFA
}

// New creates an empty in-memory store.
func New() *Store {
	return &Store{
		automata: make(map[string]*automaton.NFA),
	}
}

// Save stores a deep copy under name, replacing any previous version.
func (s *Store) Save(_ context.Context, name string, n *automaton.NFA) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.automata[name] = n.Clone()
	return nil
}

// Load returns a deep copy of the automaton stored under name.
func (s *Store) Load(_ context.Context, name string) (*automaton.NFA, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	n, ok := s.automata[name]
	if !ok {
		return nil, automaton.ErrNotFound
	}
	return n.Clone(), nil
}

// Delete removes the automaton stored under name.
func (s *Store) Delete(_ context.Context, name string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.automata, name)
	return nil
}

// List returns the stored names in ascending order.
func (s *Store) List(_ context.Context) ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	names := make([]string, 0, len(s.automata))
	for name := range s.automata {
		names = append(names, name)
	}
	sort.Strings(names)
	return names, nil
}
