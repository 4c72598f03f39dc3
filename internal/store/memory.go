package store

import (
	"sync"

	"github.com/mesh-intelligence/storyboard/pkg/types"
)

// MemoryStore keeps the last-persisted state in memory. It exists so the
// repository can be exercised without touching a filesystem, and for embedding
// the tracker in-process.
type MemoryStore struct {
	mu    sync.Mutex
	state types.State
}

// NewMemoryStore returns a memory store holding an empty state.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{state: types.NewState()}
}

// Load returns a copy of the last-persisted state.
func (s *MemoryStore) Load() (types.State, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.Clone(), nil
}

// Persist replaces the held state with a copy of the given snapshot.
func (s *MemoryStore) Persist(state types.State) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state = state.Clone()
	return nil
}
