package layer

import (
	"context"
	"sync"
	"time"

	"github.com/genart-dev/plugin-shapes/pkg/property"
)

// MemoryStore is an in-memory layer stack for development and testing.
type MemoryStore struct {
	mu     sync.RWMutex
	layers []*Layer
	index  map[string]int
}

// NewMemoryStore creates an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{index: make(map[string]int)}
}

// Get retrieves a layer by id. The returned layer is a copy; mutating it
// does not affect the stack.
func (s *MemoryStore) Get(ctx context.Context, id string) (*Layer, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	i, ok := s.index[id]
	if !ok {
		return nil, ErrNotFound
	}
	return s.layers[i].Clone(), nil
}

// Add appends a layer to the top of the stack.
func (s *MemoryStore) Add(ctx context.Context, l *Layer) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.index[l.ID] = len(s.layers)
	s.layers = append(s.layers, l.Clone())
	return nil
}

// UpdateProperties merges patch into the layer's bag, overriding only the
// patch keys.
func (s *MemoryStore) UpdateProperties(ctx context.Context, id string, patch property.Bag) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	i, ok := s.index[id]
	if !ok {
		return ErrNotFound
	}
	l := s.layers[i]
	if l.Properties == nil {
		l.Properties = property.Bag{}
	}
	l.Properties.Merge(patch)
	l.UpdatedAt = time.Now()
	return nil
}

// List returns the layers bottom-first, as copies.
func (s *MemoryStore) List(ctx context.Context) ([]*Layer, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]*Layer, len(s.layers))
	for i, l := range s.layers {
		out[i] = l.Clone()
	}
	return out, nil
}

// Remove deletes a layer and reindexes the stack.
func (s *MemoryStore) Remove(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	i, ok := s.index[id]
	if !ok {
		return ErrNotFound
	}
	s.layers = append(s.layers[:i], s.layers[i+1:]...)
	delete(s.index, id)
	for j := i; j < len(s.layers); j++ {
		s.index[s.layers[j].ID] = j
	}
	return nil
}

// Close does nothing for the memory store.
func (s *MemoryStore) Close() error {
	return nil
}

// Ensure MemoryStore implements Store.
var _ Store = (*MemoryStore)(nil)
