package layer

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/genart-dev/plugin-shapes/pkg/property"
)

// FileStore persists the layer stack as a single JSON document on disk,
// for CLI usage where no external backend is running. Every mutation writes
// the whole stack; the store is meant for small documents, not bulk data.
type FileStore struct {
	mu   sync.Mutex
	path string
}

// NewFileStore creates a file-backed store at path. The parent directory is
// created if it doesn't exist.
func NewFileStore(path string) (*FileStore, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, err
	}
	return &FileStore{path: path}, nil
}

// Path returns the backing file path.
func (s *FileStore) Path() string {
	return s.path
}

func (s *FileStore) load() ([]*Layer, error) {
	data, err := os.ReadFile(s.path)
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	var layers []*Layer
	if err := json.Unmarshal(data, &layers); err != nil {
		return nil, err
	}
	return layers, nil
}

func (s *FileStore) save(layers []*Layer) error {
	data, err := json.MarshalIndent(layers, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(s.path, data, 0644)
}

// Get retrieves a layer by id.
func (s *FileStore) Get(ctx context.Context, id string) (*Layer, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	layers, err := s.load()
	if err != nil {
		return nil, err
	}
	for _, l := range layers {
		if l.ID == id {
			return l, nil
		}
	}
	return nil, ErrNotFound
}

// Add appends a layer to the top of the stack.
func (s *FileStore) Add(ctx context.Context, l *Layer) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	layers, err := s.load()
	if err != nil {
		return err
	}
	return s.save(append(layers, l))
}

// UpdateProperties merges patch into the layer's property bag.
func (s *FileStore) UpdateProperties(ctx context.Context, id string, patch property.Bag) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	layers, err := s.load()
	if err != nil {
		return err
	}
	for _, l := range layers {
		if l.ID != id {
			continue
		}
		if l.Properties == nil {
			l.Properties = property.Bag{}
		}
		l.Properties.Merge(patch)
		l.UpdatedAt = time.Now()
		return s.save(layers)
	}
	return ErrNotFound
}

// List returns the layers bottom-first.
func (s *FileStore) List(ctx context.Context) ([]*Layer, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.load()
}

// Remove deletes a layer from the stack.
func (s *FileStore) Remove(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	layers, err := s.load()
	if err != nil {
		return err
	}
	for i, l := range layers {
		if l.ID == id {
			return s.save(append(layers[:i], layers[i+1:]...))
		}
	}
	return ErrNotFound
}

// Close does nothing for the file store.
func (s *FileStore) Close() error {
	return nil
}

// Ensure FileStore implements Store.
var _ Store = (*FileStore)(nil)
