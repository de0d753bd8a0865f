// Package layer provides the layer record and the layer-stack store
// abstraction the shape tools mutate.
//
// The store is owned by the host in a full deployment; this package supplies
// the accessor contract plus several backends so the plugin can run
// standalone:
//   - memory: in-memory stack for development and testing
//   - file: JSON files in a directory for CLI usage
//   - redis: Redis-backed store for multi-instance deployments
//   - mongo: MongoDB-backed store for document persistence
//
// All backends serialize access themselves; callers perform single writes
// and never coordinate multi-step mutations.
package layer

import (
	"context"
	"errors"
	"math/rand"
	"strconv"
	"time"

	"github.com/genart-dev/plugin-shapes/pkg/property"
	"github.com/genart-dev/plugin-shapes/pkg/shape"
)

// Sentinel errors for store operations.
var (
	// ErrNotFound is returned when a layer id is absent from the stack.
	ErrNotFound = errors.New("layer not found")
)

// Layer is a single entry in the host's layer stack.
type Layer struct {
	ID         string       `json:"id" bson:"_id"`
	Type       string       `json:"type" bson:"type"`
	Name       string       `json:"name" bson:"name"`
	Properties property.Bag `json:"properties" bson:"properties"`
	Bounds     shape.Bounds `json:"bounds" bson:"bounds"`
	Visible    bool         `json:"visible" bson:"visible"`
	CreatedAt  time.Time    `json:"createdAt" bson:"created_at"`
	UpdatedAt  time.Time    `json:"updatedAt" bson:"updated_at"`
}

// IsShape reports whether the layer belongs to the shape category, judged by
// its type id prefix.
func (l *Layer) IsShape() bool {
	return len(l.Type) >= len(shape.TypeIDPrefix) && l.Type[:len(shape.TypeIDPrefix)] == shape.TypeIDPrefix
}

// Clone returns a copy of the layer with an independent property bag.
func (l *Layer) Clone() *Layer {
	clone := *l
	clone.Properties = l.Properties.Clone()
	return &clone
}

const idAlphabet = "abcdefghijklmnopqrstuvwxyz0123456789"

// NewID generates a layer identifier: a fixed prefix, the current time in
// base-36 milliseconds, and a short random suffix. Uniqueness is
// probabilistic, not guaranteed.
func NewID() string {
	suffix := make([]byte, 4)
	for i := range suffix {
		suffix[i] = idAlphabet[rand.Intn(len(idAlphabet))]
	}
	return "layer-" + strconv.FormatInt(time.Now().UnixMilli(), 36) + "-" + string(suffix)
}

// Store is the layer-stack accessor the tool handlers mutate. Get returns
// ErrNotFound for unknown ids. UpdateProperties merges the patch onto the
// stored bag, overriding only the keys present in the patch.
type Store interface {
	// Get retrieves a layer by id.
	Get(ctx context.Context, id string) (*Layer, error)

	// Add appends a layer to the top of the stack.
	Add(ctx context.Context, l *Layer) error

	// UpdateProperties merges patch into the layer's property bag and bumps
	// its updated timestamp.
	UpdateProperties(ctx context.Context, id string, patch property.Bag) error

	// List returns the layers in stack order, bottom first.
	List(ctx context.Context) ([]*Layer, error)

	// Remove deletes a layer from the stack.
	Remove(ctx context.Context, id string) error

	// Close releases backend resources.
	Close() error
}
