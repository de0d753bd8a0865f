// Package shape defines the vector-shape layer types registered by the
// plugin: rectangle, ellipse, line, polygon, and star.
//
// Each layer type is a process-wide constant binding a property schema list,
// a default-bag constructor, a canvas render function, an SVG render
// function, and a validator. Rendering is a pure function of (properties,
// bounds): layer types never retain or mutate their inputs, so render calls
// are safe to issue concurrently.
//
// Validation is advisory. Render functions resolve every property through
// typed accessors with defaults and never reject an invalid bag; an
// out-of-range value renders with its coerced or default replacement.
package shape

import (
	"fmt"
	"sort"
	"sync"

	"github.com/fogleman/gg"

	"github.com/genart-dev/plugin-shapes/pkg/property"
)

// TypeID values for the registered layer types. IDs are namespaced with the
// "shapes:" prefix so hosts can recognize shape layers by prefix check.
const (
	TypeIDPrefix  = "shapes:"
	TypeIDRect    = "shapes:rect"
	TypeIDEllipse = "shapes:ellipse"
	TypeIDLine    = "shapes:line"
	TypeIDPolygon = "shapes:polygon"
	TypeIDStar    = "shapes:star"
)

// Bounds is the axis-aligned rectangle a layer is rendered into, supplied by
// the host per render call together with rotation/scale hints. Layer types
// read bounds but never persist them.
type Bounds struct {
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`

	// Rotation and scale hints applied by the host compositor.
	Rotation float64 `json:"rotation,omitempty"`
	ScaleX   float64 `json:"scaleX,omitempty"`
	ScaleY   float64 `json:"scaleY,omitempty"`
}

// LayerType is the contract every shape kind implements for the host.
type LayerType interface {
	// TypeID returns the unique, namespaced identifier (e.g. "shapes:rect").
	TypeID() string
	// DisplayName returns the human-readable name shown in the host UI.
	DisplayName() string
	// Icon returns the icon tag the host resolves for this type.
	Icon() string
	// Category returns the host-side grouping (always "shapes" here).
	Category() string
	// PropertyEditorID names the editor panel the host opens for this type.
	PropertyEditorID() string
	// Properties returns the immutable property schema list.
	Properties() []property.Schema
	// CreateDefault builds a bag containing exactly the declared schema
	// keys, each set to its default.
	CreateDefault() property.Bag
	// Render draws the shape onto dc within b. The context's paint state is
	// modified; the path is consumed by the final fill/stroke.
	Render(dc *gg.Context, props property.Bag, b Bounds)
	// RenderSVG returns a single self-closing SVG element for the shape.
	RenderSVG(props property.Bag, b Bounds) string
	// Validate checks props against the declared constraints. It returns
	// nil when valid, otherwise a non-empty list of field-scoped errors.
	// The input bag is never mutated.
	Validate(props property.Bag) []property.Error
}

// Registry stores layer types by TypeID, providing lookup and duplication
// safeguards for plugin registration.
type Registry struct {
	mu    sync.RWMutex
	types map[string]LayerType
}

// NewRegistry creates an empty registry instance.
func NewRegistry() *Registry {
	return &Registry{types: make(map[string]LayerType)}
}

// Register adds a layer type by its TypeID. Duplicate IDs return an error.
func (r *Registry) Register(t LayerType) error {
	if t == nil {
		return fmt.Errorf("shape: layer type is required")
	}
	id := t.TypeID()
	if id == "" {
		return fmt.Errorf("shape: layer type id is required")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.types[id]; exists {
		return fmt.Errorf("shape: layer type %q already registered", id)
	}

	r.types[id] = t
	return nil
}

// MustRegister panics on registration failure. Useful for init-time wiring.
func (r *Registry) MustRegister(t LayerType) {
	if err := r.Register(t); err != nil {
		panic(err)
	}
}

// Get retrieves a layer type by TypeID, or nil if not registered.
func (r *Registry) Get(id string) LayerType {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.types[id]
}

// Lookup resolves a shape kind to its layer type, accepting both the bare
// kind ("star") and the namespaced TypeID ("shapes:star"). Tool inputs use
// the bare form.
func (r *Registry) Lookup(kind string) LayerType {
	if t := r.Get(kind); t != nil {
		return t
	}
	return r.Get(TypeIDPrefix + kind)
}

// Has reports whether a layer type with the given TypeID is registered.
func (r *Registry) Has(id string) bool {
	return r.Get(id) != nil
}

// List returns the registered TypeIDs, sorted.
func (r *Registry) List() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	ids := make([]string, 0, len(r.types))
	for id := range r.types {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// All returns the registered layer types, sorted by TypeID.
func (r *Registry) All() []LayerType {
	ids := r.List()

	r.mu.RLock()
	defer r.mu.RUnlock()

	types := make([]LayerType, len(ids))
	for i, id := range ids {
		types[i] = r.types[id]
	}
	return types
}

// defaultRegistry holds the five built-in shape types.
var defaultRegistry = func() *Registry {
	r := NewRegistry()
	r.MustRegister(Rect)
	r.MustRegister(Ellipse)
	r.MustRegister(Line)
	r.MustRegister(Polygon)
	r.MustRegister(Star)
	return r
}()

// Default returns the registry pre-populated with the built-in shape types.
func Default() *Registry {
	return defaultRegistry
}
