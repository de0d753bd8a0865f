// Package property defines the schema and value model for layer properties.
//
// Every layer type declares an immutable list of Schema entries at load
// time. Layer instances carry a Bag, a loose key-value map whose entries are
// read through typed accessors that fall back to a caller-supplied default
// when a key is absent or holds a value of the wrong dynamic type. Keys never
// present in the bag therefore resolve to schema defaults at use-site rather
// than at construction time.
package property

// Type enumerates the value kinds a property schema can declare.
type Type string

const (
	TypeColor   Type = "color"
	TypeBoolean Type = "boolean"
	TypeNumber  Type = "number"
	TypeString  Type = "string"
	TypeSelect  Type = "select"
)

// Option is one entry of a select property's enumerated values.
type Option struct {
	Value string `json:"value"`
	Label string `json:"label"`
}

// Schema describes one configurable attribute of a layer type. Instances are
// defined once at plugin load and never mutated afterwards.
type Schema struct {
	Key     string   `json:"key"`
	Label   string   `json:"label"`
	Type    Type     `json:"type"`
	Default any      `json:"default,omitempty"`
	Min     *float64 `json:"min,omitempty"`
	Max     *float64 `json:"max,omitempty"`
	Step    *float64 `json:"step,omitempty"`
	Options []Option `json:"options,omitempty"`
	Group   string   `json:"group,omitempty"`
}

// Float returns a pointer to v, for use in Schema range fields.
func Float(v float64) *float64 {
	return &v
}

// Defaults builds the default property bag for a schema list: exactly the
// declared keys, each set to its schema default.
func Defaults(schemas []Schema) Bag {
	bag := make(Bag, len(schemas))
	for _, s := range schemas {
		bag[s.Key] = s.Default
	}
	return bag
}

// Keys returns the declared keys of a schema list, in declaration order.
func Keys(schemas []Schema) []string {
	keys := make([]string, len(schemas))
	for i, s := range schemas {
		keys[i] = s.Key
	}
	return keys
}
