package property

import "encoding/json"

// Bag holds the current property values of a single layer instance, keyed by
// schema key. Values are dynamically typed because bags travel through JSON
// tool inputs; the typed accessors coerce on read and fall back to the given
// default when a key is missing or holds an incompatible value.
type Bag map[string]any

// Clone returns a shallow copy of the bag. The zero-value nil bag clones to
// an empty, writable bag.
func (b Bag) Clone() Bag {
	clone := make(Bag, len(b))
	for k, v := range b {
		clone[k] = v
	}
	return clone
}

// Merge copies every entry of patch into the bag, overriding existing keys.
// Keys absent from patch are left untouched.
func (b Bag) Merge(patch Bag) {
	for k, v := range patch {
		b[k] = v
	}
}

// Number resolves key as a float64, accepting any numeric dynamic type that
// JSON decoding or Go callers may have produced.
func (b Bag) Number(key string, def float64) float64 {
	v, ok := b[key]
	if !ok {
		return def
	}
	if n, ok := asNumber(v); ok {
		return n
	}
	return def
}

// Bool resolves key as a boolean.
func (b Bag) Bool(key string, def bool) bool {
	if v, ok := b[key].(bool); ok {
		return v
	}
	return def
}

// String resolves key as a string.
func (b Bag) String(key string, def string) string {
	if v, ok := b[key].(string); ok {
		return v
	}
	return def
}

// Color resolves key as a color string. Colors are stored as strings
// (e.g. "#ff8800"), so this is String under a schema-aligned name.
func (b Bag) Color(key string, def string) string {
	return b.String(key, def)
}

// Has reports whether key is present in the bag, regardless of its type.
func (b Bag) Has(key string) bool {
	_, ok := b[key]
	return ok
}

// NumberOK resolves key as a float64 and reports whether the key was present
// and numeric. Validators use this to distinguish "absent" from "wrong type".
func (b Bag) NumberOK(key string) (float64, bool) {
	v, ok := b[key]
	if !ok {
		return 0, false
	}
	return asNumber(v)
}

func asNumber(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	case json.Number:
		f, err := n.Float64()
		return f, err == nil
	}
	return 0, false
}
