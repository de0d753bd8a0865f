package property

import "fmt"

// Error is a single field-scoped validation failure. Validators return a
// non-empty slice of these, or nil when the bag is valid; they never mutate
// their input. Validation is advisory: render paths coerce out-of-range
// values to defaults instead of rejecting them.
type Error struct {
	Property string `json:"property"`
	Message  string `json:"message"`
}

// Error implements the error interface.
func (e Error) Error() string {
	return fmt.Sprintf("%s: %s", e.Property, e.Message)
}

// Errorf builds a field-scoped validation error with a formatted message.
func Errorf(property, format string, args ...any) Error {
	return Error{Property: property, Message: fmt.Sprintf(format, args...)}
}
