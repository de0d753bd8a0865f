// Package errors provides structured error types for the shapes plugin.
//
// This package defines error codes and types that enable:
//   - Consistent error handling across CLI and tool handlers
//   - Machine-readable error codes for programmatic handling
//   - User-friendly error messages
//   - Error wrapping with context preservation
//
// # Error Codes
//
// Error codes follow the tool-handler error taxonomy:
//   - UNKNOWN_SHAPE: input names a shape kind outside the registered set
//   - LAYER_NOT_FOUND: referenced layer id absent from the layer stack
//   - WRONG_LAYER_TYPE: layer exists but is not of the expected shape kind
//   - EMPTY_UPDATE: an update call supplies no recognized fields
//   - INVALID_*: input validation failures
//   - STORE_ERROR / INTERNAL_ERROR: backend and unexpected failures
//
// # Usage
//
//	err := errors.New(errors.ErrCodeUnknownShape, "unknown shape kind: %s", kind)
//	if errors.Is(err, errors.ErrCodeUnknownShape) {
//	    // Handle as a tool error result
//	}
//
//	// Wrap existing errors
//	err := errors.Wrap(errors.ErrCodeStore, origErr, "adding layer %s", id)
package errors

import (
	"errors"
	"fmt"
)

// Code represents a machine-readable error code.
type Code string

// Error codes for different error categories.
const (
	// Tool-handler errors
	ErrCodeUnknownShape   Code = "UNKNOWN_SHAPE"
	ErrCodeLayerNotFound  Code = "LAYER_NOT_FOUND"
	ErrCodeWrongLayerType Code = "WRONG_LAYER_TYPE"
	ErrCodeEmptyUpdate    Code = "EMPTY_UPDATE"

	// Input validation errors
	ErrCodeInvalidInput    Code = "INVALID_INPUT"
	ErrCodeInvalidProperty Code = "INVALID_PROPERTY"
	ErrCodeInvalidFormat   Code = "INVALID_FORMAT"
	ErrCodeInvalidConfig   Code = "INVALID_CONFIG"

	// Resource not found errors
	ErrCodeNotFound     Code = "NOT_FOUND"
	ErrCodeFileNotFound Code = "FILE_NOT_FOUND"

	// Backend errors
	ErrCodeStore Code = "STORE_ERROR"

	// Internal errors
	ErrCodeInternal    Code = "INTERNAL_ERROR"
	ErrCodeUnsupported Code = "UNSUPPORTED"
)

// Error is a structured error with a code and optional cause.
type Error struct {
	Code    Code   // Machine-readable error code
	Message string // Human-readable message
	Cause   error  // Underlying error (optional)
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap returns the underlying cause for errors.Is/As compatibility.
func (e *Error) Unwrap() error {
	return e.Cause
}

// New creates a new Error with the given code and formatted message.
func New(code Code, format string, args ...any) *Error {
	return &Error{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
	}
}

// Wrap creates a new Error wrapping an existing error.
func Wrap(code Code, cause error, format string, args ...any) *Error {
	return &Error{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Cause:   cause,
	}
}

// Is reports whether err has the given error code.
// It unwraps the error chain looking for an *Error with a matching code.
func Is(err error, code Code) bool {
	var e *Error
	if errors.As(err, &e) {
		return e.Code == code
	}
	return false
}

// GetCode extracts the error code from an error, if available.
// Returns empty string if the error is not an *Error.
func GetCode(err error) Code {
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	return ""
}

// UserMessage returns a user-friendly message for the error.
// For *Error types, returns the message without the code prefix.
// For other errors, returns the error string as-is.
func UserMessage(err error) string {
	var e *Error
	if errors.As(err, &e) {
		return e.Message
	}
	return err.Error()
}
