// Package observability provides hooks for metrics, tracing, and logging.
//
// This package enables optional instrumentation without adding hard
// dependencies on specific observability backends. Hosts can register hooks
// at startup to receive events about layer-stack mutations, tool
// invocations, and render passes.
//
// # Architecture
//
// The package uses a simple hooks pattern:
//   - Define hook interfaces for different event categories
//   - Provide no-op default implementations
//   - Allow registration of custom implementations at startup
//
// This approach:
//   - Avoids import cycles (hooks are registered by main, not by libraries)
//   - Keeps the core library dependency-free from observability frameworks
//   - Allows different backends (OpenTelemetry, Prometheus, host-native, etc.)
//
// # Usage
//
// Register hooks at application startup:
//
//	func main() {
//	    observability.SetStackHooks(&myStackHooks{})
//	    observability.SetToolHooks(&myToolHooks{})
//	    // ... run application
//	}
//
// Libraries call hooks to emit events:
//
//	observability.Tools().OnToolStart(ctx, name)
//	// ... run the handler ...
//	observability.Tools().OnToolComplete(ctx, name, duration, err)
package observability

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
)

// ChangeEvent describes a single mutation of the layer stack. One event is
// emitted per successful tool invocation, after the store write completes.
type ChangeEvent struct {
	ID      string    // unique event id
	LayerID string    // affected layer
	Kind    string    // "added", "updated", or "removed"
	At      time.Time // emission time
}

// NewChangeEvent builds a change event for the given layer and mutation kind.
func NewChangeEvent(layerID, kind string) ChangeEvent {
	return ChangeEvent{
		ID:      uuid.NewString(),
		LayerID: layerID,
		Kind:    kind,
		At:      time.Now(),
	}
}

// =============================================================================
// Stack Hooks
// =============================================================================

// StackHooks receives change events from layer-stack mutations.
type StackHooks interface {
	// OnLayerAdded records a layer appended to the stack.
	OnLayerAdded(ctx context.Context, ev ChangeEvent)

	// OnLayerUpdated records a property update on an existing layer.
	OnLayerUpdated(ctx context.Context, ev ChangeEvent)

	// OnLayerRemoved records a layer removed from the stack.
	OnLayerRemoved(ctx context.Context, ev ChangeEvent)
}

// =============================================================================
// Tool Hooks
// =============================================================================

// ToolHooks receives events from tool handler invocations.
type ToolHooks interface {
	// OnToolStart records the beginning of a tool invocation.
	OnToolStart(ctx context.Context, name string)

	// OnToolComplete records the end of a tool invocation.
	OnToolComplete(ctx context.Context, name string, duration time.Duration, err error)
}

// =============================================================================
// Render Hooks
// =============================================================================

// RenderHooks receives events from document render passes.
type RenderHooks interface {
	// OnRenderStart records the beginning of a render pass.
	OnRenderStart(ctx context.Context, format string, layerCount int)

	// OnRenderComplete records the end of a render pass.
	OnRenderComplete(ctx context.Context, format string, duration time.Duration, err error)
}

// =============================================================================
// No-op Implementations
// =============================================================================

// NoopStackHooks is a no-op implementation of StackHooks.
type NoopStackHooks struct{}

func (NoopStackHooks) OnLayerAdded(context.Context, ChangeEvent)   {}
func (NoopStackHooks) OnLayerUpdated(context.Context, ChangeEvent) {}
func (NoopStackHooks) OnLayerRemoved(context.Context, ChangeEvent) {}

// NoopToolHooks is a no-op implementation of ToolHooks.
type NoopToolHooks struct{}

func (NoopToolHooks) OnToolStart(context.Context, string)                         {}
func (NoopToolHooks) OnToolComplete(context.Context, string, time.Duration, error) {}

// NoopRenderHooks is a no-op implementation of RenderHooks.
type NoopRenderHooks struct{}

func (NoopRenderHooks) OnRenderStart(context.Context, string, int)                  {}
func (NoopRenderHooks) OnRenderComplete(context.Context, string, time.Duration, error) {}

// =============================================================================
// Global Hook Registry
// =============================================================================

var (
	stackHooks  StackHooks  = NoopStackHooks{}
	toolHooks   ToolHooks   = NoopToolHooks{}
	renderHooks RenderHooks = NoopRenderHooks{}
	hooksMu     sync.RWMutex
)

// SetStackHooks registers custom stack hooks.
// This should be called once at application startup before any tool runs.
func SetStackHooks(h StackHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		stackHooks = h
	}
}

// SetToolHooks registers custom tool hooks.
// This should be called once at application startup before any tool runs.
func SetToolHooks(h ToolHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		toolHooks = h
	}
}

// SetRenderHooks registers custom render hooks.
// This should be called once at application startup before any render pass.
func SetRenderHooks(h RenderHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		renderHooks = h
	}
}

// Stack returns the registered stack hooks.
func Stack() StackHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return stackHooks
}

// Tools returns the registered tool hooks.
func Tools() ToolHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return toolHooks
}

// Render returns the registered render hooks.
func Render() RenderHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return renderHooks
}

// Reset restores all hooks to their no-op defaults.
// This is primarily useful for testing.
func Reset() {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	stackHooks = NoopStackHooks{}
	toolHooks = NoopToolHooks{}
	renderHooks = NoopRenderHooks{}
}
