package observability

import (
	"context"
	"testing"
	"time"
)

func TestNoopHooksDoNotPanic(t *testing.T) {
	ctx := context.Background()
	ev := NewChangeEvent("layer-abc-0001", "added")

	// Stack hooks
	s := NoopStackHooks{}
	s.OnLayerAdded(ctx, ev)
	s.OnLayerUpdated(ctx, ev)
	s.OnLayerRemoved(ctx, ev)

	// Tool hooks
	tl := NoopToolHooks{}
	tl.OnToolStart(ctx, "add_shape")
	tl.OnToolComplete(ctx, "add_shape", time.Second, nil)

	// Render hooks
	r := NoopRenderHooks{}
	r.OnRenderStart(ctx, "svg", 3)
	r.OnRenderComplete(ctx, "svg", time.Second, nil)
}

func TestNewChangeEvent(t *testing.T) {
	a := NewChangeEvent("layer-x", "updated")
	b := NewChangeEvent("layer-x", "updated")

	if a.ID == "" {
		t.Error("event ID should not be empty")
	}
	if a.ID == b.ID {
		t.Error("event IDs should be unique")
	}
	if a.LayerID != "layer-x" {
		t.Errorf("LayerID = %q, want %q", a.LayerID, "layer-x")
	}
	if a.Kind != "updated" {
		t.Errorf("Kind = %q, want %q", a.Kind, "updated")
	}
	if a.At.IsZero() {
		t.Error("At should be set")
	}
}

func TestGlobalHooksRegistry(t *testing.T) {
	// Reset to known state
	Reset()

	// Verify defaults are noop
	if _, ok := Stack().(NoopStackHooks); !ok {
		t.Error("Stack() should return NoopStackHooks by default")
	}
	if _, ok := Tools().(NoopToolHooks); !ok {
		t.Error("Tools() should return NoopToolHooks by default")
	}
	if _, ok := Render().(NoopRenderHooks); !ok {
		t.Error("Render() should return NoopRenderHooks by default")
	}

	// Set custom hooks
	customStack := &testStackHooks{}
	SetStackHooks(customStack)
	if Stack() != customStack {
		t.Error("SetStackHooks should set custom hooks")
	}

	customTools := &testToolHooks{}
	SetToolHooks(customTools)
	if Tools() != customTools {
		t.Error("SetToolHooks should set custom hooks")
	}

	customRender := &testRenderHooks{}
	SetRenderHooks(customRender)
	if Render() != customRender {
		t.Error("SetRenderHooks should set custom hooks")
	}

	// Reset and verify
	Reset()
	if _, ok := Stack().(NoopStackHooks); !ok {
		t.Error("Reset() should restore NoopStackHooks")
	}
}

func TestSetNilHooksIsIgnored(t *testing.T) {
	Reset()

	custom := &testStackHooks{}
	SetStackHooks(custom)

	// Setting nil should be ignored
	SetStackHooks(nil)

	if Stack() != custom {
		t.Error("SetStackHooks(nil) should be ignored")
	}

	Reset()
}

// Test implementations
type testStackHooks struct{ NoopStackHooks }
type testToolHooks struct{ NoopToolHooks }
type testRenderHooks struct{ NoopRenderHooks }
