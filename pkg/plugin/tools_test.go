package plugin

import (
	"context"
	"strings"
	"testing"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/genart-dev/plugin-shapes/pkg/layer"
	"github.com/genart-dev/plugin-shapes/pkg/property"
	"github.com/genart-dev/plugin-shapes/pkg/shape"
)

func newTestPlugin() (*Plugin, *layer.MemoryStore) {
	store := layer.NewMemoryStore()
	return New(shape.Default(), store), store
}

func callReq(args map[string]any) mcp.CallToolRequest {
	var req mcp.CallToolRequest
	req.Params.Arguments = args
	return req
}

func resultText(t *testing.T, res *mcp.CallToolResult) string {
	t.Helper()
	if len(res.Content) == 0 {
		t.Fatal("result has no content")
	}
	tc, ok := res.Content[0].(mcp.TextContent)
	if !ok {
		t.Fatalf("content[0] is %T, want TextContent", res.Content[0])
	}
	return tc.Text
}

func TestAddShapeStar(t *testing.T) {
	p, store := newTestPlugin()
	ctx := context.Background()

	res, err := p.handleAddShape(ctx, callReq(map[string]any{
		"shape":  "star",
		"points": 8.0,
	}))
	if err != nil {
		t.Fatalf("handleAddShape() error = %v", err)
	}
	if res.IsError {
		t.Fatalf("unexpected error result: %s", resultText(t, res))
	}

	layers, _ := store.List(ctx)
	if len(layers) != 1 {
		t.Fatalf("len(layers) = %d, want 1", len(layers))
	}
	l := layers[0]
	if l.Type != shape.TypeIDStar {
		t.Errorf("type = %q, want %q", l.Type, shape.TypeIDStar)
	}
	if got := l.Properties.Number("points", 0); got != 8 {
		t.Errorf("points = %v, want 8", got)
	}
	// Untouched properties keep their defaults.
	if got := l.Properties.Number("innerRadius", 0); got != 0.4 {
		t.Errorf("innerRadius = %v, want 0.4", got)
	}
	if !l.Visible {
		t.Error("new layer should be visible")
	}
	if !strings.HasPrefix(l.ID, "layer-") {
		t.Errorf("id = %q, want layer- prefix", l.ID)
	}
}

func TestAddShapeUnknownKind(t *testing.T) {
	p, store := newTestPlugin()
	ctx := context.Background()

	res, err := p.handleAddShape(ctx, callReq(map[string]any{"shape": "hexaflop"}))
	if err != nil {
		t.Fatalf("handleAddShape() error = %v", err)
	}
	if !res.IsError {
		t.Fatal("expected error-flagged result for unknown kind")
	}
	if !strings.Contains(resultText(t, res), "hexaflop") {
		t.Errorf("error text should name the kind, got %q", resultText(t, res))
	}

	layers, _ := store.List(ctx)
	if len(layers) != 0 {
		t.Errorf("stack mutated on error: %d layers", len(layers))
	}
}

func TestAddShapeBoundsAndStyle(t *testing.T) {
	p, store := newTestPlugin()
	ctx := context.Background()

	res, err := p.handleAddShape(ctx, callReq(map[string]any{
		"shape":     "rect",
		"x":         10.0,
		"y":         20.0,
		"width":     300.0,
		"height":    150.0,
		"name":      "Hero panel",
		"fillColor": "#ff0000",
	}))
	if err != nil || res.IsError {
		t.Fatalf("handleAddShape() = %v, %v", res, err)
	}

	layers, _ := store.List(ctx)
	l := layers[0]
	if l.Bounds.X != 10 || l.Bounds.Y != 20 || l.Bounds.Width != 300 || l.Bounds.Height != 150 {
		t.Errorf("bounds = %+v", l.Bounds)
	}
	if l.Name != "Hero panel" {
		t.Errorf("name = %q", l.Name)
	}
	if got := l.Properties.Color("fillColor", ""); got != "#ff0000" {
		t.Errorf("fillColor = %q, want #ff0000", got)
	}
	// Bounds keys must not leak into the property bag.
	if l.Properties.Has("x") || l.Properties.Has("width") {
		t.Error("bounds keys leaked into properties")
	}
}

func TestAddShapeMissingKind(t *testing.T) {
	p, _ := newTestPlugin()

	res, err := p.handleAddShape(context.Background(), callReq(map[string]any{}))
	if err != nil {
		t.Fatalf("handleAddShape() error = %v", err)
	}
	if !res.IsError {
		t.Error("expected error result when shape is missing")
	}
}

func seedLayer(t *testing.T, store layer.Store, typeID string) string {
	t.Helper()
	lt := shape.Default().Lookup(typeID)
	var props property.Bag
	if lt != nil {
		props = lt.CreateDefault()
	} else {
		props = property.Bag{}
	}
	l := &layer.Layer{
		ID:         layer.NewID(),
		Type:       typeID,
		Name:       typeID,
		Properties: props,
		Visible:    true,
	}
	if err := store.Add(context.Background(), l); err != nil {
		t.Fatalf("seed: %v", err)
	}
	return l.ID
}

func TestSetShapeStyle(t *testing.T) {
	p, store := newTestPlugin()
	ctx := context.Background()
	id := seedLayer(t, store, shape.TypeIDRect)

	res, err := p.handleSetShapeStyle(ctx, callReq(map[string]any{
		"layerId":       id,
		"fillColor":     "#00ff00",
		"strokeEnabled": true,
	}))
	if err != nil || res.IsError {
		t.Fatalf("handleSetShapeStyle() = %v, %v", res, err)
	}

	l, _ := store.Get(ctx, id)
	if got := l.Properties.Color("fillColor", ""); got != "#00ff00" {
		t.Errorf("fillColor = %q", got)
	}
	if !l.Properties.Bool("strokeEnabled", false) {
		t.Error("strokeEnabled should be true")
	}
	// Unpatched keys keep their values.
	if got := l.Properties.Number("cornerRadius", -1); got != 0 {
		t.Errorf("cornerRadius = %v, want 0", got)
	}
}

func TestSetShapeStyleErrors(t *testing.T) {
	p, store := newTestPlugin()
	ctx := context.Background()
	rectID := seedLayer(t, store, shape.TypeIDRect)
	textID := seedLayer(t, store, "text")

	cases := []struct {
		name string
		args map[string]any
	}{
		{"missing_id", map[string]any{"fillColor": "#fff"}},
		{"unknown_layer", map[string]any{"layerId": "layer-nope-0000", "fillColor": "#fff"}},
		{"non_shape_layer", map[string]any{"layerId": textID, "fillColor": "#fff"}},
		{"empty_update", map[string]any{"layerId": rectID}},
		{"unrecognized_fields_only", map[string]any{"layerId": rectID, "wobble": 3.0}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			res, err := p.handleSetShapeStyle(ctx, callReq(tc.args))
			if err != nil {
				t.Fatalf("handler error = %v", err)
			}
			if !res.IsError {
				t.Error("expected error-flagged result")
			}
		})
	}
}

func TestSetPolygon(t *testing.T) {
	p, store := newTestPlugin()
	ctx := context.Background()
	id := seedLayer(t, store, shape.TypeIDPolygon)

	res, err := p.handleSetPolygon(ctx, callReq(map[string]any{
		"layerId": id,
		"sides":   8.0,
	}))
	if err != nil || res.IsError {
		t.Fatalf("handleSetPolygon() = %v, %v", res, err)
	}

	l, _ := store.Get(ctx, id)
	if got := l.Properties.Number("sides", 0); got != 8 {
		t.Errorf("sides = %v, want 8", got)
	}
	if got := l.Properties.Number("rotation", -1); got != 0 {
		t.Errorf("rotation = %v, want 0 (untouched)", got)
	}
}

func TestSetPolygonRejectsOtherShapes(t *testing.T) {
	p, store := newTestPlugin()
	ctx := context.Background()
	id := seedLayer(t, store, shape.TypeIDRect)

	res, err := p.handleSetPolygon(ctx, callReq(map[string]any{
		"layerId": id,
		"sides":   8.0,
	}))
	if err != nil {
		t.Fatalf("handler error = %v", err)
	}
	if !res.IsError {
		t.Error("expected error result for non-polygon layer")
	}
}

func TestAddLine(t *testing.T) {
	p, store := newTestPlugin()
	ctx := context.Background()

	res, err := p.handleAddLine(ctx, callReq(map[string]any{
		"x1": 10.0, "y1": 20.0, "x2": 40.0, "y2": 60.0,
		"strokeColor": "#123456",
	}))
	if err != nil || res.IsError {
		t.Fatalf("handleAddLine() = %v, %v", res, err)
	}

	layers, _ := store.List(ctx)
	l := layers[0]
	if l.Type != shape.TypeIDLine {
		t.Errorf("type = %q", l.Type)
	}
	if l.Bounds.X != 10 || l.Bounds.Y != 20 || l.Bounds.Width != 30 || l.Bounds.Height != 40 {
		t.Errorf("bounds = %+v, want {10 20 30 40}", l.Bounds)
	}
	if got := l.Properties.Color("strokeColor", ""); got != "#123456" {
		t.Errorf("strokeColor = %q", got)
	}
	if got := l.Properties.Number("strokeWidth", 0); got != 2 {
		t.Errorf("strokeWidth = %v, want default 2", got)
	}
}

func TestAddLineReversedDirection(t *testing.T) {
	p, store := newTestPlugin()
	ctx := context.Background()

	res, err := p.handleAddLine(ctx, callReq(map[string]any{
		"x1": 40.0, "y1": 60.0, "x2": 10.0, "y2": 20.0,
	}))
	if err != nil || res.IsError {
		t.Fatalf("handleAddLine() = %v, %v", res, err)
	}

	layers, _ := store.List(ctx)
	b := layers[0].Bounds
	// The first point stays the origin; negative extents encode direction.
	if b.X != 40 || b.Y != 60 || b.Width != -30 || b.Height != -40 {
		t.Errorf("bounds = %+v, want {40 60 -30 -40}", b)
	}
}

func TestAddLineMissingEndpoint(t *testing.T) {
	p, store := newTestPlugin()
	ctx := context.Background()

	res, err := p.handleAddLine(ctx, callReq(map[string]any{
		"x1": 1.0, "y1": 2.0, "x2": 3.0,
	}))
	if err != nil {
		t.Fatalf("handler error = %v", err)
	}
	if !res.IsError {
		t.Error("expected error result for missing y2")
	}
	layers, _ := store.List(ctx)
	if len(layers) != 0 {
		t.Error("stack mutated on error")
	}
}

func TestListShapes(t *testing.T) {
	p, _ := newTestPlugin()

	res, err := p.handleListShapes(context.Background(), callReq(nil))
	if err != nil || res.IsError {
		t.Fatalf("handleListShapes() = %v, %v", res, err)
	}
	text := resultText(t, res)

	for _, want := range []string{
		shape.TypeIDRect, shape.TypeIDEllipse, shape.TypeIDLine,
		shape.TypeIDPolygon, shape.TypeIDStar,
		"cornerRadius", "innerRadius", "dashPattern",
	} {
		if !strings.Contains(text, want) {
			t.Errorf("listing missing %q:\n%s", want, text)
		}
	}
}

func TestDescriptor(t *testing.T) {
	p, _ := newTestPlugin()
	d := p.Descriptor()

	if d.Name != Name {
		t.Errorf("name = %q", d.Name)
	}
	if len(d.LayerTypes) != 5 {
		t.Errorf("len(layerTypes) = %d, want 5", len(d.LayerTypes))
	}
	if len(d.Tools) != 5 {
		t.Errorf("len(tools) = %d, want 5", len(d.Tools))
	}
}

func TestMCPServerBuilds(t *testing.T) {
	p, _ := newTestPlugin()
	if srv := p.MCPServer(); srv == nil {
		t.Fatal("MCPServer() returned nil")
	}
}
