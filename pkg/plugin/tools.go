package plugin

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/genart-dev/plugin-shapes/pkg/layer"
	"github.com/genart-dev/plugin-shapes/pkg/observability"
	"github.com/genart-dev/plugin-shapes/pkg/property"
	"github.com/genart-dev/plugin-shapes/pkg/shape"
)

func (p *Plugin) registerShapeTools(srv *server.MCPServer) {
	srv.AddTool(mcp.NewTool(ToolAddShape,
		mcp.WithDescription("Add a shape layer (rect, ellipse, line, polygon, star) to the layer stack"),
		mcp.WithString("shape", mcp.Description("Shape kind, e.g. rect, ellipse, polygon, star"), mcp.Required()),
		mcp.WithNumber("x", mcp.Description("Bounds X position (default 0)")),
		mcp.WithNumber("y", mcp.Description("Bounds Y position (default 0)")),
		mcp.WithNumber("width", mcp.Description("Bounds width (default 100)")),
		mcp.WithNumber("height", mcp.Description("Bounds height (default 100)")),
		mcp.WithString("name", mcp.Description("Layer name (defaults to the shape's display name)")),
		mcp.WithString("fillColor", mcp.Description("Fill color hex (optional)")),
		mcp.WithString("strokeColor", mcp.Description("Stroke color hex (optional)")),
		mcp.WithBoolean("fillEnabled", mcp.Description("Enable/disable fill (optional)")),
		mcp.WithBoolean("strokeEnabled", mcp.Description("Enable/disable stroke (optional)")),
		mcp.WithNumber("strokeWidth", mcp.Description("Stroke width (optional)")),
		mcp.WithNumber("cornerRadius", mcp.Description("Rect only: corner radius (optional)")),
		mcp.WithNumber("sides", mcp.Description("Polygon only: side count (optional)")),
		mcp.WithNumber("points", mcp.Description("Star only: point count (optional)")),
		mcp.WithNumber("innerRadius", mcp.Description("Star only: inner radius ratio (optional)")),
		mcp.WithNumber("rotation", mcp.Description("Polygon/star only: rotation in degrees (optional)")),
	), p.instrument(ToolAddShape, p.handleAddShape))

	srv.AddTool(mcp.NewTool(ToolSetShapeStyle,
		mcp.WithDescription("Update fill/stroke style properties on an existing shape layer"),
		mcp.WithString("layerId", mcp.Description("Layer ID to update"), mcp.Required()),
		mcp.WithBoolean("fillEnabled", mcp.Description("Enable/disable fill")),
		mcp.WithString("fillColor", mcp.Description("Fill color hex")),
		mcp.WithBoolean("strokeEnabled", mcp.Description("Enable/disable stroke")),
		mcp.WithString("strokeColor", mcp.Description("Stroke color hex")),
		mcp.WithNumber("strokeWidth", mcp.Description("Stroke width")),
	), p.instrument(ToolSetShapeStyle, p.handleSetShapeStyle))

	srv.AddTool(mcp.NewTool(ToolSetPolygon,
		mcp.WithDescription("Update sides/rotation on a polygon layer"),
		mcp.WithString("layerId", mcp.Description("Polygon layer ID"), mcp.Required()),
		mcp.WithNumber("sides", mcp.Description("Side count, 3 to 100")),
		mcp.WithNumber("rotation", mcp.Description("Rotation in degrees, 0 to 360")),
	), p.instrument(ToolSetPolygon, p.handleSetPolygon))

	srv.AddTool(mcp.NewTool(ToolAddLine,
		mcp.WithDescription("Add a line layer from two endpoints"),
		mcp.WithNumber("x1", mcp.Description("First endpoint X"), mcp.Required()),
		mcp.WithNumber("y1", mcp.Description("First endpoint Y"), mcp.Required()),
		mcp.WithNumber("x2", mcp.Description("Second endpoint X"), mcp.Required()),
		mcp.WithNumber("y2", mcp.Description("Second endpoint Y"), mcp.Required()),
		mcp.WithString("strokeColor", mcp.Description("Stroke color hex (optional)")),
		mcp.WithNumber("strokeWidth", mcp.Description("Stroke width (optional)")),
		mcp.WithString("lineCap", mcp.Description("Line cap: butt, round, or square (optional)")),
		mcp.WithString("dashPattern", mcp.Description("Comma-separated dash lengths (optional)")),
	), p.instrument(ToolAddLine, p.handleAddLine))

	srv.AddTool(mcp.NewTool(ToolListShapes,
		mcp.WithDescription("List all registered shape kinds and their property keys"),
	), p.instrument(ToolListShapes, p.handleListShapes))
}

// instrument wraps a handler with tool hooks.
func (p *Plugin) instrument(name string, fn server.ToolHandlerFunc) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		start := time.Now()
		observability.Tools().OnToolStart(ctx, name)
		res, err := fn(ctx, req)
		observability.Tools().OnToolComplete(ctx, name, time.Since(start), err)
		return res, err
	}
}

func (p *Plugin) handleAddShape(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := req.GetArguments()

	kind, _ := args["shape"].(string)
	if kind == "" {
		return mcp.NewToolResultError("shape is required"), nil
	}
	lt := p.registry.Lookup(kind)
	if lt == nil {
		return mcp.NewToolResultError(fmt.Sprintf("unknown shape kind %q", kind)), nil
	}

	// Defaults first, then only the keys the caller explicitly sent.
	props := lt.CreateDefault()
	for _, key := range property.Keys(lt.Properties()) {
		if v, ok := args[key]; ok {
			props[key] = v
		}
	}

	b := shape.Bounds{X: 0, Y: 0, Width: 100, Height: 100}
	if v, ok := numArg(args, "x"); ok {
		b.X = v
	}
	if v, ok := numArg(args, "y"); ok {
		b.Y = v
	}
	if v, ok := numArg(args, "width"); ok {
		b.Width = v
	}
	if v, ok := numArg(args, "height"); ok {
		b.Height = v
	}

	name, _ := args["name"].(string)
	if name == "" {
		name = lt.DisplayName()
	}

	now := time.Now()
	l := &layer.Layer{
		ID:         layer.NewID(),
		Type:       lt.TypeID(),
		Name:       name,
		Properties: props,
		Bounds:     b,
		Visible:    true,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	if err := p.store.Add(ctx, l); err != nil {
		return nil, err
	}
	observability.Stack().OnLayerAdded(ctx, observability.NewChangeEvent(l.ID, "added"))

	return jsonResult(l)
}

// styleKeys are the fill/stroke properties set_shape_style recognizes.
var styleKeys = []string{"fillEnabled", "fillColor", "strokeEnabled", "strokeColor", "strokeWidth"}

func (p *Plugin) handleSetShapeStyle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := req.GetArguments()

	id, _ := args["layerId"].(string)
	if id == "" {
		return mcp.NewToolResultError("layerId is required"), nil
	}
	l, err := p.store.Get(ctx, id)
	if err != nil {
		return layerError(id, err)
	}
	if !l.IsShape() {
		return mcp.NewToolResultError(fmt.Sprintf("layer %q is not a shape layer", id)), nil
	}

	patch := property.Bag{}
	for _, key := range styleKeys {
		if v, ok := args[key]; ok {
			patch[key] = v
		}
	}
	if len(patch) == 0 {
		return mcp.NewToolResultError("no style properties provided"), nil
	}

	if err := p.store.UpdateProperties(ctx, id, patch); err != nil {
		return layerError(id, err)
	}
	observability.Stack().OnLayerUpdated(ctx, observability.NewChangeEvent(id, "updated"))

	return mcp.NewToolResultText(fmt.Sprintf("Layer %s style updated", id)), nil
}

func (p *Plugin) handleSetPolygon(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := req.GetArguments()

	id, _ := args["layerId"].(string)
	if id == "" {
		return mcp.NewToolResultError("layerId is required"), nil
	}
	l, err := p.store.Get(ctx, id)
	if err != nil {
		return layerError(id, err)
	}
	if l.Type != shape.TypeIDPolygon {
		return mcp.NewToolResultError(fmt.Sprintf("layer %q is not a polygon layer", id)), nil
	}

	patch := property.Bag{}
	if v, ok := numArg(args, "sides"); ok {
		patch["sides"] = v
	}
	if v, ok := numArg(args, "rotation"); ok {
		patch["rotation"] = v
	}
	if len(patch) == 0 {
		return mcp.NewToolResultError("no polygon properties provided"), nil
	}

	if err := p.store.UpdateProperties(ctx, id, patch); err != nil {
		return layerError(id, err)
	}
	observability.Stack().OnLayerUpdated(ctx, observability.NewChangeEvent(id, "updated"))

	return mcp.NewToolResultText(fmt.Sprintf("Layer %s polygon updated", id)), nil
}

func (p *Plugin) handleAddLine(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := req.GetArguments()

	coords := make(map[string]float64, 4)
	for _, key := range []string{"x1", "y1", "x2", "y2"} {
		v, ok := numArg(args, key)
		if !ok {
			return mcp.NewToolResultError(fmt.Sprintf("%s is required", key)), nil
		}
		coords[key] = v
	}

	lt := p.registry.Get(shape.TypeIDLine)
	props := lt.CreateDefault()
	for _, key := range []string{"strokeColor", "strokeWidth", "lineCap", "dashPattern"} {
		if v, ok := args[key]; ok {
			props[key] = v
		}
	}

	// The first endpoint is the origin. Width/height keep their sign so the
	// segment direction survives the bounds encoding.
	b := shape.Bounds{
		X:      coords["x1"],
		Y:      coords["y1"],
		Width:  coords["x2"] - coords["x1"],
		Height: coords["y2"] - coords["y1"],
	}

	now := time.Now()
	l := &layer.Layer{
		ID:         layer.NewID(),
		Type:       lt.TypeID(),
		Name:       lt.DisplayName(),
		Properties: props,
		Bounds:     b,
		Visible:    true,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	if err := p.store.Add(ctx, l); err != nil {
		return nil, err
	}
	observability.Stack().OnLayerAdded(ctx, observability.NewChangeEvent(l.ID, "added"))

	return jsonResult(l)
}

func (p *Plugin) handleListShapes(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	var sb strings.Builder
	for _, id := range p.registry.List() {
		lt := p.registry.Get(id)
		keys := property.Keys(lt.Properties())
		fmt.Fprintf(&sb, "%s (%s): %s\n", id, lt.DisplayName(), strings.Join(keys, ", "))
	}
	return mcp.NewToolResultText(sb.String()), nil
}

// layerError maps store errors to tool results. Not-found is an error-flagged
// result; anything else is a real handler failure.
func layerError(id string, err error) (*mcp.CallToolResult, error) {
	if errors.Is(err, layer.ErrNotFound) {
		return mcp.NewToolResultError(fmt.Sprintf("layer %q not found", id)), nil
	}
	return nil, err
}

func jsonResult(v any) (*mcp.CallToolResult, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, err
	}
	return mcp.NewToolResultText(string(data)), nil
}

func numArg(args map[string]any, key string) (float64, bool) {
	switch v := args[key].(type) {
	case float64:
		return v, true
	case int:
		return float64(v), true
	case json.Number:
		f, err := v.Float64()
		return f, err == nil
	}
	return 0, false
}
