// Package plugin exposes the shape layer types and their tools over the
// Model Context Protocol (MCP).
//
// # Overview
//
// The plugin bundles the registered layer types with five tools that let an
// MCP client build up a layer stack:
//
//   - add_shape: create a shape layer from a kind plus optional overrides
//   - set_shape_style: patch fill/stroke properties on a shape layer
//   - set_polygon: patch sides/rotation on a polygon layer
//   - add_line: create a line layer from two endpoints
//   - list_shapes: enumerate the shape catalog
//
// Handlers are thin. Each performs at most one store write and emits one
// change event on success. Failures (unknown shape kind, missing layer,
// wrong layer kind, empty update set) come back as error-flagged tool
// results; nothing is retried or rolled back.
//
// # Usage
//
//	p := plugin.New(shape.Default(), store)
//	srv := p.MCPServer()
//	server.ServeStdio(srv)
package plugin

import (
	"github.com/mark3labs/mcp-go/server"

	"github.com/genart-dev/plugin-shapes/pkg/buildinfo"
	"github.com/genart-dev/plugin-shapes/pkg/layer"
	"github.com/genart-dev/plugin-shapes/pkg/shape"
)

// Name is the plugin identifier announced to MCP clients.
const Name = "plugin-shapes"

// Tool names exposed by the plugin.
const (
	ToolAddShape      = "add_shape"
	ToolSetShapeStyle = "set_shape_style"
	ToolSetPolygon    = "set_polygon"
	ToolAddLine       = "add_line"
	ToolListShapes    = "list_shapes"
)

// Descriptor summarizes what the plugin registers with a host.
type Descriptor struct {
	Name       string   `json:"name"`
	Version    string   `json:"version"`
	LayerTypes []string `json:"layerTypes"`
	Tools      []string `json:"tools"`
}

// Plugin binds the shape registry and a layer store to the MCP tool surface.
type Plugin struct {
	registry *shape.Registry
	store    layer.Store
}

// New builds a plugin over the given registry and store.
func New(reg *shape.Registry, store layer.Store) *Plugin {
	return &Plugin{registry: reg, store: store}
}

// Descriptor returns the plugin's registration summary.
func (p *Plugin) Descriptor() Descriptor {
	return Descriptor{
		Name:       Name,
		Version:    buildinfo.Version,
		LayerTypes: p.registry.List(),
		Tools: []string{
			ToolAddShape,
			ToolSetShapeStyle,
			ToolSetPolygon,
			ToolAddLine,
			ToolListShapes,
		},
	}
}

// Registry returns the shape registry backing the plugin.
func (p *Plugin) Registry() *shape.Registry { return p.registry }

// Store returns the layer store backing the plugin.
func (p *Plugin) Store() layer.Store { return p.store }

// MCPServer builds an MCP server with all five tools registered. The caller
// decides the transport (stdio or SSE).
func (p *Plugin) MCPServer() *server.MCPServer {
	srv := server.NewMCPServer(Name, buildinfo.Version)
	p.registerShapeTools(srv)
	return srv
}
