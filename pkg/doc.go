// Package pkg provides the core libraries for the plugin-shapes layer plugin.
//
// # Overview
//
// plugin-shapes registers vector shape layer types with a design-app host
// and exposes tools for building a layer stack over the Model Context
// Protocol. The pkg directory is organized into:
//
//  1. [shape] - The five layer types (rect, ellipse, line, polygon, star)
//  2. [property] - Property schemas and the per-layer property bag
//  3. [geometry] - Pure vertex generators for polygons and stars
//  4. [layer] - The layer record and store backends (memory, file, Redis, MongoDB)
//  5. [render] - Document composition to SVG and PNG
//  6. [plugin] - MCP server wiring and the five tool handlers
//  7. [observability] - Hooks for stack, tool, and render events
//  8. [errors] - Structured errors with codes
//  9. [buildinfo] - Build-time version information
//
// # Architecture
//
// The typical data flow:
//
//	MCP client (add_shape, add_line, ...)
//	         ↓
//	    [plugin] tool handlers (resolve kind, merge defaults)
//	         ↓
//	    [layer] store (single write per tool call)
//	         ↓
//	    [render] document composition
//	         ↓
//	    SVG/PNG output
//
// # Quick Start
//
// Create a layer and render the stack:
//
//	import (
//	    "context"
//	    "github.com/genart-dev/plugin-shapes/pkg/layer"
//	    "github.com/genart-dev/plugin-shapes/pkg/render"
//	    "github.com/genart-dev/plugin-shapes/pkg/shape"
//	)
//
//	store := layer.NewMemoryStore()
//	store.Add(ctx, &layer.Layer{
//	    ID:         layer.NewID(),
//	    Type:       shape.TypeIDStar,
//	    Properties: shape.Star.CreateDefault(),
//	    Bounds:     shape.Bounds{Width: 200, Height: 200},
//	    Visible:    true,
//	})
//
//	layers, _ := store.List(ctx)
//	svg, _ := render.SVGDocument(ctx, shape.Default(), layers)
//
// # Testing
//
// Run tests:
//
//	go test ./pkg/...          # All tests
//	go test ./pkg/shape/...    # Specific package
//	go test -run Example       # Examples only
//
// [shape]: https://pkg.go.dev/github.com/genart-dev/plugin-shapes/pkg/shape
// [property]: https://pkg.go.dev/github.com/genart-dev/plugin-shapes/pkg/property
// [geometry]: https://pkg.go.dev/github.com/genart-dev/plugin-shapes/pkg/geometry
// [layer]: https://pkg.go.dev/github.com/genart-dev/plugin-shapes/pkg/layer
// [render]: https://pkg.go.dev/github.com/genart-dev/plugin-shapes/pkg/render
// [plugin]: https://pkg.go.dev/github.com/genart-dev/plugin-shapes/pkg/plugin
// [observability]: https://pkg.go.dev/github.com/genart-dev/plugin-shapes/pkg/observability
// [errors]: https://pkg.go.dev/github.com/genart-dev/plugin-shapes/pkg/errors
// [buildinfo]: https://pkg.go.dev/github.com/genart-dev/plugin-shapes/pkg/buildinfo
package pkg
