// Package render composes layer stacks into full documents.
//
// # Overview
//
// This package contains the rendering pipeline that transforms a stack of
// shape layers into visual outputs. It provides:
//
//   - SVG documents via [SVGDocument]
//   - PNG raster output via [PNGDocument]
//
// Both renderers walk the stack bottom to top, skip hidden layers, and
// apply each layer's bounds transform (rotation and scale about the bounds
// center) before delegating the actual geometry to the layer type.
//
// # Usage
//
//	svg, err := render.SVGDocument(shape.Default(), layers,
//	    render.WithSize(1024, 768),
//	    render.WithBackground("#ffffff"),
//	)
package render

import (
	"bytes"
	"context"
	"fmt"
	"image/png"
	"strconv"
	"time"

	"github.com/fogleman/gg"

	"github.com/genart-dev/plugin-shapes/pkg/errors"
	"github.com/genart-dev/plugin-shapes/pkg/layer"
	"github.com/genart-dev/plugin-shapes/pkg/observability"
	"github.com/genart-dev/plugin-shapes/pkg/shape"
)

const (
	defaultWidth  = 800
	defaultHeight = 600
)

// Option configures document rendering.
type Option func(*renderer)

type renderer struct {
	width      int
	height     int
	background string
}

// WithSize sets the document dimensions in pixels.
func WithSize(w, h int) Option {
	return func(r *renderer) {
		if w > 0 {
			r.width = w
		}
		if h > 0 {
			r.height = h
		}
	}
}

// WithBackground sets a background fill color (hex). Without it the
// document is transparent.
func WithBackground(color string) Option {
	return func(r *renderer) { r.background = color }
}

func newRenderer(opts ...Option) renderer {
	r := renderer{width: defaultWidth, height: defaultHeight}
	for _, opt := range opts {
		opt(&r)
	}
	return r
}

// SVGDocument renders the layer stack as a standalone SVG document.
// Layers are emitted in stack order so later layers paint on top. Hidden
// layers are skipped. Layers whose type is not registered produce an
// [errors.ErrCodeUnknownShape] error.
func SVGDocument(ctx context.Context, reg *shape.Registry, layers []*layer.Layer, opts ...Option) (_ []byte, err error) {
	r := newRenderer(opts...)

	start := time.Now()
	observability.Render().OnRenderStart(ctx, "svg", len(layers))
	defer func() {
		observability.Render().OnRenderComplete(ctx, "svg", time.Since(start), err)
	}()

	var buf bytes.Buffer
	fmt.Fprintf(&buf, `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %d %d" width="%d" height="%d">`+"\n",
		r.width, r.height, r.width, r.height)
	if r.background != "" {
		fmt.Fprintf(&buf, `<rect x="0" y="0" width="%d" height="%d" fill="%s"/>`+"\n",
			r.width, r.height, r.background)
	}

	for _, l := range layers {
		if !l.Visible {
			continue
		}
		if !l.IsShape() {
			continue
		}
		lt := reg.Lookup(l.Type)
		if lt == nil {
			return nil, errors.New(errors.ErrCodeUnknownShape, "unknown layer type %q", l.Type)
		}

		elem := lt.RenderSVG(l.Properties, l.Bounds)
		if tf := svgTransform(l.Bounds); tf != "" {
			fmt.Fprintf(&buf, `<g transform="%s">`+"\n", tf)
			buf.WriteString(elem)
			buf.WriteString("\n</g>\n")
		} else {
			buf.WriteString(elem)
			buf.WriteString("\n")
		}
	}

	buf.WriteString("</svg>\n")
	return buf.Bytes(), nil
}

// PNGDocument renders the layer stack as a PNG image. The same stacking,
// visibility, and transform rules apply as for [SVGDocument].
func PNGDocument(ctx context.Context, reg *shape.Registry, layers []*layer.Layer, opts ...Option) (_ []byte, err error) {
	r := newRenderer(opts...)

	start := time.Now()
	observability.Render().OnRenderStart(ctx, "png", len(layers))
	defer func() {
		observability.Render().OnRenderComplete(ctx, "png", time.Since(start), err)
	}()

	dc := gg.NewContext(r.width, r.height)
	if r.background != "" {
		dc.SetHexColor(r.background)
		dc.Clear()
	}

	for _, l := range layers {
		if !l.Visible {
			continue
		}
		if !l.IsShape() {
			continue
		}
		lt := reg.Lookup(l.Type)
		if lt == nil {
			return nil, errors.New(errors.ErrCodeUnknownShape, "unknown layer type %q", l.Type)
		}

		dc.Push()
		applyTransform(dc, l.Bounds)
		lt.Render(dc, l.Properties, l.Bounds)
		dc.Pop()
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, dc.Image()); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "encoding png")
	}
	return buf.Bytes(), nil
}

// applyTransform rotates and scales the drawing context about the bounds
// center. Identity transforms are a no-op.
func applyTransform(dc *gg.Context, b shape.Bounds) {
	cx := b.X + b.Width/2
	cy := b.Y + b.Height/2
	if b.Rotation != 0 {
		dc.RotateAbout(gg.Radians(b.Rotation), cx, cy)
	}
	sx, sy := scaleFactors(b)
	if sx != 1 || sy != 1 {
		dc.ScaleAbout(sx, sy, cx, cy)
	}
}

// svgTransform returns the transform attribute value for the bounds, or ""
// when the transform is identity.
func svgTransform(b shape.Bounds) string {
	sx, sy := scaleFactors(b)
	if b.Rotation == 0 && sx == 1 && sy == 1 {
		return ""
	}

	cx := b.X + b.Width/2
	cy := b.Y + b.Height/2

	var buf bytes.Buffer
	fmt.Fprintf(&buf, "translate(%s %s)", fnum(cx), fnum(cy))
	if b.Rotation != 0 {
		fmt.Fprintf(&buf, " rotate(%s)", fnum(b.Rotation))
	}
	if sx != 1 || sy != 1 {
		fmt.Fprintf(&buf, " scale(%s %s)", fnum(sx), fnum(sy))
	}
	fmt.Fprintf(&buf, " translate(%s %s)", fnum(-cx), fnum(-cy))
	return buf.String()
}

// scaleFactors treats a zero scale as 1 so layers created before scaling
// existed still render.
func scaleFactors(b shape.Bounds) (float64, float64) {
	sx, sy := b.ScaleX, b.ScaleY
	if sx == 0 {
		sx = 1
	}
	if sy == 0 {
		sy = 1
	}
	return sx, sy
}

func fnum(v float64) string {
	s := strconv.FormatFloat(v, 'f', 2, 64)
	for len(s) > 0 && s[len(s)-1] == '0' {
		s = s[:len(s)-1]
	}
	if len(s) > 0 && s[len(s)-1] == '.' {
		s = s[:len(s)-1]
	}
	return s
}
