package shape

import (
	"fmt"

	"github.com/fogleman/gg"

	"github.com/genart-dev/plugin-shapes/pkg/property"
)

// Ellipse is the ellipse layer type. It carries no shape-specific
// properties beyond the common fill/stroke set.
var Ellipse LayerType = ellipseType{}

type ellipseType struct{}

func (ellipseType) TypeID() string           { return TypeIDEllipse }
func (ellipseType) DisplayName() string      { return "Ellipse" }
func (ellipseType) Icon() string             { return "circle" }
func (ellipseType) Category() string         { return "shapes" }
func (ellipseType) PropertyEditorID() string { return "shape-properties" }

func (ellipseType) Properties() []property.Schema {
	return commonSchemas()
}

func (t ellipseType) CreateDefault() property.Bag {
	return property.Defaults(t.Properties())
}

// Render draws an ellipse inscribed in the bounds: centered at the bounds'
// midpoint with radii of half the width and half the height.
func (ellipseType) Render(dc *gg.Context, props property.Bag, b Bounds) {
	dc.DrawEllipse(b.X+b.Width/2, b.Y+b.Height/2, b.Width/2, b.Height/2)
	applyPaint(dc, props)
}

func (ellipseType) RenderSVG(props property.Bag, b Bounds) string {
	return fmt.Sprintf("<ellipse cx=%q cy=%q rx=%q ry=%q%s/>",
		num(b.X+b.Width/2), num(b.Y+b.Height/2),
		num(b.Width/2), num(b.Height/2),
		svgPaintAttrs(props))
}

// Validate always succeeds; the ellipse has no shape-specific constraints.
func (ellipseType) Validate(props property.Bag) []property.Error {
	return nil
}
