package shape

import (
	"fmt"

	"github.com/fogleman/gg"

	"github.com/genart-dev/plugin-shapes/pkg/geometry"
	"github.com/genart-dev/plugin-shapes/pkg/property"
)

const (
	keySides    = "sides"
	keyRotation = "rotation"

	defaultSides = 6.0
	minSides     = 3
	maxSides     = 100
)

// Polygon is the regular-polygon layer type.
var Polygon LayerType = polygonType{}

type polygonType struct{}

func (polygonType) TypeID() string           { return TypeIDPolygon }
func (polygonType) DisplayName() string      { return "Polygon" }
func (polygonType) Icon() string             { return "pentagon" }
func (polygonType) Category() string         { return "shapes" }
func (polygonType) PropertyEditorID() string { return "shape-properties" }

func (polygonType) Properties() []property.Schema {
	return append(commonSchemas(),
		property.Schema{Key: keySides, Label: "Sides", Type: property.TypeNumber, Default: defaultSides,
			Min: property.Float(minSides), Max: property.Float(maxSides), Step: property.Float(1), Group: groupShape},
		property.Schema{Key: keyRotation, Label: "Rotation", Type: property.TypeNumber, Default: 0.0,
			Min: property.Float(0), Max: property.Float(360), Step: property.Float(1), Group: groupShape},
	)
}

func (t polygonType) CreateDefault() property.Bag {
	return property.Defaults(t.Properties())
}

// Render centers the polygon in the bounds with a radius of half the
// smaller dimension, so unequal bounds never distort the shape.
func (polygonType) Render(dc *gg.Context, props property.Bag, b Bounds) {
	tracePath(dc, polygonVertices(props, b))
	applyPaint(dc, props)
}

func (polygonType) RenderSVG(props property.Bag, b Bounds) string {
	return fmt.Sprintf("<polygon points=%q%s/>",
		svgPointList(polygonVertices(props, b)), svgPaintAttrs(props))
}

func (polygonType) Validate(props property.Bag) []property.Error {
	if v, ok := props.NumberOK(keySides); !ok || v < minSides || v > maxSides {
		return []property.Error{
			property.Errorf(keySides, "must be a number between %d and %d", minSides, maxSides),
		}
	}
	return nil
}

func polygonVertices(props property.Bag, b Bounds) []geometry.Point {
	sides := int(props.Number(keySides, defaultSides))
	if sides < minSides {
		sides = minSides
	}
	rotation := props.Number(keyRotation, 0)
	cx, cy, r := inscribedCircle(b)
	return geometry.PolygonPoints(cx, cy, r, sides, rotation)
}

// inscribedCircle returns the center of the bounds and half of the smaller
// dimension, the radius at which a centered shape still fits the bounds.
func inscribedCircle(b Bounds) (cx, cy, r float64) {
	cx = b.X + b.Width/2
	cy = b.Y + b.Height/2
	r = b.Width / 2
	if b.Height < b.Width {
		r = b.Height / 2
	}
	return cx, cy, r
}

// tracePath builds a closed path through the vertices on the context.
func tracePath(dc *gg.Context, pts []geometry.Point) {
	for i, p := range pts {
		if i == 0 {
			dc.MoveTo(p.X, p.Y)
		} else {
			dc.LineTo(p.X, p.Y)
		}
	}
	dc.ClosePath()
}
