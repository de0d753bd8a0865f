package shape

import (
	"fmt"

	"github.com/fogleman/gg"

	"github.com/genart-dev/plugin-shapes/pkg/geometry"
	"github.com/genart-dev/plugin-shapes/pkg/property"
)

const (
	keyPoints      = "points"
	keyInnerRadius = "innerRadius"

	defaultStarPoints  = 5.0
	minStarPoints      = 3
	maxStarPoints      = 50
	defaultInnerRadius = 0.4
	minInnerRadius     = 0.05
	maxInnerRadius     = 0.95
)

// Star is the star layer type. innerRadius is a ratio of the outer radius,
// not an absolute length.
var Star LayerType = starType{}

type starType struct{}

func (starType) TypeID() string           { return TypeIDStar }
func (starType) DisplayName() string      { return "Star" }
func (starType) Icon() string             { return "star" }
func (starType) Category() string         { return "shapes" }
func (starType) PropertyEditorID() string { return "shape-properties" }

func (starType) Properties() []property.Schema {
	return append(commonSchemas(),
		property.Schema{Key: keyPoints, Label: "Points", Type: property.TypeNumber, Default: defaultStarPoints,
			Min: property.Float(minStarPoints), Max: property.Float(maxStarPoints), Step: property.Float(1), Group: groupShape},
		property.Schema{Key: keyInnerRadius, Label: "Inner Radius", Type: property.TypeNumber, Default: defaultInnerRadius,
			Min: property.Float(minInnerRadius), Max: property.Float(maxInnerRadius), Step: property.Float(0.05), Group: groupShape},
		property.Schema{Key: keyRotation, Label: "Rotation", Type: property.TypeNumber, Default: 0.0,
			Min: property.Float(0), Max: property.Float(360), Step: property.Float(1), Group: groupShape},
	)
}

func (t starType) CreateDefault() property.Bag {
	return property.Defaults(t.Properties())
}

// Render centers the star in the bounds with an outer radius of half the
// smaller dimension.
func (starType) Render(dc *gg.Context, props property.Bag, b Bounds) {
	tracePath(dc, starVertices(props, b))
	applyPaint(dc, props)
}

func (starType) RenderSVG(props property.Bag, b Bounds) string {
	return fmt.Sprintf("<polygon points=%q%s/>",
		svgPointList(starVertices(props, b)), svgPaintAttrs(props))
}

// Validate checks both constraints independently; an out-of-range points
// count and an out-of-range inner radius are reported together.
func (starType) Validate(props property.Bag) []property.Error {
	var errs []property.Error
	if v, ok := props.NumberOK(keyPoints); !ok || v < minStarPoints || v > maxStarPoints {
		errs = append(errs, property.Errorf(keyPoints,
			"must be a number between %d and %d", minStarPoints, maxStarPoints))
	}
	if v, ok := props.NumberOK(keyInnerRadius); !ok || v < minInnerRadius || v > maxInnerRadius {
		errs = append(errs, property.Errorf(keyInnerRadius,
			"must be a number between %v and %v", minInnerRadius, maxInnerRadius))
	}
	return errs
}

func starVertices(props property.Bag, b Bounds) []geometry.Point {
	points := int(props.Number(keyPoints, defaultStarPoints))
	if points < minStarPoints {
		points = minStarPoints
	}
	ratio := props.Number(keyInnerRadius, defaultInnerRadius)
	rotation := props.Number(keyRotation, 0)
	cx, cy, outer := inscribedCircle(b)
	return geometry.StarPoints(cx, cy, outer, ratio, points, rotation)
}
