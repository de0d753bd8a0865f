package shape

import (
	"fmt"
	"strings"

	"github.com/fogleman/gg"

	"github.com/genart-dev/plugin-shapes/pkg/property"
)

const (
	keyLineCap     = "lineCap"
	keyDashPattern = "dashPattern"

	defaultLineStrokeColor = "#ffffff"
	defaultLineStrokeWidth = 2.0
	minLineStrokeWidth     = 0.5
)

// Line is the line layer type. A line has no interior, so it does not share
// the common fill properties; it declares its own stroke-only schema. The
// bounds act as the literal endpoints: the segment runs from the bounds'
// top-left corner to its bottom-right corner.
var Line LayerType = lineType{}

type lineType struct{}

func (lineType) TypeID() string           { return TypeIDLine }
func (lineType) DisplayName() string      { return "Line" }
func (lineType) Icon() string             { return "minus" }
func (lineType) Category() string         { return "shapes" }
func (lineType) PropertyEditorID() string { return "shape-properties" }

func (lineType) Properties() []property.Schema {
	return []property.Schema{
		{Key: keyStrokeColor, Label: "Color", Type: property.TypeColor, Default: defaultLineStrokeColor, Group: groupStroke},
		{Key: keyStrokeWidth, Label: "Width", Type: property.TypeNumber, Default: defaultLineStrokeWidth,
			Min: property.Float(minLineStrokeWidth), Max: property.Float(100), Step: property.Float(0.5), Group: groupStroke},
		{Key: keyLineCap, Label: "Line Cap", Type: property.TypeSelect, Default: "round", Group: groupStroke,
			Options: []property.Option{
				{Value: "butt", Label: "Butt"},
				{Value: "round", Label: "Round"},
				{Value: "square", Label: "Square"},
			}},
		{Key: keyDashPattern, Label: "Dash Pattern", Type: property.TypeString, Default: "", Group: groupStroke},
	}
}

func (t lineType) CreateDefault() property.Bag {
	return property.Defaults(t.Properties())
}

// Render draws a single segment between the bounds' corners. The dash
// pattern is applied only when at least one entry survives parsing;
// otherwise the stroke stays solid.
func (lineType) Render(dc *gg.Context, props property.Bag, b Bounds) {
	dc.SetHexColor(props.Color(keyStrokeColor, defaultLineStrokeColor))
	dc.SetLineWidth(props.Number(keyStrokeWidth, defaultLineStrokeWidth))
	dc.SetLineCap(lineCap(props.String(keyLineCap, "round")))

	if dashes := parseDashPattern(props.String(keyDashPattern, "")); len(dashes) > 0 {
		dc.SetDash(dashes...)
	} else {
		dc.SetDash()
	}

	dc.MoveTo(b.X, b.Y)
	dc.LineTo(b.X+b.Width, b.Y+b.Height)
	dc.Stroke()
	dc.SetDash()
}

func (lineType) RenderSVG(props property.Bag, b Bounds) string {
	var extra strings.Builder
	fmt.Fprintf(&extra, ` stroke-linecap=%q`, props.String(keyLineCap, "round"))
	if dashes := parseDashPattern(props.String(keyDashPattern, "")); len(dashes) > 0 {
		parts := make([]string, len(dashes))
		for i, d := range dashes {
			parts[i] = num(d)
		}
		fmt.Fprintf(&extra, ` stroke-dasharray=%q`, strings.Join(parts, ","))
	}

	return fmt.Sprintf("<line x1=%q y1=%q x2=%q y2=%q stroke=%q stroke-width=%q%s/>",
		num(b.X), num(b.Y), num(b.X+b.Width), num(b.Y+b.Height),
		props.Color(keyStrokeColor, defaultLineStrokeColor),
		num(props.Number(keyStrokeWidth, defaultLineStrokeWidth)),
		extra.String())
}

func (lineType) Validate(props property.Bag) []property.Error {
	if v, ok := props.NumberOK(keyStrokeWidth); !ok || v < minLineStrokeWidth {
		return []property.Error{
			property.Errorf(keyStrokeWidth, "must be a number of at least %v", minLineStrokeWidth),
		}
	}
	return nil
}

// lineCap maps the schema's cap names onto gg's stroke cap constants.
// Unknown values fall back to the schema default.
func lineCap(name string) gg.LineCap {
	switch name {
	case "butt":
		return gg.LineCapButt
	case "square":
		return gg.LineCapSquare
	default:
		return gg.LineCapRound
	}
}
