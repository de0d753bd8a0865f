package shape

import (
	"math"
	"strconv"
	"strings"

	"github.com/fogleman/gg"

	"github.com/genart-dev/plugin-shapes/pkg/property"
)

// Property groups used by the host to organize the editor panel.
const (
	groupFill   = "fill"
	groupStroke = "stroke"
	groupShape  = "shape"
)

// Common property keys shared by the filled shapes.
const (
	keyFillEnabled   = "fillEnabled"
	keyFillColor     = "fillColor"
	keyStrokeEnabled = "strokeEnabled"
	keyStrokeColor   = "strokeColor"
	keyStrokeWidth   = "strokeWidth"
)

// Paint defaults applied at use-site when a bag is missing a key.
const (
	defaultFillColor   = "#ffffff"
	defaultStrokeColor = "#000000"
)

// commonSchemas returns the fill/stroke schema list shared by every shape
// type except line. A fresh slice is returned each call so callers can
// append without aliasing.
func commonSchemas() []property.Schema {
	return []property.Schema{
		{Key: keyFillEnabled, Label: "Fill", Type: property.TypeBoolean, Default: true, Group: groupFill},
		{Key: keyFillColor, Label: "Fill Color", Type: property.TypeColor, Default: defaultFillColor, Group: groupFill},
		{Key: keyStrokeEnabled, Label: "Stroke", Type: property.TypeBoolean, Default: false, Group: groupStroke},
		{Key: keyStrokeColor, Label: "Stroke Color", Type: property.TypeColor, Default: defaultStrokeColor, Group: groupStroke},
		{Key: keyStrokeWidth, Label: "Stroke Width", Type: property.TypeNumber, Default: 0.0,
			Min: property.Float(0), Max: property.Float(100), Step: property.Float(0.5), Group: groupStroke},
	}
}

// applyPaint paints the context's current path from the bag's fill/stroke
// state. Fill applies when fillEnabled (default true); stroke applies when
// strokeEnabled (default false) and the resolved width is greater than zero.
// The two are independent and may both apply. applyPaint never constructs
// path segments; building the path is the caller's responsibility.
func applyPaint(dc *gg.Context, props property.Bag) {
	strokeWidth := props.Number(keyStrokeWidth, 0)
	stroke := props.Bool(keyStrokeEnabled, false) && strokeWidth > 0

	if props.Bool(keyFillEnabled, true) {
		dc.SetHexColor(props.Color(keyFillColor, defaultFillColor))
		if stroke {
			dc.FillPreserve()
		} else {
			dc.Fill()
		}
	}

	if stroke {
		dc.SetHexColor(props.Color(keyStrokeColor, defaultStrokeColor))
		dc.SetLineWidth(strokeWidth)
		dc.Stroke()
	}

	// Neither paint consumed the path; drop it so it cannot leak into the
	// next layer's render call.
	dc.ClearPath()
}

// parseDashPattern parses a comma-separated dash pattern string. Entries
// that fail to parse or are not strictly positive are discarded. The result
// is nil when no entry survives, which callers treat as a solid stroke.
func parseDashPattern(s string) []float64 {
	var dashes []float64
	for _, part := range strings.Split(s, ",") {
		v, err := strconv.ParseFloat(strings.TrimSpace(part), 64)
		if err != nil || math.IsNaN(v) || v <= 0 {
			continue
		}
		dashes = append(dashes, v)
	}
	return dashes
}
