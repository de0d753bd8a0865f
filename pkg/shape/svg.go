package shape

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/genart-dev/plugin-shapes/pkg/geometry"
	"github.com/genart-dev/plugin-shapes/pkg/property"
)

// num formats a coordinate for SVG output: fixed two-decimal precision with
// trailing zeros (and a dangling decimal point) trimmed.
func num(v float64) string {
	s := strconv.FormatFloat(v, 'f', 2, 64)
	s = strings.TrimRight(s, "0")
	return strings.TrimRight(s, ".")
}

// svgPaintAttrs renders the fill/stroke presentation attributes from a bag,
// using the same enablement rules as applyPaint. Disabled fill emits
// fill="none" so the element does not pick up the SVG default black fill.
func svgPaintAttrs(props property.Bag) string {
	var b strings.Builder

	if props.Bool(keyFillEnabled, true) {
		fmt.Fprintf(&b, ` fill=%q`, props.Color(keyFillColor, defaultFillColor))
	} else {
		b.WriteString(` fill="none"`)
	}

	strokeWidth := props.Number(keyStrokeWidth, 0)
	if props.Bool(keyStrokeEnabled, false) && strokeWidth > 0 {
		fmt.Fprintf(&b, ` stroke=%q stroke-width=%q`,
			props.Color(keyStrokeColor, defaultStrokeColor), num(strokeWidth))
	}

	return b.String()
}

// svgPointList renders vertices as the space-separated "x,y" list used by
// <polygon> elements.
func svgPointList(pts []geometry.Point) string {
	parts := make([]string, len(pts))
	for i, p := range pts {
		parts[i] = num(p.X) + "," + num(p.Y)
	}
	return strings.Join(parts, " ")
}
