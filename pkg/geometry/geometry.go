// Package geometry provides vertex generators for regular polygon and star
// outlines.
//
// Both generators are pure functions of their inputs: they allocate and
// return a fresh vertex slice and touch no shared state, so they are safe to
// call concurrently.
//
// # Angle convention
//
// A rotation of 0 degrees places the first vertex at 12 o'clock. Internally
// the start angle is the rotation converted to radians minus pi/2, since the
// unit circle puts angle 0 at 3 o'clock. Subsequent vertices proceed
// clockwise in screen coordinates (y grows downward).
package geometry

import "math"

// Point is a single (x, y) coordinate produced by a vertex generator.
type Point struct {
	X float64
	Y float64
}

// PolygonPoints computes the vertices of a regular polygon with the given
// number of sides, evenly spaced around a circle of radius r centered at
// (cx, cy). Exactly sides vertices are returned.
//
// Callers are expected to pass sides >= 3; the function performs no
// clamping, mirroring the validator range of [3, 100] enforced upstream.
func PolygonPoints(cx, cy, r float64, sides int, rotationDeg float64) []Point {
	step := 2 * math.Pi / float64(sides)
	start := rotationDeg*math.Pi/180 - math.Pi/2

	pts := make([]Point, sides)
	for i := 0; i < sides; i++ {
		angle := start + float64(i)*step
		pts[i] = Point{
			X: cx + r*math.Cos(angle),
			Y: cy + r*math.Sin(angle),
		}
	}
	return pts
}

// StarPoints computes the vertices of a star with numPoints tips. It returns
// 2*numPoints vertices alternating between the outer radius and the inner
// radius (outer*innerRatio), starting with an outer vertex at the same start
// angle convention as PolygonPoints.
//
// The angular step is pi/numPoints, half the polygon step, because a full
// rotation visits twice as many vertices. innerRatio is expected in (0, 1);
// the validator range is [0.05, 0.95].
func StarPoints(cx, cy, outer, innerRatio float64, numPoints int, rotationDeg float64) []Point {
	inner := outer * innerRatio
	step := math.Pi / float64(numPoints)
	start := rotationDeg*math.Pi/180 - math.Pi/2

	pts := make([]Point, 2*numPoints)
	for i := range pts {
		radius := outer
		if i%2 == 1 {
			radius = inner
		}
		angle := start + float64(i)*step
		pts[i] = Point{
			X: cx + radius*math.Cos(angle),
			Y: cy + radius*math.Sin(angle),
		}
	}
	return pts
}
