package geometry

import (
	"math"
	"testing"
)

const epsilon = 1e-9

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < epsilon
}

func TestPolygonPointsCount(t *testing.T) {
	for sides := 3; sides <= 100; sides++ {
		pts := PolygonPoints(0, 0, 10, sides, 0)
		if len(pts) != sides {
			t.Fatalf("PolygonPoints(sides=%d) returned %d vertices", sides, len(pts))
		}
	}
}

func TestPolygonPointsFirstVertex(t *testing.T) {
	tests := []struct {
		name     string
		rotation float64
	}{
		{"no rotation", 0},
		{"quarter turn", 90},
		{"arbitrary", 37.5},
		{"near full turn", 359},
	}

	const (
		cx = 50.0
		cy = 80.0
		r  = 25.0
	)

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pts := PolygonPoints(cx, cy, r, 5, tt.rotation)
			angle := tt.rotation*math.Pi/180 - math.Pi/2
			wantX := cx + r*math.Cos(angle)
			wantY := cy + r*math.Sin(angle)
			if !almostEqual(pts[0].X, wantX) || !almostEqual(pts[0].Y, wantY) {
				t.Errorf("vertex 0 = (%v, %v), want (%v, %v)", pts[0].X, pts[0].Y, wantX, wantY)
			}
		})
	}
}

func TestPolygonPointsTopVertexAtZeroRotation(t *testing.T) {
	// Rotation 0 places the first vertex straight up from center.
	pts := PolygonPoints(100, 100, 40, 6, 0)
	if !almostEqual(pts[0].X, 100) {
		t.Errorf("vertex 0 X = %v, want 100", pts[0].X)
	}
	if !almostEqual(pts[0].Y, 60) {
		t.Errorf("vertex 0 Y = %v, want 60", pts[0].Y)
	}
}

func TestPolygonPointsOnCircle(t *testing.T) {
	const r = 33.0
	pts := PolygonPoints(10, -20, r, 7, 123)
	for i, p := range pts {
		d := math.Hypot(p.X-10, p.Y+20)
		if !almostEqual(d, r) {
			t.Errorf("vertex %d at distance %v from center, want %v", i, d, r)
		}
	}
}

func TestPolygonPointsEvenSpacing(t *testing.T) {
	pts := PolygonPoints(0, 0, 10, 8, 0)
	step := 2 * math.Pi / 8
	for i := 1; i < len(pts); i++ {
		a0 := math.Atan2(pts[i-1].Y, pts[i-1].X)
		a1 := math.Atan2(pts[i].Y, pts[i].X)
		diff := math.Mod(a1-a0+2*math.Pi, 2*math.Pi)
		if !almostEqual(diff, step) {
			t.Errorf("angular step between vertex %d and %d = %v, want %v", i-1, i, diff, step)
		}
	}
}

func TestStarPointsCount(t *testing.T) {
	for points := 3; points <= 50; points++ {
		pts := StarPoints(0, 0, 10, 0.4, points, 0)
		if len(pts) != 2*points {
			t.Fatalf("StarPoints(points=%d) returned %d vertices, want %d", points, len(pts), 2*points)
		}
	}
}

func TestStarPointsAlternatingRadii(t *testing.T) {
	const (
		cx    = 12.0
		cy    = 34.0
		outer = 50.0
		ratio = 0.4
	)
	pts := StarPoints(cx, cy, outer, ratio, 5, 72)
	for i, p := range pts {
		d := math.Hypot(p.X-cx, p.Y-cy)
		want := outer
		if i%2 == 1 {
			want = outer * ratio
		}
		if !almostEqual(d, want) {
			t.Errorf("vertex %d at distance %v, want %v", i, d, want)
		}
	}
}

func TestStarPointsFirstVertexIsOuterTop(t *testing.T) {
	pts := StarPoints(0, 0, 20, 0.5, 5, 0)
	if !almostEqual(pts[0].X, 0) || !almostEqual(pts[0].Y, -20) {
		t.Errorf("vertex 0 = (%v, %v), want (0, -20)", pts[0].X, pts[0].Y)
	}
}

func TestStarPointsHalfPolygonStep(t *testing.T) {
	pts := StarPoints(0, 0, 10, 0.5, 4, 0)
	step := math.Pi / 4
	for i := 1; i < len(pts); i++ {
		a0 := math.Atan2(pts[i-1].Y, pts[i-1].X)
		a1 := math.Atan2(pts[i].Y, pts[i].X)
		diff := math.Mod(a1-a0+2*math.Pi, 2*math.Pi)
		if !almostEqual(diff, step) {
			t.Errorf("angular step between vertex %d and %d = %v, want %v", i-1, i, diff, step)
		}
	}
}

func TestGeneratorsDeterministic(t *testing.T) {
	a := PolygonPoints(1, 2, 3, 9, 45)
	b := PolygonPoints(1, 2, 3, 9, 45)
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("PolygonPoints not deterministic at vertex %d: %v != %v", i, a[i], b[i])
		}
	}

	c := StarPoints(1, 2, 3, 0.3, 9, 45)
	d := StarPoints(1, 2, 3, 0.3, 9, 45)
	for i := range c {
		if c[i] != d[i] {
			t.Fatalf("StarPoints not deterministic at vertex %d: %v != %v", i, c[i], d[i])
		}
	}
}
