package shape

import (
	"fmt"
	"strings"
	"testing"

	"github.com/fogleman/gg"

	"github.com/genart-dev/plugin-shapes/pkg/property"
)

func TestPolygonRenderCenteredInBounds(t *testing.T) {
	// Non-square bounds: the radius is half the smaller dimension, so the
	// hexagon fits the 100px height and leaves the horizontal margins empty.
	dc := gg.NewContext(200, 100)
	Polygon.Render(dc, Polygon.CreateDefault(), Bounds{X: 0, Y: 0, Width: 200, Height: 100})

	if r, g, b, a := pixel(dc, 100, 50); r != 255 || g != 255 || b != 255 || a != 255 {
		t.Errorf("center pixel = (%d,%d,%d,%d), want opaque white", r, g, b, a)
	}
	if _, _, _, a := pixel(dc, 20, 50); a != 0 {
		t.Errorf("pixel in horizontal margin has alpha %d, want 0", a)
	}
}

func TestPolygonRenderSVGPointCount(t *testing.T) {
	props := Polygon.CreateDefault()
	props["sides"] = 8.0
	got := Polygon.RenderSVG(props, Bounds{X: 0, Y: 0, Width: 100, Height: 100})

	if !strings.HasPrefix(got, "<polygon points=") || !strings.HasSuffix(got, "/>") {
		t.Fatalf("RenderSVG = %s, want self-closing <polygon>", got)
	}
	points := strings.SplitN(got, `"`, 3)[1]
	if n := len(strings.Fields(points)); n != 8 {
		t.Errorf("point list has %d entries, want 8", n)
	}
}

func TestPolygonRenderSVGFirstVertexAtTop(t *testing.T) {
	got := Polygon.RenderSVG(Polygon.CreateDefault(), Bounds{X: 0, Y: 0, Width: 100, Height: 100})
	// Rotation 0: first vertex at 12 o'clock, i.e. (50, 0) for these bounds.
	if !strings.Contains(got, `points="50,0 `) {
		t.Errorf("RenderSVG = %s, want first vertex 50,0", got)
	}
}

func TestPolygonValidate(t *testing.T) {
	tests := []struct {
		name    string
		props   property.Bag
		wantErr bool
	}{
		{"defaults", Polygon.CreateDefault(), false},
		{"lower bound", property.Bag{"sides": 3.0}, false},
		{"upper bound", property.Bag{"sides": 100.0}, false},
		{"too few", property.Bag{"sides": 2.0}, true},
		{"too many", property.Bag{"sides": 101.0}, true},
		{"non-numeric", property.Bag{"sides": "six"}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			errs := Polygon.Validate(tt.props)
			if tt.wantErr {
				if len(errs) == 0 {
					t.Fatal("Validate returned nil, want error")
				}
				if errs[0].Property != "sides" {
					t.Errorf("error scoped to %q, want sides", errs[0].Property)
				}
			} else if errs != nil {
				t.Errorf("Validate = %v, want nil", errs)
			}
		})
	}
}

func TestPolygonRenderInvalidSidesFallsBack(t *testing.T) {
	// Advisory validation: rendering with out-of-range sides coerces rather
	// than failing.
	dc := gg.NewContext(100, 100)
	props := Polygon.CreateDefault()
	props["sides"] = 1.0
	Polygon.Render(dc, props, Bounds{X: 0, Y: 0, Width: 100, Height: 100})

	if _, _, _, a := pixel(dc, 50, 50); a == 0 {
		t.Error("render with invalid sides produced no output; expected coerced fallback")
	}
}

func ExamplePolygon_renderSVG() {
	props := Polygon.CreateDefault()
	props["sides"] = 3.0
	fmt.Println(Polygon.RenderSVG(props, Bounds{X: 0, Y: 0, Width: 100, Height: 100}))
	// Output: <polygon points="50,0 93.3,75 6.7,75" fill="#ffffff"/>
}
