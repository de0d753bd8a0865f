package shape

import (
	"strings"
	"testing"

	"github.com/fogleman/gg"

	"github.com/genart-dev/plugin-shapes/pkg/property"
)

func TestLineRenderUsesBoundsAsEndpoints(t *testing.T) {
	dc := gg.NewContext(100, 100)
	props := Line.CreateDefault()
	props["strokeWidth"] = 4.0
	Line.Render(dc, props, Bounds{X: 10, Y: 10, Width: 80, Height: 80})

	// The diagonal midpoint is painted with the default white stroke.
	if r, g, b, a := pixel(dc, 50, 50); r != 255 || g != 255 || b != 255 || a != 255 {
		t.Errorf("midpoint pixel = (%d,%d,%d,%d), want opaque white", r, g, b, a)
	}
	// Off-diagonal stays empty; a line is not a filled box.
	if _, _, _, a := pixel(dc, 80, 20); a != 0 {
		t.Errorf("off-diagonal pixel has alpha %d, want 0", a)
	}
}

func TestLineRenderDashedLeavesGaps(t *testing.T) {
	dc := gg.NewContext(200, 50)
	props := Line.CreateDefault()
	props["strokeWidth"] = 4.0
	props["dashPattern"] = "10,10"
	props["lineCap"] = "butt"
	// Horizontal line across the middle.
	Line.Render(dc, props, Bounds{X: 0, Y: 25, Width: 200, Height: 0})

	painted, empty := 0, 0
	for x := 0; x < 200; x++ {
		if _, _, _, a := pixel(dc, x, 25); a > 0 {
			painted++
		} else {
			empty++
		}
	}
	if painted == 0 || empty == 0 {
		t.Errorf("dashed line painted %d / empty %d pixels; want both non-zero", painted, empty)
	}
}

func TestLineRenderInvalidDashStaysSolid(t *testing.T) {
	dc := gg.NewContext(200, 50)
	props := Line.CreateDefault()
	props["strokeWidth"] = 4.0
	props["dashPattern"] = "0,-2,abc"
	Line.Render(dc, props, Bounds{X: 0, Y: 25, Width: 200, Height: 0})

	for x := 5; x < 195; x += 10 {
		if _, _, _, a := pixel(dc, x, 25); a == 0 {
			t.Fatalf("gap at x=%d; fully filtered dash pattern must render solid", x)
		}
	}
}

func TestLineRenderSVG(t *testing.T) {
	props := Line.CreateDefault()
	got := Line.RenderSVG(props, Bounds{X: 10, Y: 20, Width: 30, Height: 40})

	want := `<line x1="10" y1="20" x2="40" y2="60" stroke="#ffffff" stroke-width="2" stroke-linecap="round"/>`
	if got != want {
		t.Errorf("RenderSVG = %s, want %s", got, want)
	}
}

func TestLineRenderSVGDashArray(t *testing.T) {
	props := Line.CreateDefault()
	props["dashPattern"] = "5,3,junk"
	got := Line.RenderSVG(props, Bounds{Width: 100})

	if !strings.Contains(got, `stroke-dasharray="5,3"`) {
		t.Errorf("RenderSVG = %s, want stroke-dasharray=\"5,3\"", got)
	}
}

func TestLineValidate(t *testing.T) {
	tests := []struct {
		name    string
		props   property.Bag
		wantErr bool
	}{
		{"defaults", Line.CreateDefault(), false},
		{"minimum width", property.Bag{"strokeWidth": 0.5}, false},
		{"below minimum", property.Bag{"strokeWidth": 0.25}, true},
		{"non-numeric", property.Bag{"strokeWidth": "thick"}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			errs := Line.Validate(tt.props)
			if tt.wantErr {
				if len(errs) == 0 {
					t.Fatal("Validate returned nil, want error")
				}
				if errs[0].Property != "strokeWidth" {
					t.Errorf("error scoped to %q, want strokeWidth", errs[0].Property)
				}
			} else if errs != nil {
				t.Errorf("Validate = %v, want nil", errs)
			}
		})
	}
}

func TestLineSchemaHasNoFillProperties(t *testing.T) {
	for _, s := range Line.Properties() {
		if s.Key == keyFillEnabled || s.Key == keyFillColor {
			t.Errorf("line schema declares fill property %q; a line has no interior", s.Key)
		}
	}
}
