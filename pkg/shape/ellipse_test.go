package shape

import (
	"testing"

	"github.com/fogleman/gg"

	"github.com/genart-dev/plugin-shapes/pkg/property"
)

func TestEllipseRenderInscribed(t *testing.T) {
	dc := gg.NewContext(200, 100)
	Ellipse.Render(dc, Ellipse.CreateDefault(), Bounds{X: 0, Y: 0, Width: 200, Height: 100})

	// Center is filled; the bounds corner lies outside the inscribed ellipse.
	if r, g, b, a := pixel(dc, 100, 50); r != 255 || g != 255 || b != 255 || a != 255 {
		t.Errorf("center pixel = (%d,%d,%d,%d), want opaque white", r, g, b, a)
	}
	if _, _, _, a := pixel(dc, 3, 3); a != 0 {
		t.Errorf("corner pixel has alpha %d, want 0", a)
	}
	// Horizontal extremes are painted (x-radius = width/2).
	if _, _, _, a := pixel(dc, 2, 50); a == 0 {
		t.Error("left extreme unpainted; ellipse should span the full width")
	}
}

func TestEllipseRenderSVG(t *testing.T) {
	got := Ellipse.RenderSVG(Ellipse.CreateDefault(), Bounds{X: 10, Y: 20, Width: 100, Height: 60})
	want := `<ellipse cx="60" cy="50" rx="50" ry="30" fill="#ffffff"/>`
	if got != want {
		t.Errorf("RenderSVG = %s, want %s", got, want)
	}
}

func TestEllipseValidateAlwaysNil(t *testing.T) {
	bags := []property.Bag{
		Ellipse.CreateDefault(),
		{},
		{"fillColor": 42, "strokeWidth": "wide"},
	}
	for _, bag := range bags {
		if errs := Ellipse.Validate(bag); errs != nil {
			t.Errorf("Validate(%v) = %v, want nil", bag, errs)
		}
	}
}
