package render

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"math"
	"path/filepath"
	"testing"

	"github.com/gogpu/figgeom"
)

func testCanvas(opts ...Option) *Canvas {
	// 100x100 Fig units at one pixel per unit, origin at pixel (16, 16).
	return New(figgeom.Box{XMin: 0, YMin: 0, XMax: 100, YMax: 100}, 132, opts...)
}

func isWhite(c color.Color) bool {
	r, g, b, _ := c.RGBA()
	return r == 0xffff && g == 0xffff && b == 0xffff
}

// inked reports whether any pixel around (x, y) was painted.
func inked(img image.Image, x, y int) bool {
	for dy := -1; dy <= 1; dy++ {
		for dx := -1; dx <= 1; dx++ {
			if !isWhite(img.At(x+dx, y+dy)) {
				return true
			}
		}
	}
	return false
}

// ----- Canvas -----

func TestNew_Size(t *testing.T) {
	c := testCanvas()
	if got := c.Image().Bounds(); got != image.Rect(0, 0, 132, 132) {
		t.Errorf("Bounds() = %v, want 132x132", got)
	}
	if c.Scale() != 1 {
		t.Errorf("Scale() = %g, want 1", c.Scale())
	}
	if x, y := c.ToPixel(figgeom.FPt(0, 0)); x != 16 || y != 16 {
		t.Errorf("ToPixel(0, 0) = (%g, %g), want (16, 16)", x, y)
	}
	if !isWhite(c.Image().At(66, 66)) {
		t.Error("new canvas should be white")
	}
}

func TestNew_EmptyView(t *testing.T) {
	c := New(figgeom.EmptyBox(), 100)
	if got := c.Image().Bounds(); got.Dx() != 32 || got.Dy() != 32 {
		t.Errorf("Bounds() = %v, want 32x32", got)
	}
}

func TestNew_Scale(t *testing.T) {
	c := New(figgeom.Box{XMin: 0, YMin: 0, XMax: 1200, YMax: 600}, 232, WithMargin(16))
	if c.Scale() != 200.0/1200 {
		t.Errorf("Scale() = %g, want %g", c.Scale(), 200.0/1200)
	}
	if got := c.Image().Bounds().Dy(); got != 132 {
		t.Errorf("height = %d, want 132", got)
	}
}

func TestNew_TallView(t *testing.T) {
	c := New(figgeom.Box{XMin: 0, YMin: 0, XMax: 1, YMax: 100000}, 40, WithMargin(4))
	b := c.Image().Bounds()
	if b.Dy() > 40 || b.Dx() > 40 {
		t.Errorf("Bounds() = %v, want both sides within 40", b)
	}
	if want := 32.0 / 100000; math.Abs(c.Scale()-want) > 1e-12 {
		t.Errorf("Scale() = %g, want %g", c.Scale(), want)
	}
}

func TestNew_FitsLongerSide(t *testing.T) {
	c := New(figgeom.Box{XMin: 0, YMin: 0, XMax: 600, YMax: 1200}, 232, WithMargin(16))
	if c.Scale() != 200.0/1200 {
		t.Errorf("Scale() = %g, want %g", c.Scale(), 200.0/1200)
	}
	if got := c.Image().Bounds(); got.Dx() != 132 || got.Dy() != 232 {
		t.Errorf("Bounds() = %v, want 132x232", got)
	}
}

func TestPolyline(t *testing.T) {
	c := testCanvas()
	c.Polyline([]figgeom.FPoint{figgeom.FPt(0, 50), figgeom.FPt(100, 50)}, false, 4, InkColor)

	if isWhite(c.Image().At(66, 66)) {
		t.Error("pixel on the line should be painted")
	}
	if !isWhite(c.Image().At(66, 56)) {
		t.Error("pixel 10 units off the line should stay white")
	}
}

func TestBox(t *testing.T) {
	c := testCanvas(WithMinWidth(2))
	c.Box(figgeom.Box{XMin: 0, YMin: 0, XMax: 100, YMax: 100}, BoxColor)

	r, _, b, _ := c.Image().At(66, 16).RGBA()
	if b <= r {
		t.Errorf("top edge pixel = %v, want box colour", c.Image().At(66, 16))
	}
	if !isWhite(c.Image().At(66, 66)) {
		t.Error("box interior should stay white")
	}

	c.Box(figgeom.EmptyBox(), BoxColor)
}

// ----- Objects -----

func TestObject_Ellipse(t *testing.T) {
	c := testCanvas()
	c.Object(&figgeom.Ellipse{Type: figgeom.CircleByRadius, Center: figgeom.Pt(50, 50), Radii: figgeom.Pt(40, 40)})

	if !inked(c.Image(), 106, 66) {
		t.Error("circle edge should be painted")
	}
	if !isWhite(c.Image().At(66, 66)) {
		t.Error("circle centre should stay white")
	}
}

func TestObject_FilledArrow(t *testing.T) {
	c := testCanvas()
	c.Object(&figgeom.Line{
		Type:   figgeom.LinePolyline,
		Points: []figgeom.Point{figgeom.Pt(0, 50), figgeom.Pt(100, 50)},
		Arrows: figgeom.Arrows{Forward: &figgeom.Arrow{
			Type: figgeom.ArrowTriangle, Style: figgeom.ArrowFilled, Width: 40, Height: 40,
		}},
	})

	r, _, b, _ := c.Image().At(91, 56).RGBA()
	if r <= b {
		t.Errorf("pixel inside the head = %v, want arrow colour", c.Image().At(91, 56))
	}
}

func TestObject_Boxes(t *testing.T) {
	c := testCanvas(WithObjectBoxes(true), WithMinWidth(2))
	c.Object(&figgeom.Ellipse{Type: figgeom.CircleByRadius, Center: figgeom.Pt(50, 50), Radii: figgeom.Pt(20, 20)})

	// The circle's bound runs along y = 30.
	r, _, b, _ := c.Image().At(66, 46).RGBA()
	if b <= r {
		t.Errorf("bound edge pixel = %v, want box colour", c.Image().At(66, 46))
	}
}

func TestCompound(t *testing.T) {
	c := testCanvas()
	c.Compound(&figgeom.Compound{
		Compounds: []*figgeom.Compound{{
			Splines: []*figgeom.Spline{{
				Kind:   figgeom.SplineOpenApprox,
				Points: []figgeom.Point{figgeom.Pt(0, 100), figgeom.Pt(50, 0), figgeom.Pt(100, 100)},
			}},
		}},
	})
	if !inked(c.Image(), 16, 116) {
		t.Error("spline start should be painted")
	}
	c.Compound(nil)
}

// ----- Sampling -----

func TestArcPoints(t *testing.T) {
	ccw := &figgeom.Arc{
		Type:      figgeom.ArcOpen,
		Direction: figgeom.CounterClockwise,
		Center:    figgeom.FPt(0, 0),
		Points:    [3]figgeom.Point{figgeom.Pt(100, 0), figgeom.Pt(71, -71), figgeom.Pt(0, -100)},
	}
	pts := ArcPoints(ccw)
	for _, p := range pts {
		if d := math.Abs(math.Hypot(p.X, p.Y) - 100); d > 1e-9 {
			t.Fatalf("point %v is %g off the circle", p, d)
		}
		if p.Y > 1e-9 {
			t.Fatalf("counter-clockwise quarter arc dips below the centre at %v", p)
		}
	}
	last := pts[len(pts)-1]
	if math.Abs(last.X) > 1e-9 || math.Abs(last.Y+100) > 1e-9 {
		t.Errorf("last point = %v, want (0, -100)", last)
	}

	cw := *ccw
	cw.Direction = figgeom.Clockwise
	below := false
	for _, p := range ArcPoints(&cw) {
		if p.Y > 50 {
			below = true
		}
	}
	if !below {
		t.Error("clockwise arc should sweep through the lower half")
	}

	pie := *ccw
	pie.Type = figgeom.ArcPieWedge
	pp := ArcPoints(&pie)
	if pp[len(pp)-1] != pie.Center {
		t.Errorf("pie wedge should end at the centre, got %v", pp[len(pp)-1])
	}
}

func TestEllipsePoints_Rotated(t *testing.T) {
	e := &figgeom.Ellipse{Center: figgeom.Pt(10, 20), Radii: figgeom.Pt(50, 10), Angle: math.Pi / 2}
	for _, p := range EllipsePoints(e) {
		if math.Abs(p.X-10) > 10+1e-9 || math.Abs(p.Y-20) > 50+1e-9 {
			t.Fatalf("point %v outside the rotated extent", p)
		}
	}
}

// ----- Output -----

func TestDraw_Encode(t *testing.T) {
	fig := &figgeom.Compound{
		Lines: []*figgeom.Line{{Type: figgeom.LineBox, Thickness: 2, Points: []figgeom.Point{
			figgeom.Pt(0, 0), figgeom.Pt(600, 0), figgeom.Pt(600, 300), figgeom.Pt(0, 300), figgeom.Pt(0, 0),
		}}},
	}
	c := Draw(fig, 200)

	var buf bytes.Buffer
	if err := c.Encode(&buf); err != nil {
		t.Fatalf("Encode: %v", err)
	}
	img, err := png.Decode(&buf)
	if err != nil {
		t.Fatalf("png.Decode: %v", err)
	}
	if img.Bounds() != c.Image().Bounds() {
		t.Errorf("decoded bounds = %v, want %v", img.Bounds(), c.Image().Bounds())
	}
}

func TestSavePNG(t *testing.T) {
	c := testCanvas()
	path := filepath.Join(t.TempDir(), "out.png")
	if err := c.SavePNG(path); err != nil {
		t.Fatalf("SavePNG: %v", err)
	}
	if err := c.SavePNG(filepath.Join(t.TempDir(), "missing", "out.png")); err == nil {
		t.Error("SavePNG into a missing directory should fail")
	}
}
