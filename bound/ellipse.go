package bound

import (
	"math"

	"github.com/gogpu/figgeom"
)

// Ellipse returns the bounding box of a rotated ellipse, dilated by half
// its thickness.
//
// The ellipse is scanned row by row from its center outward. About the
// center it satisfies A x^2 + B x y + C y^2 = F; the discriminant of that
// quadratic in x for row y, D(y) = 4F(A - y^2), is updated incrementally
// and the scan stops at the first row where it turns negative. Rows below
// the center mirror the ones above through the center.
//
// Row sampling misses the true extremes of thin or steep ellipses, so the
// scanned extents are widened to the closed-form half-extents
// sqrt(a^2 cos^2 + b^2 sin^2) and sqrt(a^2 sin^2 + b^2 cos^2) and rounded
// up.
func Ellipse(e *figgeom.Ellipse) figgeom.Box {
	if err := e.Validate(); err != nil {
		figgeom.Logger().Warn("bound: ellipse", "err", err)
	}
	if e.Radii.X == 0 || e.Radii.Y == 0 {
		return figgeom.PointBox(e.Center)
	}

	a := math.Abs(float64(e.Radii.X))
	b := math.Abs(float64(e.Radii.Y))
	sin, cos := math.Sincos(e.Angle)
	a2, b2 := a*a, b*b

	coefA := a2*sin*sin + b2*cos*cos
	coefB := 2 * (b2 - a2) * sin * cos
	f := a2 * b2

	c3 := 4 * coefA * f // D(0)
	v1 := 4 * f         // D(y) - D(y+1) for y = 0
	c6 := 8 * f         // second difference

	var xext float64
	y := 0
	for ; c3 >= 0; y++ {
		root := math.Sqrt(c3)
		by := coefB * float64(y)
		xl := (-by - root) / (2 * coefA)
		xr := (-by + root) / (2 * coefA)
		xext = max(xext, -xl, xr)
		c3 -= v1
		v1 += c6
	}
	xext = max(xext, math.Sqrt(a2*cos*cos+b2*sin*sin))
	yext := max(y-1, ceilInt(math.Sqrt(coefA)))

	dx := ceilInt(xext)
	box := figgeom.Box{
		XMin: e.Center.X - dx,
		YMin: e.Center.Y - yext,
		XMax: e.Center.X + dx,
		YMax: e.Center.Y + yext,
	}
	return box.Dilate(figgeom.HalfWidth(e.Thickness))
}

// ceilInt rounds v up, ignoring the rounding noise left by Sincos on
// axis-aligned angles.
func ceilInt(v float64) int {
	return int(math.Ceil(v - 1e-9))
}
