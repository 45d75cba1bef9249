package bound

import (
	"github.com/gogpu/figgeom"
	"github.com/gogpu/figgeom/xspline"
)

// Spline returns the bounding box of a spline and its arrowheads.
//
// Interpolated (Bezier) splines are bounded by their de Casteljau
// subdivision points, approximated splines by the control polygons of their
// quadratic B-spline pieces, and X-splines by their flattened curve.
func Spline(s *figgeom.Spline, opts ...Option) figgeom.Box {
	if len(s.Points) == 0 {
		return figgeom.EmptyBox()
	}
	var b figgeom.Box
	switch {
	case s.Interpolated():
		b = interpSplineBound(s)
	case s.XSpline():
		b = xSplineBound(s, newOptions(opts))
	default:
		if s.Kind != figgeom.SplineOpenApprox && s.Kind != figgeom.SplineClosedApprox {
			figgeom.Logger().Warn("bound: unknown spline kind, bounding as approximated",
				"kind", int(s.Kind))
		}
		b = approxSplineBound(s)
	}
	return ArrowBound(s, b, opts...)
}

// closedPoints returns the point list of a closed spline with the first
// point repeated at the end, the form older figures store them in.
func closedPoints(s *figgeom.Spline) []figgeom.Point {
	pts := s.Points
	if s.Closed() && len(pts) > 1 && pts[0] != pts[len(pts)-1] {
		pts = append(pts[:len(pts):len(pts)], pts[0])
	}
	return pts
}

func half(a, b float64) float64 { return (a + b) / 2 }

// interpSplineBound bounds a Bezier spline by its end points and the
// subdivision points of every segment at t = 1/2.
func interpSplineBound(s *figgeom.Spline) figgeom.Box {
	if len(s.Controls) == 0 {
		figgeom.Logger().Warn("bound: interpolated spline without controls")
		return Points(s.Points)
	}
	pts := closedPoints(s)
	ctl := func(i int) figgeom.ControlPoint {
		if i < len(s.Controls) {
			return s.Controls[i]
		}
		// wrap segment of a closed spline
		return s.Controls[0]
	}

	fb := newFBox(pts[0].Float())
	for i := 0; i+1 < len(pts); i++ {
		x0, y0 := float64(pts[i].X), float64(pts[i].Y)
		x1, y1 := ctl(i).RX, ctl(i).RY
		x2, y2 := ctl(i+1).LX, ctl(i+1).LY
		x3, y3 := float64(pts[i+1].X), float64(pts[i+1].Y)

		tx, ty := half(x1, x2), half(y1, y2)
		sx1, sy1 := half(x0, x1), half(y0, y1)
		sx2, sy2 := half(sx1, tx), half(sy1, ty)
		tx2, ty2 := half(x2, x3), half(y2, y3)
		tx1, ty1 := half(tx2, tx), half(ty2, ty)

		fb.add(x0, y0)
		fb.add(sx1, sy1)
		fb.add(sx2, sy2)
		fb.add(tx1, ty1)
		fb.add(tx2, ty2)
		fb.add(x3, y3)
	}
	return fb.round()
}

// approxSplineBound bounds a quadratic B-spline by the control polygon of
// each piece: the quarter points around every interior control point.
func approxSplineBound(s *figgeom.Spline) figgeom.Box {
	pts := closedPoints(s)
	if len(pts) < 2 {
		return figgeom.PointBox(pts[0])
	}
	closed := s.Closed()

	x1, y1 := float64(pts[0].X), float64(pts[0].Y)
	x2, y2 := float64(pts[1].X), float64(pts[1].Y)
	cx1, cy1 := half(x1, x2), half(y1, y2)
	cx2, cy2 := half(cx1, x2), half(cy1, y2)
	if closed {
		x1, y1 = half(cx1, x1), half(cy1, y1)
	}
	fb := fbox{
		xmin: min(x1, cx2), ymin: min(y1, cy2),
		xmax: max(x1, cx2), ymax: max(y1, cy2),
	}

	for _, p := range pts[2:] {
		x1, y1 = x2, y2
		x2, y2 = float64(p.X), float64(p.Y)
		cx4, cy4 := half(x1, x2), half(y1, y2)
		cx3, cy3 := half(x1, cx4), half(y1, cy4)
		cx2, cy2 = half(cx4, x2), half(cy4, y2)
		fb.add(cx2, cy2)
		fb.add(cx3, cy3)
	}
	if !closed {
		fb.add(x2, y2)
	}
	return fb.outward()
}

// xSplineBound flattens an X-spline and bounds the result. Splines that
// cannot be flattened fall back to their control points.
func xSplineBound(s *figgeom.Spline, o options) figgeom.Box {
	res, err := xspline.Compute(s, o.splineOpts()...)
	if err != nil {
		figgeom.Logger().Warn("bound: cannot flatten spline, using control points", "err", err)
		return Points(s.Points)
	}
	return Points(res.Points)
}
