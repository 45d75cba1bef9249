package arrow

import (
	"math"

	"github.com/gogpu/figgeom"
)

// ArcTangent returns a point one radius away from p along the tangent of
// the circle around center, on the side the arc arrives from when it is
// traversed in direction dir. Together with p it gives the shaft of an
// arrowhead at p.
func ArcTangent(center figgeom.FPoint, p figgeom.Point, dir figgeom.Direction) figgeom.Point {
	dx := float64(p.X) - center.X
	dy := center.Y - float64(p.Y) // y up
	if dir == figgeom.CounterClockwise {
		return figgeom.FPoint{X: float64(p.X) + dy, Y: float64(p.Y) + dx}.Round()
	}
	return figgeom.FPoint{X: float64(p.X) - dy, Y: float64(p.Y) - dx}.Round()
}

// ArcArrowPoint returns the point on the circle around center through end
// that lies one arrow length (height plus miter extension) back from end,
// measured as a chord against the direction of travel dir. An arrowhead
// computed on the shaft from this point to end sits on the curve rather
// than on the tangent.
//
// If the arrow is longer than the circle's diameter the chord does not
// exist and the tangent point from ArcTangent is returned instead.
func ArcArrowPoint(center figgeom.FPoint, end figgeom.Point, dir figgeom.Direction, a *figgeom.Arrow) figgeom.Point {
	dx := float64(end.X) - center.X
	dy := center.Y - float64(end.Y) // y up
	r := math.Hypot(dx, dy)

	h := a.Height + MiterExtension(a)
	if r == 0 || h > 2*r {
		figgeom.Logger().Debug("arrow: arrow too large for arc, using tangent",
			"height", h, "radius", r)
		return ArcTangent(center, end, dir)
	}

	alpha := 2 * math.Asin(h/(2*r))
	if dir == figgeom.CounterClockwise {
		alpha = -alpha
	}
	beta := math.Atan2(dy, dx)
	return figgeom.FPoint{
		X: center.X + r*math.Cos(beta+alpha),
		Y: center.Y - r*math.Sin(beta+alpha),
	}.Round()
}

// Opposite returns the reverse sweep direction.
func Opposite(dir figgeom.Direction) figgeom.Direction {
	if dir == figgeom.CounterClockwise {
		return figgeom.Clockwise
	}
	return figgeom.CounterClockwise
}

// ArcShafts returns the shafts (from, to) used for the forward and back
// arrowheads of arc. A missing arrow yields a zero shaft.
func ArcShafts(arc *figgeom.Arc) (fwdFrom, fwdTo, backFrom, backTo figgeom.Point) {
	if arc.Forward != nil {
		fwdTo = arc.Points[2]
		fwdFrom = ArcArrowPoint(arc.Center, fwdTo, arc.Direction, arc.Forward)
	}
	if arc.Back != nil {
		backTo = arc.Points[0]
		backFrom = ArcArrowPoint(arc.Center, backTo, Opposite(arc.Direction), arc.Back)
	}
	return fwdFrom, fwdTo, backFrom, backTo
}

// ArcHeads computes both arrowheads of an arc. Missing arrows give empty
// heads.
func ArcHeads(arc *figgeom.Arc, opts ...Option) (forward, back Head) {
	fwdFrom, fwdTo, backFrom, backTo := ArcShafts(arc)
	if arc.Forward != nil {
		forward = Calc(fwdFrom, fwdTo, arc.Forward, opts...)
	}
	if arc.Back != nil {
		back = Calc(backFrom, backTo, arc.Back, opts...)
	}
	return forward, back
}

// LineHeads computes the arrowheads of a polyline: the forward head on the
// last two points, the back head on the first two. Fewer than two points
// give empty heads.
func LineHeads(points []figgeom.Point, arrows figgeom.Arrows, opts ...Option) (forward, back Head) {
	n := len(points)
	if n < 2 {
		return forward, back
	}
	if arrows.Forward != nil {
		forward = Calc(points[n-2], points[n-1], arrows.Forward, opts...)
	}
	if arrows.Back != nil {
		back = Calc(points[1], points[0], arrows.Back, opts...)
	}
	return forward, back
}
