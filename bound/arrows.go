package bound

import (
	"github.com/gogpu/figgeom"
	"github.com/gogpu/figgeom/arrow"
	"github.com/gogpu/figgeom/xspline"
)

// ArrowBound extends b by the arrowheads of obj. Objects without arrows,
// ellipses and texts return b unchanged.
func ArrowBound(obj figgeom.Object, b figgeom.Box, opts ...Option) figgeom.Box {
	o := newOptions(opts)
	var (
		arrows    figgeom.Arrows
		fwd, back arrow.Head
	)
	switch v := obj.(type) {
	case *figgeom.Arc:
		if arrows = v.Arrows; arrows.Any() {
			fwd, back = arrow.ArcHeads(v, o.arrowOpts()...)
		}
	case *figgeom.Line:
		if arrows = v.Arrows; arrows.Any() {
			fwd, back = arrow.LineHeads(v.Points, v.Arrows, o.arrowOpts()...)
		}
	case *figgeom.Spline:
		if arrows = v.Arrows; arrows.Any() {
			fwd, back = splineHeads(v, o)
		}
	}
	if !arrows.Any() {
		return b
	}
	return unionHeads(b, arrows, fwd, back)
}

func unionHeads(b figgeom.Box, arrows figgeom.Arrows, fwd, back arrow.Head) figgeom.Box {
	if arrows.Forward != nil && fwd.Empty() {
		figgeom.Logger().Warn("bound: zero length shaft, forward arrowhead skipped")
	}
	if arrows.Back != nil && back.Empty() {
		figgeom.Logger().Warn("bound: zero length shaft, back arrowhead skipped")
	}
	return b.Union(fwd.Bounds()).Union(back.Bounds())
}

// splineHeads seats the arrowheads of a spline. Interpolated splines use
// their end tangent handles; the others the ends of the flattened curve.
func splineHeads(s *figgeom.Spline, o options) (fwd, back arrow.Head) {
	n := len(s.Points)
	if n < 2 {
		return fwd, back
	}
	if s.Interpolated() && len(s.Controls) == n {
		if s.Forward != nil {
			end := s.Points[n-1]
			from := figgeom.FPoint{X: s.Controls[n-1].LX, Y: s.Controls[n-1].LY}.Round()
			if from == end {
				from = s.Points[n-2]
			}
			fwd = arrow.Calc(from, end, s.Forward, o.arrowOpts()...)
		}
		if s.Back != nil {
			start := s.Points[0]
			from := figgeom.FPoint{X: s.Controls[0].RX, Y: s.Controls[0].RY}.Round()
			if from == start {
				from = s.Points[1]
			}
			back = arrow.Calc(from, start, s.Back, o.arrowOpts()...)
		}
		return fwd, back
	}

	points := s.Points
	if res, err := xspline.Compute(s, o.splineOpts()...); err == nil && len(res.Points) >= 2 {
		points = res.Points
	}
	return arrow.LineHeads(points, s.Arrows, o.arrowOpts()...)
}
