package bound

import (
	"math"

	"github.com/gogpu/figgeom"
)

// Points returns the bounding box of a point list. A single point gives a
// degenerate box; an empty list gives an empty box.
func Points(points []figgeom.Point) figgeom.Box {
	b := figgeom.EmptyBox()
	for _, p := range points {
		b = b.Extend(p)
	}
	return b
}

// ControlPoints returns the bounding box of the left and right tangent
// handles of a control list, rounded to the nearest unit.
func ControlPoints(controls []figgeom.ControlPoint) figgeom.Box {
	b := figgeom.EmptyBox()
	for _, c := range controls {
		b = b.Extend(figgeom.FPoint{X: c.LX, Y: c.LY}.Round())
		b = b.Extend(figgeom.FPoint{X: c.RX, Y: c.RY}.Round())
	}
	return b
}

// Line returns the bounding box of a polyline and its arrowheads.
func Line(l *figgeom.Line, opts ...Option) figgeom.Box {
	if err := l.Validate(); err != nil {
		figgeom.Logger().Warn("bound: line", "err", err)
	}
	b := Points(l.Points)
	if len(l.Points) >= 2 {
		b = ArrowBound(l, b, opts...)
	}
	return b
}

// fbox accumulates a floating point bound.
type fbox struct {
	xmin, ymin, xmax, ymax float64
}

func newFBox(p figgeom.FPoint) fbox {
	return fbox{xmin: p.X, ymin: p.Y, xmax: p.X, ymax: p.Y}
}

func (f *fbox) add(x, y float64) {
	f.xmin = min(f.xmin, x)
	f.ymin = min(f.ymin, y)
	f.xmax = max(f.xmax, x)
	f.ymax = max(f.ymax, y)
}

// round rounds each edge to the nearest unit.
func (f fbox) round() figgeom.Box {
	return figgeom.Box{
		XMin: int(math.Round(f.xmin)),
		YMin: int(math.Round(f.ymin)),
		XMax: int(math.Round(f.xmax)),
		YMax: int(math.Round(f.ymax)),
	}
}

// outward rounds each edge away from the box interior.
func (f fbox) outward() figgeom.Box {
	return figgeom.Box{
		XMin: int(math.Floor(f.xmin)),
		YMin: int(math.Floor(f.ymin)),
		XMax: int(math.Ceil(f.xmax)),
		YMax: int(math.Ceil(f.ymax)),
	}
}
