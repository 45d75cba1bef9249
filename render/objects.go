package render

import (
	"math"

	"github.com/gogpu/figgeom"
	"github.com/gogpu/figgeom/arrow"
	"github.com/gogpu/figgeom/bound"
	"github.com/gogpu/figgeom/xspline"
)

// curveSteps is the number of segments used for a full turn of an ellipse
// or arc.
const curveSteps = 128

// Compound draws every object of cmp, nested compounds included.
func (c *Canvas) Compound(cmp *figgeom.Compound) {
	if cmp == nil {
		return
	}
	for _, a := range cmp.Arcs {
		c.Object(a)
	}
	for _, e := range cmp.Ellipses {
		c.Object(e)
	}
	for _, l := range cmp.Lines {
		c.Object(l)
	}
	for _, s := range cmp.Splines {
		c.Object(s)
	}
	for _, t := range cmp.Texts {
		c.Object(t)
	}
	for _, sub := range cmp.Compounds {
		c.Compound(sub)
	}
}

// Object draws one primitive and its arrowheads.
func (c *Canvas) Object(obj figgeom.Object) {
	switch o := obj.(type) {
	case *figgeom.Arc:
		c.Polyline(ArcPoints(o), o.Type == figgeom.ArcPieWedge, c.strokeWidth(o.Thickness), InkColor)
		fwd, back := arrow.ArcHeads(o)
		c.heads(o.Arrows, fwd, back)
	case *figgeom.Ellipse:
		c.Polyline(EllipsePoints(o), true, c.strokeWidth(o.Thickness), InkColor)
	case *figgeom.Line:
		c.Polyline(floats(o.Points), o.Closed(), c.strokeWidth(o.Thickness), InkColor)
		fwd, back := arrow.LineHeads(o.Points, o.Arrows)
		c.heads(o.Arrows, fwd, back)
	case *figgeom.Spline:
		c.spline(o)
	case *figgeom.Text:
		c.Box(bound.Text(o), InkColor)
	default:
		return
	}
	if c.opts.boxes {
		c.Box(bound.Stroked(obj, bound.WithPrecision(c.opts.precision)), BoxColor)
	}
}

func (c *Canvas) spline(s *figgeom.Spline) {
	compute := xspline.ComputeOpen
	if s.Closed() {
		compute = xspline.ComputeClosed
	}
	res, err := compute(s.Points, s.ShapeFactors(), xspline.WithPrecision(c.opts.precision))
	if err != nil {
		figgeom.Logger().Warn("render: spline not drawn", "err", err)
		return
	}
	c.Polyline(floats(res.Points), false, c.strokeWidth(s.Thickness), InkColor)
	fwd, back := arrow.LineHeads(res.Points, s.Arrows)
	c.heads(s.Arrows, fwd, back)
}

func (c *Canvas) heads(arrows figgeom.Arrows, fwd, back arrow.Head) {
	c.head(arrows.Forward, fwd)
	c.head(arrows.Back, back)
}

func (c *Canvas) head(a *figgeom.Arrow, h arrow.Head) {
	if a == nil || h.Empty() {
		return
	}
	pts := floats(h.Points)
	if h.Filled {
		c.Fill(pts, ArrowColor)
	}
	c.Polyline(pts, false, c.strokeWidth(int(math.Round(a.Thickness))), ArrowColor)
}

func floats(pts []figgeom.Point) []figgeom.FPoint {
	out := make([]figgeom.FPoint, len(pts))
	for i, p := range pts {
		out[i] = p.Float()
	}
	return out
}

// EllipsePoints samples the outline of e.
func EllipsePoints(e *figgeom.Ellipse) []figgeom.FPoint {
	sin, cos := math.Sincos(e.Angle)
	a, b := float64(e.Radii.X), float64(e.Radii.Y)
	cx, cy := float64(e.Center.X), float64(e.Center.Y)
	out := make([]figgeom.FPoint, curveSteps)
	for i := range out {
		u := 2 * math.Pi * float64(i) / curveSteps
		x := a * math.Cos(u)
		y := b * math.Sin(u)
		out[i] = figgeom.FPt(cx+x*cos-y*sin, cy-(x*sin+y*cos))
	}
	return out
}

// ArcPoints samples the arc from its first to its last point in its
// direction. Pie wedges get the centre appended.
func ArcPoints(a *figgeom.Arc) []figgeom.FPoint {
	r := a.Radius()
	angle := func(p figgeom.Point) float64 {
		return math.Atan2(a.Center.Y-float64(p.Y), float64(p.X)-a.Center.X)
	}
	start, end := angle(a.Points[0]), angle(a.Points[2])
	sweep := math.Mod(end-start+4*math.Pi, 2*math.Pi)
	if a.Direction == figgeom.Clockwise {
		sweep -= 2 * math.Pi
	}
	if sweep == 0 || sweep == -2*math.Pi {
		sweep = 2 * math.Pi
	}

	n := max(int(math.Ceil(math.Abs(sweep)/(2*math.Pi)*curveSteps)), 2)
	out := make([]figgeom.FPoint, 0, n+2)
	for i := 0; i <= n; i++ {
		th := start + sweep*float64(i)/float64(n)
		out = append(out, figgeom.FPt(a.Center.X+r*math.Cos(th), a.Center.Y-r*math.Sin(th)))
	}
	if a.Type == figgeom.ArcPieWedge {
		out = append(out, a.Center)
	}
	return out
}

// Draw renders fig onto a new canvas sized to its bound, with the overall
// bound outlined. size is the pixel length of the longer side, as for New.
func Draw(fig *figgeom.Compound, size int, opts ...Option) *Canvas {
	o := newOptions(opts)
	b := bound.Compound(fig, bound.WithPrecision(o.precision))
	c := New(b, size, opts...)
	c.Compound(fig)
	c.Box(b, BoxColor)
	return c
}
