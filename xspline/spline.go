package xspline

import (
	"fmt"
	"math"

	"github.com/gogpu/figgeom"
)

// maxStep bounds the parameter increment so nearly straight segments still
// get a few points.
const maxStep = 0.2

// maxSteps is the largest plausible per-segment step count.
const maxSteps = 999

// initialCapacity is the starting size of the output buffer.
const initialCapacity = 300

// Result is a flattened spline. For closed splines the first point is
// repeated at the end.
type Result struct {
	Points []figgeom.Point

	// Truncated is set when the point cap was reached. Points is still a
	// valid polyline, it just stops short of the true end of the curve.
	Truncated bool
}

// flattener owns the output buffer of one flattening call.
type flattener struct {
	opts      options
	points    []figgeom.Point
	truncated bool
}

func newFlattener(opts []Option) *flattener {
	o := newOptions(opts)
	return &flattener{
		opts:   o,
		points: make([]figgeom.Point, 0, min(initialCapacity, o.maxPoints+1)),
	}
}

// add appends p unless it repeats the previous point or the cap is hit.
func (f *flattener) add(p figgeom.Point) {
	if n := len(f.points); n > 0 && f.points[n-1] == p {
		return
	}
	if len(f.points) >= f.opts.maxPoints {
		if !f.truncated {
			figgeom.Logger().Warn("xspline: too many points, spline truncated",
				"max", f.opts.maxPoints)
		}
		f.truncated = true
		return
	}
	f.points = append(f.points, p)
}

// closePath repeats the first point. The closing point may exceed the cap
// by one so that a truncated polygon still closes.
func (f *flattener) closePath() {
	if len(f.points) == 0 {
		return
	}
	first := f.points[0]
	if f.points[len(f.points)-1] != first {
		f.points = append(f.points, first)
	}
}

func (f *flattener) result() Result {
	return Result{Points: f.points, Truncated: f.truncated}
}

// step estimates the parameter increment for the segment p1..p2 from the
// chord length and the bend of the curve at its middle.
func (f *flattener) step(k float64, p0, p1, p2, p3 figgeom.Point, s1, s2 float64) float64 {
	if s1 == 0 && s2 == 0 {
		return 1 // straight segment
	}

	var w weights
	start, end := p1, p2
	if s1 > 0 {
		w.blend(k, 0, s1, s2)
		start = w.eval(p0, p1, p2, p3).Round()
	}
	if s2 > 0 {
		w.blend(k, 1, s1, s2)
		end = w.eval(p0, p1, p2, p3).Round()
	}
	w.blend(k, 0.5, s1, s2)
	mid := w.eval(p0, p1, p2, p3).Round()

	v1 := start.Sub(mid).Float()
	v2 := end.Sub(mid).Float()

	var angleCos float64
	if sides := v1.Length() * v2.Length(); sides != 0 {
		angleCos = (v1.X*v2.X + v1.Y*v2.Y) / sides
	}

	dist := int(end.Sub(start).Float().Length())

	// More steps for long chords and for sharply bent curves.
	steps := int(math.Sqrt(float64(dist)) / 2)
	steps += int((1 + angleCos) * 10)

	step := 1.0
	if steps > 0 && steps <= maxSteps {
		step = f.opts.precision / float64(steps)
	}
	if step > maxStep || step == 0 {
		step = maxStep
	}
	return step
}

// segment appends the points of the segment p1..p2, excluding p2.
func (f *flattener) segment(k float64, p0, p1, p2, p3 figgeom.Point, s1, s2 float64) {
	step := f.step(k, p0, p1, p2, p3, s1, s2)

	var w weights
	for t := 0.0; t < 1; t += step {
		w.blend(k, t, s1, s2)
		f.add(w.eval(p0, p1, p2, p3).Round())
	}
}

// ComputeOpen flattens an open X-spline through points with the given
// per-point shape factors. shapes must be parallel to points. A two point
// spline is returned as a straight line.
func ComputeOpen(points []figgeom.Point, shapes []float64, opts ...Option) (Result, error) {
	n := len(points)
	if n < 2 {
		return Result{}, fmt.Errorf("xspline: open spline with %d points: %w", n, figgeom.ErrTooFewPoints)
	}
	if len(shapes) != n {
		return Result{}, fmt.Errorf("xspline: %d shape factors for %d points: %w",
			len(shapes), n, figgeom.ErrMismatchedControls)
	}

	f := newFlattener(opts)
	if n == 2 {
		f.add(points[0])
		f.add(points[1])
		return f.result(), nil
	}

	// The window before the first segment repeats the first point, the one
	// after the last segment repeats the last point.
	at := func(i int) int { return max(0, min(i, n-1)) }
	var k int
	for k = 0; k < n-1; k++ {
		i1, i2 := k, k+1
		f.segment(float64(k),
			points[at(i1-1)], points[i1], points[i2], points[at(i2+1)],
			shapes[i1], shapes[i2])
	}
	f.add(points[n-1])

	figgeom.Logger().Debug("xspline: open spline flattened",
		"controls", n, "points", len(f.points))
	return f.result(), nil
}

// ComputeClosed flattens a closed X-spline. At least 3 points are required;
// the output polygon starts and ends on the same point.
func ComputeClosed(points []figgeom.Point, shapes []float64, opts ...Option) (Result, error) {
	n := len(points)
	if n < 3 {
		figgeom.Logger().Warn("xspline: closed spline needs at least 3 points", "points", n)
		return Result{}, fmt.Errorf("xspline: closed spline with %d points: %w", n, figgeom.ErrTooFewPoints)
	}
	if len(shapes) != n {
		return Result{}, fmt.Errorf("xspline: %d shape factors for %d points: %w",
			len(shapes), n, figgeom.ErrMismatchedControls)
	}

	f := newFlattener(opts)

	// Segments run p1->p2 for p1 = 1, 2, ..., n-1, 0 so the seam at the
	// first point is evaluated last with full continuity on both sides.
	for k := 0; k < n; k++ {
		i1 := (k + 1) % n
		i0 := (i1 + n - 1) % n
		i2 := (i1 + 1) % n
		i3 := (i1 + 2) % n
		f.segment(float64(k),
			points[i0], points[i1], points[i2], points[i3],
			shapes[i1], shapes[i2])
	}
	f.closePath()

	figgeom.Logger().Debug("xspline: closed spline flattened",
		"controls", n, "points", len(f.points))
	return f.result(), nil
}

// Compute flattens any spline kind. Approximated and interpolated splines
// are evaluated as X-splines with constant shape factors.
func Compute(s *figgeom.Spline, opts ...Option) (Result, error) {
	if err := s.Validate(); err != nil {
		return Result{}, fmt.Errorf("xspline: %w", err)
	}
	shapes := s.ShapeFactors()
	if s.Closed() {
		return ComputeClosed(s.Points, shapes, opts...)
	}
	return ComputeOpen(s.Points, shapes, opts...)
}

// ToLine flattens s into a polyline that carries the spline's thickness and
// arrowheads, so callers can treat it like any other line. Closed splines
// become polygons.
func ToLine(s *figgeom.Spline, opts ...Option) (*figgeom.Line, Result, error) {
	res, err := Compute(s, opts...)
	if err != nil {
		return nil, Result{}, err
	}
	l := &figgeom.Line{
		Type:      figgeom.LinePolyline,
		Thickness: s.Thickness,
		Points:    res.Points,
		Arrows:    s.Arrows,
	}
	if s.Closed() {
		l.Type = figgeom.LinePolygon
	}
	return l, res, nil
}
