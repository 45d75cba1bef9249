package arrow

import (
	"math"

	"github.com/gogpu/figgeom"
)

const (
	// minCirclePoints is the point count of a circular head of zero size.
	minCirclePoints = 20

	// maxCirclePoints caps the polygon used for circular heads.
	maxCirclePoints = 200
)

// Option configures arrowhead computation.
type Option func(*options)

type options struct {
	mag float64
}

func newOptions(opts []Option) options {
	o := options{mag: 1}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// WithMag sets the output magnification. It only affects how many points
// approximate circular heads. Non-positive values are ignored.
func WithMag(mag float64) Option {
	return func(o *options) {
		if mag > 0 {
			o.mag = mag
		}
	}
}

// Head is a computed arrowhead.
type Head struct {
	// Points is the outline of the head. Empty when the shaft direction is
	// undefined.
	Points []figgeom.Point

	// Clip1 and Clip2 are the outer corners of the region past the head
	// where the shaft must be clipped.
	Clip1, Clip2 figgeom.Point

	// BoundPoints is the number of leading Points that, together with Clip1
	// and Clip2, form the clip region: 3 for template heads, half the
	// polygon for circles and 0 for half circles.
	BoundPoints int

	// Filled reports whether the head is drawn filled.
	Filled bool
}

// Empty reports whether no arrowhead was produced.
func (h Head) Empty() bool {
	return len(h.Points) == 0
}

// Bounds returns the bounding box of the outline.
func (h Head) Bounds() figgeom.Box {
	b := figgeom.EmptyBox()
	for _, p := range h.Points {
		b = b.Extend(p)
	}
	return b
}

// MiterExtension returns how far a mitered outline of thickness
// a.Thickness pushes the tip past the geometric tip of the template.
func MiterExtension(a *figgeom.Arrow) float64 {
	tipmv := lookup(a).tipmv
	switch {
	case tipmv > 0:
		if a.Width <= 0 || a.Height <= 0 {
			return 0
		}
		return a.Thickness / (2 * math.Sin(math.Atan(a.Width/(tipmv*a.Height))))
	case tipmv == 0:
		// blunt end
		return a.Thickness / 3
	default:
		return 0
	}
}

// frame maps template coordinates onto the shaft.
type frame struct {
	tip  figgeom.FPoint
	u, n figgeom.FPoint // unit vectors along and across the shaft
}

func (f frame) at(x, y float64) figgeom.FPoint {
	return figgeom.FPoint{
		X: f.tip.X + x*f.u.X + y*f.n.X,
		Y: f.tip.Y + x*f.u.Y + y*f.n.Y,
	}
}

// Calc computes the arrowhead for a shaft running from 'from' to 'to', with
// the tip at 'to'. Coincident points leave the direction undefined and give
// an empty Head.
func Calc(from, to figgeom.Point, a *figgeom.Arrow, opts ...Option) Head {
	d := to.Sub(from).Float()
	l := d.Length()
	if l == 0 {
		return Head{}
	}
	o := newOptions(opts)
	sh := lookup(a)

	lpt := MiterExtension(a)
	u := d.Mul(1 / l)
	f := frame{
		tip: to.Float().Sub(u.Mul(lpt)),
		u:   u,
		n:   figgeom.FPoint{X: -u.Y, Y: u.X},
	}

	h := Head{Filled: a.Style == figgeom.ArrowFilled && a.Type != figgeom.ArrowStick}
	thick := a.Thickness
	switch a.Type {
	case figgeom.ArrowCircle:
		// Circle of diameter Height resting on the tip.
		r := a.Height / 2
		np := circlePoints(a.Height * o.mag)
		h.Points = make([]figgeom.Point, 0, np+1)
		for i := 0; i <= np; i++ {
			th := 2 * math.Pi * float64(i) / float64(np)
			h.Points = append(h.Points, f.at(-r+r*math.Cos(th), r*math.Sin(th)).Round())
		}
		h.BoundPoints = np / 2
		h.Clip1 = f.at(lpt+thick, r+thick/2).Round()
		h.Clip2 = f.at(lpt+thick, -(r + thick/2)).Round()

	case figgeom.ArrowHalfCircle:
		// Half ellipse centered on the tip, bulging back along the shaft.
		np := circlePoints(a.Height * o.mag)
		h.Points = make([]figgeom.Point, 0, np+1)
		for i := 0; i <= np; i++ {
			th := math.Pi/2 + math.Pi*float64(i)/float64(np)
			h.Points = append(h.Points, f.at(a.Height*math.Cos(th), a.Width/2*math.Sin(th)).Round())
		}
		h.Clip1 = f.at(thick, a.Width/2+thick/2).Round()
		h.Clip2 = f.at(thick, -(a.Width/2 + thick/2)).Round()

	default:
		maxY := 0.0
		h.Points = make([]figgeom.Point, len(sh.points))
		for i, p := range sh.points {
			h.Points[i] = f.at(p.X*a.Height, p.Y*a.Width).Round()
			maxY = max(maxY, math.Abs(p.Y*a.Width))
		}
		h.BoundPoints = min(3, len(h.Points))
		tipX := sh.points[sh.tip].X * a.Height
		h.Clip1 = f.at(tipX+lpt+thick, maxY+thick/2).Round()
		h.Clip2 = f.at(tipX+lpt+thick, -(maxY + thick/2)).Round()
	}
	return h
}

// circlePoints returns the polygon size used for a circular head whose
// size along the shaft is length output units.
func circlePoints(length float64) int {
	np := int(math.Round(length/4)) + minCirclePoints
	return min(max(np, minCirclePoints), maxCirclePoints)
}
