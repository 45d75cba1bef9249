package bound

import (
	"math"

	"github.com/gogpu/figgeom"
)

// normAngle returns the angle of (dx, dy) in [0, 2*pi).
func normAngle(dx, dy float64) float64 {
	a := math.Atan2(dy, dx)
	if a < 0 {
		a += 2 * math.Pi
	}
	return a
}

// Arc returns the bounding box of an arc and its arrowheads.
//
// The box of the three arc points is extended to each axis-aligned extreme
// of the circle (at 0, pi/2, pi and 3*pi/2) that the sweep passes. Pie
// wedges also include the center. An arc whose start and end coincide is a
// full circle.
func Arc(arc *figgeom.Arc, opts ...Option) figgeom.Box {
	if err := arc.Validate(); err != nil {
		figgeom.Logger().Warn("bound: arc", "err", err)
	}
	c := arc.Center

	// Angles are measured with y up.
	dx := float64(arc.Points[0].X) - c.X
	dy := c.Y - float64(arc.Points[0].Y)
	alpha := normAngle(dx, dy)
	radius := math.Hypot(dx, dy)

	dx = float64(arc.Points[2].X) - c.X
	dy = c.Y - float64(arc.Points[2].Y)
	beta := normAngle(dx, dy)

	b := Points(arc.Points[:])

	right := int(math.Round(c.X + radius))
	top := int(math.Round(c.Y - radius))
	left := int(math.Round(c.X - radius))
	bottom := int(math.Round(c.Y + radius))

	const (
		deg90  = math.Pi / 2
		deg180 = math.Pi
		deg270 = 3 * math.Pi / 2
	)

	var e0, e90, e180, e270 bool
	switch {
	case arc.Points[0] == arc.Points[2]:
		e0, e90, e180, e270 = true, true, true, true
	case arc.Direction == figgeom.CounterClockwise:
		if alpha > beta {
			// sweep wraps through 0
			e0 = alpha <= 0 || 0 <= beta
			e90 = alpha <= deg90 || deg90 <= beta
			e180 = alpha <= deg180 || deg180 <= beta
			e270 = alpha <= deg270 || deg270 <= beta
		} else {
			e0 = alpha <= 0 && 0 <= beta
			e90 = alpha <= deg90 && deg90 <= beta
			e180 = alpha <= deg180 && deg180 <= beta
			e270 = alpha <= deg270 && deg270 <= beta
		}
	default:
		if alpha > beta {
			e0 = beta <= 0 && 0 <= alpha
			e90 = beta <= deg90 && deg90 <= alpha
			e180 = beta <= deg180 && deg180 <= alpha
			e270 = beta <= deg270 && deg270 <= alpha
		} else {
			// sweep wraps through 0
			e0 = beta <= 0 || 0 <= alpha
			e90 = beta <= deg90 || deg90 <= alpha
			e180 = beta <= deg180 || deg180 <= alpha
			e270 = beta <= deg270 || deg270 <= alpha
		}
	}
	if e0 {
		b.XMax = max(b.XMax, right)
	}
	if e90 {
		b.YMin = min(b.YMin, top)
	}
	if e180 {
		b.XMin = min(b.XMin, left)
	}
	if e270 {
		b.YMax = max(b.YMax, bottom)
	}

	if arc.Type == figgeom.ArcPieWedge {
		b = b.Extend(c.Round())
	}
	return ArrowBound(arc, b, opts...)
}
