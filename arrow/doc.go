// Package arrow computes arrowhead geometry.
//
// An arrowhead sits on the end of a shaft given by two points: the end point
// where the tip lands and a second point that sets the direction. [Calc]
// returns the outline of the head, two clip points that bound the region
// where the shaft must not be drawn, and the number of outline points that
// belong to that clip region.
//
// Thick outlines are drawn with mitered joins, so a sharp tip pokes out past
// the geometric tip. Calc moves the template back along the shaft by that
// miter extension so the visible tip ends exactly on the shaft end.
//
// For arrowheads on circular arcs the shaft direction must follow the curve
// rather than the chord: [ArcArrowPoint] finds the point on the circle one
// arrow length back from the arc end, [ArcTangent] is the fallback when the
// arrow is too large for the arc.
package arrow
