// Package bound computes axis-aligned bounding boxes of Fig objects.
//
// Every function is pure: it reads the object and returns a [figgeom.Box]
// in device units that contains the rendered shape, arrowheads included.
// [Compound] walks a whole object tree and adds each primitive's stroke
// half-width.
//
// Rounding follows the accuracy of each method. Arcs, ellipses and texts
// are computed in closed form and rounded to the nearest unit; spline
// bounds are themselves approximations and are rounded outward.
package bound
