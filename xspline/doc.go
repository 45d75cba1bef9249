// Package xspline flattens X-splines into polylines.
//
// X-splines (Blanc & Schlick, "X-Splines: A Spline Model Designed for the
// End-User", SIGGRAPH 1995) attach a shape factor s in [-1, 1] to every
// control point:
//   - s = 0: the curve passes through the point with a corner
//   - s > 0: the point attracts the curve (B-spline like, approximating)
//   - s < 0: the curve passes through the point smoothly (Catmull-Rom like)
//
// # Algorithm
//
// The curve is evaluated one segment at a time over a sliding window of four
// control points (p0, p1, p2, p3); the segment runs from p1 to p2. For every
// segment:
//  1. The curve is evaluated at t = 0, 0.5 and 1 to estimate the chord
//     length and the bend at the middle; this gives the parameter step.
//  2. t walks from 0 to 1 by that step. Each evaluation is a rational blend
//     of the four control points, normalized by the sum of the weights.
//
// Open splines repeat their end points so that the first and last segments
// have a full window. Closed splines wrap the window around and repeat the
// first computed point at the end so the polygon closes exactly.
//
// # Usage
//
//	res, err := xspline.Compute(spline, xspline.WithPrecision(xspline.HighPrecision))
//	if err != nil {
//	    return err
//	}
//	if res.Truncated {
//	    // best effort: res.Points still describes a valid polyline
//	}
package xspline
