// Package figgeom provides the geometric core of a Fig figure converter.
//
// # Overview
//
// A Fig figure is a tree of primitives (arcs, ellipses, polylines, splines and
// texts) grouped into compounds. Output emitters need two things from that
// tree before they can print a single byte: the extent of every object and a
// concrete polyline for every spline. figgeom defines the in-memory data model
// and its sub-packages compute those quantities:
//
//   - [github.com/gogpu/figgeom/bound]: axis-aligned bounding boxes for every
//     primitive kind, including stroke width and arrowheads.
//   - [github.com/gogpu/figgeom/arrow]: arrowhead polygons, shaft clip points
//     and arrow seating on circular arcs.
//   - [github.com/gogpu/figgeom/xspline]: X-spline flattening (Blanc & Schlick).
//
// # Coordinate System
//
// Coordinates are Fig device units:
//   - Origin (0,0) at top-left
//   - X increases right
//   - Y increases down
//   - Angles in radians, 0 is right, increases counter-clockwise as seen on
//     screen
//
// Object geometry uses integer [Point]s; curve math runs on [FPoint]s and is
// rounded back to integers at the end.
//
// # Concurrency
//
// Every computation is a pure function of its arguments. Bounding or
// flattening different figures from different goroutines is safe.
package figgeom

// Version is the current version of the library.
const Version = "0.3.0"
