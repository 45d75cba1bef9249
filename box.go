package figgeom

import (
	"fmt"
	"math"
)

// Box is an axis-aligned bounding rectangle in device units.
// A valid box satisfies XMin <= XMax and YMin <= YMax; a degenerate
// primitive yields a box that collapses to a single point.
type Box struct {
	XMin, YMin, XMax, YMax int
}

// EmptyBox returns a box that contains nothing. Union with an empty box
// returns the other operand unchanged.
func EmptyBox() Box {
	return Box{XMin: math.MaxInt, YMin: math.MaxInt, XMax: math.MinInt, YMax: math.MinInt}
}

// PointBox returns the box that collapses to p.
func PointBox(p Point) Box {
	return Box{XMin: p.X, YMin: p.Y, XMax: p.X, YMax: p.Y}
}

// Empty reports whether the box contains no point.
func (b Box) Empty() bool {
	return b.XMin > b.XMax || b.YMin > b.YMax
}

// Width returns the horizontal extent of the box.
func (b Box) Width() int {
	if b.Empty() {
		return 0
	}
	return b.XMax - b.XMin
}

// Height returns the vertical extent of the box.
func (b Box) Height() int {
	if b.Empty() {
		return 0
	}
	return b.YMax - b.YMin
}

// Union returns the smallest box containing both b and other.
func (b Box) Union(other Box) Box {
	if b.Empty() {
		return other
	}
	if other.Empty() {
		return b
	}
	return Box{
		XMin: min(b.XMin, other.XMin),
		YMin: min(b.YMin, other.YMin),
		XMax: max(b.XMax, other.XMax),
		YMax: max(b.YMax, other.YMax),
	}
}

// Extend returns the smallest box containing both b and p.
func (b Box) Extend(p Point) Box {
	return b.Union(PointBox(p))
}

// Dilate grows every edge outward by d. Empty boxes stay empty.
func (b Box) Dilate(d int) Box {
	if b.Empty() {
		return b
	}
	return Box{XMin: b.XMin - d, YMin: b.YMin - d, XMax: b.XMax + d, YMax: b.YMax + d}
}

// Contains reports whether p lies inside the box, edges included.
func (b Box) Contains(p Point) bool {
	return p.X >= b.XMin && p.X <= b.XMax && p.Y >= b.YMin && p.Y <= b.YMax
}

// ContainsBox reports whether other lies entirely inside b.
func (b Box) ContainsBox(other Box) bool {
	if other.Empty() {
		return true
	}
	return b.Contains(Point{other.XMin, other.YMin}) && b.Contains(Point{other.XMax, other.YMax})
}

func (b Box) String() string {
	if b.Empty() {
		return "[empty]"
	}
	return fmt.Sprintf("[%d,%d %d,%d]", b.XMin, b.YMin, b.XMax, b.YMax)
}
