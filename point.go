package figgeom

import "math"

// Point is an integer point in Fig device units.
type Point struct {
	X, Y int
}

// Pt is a convenience function to create a Point.
func Pt(x, y int) Point {
	return Point{X: x, Y: y}
}

// Add returns the sum of two points (vector addition).
func (p Point) Add(q Point) Point {
	return Point{X: p.X + q.X, Y: p.Y + q.Y}
}

// Sub returns the difference of two points (vector subtraction).
func (p Point) Sub(q Point) Point {
	return Point{X: p.X - q.X, Y: p.Y - q.Y}
}

// Float converts the point to floating point coordinates.
func (p Point) Float() FPoint {
	return FPoint{X: float64(p.X), Y: float64(p.Y)}
}

// FPoint is a floating point 2D point or vector used during curve math.
type FPoint struct {
	X, Y float64
}

// FPt is a convenience function to create an FPoint.
func FPt(x, y float64) FPoint {
	return FPoint{X: x, Y: y}
}

// Add returns the sum of two points (vector addition).
func (p FPoint) Add(q FPoint) FPoint {
	return FPoint{X: p.X + q.X, Y: p.Y + q.Y}
}

// Sub returns the difference of two points (vector subtraction).
func (p FPoint) Sub(q FPoint) FPoint {
	return FPoint{X: p.X - q.X, Y: p.Y - q.Y}
}

// Mul returns the point scaled by a scalar.
func (p FPoint) Mul(s float64) FPoint {
	return FPoint{X: p.X * s, Y: p.Y * s}
}

// Length returns the length of the vector.
func (p FPoint) Length() float64 {
	return math.Hypot(p.X, p.Y)
}

// Lerp performs linear interpolation between two points.
// t=0 returns p, t=1 returns q.
func (p FPoint) Lerp(q FPoint, t float64) FPoint {
	return FPoint{
		X: p.X + (q.X-p.X)*t,
		Y: p.Y + (q.Y-p.Y)*t,
	}
}

// Round rounds both coordinates half away from zero.
func (p FPoint) Round() Point {
	return Point{X: int(math.Round(p.X)), Y: int(math.Round(p.Y))}
}
