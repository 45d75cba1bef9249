package arrow

import "github.com/gogpu/figgeom"

// shape is an arrowhead template. Points are in a frame normalized to the
// arrow size: x runs along the shaft (the tip sits at x = 0 and most
// backs at x = -1, in units of the arrow height) and y across it (in units
// of the arrow width). The indented head's barbs reach back to x = -1.25.
type shape struct {
	points []figgeom.FPoint

	// tip is the index of the point that lands on the shaft end.
	tip int

	// tipmv controls how far a thick outline pushes the tip past the
	// shaft end: > 0 from the tip half-angle, 0 for blunt shapes, < 0 no
	// adjustment.
	tipmv float64
}

func fp(x, y float64) figgeom.FPoint { return figgeom.FPoint{X: x, Y: y} }

// shapes holds the templates indexed by arrow type and style. The circle and
// half circle have no template; their tipmv is still used.
var shapes = [figgeom.NumArrowTypes][2]shape{
	figgeom.ArrowStick: {
		{points: []figgeom.FPoint{fp(-1, 0.5), fp(0, 0), fp(-1, -0.5)}, tip: 1, tipmv: 2.15},
		{points: []figgeom.FPoint{fp(-1, 0.5), fp(0, 0), fp(-1, -0.5)}, tip: 1, tipmv: 2.15},
	},
	figgeom.ArrowTriangle: {
		{points: []figgeom.FPoint{fp(-1, 0.5), fp(0, 0), fp(-1, -0.5), fp(-1, 0.5)}, tip: 1, tipmv: 2.1},
		{points: []figgeom.FPoint{fp(-1, 0.5), fp(0, 0), fp(-1, -0.5), fp(-1, 0.5)}, tip: 1, tipmv: 2.1},
	},
	figgeom.ArrowIndented: {
		{points: []figgeom.FPoint{fp(-1.25, 0.5), fp(0, 0), fp(-1.25, -0.5), fp(-1, 0), fp(-1.25, 0.5)}, tip: 1, tipmv: 2.6},
		{points: []figgeom.FPoint{fp(-1.25, 0.5), fp(0, 0), fp(-1.25, -0.5), fp(-1, 0), fp(-1.25, 0.5)}, tip: 1, tipmv: 2.6},
	},
	figgeom.ArrowPointed: {
		{points: []figgeom.FPoint{fp(-0.75, 0.5), fp(0, 0), fp(-0.75, -0.5), fp(-1, 0), fp(-0.75, 0.5)}, tip: 1, tipmv: 1.5},
		{points: []figgeom.FPoint{fp(-0.75, 0.5), fp(0, 0), fp(-0.75, -0.5), fp(-1, 0), fp(-0.75, 0.5)}, tip: 1, tipmv: 1.5},
	},
	figgeom.ArrowDiamond: {
		{points: []figgeom.FPoint{fp(-0.5, 0.5), fp(0, 0), fp(-0.5, -0.5), fp(-1, 0), fp(-0.5, 0.5)}, tip: 1, tipmv: 1.15},
		{points: []figgeom.FPoint{fp(-0.5, 0.5), fp(0, 0), fp(-0.5, -0.5), fp(-1, 0), fp(-0.5, 0.5)}, tip: 1, tipmv: 1.15},
	},
	figgeom.ArrowCircle: {
		{tipmv: 0},
		{tipmv: 0},
	},
	figgeom.ArrowHalfCircle: {
		{tipmv: -1},
		{tipmv: -1},
	},
	figgeom.ArrowSquare: {
		{points: []figgeom.FPoint{fp(-1, 0.5), fp(0, 0.5), fp(0, -0.5), fp(-1, -0.5), fp(-1, 0.5)}, tip: 1, tipmv: 0},
		{points: []figgeom.FPoint{fp(-1, 0.5), fp(0, 0.5), fp(0, -0.5), fp(-1, -0.5), fp(-1, 0.5)}, tip: 1, tipmv: 0},
	},
	figgeom.ArrowReverseTriangle: {
		{points: []figgeom.FPoint{fp(-1, 0), fp(0, 0.5), fp(0, -0.5), fp(-1, 0)}, tip: 1, tipmv: 0},
		{points: []figgeom.FPoint{fp(-1, 0), fp(0, 0.5), fp(0, -0.5), fp(-1, 0)}, tip: 1, tipmv: 0},
	},
	figgeom.ArrowWyeBar: {
		{points: []figgeom.FPoint{fp(0, 0.5), fp(-1, 0), fp(0, -0.5)}, tip: 0, tipmv: -1},
		{points: []figgeom.FPoint{fp(0, 0.5), fp(0, -0.5)}, tip: 1, tipmv: 0},
	},
	figgeom.ArrowFork: {
		{points: []figgeom.FPoint{fp(0, 0.5), fp(-1, 0.5), fp(-1, -0.5), fp(0, -0.5)}, tip: 0, tipmv: -1},
		{points: []figgeom.FPoint{fp(-1, 0.5), fp(0, 0.5), fp(0, -0.5), fp(-1, -0.5)}, tip: 0, tipmv: -1},
	},
}

// lookup returns the template of a, clamping unknown types to the stick
// arrow.
func lookup(a *figgeom.Arrow) shape {
	t, s := a.Type, a.Style
	if t < 0 || t >= figgeom.NumArrowTypes {
		figgeom.Logger().Warn("arrow: unknown arrow type, using stick arrow", "type", int(t))
		t = figgeom.ArrowStick
	}
	if s != figgeom.ArrowFilled {
		s = figgeom.ArrowHollow
	}
	return shapes[t][s]
}
