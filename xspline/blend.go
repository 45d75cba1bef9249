package xspline

import "github.com/gogpu/figgeom"

// Blending functions of the X-spline model. Positive shape factors use
// fBlend with knots Tk placed around the segment index k; negative shape
// factors use gBlend and hBlend with q = -s.

// fBlend is the general blending function with p = 2*denominator^2.
func fBlend(numerator, denominator float64) float64 {
	p := 2 * denominator * denominator
	u := numerator / denominator
	return u * u * u * (10 - p + (2*p-15)*u + (6-p)*u*u)
}

// gBlend is the interpolating blend of the near points, with p = 2.
func gBlend(u, q float64) float64 {
	return u * (q + u*(2*q+u*(8-12*q+u*(14*q-11+u*(4-5*q)))))
}

// hBlend is the interpolating blend of the far points.
func hBlend(u, q float64) float64 {
	u2 := u * u
	return u * (q + u*(2*q+u2*(-2*q-u*q)))
}

// weights holds the blending weights of p0..p3 at one parameter value.
type weights [4]float64

func (w *weights) negativeS1(t, s1 float64) {
	q := -s1
	w[0] = hBlend(-t, q)
	w[2] = gBlend(t, q)
}

func (w *weights) negativeS2(t, s2 float64) {
	q := -s2
	w[1] = gBlend(1-t, q)
	w[3] = hBlend(t-1, q)
}

func (w *weights) positiveS1(k, t, s1 float64) {
	tk := k + 1 + s1
	if t+k+1 < tk {
		w[0] = fBlend(t+k+1-tk, k-tk)
	} else {
		w[0] = 0
	}

	tk = k + 1 - s1
	w[2] = fBlend(t+k+1-tk, k+2-tk)
}

func (w *weights) positiveS2(k, t, s2 float64) {
	tk := k + 2 + s2
	w[1] = fBlend(t+k+1-tk, k+1-tk)

	tk = k + 2 - s2
	if t+k+1 > tk {
		w[3] = fBlend(t+k+1-tk, k+3-tk)
	} else {
		w[3] = 0
	}
}

// blend sets the weights for parameter t in the regime selected by the
// signs of s1 and s2. Zero shape factors take the positive branch; both
// branches agree at s = 0.
func (w *weights) blend(k, t, s1, s2 float64) {
	if s1 < 0 {
		w.negativeS1(t, s1)
	} else {
		w.positiveS1(k, t, s1)
	}
	if s2 < 0 {
		w.negativeS2(t, s2)
	} else {
		w.positiveS2(k, t, s2)
	}
}

// eval returns the normalized weighted sum of the four control points.
func (w *weights) eval(p0, p1, p2, p3 figgeom.Point) figgeom.FPoint {
	sum := w[0] + w[1] + w[2] + w[3]
	x := w[0]*float64(p0.X) + w[1]*float64(p1.X) + w[2]*float64(p2.X) + w[3]*float64(p3.X)
	y := w[0]*float64(p0.Y) + w[1]*float64(p1.Y) + w[2]*float64(p2.Y) + w[3]*float64(p3.Y)
	return figgeom.FPoint{X: x / sum, Y: y / sum}
}
