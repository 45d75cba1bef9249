package bound

import (
	"math"
	"strings"

	"github.com/gogpu/figgeom"
)

// descenders are the characters that reach below the baseline.
const descenders = "gjpqy$(){},;"

// Empirical width corrections: texts render slightly longer than their
// recorded length.
const (
	sideScale   = 1.0256
	centerScale = 1.95
)

// Text returns the bounding box of a text object.
//
// There are no font metrics here: the box spans the text's length along
// the baseline and its height above it. If the string contains a character
// with a descender the vertical window moves down, from
// [base-height, base] to [base-0.8*height, base+0.3*height]. The four
// corners are rotated by the text angle around the base point.
//
// Special texts give an empty box when WithText(false) is in effect.
func Text(t *figgeom.Text, opts ...Option) figgeom.Box {
	o := newOptions(opts)
	if !o.includeText && t.IsSpecial() {
		return figgeom.EmptyBox()
	}

	var x1, x2 float64
	switch t.Type {
	case figgeom.TextLeft:
		x1, x2 = 0, t.Length*sideScale
	case figgeom.TextCenter:
		x1, x2 = -t.Length/centerScale, t.Length/centerScale
	case figgeom.TextRight:
		x1, x2 = -t.Length*sideScale, 0
	default:
		figgeom.Logger().Warn("bound: unknown text justification, using left", "type", int(t.Type))
		x1, x2 = 0, t.Length*sideScale
	}

	// y grows down: top is above the baseline.
	top, bottom := -t.Height, 0.0
	if strings.ContainsAny(t.String, descenders) {
		top, bottom = -0.8*t.Height, 0.3*t.Height
	}

	sin, cos := math.Sincos(t.Angle)
	b := figgeom.EmptyBox()
	for _, c := range [4][2]float64{{x1, top}, {x2, top}, {x2, bottom}, {x1, bottom}} {
		dx := c[0]*cos + c[1]*sin
		dy := -c[0]*sin + c[1]*cos
		b = b.Extend(figgeom.Point{
			X: t.Base.X + int(math.Round(dx)),
			Y: t.Base.Y + int(math.Round(dy)),
		})
	}
	return b
}
