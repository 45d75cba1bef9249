package bound

import (
	"fmt"

	"github.com/gogpu/figgeom"
)

// Object returns the bounding box of any primitive, without stroke
// dilation. Unknown implementations give an empty box.
func Object(obj figgeom.Object, opts ...Option) figgeom.Box {
	switch v := obj.(type) {
	case *figgeom.Arc:
		return Arc(v, opts...)
	case *figgeom.Ellipse:
		return Ellipse(v)
	case *figgeom.Line:
		return Line(v, opts...)
	case *figgeom.Spline:
		return Spline(v, opts...)
	case *figgeom.Text:
		return Text(v, opts...)
	}
	figgeom.Logger().Warn("bound: unsupported object", "type", fmt.Sprintf("%T", obj))
	return figgeom.EmptyBox()
}

// Stroked returns the bounding box of obj dilated by its stroke half-width.
func Stroked(obj figgeom.Object, opts ...Option) figgeom.Box {
	return Object(obj, opts...).Dilate(figgeom.HalfWidth(obj.StrokeWidth()))
}

// Compound returns the union of the stroked bounding boxes of every
// primitive in c and its nested compounds. A compound with no primitives
// gives an empty box.
//
// Ellipse already includes its own half-width, so an ellipse in a
// compound is grown by the half-width twice. Existing figure margins
// depend on that extra padding.
func Compound(c *figgeom.Compound, opts ...Option) figgeom.Box {
	b := figgeom.EmptyBox()
	if c == nil {
		return b
	}
	for _, a := range c.Arcs {
		b = b.Union(Stroked(a, opts...))
	}
	for _, e := range c.Ellipses {
		b = b.Union(Stroked(e, opts...))
	}
	for _, l := range c.Lines {
		b = b.Union(Stroked(l, opts...))
	}
	for _, s := range c.Splines {
		b = b.Union(Stroked(s, opts...))
	}
	for _, t := range c.Texts {
		b = b.Union(Stroked(t, opts...))
	}
	for _, sub := range c.Compounds {
		b = b.Union(Compound(sub, opts...))
	}
	return b
}
