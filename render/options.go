package render

import (
	"image/color"

	"github.com/gogpu/figgeom/xspline"
)

// Option configures a Canvas.
type Option func(*options)

type options struct {
	margin     float64
	minWidth   float64
	background color.Color
	boxes      bool
	precision  float64
}

func newOptions(opts []Option) options {
	o := options{
		margin:     16,
		minWidth:   1,
		background: color.White,
		precision:  xspline.HighPrecision,
	}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// WithMargin sets the blank border around the view in pixels.
func WithMargin(px float64) Option {
	return func(o *options) {
		if px >= 0 {
			o.margin = px
		}
	}
}

// WithMinWidth sets the thinnest stroke drawn, in pixels.
func WithMinWidth(px float64) Option {
	return func(o *options) {
		if px > 0 {
			o.minWidth = px
		}
	}
}

// WithBackground sets the colour the canvas starts with.
func WithBackground(c color.Color) Option {
	return func(o *options) {
		if c != nil {
			o.background = c
		}
	}
}

// WithObjectBoxes overlays the stroked bound of every drawn object.
func WithObjectBoxes(on bool) Option {
	return func(o *options) {
		o.boxes = on
	}
}

// WithPrecision sets the spline flattening precision.
func WithPrecision(p float64) Option {
	return func(o *options) {
		if p > 0 {
			o.precision = p
		}
	}
}
