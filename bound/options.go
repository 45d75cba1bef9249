package bound

import (
	"github.com/gogpu/figgeom/arrow"
	"github.com/gogpu/figgeom/xspline"
)

// Option configures a bounding computation.
type Option func(*options)

type options struct {
	includeText bool
	precision   float64
	mag         float64
}

func newOptions(opts []Option) options {
	o := options{includeText: true, precision: xspline.HighPrecision, mag: 1}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// WithText controls whether special texts (typesetter input, or strings
// containing a backslash) count towards the bound. They do by default.
func WithText(include bool) Option {
	return func(o *options) {
		o.includeText = include
	}
}

// WithPrecision sets the flattening precision used for X-splines.
func WithPrecision(p float64) Option {
	return func(o *options) {
		if p > 0 {
			o.precision = p
		}
	}
}

// WithMag sets the output magnification passed to arrowhead computation.
func WithMag(mag float64) Option {
	return func(o *options) {
		if mag > 0 {
			o.mag = mag
		}
	}
}

func (o options) arrowOpts() []arrow.Option {
	return []arrow.Option{arrow.WithMag(o.mag)}
}

func (o options) splineOpts() []xspline.Option {
	return []xspline.Option{xspline.WithPrecision(o.precision)}
}
