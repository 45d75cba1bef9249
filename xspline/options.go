package xspline

// Precision presets. Smaller values produce more points.
const (
	HighPrecision = 0.5
	LowPrecision  = 1.0
)

// DefaultMaxPoints caps the number of points a single flattening produces.
const DefaultMaxPoints = 25000

// Option configures a flattening call.
//
// Example:
//
//	res, err := xspline.Compute(s,
//	    xspline.WithPrecision(xspline.LowPrecision),
//	    xspline.WithMaxPoints(4096))
type Option func(*options)

type options struct {
	precision float64
	maxPoints int
}

func defaultOptions() options {
	return options{
		precision: HighPrecision,
		maxPoints: DefaultMaxPoints,
	}
}

func newOptions(opts []Option) options {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// WithPrecision sets the flattening tolerance. Non-positive values are
// ignored.
func WithPrecision(p float64) Option {
	return func(o *options) {
		if p > 0 {
			o.precision = p
		}
	}
}

// WithMaxPoints sets the hard cap on the number of output points. Values
// below 2 are ignored.
func WithMaxPoints(n int) Option {
	return func(o *options) {
		if n >= 2 {
			o.maxPoints = n
		}
	}
}
