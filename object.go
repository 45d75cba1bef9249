package figgeom

import (
	"fmt"
	"math"
)

// -------------------------------------------------------------------
// Arrows
// -------------------------------------------------------------------

// ArrowType selects the arrowhead shape. Types 0-10 are defined; 5 (circle)
// and 6 (half circle) are generated procedurally, the rest come from the
// arrowhead shape table.
type ArrowType int

// Arrowhead shapes.
const (
	ArrowStick ArrowType = iota
	ArrowTriangle
	ArrowIndented
	ArrowPointed
	ArrowDiamond
	ArrowCircle
	ArrowHalfCircle
	ArrowSquare
	ArrowReverseTriangle
	ArrowWyeBar
	ArrowFork
)

// NumArrowTypes is the number of defined arrowhead shapes.
const NumArrowTypes = 11

// ArrowStyle selects between the hollow and filled variant of an arrowhead.
type ArrowStyle int

// Arrowhead fill styles.
const (
	ArrowHollow ArrowStyle = 0
	ArrowFilled ArrowStyle = 1
)

// Arrow describes an arrowhead attached to one end of a line, spline or arc.
type Arrow struct {
	Type      ArrowType
	Style     ArrowStyle
	Thickness float64
	Width     float64
	Height    float64
}

// Validate reports whether the arrow's type and style are in range.
func (a *Arrow) Validate() error {
	if a.Type < 0 || a.Type >= NumArrowTypes {
		return fmt.Errorf("arrow type %d: %w", a.Type, ErrUnknownKind)
	}
	if a.Style != ArrowHollow && a.Style != ArrowFilled {
		return fmt.Errorf("arrow style %d: %w", a.Style, ErrUnknownKind)
	}
	return nil
}

// Arrows holds the optional arrowheads of an object. Forward sits at the
// last point, Back at the first.
type Arrows struct {
	Forward *Arrow
	Back    *Arrow
}

// Any reports whether at least one arrowhead is present.
func (a Arrows) Any() bool {
	return a.Forward != nil || a.Back != nil
}

// -------------------------------------------------------------------
// Arc
// -------------------------------------------------------------------

// ArcType distinguishes open arcs from pie wedges.
type ArcType int

// Arc types.
const (
	ArcOpen     ArcType = 1
	ArcPieWedge ArcType = 2
)

// Direction is the sweep direction of an arc.
type Direction int

// Arc sweep directions.
const (
	Clockwise        Direction = 0
	CounterClockwise Direction = 1
)

// Arc is a circular arc through three points with an explicit center.
// Points[0] is the start, Points[1] a point on the arc between the ends and
// Points[2] the end.
type Arc struct {
	Type      ArcType
	Direction Direction
	Thickness int
	Center    FPoint
	Points    [3]Point
	Arrows
}

// Radius returns the distance from the center to the start point.
func (a *Arc) Radius() float64 {
	return a.Points[0].Float().Sub(a.Center).Length()
}

// Reversed returns a copy of the arc traversed in the opposite direction.
// The arrowheads swap ends with the points.
func (a *Arc) Reversed() *Arc {
	r := *a
	r.Points[0], r.Points[2] = a.Points[2], a.Points[0]
	if a.Direction == Clockwise {
		r.Direction = CounterClockwise
	} else {
		r.Direction = Clockwise
	}
	r.Forward, r.Back = a.Back, a.Forward
	return &r
}

// Validate checks the arc type and direction.
func (a *Arc) Validate() error {
	if a.Type != ArcOpen && a.Type != ArcPieWedge {
		return fmt.Errorf("arc type %d: %w", a.Type, ErrUnknownKind)
	}
	if a.Direction != Clockwise && a.Direction != CounterClockwise {
		return fmt.Errorf("arc direction %d: %w", a.Direction, ErrUnknownKind)
	}
	return nil
}

// -------------------------------------------------------------------
// Ellipse
// -------------------------------------------------------------------

// EllipseType records how an ellipse or circle was specified.
type EllipseType int

// Ellipse types.
const (
	EllipseByRadii    EllipseType = 1
	EllipseByDiameter EllipseType = 2
	CircleByRadius    EllipseType = 3
	CircleByDiameter  EllipseType = 4
)

// Ellipse is a rotated ellipse. Angle is in radians, counter-clockwise as
// seen on screen.
type Ellipse struct {
	Type      EllipseType
	Thickness int
	Center    Point
	Radii     Point
	Angle     float64
}

// Validate checks the ellipse type.
func (e *Ellipse) Validate() error {
	if e.Type < EllipseByRadii || e.Type > CircleByDiameter {
		return fmt.Errorf("ellipse type %d: %w", e.Type, ErrUnknownKind)
	}
	return nil
}

// -------------------------------------------------------------------
// Line
// -------------------------------------------------------------------

// LineType is the polyline subtype.
type LineType int

// Polyline subtypes.
const (
	LinePolyline LineType = 1
	LineBox      LineType = 2
	LinePolygon  LineType = 3
	LineArcBox   LineType = 4
	LinePicture  LineType = 5
)

// Line is a polyline, box, polygon, rounded box or imported picture frame.
type Line struct {
	Type      LineType
	Thickness int
	Radius    int // corner radius of arc boxes
	Points    []Point
	Arrows
}

// Closed reports whether the last point connects back to the first.
func (l *Line) Closed() bool {
	return l.Type != LinePolyline
}

// Validate checks the line type.
func (l *Line) Validate() error {
	if l.Type < LinePolyline || l.Type > LinePicture {
		return fmt.Errorf("line type %d: %w", l.Type, ErrUnknownKind)
	}
	return nil
}

// -------------------------------------------------------------------
// Spline
// -------------------------------------------------------------------

// SplineKind selects the spline model and closedness.
type SplineKind int

// Spline kinds.
const (
	SplineOpenApprox SplineKind = iota
	SplineClosedApprox
	SplineOpenInterp
	SplineClosedInterp
	SplineOpenX
	SplineClosedX
)

// Shape factors with special meaning for X-splines.
const (
	// ShapeAngular makes the curve pass through the control point with a corner.
	ShapeAngular = 0.0
	// ShapeApprox is the fully approximating (B-spline like) shape factor.
	ShapeApprox = 1.0
	// ShapeInterp is the fully interpolating (Catmull-Rom like) shape factor.
	ShapeInterp = -1.0
)

// ControlPoint is the per-point control datum of a spline. Interpolated
// splines use the left and right tangent handles; X-splines use the shape
// factor S in [-1, 1].
type ControlPoint struct {
	LX, LY float64
	RX, RY float64
	S      float64
}

// Spline is a curve through or near its Points. Controls is parallel to
// Points.
type Spline struct {
	Kind      SplineKind
	Thickness int
	Points    []Point
	Controls  []ControlPoint
	Arrows
}

// Closed reports whether the spline wraps around to its first point.
func (s *Spline) Closed() bool {
	return s.Kind == SplineClosedApprox || s.Kind == SplineClosedInterp || s.Kind == SplineClosedX
}

// Interpolated reports whether the spline is a Bezier spline with explicit
// tangent handles.
func (s *Spline) Interpolated() bool {
	return s.Kind == SplineOpenInterp || s.Kind == SplineClosedInterp
}

// XSpline reports whether the spline is an X-spline driven by shape factors.
func (s *Spline) XSpline() bool {
	return s.Kind == SplineOpenX || s.Kind == SplineClosedX
}

// ShapeFactors returns the per-point shape factors of the spline. X-splines
// take them from their controls (missing ones default to ShapeApprox),
// approximated splines use ShapeApprox and interpolated ones ShapeInterp.
// The ends of open splines are always angular.
func (s *Spline) ShapeFactors() []float64 {
	sf := make([]float64, len(s.Points))
	for i := range sf {
		switch {
		case s.XSpline() && i < len(s.Controls):
			sf[i] = s.Controls[i].S
		case s.Interpolated():
			sf[i] = ShapeInterp
		default:
			sf[i] = ShapeApprox
		}
	}
	if !s.Closed() && len(sf) > 0 {
		sf[0] = ShapeAngular
		sf[len(sf)-1] = ShapeAngular
	}
	return sf
}

// Validate checks the spline kind and the structural invariants.
func (s *Spline) Validate() error {
	if s.Kind < SplineOpenApprox || s.Kind > SplineClosedX {
		return fmt.Errorf("spline kind %d: %w", s.Kind, ErrUnknownKind)
	}
	if s.Interpolated() && len(s.Controls) != len(s.Points) {
		return fmt.Errorf("spline with %d points and %d controls: %w",
			len(s.Points), len(s.Controls), ErrMismatchedControls)
	}
	if s.Closed() && len(s.Points) < 3 {
		return fmt.Errorf("closed spline with %d points: %w", len(s.Points), ErrTooFewPoints)
	}
	if len(s.Points) < 2 {
		return fmt.Errorf("spline with %d points: %w", len(s.Points), ErrTooFewPoints)
	}
	return nil
}

// -------------------------------------------------------------------
// Text
// -------------------------------------------------------------------

// TextType is the justification of a text object.
type TextType int

// Text justifications.
const (
	TextLeft   TextType = 0
	TextCenter TextType = 1
	TextRight  TextType = 2
)

// Text is a single line of text anchored at Base. Length and Height are the
// rendered extent in device units.
type Text struct {
	Type    TextType
	Base    Point
	Angle   float64
	Length  float64
	Height  float64
	Special bool
	String  string
}

// IsSpecial reports whether the text is meant for a typesetter and should
// not count towards the figure extent unless asked.
func (t *Text) IsSpecial() bool {
	if t.Special {
		return true
	}
	for i := 0; i < len(t.String); i++ {
		if t.String[i] == '\\' {
			return true
		}
	}
	return false
}

// Validate checks the text justification.
func (t *Text) Validate() error {
	if t.Type < TextLeft || t.Type > TextRight {
		return fmt.Errorf("text type %d: %w", t.Type, ErrUnknownKind)
	}
	return nil
}

// -------------------------------------------------------------------
// Compound
// -------------------------------------------------------------------

// Compound groups primitives and nested compounds.
type Compound struct {
	Arcs      []*Arc
	Ellipses  []*Ellipse
	Lines     []*Line
	Splines   []*Spline
	Texts     []*Text
	Compounds []*Compound
}

// Len returns the number of primitives in the compound, nested ones included.
func (c *Compound) Len() int {
	n := len(c.Arcs) + len(c.Ellipses) + len(c.Lines) + len(c.Splines) + len(c.Texts)
	for _, sub := range c.Compounds {
		n += sub.Len()
	}
	return n
}

// DegToRad converts degrees to radians.
func DegToRad(deg float64) float64 {
	return deg * math.Pi / 180
}

// -------------------------------------------------------------------
// Object
// -------------------------------------------------------------------

// Object is implemented by every primitive kind: *Arc, *Ellipse, *Line,
// *Spline and *Text.
type Object interface {
	// StrokeWidth returns the outline thickness in device units. Texts and
	// pictures have none.
	StrokeWidth() int

	isObject()
}

func (a *Arc) StrokeWidth() int     { return a.Thickness }
func (e *Ellipse) StrokeWidth() int { return e.Thickness }
func (s *Spline) StrokeWidth() int  { return s.Thickness }
func (t *Text) StrokeWidth() int    { return 0 }

func (l *Line) StrokeWidth() int {
	if l.Type == LinePicture {
		return 0
	}
	return l.Thickness
}

func (*Arc) isObject()     {}
func (*Ellipse) isObject() {}
func (*Line) isObject()    {}
func (*Spline) isObject()  {}
func (*Text) isObject()    {}

// HalfWidth returns the outward margin a stroke of thickness t adds on each
// side, rounded up.
func HalfWidth(t int) int {
	return (t + 1) / 2
}
