package scene

import (
	"fmt"

	"github.com/gogpu/figgeom"
	"github.com/gogpu/figgeom/internal/figtext"
	"github.com/gogpu/figgeom/internal/measure"
)

var arrowTypes = map[string]figgeom.ArrowType{
	"stick":            figgeom.ArrowStick,
	"triangle":         figgeom.ArrowTriangle,
	"indented":         figgeom.ArrowIndented,
	"pointed":          figgeom.ArrowPointed,
	"diamond":          figgeom.ArrowDiamond,
	"circle":           figgeom.ArrowCircle,
	"half-circle":      figgeom.ArrowHalfCircle,
	"square":           figgeom.ArrowSquare,
	"reverse-triangle": figgeom.ArrowReverseTriangle,
	"wye":              figgeom.ArrowWyeBar,
	"fork":             figgeom.ArrowFork,
}

var lineTypes = map[string]figgeom.LineType{
	"":         figgeom.LinePolyline,
	"polyline": figgeom.LinePolyline,
	"box":      figgeom.LineBox,
	"polygon":  figgeom.LinePolygon,
	"arc-box":  figgeom.LineArcBox,
	"picture":  figgeom.LinePicture,
}

var splineKinds = map[string]figgeom.SplineKind{
	"":              figgeom.SplineOpenApprox,
	"open-approx":   figgeom.SplineOpenApprox,
	"closed-approx": figgeom.SplineClosedApprox,
	"open-interp":   figgeom.SplineOpenInterp,
	"closed-interp": figgeom.SplineClosedInterp,
	"open-x":        figgeom.SplineOpenX,
	"closed-x":      figgeom.SplineClosedX,
}

var justifications = map[string]figgeom.TextType{
	"":       figgeom.TextLeft,
	"left":   figgeom.TextLeft,
	"center": figgeom.TextCenter,
	"right":  figgeom.TextRight,
}

func lookup[T any](table map[string]T, what, name string) (T, error) {
	v, ok := table[name]
	if !ok {
		return v, fmt.Errorf("%s %q: %w", what, name, ErrUnknownName)
	}
	return v, nil
}

func (g *Group) build(path string) (*figgeom.Compound, error) {
	c := &figgeom.Compound{}
	for i := range g.Arcs {
		a, err := g.Arcs[i].build()
		if err != nil {
			return nil, fmt.Errorf("scene: %sarcs[%d]: %w", path, i, err)
		}
		c.Arcs = append(c.Arcs, a)
	}
	for i := range g.Ellipses {
		c.Ellipses = append(c.Ellipses, g.Ellipses[i].build())
	}
	for i := range g.Lines {
		l, err := g.Lines[i].build()
		if err != nil {
			return nil, fmt.Errorf("scene: %slines[%d]: %w", path, i, err)
		}
		c.Lines = append(c.Lines, l)
	}
	for i := range g.Splines {
		s, err := g.Splines[i].build()
		if err != nil {
			return nil, fmt.Errorf("scene: %ssplines[%d]: %w", path, i, err)
		}
		c.Splines = append(c.Splines, s)
	}
	for i := range g.Texts {
		t, err := g.Texts[i].build()
		if err != nil {
			return nil, fmt.Errorf("scene: %stexts[%d]: %w", path, i, err)
		}
		c.Texts = append(c.Texts, t)
	}
	for i := range g.Compounds {
		sub, err := g.Compounds[i].build(fmt.Sprintf("%scompounds[%d].", path, i))
		if err != nil {
			return nil, err
		}
		c.Compounds = append(c.Compounds, sub)
	}
	return c, nil
}

func (p Point) point() figgeom.Point {
	return figgeom.Pt(p[0], p[1])
}

func points(ps []Point) []figgeom.Point {
	out := make([]figgeom.Point, len(ps))
	for i, p := range ps {
		out[i] = p.point()
	}
	return out
}

func (a *Arrow) build() (*figgeom.Arrow, error) {
	if a == nil {
		return nil, nil
	}
	typ, err := lookup(arrowTypes, "arrow type", a.Type)
	if err != nil {
		return nil, err
	}
	out := &figgeom.Arrow{
		Type:      typ,
		Style:     figgeom.ArrowHollow,
		Thickness: a.Thickness,
		Width:     a.Width,
		Height:    a.Height,
	}
	if a.Filled {
		out.Style = figgeom.ArrowFilled
	}
	return out, nil
}

func arrows(fwd, back *Arrow) (figgeom.Arrows, error) {
	f, err := fwd.build()
	if err != nil {
		return figgeom.Arrows{}, fmt.Errorf("forward: %w", err)
	}
	b, err := back.build()
	if err != nil {
		return figgeom.Arrows{}, fmt.Errorf("back: %w", err)
	}
	return figgeom.Arrows{Forward: f, Back: b}, nil
}

func (a *Arc) build() (*figgeom.Arc, error) {
	if len(a.Points) != 3 {
		return nil, fmt.Errorf("arc needs 3 points, got %d", len(a.Points))
	}
	arr, err := arrows(a.Forward, a.Back)
	if err != nil {
		return nil, err
	}
	out := &figgeom.Arc{
		Type:      figgeom.ArcOpen,
		Direction: figgeom.CounterClockwise,
		Thickness: a.Thickness,
		Center:    figgeom.FPt(a.Center[0], a.Center[1]),
		Arrows:    arr,
	}
	if a.Pie {
		out.Type = figgeom.ArcPieWedge
	}
	if a.Clockwise {
		out.Direction = figgeom.Clockwise
	}
	for i, p := range a.Points {
		out.Points[i] = p.point()
	}
	return out, nil
}

func (e *Ellipse) build() *figgeom.Ellipse {
	typ := figgeom.EllipseByRadii
	if e.Radii[0] == e.Radii[1] {
		typ = figgeom.CircleByRadius
	}
	return &figgeom.Ellipse{
		Type:      typ,
		Thickness: e.Thickness,
		Center:    e.Center.point(),
		Radii:     e.Radii.point(),
		Angle:     figgeom.DegToRad(e.Angle),
	}
}

func (l *Line) build() (*figgeom.Line, error) {
	typ, err := lookup(lineTypes, "line type", l.Type)
	if err != nil {
		return nil, err
	}
	if len(l.Points) == 0 {
		return nil, fmt.Errorf("line: %w", figgeom.ErrTooFewPoints)
	}
	arr, err := arrows(l.Forward, l.Back)
	if err != nil {
		return nil, err
	}
	return &figgeom.Line{
		Type:      typ,
		Thickness: l.Thickness,
		Radius:    l.Radius,
		Points:    points(l.Points),
		Arrows:    arr,
	}, nil
}

func (s *Spline) build() (*figgeom.Spline, error) {
	kind, err := lookup(splineKinds, "spline kind", s.Kind)
	if err != nil {
		return nil, err
	}
	arr, err := arrows(s.Forward, s.Back)
	if err != nil {
		return nil, err
	}
	out := &figgeom.Spline{
		Kind:      kind,
		Thickness: s.Thickness,
		Points:    points(s.Points),
		Arrows:    arr,
	}

	switch {
	case len(s.Handles) > 0:
		out.Controls = make([]figgeom.ControlPoint, len(s.Handles))
		for i, h := range s.Handles {
			out.Controls[i] = figgeom.ControlPoint{LX: h[0], LY: h[1], RX: h[2], RY: h[3]}
		}
	case len(s.Shapes) > 0:
		if len(s.Shapes) != len(s.Points) {
			return nil, fmt.Errorf("%d shape factors for %d points: %w",
				len(s.Shapes), len(s.Points), figgeom.ErrMismatchedControls)
		}
		out.Controls = make([]figgeom.ControlPoint, len(s.Shapes))
		for i, sf := range s.Shapes {
			if sf < -1 || sf > 1 {
				return nil, fmt.Errorf("shape factor %g outside [-1, 1]", sf)
			}
			out.Controls[i].S = sf
		}
	}

	if err := out.Validate(); err != nil {
		return nil, err
	}
	return out, nil
}

func (t *Text) build() (*figgeom.Text, error) {
	typ, err := lookup(justifications, "justification", t.Justify)
	if err != nil {
		return nil, err
	}
	str, err := figtext.Decode(t.String)
	if err != nil {
		return nil, err
	}
	out := &figgeom.Text{
		Type:    typ,
		Base:    t.Base.point(),
		Angle:   figgeom.DegToRad(t.Angle),
		Length:  t.Length,
		Height:  t.Height,
		Special: t.Special,
		String:  str,
	}

	if out.Length == 0 || out.Height == 0 {
		size := t.Size
		if size == 0 {
			size = DefaultTextSize
		}
		l, h, err := measure.Extent(str, size)
		if err != nil {
			return nil, err
		}
		if out.Length == 0 {
			out.Length = float64(l)
		}
		if out.Height == 0 {
			out.Height = float64(h)
		}
	}
	return out, nil
}
