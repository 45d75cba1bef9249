package scene

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gogpu/figgeom"
	"github.com/gogpu/figgeom/bound"
)

const sample = `
name: sample
lines:
  - type: polyline
    thickness: 2
    points: [[0, 0], [1200, 600]]
    forward: {type: triangle, filled: true, thickness: 1, width: 60, height: 120}
arcs:
  - center: [0, 0]
    points: [[100, 0], [0, -100], [-100, 0]]
    back: {type: stick, width: 30, height: 60}
ellipses:
  - center: [600, 600]
    radii: [300, 100]
    angle: 90
texts:
  - base: [0, 1500]
    justify: center
    string: 'caf\351'
    length: 400
    height: 150
compounds:
  - splines:
      - kind: open-x
        points: [[0, 0], [600, 600], [1200, 0]]
        shapes: [0, -1, 0]
      - kind: closed-interp
        points: [[0, 0], [100, 0], [100, 100]]
        handles: [[0, 0, 0, 0], [100, 0, 100, 0], [100, 100, 100, 100]]
`

func TestLoad(t *testing.T) {
	s, err := Load(strings.NewReader(sample))
	require.NoError(t, err)

	assert.Equal(t, "sample", s.Name)
	require.Len(t, s.Lines, 1)
	assert.Equal(t, []Point{{0, 0}, {1200, 600}}, s.Lines[0].Points)
	require.NotNil(t, s.Lines[0].Forward)
	assert.True(t, s.Lines[0].Forward.Filled)
	require.Len(t, s.Compounds, 1)
	assert.Len(t, s.Compounds[0].Splines, 2)
}

func TestLoad_Empty(t *testing.T) {
	s, err := Load(strings.NewReader(""))
	require.NoError(t, err)

	c, err := s.Build()
	require.NoError(t, err)
	assert.Zero(t, c.Len())
}

func TestLoad_UnknownField(t *testing.T) {
	_, err := Load(strings.NewReader("lines:\n  - colour: red\n"))
	require.Error(t, err)
}

func TestBuild(t *testing.T) {
	s, err := Load(strings.NewReader(sample))
	require.NoError(t, err)
	c, err := s.Build()
	require.NoError(t, err)

	assert.Equal(t, 6, c.Len())

	l := c.Lines[0]
	assert.Equal(t, figgeom.LinePolyline, l.Type)
	require.NotNil(t, l.Forward)
	assert.Equal(t, figgeom.ArrowTriangle, l.Forward.Type)
	assert.Equal(t, figgeom.ArrowFilled, l.Forward.Style)
	assert.Nil(t, l.Back)

	a := c.Arcs[0]
	assert.Equal(t, figgeom.ArcOpen, a.Type)
	assert.Equal(t, figgeom.CounterClockwise, a.Direction)
	assert.Equal(t, figgeom.Pt(-100, 0), a.Points[2])
	require.NotNil(t, a.Back)
	assert.Equal(t, figgeom.ArrowHollow, a.Back.Style)

	e := c.Ellipses[0]
	assert.Equal(t, figgeom.EllipseByRadii, e.Type)
	assert.InDelta(t, 1.5707963, e.Angle, 1e-6)

	txt := c.Texts[0]
	assert.Equal(t, "café", txt.String)
	assert.Equal(t, figgeom.TextCenter, txt.Type)

	xs := c.Compounds[0].Splines[0]
	assert.Equal(t, figgeom.SplineOpenX, xs.Kind)
	assert.Equal(t, []float64{0, -1, 0}, xs.ShapeFactors())

	is := c.Compounds[0].Splines[1]
	assert.True(t, is.Closed())
	assert.True(t, is.Interpolated())
	assert.Len(t, is.Controls, 3)
}

func TestBuild_Bounds(t *testing.T) {
	s, err := Load(strings.NewReader(sample))
	require.NoError(t, err)
	c, err := s.Build()
	require.NoError(t, err)

	b := bound.Compound(c)
	require.False(t, b.Empty())
	// The text is centred on x=0 and sits on y=1500.
	assert.LessOrEqual(t, b.XMin, -200)
	assert.GreaterOrEqual(t, b.YMax, 1500)
	assert.GreaterOrEqual(t, b.XMax, 1200)
}

func TestBuild_Circle(t *testing.T) {
	s, err := Load(strings.NewReader("ellipses:\n  - center: [0, 0]\n    radii: [50, 50]\n"))
	require.NoError(t, err)
	c, err := s.Build()
	require.NoError(t, err)
	assert.Equal(t, figgeom.CircleByRadius, c.Ellipses[0].Type)
}

func TestBuild_MeasuresText(t *testing.T) {
	s, err := Load(strings.NewReader("texts:\n  - base: [0, 0]\n    string: hello\n"))
	require.NoError(t, err)
	c, err := s.Build()
	require.NoError(t, err)

	txt := c.Texts[0]
	assert.Positive(t, txt.Length)
	assert.Positive(t, txt.Height)
}

func TestBuild_Special(t *testing.T) {
	s, err := Load(strings.NewReader(`texts:
  - base: [0, 0]
    length: 100
    height: 100
    string: '$\\alpha$'
`))
	require.NoError(t, err)
	c, err := s.Build()
	require.NoError(t, err)

	txt := c.Texts[0]
	assert.Equal(t, `$\alpha$`, txt.String)
	assert.True(t, txt.IsSpecial())
	assert.True(t, bound.Compound(c, bound.WithText(false)).Empty())
}

func TestBuild_Errors(t *testing.T) {
	tests := []struct {
		name string
		yaml string
		want error
	}{
		{"unknown arrow", "lines:\n  - points: [[0, 0], [1, 1]]\n    forward: {type: feather}\n", ErrUnknownName},
		{"unknown line type", "lines:\n  - type: zigzag\n    points: [[0, 0]]\n", ErrUnknownName},
		{"empty line", "lines:\n  - type: box\n", figgeom.ErrTooFewPoints},
		{"unknown spline kind", "splines:\n  - kind: wobbly\n    points: [[0, 0], [1, 1]]\n", ErrUnknownName},
		{"closed spline too short", "splines:\n  - kind: closed-x\n    points: [[0, 0], [1, 1]]\n", figgeom.ErrTooFewPoints},
		{"interp without handles", "splines:\n  - kind: open-interp\n    points: [[0, 0], [1, 1]]\n", figgeom.ErrMismatchedControls},
		{"shape count", "splines:\n  - kind: open-x\n    points: [[0, 0], [1, 1]]\n    shapes: [0]\n", figgeom.ErrMismatchedControls},
		{"unknown justification", "texts:\n  - justify: middle\n    length: 1\n    height: 1\n", ErrUnknownName},
		{"nested", "compounds:\n  - compounds:\n      - lines:\n          - type: ring\n            points: [[0, 0]]\n", ErrUnknownName},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, err := Load(strings.NewReader(tt.yaml))
			require.NoError(t, err)
			_, err = s.Build()
			require.Error(t, err)
			assert.True(t, errors.Is(err, tt.want), "error %v is not %v", err, tt.want)
		})
	}
}

func TestBuild_ArcPoints(t *testing.T) {
	s, err := Load(strings.NewReader("arcs:\n  - points: [[0, 0], [1, 1]]\n"))
	require.NoError(t, err)
	_, err = s.Build()
	require.Error(t, err)
}

func TestBuild_NestedPath(t *testing.T) {
	s, err := Load(strings.NewReader("compounds:\n  - {}\n  - lines:\n      - type: ring\n        points: [[0, 0]]\n"))
	require.NoError(t, err)
	_, err = s.Build()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "compounds[1].lines[0]")
}

func TestLoadFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "fig.yaml")
	require.NoError(t, os.WriteFile(path, []byte("lines:\n  - points: [[0, 0], [10, 10]]\n"), 0o600))

	s, err := LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, path, s.Name)

	_, err = LoadFile(filepath.Join(dir, "missing.yaml"))
	require.Error(t, err)
}
