package scene

import (
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/gogpu/figgeom"
)

// ErrUnknownName is returned for a type, kind or justification name the
// loader does not know.
var ErrUnknownName = errors.New("scene: unknown name")

// DefaultTextSize is the point size used for texts that don't set one.
const DefaultTextSize = 12

// Point is an [x, y] pair in Fig units.
type Point [2]int

// Arrow describes one arrowhead.
type Arrow struct {
	Type      string  `yaml:"type"`
	Filled    bool    `yaml:"filled"`
	Thickness float64 `yaml:"thickness"`
	Width     float64 `yaml:"width"`
	Height    float64 `yaml:"height"`
}

// Arc is a circular arc through three points.
type Arc struct {
	Pie       bool       `yaml:"pie"`
	Clockwise bool       `yaml:"clockwise"`
	Thickness int        `yaml:"thickness"`
	Center    [2]float64 `yaml:"center"`
	Points    []Point    `yaml:"points"`
	Forward   *Arrow     `yaml:"forward"`
	Back      *Arrow     `yaml:"back"`
}

// Ellipse is a rotated ellipse; a circle when both radii are equal.
type Ellipse struct {
	Thickness int     `yaml:"thickness"`
	Center    Point   `yaml:"center"`
	Radii     Point   `yaml:"radii"`
	Angle     float64 `yaml:"angle"`
}

// Line is a polyline or one of its closed variants.
type Line struct {
	Type      string  `yaml:"type"`
	Thickness int     `yaml:"thickness"`
	Radius    int     `yaml:"radius"`
	Points    []Point `yaml:"points"`
	Forward   *Arrow  `yaml:"forward"`
	Back      *Arrow  `yaml:"back"`
}

// Spline is any of the six spline kinds. Interpolated splines need one
// [lx, ly, rx, ry] handle quadruple per point; X-splines may give one shape
// factor per point.
type Spline struct {
	Kind      string       `yaml:"kind"`
	Thickness int          `yaml:"thickness"`
	Points    []Point      `yaml:"points"`
	Handles   [][4]float64 `yaml:"handles"`
	Shapes    []float64    `yaml:"shapes"`
	Forward   *Arrow       `yaml:"forward"`
	Back      *Arrow       `yaml:"back"`
}

// Text is a single line of text.
type Text struct {
	Justify string  `yaml:"justify"`
	Base    Point   `yaml:"base"`
	Angle   float64 `yaml:"angle"`
	Size    float64 `yaml:"size"`
	Length  float64 `yaml:"length"`
	Height  float64 `yaml:"height"`
	Special bool    `yaml:"special"`
	String  string  `yaml:"string"`
}

// Group holds the objects of a compound.
type Group struct {
	Arcs      []Arc     `yaml:"arcs"`
	Ellipses  []Ellipse `yaml:"ellipses"`
	Lines     []Line    `yaml:"lines"`
	Splines   []Spline  `yaml:"splines"`
	Texts     []Text    `yaml:"texts"`
	Compounds []Group   `yaml:"compounds"`
}

// Scene is a named top-level compound.
type Scene struct {
	Name  string `yaml:"name"`
	Group `yaml:",inline"`
}

// Load decodes a scene. Unknown keys are an error.
func Load(r io.Reader) (*Scene, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var s Scene
	if err := dec.Decode(&s); err != nil {
		if errors.Is(err, io.EOF) {
			return &s, nil
		}
		return nil, fmt.Errorf("scene: %w", err)
	}
	return &s, nil
}

// LoadFile decodes the scene stored at path. A scene without a name is
// named after the file.
func LoadFile(path string) (*Scene, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("scene: %w", err)
	}
	defer func() {
		_ = f.Close()
	}()

	s, err := Load(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	if s.Name == "" {
		s.Name = path
	}
	return s, nil
}

// Build converts the scene into the geometric data model.
func (s *Scene) Build() (*figgeom.Compound, error) {
	return s.Group.build("")
}
