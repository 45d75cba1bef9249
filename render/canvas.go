package render

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"io"
	"math"
	"os"

	"golang.org/x/image/vector"

	"github.com/gogpu/figgeom"
)

// Default colours.
var (
	InkColor   = color.RGBA{R: 0x20, G: 0x20, B: 0x20, A: 0xff}
	ArrowColor = color.RGBA{R: 0xc0, G: 0x20, B: 0x20, A: 0xff}
	BoxColor   = color.RGBA{R: 0x20, G: 0x60, B: 0xd0, A: 0xff}
)

// Canvas maps a region of Fig coordinates onto an image.
type Canvas struct {
	img    *image.RGBA
	view   figgeom.Box
	scale  float64
	margin float64
	ras    *vector.Rasterizer
	opts   options
}

// New returns a white canvas showing view scaled so that its longer side
// spans size pixels (plus the margin on each side). An empty view shows
// the origin at scale 1.
func New(view figgeom.Box, size int, opts ...Option) *Canvas {
	o := newOptions(opts)
	if view.Empty() {
		view = figgeom.PointBox(figgeom.Pt(0, 0))
	}
	inner := float64(size) - 2*o.margin
	scale := 1.0
	if long := max(view.Width(), view.Height()); long > 0 && inner > 0 {
		scale = inner / float64(long)
	}
	// Scale products carry rounding noise; do not let it add a pixel.
	height := int(math.Ceil(float64(view.Height())*scale + 2*o.margin - 1e-6))
	width := int(math.Ceil(float64(view.Width())*scale + 2*o.margin - 1e-6))

	c := &Canvas{
		img:    image.NewRGBA(image.Rect(0, 0, max(width, 1), max(height, 1))),
		view:   view,
		scale:  scale,
		margin: o.margin,
		ras:    vector.NewRasterizer(max(width, 1), max(height, 1)),
		opts:   o,
	}
	draw.Draw(c.img, c.img.Bounds(), image.NewUniform(o.background), image.Point{}, draw.Src)
	return c
}

// Image returns the canvas image.
func (c *Canvas) Image() *image.RGBA {
	return c.img
}

// Scale returns the number of pixels per Fig unit.
func (c *Canvas) Scale() float64 {
	return c.scale
}

// ToPixel maps a Fig coordinate to image coordinates.
func (c *Canvas) ToPixel(p figgeom.FPoint) (x, y float32) {
	x = float32((p.X-float64(c.view.XMin))*c.scale + c.margin)
	y = float32((p.Y-float64(c.view.YMin))*c.scale + c.margin)
	return x, y
}

func (c *Canvas) strokeWidth(thickness int) float64 {
	return max(float64(thickness)*c.scale, c.opts.minWidth)
}

// Polyline strokes the path through pts, closing it if closed is set.
func (c *Canvas) Polyline(pts []figgeom.FPoint, closed bool, width float64, col color.Color) {
	switch len(pts) {
	case 0:
		return
	case 1:
		c.dot(pts[0], width, col)
		return
	}
	for i := 1; i < len(pts); i++ {
		c.segment(pts[i-1], pts[i], width, col)
	}
	if closed {
		c.segment(pts[len(pts)-1], pts[0], width, col)
	}
}

// Fill paints the polygon pts.
func (c *Canvas) Fill(pts []figgeom.FPoint, col color.Color) {
	if len(pts) < 3 {
		return
	}
	c.ras.Reset(c.img.Bounds().Dx(), c.img.Bounds().Dy())
	x, y := c.ToPixel(pts[0])
	c.ras.MoveTo(x, y)
	for _, p := range pts[1:] {
		x, y = c.ToPixel(p)
		c.ras.LineTo(x, y)
	}
	c.ras.ClosePath()
	c.ras.Draw(c.img, c.img.Bounds(), image.NewUniform(col), image.Point{})
}

// Box outlines b.
func (c *Canvas) Box(b figgeom.Box, col color.Color) {
	if b.Empty() {
		return
	}
	c.Polyline([]figgeom.FPoint{
		figgeom.FPt(float64(b.XMin), float64(b.YMin)),
		figgeom.FPt(float64(b.XMax), float64(b.YMin)),
		figgeom.FPt(float64(b.XMax), float64(b.YMax)),
		figgeom.FPt(float64(b.XMin), float64(b.YMax)),
	}, true, c.opts.minWidth, col)
}

// segment rasterizes one stroke segment as a quad in pixel space, each on
// its own pass so overlapping quads don't cancel.
func (c *Canvas) segment(a, b figgeom.FPoint, width float64, col color.Color) {
	ax, ay := c.ToPixel(a)
	bx, by := c.ToPixel(b)
	dx, dy := float64(bx-ax), float64(by-ay)
	l := math.Hypot(dx, dy)
	if l == 0 {
		c.dot(a, width, col)
		return
	}
	hw := width / 2
	nx, ny := float32(-dy/l*hw), float32(dx/l*hw)
	// Square caps hide the gaps at joins.
	ex, ey := float32(dx/l*hw), float32(dy/l*hw)

	c.ras.Reset(c.img.Bounds().Dx(), c.img.Bounds().Dy())
	c.ras.MoveTo(ax+nx-ex, ay+ny-ey)
	c.ras.LineTo(bx+nx+ex, by+ny+ey)
	c.ras.LineTo(bx-nx+ex, by-ny+ey)
	c.ras.LineTo(ax-nx-ex, ay-ny-ey)
	c.ras.ClosePath()
	c.ras.Draw(c.img, c.img.Bounds(), image.NewUniform(col), image.Point{})
}

func (c *Canvas) dot(p figgeom.FPoint, width float64, col color.Color) {
	x, y := c.ToPixel(p)
	h := float32(width / 2)
	c.ras.Reset(c.img.Bounds().Dx(), c.img.Bounds().Dy())
	c.ras.MoveTo(x-h, y-h)
	c.ras.LineTo(x+h, y-h)
	c.ras.LineTo(x+h, y+h)
	c.ras.LineTo(x-h, y+h)
	c.ras.ClosePath()
	c.ras.Draw(c.img, c.img.Bounds(), image.NewUniform(col), image.Point{})
}

// Encode writes the canvas as PNG.
func (c *Canvas) Encode(w io.Writer) error {
	if err := png.Encode(w, c.img); err != nil {
		return fmt.Errorf("render: %w", err)
	}
	return nil
}

// SavePNG writes the canvas to a PNG file.
func (c *Canvas) SavePNG(path string) error {
	f, err := os.Create(path) //nolint:gosec // path is user-provided intentionally
	if err != nil {
		return fmt.Errorf("render: %w", err)
	}
	if err := c.Encode(f); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}
