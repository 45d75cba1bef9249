// Command figbound prints the bounding boxes of figures described in YAML
// scene files and optionally renders PNG previews of them.
//
// Usage:
//
//	figbound [flags] scene.yaml...
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/gogpu/figgeom"
	"github.com/gogpu/figgeom/bound"
	"github.com/gogpu/figgeom/internal/parallel"
	"github.com/gogpu/figgeom/render"
	"github.com/gogpu/figgeom/scene"
	"github.com/gogpu/figgeom/xspline"
)

type config struct {
	pngDir    string
	width     int
	precision float64
	mag       float64
	workers   int
	noSpecial bool
	objects   bool
	verbose   bool
}

func main() {
	if err := run(os.Args[1:], os.Stdout, os.Stderr); err != nil {
		log.Fatal(err)
	}
}

func run(args []string, stdout, stderr io.Writer) error {
	fs := flag.NewFlagSet("figbound", flag.ContinueOnError)
	fs.SetOutput(stderr)

	var (
		cfg       config
		precision = fs.String("precision", "high", "spline flattening precision: high or low")
	)
	fs.StringVar(&cfg.pngDir, "png", "", "write a PNG preview of each scene into this directory")
	fs.IntVar(&cfg.width, "width", 800, "preview size in pixels along the longer side")
	fs.Float64Var(&cfg.mag, "mag", 1, "magnification applied to arrowhead sampling")
	fs.IntVar(&cfg.workers, "workers", 0, "number of scenes processed concurrently (0 = GOMAXPROCS)")
	fs.BoolVar(&cfg.noSpecial, "no-special", false, "leave special texts out of the bounds")
	fs.BoolVar(&cfg.objects, "objects", false, "print the box of every top-level object")
	fs.BoolVar(&cfg.verbose, "v", false, "log diagnostics to stderr")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() == 0 {
		fs.Usage()
		return errors.New("figbound: no scene files given")
	}

	switch *precision {
	case "high":
		cfg.precision = xspline.HighPrecision
	case "low":
		cfg.precision = xspline.LowPrecision
	default:
		return fmt.Errorf("figbound: unknown precision %q", *precision)
	}

	level := slog.LevelWarn
	if cfg.verbose {
		level = slog.LevelDebug
	}
	figgeom.SetLogger(slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level})))
	defer figgeom.SetLogger(nil)

	pool := parallel.New(cfg.workers)
	defer pool.Close()

	reports := parallel.Map(pool, fs.Args(), func(path string) report {
		return process(path, cfg)
	})

	var errs []error
	for _, r := range reports {
		if r.err != nil {
			errs = append(errs, r.err)
			continue
		}
		_, _ = io.WriteString(stdout, r.text)
	}
	return errors.Join(errs...)
}

type report struct {
	text string
	err  error
}

func (c config) boundOptions() []bound.Option {
	return []bound.Option{
		bound.WithText(!c.noSpecial),
		bound.WithPrecision(c.precision),
		bound.WithMag(c.mag),
	}
}

func process(path string, cfg config) report {
	s, err := scene.LoadFile(path)
	if err != nil {
		return report{err: err}
	}
	fig, err := s.Build()
	if err != nil {
		return report{err: fmt.Errorf("%s: %w", path, err)}
	}

	opts := cfg.boundOptions()
	var b strings.Builder
	fmt.Fprintf(&b, "%s\t%s\n", s.Name, formatBox(bound.Compound(fig, opts...)))
	if cfg.objects {
		writeObjects(&b, fig, opts)
	}

	if cfg.pngDir != "" {
		name := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path)) + ".png"
		c := render.Draw(fig, cfg.width, render.WithPrecision(cfg.precision), render.WithObjectBoxes(cfg.objects))
		if err := c.SavePNG(filepath.Join(cfg.pngDir, name)); err != nil {
			return report{err: fmt.Errorf("%s: %w", path, err)}
		}
	}
	return report{text: b.String()}
}

func writeObjects(w io.Writer, c *figgeom.Compound, opts []bound.Option) {
	line := func(kind string, i int, box figgeom.Box) {
		fmt.Fprintf(w, "  %s[%d]\t%s\n", kind, i, formatBox(box))
	}
	for i, a := range c.Arcs {
		line("arc", i, bound.Stroked(a, opts...))
	}
	for i, e := range c.Ellipses {
		line("ellipse", i, bound.Stroked(e, opts...))
	}
	for i, l := range c.Lines {
		line("line", i, bound.Stroked(l, opts...))
	}
	for i, s := range c.Splines {
		line("spline", i, bound.Stroked(s, opts...))
	}
	for i, t := range c.Texts {
		line("text", i, bound.Stroked(t, opts...))
	}
	for i, sub := range c.Compounds {
		line("compound", i, bound.Compound(sub, opts...))
	}
}

func formatBox(b figgeom.Box) string {
	if b.Empty() {
		return "empty"
	}
	return fmt.Sprintf("%d %d %d %d", b.XMin, b.YMin, b.XMax, b.YMax)
}
