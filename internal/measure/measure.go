// Package measure estimates the extent of a text string in Fig units using
// the Go Regular font.
//
// Fig files normally carry a text's length and height. Hand-written scenes
// often don't, so the loader fills them from here.
package measure

import (
	"fmt"
	"sync"

	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
)

// UnitsPerInch is the Fig coordinate resolution.
const UnitsPerInch = 1200

var parsed = sync.OnceValues(func() (*opentype.Font, error) {
	f, err := opentype.Parse(goregular.TTF)
	if err != nil {
		return nil, fmt.Errorf("measure: failed to parse font: %w", err)
	}
	return f, nil
})

// Extent returns the advance length and ascent height of s set at size
// points, both in Fig units.
func Extent(s string, size float64) (length, height int, err error) {
	if size <= 0 {
		return 0, 0, fmt.Errorf("measure: invalid size %g", size)
	}
	f, err := parsed()
	if err != nil {
		return 0, 0, err
	}

	// At 1200 DPI one pixel is one Fig unit.
	face, err := opentype.NewFace(f, &opentype.FaceOptions{
		Size:    size,
		DPI:     UnitsPerInch,
		Hinting: font.HintingNone,
	})
	if err != nil {
		return 0, 0, fmt.Errorf("measure: %w", err)
	}
	defer func() {
		_ = face.Close()
	}()

	length = font.MeasureString(face, s).Round()
	height = face.Metrics().Ascent.Ceil()
	return length, height, nil
}
