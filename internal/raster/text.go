package raster

import (
	"fmt"
	"sync"

	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/maskedsyntax/splashy/pkg/colorutil"
	"github.com/maskedsyntax/splashy/pkg/geometry"
)

var (
	fontOnce sync.Once
	baseFont *truetype.Font
	fontErr  error
)

func loadFont() (*truetype.Font, error) {
	fontOnce.Do(func() {
		baseFont, fontErr = truetype.Parse(goregular.TTF)
	})
	return baseFont, fontErr
}

// DrawText renders a single line of text with its top-left corner at p,
// using the bundled regular face at the given point size.
func (s *Surface) DrawText(text string, p geometry.Point, size float64, c colorutil.Color) error {
	fnt, err := loadFont()
	if err != nil {
		return fmt.Errorf("load font: %w", err)
	}
	face := truetype.NewFace(fnt, &truetype.Options{Size: size})
	defer face.Close()

	s.gc.SetFontFace(face)
	s.gc.SetColor(c)
	s.gc.DrawStringAnchored(text, p.X, p.Y, 0, 1)
	return nil
}
