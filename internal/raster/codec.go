package raster

import (
	"fmt"
	"image/png"
	"io"
)

// EncodePNG writes the surface as a PNG stream. Alpha is stored straight,
// so translucent pixels may round-trip with one bit of error.
func (s *Surface) EncodePNG(w io.Writer) error {
	if err := png.Encode(w, s.im); err != nil {
		return fmt.Errorf("encode png: %w", err)
	}
	return nil
}

// DecodePNG reads a PNG stream into a new surface.
func DecodePNG(r io.Reader) (*Surface, error) {
	im, err := png.Decode(r)
	if err != nil {
		return nil, fmt.Errorf("decode png: %w", err)
	}
	return FromImage(im), nil
}
