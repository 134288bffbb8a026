// Package colorutil provides the shared color model for the whiteboard application.
package colorutil

import (
	"fmt"
	"image/color"
)

// Color is an RGBA color with float64 components in [0, 1] and straight
// (non-premultiplied) alpha. It implements color.Color.
type Color struct {
	R float64 `json:"r"`
	G float64 `json:"g"`
	B float64 `json:"b"`
	A float64 `json:"a"`
}

// Common pen and background colors used throughout the application.
var (
	Black  = Color{R: 0, G: 0, B: 0, A: 1}
	White  = Color{R: 1, G: 1, B: 1, A: 1}
	Red    = Color{R: 1, G: 0, B: 0, A: 1}
	Green  = Color{R: 0, G: 0.7, B: 0, A: 1}
	Blue   = Color{R: 0, G: 0, B: 1, A: 1}
	Yellow = Color{R: 1, G: 1, B: 0, A: 1}
)

// QuickPalette is the row of one-click pen colors offered in the toolbar.
var QuickPalette = []Color{Black, Red, Green, Blue, Yellow}

// New creates a Color from components in [0, 1].
func New(r, g, b, a float64) Color {
	return Color{R: r, G: g, B: b, A: a}
}

// WithAlpha returns the color with its alpha replaced.
func (c Color) WithAlpha(a float64) Color {
	c.A = a
	return c
}

// RGBA implements color.Color, returning 16-bit premultiplied components.
func (c Color) RGBA() (r, g, b, a uint32) {
	r = uint32(clamp01(c.R)*clamp01(c.A)*0xffff + 0.5)
	g = uint32(clamp01(c.G)*clamp01(c.A)*0xffff + 0.5)
	b = uint32(clamp01(c.B)*clamp01(c.A)*0xffff + 0.5)
	a = uint32(clamp01(c.A)*0xffff + 0.5)
	return r, g, b, a
}

// NRGBA returns the color as 8-bit straight-alpha RGBA.
func (c Color) NRGBA() color.NRGBA {
	return color.NRGBA{
		R: uint8(clamp01(c.R)*255 + 0.5),
		G: uint8(clamp01(c.G)*255 + 0.5),
		B: uint8(clamp01(c.B)*255 + 0.5),
		A: uint8(clamp01(c.A)*255 + 0.5),
	}
}

// FromColor converts any color.Color into a Color, un-premultiplying alpha.
func FromColor(src color.Color) Color {
	if c, ok := src.(Color); ok {
		return c
	}
	r, g, b, a := src.RGBA()
	if a == 0 {
		return Color{}
	}
	return Color{
		R: float64(r) / float64(a),
		G: float64(g) / float64(a),
		B: float64(b) / float64(a),
		A: float64(a) / 0xffff,
	}
}

// Hex formats the color as #rrggbbaa.
func (c Color) Hex() string {
	n := c.NRGBA()
	return fmt.Sprintf("#%02x%02x%02x%02x", n.R, n.G, n.B, n.A)
}

// ParseHex parses #rrggbb or #rrggbbaa.
func ParseHex(s string) (Color, error) {
	var r, g, b, a uint8
	switch len(s) {
	case 7:
		if _, err := fmt.Sscanf(s, "#%02x%02x%02x", &r, &g, &b); err != nil {
			return Color{}, fmt.Errorf("invalid color %q: %w", s, err)
		}
		a = 255
	case 9:
		if _, err := fmt.Sscanf(s, "#%02x%02x%02x%02x", &r, &g, &b, &a); err != nil {
			return Color{}, fmt.Errorf("invalid color %q: %w", s, err)
		}
	default:
		return Color{}, fmt.Errorf("invalid color %q", s)
	}
	return Color{
		R: float64(r) / 255,
		G: float64(g) / 255,
		B: float64(b) / 255,
		A: float64(a) / 255,
	}, nil
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
