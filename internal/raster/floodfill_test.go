package raster

import (
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/maskedsyntax/splashy/pkg/colorutil"
	"github.com/maskedsyntax/splashy/pkg/geometry"
)

func TestFloodFillBlankSurface(t *testing.T) {
	s := NewSurface(10, 10)
	s.FloodFill(0, 0, colorutil.Blue)

	want := color.RGBA{B: 255, A: 255}
	assert.Equal(t, want, s.At(0, 0))
	assert.Equal(t, want, s.At(9, 0))
	assert.Equal(t, want, s.At(0, 9))
	assert.Equal(t, want, s.At(9, 9))
	assert.Equal(t, want, s.At(5, 5))
}

func TestFloodFillStopsAtBoundary(t *testing.T) {
	s := NewSurface(20, 20)
	s.Fill(colorutil.White)
	s.ClearRect(geometry.NewRect(5, 5, 10, 10))

	s.FloodFill(10, 10, colorutil.Red)

	red := color.RGBA{R: 255, A: 255}
	white := color.RGBA{R: 255, G: 255, B: 255, A: 255}
	assert.Equal(t, red, s.At(10, 10))
	assert.Equal(t, red, s.At(5, 5))
	assert.Equal(t, red, s.At(14, 14))
	assert.Equal(t, white, s.At(4, 4))
	assert.Equal(t, white, s.At(15, 15))
	assert.Equal(t, white, s.At(0, 0))
}

func TestFloodFillOutOfBounds(t *testing.T) {
	s := NewSurface(10, 10)
	s.FloodFill(-1, 5, colorutil.Red)
	s.FloodFill(5, 10, colorutil.Red)
	assert.Equal(t, color.RGBA{}, s.At(5, 5))
}

func TestFloodFillSameColor(t *testing.T) {
	s := NewSurface(10, 10)
	s.Fill(colorutil.Red)
	s.FloodFill(5, 5, colorutil.Red)
	assert.Equal(t, color.RGBA{R: 255, A: 255}, s.At(5, 5))
}

func TestFloodFillIsFourConnected(t *testing.T) {
	// Two transparent regions touching only at a corner stay separate.
	s := NewSurface(10, 10)
	s.Fill(colorutil.White)
	s.ClearRect(geometry.NewRect(0, 0, 5, 5))
	s.ClearRect(geometry.NewRect(5, 5, 5, 5))

	s.FloodFill(2, 2, colorutil.Green)

	assert.NotEqual(t, uint8(0), s.At(2, 2).A)
	assert.Equal(t, color.RGBA{}, s.At(7, 7))
}

func TestInvertColors(t *testing.T) {
	s := NewSurface(4, 4)
	s.Fill(colorutil.Red)
	s.ClearRect(geometry.NewRect(0, 0, 2, 2))

	s.InvertColors()

	// Red inverts to cyan, transparent pixels stay untouched.
	assert.Equal(t, color.RGBA{G: 255, B: 255, A: 255}, s.At(3, 3))
	assert.Equal(t, color.RGBA{}, s.At(0, 0))

	s.InvertColors()
	assert.Equal(t, color.RGBA{R: 255, A: 255}, s.At(3, 3))
}
