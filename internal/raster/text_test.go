package raster

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/maskedsyntax/splashy/pkg/colorutil"
	"github.com/maskedsyntax/splashy/pkg/geometry"
)

func TestDrawTextLeavesInk(t *testing.T) {
	s := NewSurface(200, 60)
	require.NoError(t, s.DrawText("Hello", geometry.Pt(10, 10), 24, colorutil.Black))

	inked := 0
	for y := 0; y < s.Height(); y++ {
		for x := 0; x < s.Width(); x++ {
			if s.At(x, y).A > 0 {
				inked++
			}
		}
	}
	assert.Greater(t, inked, 20)
}

func TestDrawTextEmptyString(t *testing.T) {
	s := NewSurface(50, 20)
	require.NoError(t, s.DrawText("", geometry.Pt(5, 5), 12, colorutil.Black))
	assert.Equal(t, uint8(0), s.At(25, 10).A)
}
