package tool

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/maskedsyntax/splashy/pkg/colorutil"
)

func TestToolStrings(t *testing.T) {
	assert.Equal(t, "Pen", Pen.String())
	assert.Equal(t, "Bucket", Bucket.String())
	assert.Equal(t, "Text", Text.String())
	assert.Equal(t, "Unknown", Tool(99).String())
}

func TestToolsOrder(t *testing.T) {
	all := Tools()
	assert.Len(t, all, 12)
	assert.Equal(t, Pen, all[0])
	assert.Equal(t, Text, all[len(all)-1])
}

func TestToolClassification(t *testing.T) {
	assert.True(t, Pen.IsFreehand())
	assert.True(t, Eraser.IsFreehand())
	assert.True(t, Highlighter.IsFreehand())
	assert.False(t, Bucket.IsFreehand())

	assert.True(t, Line.IsShape())
	assert.True(t, Arrow.IsShape())
	assert.False(t, Select.IsShape())
	assert.False(t, Text.IsShape())
	assert.False(t, Pen.IsShape())

	// Ink follows the hand exactly; everything else respects the grid.
	assert.False(t, Pen.UsesSnap())
	assert.False(t, Highlighter.UsesSnap())
	assert.True(t, Bucket.UsesSnap())
	assert.True(t, Select.UsesSnap())
	assert.True(t, Rectangle.UsesSnap())
	assert.True(t, Text.UsesSnap())
}

func TestStrokeWidth(t *testing.T) {
	assert.Equal(t, 3.0, StrokeWidth(3, 1))
	assert.Equal(t, 1.5, StrokeWidth(3, 0.5))
	assert.Equal(t, 1.0, StrokeWidth(3, 0.1), "width never drops below a pixel")
	assert.Equal(t, 1.0, StrokeWidth(0.5, 1))
}

func TestInkPen(t *testing.T) {
	c, w := Ink(Pen, colorutil.Black, colorutil.White, 3, 10, 0.5)
	assert.Equal(t, colorutil.Black, c)
	assert.Equal(t, 1.5, w)
}

func TestInkHighlighterIgnoresPressure(t *testing.T) {
	c, w := Ink(Highlighter, colorutil.Yellow, colorutil.White, 3, 10, 0.2)
	assert.Equal(t, 12.0, w)
	assert.InDelta(t, 0.35, c.A, 1e-9)
	assert.Equal(t, colorutil.Yellow.R, c.R)
}

func TestInkEraserPaintsBackground(t *testing.T) {
	c, w := Ink(Eraser, colorutil.Black, colorutil.White, 3, 10, 0.5)
	assert.Equal(t, colorutil.White, c)
	assert.Equal(t, 10.0, w)
}
