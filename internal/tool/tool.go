// Package tool defines the drawing tools and the freehand stroke engine.
package tool

import (
	"github.com/maskedsyntax/splashy/pkg/colorutil"
)

// Tool identifies a drawing tool.
type Tool int

const (
	Pen Tool = iota
	Eraser
	Highlighter
	Bucket
	Select
	Line
	Rectangle
	Circle
	Triangle
	Star
	Arrow
	Text
)

func (t Tool) String() string {
	switch t {
	case Pen:
		return "Pen"
	case Eraser:
		return "Eraser"
	case Highlighter:
		return "Highlighter"
	case Bucket:
		return "Bucket"
	case Select:
		return "Select"
	case Line:
		return "Line"
	case Rectangle:
		return "Rectangle"
	case Circle:
		return "Circle"
	case Triangle:
		return "Triangle"
	case Star:
		return "Star"
	case Arrow:
		return "Arrow"
	case Text:
		return "Text"
	default:
		return "Unknown"
	}
}

// Tools lists every tool in toolbar order.
func Tools() []Tool {
	return []Tool{
		Pen, Eraser, Highlighter, Bucket, Select, Line,
		Rectangle, Circle, Triangle, Star, Arrow, Text,
	}
}

// IsFreehand reports whether the tool paints continuous ink that follows
// the pointer.
func (t Tool) IsFreehand() bool {
	return t == Pen || t == Eraser || t == Highlighter
}

// IsShape reports whether the tool drags out a shape previewed on the temp
// surface and committed on release.
func (t Tool) IsShape() bool {
	switch t {
	case Line, Rectangle, Circle, Triangle, Star, Arrow:
		return true
	}
	return false
}

// UsesSnap reports whether grid snapping applies to this tool's input.
// Freehand ink never snaps; everything else does when the page allows it.
func (t Tool) UsesSnap() bool {
	return !t.IsFreehand()
}

// Highlighter behavior relative to the pen.
const (
	HighlighterAlpha      = 0.35
	HighlighterWidthScale = 4.0
)

// StrokeWidth returns the pen width for a given pressure, never thinner
// than a pixel.
func StrokeWidth(brush, pressure float64) float64 {
	w := brush * pressure
	if w < 1 {
		w = 1
	}
	return w
}

// Ink resolves the stroke color and width a freehand tool paints with at
// the given pressure. Only the pen responds to pressure; the highlighter
// is a wide translucent pen and the eraser paints background color at its
// own size.
func Ink(t Tool, pen, bg colorutil.Color, brush, eraser, pressure float64) (colorutil.Color, float64) {
	switch t {
	case Highlighter:
		return pen.WithAlpha(pen.A * HighlighterAlpha), brush * HighlighterWidthScale
	case Eraser:
		return bg, eraser
	default:
		return pen, StrokeWidth(brush, pressure)
	}
}
