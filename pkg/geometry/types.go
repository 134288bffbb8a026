// Package geometry provides basic geometric types used throughout the application.
package geometry

import (
	"math"
)

// Point represents a 2D point in canvas coordinates. Pressure carries the
// stylus pressure sampled with the point; devices without a pressure axis
// report 1.0.
type Point struct {
	X        float64 `json:"x"`
	Y        float64 `json:"y"`
	Pressure float64 `json:"pressure"`
}

// Pt creates a Point at full pressure.
func Pt(x, y float64) Point {
	return Point{X: x, Y: y, Pressure: 1.0}
}

// Add returns the point translated by another point, keeping the receiver's
// pressure.
func (p Point) Add(other Point) Point {
	return Point{X: p.X + other.X, Y: p.Y + other.Y, Pressure: p.Pressure}
}

// Sub returns the difference of two points, keeping the receiver's pressure.
func (p Point) Sub(other Point) Point {
	return Point{X: p.X - other.X, Y: p.Y - other.Y, Pressure: p.Pressure}
}

// Mid returns the midpoint between two points, averaging pressure.
func (p Point) Mid(other Point) Point {
	return Point{
		X:        (p.X + other.X) / 2,
		Y:        (p.Y + other.Y) / 2,
		Pressure: (p.Pressure + other.Pressure) / 2,
	}
}

// Distance returns the Euclidean distance to another point.
func (p Point) Distance(other Point) float64 {
	return math.Hypot(other.X-p.X, other.Y-p.Y)
}

// AngleTo returns the angle in radians of the ray from p to other.
func (p Point) AngleTo(other Point) float64 {
	return math.Atan2(other.Y-p.Y, other.X-p.X)
}

// Rect represents a rectangle with floating-point coordinates.
type Rect struct {
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// NewRect creates a new Rect.
func NewRect(x, y, width, height float64) Rect {
	return Rect{X: x, Y: y, Width: width, Height: height}
}

// RectFromCorners returns the normalized rectangle spanned by two opposite
// corners, regardless of drag direction.
func RectFromCorners(a, b Point) Rect {
	return Rect{
		X:      math.Min(a.X, b.X),
		Y:      math.Min(a.Y, b.Y),
		Width:  math.Abs(b.X - a.X),
		Height: math.Abs(b.Y - a.Y),
	}
}

// Contains returns true if the point is inside the rectangle.
func (r Rect) Contains(p Point) bool {
	return p.X >= r.X && p.X <= r.X+r.Width &&
		p.Y >= r.Y && p.Y <= r.Y+r.Height
}

// Center returns the center point of the rectangle.
func (r Rect) Center() Point {
	return Point{X: r.X + r.Width/2, Y: r.Y + r.Height/2}
}

// Intersects returns true if this rectangle intersects with another.
func (r Rect) Intersects(other Rect) bool {
	return r.X < other.X+other.Width && r.X+r.Width > other.X &&
		r.Y < other.Y+other.Height && r.Y+r.Height > other.Y
}

// SnapStep is the grid pitch, in canvas units, shared by the page patterns
// and coordinate snapping.
const SnapStep = 30.0

// Snap rounds a coordinate to the nearest grid intersection.
func Snap(v float64) float64 {
	return math.Round(v/SnapStep) * SnapStep
}

// View maps between screen coordinates and canvas coordinates. The canvas is
// drawn translated by (OffsetX, OffsetY) and magnified by Scale.
type View struct {
	OffsetX float64 `json:"offset_x"`
	OffsetY float64 `json:"offset_y"`
	Scale   float64 `json:"scale"`
}

// NewView returns an unscrolled view at 100% zoom.
func NewView() View {
	return View{Scale: 1.0}
}

// WorldFromScreen converts a screen position to canvas coordinates.
func (v View) WorldFromScreen(x, y float64) (float64, float64) {
	return (x - v.OffsetX) / v.Scale, (y - v.OffsetY) / v.Scale
}

// ScreenFromWorld converts canvas coordinates to a screen position.
func (v View) ScreenFromWorld(x, y float64) (float64, float64) {
	return x*v.Scale + v.OffsetX, y*v.Scale + v.OffsetY
}

// Pan returns the view translated by a screen-space delta.
func (v View) Pan(dx, dy float64) View {
	v.OffsetX += dx
	v.OffsetY += dy
	return v
}

// ZoomAt returns the view scaled by factor such that the canvas point under
// the screen position (x, y) stays under it.
func (v View) ZoomAt(x, y, factor float64) View {
	v.OffsetX = x - (x-v.OffsetX)*factor
	v.OffsetY = y - (y-v.OffsetY)*factor
	v.Scale *= factor
	return v
}
