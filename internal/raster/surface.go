// Package raster implements the premultiplied-RGBA pixel surfaces the
// whiteboard paints on, with vector strokes, flood fill, and PNG round-trips.
package raster

import (
	"image"
	"image/color"
	"image/draw"
	"math"

	"github.com/fogleman/gg"

	"github.com/maskedsyntax/splashy/pkg/colorutil"
	"github.com/maskedsyntax/splashy/pkg/geometry"
)

// Surface is a pixel buffer with vector drawing on top. All coordinates are
// in canvas units; the surface origin is the canvas origin.
type Surface struct {
	im *image.RGBA
	gc *gg.Context
}

// NewSurface creates a fully transparent surface.
func NewSurface(width, height int) *Surface {
	im := image.NewRGBA(image.Rect(0, 0, width, height))
	return &Surface{im: im, gc: gg.NewContextForRGBA(im)}
}

// FromImage copies an image of any type into a new surface.
func FromImage(src image.Image) *Surface {
	b := src.Bounds()
	s := NewSurface(b.Dx(), b.Dy())
	draw.Draw(s.im, s.im.Bounds(), src, b.Min, draw.Src)
	return s
}

// Width returns the surface width in pixels.
func (s *Surface) Width() int { return s.im.Bounds().Dx() }

// Height returns the surface height in pixels.
func (s *Surface) Height() int { return s.im.Bounds().Dy() }

// Image exposes the backing pixels for compositing and encoding. Callers
// must not resize it.
func (s *Surface) Image() *image.RGBA { return s.im }

// At returns the premultiplied pixel at (x, y), or zero outside the surface.
func (s *Surface) At(x, y int) color.RGBA {
	if !(image.Point{X: x, Y: y}).In(s.im.Bounds()) {
		return color.RGBA{}
	}
	return s.im.RGBAAt(x, y)
}

// Clone returns an independent copy of the surface.
func (s *Surface) Clone() *Surface {
	c := NewSurface(s.Width(), s.Height())
	copy(c.im.Pix, s.im.Pix)
	return c
}

// Fill replaces every pixel with the given color.
func (s *Surface) Fill(c colorutil.Color) {
	s.gc.SetColor(c)
	s.gc.Clear()
}

// Clear resets the whole surface to transparent.
func (s *Surface) Clear() {
	s.gc.SetColor(color.Transparent)
	s.gc.Clear()
}

// ClearRect resets a rectangle of the surface to transparent.
func (s *Surface) ClearRect(r geometry.Rect) {
	b := image.Rect(round(r.X), round(r.Y), round(r.X+r.Width), round(r.Y+r.Height))
	draw.Draw(s.im, b.Intersect(s.im.Bounds()), image.Transparent, image.Point{}, draw.Src)
}

// CopyFrom replaces this surface's pixels with src's, padding with
// transparency when src is smaller.
func (s *Surface) CopyFrom(src *Surface) {
	if src.im.Bounds() != s.im.Bounds() {
		s.Clear()
	}
	draw.Draw(s.im, src.im.Bounds(), src.im, image.Point{}, draw.Src)
}

// Paint composites src over this surface with its top-left corner at (x, y).
// Fractional offsets are resampled bilinearly.
func (s *Surface) Paint(src *Surface, x, y float64) {
	s.gc.Push()
	s.gc.Translate(x, y)
	s.gc.DrawImage(src.im, 0, 0)
	s.gc.Pop()
}

// PaintWithOpacity composites src over this surface at the origin, with the
// source scaled by a global opacity in [0, 1].
func (s *Surface) PaintWithOpacity(src *Surface, opacity float64) {
	if opacity >= 1 {
		draw.Draw(s.im, src.im.Bounds(), src.im, image.Point{}, draw.Over)
		return
	}
	if opacity < 0 {
		opacity = 0
	}
	mask := image.NewUniform(color.Alpha16{A: uint16(opacity*0xffff + 0.5)})
	draw.DrawMask(s.im, src.im.Bounds(), src.im, image.Point{}, mask, image.Point{}, draw.Over)
}

// DrawDot stamps a filled disc of the stroke width, used for taps that
// never produce a motion event.
func (s *Surface) DrawDot(p geometry.Point, width float64, c colorutil.Color) {
	s.gc.SetColor(c)
	s.gc.DrawCircle(p.X, p.Y, width/2)
	s.gc.Fill()
}

// StrokeLine draws a round-capped line segment, the stroke used for ink.
func (s *Surface) StrokeLine(a, b geometry.Point, width float64, c colorutil.Color) {
	s.setInkStroke(width, c)
	s.gc.DrawLine(a.X, a.Y, b.X, b.Y)
	s.gc.Stroke()
}

// StrokeCurve draws a round-capped quadratic segment from a through ctrl
// to b, the stroke used for smoothed ink.
func (s *Surface) StrokeCurve(a, ctrl, b geometry.Point, width float64, c colorutil.Color) {
	s.setInkStroke(width, c)
	s.gc.MoveTo(a.X, a.Y)
	s.gc.QuadraticTo(ctrl.X, ctrl.Y, b.X, b.Y)
	s.gc.Stroke()
}

// StrokeSegment draws a flat-capped line, the stroke used for shape
// outlines.
func (s *Surface) StrokeSegment(a, b geometry.Point, width float64, c colorutil.Color) {
	s.setShapeStroke(width, c)
	s.gc.DrawLine(a.X, a.Y, b.X, b.Y)
	s.gc.Stroke()
}

// StrokeRect outlines a rectangle.
func (s *Surface) StrokeRect(r geometry.Rect, width float64, c colorutil.Color) {
	s.setShapeStroke(width, c)
	s.gc.DrawRectangle(r.X, r.Y, r.Width, r.Height)
	s.gc.Stroke()
}

// StrokeDashedRect outlines a rectangle with a 4-on 4-off dash, used for
// the selection marquee.
func (s *Surface) StrokeDashedRect(r geometry.Rect, width float64, c colorutil.Color) {
	s.setShapeStroke(width, c)
	s.gc.SetDash(4, 4)
	s.gc.DrawRectangle(r.X, r.Y, r.Width, r.Height)
	s.gc.Stroke()
	s.gc.SetDash()
}

// StrokeCircle outlines a circle.
func (s *Surface) StrokeCircle(center geometry.Point, radius, width float64, c colorutil.Color) {
	s.setShapeStroke(width, c)
	s.gc.DrawCircle(center.X, center.Y, radius)
	s.gc.Stroke()
}

// StrokePolygon outlines a closed polygon.
func (s *Surface) StrokePolygon(pts []geometry.Point, width float64, c colorutil.Color) {
	if len(pts) < 2 {
		return
	}
	s.setShapeStroke(width, c)
	s.gc.MoveTo(pts[0].X, pts[0].Y)
	for _, p := range pts[1:] {
		s.gc.LineTo(p.X, p.Y)
	}
	s.gc.ClosePath()
	s.gc.Stroke()
}

func (s *Surface) setInkStroke(width float64, c colorutil.Color) {
	s.gc.SetColor(c)
	s.gc.SetLineWidth(width)
	s.gc.SetLineCap(gg.LineCapRound)
	s.gc.SetLineJoin(gg.LineJoinRound)
}

func (s *Surface) setShapeStroke(width float64, c colorutil.Color) {
	s.gc.SetColor(c)
	s.gc.SetLineWidth(width)
	s.gc.SetLineCap(gg.LineCapButt)
	s.gc.SetLineJoin(gg.LineJoinBevel)
}

func round(v float64) int {
	return int(math.Round(v))
}
