package canvas

import (
	"image"
	"image/color"
	"math"

	"github.com/fogleman/gg"
	xdraw "golang.org/x/image/draw"
	"golang.org/x/image/math/f64"

	"github.com/maskedsyntax/splashy/internal/app"
	"github.com/maskedsyntax/splashy/internal/page"
	"github.com/maskedsyntax/splashy/internal/raster"
	"github.com/maskedsyntax/splashy/pkg/geometry"
)

// draw is the raster callback. It composites the session bottom-up:
// background, page ruling, layers, the floating selection with its
// border, and the preview surface on top.
func (v *Viewport) draw(w, h int) image.Image {
	out := image.NewRGBA(image.Rect(0, 0, w, h))
	if w <= 0 || h <= 0 {
		return out
	}

	s := v.session
	view := s.View

	gc := gg.NewContextForRGBA(out)
	gc.Translate(view.OffsetX, view.OffsetY)
	gc.Scale(view.Scale, view.Scale)

	// Visible region in canvas coordinates.
	x0, y0 := view.WorldFromScreen(0, 0)
	x1, y1 := view.WorldFromScreen(float64(w), float64(h))

	bg := s.Background
	gc.SetRGBA(bg.R, bg.G, bg.B, bg.A)
	gc.DrawRectangle(x0, y0, x1-x0, y1-y0)
	gc.Fill()

	drawRuling(gc, s.PageStyle, view.Scale, x0, y0, x1, y1)

	for _, layer := range s.Doc.Layers() {
		if !layer.Visible || layer.Opacity <= 0 {
			continue
		}
		paintWorld(out, layer.Surface, view, 0, 0, layer.Opacity)
	}

	if sel := s.SelectionSurface(); sel != nil {
		rect := s.SelectionRect()
		paintWorld(out, sel, view, rect.X, rect.Y, 1.0)
		bc := app.BorderColor
		gc.SetRGBA(bc.R, bc.G, bc.B, bc.A)
		gc.SetLineWidth(1.0 / view.Scale)
		gc.DrawRectangle(rect.X, rect.Y, rect.Width, rect.Height)
		gc.Stroke()
	}

	paintWorld(out, s.Doc.Temp(), view, 0, 0, 1.0)

	return out
}

// drawRuling paints the page pattern across the visible region. Line
// widths and dot radii are divided by the scale so the ruling stays
// hairline-thin at any zoom.
func drawRuling(gc *gg.Context, style page.Pattern, scale, x0, y0, x1, y1 float64) {
	if style == page.Plain {
		return
	}

	rc := page.RuleColor
	gc.SetRGBA(rc.R, rc.G, rc.B, rc.A)

	step := page.RuleStep
	startX := math.Floor(x0/step) * step
	startY := math.Floor(y0/step) * step

	switch style {
	case page.Grid:
		gc.SetLineWidth(page.RuleLineWidth / scale)
		for x := startX; x <= x1; x += step {
			gc.DrawLine(x, y0, x, y1)
		}
		for y := startY; y <= y1; y += step {
			gc.DrawLine(x0, y, x1, y)
		}
		gc.Stroke()
	case page.Lined:
		gc.SetLineWidth(page.RuleLineWidth / scale)
		for y := startY; y <= y1; y += step {
			gc.DrawLine(x0, y, x1, y)
		}
		gc.Stroke()
	case page.Dotted:
		for y := startY; y < y1; y += step {
			for x := startX; x < x1; x += step {
				gc.DrawCircle(x, y, page.DotRadius/scale)
			}
		}
		gc.Fill()
	}
}

// paintWorld maps a surface onto the output through the view transform,
// with its origin at the canvas point (wx, wy). Opacity below one is
// applied through a uniform source mask.
func paintWorld(dst *image.RGBA, src *raster.Surface, view geometry.View, wx, wy, opacity float64) {
	if src == nil {
		return
	}
	sx, sy := view.ScreenFromWorld(wx, wy)
	m := f64.Aff3{
		view.Scale, 0, sx,
		0, view.Scale, sy,
	}

	var opts *xdraw.Options
	if opacity < 1.0 {
		a := uint16(opacity*0xffff + 0.5)
		opts = &xdraw.Options{SrcMask: image.NewUniform(color.Alpha16{A: a})}
	}
	xdraw.ApproxBiLinear.Transform(dst, m, src.Image(), src.Image().Bounds(), xdraw.Over, opts)
}
