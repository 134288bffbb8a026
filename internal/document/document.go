package document

import (
	"fmt"

	"github.com/maskedsyntax/splashy/internal/raster"
	"github.com/maskedsyntax/splashy/pkg/colorutil"
	"github.com/maskedsyntax/splashy/pkg/geometry"
)

// Canvas growth policy: when a stroke comes within GrowMargin of an edge,
// the canvas gains GrowStep on that side and existing content reflows.
const (
	GrowMargin = 50.0
	GrowStep   = 1000.0
)

// Document is an ordered stack of layers plus the shared preview surface.
// All layers have the same size, which is the canvas size.
type Document struct {
	layers []*Layer
	active int
	temp   *raster.Surface
}

// New creates a document with a single base layer filled with the
// background color.
func New(width, height int, bg colorutil.Color) *Document {
	base := NewLayer("Layer 1", width, height)
	base.Surface.Fill(bg)
	return &Document{
		layers: []*Layer{base},
		temp:   raster.NewSurface(width, height),
	}
}

// FromSurfaces rebuilds a document from loaded layer surfaces, which must
// be non-empty. Loaded layers come back visible and fully opaque; an
// out-of-range active index falls back to the base layer.
func FromSurfaces(surfs []*raster.Surface, active int) *Document {
	layers := make([]*Layer, len(surfs))
	for i, s := range surfs {
		layers[i] = &Layer{
			Name:    fmt.Sprintf("Layer %d", i+1),
			Visible: true,
			Opacity: 1.0,
			Surface: s,
		}
	}
	if active < 0 || active >= len(layers) {
		active = 0
	}
	return &Document{
		layers: layers,
		active: active,
		temp:   raster.NewSurface(layers[0].Surface.Width(), layers[0].Surface.Height()),
	}
}

// Width returns the canvas width in pixels.
func (d *Document) Width() int { return d.layers[0].Surface.Width() }

// Height returns the canvas height in pixels.
func (d *Document) Height() int { return d.layers[0].Surface.Height() }

// Layers returns the stack in paint order, bottom first.
func (d *Document) Layers() []*Layer { return d.layers }

// LayerCount returns the number of layers in the stack.
func (d *Document) LayerCount() int { return len(d.layers) }

// ActiveIndex returns the index of the layer strokes land on.
func (d *Document) ActiveIndex() int { return d.active }

// ActiveLayer returns the layer strokes land on.
func (d *Document) ActiveLayer() *Layer { return d.layers[d.active] }

// ActiveSurface returns the active layer's pixels.
func (d *Document) ActiveSurface() *raster.Surface { return d.layers[d.active].Surface }

// Temp returns the preview surface drawn above all layers.
func (d *Document) Temp() *raster.Surface { return d.temp }

// ClearTemp resets the preview surface.
func (d *Document) ClearTemp() { d.temp.Clear() }

// SetActive switches the drawing target layer.
func (d *Document) SetActive(i int) error {
	if i < 0 || i >= len(d.layers) {
		return fmt.Errorf("layer index %d out of range", i)
	}
	d.active = i
	return nil
}

// AddLayer appends a new transparent layer sized like the canvas and makes
// it the active one.
func (d *Document) AddLayer() *Layer {
	l := NewLayer(fmt.Sprintf("Layer %d", len(d.layers)+1), d.Width(), d.Height())
	d.layers = append(d.layers, l)
	d.active = len(d.layers) - 1
	return l
}

// ClearActive wipes the active layer back to transparent.
func (d *Document) ClearActive() {
	d.ActiveSurface().Clear()
}

// GrowToFit expands the canvas when p comes within GrowMargin of an edge,
// adding GrowStep on each crowded side. It returns the translation applied
// to existing content so the caller can shift in-flight stroke points and
// the view offset by the same amount.
func (d *Document) GrowToFit(p geometry.Point) (dx, dy float64) {
	var left, top, right, bottom float64
	w, h := float64(d.Width()), float64(d.Height())
	if p.X < GrowMargin {
		left = GrowStep
	}
	if p.Y < GrowMargin {
		top = GrowStep
	}
	if p.X > w-GrowMargin {
		right = GrowStep
	}
	if p.Y > h-GrowMargin {
		bottom = GrowStep
	}
	if left == 0 && top == 0 && right == 0 && bottom == 0 {
		return 0, 0
	}
	d.grow(int(w+left+right), int(h+top+bottom), left, top)
	return left, top
}

// EnsureSize grows the canvas right and down until it is at least w by h,
// used when the window outgrows the canvas.
func (d *Document) EnsureSize(w, h int) {
	if w <= d.Width() && h <= d.Height() {
		return
	}
	if w < d.Width() {
		w = d.Width()
	}
	if h < d.Height() {
		h = d.Height()
	}
	d.grow(w, h, 0, 0)
}

// grow rebuilds every layer at the new size with existing content shifted
// by (dx, dy), and replaces the preview surface.
func (d *Document) grow(w, h int, dx, dy float64) {
	for _, l := range d.layers {
		grown := raster.NewSurface(w, h)
		grown.Paint(l.Surface, dx, dy)
		l.Surface = grown
	}
	d.temp = raster.NewSurface(w, h)
}

// Flatten composites the visible layers over the background color into a
// single surface, the image handed to the exporters.
func (d *Document) Flatten(bg colorutil.Color) *raster.Surface {
	out := raster.NewSurface(d.Width(), d.Height())
	out.Fill(bg)
	for _, l := range d.layers {
		if !l.Visible {
			continue
		}
		out.PaintWithOpacity(l.Surface, l.Opacity)
	}
	return out
}

// InvertLayers inverts the ink on every layer, for the light/dark switch.
func (d *Document) InvertLayers() {
	for _, l := range d.layers {
		l.Surface.InvertColors()
	}
}
