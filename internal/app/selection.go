package app

import (
	"github.com/maskedsyntax/splashy/internal/raster"
	"github.com/maskedsyntax/splashy/pkg/colorutil"
	"github.com/maskedsyntax/splashy/pkg/geometry"
)

// marqueeColor styles the dashed rectangle shown while dragging out a
// selection. The floating cutout's border uses the stronger shade.
var (
	marqueeColor = colorutil.New(0, 0, 1, 0.5)
	BorderColor  = colorutil.New(0, 0, 1, 0.8)
)

// selection is the floating cutout lifted off the active layer. While
// floating is nil there is no selection; the marquee drag reuses the
// session's shapeStart as its anchor.
type selection struct {
	floating   *raster.Surface
	rect       geometry.Rect
	dragging   bool
	dragOffset geometry.Point
}

// HasSelection reports whether a cutout is floating above the canvas.
func (s *State) HasSelection() bool {
	return s.sel.floating != nil
}

// SelectionRect returns the floating cutout's placement in world space.
func (s *State) SelectionRect() geometry.Rect {
	return s.sel.rect
}

// SelectionSurface returns the floating cutout's pixels for compositing,
// or nil when there is no selection.
func (s *State) SelectionSurface() *raster.Surface {
	return s.sel.floating
}

// pressSelect either grabs the floating cutout for a move, or commits it
// and anchors a fresh marquee.
func (s *State) pressSelect(p geometry.Point) {
	if s.sel.floating != nil && s.sel.rect.Contains(p) {
		s.sel.dragging = true
		s.sel.dragOffset = geometry.Pt(p.X-s.sel.rect.X, p.Y-s.sel.rect.Y)
		return
	}
	if s.sel.floating != nil {
		s.commitSelection()
	}
	s.shapeStart = p
}

// motionSelect moves the grabbed cutout, or redraws the dashed marquee
// preview on the temp surface.
func (s *State) motionSelect(p geometry.Point) {
	if s.sel.dragging {
		s.sel.rect.X = p.X - s.sel.dragOffset.X
		s.sel.rect.Y = p.Y - s.sel.dragOffset.Y
		s.Emit(EventCanvasChanged, nil)
		return
	}
	s.Doc.ClearTemp()
	s.Doc.Temp().StrokeDashedRect(geometry.RectFromCorners(s.shapeStart, p), 1.0, marqueeColor)
	s.Emit(EventCanvasChanged, nil)
}

// releaseSelect finishes a move, or cuts the marquee rect out of the
// active layer into a floating surface. Degenerate marquees up to a pixel
// wide or tall select nothing.
func (s *State) releaseSelect(p geometry.Point) {
	s.drawing = false
	if s.sel.dragging {
		s.sel.dragging = false
		s.SetModified(true)
		return
	}
	s.Doc.ClearTemp()

	r := geometry.RectFromCorners(s.shapeStart, p)
	if r.Width > 1 && r.Height > 1 {
		cut := raster.NewSurface(int(r.Width), int(r.Height))
		cut.Paint(s.Doc.ActiveSurface(), -r.X, -r.Y)
		s.Doc.ActiveSurface().ClearRect(r)
		s.sel.floating = cut
		s.sel.rect = r
		s.SetModified(true)
	}
	s.Emit(EventCanvasChanged, nil)
}

// CommitSelection pastes the floating cutout onto the active layer at its
// current placement and drops it.
func (s *State) CommitSelection() {
	if s.sel.floating == nil {
		return
	}
	s.commitSelection()
	s.Emit(EventCanvasChanged, nil)
}

func (s *State) commitSelection() {
	s.Doc.ActiveSurface().Paint(s.sel.floating, s.sel.rect.X, s.sel.rect.Y)
	s.sel.floating = nil
	s.SetModified(true)
}
