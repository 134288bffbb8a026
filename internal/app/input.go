package app

import (
	"log"

	"github.com/maskedsyntax/splashy/internal/raster"
	"github.com/maskedsyntax/splashy/internal/tool"
	"github.com/maskedsyntax/splashy/pkg/geometry"
)

// ScrollStep is how far one scroll notch pans the view, in screen units.
const ScrollStep = 30.0

// worldPoint converts a screen position to world coordinates, snapping to
// the grid when the tool and page pattern call for it.
func (s *State) worldPoint(sx, sy, pressure float64) geometry.Point {
	wx, wy := s.View.WorldFromScreen(sx, sy)
	p := geometry.Point{X: wx, Y: wy, Pressure: pressure}
	if s.ActiveTool.UsesSnap() && s.SnapToGrid && s.PageStyle.Snappable() {
		p.X = geometry.Snap(p.X)
		p.Y = geometry.Snap(p.Y)
	}
	return p
}

// PressPrimary starts a gesture with the active tool. Every press snapshots
// the active layer so the gesture can be undone as a unit.
func (s *State) PressPrimary(sx, sy, pressure float64) {
	s.drawing = true
	p := s.worldPoint(sx, sy, pressure)

	s.History.Push(s.Doc.ActiveSurface())
	s.Emit(EventHistoryChanged, nil)

	switch {
	case s.ActiveTool == tool.Select:
		s.pressSelect(p)

	case s.ActiveTool == tool.Bucket:
		s.Doc.ActiveSurface().FloodFill(int(p.X), int(p.Y), s.PenColor)
		s.drawing = false
		s.SetModified(true)
		s.Emit(EventCanvasChanged, nil)

	case s.ActiveTool.IsFreehand():
		s.stroke.Start(p)
		ink, width := tool.Ink(s.ActiveTool, s.PenColor, s.Background, s.BrushSize, s.EraserSize, p.Pressure)
		s.Doc.ActiveSurface().DrawDot(p, width, ink)
		s.SetModified(true)
		s.Emit(EventCanvasChanged, nil)

	case s.ActiveTool == tool.Text:
		s.drawing = false
		s.Emit(EventTextRequested, p)

	default:
		s.shapeStart = p
	}
}

// PressMiddle starts panning the view.
func (s *State) PressMiddle(sx, sy float64) {
	s.panning = true
	s.lastScreen = geometry.Pt(sx, sy)
}

// Motion advances the gesture in progress, if any.
func (s *State) Motion(sx, sy, pressure float64) {
	if s.panning {
		s.View = s.View.Pan(sx-s.lastScreen.X, sy-s.lastScreen.Y)
		s.lastScreen = geometry.Pt(sx, sy)
		s.Emit(EventViewChanged, nil)
		return
	}
	if !s.drawing {
		return
	}

	p := s.worldPoint(sx, sy, pressure)

	if s.ActiveTool == tool.Select {
		s.motionSelect(p)
		return
	}

	// Grow the canvas before painting near an edge. When content reflows
	// right or down, shift the in-flight gesture and compensate the view
	// offset so nothing jumps on screen, then rederive the world point.
	if dx, dy := s.Doc.GrowToFit(p); dx != 0 || dy != 0 {
		s.shapeStart.X += dx
		s.shapeStart.Y += dy
		s.stroke.Translate(dx, dy)
		s.View.OffsetX -= dx * s.View.Scale
		s.View.OffsetY -= dy * s.View.Scale
		p.X, p.Y = s.View.WorldFromScreen(sx, sy)
		s.Emit(EventViewChanged, nil)
	}

	if s.ActiveTool.IsFreehand() {
		seg, ok := s.stroke.Push(p)
		if !ok {
			return
		}
		ink, width := tool.Ink(s.ActiveTool, s.PenColor, s.Background, s.BrushSize, s.EraserSize, seg.To.Pressure)
		s.Doc.ActiveSurface().StrokeCurve(seg.From, seg.Ctrl, seg.To, width, ink)
		s.Emit(EventCanvasChanged, nil)
		return
	}

	// Shape tools preview on the temp surface, redrawn from scratch each
	// motion so only the latest candidate shows.
	s.Doc.ClearTemp()
	s.drawShape(s.Doc.Temp(), s.shapeStart, p)
	s.Emit(EventCanvasChanged, nil)
}

// Release finishes the gesture: freehand strokes close out with a final
// line, shapes commit from the preview to the active layer.
func (s *State) Release(sx, sy float64) {
	if !s.drawing {
		return
	}
	p := s.worldPoint(sx, sy, 1.0)

	if s.ActiveTool == tool.Select {
		s.releaseSelect(p)
		return
	}

	s.drawing = false

	if s.ActiveTool.IsFreehand() {
		prev, last, ok := s.stroke.Tail()
		if !ok {
			return
		}
		ink, width := tool.Ink(s.ActiveTool, s.PenColor, s.Background, s.BrushSize, s.EraserSize, last.Pressure)
		s.Doc.ActiveSurface().StrokeLine(prev.Mid(last), p, width, ink)
		s.stroke.Reset()
		s.SetModified(true)
		s.Emit(EventCanvasChanged, nil)
		return
	}

	s.Doc.ClearTemp()
	s.drawShape(s.Doc.ActiveSurface(), s.shapeStart, p)
	s.SetModified(true)
	s.Emit(EventCanvasChanged, nil)
}

// ReleaseMiddle stops panning.
func (s *State) ReleaseMiddle() {
	s.panning = false
}

// Scroll pans the view, or zooms about the cursor when ctrl is held.
// dx and dy are in scroll notches, positive meaning up or left.
func (s *State) Scroll(sx, sy, dx, dy float64, ctrl bool) {
	if ctrl {
		if dy == 0 {
			return
		}
		factor := 1.1
		if dy < 0 {
			factor = 1.0 / 1.1
		}
		s.View = s.View.ZoomAt(sx, sy, factor)
	} else {
		s.View = s.View.Pan(ScrollStep*dx, ScrollStep*dy)
	}
	s.Emit(EventViewChanged, nil)
}

// CommitText renders dialog text at the point the text tool was pressed.
func (s *State) CommitText(p geometry.Point, text string) {
	if text == "" {
		return
	}
	if err := s.Doc.ActiveSurface().DrawText(text, p, s.FontSize, s.PenColor); err != nil {
		log.Printf("text render failed: %v", err)
		return
	}
	s.SetModified(true)
	s.Emit(EventCanvasChanged, nil)
}

// drawShape strokes the active shape tool's outline from a to b onto dst,
// used for both the temp preview and the final commit.
func (s *State) drawShape(dst *raster.Surface, a, b geometry.Point) {
	w := s.BrushSize
	c := s.PenColor
	switch s.ActiveTool {
	case tool.Line:
		dst.StrokeSegment(a, b, w, c)
	case tool.Rectangle:
		dst.StrokeRect(geometry.RectFromCorners(a, b), w, c)
	case tool.Circle:
		dst.StrokeCircle(a, a.Distance(b), w, c)
	case tool.Triangle:
		dst.StrokePolygon(geometry.TrianglePoints(a, b), w, c)
	case tool.Star:
		dst.StrokePolygon(geometry.StarPoints(a, b), w, c)
	case tool.Arrow:
		barbs := geometry.ArrowBarbs(a, b)
		dst.StrokeSegment(a, b, w, c)
		dst.StrokeSegment(b, barbs[0], w, c)
		dst.StrokeSegment(b, barbs[1], w, c)
	}
}
