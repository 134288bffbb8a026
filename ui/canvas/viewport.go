// Package canvas provides the interactive whiteboard viewport widget.
package canvas

import (
	"fyne.io/fyne/v2"
	fynecanvas "fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/widget"

	"github.com/maskedsyntax/splashy/internal/app"
	"github.com/maskedsyntax/splashy/pkg/geometry"
)

// Viewport renders the session's document through its view transform and
// feeds pointer input back into the session's gesture handlers. Panning
// and zooming happen inside the transform, so the widget itself never
// scrolls; it simply fills whatever space the layout gives it.
type Viewport struct {
	widget.BaseWidget

	session *app.State
	raster  *fynecanvas.Raster

	// Ctrl state is fed from the window's key hooks because fyne scroll
	// events carry no modifier information.
	ctrlDown bool

	onCursorMoved func(x, y float64)
}

// NewViewport creates the drawing viewport for a session and subscribes
// it to every event that changes what the canvas shows.
func NewViewport(session *app.State) *Viewport {
	v := &Viewport{session: session}

	v.raster = fynecanvas.NewRaster(v.draw)
	v.raster.ScaleMode = fynecanvas.ImageScalePixels
	v.ExtendBaseWidget(v)

	redraw := func(interface{}) { v.Refresh() }
	session.On(app.EventCanvasChanged, redraw)
	session.On(app.EventViewChanged, redraw)
	session.On(app.EventLayersChanged, redraw)
	session.On(app.EventThemeChanged, redraw)
	session.On(app.EventProjectLoaded, redraw)

	return v
}

// CreateRenderer implements fyne.Widget.
func (v *Viewport) CreateRenderer() fyne.WidgetRenderer {
	return &viewportRenderer{viewport: v}
}

// Refresh repaints the viewport.
func (v *Viewport) Refresh() {
	v.raster.Refresh()
}

// Resize grows the document to cover the widget, so enlarging the window
// never exposes dead space beyond the canvas edge.
func (v *Viewport) Resize(size fyne.Size) {
	v.BaseWidget.Resize(size)
	if size.Width > 0 && size.Height > 0 {
		v.session.EnsureCanvasSize(int(size.Width), int(size.Height))
	}
}

// SetCtrlDown records the modifier state used by wheel zoom.
func (v *Viewport) SetCtrlDown(down bool) {
	v.ctrlDown = down
}

// SetOnCursorMoved registers a callback for pointer moves, reported in
// canvas coordinates.
func (v *Viewport) SetOnCursorMoved(fn func(x, y float64)) {
	v.onCursorMoved = fn
}

// Cursor shows a crosshair over the drawing area.
func (v *Viewport) Cursor() desktop.Cursor {
	return desktop.CrosshairCursor
}

// MouseDown begins a drawing gesture, or a pan when the middle button is
// pressed.
func (v *Viewport) MouseDown(ev *desktop.MouseEvent) {
	x, y := float64(ev.Position.X), float64(ev.Position.Y)
	switch ev.Button {
	case desktop.MouseButtonPrimary:
		v.session.PressPrimary(x, y, 1.0)
	case desktop.MouseButtonTertiary:
		v.session.PressMiddle(x, y)
	}
}

// MouseUp finishes the gesture begun by MouseDown.
func (v *Viewport) MouseUp(ev *desktop.MouseEvent) {
	x, y := float64(ev.Position.X), float64(ev.Position.Y)
	switch ev.Button {
	case desktop.MouseButtonPrimary:
		v.session.Release(x, y)
	case desktop.MouseButtonTertiary:
		v.session.ReleaseMiddle()
	}
}

// MouseIn implements desktop.Hoverable.
func (v *Viewport) MouseIn(ev *desktop.MouseEvent) {}

// MouseMoved extends the active gesture. Hover events keep arriving while
// a button is held, which is what routes drag motion here.
func (v *Viewport) MouseMoved(ev *desktop.MouseEvent) {
	x, y := float64(ev.Position.X), float64(ev.Position.Y)
	v.session.Motion(x, y, 1.0)
	if v.onCursorMoved != nil {
		wx, wy := v.session.View.WorldFromScreen(x, y)
		v.onCursorMoved(wx, wy)
	}
}

// MouseOut implements desktop.Hoverable.
func (v *Viewport) MouseOut() {}

// Scrolled pans the view, or zooms about the cursor while Ctrl is held.
// Wheel deltas are collapsed to one notch per event so trackpads and
// wheels move the view at the same rate.
func (v *Viewport) Scrolled(ev *fyne.ScrollEvent) {
	var dx, dy float64
	if ev.Scrolled.DX > 0 {
		dx = 1
	} else if ev.Scrolled.DX < 0 {
		dx = -1
	}
	if ev.Scrolled.DY > 0 {
		dy = 1
	} else if ev.Scrolled.DY < 0 {
		dy = -1
	}
	if dx == 0 && dy == 0 {
		return
	}
	v.session.Scroll(float64(ev.Position.X), float64(ev.Position.Y), dx, dy, v.ctrlDown)
}

// WorldAt converts a widget position to canvas coordinates.
func (v *Viewport) WorldAt(pos fyne.Position) geometry.Point {
	wx, wy := v.session.View.WorldFromScreen(float64(pos.X), float64(pos.Y))
	return geometry.Pt(wx, wy)
}

type viewportRenderer struct {
	viewport *Viewport
}

func (r *viewportRenderer) Layout(size fyne.Size) {
	r.viewport.raster.Resize(size)
}

func (r *viewportRenderer) MinSize() fyne.Size {
	return fyne.NewSize(320, 240)
}

func (r *viewportRenderer) Refresh() {
	r.viewport.raster.Refresh()
}

func (r *viewportRenderer) Objects() []fyne.CanvasObject {
	return []fyne.CanvasObject{r.viewport.raster}
}

func (r *viewportRenderer) Destroy() {}
