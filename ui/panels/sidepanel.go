// Package panels provides UI panels for the application.
package panels

import (
	"fmt"
	"image/color"

	"fyne.io/fyne/v2"
	fynecanvas "fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"

	"github.com/maskedsyntax/splashy/internal/app"
	"github.com/maskedsyntax/splashy/internal/page"
	"github.com/maskedsyntax/splashy/internal/tool"
	"github.com/maskedsyntax/splashy/pkg/colorutil"
)

// SidePanel provides the main side panel with tabbed sections.
type SidePanel struct {
	state     *app.State
	container *container.AppTabs

	toolsPanel  *ToolsPanel
	layersPanel *LayersPanel
}

// NewSidePanel creates a new side panel.
func NewSidePanel(state *app.State) *SidePanel {
	sp := &SidePanel{state: state}

	sp.toolsPanel = NewToolsPanel(state)
	sp.layersPanel = NewLayersPanel(state)

	sp.container = container.NewAppTabs(
		container.NewTabItem("Tools", sp.toolsPanel.Container()),
		container.NewTabItem("Layers", sp.layersPanel.Container()),
	)

	return sp
}

// SetWindow sets the parent window for dialogs.
func (sp *SidePanel) SetWindow(w fyne.Window) {
	sp.toolsPanel.SetWindow(w)
}

// Container returns the panel container.
func (sp *SidePanel) Container() fyne.CanvasObject {
	return sp.container
}

// ToolsPanel holds the tool picker, pen colors, stroke sizes, and page
// settings.
type ToolsPanel struct {
	state     *app.State
	window    fyne.Window
	container fyne.CanvasObject

	toolButtons map[tool.Tool]*widget.Button
	penSwatch   *fynecanvas.Rectangle
	brushLabel  *widget.Label
	eraserLabel *widget.Label
	fontLabel   *widget.Label
	pageSelect  *widget.Select
	snapCheck   *widget.Check
	darkCheck   *widget.Check
}

// NewToolsPanel creates a new tools panel.
func NewToolsPanel(state *app.State) *ToolsPanel {
	tp := &ToolsPanel{
		state:       state,
		toolButtons: make(map[tool.Tool]*widget.Button),
	}

	// Tool buttons in a two-column grid, active one highlighted
	var buttons []fyne.CanvasObject
	for _, t := range tool.Tools() {
		t := t
		btn := widget.NewButton(t.String(), func() {
			state.SetTool(t)
		})
		tp.toolButtons[t] = btn
		buttons = append(buttons, btn)
	}

	// Quick palette plus the current pen color and a custom picker
	tp.penSwatch = fynecanvas.NewRectangle(state.PenColor.NRGBA())
	tp.penSwatch.SetMinSize(fyne.NewSize(40, 24))
	tp.penSwatch.StrokeWidth = 1
	tp.penSwatch.StrokeColor = color.NRGBA{R: 0x80, G: 0x80, B: 0x80, A: 0xff}

	var swatches []fyne.CanvasObject
	for _, c := range colorutil.QuickPalette {
		c := c
		swatches = append(swatches, newSwatchButton(c.NRGBA(), func() {
			state.SetPenColor(c)
		}))
	}

	customBtn := widget.NewButton("Custom...", func() {
		tp.showColorPicker()
	})

	// Size sliders
	tp.brushLabel = widget.NewLabel(fmt.Sprintf("Brush Size: %.0f", state.BrushSize))
	brushSlider := widget.NewSlider(1, 50)
	brushSlider.SetValue(state.BrushSize)
	brushSlider.OnChanged = func(val float64) {
		state.SetBrushSize(val)
		tp.brushLabel.SetText(fmt.Sprintf("Brush Size: %.0f", val))
	}

	tp.eraserLabel = widget.NewLabel(fmt.Sprintf("Eraser Size: %.0f", state.EraserSize))
	eraserSlider := widget.NewSlider(1, 100)
	eraserSlider.SetValue(state.EraserSize)
	eraserSlider.OnChanged = func(val float64) {
		state.SetEraserSize(val)
		tp.eraserLabel.SetText(fmt.Sprintf("Eraser Size: %.0f", val))
	}

	tp.fontLabel = widget.NewLabel(fmt.Sprintf("Text Size: %.0f", state.FontSize))
	fontSlider := widget.NewSlider(8, 72)
	fontSlider.SetValue(state.FontSize)
	fontSlider.OnChanged = func(val float64) {
		state.SetFontSize(val)
		tp.fontLabel.SetText(fmt.Sprintf("Text Size: %.0f", val))
	}

	// Page pattern and related toggles
	var patternNames []string
	for _, p := range page.Patterns() {
		patternNames = append(patternNames, p.String())
	}
	tp.pageSelect = widget.NewSelect(patternNames, func(selected string) {
		for _, p := range page.Patterns() {
			if p.String() == selected {
				state.SetPageStyle(p)
				return
			}
		}
	})
	tp.pageSelect.SetSelected(state.PageStyle.String())

	tp.snapCheck = widget.NewCheck("Snap to Grid", func(checked bool) {
		state.SetSnapToGrid(checked)
	})

	tp.darkCheck = widget.NewCheck("Dark Mode", func(checked bool) {
		state.SetDarkMode(checked)
	})

	// Layout
	tp.container = container.NewVScroll(container.NewVBox(
		widget.NewCard("Tools", "", container.NewGridWithColumns(2, buttons...)),
		widget.NewCard("Pen Color", "", container.NewVBox(
			container.NewHBox(swatches...),
			container.NewHBox(widget.NewLabel("Current:"), tp.penSwatch),
			customBtn,
		)),
		widget.NewCard("Stroke", "", container.NewVBox(
			tp.brushLabel, brushSlider,
			tp.eraserLabel, eraserSlider,
			tp.fontLabel, fontSlider,
		)),
		widget.NewCard("Page", "", container.NewVBox(
			tp.pageSelect,
			tp.snapCheck,
			tp.darkCheck,
		)),
	))

	state.On(app.EventToolChanged, func(data interface{}) {
		tp.syncTools()
	})
	state.On(app.EventPageChanged, func(data interface{}) {
		tp.pageSelect.SetSelected(state.PageStyle.String())
	})
	state.On(app.EventThemeChanged, func(data interface{}) {
		if dark, ok := data.(bool); ok {
			tp.darkCheck.SetChecked(dark)
		}
		tp.syncTools()
	})

	tp.syncTools()
	return tp
}

// SetWindow sets the parent window for dialogs.
func (tp *ToolsPanel) SetWindow(w fyne.Window) {
	tp.window = w
}

// Container returns the panel container.
func (tp *ToolsPanel) Container() fyne.CanvasObject {
	return tp.container
}

// syncTools highlights the active tool button and repaints the pen swatch.
func (tp *ToolsPanel) syncTools() {
	for t, btn := range tp.toolButtons {
		importance := widget.MediumImportance
		if t == tp.state.ActiveTool {
			importance = widget.HighImportance
		}
		if btn.Importance != importance {
			btn.Importance = importance
			btn.Refresh()
		}
	}
	tp.penSwatch.FillColor = tp.state.PenColor.NRGBA()
	fynecanvas.Refresh(tp.penSwatch)
}

// showColorPicker opens the custom pen color dialog.
func (tp *ToolsPanel) showColorPicker() {
	if tp.window == nil {
		return
	}
	picker := dialog.NewColorPicker("Pen Color", "Choose a pen color", func(c color.Color) {
		if picked := colorutil.FromColor(c); picked.A > 0 {
			tp.state.SetPenColor(picked)
		}
	}, tp.window)
	picker.Advanced = true
	picker.Show()
}

// LayersPanel lists the document's layers and edits the active one.
type LayersPanel struct {
	state     *app.State
	container fyne.CanvasObject

	list          *widget.List
	visibleCheck  *widget.Check
	opacitySlider *widget.Slider
}

// NewLayersPanel creates a new layers panel.
func NewLayersPanel(state *app.State) *LayersPanel {
	lp := &LayersPanel{state: state}

	lp.list = widget.NewList(
		func() int {
			return state.Doc.LayerCount()
		},
		func() fyne.CanvasObject {
			return widget.NewLabel("Layer")
		},
		func(id widget.ListItemID, obj fyne.CanvasObject) {
			layers := state.Doc.Layers()
			if id >= len(layers) {
				return
			}
			name := layers[id].Name
			if !layers[id].Visible {
				name += " (hidden)"
			}
			obj.(*widget.Label).SetText(name)
		},
	)
	lp.list.OnSelected = func(id widget.ListItemID) {
		if err := state.SetActiveLayer(id); err == nil {
			lp.syncControls()
		}
	}

	lp.visibleCheck = widget.NewCheck("Visible", func(checked bool) {
		state.SetLayerVisible(state.Doc.ActiveIndex(), checked)
	})
	lp.visibleCheck.SetChecked(true)

	lp.opacitySlider = widget.NewSlider(0, 100)
	lp.opacitySlider.SetValue(100)
	lp.opacitySlider.OnChanged = func(val float64) {
		state.SetLayerOpacity(state.Doc.ActiveIndex(), val/100.0)
	}

	addBtn := widget.NewButton("Add Layer", func() {
		state.AddLayer()
	})

	// Layout
	lp.container = container.NewBorder(
		addBtn,
		widget.NewCard("Active Layer", "", container.NewVBox(
			lp.visibleCheck,
			widget.NewLabel("Opacity:"),
			lp.opacitySlider,
		)),
		nil, nil,
		lp.list,
	)

	sync := func(interface{}) {
		lp.list.Refresh()
		lp.list.Select(state.Doc.ActiveIndex())
		lp.syncControls()
	}
	state.On(app.EventLayersChanged, sync)
	state.On(app.EventProjectLoaded, sync)

	lp.list.Select(state.Doc.ActiveIndex())
	return lp
}

// Container returns the panel container.
func (lp *LayersPanel) Container() fyne.CanvasObject {
	return lp.container
}

// syncControls mirrors the active layer into the checkbox and slider.
func (lp *LayersPanel) syncControls() {
	layer := lp.state.Doc.ActiveLayer()
	lp.visibleCheck.SetChecked(layer.Visible)
	lp.opacitySlider.SetValue(layer.Opacity * 100)
}

// swatchButton is a tappable color square used for the quick palette.
type swatchButton struct {
	widget.BaseWidget
	rect     *fynecanvas.Rectangle
	onTapped func()
}

func newSwatchButton(c color.Color, onTapped func()) *swatchButton {
	sb := &swatchButton{
		rect:     fynecanvas.NewRectangle(c),
		onTapped: onTapped,
	}
	sb.rect.SetMinSize(fyne.NewSize(28, 24))
	sb.rect.StrokeWidth = 1
	sb.rect.StrokeColor = color.NRGBA{R: 0x80, G: 0x80, B: 0x80, A: 0xff}
	sb.ExtendBaseWidget(sb)
	return sb
}

// Tapped implements fyne.Tappable.
func (sb *swatchButton) Tapped(*fyne.PointEvent) {
	if sb.onTapped != nil {
		sb.onTapped()
	}
}

// CreateRenderer implements fyne.Widget.
func (sb *swatchButton) CreateRenderer() fyne.WidgetRenderer {
	return &swatchRenderer{button: sb}
}

type swatchRenderer struct {
	button *swatchButton
}

func (r *swatchRenderer) Layout(size fyne.Size) {
	r.button.rect.Resize(size)
}

func (r *swatchRenderer) MinSize() fyne.Size {
	return r.button.rect.MinSize()
}

func (r *swatchRenderer) Refresh() {
	fynecanvas.Refresh(r.button.rect)
}

func (r *swatchRenderer) Objects() []fyne.CanvasObject {
	return []fyne.CanvasObject{r.button.rect}
}

func (r *swatchRenderer) Destroy() {}
