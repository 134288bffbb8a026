// Package dialogs provides application dialogs.
package dialogs

import (
	"fmt"
	"strconv"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"

	"github.com/maskedsyntax/splashy/internal/page"
)

// CanvasSizeDialog asks for the dimensions of a fresh canvas, offering
// the registered presets alongside free-form entry.
type CanvasSizeDialog struct {
	window   fyne.Window
	onCreate func(width, height int)

	presetSelect *widget.Select
	widthEntry   *widget.Entry
	heightEntry  *widget.Entry
}

// NewCanvasSizeDialog creates a new canvas size dialog.
func NewCanvasSizeDialog(window fyne.Window, onCreate func(width, height int)) *CanvasSizeDialog {
	return &CanvasSizeDialog{
		window:   window,
		onCreate: onCreate,
	}
}

// Show displays the dialog.
func (d *CanvasSizeDialog) Show() {
	d.widthEntry = widget.NewEntry()
	d.heightEntry = widget.NewEntry()

	d.presetSelect = widget.NewSelect(page.List(), func(name string) {
		if p, ok := page.Get(name); ok {
			d.widthEntry.SetText(strconv.Itoa(p.Width))
			d.heightEntry.SetText(strconv.Itoa(p.Height))
		}
	})
	d.presetSelect.SetSelected(page.DefaultPreset)

	content := container.NewVBox(
		widget.NewLabel("Preset:"),
		d.presetSelect,
		container.NewGridWithColumns(4,
			widget.NewLabel("Width:"),
			d.widthEntry,
			widget.NewLabel("Height:"),
			d.heightEntry,
		),
	)

	dlg := dialog.NewCustomConfirm("New Canvas", "Create", "Cancel", content,
		func(create bool) {
			if !create {
				return
			}
			width, werr := strconv.Atoi(d.widthEntry.Text)
			height, herr := strconv.Atoi(d.heightEntry.Text)
			if werr != nil || herr != nil || width <= 0 || height <= 0 {
				dialog.ShowError(fmt.Errorf("canvas size must be positive whole numbers"), d.window)
				return
			}
			if d.onCreate != nil {
				d.onCreate(width, height)
			}
		}, d.window)
	dlg.Resize(fyne.NewSize(360, 220))
	dlg.Show()
}
