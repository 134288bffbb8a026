package dialogs

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"
)

// TextInputDialog collects the string the text tool stamps onto the
// canvas.
type TextInputDialog struct {
	window   fyne.Window
	onCommit func(text string)

	entry *widget.Entry
}

// NewTextInputDialog creates a new text input dialog.
func NewTextInputDialog(window fyne.Window, onCommit func(text string)) *TextInputDialog {
	return &TextInputDialog{
		window:   window,
		onCommit: onCommit,
	}
}

// Show displays the dialog with the entry focused.
func (d *TextInputDialog) Show() {
	d.entry = widget.NewEntry()
	d.entry.SetPlaceHolder("Text to insert")

	dlg := dialog.NewCustomConfirm("Insert Text", "Insert", "Cancel", d.entry,
		func(insert bool) {
			if !insert || d.entry.Text == "" {
				return
			}
			if d.onCommit != nil {
				d.onCommit(d.entry.Text)
			}
		}, d.window)

	d.entry.OnSubmitted = func(text string) {
		dlg.Hide()
		if text != "" && d.onCommit != nil {
			d.onCommit(text)
		}
	}

	dlg.Resize(fyne.NewSize(320, 140))
	dlg.Show()
	d.window.Canvas().Focus(d.entry)
}
