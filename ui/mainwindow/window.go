// Package mainwindow provides the main application window.
package mainwindow

import (
	"fmt"
	"path/filepath"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/storage"
	"fyne.io/fyne/v2/widget"

	"github.com/maskedsyntax/splashy/internal/app"
	"github.com/maskedsyntax/splashy/internal/project"
	"github.com/maskedsyntax/splashy/internal/version"
	"github.com/maskedsyntax/splashy/pkg/geometry"
	"github.com/maskedsyntax/splashy/ui/canvas"
	"github.com/maskedsyntax/splashy/ui/dialogs"
	"github.com/maskedsyntax/splashy/ui/panels"
	"github.com/maskedsyntax/splashy/ui/prefs"
)

const (
	baseTitle        = "Splashy"
	autosaveInterval = 30 * time.Second
)

// Window-session keys kept in fyne's preference store. Drawing settings
// live in ui/prefs so they travel with the config file.
const (
	prefKeyLastDir      = "lastDirectory"
	prefKeyWindowWidth  = "windowWidth"
	prefKeyWindowHeight = "windowHeight"
)

// MainWindow is the primary application window.
type MainWindow struct {
	fyne.Window
	app       fyne.App
	state     *app.State
	prefs     *prefs.Prefs
	viewport  *canvas.Viewport
	sidePanel *panels.SidePanel
	statusBar *widget.Label
	posLabel  *widget.Label
	cursorX   float64
	cursorY   float64
	autosaver *app.Autosaver

	// Menu items that need state tracking
	darkModeItem *fyne.MenuItem
}

// New creates a new main window.
func New(fyneApp fyne.App, state *app.State, appPrefs *prefs.Prefs) *MainWindow {
	win := fyneApp.NewWindow(baseTitle)

	mw := &MainWindow{
		Window: win,
		app:    fyneApp,
		state:  state,
		prefs:  appPrefs,
	}

	mw.setupUI()
	mw.setupMenus()
	mw.setupShortcuts()
	mw.setupEventHandlers()
	mw.setupAutosave()

	mw.Resize(fyne.NewSize(
		float32(fyneApp.Preferences().IntWithFallback(prefKeyWindowWidth, 1280)),
		float32(fyneApp.Preferences().IntWithFallback(prefKeyWindowHeight, 800)),
	))
	mw.SetCloseIntercept(mw.requestQuit)
	mw.refreshTitle()

	return mw
}

// setupUI creates the main UI layout.
func (mw *MainWindow) setupUI() {
	mw.viewport = canvas.NewViewport(mw.state)

	mw.sidePanel = panels.NewSidePanel(mw.state)
	mw.sidePanel.SetWindow(mw.Window)

	mw.statusBar = widget.NewLabel("Ready")
	mw.posLabel = widget.NewLabel("")
	mw.updatePosLabel()

	mw.viewport.SetOnCursorMoved(func(x, y float64) {
		mw.cursorX, mw.cursorY = x, y
		mw.updatePosLabel()
	})

	// Main layout: side panel | drawing viewport
	split := container.NewHSplit(
		mw.sidePanel.Container(),
		mw.viewport,
	)
	split.SetOffset(0.25) // Side panel takes 25% of width

	statusArea := container.NewBorder(nil, nil, nil, mw.posLabel, mw.statusBar)
	content := container.NewBorder(
		nil,
		container.NewPadded(statusArea),
		nil, nil,
		split,
	)

	mw.SetContent(content)
}

// setupMenus creates the application menus.
func (mw *MainWindow) setupMenus() {
	fileMenu := fyne.NewMenu("File",
		fyne.NewMenuItem("New Canvas...", mw.onNewCanvas),
		fyne.NewMenuItem("Open...", mw.onOpen),
		fyne.NewMenuItemSeparator(),
		fyne.NewMenuItem("Save", mw.onSave),
		fyne.NewMenuItem("Save As...", mw.onSaveAs),
		fyne.NewMenuItemSeparator(),
		fyne.NewMenuItem("Export PNG...", mw.onExportPNG),
		fyne.NewMenuItem("Export PDF...", mw.onExportPDF),
		fyne.NewMenuItemSeparator(),
		fyne.NewMenuItem("Quit", mw.requestQuit),
	)

	editMenu := fyne.NewMenu("Edit",
		fyne.NewMenuItem("Undo", mw.onUndo),
		fyne.NewMenuItem("Redo", mw.onRedo),
		fyne.NewMenuItemSeparator(),
		fyne.NewMenuItem("Clear Canvas", mw.onClearCanvas),
	)

	mw.darkModeItem = fyne.NewMenuItem("  Dark Mode", mw.onToggleDarkMode)

	viewMenu := fyne.NewMenu("View",
		fyne.NewMenuItem("Zoom In", mw.onZoomIn),
		fyne.NewMenuItem("Zoom Out", mw.onZoomOut),
		fyne.NewMenuItem("Reset View", mw.onResetView),
		fyne.NewMenuItemSeparator(),
		mw.darkModeItem,
	)

	layerMenu := fyne.NewMenu("Layer",
		fyne.NewMenuItem("Add Layer", mw.onAddLayer),
	)

	helpMenu := fyne.NewMenu("Help",
		fyne.NewMenuItem("About", mw.onAbout),
	)

	mainMenu := fyne.NewMainMenu(fileMenu, editMenu, viewMenu, layerMenu, helpMenu)
	mw.SetMainMenu(mainMenu)
}

// setupShortcuts binds the usual keyboard shortcuts and feeds the Ctrl
// state to the viewport for wheel zoom.
func (mw *MainWindow) setupShortcuts() {
	c := mw.Canvas()

	ctrl := func(name fyne.KeyName) *desktop.CustomShortcut {
		return &desktop.CustomShortcut{KeyName: name, Modifier: fyne.KeyModifierControl}
	}
	ctrlShift := func(name fyne.KeyName) *desktop.CustomShortcut {
		return &desktop.CustomShortcut{KeyName: name, Modifier: fyne.KeyModifierControl | fyne.KeyModifierShift}
	}

	c.AddShortcut(ctrl(fyne.KeyZ), func(fyne.Shortcut) { mw.onUndo() })
	c.AddShortcut(ctrlShift(fyne.KeyZ), func(fyne.Shortcut) { mw.onRedo() })
	c.AddShortcut(ctrl(fyne.KeyY), func(fyne.Shortcut) { mw.onRedo() })
	c.AddShortcut(ctrl(fyne.KeyN), func(fyne.Shortcut) { mw.onNewCanvas() })
	c.AddShortcut(ctrl(fyne.KeyO), func(fyne.Shortcut) { mw.onOpen() })
	c.AddShortcut(ctrl(fyne.KeyS), func(fyne.Shortcut) { mw.onSave() })
	c.AddShortcut(ctrlShift(fyne.KeyS), func(fyne.Shortcut) { mw.onSaveAs() })
	c.AddShortcut(ctrl(fyne.KeyE), func(fyne.Shortcut) { mw.onExportPNG() })

	if deskCanvas, ok := c.(desktop.Canvas); ok {
		deskCanvas.SetOnKeyDown(func(ev *fyne.KeyEvent) {
			if isCtrlKey(ev.Name) {
				mw.viewport.SetCtrlDown(true)
			}
		})
		deskCanvas.SetOnKeyUp(func(ev *fyne.KeyEvent) {
			if isCtrlKey(ev.Name) {
				mw.viewport.SetCtrlDown(false)
			}
		})
	}
}

func isCtrlKey(name fyne.KeyName) bool {
	return name == desktop.KeyControlLeft || name == desktop.KeyControlRight
}

// setupEventHandlers registers for application events.
func (mw *MainWindow) setupEventHandlers() {
	mw.state.On(app.EventProjectLoaded, func(data interface{}) {
		mw.refreshTitle()
		if path, ok := data.(string); ok {
			mw.updateStatus("Opened " + path)
		}
	})

	mw.state.On(app.EventProjectSaved, func(data interface{}) {
		mw.refreshTitle()
		app.RemoveRecovery()
	})

	mw.state.On(app.EventModified, func(data interface{}) {
		mw.refreshTitle()
	})

	mw.state.On(app.EventViewChanged, func(data interface{}) {
		mw.updatePosLabel()
	})

	mw.state.On(app.EventCanvasChanged, func(data interface{}) {
		mw.updatePosLabel()
	})

	mw.state.On(app.EventStatus, func(data interface{}) {
		if text, ok := data.(string); ok {
			mw.updateStatus(text)
		}
	})

	mw.state.On(app.EventThemeChanged, func(data interface{}) {
		dark, _ := data.(bool)
		if dark {
			mw.darkModeItem.Label = "✓ Dark Mode"
		} else {
			mw.darkModeItem.Label = "  Dark Mode"
		}
		mw.app.Settings().SetTheme(&app.SplashyTheme{Dark: dark})
		mw.prefs.SetBool(prefs.KeyDarkMode, dark)
	})

	mw.state.On(app.EventTextRequested, func(data interface{}) {
		p, ok := data.(geometry.Point)
		if !ok {
			return
		}
		dialogs.NewTextInputDialog(mw.Window, func(text string) {
			mw.state.CommitText(p, text)
		}).Show()
	})
}

// setupAutosave snapshots unsaved work to the recovery file in the
// background.
func (mw *MainWindow) setupAutosave() {
	mw.autosaver = app.NewAutosaver(autosaveInterval)
	mw.autosaver.OnTick(func() {
		if err := mw.state.SaveRecovery(); err != nil {
			fmt.Printf("Autosave failed: %v\n", err)
		}
		mw.SavePreferencesIfChanged()
	})
	mw.autosaver.Start()
}

// CheckRecovery offers to restore an autosaved drawing left behind by a
// crashed session. Call once at startup.
func (mw *MainWindow) CheckRecovery() {
	if !app.HasRecovery() {
		return
	}
	dialog.ShowConfirm("Restore Drawing",
		"An autosaved drawing from a previous session was found.\nRestore it?",
		func(restore bool) {
			if !restore {
				app.RemoveRecovery()
				return
			}
			path, err := app.RecoveryPath()
			if err != nil {
				dialog.ShowError(err, mw.Window)
				return
			}
			if err := mw.state.LoadProject(path); err != nil {
				dialog.ShowError(err, mw.Window)
				return
			}
			// The restored work has no real home yet; keep it marked
			// unsaved so Save prompts for a location.
			mw.state.ProjectPath = ""
			mw.state.SetModified(true)
			mw.refreshTitle()
		}, mw.Window)
}

// refreshTitle rebuilds the window title from the project path and the
// modified flag.
func (mw *MainWindow) refreshTitle() {
	name := "Untitled"
	if path := mw.state.Path(); path != "" {
		name = filepath.Base(path)
	}
	title := baseTitle + " - " + name
	if mw.state.IsModified() {
		title += " *"
	}
	mw.SetTitle(title)
}

// updateStatus updates the status bar text.
func (mw *MainWindow) updateStatus(text string) {
	mw.statusBar.SetText(text)
}

// updatePosLabel refreshes the cursor position, zoom, and canvas size
// readout on the right of the status bar.
func (mw *MainWindow) updatePosLabel() {
	mw.posLabel.SetText(fmt.Sprintf("(%.0f, %.0f)  %.0f%%  %dx%d",
		mw.cursorX, mw.cursorY,
		mw.state.View.Scale*100,
		mw.state.Doc.Width(), mw.state.Doc.Height()))
}

// getLastDir returns the last used directory as a ListableURI, or nil.
func (mw *MainWindow) getLastDir() fyne.ListableURI {
	path := mw.app.Preferences().String(prefKeyLastDir)
	if path == "" {
		return nil
	}
	uri := storage.NewFileURI(path)
	listable, err := storage.ListerForURI(uri)
	if err != nil {
		return nil
	}
	return listable
}

// saveLastDir saves the directory of the given file path.
func (mw *MainWindow) saveLastDir(filePath string) {
	mw.app.Preferences().SetString(prefKeyLastDir, filepath.Dir(filePath))
}

// syncPrefs copies the current drawing settings into the preference map.
func (mw *MainWindow) syncPrefs() {
	mw.prefs.SetFloat(prefs.KeyBrushSize, mw.state.BrushSize)
	mw.prefs.SetFloat(prefs.KeyEraserSize, mw.state.EraserSize)
	mw.prefs.SetFloat(prefs.KeyFontSize, mw.state.FontSize)
	mw.prefs.SetInt(prefs.KeyLastTool, int(mw.state.ActiveTool))
	mw.prefs.SetBool(prefs.KeySnapToGrid, mw.state.SnapToGrid)
}

// SavePreferences persists drawing settings and window geometry.
func (mw *MainWindow) SavePreferences() {
	mw.syncPrefs()
	size := mw.Canvas().Size()
	if size.Width > 0 && size.Height > 0 {
		mw.app.Preferences().SetInt(prefKeyWindowWidth, int(size.Width))
		mw.app.Preferences().SetInt(prefKeyWindowHeight, int(size.Height))
	}
	if err := mw.prefs.Save(); err != nil {
		fmt.Printf("Failed to save preferences: %v\n", err)
	}
}

// SavePreferencesIfChanged writes drawing settings only when something
// differs from the last save.
func (mw *MainWindow) SavePreferencesIfChanged() {
	mw.syncPrefs()
	if err := mw.prefs.SaveIfChanged(); err != nil {
		fmt.Printf("Failed to save preferences: %v\n", err)
	}
}

// requestQuit prompts about unsaved changes before shutting down.
func (mw *MainWindow) requestQuit() {
	if !mw.state.IsModified() {
		mw.shutdown()
		return
	}
	dialog.ShowConfirm("Quit",
		"The drawing has unsaved changes. Quit anyway?",
		func(quit bool) {
			if quit {
				mw.shutdown()
			}
		}, mw.Window)
}

// shutdown stops background work and closes the application.
func (mw *MainWindow) shutdown() {
	mw.autosaver.Stop()
	app.RemoveRecovery()
	mw.SavePreferences()
	mw.app.Quit()
}

// Menu action handlers

func (mw *MainWindow) onNewCanvas() {
	dialogs.NewCanvasSizeDialog(mw.Window, func(width, height int) {
		mw.state.NewCanvas(width, height)
		mw.refreshTitle()
		mw.updateStatus(fmt.Sprintf("New %dx%d canvas", width, height))
	}).Show()
}

func (mw *MainWindow) onOpen() {
	fd := dialog.NewFileOpen(func(reader fyne.URIReadCloser, err error) {
		if err != nil || reader == nil {
			return
		}
		reader.Close()
		path := reader.URI().Path()
		mw.saveLastDir(path)
		if err := mw.state.LoadProject(path); err != nil {
			dialog.ShowError(err, mw.Window)
		}
	}, mw.Window)
	fd.SetFilter(storage.NewExtensionFileFilter([]string{project.Extension}))
	if loc := mw.getLastDir(); loc != nil {
		fd.SetLocation(loc)
	}
	fd.Show()
}

func (mw *MainWindow) onSave() {
	if mw.state.Path() == "" {
		mw.onSaveAs()
		return
	}
	if err := mw.state.SaveProject(mw.state.Path()); err != nil {
		dialog.ShowError(err, mw.Window)
	}
}

func (mw *MainWindow) onSaveAs() {
	fd := dialog.NewFileSave(func(writer fyne.URIWriteCloser, err error) {
		if err != nil || writer == nil {
			return
		}
		writer.Close()
		path := writer.URI().Path()
		if filepath.Ext(path) != project.Extension {
			path += project.Extension
		}
		mw.saveLastDir(path)
		if err := mw.state.SaveProject(path); err != nil {
			dialog.ShowError(err, mw.Window)
		}
	}, mw.Window)
	fd.SetFileName("drawing" + project.Extension)
	if loc := mw.getLastDir(); loc != nil {
		fd.SetLocation(loc)
	}
	fd.Show()
}

func (mw *MainWindow) onExportPNG() {
	mw.exportFile(".png", "drawing.png", mw.state.ExportPNG)
}

func (mw *MainWindow) onExportPDF() {
	mw.exportFile(".pdf", "drawing.pdf", mw.state.ExportPDF)
}

// exportFile runs a save dialog for the given extension and hands the
// chosen path to the exporter.
func (mw *MainWindow) exportFile(ext, defaultName string, export func(string) error) {
	fd := dialog.NewFileSave(func(writer fyne.URIWriteCloser, err error) {
		if err != nil || writer == nil {
			return
		}
		writer.Close()
		path := writer.URI().Path()
		if filepath.Ext(path) != ext {
			path += ext
		}
		mw.saveLastDir(path)
		if err := export(path); err != nil {
			dialog.ShowError(err, mw.Window)
			return
		}
		mw.updateStatus("Exported " + path)
	}, mw.Window)
	fd.SetFilter(storage.NewExtensionFileFilter([]string{ext}))
	fd.SetFileName(defaultName)
	if loc := mw.getLastDir(); loc != nil {
		fd.SetLocation(loc)
	}
	fd.Show()
}

func (mw *MainWindow) onUndo() {
	mw.state.Undo()
}

func (mw *MainWindow) onRedo() {
	mw.state.Redo()
}

func (mw *MainWindow) onClearCanvas() {
	mw.state.ClearCanvas()
}

func (mw *MainWindow) onZoomIn() {
	mw.zoomAtCenter(1.1)
}

func (mw *MainWindow) onZoomOut() {
	mw.zoomAtCenter(1.0 / 1.1)
}

// zoomAtCenter zooms about the middle of the viewport, where menu and
// shortcut zooming is anchored.
func (mw *MainWindow) zoomAtCenter(factor float64) {
	size := mw.viewport.Size()
	mw.state.View = mw.state.View.ZoomAt(float64(size.Width)/2, float64(size.Height)/2, factor)
	mw.state.Emit(app.EventViewChanged, nil)
}

func (mw *MainWindow) onResetView() {
	mw.state.ResetView()
}

func (mw *MainWindow) onToggleDarkMode() {
	mw.state.SetDarkMode(!mw.state.DarkMode)
}

func (mw *MainWindow) onAddLayer() {
	mw.state.AddLayer()
	mw.updateStatus(fmt.Sprintf("Added layer %d", len(mw.state.Doc.Layers())))
}

func (mw *MainWindow) onAbout() {
	dialog.ShowInformation("About Splashy",
		fmt.Sprintf("Splashy v%s\n\n"+
			"A layered whiteboard for sketching, diagrams, and notes.\n\n"+
			"Built: %s\n"+
			"Commit: %s",
			version.Version, version.BuildTime, version.GitCommit),
		mw.Window)
}
