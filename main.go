// Package main provides the entry point for the Splashy whiteboard.
package main

import (
	"log"
	"os"

	fyneapp "fyne.io/fyne/v2/app"

	"github.com/maskedsyntax/splashy/internal/app"
	"github.com/maskedsyntax/splashy/internal/page"
	"github.com/maskedsyntax/splashy/internal/tool"
	"github.com/maskedsyntax/splashy/internal/version"
	"github.com/maskedsyntax/splashy/ui/mainwindow"
	"github.com/maskedsyntax/splashy/ui/prefs"
)

const (
	appID    = "com.maskedsyntax.splashy"
	appTitle = "Splashy"
)

func main() {
	log.SetFlags(log.LstdFlags | log.Lshortfile)
	log.Printf("Starting %s v%s", appTitle, version.Version)

	fyneApp := fyneapp.NewWithID(appID)
	appPrefs := prefs.Load()

	preset, _ := page.Get(page.DefaultPreset)
	state := app.NewState(preset.Width, preset.Height)

	// Restore persisted tool settings
	state.BrushSize = appPrefs.Float(prefs.KeyBrushSize, state.BrushSize)
	state.EraserSize = appPrefs.Float(prefs.KeyEraserSize, state.EraserSize)
	state.FontSize = appPrefs.Float(prefs.KeyFontSize, state.FontSize)
	state.SetSnapToGrid(appPrefs.Bool(prefs.KeySnapToGrid, false))
	if t := tool.Tool(appPrefs.Int(prefs.KeyLastTool, int(tool.Pen))); t >= tool.Pen && t <= tool.Text {
		state.SetTool(t)
	}
	if appPrefs.Bool(prefs.KeyDarkMode, false) {
		state.SetDarkMode(true)
	}
	state.SetModified(false) // Don't mark as modified on restore

	fyneApp.Settings().SetTheme(&app.SplashyTheme{Dark: state.DarkMode})

	win := mainwindow.New(fyneApp, state, appPrefs)

	// Handle command line arguments
	if len(os.Args) > 1 {
		projectPath := os.Args[1]
		if err := state.LoadProject(projectPath); err != nil {
			log.Printf("Failed to load project %s: %v", projectPath, err)
		}
	} else {
		win.CheckRecovery()
	}

	win.ShowAndRun()
}
