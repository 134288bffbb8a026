package app

import (
	"fmt"
	"path/filepath"

	"github.com/maskedsyntax/splashy/internal/document"
	"github.com/maskedsyntax/splashy/internal/export"
	"github.com/maskedsyntax/splashy/internal/project"
	"github.com/maskedsyntax/splashy/pkg/colorutil"
	"github.com/maskedsyntax/splashy/pkg/geometry"
)

// Undo restores the active layer to the previous history snapshot.
func (s *State) Undo() {
	snap, ok := s.History.Undo()
	if !ok {
		return
	}
	s.Doc.ActiveSurface().CopyFrom(snap)
	s.SetModified(true)
	s.Emit(EventHistoryChanged, nil)
	s.Emit(EventCanvasChanged, nil)
}

// Redo reapplies the next history snapshot to the active layer.
func (s *State) Redo() {
	snap, ok := s.History.Redo()
	if !ok {
		return
	}
	s.Doc.ActiveSurface().CopyFrom(snap)
	s.SetModified(true)
	s.Emit(EventHistoryChanged, nil)
	s.Emit(EventCanvasChanged, nil)
}

// ClearCanvas wipes the active layer after snapshotting it, so the wipe
// itself is undoable.
func (s *State) ClearCanvas() {
	s.History.Push(s.Doc.ActiveSurface())
	s.Doc.ClearActive()
	s.SetModified(true)
	s.Emit(EventHistoryChanged, nil)
	s.Emit(EventCanvasChanged, nil)
}

// AddLayer appends a transparent layer and makes it the drawing target.
func (s *State) AddLayer() {
	s.Doc.AddLayer()
	s.SetModified(true)
	s.Emit(EventLayersChanged, nil)
	s.Emit(EventCanvasChanged, nil)
}

// SetActiveLayer switches which layer strokes land on.
func (s *State) SetActiveLayer(i int) error {
	if err := s.Doc.SetActive(i); err != nil {
		return err
	}
	s.Emit(EventLayersChanged, nil)
	return nil
}

// SetLayerVisible shows or hides a layer in the composite.
func (s *State) SetLayerVisible(i int, visible bool) error {
	layers := s.Doc.Layers()
	if i < 0 || i >= len(layers) {
		return fmt.Errorf("layer index %d out of range", i)
	}
	layers[i].Visible = visible
	s.Emit(EventLayersChanged, nil)
	s.Emit(EventCanvasChanged, nil)
	return nil
}

// SetLayerOpacity adjusts how strongly a layer shows in the composite.
func (s *State) SetLayerOpacity(i int, opacity float64) error {
	layers := s.Doc.Layers()
	if i < 0 || i >= len(layers) {
		return fmt.Errorf("layer index %d out of range", i)
	}
	layers[i].Opacity = opacity
	s.Emit(EventLayersChanged, nil)
	s.Emit(EventCanvasChanged, nil)
	return nil
}

// SetDarkMode switches between the light and dark canvas. Existing ink is
// inverted in place; the pen color follows only when it exactly matches
// the preset it would vanish against.
func (s *State) SetDarkMode(dark bool) {
	if s.DarkMode == dark {
		return
	}
	s.DarkMode = dark
	s.Doc.InvertLayers()
	if dark {
		s.Background = DarkBackground
		if s.PenColor.R == 0 && s.PenColor.G == 0 && s.PenColor.B == 0 {
			s.PenColor = colorutil.White
		}
	} else {
		s.Background = LightBackground
		if s.PenColor.R == 1 && s.PenColor.G == 1 && s.PenColor.B == 1 {
			s.PenColor = colorutil.Black
		}
	}
	s.SetModified(true)
	s.Emit(EventThemeChanged, dark)
	s.Emit(EventCanvasChanged, nil)
}

// NewCanvas replaces the document with a blank canvas of the given size,
// keeping the current background and tool settings.
func (s *State) NewCanvas(width, height int) {
	s.sel = selection{}
	s.stroke.Reset()
	s.drawing = false
	s.panning = false

	s.Doc = document.New(width, height, s.Background)
	s.View = geometry.NewView()
	s.History.Reset()
	s.History.Push(s.Doc.ActiveSurface())

	s.mu.Lock()
	s.ProjectPath = ""
	s.Modified = false
	s.mu.Unlock()

	s.Emit(EventModified, false)
	s.Emit(EventLayersChanged, nil)
	s.Emit(EventViewChanged, nil)
	s.Emit(EventHistoryChanged, nil)
	s.Emit(EventCanvasChanged, nil)
}

// EnsureCanvasSize grows the canvas to cover at least the given pixel
// size, called when the window outgrows it.
func (s *State) EnsureCanvasSize(w, h int) {
	ow, oh := s.Doc.Width(), s.Doc.Height()
	s.Doc.EnsureSize(w, h)
	if s.Doc.Width() != ow || s.Doc.Height() != oh {
		s.Emit(EventCanvasChanged, nil)
	}
}

// ResetView restores the untransformed view.
func (s *State) ResetView() {
	s.View = geometry.NewView()
	s.Emit(EventViewChanged, nil)
}

// SaveProject writes the session to a project file and records it as the
// current path.
func (s *State) SaveProject(path string) error {
	if err := s.snapshotFile().Save(path); err != nil {
		return err
	}

	s.mu.Lock()
	s.ProjectPath = path
	s.Modified = false
	s.mu.Unlock()

	s.Emit(EventModified, false)
	s.Emit(EventProjectSaved, path)
	s.Emit(EventStatus, "Saved "+filepath.Base(path))
	return nil
}

// LoadProject replaces the session with the contents of a project file.
// On any decode error the current session is left untouched.
func (s *State) LoadProject(path string) error {
	f, err := project.Load(path)
	if err != nil {
		return err
	}

	s.sel = selection{}
	s.stroke.Reset()
	s.drawing = false
	s.panning = false

	s.Doc = document.FromSurfaces(f.Layers, f.ActiveLayer)
	s.Background = f.Background
	s.PageStyle = f.Page
	s.View = f.View
	s.History.Reset()
	s.History.Push(s.Doc.ActiveSurface())

	s.mu.Lock()
	s.ProjectPath = path
	s.Modified = false
	s.mu.Unlock()

	s.Emit(EventModified, false)
	s.Emit(EventProjectLoaded, path)
	s.Emit(EventLayersChanged, nil)
	s.Emit(EventCanvasChanged, nil)
	return nil
}

// ExportPNG flattens the canvas over its background and writes a PNG.
func (s *State) ExportPNG(path string) error {
	if err := export.PNG(s.Doc, s.Background, path); err != nil {
		return err
	}
	s.Emit(EventStatus, "Exported "+filepath.Base(path))
	return nil
}

// ExportPDF flattens the canvas over its background and writes a
// single-page PDF.
func (s *State) ExportPDF(path string) error {
	if err := export.PDF(s.Doc, s.Background, path); err != nil {
		return err
	}
	s.Emit(EventStatus, "Exported "+filepath.Base(path))
	return nil
}
