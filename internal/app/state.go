// Package app provides the whiteboard session state, commands, and events.
package app

import (
	"sync"

	"github.com/maskedsyntax/splashy/internal/document"
	"github.com/maskedsyntax/splashy/internal/history"
	"github.com/maskedsyntax/splashy/internal/page"
	"github.com/maskedsyntax/splashy/internal/tool"
	"github.com/maskedsyntax/splashy/pkg/colorutil"
	"github.com/maskedsyntax/splashy/pkg/geometry"
)

// Background presets toggled by dark mode. The pen color swaps with them
// only when it exactly matches the opposite preset.
var (
	LightBackground = colorutil.White
	DarkBackground  = colorutil.New(0.1, 0.1, 0.1, 1)
)

// State holds the whiteboard session: the document, view transform, tool
// settings, history, and in-flight gesture state. All drawing mutations
// happen on the UI event thread; the mutex only guards the listener table
// and the project bookkeeping, which background goroutines read.
type State struct {
	mu sync.RWMutex

	// Project
	ProjectPath string
	Modified    bool

	// Document and undo history for its active layer
	Doc     *document.Document
	History *history.Stack

	// View transform (screen = world*scale + offset)
	View geometry.View

	// Tool settings
	ActiveTool tool.Tool
	PenColor   colorutil.Color
	Background colorutil.Color
	BrushSize  float64
	EraserSize float64
	FontSize   float64
	PageStyle  page.Pattern
	SnapToGrid bool
	DarkMode   bool

	// Gesture state
	drawing    bool
	panning    bool
	lastScreen geometry.Point
	stroke     tool.Buffer
	shapeStart geometry.Point
	sel        selection

	// Event listeners
	listeners map[EventType][]EventListener
}

// EventType identifies different session events.
type EventType int

const (
	EventCanvasChanged EventType = iota
	EventToolChanged
	EventLayersChanged
	EventViewChanged
	EventHistoryChanged
	EventPageChanged
	EventThemeChanged
	EventProjectLoaded
	EventProjectSaved
	EventModified
	EventStatus
	EventTextRequested
)

// EventListener is called when an event occurs.
type EventListener func(data interface{})

// NewState creates a session with a blank canvas of the given size and the
// default tool settings. The initial canvas state is pushed onto history so
// the first stroke can be undone back to blank.
func NewState(width, height int) *State {
	s := &State{
		Doc:        document.New(width, height, colorutil.White),
		History:    history.NewStack(),
		View:       geometry.NewView(),
		ActiveTool: tool.Pen,
		PenColor:   colorutil.Black,
		Background: LightBackground,
		BrushSize:  3.0,
		EraserSize: 10.0,
		FontSize:   12.0,
		PageStyle:  page.Plain,
		listeners:  make(map[EventType][]EventListener),
	}
	s.History.Push(s.Doc.ActiveSurface())
	return s
}

// On registers an event listener for the specified event type.
func (s *State) On(event EventType, listener EventListener) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.listeners[event] = append(s.listeners[event], listener)
}

// Emit triggers all listeners for the specified event type.
func (s *State) Emit(event EventType, data interface{}) {
	s.mu.RLock()
	listeners := s.listeners[event]
	s.mu.RUnlock()

	for _, listener := range listeners {
		listener(data)
	}
}

// SetModified marks the project as modified and emits an event.
func (s *State) SetModified(modified bool) {
	s.mu.Lock()
	s.Modified = modified
	s.mu.Unlock()
	s.Emit(EventModified, modified)
}

// IsModified reports whether the document has unsaved changes.
func (s *State) IsModified() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.Modified
}

// Path returns the file the project was last saved to or loaded from.
func (s *State) Path() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.ProjectPath
}

// SetTool switches the active tool. Leaving the select tool while a cutout
// is floating commits it first.
func (s *State) SetTool(t tool.Tool) {
	if s.ActiveTool == tool.Select && t != tool.Select && s.sel.floating != nil {
		s.commitSelection()
		s.Emit(EventCanvasChanged, nil)
	}
	s.ActiveTool = t
	s.Emit(EventToolChanged, t)
}

// SetPenColor changes the color new strokes are drawn with.
func (s *State) SetPenColor(c colorutil.Color) {
	s.PenColor = c
	s.Emit(EventToolChanged, s.ActiveTool)
}

// SetBackground changes the canvas background color.
func (s *State) SetBackground(c colorutil.Color) {
	s.Background = c
	s.Emit(EventCanvasChanged, nil)
}

// SetBrushSize changes the pen and shape stroke width.
func (s *State) SetBrushSize(v float64) { s.BrushSize = v }

// SetEraserSize changes the eraser stroke width.
func (s *State) SetEraserSize(v float64) { s.EraserSize = v }

// SetFontSize changes the text tool's point size.
func (s *State) SetFontSize(v float64) { s.FontSize = v }

// SetSnapToGrid toggles grid snapping for shape and selection input.
func (s *State) SetSnapToGrid(on bool) { s.SnapToGrid = on }

// SetPageStyle switches the page pattern drawn behind the layers.
func (s *State) SetPageStyle(p page.Pattern) {
	s.PageStyle = p
	s.Emit(EventPageChanged, p)
	s.Emit(EventCanvasChanged, nil)
}
