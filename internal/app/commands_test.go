package app

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/maskedsyntax/splashy/internal/page"
	"github.com/maskedsyntax/splashy/internal/project"
	"github.com/maskedsyntax/splashy/internal/tool"
	"github.com/maskedsyntax/splashy/pkg/colorutil"
)

func dotAt(s *State, x, y float64) {
	s.PressPrimary(x, y, 1.0)
	s.Release(x, y)
}

func TestUndoStepsThroughPressSnapshots(t *testing.T) {
	s := NewState(200, 200)

	dotAt(s, 60, 60)
	dotAt(s, 120, 120)
	require.True(t, isBlack(s, 60, 60))
	require.True(t, isBlack(s, 120, 120))

	// Snapshots are captured at press time, so the walk lands on the
	// states seen at each gesture start.
	s.Undo()
	assert.True(t, isWhite(s, 60, 60))
	assert.True(t, isWhite(s, 120, 120))

	s.Undo()
	assert.False(t, s.History.CanUndo())
	assert.True(t, isWhite(s, 60, 60))

	s.Redo()
	s.Redo()
	assert.True(t, isBlack(s, 60, 60), "redo walks forward to the newest snapshot")
	assert.True(t, isWhite(s, 120, 120))
	assert.False(t, s.History.CanRedo())
}

func TestNewStrokeInvalidatesRedo(t *testing.T) {
	s := NewState(200, 200)

	dotAt(s, 60, 60)
	s.Undo()
	require.True(t, s.History.CanRedo())

	dotAt(s, 120, 120)
	assert.False(t, s.History.CanRedo(), "drawing after undo discards the redo branch")
	assert.True(t, isWhite(s, 60, 60))
	assert.True(t, isBlack(s, 120, 120))
}

func TestUndoAtBottomIsNoop(t *testing.T) {
	s := NewState(200, 200)
	s.Undo()
	s.Undo()
	assert.True(t, isWhite(s, 100, 100), "baseline snapshot survives")
	assert.False(t, s.History.CanUndo())
}

func TestClearCanvasEntersHistory(t *testing.T) {
	s := NewState(200, 200)
	dotAt(s, 100, 100)

	s.ClearCanvas()
	assert.Zero(t, s.Doc.ActiveSurface().At(100, 100).A, "clear leaves the layer transparent")

	s.Undo()
	assert.True(t, isWhite(s, 100, 100))
	s.Redo()
	assert.True(t, isBlack(s, 100, 100), "the pre-clear snapshot is reachable")
}

func TestLayerCommands(t *testing.T) {
	s := NewState(200, 200)

	s.AddLayer()
	assert.Equal(t, 2, s.Doc.LayerCount())
	assert.Equal(t, 1, s.Doc.ActiveIndex(), "new layer becomes active")
	assert.Zero(t, s.Doc.ActiveSurface().At(100, 100).A, "new layer starts transparent")

	dotAt(s, 100, 100)
	require.NoError(t, s.SetActiveLayer(0))
	assert.True(t, isWhite(s, 100, 100), "base layer unaffected by layer 1 ink")

	require.NoError(t, s.SetLayerVisible(1, false))
	assert.False(t, s.Doc.Layers()[1].Visible)
	require.NoError(t, s.SetLayerOpacity(1, 0.4))
	assert.Equal(t, 0.4, s.Doc.Layers()[1].Opacity)

	assert.Error(t, s.SetActiveLayer(5))
	assert.Error(t, s.SetLayerVisible(-1, true))
	assert.Error(t, s.SetLayerOpacity(9, 0.5))
}

func TestDarkModeInvertsAndSwapsPen(t *testing.T) {
	s := NewState(200, 200)
	dotAt(s, 100, 100)

	s.SetDarkMode(true)

	assert.True(t, s.DarkMode)
	assert.Equal(t, DarkBackground, s.Background)
	assert.Equal(t, colorutil.White, s.PenColor, "black pen flips to white")
	px := s.Doc.ActiveSurface().At(100, 100)
	assert.EqualValues(t, 255, px.R, "black ink inverted to white")
	assert.True(t, isBlack(s, 50, 50), "white fill inverted to black")

	s.SetDarkMode(true)
	assert.True(t, isBlack(s, 50, 50), "repeat call does not double-invert")

	s.SetDarkMode(false)
	assert.Equal(t, LightBackground, s.Background)
	assert.Equal(t, colorutil.Black, s.PenColor)
	assert.True(t, isWhite(s, 50, 50))
}

func TestDarkModeLeavesColoredPenAlone(t *testing.T) {
	s := NewState(200, 200)
	s.SetPenColor(colorutil.Red)
	s.SetDarkMode(true)
	assert.Equal(t, colorutil.Red, s.PenColor)
}

func TestNewCanvasResetsSession(t *testing.T) {
	s := NewState(200, 200)
	dotAt(s, 100, 100)
	s.AddLayer()
	s.View = s.View.Pan(40, 40)

	s.NewCanvas(640, 480)

	assert.Equal(t, 640, s.Doc.Width())
	assert.Equal(t, 480, s.Doc.Height())
	assert.Equal(t, 1, s.Doc.LayerCount())
	assert.Zero(t, s.View.OffsetX)
	assert.Equal(t, 1.0, s.View.Scale)
	assert.False(t, s.History.CanUndo())
	assert.False(t, s.IsModified())
	assert.Empty(t, s.Path())
}

func TestEnsureCanvasSizeGrowsOnly(t *testing.T) {
	s := NewState(200, 200)
	dotAt(s, 100, 100)

	s.EnsureCanvasSize(800, 150)
	assert.Equal(t, 800, s.Doc.Width())
	assert.Equal(t, 200, s.Doc.Height(), "never shrinks")
	assert.True(t, isBlack(s, 100, 100), "content preserved in place")

	s.EnsureCanvasSize(400, 100)
	assert.Equal(t, 800, s.Doc.Width())
}

func TestSaveThenLoadRestoresSession(t *testing.T) {
	path := filepath.Join(t.TempDir(), "board.sphy")

	s := NewState(300, 200)
	dotAt(s, 100, 100)
	s.AddLayer()
	dotAt(s, 150, 80)
	s.SetBackground(colorutil.New(1, 1, 0.8, 1))
	s.SetPageStyle(page.Dotted)
	s.View = s.View.Pan(25, -10)
	require.NoError(t, s.SaveProject(path))
	assert.False(t, s.IsModified())
	assert.Equal(t, path, s.Path())

	loaded := NewState(100, 100)
	require.NoError(t, loaded.LoadProject(path))

	assert.Equal(t, 300, loaded.Doc.Width())
	assert.Equal(t, 2, loaded.Doc.LayerCount())
	assert.Equal(t, 1, loaded.Doc.ActiveIndex())
	assert.Equal(t, page.Dotted, loaded.PageStyle)
	assert.Equal(t, s.Background, loaded.Background)
	assert.Equal(t, 25.0, loaded.View.OffsetX)
	assert.True(t, isBlack(loaded, 150, 80))
	require.NoError(t, loaded.SetActiveLayer(0))
	assert.True(t, isBlack(loaded, 100, 100))
	assert.False(t, loaded.IsModified())
	assert.Equal(t, path, loaded.Path())
	assert.False(t, loaded.History.CanUndo(), "history does not cross loads")
}

func TestLoadFailureLeavesSessionUntouched(t *testing.T) {
	bad := filepath.Join(t.TempDir(), "bad.sphy")
	require.NoError(t, os.WriteFile(bad, []byte("BOGUS FILE"), 0644))

	s := NewState(200, 200)
	dotAt(s, 100, 100)

	assert.Error(t, s.LoadProject(bad))
	assert.Error(t, s.LoadProject(filepath.Join(t.TempDir(), "missing.sphy")))
	assert.True(t, isBlack(s, 100, 100), "failed load keeps the current canvas")
	assert.Empty(t, s.Path())
}

func TestLoadDiscardsPendingSelection(t *testing.T) {
	path := filepath.Join(t.TempDir(), "board.sphy")
	src := NewState(200, 200)
	require.NoError(t, src.SaveProject(path))

	s := NewState(300, 300)
	s.Doc.ActiveSurface().Fill(colorutil.Red)
	s.SetTool(tool.Select)
	s.PressPrimary(60, 60, 1.0)
	s.Release(100, 100)
	require.True(t, s.HasSelection())

	require.NoError(t, s.LoadProject(path))
	assert.False(t, s.HasSelection())
}

func TestModifiedLifecycle(t *testing.T) {
	s := NewState(200, 200)
	assert.False(t, s.IsModified())

	dotAt(s, 100, 100)
	assert.True(t, s.IsModified())

	path := filepath.Join(t.TempDir(), "board"+project.Extension)
	require.NoError(t, s.SaveProject(path))
	assert.False(t, s.IsModified())

	dotAt(s, 50, 50)
	assert.True(t, s.IsModified())
}
