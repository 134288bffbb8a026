package app

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/maskedsyntax/splashy/internal/tool"
	"github.com/maskedsyntax/splashy/pkg/colorutil"
)

// redCanvas builds a session whose active layer is solid red, so cut holes
// and pasted cutouts are easy to probe.
func redCanvas(size int) *State {
	s := NewState(size, size)
	s.Doc.ActiveSurface().Fill(colorutil.Red)
	s.SetTool(tool.Select)
	return s
}

func isRed(s *State, x, y int) bool {
	px := s.Doc.ActiveSurface().At(x, y)
	return px.R == 255 && px.A == 255
}

func TestMarqueeCutsFloatingSelection(t *testing.T) {
	s := redCanvas(300)

	s.PressPrimary(60, 60, 1.0)
	s.Motion(80, 80, 1.0)
	assert.False(t, s.HasSelection(), "nothing cut until release")

	s.Release(100, 100)

	require.True(t, s.HasSelection())
	r := s.SelectionRect()
	assert.Equal(t, 60.0, r.X)
	assert.Equal(t, 40.0, r.Width)

	cut := s.SelectionSurface()
	assert.Equal(t, 40, cut.Width())
	assert.EqualValues(t, 255, cut.At(20, 20).R, "cutout carries the layer pixels")

	assert.Zero(t, s.Doc.ActiveSurface().At(80, 80).A, "source region cleared to transparent")
	assert.True(t, isRed(s, 50, 50), "outside the marquee is untouched")
}

func TestMarqueePreviewUsesTempSurface(t *testing.T) {
	s := redCanvas(300)

	s.PressPrimary(60, 60, 1.0)
	s.Motion(100, 100, 1.0)

	marked := 0
	for x := 60; x <= 100; x++ {
		if s.Doc.Temp().At(x, 60).A > 0 {
			marked++
		}
	}
	assert.Greater(t, marked, 0, "dashed preview drawn on temp")
	assert.Less(t, marked, 41, "dashes leave gaps")

	s.Release(100, 100)
	assert.Zero(t, s.Doc.Temp().At(70, 60).A, "preview cleared on release")
}

func TestDragMovesPlacementOnly(t *testing.T) {
	s := redCanvas(300)
	s.PressPrimary(60, 60, 1.0)
	s.Release(100, 100)
	require.True(t, s.HasSelection())

	s.PressPrimary(80, 80, 1.0) // grab inside the cutout
	s.Motion(180, 130, 1.0)
	s.Release(180, 130)

	r := s.SelectionRect()
	assert.Equal(t, 160.0, r.X, "placement follows the pointer minus the grab offset")
	assert.Equal(t, 110.0, r.Y)
	assert.Zero(t, s.Doc.ActiveSurface().At(80, 80).A, "source hole does not move")
	assert.True(t, s.HasSelection(), "dragging never commits")
}

func TestToolSwitchCommitsSelection(t *testing.T) {
	s := redCanvas(300)
	s.PressPrimary(60, 60, 1.0)
	s.Release(100, 100)
	s.PressPrimary(80, 80, 1.0)
	s.Motion(180, 130, 1.0)
	s.Release(180, 130)

	s.SetTool(tool.Pen)

	assert.False(t, s.HasSelection())
	assert.True(t, isRed(s, 180, 130), "cutout pasted at its new placement")
	assert.Zero(t, s.Doc.ActiveSurface().At(80, 80).A, "origin stays transparent")
}

func TestPressOutsideCommitsAndStartsFresh(t *testing.T) {
	s := redCanvas(300)
	s.PressPrimary(10, 10, 1.0)
	s.Release(30, 30)
	require.True(t, s.HasSelection())

	s.PressPrimary(200, 200, 1.0)
	s.Release(200, 200)

	assert.False(t, s.HasSelection(), "degenerate marquee selects nothing")
	assert.True(t, isRed(s, 20, 20), "old cutout committed back in place")
}

func TestTinyMarqueeSelectsNothing(t *testing.T) {
	s := redCanvas(300)
	s.PressPrimary(10, 10, 1.0)
	s.Release(11, 11)

	assert.False(t, s.HasSelection())
	assert.True(t, isRed(s, 10, 10))
}

func TestCommitSelectionWithoutSelectionIsNoop(t *testing.T) {
	s := redCanvas(300)
	s.CommitSelection()
	assert.False(t, s.HasSelection())
	assert.True(t, isRed(s, 150, 150))
}
