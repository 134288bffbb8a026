package geometry

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPointOps(t *testing.T) {
	p := Pt(3, 4)
	assert.Equal(t, 1.0, p.Pressure)

	q := Point{X: 1, Y: 2, Pressure: 0.5}
	assert.Equal(t, Point{X: 4, Y: 6, Pressure: 1.0}, p.Add(q))
	assert.Equal(t, Point{X: 2, Y: 2, Pressure: 1.0}, p.Sub(q))

	m := p.Mid(q)
	assert.Equal(t, 2.0, m.X)
	assert.Equal(t, 3.0, m.Y)
	assert.Equal(t, 0.75, m.Pressure)

	assert.InDelta(t, 5.0, Pt(0, 0).Distance(p), 1e-9)
	assert.InDelta(t, math.Pi/2, Pt(0, 0).AngleTo(Pt(0, 1)), 1e-9)
	assert.InDelta(t, math.Pi, Pt(0, 0).AngleTo(Pt(-1, 0)), 1e-9)
}

func TestRectFromCorners(t *testing.T) {
	// Same rectangle whichever corner the drag started from.
	want := NewRect(10, 20, 30, 40)
	assert.Equal(t, want, RectFromCorners(Pt(10, 20), Pt(40, 60)))
	assert.Equal(t, want, RectFromCorners(Pt(40, 60), Pt(10, 20)))
	assert.Equal(t, want, RectFromCorners(Pt(40, 20), Pt(10, 60)))
	assert.Equal(t, want, RectFromCorners(Pt(10, 60), Pt(40, 20)))
}

func TestRectContains(t *testing.T) {
	r := NewRect(0, 0, 100, 50)
	assert.True(t, r.Contains(Pt(50, 25)))
	assert.True(t, r.Contains(Pt(0, 0)))
	assert.True(t, r.Contains(Pt(100, 50)))
	assert.False(t, r.Contains(Pt(101, 25)))
	assert.False(t, r.Contains(Pt(50, -1)))
}

func TestRectIntersects(t *testing.T) {
	r := NewRect(0, 0, 10, 10)
	assert.True(t, r.Intersects(NewRect(5, 5, 10, 10)))
	assert.False(t, r.Intersects(NewRect(20, 20, 5, 5)))
	assert.False(t, r.Intersects(NewRect(10, 0, 5, 5)))
}

func TestSnap(t *testing.T) {
	assert.Equal(t, 30.0, Snap(44))
	assert.Equal(t, 60.0, Snap(46))
	assert.Equal(t, 0.0, Snap(14))
	assert.Equal(t, -30.0, Snap(-16))
	assert.Equal(t, 90.0, Snap(90))
}

func TestViewRoundTrip(t *testing.T) {
	v := View{OffsetX: 120, OffsetY: -45, Scale: 1.75}
	wx, wy := v.WorldFromScreen(300, 200)
	sx, sy := v.ScreenFromWorld(wx, wy)
	assert.InDelta(t, 300, sx, 1e-9)
	assert.InDelta(t, 200, sy, 1e-9)
}

func TestViewPan(t *testing.T) {
	v := NewView().Pan(40, -25)
	assert.Equal(t, View{OffsetX: 40, OffsetY: -25, Scale: 1.0}, v)
}

func TestViewZoomAtKeepsAnchor(t *testing.T) {
	v := View{OffsetX: 50, OffsetY: 80, Scale: 1.0}
	wx, wy := v.WorldFromScreen(400, 300)

	z := v.ZoomAt(400, 300, 1.1)
	assert.InDelta(t, 1.1, z.Scale, 1e-9)

	// The canvas point under the cursor must not move.
	zx, zy := z.WorldFromScreen(400, 300)
	assert.InDelta(t, wx, zx, 1e-9)
	assert.InDelta(t, wy, zy, 1e-9)

	// Zooming back out restores the original view.
	back := z.ZoomAt(400, 300, 1/1.1)
	assert.InDelta(t, v.OffsetX, back.OffsetX, 1e-9)
	assert.InDelta(t, v.OffsetY, back.OffsetY, 1e-9)
	assert.InDelta(t, v.Scale, back.Scale, 1e-9)
}
