package geometry

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTrianglePoints(t *testing.T) {
	pts := TrianglePoints(Pt(0, 0), Pt(100, 80))
	assert.Len(t, pts, 3)
	assert.Equal(t, Point{X: 50, Y: 0}, pts[0])
	assert.Equal(t, Point{X: 0, Y: 80}, pts[1])
	assert.Equal(t, Point{X: 100, Y: 80}, pts[2])
}

func TestStarPoints(t *testing.T) {
	a, b := Pt(-50, -50), Pt(50, 50)
	pts := StarPoints(a, b)
	assert.Len(t, pts, 10)

	c := RectFromCorners(a, b).Center()
	outer := c.Distance(b)

	// First vertex points straight up from the center.
	assert.InDelta(t, 0, pts[0].X, 1e-9)
	assert.InDelta(t, -outer, pts[0].Y, 1e-9)

	// Vertices alternate between the outer radius and 40% of it.
	for i, p := range pts {
		want := outer
		if i%2 == 1 {
			want = outer * 0.4
		}
		assert.InDelta(t, want, c.Distance(p), 1e-9, "vertex %d", i)
	}
}

func TestArrowBarbs(t *testing.T) {
	// Horizontal shaft pointing right: barbs trail behind the tip,
	// mirrored across the shaft.
	barbs := ArrowBarbs(Pt(0, 0), Pt(100, 0))
	for _, barb := range barbs {
		assert.Less(t, barb.X, 100.0)
		assert.InDelta(t, ArrowBarbLength, Pt(100, 0).Distance(barb), 1e-9)
	}
	assert.InDelta(t, barbs[0].X, barbs[1].X, 1e-9)
	assert.InDelta(t, -barbs[0].Y, barbs[1].Y, 1e-9)

	dx := 100 - ArrowBarbLength*math.Cos(math.Pi/6)
	assert.InDelta(t, dx, barbs[0].X, 1e-9)
}
