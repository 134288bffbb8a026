package geometry

import (
	"math"
)

// TrianglePoints returns the vertices of an isosceles triangle spanned by
// two drag corners: the apex sits centered on the first corner's edge and
// the base spans the second corner's edge.
func TrianglePoints(a, b Point) []Point {
	return []Point{
		{X: (a.X + b.X) / 2, Y: a.Y},
		{X: a.X, Y: b.Y},
		{X: b.X, Y: b.Y},
	}
}

// StarPoints returns the ten vertices of a five-pointed star centered
// between two drag corners. The outer radius reaches the second corner and
// the inner radius is 40% of it. The first vertex points straight up.
func StarPoints(a, b Point) []Point {
	c := RectFromCorners(a, b).Center()
	outer := c.Distance(b)
	inner := outer * 0.4
	pts := make([]Point, 10)
	for i := range pts {
		r := outer
		if i%2 == 1 {
			r = inner
		}
		angle := float64(i)*math.Pi/5 - math.Pi/2
		pts[i] = Point{X: c.X + r*math.Cos(angle), Y: c.Y + r*math.Sin(angle)}
	}
	return pts
}

// ArrowBarbLength is the length of each arrowhead barb in canvas units.
const ArrowBarbLength = 15.0

// ArrowBarbs returns the free endpoints of the two arrowhead barbs for a
// shaft drawn from a to b. Each barb leaves the tip at 30 degrees off the
// shaft.
func ArrowBarbs(a, b Point) [2]Point {
	angle := a.AngleTo(b)
	return [2]Point{
		{
			X: b.X - ArrowBarbLength*math.Cos(angle-math.Pi/6),
			Y: b.Y - ArrowBarbLength*math.Sin(angle-math.Pi/6),
		},
		{
			X: b.X - ArrowBarbLength*math.Cos(angle+math.Pi/6),
			Y: b.Y - ArrowBarbLength*math.Sin(angle+math.Pi/6),
		},
	}
}
