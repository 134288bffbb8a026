package tool

import (
	"github.com/maskedsyntax/splashy/pkg/geometry"
)

// Segment is one smoothed stroke piece: a quadratic curve from From
// through Ctrl to To. The endpoints are midpoints of consecutive input
// points, which keeps joined segments tangent-continuous.
type Segment struct {
	From geometry.Point
	Ctrl geometry.Point
	To   geometry.Point
}

// Buffer holds the most recent input points of a freehand stroke and turns
// them into smoothed segments. The emitted segment trails the newest point,
// trading a hair of latency for continuous curvature.
type Buffer struct {
	pts [4]geometry.Point
	n   int
}

// Start begins a stroke at p, discarding any previous points.
func (b *Buffer) Start(p geometry.Point) {
	b.pts[0] = p
	b.n = 1
}

// Len returns the number of buffered points.
func (b *Buffer) Len() int { return b.n }

// Push adds a motion point and returns the smoothing segment that is ready
// to paint, if any.
func (b *Buffer) Push(p geometry.Point) (Segment, bool) {
	if b.n < len(b.pts) {
		b.pts[b.n] = p
		b.n++
	} else {
		b.pts[0], b.pts[1], b.pts[2] = b.pts[1], b.pts[2], b.pts[3]
		b.pts[3] = p
	}
	if b.n < 3 {
		return Segment{}, false
	}
	p0, p1, p2 := b.pts[0], b.pts[1], b.pts[2]
	return Segment{From: p0.Mid(p1), Ctrl: p1, To: p1.Mid(p2)}, true
}

// Translate shifts every buffered point, keeping an in-flight stroke
// consistent after the canvas grows and reflows.
func (b *Buffer) Translate(dx, dy float64) {
	for i := 0; i < b.n; i++ {
		b.pts[i].X += dx
		b.pts[i].Y += dy
	}
}

// Tail returns the last two buffered points for closing out a stroke. When
// only one point exists it is returned twice.
func (b *Buffer) Tail() (geometry.Point, geometry.Point, bool) {
	switch {
	case b.n == 0:
		return geometry.Point{}, geometry.Point{}, false
	case b.n == 1:
		return b.pts[0], b.pts[0], true
	default:
		return b.pts[b.n-2], b.pts[b.n-1], true
	}
}

// Reset discards the stroke.
func (b *Buffer) Reset() { b.n = 0 }
