package raster

import (
	"image"
	"image/color"

	"github.com/maskedsyntax/splashy/pkg/colorutil"
)

// FloodFill replaces the 4-connected region of pixels exactly matching the
// color under (x, y) with the fill color. Matching is on premultiplied
// bytes, so the antialiased fringe of a stroke bounds the region.
func (s *Surface) FloodFill(x, y int, c colorutil.Color) {
	b := s.im.Bounds()
	w, h := b.Dx(), b.Dy()
	if x < 0 || x >= w || y < 0 || y >= h {
		return
	}

	fill := color.RGBAModel.Convert(c).(color.RGBA)
	target := s.im.RGBAAt(x, y)
	if target == fill {
		return
	}

	queue := make([]image.Point, 0, 1024)
	queue = append(queue, image.Point{X: x, Y: y})
	s.im.SetRGBA(x, y, fill)

	steps := [4]image.Point{{X: 1}, {X: -1}, {Y: 1}, {Y: -1}}
	for len(queue) > 0 {
		p := queue[0]
		queue = queue[1:]
		for _, d := range steps {
			nx, ny := p.X+d.X, p.Y+d.Y
			if nx < 0 || nx >= w || ny < 0 || ny >= h {
				continue
			}
			if s.im.RGBAAt(nx, ny) == target {
				s.im.SetRGBA(nx, ny, fill)
				queue = append(queue, image.Point{X: nx, Y: ny})
			}
		}
	}
}
