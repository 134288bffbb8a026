// Package document manages the layer stack the whiteboard draws on.
package document

import (
	"github.com/maskedsyntax/splashy/internal/raster"
)

// Layer is a single drawing surface in the stack.
type Layer struct {
	Name    string          // Display name
	Visible bool            // Layer visibility
	Opacity float64         // Layer opacity (0.0 - 1.0)
	Surface *raster.Surface // Pixel content
}

// NewLayer creates a visible, fully opaque layer backed by a transparent
// surface.
func NewLayer(name string, width, height int) *Layer {
	return &Layer{
		Name:    name,
		Visible: true,
		Opacity: 1.0,
		Surface: raster.NewSurface(width, height),
	}
}
