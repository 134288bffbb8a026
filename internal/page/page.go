// Package page provides the page background patterns and canvas size presets.
package page

import (
	"github.com/maskedsyntax/splashy/pkg/colorutil"
	"github.com/maskedsyntax/splashy/pkg/geometry"
)

// Pattern selects the ruled background drawn behind the layers. The values
// are stable because project files store them.
type Pattern int

const (
	Plain Pattern = iota
	Grid
	Lined
	Dotted
)

func (p Pattern) String() string {
	switch p {
	case Plain:
		return "Plain Page"
	case Grid:
		return "Grid Page"
	case Lined:
		return "Lined Page"
	case Dotted:
		return "Dotted Page"
	default:
		return "Unknown"
	}
}

// Patterns lists the selectable patterns in display order.
func Patterns() []Pattern {
	return []Pattern{Plain, Grid, Lined, Dotted}
}

// Snappable reports whether coordinate snapping applies on this pattern.
// Only pages with grid intersections can snap.
func (p Pattern) Snappable() bool {
	return p == Grid || p == Dotted
}

// Ruling geometry shared by the patterns. The step is in canvas units; the
// compositor divides the line width and dot radius by the zoom scale so the
// ruling keeps a constant on-screen weight.
const (
	RuleStep      = geometry.SnapStep
	RuleLineWidth = 0.5
	DotRadius     = 1.0
)

// RuleColor is the translucent gray of the page ruling.
var RuleColor = colorutil.New(0.8, 0.8, 0.8, 0.5)
