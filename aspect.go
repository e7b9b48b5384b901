package ggview

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/spatial/r2"
)

// Aspect is the ratio of display units per data unit on y to those on x.
// AspectAuto lets both axes stretch independently to fill the surface.
type Aspect float64

const (
	AspectAuto  Aspect = 0
	AspectEqual Aspect = 1
)

func (a Aspect) String() string {
	switch a {
	case AspectAuto:
		return "auto"
	case AspectEqual:
		return "equal"
	}
	return fmt.Sprintf("%g", float64(a))
}

// Adjustable selects how a fixed Aspect is met.
type Adjustable uint8

const (
	// AdjustDataLimits widens the shorter data range around its centre.
	AdjustDataLimits Adjustable = iota
	// AdjustBox shrinks the display rectangle, keeping it centred.
	AdjustBox
)

func (a Adjustable) String() string {
	if a == AdjustBox {
		return "box"
	}
	return "datalim"
}

// layout is the effective placement of a surface's data: the ranges and
// the display rectangle they map onto after the aspect policy is applied.
type layout struct {
	x, y Range
	box  Rect
}

// applyAspect returns the layout for data ranges x, y drawn into r under
// the given policy. Non-positive, NaN or infinite aspects behave as
// AspectAuto.
func applyAspect(x, y Range, r Rect, aspect Aspect, adj Adjustable) layout {
	out := layout{x: x, y: y, box: r}
	a := float64(aspect)
	if a <= 0 || math.IsNaN(a) || math.IsInf(a, 0) || x.Degenerate() || y.Degenerate() || r.Empty() {
		return out
	}
	dx, dy := math.Abs(x.Extent()), math.Abs(y.Extent())
	w, h := r.Width(), r.Height()

	// Display units per x data unit that fit both axes.
	k := math.Min(w/dx, h/(a*dy))

	switch adj {
	case AdjustBox:
		bw, bh := k*dx, k*a*dy
		c := r.Center()
		out.box = Rect{
			Min: r2.Vec{X: c.X - bw/2, Y: c.Y - bh/2},
			Max: r2.Vec{X: c.X + bw/2, Y: c.Y + bh/2},
		}
	default:
		out.x = widen(x, w/k)
		out.y = widen(y, h/(a*k))
	}
	return out
}

// widen returns r resized to the given absolute extent around its centre,
// keeping its direction.
func widen(r Range, extent float64) Range {
	half := math.Copysign(extent/2, r.Extent())
	c := r.Center()
	return Range{Min: c - half, Max: c + half}
}
