package ggview

import (
	"fmt"
	"math"

	"github.com/gogpu/gg"
	"gonum.org/v1/gonum/floats/scalar"
	"gonum.org/v1/gonum/spatial/r2"
)

// Rect is an axis-aligned rectangle in display coordinates (pixels, origin
// at the top-left, y increasing downwards). Min is the top-left corner and
// Max the bottom-right corner of a canonical rectangle.
type Rect r2.Box

// R returns the canonical rectangle spanned by the two corners.
func R(x0, y0, x1, y1 float64) Rect {
	return Rect{
		Min: r2.Vec{X: math.Min(x0, x1), Y: math.Min(y0, y1)},
		Max: r2.Vec{X: math.Max(x0, x1), Y: math.Max(y0, y1)},
	}
}

// RectXYWH returns the rectangle with top-left corner (x, y) and the given
// size. Negative sizes are canonicalized.
func RectXYWH(x, y, w, h float64) Rect {
	return R(x, y, x+w, y+h)
}

// Width returns the horizontal extent.
func (r Rect) Width() float64 { return r.Max.X - r.Min.X }

// Height returns the vertical extent.
func (r Rect) Height() float64 { return r.Max.Y - r.Min.Y }

// Empty reports whether the rectangle has no area.
func (r Rect) Empty() bool {
	return !(r.Min.X < r.Max.X && r.Min.Y < r.Max.Y)
}

// Center returns the midpoint of the rectangle.
func (r Rect) Center() gg.Point {
	return gg.Pt((r.Min.X+r.Max.X)/2, (r.Min.Y+r.Max.Y)/2)
}

// Intersect returns the largest rectangle contained in both r and o.
// The zero Rect is returned when they do not overlap.
func (r Rect) Intersect(o Rect) Rect {
	out := Rect{
		Min: r2.Vec{X: math.Max(r.Min.X, o.Min.X), Y: math.Max(r.Min.Y, o.Min.Y)},
		Max: r2.Vec{X: math.Min(r.Max.X, o.Max.X), Y: math.Min(r.Max.Y, o.Max.Y)},
	}
	if out.Empty() {
		return Rect{}
	}
	return out
}

// Overlaps reports whether r and o share at least one point. Unlike
// Intersect it treats edges as closed, so a horizontal hairline touching
// the rectangle counts.
func (r Rect) Overlaps(o Rect) bool {
	return r.Min.X <= o.Max.X && o.Min.X <= r.Max.X &&
		r.Min.Y <= o.Max.Y && o.Min.Y <= r.Max.Y
}

// Union returns the smallest rectangle containing both r and o.
func (r Rect) Union(o Rect) Rect {
	return Rect{
		Min: r2.Vec{X: math.Min(r.Min.X, o.Min.X), Y: math.Min(r.Min.Y, o.Min.Y)},
		Max: r2.Vec{X: math.Max(r.Max.X, o.Max.X), Y: math.Max(r.Max.Y, o.Max.Y)},
	}
}

// Contains reports whether p lies inside r, edges included.
func (r Rect) Contains(p gg.Point) bool {
	return p.X >= r.Min.X && p.X <= r.Max.X && p.Y >= r.Min.Y && p.Y <= r.Max.Y
}

// Transform returns the bounding box of r mapped through m.
func (r Rect) Transform(m gg.Matrix) Rect {
	return boundsOf(
		m.TransformPoint(gg.Pt(r.Min.X, r.Min.Y)),
		m.TransformPoint(gg.Pt(r.Max.X, r.Min.Y)),
		m.TransformPoint(gg.Pt(r.Max.X, r.Max.Y)),
		m.TransformPoint(gg.Pt(r.Min.X, r.Max.Y)),
	)
}

// ApproxEqual reports whether both corners match within tol.
func (r Rect) ApproxEqual(o Rect, tol float64) bool {
	return scalar.EqualWithinAbs(r.Min.X, o.Min.X, tol) &&
		scalar.EqualWithinAbs(r.Min.Y, o.Min.Y, tol) &&
		scalar.EqualWithinAbs(r.Max.X, o.Max.X, tol) &&
		scalar.EqualWithinAbs(r.Max.Y, o.Max.Y, tol)
}

func (r Rect) String() string {
	return fmt.Sprintf("[%g,%g - %g,%g]", r.Min.X, r.Min.Y, r.Max.X, r.Max.Y)
}

// boundsOf returns the bounding box of pts. It panics on an empty slice.
func boundsOf(pts ...gg.Point) Rect {
	b := Rect{Min: r2.Vec{X: pts[0].X, Y: pts[0].Y}, Max: r2.Vec{X: pts[0].X, Y: pts[0].Y}}
	for _, p := range pts[1:] {
		b.Min.X = math.Min(b.Min.X, p.X)
		b.Min.Y = math.Min(b.Min.Y, p.Y)
		b.Max.X = math.Max(b.Max.X, p.X)
		b.Max.Y = math.Max(b.Max.Y, p.Y)
	}
	return b
}

// PathBounds returns the bounding box of the path's points, control
// points included, after mapping through m. ok is false for an empty path.
func PathBounds(p *gg.Path, m gg.Matrix) (Rect, bool) {
	var pts []gg.Point
	for _, el := range p.Elements() {
		switch e := el.(type) {
		case gg.MoveTo:
			pts = append(pts, m.TransformPoint(e.Point))
		case gg.LineTo:
			pts = append(pts, m.TransformPoint(e.Point))
		case gg.QuadTo:
			pts = append(pts, m.TransformPoint(e.Control), m.TransformPoint(e.Point))
		case gg.CubicTo:
			pts = append(pts, m.TransformPoint(e.Control1), m.TransformPoint(e.Control2), m.TransformPoint(e.Point))
		}
	}
	if len(pts) == 0 {
		return Rect{}, false
	}
	return boundsOf(pts...), true
}

// Range is a data interval along one axis. Min may exceed Max, which
// inverts the axis.
type Range struct {
	Min, Max float64
}

// Extent returns Max - Min.
func (r Range) Extent() float64 { return r.Max - r.Min }

// Center returns the midpoint of the range.
func (r Range) Center() float64 { return (r.Min + r.Max) / 2 }

// Degenerate reports whether the range has no usable extent: zero (within
// relative rounding), NaN or infinite.
func (r Range) Degenerate() bool {
	e := r.Extent()
	if e == 0 || math.IsNaN(e) || math.IsInf(e, 0) {
		return true
	}
	return scalar.EqualWithinRel(r.Min, r.Max, 1e-12)
}

// Bounds is an inset placement: origin (X, Y) and size (W, H). For
// fractional bounds the origin is the lower-left corner relative to the
// parent's display rectangle, as a fraction of its size.
type Bounds struct {
	X, Y, W, H float64
}

func (b Bounds) valid() bool {
	for _, v := range [...]float64{b.X, b.Y, b.W, b.H} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return b.W > 0 && b.H > 0
}
