package ggview

import (
	"math"

	"github.com/gogpu/gg"
)

// determinant returns the determinant of the linear part of m.
func determinant(m gg.Matrix) float64 {
	return m.A*m.E - m.B*m.D
}

// areaScale returns the factor by which m scales lengths on average:
// the square root of the area of the transformed unit square. Line widths
// and dash lengths are multiplied by it when line scaling is enabled.
func areaScale(m gg.Matrix) float64 {
	return math.Sqrt(math.Abs(determinant(m)))
}

// invert returns the inverse of m. ok is false when the linear part is
// singular or not finite. gg.Matrix.Invert returns the identity below a
// fixed determinant threshold, which is too coarse for data transforms of
// very large data ranges, so the inverse is computed here without one.
func invert(m gg.Matrix) (gg.Matrix, bool) {
	det := determinant(m)
	if det == 0 || math.IsNaN(det) || math.IsInf(det, 0) {
		return gg.Matrix{}, false
	}
	inv := 1 / det
	return gg.Matrix{
		A: m.E * inv, B: -m.B * inv, C: (m.B*m.F - m.C*m.E) * inv,
		D: -m.D * inv, E: m.A * inv, F: (m.C*m.D - m.A*m.F) * inv,
	}, true
}

// rangeMatrix returns the transform mapping the data box spanned by xr, yr
// onto the display rectangle r, with data y pointing up.
func rangeMatrix(xr, yr Range, r Rect) gg.Matrix {
	sx := r.Width() / xr.Extent()
	sy := -r.Height() / yr.Extent()
	return gg.Matrix{
		A: sx, B: 0, C: r.Min.X - xr.Min*sx,
		D: 0, E: sy, F: r.Max.Y - yr.Min*sy,
	}
}
