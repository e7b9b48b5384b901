package main

import (
	"image/color"
	"maps"
	"math"
	"slices"

	"github.com/gogpu/gg"

	"github.com/gogpu/ggview"
)

var demos = map[string]func(depth int) (*ggview.Figure, error){
	"inset":   insetDemo,
	"fractal": fractalDemo,
	"mirror":  mirrorDemo,
}

func demoNames() []string { return slices.Sorted(maps.Keys(demos)) }

var palette = []color.Color{
	color.NRGBA{R: 0x1f, G: 0x77, B: 0xb4, A: 0xff},
	color.NRGBA{R: 0xff, G: 0x7f, B: 0x0e, A: 0xff},
	color.NRGBA{R: 0x2c, G: 0xa0, B: 0x2c, A: 0xff},
	color.NRGBA{R: 0xd6, G: 0x27, B: 0x28, A: 0xff},
}

// wave returns n samples of a damped sine over [0, 10].
func wave(n int, phase float64) []gg.Point {
	pts := make([]gg.Point, n)
	for i := range pts {
		x := 10 * float64(i) / float64(n-1)
		pts[i] = gg.Pt(x, 5+3*math.Exp(-x/6)*math.Sin(2*x+phase))
	}
	return pts
}

// insetDemo plots a few curves and magnifies a region of them.
func insetDemo(depth int) (*ggview.Figure, error) {
	fig := ggview.NewFigure(800, 600)
	ax := fig.AddSurface(ggview.RectXYWH(40, 40, 720, 520),
		ggview.WithName("plot"), ggview.WithXLim(0, 10), ggview.WithYLim(0, 10))
	for i, col := range palette {
		ax.Add(ggview.NewLine(col, 2, wave(200, float64(i))...))
	}
	ax.Add(ggview.NewRectangle(color.NRGBA{A: 0x20}, 2, 4, 1.5, 2))

	inset, err := ggview.InsetZoom(ax, ggview.Bounds{X: 0.55, Y: 0.55, W: 0.4, H: 0.4},
		ggview.InsetRenderDepth(depth),
		ggview.InsetSurfaceOptions(ggview.WithName("zoom")))
	if err != nil {
		return nil, err
	}
	inset.SetLimits(ggview.Range{Min: 2, Max: 3.5}, ggview.Range{Min: 4, Max: 6})
	return fig, nil
}

// fractalDemo places two insets that each show the whole surface,
// themselves included, so the picture repeats down to the render depth.
func fractalDemo(depth int) (*ggview.Figure, error) {
	fig := ggview.NewFigure(600, 600)
	ax := fig.AddSurface(ggview.RectXYWH(0, 0, 600, 600),
		ggview.WithName("root"), ggview.WithAspect(ggview.AspectEqual, ggview.AdjustDataLimits))
	ax.Add(
		ggview.NewPolygon(palette[0], gg.Pt(0.05, 0.05), gg.Pt(0.45, 0.05), gg.Pt(0.25, 0.4)),
		ggview.NewCircle(palette[1], 0.75, 0.25, 0.15),
	)
	for _, b := range []ggview.Bounds{
		{X: 0.05, Y: 0.5, W: 0.4, H: 0.4},
		{X: 0.55, Y: 0.5, W: 0.4, H: 0.4},
	} {
		if _, err := ggview.InsetZoom(ax, b, ggview.InsetRenderDepth(depth)); err != nil {
			return nil, err
		}
	}
	return fig, nil
}

// mirrorDemo shows one surface next to a view of it with the x axis
// reversed.
func mirrorDemo(depth int) (*ggview.Figure, error) {
	fig := ggview.NewFigure(800, 400)
	base := fig.AddSurface(ggview.RectXYWH(0, 0, 400, 400),
		ggview.WithName("base"), ggview.WithXLim(0, 10), ggview.WithYLim(0, 10))
	for i, col := range palette[:2] {
		base.Add(ggview.NewLine(col, 3, wave(100, float64(i)*math.Pi/2)...))
	}
	base.Add(ggview.NewRectangle(palette[2], 1, 1, 2, 2))

	mirror := fig.AddSurface(ggview.RectXYWH(400, 0, 400, 400),
		ggview.WithName("mirror"), ggview.WithXLim(10, 0), ggview.WithYLim(0, 10))
	if _, err := ggview.View(mirror, base, ggview.WithRenderDepth(depth)); err != nil {
		return nil, err
	}
	return fig, nil
}
