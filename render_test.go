package ggview_test

import (
	"errors"
	"image"
	"image/color"
	"slices"
	"testing"

	"github.com/gogpu/gg"
	"github.com/gogpu/gg/text"
	"github.com/gogpu/ggview"
	"github.com/gogpu/ggview/recording"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/image/font/gofont/goregular"
)

var (
	red   = color.RGBA{R: 255, A: 255}
	blue  = color.RGBA{B: 255, A: 255}
	green = color.RGBA{G: 255, A: 255}
)

// filled returns the path commands filled with col, in draw order.
func filled(rec *recording.Recorder, col color.Color) []recording.DrawPathCommand {
	var out []recording.DrawPathCommand
	for _, c := range rec.Commands() {
		if p, ok := c.(recording.DrawPathCommand); ok && p.Style.Fill == col {
			out = append(out, p)
		}
	}
	return out
}

func stroked(rec *recording.Recorder, col color.Color) []recording.DrawPathCommand {
	var out []recording.DrawPathCommand
	for _, c := range rec.Commands() {
		if p, ok := c.(recording.DrawPathCommand); ok && p.Style.Stroke == col {
			out = append(out, p)
		}
	}
	return out
}

func points(p *gg.Path) []gg.Point {
	var pts []gg.Point
	for _, el := range p.Elements() {
		switch e := el.(type) {
		case gg.MoveTo:
			pts = append(pts, e.Point)
		case gg.LineTo:
			pts = append(pts, e.Point)
		case gg.QuadTo:
			pts = append(pts, e.Control, e.Point)
		case gg.CubicTo:
			pts = append(pts, e.Control1, e.Control2, e.Point)
		}
	}
	return pts
}

func render(fig *ggview.Figure) (*recording.Recorder, ggview.RenderStats) {
	w, h := fig.Size()
	rec := recording.NewRecorder(w, h)
	return rec, fig.Render(rec)
}

type failingArtist struct{}

func (failingArtist) Draw(ggview.Renderer, gg.Matrix) error { return errors.New("boom") }

func TestViewMatchesBaseUnderComposedTransform(t *testing.T) {
	fig := ggview.NewFigure(400, 200)
	base := fig.AddSurface(ggview.R(0, 0, 200, 200), ggview.WithXLim(0, 10), ggview.WithYLim(0, 10))
	base.Add(
		ggview.NewRectangle(red, 1, 1, 3, 2),
		ggview.NewPolygon(blue, gg.Pt(5, 5), gg.Pt(7, 5), gg.Pt(6, 8)),
	)
	view := fig.AddSurface(ggview.R(200, 0, 400, 200), ggview.WithXLim(0, 8), ggview.WithYLim(0, 8))
	_, err := ggview.View(view, base)
	require.NoError(t, err)

	m, err := ggview.ComposeTransform(base, view, false)
	require.NoError(t, err)

	rec, stats := render(fig)
	assert.Equal(t, 1, stats.Redirects)
	assert.Equal(t, 2, stats.Primitives)

	for _, col := range []color.Color{red, blue} {
		cmds := filled(rec, col)
		require.Len(t, cmds, 2, "drawn by base and by view")
		direct, redirected := points(cmds[0].Path), points(cmds[1].Path)
		require.Len(t, redirected, len(direct))
		for i, p := range direct {
			want := m.TransformPoint(p)
			assert.InDelta(t, want.X, redirected[i].X, 1e-9)
			assert.InDelta(t, want.Y, redirected[i].Y, 1e-9)
		}
		require.NotNil(t, cmds[1].Style.Clip)
		assert.True(t, cmds[1].Style.Clip.ApproxEqual(view.Rect(), 1e-9), "clipped to the view")
	}
}

func TestViewOfViewShowsBaseContent(t *testing.T) {
	fig := ggview.NewFigure(600, 200)
	a := fig.AddSurface(ggview.R(0, 0, 200, 200))
	a.Add(ggview.NewRectangle(red, 0.2, 0.2, 0.2, 0.2))
	b := fig.AddSurface(ggview.R(200, 0, 400, 200))
	c := fig.AddSurface(ggview.R(400, 0, 600, 200))
	_, err := ggview.View(b, a)
	require.NoError(t, err)
	_, err = ggview.View(c, b)
	require.NoError(t, err)

	rec, stats := render(fig)
	assert.Len(t, filled(rec, red), 3)
	assert.Equal(t, 2, stats.MaxDepth)
}

// fractal builds a parent with a blue marker and an inset viewing it.
func fractal(t *testing.T, opts ...ggview.InsetOption) (*ggview.Figure, *ggview.Surface, *ggview.Surface) {
	t.Helper()
	fig := ggview.NewFigure(200, 200)
	parent := fig.AddSurface(ggview.R(0, 0, 200, 200), ggview.WithXLim(0, 10), ggview.WithYLim(0, 10))
	parent.Add(ggview.NewRectangle(blue, 1, 1, 1, 1))
	inset, err := ggview.InsetZoom(parent, ggview.Bounds{X: 0.5, Y: 0.5, W: 0.4, H: 0.4}, opts...)
	require.NoError(t, err)
	return fig, parent, inset
}

func TestRenderDepthBoundsRecursion(t *testing.T) {
	for _, d := range []int{0, 1, 2, 3, 5} {
		fig, _, _ := fractal(t, ggview.InsetRenderDepth(d))
		rec, stats := render(fig)

		assert.Len(t, filled(rec, blue), 1+d, "depth %d", d)
		assert.Equal(t, d, stats.MaxDepth, "depth %d", d)
		assert.Equal(t, d, stats.Redirects, "depth %d", d)
		assert.Equal(t, 1, stats.Truncated, "depth %d", d)
		if d == 0 {
			assert.Equal(t, 0, stats.Primitives)
		}
	}
}

func TestRenderDepthZeroKeepsDecorations(t *testing.T) {
	fig, _, inset := fractal(t, ggview.InsetRenderDepth(0))
	rec, _ := render(fig)

	var frames int
	for _, c := range stroked(rec, color.Black) {
		if c.Bounds().Min.X >= inset.Rect().Min.X-1 && c.Bounds().Max.X <= inset.Rect().Max.X+1 {
			frames++
		}
	}
	assert.Equal(t, 1, frames, "inset frame drawn once")
}

func TestUnlimitedDepthStopsAtCycle(t *testing.T) {
	fig, _, _ := fractal(t, ggview.InsetRenderDepth(ggview.RenderDepthUnlimited))
	rec, stats := render(fig)

	assert.Len(t, filled(rec, blue), 2)
	assert.Equal(t, 1, stats.MaxDepth)
	assert.Equal(t, 1, stats.Cycles)
	assert.Equal(t, 0, stats.Truncated)
}

func TestMutualViewsTerminate(t *testing.T) {
	fig := ggview.NewFigure(400, 200, ggview.WithDefaultRenderDepth(3))
	a := fig.AddSurface(ggview.R(0, 0, 200, 200))
	b := fig.AddSurface(ggview.R(200, 0, 400, 200))
	a.Add(ggview.NewRectangle(red, 0.1, 0.1, 0.8, 0.8))
	_, err := ggview.View(a, b)
	require.NoError(t, err)
	_, err = ggview.View(b, a)
	require.NoError(t, err)

	_, stats := render(fig)
	assert.Equal(t, 3, stats.MaxDepth)
	assert.Positive(t, stats.Cycles)
}

func TestRenderResetsGuardBetweenFrames(t *testing.T) {
	fig, _, _ := fractal(t, ggview.InsetRenderDepth(2))
	_, first := render(fig)
	_, second := render(fig)
	assert.Equal(t, first, second)
}

func TestViewIsIdempotent(t *testing.T) {
	fig := ggview.NewFigure(400, 200)
	base := fig.AddSurface(ggview.R(0, 0, 200, 200))
	view := fig.AddSurface(ggview.R(200, 0, 400, 200))

	got, err := ggview.View(view, base, ggview.WithRenderDepth(2))
	require.NoError(t, err)
	assert.Same(t, view, got)
	_, err = ggview.View(view, base, ggview.WithRenderDepth(2))
	require.NoError(t, err)

	reg := fig.Registry()
	assert.Equal(t, 1, reg.Len())
	assert.Same(t, base, view.Link().Base())
	assert.Equal(t, 2, view.Link().RenderDepth())
	assert.Equal(t, []*ggview.Surface{view}, reg.ViewsOf(base))
}

func TestViewCrossFigure(t *testing.T) {
	a := ggview.NewFigure(10, 10).AddSurface(ggview.R(0, 0, 10, 10))
	b := ggview.NewFigure(10, 10).AddSurface(ggview.R(0, 0, 10, 10))
	_, err := ggview.View(a, b)
	assert.ErrorIs(t, err, ggview.ErrInvalidLink)
	assert.Nil(t, a.Link())
}

func TestViewFollowsBaseChanges(t *testing.T) {
	fig := ggview.NewFigure(400, 200)
	base := fig.AddSurface(ggview.R(0, 0, 200, 200), ggview.WithXLim(0, 10), ggview.WithYLim(0, 10))
	base.Add(ggview.NewRectangle(red, 4, 4, 2, 2))
	view := fig.AddSurface(ggview.R(200, 0, 400, 200), ggview.WithXLim(0, 10), ggview.WithYLim(0, 10))
	_, err := ggview.View(view, base)
	require.NoError(t, err)

	rec, _ := render(fig)
	require.Len(t, filled(rec, red), 2)
	assert.Empty(t, filled(rec, green))

	base.Add(ggview.NewRectangle(green, 1, 1, 1, 1))
	rec, _ = render(fig)
	assert.Len(t, filled(rec, green), 2, "new artist appears in the view")

	// Base limits do not move the view's own frame of reference.
	before := filled(rec, red)[1].Bounds()
	base.SetXLim(0, 20)
	rec, _ = render(fig)
	after := filled(rec, red)[1].Bounds()
	assert.True(t, before.ApproxEqual(after, 1e-9), "view shows data at the view's limits")

	view.SetXLim(3, 7)
	rec, _ = render(fig)
	zoomed := filled(rec, red)[1].Bounds()
	assert.InDelta(t, 2.5*before.Width(), zoomed.Width(), 1e-6)
}

func TestRedirectRestoresBaseState(t *testing.T) {
	fig := ggview.NewFigure(400, 200)
	base := fig.AddSurface(ggview.R(0, 0, 200, 200), ggview.WithXLim(0, 10), ggview.WithYLim(0, 10))
	clip := ggview.R(0, 0, 100, 100)
	first := ggview.NewRectangle(red, 1, 1, 8, 8)
	first.SetClipBox(&clip)
	last := ggview.NewRectangle(green, 2, 2, 1, 1)
	base.Add(first, failingArtist{}, last)
	view := fig.AddSurface(ggview.R(200, 0, 400, 200), ggview.WithXLim(0, 10), ggview.WithYLim(0, 10))
	_, err := ggview.View(view, base)
	require.NoError(t, err)

	artists := base.Artists()
	m, err := base.DataTransform()
	require.NoError(t, err)
	xlim, ylim := base.XLim(), base.YLim()

	rec, stats := render(fig)

	assert.Equal(t, 2, stats.Failures, "failure in base and in view")
	assert.Len(t, filled(rec, green), 2, "artists after a failure still draw")
	assert.Equal(t, artists, base.Artists())
	assert.Equal(t, xlim, base.XLim())
	assert.Equal(t, ylim, base.YLim())
	m2, err := base.DataTransform()
	require.NoError(t, err)
	assert.Equal(t, m, m2)
	assert.Same(t, &clip, first.ClipBox(), "clip box restored")

	// The clip box applied to the base draw but not to the redirected one.
	reds := filled(rec, red)
	require.Len(t, reds, 2)
	assert.True(t, reds[0].Style.Clip.ApproxEqual(clip, 1e-9))
	assert.True(t, reds[1].Style.Clip.ApproxEqual(view.Rect(), 1e-9))
}

func TestDegenerateBaseSkipsFrame(t *testing.T) {
	fig := ggview.NewFigure(400, 200)
	base := fig.AddSurface(ggview.R(0, 0, 200, 200), ggview.WithXLim(1, 1))
	base.Add(ggview.NewRectangle(red, 0, 0, 1, 1))
	view := fig.AddSurface(ggview.R(200, 0, 400, 200))
	_, err := ggview.View(view, base)
	require.NoError(t, err)

	rec, stats := render(fig)
	assert.Equal(t, 1, stats.Degenerate)
	assert.Equal(t, 0, stats.Primitives)
	assert.Empty(t, filled(rec, red))

	base.SetXLim(0, 1)
	rec, stats = render(fig)
	assert.Equal(t, 0, stats.Degenerate)
	assert.Len(t, filled(rec, red), 2)
}

func TestLineScaling(t *testing.T) {
	build := func(opts ...ggview.ViewOption) *ggview.Figure {
		fig := ggview.NewFigure(400, 200)
		base := fig.AddSurface(ggview.R(0, 0, 200, 200), ggview.WithXLim(0, 10), ggview.WithYLim(0, 10))
		line := ggview.NewLine(red, 2, gg.Pt(4, 4), gg.Pt(6, 6))
		line.Style.Dash = []float64{3, 1}
		base.Add(line)
		view := fig.AddSurface(ggview.R(200, 0, 400, 200), ggview.WithXLim(2.5, 7.5), ggview.WithYLim(2.5, 7.5))
		_, err := ggview.View(view, base, opts...)
		require.NoError(t, err)
		return fig
	}

	rec, _ := render(build())
	lines := stroked(rec, red)
	require.Len(t, lines, 2)
	assert.InDelta(t, 2, lines[0].Style.LineWidth, 1e-9)
	assert.InDelta(t, 4, lines[1].Style.LineWidth, 1e-9)
	assert.InDeltaSlice(t, []float64{6, 2}, lines[1].Style.Dash, 1e-9)
	assert.InDeltaSlice(t, []float64{3, 1}, lines[0].Style.Dash, 1e-9, "base style untouched")

	rec, _ = render(build(ggview.WithLineScaling(false)))
	lines = stroked(rec, red)
	require.Len(t, lines, 2)
	assert.InDelta(t, 2, lines[1].Style.LineWidth, 1e-9)
}

func TestViewFilter(t *testing.T) {
	fig := ggview.NewFigure(400, 200)
	base := fig.AddSurface(ggview.R(0, 0, 200, 200))
	keep := ggview.NewRectangle(red, 0.1, 0.1, 0.2, 0.2)
	drop := ggview.NewRectangle(blue, 0.5, 0.5, 0.2, 0.2)
	drop.Label = "annotation"
	base.Add(keep, drop)
	view := fig.AddSurface(ggview.R(200, 0, 400, 200))
	_, err := ggview.View(view, base, ggview.WithFilter(func(a ggview.Artist) bool {
		return ggview.ArtistLabel(a) != "annotation"
	}))
	require.NoError(t, err)

	rec, _ := render(fig)
	assert.Len(t, filled(rec, red), 2)
	assert.Len(t, filled(rec, blue), 1)
}

func TestRedirectCullsOutsidePrimitives(t *testing.T) {
	fig := ggview.NewFigure(400, 200)
	base := fig.AddSurface(ggview.R(0, 0, 200, 200), ggview.WithXLim(0, 10), ggview.WithYLim(0, 10))
	base.Add(
		ggview.NewRectangle(red, 1, 1, 1, 1),
		ggview.NewRectangle(blue, 8, 8, 1, 1),
	)
	view := fig.AddSurface(ggview.R(200, 0, 400, 200), ggview.WithXLim(0, 5), ggview.WithYLim(0, 5))
	_, err := ggview.View(view, base)
	require.NoError(t, err)

	rec, stats := render(fig)
	assert.Len(t, filled(rec, red), 2)
	assert.Len(t, filled(rec, blue), 1)
	assert.Equal(t, 1, stats.Culled)
}

func TestRedirectedImage(t *testing.T) {
	fig := ggview.NewFigure(400, 200)
	base := fig.AddSurface(ggview.R(0, 0, 200, 200), ggview.WithXLim(0, 10), ggview.WithYLim(0, 10))
	img := image.NewRGBA(image.Rect(0, 0, 4, 4))
	base.Add(ggview.NewImageArtist(img, ggview.Range{Min: 0, Max: 10}, ggview.Range{Min: 0, Max: 10}))
	view := fig.AddSurface(ggview.R(200, 0, 400, 200), ggview.WithXLim(0, 5), ggview.WithYLim(0, 5))
	_, err := ggview.View(view, base, ggview.WithInterpolation(ggview.Bicubic))
	require.NoError(t, err)

	rec, _ := render(fig)
	var images []recording.DrawImageCommand
	for _, c := range rec.Commands() {
		if c, ok := c.(recording.DrawImageCommand); ok {
			images = append(images, c)
		}
	}
	require.Len(t, images, 2)
	assert.True(t, images[0].Dst.ApproxEqual(ggview.R(0, 0, 200, 200), 1e-9))
	assert.Equal(t, ggview.Nearest, images[0].Style.Interpolation)

	assert.True(t, images[1].Dst.ApproxEqual(ggview.R(200, -200, 600, 200), 1e-9), "got %v", images[1].Dst)
	assert.True(t, images[1].Style.Clip.ApproxEqual(view.Rect(), 1e-9))
	assert.Equal(t, ggview.Bicubic, images[1].Style.Interpolation)
}

func TestRedirectedText(t *testing.T) {
	src, err := text.NewFontSource(goregular.TTF)
	require.NoError(t, err)
	face := src.Face(20)

	fig := ggview.NewFigure(400, 200)
	base := fig.AddSurface(ggview.R(0, 0, 200, 200), ggview.WithXLim(0, 10), ggview.WithYLim(0, 10))
	base.Add(
		ggview.NewText("in", gg.Pt(2, 2), face, color.Black),
		ggview.NewText("out", gg.Pt(9, 9), face, color.Black),
	)
	view := fig.AddSurface(ggview.R(200, 0, 400, 200), ggview.WithXLim(0, 5), ggview.WithYLim(0, 5))
	_, err = ggview.View(view, base)
	require.NoError(t, err)

	rec, stats := render(fig)
	var got []string
	for _, c := range rec.Commands() {
		if c, ok := c.(recording.DrawTextCommand); ok {
			got = append(got, c.Text)
		}
	}
	assert.Equal(t, []string{"in", "out"}, got, "the base draws its own text")

	glyphs := filled(rec, color.Black)
	require.Len(t, glyphs, 1, "only the text inside the view is redirected")
	b := glyphs[0].Bounds()
	assert.True(t, view.Rect().Union(b).ApproxEqual(view.Rect(), 1e-9), "got %v", b)
	assert.InDelta(t, 280, b.Center().X, 6)
	w, _ := text.Measure("in", face)
	assert.Greater(t, b.Width(), w, "glyphs are magnified with the view")
	assert.True(t, glyphs[0].Style.Clip.ApproxEqual(view.Rect(), 1e-9))
	assert.Equal(t, 1, stats.Culled)
}

func TestAdjustBoxViewClipsToActiveRect(t *testing.T) {
	fig := ggview.NewFigure(600, 200)
	base := fig.AddSurface(ggview.R(0, 0, 200, 200), ggview.WithXLim(0, 2))
	base.Add(
		ggview.NewRectangle(red, 1.2, 0.2, 0.3, 0.3),
		ggview.NewRectangle(blue, 0.2, 0.2, 0.3, 0.3),
	)
	view := fig.AddSurface(ggview.R(200, 0, 600, 200),
		ggview.WithAspect(ggview.AspectEqual, ggview.AdjustBox))
	view.Add(ggview.NewRectangle(green, -0.4, 0.2, 0.2, 0.2))
	_, err := ggview.View(view, base)
	require.NoError(t, err)
	active := view.ActiveRect()
	require.True(t, active.ApproxEqual(ggview.R(300, 0, 500, 200), 1e-9), "got %v", active)

	rec, stats := render(fig)
	assert.Len(t, filled(rec, red), 1, "outside the view's limits")
	assert.Equal(t, 1, stats.Culled)
	blues := filled(rec, blue)
	require.Len(t, blues, 2)
	assert.True(t, blues[1].Style.Clip.ApproxEqual(active, 1e-9), "got %v", blues[1].Style.Clip)
	assert.Empty(t, filled(rec, green), "own artists outside the limits are clipped too")
}

func TestInsetClippedToParent(t *testing.T) {
	fig := ggview.NewFigure(300, 300)
	parent := fig.AddSurface(ggview.R(0, 0, 200, 200), ggview.WithXLim(0, 10), ggview.WithYLim(0, 10))
	parent.Add(ggview.NewRectangle(blue, 0, 0, 10, 10))
	inset, err := ggview.InsetZoom(parent, ggview.Bounds{X: 8, Y: 8, W: 4, H: 4},
		ggview.InsetDataCoords(), ggview.InsetRenderDepth(1))
	require.NoError(t, err)
	require.True(t, inset.Rect().ApproxEqual(ggview.R(160, -40, 240, 40), 1e-9), "got %v", inset.Rect())

	rec, _ := render(fig)
	blues := filled(rec, blue)
	require.Len(t, blues, 2)
	assert.True(t, blues[1].Style.Clip.ApproxEqual(ggview.R(160, 0, 200, 40), 1e-9), "got %v", blues[1].Style.Clip)
	for _, c := range rec.Commands() {
		if c, ok := c.(recording.DrawPathCommand); ok && c.Style.Clip != nil {
			assert.True(t, parent.Rect().Union(*c.Style.Clip).ApproxEqual(parent.Rect(), 1e-9),
				"clip %v leaves the parent", c.Style.Clip)
		}
	}
}

func TestInsetZoomPlacement(t *testing.T) {
	fig := ggview.NewFigure(400, 300)
	parent := fig.AddSurface(ggview.R(100, 50, 300, 250), ggview.WithXLim(-1, 1), ggview.WithYLim(0, 4))
	inset, err := ggview.InsetZoom(parent, ggview.Bounds{X: 0.5, Y: 0.5, W: 0.3, H: 0.3})
	require.NoError(t, err)

	assert.True(t, inset.Rect().ApproxEqual(ggview.R(200, 90, 260, 150), 1e-9), "got %v", inset.Rect())
	assert.Same(t, parent, fig.Registry().Lookup(inset).Base())
	assert.Same(t, parent, inset.Parent())
	assert.True(t, slices.Contains(parent.Children(), inset))
	assert.Equal(t, parent.XLim(), inset.XLim())
	assert.Equal(t, parent.YLim(), inset.YLim())
	assert.Equal(t, 5.0, inset.ZOrder())
	assert.Equal(t, fig.DefaultRenderDepth(), inset.Link().RenderDepth())
}

func TestInsetZoomDataCoords(t *testing.T) {
	fig := ggview.NewFigure(400, 300)
	parent := fig.AddSurface(ggview.R(0, 0, 200, 200), ggview.WithXLim(0, 10), ggview.WithYLim(0, 10))
	inset, err := ggview.InsetZoom(parent, ggview.Bounds{X: 5, Y: 5, W: 2, H: 3},
		ggview.InsetDataCoords(),
		ggview.InsetSurfaceOptions(ggview.WithXLim(1, 2), ggview.WithZOrder(9)))
	require.NoError(t, err)

	assert.True(t, inset.Rect().ApproxEqual(ggview.R(100, 40, 140, 100), 1e-9), "got %v", inset.Rect())
	assert.Equal(t, ggview.Range{Min: 1, Max: 2}, inset.XLim(), "forwarded options override defaults")
	assert.Equal(t, 9.0, inset.ZOrder())
}

func TestInsetZoomInvalidBounds(t *testing.T) {
	fig := ggview.NewFigure(400, 300)
	parent := fig.AddSurface(ggview.R(0, 0, 200, 200))

	_, err := ggview.InsetZoom(parent, ggview.Bounds{X: 0.1, Y: 0.1, W: 0, H: 0.2})
	assert.ErrorIs(t, err, ggview.ErrInvalidBounds)
	_, err = ggview.InsetZoom(parent, ggview.Bounds{X: 0.1, Y: 0.1, W: 0.2, H: -1})
	assert.ErrorIs(t, err, ggview.ErrInvalidBounds)

	assert.Empty(t, parent.Children())
	assert.Equal(t, 0, fig.Registry().Len())
}

func TestInsetZoomInvalidDepth(t *testing.T) {
	fig := ggview.NewFigure(400, 300)
	parent := fig.AddSurface(ggview.R(0, 0, 200, 200))

	_, err := ggview.InsetZoom(parent, ggview.Bounds{W: 0.5, H: 0.5}, ggview.InsetRenderDepth(-3))
	assert.ErrorIs(t, err, ggview.ErrInvalidLink)
	assert.Empty(t, parent.Children(), "inset removed again")
}

func TestDestroyingBaseUnlinksViews(t *testing.T) {
	fig := ggview.NewFigure(400, 200)
	base := fig.AddSurface(ggview.R(0, 0, 200, 200))
	view := fig.AddSurface(ggview.R(200, 0, 400, 200))
	_, err := ggview.View(view, base)
	require.NoError(t, err)

	base.Destroy()
	assert.True(t, base.Destroyed())
	assert.Nil(t, view.Link())
	assert.Equal(t, 0, fig.Registry().Len())
	assert.Equal(t, []*ggview.Surface{view}, fig.Surfaces())

	_, stats := render(fig)
	assert.Equal(t, 0, stats.Redirects)
}

func TestDestroyingParentRemovesInset(t *testing.T) {
	fig, parent, inset := fractal(t)
	parent.Destroy()
	assert.True(t, inset.Destroyed())
	assert.Equal(t, 0, fig.Registry().Len())
	assert.Empty(t, fig.Surfaces())

	_, err := parent.AddSurface(ggview.R(0, 0, 1, 1))
	assert.ErrorIs(t, err, ggview.ErrSurfaceDestroyed)
	_, err = ggview.View(fig.AddSurface(ggview.R(0, 0, 1, 1)), parent)
	assert.ErrorIs(t, err, ggview.ErrInvalidLink)
}
