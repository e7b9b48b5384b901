package ggview

import (
	"image"

	"github.com/gogpu/gg"
	xdraw "golang.org/x/image/draw"
	"golang.org/x/image/math/f64"
)

// transformRenderer forwards draw calls to target after mapping them
// through m and clipping them to clip, which is in target coordinates.
//
// Surfaces use it with the identity to clip their own artists, and the
// redirector uses it with a composed base-to-view transform.
type transformRenderer struct {
	target Renderer
	m      gg.Matrix
	clip   Rect

	// Set for redirections only.
	redirect  bool
	lineScale float64
	interp    Interpolation

	// count is set on the outermost redirecting renderer of a chain, so
	// each redirected primitive is counted once.
	count bool
	stats *RenderStats
}

var _ Renderer = (*transformRenderer)(nil)

// clipRenderer restricts drawing to clip without transforming.
func clipRenderer(target Renderer, clip Rect, stats *RenderStats) *transformRenderer {
	return &transformRenderer{target: target, m: gg.Identity(), clip: clip, lineScale: 1, stats: stats}
}

// redirectRenderer maps base display coordinates into the view through
// m, clipping to the view rectangle clip.
func redirectRenderer(target Renderer, m gg.Matrix, clip Rect, l *ViewLink, stats *RenderStats) *transformRenderer {
	t := &transformRenderer{
		target:    target,
		m:         m,
		clip:      clip.Intersect(target.Bounds()),
		redirect:  true,
		lineScale: 1,
		interp:    l.Interpolation(),
		stats:     stats,
	}
	if l.ScalesLines() {
		t.lineScale = areaScale(m)
	}
	t.count = !redirectsBelow(target)
	return t
}

func redirectsBelow(r Renderer) bool {
	for {
		t, ok := r.(*transformRenderer)
		if !ok {
			return false
		}
		if t.redirect {
			return true
		}
		r = t.target
	}
}

// Bounds returns the clip rectangle in caller coordinates.
func (t *transformRenderer) Bounds() Rect {
	inv, ok := invert(t.m)
	if !ok {
		return Rect{}
	}
	return t.clip.Transform(inv)
}

// mapClip maps an incoming clip into target coordinates and intersects it
// with the renderer's own clip.
func (t *transformRenderer) mapClip(clip *Rect) (Rect, bool) {
	out := t.clip
	if clip != nil {
		out = out.Intersect(clip.Transform(t.m))
	}
	return out, !out.Empty()
}

func (t *transformRenderer) culled() {
	if t.redirect {
		t.stats.Culled++
	}
}

func (t *transformRenderer) forwarded() {
	if t.count {
		t.stats.Primitives++
	}
}

// DrawPath implements Renderer.
func (t *transformRenderer) DrawPath(path *gg.Path, m gg.Matrix, style Style) {
	clip, ok := t.mapClip(style.Clip)
	if !ok {
		t.culled()
		return
	}
	full := t.m.Multiply(m)
	b, ok := PathBounds(path, full)
	if !ok {
		return
	}

	st := style.Clone()
	if t.lineScale != 1 {
		st.LineWidth *= t.lineScale
		for i := range st.Dash {
			st.Dash[i] *= t.lineScale
		}
		st.DashOffset *= t.lineScale
	}
	if st.Stroke != nil && st.LineWidth > 0 {
		pad := st.LineWidth / 2
		b.Min.X, b.Min.Y = b.Min.X-pad, b.Min.Y-pad
		b.Max.X, b.Max.Y = b.Max.X+pad, b.Max.Y+pad
	}
	if !b.Overlaps(clip) {
		t.culled()
		return
	}
	st.Clip = &clip
	t.target.DrawPath(path, full, st)
	t.forwarded()
}

// DrawImage implements Renderer. Redirected images use the link's
// interpolation; a view that flips an axis relative to its base flips the
// image with it.
func (t *transformRenderer) DrawImage(img image.Image, dst Rect, style ImageStyle) {
	clip, ok := t.mapClip(style.Clip)
	if !ok {
		t.culled()
		return
	}
	d := dst.Transform(t.m)
	if !d.Overlaps(clip) {
		t.culled()
		return
	}
	st := style
	st.Clip = &clip
	if t.redirect {
		st.Interpolation = t.interp
		img = flipImage(img, t.m.A < 0, t.m.E < 0)
	}
	t.target.DrawImage(img, d, st)
	t.forwarded()
}

// DrawText implements Renderer. Redirected text is converted to its glyph
// outlines and drawn as a path, so it scales with the view and is clipped
// and culled by its glyph bounds. Plain clipping forwards the string.
func (t *transformRenderer) DrawText(s string, at gg.Point, style TextStyle) {
	if !t.redirect {
		clip, ok := t.mapClip(style.Clip)
		if !ok {
			return
		}
		st := style
		st.Clip = &clip
		t.target.DrawText(s, t.m.TransformPoint(at), st)
		t.forwarded()
		return
	}

	p, err := textPath(s, at, style)
	if err != nil {
		Logger().Debug("ggview: redirected text dropped", "err", err)
		t.culled()
		return
	}
	if p == nil {
		return
	}
	t.DrawPath(p, gg.Identity(), textFill(style))
}

// flipImage mirrors img horizontally and/or vertically.
func flipImage(img image.Image, fx, fy bool) image.Image {
	if !fx && !fy {
		return img
	}
	b := img.Bounds()
	out := image.NewRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	m := f64.Aff3{1, 0, -float64(b.Min.X), 0, 1, -float64(b.Min.Y)}
	if fx {
		m[0], m[2] = -1, float64(b.Max.X)
	}
	if fy {
		m[4], m[5] = -1, float64(b.Max.Y)
	}
	xdraw.NearestNeighbor.Transform(out, m, img, b, xdraw.Src, nil)
	return out
}
