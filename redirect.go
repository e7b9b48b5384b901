package ggview

import (
	"github.com/gogpu/gg"
)

var identity = gg.Identity()

func rectPath(r Rect) *gg.Path {
	p := gg.NewPath()
	p.Rectangle(r.Min.X, r.Min.Y, r.Width(), r.Height())
	return p
}

// drawSurface paints s: background, content, then frame. Background and
// frame are static decorations and are drawn even when redirection is
// denied.
func (f *Figure) drawSurface(r Renderer, s *Surface, st *RenderStats) {
	st.Surfaces++
	if s.background != nil && !s.rect.Empty() {
		r.DrawPath(rectPath(s.rect), identity, Style{Fill: s.background})
	}

	f.drawContent(r, s, nil, st)

	if s.frame.Stroke != nil && s.frame.LineWidth > 0 {
		r.DrawPath(rectPath(s.rect), identity, s.frame)
	}
}

// drawContent draws what s shows: the redirected content of its base if s
// is a view, its own artists, then its children in z-order.
//
// With a nil link the artists are clipped to the area the data limits
// map onto. When s is drawn as the base of link, the view's renderer clips
// instead and the link's filter selects the artists. Children are clipped
// to the rectangle of s.
func (f *Figure) drawContent(r Renderer, s *Surface, link *ViewLink, st *RenderStats) {
	if l := f.registry.Lookup(s); l != nil {
		f.redirect(r, s, l, st)
	}

	ar := r
	if link == nil {
		ar = clipRenderer(r, s.ActiveRect(), st)
	}
	f.drawArtists(ar, s, link, st)

	if len(s.children) == 0 {
		return
	}
	cr := clipRenderer(r, s.rect, st)
	for _, c := range sortedByZ(s.children) {
		f.drawSurface(cr, c, st)
	}
}

func (f *Figure) drawArtists(r Renderer, s *Surface, link *ViewLink, st *RenderStats) {
	if len(s.artists) == 0 {
		return
	}
	m, err := s.DataTransform()
	if err != nil {
		Logger().Debug("ggview: surface not drawn", "surface", s.name, "err", err)
		return
	}
	for _, a := range s.artists {
		if link != nil && !link.keep(a) {
			continue
		}
		if err := a.Draw(r, m); err != nil {
			st.Failures++
			Logger().Warn("ggview: artist draw failed",
				"surface", s.name, "artist", ArtistLabel(a), "err", err)
		}
	}
}

// redirect draws the content of the base of l into view. The guard bounds
// recursion; a denied, destroyed or degenerate redirection draws nothing.
// Artist clip boxes of the base are suspended while it is drawn and
// restored on return.
func (f *Figure) redirect(r Renderer, view *Surface, l *ViewLink, st *RenderStats) {
	release, ok := f.guard.Enter(view, l.RenderDepth())
	if !ok {
		Logger().Debug("ggview: redirect stopped",
			"view", view.name, "depth", f.guard.Depth(), "bound", l.RenderDepth())
		return
	}
	defer release()

	base := l.Base()
	if base == nil || base.destroyed {
		f.registry.Unlink(view)
		return
	}

	aspect, adj := viewAspect(base, view, l.InheritsAspect())
	m, err := composeTransform(base, view, aspect, adj)
	if err != nil {
		st.Degenerate++
		Logger().Debug("ggview: redirect skipped", "view", view.name, "base", base.name, "err", err)
		return
	}
	st.Redirects++

	defer suspendClips(base.artists)()
	clip := applyAspect(view.xlim, view.ylim, view.rect, aspect, adj).box
	f.drawContent(redirectRenderer(r, m, clip, l, st), base, l, st)
}

// suspendClips clears the clip boxes of the Clipper artists and returns a
// function restoring them.
func suspendClips(artists []Artist) (restore func()) {
	type saved struct {
		c    Clipper
		clip *Rect
	}
	var list []saved
	for _, a := range artists {
		if c, ok := a.(Clipper); ok {
			list = append(list, saved{c, c.ClipBox()})
			c.SetClipBox(nil)
		}
	}
	return func() {
		for i := len(list) - 1; i >= 0; i-- {
			list[i].c.SetClipBox(list[i].clip)
		}
	}
}
