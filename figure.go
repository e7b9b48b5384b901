package ggview

import (
	"fmt"
	"image"
	"image/color"
	"io"
	"slices"
)

// Figure is the top-level render tree: it owns surfaces, their view links
// and the recursion guard used while drawing them.
//
// Figures are not safe for concurrent use. Separate figures share no
// state and may render on different goroutines.
type Figure struct {
	width, height int
	background    color.Color

	surfaces []*Surface
	seq      uint64

	registry *Registry
	guard    Guard

	defaultDepth int
	continuous   bool
	onRepaint    func()

	dirty          map[*Surface]struct{}
	repaintPending bool
}

// NewFigure creates an empty width x height figure.
func NewFigure(width, height int, opts ...FigureOption) *Figure {
	o := defaultFigureOptions()
	for _, opt := range opts {
		opt(&o)
	}
	f := &Figure{
		width:        width,
		height:       height,
		background:   o.background,
		defaultDepth: o.depth,
		continuous:   o.continuous,
		onRepaint:    o.onRepaint,
		dirty:        make(map[*Surface]struct{}),
	}
	f.registry = newRegistry(f)
	return f
}

// Size returns the figure size in pixels.
func (f *Figure) Size() (width, height int) { return f.width, f.height }

// Bounds returns the figure rectangle.
func (f *Figure) Bounds() Rect { return RectXYWH(0, 0, float64(f.width), float64(f.height)) }

// Registry returns the figure's view registry.
func (f *Figure) Registry() *Registry { return f.registry }

// DefaultRenderDepth returns the depth used by links created without an
// explicit one.
func (f *Figure) DefaultRenderDepth() int { return f.defaultDepth }

// AddSurface creates a top-level surface at display rectangle r.
func (f *Figure) AddSurface(r Rect, opts ...SurfaceOption) *Surface {
	s := newSurface(f, nil, r, opts)
	f.surfaces = append(f.surfaces, s)
	return s
}

// Surfaces returns the top-level surfaces in drawing order.
func (f *Figure) Surfaces() []*Surface { return sortedByZ(f.surfaces) }

// RemoveSurface destroys s and its children. Links in which they are views
// are removed, and views of them are unlinked through their
// subscriptions. Removing a destroyed surface or one of another figure is
// a no-op.
func (f *Figure) RemoveSurface(s *Surface) {
	if s == nil || s.fig != f || s.destroyed {
		return
	}
	for _, c := range slices.Clone(s.children) {
		f.RemoveSurface(c)
	}

	s.emit(EventDestroyed)
	s.destroyed = true
	f.registry.Unlink(s)
	delete(f.dirty, s)

	if p := s.parent; p != nil {
		p.children = slices.DeleteFunc(p.children, func(c *Surface) bool { return c == s })
		p.emit(EventChildRemoved)
	} else {
		f.surfaces = slices.DeleteFunc(f.surfaces, func(c *Surface) bool { return c == s })
	}
	Logger().Debug("ggview: surface destroyed", "surface", s.name)
}

// NeedsRepaint reports whether a change has been scheduled since the last
// Render.
func (f *Figure) NeedsRepaint() bool { return f.repaintPending }

// Dirty reports whether s was marked for repaint since the last Render.
func (f *Figure) Dirty(s *Surface) bool {
	_, ok := f.dirty[s]
	return ok
}

// Render draws the figure into r and returns what happened. Render does
// not fail: degenerate surfaces, failing artists and recursion limits are
// recovered from, logged and counted in the stats.
func (f *Figure) Render(r Renderer) RenderStats {
	f.guard.Reset()
	var st RenderStats

	if f.background != nil {
		r.DrawPath(rectPath(r.Bounds()), identity, Style{Fill: f.background})
	}
	for _, s := range sortedByZ(f.surfaces) {
		f.drawSurface(r, s, &st)
	}

	st.Cycles = f.guard.cycles
	st.Truncated = f.guard.truncated
	st.MaxDepth = f.guard.maxDepth
	f.guard.Reset()

	clear(f.dirty)
	f.repaintPending = false
	Logger().Debug("ggview: figure rendered", "stats", st.String())
	return st
}

// RenderImage renders the figure on a new gg canvas.
func (f *Figure) RenderImage() (image.Image, RenderStats) {
	c := NewCanvasRenderer(f.width, f.height)
	st := f.Render(c)
	return c.Image(), st
}

// SavePNG renders the figure to a PNG file.
func (f *Figure) SavePNG(path string) error {
	c := NewCanvasRenderer(f.width, f.height)
	f.Render(c)
	if err := c.Context().SavePNG(path); err != nil {
		return fmt.Errorf("ggview: save %s: %w", path, err)
	}
	return nil
}

// EncodePNG renders the figure and writes it as PNG.
func (f *Figure) EncodePNG(w io.Writer) error {
	c := NewCanvasRenderer(f.width, f.height)
	f.Render(c)
	return c.EncodePNG(w)
}
