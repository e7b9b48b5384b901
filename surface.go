package ggview

import (
	"fmt"
	"image/color"
	"slices"

	"github.com/gogpu/gg"
)

// Surface is a rectangular region of a Figure with its own data limits and
// artists, much like a plot's axes. Any surface can become a view of
// another surface of the same figure; see View.
//
// A Surface is created by Figure.AddSurface or Surface.AddSurface and
// lives until Destroy. It is not safe for concurrent use.
type Surface struct {
	fig    *Figure
	parent *Surface
	name   string
	seq    uint64

	rect       Rect
	xlim, ylim Range
	aspect     Aspect
	adjustable Adjustable

	artists  []Artist
	children []*Surface
	zorder   float64

	background color.Color
	frame      Style

	subs      subscribers
	destroyed bool
}

func newSurface(fig *Figure, parent *Surface, r Rect, opts []SurfaceOption) *Surface {
	fig.seq++
	s := &Surface{
		fig:        fig,
		parent:     parent,
		seq:        fig.seq,
		rect:       r,
		xlim:       Range{Min: 0, Max: 1},
		ylim:       Range{Min: 0, Max: 1},
		background: color.White,
		frame:      Style{Stroke: color.Black, LineWidth: 1},
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.name == "" {
		s.name = fmt.Sprintf("surface%d", s.seq)
	}
	return s
}

// Figure returns the figure owning the surface.
func (s *Surface) Figure() *Figure { return s.fig }

// Parent returns the surface containing s, or nil for top-level surfaces.
func (s *Surface) Parent() *Surface { return s.parent }

// Name returns the surface name.
func (s *Surface) Name() string { return s.name }

func (s *Surface) String() string { return s.name }

// Destroyed reports whether the surface has been removed from its figure.
func (s *Surface) Destroyed() bool { return s.destroyed }

// Rect returns the display rectangle in figure pixels.
func (s *Surface) Rect() Rect { return s.rect }

// SetRect moves or resizes the surface.
func (s *Surface) SetRect(r Rect) {
	s.rect = r
	s.emit(EventBoundsChanged)
}

// XLim returns the x data range.
func (s *Surface) XLim() Range { return s.xlim }

// YLim returns the y data range.
func (s *Surface) YLim() Range { return s.ylim }

// SetXLim sets the x data range.
func (s *Surface) SetXLim(min, max float64) {
	s.xlim = Range{Min: min, Max: max}
	s.emit(EventLimitsChanged)
}

// SetYLim sets the y data range.
func (s *Surface) SetYLim(min, max float64) {
	s.ylim = Range{Min: min, Max: max}
	s.emit(EventLimitsChanged)
}

// SetLimits sets both data ranges with a single notification.
func (s *Surface) SetLimits(x, y Range) {
	s.xlim, s.ylim = x, y
	s.emit(EventLimitsChanged)
}

// Aspect returns the aspect policy.
func (s *Surface) Aspect() (Aspect, Adjustable) { return s.aspect, s.adjustable }

// SetAspect sets the aspect policy.
func (s *Surface) SetAspect(aspect Aspect, adj Adjustable) {
	s.aspect, s.adjustable = aspect, adj
	s.emit(EventBoundsChanged)
}

// ZOrder returns the drawing order among siblings.
func (s *Surface) ZOrder() float64 { return s.zorder }

// SetZOrder changes the drawing order among siblings.
func (s *Surface) SetZOrder(z float64) {
	s.zorder = z
	s.emit(EventBoundsChanged)
}

// SetBackground sets the background colour; nil disables it.
func (s *Surface) SetBackground(col color.Color) {
	s.background = col
	s.emit(EventContentChanged)
}

// Add appends artists. They draw in insertion order.
func (s *Surface) Add(artists ...Artist) {
	if len(artists) == 0 {
		return
	}
	s.artists = append(s.artists, artists...)
	s.emit(EventArtistAdded)
}

// Remove removes an artist and reports whether it was present.
func (s *Surface) Remove(a Artist) bool {
	i := slices.Index(s.artists, a)
	if i < 0 {
		return false
	}
	s.artists = slices.Delete(s.artists, i, i+1)
	s.emit(EventArtistRemoved)
	return true
}

// Artists returns a copy of the artist list.
func (s *Surface) Artists() []Artist { return slices.Clone(s.artists) }

// Invalidate notifies subscribers that artists were mutated in place.
func (s *Surface) Invalidate() { s.emit(EventContentChanged) }

// AddSurface creates a child surface at display rectangle r. Children
// draw on top of the surface's artists in z-order.
func (s *Surface) AddSurface(r Rect, opts ...SurfaceOption) (*Surface, error) {
	if s.destroyed {
		return nil, fmt.Errorf("%w: %s", ErrSurfaceDestroyed, s.name)
	}
	c := newSurface(s.fig, s, r, opts)
	s.children = append(s.children, c)
	s.emit(EventChildAdded)
	return c, nil
}

// Children returns the child surfaces in drawing order.
func (s *Surface) Children() []*Surface { return sortedByZ(s.children) }

// Subscribe registers fn for change notifications on s and returns a
// function that cancels the subscription. Callbacks run synchronously.
func (s *Surface) Subscribe(fn func(Event)) (cancel func()) {
	return s.subs.add(fn)
}

// Destroy removes the surface and its children from the figure. Views of
// the surface are unlinked. Destroy is idempotent.
func (s *Surface) Destroy() { s.fig.RemoveSurface(s) }

// DataTransform returns the current data-to-display transform under the
// surface's own aspect policy.
func (s *Surface) DataTransform() (gg.Matrix, error) {
	return s.dataTransform(s.aspect, s.adjustable)
}

// DisplayToData maps a display point to data coordinates.
func (s *Surface) DisplayToData(p gg.Point) (gg.Point, error) {
	m, err := s.DataTransform()
	if err != nil {
		return gg.Point{}, err
	}
	inv, ok := invert(m)
	if !ok {
		return gg.Point{}, fmt.Errorf("%w: %s", ErrDegenerateTransform, s.name)
	}
	return inv.TransformPoint(p), nil
}

// ActiveRect returns the display rectangle the data limits map onto,
// which is smaller than Rect under AdjustBox.
func (s *Surface) ActiveRect() Rect {
	return applyAspect(s.xlim, s.ylim, s.rect, s.aspect, s.adjustable).box
}

func (s *Surface) dataTransform(aspect Aspect, adj Adjustable) (gg.Matrix, error) {
	if s.xlim.Degenerate() || s.ylim.Degenerate() {
		return gg.Matrix{}, fmt.Errorf("%w: %s has limits x=%v y=%v",
			ErrDegenerateTransform, s.name, s.xlim, s.ylim)
	}
	if s.rect.Empty() {
		return gg.Matrix{}, fmt.Errorf("%w: %s has empty display rectangle %v",
			ErrDegenerateTransform, s.name, s.rect)
	}
	l := applyAspect(s.xlim, s.ylim, s.rect, aspect, adj)
	return rangeMatrix(l.x, l.y, l.box), nil
}

func (s *Surface) emit(kind EventKind) {
	if s.destroyed && kind != EventDestroyed {
		return
	}
	s.subs.emit(Event{Kind: kind, Surface: s})

	// A child is part of its parent's content.
	if s.parent != nil && kind != EventDestroyed {
		s.parent.emit(EventContentChanged)
	}
}

// sortedByZ returns a copy of list ordered by z-order, then creation.
func sortedByZ(list []*Surface) []*Surface {
	out := slices.Clone(list)
	slices.SortStableFunc(out, func(a, b *Surface) int {
		switch {
		case a.zorder < b.zorder:
			return -1
		case a.zorder > b.zorder:
			return 1
		}
		return 0
	})
	return out
}
