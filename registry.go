package ggview

import (
	"cmp"
	"fmt"
	"slices"
	"weak"
)

// Registry holds the view links of one figure. It maps each view to its
// link and answers the reverse question (which surfaces view a base)
// without keeping any surface alive: entries whose surfaces have been
// collected are dropped on access.
//
// Registry is not safe for concurrent use.
type Registry struct {
	fig   *Figure
	links map[weak.Pointer[Surface]]*ViewLink
	seq   uint64
}

func newRegistry(fig *Figure) *Registry {
	return &Registry{
		fig:   fig,
		links: make(map[weak.Pointer[Surface]]*ViewLink),
	}
}

// Link makes view show base's content, replacing any link view already
// has. It fails with ErrInvalidLink for nil or destroyed surfaces,
// surfaces of another figure, a negative depth other than
// RenderDepthUnlimited, or view == base without WithSelfView and a
// finite depth.
func (r *Registry) Link(view, base *Surface, opts ...ViewOption) (*ViewLink, error) {
	o := defaultViewOptions()
	for _, opt := range opts {
		opt(&o)
	}
	depth := r.fig.defaultDepth
	if o.hasDepth {
		depth = o.depth
	}

	switch {
	case view == nil || base == nil:
		return nil, fmt.Errorf("%w: nil surface", ErrInvalidLink)
	case view.fig != r.fig || base.fig != r.fig:
		return nil, fmt.Errorf("%w: %s and %s belong to different figures", ErrInvalidLink, view, base)
	case view.destroyed || base.destroyed:
		return nil, fmt.Errorf("%w: %w", ErrInvalidLink, ErrSurfaceDestroyed)
	case depth < RenderDepthUnlimited:
		return nil, fmt.Errorf("%w: render depth %d", ErrInvalidLink, depth)
	case view == base && !o.selfView:
		return nil, fmt.Errorf("%w: %s cannot view itself", ErrInvalidLink, view)
	case view == base && depth == RenderDepthUnlimited:
		return nil, fmt.Errorf("%w: self view of %s needs a finite render depth", ErrInvalidLink, view)
	}

	// A replaced link keeps its place in link order.
	key := weak.Make(view)
	var seq uint64
	if old, ok := r.links[key]; ok {
		old.release()
		seq = old.seq
	} else {
		r.seq++
		seq = r.seq
	}
	l := &ViewLink{
		view:  key,
		base:  weak.Make(base),
		depth: depth,
		opts:  o,
		seq:   seq,
	}
	r.links[key] = l
	r.fig.watch(l, base)

	Logger().Info("ggview: view linked",
		"view", view.name, "base", base.name, "depth", depth)
	return l, nil
}

// Lookup returns the link in which s is the view, or nil.
func (r *Registry) Lookup(s *Surface) *ViewLink {
	if s == nil {
		return nil
	}
	return r.links[weak.Make(s)]
}

// Unlink removes the link in which s is the view. It is a no-op when s is
// not a view.
func (r *Registry) Unlink(s *Surface) {
	if s == nil {
		return
	}
	key := weak.Make(s)
	if l, ok := r.links[key]; ok {
		l.release()
		delete(r.links, key)
		Logger().Debug("ggview: view unlinked", "view", s.name)
	}
}

// ViewsOf returns the surfaces currently viewing base, in link order.
func (r *Registry) ViewsOf(base *Surface) []*Surface {
	r.prune()
	var links []*ViewLink
	for _, l := range r.links {
		if l.Base() == base {
			links = append(links, l)
		}
	}
	slices.SortFunc(links, func(a, b *ViewLink) int {
		return cmp.Compare(a.seq, b.seq)
	})
	views := make([]*Surface, 0, len(links))
	for _, l := range links {
		if v := l.View(); v != nil {
			views = append(views, v)
		}
	}
	return views
}

// Len returns the number of live links.
func (r *Registry) Len() int {
	r.prune()
	return len(r.links)
}

// prune drops links whose view or base has been collected.
func (r *Registry) prune() {
	for key, l := range r.links {
		if key.Value() == nil || l.Base() == nil {
			l.release()
			delete(r.links, key)
		}
	}
}
