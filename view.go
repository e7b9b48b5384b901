package ggview

import "fmt"

// View makes view show the live content of base and returns view. Each
// time view is drawn it redraws whatever base holds at that moment,
// remapped from base's data limits into view's own limits and rectangle.
// Calling View again replaces the previous configuration.
//
// Both surfaces must belong to the same figure; otherwise View fails with
// ErrInvalidLink.
//
// Example:
//
//	overview := fig.AddSurface(ggview.RectXYWH(0, 0, 400, 300))
//	zoom := fig.AddSurface(ggview.RectXYWH(400, 0, 200, 150),
//	    ggview.WithXLim(2, 3), ggview.WithYLim(2, 3))
//	if _, err := ggview.View(zoom, overview); err != nil {
//	    return err
//	}
func View(view, base *Surface, opts ...ViewOption) (*Surface, error) {
	if view == nil || base == nil {
		return nil, fmt.Errorf("%w: nil surface", ErrInvalidLink)
	}
	if view.fig != base.fig {
		return nil, fmt.Errorf("%w: %s and %s belong to different figures", ErrInvalidLink, view, base)
	}
	if _, err := view.fig.registry.Link(view, base, opts...); err != nil {
		return nil, err
	}
	return view, nil
}

// Link returns the link in which s is the view, or nil.
func (s *Surface) Link() *ViewLink { return s.fig.registry.Lookup(s) }

// Unlink stops s from being a view. It is a no-op for plain surfaces.
func (s *Surface) Unlink() { s.fig.registry.Unlink(s) }
