package ggview

// watch subscribes link l to change notifications of its base. Base
// changes mark every surface showing the base as needing a repaint, and
// destroying the base unlinks the view. The subscription ends when the
// link is replaced or removed.
func (f *Figure) watch(l *ViewLink, base *Surface) {
	l.cancel = base.Subscribe(func(e Event) {
		view := l.View()
		if view == nil {
			return
		}
		if e.Kind == EventDestroyed {
			if f.registry.Lookup(view) == l {
				f.registry.Unlink(view)
			}
			f.markDirty(view)
			return
		}
		if f.continuous {
			return
		}
		f.markDirty(view)
	})
}

// markDirty marks view and every surface transitively showing it as
// needing a repaint, then schedules the repaint.
func (f *Figure) markDirty(view *Surface) {
	seen := make(map[*Surface]bool)
	f.markViews(view, seen)
	if f.continuous {
		return
	}
	f.scheduleRepaint()
}

func (f *Figure) markViews(s *Surface, seen map[*Surface]bool) {
	if seen[s] {
		return
	}
	seen[s] = true
	f.dirty[s] = struct{}{}

	// Views of s redraw its content, and so do views of any surface that
	// contains s as a child.
	for p := s; p != nil; p = p.parent {
		for _, v := range f.registry.ViewsOf(p) {
			f.markViews(v, seen)
		}
	}
}

// scheduleRepaint calls the repaint handler when the figure goes from
// clean to dirty. Further changes before the next Render are coalesced.
func (f *Figure) scheduleRepaint() {
	if f.repaintPending {
		return
	}
	f.repaintPending = true
	Logger().Debug("ggview: repaint scheduled", "dirty", len(f.dirty))
	if f.onRepaint != nil {
		f.onRepaint()
	}
}
