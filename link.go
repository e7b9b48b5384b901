package ggview

import "weak"

// ViewLink associates a view surface with the base surface whose content
// it shows. Links are created by View, InsetZoom or Registry.Link and
// reference both surfaces weakly.
type ViewLink struct {
	view, base weak.Pointer[Surface]
	depth      int
	opts       viewOptions
	seq        uint64

	// cancel ends the base subscription installed by the sync hooks.
	cancel func()
}

// View returns the view surface, or nil once it has been collected.
func (l *ViewLink) View() *Surface { return l.view.Value() }

// Base returns the base surface, or nil once it has been collected.
func (l *ViewLink) Base() *Surface { return l.base.Value() }

// RenderDepth returns the depth bound, possibly RenderDepthUnlimited.
func (l *ViewLink) RenderDepth() int { return l.depth }

// Interpolation returns the filter used for base images.
func (l *ViewLink) Interpolation() Interpolation { return l.opts.interpolation }

// ScalesLines reports whether line widths follow the zoom.
func (l *ViewLink) ScalesLines() bool { return l.opts.scaleLines }

// InheritsAspect reports whether the view uses the base's aspect policy.
func (l *ViewLink) InheritsAspect() bool { return l.opts.inheritAspect }

// keep reports whether the base artist a is drawn in the view.
func (l *ViewLink) keep(a Artist) bool {
	return l.opts.filter == nil || l.opts.filter(a)
}

func (l *ViewLink) release() {
	if l.cancel != nil {
		l.cancel()
		l.cancel = nil
	}
}
