package ggview

import "fmt"

// insetZOrder places insets above the parent's other children by default.
const insetZOrder = 5

// InsetZoom creates a child surface of parent that views parent, the usual
// way to show a magnified region of a plot inside the plot itself.
//
// b is the inset placement as fractions of parent's display rectangle,
// measured from its lower-left corner; with InsetDataCoords it is in
// parent's data coordinates. The inset starts with parent's data limits,
// so set its limits to choose the zoomed region. Because the inset is part
// of parent's content, it appears inside itself down to the link's render
// depth.
//
// InsetZoom fails with ErrInvalidBounds when b has a non-positive or
// non-finite size.
//
// Example:
//
//	inset, err := ggview.InsetZoom(ax, ggview.Bounds{X: 0.55, Y: 0.55, W: 0.4, H: 0.4},
//	    ggview.InsetRenderDepth(2))
//	if err != nil {
//	    return err
//	}
//	inset.SetLimits(ggview.Range{Min: 1, Max: 2}, ggview.Range{Min: 1, Max: 2})
func InsetZoom(parent *Surface, b Bounds, opts ...InsetOption) (*Surface, error) {
	if parent == nil {
		return nil, fmt.Errorf("%w: nil parent", ErrInvalidLink)
	}
	if !b.valid() {
		return nil, fmt.Errorf("%w: %+v", ErrInvalidBounds, b)
	}
	var o insetOptions
	for _, opt := range opts {
		opt(&o)
	}

	r, err := insetRect(parent, b, o.dataCoords)
	if err != nil {
		return nil, err
	}
	sopts := append([]SurfaceOption{
		WithLimits(parent.xlim, parent.ylim),
		WithAspect(parent.aspect, parent.adjustable),
		WithZOrder(insetZOrder),
	}, o.surface...)

	inset, err := parent.AddSurface(r, sopts...)
	if err != nil {
		return nil, err
	}
	if _, err := parent.fig.registry.Link(inset, parent, o.view...); err != nil {
		inset.Destroy()
		return nil, err
	}
	Logger().Info("ggview: inset created", "parent", parent.name, "inset", inset.name, "rect", r.String())
	return inset, nil
}

// insetRect converts inset bounds into a display rectangle.
func insetRect(parent *Surface, b Bounds, dataCoords bool) (Rect, error) {
	if dataCoords {
		m, err := parent.DataTransform()
		if err != nil {
			return Rect{}, err
		}
		return R(b.X, b.Y, b.X+b.W, b.Y+b.H).Transform(m), nil
	}
	pr := parent.rect
	x0 := pr.Min.X + b.X*pr.Width()
	y1 := pr.Max.Y - b.Y*pr.Height()
	return R(x0, y1-b.H*pr.Height(), x0+b.W*pr.Width(), y1), nil
}
