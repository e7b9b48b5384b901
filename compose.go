package ggview

import (
	"fmt"

	"github.com/gogpu/gg"
)

// ComposeTransform returns the mapping from base display coordinates to
// view display coordinates: the inverse of the base's data transform
// followed by the view's. The base's current data limits therefore land
// exactly where the view would draw the same data.
//
// Each side honours its own aspect policy; with inheritAspect the view
// uses the base's policy instead. The transform must be recomputed for
// every draw because either surface may have changed since the last one.
// It fails with ErrDegenerateTransform when either surface has a
// zero-extent data range or an empty display rectangle.
func ComposeTransform(base, view *Surface, inheritAspect bool) (gg.Matrix, error) {
	aspect, adj := viewAspect(base, view, inheritAspect)
	return composeTransform(base, view, aspect, adj)
}

// viewAspect returns the aspect policy view is drawn with when it shows
// base.
func viewAspect(base, view *Surface, inheritAspect bool) (Aspect, Adjustable) {
	if inheritAspect {
		return base.aspect, base.adjustable
	}
	return view.aspect, view.adjustable
}

func composeTransform(base, view *Surface, aspect Aspect, adj Adjustable) (gg.Matrix, error) {
	baseD2D, err := base.DataTransform()
	if err != nil {
		return gg.Matrix{}, err
	}
	viewD2D, err := view.dataTransform(aspect, adj)
	if err != nil {
		return gg.Matrix{}, err
	}
	baseInv, ok := invert(baseD2D)
	if !ok {
		return gg.Matrix{}, fmt.Errorf("%w: %s is not invertible", ErrDegenerateTransform, base)
	}
	return viewD2D.Multiply(baseInv), nil
}
