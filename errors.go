package ggview

import "errors"

// Errors returned by ggview operations. Callers match them with errors.Is;
// the returned errors carry the offending values via fmt.Errorf wrapping.
var (
	// ErrInvalidLink is returned when a view link request is malformed:
	// nil or destroyed surfaces, surfaces from different figures, a
	// self-link without WithSelfView, or a negative render depth.
	ErrInvalidLink = errors.New("ggview: invalid view link")

	// ErrDegenerateTransform is returned when a surface has a zero-extent
	// data range or an empty display rectangle, so no data-to-display
	// transform exists. Redirected draws recover from it by skipping the
	// frame.
	ErrDegenerateTransform = errors.New("ggview: degenerate transform")

	// ErrInvalidBounds is returned when an inset is requested with a
	// non-positive or non-finite width or height.
	ErrInvalidBounds = errors.New("ggview: invalid inset bounds")

	// ErrInvalidInterpolation is returned for unknown interpolation names.
	ErrInvalidInterpolation = errors.New("ggview: invalid interpolation")

	// ErrSurfaceDestroyed is returned when an operation targets a surface
	// that has been removed from its figure.
	ErrSurfaceDestroyed = errors.New("ggview: surface destroyed")

	// ErrUnknownRenderer is returned by NewRenderer for unregistered names.
	ErrUnknownRenderer = errors.New("ggview: unknown renderer")
)
