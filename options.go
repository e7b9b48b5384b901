package ggview

import "image/color"

// FigureOption configures a Figure during creation.
//
// Example:
//
//	fig := ggview.NewFigure(800, 600,
//	    ggview.WithDefaultRenderDepth(8),
//	    ggview.WithRepaintHandler(window.RequestRedraw))
type FigureOption func(*figureOptions)

type figureOptions struct {
	depth      int
	continuous bool
	onRepaint  func()
	background color.Color
}

func defaultFigureOptions() figureOptions {
	return figureOptions{
		depth:      DefaultRenderDepth,
		background: color.White,
	}
}

// WithDefaultRenderDepth sets the render depth used by links created
// without WithRenderDepth. RenderDepthUnlimited is accepted.
func WithDefaultRenderDepth(depth int) FigureOption {
	return func(o *figureOptions) {
		if depth >= RenderDepthUnlimited {
			o.depth = depth
		}
	}
}

// WithContinuousRepaint declares that the host repaints the figure every
// frame, so base changes do not schedule repaints of their views.
func WithContinuousRepaint() FigureOption {
	return func(o *figureOptions) {
		o.continuous = true
	}
}

// WithRepaintHandler sets the function called when a change on a surface
// requires the figure to be repainted. It is called synchronously from the
// mutating call.
func WithRepaintHandler(fn func()) FigureOption {
	return func(o *figureOptions) {
		o.onRepaint = fn
	}
}

// WithFigureBackground sets the colour painted under all surfaces. Nil
// leaves the target untouched.
func WithFigureBackground(col color.Color) FigureOption {
	return func(o *figureOptions) {
		o.background = col
	}
}

// SurfaceOption configures a Surface during creation.
type SurfaceOption func(*Surface)

// WithLimits sets both data ranges.
func WithLimits(x, y Range) SurfaceOption {
	return func(s *Surface) {
		s.xlim, s.ylim = x, y
	}
}

// WithXLim sets the x data range.
func WithXLim(min, max float64) SurfaceOption {
	return func(s *Surface) {
		s.xlim = Range{Min: min, Max: max}
	}
}

// WithYLim sets the y data range.
func WithYLim(min, max float64) SurfaceOption {
	return func(s *Surface) {
		s.ylim = Range{Min: min, Max: max}
	}
}

// WithAspect sets the aspect policy.
func WithAspect(aspect Aspect, adj Adjustable) SurfaceOption {
	return func(s *Surface) {
		s.aspect, s.adjustable = aspect, adj
	}
}

// WithBackground sets the background colour. Nil disables the background.
func WithBackground(col color.Color) SurfaceOption {
	return func(s *Surface) {
		s.background = col
	}
}

// WithFrame sets the colour and width of the surface outline.
func WithFrame(col color.Color, width float64) SurfaceOption {
	return func(s *Surface) {
		s.frame = Style{Stroke: col, LineWidth: width}
	}
}

// WithoutFrame disables the surface outline.
func WithoutFrame() SurfaceOption {
	return func(s *Surface) {
		s.frame = Style{}
	}
}

// WithZOrder sets the drawing order among siblings; higher draws later.
func WithZOrder(z float64) SurfaceOption {
	return func(s *Surface) {
		s.zorder = z
	}
}

// WithName sets a name used in logs and by scene files.
func WithName(name string) SurfaceOption {
	return func(s *Surface) {
		s.name = name
	}
}

// WithArtists adds artists to the surface at creation.
func WithArtists(artists ...Artist) SurfaceOption {
	return func(s *Surface) {
		s.artists = append(s.artists, artists...)
	}
}

// ViewOption configures a view link.
type ViewOption func(*viewOptions)

type viewOptions struct {
	depth         int
	hasDepth      bool
	interpolation Interpolation
	scaleLines    bool
	filter        func(Artist) bool
	inheritAspect bool
	selfView      bool
}

func defaultViewOptions() viewOptions {
	return viewOptions{
		interpolation: Nearest,
		scaleLines:    true,
	}
}

// WithRenderDepth bounds the number of nested redirected levels. Zero
// draws no redirected content; RenderDepthUnlimited stops only at the
// first cycle.
func WithRenderDepth(depth int) ViewOption {
	return func(o *viewOptions) {
		o.depth, o.hasDepth = depth, true
	}
}

// WithInterpolation sets the resampling filter for base images drawn in
// the view.
func WithInterpolation(i Interpolation) ViewOption {
	return func(o *viewOptions) {
		o.interpolation = i
	}
}

// WithLineScaling controls whether line widths and dash patterns are
// scaled with the zoom of the view. Enabled by default.
func WithLineScaling(enabled bool) ViewOption {
	return func(o *viewOptions) {
		o.scaleLines = enabled
	}
}

// WithFilter restricts the view to base artists for which keep returns
// true. Child surfaces of the base are not filtered.
func WithFilter(keep func(Artist) bool) ViewOption {
	return func(o *viewOptions) {
		o.filter = keep
	}
}

// WithInheritAspect makes the view use the base's aspect policy instead of
// its own.
func WithInheritAspect() ViewOption {
	return func(o *viewOptions) {
		o.inheritAspect = true
	}
}

// WithSelfView allows a surface to view itself. It requires a finite
// render depth.
func WithSelfView() ViewOption {
	return func(o *viewOptions) {
		o.selfView = true
	}
}

// InsetOption configures InsetZoom.
type InsetOption func(*insetOptions)

type insetOptions struct {
	dataCoords bool
	view       []ViewOption
	surface    []SurfaceOption
}

// InsetRenderDepth sets the render depth of the inset's link.
func InsetRenderDepth(depth int) InsetOption {
	return func(o *insetOptions) {
		o.view = append(o.view, WithRenderDepth(depth))
	}
}

// InsetDataCoords interprets the bounds in the parent's data coordinates
// instead of as fractions of its display rectangle.
func InsetDataCoords() InsetOption {
	return func(o *insetOptions) {
		o.dataCoords = true
	}
}

// InsetViewOptions forwards options to the inset's view link.
func InsetViewOptions(opts ...ViewOption) InsetOption {
	return func(o *insetOptions) {
		o.view = append(o.view, opts...)
	}
}

// InsetSurfaceOptions forwards options to the creation of the inset
// surface. They are applied after the inset defaults.
func InsetSurfaceOptions(opts ...SurfaceOption) InsetOption {
	return func(o *insetOptions) {
		o.surface = append(o.surface, opts...)
	}
}
