package ggview

import (
	"image"
	"image/color"
	"io"
	"math"

	"github.com/gogpu/gg"
	xdraw "golang.org/x/image/draw"
	"golang.org/x/image/math/f64"
)

// CanvasRenderer is a Renderer that rasterizes into a gg.Context.
// Every draw call saves and restores the context state, so the context's
// transform and clip are unchanged between calls.
type CanvasRenderer struct {
	dc *gg.Context
}

var _ Renderer = (*CanvasRenderer)(nil)

// NewCanvasRenderer creates a renderer backed by a new width x height
// gg.Context.
func NewCanvasRenderer(width, height int) *CanvasRenderer {
	return &CanvasRenderer{dc: gg.NewContext(width, height)}
}

// NewCanvasRendererFor wraps an existing context, e.g. one owned by a
// gogpu window.
func NewCanvasRendererFor(dc *gg.Context) *CanvasRenderer {
	return &CanvasRenderer{dc: dc}
}

// Context returns the underlying gg context.
func (c *CanvasRenderer) Context() *gg.Context { return c.dc }

// Image returns the rendered image.
func (c *CanvasRenderer) Image() image.Image { return c.dc.Image() }

// EncodePNG writes the rendered image as PNG.
func (c *CanvasRenderer) EncodePNG(w io.Writer) error { return c.dc.EncodePNG(w) }

// Clear fills the whole canvas with col.
func (c *CanvasRenderer) Clear(col color.Color) {
	c.dc.ClearWithColor(gg.FromColor(col))
}

// Bounds implements Renderer.
func (c *CanvasRenderer) Bounds() Rect {
	return RectXYWH(0, 0, float64(c.dc.Width()), float64(c.dc.Height()))
}

// DrawPath implements Renderer.
func (c *CanvasRenderer) DrawPath(path *gg.Path, m gg.Matrix, style Style) {
	if path == nil || (style.Fill == nil && (style.Stroke == nil || style.LineWidth <= 0)) {
		return
	}
	if style.Clip != nil && style.Clip.Empty() {
		return
	}

	c.dc.Push()
	defer c.dc.Pop()
	c.dc.Identity()
	if style.Clip != nil {
		c.dc.ClipRect(style.Clip.Min.X, style.Clip.Min.Y, style.Clip.Width(), style.Clip.Height())
	}

	c.dc.ClearPath()
	c.setPath(path.Transform(m))
	defer c.dc.ClearPath()

	if style.Fill != nil {
		c.dc.SetFillRule(style.FillRule)
		c.dc.SetColor(style.Fill)
		if err := c.dc.FillPreserve(); err != nil {
			Logger().Warn("ggview: canvas fill failed", "err", err)
		}
	}
	if style.Stroke != nil && style.LineWidth > 0 {
		stroke := gg.DefaultStroke().
			WithWidth(style.LineWidth).
			WithCap(style.LineCap).
			WithJoin(style.LineJoin)
		if len(style.Dash) > 0 {
			stroke = stroke.WithDashPattern(style.Dash...).WithDashOffset(style.DashOffset)
		}
		c.dc.SetStroke(stroke)
		c.dc.SetColor(style.Stroke)
		if err := c.dc.StrokePreserve(); err != nil {
			Logger().Warn("ggview: canvas stroke failed", "err", err)
		}
	}
}

// setPath replays the path elements onto the context's current path.
func (c *CanvasRenderer) setPath(p *gg.Path) {
	for _, el := range p.Elements() {
		switch e := el.(type) {
		case gg.MoveTo:
			c.dc.MoveTo(e.Point.X, e.Point.Y)
		case gg.LineTo:
			c.dc.LineTo(e.Point.X, e.Point.Y)
		case gg.QuadTo:
			c.dc.QuadraticTo(e.Control.X, e.Control.Y, e.Point.X, e.Point.Y)
		case gg.CubicTo:
			c.dc.CubicTo(e.Control1.X, e.Control1.Y, e.Control2.X, e.Control2.Y, e.Point.X, e.Point.Y)
		case gg.Close:
			c.dc.ClosePath()
		}
	}
}

// DrawImage implements Renderer. The image is resampled on the CPU into
// the visible part of dst and then blitted 1:1, so clipping does not
// depend on what the context does with images.
func (c *CanvasRenderer) DrawImage(img image.Image, dst Rect, style ImageStyle) {
	if img == nil || dst.Empty() || img.Bounds().Empty() {
		return
	}
	vis := dst.Intersect(c.Bounds())
	if style.Clip != nil {
		vis = vis.Intersect(*style.Clip)
	}
	if vis.Empty() {
		return
	}
	// Pixels whose centre lies inside vis; partial edge pixels are left
	// alone so the blit never leaves the clip.
	out := image.Rect(
		pixelEdge(vis.Min.X), pixelEdge(vis.Min.Y),
		pixelEdge(vis.Max.X), pixelEdge(vis.Max.Y),
	)
	if out.Empty() {
		return
	}
	buf := image.NewRGBA(image.Rect(0, 0, out.Dx(), out.Dy()))

	sb := img.Bounds()
	sx := dst.Width() / float64(sb.Dx())
	sy := dst.Height() / float64(sb.Dy())
	s2d := f64.Aff3{
		sx, 0, dst.Min.X - float64(out.Min.X) - float64(sb.Min.X)*sx,
		0, sy, dst.Min.Y - float64(out.Min.Y) - float64(sb.Min.Y)*sy,
	}
	style.Interpolation.interpolator().Transform(buf, s2d, img, sb, xdraw.Over, opacityOptions(style.Opacity))

	c.dc.Push()
	defer c.dc.Pop()
	c.dc.Identity()
	c.dc.DrawImage(gg.ImageBufFromImage(buf), float64(out.Min.X), float64(out.Min.Y))
}

func pixelEdge(v float64) int { return int(math.Ceil(v - 0.5)) }

// opacityOptions returns resampling options applying a uniform alpha mask,
// or nil for fully opaque drawing.
func opacityOptions(opacity float64) *xdraw.Options {
	if opacity <= 0 || opacity >= 1 {
		return nil
	}
	return &xdraw.Options{
		SrcMask: image.NewUniform(color.Alpha{A: uint8(math.Round(opacity * 255))}),
	}
}

// DrawText implements Renderer. The glyph outlines are filled as a path,
// so text is clipped like any other shape.
func (c *CanvasRenderer) DrawText(s string, at gg.Point, style TextStyle) {
	p, err := textPath(s, at, style)
	if err != nil {
		Logger().Warn("ggview: canvas text failed", "err", err)
		return
	}
	if p == nil {
		return
	}
	c.DrawPath(p, gg.Identity(), textFill(style))
}
