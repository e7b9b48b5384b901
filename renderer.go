package ggview

import (
	"image"
	"image/color"

	"github.com/gogpu/gg"
	"github.com/gogpu/gg/text"
)

// Renderer receives the draw calls of a figure. Coordinates handed to a
// Renderer are display coordinates of that renderer; Style.Clip and the
// other clip rectangles are in the same space.
//
// Renderers are not safe for concurrent use. Implementations never keep
// references to the paths or styles passed in beyond the call, so callers
// may reuse them.
type Renderer interface {
	// Bounds returns the drawable area.
	Bounds() Rect

	// DrawPath fills and/or strokes path after mapping it through m.
	DrawPath(path *gg.Path, m gg.Matrix, style Style)

	// DrawImage draws img scaled to fill the axis-aligned rectangle dst.
	// The first image row is drawn at dst.Min.Y.
	DrawImage(img image.Image, dst Rect, style ImageStyle)

	// DrawText draws s anchored at the given point.
	DrawText(s string, at gg.Point, style TextStyle)
}

// Style describes how a path is painted.
type Style struct {
	// Fill is the fill colour. Nil disables filling.
	Fill color.Color

	// Stroke is the outline colour. Nil or a non-positive LineWidth
	// disables stroking.
	Stroke color.Color

	LineWidth float64
	LineCap   gg.LineCap
	LineJoin  gg.LineJoin
	FillRule  gg.FillRule

	// Dash is the dash pattern in display units. Nil draws solid lines.
	Dash       []float64
	DashOffset float64

	// Clip restricts drawing to a rectangle. Nil means unclipped.
	Clip *Rect
}

// Clone returns a copy of s that shares no slices or pointers with it.
func (s Style) Clone() Style {
	out := s
	if s.Dash != nil {
		out.Dash = append([]float64(nil), s.Dash...)
	}
	if s.Clip != nil {
		c := *s.Clip
		out.Clip = &c
	}
	return out
}

// ImageStyle describes how an image is painted.
type ImageStyle struct {
	Interpolation Interpolation

	// Opacity in [0, 1]. Zero is treated as fully opaque.
	Opacity float64

	Clip *Rect
}

// TextStyle describes how a string is painted.
type TextStyle struct {
	// Face is the font face. Renderers draw nothing when it is nil.
	Face text.Face

	Color color.Color

	// AnchorX and AnchorY position the text relative to the anchor point
	// in units of its advance width and line height: (0, 0) starts the
	// baseline there, (0.5, 0.5) roughly centres the text.
	AnchorX, AnchorY float64

	Clip *Rect
}

// clipRect intersects an optional clip with r.
func clipRect(clip *Rect, r Rect) *Rect {
	out := r
	if clip != nil {
		out = clip.Intersect(r)
	}
	return &out
}
