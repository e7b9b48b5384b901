package ggview

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"math"

	"github.com/gogpu/gg"
	"github.com/gogpu/gg/text"
)

// Artist is a drawable primitive held by a Surface. Draw maps the artist's
// data coordinates to display coordinates with dataToDisplay and issues
// the resulting calls on r.
//
// Draw must not retain r. A returned error is reported by the surface and
// does not stop the remaining artists from drawing.
type Artist interface {
	Draw(r Renderer, dataToDisplay gg.Matrix) error
}

// Clipper is implemented by artists that carry their own display-space
// clip box. While a view redraws a base, clip boxes belong to the base's
// frame and are suspended for the duration of the draw.
type Clipper interface {
	ClipBox() *Rect
	SetClipBox(clip *Rect)
}

var (
	errNoPath  = errors.New("ggview: artist has no path")
	errNoImage = errors.New("ggview: artist has no image")
)

// PathArtist draws a path given in data coordinates. Line widths and dash
// lengths in Style are display units and do not follow the data scale.
type PathArtist struct {
	Path  *gg.Path
	Style Style

	// Label identifies the artist, e.g. for view filters.
	Label string

	clip *Rect
}

var (
	_ Artist  = (*PathArtist)(nil)
	_ Clipper = (*PathArtist)(nil)
)

// NewPathArtist returns an artist drawing p with style.
func NewPathArtist(p *gg.Path, style Style) *PathArtist {
	return &PathArtist{Path: p, Style: style}
}

// NewLine returns a stroked polyline through pts.
func NewLine(col color.Color, width float64, pts ...gg.Point) *PathArtist {
	p := gg.NewPath()
	for i, pt := range pts {
		if i == 0 {
			p.MoveTo(pt.X, pt.Y)
			continue
		}
		p.LineTo(pt.X, pt.Y)
	}
	return NewPathArtist(p, Style{Stroke: col, LineWidth: width, LineJoin: gg.LineJoinRound})
}

// NewPolygon returns a filled closed polygon through pts.
func NewPolygon(fill color.Color, pts ...gg.Point) *PathArtist {
	a := NewLine(nil, 0, pts...)
	if len(pts) > 0 {
		a.Path.Close()
	}
	a.Style.Fill = fill
	return a
}

// NewRectangle returns a filled rectangle with corner (x, y) and size
// (w, h) in data units.
func NewRectangle(fill color.Color, x, y, w, h float64) *PathArtist {
	p := gg.NewPath()
	p.Rectangle(x, y, w, h)
	return NewPathArtist(p, Style{Fill: fill})
}

// NewCircle returns a filled circle in data units. It renders as an
// ellipse unless the surface has an equal aspect.
func NewCircle(fill color.Color, cx, cy, r float64) *PathArtist {
	p := gg.NewPath()
	p.Circle(cx, cy, r)
	return NewPathArtist(p, Style{Fill: fill})
}

// ClipBox implements Clipper.
func (a *PathArtist) ClipBox() *Rect { return a.clip }

// SetClipBox implements Clipper.
func (a *PathArtist) SetClipBox(clip *Rect) { a.clip = clip }

// Draw implements Artist.
func (a *PathArtist) Draw(r Renderer, dataToDisplay gg.Matrix) error {
	if a.Path == nil {
		return errNoPath
	}
	st := a.Style
	if a.clip != nil {
		st.Clip = clipRect(st.Clip, *a.clip)
	}
	r.DrawPath(a.Path, dataToDisplay, st)
	return nil
}

// ImageArtist draws an image stretched over a data-space extent. The first
// image row is drawn at the top of the extent.
type ImageArtist struct {
	Image  image.Image
	Extent struct{ X, Y Range }

	Interpolation Interpolation
	Opacity       float64

	Label string

	clip *Rect
}

var (
	_ Artist  = (*ImageArtist)(nil)
	_ Clipper = (*ImageArtist)(nil)
)

// NewImageArtist returns an artist drawing img over the data box spanned
// by x and y.
func NewImageArtist(img image.Image, x, y Range) *ImageArtist {
	a := &ImageArtist{Image: img}
	a.Extent.X, a.Extent.Y = x, y
	return a
}

// ClipBox implements Clipper.
func (a *ImageArtist) ClipBox() *Rect { return a.clip }

// SetClipBox implements Clipper.
func (a *ImageArtist) SetClipBox(clip *Rect) { a.clip = clip }

// Draw implements Artist.
func (a *ImageArtist) Draw(r Renderer, dataToDisplay gg.Matrix) error {
	if a.Image == nil {
		return errNoImage
	}
	if a.Extent.X.Degenerate() || a.Extent.Y.Degenerate() {
		return fmt.Errorf("%w: image extent %v x %v", ErrDegenerateTransform, a.Extent.X, a.Extent.Y)
	}
	dst := R(a.Extent.X.Min, a.Extent.Y.Min, a.Extent.X.Max, a.Extent.Y.Max).Transform(dataToDisplay)
	st := ImageStyle{Interpolation: a.Interpolation, Opacity: a.Opacity}
	if a.clip != nil {
		st.Clip = clipRect(nil, *a.clip)
	}
	r.DrawImage(a.Image, dst, st)
	return nil
}

// TextArtist draws a string anchored at a data-space position. The font
// size is in display units.
type TextArtist struct {
	Text  string
	Pos   gg.Point
	Style TextStyle

	Label string

	clip *Rect
}

var (
	_ Artist  = (*TextArtist)(nil)
	_ Clipper = (*TextArtist)(nil)
)

// NewText returns a text artist centred on pos.
func NewText(s string, pos gg.Point, face text.Face, col color.Color) *TextArtist {
	return &TextArtist{
		Text:  s,
		Pos:   pos,
		Style: TextStyle{Face: face, Color: col, AnchorX: 0.5, AnchorY: 0.5},
	}
}

// ClipBox implements Clipper.
func (a *TextArtist) ClipBox() *Rect { return a.clip }

// SetClipBox implements Clipper.
func (a *TextArtist) SetClipBox(clip *Rect) { a.clip = clip }

// Draw implements Artist.
func (a *TextArtist) Draw(r Renderer, dataToDisplay gg.Matrix) error {
	at := dataToDisplay.TransformPoint(a.Pos)
	if math.IsNaN(at.X) || math.IsNaN(at.Y) {
		return fmt.Errorf("ggview: text %q has no finite position", a.Text)
	}
	st := a.Style
	if a.clip != nil {
		st.Clip = clipRect(st.Clip, *a.clip)
	}
	r.DrawText(a.Text, at, st)
	return nil
}

// ArtistLabel returns the Label of the built-in artists, or "" for others.
func ArtistLabel(a Artist) string {
	switch a := a.(type) {
	case *PathArtist:
		return a.Label
	case *ImageArtist:
		return a.Label
	case *TextArtist:
		return a.Label
	}
	return ""
}
