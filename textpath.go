package ggview

import (
	"errors"
	"fmt"
	"image/color"

	"github.com/gogpu/gg"
	"github.com/gogpu/gg/text"
)

// textPath returns the glyph outlines of s as a single path in display
// coordinates. Text is placed the way gg.Context.DrawStringAnchored places
// it: AnchorX advance widths left of the anchor, with the baseline AnchorY
// line heights below it. Glyphs missing from the font are skipped.
//
// A nil path with a nil error means there is nothing to draw.
func textPath(s string, at gg.Point, style TextStyle) (*gg.Path, error) {
	face := style.Face
	if face == nil || s == "" {
		return nil, nil
	}
	src := face.Source()
	if src == nil {
		return nil, fmt.Errorf("ggview: text %q: face has no font source", s)
	}

	w, h := text.Measure(s, face)
	x0 := at.X - w*style.AnchorX
	y0 := at.Y + h*style.AnchorY

	parsed := src.Parsed()
	ex := text.NewOutlineExtractor()
	p := gg.NewPath()
	for g := range face.Glyphs(s) {
		o, err := ex.ExtractOutline(parsed, g.GID, face.Size())
		if errors.Is(err, text.ErrUnsupportedFontType) {
			return nil, fmt.Errorf("ggview: text %q: %w", s, err)
		}
		if err != nil || o == nil || o.IsEmpty() {
			continue
		}
		appendOutline(p, o, x0+g.X, y0+g.Y)
	}
	return p, nil
}

// appendOutline adds the contours of o to p with the glyph origin at
// (x, y). Outline coordinates grow downwards like display coordinates.
func appendOutline(p *gg.Path, o *text.GlyphOutline, x, y float64) {
	open := false
	pt := func(q text.OutlinePoint) (float64, float64) {
		return x + float64(q.X), y + float64(q.Y)
	}
	for _, seg := range o.Segments {
		switch seg.Op {
		case text.OutlineOpMoveTo:
			if open {
				p.Close()
			}
			p.MoveTo(pt(seg.Points[0]))
			open = true
		case text.OutlineOpLineTo:
			p.LineTo(pt(seg.Points[0]))
		case text.OutlineOpQuadTo:
			cx, cy := pt(seg.Points[0])
			px, py := pt(seg.Points[1])
			p.QuadraticTo(cx, cy, px, py)
		case text.OutlineOpCubicTo:
			c1x, c1y := pt(seg.Points[0])
			c2x, c2y := pt(seg.Points[1])
			px, py := pt(seg.Points[2])
			p.CubicTo(c1x, c1y, c2x, c2y, px, py)
		}
	}
	if open {
		p.Close()
	}
}

// textFill returns the path style text is filled with.
func textFill(style TextStyle) Style {
	col := style.Color
	if col == nil {
		col = color.Black
	}
	return Style{Fill: col, FillRule: gg.FillRuleNonZero, Clip: style.Clip}
}
