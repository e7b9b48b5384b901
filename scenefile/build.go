package scenefile

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	_ "image/jpeg" // decoder for image artists
	_ "image/png"  // decoder for image artists
	"os"
	"path/filepath"
	"slices"
	"strconv"
	"strings"

	"github.com/gogpu/gg"
	"github.com/gogpu/gg/text"

	"github.com/gogpu/ggview"
)

const (
	defaultFontSize     = 12
	defaultGradientSize = 64
)

// Build creates the figure described by sc. It returns the figure and its
// surfaces by name, insets included. Unresolved names, unreadable files
// and rejected links are collected and returned together; no figure is
// returned in that case.
func (sc *Scene) Build(opts ...ggview.FigureOption) (*ggview.Figure, map[string]*ggview.Surface, error) {
	if err := sc.Validate(); err != nil {
		return nil, nil, err
	}
	b := &builder{scene: sc, fonts: make(map[string]*text.FontSource)}
	fig, surfaces := b.build(opts)
	if err := errors.Join(b.errs...); err != nil {
		return nil, nil, err
	}
	ggview.Logger().Debug("scenefile: scene built",
		"surfaces", len(surfaces), "views", len(sc.Views), "insets", len(sc.Insets))
	return fig, surfaces, nil
}

type builder struct {
	scene *Scene
	fonts map[string]*text.FontSource
	errs  []error
}

func (b *builder) fail(err error, format string, args ...any) {
	b.errs = append(b.errs, fmt.Errorf(format+": %w", append(args, err)...))
}

func (b *builder) build(opts []ggview.FigureOption) (*ggview.Figure, map[string]*ggview.Surface) {
	sc := b.scene
	var figOpts []ggview.FigureOption
	if bg, err := parseColor(sc.Background, color.White); err != nil {
		b.fail(err, "figure background")
	} else {
		figOpts = append(figOpts, ggview.WithFigureBackground(bg))
	}
	if sc.RenderDepth != nil {
		figOpts = append(figOpts, ggview.WithDefaultRenderDepth(*sc.RenderDepth))
	}
	fig := ggview.NewFigure(sc.Width, sc.Height, append(figOpts, opts...)...)

	surfaces := make(map[string]*ggview.Surface)
	b.addSurfaces(fig, surfaces)
	for _, in := range sc.Insets {
		b.addInset(in, surfaces)
	}
	for _, v := range sc.Views {
		b.addView(v, surfaces)
	}
	return fig, surfaces
}

// addSurfaces creates the surfaces parents first, whatever their order in
// the file.
func (b *builder) addSurfaces(fig *ggview.Figure, out map[string]*ggview.Surface) {
	pending := slices.Clone(b.scene.Surfaces)
	for len(pending) > 0 {
		var next []Surface
		for _, s := range pending {
			if s.Parent == "" {
				out[s.Name] = fig.AddSurface(rectOf(s.Rect, ggview.Rect{}), b.surfaceOptions(s)...)
				continue
			}
			parent, ok := out[s.Parent]
			if !ok {
				next = append(next, s)
				continue
			}
			child, err := parent.AddSurface(rectOf(s.Rect, parent.Rect()), b.surfaceOptions(s)...)
			if err != nil {
				b.fail(err, "surface %q", s.Name)
				continue
			}
			out[s.Name] = child
		}
		if len(next) == len(pending) {
			for _, s := range next {
				b.fail(fmt.Errorf("%w: unknown parent %q", ErrInvalidScene, s.Parent), "surface %q", s.Name)
			}
			return
		}
		pending = next
	}
}

// rectOf converts [x, y, w, h] to a rectangle offset by the top-left
// corner of parent.
func rectOf(v []float64, parent ggview.Rect) ggview.Rect {
	return ggview.RectXYWH(parent.Min.X+v[0], parent.Min.Y+v[1], v[2], v[3])
}

func (b *builder) surfaceOptions(s Surface) []ggview.SurfaceOption {
	opts := []ggview.SurfaceOption{ggview.WithName(s.Name), ggview.WithZOrder(s.ZOrder)}
	if s.XLim != nil {
		opts = append(opts, ggview.WithXLim(s.XLim[0], s.XLim[1]))
	}
	if s.YLim != nil {
		opts = append(opts, ggview.WithYLim(s.YLim[0], s.YLim[1]))
	}

	aspect, adj, err := parseAspect(s.Aspect, s.Adjustable)
	if err != nil {
		b.fail(err, "surface %q", s.Name)
	}
	opts = append(opts, ggview.WithAspect(aspect, adj))

	if bg, err := parseColor(s.Background, color.White); err != nil {
		b.fail(err, "surface %q background", s.Name)
	} else {
		opts = append(opts, ggview.WithBackground(bg))
	}

	frame, err := parseColor(s.Frame, color.Black)
	switch {
	case err != nil:
		b.fail(err, "surface %q frame", s.Name)
	case frame == nil:
		opts = append(opts, ggview.WithoutFrame())
	default:
		width := s.FrameWidth
		if width <= 0 {
			width = 1
		}
		opts = append(opts, ggview.WithFrame(frame, width))
	}

	var artists []ggview.Artist
	for i, desc := range s.Artists {
		a, err := b.artist(desc)
		if err != nil {
			b.fail(err, "surface %q artist %d", s.Name, i)
			continue
		}
		artists = append(artists, a)
	}
	return append(opts, ggview.WithArtists(artists...))
}

func parseAspect(aspect, adjustable string) (ggview.Aspect, ggview.Adjustable, error) {
	var adj ggview.Adjustable
	switch strings.ToLower(adjustable) {
	case "", "datalim":
		adj = ggview.AdjustDataLimits
	case "box":
		adj = ggview.AdjustBox
	default:
		return 0, 0, fmt.Errorf("%w: adjustable %q", ErrInvalidScene, adjustable)
	}

	switch strings.ToLower(aspect) {
	case "", "auto":
		return ggview.AspectAuto, adj, nil
	case "equal":
		return ggview.AspectEqual, adj, nil
	}
	v, err := strconv.ParseFloat(aspect, 64)
	if err != nil || v <= 0 {
		return 0, 0, fmt.Errorf("%w: aspect %q", ErrInvalidScene, aspect)
	}
	return ggview.Aspect(v), adj, nil
}

func points(v [][]float64) []gg.Point {
	pts := make([]gg.Point, len(v))
	for i, p := range v {
		pts[i] = gg.Pt(p[0], p[1])
	}
	return pts
}

func (b *builder) artist(desc Artist) (ggview.Artist, error) {
	fill, err := parseColor(desc.Fill, nil)
	if err != nil {
		return nil, err
	}
	stroke, err := parseColor(desc.Color, nil)
	if err != nil {
		return nil, err
	}

	var pa *ggview.PathArtist
	switch desc.Type {
	case "line":
		if stroke == nil {
			stroke = color.Black
		}
		pa = ggview.NewLine(stroke, 0, points(desc.Points)...)
	case "polygon":
		pa = ggview.NewPolygon(fill, points(desc.Points)...)
	case "rectangle":
		pa = ggview.NewRectangle(fill, desc.XY[0], desc.XY[1], desc.Size[0], desc.Size[1])
	case "circle":
		pa = ggview.NewCircle(fill, desc.XY[0], desc.XY[1], desc.Radius)
	case "text":
		return b.text(desc, stroke)
	case "image":
		return b.image(desc)
	default:
		return nil, fmt.Errorf("%w: unknown artist type %q", ErrInvalidScene, desc.Type)
	}

	pa.Label = desc.Label
	pa.Style.Stroke = stroke
	pa.Style.LineWidth = desc.Width
	if stroke != nil && desc.Width <= 0 {
		pa.Style.LineWidth = 1
	}
	pa.Style.Dash = desc.Dash
	return pa, nil
}

func (b *builder) text(desc Artist, col color.Color) (ggview.Artist, error) {
	if desc.Font == "" {
		return nil, fmt.Errorf("%w: text %q needs a font file", ErrInvalidScene, desc.Text)
	}
	path := b.resolve(desc.Font)
	src, ok := b.fonts[path]
	if !ok {
		var err error
		src, err = text.NewFontSourceFromFile(path)
		if err != nil {
			return nil, fmt.Errorf("load font: %w", err)
		}
		b.fonts[path] = src
	}
	size := desc.FontSize
	if size <= 0 {
		size = defaultFontSize
	}
	if col == nil {
		col = color.Black
	}
	t := ggview.NewText(desc.Text, gg.Pt(desc.XY[0], desc.XY[1]), src.Face(size), col)
	t.Label = desc.Label
	return t, nil
}

func (b *builder) image(desc Artist) (ggview.Artist, error) {
	var img image.Image
	if desc.File != "" {
		f, err := os.Open(b.resolve(desc.File))
		if err != nil {
			return nil, fmt.Errorf("open image: %w", err)
		}
		defer f.Close()
		img, _, err = image.Decode(f)
		if err != nil {
			return nil, fmt.Errorf("decode image %s: %w", desc.File, err)
		}
	} else {
		from, err := parseColor(desc.Gradient[0], color.Black)
		if err != nil {
			return nil, err
		}
		to, err := parseColor(desc.Gradient[1], color.White)
		if err != nil {
			return nil, err
		}
		w, h := defaultGradientSize, defaultGradientSize
		if len(desc.Pixels) == 2 && desc.Pixels[0] > 0 && desc.Pixels[1] > 0 {
			w, h = desc.Pixels[0], desc.Pixels[1]
		}
		img = gradient(w, h, from, to)
	}

	interp, err := ggview.ParseInterpolation(desc.Interpolation)
	if err != nil {
		return nil, err
	}
	a := ggview.NewImageArtist(img,
		ggview.Range{Min: desc.Extent[0], Max: desc.Extent[1]},
		ggview.Range{Min: desc.Extent[2], Max: desc.Extent[3]})
	a.Interpolation = interp
	a.Opacity = desc.Opacity
	a.Label = desc.Label
	return a, nil
}

// gradient returns a w x h image blending from the top-left colour to the
// bottom-right one.
func gradient(w, h int, from, to color.Color) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	a, z := gg.FromColor(from), gg.FromColor(to)
	span := float64(max(w+h-2, 1))
	for y := range h {
		for x := range w {
			img.Set(x, y, a.Lerp(z, float64(x+y)/span).Color())
		}
	}
	return img
}

func (b *builder) resolve(path string) string {
	if filepath.IsAbs(path) || b.scene.Dir == "" {
		return path
	}
	return filepath.Join(b.scene.Dir, path)
}

func (b *builder) addView(v View, surfaces map[string]*ggview.Surface) {
	view, ok := surfaces[v.View]
	if !ok {
		b.fail(ggview.ErrInvalidLink, "view %q: unknown surface", v.View)
		return
	}
	base, ok := surfaces[v.Base]
	if !ok {
		b.fail(ggview.ErrInvalidLink, "view %q: unknown base %q", v.View, v.Base)
		return
	}
	opts, err := viewOptions(v.Depth, v.Interpolation, v.ScaleLines, v.InheritAspect, v.Labels)
	if err != nil {
		b.fail(err, "view %q", v.View)
		return
	}
	if v.View == v.Base {
		opts = append(opts, ggview.WithSelfView())
	}
	if _, err := ggview.View(view, base, opts...); err != nil {
		b.fail(err, "view %q of %q", v.View, v.Base)
	}
}

func viewOptions(depth *int, interp string, scaleLines *bool, inherit bool, labels []string) ([]ggview.ViewOption, error) {
	var opts []ggview.ViewOption
	if depth != nil {
		opts = append(opts, ggview.WithRenderDepth(*depth))
	}
	if interp != "" {
		i, err := ggview.ParseInterpolation(interp)
		if err != nil {
			return nil, err
		}
		opts = append(opts, ggview.WithInterpolation(i))
	}
	if scaleLines != nil {
		opts = append(opts, ggview.WithLineScaling(*scaleLines))
	}
	if inherit {
		opts = append(opts, ggview.WithInheritAspect())
	}
	if len(labels) > 0 {
		opts = append(opts, ggview.WithFilter(func(a ggview.Artist) bool {
			return slices.Contains(labels, ggview.ArtistLabel(a))
		}))
	}
	return opts, nil
}

func (b *builder) addInset(in Inset, surfaces map[string]*ggview.Surface) {
	parent, ok := surfaces[in.Parent]
	if !ok {
		b.fail(ggview.ErrInvalidLink, "inset %q: unknown parent %q", in.Name, in.Parent)
		return
	}
	vopts, err := viewOptions(nil, in.Interpolation, nil, false, nil)
	if err != nil {
		b.fail(err, "inset %q", in.Name)
		return
	}

	opts := []ggview.InsetOption{ggview.InsetViewOptions(vopts...)}
	if in.Depth != nil {
		opts = append(opts, ggview.InsetRenderDepth(*in.Depth))
	}
	if in.DataCoords {
		opts = append(opts, ggview.InsetDataCoords())
	}
	var sopts []ggview.SurfaceOption
	if in.Name != "" {
		sopts = append(sopts, ggview.WithName(in.Name))
	}
	if in.XLim != nil {
		sopts = append(sopts, ggview.WithXLim(in.XLim[0], in.XLim[1]))
	}
	if in.YLim != nil {
		sopts = append(sopts, ggview.WithYLim(in.YLim[0], in.YLim[1]))
	}
	if in.Background != "" {
		bg, err := parseColor(in.Background, nil)
		if err != nil {
			b.fail(err, "inset %q", in.Name)
			return
		}
		sopts = append(sopts, ggview.WithBackground(bg))
	}
	opts = append(opts, ggview.InsetSurfaceOptions(sopts...))

	inset, err := ggview.InsetZoom(parent, ggview.Bounds{X: in.Bounds[0], Y: in.Bounds[1], W: in.Bounds[2], H: in.Bounds[3]}, opts...)
	if err != nil {
		b.fail(err, "inset %q", in.Name)
		return
	}
	if in.Name != "" {
		surfaces[in.Name] = inset
	}
}
