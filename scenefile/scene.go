package scenefile

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

var (
	// ErrUnknownFormat is returned for files that are neither YAML nor TOML.
	ErrUnknownFormat = errors.New("scenefile: unknown format")

	// ErrInvalidScene wraps every structural problem found in a scene.
	ErrInvalidScene = errors.New("scenefile: invalid scene")
)

// Format is the encoding of a scene file.
type Format int

const (
	FormatYAML Format = iota + 1
	FormatTOML
)

// String returns the lower-case format name.
func (f Format) String() string {
	switch f {
	case FormatYAML:
		return "yaml"
	case FormatTOML:
		return "toml"
	default:
		return fmt.Sprintf("Format(%d)", int(f))
	}
}

// FormatOf guesses the format from the file extension.
func FormatOf(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".toml":
		return FormatTOML, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownFormat, path)
}

// Scene describes a figure: its surfaces with their artists, the views
// between them and the zoom insets.
type Scene struct {
	Width       int    `yaml:"width" toml:"width"`
	Height      int    `yaml:"height" toml:"height"`
	Background  string `yaml:"background,omitempty" toml:"background,omitempty"`
	RenderDepth *int   `yaml:"render_depth,omitempty" toml:"render_depth,omitempty"`

	Surfaces []Surface `yaml:"surfaces" toml:"surfaces"`
	Views    []View    `yaml:"views,omitempty" toml:"views,omitempty"`
	Insets   []Inset   `yaml:"insets,omitempty" toml:"insets,omitempty"`

	// Dir resolves relative font and image paths. Load sets it to the
	// directory of the scene file.
	Dir string `yaml:"-" toml:"-"`
}

// Surface is a rectangular region with data limits and artists. Rect is
// x, y, width, height in figure pixels, or relative to the parent surface
// when Parent is set.
type Surface struct {
	Name       string    `yaml:"name" toml:"name"`
	Parent     string    `yaml:"parent,omitempty" toml:"parent,omitempty"`
	Rect       []float64 `yaml:"rect" toml:"rect"`
	XLim       []float64 `yaml:"xlim,omitempty" toml:"xlim,omitempty"`
	YLim       []float64 `yaml:"ylim,omitempty" toml:"ylim,omitempty"`
	Aspect     string    `yaml:"aspect,omitempty" toml:"aspect,omitempty"`
	Adjustable string    `yaml:"adjustable,omitempty" toml:"adjustable,omitempty"`
	Background string    `yaml:"background,omitempty" toml:"background,omitempty"`
	Frame      string    `yaml:"frame,omitempty" toml:"frame,omitempty"`
	FrameWidth float64   `yaml:"frame_width,omitempty" toml:"frame_width,omitempty"`
	ZOrder     float64   `yaml:"zorder,omitempty" toml:"zorder,omitempty"`
	Artists    []Artist  `yaml:"artists,omitempty" toml:"artists,omitempty"`
}

// Artist describes one primitive. Type selects which fields apply:
//
//	line       points, color, width, dash
//	polygon    points, fill, color, width
//	rectangle  xy, size, fill, color, width
//	circle     xy, radius, fill, color, width
//	text       xy, text, font, font_size, color
//	image      extent, file or gradient, interpolation, opacity
type Artist struct {
	Type  string `yaml:"type" toml:"type"`
	Label string `yaml:"label,omitempty" toml:"label,omitempty"`

	Points [][]float64 `yaml:"points,omitempty" toml:"points,omitempty"`
	XY     []float64   `yaml:"xy,omitempty" toml:"xy,omitempty"`
	Size   []float64   `yaml:"size,omitempty" toml:"size,omitempty"`
	Radius float64     `yaml:"radius,omitempty" toml:"radius,omitempty"`

	Color string    `yaml:"color,omitempty" toml:"color,omitempty"`
	Fill  string    `yaml:"fill,omitempty" toml:"fill,omitempty"`
	Width float64   `yaml:"width,omitempty" toml:"width,omitempty"`
	Dash  []float64 `yaml:"dash,omitempty" toml:"dash,omitempty"`

	Text     string  `yaml:"text,omitempty" toml:"text,omitempty"`
	Font     string  `yaml:"font,omitempty" toml:"font,omitempty"`
	FontSize float64 `yaml:"font_size,omitempty" toml:"font_size,omitempty"`

	// Extent is xmin, xmax, ymin, ymax in data units.
	Extent        []float64 `yaml:"extent,omitempty" toml:"extent,omitempty"`
	File          string    `yaml:"file,omitempty" toml:"file,omitempty"`
	Gradient      []string  `yaml:"gradient,omitempty" toml:"gradient,omitempty"`
	Pixels        []int     `yaml:"pixels,omitempty" toml:"pixels,omitempty"`
	Interpolation string    `yaml:"interpolation,omitempty" toml:"interpolation,omitempty"`
	Opacity       float64   `yaml:"opacity,omitempty" toml:"opacity,omitempty"`
}

// View links View to Base so that View shows Base's content.
type View struct {
	View          string   `yaml:"view" toml:"view"`
	Base          string   `yaml:"base" toml:"base"`
	Depth         *int     `yaml:"depth,omitempty" toml:"depth,omitempty"`
	Interpolation string   `yaml:"interpolation,omitempty" toml:"interpolation,omitempty"`
	ScaleLines    *bool    `yaml:"scale_lines,omitempty" toml:"scale_lines,omitempty"`
	InheritAspect bool     `yaml:"inherit_aspect,omitempty" toml:"inherit_aspect,omitempty"`
	Labels        []string `yaml:"labels,omitempty" toml:"labels,omitempty"`
}

// Inset is a zoom inset on Parent. Bounds is x, y, width, height as
// fractions of the parent, or data coordinates when DataCoords is set.
type Inset struct {
	Name          string    `yaml:"name" toml:"name"`
	Parent        string    `yaml:"parent" toml:"parent"`
	Bounds        []float64 `yaml:"bounds" toml:"bounds"`
	DataCoords    bool      `yaml:"data_coords,omitempty" toml:"data_coords,omitempty"`
	XLim          []float64 `yaml:"xlim,omitempty" toml:"xlim,omitempty"`
	YLim          []float64 `yaml:"ylim,omitempty" toml:"ylim,omitempty"`
	Depth         *int      `yaml:"depth,omitempty" toml:"depth,omitempty"`
	Interpolation string    `yaml:"interpolation,omitempty" toml:"interpolation,omitempty"`
	Background    string    `yaml:"background,omitempty" toml:"background,omitempty"`
}

// Load reads and validates a scene file. The format follows the file
// extension.
func Load(path string) (*Scene, error) {
	format, err := FormatOf(path)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("scenefile: read scene: %w", err)
	}
	sc, err := Parse(data, format)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	sc.Dir = filepath.Dir(path)
	return sc, nil
}

// Parse decodes and validates a scene. Unknown keys are rejected.
func Parse(data []byte, format Format) (*Scene, error) {
	var sc Scene
	switch format {
	case FormatYAML:
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(&sc); err != nil && !errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("scenefile: decode yaml: %w", err)
		}
	case FormatTOML:
		md, err := toml.Decode(string(data), &sc)
		if err != nil {
			return nil, fmt.Errorf("scenefile: decode toml: %w", err)
		}
		if undecoded := md.Undecoded(); len(undecoded) > 0 {
			keys := make([]string, len(undecoded))
			for i, k := range undecoded {
				keys[i] = k.String()
			}
			return nil, fmt.Errorf("scenefile: decode toml: unknown keys %s", strings.Join(keys, ", "))
		}
	default:
		return nil, fmt.Errorf("%w: %v", ErrUnknownFormat, format)
	}

	if err := sc.Validate(); err != nil {
		return nil, err
	}
	return &sc, nil
}

// Validate checks the shape of the scene without resolving names or
// files. All problems are reported together.
func (sc *Scene) Validate() error {
	var errs []error
	fail := func(format string, args ...any) {
		errs = append(errs, fmt.Errorf("%w: "+format, append([]any{ErrInvalidScene}, args...)...))
	}

	if sc.Width <= 0 || sc.Height <= 0 {
		fail("figure size %dx%d", sc.Width, sc.Height)
	}
	names := make(map[string]bool)
	for i, s := range sc.Surfaces {
		switch {
		case s.Name == "":
			fail("surface %d has no name", i)
		case names[s.Name]:
			fail("duplicate surface %q", s.Name)
		}
		names[s.Name] = true
		if len(s.Rect) != 4 || s.Rect[2] <= 0 || s.Rect[3] <= 0 {
			fail("surface %q: rect must be [x, y, width, height] with a positive size", s.Name)
		}
		if !pair(s.XLim) || !pair(s.YLim) {
			fail("surface %q: limits must have two values", s.Name)
		}
		for j, a := range s.Artists {
			if err := a.validate(); err != nil {
				fail("surface %q artist %d: %v", s.Name, j, err)
			}
		}
	}
	for _, in := range sc.Insets {
		if in.Name != "" && names[in.Name] {
			fail("duplicate surface %q", in.Name)
		}
		names[in.Name] = in.Name != ""
		if len(in.Bounds) != 4 {
			fail("inset %q: bounds must be [x, y, width, height]", in.Name)
		}
		if !pair(in.XLim) || !pair(in.YLim) {
			fail("inset %q: limits must have two values", in.Name)
		}
	}
	for i, v := range sc.Views {
		if v.View == "" || v.Base == "" {
			fail("view %d needs both view and base", i)
		}
	}
	return errors.Join(errs...)
}

func pair(v []float64) bool { return v == nil || len(v) == 2 }

func (a *Artist) validate() error {
	switch a.Type {
	case "line", "polygon":
		if len(a.Points) < 2 {
			return fmt.Errorf("%s needs at least two points", a.Type)
		}
		for _, p := range a.Points {
			if len(p) != 2 {
				return fmt.Errorf("%s point %v is not [x, y]", a.Type, p)
			}
		}
	case "rectangle":
		if len(a.XY) != 2 || len(a.Size) != 2 {
			return errors.New("rectangle needs xy and size")
		}
	case "circle":
		if len(a.XY) != 2 || a.Radius <= 0 {
			return errors.New("circle needs xy and a positive radius")
		}
	case "text":
		if len(a.XY) != 2 || a.Text == "" {
			return errors.New("text needs xy and text")
		}
	case "image":
		if len(a.Extent) != 4 {
			return errors.New("image needs extent [xmin, xmax, ymin, ymax]")
		}
		if (a.File == "") == (len(a.Gradient) == 0) {
			return errors.New("image needs exactly one of file or gradient")
		}
		if len(a.Gradient) > 0 && len(a.Gradient) != 2 {
			return errors.New("gradient needs two colours")
		}
	default:
		return fmt.Errorf("unknown artist type %q", a.Type)
	}
	return nil
}
