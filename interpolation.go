package ggview

import (
	"fmt"
	"strings"

	xdraw "golang.org/x/image/draw"
)

// Interpolation selects the resampling filter used when an image is drawn
// at a scale other than 1:1, in particular when a view zooms into a base
// that holds images.
type Interpolation uint8

const (
	// Nearest picks the closest source pixel. Zoomed images stay blocky,
	// which is usually what a zoom inset wants to show.
	Nearest Interpolation = iota
	// Bilinear interpolates between the four nearest pixels.
	Bilinear
	// ApproxBilinear is a faster approximation of Bilinear.
	ApproxBilinear
	// Bicubic uses a Catmull-Rom kernel.
	Bicubic
)

var interpolationNames = [...]string{
	Nearest:        "nearest",
	Bilinear:       "bilinear",
	ApproxBilinear: "antialiased",
	Bicubic:        "bicubic",
}

// String returns the canonical name of the interpolation.
func (i Interpolation) String() string {
	if int(i) < len(interpolationNames) {
		return interpolationNames[i]
	}
	return fmt.Sprintf("Interpolation(%d)", uint8(i))
}

// ParseInterpolation maps a case-insensitive name to an Interpolation.
// Accepted names: nearest, none, bilinear, antialiased, bicubic, catrom.
func ParseInterpolation(name string) (Interpolation, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "nearest", "none", "":
		return Nearest, nil
	case "bilinear":
		return Bilinear, nil
	case "antialiased", "approx-bilinear":
		return ApproxBilinear, nil
	case "bicubic", "catrom":
		return Bicubic, nil
	}
	return Nearest, fmt.Errorf("%w: %q", ErrInvalidInterpolation, name)
}

// interpolator returns the x/image/draw kernel for i.
func (i Interpolation) interpolator() xdraw.Interpolator {
	switch i {
	case Bilinear:
		return xdraw.BiLinear
	case ApproxBilinear:
		return xdraw.ApproxBiLinear
	case Bicubic:
		return xdraw.CatmullRom
	default:
		return xdraw.NearestNeighbor
	}
}
