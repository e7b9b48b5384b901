package scenefile

import (
	"fmt"
	"image/color"
	"strings"

	"github.com/gogpu/gg"
)

var namedColors = map[string]gg.RGBA{
	"black":       gg.Black,
	"white":       gg.White,
	"red":         gg.Red,
	"green":       gg.Green,
	"blue":        gg.Blue,
	"yellow":      gg.Yellow,
	"cyan":        gg.Cyan,
	"magenta":     gg.Magenta,
	"transparent": gg.Transparent,
}

// parseColor accepts a colour name, "#rgb", "#rgba", "#rrggbb" or
// "#rrggbbaa". An empty string yields def and "none" yields nil.
func parseColor(s string, def color.Color) (color.Color, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	switch s {
	case "":
		return def, nil
	case "none":
		return nil, nil
	}
	if c, ok := namedColors[s]; ok {
		return c.Color(), nil
	}
	hex, ok := strings.CutPrefix(s, "#")
	if !ok || !validHex(hex) {
		return nil, fmt.Errorf("%w: bad colour %q", ErrInvalidScene, s)
	}
	return gg.Hex(hex).Color(), nil
}

func validHex(s string) bool {
	switch len(s) {
	case 3, 4, 6, 8:
	default:
		return false
	}
	for _, c := range s {
		if !strings.ContainsRune("0123456789abcdef", c) {
			return false
		}
	}
	return true
}
