package recording

import (
	"image"

	"github.com/gogpu/gg"
	"github.com/gogpu/gg/text"
	"github.com/gogpu/ggview"
)

// CommandType identifies the type of a command.
type CommandType uint8

const (
	CmdDrawPath  CommandType = iota // Fill and/or stroke a path
	CmdDrawImage                    // Draw an image into a rectangle
	CmdDrawText                     // Draw a string
)

// commandTypeNames maps CommandType values to their string representation.
var commandTypeNames = [...]string{
	CmdDrawPath:  "DrawPath",
	CmdDrawImage: "DrawImage",
	CmdDrawText:  "DrawText",
}

// String returns the name of the command type.
func (c CommandType) String() string {
	if int(c) < len(commandTypeNames) {
		return commandTypeNames[c]
	}
	return "Unknown"
}

// Command is a recorded draw call.
type Command interface {
	// Type returns the command type.
	Type() CommandType

	// Bounds returns the device-space area the command may touch, before
	// clipping.
	Bounds() ggview.Rect
}

// DrawPathCommand is a recorded DrawPath call. Path is in device space:
// the matrix passed to DrawPath has already been applied.
type DrawPathCommand struct {
	Path  *gg.Path
	Style ggview.Style
}

// Type implements Command.
func (DrawPathCommand) Type() CommandType { return CmdDrawPath }

// Bounds implements Command. Stroked paths are padded by half the line
// width.
func (c DrawPathCommand) Bounds() ggview.Rect {
	b, ok := ggview.PathBounds(c.Path, gg.Identity())
	if !ok {
		return ggview.Rect{}
	}
	if c.Style.Stroke != nil && c.Style.LineWidth > 0 {
		pad := c.Style.LineWidth / 2
		b = ggview.R(b.Min.X-pad, b.Min.Y-pad, b.Max.X+pad, b.Max.Y+pad)
	}
	return b
}

// Fills reports whether the command fills its path.
func (c DrawPathCommand) Fills() bool { return c.Style.Fill != nil }

// Strokes reports whether the command strokes its path.
func (c DrawPathCommand) Strokes() bool { return c.Style.Stroke != nil && c.Style.LineWidth > 0 }

// DrawImageCommand is a recorded DrawImage call.
type DrawImageCommand struct {
	Image image.Image
	Dst   ggview.Rect
	Style ggview.ImageStyle
}

// Type implements Command.
func (DrawImageCommand) Type() CommandType { return CmdDrawImage }

// Bounds implements Command.
func (c DrawImageCommand) Bounds() ggview.Rect { return c.Dst }

// DrawTextCommand is a recorded DrawText call.
type DrawTextCommand struct {
	Text  string
	At    gg.Point
	Style ggview.TextStyle
}

// Type implements Command.
func (DrawTextCommand) Type() CommandType { return CmdDrawText }

// Bounds implements Command. Without a face only the anchor point is
// known.
func (c DrawTextCommand) Bounds() ggview.Rect {
	if c.Style.Face == nil {
		return ggview.R(c.At.X, c.At.Y, c.At.X, c.At.Y)
	}
	w, h := text.Measure(c.Text, c.Style.Face)
	x := c.At.X - w*c.Style.AnchorX
	y := c.At.Y + h*c.Style.AnchorY
	return ggview.R(x, y-h, x+w, y)
}

// Compile-time interface checks.
var (
	_ Command = DrawPathCommand{}
	_ Command = DrawImageCommand{}
	_ Command = DrawTextCommand{}
)
