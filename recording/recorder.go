package recording

import (
	"image"

	"github.com/gogpu/gg"
	"github.com/gogpu/ggview"
)

func init() {
	ggview.RegisterRenderer("recording", func(width, height int) ggview.Renderer {
		return NewRecorder(width, height)
	})
}

// Recorder is a ggview.Renderer that records draw calls as commands.
// Paths are stored in device space and styles are deep-copied, so later
// changes to the caller's values do not alter the recording.
//
// The Recorder is not safe for concurrent use.
type Recorder struct {
	width, height int
	commands      []Command
}

var _ ggview.Renderer = (*Recorder)(nil)

// NewRecorder creates a Recorder for a width x height target.
func NewRecorder(width, height int) *Recorder {
	return &Recorder{
		width:    width,
		height:   height,
		commands: make([]Command, 0, 256),
	}
}

// Bounds implements ggview.Renderer.
func (r *Recorder) Bounds() ggview.Rect {
	return ggview.RectXYWH(0, 0, float64(r.width), float64(r.height))
}

// DrawPath implements ggview.Renderer.
func (r *Recorder) DrawPath(path *gg.Path, m gg.Matrix, style ggview.Style) {
	if path == nil {
		return
	}
	r.commands = append(r.commands, DrawPathCommand{
		Path:  path.Transform(m),
		Style: style.Clone(),
	})
}

// DrawImage implements ggview.Renderer.
func (r *Recorder) DrawImage(img image.Image, dst ggview.Rect, style ggview.ImageStyle) {
	if img == nil {
		return
	}
	if style.Clip != nil {
		c := *style.Clip
		style.Clip = &c
	}
	r.commands = append(r.commands, DrawImageCommand{Image: img, Dst: dst, Style: style})
}

// DrawText implements ggview.Renderer.
func (r *Recorder) DrawText(s string, at gg.Point, style ggview.TextStyle) {
	if style.Clip != nil {
		c := *style.Clip
		style.Clip = &c
	}
	r.commands = append(r.commands, DrawTextCommand{Text: s, At: at, Style: style})
}

// Len returns the number of recorded commands.
func (r *Recorder) Len() int { return len(r.commands) }

// Commands returns a copy of the recorded commands in call order.
func (r *Recorder) Commands() []Command {
	out := make([]Command, len(r.commands))
	copy(out, r.commands)
	return out
}

// CountByType returns how many commands of each type were recorded.
func (r *Recorder) CountByType() map[CommandType]int {
	counts := make(map[CommandType]int)
	for _, c := range r.commands {
		counts[c.Type()]++
	}
	return counts
}

// Extent returns the union of the bounds of all recorded commands, or
// the zero Rect when nothing was recorded.
func (r *Recorder) Extent() ggview.Rect {
	var out ggview.Rect
	for i, c := range r.commands {
		if i == 0 {
			out = c.Bounds()
			continue
		}
		out = out.Union(c.Bounds())
	}
	return out
}

// Reset discards all recorded commands.
func (r *Recorder) Reset() {
	clear(r.commands)
	r.commands = r.commands[:0]
}

// Finish returns an immutable Recording of the commands so far. The
// Recorder can keep recording; later commands do not appear in the
// returned Recording.
func (r *Recorder) Finish() *Recording {
	return &Recording{
		width:    r.width,
		height:   r.height,
		commands: r.Commands(),
	}
}

// Recording is an immutable list of recorded commands.
type Recording struct {
	width, height int
	commands      []Command
}

// Size returns the target size the recording was made for.
func (rec *Recording) Size() (width, height int) { return rec.width, rec.height }

// Commands returns a copy of the commands.
func (rec *Recording) Commands() []Command {
	out := make([]Command, len(rec.commands))
	copy(out, rec.commands)
	return out
}

// Playback replays the recording to r.
func (rec *Recording) Playback(r ggview.Renderer) {
	for _, c := range rec.commands {
		switch c := c.(type) {
		case DrawPathCommand:
			r.DrawPath(c.Path, gg.Identity(), c.Style)
		case DrawImageCommand:
			r.DrawImage(c.Image, c.Dst, c.Style)
		case DrawTextCommand:
			r.DrawText(c.Text, c.At, c.Style)
		}
	}
}
