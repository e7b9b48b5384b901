// Package recording captures ggview draw calls as typed commands.
//
// A Recorder is a ggview.Renderer that stores every call instead of
// rasterizing it. Recorded commands are plain structs in device space,
// which makes them easy to inspect: tests assert on them, and the ggview
// CLI prints summaries of them. A finished Recording can be played back
// to any other renderer.
//
// # Basic Usage
//
//	rec := recording.NewRecorder(800, 600)
//	stats := fig.Render(rec)
//
//	for _, cmd := range rec.Commands() {
//	    fmt.Println(cmd.Type(), cmd.Bounds())
//	}
//
//	// Rasterize later
//	canvas := ggview.NewCanvasRenderer(800, 600)
//	rec.Finish().Playback(canvas)
//
// # Registration
//
// Importing the package registers the renderer under the name
// "recording", following the database/sql driver pattern:
//
//	import _ "github.com/gogpu/ggview/recording"
//
//	r, err := ggview.NewRenderer("recording", 800, 600)
package recording
