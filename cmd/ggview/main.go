// Command ggview renders figures whose surfaces show each other's content.
package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/charmbracelet/fang"
	"github.com/lmittmann/tint"
	"github.com/spf13/cobra"

	"github.com/gogpu/ggview"
	"github.com/gogpu/ggview/recording"
	"github.com/gogpu/ggview/scenefile"
)

var version = "v0.1.0"

type options struct {
	Output  string
	Backend string
	Debug   bool
	Depth   int
}

func main() {
	if err := fang.Execute(context.Background(), rootCmd(),
		fang.WithVersion(version),
		fang.WithErrorHandler(func(w io.Writer, _ fang.Styles, err error) {
			_, _ = fmt.Fprintln(w, err.Error())
		}),
	); err != nil {
		os.Exit(1)
	}
}

func rootCmd() *cobra.Command {
	var opts options
	root := &cobra.Command{
		Use:   "ggview",
		Short: "Render figures with live views and zoom insets",
		Example: `  # Render a scene file
  ggview render scene.yaml -o scene.png

  # Render the recursive inset demo four levels deep
  ggview demo fractal --depth 4 -o fractal.png`,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, _ []string) {
			setupLogging(cmd.ErrOrStderr(), opts.Debug)
		},
	}
	root.PersistentFlags().BoolVarP(&opts.Debug, "debug", "d", false, "enable debug logging")

	root.AddCommand(renderCmd(&opts), demoCmd(&opts), backendsCmd())
	return root
}

// setupLogging routes ggview's logs to w. Info is the default level.
func setupLogging(w io.Writer, debug bool) {
	level := slog.LevelInfo
	if debug {
		level = slog.LevelDebug
	}
	ggview.SetLogger(slog.New(tint.NewHandler(w, &tint.Options{
		Level:      level,
		TimeFormat: time.Kitchen,
	})))
}

func renderCmd(opts *options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "render SCENE",
		Short: "Render a YAML or TOML scene file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			sc, err := scenefile.Load(args[0])
			if err != nil {
				return err
			}
			fig, _, err := sc.Build()
			if err != nil {
				return fmt.Errorf("build %s: %w", args[0], err)
			}
			return output(cmd.OutOrStdout(), fig, *opts)
		},
	}
	addOutputFlags(cmd, opts)
	return cmd
}

func demoCmd(opts *options) *cobra.Command {
	cmd := &cobra.Command{
		Use:       "demo inset|fractal|mirror",
		Short:     "Render a built-in demo figure",
		Args:      cobra.ExactArgs(1),
		ValidArgs: demoNames(),
		RunE: func(cmd *cobra.Command, args []string) error {
			build, ok := demos[args[0]]
			if !ok {
				return fmt.Errorf("unknown demo %q (want one of %v)", args[0], demoNames())
			}
			fig, err := build(opts.Depth)
			if err != nil {
				return fmt.Errorf("demo %s: %w", args[0], err)
			}
			return output(cmd.OutOrStdout(), fig, *opts)
		},
	}
	addOutputFlags(cmd, opts)
	cmd.Flags().IntVar(&opts.Depth, "depth", ggview.DefaultRenderDepth, "render depth of the demo's views (-1 for unlimited)")
	return cmd
}

func backendsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "backends",
		Short: "List the available renderers",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			for _, name := range ggview.Renderers() {
				if _, err := fmt.Fprintln(cmd.OutOrStdout(), name); err != nil {
					return err
				}
			}
			return nil
		},
	}
}

func addOutputFlags(cmd *cobra.Command, opts *options) {
	cmd.Flags().StringVarP(&opts.Output, "output", "o", "out.png", "output file")
	cmd.Flags().StringVar(&opts.Backend, "backend", "raster", "renderer to draw with")
}

// output renders fig with the selected backend. Raster output is written
// as PNG; a recording is summarised on stdout.
func output(stdout io.Writer, fig *ggview.Figure, opts options) error {
	w, h := fig.Size()
	r, err := ggview.NewRenderer(opts.Backend, w, h)
	if err != nil {
		return err
	}
	stats := fig.Render(r)
	ggview.Logger().Info("rendered", "backend", opts.Backend, "stats", stats.String())

	switch r := r.(type) {
	case *ggview.CanvasRenderer:
		f, err := os.Create(opts.Output)
		if err != nil {
			return err
		}
		if err := r.EncodePNG(f); err != nil {
			_ = f.Close()
			return fmt.Errorf("encode %s: %w", opts.Output, err)
		}
		if err := f.Close(); err != nil {
			return err
		}
		ggview.Logger().Info("saved", "file", opts.Output, "width", w, "height", h)
		return nil
	case *recording.Recorder:
		return summarize(stdout, r)
	default:
		return fmt.Errorf("backend %q has no output", opts.Backend)
	}
}

func summarize(w io.Writer, rec *recording.Recorder) error {
	counts := rec.CountByType()
	_, err := fmt.Fprintf(w, "%d commands (paths=%d images=%d text=%d) extent=%v\n",
		rec.Len(),
		counts[recording.CmdDrawPath],
		counts[recording.CmdDrawImage],
		counts[recording.CmdDrawText],
		rec.Extent())
	return err
}
