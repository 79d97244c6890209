// Package cli wires flags, environment defaults and the feed into a
// visualizer session.
package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"trafficviz/internal/platform/config"
	"trafficviz/internal/platform/logger"
	"trafficviz/internal/timeline"
	"trafficviz/internal/viz"
)

// NewRootCmd creates the root trafficviz command.
func NewRootCmd() *cobra.Command {
	var (
		speed       int
		dark        bool
		themePath   string
		width       int
		height      int
		startPaused bool
		feedPath    string
	)

	root := &cobra.Command{
		Use:   "trafficviz",
		Short: "Traffic simulation playback visualizer",
		Long: `Trafficviz replays a recorded traffic-simulation timeline as a live 2D scene.

The feed is read line by line from stdin (or --file), one snapshot per line,
before playback starts. Controls: space pauses, r restarts, left/right step
while paused (hold shift to step by the playback rate).`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if speed < 1 {
				return fmt.Errorf("speed must be >= 1, got %d", speed)
			}
			if width <= 0 || height <= 0 {
				return fmt.Errorf("window size must be positive, got %dx%d", width, height)
			}

			log := logger.New(
				config.GetEnv("LOG_LEVEL", "info"),
				config.GetEnv("LOG_FORMAT", "text"),
			)

			pal, err := resolvePalette(themePath, dark)
			if err != nil {
				return err
			}

			var feed io.Reader = cmd.InOrStdin()
			if feedPath != "" {
				f, err := os.Open(feedPath)
				if err != nil {
					return fmt.Errorf("open feed: %w", err)
				}
				defer f.Close()
				feed = f
			}

			store, err := timeline.Load(feed)
			if err != nil {
				return fmt.Errorf("load timeline: %w", err)
			}
			log.Info("timeline loaded", "snapshots", store.Len())

			return viz.Run(store, viz.Config{
				Width:       width,
				Height:      height,
				Rate:        speed,
				StartPaused: startPaused,
				Palette:     pal,
			}, log)
		},
	}

	root.Flags().IntVarP(&speed, "speed", "s",
		config.GetEnvInt("TRAFFICVIZ_SPEED", 4),
		"playback rate: timeline frames consumed per tick (>= 1)")
	root.Flags().BoolVar(&dark,
		"dark", config.GetEnv("TRAFFICVIZ_THEME", "light") == "dark",
		"use the dark theme")
	root.Flags().StringVar(&themePath, "theme", "",
		"YAML theme file overriding individual colours")
	root.Flags().IntVar(&width, "width",
		config.GetEnvInt("TRAFFICVIZ_WIDTH", viz.WindowWidth),
		"initial window width in pixels")
	root.Flags().IntVar(&height, "height",
		config.GetEnvInt("TRAFFICVIZ_HEIGHT", viz.WindowHeight),
		"initial window height in pixels")
	root.Flags().BoolVar(&startPaused, "paused", false,
		"start playback paused on the first frame")
	root.Flags().StringVar(&feedPath, "file", "",
		"read the feed from a file instead of stdin")

	return root
}

// resolvePalette picks the session palette: a theme file wins over the
// built-in light/dark pair.
func resolvePalette(themePath string, dark bool) (viz.Palette, error) {
	if themePath != "" {
		return viz.LoadPalette(themePath)
	}
	if dark {
		return viz.DarkPalette(), nil
	}
	return viz.LightPalette(), nil
}
