// Package viz is the display side of the visualizer: window, input
// handling, coordinate mapping, scene layout, GL rendering and the render
// loop that ties them to the playback controller.
package viz

import (
	"fmt"
	"log/slog"
	"runtime"
	"time"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"

	"trafficviz/internal/playback"
	"trafficviz/internal/sim"
	"trafficviz/internal/timeline"
)

// Config is the validated session configuration. Immutable once the loop
// starts.
type Config struct {
	Width       int
	Height      int
	Rate        int
	StartPaused bool
	Palette     Palette
}

// Run opens the window and drives the render loop until the window is
// closed. The loop is single-threaded and cooperative: each tick polls
// input, advances the controller, lays out the current snapshot and
// presents it. Blocks until quit.
func Run(store *timeline.Store, cfg Config, log *slog.Logger) error {
	// The controller also revalidates rate and timeline length, so the
	// session fails before any GL state exists if the config is bad.
	ctrl, err := playback.New(store.Len(), cfg.Rate, cfg.StartPaused)
	if err != nil {
		return err
	}

	runtime.LockOSThread()

	window, err := initWindow(cfg.Width, cfg.Height)
	if err != nil {
		return err
	}
	defer glfw.Terminate()
	defer window.Destroy()

	if err := gl.Init(); err != nil {
		return fmt.Errorf("gl init: %w", err)
	}

	gl.Disable(gl.DEPTH_TEST)
	gl.Disable(gl.CULL_FACE)
	gl.Enable(gl.PROGRAM_POINT_SIZE)
	gl.PixelStorei(gl.UNPACK_ALIGNMENT, 1)

	rend, err := NewRenderer()
	if err != nil {
		return fmt.Errorf("renderer: %w", err)
	}
	defer rend.Destroy()
	if err := rend.InitFonts(); err != nil {
		return fmt.Errorf("font: %w", err)
	}

	input := NewInput()
	tick := time.Second / TickRate

	log.Info("playback started",
		"snapshots", store.Len(),
		"rate", ctrl.Rate(),
		"window", fmt.Sprintf("%dx%d", cfg.Width, cfg.Height))

	for !window.ShouldClose() {
		start := time.Now()

		glfw.PollEvents()
		input.Apply(window, ctrl)

		fbW, fbH := window.GetFramebufferSize()
		if snap, ok := advanceFrame(store, ctrl, fbW, fbH); ok {
			frame := BuildScene(snap, NewGeometry(fbW, fbH), cfg.Palette, ctrl.Paused())
			rend.Draw(frame, fbW, fbH)
			window.SwapBuffers()
		}

		// Pace every iteration, including degenerate ones, so the loop
		// never spins faster than the tick rate.
		if d := tick - time.Since(start); d > 0 {
			time.Sleep(d)
		}
	}

	log.Info("window closed")
	return nil
}

// advanceFrame fetches the snapshot to present and then advances the
// controller. The pause flag is sampled by the caller after the advance, so
// reaching the end shows the pause glyph on the same frame. While the
// framebuffer is collapsed (a minimized window on some platforms) nothing
// can be presented, so playback holds: advancing anyway would let the
// timeline run ahead of what is on screen.
func advanceFrame(store *timeline.Store, ctrl *playback.Controller, fbW, fbH int) (sim.Snapshot, bool) {
	if fbW <= 0 || fbH <= 0 {
		return sim.Snapshot{}, false
	}
	snap := store.Get(ctrl.Index())
	ctrl.Tick()
	return snap, true
}
