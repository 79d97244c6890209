package viz

import (
	"github.com/go-gl/glfw/v3.3/glfw"

	"trafficviz/internal/playback"
)

// Input tracks previous key state so one-shot commands fire once per press,
// while scrub keys are sampled level-style every tick.
type Input struct {
	prevKeys map[glfw.Key]bool
}

func NewInput() *Input {
	return &Input{
		prevKeys: make(map[glfw.Key]bool),
	}
}

// JustPressed reports a key-down edge: true on the first tick the key is
// held, false until it is released and pressed again.
func (in *Input) JustPressed(window *glfw.Window, key glfw.Key) bool {
	down := window.GetKey(key) == glfw.Press
	jp := down && !in.prevKeys[key]
	in.prevKeys[key] = down
	return jp
}

// Apply translates the current keyboard state into controller commands.
// Space and R are edge-triggered; the arrow keys repeat every tick they are
// held, stepping by 1 or by the playback rate with shift down. Seeks only
// take effect while paused; the controller enforces that.
func (in *Input) Apply(window *glfw.Window, ctrl *playback.Controller) {
	if in.JustPressed(window, glfw.KeySpace) {
		ctrl.TogglePause()
	}
	if in.JustPressed(window, glfw.KeyR) {
		ctrl.Restart()
	}

	step := 1
	if window.GetKey(glfw.KeyLeftShift) == glfw.Press ||
		window.GetKey(glfw.KeyRightShift) == glfw.Press {
		step = ctrl.Rate()
	}
	if window.GetKey(glfw.KeyLeft) == glfw.Press {
		ctrl.SeekBack(step)
	}
	if window.GetKey(glfw.KeyRight) == glfw.Press {
		ctrl.SeekForward(step)
	}
}
