// Package playback implements the state machine that decides which timeline
// index is on screen. Two modes, Running and Paused; the render loop calls
// Tick once per frame and the input mapper calls the command methods.
package playback

import (
	"errors"
	"fmt"
)

// Mode is the controller's run mode.
type Mode int

const (
	ModeRunning Mode = iota
	ModePaused
)

var errEmptyTimeline = errors.New("playback: timeline must not be empty")

// Controller owns the current timeline index, the run mode and the playback
// rate. The rate is fixed for the session; only commands below mutate state,
// and only from the render loop, in strict per-tick order.
type Controller struct {
	index  int
	length int
	rate   int
	mode   Mode
}

// New creates a controller over a timeline of the given length. rate is the
// number of indices consumed per tick while running and must be at least 1.
func New(length, rate int, startPaused bool) (*Controller, error) {
	if length < 1 {
		return nil, errEmptyTimeline
	}
	if rate < 1 {
		return nil, fmt.Errorf("playback: rate must be >= 1, got %d", rate)
	}
	c := &Controller{length: length, rate: rate}
	if startPaused {
		c.mode = ModePaused
	}
	return c, nil
}

// Index returns the timeline index currently on screen.
func (c *Controller) Index() int { return c.index }

// Paused reports whether the controller is in Paused mode.
func (c *Controller) Paused() bool { return c.mode == ModePaused }

// Rate returns the fixed playback rate.
func (c *Controller) Rate() int { return c.rate }

// Tick advances by the playback rate while running. Called once per render
// tick; a no-op while paused.
func (c *Controller) Tick() {
	if c.mode == ModeRunning {
		c.stepForward(c.rate)
	}
}

// TogglePause flips between Running and Paused.
func (c *Controller) TogglePause() {
	if c.mode == ModeRunning {
		c.mode = ModePaused
	} else {
		c.mode = ModeRunning
	}
}

// Restart rewinds to the first frame. The mode is left unchanged.
func (c *Controller) Restart() {
	c.index = 0
}

// SeekForward steps n frames forward. Seeks are accepted only while paused;
// otherwise they would race the automatic per-tick advance.
func (c *Controller) SeekForward(n int) {
	if c.mode == ModePaused {
		c.stepForward(n)
	}
}

// SeekBack steps n frames back, clamped at the first frame. Accepted only
// while paused, like SeekForward.
func (c *Controller) SeekBack(n int) {
	if c.mode == ModePaused {
		c.index -= n
		if c.index < 0 {
			c.index = 0
		}
	}
}

// stepForward advances the index. Reaching the end of the timeline clamps to
// the last frame and always pauses; the end is a terminal condition, not an
// error.
func (c *Controller) stepForward(n int) {
	c.index += n
	if c.index >= c.length {
		c.index = c.length - 1
		c.mode = ModePaused
	}
}
