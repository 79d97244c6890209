package playback

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newPaused(t *testing.T, length, rate int) *Controller {
	t.Helper()
	c, err := New(length, rate, true)
	require.NoError(t, err)
	return c
}

func TestNew(t *testing.T) {
	t.Run("starts running at index 0", func(t *testing.T) {
		c, err := New(10, 1, false)
		require.NoError(t, err)
		assert.Equal(t, 0, c.Index())
		assert.False(t, c.Paused())
	})

	t.Run("start paused", func(t *testing.T) {
		c, err := New(10, 1, true)
		require.NoError(t, err)
		assert.True(t, c.Paused())
	})

	t.Run("rejects empty timeline", func(t *testing.T) {
		_, err := New(0, 1, false)
		assert.Error(t, err)
	})

	t.Run("rejects non-positive rate", func(t *testing.T) {
		for _, rate := range []int{0, -3} {
			_, err := New(10, rate, false)
			assert.Error(t, err)
		}
	})
}

func TestSeekRoundTrip(t *testing.T) {
	// Forward then back by the same n returns to the start, as long as the
	// forward step was not clamped at the end.
	for _, n := range []int{0, 1, 5, 40} {
		c := newPaused(t, 100, 1)
		c.SeekForward(50)
		start := c.Index()

		c.SeekForward(n)
		c.SeekBack(n)
		assert.Equal(t, start, c.Index(), "n=%d", n)
	}
}

func TestStepForwardClampsAndPauses(t *testing.T) {
	c := newPaused(t, 10, 1)
	c.SeekForward(25)

	assert.Equal(t, 9, c.Index())
	assert.True(t, c.Paused())
}

func TestTick(t *testing.T) {
	t.Run("advances by rate while running", func(t *testing.T) {
		c, err := New(100, 4, false)
		require.NoError(t, err)

		c.Tick()
		assert.Equal(t, 4, c.Index())
		c.Tick()
		assert.Equal(t, 8, c.Index())
	})

	t.Run("no-op while paused", func(t *testing.T) {
		c := newPaused(t, 100, 4)
		c.Tick()
		assert.Equal(t, 0, c.Index())
	})

	t.Run("end of timeline pauses", func(t *testing.T) {
		c, err := New(3, 2, false)
		require.NoError(t, err)

		c.Tick()
		assert.Equal(t, 2, c.Index())
		assert.False(t, c.Paused())

		c.Tick()
		assert.Equal(t, 2, c.Index())
		assert.True(t, c.Paused())
	})
}

func TestRestart(t *testing.T) {
	t.Run("rewinds without changing mode", func(t *testing.T) {
		c, err := New(100, 4, false)
		require.NoError(t, err)
		c.Tick()
		c.Tick()

		c.Restart()
		assert.Equal(t, 0, c.Index())
		assert.False(t, c.Paused())
	})

	t.Run("while paused stays paused", func(t *testing.T) {
		c := newPaused(t, 100, 1)
		c.SeekForward(7)

		c.Restart()
		assert.Equal(t, 0, c.Index())
		assert.True(t, c.Paused())
	})
}

func TestSeeksIgnoredWhileRunning(t *testing.T) {
	c, err := New(100, 1, false)
	require.NoError(t, err)

	c.SeekForward(10)
	assert.Equal(t, 0, c.Index())

	c.SeekBack(10)
	assert.Equal(t, 0, c.Index())
}

func TestSeekBackClampsAtStart(t *testing.T) {
	c := newPaused(t, 100, 1)
	c.SeekForward(3)
	c.SeekBack(10)
	assert.Equal(t, 0, c.Index())
}

func TestTogglePauseTwice(t *testing.T) {
	c, err := New(100, 1, false)
	require.NoError(t, err)
	c.Tick()
	idx := c.Index()

	c.TogglePause()
	c.TogglePause()
	assert.False(t, c.Paused())
	assert.Equal(t, idx, c.Index())
}

func TestIndexNeverExceedsLength(t *testing.T) {
	c, err := New(5, 3, false)
	require.NoError(t, err)
	for i := 0; i < 20; i++ {
		c.Tick()
		assert.Less(t, c.Index(), 5)
	}
	assert.Equal(t, 4, c.Index())
	assert.True(t, c.Paused())
}
