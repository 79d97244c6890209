package cli

import (
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"trafficviz/internal/timeline"
	"trafficviz/internal/viz"
)

// run executes the root command with args and the given stdin. The cases
// here all fail before the window would open.
func run(t *testing.T, stdin string, args ...string) error {
	t.Helper()
	cmd := NewRootCmd()
	cmd.SetArgs(args)
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetOut(io.Discard)
	cmd.SetErr(io.Discard)
	return cmd.Execute()
}

func TestRootCmdValidation(t *testing.T) {
	t.Run("non-positive speed rejected", func(t *testing.T) {
		err := run(t, "", "--speed", "0")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "speed must be >= 1")
	})

	t.Run("negative speed rejected", func(t *testing.T) {
		err := run(t, "", "--speed=-4")
		require.Error(t, err)
	})

	t.Run("bad window size rejected", func(t *testing.T) {
		err := run(t, "", "--width", "0")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "window size")
	})

	t.Run("empty feed aborts", func(t *testing.T) {
		err := run(t, "")
		assert.ErrorIs(t, err, timeline.ErrEmptyTimeline)
	})

	t.Run("malformed feed line aborts before playback", func(t *testing.T) {
		feed := `{"time": 0, "roads": [{"name": "A", "length": 100, "lights": [], "cars": []}]}` + "\n" +
			`{"broken": true}` + "\n"
		err := run(t, feed)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "line 2")
	})

	t.Run("missing feed file", func(t *testing.T) {
		err := run(t, "", "--file", "does-not-exist.jsonl")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "open feed")
	})

	t.Run("missing theme file", func(t *testing.T) {
		err := run(t, "", "--theme", "does-not-exist.yaml")
		require.Error(t, err)
	})
}

func TestResolvePalette(t *testing.T) {
	pal, err := resolvePalette("", false)
	require.NoError(t, err)
	assert.Equal(t, viz.LightPalette(), pal)

	pal, err = resolvePalette("", true)
	require.NoError(t, err)
	assert.Equal(t, viz.DarkPalette(), pal)
}
