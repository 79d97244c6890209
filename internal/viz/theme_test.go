package viz

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTheme(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "theme.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestLoadPalette(t *testing.T) {
	t.Run("overrides named colours, keeps defaults", func(t *testing.T) {
		path := writeTheme(t, "background: \"#101820\"\ncar: \"ffcc00\"\n")
		pal, err := LoadPalette(path)
		require.NoError(t, err)

		assert.Equal(t, RGB{R: 0x10, G: 0x18, B: 0x20}, pal.Background)
		assert.Equal(t, RGB{R: 0xff, G: 0xcc, B: 0x00}, pal.Car)
		// Untouched entries fall back to the light theme.
		assert.Equal(t, LightPalette().Road, pal.Road)
		assert.Equal(t, LightPalette().LightRed, pal.LightRed)
	})

	t.Run("bad colour", func(t *testing.T) {
		path := writeTheme(t, "road: \"#12345\"\n")
		_, err := LoadPalette(path)
		assert.Error(t, err)
	})

	t.Run("bad yaml", func(t *testing.T) {
		path := writeTheme(t, "road: [\n")
		_, err := LoadPalette(path)
		assert.Error(t, err)
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := LoadPalette(filepath.Join(t.TempDir(), "nope.yaml"))
		assert.Error(t, err)
	})
}
