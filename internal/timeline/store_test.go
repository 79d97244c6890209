package timeline

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"trafficviz/internal/sim"
)

func line(time string) string {
	return `{"time": ` + time + `, "roads": [{"name": "A", "length": 100, "lights": [], "cars": []}]}`
}

func TestStore_AppendGetLen(t *testing.T) {
	var s Store
	assert.Equal(t, 0, s.Len())

	s.Append(sim.Snapshot{Time: 0})
	s.Append(sim.Snapshot{Time: 1})

	assert.Equal(t, 2, s.Len())
	assert.Equal(t, 0.0, s.Get(0).Time)
	assert.Equal(t, 1.0, s.Get(1).Time)
}

func TestLoad(t *testing.T) {
	t.Run("five well-formed lines", func(t *testing.T) {
		feed := strings.Join([]string{
			line("0"), line("1"), line("2"), line("3"), line("4"),
		}, "\n")
		store, err := Load(strings.NewReader(feed))
		require.NoError(t, err)
		assert.Equal(t, 5, store.Len())
		assert.Equal(t, 4.0, store.Get(4).Time)
	})

	t.Run("malformed line aborts with line number", func(t *testing.T) {
		feed := strings.Join([]string{
			line("0"), line("1"), `{"time": 2}`, line("3"), line("4"),
		}, "\n")
		store, err := Load(strings.NewReader(feed))
		require.Error(t, err)
		assert.Nil(t, store)
		assert.Contains(t, err.Error(), "line 3")
	})

	t.Run("blank lines skipped", func(t *testing.T) {
		feed := line("0") + "\n\n" + line("1") + "\n"
		store, err := Load(strings.NewReader(feed))
		require.NoError(t, err)
		assert.Equal(t, 2, store.Len())
	})

	t.Run("empty feed", func(t *testing.T) {
		_, err := Load(strings.NewReader(""))
		assert.ErrorIs(t, err, ErrEmptyTimeline)
	})

	t.Run("whitespace-only feed", func(t *testing.T) {
		_, err := Load(strings.NewReader("\n  \n"))
		assert.ErrorIs(t, err, ErrEmptyTimeline)
	})
}
