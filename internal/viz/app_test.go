package viz

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"trafficviz/internal/playback"
	"trafficviz/internal/sim"
	"trafficviz/internal/timeline"
)

func testStore(times ...float64) *timeline.Store {
	var s timeline.Store
	for _, tm := range times {
		s.Append(sim.Snapshot{
			Time:  tm,
			Roads: []sim.Road{{Name: "A", Length: 100}},
		})
	}
	return &s
}

func TestAdvanceFrame(t *testing.T) {
	t.Run("returns the pre-tick snapshot and advances", func(t *testing.T) {
		store := testStore(0, 1, 2)
		ctrl, err := playback.New(store.Len(), 1, false)
		require.NoError(t, err)

		snap, ok := advanceFrame(store, ctrl, 800, 200)
		require.True(t, ok)
		assert.Equal(t, 0.0, snap.Time)
		assert.Equal(t, 1, ctrl.Index())

		snap, ok = advanceFrame(store, ctrl, 800, 200)
		require.True(t, ok)
		assert.Equal(t, 1.0, snap.Time)
		assert.Equal(t, 2, ctrl.Index())
	})

	t.Run("collapsed framebuffer holds playback", func(t *testing.T) {
		store := testStore(0, 1, 2)
		ctrl, err := playback.New(store.Len(), 1, false)
		require.NoError(t, err)

		// A minimized window can report 0x0 for many iterations; none of
		// them may consume timeline indices.
		for i := 0; i < 50; i++ {
			_, ok := advanceFrame(store, ctrl, 0, 0)
			assert.False(t, ok)
		}
		_, ok := advanceFrame(store, ctrl, 800, 0)
		assert.False(t, ok)
		_, ok = advanceFrame(store, ctrl, 0, 200)
		assert.False(t, ok)

		assert.Equal(t, 0, ctrl.Index())
		assert.False(t, ctrl.Paused())

		// Playback resumes where it left off once the window is back.
		snap, ok := advanceFrame(store, ctrl, 800, 200)
		require.True(t, ok)
		assert.Equal(t, 0.0, snap.Time)
		assert.Equal(t, 1, ctrl.Index())
	})

	t.Run("end of timeline pauses on the presented frame", func(t *testing.T) {
		store := testStore(0, 1)
		ctrl, err := playback.New(store.Len(), 1, false)
		require.NoError(t, err)

		_, ok := advanceFrame(store, ctrl, 800, 200)
		require.True(t, ok)
		assert.False(t, ctrl.Paused())

		snap, ok := advanceFrame(store, ctrl, 800, 200)
		require.True(t, ok)
		assert.Equal(t, 1.0, snap.Time)
		assert.True(t, ctrl.Paused())
		assert.Equal(t, 1, ctrl.Index())
	})
}
