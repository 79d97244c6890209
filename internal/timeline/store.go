// Package timeline owns the ordered sequence of snapshots for one
// visualization session. The store is populated once, before the render loop
// starts, and never mutated afterwards.
package timeline

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"trafficviz/internal/sim"
)

// ErrEmptyTimeline is returned when the feed yields zero snapshots.
var ErrEmptyTimeline = errors.New("timeline: no snapshots loaded")

// Store is an append-only, random-access sequence of snapshots.
type Store struct {
	snaps []sim.Snapshot
}

// Append adds one snapshot to the end of the timeline.
func (s *Store) Append(snap sim.Snapshot) {
	s.snaps = append(s.snaps, snap)
}

// Get returns the snapshot at index i. The index must be valid; the playback
// controller guarantees that for a non-empty timeline.
func (s *Store) Get(i int) sim.Snapshot {
	return s.snaps[i]
}

// Len returns the number of snapshots in the timeline.
func (s *Store) Len() int {
	return len(s.snaps)
}

// Load consumes the whole feed, one snapshot record per line, and returns the
// populated store. The first malformed line aborts the load; a feed with no
// records at all is also an error. Blank lines are skipped.
func Load(r io.Reader) (*Store, error) {
	store := &Store{}
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 8*1024*1024)

	lineNo := 0
	for sc.Scan() {
		lineNo++
		line := sc.Bytes()
		if strings.TrimSpace(string(line)) == "" {
			continue
		}
		snap, err := sim.ParseSnapshot(line)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", lineNo, err)
		}
		store.Append(snap)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("read feed: %w", err)
	}
	if store.Len() == 0 {
		return nil, ErrEmptyTimeline
	}
	return store, nil
}
