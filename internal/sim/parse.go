package sim

import (
	"encoding/json"
	"errors"
	"fmt"
)

// Structural validation failures. All of them are fatal at load time; the
// playback loop assumes a fully validated timeline.
var (
	ErrMissingField = errors.New("missing required field")
	ErrNoRoads      = errors.New("snapshot has no roads")
	ErrBadLength    = errors.New("road length must be positive")
)

// Wire shapes use pointers so that absent fields can be told apart from
// zero values.
type snapshotJSON struct {
	Time  *float64    `json:"time"`
	Roads *[]roadJSON `json:"roads"`
}

type roadJSON struct {
	Name   *string      `json:"name"`
	Length *float64     `json:"length"`
	Lights *[]lightJSON `json:"lights"`
	Cars   *[]carJSON   `json:"cars"`
}

type lightJSON struct {
	X     *float64 `json:"x"`
	Green *bool    `json:"green"`
	Xs    *float64 `json:"xs"`
	Xs0   *float64 `json:"xs0"`
}

type carJSON struct {
	X *float64 `json:"x"`
}

// ParseSnapshot decodes one feed line into a Snapshot. Each line is a JSON
// object with a time value and a non-empty roads list; every road carries a
// name, a positive length, a lights list and a cars list. Any missing field
// or structural violation is an error.
func ParseSnapshot(line []byte) (Snapshot, error) {
	var raw snapshotJSON
	if err := json.Unmarshal(line, &raw); err != nil {
		return Snapshot{}, fmt.Errorf("decode snapshot: %w", err)
	}
	if raw.Time == nil {
		return Snapshot{}, fmt.Errorf("snapshot time: %w", ErrMissingField)
	}
	if raw.Roads == nil {
		return Snapshot{}, fmt.Errorf("snapshot roads: %w", ErrMissingField)
	}
	if len(*raw.Roads) == 0 {
		return Snapshot{}, ErrNoRoads
	}

	snap := Snapshot{
		Time:  *raw.Time,
		Roads: make([]Road, 0, len(*raw.Roads)),
	}
	for i, rr := range *raw.Roads {
		road, err := parseRoad(rr)
		if err != nil {
			return Snapshot{}, fmt.Errorf("road %d: %w", i, err)
		}
		snap.Roads = append(snap.Roads, road)
	}
	return snap, nil
}

func parseRoad(raw roadJSON) (Road, error) {
	if raw.Name == nil {
		return Road{}, fmt.Errorf("name: %w", ErrMissingField)
	}
	if raw.Length == nil {
		return Road{}, fmt.Errorf("length: %w", ErrMissingField)
	}
	if *raw.Length <= 0 {
		return Road{}, fmt.Errorf("%w: got %v", ErrBadLength, *raw.Length)
	}
	if raw.Lights == nil {
		return Road{}, fmt.Errorf("lights: %w", ErrMissingField)
	}
	if raw.Cars == nil {
		return Road{}, fmt.Errorf("cars: %w", ErrMissingField)
	}

	road := Road{
		Name:   *raw.Name,
		Length: *raw.Length,
		Lights: make([]Light, 0, len(*raw.Lights)),
		Cars:   make([]Car, 0, len(*raw.Cars)),
	}
	for i, rl := range *raw.Lights {
		if rl.X == nil {
			return Road{}, fmt.Errorf("light %d x: %w", i, ErrMissingField)
		}
		if rl.Green == nil {
			return Road{}, fmt.Errorf("light %d green: %w", i, ErrMissingField)
		}
		road.Lights = append(road.Lights, Light{
			X:      *rl.X,
			Green:  *rl.Green,
			DecelX: rl.Xs,
			StopX:  rl.Xs0,
		})
	}
	for i, rc := range *raw.Cars {
		if rc.X == nil {
			return Road{}, fmt.Errorf("car %d x: %w", i, ErrMissingField)
		}
		road.Cars = append(road.Cars, Car{X: *rc.X})
	}
	return road, nil
}
