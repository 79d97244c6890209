// Package sim holds the recorded simulation data model and the decoding of
// feed records into it. One feed line describes one Snapshot; the shape is
// validated structurally on decode and trusted everywhere after that.
package sim

// Snapshot is one recorded instant of the simulation. Immutable once built.
type Snapshot struct {
	Time  float64
	Roads []Road
}

// Road is a single road with its vehicles and traffic lights, ordered as
// recorded. Length is in simulation units and always positive.
type Road struct {
	Name   string
	Length float64
	Lights []Light
	Cars   []Car
}

// Light is a traffic light at offset X along the road. DecelX and StopX are
// the deceleration-zone and full-stop-zone distances before the light; they
// are optional and may arrive even while the light is green, in which case
// they are kept but not rendered.
type Light struct {
	X      float64
	Green  bool
	DecelX *float64
	StopX  *float64
}

// HasZones reports whether the light carries both indicator zone distances.
func (l Light) HasZones() bool {
	return l.DecelX != nil && l.StopX != nil
}

// Car is a vehicle at offset X along its road. Position is the only state
// the renderer needs.
type Car struct {
	X float64
}

// MaxRoadLength returns the length of the longest road in the snapshot.
// The feed decoder guarantees at least one road with positive length.
func (s Snapshot) MaxRoadLength() float64 {
	maxLen := 0.0
	for _, r := range s.Roads {
		if r.Length > maxLen {
			maxLen = r.Length
		}
	}
	return maxLen
}
