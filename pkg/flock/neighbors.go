package flock

import "github.com/lao-tseu-is-alive/go-flocking-boids/pkg/geometry"

// State is a read-only copy of one agent, taken at the start of a frame.
type State struct {
	ID       int
	Position geometry.Vector2D
	Velocity geometry.Vector2D
}

// NeighborQuery finds the agents around a point.
// The steering rules only talk to this interface, so a spatial index can
// replace the brute force scan without touching the rule formulas.
type NeighborQuery interface {
	// Within calls fn for every agent strictly closer than radius to center,
	// skipping the agent whose ID is exclude.
	Within(center geometry.Vector2D, radius float64, exclude int, fn func(State))
}

// Snapshot is the frozen state of the whole flock for one frame.
// Its Within is a full O(n) scan.
type Snapshot []State

var _ NeighborQuery = Snapshot(nil)

// Within implements NeighborQuery.
func (s Snapshot) Within(center geometry.Vector2D, radius float64, exclude int, fn func(State)) {
	// squared distances avoid a Sqrt per pair
	radiusSq := radius * radius
	for _, other := range s {
		if other.ID == exclude {
			continue
		}
		if center.DistanceSquaredTo(other.Position) < radiusSq {
			fn(other)
		}
	}
}

// capture refills the snapshot from the live agents, reusing its capacity.
func (s Snapshot) capture(agents []*Agent) Snapshot {
	s = s[:0]
	for _, a := range agents {
		s = append(s, a.State())
	}
	return s
}
