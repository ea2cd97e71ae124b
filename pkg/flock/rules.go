package flock

import "github.com/lao-tseu-is-alive/go-flocking-boids/pkg/geometry"

// Steering holds the three rule contributions computed for one agent.
type Steering struct {
	Cohesion   geometry.Vector2D
	Separation geometry.Vector2D
	Alignment  geometry.Vector2D
	Neighbors  int // agents within perception range
}

// Sum combines the three contributions into one velocity change.
func (s Steering) Sum() geometry.Vector2D {
	return s.Cohesion.Add(s.Separation).Add(s.Alignment)
}

// Steer evaluates cohesion, separation and alignment for subject.
// It only reads from q.
func Steer(subject State, q NeighborQuery, p Parameters) Steering {
	var s Steering
	s.Cohesion, s.Neighbors = cohesion(subject, q, p)
	s.Separation = Separation(subject, q, p)
	s.Alignment = Alignment(subject, q, p)
	return s
}

// Cohesion steers toward the average position of the agents within Range.
// With no neighbor in range it contributes nothing.
func Cohesion(subject State, q NeighborQuery, p Parameters) geometry.Vector2D {
	v, _ := cohesion(subject, q, p)
	return v
}

func cohesion(subject State, q NeighborQuery, p Parameters) (geometry.Vector2D, int) {
	var center geometry.Vector2D
	count := 0
	q.Within(subject.Position, p.Range, subject.ID, func(other State) {
		center = center.Add(other.Position)
		count++
	})

	center, ok := center.Mean(count)
	if !ok {
		return geometry.Zero, 0
	}
	return center.Sub(subject.Position).Mul(p.CohesionWeight), count
}

// Separation steers away from every agent closer than SeparationDistance.
// The repulsions add up, so a crowded boid is pushed harder.
func Separation(subject State, q NeighborQuery, p Parameters) geometry.Vector2D {
	var away geometry.Vector2D
	q.Within(subject.Position, p.SeparationDistance, subject.ID, func(other State) {
		away = away.Add(subject.Position.Sub(other.Position))
	})
	return away.Mul(p.SeparationWeight)
}

// Alignment steers toward the average velocity of the agents within Range.
// With no neighbor in range it contributes nothing.
func Alignment(subject State, q NeighborQuery, p Parameters) geometry.Vector2D {
	var heading geometry.Vector2D
	count := 0
	q.Within(subject.Position, p.Range, subject.ID, func(other State) {
		heading = heading.Add(other.Velocity)
		count++
	})

	heading, ok := heading.Mean(count)
	if !ok {
		return geometry.Zero
	}
	return heading.Sub(subject.Velocity).Mul(p.AlignmentWeight)
}
